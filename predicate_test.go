/*
Copyright © 2026 the relate authors.
This file is part of relate.

relate is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

relate is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with relate.  If not, see <http://www.gnu.org/licenses/>.
*/

package relate

import (
	"testing"

	"github.com/ctessum/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatternPredicateErrors(t *testing.T) {
	_, err := PatternPredicate("TTT")
	require.Error(t, err)
	_, err = PatternPredicate("TTTTTTTTX")
	require.Error(t, err)
	_, err = RelatePattern(xy(0, 0), xy(1, 1), "bogus")
	require.Error(t, err)
}

func TestIntersectsShortCircuit(t *testing.T) {
	p := IntersectsPredicate()
	require.False(t, p.IsKnown())

	// envelope disjointness decides the predicate immediately
	envA := &geom.Bounds{Min: xy(0, 0), Max: xy(1, 1)}
	envB := &geom.Bounds{Min: xy(5, 5), Max: xy(6, 6)}
	p.InitEnv(envA, envB)
	require.True(t, p.IsKnown())
	assert.False(t, p.Value())

	// any interior interaction decides it as true
	p = IntersectsPredicate()
	p.InitEnv(envA, envA)
	require.False(t, p.IsKnown())
	p.UpdateDimension(Interior, Boundary, DimP)
	require.True(t, p.IsKnown())
	assert.True(t, p.Value())

	// exterior updates decide nothing
	p = IntersectsPredicate()
	p.UpdateDimension(Interior, Exterior, DimA)
	p.UpdateDimension(Exterior, Boundary, DimL)
	require.False(t, p.IsKnown())
	p.Finish()
	require.True(t, p.IsKnown())
	assert.False(t, p.Value())
}

func TestDisjointShortCircuit(t *testing.T) {
	p := DisjointPredicate()
	p.UpdateDimension(Boundary, Boundary, DimP)
	require.True(t, p.IsKnown())
	assert.False(t, p.Value())

	p = DisjointPredicate()
	p.UpdateDimension(Interior, Exterior, DimL)
	require.False(t, p.IsKnown())
	p.Finish()
	assert.True(t, p.Value())
}

func TestContainsShortCircuit(t *testing.T) {
	// incompatible dimensions decide contains immediately
	p := ContainsPredicate()
	p.Init(DimL, DimA)
	require.True(t, p.IsKnown())
	assert.False(t, p.Value())

	// a hit on the exterior of A decides it as false
	p = ContainsPredicate()
	p.Init(DimA, DimL)
	require.False(t, p.IsKnown())
	p.UpdateDimension(Exterior, Interior, DimL)
	require.True(t, p.IsKnown())
	assert.False(t, p.Value())

	// otherwise the value is only known at the end
	p = ContainsPredicate()
	p.Init(DimA, DimA)
	p.UpdateDimension(Interior, Interior, DimA)
	require.False(t, p.IsKnown())
	p.Finish()
	assert.True(t, p.Value())
}

func TestTouchesShortCircuit(t *testing.T) {
	p := TouchesPredicate()
	p.Init(DimP, DimP)
	require.True(t, p.IsKnown(), "touches is undefined for two points")
	assert.False(t, p.Value())

	p = TouchesPredicate()
	p.Init(DimA, DimA)
	p.UpdateDimension(Interior, Interior, DimA)
	require.True(t, p.IsKnown())
	assert.False(t, p.Value())
}

func TestPatternShortCircuit(t *testing.T) {
	// the disjoint pattern is contradicted by any I/I interaction
	p, err := PatternPredicate("FF*FF****")
	require.NoError(t, err)
	p.UpdateDimension(Interior, Interior, DimP)
	require.True(t, p.IsKnown())
	assert.False(t, p.Value())

	// a numeric cell above its pattern value is a permanent mismatch
	p, err = PatternPredicate("0********")
	require.NoError(t, err)
	p.UpdateDimension(Interior, Interior, DimL)
	require.True(t, p.IsKnown())
	assert.False(t, p.Value())

	// a satisfied T pattern still waits for the evaluation to finish
	p, err = PatternPredicate("T********")
	require.NoError(t, err)
	p.UpdateDimension(Interior, Interior, DimP)
	require.False(t, p.IsKnown())
	p.Finish()
	assert.True(t, p.Value())
}

func TestEqualsShortCircuit(t *testing.T) {
	p := EqualsTopoPredicate()
	p.Init(DimA, DimL)
	require.True(t, p.IsKnown())
	assert.False(t, p.Value())

	p = EqualsTopoPredicate()
	p.Init(DimA, DimA)
	envA := &geom.Bounds{Min: xy(0, 0), Max: xy(1, 1)}
	envB := &geom.Bounds{Min: xy(0, 0), Max: xy(2, 1)}
	p.InitEnv(envA, envB)
	require.True(t, p.IsKnown(), "unequal envelopes cannot be equal")
	assert.False(t, p.Value())
}

func TestMatrixPredicateNeverShortCircuits(t *testing.T) {
	p := newRelateMatrixPredicate()
	p.UpdateDimension(Interior, Interior, DimA)
	p.UpdateDimension(Interior, Exterior, DimA)
	p.UpdateDimension(Exterior, Interior, DimA)
	require.False(t, p.IsKnown())
	assert.Equal(t, DimA, p.matrix().Get(Interior, Interior))
	assert.Equal(t, DimA, p.matrix().Get(Exterior, Exterior),
		"exterior/exterior is always dimension 2")
}

func TestPredicateRequirements(t *testing.T) {
	assert.False(t, IntersectsPredicate().RequireSelfNoding())
	assert.False(t, DisjointPredicate().RequireSelfNoding())
	assert.True(t, ContainsPredicate().RequireSelfNoding())
	assert.False(t, DisjointPredicate().RequireInteraction())
	assert.True(t, IntersectsPredicate().RequireInteraction())

	assert.True(t, ContainsPredicate().RequireCovers(true))
	assert.False(t, ContainsPredicate().RequireCovers(false))
	assert.True(t, WithinPredicate().RequireCovers(false))
	assert.False(t, WithinPredicate().RequireExteriorCheck(false))
	assert.True(t, WithinPredicate().RequireExteriorCheck(true))
}

func TestUpdatesAreMonotone(t *testing.T) {
	p := newRelateMatrixPredicate()
	p.UpdateDimension(Interior, Interior, DimA)
	// a lower-dimension update for the same cell is ignored
	p.UpdateDimension(Interior, Interior, DimP)
	assert.Equal(t, DimA, p.matrix().Get(Interior, Interior))
}
