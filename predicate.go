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

import "github.com/ctessum/geom"

// A TopologyPredicate receives the stream of monotone dimension
// updates produced during topology evaluation and decides when its
// value is known, allowing the computation to stop early. The
// computer never inspects predicate state beyond IsKnown/Value, and
// the predicate never sees the inputs themselves, only dimensions,
// envelopes and matrix updates.
type TopologyPredicate interface {
	Name() string

	// RequireSelfNoding reports whether the predicate needs
	// self-intersections of the inputs noded explicitly.
	RequireSelfNoding() bool
	// RequireInteraction reports whether the predicate can only be
	// true if the input envelopes interact.
	RequireInteraction() bool
	// RequireCovers reports whether the predicate can only be true if
	// the envelope of the given input covers the other one.
	RequireCovers(isA bool) bool
	// RequireExteriorCheck reports whether points of the given input
	// must be checked against the exterior of the other.
	RequireExteriorCheck(isA bool) bool

	// Init supplies the effective dimensions of the inputs.
	Init(dimA, dimB Dimension)
	// InitEnv supplies the input envelopes.
	InitEnv(envA, envB *geom.Bounds)

	// UpdateDimension reports that the intersection of the locA locus
	// of A and the locB locus of B has at least the given dimension.
	UpdateDimension(locA, locB Location, dim Dimension)
	// Finish computes the final value from the accumulated state.
	Finish()

	IsKnown() bool
	Value() bool
}

const (
	valUnknown = iota
	valFalse
	valTrue
)

// basePredicate supplies the value state and the default requirement
// hints shared by all predicates.
type basePredicate struct {
	val int
}

func (p *basePredicate) IsKnown() bool { return p.val != valUnknown }

func (p *basePredicate) Value() bool { return p.val == valTrue }

// setValue fixes the predicate value; once known it never changes.
func (p *basePredicate) setValue(v bool) {
	if p.val != valUnknown {
		return
	}
	if v {
		p.val = valTrue
	} else {
		p.val = valFalse
	}
}

func (p *basePredicate) setValueIf(v, cond bool) {
	if cond {
		p.setValue(v)
	}
}

func (p *basePredicate) require(cond bool) {
	if !cond {
		p.setValue(false)
	}
}

func (p *basePredicate) requireCoversEnv(a, b *geom.Bounds) {
	p.require(envCovers(a, b))
}

func (p *basePredicate) RequireSelfNoding() bool          { return true }
func (p *basePredicate) RequireInteraction() bool         { return true }
func (p *basePredicate) RequireCovers(isA bool) bool      { return false }
func (p *basePredicate) RequireExteriorCheck(isA bool) bool { return true }

func (p *basePredicate) Init(dimA, dimB Dimension)        {}
func (p *basePredicate) InitEnv(envA, envB *geom.Bounds)  {}

func isIntersection(locA, locB Location) bool {
	return locA != Exterior && locB != Exterior
}

// isDimsCompatibleWithCovers reports whether a geometry of dimension
// dim0 can possibly cover one of dimension dim1. Points may cover
// zero-length lines.
func isDimsCompatibleWithCovers(dim0, dim1 Dimension) bool {
	if dim0 == DimP && dim1 == DimL {
		return true
	}
	return dim0 >= dim1
}

// imEvaluator is the varying part of a matrix-backed predicate.
type imEvaluator interface {
	// isDetermined reports whether the value is fixed by the current
	// matrix, given that cells only ever grow.
	isDetermined() bool
	// valueIM computes the value from the matrix.
	valueIM() bool
}

// imPredicate holds the intersection matrix for matrix-backed
// predicates. The exterior/exterior cell is always dimension 2.
type imPredicate struct {
	basePredicate
	dimA, dimB Dimension
	im         *IntersectionMatrix
}

func (p *imPredicate) initIM() {
	p.dimA = DimFalse
	p.dimB = DimFalse
	p.im = NewIntersectionMatrix()
	p.im.Set(Exterior, Exterior, DimA)
}

func (p *imPredicate) Init(dimA, dimB Dimension) {
	p.dimA = dimA
	p.dimB = dimB
}

// update applies a monotone cell update and re-evaluates the
// predicate if the cell changed.
func (p *imPredicate) update(locA, locB Location, dim Dimension, ev imEvaluator) {
	if dim > p.im.Get(locA, locB) {
		p.im.Set(locA, locB, dim)
		if ev.isDetermined() {
			p.setValue(ev.valueIM())
		}
	}
}

func (p *imPredicate) finishIM(ev imEvaluator) {
	p.setValue(ev.valueIM())
}

func (p *imPredicate) isIntersects(locA, locB Location) bool {
	return p.im.Get(locA, locB) >= DimP
}

func (p *imPredicate) isDimension(locA, locB Location, dim Dimension) bool {
	return p.im.Get(locA, locB) == dim
}

// intersectsExteriorOf reports whether the other input has been found
// to intersect the exterior of the given one.
func (p *imPredicate) intersectsExteriorOf(isA bool) bool {
	if isA {
		return p.isIntersects(Exterior, Interior) || p.isIntersects(Exterior, Boundary)
	}
	return p.isIntersects(Interior, Exterior) || p.isIntersects(Boundary, Exterior)
}

// relateMatrixPredicate evaluates the entire matrix: it is never
// determined early and needs no envelope interaction.
type relateMatrixPredicate struct {
	imPredicate
}

func newRelateMatrixPredicate() *relateMatrixPredicate {
	p := &relateMatrixPredicate{}
	p.initIM()
	return p
}

func (p *relateMatrixPredicate) Name() string { return "relateMatrix" }

func (p *relateMatrixPredicate) RequireInteraction() bool { return false }

func (p *relateMatrixPredicate) UpdateDimension(locA, locB Location, dim Dimension) {
	p.update(locA, locB, dim, p)
}

func (p *relateMatrixPredicate) Finish() { p.finishIM(p) }

func (p *relateMatrixPredicate) isDetermined() bool { return false }

func (p *relateMatrixPredicate) valueIM() bool { return false }

// matrix returns the accumulated intersection matrix.
func (p *relateMatrixPredicate) matrix() *IntersectionMatrix { return p.im }

// patternPredicate matches the computed matrix against a DE-9IM
// pattern. It becomes known (false) as soon as any computed cell
// exceeds its pattern constraint, since cells never decrease.
type patternPredicate struct {
	imPredicate
	pattern       string
	patternMatrix *IntersectionMatrix
}

// PatternPredicate returns a predicate matching a 9-character DE-9IM
// pattern over {F, T, *, 0, 1, 2}.
func PatternPredicate(pattern string) (TopologyPredicate, error) {
	pm, err := ParseMatrix(pattern)
	if err != nil {
		return nil, err
	}
	p := &patternPredicate{pattern: pattern, patternMatrix: pm}
	p.initIM()
	return p, nil
}

func (p *patternPredicate) Name() string { return "matches" }

func (p *patternPredicate) RequireInteraction() bool {
	return patternRequiresInteraction(p.patternMatrix)
}

func (p *patternPredicate) InitEnv(envA, envB *geom.Bounds) {
	// a pattern requiring an interior/boundary interaction cannot
	// match geometries with disjoint envelopes
	p.setValueIf(false, p.RequireInteraction() && !envOverlaps(envA, envB))
}

func (p *patternPredicate) UpdateDimension(locA, locB Location, dim Dimension) {
	p.update(locA, locB, dim, p)
}

func (p *patternPredicate) Finish() { p.finishIM(p) }

func (p *patternPredicate) isDetermined() bool {
	for i := Location(0); i < 3; i++ {
		for j := Location(0); j < 3; j++ {
			patternEntry := p.patternMatrix.Get(i, j)
			if patternEntry == DimDontCare {
				continue
			}
			dim := p.im.Get(i, j)
			if patternEntry == DimTrue {
				// a T entry cannot be contradicted by growing cells
				continue
			}
			// the result is known (false) once a cell exceeds its
			// pattern entry, since cells only grow
			if dim > patternEntry {
				return true
			}
		}
	}
	return false
}

func (p *patternPredicate) valueIM() bool {
	matched, err := p.im.Matches(p.pattern)
	if err != nil {
		return false
	}
	return matched
}

func patternRequiresInteraction(pm *IntersectionMatrix) bool {
	isInteraction := func(dim Dimension) bool {
		return dim == DimTrue || dim >= DimP
	}
	return isInteraction(pm.Get(Interior, Interior)) ||
		isInteraction(pm.Get(Interior, Boundary)) ||
		isInteraction(pm.Get(Boundary, Interior)) ||
		isInteraction(pm.Get(Boundary, Boundary))
}
