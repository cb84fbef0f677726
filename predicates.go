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

// The named OGC predicates. Each one declares the requirement hints
// the computer uses to skip work, and the short-circuit condition
// under which its value is fixed before evaluation completes.

// intersectsPredicate is known true as soon as any interior/boundary
// interaction appears.
type intersectsPredicate struct {
	basePredicate
}

// IntersectsPredicate returns the intersects predicate.
func IntersectsPredicate() TopologyPredicate { return &intersectsPredicate{} }

func (p *intersectsPredicate) Name() string { return "intersects" }

func (p *intersectsPredicate) RequireSelfNoding() bool { return false }

func (p *intersectsPredicate) RequireExteriorCheck(isA bool) bool { return false }

func (p *intersectsPredicate) InitEnv(envA, envB *geom.Bounds) {
	p.require(envOverlaps(envA, envB))
}

func (p *intersectsPredicate) UpdateDimension(locA, locB Location, dim Dimension) {
	p.setValueIf(true, isIntersection(locA, locB))
}

func (p *intersectsPredicate) Finish() {
	// no interaction was found
	p.setValue(false)
}

// disjointPredicate is the complement of intersects.
type disjointPredicate struct {
	basePredicate
}

// DisjointPredicate returns the disjoint predicate.
func DisjointPredicate() TopologyPredicate { return &disjointPredicate{} }

func (p *disjointPredicate) Name() string { return "disjoint" }

func (p *disjointPredicate) RequireSelfNoding() bool { return false }

func (p *disjointPredicate) RequireInteraction() bool { return false }

func (p *disjointPredicate) RequireExteriorCheck(isA bool) bool { return false }

func (p *disjointPredicate) InitEnv(envA, envB *geom.Bounds) {
	p.setValueIf(true, !envOverlaps(envA, envB))
}

func (p *disjointPredicate) UpdateDimension(locA, locB Location, dim Dimension) {
	p.setValueIf(false, isIntersection(locA, locB))
}

func (p *disjointPredicate) Finish() {
	p.setValue(true)
}

// containsPredicate: A contains B.
type containsPredicate struct {
	imPredicate
}

// ContainsPredicate returns the contains predicate.
func ContainsPredicate() TopologyPredicate {
	p := &containsPredicate{}
	p.initIM()
	return p
}

func (p *containsPredicate) Name() string { return "contains" }

func (p *containsPredicate) RequireCovers(isA bool) bool { return isA }

func (p *containsPredicate) RequireExteriorCheck(isA bool) bool {
	// only B needs to be checked against the exterior of A
	return !isA
}

func (p *containsPredicate) Init(dimA, dimB Dimension) {
	p.imPredicate.Init(dimA, dimB)
	p.require(isDimsCompatibleWithCovers(dimA, dimB))
}

func (p *containsPredicate) InitEnv(envA, envB *geom.Bounds) {
	p.requireCoversEnv(envA, envB)
}

func (p *containsPredicate) UpdateDimension(locA, locB Location, dim Dimension) {
	p.update(locA, locB, dim, p)
}

func (p *containsPredicate) Finish() { p.finishIM(p) }

func (p *containsPredicate) isDetermined() bool { return p.intersectsExteriorOf(true) }

func (p *containsPredicate) valueIM() bool { return p.im.IsContains() }

// withinPredicate: A within B.
type withinPredicate struct {
	imPredicate
}

// WithinPredicate returns the within predicate.
func WithinPredicate() TopologyPredicate {
	p := &withinPredicate{}
	p.initIM()
	return p
}

func (p *withinPredicate) Name() string { return "within" }

func (p *withinPredicate) RequireCovers(isA bool) bool { return !isA }

func (p *withinPredicate) RequireExteriorCheck(isA bool) bool { return isA }

func (p *withinPredicate) Init(dimA, dimB Dimension) {
	p.imPredicate.Init(dimA, dimB)
	p.require(isDimsCompatibleWithCovers(dimB, dimA))
}

func (p *withinPredicate) InitEnv(envA, envB *geom.Bounds) {
	p.requireCoversEnv(envB, envA)
}

func (p *withinPredicate) UpdateDimension(locA, locB Location, dim Dimension) {
	p.update(locA, locB, dim, p)
}

func (p *withinPredicate) Finish() { p.finishIM(p) }

func (p *withinPredicate) isDetermined() bool { return p.intersectsExteriorOf(false) }

func (p *withinPredicate) valueIM() bool { return p.im.IsWithin() }

// coversPredicate: A covers B.
type coversPredicate struct {
	imPredicate
}

// CoversPredicate returns the covers predicate.
func CoversPredicate() TopologyPredicate {
	p := &coversPredicate{}
	p.initIM()
	return p
}

func (p *coversPredicate) Name() string { return "covers" }

func (p *coversPredicate) RequireCovers(isA bool) bool { return isA }

func (p *coversPredicate) RequireExteriorCheck(isA bool) bool { return !isA }

func (p *coversPredicate) Init(dimA, dimB Dimension) {
	p.imPredicate.Init(dimA, dimB)
	p.require(isDimsCompatibleWithCovers(dimA, dimB))
}

func (p *coversPredicate) InitEnv(envA, envB *geom.Bounds) {
	p.requireCoversEnv(envA, envB)
}

func (p *coversPredicate) UpdateDimension(locA, locB Location, dim Dimension) {
	p.update(locA, locB, dim, p)
}

func (p *coversPredicate) Finish() { p.finishIM(p) }

func (p *coversPredicate) isDetermined() bool { return p.intersectsExteriorOf(true) }

func (p *coversPredicate) valueIM() bool { return p.im.IsCovers() }

// coveredByPredicate: A coveredBy B.
type coveredByPredicate struct {
	imPredicate
}

// CoveredByPredicate returns the coveredBy predicate.
func CoveredByPredicate() TopologyPredicate {
	p := &coveredByPredicate{}
	p.initIM()
	return p
}

func (p *coveredByPredicate) Name() string { return "coveredBy" }

func (p *coveredByPredicate) RequireCovers(isA bool) bool { return !isA }

func (p *coveredByPredicate) RequireExteriorCheck(isA bool) bool { return isA }

func (p *coveredByPredicate) Init(dimA, dimB Dimension) {
	p.imPredicate.Init(dimA, dimB)
	p.require(isDimsCompatibleWithCovers(dimB, dimA))
}

func (p *coveredByPredicate) InitEnv(envA, envB *geom.Bounds) {
	p.requireCoversEnv(envB, envA)
}

func (p *coveredByPredicate) UpdateDimension(locA, locB Location, dim Dimension) {
	p.update(locA, locB, dim, p)
}

func (p *coveredByPredicate) Finish() { p.finishIM(p) }

func (p *coveredByPredicate) isDetermined() bool { return p.intersectsExteriorOf(false) }

func (p *coveredByPredicate) valueIM() bool { return p.im.IsCoveredBy() }

// crossesPredicate: dimension-dependent interior crossing.
type crossesPredicate struct {
	imPredicate
}

// CrossesPredicate returns the crosses predicate.
func CrossesPredicate() TopologyPredicate {
	p := &crossesPredicate{}
	p.initIM()
	return p
}

func (p *crossesPredicate) Name() string { return "crosses" }

func (p *crossesPredicate) Init(dimA, dimB Dimension) {
	p.imPredicate.Init(dimA, dimB)
	// crosses is undefined for point/point and area/area pairs
	isBothPointsOrAreas := (dimA == DimP && dimB == DimP) ||
		(dimA == DimA && dimB == DimA)
	p.require(!isBothPointsOrAreas)
}

func (p *crossesPredicate) UpdateDimension(locA, locB Location, dim Dimension) {
	p.update(locA, locB, dim, p)
}

func (p *crossesPredicate) Finish() { p.finishIM(p) }

func (p *crossesPredicate) isDetermined() bool {
	if p.dimA == DimL && p.dimB == DimL {
		// line/line interiors can only cross in dimension 0; a
		// higher-dimensional intersection settles the value
		if p.im.Get(Interior, Interior) > DimP {
			return true
		}
		return false
	}
	if p.dimA < p.dimB {
		return p.isIntersects(Interior, Interior) &&
			p.isIntersects(Interior, Exterior)
	}
	if p.dimA > p.dimB {
		return p.isIntersects(Interior, Interior) &&
			p.isIntersects(Exterior, Interior)
	}
	return false
}

func (p *crossesPredicate) valueIM() bool { return p.im.IsCrosses(p.dimA, p.dimB) }

// touchesPredicate: boundaries interact but interiors do not.
type touchesPredicate struct {
	imPredicate
}

// TouchesPredicate returns the touches predicate.
func TouchesPredicate() TopologyPredicate {
	p := &touchesPredicate{}
	p.initIM()
	return p
}

func (p *touchesPredicate) Name() string { return "touches" }

func (p *touchesPredicate) Init(dimA, dimB Dimension) {
	p.imPredicate.Init(dimA, dimB)
	// touches is undefined for two points
	isBothPoints := dimA == DimP && dimB == DimP
	p.require(!isBothPoints)
}

func (p *touchesPredicate) UpdateDimension(locA, locB Location, dim Dimension) {
	p.update(locA, locB, dim, p)
}

func (p *touchesPredicate) Finish() { p.finishIM(p) }

func (p *touchesPredicate) isDetermined() bool {
	// any interior/interior interaction makes touches false forever
	return p.isIntersects(Interior, Interior)
}

func (p *touchesPredicate) valueIM() bool { return p.im.IsTouches(p.dimA, p.dimB) }

// overlapsPredicate: interiors interact and each input extends into
// the exterior of the other.
type overlapsPredicate struct {
	imPredicate
}

// OverlapsPredicate returns the overlaps predicate.
func OverlapsPredicate() TopologyPredicate {
	p := &overlapsPredicate{}
	p.initIM()
	return p
}

func (p *overlapsPredicate) Name() string { return "overlaps" }

func (p *overlapsPredicate) Init(dimA, dimB Dimension) {
	p.imPredicate.Init(dimA, dimB)
	// overlaps is defined only for equal dimensions
	p.require(dimA == dimB)
}

func (p *overlapsPredicate) UpdateDimension(locA, locB Location, dim Dimension) {
	p.update(locA, locB, dim, p)
}

func (p *overlapsPredicate) Finish() { p.finishIM(p) }

func (p *overlapsPredicate) isDetermined() bool {
	if p.dimA == DimA || p.dimA == DimP {
		return p.isIntersects(Interior, Interior) &&
			p.isIntersects(Interior, Exterior) &&
			p.isIntersects(Exterior, Interior)
	}
	if p.dimA == DimL {
		// a lineal intersection of the interiors settles the value
		return p.isDimension(Interior, Interior, DimL) &&
			p.isIntersects(Interior, Exterior) &&
			p.isIntersects(Exterior, Interior)
	}
	return false
}

func (p *overlapsPredicate) valueIM() bool { return p.im.IsOverlaps(p.dimA, p.dimB) }

// equalsTopoPredicate: topological equality.
type equalsTopoPredicate struct {
	imPredicate
}

// EqualsTopoPredicate returns the topological-equality predicate.
func EqualsTopoPredicate() TopologyPredicate {
	p := &equalsTopoPredicate{}
	p.initIM()
	return p
}

func (p *equalsTopoPredicate) Name() string { return "equals" }

func (p *equalsTopoPredicate) Init(dimA, dimB Dimension) {
	p.imPredicate.Init(dimA, dimB)
	// empty geometries are not equal to anything
	p.require(dimA != DimFalse && dimB != DimFalse)
	p.require(dimA == dimB)
}

func (p *equalsTopoPredicate) InitEnv(envA, envB *geom.Bounds) {
	p.require(envEquals(envA, envB))
}

func (p *equalsTopoPredicate) UpdateDimension(locA, locB Location, dim Dimension) {
	p.update(locA, locB, dim, p)
}

func (p *equalsTopoPredicate) Finish() { p.finishIM(p) }

func (p *equalsTopoPredicate) isDetermined() bool {
	// any exterior interaction makes equality false forever
	return p.isIntersects(Interior, Exterior) ||
		p.isIntersects(Boundary, Exterior) ||
		p.isIntersects(Exterior, Interior) ||
		p.isIntersects(Exterior, Boundary)
}

func (p *equalsTopoPredicate) valueIM() bool { return p.im.IsEquals(p.dimA, p.dimB) }
