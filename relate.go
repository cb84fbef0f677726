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
	"github.com/ctessum/geom"
	"go.uber.org/zap"
)

// An Option configures a relate computation.
type Option func(*options)

type options struct {
	bnRule BoundaryNodeRule
	log    *zap.Logger
}

// WithBoundaryNodeRule switches the rule classifying line endpoints
// as boundary points. The default is BoundaryRuleMod2 (OGC).
func WithBoundaryNodeRule(rule BoundaryNodeRule) Option {
	return func(o *options) { o.bnRule = rule }
}

// WithLogger attaches a logger to the computation. The default
// discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) { o.log = log }
}

func newOptions(opts ...Option) options {
	o := options{bnRule: BoundaryRuleMod2, log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// RelateNG evaluates topological relationships of one geometry
// against others. A prepared instance retains the point locators and
// the edge index of its geometry across calls; it must not be used
// from multiple goroutines concurrently.
type RelateNG struct {
	geomA    *RelateGeometry
	bnRule   BoundaryNodeRule
	log      *zap.Logger
	prepared bool
	mutual   *mutualIntersector
}

// Prepare wraps a geometry for repeated relate queries.
func Prepare(a geom.Geom, opts ...Option) (*RelateNG, error) {
	return newRelateNG(a, true, opts...)
}

func newRelateNG(a geom.Geom, prepared bool, opts ...Option) (*RelateNG, error) {
	o := newOptions(opts...)
	geomA, err := newRelateGeometry(a, prepared, o.bnRule, o.log)
	if err != nil {
		return nil, err
	}
	return &RelateNG{
		geomA:    geomA,
		bnRule:   o.bnRule,
		log:      o.log,
		prepared: prepared,
	}, nil
}

// Relate computes the full DE-9IM matrix for a pair of geometries.
func Relate(a, b geom.Geom, opts ...Option) (*IntersectionMatrix, error) {
	r, err := newRelateNG(a, false, opts...)
	if err != nil {
		return nil, err
	}
	return r.Evaluate(b)
}

// RelatePattern reports whether the DE-9IM matrix of (a, b) matches a
// pattern.
func RelatePattern(a, b geom.Geom, pattern string, opts ...Option) (bool, error) {
	r, err := newRelateNG(a, false, opts...)
	if err != nil {
		return false, err
	}
	return r.EvaluatePattern(b, pattern)
}

// RelatePredicate evaluates an arbitrary topology predicate for a
// pair of geometries.
func RelatePredicate(a, b geom.Geom, pred TopologyPredicate, opts ...Option) (bool, error) {
	r, err := newRelateNG(a, false, opts...)
	if err != nil {
		return false, err
	}
	return r.EvaluatePredicate(b, pred)
}

// Intersects reports whether a and b have any point in common.
func Intersects(a, b geom.Geom, opts ...Option) (bool, error) {
	return RelatePredicate(a, b, IntersectsPredicate(), opts...)
}

// Disjoint reports whether a and b have no point in common.
func Disjoint(a, b geom.Geom, opts ...Option) (bool, error) {
	return RelatePredicate(a, b, DisjointPredicate(), opts...)
}

// Contains reports whether b lies in a, with some point of b in the
// interior of a.
func Contains(a, b geom.Geom, opts ...Option) (bool, error) {
	return RelatePredicate(a, b, ContainsPredicate(), opts...)
}

// Within reports whether a lies in b, with some point of a in the
// interior of b.
func Within(a, b geom.Geom, opts ...Option) (bool, error) {
	return RelatePredicate(a, b, WithinPredicate(), opts...)
}

// Covers reports whether every point of b is a point of a.
func Covers(a, b geom.Geom, opts ...Option) (bool, error) {
	return RelatePredicate(a, b, CoversPredicate(), opts...)
}

// CoveredBy reports whether every point of a is a point of b.
func CoveredBy(a, b geom.Geom, opts ...Option) (bool, error) {
	return RelatePredicate(a, b, CoveredByPredicate(), opts...)
}

// Crosses reports whether a and b cross per the OGC definition.
func Crosses(a, b geom.Geom, opts ...Option) (bool, error) {
	return RelatePredicate(a, b, CrossesPredicate(), opts...)
}

// Overlaps reports whether a and b overlap: equal dimension,
// interiors intersect, and each has points outside the other.
func Overlaps(a, b geom.Geom, opts ...Option) (bool, error) {
	return RelatePredicate(a, b, OverlapsPredicate(), opts...)
}

// Touches reports whether a and b touch only on boundaries.
func Touches(a, b geom.Geom, opts ...Option) (bool, error) {
	return RelatePredicate(a, b, TouchesPredicate(), opts...)
}

// EqualsTopo reports whether a and b are topologically equal.
func EqualsTopo(a, b geom.Geom, opts ...Option) (bool, error) {
	return RelatePredicate(a, b, EqualsTopoPredicate(), opts...)
}

// Evaluate computes the full DE-9IM matrix against b.
func (r *RelateNG) Evaluate(b geom.Geom) (*IntersectionMatrix, error) {
	pred := newRelateMatrixPredicate()
	if _, err := r.evaluate(b, pred); err != nil {
		return nil, err
	}
	return pred.matrix(), nil
}

// EvaluatePattern matches the relationship with b against a DE-9IM
// pattern.
func (r *RelateNG) EvaluatePattern(b geom.Geom, pattern string) (bool, error) {
	pred, err := PatternPredicate(pattern)
	if err != nil {
		return false, err
	}
	return r.evaluate(b, pred)
}

// EvaluatePredicate evaluates a topology predicate against b. A
// predicate instance accumulates state and must not be reused across
// evaluations.
func (r *RelateNG) EvaluatePredicate(b geom.Geom, pred TopologyPredicate) (bool, error) {
	return r.evaluate(b, pred)
}

func (r *RelateNG) evaluate(b geom.Geom, predicate TopologyPredicate) (bool, error) {
	geomB, err := newRelateGeometry(b, false, r.bnRule, r.log)
	if err != nil {
		return false, err
	}
	// fast envelope checks
	if !r.hasRequiredEnvelopeInteraction(geomB, predicate) {
		r.log.Debug("relate: envelope pre-filter decided predicate",
			zap.String("predicate", predicate.Name()))
		return false, nil
	}
	// check whether the predicate is determined by dimensions or
	// envelopes alone
	predicate.Init(r.geomA.dimensionReal(), geomB.dimensionReal())
	if predicate.IsKnown() {
		return finishValue(predicate), nil
	}
	predicate.InitEnv(r.geomA.envelope(), geomB.envelope())
	if predicate.IsKnown() {
		return finishValue(predicate), nil
	}

	tc := newTopologyComputer(predicate, r.geomA, geomB, r.log)
	if tc.getDimension(true) == DimP && tc.getDimension(false) == DimP {
		r.computePP(geomB, tc)
	} else {
		// test points against the (potentially indexed) prepared
		// geometry first
		r.computeAtPoints(geomB, false, r.geomA, tc)
		if !tc.isResultKnown() {
			r.computeAtPoints(r.geomA, true, geomB, tc)
		}
		if !tc.isResultKnown() {
			r.computeAtEdges(geomB, tc)
		}
	}
	tc.finish()
	return tc.getResult(), nil
}

func finishValue(predicate TopologyPredicate) bool {
	predicate.Finish()
	return predicate.Value()
}

func (r *RelateNG) hasRequiredEnvelopeInteraction(geomB *RelateGeometry, predicate TopologyPredicate) bool {
	envA := r.geomA.envelope()
	envB := geomB.envelope()
	isInteracts := false
	if predicate.RequireCovers(true) {
		if !envCovers(envA, envB) {
			return false
		}
		isInteracts = true
	} else if predicate.RequireCovers(false) {
		if !envCovers(envB, envA) {
			return false
		}
		isInteracts = true
	}
	if !isInteracts && predicate.RequireInteraction() && !envOverlaps(envA, envB) {
		return false
	}
	return true
}

// computePP is the optimized point/point evaluation over the unique
// coordinate sets.
func (r *RelateNG) computePP(geomB *RelateGeometry, tc *topologyComputer) {
	ptsA := r.geomA.getUniquePoints()
	ptsB := geomB.getUniquePoints()
	numBinA := 0
	for ptB := range ptsB {
		if _, ok := ptsA[ptB]; ok {
			numBinA++
			tc.addPointOnPointInterior()
		} else {
			tc.addPointOnPointExterior(false)
		}
		if tc.isResultKnown() {
			return
		}
	}
	// if fewer B points matched than A has, some A point must lie in
	// the exterior of B
	if numBinA < len(ptsA) {
		tc.addPointOnPointExterior(true)
	}
}

func (r *RelateNG) computeAtPoints(geomSrc *RelateGeometry, isA bool, target *RelateGeometry, tc *topologyComputer) {
	if r.computePoints(geomSrc, isA, target, tc) {
		return
	}
	// Only check further points against the target if it has areas,
	// or the predicate needs exterior interactions. Line ends against
	// lines are found during segment intersection anyway, but a line
	// lying wholly inside an area produces no segment intersections,
	// so areas must be probed here.
	checkDisjointPoints := target.hasDimension(DimA) || tc.isExteriorCheckRequired(isA)
	if !checkDisjointPoints {
		return
	}
	if r.computeLineEnds(geomSrc, isA, target, tc) {
		return
	}
	r.computeAreaVertexes(geomSrc, isA, target, tc)
}

func (r *RelateNG) computePoints(geomSrc *RelateGeometry, isA bool, target *RelateGeometry, tc *topologyComputer) bool {
	if !geomSrc.hasDimension(DimP) {
		return false
	}
	for _, pt := range geomSrc.effectivePoints() {
		r.computePoint(isA, pt, target, tc)
		if tc.isResultKnown() {
			return true
		}
	}
	return false
}

func (r *RelateNG) computePoint(isA bool, pt geom.Point, target *RelateGeometry, tc *topologyComputer) {
	locDimTarget := target.locateWithDim(pt)
	locTarget := dimLocLocation(locDimTarget)
	dimTarget := dimLocDimensionExt(locDimTarget, tc.getDimension(!isA))
	tc.addPointOnGeometry(isA, locTarget, dimTarget)
}

func (r *RelateNG) computeLineEnds(geomSrc *RelateGeometry, isA bool, target *RelateGeometry, tc *topologyComputer) bool {
	if !geomSrc.hasDimension(DimL) {
		return false
	}
	hasExteriorIntersection := false
	for _, le := range geomSrc.lines {
		// once an exterior intersection is recorded, lines disjoint
		// from the target add nothing further
		if hasExteriorIntersection && !envOverlaps(le.env, target.envelope()) {
			continue
		}
		pts := le.pts
		if r.computeLineEnd(geomSrc, isA, pts[0], target, tc, &hasExteriorIntersection) {
			return true
		}
		isClosed := len(pts) > 1 && pts[0] == pts[len(pts)-1]
		if !isClosed {
			if r.computeLineEnd(geomSrc, isA, pts[len(pts)-1], target, tc, &hasExteriorIntersection) {
				return true
			}
		}
	}
	return false
}

func (r *RelateNG) computeLineEnd(geomSrc *RelateGeometry, isA bool, pt geom.Point, target *RelateGeometry, tc *topologyComputer, hasExteriorIntersection *bool) bool {
	locDimLineEnd := geomSrc.locateLineEndWithDim(pt)
	dimLineEnd := dimLocDimensionExt(locDimLineEnd, tc.getDimension(isA))
	// skip line ends which lie inside an area of a collection
	if dimLineEnd != DimL {
		return false
	}
	locLineEnd := dimLocLocation(locDimLineEnd)
	locDimTarget := target.locateWithDim(pt)
	locTarget := dimLocLocation(locDimTarget)
	dimTarget := dimLocDimensionExt(locDimTarget, tc.getDimension(!isA))
	if locTarget == Exterior {
		*hasExteriorIntersection = true
	}
	tc.addLineEndOnGeometry(isA, locLineEnd, locTarget, dimTarget)
	return tc.isResultKnown()
}

func (r *RelateNG) computeAreaVertexes(geomSrc *RelateGeometry, isA bool, target *RelateGeometry, tc *topologyComputer) {
	if !geomSrc.hasDimension(DimA) {
		return
	}
	// point targets are handled in the reverse direction
	if target.dimension() < DimL {
		return
	}
	hasExteriorIntersection := false
	for _, ae := range geomSrc.areas {
		if hasExteriorIntersection && !envOverlaps(ae.env, target.envelope()) {
			continue
		}
		for _, poly := range ae.polys {
			for _, ring := range poly {
				if len(ring) == 0 {
					continue
				}
				pt := ring[0]
				locArea := geomSrc.locateAreaVertex(pt)
				locDimTarget := target.locateWithDim(pt)
				locTarget := dimLocLocation(locDimTarget)
				dimTarget := dimLocDimensionExt(locDimTarget, tc.getDimension(!isA))
				if locTarget == Exterior {
					hasExteriorIntersection = true
				}
				tc.addAreaVertex(isA, locArea, locTarget, dimTarget)
				if tc.isResultKnown() {
					return
				}
			}
		}
	}
}

func (r *RelateNG) computeAtEdges(geomB *RelateGeometry, tc *topologyComputer) {
	envInt := envIntersection(r.geomA.envelope(), geomB.envelope())
	if envInt == nil {
		return
	}
	edgesB := geomB.extractSegmentStrings(false, envInt)
	si := &edgeSegmentIntersector{tc: tc}
	if tc.isSelfNodingRequired() {
		// cross A and B edges and detect self-intersections in one
		// pass, so that self-noding and mutual noding agree on node
		// locations
		edgesA := r.geomA.extractSegmentStrings(true, envInt)
		newEdgeSetIntersector(edgesA, edgesB, envInt).process(si)
	} else if r.prepared {
		if r.mutual == nil {
			edgesA := r.geomA.extractSegmentStrings(true, nil)
			r.mutual = newMutualIntersector(edgesA, nil)
		}
		r.mutual.process(edgesB, si)
	} else {
		edgesA := r.geomA.extractSegmentStrings(true, envInt)
		newMutualIntersector(edgesA, envInt).process(edgesB, si)
	}
	if tc.isResultKnown() {
		return
	}
	tc.evaluateNodes()
}
