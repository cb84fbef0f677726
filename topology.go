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

// topologyComputer drives the topology evaluation for one relate
// call. It accumulates node sections at intersection points, applies
// direct incidence updates found by the point locators, and streams
// every dimension update into the predicate, which owns the matrix
// state and decides when the result is known.
type topologyComputer struct {
	predicate TopologyPredicate
	geomA     *RelateGeometry
	geomB     *RelateGeometry
	nodeMap   map[geom.Point]*nodeSections
	log       *zap.Logger
}

func newTopologyComputer(predicate TopologyPredicate, geomA, geomB *RelateGeometry, log *zap.Logger) *topologyComputer {
	tc := &topologyComputer{
		predicate: predicate,
		geomA:     geomA,
		geomB:     geomB,
		nodeMap:   make(map[geom.Point]*nodeSections),
		log:       log,
	}
	tc.initExteriorDims()
	return tc
}

func (tc *topologyComputer) getGeometry(isA bool) *RelateGeometry {
	if isA {
		return tc.geomA
	}
	return tc.geomB
}

func (tc *topologyComputer) getDimension(isA bool) Dimension {
	return tc.getGeometry(isA).dimension()
}

func (tc *topologyComputer) isAreaArea() bool {
	return tc.getDimension(true) == DimA && tc.getDimension(false) == DimA
}

// isSelfNodingRequired reports whether the inputs must be self-noded
// for the current predicate. Self-noding makes node locations match
// in situations where a self-crossing and a mutual crossing occur at
// the same logical location, e.g. a self-crossing line tested against
// a single segment identical to one of the crossed segments.
func (tc *topologyComputer) isSelfNodingRequired() bool {
	if !tc.predicate.RequireSelfNoding() {
		return false
	}
	return tc.geomA.isSelfNodingRequired() || tc.geomB.isSelfNodingRequired()
}

func (tc *topologyComputer) isExteriorCheckRequired(isA bool) bool {
	return tc.predicate.RequireExteriorCheck(isA)
}

func (tc *topologyComputer) isResultKnown() bool { return tc.predicate.IsKnown() }

func (tc *topologyComputer) getResult() bool { return tc.predicate.Value() }

func (tc *topologyComputer) finish() { tc.predicate.Finish() }

func (tc *topologyComputer) updateDim(locA, locB Location, dim Dimension) {
	tc.predicate.UpdateDimension(locA, locB, dim)
}

// updateDimAB applies an update given in (source, target) order for
// the input indicated by isAB.
func (tc *topologyComputer) updateDimAB(isAB bool, loc1, loc2 Location, dim Dimension) {
	if isAB {
		tc.updateDim(loc1, loc2, dim)
	} else {
		tc.updateDim(loc2, loc1, dim)
	}
}

// initExteriorDims records the a priori partial exterior topology
// implied by the effective dimensions: a lower-dimensional geometry
// can never cover a higher-dimensional one, so part of the
// higher-dimensional geometry always lies in the exterior of the
// lower one.
func (tc *topologyComputer) initExteriorDims() {
	dimRealA := tc.geomA.dimensionReal()
	dimRealB := tc.geomB.dimensionReal()
	switch {
	case dimRealA == DimP && dimRealB == DimL:
		tc.updateDim(Exterior, Interior, DimL)
	case dimRealA == DimL && dimRealB == DimP:
		tc.updateDim(Interior, Exterior, DimL)
	case dimRealA == DimP && dimRealB == DimA:
		tc.updateDim(Exterior, Interior, DimA)
		tc.updateDim(Exterior, Boundary, DimL)
	case dimRealA == DimA && dimRealB == DimP:
		tc.updateDim(Interior, Exterior, DimA)
		tc.updateDim(Boundary, Exterior, DimL)
	case dimRealA == DimL && dimRealB == DimA:
		tc.updateDim(Exterior, Interior, DimA)
	case dimRealA == DimA && dimRealB == DimL:
		tc.updateDim(Interior, Exterior, DimA)
	case dimRealA == DimFalse || dimRealB == DimFalse:
		if dimRealA != DimFalse {
			tc.initExteriorEmpty(true)
		}
		if dimRealB != DimFalse {
			tc.initExteriorEmpty(false)
		}
	}
}

// initExteriorEmpty fills the exterior interactions of the non-empty
// input when the other input is empty.
func (tc *topologyComputer) initExteriorEmpty(geomNonEmpty bool) {
	switch tc.getGeometry(geomNonEmpty).dimensionReal() {
	case DimP:
		tc.updateDimAB(geomNonEmpty, Interior, Exterior, DimP)
	case DimL:
		if tc.getGeometry(geomNonEmpty).hasBoundary() {
			tc.updateDimAB(geomNonEmpty, Boundary, Exterior, DimP)
		}
		tc.updateDimAB(geomNonEmpty, Interior, Exterior, DimL)
	case DimA:
		tc.updateDimAB(geomNonEmpty, Boundary, Exterior, DimL)
		tc.updateDimAB(geomNonEmpty, Interior, Exterior, DimA)
	}
}

// addIntersection records an intersection found during noding. For a
// mutual (A/B) intersection the crossing topology is computed
// directly; all sections are queued so that full node topology can be
// evaluated later.
func (tc *topologyComputer) addIntersection(a, b *nodeSection) {
	if !a.isSameGeometry(b) {
		tc.updateIntersectionAB(a, b)
	}
	tc.addNodeSections(a, b)
}

func (tc *topologyComputer) updateIntersectionAB(a, b *nodeSection) {
	if isAreaAreaPair(a, b) {
		tc.updateAreaAreaCross(a, b)
	}
	tc.updateNodeLocation(a, b)
}

// updateAreaAreaCross updates topology for an area/area crossing
// node. The ring edges cross if the intersection is proper, or if the
// linework passes through the node to opposite sides; in both cases
// the area interiors intersect with dimension 2.
func (tc *topologyComputer) updateAreaAreaCross(a, b *nodeSection) {
	if isProperPair(a, b) ||
		edgesCross(a.nodePt, *a.getVertex(0), *a.getVertex(1), *b.getVertex(0), *b.getVertex(1)) {
		tc.updateDim(Interior, Interior, DimA)
	}
}

func (tc *topologyComputer) updateNodeLocation(a, b *nodeSection) {
	pt := a.nodePt
	locA := tc.geomA.locateNode(pt, a.poly)
	locB := tc.geomB.locateNode(pt, b.poly)
	tc.updateDim(locA, locB, DimP)
}

func (tc *topologyComputer) addNodeSections(ns0, ns1 *nodeSection) {
	sections := tc.getNodeSections(ns0.nodePt)
	sections.add(ns0)
	sections.add(ns1)
}

func (tc *topologyComputer) getNodeSections(nodePt geom.Point) *nodeSections {
	sections, ok := tc.nodeMap[nodePt]
	if !ok {
		sections = newNodeSections(nodePt)
		tc.nodeMap[nodePt] = sections
	}
	return sections
}

func (tc *topologyComputer) addPointOnPointInterior() {
	tc.updateDim(Interior, Interior, DimP)
}

func (tc *topologyComputer) addPointOnPointExterior(isGeomA bool) {
	tc.updateDimAB(isGeomA, Interior, Exterior, DimP)
}

// addPointOnGeometry updates topology for a point element lying at
// the given location on the target geometry.
func (tc *topologyComputer) addPointOnGeometry(isPointA bool, locTarget Location, dimTarget Dimension) {
	tc.updateDimAB(isPointA, Interior, locTarget, DimP)
	if tc.getGeometry(!isPointA).isEmpty() {
		return
	}
	switch dimTarget {
	case DimL:
		// a point may or may not lie on a zero-length line, so
		// nothing further can be inferred here
	case DimA:
		// an area target always extends beyond a point, so its
		// interior and boundary interact with the point's exterior
		tc.updateDimAB(isPointA, Exterior, Interior, DimA)
		tc.updateDimAB(isPointA, Exterior, Boundary, DimL)
	}
}

// addLineEndOnGeometry updates topology for a line endpoint lying at
// the given location on the target geometry.
func (tc *topologyComputer) addLineEndOnGeometry(isLineA bool, locLineEnd, locTarget Location, dimTarget Dimension) {
	tc.updateDimAB(isLineA, locLineEnd, locTarget, DimP)
	switch dimTarget {
	case DimL:
		tc.addLineEndOnLine(isLineA, locLineEnd, locTarget)
	case DimA:
		tc.addLineEndOnArea(isLineA, locLineEnd, locTarget)
	}
}

func (tc *topologyComputer) addLineEndOnLine(isLineA bool, locLineEnd, locLine Location) {
	// When a line end is in the exterior of the target line, some
	// length of the line interior is as well. This holds for
	// zero-length lines too.
	if locLine == Exterior {
		tc.updateDimAB(isLineA, Interior, Exterior, DimL)
	}
}

func (tc *topologyComputer) addLineEndOnArea(isLineA bool, locLineEnd, locArea Location) {
	if locArea != Boundary {
		// a line end inside or outside an area carries a length of
		// the line interior, and the area extends beyond it
		tc.updateDimAB(isLineA, Interior, locArea, DimL)
		tc.updateDimAB(isLineA, Exterior, locArea, DimA)
	}
}

// addAreaVertex updates topology for an area vertex located on a
// target geometry element of the highest dimension containing it.
// In a GeometryCollection containing overlapping or adjacent
// polygons, the vertex location may be Interior instead of Boundary.
func (tc *topologyComputer) addAreaVertex(isAreaA bool, locArea, locTarget Location, dimTarget Dimension) {
	if locTarget == Exterior {
		tc.updateDimAB(isAreaA, Interior, Exterior, DimA)
		// if the vertex is on the boundary, the neighbourhood around
		// it determines more topology
		if locArea == Boundary {
			tc.updateDimAB(isAreaA, Boundary, Exterior, DimL)
			tc.updateDimAB(isAreaA, Exterior, Exterior, DimA)
		}
		return
	}
	switch dimTarget {
	case DimP:
		tc.addAreaVertexOnPoint(isAreaA, locArea)
	case DimL:
		tc.addAreaVertexOnLine(isAreaA, locArea, locTarget)
	case DimA:
		tc.addAreaVertexOnArea(isAreaA, locArea, locTarget)
	}
}

func (tc *topologyComputer) addAreaVertexOnPoint(isAreaA bool, locArea Location) {
	// the vertex location intersects the point
	tc.updateDimAB(isAreaA, locArea, Interior, DimP)
	// the area interior intersects the point's exterior neighbourhood
	tc.updateDimAB(isAreaA, Interior, Exterior, DimA)
	if locArea == Boundary {
		tc.updateDimAB(isAreaA, Boundary, Exterior, DimL)
		tc.updateDimAB(isAreaA, Exterior, Exterior, DimA)
	}
}

func (tc *topologyComputer) addAreaVertexOnLine(isAreaA bool, locArea, locTarget Location) {
	// All that is known is the interaction at the vertex itself: the
	// line may or may not be collinear with the area boundary, and
	// may or may not enter the interior. Full topology comes from
	// node analysis.
	tc.updateDimAB(isAreaA, locArea, locTarget, DimP)
	if locArea == Interior {
		tc.updateDimAB(isAreaA, Interior, Exterior, DimA)
	}
}

func (tc *topologyComputer) addAreaVertexOnArea(isAreaA bool, locArea, locTarget Location) {
	if locTarget == Boundary {
		if locArea == Boundary {
			// boundary/boundary topology is computed by node analysis
			tc.updateDimAB(isAreaA, Boundary, Boundary, DimP)
		} else {
			tc.updateDimAB(isAreaA, Interior, Interior, DimA)
			tc.updateDimAB(isAreaA, Interior, Boundary, DimL)
			tc.updateDimAB(isAreaA, Interior, Exterior, DimA)
		}
		return
	}
	// locTarget is Interior or Exterior
	tc.updateDimAB(isAreaA, Interior, locTarget, DimA)
	tc.updateDimAB(isAreaA, Boundary, locTarget, DimL)
	tc.updateDimAB(isAreaA, Exterior, locTarget, DimA)
}

// evaluateNodes computes the full topology at every node with an
// actual A/B interaction, stopping as soon as the predicate is
// decided.
func (tc *topologyComputer) evaluateNodes() {
	tc.log.Debug("evaluating intersection nodes", zap.Int("nodes", len(tc.nodeMap)))
	for _, sections := range tc.nodeMap {
		if !sections.hasInteractionAB() {
			continue
		}
		tc.evaluateNode(sections)
		if tc.isResultKnown() {
			return
		}
	}
}

func (tc *topologyComputer) evaluateNode(sections *nodeSections) {
	p := sections.pt
	node := sections.createNode()
	isAreaInteriorA := tc.geomA.isNodeInArea(p, sections.getPolygonal(true))
	isAreaInteriorB := tc.geomB.isNodeInArea(p, sections.getPolygonal(false))
	node.finish(isAreaInteriorA, isAreaInteriorB)
	tc.evaluateNodeEdges(node)
}

func (tc *topologyComputer) evaluateNodeEdges(node *relateNode) {
	for _, e := range node.edges {
		// side topology only matters for area/area interactions
		if tc.isAreaArea() {
			tc.updateDim(e.location(true, posLeft), e.location(false, posLeft), DimA)
			tc.updateDim(e.location(true, posRight), e.location(false, posRight), DimA)
		}
		tc.updateDim(e.location(true, posOn), e.location(false, posOn), DimL)
	}
}
