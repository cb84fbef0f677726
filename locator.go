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

// linearBoundary records the endpoint degree of the lineal elements
// of a geometry and classifies endpoints through the boundary node
// rule.
type linearBoundary struct {
	vertexDegree map[geom.Point]int
	hasBdy       bool
	rule         BoundaryNodeRule
}

func newLinearBoundary(lines []*lineElement, rule BoundaryNodeRule) *linearBoundary {
	lb := &linearBoundary{
		vertexDegree: make(map[geom.Point]int),
		rule:         rule,
	}
	for _, le := range lines {
		lb.addEndpoint(le.pts[0])
		lb.addEndpoint(le.pts[len(le.pts)-1])
	}
	for _, degree := range lb.vertexDegree {
		if rule.IsInBoundary(degree) {
			lb.hasBdy = true
			break
		}
	}
	return lb
}

func (lb *linearBoundary) addEndpoint(p geom.Point) {
	lb.vertexDegree[p]++
}

func (lb *linearBoundary) hasBoundary() bool { return lb.hasBdy }

func (lb *linearBoundary) isBoundary(p geom.Point) bool {
	degree, ok := lb.vertexDegree[p]
	if !ok {
		return false
	}
	return lb.rule.IsInBoundary(degree)
}

// relatePointLocator locates a point relative to all the elements of
// a geometry, reporting the (dimension, location) of the
// highest-dimensional element containing it.
type relatePointLocator struct {
	isEmpty       bool
	polygonalOnly bool
	points        map[geom.Point]struct{}
	lines         []*lineElement
	areas         []*areaElement
	lineBoundary  *linearBoundary
	adjEdge       *adjacentEdgeLocator
}

func newRelatePointLocator(rg *RelateGeometry) *relatePointLocator {
	l := &relatePointLocator{
		isEmpty: rg.empty,
		lines:   rg.lines,
		areas:   rg.areas,
	}
	switch rg.g.(type) {
	case geom.Polygon, geom.MultiPolygon:
		l.polygonalOnly = true
	}
	if len(rg.points) > 0 {
		l.points = make(map[geom.Point]struct{}, len(rg.points))
		for _, p := range rg.points {
			l.points[p] = struct{}{}
		}
	}
	if len(l.lines) > 0 {
		l.lineBoundary = newLinearBoundary(l.lines, rg.bnRule)
	}
	return l
}

func (l *relatePointLocator) hasBoundary() bool {
	return l.lineBoundary != nil && l.lineBoundary.hasBoundary()
}

func (l *relatePointLocator) locateWithDim(p geom.Point) int {
	return l.locateDim(p, false, nil)
}

func (l *relatePointLocator) locateNodeWithDim(p geom.Point, parentPolygonal *areaElement) int {
	return l.locateDim(p, true, parentPolygonal)
}

func (l *relatePointLocator) locateDim(p geom.Point, isNode bool, parentPolygonal *areaElement) int {
	if l.isEmpty {
		return dimLocExterior
	}
	// In a polygonal geometry every node lies on the boundary. This
	// is not so for a mixed collection, where a node may be in the
	// interior of another polygon.
	if isNode && l.polygonalOnly {
		return dimLocAreaBoundary
	}
	return l.computeDimLocation(p, isNode, parentPolygonal)
}

// computeDimLocation checks the element classes in order of
// decreasing dimension, returning the first hit.
func (l *relatePointLocator) computeDimLocation(p geom.Point, isNode bool, parentPolygonal *areaElement) int {
	if len(l.areas) > 0 {
		if loc := l.locateOnPolygons(p, isNode, parentPolygonal); loc != Exterior {
			return dimLocForArea(loc)
		}
	}
	if len(l.lines) > 0 {
		if loc := l.locateOnLines(p); loc != Exterior {
			return dimLocForLine(loc)
		}
	}
	if l.points != nil {
		if loc := l.locateOnPoints(p); loc != Exterior {
			return dimLocForPoint(loc)
		}
	}
	return dimLocExterior
}

// locateLineEnd classifies a line endpoint purely through the
// boundary node rule.
func (l *relatePointLocator) locateLineEnd(p geom.Point) Location {
	if l.lineBoundary != nil && l.lineBoundary.isBoundary(p) {
		return Boundary
	}
	return Interior
}

// locateLineEndWithDim classifies a line endpoint, allowing for the
// end lying inside a polygon of a mixed collection.
func (l *relatePointLocator) locateLineEndWithDim(p geom.Point) int {
	if len(l.areas) > 0 {
		if loc := l.locateOnPolygons(p, false, nil); loc != Exterior {
			return dimLocForArea(loc)
		}
	}
	return dimLocForLine(l.locateLineEnd(p))
}

func (l *relatePointLocator) locateOnPoints(p geom.Point) Location {
	if _, ok := l.points[p]; ok {
		return Interior
	}
	return Exterior
}

func (l *relatePointLocator) locateOnLines(p geom.Point) Location {
	if l.lineBoundary != nil && l.lineBoundary.isBoundary(p) {
		return Boundary
	}
	// not a boundary point, so any line containing it does so in the
	// interior
	for _, le := range l.lines {
		if !envContainsPoint(le.env, p) {
			continue
		}
		if isPointOnLine(p, le.pts) {
			return Interior
		}
	}
	return Exterior
}

func (l *relatePointLocator) locateOnPolygons(p geom.Point, isNode bool, parentPolygonal *areaElement) Location {
	numBdy := 0
	// all elements must be checked, since they may overlap
	for _, ae := range l.areas {
		loc := l.locateOnPolygonal(p, isNode, parentPolygonal, ae)
		if loc == Interior {
			return Interior
		}
		if loc == Boundary {
			numBdy++
		}
	}
	if numBdy == 1 {
		return Boundary
	}
	if numBdy > 1 {
		// on the boundary of several polygons: adjacent edges decide
		// whether the point is surrounded by interior
		if l.adjEdge == nil {
			l.adjEdge = newAdjacentEdgeLocator(l.areas)
		}
		return l.adjEdge.locate(p)
	}
	return Exterior
}

func (l *relatePointLocator) locateOnPolygonal(p geom.Point, isNode bool, parentPolygonal *areaElement, ae *areaElement) Location {
	if isNode && parentPolygonal == ae {
		return Boundary
	}
	if !envContainsPoint(ae.env, p) {
		return Exterior
	}
	switch p.Within(ae.polygonal) {
	case geom.Inside:
		return Interior
	case geom.OnEdge:
		return Boundary
	}
	return Exterior
}

// adjacentEdgeLocator determines whether a point lying on the
// boundaries of two or more polygon elements is effectively in the
// interior (the polygons fully surround it) or on the boundary of the
// union.
type adjacentEdgeLocator struct {
	rings [][]geom.Point
}

func newAdjacentEdgeLocator(areas []*areaElement) *adjacentEdgeLocator {
	a := &adjacentEdgeLocator{}
	for _, ae := range areas {
		for _, poly := range ae.polys {
			for ringID, ring := range poly {
				if len(ring) == 0 {
					continue
				}
				a.rings = append(a.rings, conditionRing(ring, ringID == 0))
			}
		}
	}
	return a
}

func (a *adjacentEdgeLocator) locate(p geom.Point) Location {
	sections := newNodeSections(p)
	for _, ring := range a.rings {
		a.addSections(p, ring, sections)
	}
	if len(sections.sections) == 0 {
		return Boundary
	}
	node := sections.createNode()
	if node.hasExteriorEdge(true) {
		return Boundary
	}
	return Interior
}

func (a *adjacentEdgeLocator) addSections(p geom.Point, ring []geom.Point, sections *nodeSections) {
	for i := 0; i < len(ring)-1; i++ {
		p0 := ring[i]
		pnext := ring[i+1]
		if p == pnext {
			// segment is processed at its start vertex
			continue
		}
		if p == p0 {
			iprev := i - 1
			if iprev < 0 {
				iprev = len(ring) - 2
			}
			sections.add(a.createSection(p, ring[iprev], pnext))
		} else if pointOnSegment(p, p0, pnext) {
			sections.add(a.createSection(p, p0, pnext))
		}
	}
}

func (a *adjacentEdgeLocator) createSection(p, prev, next geom.Point) *nodeSection {
	pv := prev
	nv := next
	return &nodeSection{
		isA:    true,
		dim:    DimA,
		id:     1,
		ringID: 0,
		nodePt: p,
		v0:     &pv,
		v1:     &nv,
	}
}
