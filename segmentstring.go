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

// relateSegmentString is an ordered coordinate sequence from one
// input element: a LineString, or one ring of a polygon. It carries
// the element identity needed for topology bookkeeping at nodes.
type relateSegmentString struct {
	isA    bool
	dim    Dimension
	id     int
	ringID int // 0 = shell, i > 0 = i-th hole, -1 = line
	poly   *areaElement
	pts    []geom.Point
}

func newLineSegmentString(pts []geom.Point, isA bool, elementID int) *relateSegmentString {
	return &relateSegmentString{
		isA:    isA,
		dim:    DimL,
		id:     elementID,
		ringID: -1,
		pts:    pts,
	}
}

func newRingSegmentString(pts []geom.Point, isA bool, elementID, ringID int, poly *areaElement) *relateSegmentString {
	return &relateSegmentString{
		isA:    isA,
		dim:    DimA,
		id:     elementID,
		ringID: ringID,
		poly:   poly,
		pts:    pts,
	}
}

func (ss *relateSegmentString) size() int { return len(ss.pts) }

func (ss *relateSegmentString) coord(i int) geom.Point { return ss.pts[i] }

func (ss *relateSegmentString) isClosed() bool {
	return len(ss.pts) > 1 && ss.pts[0] == ss.pts[len(ss.pts)-1]
}

// createNodeSection captures the local geometry around an
// intersection point on segment segIndex: the previous and next
// vertices around the point, and whether the point is at a vertex.
func (ss *relateSegmentString) createNodeSection(segIndex int, intPt geom.Point) *nodeSection {
	isNodeAtVertex := intPt == ss.coord(segIndex) || intPt == ss.coord(segIndex+1)
	return &nodeSection{
		isA:            ss.isA,
		dim:            ss.dim,
		id:             ss.id,
		ringID:         ss.ringID,
		poly:           ss.poly,
		isNodeAtVertex: isNodeAtVertex,
		nodePt:         intPt,
		v0:             ss.prevVertex(segIndex, intPt),
		v1:             ss.nextVertex(segIndex, intPt),
	}
}

func (ss *relateSegmentString) prevVertex(segIndex int, pt geom.Point) *geom.Point {
	segStart := ss.coord(segIndex)
	if segStart != pt {
		return &segStart
	}
	// pt is at the segment start, so use the previous vertex
	if segIndex > 0 {
		v := ss.coord(segIndex - 1)
		return &v
	}
	if ss.isClosed() {
		v := ss.coord(ss.size() - 2)
		return &v
	}
	return nil
}

func (ss *relateSegmentString) nextVertex(segIndex int, pt geom.Point) *geom.Point {
	segEnd := ss.coord(segIndex + 1)
	if segEnd != pt {
		return &segEnd
	}
	// pt is at the segment end, so use the next vertex
	if segIndex < ss.size()-2 {
		v := ss.coord(segIndex + 2)
		return &v
	}
	if ss.isClosed() {
		v := ss.coord(1)
		return &v
	}
	// open segment string: no next segment
	return nil
}

// isContainingSegment reports whether an intersection at pt should be
// processed for the segment at segIndex. Vertex intersections are
// processed only once, at the canonical segment which starts at the
// vertex (or, for the final endpoint of an open string, ends at it).
func (ss *relateSegmentString) isContainingSegment(segIndex int, pt geom.Point) bool {
	if pt == ss.coord(segIndex) {
		return true
	}
	if pt == ss.coord(segIndex+1) {
		isFinalSegment := segIndex == ss.size()-2
		if ss.isClosed() || !isFinalSegment {
			return false
		}
		return true
	}
	// interior of the segment
	return true
}
