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

// Low-level geometric predicates: orientation, point-on-segment, and
// segment/segment intersection. The intersection classification is
// symmetric under swapping the endpoints of a segment and consistent
// with orientationIndex.

// orientationIndex returns +1 if q lies counterclockwise of the
// directed segment p1→p2, -1 if clockwise, 0 if collinear.
func orientationIndex(p1, p2, q geom.Point) int {
	det := (p2.X-p1.X)*(q.Y-p1.Y) - (p2.Y-p1.Y)*(q.X-p1.X)
	if det > 0 {
		return 1
	}
	if det < 0 {
		return -1
	}
	return 0
}

// isCCW reports whether a closed ring is oriented counterclockwise,
// by the sign of its signed area.
func isCCW(ring []geom.Point) bool {
	var area float64
	n := len(ring)
	if n < 3 {
		return false
	}
	for i := 0; i < n-1; i++ {
		area += ring[i].X*ring[i+1].Y - ring[i+1].X*ring[i].Y
	}
	// close implicitly if needed
	if ring[0] != ring[n-1] {
		area += ring[n-1].X*ring[0].Y - ring[0].X*ring[n-1].Y
	}
	return area > 0
}

// pointOnSegment reports whether q lies on the closed segment p0-p1.
func pointOnSegment(q, p0, p1 geom.Point) bool {
	if !envSegmentContains(p0, p1, q) {
		return false
	}
	return orientationIndex(p0, p1, q) == 0
}

// isPointOnLine reports whether q lies on any segment of pts.
func isPointOnLine(q geom.Point, pts []geom.Point) bool {
	for i := 0; i < len(pts)-1; i++ {
		if pointOnSegment(q, pts[i], pts[i+1]) {
			return true
		}
	}
	return false
}

// Segment intersection classification.
const (
	intNone = iota
	intPoint
	intCollinear
)

type segIntersection struct {
	kind   int
	n      int
	pts    [2]geom.Point
	proper bool
}

// intersectSegments computes the intersection of segments p1-p2 and
// q1-q2. A proper intersection is strictly interior to both segments.
// Collinear overlaps report their two extremal points (which collapse
// to a single point for an end-to-end touch).
func intersectSegments(p1, p2, q1, q2 geom.Point) segIntersection {
	if !envOverlaps(envOfSegment(p1, p2), envOfSegment(q1, q2)) {
		return segIntersection{kind: intNone}
	}

	pq1 := orientationIndex(p1, p2, q1)
	pq2 := orientationIndex(p1, p2, q2)
	if (pq1 > 0 && pq2 > 0) || (pq1 < 0 && pq2 < 0) {
		return segIntersection{kind: intNone}
	}
	qp1 := orientationIndex(q1, q2, p1)
	qp2 := orientationIndex(q1, q2, p2)
	if (qp1 > 0 && qp2 > 0) || (qp1 < 0 && qp2 < 0) {
		return segIntersection{kind: intNone}
	}

	if pq1 == 0 && pq2 == 0 && qp1 == 0 && qp2 == 0 {
		return collinearIntersection(p1, p2, q1, q2)
	}

	var pt geom.Point
	if pq1 == 0 || pq2 == 0 || qp1 == 0 || qp2 == 0 {
		// non-proper: the intersection is at a segment endpoint
		switch {
		case p1 == q1 || p1 == q2:
			pt = p1
		case p2 == q1 || p2 == q2:
			pt = p2
		case pq1 == 0:
			pt = q1
		case pq2 == 0:
			pt = q2
		case qp1 == 0:
			pt = p1
		default:
			pt = p2
		}
		return segIntersection{kind: intPoint, n: 1, pts: [2]geom.Point{pt, {}}}
	}

	pt = intersectionPoint(p1, p2, q1, q2)
	return segIntersection{kind: intPoint, n: 1, pts: [2]geom.Point{pt, {}}, proper: true}
}

// intersectionPoint computes the crossing point of two properly
// intersecting segments.
func intersectionPoint(p1, p2, q1, q2 geom.Point) geom.Point {
	px := p2.X - p1.X
	py := p2.Y - p1.Y
	qx := q2.X - q1.X
	qy := q2.Y - q1.Y
	denom := px*qy - py*qx
	t := ((q1.X-p1.X)*qy - (q1.Y-p1.Y)*qx) / denom
	return geom.Point{X: p1.X + t*px, Y: p1.Y + t*py}
}

func collinearIntersection(p1, p2, q1, q2 geom.Point) segIntersection {
	q1in := envSegmentContains(p1, p2, q1)
	q2in := envSegmentContains(p1, p2, q2)
	p1in := envSegmentContains(q1, q2, p1)
	p2in := envSegmentContains(q1, q2, p2)

	two := func(a, b geom.Point) segIntersection {
		if a == b {
			return segIntersection{kind: intPoint, n: 1, pts: [2]geom.Point{a, {}}}
		}
		return segIntersection{kind: intCollinear, n: 2, pts: [2]geom.Point{a, b}}
	}

	switch {
	case q1in && q2in:
		return two(q1, q2)
	case p1in && p2in:
		return two(p1, p2)
	case q1in && p1in:
		if q1 == p1 && !q2in && !p2in {
			return segIntersection{kind: intPoint, n: 1, pts: [2]geom.Point{q1, {}}}
		}
		return two(q1, p1)
	case q1in && p2in:
		if q1 == p2 && !q2in && !p1in {
			return segIntersection{kind: intPoint, n: 1, pts: [2]geom.Point{q1, {}}}
		}
		return two(q1, p2)
	case q2in && p1in:
		if q2 == p1 && !q1in && !p2in {
			return segIntersection{kind: intPoint, n: 1, pts: [2]geom.Point{q2, {}}}
		}
		return two(q2, p1)
	case q2in && p2in:
		if q2 == p2 && !q1in && !p1in {
			return segIntersection{kind: intPoint, n: 1, pts: [2]geom.Point{q2, {}}}
		}
		return two(q2, p2)
	}
	return segIntersection{kind: intNone}
}

// Angular predicates around a node, used to order and classify the
// edges incident on it. Vectors are compared by quadrant first and by
// orientation within a quadrant, so no trigonometry is involved.

const (
	quadNE = 0
	quadNW = 1
	quadSW = 2
	quadSE = 3
)

func quadrant(dx, dy float64) int {
	if dx >= 0 {
		if dy >= 0 {
			return quadNE
		}
		return quadSE
	}
	if dy >= 0 {
		return quadNW
	}
	return quadSW
}

func quadrantOf(origin, p geom.Point) int {
	return quadrant(p.X-origin.X, p.Y-origin.Y)
}

// compareAngle orders the vectors origin→p and origin→q by angle
// counterclockwise from the positive x-axis: -1 if p is less than q,
// 1 if greater, 0 if equal.
func compareAngle(origin, p, q geom.Point) int {
	quadrantP := quadrantOf(origin, p)
	quadrantQ := quadrantOf(origin, q)
	if quadrantP > quadrantQ {
		return 1
	}
	if quadrantP < quadrantQ {
		return -1
	}
	// within a quadrant, p is greater if it is counterclockwise of q
	return orientationIndex(origin, q, p)
}

func isAngleGreater(origin, p, q geom.Point) bool {
	return compareAngle(origin, p, q) > 0
}

// isBetween reports whether the vector origin→p lies in the
// counterclockwise sector from origin→e0 to origin→e1.
func isBetween(origin, p, e0, e1 geom.Point) bool {
	if !isAngleGreater(origin, p, e0) {
		return false
	}
	return !isAngleGreater(origin, p, e1)
}

// edgesCross reports whether edge pair (a0, a1) through nodePt is
// crossed by edge pair (b0, b1), i.e. b0 and b1 lie in opposite
// sectors determined by the a edges.
func edgesCross(nodePt, a0, a1, b0, b1 geom.Point) bool {
	aLo, aHi := a0, a1
	if isAngleGreater(nodePt, aLo, aHi) {
		aLo, aHi = aHi, aLo
	}
	isBetween0 := isBetween(nodePt, b0, aLo, aHi)
	isBetween1 := isBetween(nodePt, b1, aLo, aHi)
	return isBetween0 != isBetween1
}
