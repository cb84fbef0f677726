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
)

func xy(x, y float64) geom.Point { return geom.Point{X: x, Y: y} }

func TestOrientationIndex(t *testing.T) {
	cases := []struct {
		p1, p2, q geom.Point
		want      int
	}{
		{xy(0, 0), xy(1, 0), xy(0, 1), 1},
		{xy(0, 0), xy(1, 0), xy(0, -1), -1},
		{xy(0, 0), xy(1, 0), xy(2, 0), 0},
		{xy(0, 0), xy(2, 2), xy(1, 1), 0},
		{xy(1, 1), xy(2, 2), xy(2, 1), -1},
	}
	for _, c := range cases {
		if have := orientationIndex(c.p1, c.p2, c.q); have != c.want {
			t.Errorf("orientationIndex(%v, %v, %v): want %d but have %d",
				c.p1, c.p2, c.q, c.want, have)
		}
	}
	// symmetric under reversal of the segment
	if orientationIndex(xy(0, 0), xy(1, 0), xy(0, 1)) !=
		-orientationIndex(xy(1, 0), xy(0, 0), xy(0, 1)) {
		t.Error("orientation not antisymmetric under segment reversal")
	}
}

func TestIsCCW(t *testing.T) {
	ccw := []geom.Point{xy(0, 0), xy(2, 0), xy(2, 2), xy(0, 2), xy(0, 0)}
	if !isCCW(ccw) {
		t.Error("counterclockwise ring: want true but have false")
	}
	cw := []geom.Point{xy(0, 0), xy(0, 2), xy(2, 2), xy(2, 0), xy(0, 0)}
	if isCCW(cw) {
		t.Error("clockwise ring: want false but have true")
	}
	// unclosed ring is closed implicitly
	open := []geom.Point{xy(0, 0), xy(2, 0), xy(2, 2), xy(0, 2)}
	if !isCCW(open) {
		t.Error("open counterclockwise ring: want true but have false")
	}
}

func TestPointOnSegment(t *testing.T) {
	if !pointOnSegment(xy(1, 1), xy(0, 0), xy(2, 2)) {
		t.Error("interior point: want true but have false")
	}
	if !pointOnSegment(xy(0, 0), xy(0, 0), xy(2, 2)) {
		t.Error("endpoint: want true but have false")
	}
	if pointOnSegment(xy(3, 3), xy(0, 0), xy(2, 2)) {
		t.Error("collinear point beyond segment: want false but have true")
	}
	if pointOnSegment(xy(1, 0), xy(0, 0), xy(2, 2)) {
		t.Error("off-line point: want false but have true")
	}
}

func TestIntersectSegmentsProper(t *testing.T) {
	r := intersectSegments(xy(0, 0), xy(2, 2), xy(0, 2), xy(2, 0))
	if r.kind != intPoint || r.n != 1 {
		t.Fatalf("crossing segments: want single point but have kind %d n %d", r.kind, r.n)
	}
	if !r.proper {
		t.Error("crossing segments: want proper but have non-proper")
	}
	if want := xy(1, 1); r.pts[0] != want {
		t.Errorf("intersection point: want %v but have %v", want, r.pts[0])
	}
}

func TestIntersectSegmentsEndpoint(t *testing.T) {
	r := intersectSegments(xy(0, 0), xy(1, 1), xy(1, 1), xy(2, 0))
	if r.kind != intPoint || r.n != 1 || r.proper {
		t.Fatalf("endpoint touch: want non-proper point but have %+v", r)
	}
	if want := xy(1, 1); r.pts[0] != want {
		t.Errorf("endpoint touch point: want %v but have %v", want, r.pts[0])
	}

	// endpoint of one segment interior to the other
	r = intersectSegments(xy(0, 0), xy(2, 0), xy(1, 0), xy(1, 2))
	if r.kind != intPoint || r.proper {
		t.Fatalf("T-touch: want non-proper point but have %+v", r)
	}
	if want := xy(1, 0); r.pts[0] != want {
		t.Errorf("T-touch point: want %v but have %v", want, r.pts[0])
	}
}

func TestIntersectSegmentsDisjoint(t *testing.T) {
	r := intersectSegments(xy(0, 0), xy(1, 0), xy(0, 1), xy(1, 1))
	if r.kind != intNone {
		t.Errorf("parallel disjoint: want none but have %+v", r)
	}
	r = intersectSegments(xy(0, 0), xy(1, 1), xy(3, 3), xy(4, 4))
	if r.kind != intNone {
		t.Errorf("collinear disjoint: want none but have %+v", r)
	}
}

func TestIntersectSegmentsCollinear(t *testing.T) {
	r := intersectSegments(xy(0, 0), xy(3, 0), xy(1, 0), xy(2, 0))
	if r.kind != intCollinear || r.n != 2 {
		t.Fatalf("contained overlap: want 2-point collinear but have %+v", r)
	}
	r = intersectSegments(xy(0, 0), xy(2, 0), xy(1, 0), xy(3, 0))
	if r.kind != intCollinear || r.n != 2 {
		t.Fatalf("partial overlap: want 2-point collinear but have %+v", r)
	}
	// end-to-end touch collapses to a single point
	r = intersectSegments(xy(0, 0), xy(1, 0), xy(1, 0), xy(2, 0))
	if r.kind != intPoint || r.n != 1 {
		t.Fatalf("end-to-end collinear: want single point but have %+v", r)
	}
	if want := xy(1, 0); r.pts[0] != want {
		t.Errorf("end-to-end point: want %v but have %v", want, r.pts[0])
	}
}

func TestIntersectSegmentsSwapStable(t *testing.T) {
	// classification is stable under swapping segment endpoints
	base := intersectSegments(xy(0, 0), xy(2, 2), xy(0, 2), xy(2, 0))
	swapped := intersectSegments(xy(2, 2), xy(0, 0), xy(2, 0), xy(0, 2))
	if base.kind != swapped.kind || base.proper != swapped.proper ||
		base.pts[0] != swapped.pts[0] {
		t.Errorf("swap instability: %+v vs %+v", base, swapped)
	}
}

func TestCompareAngle(t *testing.T) {
	origin := xy(0, 0)
	east := xy(1, 0)
	north := xy(0, 1)
	west := xy(-1, 0)
	south := xy(0, -1)
	// counterclockwise order from the positive x-axis
	order := []geom.Point{east, north, west, south}
	for i := 0; i < len(order); i++ {
		for j := 0; j < len(order); j++ {
			have := compareAngle(origin, order[i], order[j])
			want := 0
			if i < j {
				want = -1
			} else if i > j {
				want = 1
			}
			if have != want {
				t.Errorf("compareAngle(%v, %v): want %d but have %d",
					order[i], order[j], want, have)
			}
		}
	}
}

func TestEdgesCross(t *testing.T) {
	node := xy(1, 1)
	// a runs west-east, b runs south-north: they cross
	if !edgesCross(node, xy(0, 1), xy(2, 1), xy(1, 0), xy(1, 2)) {
		t.Error("perpendicular edges: want crossing but have none")
	}
	// both b edges on the same side of a: no crossing
	if edgesCross(node, xy(0, 1), xy(2, 1), xy(0, 2), xy(2, 2)) {
		t.Error("edges on one side: want no crossing but have one")
	}
}
