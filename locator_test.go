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
	"go.uber.org/zap"
)

func locatorFor(t *testing.T, g geom.Geom, rule BoundaryNodeRule) *relatePointLocator {
	t.Helper()
	rg, err := newRelateGeometry(g, false, rule, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	return rg.getLocator()
}

func TestLocatePolygonWithHole(t *testing.T) {
	poly := geom.Polygon{
		{xy(0, 0), xy(10, 0), xy(10, 10), xy(0, 10), xy(0, 0)},
		{xy(2, 2), xy(2, 4), xy(4, 4), xy(4, 2), xy(2, 2)},
	}
	l := locatorFor(t, poly, BoundaryRuleMod2)
	cases := []struct {
		p    geom.Point
		want int
	}{
		{xy(5, 5), dimLocAreaInterior},
		{xy(0, 5), dimLocAreaBoundary},
		{xy(0, 0), dimLocAreaBoundary},
		{xy(3, 3), dimLocExterior},     // inside the hole
		{xy(2, 3), dimLocAreaBoundary}, // on the hole boundary
		{xy(-1, -1), dimLocExterior},
	}
	for _, c := range cases {
		if have := l.locateWithDim(c.p); have != c.want {
			t.Errorf("locateWithDim(%v): want %d but have %d", c.p, c.want, have)
		}
	}
}

func TestLocateLine(t *testing.T) {
	line := geom.LineString{xy(0, 0), xy(2, 2), xy(4, 0)}
	l := locatorFor(t, line, BoundaryRuleMod2)
	cases := []struct {
		p    geom.Point
		want int
	}{
		{xy(0, 0), dimLocLineBoundary},
		{xy(4, 0), dimLocLineBoundary},
		{xy(1, 1), dimLocLineInterior},
		{xy(2, 2), dimLocLineInterior},
		{xy(2, 0), dimLocExterior},
	}
	for _, c := range cases {
		if have := l.locateWithDim(c.p); have != c.want {
			t.Errorf("locateWithDim(%v): want %d but have %d", c.p, c.want, have)
		}
	}
}

func TestLocateClosedLineBoundaryRules(t *testing.T) {
	// a closed line has no boundary under Mod2, but its endpoint is a
	// boundary point under the Endpoint rule
	ring := geom.LineString{xy(0, 0), xy(4, 0), xy(4, 4), xy(0, 4), xy(0, 0)}

	mod2 := locatorFor(t, ring, BoundaryRuleMod2)
	if have := mod2.locateWithDim(xy(0, 0)); have != dimLocLineInterior {
		t.Errorf("mod2 closed line endpoint: want interior code %d but have %d",
			dimLocLineInterior, have)
	}
	if mod2.hasBoundary() {
		t.Error("mod2 closed line: want no boundary but have one")
	}

	endpoint := locatorFor(t, ring, BoundaryRuleEndpoint)
	if have := endpoint.locateWithDim(xy(0, 0)); have != dimLocLineBoundary {
		t.Errorf("endpoint-rule closed line endpoint: want boundary code %d but have %d",
			dimLocLineBoundary, have)
	}
	if !endpoint.hasBoundary() {
		t.Error("endpoint-rule closed line: want boundary but have none")
	}
}

func TestLocateThreeArmStar(t *testing.T) {
	// three line ends meet at (1, 1): boundary under Mod2 (odd),
	// Endpoint and MultivalentEndpoint (degree > 1), interior under
	// MonovalentEndpoint (degree != 1)
	star := geom.MultiLineString{
		{xy(0, 0), xy(1, 1)},
		{xy(1, 1), xy(2, 0)},
		{xy(1, 1), xy(1, 2)},
	}
	cases := []struct {
		rule BoundaryNodeRule
		want int
	}{
		{BoundaryRuleMod2, dimLocLineBoundary},
		{BoundaryRuleEndpoint, dimLocLineBoundary},
		{BoundaryRuleMultivalentEndpoint, dimLocLineBoundary},
		{BoundaryRuleMonovalentEndpoint, dimLocLineInterior},
	}
	for _, c := range cases {
		l := locatorFor(t, star, c.rule)
		if have := l.locateWithDim(xy(1, 1)); have != c.want {
			t.Errorf("rule %T: want %d but have %d", c.rule, c.want, have)
		}
	}
}

func TestLocateMixedCollectionPrecedence(t *testing.T) {
	// the highest-dimensional element containing the point wins
	gc := geom.GeometryCollection{
		xy(5, 5),
		geom.LineString{xy(0, 5), xy(10, 5)},
		geom.Polygon{{xy(0, 0), xy(10, 0), xy(10, 10), xy(0, 10), xy(0, 0)}},
	}
	l := locatorFor(t, gc, BoundaryRuleMod2)
	// (5,5) is a point element, on the line, and in the area interior
	if have := l.locateWithDim(xy(5, 5)); have != dimLocAreaInterior {
		t.Errorf("point on all elements: want %d but have %d", dimLocAreaInterior, have)
	}
	// (0,5) is a line end on the area boundary
	if have := l.locateWithDim(xy(0, 5)); have != dimLocAreaBoundary {
		t.Errorf("line end on area boundary: want %d but have %d", dimLocAreaBoundary, have)
	}
}

func TestLocateNodePolygonalShortcut(t *testing.T) {
	poly := geom.Polygon{{xy(0, 0), xy(10, 0), xy(10, 10), xy(0, 10), xy(0, 0)}}
	l := locatorFor(t, poly, BoundaryRuleMod2)
	// in a purely polygonal geometry a node is always on the boundary
	if have := l.locateNodeWithDim(xy(5, 5), nil); have != dimLocAreaBoundary {
		t.Errorf("polygonal node: want %d but have %d", dimLocAreaBoundary, have)
	}
}

func TestLocateAdjacentPolygons(t *testing.T) {
	// two polygons of a collection sharing the edge x=1: a point on
	// the shared edge is interior to the union, a point on the outer
	// rim is boundary
	gc := geom.GeometryCollection{
		geom.Polygon{{xy(0, 0), xy(1, 0), xy(1, 1), xy(0, 1), xy(0, 0)}},
		geom.Polygon{{xy(1, 0), xy(2, 0), xy(2, 1), xy(1, 1), xy(1, 0)}},
	}
	l := locatorFor(t, gc, BoundaryRuleMod2)
	if have := l.locateWithDim(xy(1, 0.5)); have != dimLocAreaInterior {
		t.Errorf("shared edge point: want %d but have %d", dimLocAreaInterior, have)
	}
	if have := l.locateWithDim(xy(0.5, 0)); have != dimLocAreaBoundary {
		t.Errorf("outer rim point: want %d but have %d", dimLocAreaBoundary, have)
	}
	if have := l.locateWithDim(xy(0.5, 0.5)); have != dimLocAreaInterior {
		t.Errorf("interior point: want %d but have %d", dimLocAreaInterior, have)
	}
}

func TestLocateLineEnd(t *testing.T) {
	line := geom.LineString{xy(0, 0), xy(2, 2)}
	l := locatorFor(t, line, BoundaryRuleMod2)
	if have := l.locateLineEndWithDim(xy(0, 0)); have != dimLocLineBoundary {
		t.Errorf("line end: want %d but have %d", dimLocLineBoundary, have)
	}
	if have := l.locateLineEndWithDim(xy(1, 1)); have != dimLocLineInterior {
		t.Errorf("line interior: want %d but have %d", dimLocLineInterior, have)
	}

	// a line end lying inside a collection polygon is covered by it
	gc := geom.GeometryCollection{
		geom.LineString{xy(5, 5), xy(20, 20)},
		geom.Polygon{{xy(0, 0), xy(10, 0), xy(10, 10), xy(0, 10), xy(0, 0)}},
	}
	lc := locatorFor(t, gc, BoundaryRuleMod2)
	if have := lc.locateLineEndWithDim(xy(5, 5)); have != dimLocAreaInterior {
		t.Errorf("line end in collection area: want %d but have %d", dimLocAreaInterior, have)
	}
}
