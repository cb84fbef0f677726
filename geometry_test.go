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
	"math"
	"testing"

	"github.com/ctessum/geom"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func mustRelateGeometry(t *testing.T, g geom.Geom) *RelateGeometry {
	t.Helper()
	rg, err := newRelateGeometry(g, false, BoundaryRuleMod2, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	return rg
}

func TestGeometryDimensions(t *testing.T) {
	cases := []struct {
		name    string
		g       geom.Geom
		dim     Dimension
		dimReal Dimension
		empty   bool
	}{
		{"point", xy(1, 1), DimP, DimP, false},
		{"multipoint", geom.MultiPoint{xy(1, 1), xy(2, 2)}, DimP, DimP, false},
		{"line", geom.LineString{xy(0, 0), xy(1, 1)}, DimL, DimL, false},
		{"zero length line", geom.LineString{xy(1, 1), xy(1, 1)}, DimL, DimP, false},
		{"zero length line many vertices", geom.LineString{xy(1, 1), xy(1, 1), xy(1, 1)}, DimL, DimP, false},
		{"almost zero length line", geom.LineString{xy(1, 1), xy(1, 1), xy(2, 2)}, DimL, DimL, false},
		{"polygon", geom.Polygon{{xy(0, 0), xy(1, 0), xy(1, 1)}}, DimA, DimA, false},
		{"empty line", geom.LineString{}, DimFalse, DimFalse, true},
		{"empty collection", geom.GeometryCollection{}, DimFalse, DimFalse, true},
		{"mixed collection", geom.GeometryCollection{
			xy(5, 5),
			geom.LineString{xy(0, 0), xy(1, 1)},
		}, DimL, DimL, false},
		{"collection with area", geom.GeometryCollection{
			geom.LineString{xy(0, 0), xy(1, 1)},
			geom.Polygon{{xy(0, 0), xy(1, 0), xy(1, 1)}},
		}, DimA, DimA, false},
	}
	for _, c := range cases {
		rg := mustRelateGeometry(t, c.g)
		if have := rg.dimension(); have != c.dim {
			t.Errorf("%s: dimension: want %v but have %v", c.name, c.dim, have)
		}
		if have := rg.dimensionReal(); have != c.dimReal {
			t.Errorf("%s: dimensionReal: want %v but have %v", c.name, c.dimReal, have)
		}
		if have := rg.isEmpty(); have != c.empty {
			t.Errorf("%s: isEmpty: want %v but have %v", c.name, c.empty, have)
		}
	}
}

func TestGeometryValidation(t *testing.T) {
	nan := math.NaN()
	if _, err := newRelateGeometry(geom.LineString{xy(0, 0), xy(nan, 1)}, false, BoundaryRuleMod2, zap.NewNop()); errors.Cause(err) != ErrInvalidGeometry {
		t.Errorf("NaN ordinate: want ErrInvalidGeometry but have %v", err)
	}
	inf := math.Inf(1)
	if _, err := newRelateGeometry(geom.MultiPoint{xy(inf, 0)}, false, BoundaryRuleMod2, zap.NewNop()); errors.Cause(err) != ErrInvalidGeometry {
		t.Errorf("Inf ordinate: want ErrInvalidGeometry but have %v", err)
	}
	if _, err := newRelateGeometry(nil, false, BoundaryRuleMod2, zap.NewNop()); errors.Cause(err) != ErrUnsupportedGeometry {
		t.Errorf("nil geometry: want ErrUnsupportedGeometry but have %v", err)
	}
}

func TestGeometrySelfNodingRequired(t *testing.T) {
	cases := []struct {
		name string
		g    geom.Geom
		want bool
	}{
		{"point", xy(1, 1), false},
		{"polygon", geom.Polygon{{xy(0, 0), xy(1, 0), xy(1, 1)}}, false},
		{"multipolygon", geom.MultiPolygon{{{xy(0, 0), xy(1, 0), xy(1, 1)}}}, false},
		{"line", geom.LineString{xy(0, 0), xy(1, 1)}, true},
		{"multiline", geom.MultiLineString{{xy(0, 0), xy(1, 1)}}, true},
		{"single polygon collection", geom.GeometryCollection{
			geom.Polygon{{xy(0, 0), xy(1, 0), xy(1, 1)}},
		}, false},
		{"two polygon collection", geom.GeometryCollection{
			geom.Polygon{{xy(0, 0), xy(1, 0), xy(1, 1)}},
			geom.Polygon{{xy(2, 2), xy(3, 2), xy(3, 3)}},
		}, true},
	}
	for _, c := range cases {
		rg := mustRelateGeometry(t, c.g)
		if have := rg.isSelfNodingRequired(); have != c.want {
			t.Errorf("%s: want %v but have %v", c.name, c.want, have)
		}
	}
}

func TestExtractSegmentStrings(t *testing.T) {
	poly := geom.Polygon{
		{xy(0, 0), xy(10, 0), xy(10, 10), xy(0, 10), xy(0, 0)},
		{xy(2, 2), xy(2, 4), xy(4, 4), xy(4, 2), xy(2, 2)},
	}
	rg := mustRelateGeometry(t, poly)
	sss := rg.extractSegmentStrings(true, nil)
	if len(sss) != 2 {
		t.Fatalf("want 2 segment strings but have %d", len(sss))
	}
	shell, hole := sss[0], sss[1]
	if shell.ringID != 0 || hole.ringID != 1 {
		t.Errorf("ring ids: want 0, 1 but have %d, %d", shell.ringID, hole.ringID)
	}
	if shell.dim != DimA || hole.dim != DimA {
		t.Error("ring segment strings must have area dimension")
	}
	if shell.id != hole.id {
		t.Error("rings of one polygon must share an element id")
	}
	if shell.poly == nil || shell.poly != hole.poly {
		t.Error("rings of one polygon must share the polygonal parent")
	}
	// shell clockwise, hole counterclockwise
	if isCCW(shell.pts) {
		t.Error("shell: want clockwise but have counterclockwise")
	}
	if !isCCW(hole.pts) {
		t.Error("hole: want counterclockwise but have clockwise")
	}
	if !shell.isClosed() || !hole.isClosed() {
		t.Error("ring segment strings must be closed")
	}
}

func TestExtractSegmentStringsEnvelopeFilter(t *testing.T) {
	ml := geom.MultiLineString{
		{xy(0, 0), xy(1, 1)},
		{xy(100, 100), xy(101, 101)},
	}
	rg := mustRelateGeometry(t, ml)
	env := &geom.Bounds{Min: xy(-1, -1), Max: xy(2, 2)}
	sss := rg.extractSegmentStrings(true, env)
	if len(sss) != 1 {
		t.Fatalf("want 1 filtered segment string but have %d", len(sss))
	}
	if sss[0].ringID != -1 {
		t.Errorf("line ring id: want -1 but have %d", sss[0].ringID)
	}
}

func TestExtractRemovesRepeatedAndCloses(t *testing.T) {
	// ring with a repeated vertex, not explicitly closed
	poly := geom.Polygon{{xy(0, 0), xy(5, 0), xy(5, 0), xy(5, 5), xy(0, 5)}}
	rg := mustRelateGeometry(t, poly)
	sss := rg.extractSegmentStrings(true, nil)
	if len(sss) != 1 {
		t.Fatalf("want 1 segment string but have %d", len(sss))
	}
	pts := sss[0].pts
	if pts[0] != pts[len(pts)-1] {
		t.Error("ring not closed after conditioning")
	}
	for i := 1; i < len(pts); i++ {
		if pts[i] == pts[i-1] {
			t.Error("repeated vertex not removed")
		}
	}
	if want := 5; len(pts) != want {
		t.Errorf("conditioned ring length: want %d but have %d", want, len(pts))
	}
}

func TestEffectivePoints(t *testing.T) {
	gc := geom.GeometryCollection{
		xy(5, 5),     // isolated
		xy(0.5, 1.5), // inside the line's extent but not on it
		xy(1, 1),     // on the line
		geom.LineString{xy(0, 0), xy(2, 2)},
	}
	rg := mustRelateGeometry(t, gc)
	pts := rg.effectivePoints()
	if len(pts) != 2 {
		t.Fatalf("want 2 effective points but have %d: %v", len(pts), pts)
	}
	want := map[geom.Point]bool{xy(5, 5): true, xy(0.5, 1.5): true}
	for _, p := range pts {
		if !want[p] {
			t.Errorf("unexpected effective point %v", p)
		}
	}
}
