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

import "testing"

func TestMatrixSetGet(t *testing.T) {
	im := NewIntersectionMatrix()
	if have := im.String(); have != "FFFFFFFFF" {
		t.Errorf("new matrix: want FFFFFFFFF but have %s", have)
	}
	im.Set(Interior, Interior, DimA)
	im.Set(Boundary, Exterior, DimL)
	im.Set(Exterior, Exterior, DimA)
	if have := im.Get(Interior, Interior); have != DimA {
		t.Errorf("Get(I, I): want %v but have %v", DimA, have)
	}
	if have := im.String(); have != "2FFFF1FF2" {
		t.Errorf("want 2FFFF1FF2 but have %s", have)
	}
}

func TestMatrixSetAtLeast(t *testing.T) {
	im := NewIntersectionMatrix()
	im.SetAtLeast(Interior, Interior, DimL)
	if have := im.Get(Interior, Interior); have != DimL {
		t.Errorf("want %v but have %v", DimL, have)
	}
	// lower values are clamped away
	im.SetAtLeast(Interior, Interior, DimP)
	if have := im.Get(Interior, Interior); have != DimL {
		t.Errorf("after lower SetAtLeast: want %v but have %v", DimL, have)
	}
	im.SetAtLeast(Interior, Interior, DimA)
	if have := im.Get(Interior, Interior); have != DimA {
		t.Errorf("after higher SetAtLeast: want %v but have %v", DimA, have)
	}
}

func TestMatrixParseRoundTrip(t *testing.T) {
	cases := []string{
		"212101212",
		"FF0FFF0F2",
		"1FFF0FFF2",
		"F0FFFF212",
		"FFFFFFFF2",
	}
	for _, c := range cases {
		im, err := ParseMatrix(c)
		if err != nil {
			t.Fatalf("ParseMatrix(%s): %v", c, err)
		}
		if have := im.String(); have != c {
			t.Errorf("round trip %s: have %s", c, have)
		}
	}
}

func TestMatrixParseErrors(t *testing.T) {
	for _, c := range []string{"", "21210121", "2121012122", "21210121X"} {
		if _, err := ParseMatrix(c); err == nil {
			t.Errorf("ParseMatrix(%q): want error but have none", c)
		}
	}
}

func TestMatrixMatches(t *testing.T) {
	im, err := ParseMatrix("212101212")
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		pattern string
		want    bool
	}{
		{"212101212", true},
		{"*********", true},
		{"TTTTTTTTT", true},
		{"T*T***T**", true},
		{"FF*FF****", false},
		{"212101211", false},
		{"T*F**F***", false},
	}
	for _, c := range cases {
		have, err := im.Matches(c.pattern)
		if err != nil {
			t.Fatal(err)
		}
		if have != c.want {
			t.Errorf("Matches(%s): want %v but have %v", c.pattern, c.want, have)
		}
	}
	if _, err := im.Matches("bogus"); err == nil {
		t.Error("Matches(bogus): want error but have none")
	}
}

func TestMatrixTranspose(t *testing.T) {
	im, err := ParseMatrix("212101FF2")
	if err != nil {
		t.Fatal(err)
	}
	want := "21F10F212"
	if have := im.Transpose().String(); have != want {
		t.Errorf("transpose: want %s but have %s", want, have)
	}
	if have := im.Transpose().Transpose().String(); have != im.String() {
		t.Errorf("double transpose: want %s but have %s", im.String(), have)
	}
}

func TestMatrixNamedPredicates(t *testing.T) {
	contains, err := ParseMatrix("212FF1FF2")
	if err != nil {
		t.Fatal(err)
	}
	if !contains.IsContains() {
		t.Error("IsContains(212FF1FF2): want true but have false")
	}
	if !contains.IsCovers() {
		t.Error("IsCovers(212FF1FF2): want true but have false")
	}
	if contains.IsWithin() {
		t.Error("IsWithin(212FF1FF2): want false but have true")
	}
	if !contains.Transpose().IsWithin() {
		t.Error("IsWithin(transposed): want true but have false")
	}
	if !contains.IsIntersects() || contains.IsDisjoint() {
		t.Error("contains matrix must intersect and not be disjoint")
	}

	touches, err := ParseMatrix("FF2F11212")
	if err != nil {
		t.Fatal(err)
	}
	if !touches.IsTouches(DimA, DimA) {
		t.Error("IsTouches(FF2F11212): want true but have false")
	}
	if touches.IsOverlaps(DimA, DimA) {
		t.Error("IsOverlaps(FF2F11212): want false but have true")
	}

	crosses, err := ParseMatrix("0F1FF0102")
	if err != nil {
		t.Fatal(err)
	}
	if !crosses.IsCrosses(DimL, DimL) {
		t.Error("IsCrosses(0F1FF0102, L/L): want true but have false")
	}
	if crosses.IsCrosses(DimA, DimA) {
		t.Error("IsCrosses(A/A): want false but have true")
	}

	equals, err := ParseMatrix("1FFF0FFF2")
	if err != nil {
		t.Fatal(err)
	}
	if !equals.IsEquals(DimL, DimL) {
		t.Error("IsEquals(1FFF0FFF2): want true but have false")
	}
	if equals.IsEquals(DimL, DimA) {
		t.Error("IsEquals with unequal dims: want false but have true")
	}

	overlaps, err := ParseMatrix("212101212")
	if err != nil {
		t.Fatal(err)
	}
	if !overlaps.IsOverlaps(DimA, DimA) {
		t.Error("IsOverlaps(212101212): want true but have false")
	}
}
