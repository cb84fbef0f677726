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

import "github.com/pkg/errors"

// IntersectionMatrix is a DE-9IM matrix: a 3×3 grid of Dimension
// values indexed by (Location on A, Location on B) over the
// Interior/Boundary/Exterior rows and columns.
//
// During relate computation cell values only ever increase
// (DimFalse < DimP < DimL < DimA): the engine writes a cell only when
// the new value is higher, so a partially evaluated matrix is always a
// lower bound for the final one.
type IntersectionMatrix struct {
	m [3][3]Dimension
}

// NewIntersectionMatrix returns a matrix with all cells DimFalse.
func NewIntersectionMatrix() *IntersectionMatrix {
	var im IntersectionMatrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			im.m[i][j] = DimFalse
		}
	}
	return &im
}

// ParseMatrix builds a matrix from a 9-character DE-9IM string over
// {F, 0, 1, 2, T, *} in row-major order.
func ParseMatrix(pattern string) (*IntersectionMatrix, error) {
	if len(pattern) != 9 {
		return nil, errors.Wrapf(ErrInvalidPattern, "%q has length %d, want 9", pattern, len(pattern))
	}
	im := NewIntersectionMatrix()
	for i := 0; i < 9; i++ {
		d, err := dimensionValue(pattern[i])
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidPattern, "%q: %v", pattern, err)
		}
		im.m[i/3][i%3] = d
	}
	return im, nil
}

// Get returns the dimension of the intersection of the locA locus of
// A with the locB locus of B.
func (im *IntersectionMatrix) Get(locA, locB Location) Dimension {
	return im.m[locA][locB]
}

// Set assigns a cell value.
func (im *IntersectionMatrix) Set(locA, locB Location, dim Dimension) {
	im.m[locA][locB] = dim
}

// SetAtLeast raises a cell to dim if it is currently lower. Lower
// values are clamped away, preserving the monotone-growth invariant.
func (im *IntersectionMatrix) SetAtLeast(locA, locB Location, dim Dimension) {
	if im.m[locA][locB] < dim {
		im.m[locA][locB] = dim
	}
}

// Transpose returns a new matrix with rows and columns swapped, i.e.
// the matrix of (B, A) given the matrix of (A, B).
func (im *IntersectionMatrix) Transpose() *IntersectionMatrix {
	t := NewIntersectionMatrix()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			t.m[j][i] = im.m[i][j]
		}
	}
	return t
}

// String serializes the matrix in row-major DE-9IM form, e.g.
// "212101212".
func (im *IntersectionMatrix) String() string {
	b := make([]byte, 9)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			b[3*i+j] = im.m[i][j].symbol()
		}
	}
	return string(b)
}

// Matches reports whether the matrix satisfies a DE-9IM pattern.
func (im *IntersectionMatrix) Matches(pattern string) (bool, error) {
	if len(pattern) != 9 {
		return false, errors.Wrapf(ErrInvalidPattern, "%q has length %d, want 9", pattern, len(pattern))
	}
	for i := 0; i < 9; i++ {
		req, err := dimensionValue(pattern[i])
		if err != nil {
			return false, errors.Wrapf(ErrInvalidPattern, "%q: %v", pattern, err)
		}
		if !matchesDim(im.m[i/3][i%3], req) {
			return false, nil
		}
	}
	return true, nil
}

func matchesDim(actual, required Dimension) bool {
	switch required {
	case DimDontCare:
		return true
	case DimTrue:
		return actual >= DimP
	case DimFalse:
		return actual == DimFalse
	}
	return actual == required
}

func (im *IntersectionMatrix) isTrue(locA, locB Location) bool {
	return im.m[locA][locB] >= DimP
}

// IsDisjoint reports whether no interior or boundary intersections
// are present.
func (im *IntersectionMatrix) IsDisjoint() bool {
	return im.m[Interior][Interior] == DimFalse &&
		im.m[Interior][Boundary] == DimFalse &&
		im.m[Boundary][Interior] == DimFalse &&
		im.m[Boundary][Boundary] == DimFalse
}

// IsIntersects is the complement of IsDisjoint.
func (im *IntersectionMatrix) IsIntersects() bool {
	return !im.IsDisjoint()
}

// IsContains reports the contains relationship (A contains B).
func (im *IntersectionMatrix) IsContains() bool {
	return im.isTrue(Interior, Interior) &&
		im.m[Exterior][Interior] == DimFalse &&
		im.m[Exterior][Boundary] == DimFalse
}

// IsWithin reports the within relationship (A within B).
func (im *IntersectionMatrix) IsWithin() bool {
	return im.isTrue(Interior, Interior) &&
		im.m[Interior][Exterior] == DimFalse &&
		im.m[Boundary][Exterior] == DimFalse
}

// IsCovers reports the covers relationship (A covers B).
func (im *IntersectionMatrix) IsCovers() bool {
	hasIntersection := im.isTrue(Interior, Interior) ||
		im.isTrue(Interior, Boundary) ||
		im.isTrue(Boundary, Interior) ||
		im.isTrue(Boundary, Boundary)
	return hasIntersection &&
		im.m[Exterior][Interior] == DimFalse &&
		im.m[Exterior][Boundary] == DimFalse
}

// IsCoveredBy reports the coveredBy relationship (A coveredBy B).
func (im *IntersectionMatrix) IsCoveredBy() bool {
	hasIntersection := im.isTrue(Interior, Interior) ||
		im.isTrue(Interior, Boundary) ||
		im.isTrue(Boundary, Interior) ||
		im.isTrue(Boundary, Boundary)
	return hasIntersection &&
		im.m[Interior][Exterior] == DimFalse &&
		im.m[Boundary][Exterior] == DimFalse
}

// IsEquals reports topological equality for inputs of the given
// dimensions.
func (im *IntersectionMatrix) IsEquals(dimA, dimB Dimension) bool {
	if dimA != dimB {
		return false
	}
	return im.isTrue(Interior, Interior) &&
		im.m[Interior][Exterior] == DimFalse &&
		im.m[Boundary][Exterior] == DimFalse &&
		im.m[Exterior][Interior] == DimFalse &&
		im.m[Exterior][Boundary] == DimFalse
}

// IsTouches reports the touches relationship for inputs of the given
// dimensions. Touches is undefined for two points.
func (im *IntersectionMatrix) IsTouches(dimA, dimB Dimension) bool {
	if dimA > dimB {
		return im.Transpose().IsTouches(dimB, dimA)
	}
	validDims := (dimA == DimA && dimB == DimA) ||
		(dimA == DimL && dimB == DimL) ||
		(dimA == DimL && dimB == DimA) ||
		(dimA == DimP && dimB == DimA) ||
		(dimA == DimP && dimB == DimL)
	if !validDims {
		return false
	}
	return im.m[Interior][Interior] == DimFalse &&
		(im.isTrue(Interior, Boundary) ||
			im.isTrue(Boundary, Interior) ||
			im.isTrue(Boundary, Boundary))
}

// IsCrosses reports the crosses relationship for inputs of the given
// dimensions.
func (im *IntersectionMatrix) IsCrosses(dimA, dimB Dimension) bool {
	if (dimA == DimP && dimB == DimL) ||
		(dimA == DimP && dimB == DimA) ||
		(dimA == DimL && dimB == DimA) {
		return im.isTrue(Interior, Interior) && im.isTrue(Interior, Exterior)
	}
	if (dimA == DimL && dimB == DimP) ||
		(dimA == DimA && dimB == DimP) ||
		(dimA == DimA && dimB == DimL) {
		return im.isTrue(Interior, Interior) && im.isTrue(Exterior, Interior)
	}
	if dimA == DimL && dimB == DimL {
		return im.m[Interior][Interior] == DimP
	}
	return false
}

// IsOverlaps reports the overlaps relationship for inputs of the
// given dimensions.
func (im *IntersectionMatrix) IsOverlaps(dimA, dimB Dimension) bool {
	if (dimA == DimP && dimB == DimP) || (dimA == DimA && dimB == DimA) {
		return im.isTrue(Interior, Interior) &&
			im.isTrue(Interior, Exterior) &&
			im.isTrue(Exterior, Interior)
	}
	if dimA == DimL && dimB == DimL {
		return im.m[Interior][Interior] == DimL &&
			im.isTrue(Interior, Exterior) &&
			im.isTrue(Exterior, Interior)
	}
	return false
}
