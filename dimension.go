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

import "fmt"

// Location identifies the topological position of a point relative to
// a geometry: in its interior, on its boundary, or in its exterior.
type Location int

const (
	// Interior is the location of points inside a geometry.
	Interior Location = 0
	// Boundary is the location of points on the boundary of a geometry.
	Boundary Location = 1
	// Exterior is the location of points outside a geometry.
	Exterior Location = 2
	// NoLocation marks an uninitialized location.
	NoLocation Location = -1
)

func (l Location) String() string {
	switch l {
	case Interior:
		return "Interior"
	case Boundary:
		return "Boundary"
	case Exterior:
		return "Exterior"
	}
	return "None"
}

// Dimension is the topological dimension of a geometry or of an
// intersection set: empty (False), puntal (P), lineal (L) or areal (A).
// The negative pseudo-dimensions True and DontCare appear only in
// DE-9IM patterns.
type Dimension int

const (
	// DimFalse denotes the empty set.
	DimFalse Dimension = -1
	// DimP is the dimension of points.
	DimP Dimension = 0
	// DimL is the dimension of lines.
	DimL Dimension = 1
	// DimA is the dimension of areas.
	DimA Dimension = 2

	// DimTrue matches any non-empty set in a DE-9IM pattern.
	DimTrue Dimension = -2
	// DimDontCare matches anything in a DE-9IM pattern.
	DimDontCare Dimension = -3
)

// symbol returns the DE-9IM character for a dimension value.
func (d Dimension) symbol() byte {
	switch d {
	case DimFalse:
		return 'F'
	case DimP:
		return '0'
	case DimL:
		return '1'
	case DimA:
		return '2'
	case DimTrue:
		return 'T'
	case DimDontCare:
		return '*'
	}
	return '?'
}

// dimensionValue parses a DE-9IM pattern character.
func dimensionValue(c byte) (Dimension, error) {
	switch c {
	case 'F', 'f':
		return DimFalse, nil
	case '0':
		return DimP, nil
	case '1':
		return DimL, nil
	case '2':
		return DimA, nil
	case 'T', 't':
		return DimTrue, nil
	case '*':
		return DimDontCare, nil
	}
	return DimFalse, fmt.Errorf("unknown dimension symbol %q", c)
}

// Combined (dimension, location) codes, reporting the location of a
// point on the highest-dimensional element of a geometry containing
// it. The exterior code coincides with the Exterior location.
const (
	dimLocExterior     = int(Exterior)
	dimLocPoint        = 103
	dimLocLineInterior = 110
	dimLocLineBoundary = 111
	dimLocAreaInterior = 120
	dimLocAreaBoundary = 121
)

func dimLocForPoint(loc Location) int {
	if loc == Interior {
		return dimLocPoint
	}
	return dimLocExterior
}

func dimLocForLine(loc Location) int {
	switch loc {
	case Interior:
		return dimLocLineInterior
	case Boundary:
		return dimLocLineBoundary
	}
	return dimLocExterior
}

func dimLocForArea(loc Location) int {
	switch loc {
	case Interior:
		return dimLocAreaInterior
	case Boundary:
		return dimLocAreaBoundary
	}
	return dimLocExterior
}

func dimLocLocation(dimLoc int) Location {
	switch dimLoc {
	case dimLocPoint, dimLocLineInterior, dimLocAreaInterior:
		return Interior
	case dimLocLineBoundary, dimLocAreaBoundary:
		return Boundary
	}
	return Exterior
}

func dimLocDimension(dimLoc int) Dimension {
	switch dimLoc {
	case dimLocPoint:
		return DimP
	case dimLocLineInterior, dimLocLineBoundary:
		return DimL
	case dimLocAreaInterior, dimLocAreaBoundary:
		return DimA
	}
	return DimFalse
}

// dimLocDimensionExt reports the element dimension for a code,
// substituting the geometry dimension when the point is exterior.
func dimLocDimensionExt(dimLoc int, exteriorDim Dimension) Dimension {
	if dimLoc == dimLocExterior {
		return exteriorDim
	}
	return dimLocDimension(dimLoc)
}
