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

// edge positions relative to a directed edge leaving a node.
type edgePosition int

const (
	posLeft edgePosition = iota
	posRight
	posOn
)

const dimUnknown = Dimension(-9)

// relateEdge is one direction around a node, with the locations of
// each input geometry on and to either side of it. Edges from both
// inputs that leave the node towards the same vertex are merged into
// a single relateEdge.
type relateEdge struct {
	node  *relateNode
	dirPt geom.Point

	aDim                          Dimension
	aLocLeft, aLocRight, aLocLine Location

	bDim                          Dimension
	bLocLeft, bLocRight, bLocLine Location
}

// newRelateEdge creates an edge with the locations implied by one
// section: a ring edge of an area (with the interior on the side
// given by the traversal direction), or a line edge (interior on the
// edge, exterior on both sides).
func newRelateEdge(node *relateNode, dirPt geom.Point, isA bool, dim Dimension, isForward bool) *relateEdge {
	e := &relateEdge{
		node:  node,
		dirPt: dirPt,
		aDim:  dimUnknown, aLocLeft: NoLocation, aLocRight: NoLocation, aLocLine: NoLocation,
		bDim: dimUnknown, bLocLeft: NoLocation, bLocRight: NoLocation, bLocLine: NoLocation,
	}
	if dim == DimA {
		e.setLocationsArea(isA, isForward)
	} else {
		e.setLocationsLine(isA)
	}
	return e
}

// setLocationsArea assumes ring edges are oriented clockwise: a
// forward (exiting) ring edge has the polygon interior on its right,
// a reversed (entering) one on its left.
func (e *relateEdge) setLocationsArea(isA bool, isForward bool) {
	locLeft, locRight := Interior, Exterior
	if isForward {
		locLeft, locRight = Exterior, Interior
	}
	if isA {
		e.aDim = DimA
		e.aLocLeft, e.aLocRight, e.aLocLine = locLeft, locRight, Boundary
	} else {
		e.bDim = DimA
		e.bLocLeft, e.bLocRight, e.bLocLine = locLeft, locRight, Boundary
	}
}

func (e *relateEdge) setLocationsLine(isA bool) {
	if isA {
		e.aDim = DimL
		e.aLocLeft, e.aLocRight, e.aLocLine = Exterior, Exterior, Interior
	} else {
		e.bDim = DimL
		e.bLocLeft, e.bLocRight, e.bLocLine = Exterior, Exterior, Interior
	}
}

// merge combines another section along the same direction into this
// edge. An area boundary overrides a line interior on the edge itself,
// and side locations keep interior presence from either section.
func (e *relateEdge) merge(isA bool, dim Dimension, isForward bool) {
	locEdge := Interior
	locLeft, locRight := Exterior, Exterior
	if dim == DimA {
		locEdge = Boundary
		locLeft, locRight = Interior, Exterior
		if isForward {
			locLeft, locRight = Exterior, Interior
		}
	}
	if isA {
		if e.aDim == dimUnknown {
			e.aDim = dim
			e.aLocLeft, e.aLocRight, e.aLocLine = locLeft, locRight, locEdge
			return
		}
		if dim > e.aDim {
			e.aDim = dim
		}
		e.aLocLine = mergeOnLocation(e.aLocLine, locEdge)
		e.aLocLeft = mergeSideLocation(e.aLocLeft, locLeft)
		e.aLocRight = mergeSideLocation(e.aLocRight, locRight)
	} else {
		if e.bDim == dimUnknown {
			e.bDim = dim
			e.bLocLeft, e.bLocRight, e.bLocLine = locLeft, locRight, locEdge
			return
		}
		if dim > e.bDim {
			e.bDim = dim
		}
		e.bLocLine = mergeOnLocation(e.bLocLine, locEdge)
		e.bLocLeft = mergeSideLocation(e.bLocLeft, locLeft)
		e.bLocRight = mergeSideLocation(e.bLocRight, locRight)
	}
}

// mergeOnLocation combines the on-edge locations: an area BOUNDARY
// overrides a line INTERIOR.
func mergeOnLocation(loc1, loc2 Location) Location {
	if loc2 > loc1 {
		return loc2
	}
	return loc1
}

// mergeSideLocation combines side locations: interior presence from
// either section wins, so collapsed edges between adjacent rings keep
// the interior on both sides.
func mergeSideLocation(loc1, loc2 Location) Location {
	if loc1 == Interior || loc2 == Interior {
		return Interior
	}
	if loc2 > loc1 {
		return loc2
	}
	return loc1
}

func (e *relateEdge) location(isA bool, pos edgePosition) Location {
	if isA {
		switch pos {
		case posLeft:
			return e.aLocLeft
		case posRight:
			return e.aLocRight
		}
		return e.aLocLine
	}
	switch pos {
	case posLeft:
		return e.bLocLeft
	case posRight:
		return e.bLocRight
	}
	return e.bLocLine
}

func (e *relateEdge) isInterior(isA bool, pos edgePosition) bool {
	return e.location(isA, pos) == Interior
}

// isKnown reports whether any section of the given input is incident
// along this edge.
func (e *relateEdge) isKnown(isA bool) bool {
	if isA {
		return e.aDim != dimUnknown
	}
	return e.bDim != dimUnknown
}

// setAreaInterior marks the edge as fully inside the given input
// (used when the node lies in the interior of a collection area).
func (e *relateEdge) setAreaInterior(isA bool) {
	if isA {
		e.aLocLeft, e.aLocRight, e.aLocLine = Interior, Interior, Interior
	} else {
		e.bLocLeft, e.bLocRight, e.bLocLine = Interior, Interior, Interior
	}
}

// setUnknownLocations fills any still-unknown locations of the given
// input with loc (the location of the surrounding sector).
func (e *relateEdge) setUnknownLocations(isA bool, loc Location) {
	if isA {
		if e.aLocLeft == NoLocation {
			e.aLocLeft = loc
		}
		if e.aLocRight == NoLocation {
			e.aLocRight = loc
		}
		if e.aLocLine == NoLocation {
			e.aLocLine = loc
		}
	} else {
		if e.bLocLeft == NoLocation {
			e.bLocLeft = loc
		}
		if e.bLocRight == NoLocation {
			e.bLocRight = loc
		}
		if e.bLocLine == NoLocation {
			e.bLocLine = loc
		}
	}
}

// compareToEdge orders this edge against a direction point by angle
// around the node.
func (e *relateEdge) compareToEdge(dirPt geom.Point) int {
	return compareAngle(e.node.pt, e.dirPt, dirPt)
}
