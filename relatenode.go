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

// relateNode is the edge star at one node point: the incident edges
// of both inputs in counterclockwise order, each carrying the local
// locations of A and B.
type relateNode struct {
	pt    geom.Point
	edges []*relateEdge
}

func newRelateNode(pt geom.Point) *relateNode {
	return &relateNode{pt: pt}
}

func (n *relateNode) addEdges(sections []*nodeSection) {
	for _, ns := range sections {
		n.addEdgesSection(ns)
	}
}

func (n *relateNode) addEdgesSection(ns *nodeSection) {
	switch ns.dim {
	case DimL:
		n.addLineEdge(ns.isA, ns.getVertex(0))
		n.addLineEdge(ns.isA, ns.getVertex(1))
	case DimA:
		// ring edges are CW oriented:
		// the entering edge has the interior on its left,
		// the exiting edge has the interior on its right
		e0 := n.addAreaEdge(ns.isA, ns.getVertex(0), false)
		e1 := n.addAreaEdge(ns.isA, ns.getVertex(1), true)
		if e0 == nil || e1 == nil {
			return
		}
		index0 := n.indexOf(e0)
		index1 := n.indexOf(e1)
		n.updateEdgesInArea(ns.isA, index0, index1)
		n.updateIfAreaPrev(ns.isA, index0)
		n.updateIfAreaNext(ns.isA, index1)
	}
}

// updateEdgesInArea marks the edges strictly between the entering and
// exiting ring edges as lying in the ring interior.
func (n *relateNode) updateEdgesInArea(isA bool, indexFrom, indexTo int) {
	index := n.nextIndex(indexFrom)
	for index != indexTo {
		n.edges[index].setAreaInterior(isA)
		index = n.nextIndex(index)
	}
}

func (n *relateNode) updateIfAreaPrev(isA bool, index int) {
	indexPrev := n.prevIndex(index)
	if n.edges[indexPrev].isInterior(isA, posLeft) {
		n.edges[index].setAreaInterior(isA)
	}
}

func (n *relateNode) updateIfAreaNext(isA bool, index int) {
	indexNext := n.nextIndex(index)
	if n.edges[indexNext].isInterior(isA, posRight) {
		n.edges[index].setAreaInterior(isA)
	}
}

func (n *relateNode) addLineEdge(isA bool, dirPt *geom.Point) {
	n.addEdge(isA, dirPt, DimL, false)
}

func (n *relateNode) addAreaEdge(isA bool, dirPt *geom.Point, isForward bool) *relateEdge {
	return n.addEdge(isA, dirPt, DimA, isForward)
}

// addEdge adds or merges an edge in its angular position around the
// node. A nil vertex indicates the end of an open line; zero-length
// edges are skipped.
func (n *relateNode) addEdge(isA bool, dirPt *geom.Point, dim Dimension, isForward bool) *relateEdge {
	if dirPt == nil {
		return nil
	}
	if *dirPt == n.pt {
		return nil
	}
	insertIndex := -1
	for i, e := range n.edges {
		comp := e.compareToEdge(*dirPt)
		if comp == 0 {
			e.merge(isA, dim, isForward)
			return e
		}
		if comp == 1 {
			// found a further edge, so insert before it
			insertIndex = i
			break
		}
	}
	e := newRelateEdge(n, *dirPt, isA, dim, isForward)
	if insertIndex < 0 {
		n.edges = append(n.edges, e)
	} else {
		n.edges = append(n.edges, nil)
		copy(n.edges[insertIndex+1:], n.edges[insertIndex:])
		n.edges[insertIndex] = e
	}
	return e
}

func (n *relateNode) indexOf(e *relateEdge) int {
	for i, edge := range n.edges {
		if edge == e {
			return i
		}
	}
	return -1
}

func (n *relateNode) nextIndex(i int) int {
	next := i + 1
	if next >= len(n.edges) {
		next = 0
	}
	return next
}

func (n *relateNode) prevIndex(i int) int {
	if i == 0 {
		return len(n.edges) - 1
	}
	return i - 1
}

// finish resolves the locations still unknown on each edge. A node in
// the interior of a collection area has every edge fully interior for
// that input; otherwise unknown locations are propagated around the
// edge star from a known neighbor sector.
func (n *relateNode) finish(isAreaInteriorA, isAreaInteriorB bool) {
	n.finishNode(true, isAreaInteriorA)
	n.finishNode(false, isAreaInteriorB)
}

func (n *relateNode) finishNode(isA bool, isAreaInterior bool) {
	if isAreaInterior {
		for _, e := range n.edges {
			e.setAreaInterior(isA)
		}
		return
	}
	startIndex := n.findKnownEdgeIndex(isA)
	if startIndex < 0 {
		// only interacting nodes are finished, so this never happens
		// for well-formed node sections
		return
	}
	n.propagateSideLocations(isA, startIndex)
}

func (n *relateNode) findKnownEdgeIndex(isA bool) int {
	for i, e := range n.edges {
		if e.isKnown(isA) {
			return i
		}
	}
	return -1
}

// propagateSideLocations walks the counterclockwise edge star,
// carrying the location of the sector after each edge into the
// unknown locations of the next one.
func (n *relateNode) propagateSideLocations(isA bool, startIndex int) {
	currLoc := n.edges[startIndex].location(isA, posLeft)
	index := n.nextIndex(startIndex)
	for index != startIndex {
		e := n.edges[index]
		e.setUnknownLocations(isA, currLoc)
		currLoc = e.location(isA, posLeft)
		index = n.nextIndex(index)
	}
}

// hasExteriorEdge reports whether any edge has the given input's
// exterior on either side.
func (n *relateNode) hasExteriorEdge(isA bool) bool {
	for _, e := range n.edges {
		if e.location(isA, posLeft) == Exterior ||
			e.location(isA, posRight) == Exterior {
			return true
		}
	}
	return false
}
