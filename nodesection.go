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
	"sort"

	"github.com/ctessum/geom"
)

// nodeSection is one edge-pair incident on a node: the vertices
// entering and leaving the node along one segment string, together
// with the identity of the element the section came from.
type nodeSection struct {
	isA            bool
	dim            Dimension
	id             int
	ringID         int
	poly           *areaElement
	isNodeAtVertex bool
	nodePt         geom.Point
	v0, v1         *geom.Point
}

func (ns *nodeSection) getVertex(i int) *geom.Point {
	if i == 0 {
		return ns.v0
	}
	return ns.v1
}

// isProper reports whether the node lies in the interior of the
// section's segment.
func (ns *nodeSection) isProper() bool { return !ns.isNodeAtVertex }

func (ns *nodeSection) isArea() bool { return ns.dim == DimA }

func (ns *nodeSection) isShell() bool { return ns.ringID == 0 }

func (ns *nodeSection) isSameGeometry(o *nodeSection) bool { return ns.isA == o.isA }

func (ns *nodeSection) isSamePolygon(o *nodeSection) bool {
	return ns.isA == o.isA && ns.id == o.id
}

func isProperPair(a, b *nodeSection) bool { return a.isProper() && b.isProper() }

func isAreaAreaPair(a, b *nodeSection) bool {
	return a.dim == DimA && b.dim == DimA
}

// compare orders sections at a node: A before B, then by dimension,
// element and ring id, then by edge vertices.
func (ns *nodeSection) compare(o *nodeSection) int {
	if ns.isA != o.isA {
		if ns.isA {
			return -1
		}
		return 1
	}
	if c := compareInt(int(ns.dim), int(o.dim)); c != 0 {
		return c
	}
	if c := compareInt(ns.id, o.id); c != 0 {
		return c
	}
	if c := compareInt(ns.ringID, o.ringID); c != 0 {
		return c
	}
	if c := comparePointPtr(ns.v0, o.v0); c != 0 {
		return c
	}
	return comparePointPtr(ns.v1, o.v1)
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func comparePointPtr(a, b *geom.Point) int {
	if a == nil || b == nil {
		switch {
		case a == nil && b == nil:
			return 0
		case a == nil:
			return -1
		}
		return 1
	}
	if a.X != b.X {
		if a.X < b.X {
			return -1
		}
		return 1
	}
	switch {
	case a.Y < b.Y:
		return -1
	case a.Y > b.Y:
		return 1
	}
	return 0
}

// nodeSections accumulates the sections incident on one node point
// until the node is ready to evaluate.
type nodeSections struct {
	pt       geom.Point
	sections []*nodeSection
}

func newNodeSections(pt geom.Point) *nodeSections {
	return &nodeSections{pt: pt}
}

func (nss *nodeSections) add(ns *nodeSection) {
	nss.sections = append(nss.sections, ns)
}

// hasInteractionAB reports whether sections from both inputs are
// present, i.e. the node records an actual A/B interaction.
func (nss *nodeSections) hasInteractionAB() bool {
	var isA, isB bool
	for _, ns := range nss.sections {
		if ns.isA {
			isA = true
		} else {
			isB = true
		}
		if isA && isB {
			return true
		}
	}
	return false
}

// getPolygonal returns the polygonal parent of a section of the given
// input, if any.
func (nss *nodeSections) getPolygonal(isA bool) *areaElement {
	for _, ns := range nss.sections {
		if ns.isA == isA && ns.poly != nil {
			return ns.poly
		}
	}
	return nil
}

// createNode builds the node edge star. Multiple sections of a single
// polygon are first converted to sections forming maximal rings
// around the node.
func (nss *nodeSections) createNode() *relateNode {
	nss.prepareSections()
	node := newRelateNode(nss.pt)
	i := 0
	for i < len(nss.sections) {
		ns := nss.sections[i]
		if ns.isArea() && nss.hasMultiplePolygonSections(i) {
			polySections := nss.collectPolygonSections(i)
			node.addEdges(convertPolygonSections(polySections))
			i += len(polySections)
		} else {
			node.addEdgesSection(ns)
			i++
		}
	}
	return node
}

func (nss *nodeSections) prepareSections() {
	sort.Slice(nss.sections, func(i, j int) bool {
		return nss.sections[i].compare(nss.sections[j]) < 0
	})
}

func (nss *nodeSections) hasMultiplePolygonSections(i int) bool {
	if i >= len(nss.sections)-1 {
		return false
	}
	return nss.sections[i].isSamePolygon(nss.sections[i+1])
}

func (nss *nodeSections) collectPolygonSections(i int) []*nodeSection {
	first := nss.sections[i]
	end := i
	for end < len(nss.sections) && first.isSamePolygon(nss.sections[end]) {
		end++
	}
	return nss.sections[i:end]
}
