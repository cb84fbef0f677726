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

// convertPolygonSections rewrites the sections of a single polygon
// incident on one node into sections tracing the maximal rings around
// the node. A node at which a shell and its holes touch has the
// polygon interior between a shell edge and a hole edge, not between
// the edges of either ring alone, so the ring sections must be
// re-paired before edge topology is computed.
func convertPolygonSections(polySections []*nodeSection) []*nodeSection {
	sections := make([]*nodeSection, len(polySections))
	copy(sections, polySections)
	sort.Slice(sections, func(i, j int) bool {
		a, b := sections[i], sections[j]
		return compareAngle(a.nodePt, *a.getVertex(0), *b.getVertex(0)) < 0
	})
	sections = extractUniqueSections(sections)
	if len(sections) == 1 {
		return sections
	}
	shellIndex := findShellSection(sections)
	if shellIndex < 0 {
		return convertHoleSections(sections)
	}
	// at least one shell is present; handle multiple ones if present
	var converted []*nodeSection
	nextShellIndex := shellIndex
	for {
		nextShellIndex, converted = convertShellAndHoles(sections, nextShellIndex, converted)
		if nextShellIndex == shellIndex {
			break
		}
	}
	return converted
}

func convertShellAndHoles(sections []*nodeSection, shellIndex int, converted []*nodeSection) (int, []*nodeSection) {
	shellSection := sections[shellIndex]
	inVertex := shellSection.getVertex(0)
	i := nextSectionIndex(sections, shellIndex)
	for !sections[i].isShell() {
		holeSection := sections[i]
		outVertex := holeSection.getVertex(1)
		converted = append(converted, createPairedSection(shellSection, inVertex, outVertex))
		inVertex = holeSection.getVertex(0)
		i = nextSectionIndex(sections, i)
	}
	// final corner from the last hole back to the shell
	outVertex := shellSection.getVertex(1)
	converted = append(converted, createPairedSection(shellSection, inVertex, outVertex))
	return i, converted
}

// convertHoleSections handles a node where only hole rings touch:
// the interior lies between each hole section and the next one.
func convertHoleSections(sections []*nodeSection) []*nodeSection {
	converted := make([]*nodeSection, 0, len(sections))
	copySection := sections[0]
	for i := range sections {
		inext := nextSectionIndex(sections, i)
		inVertex := sections[i].getVertex(0)
		outVertex := sections[inext].getVertex(1)
		converted = append(converted, createPairedSection(copySection, inVertex, outVertex))
	}
	return converted
}

func createPairedSection(ns *nodeSection, v0, v1 *geom.Point) *nodeSection {
	return &nodeSection{
		isA:    ns.isA,
		dim:    DimA,
		id:     ns.id,
		ringID: 0,
		poly:   ns.poly,
		nodePt: ns.nodePt,
		v0:     v0,
		v1:     v1,
	}
}

func extractUniqueSections(sections []*nodeSection) []*nodeSection {
	unique := sections[:1]
	last := sections[0]
	for _, ns := range sections[1:] {
		if last.compare(ns) != 0 {
			unique = append(unique, ns)
			last = ns
		}
	}
	return unique
}

func nextSectionIndex(sections []*nodeSection, i int) int {
	next := i + 1
	if next >= len(sections) {
		next = 0
	}
	return next
}

func findShellSection(sections []*nodeSection) int {
	for i, ns := range sections {
		if ns.isShell() {
			return i
		}
	}
	return -1
}
