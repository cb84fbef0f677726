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
	"github.com/ctessum/geom"
	"github.com/ctessum/geom/index/rtree"
)

// monotoneChain is a run of segments of one segment string whose
// direction stays within a single quadrant. Within a chain segments
// cannot intersect each other, and the envelope of any subrange is
// the envelope of its end vertices, which makes pairwise overlap
// search a cheap recursive subdivision.
type monotoneChain struct {
	ss         *relateSegmentString
	start, end int // vertex range; segments are start..end-1
	env        *geom.Bounds
	id         int
}

// Bounds implements rtree.Spatial.
func (mc *monotoneChain) Bounds() *geom.Bounds { return mc.env }

func buildChains(ss *relateSegmentString) []*monotoneChain {
	pts := ss.pts
	if len(pts) < 2 {
		return nil
	}
	var chains []*monotoneChain
	start := 0
	for start < len(pts)-1 {
		end := start + 1
		quad := quadrant(pts[start+1].X-pts[start].X, pts[start+1].Y-pts[start].Y)
		for end < len(pts)-1 {
			q := quadrant(pts[end+1].X-pts[end].X, pts[end+1].Y-pts[end].Y)
			if q != quad {
				break
			}
			end++
		}
		env := geom.NewBoundsPoint(pts[start])
		for i := start + 1; i <= end; i++ {
			env.Extend(geom.NewBoundsPoint(pts[i]))
		}
		chains = append(chains, &monotoneChain{ss: ss, start: start, end: end, env: env})
		start = end
	}
	return chains
}

// segPairFunc receives one candidate segment pair.
type segPairFunc func(ss0 *relateSegmentString, i0 int, ss1 *relateSegmentString, i1 int)

func (mc *monotoneChain) computeOverlaps(other *monotoneChain, fn segPairFunc) {
	mc.overlapsRange(mc.start, mc.end, other, other.start, other.end, fn)
}

func (mc *monotoneChain) overlapsRange(start0, end0 int, other *monotoneChain, start1, end1 int, fn segPairFunc) {
	// single segment pair: report it
	if end0-start0 == 1 && end1-start1 == 1 {
		fn(mc.ss, start0, other.ss, start1)
		return
	}
	if !envOverlaps(
		envOfSegment(mc.ss.coord(start0), mc.ss.coord(end0)),
		envOfSegment(other.ss.coord(start1), other.ss.coord(end1))) {
		return
	}
	mid0 := (start0 + end0) / 2
	mid1 := (start1 + end1) / 2
	if start0 < mid0 {
		if start1 < mid1 {
			mc.overlapsRange(start0, mid0, other, start1, mid1, fn)
		}
		if mid1 < end1 {
			mc.overlapsRange(start0, mid0, other, mid1, end1, fn)
		}
	}
	if mid0 < end0 {
		if start1 < mid1 {
			mc.overlapsRange(mid0, end0, other, start1, mid1, fn)
		}
		if mid1 < end1 {
			mc.overlapsRange(mid0, end0, other, mid1, end1, fn)
		}
	}
}

// edgeSetIntersector finds all intersections within one set of
// segment strings, including self-intersections. It is used when
// self-noding is required for correct node evaluation.
type edgeSetIntersector struct {
	tree   *rtree.Rtree
	chains []*monotoneChain
}

func newEdgeSetIntersector(edgesA, edgesB []*relateSegmentString, env *geom.Bounds) *edgeSetIntersector {
	esi := &edgeSetIntersector{tree: rtree.NewTree(25, 50)}
	esi.addEdges(edgesA, env)
	esi.addEdges(edgesB, env)
	return esi
}

func (esi *edgeSetIntersector) addEdges(edges []*relateSegmentString, env *geom.Bounds) {
	for _, ss := range edges {
		for _, mc := range buildChains(ss) {
			if env != nil && !envOverlaps(env, mc.env) {
				continue
			}
			mc.id = len(esi.chains)
			esi.chains = append(esi.chains, mc)
			esi.tree.Insert(mc)
		}
	}
}

func (esi *edgeSetIntersector) process(si *edgeSegmentIntersector) {
	for _, queryChain := range esi.chains {
		for _, hit := range esi.tree.SearchIntersect(queryChain.env) {
			testChain := hit.(*monotoneChain)
			// compare each pair of chains once, and never a chain to
			// itself
			if testChain.id <= queryChain.id {
				continue
			}
			testChain.computeOverlaps(queryChain, si.processIntersections)
			if si.isDone() {
				return
			}
		}
	}
}

// mutualIntersector finds intersections between an indexed set of
// segment strings and a query set. In prepared mode the index over
// the A edges is retained across calls.
type mutualIntersector struct {
	tree *rtree.Rtree
}

func newMutualIntersector(edgesA []*relateSegmentString, env *geom.Bounds) *mutualIntersector {
	m := &mutualIntersector{tree: rtree.NewTree(25, 50)}
	for _, ss := range edgesA {
		for _, mc := range buildChains(ss) {
			if env != nil && !envOverlaps(env, mc.env) {
				continue
			}
			m.tree.Insert(mc)
		}
	}
	return m
}

func (m *mutualIntersector) process(edgesB []*relateSegmentString, si *edgeSegmentIntersector) {
	for _, ss := range edgesB {
		for _, mc := range buildChains(ss) {
			for _, hit := range m.tree.SearchIntersect(mc.env) {
				aChain := hit.(*monotoneChain)
				aChain.computeOverlaps(mc, si.processIntersections)
				if si.isDone() {
					return
				}
			}
		}
	}
}

// edgeSegmentIntersector feeds candidate segment pairs through the
// segment intersector and reports resulting node sections to the
// topology computer.
type edgeSegmentIntersector struct {
	tc *topologyComputer
}

func (si *edgeSegmentIntersector) isDone() bool { return si.tc.isResultKnown() }

func (si *edgeSegmentIntersector) processIntersections(ss0 *relateSegmentString, i0 int, ss1 *relateSegmentString, i1 int) {
	// never intersect a segment with itself
	if ss0 == ss1 && i0 == i1 {
		return
	}
	if ss0.isA {
		si.addIntersections(ss0, i0, ss1, i1)
	} else {
		si.addIntersections(ss1, i1, ss0, i0)
	}
}

func (si *edgeSegmentIntersector) addIntersections(ssA *relateSegmentString, iA int, ssB *relateSegmentString, iB int) {
	a0 := ssA.coord(iA)
	a1 := ssA.coord(iA + 1)
	b0 := ssB.coord(iB)
	b1 := ssB.coord(iB + 1)
	r := intersectSegments(a0, a1, b0, b1)
	if r.kind == intNone {
		return
	}
	for i := 0; i < r.n; i++ {
		pt := r.pts[i]
		// Endpoint intersections are added once only, for their
		// canonical segments. Proper intersections lie on a unique
		// segment pair, and roundoff makes the containment test
		// unreliable for them, so they are always processed.
		if r.proper || (ssA.isContainingSegment(iA, pt) && ssB.isContainingSegment(iB, pt)) {
			si.tc.addIntersection(ssA.createNodeSection(iA, pt), ssB.createNodeSection(iB, pt))
		}
	}
}
