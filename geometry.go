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
	"go.uber.org/zap"
)

// lineElement is a single LineString element with its cached envelope.
type lineElement struct {
	pts geom.LineString
	env *geom.Bounds
}

// areaElement is a single polygonal element (a Polygon, or a whole
// MultiPolygon) with its member polygons and cached envelope. Segment
// strings extracted from its rings carry a pointer back to it, so
// that node evaluation can tell a touch within one polygonal element
// from a touch between distinct elements.
type areaElement struct {
	polygonal geom.Polygonal
	polys     []geom.Polygon
	env       *geom.Bounds
}

// RelateGeometry wraps one relate input. It classifies the dimensions
// present, caches the element inventory and envelope, and lazily
// builds the point locator and unique-point set. It is read-only
// after construction except for the lazy caches, so two concurrent
// relate calls must not share an instance.
type RelateGeometry struct {
	g        geom.Geom
	prepared bool
	bnRule   BoundaryNodeRule
	log      *zap.Logger

	env           *geom.Bounds
	empty         bool
	geomDim       Dimension
	hasPoints     bool
	hasLines      bool
	hasAreas      bool
	isLineZeroLen bool

	points []geom.Point
	lines  []*lineElement
	areas  []*areaElement

	locator   *relatePointLocator
	uniquePts map[geom.Point]struct{}
}

func newRelateGeometry(g geom.Geom, prepared bool, rule BoundaryNodeRule, log *zap.Logger) (*RelateGeometry, error) {
	if err := validateGeom(g); err != nil {
		return nil, err
	}
	rg := &RelateGeometry{
		g:        g,
		prepared: prepared,
		bnRule:   rule,
		log:      log,
		env:      g.Bounds(),
		geomDim:  DimFalse,
	}
	rg.empty = isGeomEmpty(g)
	rg.buildInventory(g)
	rg.analyzeDimensions()
	rg.isLineZeroLen = rg.isZeroLength()
	return rg, nil
}

func isGeomEmpty(g geom.Geom) bool {
	switch t := g.(type) {
	case geom.Point:
		return false
	case geom.MultiPoint:
		return len(t) == 0
	case geom.LineString:
		return len(t) == 0
	case geom.MultiLineString:
		for _, l := range t {
			if len(l) > 0 {
				return false
			}
		}
		return true
	case geom.Polygon:
		return polygonIsEmpty(t)
	case geom.MultiPolygon:
		for _, p := range t {
			if !polygonIsEmpty(p) {
				return false
			}
		}
		return true
	case geom.GeometryCollection:
		for _, e := range t {
			if !isGeomEmpty(e) {
				return false
			}
		}
		return true
	}
	return true
}

func polygonIsEmpty(p geom.Polygon) bool {
	for _, ring := range p {
		if len(ring) > 0 {
			return false
		}
	}
	return true
}

func (rg *RelateGeometry) buildInventory(g geom.Geom) {
	switch t := g.(type) {
	case geom.Point:
		rg.points = append(rg.points, t)
	case geom.MultiPoint:
		rg.points = append(rg.points, t...)
	case geom.LineString:
		rg.addLine(t)
	case geom.MultiLineString:
		for _, l := range t {
			rg.addLine(l)
		}
	case geom.Polygon:
		rg.addPolygonal(t, []geom.Polygon{t})
	case geom.MultiPolygon:
		rg.addPolygonal(t, t)
	case geom.GeometryCollection:
		for _, e := range t {
			rg.buildInventory(e)
		}
	}
}

func (rg *RelateGeometry) addLine(l geom.LineString) {
	if len(l) == 0 {
		return
	}
	rg.lines = append(rg.lines, &lineElement{pts: l, env: l.Bounds()})
}

func (rg *RelateGeometry) addPolygonal(polygonal geom.Polygonal, polys []geom.Polygon) {
	var kept []geom.Polygon
	for _, p := range polys {
		if !polygonIsEmpty(p) {
			kept = append(kept, p)
		}
	}
	if len(kept) == 0 {
		return
	}
	rg.areas = append(rg.areas, &areaElement{
		polygonal: polygonal,
		polys:     kept,
		env:       polygonal.Bounds(),
	})
}

func (rg *RelateGeometry) analyzeDimensions() {
	if rg.empty {
		return
	}
	switch rg.g.(type) {
	case geom.Point, geom.MultiPoint:
		rg.hasPoints = true
		rg.geomDim = DimP
		return
	case geom.LineString, geom.MultiLineString:
		rg.hasLines = true
		rg.geomDim = DimL
		return
	case geom.Polygon, geom.MultiPolygon:
		rg.hasAreas = true
		rg.geomDim = DimA
		return
	}
	// mixed collection: classify from the element inventory
	if len(rg.points) > 0 {
		rg.hasPoints = true
		if rg.geomDim < DimP {
			rg.geomDim = DimP
		}
	}
	if len(rg.lines) > 0 {
		rg.hasLines = true
		if rg.geomDim < DimL {
			rg.geomDim = DimL
		}
	}
	if len(rg.areas) > 0 {
		rg.hasAreas = true
		if rg.geomDim < DimA {
			rg.geomDim = DimA
		}
	}
}

func (rg *RelateGeometry) isZeroLength() bool {
	for _, le := range rg.lines {
		if !isZeroLengthLine(le.pts) {
			return false
		}
	}
	return true
}

func isZeroLengthLine(pts []geom.Point) bool {
	if len(pts) < 2 {
		return true
	}
	p0 := pts[0]
	for i := 1; i < len(pts); i++ {
		// most non-zero-length lines exit on the first vertex
		if pts[i] != p0 {
			return false
		}
	}
	return true
}

func (rg *RelateGeometry) isEmpty() bool { return rg.empty }

func (rg *RelateGeometry) envelope() *geom.Bounds { return rg.env }

func (rg *RelateGeometry) dimension() Dimension { return rg.geomDim }

func (rg *RelateGeometry) hasDimension(dim Dimension) bool {
	switch dim {
	case DimP:
		return rg.hasPoints
	case DimL:
		return rg.hasLines
	case DimA:
		return rg.hasAreas
	}
	return false
}

// dimensionReal is the effective dimension: a geometry whose lineal
// elements are all zero-length collapses to puntal.
func (rg *RelateGeometry) dimensionReal() Dimension {
	if rg.empty {
		return DimFalse
	}
	if rg.geomDim == DimL && rg.isLineZeroLen {
		return DimP
	}
	if rg.hasAreas {
		return DimA
	}
	if rg.hasLines {
		return DimL
	}
	return DimP
}

func (rg *RelateGeometry) hasEdges() bool { return rg.hasLines || rg.hasAreas }

// isSelfNodingRequired reports whether self-intersections of this
// geometry must be noded explicitly. Points and valid polygonal
// geometries never self-cross; lines and collections with multiple
// potentially overlapping polygons may.
func (rg *RelateGeometry) isSelfNodingRequired() bool {
	switch t := rg.g.(type) {
	case geom.Point, geom.MultiPoint, geom.Polygon, geom.MultiPolygon:
		return false
	case geom.GeometryCollection:
		if rg.hasAreas && len(t) == 1 {
			return false
		}
	}
	return true
}

func (rg *RelateGeometry) getLocator() *relatePointLocator {
	if rg.locator == nil {
		rg.locator = newRelatePointLocator(rg)
	}
	return rg.locator
}

func (rg *RelateGeometry) hasBoundary() bool {
	return rg.getLocator().hasBoundary()
}

func (rg *RelateGeometry) locateWithDim(p geom.Point) int {
	return rg.getLocator().locateWithDim(p)
}

func (rg *RelateGeometry) locateLineEndWithDim(p geom.Point) int {
	return rg.getLocator().locateLineEndWithDim(p)
}

func (rg *RelateGeometry) locateNode(p geom.Point, parentPolygonal *areaElement) Location {
	return dimLocLocation(rg.getLocator().locateNodeWithDim(p, parentPolygonal))
}

// locateAreaVertex locates a point which is an exact vertex of one of
// this geometry's polygons. No parent is excluded, since the vertex
// is detected as being on the boundary of its own polygon.
func (rg *RelateGeometry) locateAreaVertex(p geom.Point) Location {
	return rg.locateNode(p, nil)
}

func (rg *RelateGeometry) isNodeInArea(p geom.Point, parentPolygonal *areaElement) bool {
	return rg.getLocator().locateNodeWithDim(p, parentPolygonal) == dimLocAreaInterior
}

// getUniquePoints returns the distinct coordinates of a puntal
// geometry, built on first use.
func (rg *RelateGeometry) getUniquePoints() map[geom.Point]struct{} {
	if rg.uniquePts == nil {
		rg.uniquePts = make(map[geom.Point]struct{}, len(rg.points))
		for _, p := range rg.points {
			rg.uniquePts[p] = struct{}{}
		}
	}
	return rg.uniquePts
}

// effectivePoints returns the point elements not covered by a
// higher-dimensional element of the same geometry.
func (rg *RelateGeometry) effectivePoints() []geom.Point {
	if len(rg.points) == 0 {
		return nil
	}
	if rg.dimensionReal() <= DimP {
		return rg.points
	}
	var out []geom.Point
	for _, p := range rg.points {
		if dimLocDimension(rg.locateWithDim(p)) == DimP {
			out = append(out, p)
		}
	}
	return out
}

// extractSegmentStrings emits one segment string per line element and
// per polygon ring whose envelope interacts with env (no filter if
// env is nil). Ring shells are oriented clockwise and holes
// counterclockwise; repeated vertices are removed and open rings are
// closed.
func (rg *RelateGeometry) extractSegmentStrings(isA bool, env *geom.Bounds) []*relateSegmentString {
	var out []*relateSegmentString
	elementID := 0
	for _, le := range rg.lines {
		if env != nil && !envOverlaps(env, le.env) {
			continue
		}
		elementID++
		pts := removeRepeatedPoints(le.pts)
		out = append(out, newLineSegmentString(pts, isA, elementID))
	}
	for _, ae := range rg.areas {
		if env != nil && !envOverlaps(env, ae.env) {
			continue
		}
		for _, poly := range ae.polys {
			if env != nil && !envOverlaps(env, poly.Bounds()) {
				continue
			}
			elementID++
			for ringID, ring := range poly {
				if len(ring) == 0 {
					continue
				}
				if env != nil && !envOverlaps(env, geom.LineString(ring).Bounds()) {
					continue
				}
				pts := rg.conditionRing(ring, ringID == 0)
				out = append(out, newRingSegmentString(pts, isA, elementID, ringID, ae))
			}
		}
	}
	return out
}

func (rg *RelateGeometry) conditionRing(ring []geom.Point, isShell bool) []geom.Point {
	pts := conditionRing(ring, isShell)
	if len(pts) > 1 && ring[0] != ring[len(ring)-1] {
		rg.log.Debug("closed open polygon ring",
			zap.Float64("x", ring[0].X), zap.Float64("y", ring[0].Y))
	}
	return pts
}

// conditionRing prepares a polygon ring for noding: closed, free of
// repeated vertices, shell clockwise, holes counterclockwise.
func conditionRing(ring []geom.Point, isShell bool) []geom.Point {
	pts := removeRepeatedPoints(ring)
	if len(pts) > 1 && pts[0] != pts[len(pts)-1] {
		pts = append(pts, pts[0])
	}
	wantCW := isShell
	if wantCW == isCCW(pts) {
		reversePoints(pts)
	}
	return pts
}

// removeRepeatedPoints copies pts, dropping consecutive duplicates.
func removeRepeatedPoints(pts []geom.Point) []geom.Point {
	out := make([]geom.Point, 0, len(pts))
	for i, p := range pts {
		if i > 0 && p == out[len(out)-1] {
			continue
		}
		out = append(out, p)
	}
	return out
}

func reversePoints(pts []geom.Point) {
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
}
