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

// Envelope helpers over geom.Bounds. An empty geometry has inverted
// bounds (Min > Max). envOverlaps is false when either side is empty;
// envCovers is true for an empty b, and envEquals is true when both
// sides are empty.

func envIsEmpty(b *geom.Bounds) bool {
	return b == nil || b.Max.X < b.Min.X || b.Max.Y < b.Min.Y
}

func envOverlaps(a, b *geom.Bounds) bool {
	if envIsEmpty(a) || envIsEmpty(b) {
		return false
	}
	return a.Overlaps(b)
}

// envCovers reports whether a contains b. An empty b is covered by
// anything; an empty a covers only an empty b.
func envCovers(a, b *geom.Bounds) bool {
	if envIsEmpty(b) {
		return true
	}
	if envIsEmpty(a) {
		return false
	}
	return b.Min.X >= a.Min.X && b.Max.X <= a.Max.X &&
		b.Min.Y >= a.Min.Y && b.Max.Y <= a.Max.Y
}

func envEquals(a, b *geom.Bounds) bool {
	if envIsEmpty(a) || envIsEmpty(b) {
		return envIsEmpty(a) && envIsEmpty(b)
	}
	return a.Min == b.Min && a.Max == b.Max
}

func envContainsPoint(b *geom.Bounds, p geom.Point) bool {
	if envIsEmpty(b) {
		return false
	}
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// envIntersection returns the overlap of two envelopes, or nil if
// they are disjoint.
func envIntersection(a, b *geom.Bounds) *geom.Bounds {
	if !envOverlaps(a, b) {
		return nil
	}
	r := &geom.Bounds{
		Min: geom.Point{X: a.Min.X, Y: a.Min.Y},
		Max: geom.Point{X: a.Max.X, Y: a.Max.Y},
	}
	if b.Min.X > r.Min.X {
		r.Min.X = b.Min.X
	}
	if b.Min.Y > r.Min.Y {
		r.Min.Y = b.Min.Y
	}
	if b.Max.X < r.Max.X {
		r.Max.X = b.Max.X
	}
	if b.Max.Y < r.Max.Y {
		r.Max.Y = b.Max.Y
	}
	return r
}

// envOfSegment returns the envelope of the segment (p0, p1).
func envOfSegment(p0, p1 geom.Point) *geom.Bounds {
	b := geom.NewBoundsPoint(p0)
	b.Extend(geom.NewBoundsPoint(p1))
	return b
}

// envSegmentContains reports whether the envelope of segment (p0, p1)
// contains q.
func envSegmentContains(p0, p1 geom.Point, q geom.Point) bool {
	minX, maxX := p0.X, p1.X
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	minY, maxY := p0.Y, p1.Y
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	return q.X >= minX && q.X <= maxX && q.Y >= minY && q.Y <= maxY
}
