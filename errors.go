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
	"math"

	"github.com/ctessum/geom"
	"github.com/pkg/errors"
)

// ErrInvalidGeometry reports an input with non-finite ordinates.
var ErrInvalidGeometry = errors.New("relate: invalid geometry")

// ErrUnsupportedGeometry reports an input geometry type the engine
// does not handle.
var ErrUnsupportedGeometry = errors.New("relate: unsupported geometry")

// ErrInvalidPattern reports a malformed DE-9IM pattern string.
var ErrInvalidPattern = errors.New("relate: invalid DE-9IM pattern")

// validateGeom checks that g is a supported geometry variant with
// finite coordinates. A predicate returning false is a value, not an
// error; only malformed inputs are rejected.
func validateGeom(g geom.Geom) error {
	switch t := g.(type) {
	case geom.Point:
		return validatePoint(t)
	case geom.MultiPoint:
		for _, p := range t {
			if err := validatePoint(p); err != nil {
				return err
			}
		}
	case geom.LineString:
		return validatePoints(t)
	case geom.MultiLineString:
		for _, l := range t {
			if err := validatePoints(l); err != nil {
				return err
			}
		}
	case geom.Polygon:
		return validatePolygon(t)
	case geom.MultiPolygon:
		for _, p := range t {
			if err := validatePolygon(p); err != nil {
				return err
			}
		}
	case geom.GeometryCollection:
		for _, e := range t {
			if err := validateGeom(e); err != nil {
				return err
			}
		}
	default:
		return errors.Wrapf(ErrUnsupportedGeometry, "type %T", g)
	}
	return nil
}

func validatePolygon(p geom.Polygon) error {
	for _, ring := range p {
		if err := validatePoints(ring); err != nil {
			return err
		}
	}
	return nil
}

func validatePoints(pts []geom.Point) error {
	for _, p := range pts {
		if err := validatePoint(p); err != nil {
			return err
		}
	}
	return nil
}

func validatePoint(p geom.Point) error {
	if math.IsNaN(p.X) || math.IsNaN(p.Y) ||
		math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
		return errors.Wrapf(ErrInvalidGeometry, "non-finite ordinate at (%v, %v)", p.X, p.Y)
	}
	return nil
}
