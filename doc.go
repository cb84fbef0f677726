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

/*
Package relate computes topological relationships between 2D vector
geometries from the github.com/ctessum/geom package.

For a pair of geometries it evaluates the Dimensionally Extended
Nine-Intersection Model (DE-9IM) matrix, which records the dimension
of the intersection of the interiors, boundaries and exteriors of the
two inputs. The named spatial predicates (Intersects, Contains,
Touches, Crosses, and so on) are answered from the same machinery,
short-circuiting the evaluation as soon as the predicate value is
determined.

	overlaps, err := relate.Overlaps(a, b)

	im, err := relate.Relate(a, b)
	fmt.Println(im) // e.g. "212101212"

Repeated queries against one geometry should use Prepare, which
caches the point locators and the edge index of the prepared side:

	r, err := relate.Prepare(a)
	for _, b := range candidates {
		hit, err := r.EvaluatePredicate(b, relate.IntersectsPredicate())
		...
	}

The engine is single-threaded; a RelateNG instance and the geometries
passed to it must not be used concurrently or mutated during a call.
*/
package relate
