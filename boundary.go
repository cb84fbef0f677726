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

// A BoundaryNodeRule decides whether a line endpoint with the given
// number of incident line ends is part of the geometry boundary.
type BoundaryNodeRule interface {
	IsInBoundary(boundaryCount int) bool
}

var (
	// BoundaryRuleMod2 is the OGC SFS rule: an endpoint is on the
	// boundary iff an odd number of line ends meet there. This is the
	// default rule.
	BoundaryRuleMod2 BoundaryNodeRule = mod2Rule{}

	// BoundaryRuleEndpoint places every line endpoint on the boundary.
	BoundaryRuleEndpoint BoundaryNodeRule = endpointRule{}

	// BoundaryRuleMultivalentEndpoint places endpoints where two or
	// more line ends meet on the boundary.
	BoundaryRuleMultivalentEndpoint BoundaryNodeRule = multivalentRule{}

	// BoundaryRuleMonovalentEndpoint places only endpoints where
	// exactly one line end occurs on the boundary.
	BoundaryRuleMonovalentEndpoint BoundaryNodeRule = monovalentRule{}
)

type mod2Rule struct{}

func (mod2Rule) IsInBoundary(boundaryCount int) bool { return boundaryCount%2 == 1 }

type endpointRule struct{}

func (endpointRule) IsInBoundary(boundaryCount int) bool { return boundaryCount > 0 }

type multivalentRule struct{}

func (multivalentRule) IsInBoundary(boundaryCount int) bool { return boundaryCount > 1 }

type monovalentRule struct{}

func (monovalentRule) IsInBoundary(boundaryCount int) bool { return boundaryCount == 1 }
