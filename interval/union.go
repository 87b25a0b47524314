// Copyright 2020 Grail Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package interval

import "sort"

// Union is a set of positions represented as a sorted sequence of
// interval-endpoints.  Range k (numbering from zero) starts at element [2k]
// and ends just before element [2k+1]; that is, endpoints are stored
// half-open even though Ranges are closed.
//
// For example, the ranges
//   [5, 14]
//   [7, 16]
//   [20, 24]
// form the union
//   [5, 16] U [20, 24]
// so the endpoints are
//   {5, 17, 20, 25}.
type Union struct {
	endpoints []int
}

// NewUnion merges ranges into a Union.  Ranges may be unsorted and may
// overlap; ranges that touch (one ends at p, the next starts at p+1) are
// merged too.  Empty ranges are ignored.
func NewUnion(ranges []Range) Union {
	sorted := make([]Range, 0, len(ranges))
	for _, r := range ranges {
		if r.Len() > 0 {
			sorted = append(sorted, r)
		}
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	var u Union
	prevStart, prevEnd := -1, -1
	for _, r := range sorted {
		if prevEnd != -1 && r.Start <= prevEnd {
			// Overlapping or adjacent; extend.
			if r.Stop+1 > prevEnd {
				prevEnd = r.Stop + 1
			}
			continue
		}
		if prevEnd != -1 {
			u.endpoints = append(u.endpoints, prevStart, prevEnd)
		}
		prevStart, prevEnd = r.Start, r.Stop+1
	}
	if prevEnd != -1 {
		u.endpoints = append(u.endpoints, prevStart, prevEnd)
	}
	return u
}

// Ranges returns the disjoint ranges of u in increasing order.
func (u Union) Ranges() []Range {
	ranges := make([]Range, 0, len(u.endpoints)/2)
	for i := 0; i < len(u.endpoints); i += 2 {
		ranges = append(ranges, Range{Start: u.endpoints[i], Stop: u.endpoints[i+1] - 1})
	}
	return ranges
}

// Covered returns the number of positions in u.
func (u Union) Covered() int {
	n := 0
	for i := 0; i < len(u.endpoints); i += 2 {
		n += u.endpoints[i+1] - u.endpoints[i]
	}
	return n
}

// Contains reports whether pos is in u.
func (u Union) Contains(pos int) bool {
	// The +1 lines the search up with the half-open endpoints: the result is
	// odd iff pos is inside a range.
	idx := sort.SearchInts(u.endpoints, pos+1)
	return idx&1 == 1
}
