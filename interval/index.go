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

import (
	"sort"

	biointerval "github.com/biogo/store/interval"
)

// node adapts a closed Range to the half-open integer ranges biogo's
// interval tree works with.
type node struct {
	r  Range
	id uintptr
}

func (n node) Overlap(b biointerval.IntRange) bool {
	return n.r.Stop+1 > b.Start && n.r.Start < b.End
}
func (n node) ID() uintptr { return n.id }
func (n node) Range() biointerval.IntRange {
	return biointerval.IntRange{Start: n.r.Start, End: n.r.Stop + 1}
}

// query is a closed range used to probe the tree.
type query Range

func (q query) Overlap(b biointerval.IntRange) bool {
	return q.Stop+1 > b.Start && q.Start < b.End
}

// Index answers "which stored ranges share a base with this one" queries.
// Ranges are identified by the order in which they were added, starting at 0.
// An Index is not safe for concurrent mutation.
type Index struct {
	tree biointerval.IntTree
	n    int
}

// NewIndex builds an Index over ranges; range i gets id i.
func NewIndex(ranges []Range) (*Index, error) {
	idx := &Index{}
	for _, r := range ranges {
		if _, err := idx.add(r, true); err != nil {
			return nil, err
		}
	}
	idx.tree.AdjustRanges()
	return idx, nil
}

// Add inserts r and returns its id.
func (idx *Index) Add(r Range) (int, error) {
	return idx.add(r, false)
}

func (idx *Index) add(r Range, fast bool) (int, error) {
	id := idx.n
	if err := idx.tree.Insert(node{r: r, id: uintptr(id)}, fast); err != nil {
		return -1, err
	}
	idx.n++
	return id, nil
}

// Len returns the number of ranges in the index.
func (idx *Index) Len() int {
	return idx.n
}

// Overlapping returns the ids of the stored ranges that share at least one
// base with r, in increasing order.
func (idx *Index) Overlapping(r Range) []int {
	if r.Len() == 0 {
		return nil
	}
	hits := idx.tree.Get(query(r))
	ids := make([]int, len(hits))
	for i, h := range hits {
		ids[i] = int(h.ID())
	}
	sort.Ints(ids)
	return ids
}
