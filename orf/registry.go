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

package orf

import (
	"fmt"
	"sort"

	"github.com/grailbio/base/errors"
)

// Registry is an insertion-ordered collection of Records keyed by
// (start, stop).  The zero value is an empty registry ready for use.
//
// Methods that return a *Registry never modify the receiver.
type Registry struct {
	recs  []Record
	index map[Key]int // key -> position in recs
}

// NewRegistry builds a registry from recs, in order.  It fails on the first
// record that violates the registry invariants.
func NewRegistry(recs ...Record) (*Registry, error) {
	r := &Registry{}
	for _, rec := range recs {
		if err := r.Add(rec); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// MustNewRegistry is like NewRegistry but panics on error.  It is meant for
// tests and static fixtures.
func MustNewRegistry(recs ...Record) *Registry {
	r, err := NewRegistry(recs...)
	if err != nil {
		panic(err)
	}
	return r
}

// Add appends rec.  It returns an errors.Precondition error if rec.Start >
// rec.Stop, rec.Start is negative, or a record with the same key is already
// present; the registry is unchanged in that case.
func (r *Registry) Add(rec Record) error {
	if err := rec.validate(); err != nil {
		return err
	}
	k := rec.Key()
	if _, ok := r.index[k]; ok {
		return errors.E(errors.Precondition, fmt.Sprintf("orf: duplicate key %v", k))
	}
	if r.index == nil {
		r.index = make(map[Key]int)
	}
	r.index[k] = len(r.recs)
	r.recs = append(r.recs, rec)
	return nil
}

// Len returns the number of records.  A nil registry is empty.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.recs)
}

// At returns the i'th record in registry order.
func (r *Registry) At(i int) Record {
	return r.recs[i]
}

// Get looks up a record by key.
func (r *Registry) Get(k Key) (Record, bool) {
	if r == nil {
		return Record{}, false
	}
	i, ok := r.index[k]
	if !ok {
		return Record{}, false
	}
	return r.recs[i], true
}

// Keys returns the keys in registry order.
func (r *Registry) Keys() []Key {
	keys := make([]Key, r.Len())
	for i := range keys {
		keys[i] = r.recs[i].Key()
	}
	return keys
}

// Records returns a copy of the records in registry order.
func (r *Registry) Records() []Record {
	if r == nil {
		return nil
	}
	return append([]Record(nil), r.recs...)
}

// Filter returns a registry holding the records for which keep returns true,
// in registry order.
func (r *Registry) Filter(keep func(Record) bool) *Registry {
	out := &Registry{}
	for i := 0; i < r.Len(); i++ {
		if keep(r.recs[i]) {
			out.mustAdd(r.recs[i])
		}
	}
	return out
}

// SortByStart returns a registry ordered by ascending Start.  Records with
// equal starts keep their relative order.
func (r *Registry) SortByStart() *Registry {
	recs := r.Records()
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Start < recs[j].Start
	})
	return fromTrusted(recs)
}

// SortByRank returns a registry ordered by ascending Rank.  Records sharing a
// rank keep their relative order.
func (r *Registry) SortByRank() *Registry {
	recs := r.Records()
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Rank < recs[j].Rank
	})
	return fromTrusted(recs)
}

// Longest returns the n records with the greatest Length, longest first.
// Records of equal length keep their relative order.  If n >= r.Len(), every
// record is returned.
func (r *Registry) Longest(n int) *Registry {
	recs := r.Records()
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Length > recs[j].Length
	})
	if n < 0 {
		n = 0
	}
	if n < len(recs) {
		recs = recs[:n]
	}
	return fromTrusted(recs)
}

// FromOrdered builds a registry from records already known to satisfy the
// registry invariants, e.g. a reordering or subset of another registry's
// records.  It panics if they do not.
func FromOrdered(recs []Record) *Registry {
	return fromTrusted(append([]Record(nil), recs...))
}

func fromTrusted(recs []Record) *Registry {
	r := &Registry{recs: make([]Record, 0, len(recs))}
	for _, rec := range recs {
		r.mustAdd(rec)
	}
	return r
}

func (r *Registry) mustAdd(rec Record) {
	if err := r.Add(rec); err != nil {
		panic(err)
	}
}
