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

package tiling

import (
	"sort"

	"github.com/grailbio/base/log"
	"github.com/grailbio/storf/interval"
	"github.com/grailbio/storf/orf"
)

// Filter removes redundant records from reg and returns the survivors in
// opts.Order.  reg is not modified.
//
// Records are ranked by opts.Priority.  Then, for each record x that is
// still present, in rank order, every lower-ranked record y that is still
// present is dropped if
//   - y lies within x, or
//   - y partially overlaps x by at least opts.OverlapThreshold bases.
// Two records for which y.Start >= x.Stop or y.Stop <= x.Start are never in
// conflict, even though that lets a single shared endpoint base through.
//
// An errors.Invalid error is returned, before any work is done, if opts does
// not validate.
func Filter(reg *orf.Registry, opts Opts) (*orf.Registry, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return filter(reg, opts), nil
}

func filter(reg *orf.Registry, opts Opts) *orf.Registry {
	ranked := prioritize(reg.Records(), opts.Priority)
	survivors := sweep(ranked, opts.OverlapThreshold)
	log.Debug.Printf("tiling: kept %d of %d records", len(survivors), len(ranked))

	out := orf.FromOrdered(survivors)
	switch opts.Order {
	case ByStartPosition:
		return out.SortByStart()
	case ByRank:
		return out.SortByRank()
	}
	return out
}

// prioritize sorts recs, most preferred first.  The sort is stable, so
// records the strategy cannot tell apart keep their input order.
func prioritize(recs []orf.Record, p PriorityStrategy) []orf.Record {
	var less func(a, b orf.Record) bool
	switch p {
	case ByKindThenLength:
		less = func(a, b orf.Record) bool {
			if sa, sb := a.Kind.PriorityScore(), b.Kind.PriorityScore(); sa != sb {
				return sa < sb
			}
			return a.Length > b.Length
		}
	default:
		less = func(a, b orf.Record) bool { return a.Length > b.Length }
	}
	sort.SliceStable(recs, func(i, j int) bool { return less(recs[i], recs[j]) })
	return recs
}

// sweep drops conflicting records from ranked and returns the rest, still in
// rank order.  A record can only be dropped by a record ranked above it that
// had not itself been dropped.
func sweep(ranked []orf.Record, threshold int) []orf.Record {
	dropped := make([]bool, len(ranked))
	for i := range ranked {
		if dropped[i] {
			continue
		}
		x := ranked[i]
		xr := interval.Range{Start: x.Start, Stop: x.Stop}
		for j := i + 1; j < len(ranked); j++ {
			if dropped[j] {
				continue
			}
			y := ranked[j]
			if y.Start >= x.Stop || y.Stop <= x.Start {
				continue
			}
			yr := interval.Range{Start: y.Start, Stop: y.Stop}
			if interval.Contains(xr, yr) || interval.OverlapLen(xr, yr) >= threshold {
				dropped[j] = true
			}
		}
	}
	survivors := make([]orf.Record, 0, len(ranked))
	for i, rec := range ranked {
		if !dropped[i] {
			survivors = append(survivors, rec)
		}
	}
	return survivors
}
