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
	"github.com/grailbio/storf/interval"
	"github.com/grailbio/storf/orf"
)

// KindOverlap pairs a Con-StORF with a StORF it shares bases with.
type KindOverlap struct {
	Connected orf.Record
	Standard  orf.Record
	// Len is the number of shared bases.
	Len int
}

// KindOverlaps returns, for each Con-StORF in reg (in registry order), every
// StORF in reg (in registry order) that shares at least one base with it.
func KindOverlaps(reg *orf.Registry) ([]KindOverlap, error) {
	var storfs []orf.Record
	var ranges []interval.Range
	for i := 0; i < reg.Len(); i++ {
		if rec := reg.At(i); rec.Kind == orf.Standard {
			storfs = append(storfs, rec)
			ranges = append(ranges, interval.Range{Start: rec.Start, Stop: rec.Stop})
		}
	}
	idx, err := interval.NewIndex(ranges)
	if err != nil {
		return nil, err
	}
	var out []KindOverlap
	for i := 0; i < reg.Len(); i++ {
		con := reg.At(i)
		if con.Kind != orf.Connected {
			continue
		}
		cr := interval.Range{Start: con.Start, Stop: con.Stop}
		for _, id := range idx.Overlapping(cr) {
			out = append(out, KindOverlap{
				Connected: con,
				Standard:  storfs[id],
				Len:       interval.OverlapLen(cr, ranges[id]),
			})
		}
	}
	return out, nil
}
