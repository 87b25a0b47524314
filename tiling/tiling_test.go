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

package tiling_test

import (
	"math/rand"
	"testing"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/storf/interval"
	"github.com/grailbio/storf/orf"
	"github.com/grailbio/storf/tiling"
	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
)

func rec(start, stop, length int, kind orf.Kind, rank int) orf.Record {
	return orf.Record{
		Start:  start,
		Stop:   stop,
		Seq:    "ATG...",
		Frame:  1,
		Strand: orf.Forward,
		Length: length,
		Kind:   kind,
		Rank:   rank,
	}
}

// fixture is the six-record contig StORF-Finder's own tests use.
func fixture() *orf.Registry {
	return orf.MustNewRegistry(
		rec(100, 300, 201, orf.Standard, 0),
		rec(150, 320, 171, orf.Standard, 1),
		rec(310, 500, 191, orf.Connected, 2),
		rec(490, 700, 211, orf.Standard, 3),
		rec(650, 850, 201, orf.Connected, 4),
		rec(900, 1100, 201, orf.Standard, 5),
	)
}

func opts(p tiling.PriorityStrategy, threshold int, o tiling.FinalOrder) tiling.Opts {
	return tiling.Opts{Priority: p, OverlapThreshold: threshold, Order: o}
}

func mustFilter(t *testing.T, reg *orf.Registry, o tiling.Opts) []orf.Key {
	out, err := tiling.Filter(reg, o)
	assert.NoError(t, err)
	return out.Keys()
}

func TestFilterDefaults(t *testing.T) {
	in := fixture()
	before := in.Keys()
	got := mustFilter(t, in, tiling.DefaultOpts)
	// 150-320 overlaps 100-300 by 151 bases; 650-850 overlaps the longer
	// 490-700 by 51 bases.
	expect.EQ(t, got, []orf.Key{{100, 300}, {310, 500}, {490, 700}, {900, 1100}})
	expect.EQ(t, in.Keys(), before)
}

func TestFilterKindThenLength(t *testing.T) {
	got := mustFilter(t, fixture(), opts(tiling.ByKindThenLength, 50, tiling.ByStartPosition))
	expect.EQ(t, got, []orf.Key{{100, 300}, {310, 500}, {650, 850}, {900, 1100}})
}

func TestFilterTightThreshold(t *testing.T) {
	got := mustFilter(t, fixture(), opts(tiling.ByLength, 10, tiling.ByStartPosition))
	expect.EQ(t, got, []orf.Key{{100, 300}, {490, 700}, {900, 1100}})
}

func TestFilterLooseThreshold(t *testing.T) {
	reg := orf.MustNewRegistry(
		rec(100, 200, 100, orf.Standard, 1),
		rec(180, 250, 70, orf.Connected, 2),
		rec(210, 300, 90, orf.Standard, 3),
		rec(240, 320, 80, orf.Connected, 4),
	)
	got := mustFilter(t, reg, opts(tiling.ByLength, 100, tiling.ByStartPosition))
	expect.EQ(t, len(got), 4)

	got = mustFilter(t, reg, opts(tiling.ByLength, 20, tiling.ByStartPosition))
	expect.EQ(t, got, []orf.Key{{100, 200}, {210, 300}})

	got = mustFilter(t, reg, opts(tiling.ByKindThenLength, 20, tiling.ByStartPosition))
	expect.EQ(t, got, []orf.Key{{180, 250}, {240, 320}})
}

func TestFilterUnordered(t *testing.T) {
	got := mustFilter(t, fixture(), opts(tiling.ByLength, 50, tiling.Unordered))
	// Priority order: 490-700, then the 201-long records in input order, then
	// 310-500.
	expect.EQ(t, got, []orf.Key{{490, 700}, {100, 300}, {900, 1100}, {310, 500}})
}

func TestFilterByRank(t *testing.T) {
	reg := orf.MustNewRegistry(
		rec(100, 300, 201, orf.Standard, 40),
		rec(150, 320, 171, orf.Standard, 1),
		rec(310, 500, 191, orf.Connected, 7),
		rec(900, 1100, 201, orf.Standard, 3),
	)
	got := mustFilter(t, reg, opts(tiling.ByLength, 50, tiling.ByRank))
	expect.EQ(t, got, []orf.Key{{900, 1100}, {310, 500}, {100, 300}})
}

func TestFilterThresholdBoundary(t *testing.T) {
	// Overlap is 200-181+1 = 20 bases.
	reg := orf.MustNewRegistry(
		rec(100, 200, 101, orf.Standard, 0),
		rec(181, 250, 70, orf.Standard, 1),
	)
	expect.EQ(t, mustFilter(t, reg, opts(tiling.ByLength, 20, tiling.ByStartPosition)),
		[]orf.Key{{100, 200}})
	expect.EQ(t, mustFilter(t, reg, opts(tiling.ByLength, 21, tiling.ByStartPosition)),
		[]orf.Key{{100, 200}, {181, 250}})
}

func TestFilterZeroThreshold(t *testing.T) {
	reg := orf.MustNewRegistry(
		rec(100, 200, 101, orf.Standard, 0),
		rec(199, 250, 52, orf.Standard, 1),
		rec(300, 400, 101, orf.Standard, 2),
	)
	expect.EQ(t, mustFilter(t, reg, opts(tiling.ByLength, 0, tiling.ByStartPosition)),
		[]orf.Key{{100, 200}, {300, 400}})
}

func TestFilterSharedEndpointIsNotAConflict(t *testing.T) {
	reg := orf.MustNewRegistry(
		rec(100, 200, 101, orf.Standard, 0),
		rec(200, 300, 101, orf.Standard, 1),
		rec(50, 100, 51, orf.Standard, 2),
	)
	expect.EQ(t, mustFilter(t, reg, opts(tiling.ByLength, 1, tiling.ByStartPosition)),
		[]orf.Key{{50, 100}, {100, 200}, {200, 300}})
}

func TestFilterNestedIgnoresThreshold(t *testing.T) {
	reg := orf.MustNewRegistry(
		rec(200, 300, 101, orf.Standard, 0),
		rec(100, 500, 401, orf.Standard, 1),
		rec(100, 150, 51, orf.Connected, 2),
		rec(450, 500, 51, orf.Standard, 3),
	)
	expect.EQ(t, mustFilter(t, reg, opts(tiling.ByLength, 10000, tiling.ByStartPosition)),
		[]orf.Key{{100, 500}})
}

func TestFilterNestedHigherPriorityInnerSurvives(t *testing.T) {
	// Length is trusted as given: the inner record outranks its container,
	// so the pair is a partial overlap from the inner record's point of view.
	reg := orf.MustNewRegistry(
		rec(100, 500, 10, orf.Standard, 0),
		rec(200, 300, 500, orf.Standard, 1),
	)
	expect.EQ(t, mustFilter(t, reg, opts(tiling.ByLength, 1000, tiling.ByStartPosition)),
		[]orf.Key{{100, 500}, {200, 300}})
	expect.EQ(t, mustFilter(t, reg, opts(tiling.ByLength, 101, tiling.ByStartPosition)),
		[]orf.Key{{200, 300}})
}

func TestFilterDroppedRecordsDoNotDrop(t *testing.T) {
	reg := orf.MustNewRegistry(
		rec(400, 600, 200, orf.Standard, 2),
		rec(250, 450, 250, orf.Standard, 1),
		rec(100, 300, 300, orf.Standard, 0),
	)
	// 250-450 loses to 100-300 before it gets a chance to knock out 400-600.
	expect.EQ(t, mustFilter(t, reg, opts(tiling.ByLength, 50, tiling.ByStartPosition)),
		[]orf.Key{{100, 300}, {400, 600}})
}

func TestFilterEqualLengthTies(t *testing.T) {
	reg := orf.MustNewRegistry(
		rec(100, 200, 101, orf.Standard, 0),
		rec(150, 250, 101, orf.Connected, 1),
	)
	expect.EQ(t, mustFilter(t, reg, opts(tiling.ByLength, 50, tiling.ByStartPosition)),
		[]orf.Key{{100, 200}})
	expect.EQ(t, mustFilter(t, reg, opts(tiling.ByKindThenLength, 50, tiling.ByStartPosition)),
		[]orf.Key{{150, 250}})

	swapped := orf.MustNewRegistry(reg.At(1), reg.At(0))
	expect.EQ(t, mustFilter(t, swapped, opts(tiling.ByLength, 50, tiling.ByStartPosition)),
		[]orf.Key{{150, 250}})
}

func TestFilterEmpty(t *testing.T) {
	out, err := tiling.Filter(&orf.Registry{}, tiling.DefaultOpts)
	assert.NoError(t, err)
	expect.EQ(t, out.Len(), 0)
	out, err = tiling.Filter(nil, tiling.DefaultOpts)
	assert.NoError(t, err)
	expect.EQ(t, out.Len(), 0)
}

func TestFilterConfigErrors(t *testing.T) {
	for _, o := range []tiling.Opts{
		opts(tiling.PriorityStrategy(7), 50, tiling.ByStartPosition),
		opts(tiling.ByLength, 50, tiling.FinalOrder(-1)),
		opts(tiling.ByLength, -1, tiling.ByStartPosition),
	} {
		out, err := tiling.Filter(fixture(), o)
		expect.True(t, errors.Is(errors.Invalid, err), "%+v: %v", o, err)
		expect.True(t, out == nil)
	}
}

func TestFilterNoOverlapKeepsEverything(t *testing.T) {
	reg := orf.MustNewRegistry(
		rec(700, 800, 101, orf.Standard, 2),
		rec(100, 200, 101, orf.Connected, 0),
		rec(400, 450, 51, orf.Standard, 1),
	)
	for _, p := range []tiling.PriorityStrategy{tiling.ByLength, tiling.ByKindThenLength} {
		expect.EQ(t, mustFilter(t, reg, opts(p, 0, tiling.ByStartPosition)),
			[]orf.Key{{100, 200}, {400, 450}, {700, 800}})
	}
}

func randomRegistry(r *rand.Rand, n int) *orf.Registry {
	reg := &orf.Registry{}
	for reg.Len() < n {
		start := 1 + r.Intn(5000)
		stop := start + r.Intn(600)
		kind := orf.Standard
		if r.Intn(3) == 0 {
			kind = orf.Connected
		}
		// Duplicate keys are simply retried.
		_ = reg.Add(rec(start, stop, stop-start+1, kind, r.Intn(1000)))
	}
	return reg
}

func TestFilterProperties(t *testing.T) {
	r := rand.New(rand.NewSource(0))
	for iter := 0; iter < 50; iter++ {
		in := randomRegistry(r, 5+r.Intn(200))
		o := opts(tiling.PriorityStrategy(r.Intn(2)), r.Intn(120), tiling.FinalOrder(r.Intn(3)))
		out, err := tiling.Filter(in, o)
		assert.NoError(t, err)

		// Subset, unmodified.
		for i := 0; i < out.Len(); i++ {
			got := out.At(i)
			want, ok := in.Get(got.Key())
			assert.True(t, ok)
			expect.EQ(t, got, want)
		}

		// No surviving pair is in conflict.  Lengths are consistent with the
		// coordinates here, so under ByLength a container always outranks what
		// it contains.  Under ByKindThenLength a Con-StORF may sit inside a
		// surviving StORF as long as it is shorter than the threshold.
		for i := 0; i < out.Len(); i++ {
			for j := i + 1; j < out.Len(); j++ {
				a, b := out.At(i), out.At(j)
				if b.Start >= a.Stop || b.Stop <= a.Start {
					continue
				}
				ar := interval.Range{Start: a.Start, Stop: a.Stop}
				br := interval.Range{Start: b.Start, Stop: b.Stop}
				if o.Priority == tiling.ByLength {
					expect.False(t, interval.Contains(ar, br) || interval.Contains(br, ar))
				}
				expect.LT(t, interval.OverlapLen(ar, br), o.OverlapThreshold)
			}
		}

		switch o.Order {
		case tiling.ByStartPosition:
			for i := 1; i < out.Len(); i++ {
				expect.LE(t, out.At(i-1).Start, out.At(i).Start)
			}
		case tiling.ByRank:
			for i := 1; i < out.Len(); i++ {
				expect.LE(t, out.At(i-1).Rank, out.At(i).Rank)
			}
		}

		again, err := tiling.Filter(in, o)
		assert.NoError(t, err)
		expect.EQ(t, again.Keys(), out.Keys())
	}
}

func TestFilterAll(t *testing.T) {
	regs := []*orf.Registry{fixture(), {}, orf.MustNewRegistry(rec(5, 50, 46, orf.Standard, 0))}
	out, err := tiling.FilterAll(regs, tiling.DefaultOpts)
	assert.NoError(t, err)
	assert.EQ(t, len(out), 3)
	want, err := tiling.Filter(regs[0], tiling.DefaultOpts)
	assert.NoError(t, err)
	expect.EQ(t, out[0].Keys(), want.Keys())
	expect.EQ(t, out[1].Len(), 0)
	expect.EQ(t, out[2].Keys(), []orf.Key{{5, 50}})

	_, err = tiling.FilterAll(regs, opts(tiling.ByLength, -5, tiling.ByStartPosition))
	expect.True(t, errors.Is(errors.Invalid, err))
}

func TestKindOverlaps(t *testing.T) {
	got, err := tiling.KindOverlaps(fixture())
	assert.NoError(t, err)
	assert.EQ(t, len(got), 3)
	type pair struct {
		con, storf orf.Key
		n          int
	}
	var pairs []pair
	for _, o := range got {
		pairs = append(pairs, pair{o.Connected.Key(), o.Standard.Key(), o.Len})
	}
	expect.EQ(t, pairs, []pair{
		{orf.Key{310, 500}, orf.Key{150, 320}, 11},
		{orf.Key{310, 500}, orf.Key{490, 700}, 11},
		{orf.Key{650, 850}, orf.Key{490, 700}, 51},
	})

	got, err = tiling.KindOverlaps(&orf.Registry{})
	assert.NoError(t, err)
	expect.EQ(t, len(got), 0)
}
