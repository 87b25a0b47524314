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

package main

import (
	"context"
	"io"

	"github.com/grailbio/base/file"
	"github.com/grailbio/base/log"
	"github.com/grailbio/storf/encoding/storf"
	"github.com/grailbio/storf/interval"
	"github.com/grailbio/storf/orf"
	"github.com/grailbio/storf/tiling"
)

type runOpts struct {
	Tiling tiling.Opts
	// Region, if nonempty, restricts the input to ORFs inside it.
	Region string
	// Top, if positive, keeps only the Top longest ORFs of each contig.
	Top           int
	OutPrefix     string
	WriteFASTA    bool
	OverlapReport bool
}

func run(ctx context.Context, inPath string, opts runOpts) error {
	if err := opts.Tiling.Validate(); err != nil {
		return err
	}
	var restrict *interval.Region
	if opts.Region != "" {
		r, err := interval.ParseRegionString(opts.Region)
		if err != nil {
			return err
		}
		restrict = &r
	}

	contigs, err := storf.LoadPath(ctx, inPath)
	if err != nil {
		return err
	}
	contigs = selectInput(contigs, restrict, opts.Top)

	filtered, err := tiling.FilterAll(storf.Records(contigs), opts.Tiling)
	if err != nil {
		return err
	}
	out := make([]storf.Contig, len(contigs))
	var nIn, nOut, covered int
	for i, c := range contigs {
		out[i] = storf.Contig{Name: c.Name, ORFs: filtered[i]}
		nIn += c.ORFs.Len()
		nOut += filtered[i].Len()
		covered += coverage(filtered[i])
		log.Debug.Printf("%s: kept %d of %d ORFs", c.Name, filtered[i].Len(), c.ORFs.Len())
	}
	log.Printf("kept %d of %d ORFs on %d contigs, covering %d bases", nOut, nIn, len(contigs), covered)

	if err := writePath(ctx, opts.OutPrefix+".tsv", func(w io.Writer) error {
		return storf.WriteTSV(w, out)
	}); err != nil {
		return err
	}
	if opts.WriteFASTA {
		if err := writePath(ctx, opts.OutPrefix+".fasta", func(w io.Writer) error {
			return storf.WriteFASTA(w, out)
		}); err != nil {
			return err
		}
	}
	if opts.OverlapReport {
		report := make([]storf.ContigOverlaps, len(contigs))
		for i, c := range contigs {
			report[i].Name = c.Name
			if report[i].Overlaps, err = tiling.KindOverlaps(c.ORFs); err != nil {
				return err
			}
		}
		if err := writePath(ctx, opts.OutPrefix+".overlaps.tsv", func(w io.Writer) error {
			return storf.WriteOverlapTSV(w, report)
		}); err != nil {
			return err
		}
	}
	return nil
}

// selectInput applies the -region and -top restrictions.  Contigs left empty
// by the region are dropped.
func selectInput(contigs []storf.Contig, restrict *interval.Region, top int) []storf.Contig {
	var out []storf.Contig
	for _, c := range contigs {
		orfs := c.ORFs
		if restrict != nil {
			if c.Name != restrict.ChrName {
				continue
			}
			orfs = orfs.Filter(func(r orf.Record) bool {
				return restrict.Includes(c.Name, interval.Range{Start: r.Start, Stop: r.Stop})
			})
		}
		if top > 0 {
			orfs = orfs.Longest(top)
		}
		out = append(out, storf.Contig{Name: c.Name, ORFs: orfs})
	}
	return out
}

func coverage(reg *orf.Registry) int {
	ranges := make([]interval.Range, reg.Len())
	for i := range ranges {
		rec := reg.At(i)
		ranges[i] = interval.Range{Start: rec.Start, Stop: rec.Stop}
	}
	return interval.NewUnion(ranges).Covered()
}

func writePath(ctx context.Context, path string, write func(io.Writer) error) (err error) {
	var dst file.File
	if dst, err = file.Create(ctx, path); err != nil {
		return
	}
	defer file.CloseAndReport(ctx, dst, &err)
	return write(dst.Writer(ctx))
}
