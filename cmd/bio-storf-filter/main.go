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
	"flag"
	"fmt"
	"os"

	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/storf/tiling"
)

var (
	priority      = flag.String("priority", tiling.DefaultOpts.Priority.String(), "Filtering strategy. 'length' prioritises longer ORFs; 'storf_type' prioritises Con-StORFs, then longer ORFs")
	olap          = flag.Int("olap", tiling.DefaultOpts.OverlapThreshold, "Overlap, in nt, at which the lower-priority of two ORFs is dropped")
	storfOrder    = flag.String("so", tiling.DefaultOpts.Order.String(), "Output order: 'start_pos', 'strand' (StORF number) or 'none' (priority order)")
	region        = flag.String("region", "", "Only consider ORFs within this region. Format as <contig ID>:<1-based first pos>-<last pos>, <contig ID>:<1-based pos>, or just <contig ID>")
	top           = flag.Int("top", 0, "Only consider the N longest ORFs of each contig; 0 = all")
	outPrefix     = flag.String("out", "bio-storf-filter", "Output path prefix")
	writeFASTA    = flag.Bool("fasta", false, "Also write surviving ORFs to <out>.fasta")
	overlapReport = flag.Bool("overlap-report", false, "Write Con-StORF/StORF overlaps in the input to <out>.overlaps.tsv")
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [OPTIONS] storfs.fasta\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	shutdown := grail.Init()
	defer shutdown()

	if flag.NArg() != 1 {
		log.Fatalf("expected exactly one input path, got %q", flag.Args())
	}
	opts := runOpts{
		Region:        *region,
		Top:           *top,
		OutPrefix:     *outPrefix,
		WriteFASTA:    *writeFASTA,
		OverlapReport: *overlapReport,
	}
	var err error
	if opts.Tiling.Priority, err = tiling.ParsePriorityStrategy(*priority); err != nil {
		log.Fatal(err)
	}
	if opts.Tiling.Order, err = tiling.ParseFinalOrder(*storfOrder); err != nil {
		log.Fatal(err)
	}
	opts.Tiling.OverlapThreshold = *olap

	if err := run(vcontext.Background(), flag.Arg(0), opts); err != nil {
		log.Fatalf("%v", err)
	}
	log.Debug.Printf("exiting")
}
