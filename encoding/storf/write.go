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

package storf

import (
	"io"
	"strconv"

	"github.com/grailbio/base/tsv"
	"github.com/grailbio/storf/encoding/fasta"
	"github.com/grailbio/storf/orf"
	"github.com/grailbio/storf/tiling"
)

// WriteTSV writes one line per record, contig by contig, in registry order.
func WriteTSV(w io.Writer, contigs []Contig) error {
	tw := tsv.NewWriter(w)
	tw.WriteString("#CONTIG\tSTART\tSTOP\tSTRAND\tFRAME\tLENGTH\tTYPE\tNUMBER")
	if err := tw.EndLine(); err != nil {
		return err
	}
	for _, c := range contigs {
		for i := 0; i < c.ORFs.Len(); i++ {
			rec := c.ORFs.At(i)
			tw.WriteString(c.Name)
			tw.WriteInt64(int64(rec.Start))
			tw.WriteInt64(int64(rec.Stop))
			tw.WriteString(rec.Strand.String())
			tw.WriteInt64(int64(rec.Frame))
			tw.WriteInt64(int64(rec.Length))
			tw.WriteString(rec.Kind.String())
			tw.WriteInt64(int64(rec.Rank))
			if err := tw.EndLine(); err != nil {
				return err
			}
		}
	}
	return tw.Flush()
}

// WriteFASTA writes every record with a header ReadContigs can parse back.
func WriteFASTA(w io.Writer, contigs []Contig) error {
	fw := fasta.NewWriter(w)
	for _, c := range contigs {
		for i := 0; i < c.ORFs.Len(); i++ {
			rec := c.ORFs.At(i)
			if err := fw.Write(&fasta.Entry{Header: FormatHeader(c.Name, rec), Seq: rec.Seq}); err != nil {
				return err
			}
		}
	}
	return nil
}

// ContigOverlaps is the Con-StORF/StORF overlap report for one contig.
type ContigOverlaps struct {
	Name     string
	Overlaps []tiling.KindOverlap
}

// WriteOverlapTSV writes one line per overlapping Con-StORF/StORF pair,
// followed by a trailing count of pairs.
func WriteOverlapTSV(w io.Writer, report []ContigOverlaps) error {
	tw := tsv.NewWriter(w)
	tw.WriteString("#CONTIG\tCON_STORF\tSTORF\tCON_STORF_LENGTH\tSTORF_LENGTH\tOVERLAP")
	if err := tw.EndLine(); err != nil {
		return err
	}
	n := 0
	for _, c := range report {
		for _, o := range c.Overlaps {
			tw.WriteString(c.Name)
			tw.WriteString(id(o.Connected))
			tw.WriteString(id(o.Standard))
			tw.WriteInt64(int64(o.Connected.Length))
			tw.WriteInt64(int64(o.Standard.Length))
			tw.WriteInt64(int64(o.Len))
			if err := tw.EndLine(); err != nil {
				return err
			}
			n++
		}
	}
	tw.WriteString("#TOTAL")
	tw.WriteInt64(int64(n))
	if err := tw.EndLine(); err != nil {
		return err
	}
	return tw.Flush()
}

func id(rec orf.Record) string {
	return rec.Kind.String() + "_" + strconv.Itoa(rec.Rank) + ":" + strconv.Itoa(rec.Start) + "-" + strconv.Itoa(rec.Stop)
}
