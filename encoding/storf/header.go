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

// Package storf converts between StORF-Finder FASTA output and orf
// registries, and writes filtering results as TSV or FASTA.
//
// A StORF-Finder header looks like
//   NC_003197.2_Con-StORF_12:4512-4790|Strand:-|Frame:2|Length:279
// that is, "<contig>_<type>_<number>:<a>-<b>" followed by optional
// "|Key:Value" fields.  The record spans [min(a,b), max(a,b)]; Strand, Frame
// and Length default to values derived from the coordinates when absent.
// Unrecognized fields are ignored.
package storf

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/storf/orf"
)

var headerRegExp = regexp.MustCompile(`^(\S+?)_(StORF|Con-StORF)_(\d+):(\d+)-(\d+)`)

// ParseHeader parses a StORF-Finder header (without the leading '>') into the
// contig name and a record with an empty Seq.
func ParseHeader(header string) (contig string, rec orf.Record, err error) {
	m := headerRegExp.FindStringSubmatch(header)
	if m == nil {
		err = errors.E(errors.Invalid, fmt.Sprintf("storf: malformed header %q", header))
		return
	}
	contig = m[1]
	if rec.Kind, err = orf.ParseKind(m[2]); err != nil {
		return
	}
	var a, b int
	if rec.Rank, err = atoi(m[3], header); err != nil {
		return
	}
	if a, err = atoi(m[4], header); err != nil {
		return
	}
	if b, err = atoi(m[5], header); err != nil {
		return
	}
	rec.Start, rec.Stop = a, b
	rec.Strand = orf.Forward
	if a > b {
		rec.Start, rec.Stop = b, a
		rec.Strand = orf.Reverse
	}
	rec.Length = rec.Stop - rec.Start + 1
	rec.Frame = (rec.Start-1)%3 + 1

	for _, field := range strings.Split(header[len(m[0]):], "|") {
		colon := strings.IndexByte(field, ':')
		if colon < 0 {
			continue
		}
		key, val := strings.TrimSpace(field[:colon]), strings.TrimSpace(field[colon+1:])
		switch key {
		case "Strand":
			if rec.Strand, err = orf.ParseStrand(val); err != nil {
				return
			}
		case "Frame":
			if rec.Frame, err = atoi(val, header); err != nil {
				return
			}
		case "Length":
			if rec.Length, err = atoi(val, header); err != nil {
				return
			}
		}
	}
	return
}

func atoi(s, header string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.E(errors.Invalid, err, fmt.Sprintf("storf: header %q", header))
	}
	return n, nil
}

// FormatHeader is the inverse of ParseHeader.
func FormatHeader(contig string, rec orf.Record) string {
	return fmt.Sprintf("%s_%v_%d:%d-%d|Strand:%v|Frame:%d|Length:%d",
		contig, rec.Kind, rec.Rank, rec.Start, rec.Stop, rec.Strand, rec.Frame, rec.Length)
}
