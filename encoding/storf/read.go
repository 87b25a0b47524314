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
	"context"
	"io"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/fileio"
	"github.com/grailbio/storf/encoding/fasta"
	"github.com/grailbio/storf/orf"
	"github.com/klauspost/compress/gzip"
)

// Contig is the set of records found on one sequence.
type Contig struct {
	Name string
	ORFs *orf.Registry
}

// ReadContigs reads StORF-Finder FASTA from r and groups the records by
// contig, in order of first appearance.  Within a contig, records keep their
// file order.  A malformed header, or a (start, stop) pair that appears twice
// on one contig, is an error.
func ReadContigs(r io.Reader) ([]Contig, error) {
	var (
		contigs []Contig
		byName  = map[string]int{}
		e       fasta.Entry
	)
	s := fasta.NewScanner(r)
	for s.Scan(&e) {
		name, rec, err := ParseHeader(e.Header)
		if err != nil {
			return nil, err
		}
		rec.Seq = e.Seq
		i, ok := byName[name]
		if !ok {
			i = len(contigs)
			byName[name] = i
			contigs = append(contigs, Contig{Name: name, ORFs: &orf.Registry{}})
		}
		if err := contigs[i].ORFs.Add(rec); err != nil {
			return nil, errors.E(err, "storf: header", e.Header)
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return contigs, nil
}

// LoadPath is a wrapper for ReadContigs that takes a path instead of an
// io.Reader.  Gzipped input is detected by file extension.  Any path the
// file package has an implementation for may be used.
func LoadPath(ctx context.Context, path string) (contigs []Contig, err error) {
	var in file.File
	if in, err = file.Open(ctx, path); err != nil {
		return
	}
	defer func() {
		if cerr := in.Close(ctx); cerr != nil && err == nil {
			err = cerr
		}
	}()
	reader := io.Reader(in.Reader(ctx))
	switch fileio.DetermineType(path) {
	case fileio.Gzip:
		if reader, err = gzip.NewReader(reader); err != nil {
			return
		}
	}
	return ReadContigs(reader)
}

// Records returns the registries of contigs, index-aligned.
func Records(contigs []Contig) []*orf.Registry {
	regs := make([]*orf.Registry, len(contigs))
	for i := range contigs {
		regs[i] = contigs[i].ORFs
	}
	return regs
}
