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

// Package fasta reads and writes FASTA data while keeping each record's full
// header line.  FASTA files consist of a number of sequences, each introduced
// by a '>' header and possibly interrupted by newlines.  For example:
//
// >NC_003197.2_StORF_1:100-300|Strand:+
// ATGAAA
// CCCTAA
// >NC_003197.2_Con-StORF_2:310-500|Strand:+
// ATG
//
// Unlike samtools-style readers, the text after the first space of a header
// is significant here: StORF-Finder packs record metadata into the header.
package fasta

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

const (
	bufferInitSize = 1024 * 1024 * 300 // 300 MB
)

var (
	// ErrInvalid is returned when sequence data appears before the first
	// header.
	ErrInvalid = errors.New("malformed FASTA file")
)

// Entry is one FASTA record.
type Entry struct {
	// Header is the header line without the leading '>'.
	Header string
	// Seq is the sequence with line breaks removed.
	Seq string
}

// Name returns the header up to the first space.
func (e *Entry) Name() string {
	if i := strings.IndexByte(e.Header, ' '); i >= 0 {
		return e.Header[:i]
	}
	return e.Header
}

// Scanner reads FASTA entries one at a time.  Blank lines are skipped and
// trailing carriage returns are stripped.  Scanners are not threadsafe.
type Scanner struct {
	b       *bufio.Scanner
	err     error
	header  string
	started bool
	seq     strings.Builder
	done    bool
}

// NewScanner constructs a Scanner that reads from r.
func NewScanner(r io.Reader) *Scanner {
	b := bufio.NewScanner(r)
	b.Buffer(nil, bufferInitSize)
	return &Scanner{b: b}
}

// Scan reads the next entry into e.  It returns false when there are no more
// entries or an error occurred; Err distinguishes the two.  Once Scan returns
// false, it never returns true again.
func (s *Scanner) Scan(e *Entry) bool {
	if s.err != nil || s.done {
		return false
	}
	for s.b.Scan() {
		line := strings.TrimRight(s.b.Text(), "\r")
		if len(line) == 0 {
			continue
		}
		if line[0] != '>' {
			if !s.started {
				s.err = ErrInvalid
				return false
			}
			s.seq.WriteString(line)
			continue
		}
		// Start a new entry, emitting the previous one first.
		prev, hadPrev := s.header, s.started
		s.header = line[1:]
		s.started = true
		if hadPrev {
			s.emit(e, prev)
			return true
		}
	}
	if err := s.b.Err(); err != nil {
		s.err = errors.Wrap(err, "couldn't read FASTA data")
		return false
	}
	s.done = true
	if !s.started {
		return false
	}
	s.emit(e, s.header)
	return true
}

func (s *Scanner) emit(e *Entry, header string) {
	e.Header = header
	e.Seq = s.seq.String()
	s.seq.Reset()
}

// Err returns the scanning error, if any.
func (s *Scanner) Err() error {
	return s.err
}

// ReadAll reads every entry from r.
func ReadAll(r io.Reader) ([]Entry, error) {
	var (
		entries []Entry
		e       Entry
	)
	s := NewScanner(r)
	for s.Scan(&e) {
		entries = append(entries, e)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}
