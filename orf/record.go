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

	"github.com/grailbio/base/errors"
)

// Kind distinguishes plain StORFs from Con-StORFs.
type Kind uint8

const (
	// Standard is an ORF found by a single stop-to-stop search ("StORF").
	Standard Kind = iota
	// Connected is an ORF built by joining adjacent stop-to-stop regions
	// ("Con-StORF").
	Connected
)

// String returns the StORF-Finder spelling of the kind.
func (k Kind) String() string {
	switch k {
	case Standard:
		return "StORF"
	case Connected:
		return "Con-StORF"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// PriorityScore is the ordinal used when kinds are ranked against each other.
// Lower scores are preferred: Connected is 0, Standard is 1.
func (k Kind) PriorityScore() int {
	if k == Connected {
		return 0
	}
	return 1
}

// ParseKind parses "StORF" or "Con-StORF".
func ParseKind(s string) (Kind, error) {
	switch s {
	case "StORF":
		return Standard, nil
	case "Con-StORF":
		return Connected, nil
	}
	return Standard, errors.E(errors.Invalid, fmt.Sprintf("orf: unknown StORF type %q", s))
}

// Strand is the DNA strand an ORF was found on.
type Strand uint8

const (
	// Forward is the '+' strand.
	Forward Strand = iota
	// Reverse is the '-' strand.
	Reverse
)

// String returns "+" or "-".
func (s Strand) String() string {
	switch s {
	case Forward:
		return "+"
	case Reverse:
		return "-"
	}
	return fmt.Sprintf("Strand(%d)", uint8(s))
}

// ParseStrand parses "+" or "-".
func ParseStrand(s string) (Strand, error) {
	switch s {
	case "+":
		return Forward, nil
	case "-":
		return Reverse, nil
	}
	return Forward, errors.E(errors.Invalid, fmt.Sprintf("orf: unknown strand %q", s))
}

// Key identifies a record within a Registry.
type Key struct {
	Start, Stop int
}

// String returns "start,stop".
func (k Key) String() string {
	return fmt.Sprintf("%d,%d", k.Start, k.Stop)
}

// Record is one candidate ORF.
type Record struct {
	// Start and Stop are 1-based, inclusive.  Start <= Stop.
	Start, Stop int
	// Seq is the nucleotide payload.  It is carried along but never
	// interpreted.
	Seq    string
	Frame  int
	Strand Strand
	// Length is supplied by the producer and is not required to equal
	// Stop-Start+1.  Length-based priorities use this value as is.
	Length int
	Kind   Kind
	// Rank is the sequence number assigned by the producer.  It is only used
	// by SortByRank.
	Rank int
}

// Key returns the registry key of r.
func (r Record) Key() Key {
	return Key{Start: r.Start, Stop: r.Stop}
}

func (r Record) validate() error {
	if r.Start < 0 {
		return errors.E(errors.Precondition, fmt.Sprintf("orf: negative start in %v", r.Key()))
	}
	if r.Start > r.Stop {
		return errors.E(errors.Precondition, fmt.Sprintf("orf: start > stop in %v", r.Key()))
	}
	return nil
}
