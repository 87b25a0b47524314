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
	"fmt"

	"github.com/grailbio/base/errors"
)

// PriorityStrategy decides which of two conflicting records survives.
type PriorityStrategy int

const (
	// ByLength prefers longer records.  Equal lengths keep input order.
	ByLength PriorityStrategy = iota
	// ByKindThenLength prefers Con-StORFs over StORFs, then longer records.
	ByKindThenLength
)

var priorityNames = map[PriorityStrategy]string{
	ByLength:         "length",
	ByKindThenLength: "storf_type",
}

func (p PriorityStrategy) String() string {
	if s, ok := priorityNames[p]; ok {
		return s
	}
	return fmt.Sprintf("PriorityStrategy(%d)", int(p))
}

// ParsePriorityStrategy parses "length" or "storf_type".
func ParsePriorityStrategy(s string) (PriorityStrategy, error) {
	for p, name := range priorityNames {
		if name == s {
			return p, nil
		}
	}
	return ByLength, errors.E(errors.Invalid, fmt.Sprintf("tiling: unknown priority strategy %q", s))
}

// FinalOrder is the order in which survivors are returned.
type FinalOrder int

const (
	// ByStartPosition orders survivors by ascending start.
	ByStartPosition FinalOrder = iota
	// ByRank orders survivors by ascending orf.Record.Rank.  StORF-Finder
	// calls this "strand order", but it sorts by the record number and never
	// looks at the strand.
	ByRank
	// Unordered leaves survivors in priority order.
	Unordered
)

var orderNames = map[FinalOrder]string{
	ByStartPosition: "start_pos",
	ByRank:          "strand",
	Unordered:       "none",
}

func (o FinalOrder) String() string {
	if s, ok := orderNames[o]; ok {
		return s
	}
	return fmt.Sprintf("FinalOrder(%d)", int(o))
}

// ParseFinalOrder parses "start_pos", "strand" or "none".
func ParseFinalOrder(s string) (FinalOrder, error) {
	for o, name := range orderNames {
		if name == s {
			return o, nil
		}
	}
	return ByStartPosition, errors.E(errors.Invalid, fmt.Sprintf("tiling: unknown final order %q", s))
}

// Opts configures Filter.
type Opts struct {
	// Priority ranks records before the sweep.
	Priority PriorityStrategy
	// OverlapThreshold is the partial overlap, in bases, at which the
	// lower-priority record of a pair is dropped.  The comparison is
	// inclusive: an overlap of exactly OverlapThreshold drops.
	OverlapThreshold int
	// Order is the order of the returned registry.
	Order FinalOrder
}

// DefaultOpts matches the StORF-Finder defaults.
var DefaultOpts = Opts{
	Priority:         ByLength,
	OverlapThreshold: 50,
	Order:            ByStartPosition,
}

// Validate returns an errors.Invalid error if any option is out of range.
func (o Opts) Validate() error {
	if _, ok := priorityNames[o.Priority]; !ok {
		return errors.E(errors.Invalid, fmt.Sprintf("tiling: unknown priority strategy %v", o.Priority))
	}
	if _, ok := orderNames[o.Order]; !ok {
		return errors.E(errors.Invalid, fmt.Sprintf("tiling: unknown final order %v", o.Order))
	}
	if o.OverlapThreshold < 0 {
		return errors.E(errors.Invalid, fmt.Sprintf("tiling: negative overlap threshold %d", o.OverlapThreshold))
	}
	return nil
}
