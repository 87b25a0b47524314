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

package interval

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/grailbio/base/errors"
)

// Region is a range on a named contig.
type Region struct {
	ChrName string
	Range
}

// Includes reports whether r lies entirely within the region on contig
// chrName.
func (g Region) Includes(chrName string, r Range) bool {
	return chrName == g.ChrName && Contains(g.Range, r)
}

// ParseRegionString parses a region string of one of the forms
//   [contig ID]:[1-based first pos]-[last pos]
//   [contig ID]:[1-based pos]
//   [contig ID]
// returning a contig ID and 1-based closed interval boundaries.  The interval
// [1, PosMax] is returned if there is no positional restriction.
func ParseRegionString(region string) (result Region, err error) {
	if len(region) == 0 {
		err = errors.E(errors.Invalid, "interval.ParseRegionString: empty region string")
		return
	}
	colonPos := strings.LastIndexByte(region, ':')
	if colonPos == -1 {
		result.ChrName = region
		result.Start = 1
		result.Stop = PosMax
		return
	}
	if colonPos == 0 {
		err = errors.E(errors.Invalid, "interval.ParseRegionString: empty contig ID")
		return
	}
	result.ChrName = region[0:colonPos]
	rangeStr := region[colonPos+1:]
	dashPos := strings.IndexByte(rangeStr, '-')
	if dashPos == -1 {
		var pos int
		if pos, err = parsePos(rangeStr); err != nil {
			return
		}
		result.Start = pos
		result.Stop = pos
		return
	}
	if result.Start, err = parsePos(rangeStr[:dashPos]); err != nil {
		return
	}
	if result.Stop, err = parsePos(rangeStr[dashPos+1:]); err != nil {
		return
	}
	if result.Stop < result.Start {
		err = errors.E(errors.Invalid, fmt.Sprintf("interval.ParseRegionString: invalid range string %v", rangeStr))
	}
	return
}

func parsePos(s string) (int, error) {
	pos, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.E(errors.Invalid, err, "interval.ParseRegionString")
	}
	if pos <= 0 || pos > PosMax {
		return 0, errors.E(errors.Invalid, fmt.Sprintf("interval.ParseRegionString: position %v in region string out of range", s))
	}
	return pos, nil
}
