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

import "fmt"

// PosMax is the largest position a Range may end at.
const PosMax = 1<<31 - 2

// Range is a 1-based closed interval [Start, Stop].
type Range struct {
	Start, Stop int
}

func (r Range) String() string {
	return fmt.Sprintf("%d-%d", r.Start, r.Stop)
}

// Len returns the number of bases covered by r, or 0 if r is empty.
func (r Range) Len() int {
	if r.Stop < r.Start {
		return 0
	}
	return r.Stop - r.Start + 1
}

// OverlapLen returns the number of bases shared by a and b.  It is never
// negative.
func OverlapLen(a, b Range) int {
	start := a.Start
	if b.Start > start {
		start = b.Start
	}
	stop := a.Stop
	if b.Stop < stop {
		stop = b.Stop
	}
	if n := stop - start + 1; n > 0 {
		return n
	}
	return 0
}

// Intersects reports whether a and b share at least one base.
func Intersects(a, b Range) bool {
	return OverlapLen(a, b) > 0
}

// Contains reports whether inner lies entirely within outer.  Endpoints may
// coincide.
func Contains(outer, inner Range) bool {
	return inner.Start >= outer.Start && inner.Stop <= outer.Stop
}
