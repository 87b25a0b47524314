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

/*Package interval implements closed-interval arithmetic for 1-based genomic
  coordinates, as used by StORF-Finder output: a Range [Start, Stop] covers
  Stop-Start+1 bases.

  Besides pairwise helpers (OverlapLen, Contains, Intersects), the package
  provides Union, which merges a set of ranges into a sorted disjoint set and
  answers coverage queries, and Index, an interval tree for finding every
  stored range that shares at least one base with a query.
*/
package interval
