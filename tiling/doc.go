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

/*Package tiling removes redundant StORFs from a contig.

  Filter ranks the records of an orf.Registry by a priority strategy, then
  sweeps them from most to least preferred.  Every surviving record knocks
  out the lower-priority records that are nested inside it, and the ones that
  partially overlap it by at least Opts.OverlapThreshold bases.  The
  survivors are returned in the order requested by Opts.Order.

  The sweep is quadratic in the number of records on a contig.  StORF-Finder
  output has a few thousand records per contig, so this is not a concern;
  callers that take untrusted input should cap the record count themselves.

  Filter and FilterAll never modify their inputs and keep no state between
  calls, so they may be called concurrently on distinct registries.
*/
package tiling
