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

/*Command bio-storf-filter removes redundant StORFs from StORF-Finder FASTA
  output.

  Records are grouped by contig, ranked by length (or by type, then length,
  with -priority=storf_type), and swept from best to worst: each kept record
  drops the lower-ranked records nested inside it or overlapping it by at
  least -olap bases.  Survivors are written to <out>.tsv, and optionally to
  <out>.fasta, ordered by start position (-so=start_pos), by StORF number
  (-so=strand) or left in rank order (-so=none).

  With -overlap-report, every Con-StORF/StORF pair sharing at least one base
  in the (unfiltered) input is listed in <out>.overlaps.tsv.

  Usage: bio-storf-filter [-priority=length] [-olap=50] [-so=start_pos] [-out=prefix] storfs.fasta[.gz]
*/
package main
