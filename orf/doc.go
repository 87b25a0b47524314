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

/*Package orf holds candidate open reading frames produced by a stop-to-stop
  search (StORFs), and the ordered registry they are passed around in.

  A Registry maps a (start, stop) position pair to one Record and remembers
  the order records were added in.  Coordinates are 1-based and inclusive on
  both ends, as emitted by StORF-Finder.  Records are values; nothing in this
  package mutates a record once it has been added.

  Registry.Add enforces the registry invariants (start <= stop, unique keys)
  and returns an errors.Precondition error when they are violated, so that
  consumers such as package tiling can trust any Registry they are given.
*/
package orf
