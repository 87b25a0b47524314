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
	"github.com/grailbio/base/traverse"
	"github.com/grailbio/storf/orf"
)

// FilterAll runs Filter on every registry in regs, concurrently.  Each
// registry should hold the records of one contig, since positions on
// different contigs are unrelated.  The result is index-aligned with regs.
func FilterAll(regs []*orf.Registry, opts Opts) ([]*orf.Registry, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	out := make([]*orf.Registry, len(regs))
	err := traverse.Each(len(regs), func(i int) error {
		out[i] = filter(regs[i], opts)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
