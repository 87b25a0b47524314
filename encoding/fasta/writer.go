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

package fasta

import "io"

// DefaultLineWidth is the number of sequence characters Writer puts on each
// line.
const DefaultLineWidth = 60

var newline = []byte{'\n'}

// Writer is a FASTA writer.
type Writer struct {
	// LineWidth is the maximum number of sequence characters per line.  Zero
	// or negative disables wrapping.
	LineWidth int

	w   io.Writer
	err error
}

// NewWriter constructs a Writer that wraps sequences at DefaultLineWidth.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w, LineWidth: DefaultLineWidth}
}

// Write writes e.  Entries with an empty sequence are written as a lone
// header line.  The first error encountered is sticky.
func (w *Writer) Write(e *Entry) error {
	w.writeln(">" + e.Header)
	seq := e.Seq
	for len(seq) > 0 && w.err == nil {
		n := len(seq)
		if w.LineWidth > 0 && n > w.LineWidth {
			n = w.LineWidth
		}
		w.writeln(seq[:n])
		seq = seq[n:]
	}
	return w.err
}

func (w *Writer) writeln(line string) {
	if w.err != nil {
		return
	}
	_, w.err = io.WriteString(w.w, line)
	if w.err == nil {
		_, w.err = w.w.Write(newline)
	}
}
