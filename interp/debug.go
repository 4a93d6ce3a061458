// Copyright 2026 The Little Lisp Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package interp

import (
	"github.com/kr/pretty"

	"littlelisp.dev/go/cell"
)

// frameSnapshot is a value copy of one link in a Frame chain, suitable for
// pretty-printing without following the live *Frame pointers (which would
// make kr/pretty's output reference addresses that differ on every run).
type frameSnapshot struct {
	Vars  map[string]cell.Cell
	Outer *frameSnapshot
}

func snapshot(f *cell.Frame) *frameSnapshot {
	if f == nil {
		return nil
	}
	return &frameSnapshot{Vars: f.Vars(), Outer: snapshot(f.Outer)}
}

// Debug pretty-prints the global frame chain and arena sizes, for
// troubleshooting closures and scoping while working on the interpreter
// interactively. Grounded on kr/pretty's use in CUE's test helpers for
// diffing nested structs; this is a read-only inspection aid, not part of
// the language's evaluation semantics.
func (ip *Interp) Debug() string {
	return pretty.Sprintf("global frame: %# v\narena: %d frame(s), %d proc(s)\n",
		snapshot(ip.Global), len(ip.Arena.Frames), len(ip.Arena.Procs))
}
