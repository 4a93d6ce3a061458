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

package token

import "fmt"

// Pos describes the origin of a token or cell: which named source produced
// it and where within that source. Unlike cue/token's Pos, this is a plain
// value type — the interpreter's source stack is shallow and short-lived,
// so there is no need for the compact file-set encoding a large multi-file
// compiler wants.
type Pos struct {
	Source string // source name: "<stdin>", a filename, or an include path
	Line   int    // 1-based
	Column int    // 1-based
}

// NoPos is the zero value, reported by tokens synthesized without a real
// source location.
var NoPos = Pos{}

// IsValid reports whether p carries a usable line number.
func (p Pos) IsValid() bool { return p.Line > 0 }

// String renders p as "source:line:column", or "-" if invalid.
func (p Pos) String() string {
	if !p.IsValid() {
		return "-"
	}
	if p.Source == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.Source, p.Line, p.Column)
}
