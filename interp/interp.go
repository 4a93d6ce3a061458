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

// Package interp ties the scanner, reader, environment, and evaluator
// together into one interpreter instance. Grounded on
// internal/core/runtime.Runtime — CUE's analogous "one struct per
// compilation/evaluation instance, owns every mutable collaborator" type —
// which is exactly what spec.md §5 requires: an interpreter instance owns
// its arena and stream stack without locking, and multiple independent
// instances need separate ones.
package interp

import (
	"fmt"
	"io"
	"os"

	"littlelisp.dev/go/cell"
	"littlelisp.dev/go/errors"
	"littlelisp.dev/go/reader"
	"littlelisp.dev/go/scanner"
	"littlelisp.dev/go/token"
)

// Interp is one interpreter instance: its own scanner (and therefore its
// own include-source stack), reader, global environment frame, and arena.
// Not safe for concurrent use (spec.md §5).
type Interp struct {
	Scanner *scanner.Scanner
	Reader  *reader.Reader
	Global  *cell.Frame
	Arena   *cell.Arena
	Errors  errors.Handler
}

// New creates a fresh interpreter instance with no input source yet; call
// Include (or Scanner.SetInput directly) before the first RunForm.
func New(errh errors.Handler) *Interp {
	sc := scanner.New(errh, 0)
	return &Interp{
		Scanner: sc,
		Reader:  reader.New(sc),
		Global:  cell.NewFrame(nil),
		Arena:   cell.NewArena(),
		Errors:  errh,
	}
}

// Include pushes a new named source onto the scanner's stack. The
// evaluator's Include dispatch reaches it through IncludeFile.
func (ip *Interp) Include(name string, r io.Reader) {
	ip.Scanner.SetInput(name, r)
}

// IncludeFile opens name and pushes it as a new source, for the evaluator's
// Include special form (spec.md §4.4) and for a driver's initial "read from
// this file" argument (spec.md §6).
func (ip *Interp) IncludeFile(name string) error {
	f, err := os.Open(name)
	if err != nil {
		return fmt.Errorf("include %q: %w", name, err)
	}
	ip.Include(name, f)
	return nil
}

// RunForm reads one top-level form and evaluates it against the global
// frame. atEOF reports whether the *current* source is now exhausted — a
// driver uses this exactly as the original's timing.cpp driver loop does,
// to decide whether to Reset() back to a suspended source and, once
// Scanner.Base() is also true, resume prompting and printing (spec.md §6).
func (ip *Interp) RunForm() (result cell.Cell, atEOF bool, err error) {
	form, rerr := ip.Reader.ReadExpr(true)
	if rerr != nil {
		return cell.Cell{}, ip.Scanner.AtEOF(), rerr
	}
	if len(form) == 0 {
		return cell.Cell{}, true, nil
	}
	result, err = Eval(ip, form, ip.Global)
	if err != nil {
		// The zero result of a failed Eval has Kind End; it must not be
		// mistaken for end of input.
		return cell.Cell{}, ip.Scanner.AtEOF(), err
	}
	atEOF = result.Kind == token.End || ip.Scanner.AtEOF()
	return result, atEOF, err
}

// ResetIfExhausted pops the scanner back to a suspended source when the
// current one is drained, returning whether the scanner is now at its
// original bottom-level source. Mirrors the original's
// `if (res.kind == End || cs.eof()) { cs.reset(); if (cs.base()) ... }`.
func (ip *Interp) ResetIfExhausted(atEOF bool) bool {
	if !atEOF {
		return ip.Scanner.Base()
	}
	ip.Scanner.Reset()
	return ip.Scanner.Base()
}
