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

// Package errors defines the diagnostic types shared by the scanner,
// reader, and evaluator.
//
// Three tiers map onto spec.md §7: parse errors and evaluation errors are
// both represented as an [Error] returned up the call stack (Go's ordinary
// error-return unwinding plays the role the source's exceptions played);
// soft diagnostics are reported through a [Handler] that a driver installs
// to count and log without unwinding.
package errors

import (
	"fmt"
	"io"

	"littlelisp.dev/go/token"
)

// Error is the interpreter's error type. It carries the source position the
// message pertains to, in addition to the plain error text.
type Error interface {
	error
	// Position is where the error was detected.
	Position() token.Pos
	// Msg returns the unformatted message and its arguments, for callers
	// that want to render or localize the message themselves.
	Msg() (format string, args []any)
}

type posError struct {
	pos    token.Pos
	format string
	args   []any
}

func (e *posError) Position() token.Pos        { return e.pos }
func (e *posError) Msg() (string, []any)       { return e.format, e.args }
func (e *posError) Error() string {
	msg := fmt.Sprintf(e.format, e.args...)
	if e.pos.IsValid() {
		return fmt.Sprintf("%s: %s", e.pos, msg)
	}
	return msg
}

// Newf creates an Error positioned at p.
func Newf(p token.Pos, format string, args ...any) Error {
	return &posError{pos: p, format: format, args: args}
}

// Handler is called for each soft diagnostic (spec.md §7, tier 3): a
// condition that should be reported to the user but must not unwind the
// current top-level form. The scanner's malformed-number case and the
// original's Error::error both use this shape — increment a counter, write
// a message, keep going.
type Handler func(Error)

// Counter is a [Handler] that writes "error: <msg>" to W (mirroring the
// original's `cerr << "error: " << s`) and tallies the number of reports
// it has seen, matching the original's global `no_of_errors` counter.
type Counter struct {
	W     io.Writer
	Count int
}

// Handle implements Handler.
func (c *Counter) Handle(err Error) {
	c.Count++
	if c.W != nil {
		fmt.Fprintf(c.W, "error: %s\n", err.Error())
	}
}

// List accumulates Errors, for callers (e.g. tests) that want to inspect
// every diagnostic produced by a run rather than print them as they occur.
type List struct {
	Errors []Error
}

// Handle implements Handler by appending to the list.
func (l *List) Handle(err Error) {
	l.Errors = append(l.Errors, err)
}

// Err returns nil if the list is empty, or an error summarizing every
// collected diagnostic otherwise.
func (l *List) Err() error {
	if len(l.Errors) == 0 {
		return nil
	}
	return l
}

func (l *List) Error() string {
	if len(l.Errors) == 1 {
		return l.Errors[0].Error()
	}
	s := fmt.Sprintf("%d errors:\n", len(l.Errors))
	for _, e := range l.Errors {
		s += "\t" + e.Error() + "\n"
	}
	return s
}
