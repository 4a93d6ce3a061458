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

// Package reader implements the recursive-descent reader of spec.md §4.2:
// it consumes tokens from a [scanner.Scanner] and materialises them into a
// tree of unevaluated [cell.Cell]s. Grounded on cue/parser's recursive
// parseX methods and the original's Parser::expr (parser.cpp).
package reader

import (
	"littlelisp.dev/go/cell"
	"littlelisp.dev/go/errors"
	"littlelisp.dev/go/scanner"
	"littlelisp.dev/go/token"
)

// Reader turns a token stream into unevaluated forms. It is oblivious to
// special-form semantics beyond parenthesisation and quote — the evaluator
// recognises special forms later (spec.md §4.2 rationale).
type Reader struct {
	sc *scanner.Scanner
}

// New returns a Reader pulling tokens from sc.
func New(sc *scanner.Scanner) *Reader {
	return &Reader{sc: sc}
}

// ReadExpr returns one top-level form. If first is true, the reader fetches
// the opening token itself (skipping any leading Comment tokens, each
// consuming the rest of its line); if false, the caller has already
// positioned the scanner's current token at the first token of this form.
// Nested lists do not go through ReadExpr: readList recurses into itself.
//
// A parse error (an unterminated list) is returned as a hard error per
// spec.md §7 tier 1; the caller's top-level loop is expected to report it
// as "Bad expression: <message>" and continue reading the next form.
func (rd *Reader) ReadExpr(first bool) ([]cell.Cell, error) {
	if first {
		for {
			tok := rd.sc.Get()
			if tok.Kind != token.Comment {
				break
			}
			rd.sc.IgnoreLine()
		}
	}

	cur := rd.sc.Current()
	if cur.Kind != token.Lp {
		return rd.readAtom(cur)
	}
	return rd.readList()
}

// readAtom handles the non-list branch of the grammar: a bare token, or a
// quote followed by the form it quotes (spec.md §4.2's quote-unwrapping
// rule: 'x reads as [Quote, Name("x")], not [Quote, [Name("x")]]).
func (rd *Reader) readAtom(cur cell.Cell) ([]cell.Cell, error) {
	if cur.Kind == token.End {
		return nil, nil
	}
	res := []cell.Cell{cur}
	if cur.Kind != token.Quote {
		return res, nil
	}
	quoted, err := rd.ReadExpr(true)
	if err != nil {
		return res, err
	}
	if len(quoted) == 1 {
		res = append(res, quoted[0])
	} else {
		res = append(res, cell.ExprList(cur.Pos, quoted))
	}
	return res, nil
}

// readList consumes tokens until the matching Rp, recursively reading any
// nested Lp as a single Expr cell. Called with the scanner's current token
// already positioned at the opening Lp.
func (rd *Reader) readList() ([]cell.Cell, error) {
	open := rd.sc.Current()
	var res []cell.Cell
	for {
		rd.sc.Get()
		cur := rd.sc.Current()
		switch cur.Kind {
		case token.Lp:
			nested, err := rd.readList()
			if err != nil {
				return res, err
			}
			res = append(res, cell.ExprList(cur.Pos, nested))
			if rd.sc.Current().Kind != token.Rp {
				return res, errors.Newf(cur.Pos, "')' expected")
			}
		case token.End:
			return res, errors.Newf(open.Pos, "unterminated list: ')' expected before end of input")
		case token.Rp:
			return res, nil
		case token.Comment:
			rd.sc.IgnoreLine()
		default:
			res = append(res, cur)
		}
	}
}

// ReadAll calls yield once per top-level form read from the scanner, until
// end-of-input or yield returns false. It is a thin convenience for drivers
// that want to pump an entire source (spec.md §6's file-inclusion mode),
// grounded on cue/parser's ParseFile driving a loop of parseFile calls.
func (rd *Reader) ReadAll(yield func(form []cell.Cell, err error) bool) {
	for {
		form, err := rd.ReadExpr(true)
		if !yield(form, err) {
			return
		}
		if err == nil && len(form) == 0 {
			return
		}
	}
}
