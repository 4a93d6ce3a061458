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

// Package cell implements the interpreter's core data model: the Cell
// discriminated union, user procedures, and the chained variable
// environment (spec.md §3). The three live in one package because they are
// mutually recursive by construction — a Proc holds a Body of Cells and a
// captured *Frame, a Frame's bindings are Cells, and a Cell's Proc payload
// is a *Proc — exactly as the original's Lexer/Environment namespaces
// cross-reference each other.
package cell

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"littlelisp.dev/go/token"
)

// Cell is a tagged value: Kind selects which payload field, if any, is
// meaningful (spec.md §3's invariant). This replaces the source's
// boost::variant-plus-visitor dispatch with a Go type switch over Kind —
// the "exhaustive sum type" redesign spec.md §9 calls for.
type Cell struct {
	Kind token.Kind
	Pos  token.Pos

	Num  float64 // valid iff Kind == token.Number
	Str  string  // valid iff Kind == token.Name
	List []Cell  // valid iff Kind == token.Expr
	Proc *Proc   // valid iff Kind == token.Proc
}

// Number constructs a self-evaluating numeric cell.
func Number(pos token.Pos, f float64) Cell {
	return Cell{Kind: token.Number, Pos: pos, Num: f}
}

// Name constructs an identifier (or quoted-atom) cell.
func Name(pos token.Pos, s string) Cell {
	return Cell{Kind: token.Name, Pos: pos, Str: s}
}

// Bool constructs a True or False cell; booleans carry no payload, the kind
// itself encodes the truth value (spec.md §3).
func Bool(pos token.Pos, b bool) Cell {
	if b {
		return Cell{Kind: token.True, Pos: pos}
	}
	return Cell{Kind: token.False, Pos: pos}
}

// ExprList wraps an ordered sequence of cells as a single nested-list cell.
func ExprList(pos token.Pos, cells []Cell) Cell {
	return Cell{Kind: token.Expr, Pos: pos, List: cells}
}

// ProcCell wraps a procedure handle as a value cell.
func ProcCell(pos token.Pos, p *Proc) Cell {
	return Cell{Kind: token.Proc, Pos: pos, Proc: p}
}

// End is the canonical end-of-input sentinel cell.
var End = Cell{Kind: token.End}

// Truthy reports whether c counts as true in a conditional context: every
// kind is truthy except False (spec.md §8's truthiness invariant).
func (c Cell) Truthy() bool {
	return c.Kind != token.False
}

// IsList reports whether c is a compound Expr cell, as opposed to an atom.
func (c Cell) IsList() bool {
	return c.Kind == token.Expr
}

// String renders c using the same rules as Fprint, for use in error
// messages and %v formatting.
func (c Cell) String() string {
	var b strings.Builder
	Fprint(&b, c)
	return b.String()
}

// Fprint writes c to w following the printing rules of spec.md §6:
// numbers print as their floating value, names/quoted atoms print raw,
// Proc prints the literal token "proc", Expr lists print parenthesised
// with space-separated elements, and single-character primitive/syntax
// kinds print as their glyph. Grounded on cue/ast/print.go's separation of
// a printer function from the tree it walks.
func Fprint(w io.Writer, c Cell) {
	switch c.Kind {
	case token.Number:
		io.WriteString(w, formatNumber(c.Num))
	case token.Name:
		io.WriteString(w, c.Str)
	case token.Proc:
		io.WriteString(w, "proc")
	case token.True:
		io.WriteString(w, "#t")
	case token.False:
		io.WriteString(w, "#f")
	case token.Expr:
		io.WriteString(w, "(")
		for i, elt := range c.List {
			if i > 0 {
				io.WriteString(w, " ")
			}
			Fprint(w, elt)
		}
		io.WriteString(w, ")")
	case token.End:
		// nothing to print
	default:
		// Single-character primitive and syntactic kinds print as their
		// glyph (spec.md §6).
		io.WriteString(w, c.Kind.String())
	}
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Equal reports whether a and b are the same value, with type inferred from
// a as spec.md §4.5 specifies for the Equal primitive.
func Equal(a, b Cell) bool {
	switch a.Kind {
	case token.Number:
		return a.Num == b.Num
	case token.Name:
		return a.Str == b.Str
	case token.Proc:
		return a.Proc == b.Proc
	case token.Expr:
		if len(a.List) != len(b.List) {
			return false
		}
		for i := range a.List {
			if !Equal(a.List[i], b.List[i]) {
				return false
			}
		}
		return true
	default:
		return a.Kind == b.Kind
	}
}

// Less reports whether a < b, with type inferred from a as spec.md §4.5
// specifies for the Less primitive (and, swapped, for Greater).
func Less(a, b Cell) bool {
	switch a.Kind {
	case token.Number:
		return a.Num < b.Num
	case token.Name:
		return a.Str < b.Str
	default:
		panic(fmt.Sprintf("cell: Less undefined for kind %v", a.Kind))
	}
}
