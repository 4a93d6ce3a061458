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
	"littlelisp.dev/go/cell"
	"littlelisp.dev/go/errors"
	"littlelisp.dev/go/token"
)

// applyPrim implements spec.md §4.5's primitive set. prim is the primitive
// token cell (its Pos anchors any error); args have already been fully
// evaluated by the caller. Grounded on the original's apply_prim
// (parser.cpp), including the Cdr two-element-list bare-return asymmetry
// recorded as an open-question decision in DESIGN.md.
func applyPrim(prim cell.Cell, args []cell.Cell) (cell.Cell, error) {
	if len(args) == 0 && !allowsZeroArgs(prim.Kind) {
		return cell.Cell{}, errors.Newf(prim.Pos, "%s: missing arguments", prim.Kind)
	}

	switch prim.Kind {
	case token.Add:
		return foldNumeric(prim, args, 0, func(acc, x float64) float64 { return acc + x })
	case token.Sub:
		if len(args) == 1 {
			n, err := numberArg(args[0])
			if err != nil {
				return cell.Cell{}, err
			}
			return cell.Number(prim.Pos, -n), nil
		}
		return foldNumericFrom(prim, args, func(acc, x float64) float64 { return acc - x })
	case token.Mul:
		return foldNumeric(prim, args, 1, func(acc, x float64) float64 { return acc * x })
	case token.Div:
		return foldNumericFrom(prim, args, func(acc, x float64) float64 { return acc / x })
	case token.Cat:
		var sb []byte
		for _, a := range args {
			sb = append(sb, a.Str...)
		}
		return cell.Name(prim.Pos, string(sb)), nil

	case token.Less:
		if len(args) != 2 {
			return cell.Cell{}, errors.Newf(prim.Pos, "<: expects 2 arguments")
		}
		return cell.Bool(prim.Pos, cell.Less(args[0], args[1])), nil
	case token.Greater:
		if len(args) != 2 {
			return cell.Cell{}, errors.Newf(prim.Pos, ">: expects 2 arguments")
		}
		return cell.Bool(prim.Pos, cell.Less(args[1], args[0])), nil
	case token.Equal:
		if len(args) != 2 {
			return cell.Cell{}, errors.Newf(prim.Pos, "=: expects 2 arguments")
		}
		return cell.Bool(prim.Pos, cell.Equal(args[0], args[1])), nil

	case token.And:
		for _, a := range args {
			if !a.Truthy() {
				return cell.Bool(prim.Pos, false), nil
			}
		}
		return cell.Bool(prim.Pos, true), nil
	case token.Or:
		for _, a := range args {
			if a.Truthy() {
				return cell.Bool(prim.Pos, true), nil
			}
		}
		return cell.Bool(prim.Pos, false), nil
	case token.Not:
		if len(args) != 1 {
			return cell.Cell{}, errors.Newf(prim.Pos, "not: expects 1 argument")
		}
		return cell.Bool(prim.Pos, args[0].Kind == token.False), nil

	case token.Cons, token.List:
		return cell.ExprList(prim.Pos, args), nil

	case token.Car:
		a := args[0]
		if a.IsList() {
			if len(a.List) == 0 {
				return cell.Cell{}, errors.Newf(prim.Pos, "car: empty list")
			}
			return a.List[0], nil
		}
		return a, nil

	case token.Cdr:
		a := args[0]
		if !a.IsList() || len(a.List) == 0 {
			return a, nil
		}
		// Open-question decision (DESIGN.md): a two-element list's cdr
		// returns the bare second element rather than a one-element list,
		// matching the original's behaviour exactly.
		if len(a.List) == 2 {
			return a.List[1], nil
		}
		return cell.ExprList(prim.Pos, a.List[1:]), nil

	case token.Empty:
		a := args[0]
		if a.IsList() {
			return cell.Bool(prim.Pos, len(a.List) == 0), nil
		}
		return cell.Bool(prim.Pos, false), nil

	default:
		return cell.Cell{}, errors.Newf(prim.Pos, "unimplemented primitive: %s", prim.Kind)
	}
}

func numberArg(c cell.Cell) (float64, error) {
	if c.Kind != token.Number {
		return 0, errors.Newf(c.Pos, "expected a number, got %s", c.Kind)
	}
	return c.Num, nil
}

// foldNumeric left-folds args onto seed with op: used by + and *, where a
// single argument is a legal (degenerate) application.
func foldNumeric(prim cell.Cell, args []cell.Cell, seed float64, op func(acc, x float64) float64) (cell.Cell, error) {
	acc := seed
	for _, a := range args {
		n, err := numberArg(a)
		if err != nil {
			return cell.Cell{}, err
		}
		acc = op(acc, n)
	}
	return cell.Number(prim.Pos, acc), nil
}

// foldNumericFrom seeds the fold with the first argument instead of an
// identity element: used by - and / with two or more arguments.
func foldNumericFrom(prim cell.Cell, args []cell.Cell, op func(acc, x float64) float64) (cell.Cell, error) {
	acc, err := numberArg(args[0])
	if err != nil {
		return cell.Cell{}, err
	}
	for _, a := range args[1:] {
		n, err := numberArg(a)
		if err != nil {
			return cell.Cell{}, err
		}
		acc = op(acc, n)
	}
	return cell.Number(prim.Pos, acc), nil
}
