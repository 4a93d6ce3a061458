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

// The evaluator quartet of spec.md §4.4–4.6: Eval, EvalList, Apply, and
// applyPrim. Grounded on the original's Parser::eval/evlist/apply/
// apply_prim (parser.cpp), redesigned per spec.md §9's "one dispatcher
// parameterised by a result sink" note: both Eval and EvalList call the
// same walk function, which either returns its first result immediately
// (Eval) or accumulates and continues (EvalList), instead of duplicating
// the whole switch twice as the original does.
package interp

import (
	"littlelisp.dev/go/cell"
	"littlelisp.dev/go/errors"
	"littlelisp.dev/go/token"
)

// Eval returns the value of a single form: the first result produced while
// walking forms (spec.md §4.4).
func Eval(ip *Interp, forms []cell.Cell, env *cell.Frame) (cell.Cell, error) {
	res, err := walk(ip, forms, env, true)
	if err != nil {
		return cell.Cell{}, err
	}
	if len(res) == 0 {
		return cell.Cell{}, nil
	}
	return res[0], nil
}

// EvalList evaluates forms left-to-right, accumulating every result
// (spec.md §4.4): used for argument lists and begin-style sequences.
func EvalList(ip *Interp, forms []cell.Cell, env *cell.Frame) ([]cell.Cell, error) {
	return walk(ip, forms, env, false)
}

// walk is the shared dispatcher. Atomic productions (self-evaluating
// cells, quote, a nested Expr, a bare-name variable lookup, lambda) append
// their result to out and then either return immediately (single, i.e.
// Eval's semantics) or continue to the next form (EvalList's semantics).
// Form-consuming productions (begin, define, let, cond, a primitive
// application, a user-procedure application, include) consume some or all
// of the remaining forms as their own payload, produce exactly one result
// of their own, and end the walk, in both modes — matching the original,
// where every one of those cases ends in an unconditional return. A
// primitive application, a user-procedure application and include append
// that result to whatever out already holds; begin, define, let and cond
// return their result alone, dropping anything accumulated before them.
func walk(ip *Interp, forms []cell.Cell, env *cell.Frame, single bool) ([]cell.Cell, error) {
	var out []cell.Cell
	i := 0
	for i < len(forms) {
		p := forms[i]
		switch p.Kind {
		case token.Include:
			i++
			if i >= len(forms) || forms[i].Kind != token.Name {
				return out, errors.Newf(p.Pos, "include expects a filename")
			}
			if err := ip.IncludeFile(forms[i].Str); err != nil {
				return out, errors.Newf(p.Pos, "%v", err)
			}
			out = append(out, cell.Cell{Kind: token.Include, Pos: p.Pos})
			return out, nil

		case token.Number, token.True, token.False:
			out = append(out, p)
			i++
			if single {
				return out, nil
			}

		case token.Quote:
			i++
			if i >= len(forms) {
				return out, errors.Newf(p.Pos, "quote expects 1 arg")
			}
			out = append(out, forms[i])
			i++
			if single {
				return out, nil
			}

		case token.Expr:
			nested, err := EvalList(ip, p.List, env)
			if err != nil {
				return out, err
			}
			if len(nested) == 1 {
				out = append(out, nested[0])
			} else {
				out = append(out, cell.ExprList(p.Pos, nested))
			}
			i++
			if single {
				return out, nil
			}

		case token.Lambda:
			if i+2 >= len(forms) {
				return out, errors.Newf(p.Pos, "malformed lambda expression")
			}
			params := forms[i+1]
			body := forms[i+2]
			if params.Kind != token.Expr {
				return out, errors.Newf(params.Pos, "lambda parameters must be a parenthesised list")
			}
			proc := ip.Arena.NewProc(params.List, bodyForms(body), env)
			out = append(out, cell.ProcCell(p.Pos, proc))
			i += 3
			if single {
				return out, nil
			}

		case token.Begin:
			return evalBegin(ip, forms, i, env)

		case token.Define:
			return evalDefine(ip, forms, i, env)

		case token.Let:
			return evalLet(ip, forms, i, env)

		case token.Cond:
			return evalCond(ip, forms, i, env)

		case token.Name:
			val, ok := env.Lookup(p.Str)
			if !ok {
				return out, errors.Newf(p.Pos, "unbound variable: %s", p.Str)
			}
			if val.Kind != token.Proc {
				out = append(out, val)
				i++
				if single {
					return out, nil
				}
				continue
			}
			args, err := gatherArgs(ip, forms, i+1, env)
			if err != nil {
				return out, err
			}
			res, err := Apply(ip, val, args)
			if err != nil {
				return out, err
			}
			out = append(out, res)
			return out, nil

		default:
			if token.IsPrimitive(p.Kind) {
				rest := forms[i+1:]
				if len(rest) == 0 && !allowsZeroArgs(p.Kind) {
					return out, errors.Newf(p.Pos, "primitives take at least one argument")
				}
				var args []cell.Cell
				if len(rest) > 0 {
					var err error
					args, err = EvalList(ip, rest, env)
					if err != nil {
						return out, err
					}
				}
				res, err := applyPrim(p, args)
				if err != nil {
					return out, err
				}
				out = append(out, res)
				return out, nil
			}
			return out, errors.Newf(p.Pos, "unexpected token in evaluated form: %s", p.Kind)
		}
	}
	return out, nil
}

// allowsZeroArgs reports whether prim is one of spec.md §4.5's arity-≥0
// primitives (Cons, List, And, Or): the original's apply_prim handles an
// empty argument list for these directly (parser.cpp's Kind::List/Kind::Cons
// case returns args unchanged, and And/Or's loops are no-ops over an empty
// slice), so only the arity-≥1 primitives need the guard above.
func allowsZeroArgs(k token.Kind) bool {
	switch k {
	case token.Cons, token.List, token.And, token.Or:
		return true
	default:
		return false
	}
}

// bodyForms normalizes a lambda/define body cell into the ordered sequence
// of forms Apply will later Eval: an Expr cell contributes its inner list,
// a bare atom is wrapped as a single-element sequence.
func bodyForms(body cell.Cell) []cell.Cell {
	if body.Kind == token.Expr {
		return body.List
	}
	return []cell.Cell{body}
}

// gatherArgs implements spec.md §4.4's argument-evaluation shortcut for
// user procedures: trivially-evaluable arguments (Number, a quoted atom, a
// bare Name lookup) are consumed directly from the stream; the first
// non-trivial cell hands everything from there on to EvalList. This must
// remain semantically equivalent to evaluating every argument with
// EvalList before Apply.
func gatherArgs(ip *Interp, forms []cell.Cell, start int, env *cell.Frame) ([]cell.Cell, error) {
	var args []cell.Cell
	j := start
	for j < len(forms) {
		a := forms[j]
		switch {
		case a.Kind == token.Number:
			args = append(args, a)
			j++
		case a.Kind == token.Quote:
			j++
			if j >= len(forms) {
				return nil, errors.Newf(a.Pos, "quote expects 1 arg")
			}
			args = append(args, forms[j])
			j++
		case a.Kind == token.Name:
			v, ok := env.Lookup(a.Str)
			if !ok {
				return nil, errors.Newf(a.Pos, "unbound variable: %s", a.Str)
			}
			args = append(args, v)
			j++
		default:
			rem, err := EvalList(ip, forms[j:], env)
			if err != nil {
				return nil, err
			}
			args = append(args, rem...)
			j = len(forms)
		}
	}
	return args, nil
}

// evalBegin implements (begin f1 f2 ... fk) of spec.md §4.4: f1 through
// f(k-1) are evaluated in order for effect, and the value of fk is the
// result. It consumes the rest of forms as its payload and always returns
// exactly one result, in both Eval and EvalList contexts.
func evalBegin(ip *Interp, forms []cell.Cell, i int, env *cell.Frame) ([]cell.Cell, error) {
	body := forms[i+1:]
	if len(body) == 0 {
		return nil, errors.Newf(forms[i].Pos, "begin expects at least one form")
	}
	results, err := EvalList(ip, body, env)
	if err != nil {
		return nil, err
	}
	return []cell.Cell{results[len(results)-1]}, nil
}

// evalDefine implements spec.md §4.4's two define shapes. It always
// consumes the rest of forms and returns exactly one result (the bound
// value), in both Eval and EvalList contexts.
func evalDefine(ip *Interp, forms []cell.Cell, i int, env *cell.Frame) ([]cell.Cell, error) {
	pos := forms[i].Pos
	if i+2 >= len(forms) {
		return nil, errors.Newf(pos, "malformed define expression")
	}
	target := forms[i+1]

	switch target.Kind {
	case token.Name:
		// (define name value-expr): the value is evaluated first and bound
		// last, so a failing value expression never leaves a partial
		// binding (spec.md §7 policy).
		value, err := Eval(ip, forms[i+2:], env)
		if err != nil {
			return nil, err
		}
		env.Define(target.Str, value)
		return []cell.Cell{value}, nil

	case token.Expr:
		// (define (name args...) body): desugars to
		// (define name (lambda (args...) body)).
		if len(target.List) == 0 || target.List[0].Kind != token.Name {
			return nil, errors.Newf(target.Pos, "malformed define expression")
		}
		name := target.List[0].Str
		params := target.List[1:]
		body := bodyForms(forms[i+2])
		proc := ip.Arena.NewProc(params, body, env)
		value := cell.ProcCell(pos, proc)
		env.Define(name, value)
		return []cell.Cell{value}, nil

	default:
		return nil, errors.Newf(target.Pos, "unfamiliar form to define")
	}
}

// evalLet implements (let ((n1 v1) (n2 v2) ...) body) of spec.md §4.4: each
// vi is evaluated against the outer environment, then bound in a new frame
// that scopes the body.
func evalLet(ip *Interp, forms []cell.Cell, i int, env *cell.Frame) ([]cell.Cell, error) {
	pos := forms[i].Pos
	if i+2 >= len(forms) {
		return nil, errors.Newf(pos, "let expects a list of definitions and a body")
	}
	bindings := forms[i+1]
	if bindings.Kind != token.Expr {
		return nil, errors.Newf(bindings.Pos, "let expects a parenthesised list of bindings")
	}

	local := ip.Arena.NewFrame(env)
	for _, b := range bindings.List {
		if b.Kind != token.Expr || len(b.List) != 2 || b.List[0].Kind != token.Name {
			return nil, errors.Newf(b.Pos, "malformed let binding")
		}
		value, err := Eval(ip, []cell.Cell{b.List[1]}, env)
		if err != nil {
			return nil, err
		}
		local.Define(b.List[0].Str, value)
	}

	body := forms[i+2]
	result, err := Eval(ip, bodyForms(body), local)
	if err != nil {
		return nil, err
	}
	return []cell.Cell{result}, nil
}

// evalCond implements (cond (p1 e1) (p2 e2) ... (else en)) of spec.md
// §4.4: clauses are tried in order, the first truthy predicate's
// expression is returned; else is permitted only as the last clause.
func evalCond(ip *Interp, forms []cell.Cell, i int, env *cell.Frame) ([]cell.Cell, error) {
	clauses := forms[i+1:]
	for idx, clause := range clauses {
		if clause.Kind != token.Expr || len(clause.List) < 2 {
			return nil, errors.Newf(clause.Pos, "malformed cond clause")
		}
		pred, body := clause.List[0], clause.List[1:]
		if pred.Kind == token.Else {
			if idx != len(clauses)-1 {
				return nil, errors.Newf(pred.Pos, "else clause not at end of cond")
			}
			return evalSingle(ip, body, env)
		}
		v, err := Eval(ip, []cell.Cell{pred}, env)
		if err != nil {
			return nil, err
		}
		if v.Truthy() {
			return evalSingle(ip, body, env)
		}
	}
	return nil, errors.Newf(forms[i].Pos, "cond: no clause matched")
}

// evalSingle evaluates a clause body (everything after a cond clause's
// predicate) as one expression and wraps the result for evalCond's return
// shape. The body is usually one cell, but a quoted atom reads as two cells
// (Quote, the quoted Name) — Eval already knows how to consume that.
func evalSingle(ip *Interp, body []cell.Cell, env *cell.Frame) ([]cell.Cell, error) {
	v, err := Eval(ip, body, env)
	if err != nil {
		return nil, err
	}
	return []cell.Cell{v}, nil
}

// Apply applies an evaluated Proc cell to a fully-evaluated argument
// sequence (spec.md §4.6): a new frame extends the procedure's captured
// environment, parameters bind positionally, and the body evaluates
// against the new frame.
func Apply(ip *Interp, proc cell.Cell, args []cell.Cell) (cell.Cell, error) {
	p := proc.Proc
	if len(p.Params) != len(args) {
		return cell.Cell{}, errors.Newf(proc.Pos, "provided args: %d expected: %d", len(args), len(p.Params))
	}
	frame := ip.Arena.NewFrame(p.Env)
	for i, param := range p.Params {
		frame.Define(param.Str, args[i])
	}
	return Eval(ip, p.Body, frame)
}
