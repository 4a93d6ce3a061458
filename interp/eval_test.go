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

package interp_test

import (
	"strings"
	"testing"

	"github.com/go-quicktest/qt"

	"littlelisp.dev/go/errors"
	"littlelisp.dev/go/interp"
)

// run feeds every top-level form in src through the interpreter in order,
// returning the value of the final one. It reads forms directly rather than
// driving interp.RunForm's include-stack bookkeeping, which these
// single-source tests don't exercise.
func run(t *testing.T, src string) (string, error) {
	t.Helper()
	ip := interp.New(func(e errors.Error) { t.Logf("diagnostic: %v", e) })
	ip.Include("<test>", strings.NewReader(src))

	var last string
	for {
		form, err := ip.Reader.ReadExpr(true)
		if err != nil {
			return "", err
		}
		if len(form) == 0 {
			return last, nil
		}
		result, err := interp.Eval(ip, form, ip.Global)
		if err != nil {
			return "", err
		}
		last = result.String()
	}
}

func TestArithmeticIsCommutative(t *testing.T) {
	a, err := run(t, "(+ 2 3)")
	qt.Assert(t, qt.IsNil(err))
	b, err := run(t, "(+ 3 2)")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(a, b))
	qt.Assert(t, qt.Equals(a, "5"))
}

func TestSquareClosure(t *testing.T) {
	got, err := run(t, "(define (sq x) (* x x)) (sq 7)")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(got, "49"))
}

func TestFactorialRecursion(t *testing.T) {
	src := `
(define (fact n)
  (cond ((= n 0) 1)
        (else (* n (fact (- n 1))))))
(fact 5)
`
	got, err := run(t, src)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(got, "120"))
}

func TestLetBindsAgainstOuterEnv(t *testing.T) {
	got, err := run(t, "(define x 10) (let ((x 1) (y (+ x 1))) (+ x y))")
	qt.Assert(t, qt.IsNil(err))
	// y = (+ x 1) evaluated against the OUTER x (10), not the shadowed one:
	// y = 11, body's x = 1, so result is 1 + 11 = 12.
	qt.Assert(t, qt.Equals(got, "12"))
}

func TestCondElseMustBeLast(t *testing.T) {
	_, err := run(t, "(cond ((< 2 1) 1) (else 2) ((< 1 2) 3))")
	qt.Assert(t, qt.IsNotNil(err))
}

func TestCondReturnsQuotedAtom(t *testing.T) {
	got, err := run(t, "(cond ((< 1 2) 'a) (else 'b))")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(got, "a"))

	got, err = run(t, "(cond ((< 2 1) 'a) (else 'b))")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(got, "b"))
}

func TestBeginEvaluatesInOrderAndReturnsLast(t *testing.T) {
	got, err := run(t, "(define x 0) (begin (define x 1) (define x (+ x 1)) x)")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(got, "2"))
}

func TestZeroArgPrimitives(t *testing.T) {
	got, err := run(t, "(empty? (list))")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(got, "#t"))

	got, err = run(t, "(list)")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(got, "()"))

	got, err = run(t, "(and)")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(got, "#t"))

	got, err = run(t, "(or)")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(got, "#f"))
}

func TestCarAndCdr(t *testing.T) {
	got, err := run(t, "(car (list 1 2 3))")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(got, "1"))

	got, err = run(t, "(cdr (list 1 2))")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(got, "2"))

	got, err = run(t, "(cdr (list 1 2 3))")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(got, "(2 3)"))
}

func TestLexicalScopingCapturesDefinitionEnv(t *testing.T) {
	src := `
(define (make-adder n) (lambda (x) (+ x n)))
(define add5 (make-adder 5))
(define n 1000)
(add5 1)
`
	got, err := run(t, src)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(got, "6"))
}

func TestUnboundVariableIsError(t *testing.T) {
	_, err := run(t, "unbound-name")
	qt.Assert(t, qt.IsNotNil(err))
}

func TestArityMismatchIsError(t *testing.T) {
	_, err := run(t, "(define (f x y) (+ x y)) (f 1)")
	qt.Assert(t, qt.IsNotNil(err))
}
