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

package cell_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"littlelisp.dev/go/cell"
	"littlelisp.dev/go/token"
)

func TestTruthy(t *testing.T) {
	qt.Assert(t, qt.IsFalse(cell.Bool(token.NoPos, false).Truthy()))
	qt.Assert(t, qt.IsTrue(cell.Bool(token.NoPos, true).Truthy()))
	qt.Assert(t, qt.IsTrue(cell.Number(token.NoPos, 0).Truthy()))
	qt.Assert(t, qt.IsTrue(cell.Name(token.NoPos, "x").Truthy()))
}

func TestPrintNumber(t *testing.T) {
	qt.Assert(t, qt.Equals(cell.Number(token.NoPos, 6).String(), "6"))
	qt.Assert(t, qt.Equals(cell.Number(token.NoPos, 1.5).String(), "1.5"))
}

func TestPrintList(t *testing.T) {
	l := cell.ExprList(token.NoPos, []cell.Cell{
		cell.Number(token.NoPos, 1),
		cell.Number(token.NoPos, 2),
		cell.Number(token.NoPos, 3),
	})
	qt.Assert(t, qt.Equals(l.String(), "(1 2 3)"))
}

func TestPrintProc(t *testing.T) {
	p := &cell.Proc{}
	qt.Assert(t, qt.Equals(cell.ProcCell(token.NoPos, p).String(), "proc"))
}

func TestEqualAndLess(t *testing.T) {
	a := cell.Number(token.NoPos, 1)
	b := cell.Number(token.NoPos, 2)
	qt.Assert(t, qt.IsTrue(cell.Less(a, b)))
	qt.Assert(t, qt.IsFalse(cell.Equal(a, b)))
	qt.Assert(t, qt.IsTrue(cell.Equal(a, a)))

	s1 := cell.Name(token.NoPos, "abc")
	s2 := cell.Name(token.NoPos, "abd")
	qt.Assert(t, qt.IsTrue(cell.Less(s1, s2)))
}

func TestFrameLookupAndScoping(t *testing.T) {
	arena := cell.NewArena()
	root := cell.NewFrame(nil)
	root.Define("x", cell.Number(token.NoPos, 1))

	inner := arena.NewFrame(root)
	inner.Define("y", cell.Number(token.NoPos, 2))

	v, ok := inner.Lookup("x")
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(v.Num, 1.0))

	_, ok = root.Lookup("y")
	qt.Assert(t, qt.IsFalse(ok))

	_, ok = inner.Lookup("z")
	qt.Assert(t, qt.IsFalse(ok))
}

func TestFrameDefineShadowsOuter(t *testing.T) {
	root := cell.NewFrame(nil)
	root.Define("x", cell.Number(token.NoPos, 1))

	child := cell.NewFrame(root)
	child.Define("x", cell.Number(token.NoPos, 2))

	v, _ := child.Lookup("x")
	qt.Assert(t, qt.Equals(v.Num, 2.0))
	v, _ = root.Lookup("x")
	qt.Assert(t, qt.Equals(v.Num, 1.0))
}
