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

package cell

// Proc is a user procedure: the record spec.md §3 describes as
// {parameters, body, captured_env}, created only by lambda and the
// define-sugar (spec.md §4.4). Grounded on the original's
// Lexer::Proc{params, body, env} (environment.h/lexer.h).
type Proc struct {
	Params []Cell // each a Name cell
	Body   []Cell
	Env    *Frame // the environment in effect when the procedure was created
}

// Frame is one link in the chained environment of spec.md §4.3: a mapping
// from identifier to Cell, plus an optional outer frame. The root (global)
// frame has Outer == nil.
type Frame struct {
	vars  map[string]Cell
	Outer *Frame
}

// NewFrame allocates a frame extending outer. Prefer Arena.NewFrame for
// frames created during evaluation (let bodies, procedure calls): this
// constructor exists for the root/global frame, which has no arena yet to
// register with.
func NewFrame(outer *Frame) *Frame {
	return &Frame{vars: make(map[string]Cell), Outer: outer}
}

// Lookup walks the frame chain outward, returning the first binding found
// for n (spec.md §4.3a). ok is false if no frame in the chain binds n —
// the caller reports this as the "unbound variable" error.
func (f *Frame) Lookup(n string) (Cell, bool) {
	for fr := f; fr != nil; fr = fr.Outer {
		if v, ok := fr.vars[n]; ok {
			return v, true
		}
	}
	return Cell{}, false
}

// Vars returns a shallow copy of this frame's own bindings, for callers
// outside package cell that want to inspect (never mutate) a frame's
// contents — e.g. a debug pretty-printer.
func (f *Frame) Vars() map[string]Cell {
	out := make(map[string]Cell, len(f.vars))
	for k, v := range f.vars {
		out[k] = v
	}
	return out
}

// Define binds n to v in this frame specifically, never walking outward
// (spec.md §4.3c). Both top-level define and let-binding use this: a
// failing define should not leave a partial binding (spec.md §7 policy),
// so callers must fully evaluate the value before calling Define.
func (f *Frame) Define(n string, v Cell) {
	f.vars[n] = v
}

// Arena is the grow-only store of frames and procedures for one interpreter
// instance (spec.md §3 "Lifecycle summary", §5 "separate arenas ... require
// separate instances"). Unlike the original's std::vector-with-reserved-
// capacity (a C++ correctness crutch against reallocation invalidating
// pointers, spec.md §9), Go already gives every *Frame and *Proc a stable
// address for its lifetime: a Frame or Proc is its own heap allocation, and
// growing the Arena's bookkeeping slices elsewhere never relocates it. The
// Arena's job is purely to track every frame/procedure ever created for the
// lifetime of the session — nothing is ever removed, matching the "no
// garbage collection of unreferenced closures or environments" non-goal.
type Arena struct {
	Frames []*Frame
	Procs  []*Proc
}

// NewArena returns an empty arena.
func NewArena() *Arena {
	return &Arena{}
}

// NewFrame allocates a new frame extending outer and registers it in the
// arena.
func (a *Arena) NewFrame(outer *Frame) *Frame {
	f := NewFrame(outer)
	a.Frames = append(a.Frames, f)
	return f
}

// NewProc allocates a new procedure and registers it in the arena.
func (a *Arena) NewProc(params, body []Cell, env *Frame) *Proc {
	p := &Proc{Params: params, Body: body, Env: env}
	a.Procs = append(a.Procs, p)
	return p
}
