// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package program

import (
	"fmt"
	"io"
	"os"

	"github.com/antheory/bcgo/decimal"
	"github.com/antheory/bcgo/internal/seq"
)

// Array is a dc/bc sparse-looking but densely-backed array variable
// (spec.md §3 "Array: a growable, zero-filled vector of Numbers"),
// built on internal/seq.Sequence the same way the teacher's vector
// values are built on Go slices (robpike-ivy/value/vector.go).
type Array struct {
	vals seq.Sequence[decimal.Number]
}

// At returns the element at index i, which is decimal.Zero if the array
// has never been grown that far (spec.md §4.5 "unset elements read as
// zero").
func (a *Array) At(i int) decimal.Number {
	if i < 0 || i >= a.vals.Len() {
		return decimal.Zero
	}
	return a.vals.At(i)
}

// Set stores v at index i, zero-filling any newly created elements
// below i.
func (a *Array) Set(i int, v decimal.Number) {
	for a.vals.Len() <= i {
		a.vals.Push(decimal.Zero)
	}
	a.vals.Set(i, v)
}

// Len reports how far the array has been grown.
func (a *Array) Len() int { return a.vals.Len() }

// Copy returns a new Array holding an independent copy of a's elements,
// so that binding it into a callee frame can never let the callee's
// writes reach the caller's array (spec.md §4.4 "Array parameters are
// passed by value (full copy)").
func (a *Array) Copy() *Array {
	cp := &Array{}
	for i := 0; i < a.vals.Len(); i++ {
		cp.Set(i, a.vals.At(i))
	}
	return cp
}

// Frame is one activation record on the call stack (spec.md §4.5): the
// function being executed, its bytecode instruction pointer, and the
// local bindings for its parameters and autos, which shadow same-named
// globals for the frame's lifetime.
type Frame struct {
	Fn      *Function
	PC      int
	Scalars map[string]decimal.Number
	Arrays  map[string]*Array
}

// Program is the full runtime state a bc/dc session threads through
// every instruction (spec.md §3's "Program" and §4.5): the global
// scalar/array tables, the function table, the ibase/obase/scale
// triple, the call and value stacks, dc's register file, and the last
// printed result used by bc's "." and dc's "z"-adjacent introspection.
// Grounded on the teacher's exec.Context (robpike-ivy/exec/context.go),
// which is the same kind of single threaded-through state bag for ivy's
// tree-walking evaluator.
type Program struct {
	Config *Config
	Limits Limits

	Functions map[string]*Function
	Globals   map[string]decimal.Number
	Arrays    map[string]*Array

	Ibase, Obase, Scale int
	Last                decimal.Number

	Frames []*Frame
	Stack  []Result

	// Registers implements dc's named register stack-of-values ('s'
	// replaces the whole stack with one value, 'l' copies the top out,
	// 'S' pushes one value, 'L' pops one value back to the main stack).
	Registers map[string][]Result
	// Arrays addressed with dc's ':'/';' share the Arrays table, keyed by
	// register name.

	Rand *decimal.Source

	// Out receives everything print/p/n write (spec.md §4.4, §4.6); the
	// library façade can redirect it, and tests substitute a buffer.
	Out io.Writer

	halted    bool
	quitDepth int
	outCol    int
}

// Write sends s to Out a rune at a time, wrapping at Config.LineLength
// columns with a trailing backslash-newline continuation, the BC_LINE_
// LENGTH behavior spec.md §6 requires bit-exactly. A LineLength <= 0
// disables wrapping. Embedded newlines in s reset the column counter.
func (p *Program) Write(s string) {
	limit := 0
	if p.Config != nil {
		limit = p.Config.LineLength
	}
	for _, r := range s {
		if r == '\n' {
			fmt.Fprint(p.Out, "\n")
			p.outCol = 0
			continue
		}
		if limit > 0 && p.outCol >= limit-1 {
			fmt.Fprint(p.Out, "\\\n")
			p.outCol = 0
		}
		fmt.Fprint(p.Out, string(r))
		p.outCol++
	}
}

// New returns a Program ready to execute, with ibase/obase/scale at
// POSIX bc's required startup defaults (ibase=10, obase=10, scale=0).
func New(cfg *Config) *Program {
	if cfg == nil {
		cfg = NewConfig()
	}
	return &Program{
		Config:    cfg,
		Limits:    DefaultLimits,
		Functions: map[string]*Function{},
		Globals:   map[string]decimal.Number{},
		Arrays:    map[string]*Array{},
		Registers: map[string][]Result{},
		Ibase:     10,
		Obase:     10,
		Scale:     0,
		Last:      decimal.Zero,
		Rand:      decimal.NewSource(),
		Out:       os.Stdout,
	}
}

// Halted reports whether a halt/quit instruction has stopped execution.
func (p *Program) Halted() bool { return p.halted }

// Halt marks the program as stopped without unwinding further frames
// (bc's "halt" statement, spec.md §4.4).
func (p *Program) Halt() { p.halted = true }

// RequestQuit marks the program to unwind n parse/exec levels (dc's
// "q"/"Q" commands, spec.md §4.3 supplement: "dc's quit exits two parse
// levels, N Q exits N levels").
func (p *Program) RequestQuit(levels int) {
	p.halted = true
	p.quitDepth = levels
}

// QuitDepth reports how many levels RequestQuit asked to unwind.
func (p *Program) QuitDepth() int { return p.quitDepth }

// Push appends a Result to the value stack.
func (p *Program) Push(r Result) { p.Stack = append(p.Stack, r) }

// Pop removes and returns the top of the value stack; ok is false on an
// empty stack (dc's "stack empty" fault, spec.md §4.7 KindInvalidStack).
func (p *Program) Pop() (Result, bool) {
	if len(p.Stack) == 0 {
		return Result{}, false
	}
	r := p.Stack[len(p.Stack)-1]
	p.Stack = p.Stack[:len(p.Stack)-1]
	return r, true
}

// Top returns the top of the value stack without removing it.
func (p *Program) Top() (Result, bool) {
	if len(p.Stack) == 0 {
		return Result{}, false
	}
	return p.Stack[len(p.Stack)-1], true
}

// CurrentFrame returns the innermost call frame, or nil at top level.
func (p *Program) CurrentFrame() *Frame {
	if len(p.Frames) == 0 {
		return nil
	}
	return p.Frames[len(p.Frames)-1]
}

// Array returns the named global array, creating it on first reference
// (spec.md §4.5: arrays spring into existence at first use).
func (p *Program) Array(name string) *Array {
	a, ok := p.Arrays[name]
	if !ok {
		a = &Array{}
		p.Arrays[name] = a
	}
	return a
}
