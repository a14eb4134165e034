// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package program

import "github.com/antheory/bcgo/decimal"

// Param describes one formal parameter or auto-local of a Function
// (spec.md §4.4 "define f(a, b[]) { auto x, y[] }"). Both scalars and
// arrays are passed by value: an array argument is fully copied into the
// callee's frame, so mutating a parameter array never touches the
// caller's array (spec.md §4.4 "Array parameters are passed by value
// (full copy)").
type Param struct {
	Name    string
	IsArray bool
}

// Function is one compiled bc function or dc macro string: its bytecode
// plus the constant and string tables the bytecode's OpPushConst/
// OpPushStr operands index into (spec.md §3 "Function: name, parameter
// list, auto-variable list, bytecode body, constant pool"). Grounded on
// the teacher's exec.function (robpike-ivy/exec/function.go), whose
// Body/Locals fields play the analogous role for ivy's tree-walked user
// functions.
type Function struct {
	Name   string
	Params []Param
	Autos  []Param
	Code     []byte
	Consts   []decimal.Number
	Strs     []string
	Names    []string // variable/array/register names referenced by OpPushVar &c.
	Literals []string // raw digit text of numeric literals, parsed at runtime against ibase
	Void     bool      // declared "define void f(...)" (spec.md §4.4 supplement): no implicit 0 return
}

// AddConst interns v into f's constant table and returns its index,
// reusing an existing slot when Cmp(v, existing) == 0 so repeated
// literals in one function don't bloat the table.
func (f *Function) AddConst(v decimal.Number) int {
	for i, c := range f.Consts {
		if decimal.Equal(c, v) {
			return i
		}
	}
	f.Consts = append(f.Consts, v)
	return len(f.Consts) - 1
}

// AddStr interns s into f's string table and returns its index.
func (f *Function) AddStr(s string) int {
	for i, c := range f.Strs {
		if c == s {
			return i
		}
	}
	f.Strs = append(f.Strs, s)
	return len(f.Strs) - 1
}

// AddName interns a variable/array/register name into f's name table and
// returns its index.
func (f *Function) AddName(name string) int {
	for i, c := range f.Names {
		if c == name {
			return i
		}
	}
	f.Names = append(f.Names, name)
	return len(f.Names) - 1
}

// AddLiteral interns the raw digit text of a numeric literal, returning
// its index. Literals are parsed at VM execution time rather than
// compile time because ibase can change between compilation and
// execution (spec.md §4.2: "a numeral's value depends on ibase at the
// moment it is evaluated, not at parse time").
func (f *Function) AddLiteral(text string) int {
	for i, c := range f.Literals {
		if c == text {
			return i
		}
	}
	f.Literals = append(f.Literals, text)
	return len(f.Literals) - 1
}
