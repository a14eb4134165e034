// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package program

import "github.com/antheory/bcgo/decimal"

// ResultKind tags what a Result on the VM's value stack actually holds
// (spec.md §3 "Result: a tagged stack cell, since dc can push strings as
// well as numbers").
type ResultKind int

const (
	ResultNumber ResultKind = iota
	ResultString
	ResultRef
)

// Result is one entry of the VM's value stack. Ref is populated only
// when Kind == ResultRef: the compiler emits an OpPushRef-style lvalue
// immediately ahead of an OpStore family instruction so assignment
// targets travel through the same stack as every other value instead of
// needing a side channel.
type Result struct {
	Kind ResultKind
	Num  decimal.Number
	Str  string
	Ref  Ref
}

// Num wraps a decimal.Number as a Result.
func Num(n decimal.Number) Result { return Result{Kind: ResultNumber, Num: n} }

// Str wraps a string as a Result (dc strings double as deferred macros).
func Str(s string) Result { return Result{Kind: ResultString, Str: s} }

// RefResult wraps an lvalue reference as a Result.
func RefResult(r Ref) Result { return Result{Kind: ResultRef, Ref: r} }

// RefKind distinguishes the lvalue shapes bc/dc assignment can target
// (scalar, array element, ibase, obase, scale) plus dc registers
// (spec.md §4.4 "Assignment accepts only a named lvalue").
type RefKind int

const (
	RefVar RefKind = iota
	RefArrayElem
	RefIbase
	RefObase
	RefScale
	RefReg // dc register, used by register load/store, not general assignment
)

// Ref identifies an assignable location: a scalar variable, one element
// of an array, one of the three global tuning knobs, or a dc register.
type Ref struct {
	Kind  RefKind
	Name  string
	Index int // array element index, meaningful only when Kind == RefArrayElem
}
