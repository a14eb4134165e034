// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package parse compiles bc and dc source text into the bytecode that
// package vm interprets (spec.md §4.3, §4.4): a precedence-climbing
// expression parser and recursive-descent statement parser for bc's
// infix language, and a single-pass command compiler for dc's postfix
// stack language. Grounded on the teacher's parse package
// (robpike-ivy/parse/parse.go), whose Parser walks ivy's token stream
// and calls into exec to build expression trees the way this package's
// compilers build flat bytecode instead.
package parse

import (
	"github.com/antheory/bcgo/decimal"
	"github.com/antheory/bcgo/program"
)

// emitter accumulates one Function's bytecode, constant/string/name
// tables and jump-patch bookkeeping (spec.md §9's "a self-delimiting
// encoding chosen up front and held invariant"): every jump is written
// as a placeholder-length operand and patched once its target is known,
// the same two-pass approach an assembler uses for forward branches.
type emitter struct {
	fn *program.Function
}

func newEmitter(name string) *emitter {
	return &emitter{fn: &program.Function{Name: name}}
}

func (e *emitter) op(o program.Op) {
	e.fn.Code = append(e.fn.Code, byte(o))
}

func (e *emitter) uvarint(v uint64) {
	e.fn.Code = program.PutUvarint(e.fn.Code, v)
}

func (e *emitter) pushConst(n decimal.Number) {
	e.op(program.OpPushConst)
	e.uvarint(uint64(e.fn.AddConst(n)))
}

func (e *emitter) pushNumLit(text string) {
	// A literal such as ".5" gets its integer zero back here, since
	// decimal.Parse rejects an empty integer part.
	if len(text) > 0 && text[0] == '.' {
		text = "0" + text
	}
	e.op(program.OpPushNumLit)
	e.uvarint(uint64(e.fn.AddLiteral(text)))
}

func (e *emitter) pushStr(s string) {
	e.op(program.OpPushStr)
	e.uvarint(uint64(e.fn.AddStr(s)))
}

func (e *emitter) nameOp(o program.Op, name string) {
	e.op(o)
	e.uvarint(uint64(e.fn.AddName(name)))
}

// pos returns the current bytecode offset, the natural unit for
// jump-target bookkeeping.
func (e *emitter) pos() int { return len(e.fn.Code) }

// jump emits a jump opcode with a placeholder signed operand (always
// encoded in the maximum 2-byte width this compiler ever needs, so
// patch can overwrite it in place without shifting later code) and
// returns the operand's offset for patch.
func (e *emitter) jump(o program.Op) int {
	e.op(o)
	at := e.pos()
	e.fn.Code = append(e.fn.Code, 0, 0)
	return at
}

// patch overwrites the placeholder operand written by jump with the
// relative offset from just past the operand to the current position.
func (e *emitter) patch(at int) {
	target := e.pos() - (at + 2)
	buf := program.PutSvarint(nil, int64(target))
	if len(buf) > 2 {
		panic("parse: jump out of range for fixed-width placeholder")
	}
	for len(buf) < 2 {
		// pad with a continuation-marked zero so Svarint still decodes
		// correctly but consumes exactly 2 bytes.
		buf[len(buf)-1] |= 0x80
		buf = append(buf, 0)
	}
	copy(e.fn.Code[at:at+2], buf)
}

// jumpTo emits a jump with a known backward target (loop-back edges,
// whose target always precedes the jump itself).
func (e *emitter) jumpTo(o program.Op, target int) {
	e.op(o)
	off := target - (e.pos() + 2)
	buf := program.PutSvarint(nil, int64(off))
	for len(buf) < 2 {
		buf[len(buf)-1] |= 0x80
		buf = append(buf, 0)
	}
	if len(buf) > 2 {
		panic("parse: backward jump out of range")
	}
	e.fn.Code = append(e.fn.Code, buf...)
}
