// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package program holds the program-wide calculator state described in
// spec.md §3 and §4.5 and the bytecode instruction set that vm.VM
// interprets: Instruction, Function, Variable/Array stacks, and the
// Program object tying them together (ibase/obase/scale, the call stack,
// the value stack, and the four name-indexed tables). Grounded on the
// teacher's exec.Context (robpike-ivy/exec/context.go), generalized from
// ivy's name→operator-implementation maps into bc/dc's name→bytecode
// function tables plus the variable/array stacks spec.md §3 calls for.
package program

// Op is a single bytecode opcode (spec.md §3 "Instruction: a single byte
// opcode, optionally followed by a variable-length operand").
type Op byte

const (
	OpNop Op = iota

	// Push family. Operands are indices into the current function's
	// const/string tables or the program's name tables, except
	// OpPushArrayRef, whose index expression is already on the stack.
	OpPushConst
	OpPushNumLit
	OpPushStr
	OpPushVar
	OpPushArrayRef
	OpPushLast
	OpPushIbase
	OpPushObase
	OpPushScale

	// Lvalue-reference push family: these push a Ref, not a value,
	// consumed by the OpStore family or by OpPreIncr &c.
	OpPushVarRef
	OpPushArrayElemRef
	OpPushIbaseRef
	OpPushObaseRef
	OpPushScaleRef

	// Unary arithmetic.
	OpNeg
	OpNot

	// Binary arithmetic.
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpMod
	OpPow

	// Comparison, pushing 1 or 0.
	OpEq
	OpNe
	OpLt
	OpLe
	OpGt
	OpGe

	// dc's three-operand modular exponentiation command "a b c |"
	// computes a^b mod c in one step (spec.md §4.4's modExp, exposed to
	// dc the way original_source's dc does).
	OpModExp

	// Increment/decrement: pop a Ref (pushed by the OpPush*Ref family)
	// and replace it with the pre- or post-value (spec.md §4.3 "unary
	// - ! ++ -- ... postfix ++ --").
	OpPreIncr
	OpPreDecr
	OpPostIncr
	OpPostDecr

	// Assignment: pop lvalue ref then value, store, push value back
	// (spec.md §4.4 "Assignment accepts only a named lvalue on top-of-
	// stack"). The compound forms fetch-op-store atomically.
	OpStore
	OpStoreAdd
	OpStoreSub
	OpStoreMul
	OpStoreDiv
	OpStoreMod
	OpStorePow

	// Control flow: operand is a signed self-delimiting relative offset,
	// in bytes of bytecode, from the byte following the operand
	// (spec.md §4.4).
	OpJump
	OpJumpIfZero

	// Function call/return (spec.md §4.4).
	OpCall
	OpReturn
	OpReturnVoid

	// Built-ins (spec.md §4.4).
	OpLength
	OpScaleOf
	OpSqrt
	OpAbs
	OpRead

	// Statement-level effects.
	OpPrint     // pop and print, setting last, with a trailing newline
	OpPrintExpr // print an expression result inline (bc auto-print), no assignment check
	OpPop       // discard top of stack without printing (dc '\n' c command family)
	OpDup       // duplicate top of stack (dc 'd')
	OpSwap      // swap top two stack entries (dc 'r')
	OpClearStack

	// Halting (spec.md §4.4). OpQuit pops a count off the stack and
	// unwinds that many parse/exec levels (dc's "q" pushes 2 first; "N Q"
	// pushes whatever N a program computed).
	OpHalt
	OpQuit

	// dc's non-destructive peek-print ('p': print top, keep it) and
	// pop-print-without-newline ('n'/'P': pop, print, no trailing
	// newline).
	OpPeekPrint
	OpPopPrintNoNL

	// dc register/macro extensions (spec.md §4.3 supplement). Registers
	// are modeled as a per-name stack: 'l'/OpLoadReg peeks the top, 'L'/
	// OpRegPop pops it back onto the main stack, 's'/OpRegSet overwrites
	// the register's whole stack with one value, 'S'/OpStoreReg pushes
	// onto it without disturbing what was there.
	OpLoadReg
	OpStoreReg
	OpRegSet
	OpRegPop
	OpExecStr

	// dc array extensions: ':'r pops an index (top of stack) and then a
	// value and stores the value into register r's array at that index;
	// ';'r pushes register r's array element at a popped index.
	OpArrayStoreReg
	OpArrayLoadReg

	// dc-only stack/base introspection.
	OpSetIbase
	OpSetObase
	OpSetScale
	OpPushDepth
	OpPrintStack

	// dc conditional macro execution: pop a register name already
	// resolved by the compiler into the operand, and execute its macro
	// only if the preceding comparison held (spec.md §4.3 supplement).
	OpExecRegIfTrue

	// bc's "limits" statement: print the compile-time resource ceilings
	// in Program.Limits (SPEC_FULL.md §12's supplemented BC_BASE_MAX/
	// BC_SCALE_MAX/BC_STRING_MAX/BC_NAME_MAX/BC_DIM_MAX surface).
	OpPrintLimits
)

// ULEB128 self-delimiting integer encoding for instruction operands
// (spec.md §3/§9: "a self-delimiting encoding that must be chosen up-
// front and held invariant across parser and VM").

// PutUvarint appends the ULEB128 encoding of v to buf and returns the result.
func PutUvarint(buf []byte, v uint64) []byte {
	for v >= 0x80 {
		buf = append(buf, byte(v)|0x80)
		v >>= 7
	}
	return append(buf, byte(v))
}

// Uvarint decodes a ULEB128 integer from buf, returning the value and the
// number of bytes consumed.
func Uvarint(buf []byte) (uint64, int) {
	var v uint64
	var shift uint
	for i, b := range buf {
		v |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			return v, i + 1
		}
		shift += 7
	}
	return 0, 0
}

// PutSvarint appends the zigzag-ULEB128 encoding of a signed v (used for
// jump offsets) to buf.
func PutSvarint(buf []byte, v int64) []byte {
	u := uint64(v) << 1
	if v < 0 {
		u = ^u
	}
	return PutUvarint(buf, u)
}

// Svarint decodes a zigzag-ULEB128 signed integer.
func Svarint(buf []byte) (int64, int) {
	u, n := Uvarint(buf)
	v := int64(u >> 1)
	if u&1 != 0 {
		v = ^v
	}
	return v, n
}
