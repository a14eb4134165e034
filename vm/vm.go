// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vm interprets the bytecode that package parse compiles
// (spec.md §4.4): a stack machine over program.Program's value stack,
// call frames and globals. Grounded on the teacher's exec package
// (robpike-ivy/exec/context.go, function.go), whose Context.Eval walks
// ivy's parse tree the way Run here walks a flat instruction stream;
// the two share the same frame-push/execute/frame-pop call discipline
// and the same single-recover fault boundary as run.Run
// (robpike-ivy/run/run.go).
package vm

import (
	"fmt"

	"github.com/antheory/bcgo/decimal"
	"github.com/antheory/bcgo/diag"
	"github.com/antheory/bcgo/internal/bclog"
	"github.com/antheory/bcgo/parse"
	"github.com/antheory/bcgo/program"
)

// Run executes fn's bytecode against p from instruction 0, as a fresh
// top-level frame with no parameters. halt/quit stop execution by
// setting p.Halted()/p.QuitDepth() and returning normally, not by
// panicking; callers that loop over multiple chunks of input should
// check p.Halted() after a nil err to decide whether to stop.
func Run(p *program.Program, fn *program.Function) (err *diag.Fault) {
	defer diag.Recover(&err)
	frame := &program.Frame{Fn: fn, Scalars: map[string]decimal.Number{}, Arrays: map[string]*program.Array{}}
	p.Frames = append(p.Frames, frame)
	exec(p, frame)
	p.Frames = p.Frames[:len(p.Frames)-1]
	return nil
}

// exec runs frame.Fn's bytecode starting at frame.PC until it falls off
// the end, executes OpReturn/OpReturnVoid, or the program halts.
func exec(p *program.Program, frame *program.Frame) {
	code := frame.Fn.Code
	for frame.PC < len(code) && !p.Halted() {
		op := program.Op(code[frame.PC])
		frame.PC++
		if bclog.V(2) {
			bclog.Infof("pc=%d op=%d stack=%d", frame.PC-1, op, len(p.Stack))
		}
		switch op {
		case program.OpNop:

		case program.OpPushConst:
			idx := readOperand(frame, code)
			p.Push(program.Num(frame.Fn.Consts[idx]))
		case program.OpPushNumLit:
			idx := readOperand(frame, code)
			text := frame.Fn.Literals[idx]
			n, _, err := decimal.Parse(text, p.Ibase, 100)
			if err != nil {
				diag.Raise(diag.KindInvalidString, "invalid numeral %q", text)
			}
			p.Push(program.Num(n))
		case program.OpPushStr:
			idx := readOperand(frame, code)
			p.Push(program.Str(frame.Fn.Strs[idx]))
		case program.OpPushVar:
			idx := readOperand(frame, code)
			name := frame.Fn.Names[idx]
			p.Push(program.Num(lookupScalar(p, frame, name)))
		case program.OpPushArrayRef:
			idx := readOperand(frame, code)
			name := frame.Fn.Names[idx]
			iv := popNumber(p, "array index")
			i := toIndex(iv)
			p.Push(program.Num(lookupArray(p, frame, name).At(i)))
		case program.OpPushLast:
			p.Push(program.Num(p.Last))
		case program.OpPushIbase:
			p.Push(program.Num(decimal.NewFromInt64(int64(p.Ibase))))
		case program.OpPushObase:
			p.Push(program.Num(decimal.NewFromInt64(int64(p.Obase))))
		case program.OpPushScale:
			p.Push(program.Num(decimal.NewFromInt64(int64(p.Scale))))

		case program.OpNeg:
			a := popNumber(p, "-")
			p.Push(program.Num(a.Negate()))
		case program.OpNot:
			a := popNumber(p, "!")
			p.Push(program.Num(boolNum(a.IsZero())))

		case program.OpAdd, program.OpSub, program.OpMul, program.OpDiv, program.OpMod, program.OpPow:
			b := popNumber(p, "binary operator")
			a := popNumber(p, "binary operator")
			p.Push(program.Num(binaryArith(p, op, a, b)))

		case program.OpEq, program.OpNe, program.OpLt, program.OpLe, program.OpGt, program.OpGe:
			b := popNumber(p, "comparison")
			a := popNumber(p, "comparison")
			p.Push(program.Num(boolNum(compare(op, decimal.Cmp(a, b)))))

		case program.OpModExp:
			c := popNumber(p, "|")
			b := popNumber(p, "|")
			a := popNumber(p, "|")
			r, err := decimal.ModExp(a, b, c)
			if err != nil {
				diag.Raise(mapMathErr(err), "|")
			}
			p.Push(program.Num(r))

		case program.OpPreIncr, program.OpPreDecr, program.OpPostIncr, program.OpPostDecr:
			ref := popRef(p)
			old := readRef(p, frame, ref)
			delta := decimal.One
			if op == program.OpPreDecr || op == program.OpPostDecr {
				delta = delta.Negate()
			}
			next := decimal.Add(old, delta)
			writeRef(p, frame, ref, next)
			if op == program.OpPreIncr || op == program.OpPreDecr {
				p.Push(program.Num(next))
			} else {
				p.Push(program.Num(old))
			}

		case program.OpPushVarRef:
			idx := readOperand(frame, code)
			p.Push(program.RefResult(program.Ref{Kind: program.RefVar, Name: frame.Fn.Names[idx]}))
		case program.OpPushArrayElemRef:
			idx := readOperand(frame, code)
			iv := popNumber(p, "array index")
			p.Push(program.RefResult(program.Ref{Kind: program.RefArrayElem, Name: frame.Fn.Names[idx], Index: toIndex(iv)}))
		case program.OpPushIbaseRef:
			p.Push(program.RefResult(program.Ref{Kind: program.RefIbase}))
		case program.OpPushObaseRef:
			p.Push(program.RefResult(program.Ref{Kind: program.RefObase}))
		case program.OpPushScaleRef:
			p.Push(program.RefResult(program.Ref{Kind: program.RefScale}))

		case program.OpStore, program.OpStoreAdd, program.OpStoreSub, program.OpStoreMul,
			program.OpStoreDiv, program.OpStoreMod, program.OpStorePow:
			ref := popRef(p)
			v := popNumber(p, "assignment")
			if op != program.OpStore {
				cur := readRef(p, frame, ref)
				v = binaryArith(p, storeOpToArith(op), cur, v)
			}
			writeRef(p, frame, ref, v)
			p.Push(program.Num(v))

		case program.OpJump:
			off := readSignedOperand(frame, code)
			frame.PC += off
		case program.OpJumpIfZero:
			off := readSignedOperand(frame, code)
			cond := popNumber(p, "condition")
			if cond.IsZero() {
				frame.PC += off
			}

		case program.OpCall:
			idx := readOperand(frame, code)
			name := frame.Fn.Names[idx]
			callFunction(p, frame, name)

		case program.OpReturn:
			// value already on stack; nothing else to do, just stop.
			return
		case program.OpReturnVoid:
			if !frame.Fn.Void {
				p.Push(program.Num(decimal.Zero))
			}
			return

		case program.OpLength:
			v := popResult(p)
			p.Push(program.Num(decimal.NewFromInt64(int64(resultLength(v)))))
		case program.OpScaleOf:
			a := popNumber(p, "scale()")
			p.Push(program.Num(decimal.NewFromInt64(int64(a.Scale()))))
		case program.OpSqrt:
			a := popNumber(p, "sqrt()")
			r, err := decimal.Sqrt(a, p.Scale)
			if err != nil {
				diag.Raise(mapMathErr(err), "sqrt")
			}
			p.Push(program.Num(r))
		case program.OpAbs:
			a := popNumber(p, "abs()")
			if decimal.Sign(a) < 0 {
				a = a.Negate()
			}
			p.Push(program.Num(a))
		case program.OpRead:
			diag.Raise(diag.KindRecursiveRead, "read() requires an interactive reader, none configured")

		case program.OpPrint:
			v := popResult(p)
			printResult(p, v, true)
		case program.OpPrintExpr:
			v, ok := p.Top()
			if ok {
				printResult(p, v, true)
			}
		case program.OpPop:
			popResult(p)
		case program.OpDup:
			v, ok := p.Top()
			if !ok {
				diag.Raise(diag.KindInvalidStack, "stack empty")
			}
			p.Push(v)
		case program.OpSwap:
			b := popResult(p)
			a := popResult(p)
			p.Push(b)
			p.Push(a)
		case program.OpClearStack:
			p.Stack = p.Stack[:0]

		case program.OpHalt:
			p.Halt()
			return
		case program.OpQuit:
			levels := toIndex(popNumber(p, "q"))
			p.RequestQuit(levels)
			return

		case program.OpPeekPrint:
			v, ok := p.Top()
			if !ok {
				diag.Raise(diag.KindInvalidStack, "stack empty")
			}
			printResult(p, v, true)
		case program.OpPopPrintNoNL:
			v := popResult(p)
			printResult(p, v, false)

		case program.OpPrintLimits:
			printLimits(p)

		case program.OpLoadReg:
			idx := readOperand(frame, code)
			name := frame.Fn.Names[idx]
			regs := p.Registers[name]
			if len(regs) == 0 {
				diag.Raise(diag.KindInvalidStack, "register %q is empty", name)
			}
			p.Push(regs[len(regs)-1])
		case program.OpStoreReg:
			idx := readOperand(frame, code)
			name := frame.Fn.Names[idx]
			v := popResult(p)
			p.Registers[name] = append(p.Registers[name], v)
		case program.OpExecStr:
			v := popResult(p)
			if v.Kind != program.ResultString {
				diag.Raise(diag.KindInvalidType, "x requires a string")
			}
			execMacro(p, v.Str)

		case program.OpRegSet:
			idx := readOperand(frame, code)
			name := frame.Fn.Names[idx]
			v := popResult(p)
			p.Registers[name] = []program.Result{v}
		case program.OpRegPop:
			idx := readOperand(frame, code)
			name := frame.Fn.Names[idx]
			regs := p.Registers[name]
			if len(regs) == 0 {
				diag.Raise(diag.KindInvalidStack, "register %q is empty", name)
			}
			p.Push(regs[len(regs)-1])
			p.Registers[name] = regs[:len(regs)-1]

		case program.OpArrayStoreReg:
			idx := readOperand(frame, code)
			name := frame.Fn.Names[idx]
			iv := popNumber(p, "array index")
			v := popNumber(p, ":")
			p.Array(name).Set(toIndex(iv), v)
		case program.OpArrayLoadReg:
			idx := readOperand(frame, code)
			name := frame.Fn.Names[idx]
			iv := popNumber(p, "array index")
			p.Push(program.Num(p.Array(name).At(toIndex(iv))))

		case program.OpSetIbase:
			v := popNumber(p, "i")
			writeRef(p, frame, program.Ref{Kind: program.RefIbase}, v)
		case program.OpSetObase:
			v := popNumber(p, "o")
			writeRef(p, frame, program.Ref{Kind: program.RefObase}, v)
		case program.OpSetScale:
			v := popNumber(p, "k")
			writeRef(p, frame, program.Ref{Kind: program.RefScale}, v)
		case program.OpPushDepth:
			p.Push(program.Num(decimal.NewFromInt64(int64(len(p.Stack)))))
		case program.OpPrintStack:
			for i := len(p.Stack) - 1; i >= 0; i-- {
				printResult(p, p.Stack[i], true)
			}

		case program.OpExecRegIfTrue:
			idx := readOperand(frame, code)
			name := frame.Fn.Names[idx]
			cond := popNumber(p, "conditional execute")
			if !cond.IsZero() {
				regs := p.Registers[name]
				if len(regs) == 0 || regs[len(regs)-1].Kind != program.ResultString {
					diag.Raise(diag.KindInvalidType, "register %q holds no macro", name)
				}
				execMacro(p, regs[len(regs)-1].Str)
			}

		default:
			diag.Raise(diag.KindInvalidStatement, "unimplemented opcode %d", op)
		}
	}
}

func readOperand(frame *program.Frame, code []byte) int {
	v, n := program.Uvarint(code[frame.PC:])
	frame.PC += n
	return int(v)
}

func readSignedOperand(frame *program.Frame, code []byte) int {
	v, n := program.Svarint(code[frame.PC:])
	frame.PC += n
	return int(v)
}

func popResult(p *program.Program) program.Result {
	r, ok := p.Pop()
	if !ok {
		diag.Raise(diag.KindInvalidStack, "stack empty")
	}
	return r
}

func popNumber(p *program.Program, what string) decimal.Number {
	r := popResult(p)
	if r.Kind != program.ResultNumber {
		diag.Raise(diag.KindInvalidType, "%s requires a number, got a string", what)
	}
	return r.Num
}

func popRef(p *program.Program) program.Ref {
	r := popResult(p)
	if r.Kind != program.ResultRef {
		diag.Raise(diag.KindInvalidLValue, "assignment target is not an lvalue")
	}
	return r.Ref
}

func toIndex(n decimal.Number) int {
	v := 0
	s := n.Print(10)
	fmt.Sscanf(s, "%d", &v)
	if v < 0 {
		v = 0
	}
	return v
}

func boolNum(b bool) decimal.Number {
	if b {
		return decimal.One
	}
	return decimal.Zero
}

func compare(op program.Op, c int) bool {
	switch op {
	case program.OpEq:
		return c == 0
	case program.OpNe:
		return c != 0
	case program.OpLt:
		return c < 0
	case program.OpLe:
		return c <= 0
	case program.OpGt:
		return c > 0
	case program.OpGe:
		return c >= 0
	}
	return false
}

func storeOpToArith(op program.Op) program.Op {
	switch op {
	case program.OpStoreAdd:
		return program.OpAdd
	case program.OpStoreSub:
		return program.OpSub
	case program.OpStoreMul:
		return program.OpMul
	case program.OpStoreDiv:
		return program.OpDiv
	case program.OpStoreMod:
		return program.OpMod
	case program.OpStorePow:
		return program.OpPow
	}
	return program.OpAdd
}

func binaryArith(p *program.Program, op program.Op, a, b decimal.Number) decimal.Number {
	switch op {
	case program.OpAdd:
		return decimal.Add(a, b)
	case program.OpSub:
		return decimal.Sub(a, b)
	case program.OpMul:
		return decimal.Mul(a, b, p.Scale)
	case program.OpDiv:
		r, err := decimal.Div(a, b, p.Scale)
		if err != nil {
			diag.Raise(mapMathErr(err), "/")
		}
		return r
	case program.OpMod:
		r, err := decimal.Mod(a, b)
		if err != nil {
			diag.Raise(mapMathErr(err), "%%")
		}
		return r
	case program.OpPow:
		r, err := decimal.Pow(a, b, p.Scale)
		if err != nil {
			diag.Raise(mapMathErr(err), "^")
		}
		return r
	}
	diag.Raise(diag.KindInvalidExpr, "unknown arithmetic opcode %d", op)
	return decimal.Zero
}

func mapMathErr(err error) diag.Kind {
	switch err {
	case decimal.ErrDivideByZero:
		return diag.KindDivideByZero
	case decimal.ErrNegativeSqrt:
		return diag.KindNegativeSqrt
	case decimal.ErrNonInteger:
		return diag.KindNonInteger
	case decimal.ErrInvalidString:
		return diag.KindInvalidString
	}
	return diag.KindInvalidExpr
}

func resultLength(r program.Result) int {
	if r.Kind == program.ResultString {
		return len(r.Str)
	}
	return r.Num.Digits()
}

// lookupScalar reads a variable, consulting the current frame's locals
// first so params/autos shadow same-named globals (spec.md §4.4).
func lookupScalar(p *program.Program, frame *program.Frame, name string) decimal.Number {
	if frame != nil {
		if v, ok := frame.Scalars[name]; ok {
			return v
		}
	}
	switch name {
	case "ibase":
		return decimal.NewFromInt64(int64(p.Ibase))
	case "obase":
		return decimal.NewFromInt64(int64(p.Obase))
	case "scale":
		return decimal.NewFromInt64(int64(p.Scale))
	}
	return p.Globals[name]
}

func storeScalar(p *program.Program, frame *program.Frame, name string, v decimal.Number) {
	if frame != nil {
		if _, ok := frame.Scalars[name]; ok {
			frame.Scalars[name] = v
			return
		}
	}
	p.Globals[name] = v
}

func lookupArray(p *program.Program, frame *program.Frame, name string) *program.Array {
	if frame != nil {
		if a, ok := frame.Arrays[name]; ok {
			return a
		}
	}
	return p.Array(name)
}

func readRef(p *program.Program, frame *program.Frame, ref program.Ref) decimal.Number {
	switch ref.Kind {
	case program.RefVar:
		return lookupScalar(p, frame, ref.Name)
	case program.RefArrayElem:
		return lookupArray(p, frame, ref.Name).At(ref.Index)
	case program.RefIbase:
		return decimal.NewFromInt64(int64(p.Ibase))
	case program.RefObase:
		return decimal.NewFromInt64(int64(p.Obase))
	case program.RefScale:
		return decimal.NewFromInt64(int64(p.Scale))
	}
	return decimal.Zero
}

func writeRef(p *program.Program, frame *program.Frame, ref program.Ref, v decimal.Number) {
	switch ref.Kind {
	case program.RefVar:
		storeScalar(p, frame, ref.Name, v)
	case program.RefArrayElem:
		lookupArray(p, frame, ref.Name).Set(ref.Index, v)
	case program.RefIbase:
		n := toIndex(v)
		if n < 2 || n > p.Limits.BaseMax {
			diag.Raise(diag.KindInvalidIbase, "ibase must be between 2 and %d", p.Limits.BaseMax)
		}
		p.Ibase = n
	case program.RefObase:
		n := toIndex(v)
		if n < 2 || n > p.Limits.BaseMax {
			diag.Raise(diag.KindInvalidObase, "obase must be between 2 and %d", p.Limits.BaseMax)
		}
		p.Obase = n
	case program.RefScale:
		n := toIndex(v)
		if n < 0 || n > p.Limits.ScaleMax {
			diag.Raise(diag.KindInvalidScale, "scale must be between 0 and %d", p.Limits.ScaleMax)
		}
		p.Scale = n
	}
}

// callFunction binds arguments (scalars and arrays both by value) into a
// fresh frame and executes the callee to completion (spec.md §4.4
// "Array parameters are passed by value (full copy)").
func callFunction(p *program.Program, caller *program.Frame, name string) {
	fn, ok := p.Functions[name]
	if !ok {
		diag.Raise(diag.KindUndefinedFunc, "undefined function %q", name)
	}
	if len(p.Frames) >= p.Limits.ExecDepth {
		diag.Raise(diag.KindLimitsReached, "call depth exceeded")
	}
	frame := &program.Frame{Fn: fn, Scalars: map[string]decimal.Number{}, Arrays: map[string]*program.Array{}}
	// arguments were pushed by the caller left-to-right; pop in reverse.
	for i := len(fn.Params) - 1; i >= 0; i-- {
		param := fn.Params[i]
		if param.IsArray {
			r := popResult(p)
			if r.Kind != program.ResultString {
				diag.Raise(diag.KindMismatchedParams, "array argument expected for %q", param.Name)
			}
			frame.Arrays[param.Name] = lookupArray(p, caller, r.Str).Copy()
		} else {
			v := popNumber(p, "function argument")
			frame.Scalars[param.Name] = v
		}
	}
	for _, a := range fn.Autos {
		if a.IsArray {
			frame.Arrays[a.Name] = &program.Array{}
		} else {
			frame.Scalars[a.Name] = decimal.Zero
		}
	}
	depthBefore := len(p.Stack)
	p.Frames = append(p.Frames, frame)
	exec(p, frame)
	p.Frames = p.Frames[:len(p.Frames)-1]
	if !fn.Void && !p.Halted() && len(p.Stack) == depthBefore {
		p.Push(program.Num(decimal.Zero))
	}
}

// execMacro runs a dc string as a one-shot nameless function, the way
// dc's 'x' command lazily compiles-and-executes a pushed string
// (spec.md §4.3 supplement, original_source's dc macro execution).
func execMacro(p *program.Program, src string) {
	fn, err := parse.CompileDCMacro(src)
	if err != nil {
		diag.Raise(diag.KindInvalidStatement, "%v", err)
	}
	frame := &program.Frame{Fn: fn, Scalars: map[string]decimal.Number{}, Arrays: map[string]*program.Array{}}
	p.Frames = append(p.Frames, frame)
	exec(p, frame)
	p.Frames = p.Frames[:len(p.Frames)-1]
}

func printResult(p *program.Program, v program.Result, newline bool) {
	if v.Kind == program.ResultString {
		emit(p, v.Str, newline)
		return
	}
	p.Last = v.Num
	emit(p, v.Num.Print(p.Obase), newline)
}

func emit(p *program.Program, s string, newline bool) {
	p.Write(s)
	if newline {
		p.Write("\n")
	}
}

// printLimits prints Program.Limits in bc's documented "limits" format
// (SPEC_FULL.md §12's supplemented BC_BASE_MAX/BC_SCALE_MAX/
// BC_STRING_MAX/BC_NAME_MAX/BC_DIM_MAX surface), through the same
// column-wrapped writer every other print goes through.
func printLimits(p *program.Program) {
	p.Write(fmt.Sprintf("BC_BASE_MAX     = %d\n", p.Limits.BaseMax))
	p.Write(fmt.Sprintf("BC_DIM_MAX      = %d\n", p.Limits.ArrayMax))
	p.Write(fmt.Sprintf("BC_SCALE_MAX    = %d\n", p.Limits.ScaleMax))
	p.Write(fmt.Sprintf("BC_STRING_MAX   = %d\n", p.Limits.StringMax))
	p.Write(fmt.Sprintf("BC_NAME_MAX     = %d\n", p.Limits.NameMax))
	p.Write(fmt.Sprintf("Exec depth      = %d\n", p.Limits.ExecDepth))
}
