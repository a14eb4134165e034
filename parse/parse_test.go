// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

import (
	"testing"

	"github.com/antheory/bcgo/program"
)

func TestCompileBCSimpleExpression(t *testing.T) {
	res, err := CompileBC("t.bc", []byte("1+2\n"), program.NewConfig())
	if err != nil {
		t.Fatalf("CompileBC: %v", err)
	}
	if len(res.Main.Code) == 0 {
		t.Fatalf("expected non-empty bytecode")
	}
}

func TestCompileBCSyntaxError(t *testing.T) {
	_, err := CompileBC("t.bc", []byte("1 + + 2\n"), program.NewConfig())
	if err == nil {
		t.Fatalf("expected a syntax error")
	}
}

func TestCompileBCDefineRegistersFunction(t *testing.T) {
	res, err := CompileBC("t.bc", []byte("define f(x) { return (x+1) }\nf(1)\n"), program.NewConfig())
	if err != nil {
		t.Fatalf("CompileBC: %v", err)
	}
	if _, ok := res.Functions["f"]; !ok {
		t.Fatalf("expected function %q to be registered", "f")
	}
}

func TestCompileBCForwardFunctionReference(t *testing.T) {
	src := "define a(n) { return (b(n)) }\ndefine b(n) { return (n*2) }\na(3)\n"
	res, err := CompileBC("t.bc", []byte(src), program.NewConfig())
	if err != nil {
		t.Fatalf("CompileBC with forward reference: %v", err)
	}
	if _, ok := res.Functions["a"]; !ok {
		t.Fatalf("expected function %q to be registered", "a")
	}
	if _, ok := res.Functions["b"]; !ok {
		t.Fatalf("expected function %q to be registered", "b")
	}
}

func TestCompileBCArrayParamDistinguishedFromScalar(t *testing.T) {
	src := "define void f(a[], n) { a[0] = n }\nx[0] = 1\nf(x[], 2)\n"
	if _, err := CompileBC("t.bc", []byte(src), program.NewConfig()); err != nil {
		t.Fatalf("CompileBC with array param: %v", err)
	}
}

func TestCompileDCSimpleProgram(t *testing.T) {
	res, err := CompileDC("t.dc", []byte("3 4 + p"), program.NewConfig())
	if err != nil {
		t.Fatalf("CompileDC: %v", err)
	}
	if len(res.Main.Code) == 0 {
		t.Fatalf("expected non-empty bytecode")
	}
}

func TestCompileDCUnterminatedString(t *testing.T) {
	_, err := CompileDC("t.dc", []byte("[abc"), program.NewConfig())
	if err == nil {
		t.Fatalf("expected an unterminated-string error")
	}
}

func TestCompileDCUnknownCommand(t *testing.T) {
	_, err := CompileDC("t.dc", []byte("3 4 @"), program.NewConfig())
	if err == nil {
		t.Fatalf("expected an unknown-command error")
	}
}

func TestCompileDCMacroStandalone(t *testing.T) {
	fn, err := CompileDCMacro("3 4 +")
	if err != nil {
		t.Fatalf("CompileDCMacro: %v", err)
	}
	if len(fn.Code) == 0 {
		t.Fatalf("expected non-empty macro bytecode")
	}
}

func TestEmitJumpPatchRoundTrip(t *testing.T) {
	e := newEmitter("main")
	at := e.jump(program.OpJumpIfZero)
	e.op(program.OpNop)
	e.patch(at)
	if len(e.fn.Code) < 4 {
		t.Fatalf("expected at least opcode+2-byte placeholder+nop, got %d bytes", len(e.fn.Code))
	}
}
