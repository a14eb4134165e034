// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vm

import (
	"bytes"
	"strings"
	"testing"

	"github.com/antheory/bcgo/parse"
	"github.com/antheory/bcgo/program"
)

func runBC(t *testing.T, src string) string {
	t.Helper()
	cfg := program.NewConfig()
	res, err := parse.CompileBC("t.bc", []byte(src), cfg)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	p := program.New(cfg)
	var buf bytes.Buffer
	p.Out = &buf
	for name, fn := range res.Functions {
		p.Functions[name] = fn
	}
	if err := Run(p, res.Main); err != nil {
		t.Fatalf("run: %v", err)
	}
	return buf.String()
}

func TestArithmeticExpression(t *testing.T) {
	out := runBC(t, "2+3*4\n")
	if strings.TrimSpace(out) != "14" {
		t.Errorf("2+3*4 = %q, want 14", out)
	}
}

func TestAssignmentIsSilent(t *testing.T) {
	out := runBC(t, "x=5\nx\n")
	if strings.TrimSpace(out) != "5" {
		t.Errorf("x=5; x printed %q, want just 5", out)
	}
}

func TestWhileLoop(t *testing.T) {
	out := runBC(t, "i=0\nwhile (i<5) {\n  i\n  i=i+1\n}\n")
	if strings.TrimSpace(out) != "0\n1\n2\n3\n4" {
		t.Errorf("while loop output = %q", out)
	}
}

func TestForLoop(t *testing.T) {
	out := runBC(t, "for (i=0; i<3; i++) i\n")
	if strings.TrimSpace(out) != "0\n1\n2" {
		t.Errorf("for loop output = %q", out)
	}
}

func TestIfElse(t *testing.T) {
	out := runBC(t, "x=1\nif (x==1) { \"yes\" } else { \"no\" }\n")
	if strings.TrimSpace(out) != "yes" {
		t.Errorf("if/else output = %q", out)
	}
}

func TestFunctionCallAndRecursion(t *testing.T) {
	out := runBC(t, "define fact(n) {\n  if (n <= 1) return (1)\n  return (n * fact(n-1))\n}\nfact(5)\n")
	if strings.TrimSpace(out) != "120" {
		t.Errorf("fact(5) = %q, want 120", out)
	}
}

func TestArrayParamIsCopiedNotAliased(t *testing.T) {
	out := runBC(t, "define void fill(a[]) {\n  a[0] = 42\n}\nv[0] = 1\nfill(v[])\nv[0]\n")
	if strings.TrimSpace(out) != "1" {
		t.Errorf("array-by-value output = %q, want 1 (caller's array must be untouched)", out)
	}
}

func TestTernaryOperator(t *testing.T) {
	out := runBC(t, "x=1\nx==1 ? 10 : 20\n")
	if strings.TrimSpace(out) != "10" {
		t.Errorf("ternary true branch = %q, want 10", out)
	}
	out = runBC(t, "x=0\nx==1 ? 10 : 20\n")
	if strings.TrimSpace(out) != "20" {
		t.Errorf("ternary false branch = %q, want 20", out)
	}
}

func TestTernaryIsRightAssociative(t *testing.T) {
	out := runBC(t, "0 ? 1 : 0 ? 2 : 3\n")
	if strings.TrimSpace(out) != "3" {
		t.Errorf("chained ternary = %q, want 3", out)
	}
}

func TestTernarySkipsUntakenBranch(t *testing.T) {
	out := runBC(t, "1 ? 5 : 1/0\n")
	if strings.TrimSpace(out) != "5" {
		t.Errorf("ternary skipped-branch output = %q, want 5 (untaken branch must not execute)", out)
	}
}

func TestBreakContinue(t *testing.T) {
	out := runBC(t, "for (i=0; i<5; i++) {\n  if (i==2) continue\n  if (i==4) break\n  i\n}\n")
	if strings.TrimSpace(out) != "0\n1\n3" {
		t.Errorf("break/continue output = %q", out)
	}
}

func TestScaleAffectsDivision(t *testing.T) {
	out := runBC(t, "scale=4\n10/3\n")
	if strings.TrimSpace(out) != "3.3333" {
		t.Errorf("10/3 at scale 4 = %q, want 3.3333", out)
	}
}

func runDC(t *testing.T, src string) string {
	t.Helper()
	cfg := program.NewConfig()
	res, err := parse.CompileDC("t.dc", []byte(src), cfg)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	p := program.New(cfg)
	var buf bytes.Buffer
	p.Out = &buf
	if err := Run(p, res.Main); err != nil {
		t.Fatalf("run: %v", err)
	}
	return buf.String()
}

func TestDCBasicArithmetic(t *testing.T) {
	out := runDC(t, "3 4 + p")
	if strings.TrimSpace(out) != "7" {
		t.Errorf("3 4 + p = %q, want 7", out)
	}
}

func TestDCRegisters(t *testing.T) {
	out := runDC(t, "5 sa la la + p")
	if strings.TrimSpace(out) != "10" {
		t.Errorf("register round trip = %q, want 10", out)
	}
}

func TestDCMacroExec(t *testing.T) {
	out := runDC(t, "[3 4 +]sa la x p")
	if strings.TrimSpace(out) != "7" {
		t.Errorf("macro exec = %q, want 7", out)
	}
}

func TestDCConditionalExec(t *testing.T) {
	out := runDC(t, "[99 p]sa 4 3 >a")
	if strings.TrimSpace(out) != "99" {
		t.Errorf("conditional exec (4>3) = %q, want 99", out)
	}
}
