// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package program

import (
	"testing"

	"github.com/antheory/bcgo/decimal"
)

func TestArrayZeroFill(t *testing.T) {
	var a Array
	a.Set(5, decimal.NewFromInt64(7))
	if got := a.At(0); !got.IsZero() {
		t.Errorf("At(0) = %s, want 0", got)
	}
	if got := a.At(5); decimal.Cmp(got, decimal.NewFromInt64(7)) != 0 {
		t.Errorf("At(5) = %s, want 7", got)
	}
	if a.Len() != 6 {
		t.Errorf("Len() = %d, want 6", a.Len())
	}
}

func TestProgramStack(t *testing.T) {
	p := New(nil)
	p.Push(Num(decimal.NewFromInt64(1)))
	p.Push(Num(decimal.NewFromInt64(2)))
	top, ok := p.Pop()
	if !ok || decimal.Cmp(top.Num, decimal.NewFromInt64(2)) != 0 {
		t.Fatalf("Pop() = %v, %v", top, ok)
	}
	if _, ok := p.Pop(); !ok {
		t.Fatalf("expected one value left")
	}
	if _, ok := p.Pop(); ok {
		t.Fatalf("expected stack empty")
	}
}

func TestProgramDefaults(t *testing.T) {
	p := New(nil)
	if p.Ibase != 10 || p.Obase != 10 || p.Scale != 0 {
		t.Errorf("defaults = %d %d %d, want 10 10 0", p.Ibase, p.Obase, p.Scale)
	}
}
