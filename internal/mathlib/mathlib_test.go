// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathlib

import (
	"bytes"
	"strings"
	"testing"

	"github.com/antheory/bcgo/parse"
	"github.com/antheory/bcgo/program"
	"github.com/antheory/bcgo/vm"
)

func run(t *testing.T, src string) string {
	t.Helper()
	cfg := program.NewConfig()
	res, err := parse.CompileBC("mathlib.bc", []byte(Source+src), cfg)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	p := program.New(cfg)
	var buf bytes.Buffer
	p.Out = &buf
	for name, fn := range res.Functions {
		p.Functions[name] = fn
	}
	if err := vm.Run(p, res.Main); err != nil {
		t.Fatalf("run: %v", err)
	}
	return strings.TrimSpace(buf.String())
}

func TestSourceCompiles(t *testing.T) {
	run(t, "0\n")
}

func TestSineOfZero(t *testing.T) {
	if got := run(t, "s(0)\n"); got != "0" {
		t.Errorf("s(0) = %q, want 0", got)
	}
}

func TestExpOfZero(t *testing.T) {
	if got := run(t, "e(0)\n"); got != "1.00000000000000000000" {
		t.Errorf("e(0) = %q, want 1.00000000000000000000", got)
	}
}

func TestArctanOfOne(t *testing.T) {
	got := run(t, "scale = 5; a(1)\n")
	if !strings.HasPrefix(got, ".7853") {
		t.Errorf("a(1) = %q, want prefix .7853 (pi/4)", got)
	}
}

func TestBesselZeroAtZero(t *testing.T) {
	if got := run(t, "j(0, 0)\n"); got != "1.00000000000000000000" {
		t.Errorf("j(0,0) = %q, want 1.00000000000000000000", got)
	}
}
