// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clirun

import (
	"bytes"
	"testing"

	"github.com/antheory/bcgo/parse"
	"github.com/antheory/bcgo/program"
)

func compileBC(file string, src []byte, cfg *program.Config) (*program.Function, map[string]*program.Function, error) {
	res, err := parse.CompileBC(file, src, cfg)
	if err != nil {
		return nil, nil, err
	}
	return res.Main, res.Functions, nil
}

func newDriver(t *testing.T, o Options) (*Driver, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	d, code := NewDriver(BC, compileBC, o, &stdout, &stderr)
	if code != ExitSuccess {
		t.Fatalf("NewDriver: exit %d, stderr %q", code, stderr.String())
	}
	return d, &stdout, &stderr
}

func TestRunChunkSuccess(t *testing.T) {
	d, stdout, _ := newDriver(t, Options{})
	if code := d.RunChunk("t.bc", []byte("2+2\n")); code != ExitSuccess {
		t.Fatalf("RunChunk exit = %d, want success", code)
	}
	if got := stdout.String(); got != "4\n" {
		t.Errorf("stdout = %q, want \"4\\n\"", got)
	}
}

func TestRunChunkParseErrorExitCode(t *testing.T) {
	d, _, stderr := newDriver(t, Options{})
	if code := d.RunChunk("t.bc", []byte("1 + + 2\n")); code != ExitParse {
		t.Fatalf("RunChunk exit = %d, want ExitParse", code)
	}
	if stderr.Len() == 0 {
		t.Errorf("expected a diagnostic written to stderr")
	}
}

func TestRunChunkMathFaultExitCode(t *testing.T) {
	d, _, _ := newDriver(t, Options{})
	if code := d.RunChunk("t.bc", []byte("1/0\n")); code != ExitMath {
		t.Fatalf("RunChunk exit = %d, want ExitMath", code)
	}
}

func TestMathlibPreload(t *testing.T) {
	d, stdout, stderr := newDriver(t, Options{Mathlib: true})
	if code := d.RunChunk("t.bc", []byte("s(0)\n")); code != ExitSuccess {
		t.Fatalf("RunChunk exit = %d, stderr %q", code, stderr.String())
	}
	if got := stdout.String(); got != "0\n" {
		t.Errorf("s(0) output = %q, want \"0\\n\"", got)
	}
}

func TestParseEnvArgsSplitsOnWhitespace(t *testing.T) {
	got := ParseEnvArgs("-l  -w -f foo.bc")
	want := []string{"-l", "-w", "-f", "foo.bc"}
	if len(got) != len(want) {
		t.Fatalf("ParseEnvArgs = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ParseEnvArgs[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestApplyEnvAppliesPosixlyCorrect(t *testing.T) {
	var o Options
	env := map[string]string{"POSIXLY_CORRECT": "1"}
	o.ApplyEnv(func(k string) (string, bool) { v, ok := env[k]; return v, ok })
	if !o.Standard {
		t.Errorf("expected POSIXLY_CORRECT to force Standard mode")
	}
}

func TestWarnFlagConfiguresSink(t *testing.T) {
	d, _, stderr := newDriver(t, Options{Warn: true, Standard: false})
	// Checks only that the driver installs a warning sink when Warn is
	// set; no warning is provoked or read back here.
	if d.Prog.Config.Sink == nil {
		t.Fatalf("expected a non-nil warning sink when -w is set")
	}
	_ = stderr
}
