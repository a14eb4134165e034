// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command bc is an arbitrary-precision calculator in the POSIX bc
// tradition, compiling bc source into bytecode and running it on the
// shared vm.Run interpreter (spec.md §6). Flag handling here mirrors
// the teacher's ivy.go driving a single shared config.Config across
// every file argument (robpike-ivy/ivy.go), generalized to cobra/pflag
// for the richer flag set bc's invocation needs.
package main

import (
	"fmt"
	"os"

	"github.com/antheory/bcgo/internal/clirun"
	"github.com/antheory/bcgo/parse"
	"github.com/antheory/bcgo/program"
	"github.com/spf13/cobra"
)

const version = "bc (bcgo) 1.0"

func compileBC(file string, src []byte, cfg *program.Config) (*program.Function, map[string]*program.Function, error) {
	res, err := parse.CompileBC(file, src, cfg)
	if err != nil {
		return nil, nil, err
	}
	return res.Main, res.Functions, nil
}

func main() {
	var opts clirun.Options
	var showVersion bool

	root := &cobra.Command{
		Use:   "bc [file...]",
		Short: "an arbitrary-precision calculator language",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Files = append(opts.Files, args...)
			opts.ApplyEnv(os.LookupEnv)

			if showVersion {
				fmt.Fprintln(os.Stdout, version)
				return nil
			}

			d, code := clirun.NewDriver(clirun.BC, compileBC, opts, os.Stdout, os.Stderr)
			if code != clirun.ExitSuccess {
				os.Exit(code)
			}

			repl := opts.Interactive || (len(opts.Exprs) == 0 && len(opts.Files) == 0)
			if !opts.Quiet && repl {
				fmt.Fprintln(os.Stdout, version)
			}

			for _, e := range opts.Exprs {
				if code := d.RunChunk("<expr>", []byte(e+"\n")); code != clirun.ExitSuccess {
					os.Exit(code)
				}
			}

			if code := clirun.OpenFiles(opts.Files, d.RunScript); code != clirun.ExitSuccess {
				os.Exit(code)
			}

			if repl {
				os.Exit(d.RunInteractive(os.Stdin, ""))
			}
			return nil
		},
	}

	root.Flags().BoolVarP(&opts.Interactive, "interactive", "i", false, "force interactive mode")
	root.Flags().BoolVarP(&opts.Mathlib, "mathlib", "l", false, "preload the standard math library")
	root.Flags().BoolVarP(&opts.Warn, "warn", "w", false, "warn about POSIX extensions")
	root.Flags().BoolVarP(&opts.Standard, "standard", "s", false, "strict POSIX mode, reject extensions")
	root.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "suppress the startup banner")
	root.Flags().BoolVarP(&showVersion, "version", "v", false, "print version and exit")
	root.Flags().StringArrayVarP(&opts.Exprs, "expression", "e", nil, "evaluate EXPR before any file (repeatable)")
	root.Flags().StringArrayVarP(&opts.Files, "file", "f", nil, "run FILE after any -e expressions (repeatable)")
	root.Flags().IntVar(&opts.LineLength, "line-length", 70, "output line width, 0 disables wrapping")

	if v, ok := os.LookupEnv("BC_ENV_ARGS"); ok {
		env := clirun.ParseEnvArgs(v)
		root.SetArgs(append(env, os.Args[1:]...))
	}

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(clirun.ExitFatal)
	}
}
