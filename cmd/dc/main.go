// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command dc is a stack-based reverse-Polish calculator in the POSIX dc
// tradition (spec.md §6). It shares clirun's driver with cmd/bc, feeding
// dc's raw-byte compiler instead of bc's lexer-based one.
package main

import (
	"fmt"
	"os"

	"github.com/antheory/bcgo/internal/clirun"
	"github.com/antheory/bcgo/parse"
	"github.com/antheory/bcgo/program"
	"github.com/spf13/cobra"
)

func compileDC(file string, src []byte, cfg *program.Config) (*program.Function, map[string]*program.Function, error) {
	res, err := parse.CompileDC(file, src, cfg)
	if err != nil {
		return nil, nil, err
	}
	return res.Main, res.Functions, nil
}

func main() {
	var opts clirun.Options

	root := &cobra.Command{
		Use:   "dc [file...]",
		Short: "a reverse-Polish desk calculator",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Files = append(opts.Files, args...)
			opts.ApplyEnv(os.LookupEnv)

			d, code := clirun.NewDriver(clirun.DC, compileDC, opts, os.Stdout, os.Stderr)
			if code != clirun.ExitSuccess {
				os.Exit(code)
			}

			for _, e := range opts.Exprs {
				if code := d.RunChunk("<expr>", []byte(e)); code != clirun.ExitSuccess {
					os.Exit(code)
				}
			}

			if code := clirun.OpenFiles(opts.Files, d.RunScript); code != clirun.ExitSuccess {
				os.Exit(code)
			}

			if len(opts.Exprs) == 0 && len(opts.Files) == 0 {
				os.Exit(d.RunInteractive(os.Stdin, ""))
			}
			return nil
		},
	}

	root.Flags().StringArrayVarP(&opts.Exprs, "expression", "e", nil, "evaluate EXPR before any file (repeatable)")
	root.Flags().StringArrayVarP(&opts.Files, "file", "f", nil, "run FILE after any -e expressions (repeatable)")
	root.Flags().BoolVarP(&opts.ExtRegs, "extended-register", "x", false, "accepted for compatibility; has no effect")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(clirun.ExitFatal)
	}
}
