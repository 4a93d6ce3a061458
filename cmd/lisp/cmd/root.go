// Copyright 2026 The Little Lisp Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cmd wires the interpreter core into a command-line driver, the
// thin external collaborator spec.md §6 describes: a prompt, a result
// printer, and the argument-count rules that pick interactive vs.
// file-then-fallback vs. forced-print mode. Grounded on
// cmd/cue/cmd/root.go's "one cobra.Command, RunE does the work" shape,
// scaled down to this tool's single subcommand.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/mitchellh/go-wordwrap"
	"github.com/spf13/cobra"

	"littlelisp.dev/go/errors"
	"littlelisp.dev/go/interp"
)

const longHelp = `lisp reads and evaluates forms from a file or from standard input.

With no arguments it runs interactively, printing a "> " prompt before
each form and the value of every result.

With one filename argument it reads that file first, silently, then
falls back to the interactive prompt once the file is exhausted.

Pass --print alongside a filename to print results while reading the
file too, instead of only once interactive input begins.`

// New builds the root command. Grounded on cmd/cue/cmd/root.go's pattern of
// a single exported constructor a main package calls directly.
func New() *cobra.Command {
	root := &cobra.Command{
		Use:   "lisp [file]",
		Short: "a small Lisp-family interpreter",
		Long:  wordwrap.WrapString(longHelp, 76),
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return fmt.Errorf("too many arguments")
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRoot,
	}
	root.Flags().BoolP("print", "p", false, "force result printing even while reading from a file")
	return root
}

// Main runs the interpreter's command-line driver and returns the code for
// passing to os.Exit. Grounded on cmd/cue/cmd/root.go's Main, and reused
// directly as the testscript "lisp" command in script_test.go.
func Main() int {
	if err := New().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func runRoot(cmd *cobra.Command, args []string) error {
	forcePrint, err := cmd.Flags().GetBool("print")
	if err != nil {
		return err
	}

	errOut := cmd.ErrOrStderr()
	counter := &errors.Counter{W: errOut}
	ip := interp.New(counter.Handle)

	// Standard input is always the base source, even in file mode: once a
	// file argument drains, the scanner pops back to it so the driver can
	// fall back to interactive use (spec.md §6).
	ip.Include("<stdin>", cmd.InOrStdin())

	interactive := len(args) == 0
	if !interactive {
		if err := ip.IncludeFile(args[0]); err != nil {
			return err
		}
	}

	printRes := interactive || forcePrint
	return drive(ip, cmd.OutOrStdout(), printRes)
}

// drive runs the read-eval-print loop, grounded on the original's
// Driver::start (timing.cpp): prompt, read one form, evaluate it, print it
// if enabled, then fall back to the interactive prompt once the file
// source is exhausted and the scanner is back at its base (originally
// standard-input) source.
func drive(ip *interp.Interp, out io.Writer, printRes bool) error {
	for {
		if printRes {
			fmt.Fprint(out, "> ")
		}

		result, atEOF, err := ip.RunForm()
		switch {
		case err != nil:
			fmt.Fprintf(out, "Bad expression: %s\n", err)
		case printRes:
			fmt.Fprintln(out, result.String())
		}

		atBase := ip.ResetIfExhausted(atEOF)
		if !atEOF {
			continue
		}
		if !atBase {
			// Popped back to a suspended include source; keep reading it
			// silently at whatever print mode it had.
			continue
		}
		if ip.Scanner.AtEOF() {
			// The base source itself (a file, or stdin already closed) has
			// nothing left to give: stop rather than spin forever.
			return nil
		}
		// A file argument is exhausted but the base source (stdin) still
		// has input available: fall back to interactive mode.
		printRes = true
	}
}
