// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	asyncguard "fillmore-labs.com/asyncguard/analyzer"
	"fillmore-labs.com/asyncguard/analyzer/level"
)

// Exit codes.
const (
	exitOK          = 0
	exitDiagnostics = 1
	exitError       = 2
)

// exitCode is returned by commands to exit with a specific code without an error message.
type exitCode int

func (e exitCode) Error() string {
	return fmt.Sprintf("exit code %d", int(e))
}

// run executes the asyncguard command line and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)

	var code exitCode

	switch {
	case err == nil:
		return exitOK

	case errors.As(err, &code):
		return int(code)

	default:
		_, _ = fmt.Fprintf(stderr, "asyncguard: %v\n", err)

		return exitError
	}
}

// options are the command line options.
type options struct {
	dir        string
	config     string
	fix        bool
	diff       bool
	tests      bool
	verbose    bool
	color      string
	sleep      bool
	asyncSleep level.AsyncSleep
	propagate  bool
	generated  bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var o options

	cmd := &cobra.Command{
		Use:   "asyncguard [flags] [packages]",
		Short: "Report blocking sleeps and dropped contexts in asynchronous code",
		Long: `asyncguard reports time.Sleep calls in goroutines and context-aware functions
and empty contexts passed while a context is in scope. With --fix, the suggested
fixes are applied to the source files.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"."}
			}

			return o.check(cmd, args)
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.StringVarP(&o.dir, "dir", "C", "", "change to `dir` before loading packages")
	flags.StringVar(&o.config, "config", "", "configuration `file` (default .asyncguard.yaml, if present)")
	flags.BoolVar(&o.fix, "fix", false, "apply suggested fixes")
	flags.BoolVar(&o.diff, "diff", false, "print suggested fixes as unified diff instead of applying them; exits 1 while findings remain")
	flags.BoolVar(&o.tests, "tests", false, "also check test files")
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "log debug information")
	flags.StringVar(&o.color, "color", "auto", "colorize output: auto, on or off")
	flags.BoolVar(&o.sleep, "sleep", false, "report every time.Sleep call")
	flags.TextVar(&o.asyncSleep, "async-sleep", level.AsyncSleepNearest, "check time.Sleep in asynchronous functions: nearest, transitive or off")
	flags.BoolVar(&o.propagate, "propagate-context", true, "report empty contexts passed while a context is in scope")
	flags.BoolVar(&o.generated, "generated", false, "check generated files")

	cmd.MarkFlagsMutuallyExclusive("fix", "diff")

	return cmd
}

// logger creates the diagnostic logger.
func (o *options) logger(w io.Writer) *slog.Logger {
	lvl := slog.LevelInfo
	if o.verbose {
		lvl = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// analyzerOptions merges the configuration file with explicitly set flags.
func (o *options) analyzerOptions(cmd *cobra.Command) ([]asyncguard.Option, error) {
	path, required := o.config, true
	if path == "" {
		path, required = filepath.Join(o.dir, defaultConfig), false
	}

	settings, err := loadSettings(path, required)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()

	if flags.Changed("sleep") {
		settings.Sleep = &o.sleep
	}

	if flags.Changed("async-sleep") {
		settings.AsyncSleep = &o.asyncSleep
	}

	if flags.Changed("propagate-context") {
		settings.PropagateContext = &o.propagate
	}

	if flags.Changed("generated") {
		settings.Generated = &o.generated
	}

	return settings.Options(), nil
}
