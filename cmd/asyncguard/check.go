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
	"cmp"
	"errors"
	"fmt"
	"go/token"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/checker"
	"golang.org/x/tools/go/packages"

	asyncguard "fillmore-labs.com/asyncguard/analyzer"
)

// loadMode loads everything the analysis driver needs.
const loadMode = packages.NeedName | packages.NeedFiles | packages.NeedCompiledGoFiles |
	packages.NeedImports | packages.NeedDeps | packages.NeedTypes | packages.NeedTypesSizes |
	packages.NeedSyntax | packages.NeedTypesInfo | packages.NeedModule

// ErrLoad is returned when packages can not be loaded.
var ErrLoad = errors.New("package loading failed")

// finding is a diagnostic with its file set.
type finding struct {
	fset *token.FileSet
	diag analysis.Diagnostic
	posn token.Position
}

func (o *options) check(cmd *cobra.Command, patterns []string) error {
	ctx := cmd.Context()
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()
	logger := o.logger(stderr)

	p, err := newPrinter(stdout, o.color)
	if err != nil {
		return err
	}

	ep, err := newPrinter(stderr, o.color)
	if err != nil {
		return err
	}

	opts, err := o.analyzerOptions(cmd)
	if err != nil {
		return err
	}

	logger.Debug("Loading packages",
		slog.Any("patterns", patterns),
		slog.Bool("tests", o.tests),
		slog.Any("options", asyncguard.Options(opts)))

	cfg := &packages.Config{Context: ctx, Mode: loadMode, Dir: o.dir, Tests: o.tests}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLoad, err)
	}

	if n := printLoadErrors(ep, pkgs); n > 0 {
		return fmt.Errorf("%w: %d errors", ErrLoad, n)
	}

	graph, err := checker.Analyze([]*analysis.Analyzer{asyncguard.New(opts...)}, pkgs, &checker.Options{})
	if err != nil {
		return err
	}

	findings, err := collect(graph)
	if err != nil {
		return err
	}

	logger.Debug("Analysis done", slog.Int("packages", len(pkgs)), slog.Int("findings", len(findings)))

	found := len(findings)

	var failed int

	if o.fix || o.diff {
		res, err := o.applyFixes(ctx, p, ep, findings, logger)
		if err != nil {
			return err
		}

		findings, failed = res.remaining, res.failed
	}

	for _, f := range findings {
		p.finding(f)
	}

	switch {
	case failed > 0:
		return exitCode(exitError)

	case len(findings) > 0, o.diff && found > 0: // a diff leaves the source unchanged
		return exitCode(exitDiagnostics)

	default:
		return nil
	}
}

func printLoadErrors(p *printer, pkgs []*packages.Package) int {
	var n int

	packages.Visit(pkgs, nil, func(pkg *packages.Package) {
		for _, err := range pkg.Errors {
			p.loadError(err)
			n++
		}
	})

	return n
}

// collect gathers the diagnostics of all root actions, removing duplicates from test variants.
func collect(graph *checker.Graph) ([]finding, error) {
	type key struct {
		posn    token.Position
		message string
	}

	var (
		findings []finding
		errs     []error
	)

	seen := make(map[key]struct{})

	for _, act := range graph.Roots {
		if act.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", act.Package.PkgPath, act.Err))

			continue
		}

		fset := act.Package.Fset
		for _, d := range act.Diagnostics {
			posn := fset.Position(d.Pos)

			k := key{posn, d.Message}
			if _, ok := seen[k]; ok {
				continue
			}

			seen[k] = struct{}{}

			findings = append(findings, finding{fset: fset, diag: d, posn: posn})
		}
	}

	slices.SortFunc(findings, compareFindings)

	return findings, errors.Join(errs...)
}

// compareFindings orders findings by file and position.
func compareFindings(a, b finding) int {
	return cmp.Or(
		cmp.Compare(a.posn.Filename, b.posn.Filename),
		cmp.Compare(a.posn.Offset, b.posn.Offset),
		cmp.Compare(a.diag.Message, b.diag.Message),
	)
}
