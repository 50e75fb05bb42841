// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

package run

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"runtime/trace"
	"slices"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/asyncguard/internal/astutil"
	"fillmore-labs.com/asyncguard/internal/config"
	"fillmore-labs.com/asyncguard/internal/report"
	"fillmore-labs.com/asyncguard/internal/rule"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// Run executes the asyncguard analyzer's pipeline.
func (o *Options) Run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("asyncguard: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	rules, err := rule.New(o.Rules, o.Behavior)
	if err != nil {
		return nil, fmt.Errorf("asyncguard: %w", err)
	}

	if len(rules) == 0 {
		return nil, nil
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "AsyncGuard")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	pass := rule.NewPass(p.Pkg, p.TypesInfo)

	// Generated status is cached for this pass only
	generated := astutil.NewGeneratedCache(o.Behavior.Enabled(config.IncludeGenerated))

	// Loop over all files
	for f := range in.Root().Children() {
		file := f.Node().(*ast.File)

		currentFile := astutil.NewCurrentFile(p.Fset, file, generated)
		if !currentFile.Valid() {
			astutil.InternalError(p, file.Pos(), file.End(), "File %s without valid info", file.Name.Name)

			continue
		}

		// Skip generated files and files with nolint comment
		if currentFile.Generated() || currentFile.NoLint() {
			continue
		}

		diagnostics, err := Check(ctx, pass, rules, f)
		if err != nil {
			return nil, err
		}

		diagnostics = slices.DeleteFunc(diagnostics, inNoLintFunc(f))

		report.New(p, currentFile).Report(ctx, diagnostics)
	}

	return nil, nil
}

// inNoLintFunc returns a predicate for diagnostics inside functions with a nolint comment.
func inNoLintFunc(f inspector.Cursor) func(rule.Diagnostic) bool {
	var excluded []rule.Span

	for c := range f.Preorder((*ast.FuncDecl)(nil)) {
		if fun := c.Node().(*ast.FuncDecl); astutil.FuncNoLint(fun) {
			excluded = append(excluded, rule.SpanOf(fun))
		}
	}

	return func(d rule.Diagnostic) bool {
		return slices.ContainsFunc(excluded, func(s rule.Span) bool { return s.Pos <= d.Pos && d.End <= s.End })
	}
}
