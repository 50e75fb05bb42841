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

package run

import (
	"cmp"
	"context"
	"runtime/trace"
	"slices"

	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/asyncguard/internal/rule"
)

// Check runs rules over the syntax tree below root and returns their diagnostics ordered by position.
//
// Each rule walks the node types it requests on its own goroutine and collects into its own slice.
// The pass and the syntax tree are only read.
func Check(ctx context.Context, pass *rule.Pass, rules []rule.Rule, root inspector.Cursor) ([]rule.Diagnostic, error) {
	defer trace.StartRegion(ctx, "Check").End()

	results := make([][]rule.Diagnostic, len(rules))

	g, ctx := errgroup.WithContext(ctx)

	for i, r := range rules {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			trace.WithRegion(ctx, string(r.ID()), func() {
				for c := range root.Preorder(r.NodeTypes()...) {
					if d, ok := r.Check(pass, c); ok {
						results[i] = append(results[i], d)
					}
				}
			})

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	diagnostics := slices.Concat(results...)

	slices.SortStableFunc(diagnostics, func(a, b rule.Diagnostic) int {
		return cmp.Or(
			cmp.Compare(a.Pos, b.Pos),
			cmp.Compare(a.End, b.End),
			cmp.Compare(a.Rule, b.Rule),
		)
	})

	return diagnostics, nil
}
