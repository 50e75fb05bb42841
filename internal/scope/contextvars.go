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

package scope

import (
	"cmp"
	"go/token"
	"go/types"
	"slices"

	"fillmore-labs.com/asyncguard/internal/match"
)

// Candidate is a context variable visible at some position.
type Candidate struct {
	Var   *types.Var
	Param bool   // function parameter, otherwise a local variable
	Scope string // kind of the declaring scope
}

// ContextVars returns the local variables and parameters of type context.Context visible at pos.
//
// Candidates are ordered nearest first: inner scopes before outer scopes and, within one scope,
// later declarations before earlier ones, so locals precede the parameters of the same function.
// Shadowed variables, named results and the blank identifier are never returned.
func (s Index) ContextVars(pkg *types.Package, pos token.Pos) []Candidate {
	var (
		candidates []Candidate
		innermost  *types.Scope
		seen       = make(map[string]struct{})
	)

	for scope := range s.Local(pkg, pos) {
		if innermost == nil {
			innermost = scope
		}

		var vars []*types.Var

		for _, name := range scope.Names() {
			if name == "_" {
				continue
			}

			if _, ok := seen[name]; ok {
				continue // shadowed by an inner declaration
			}

			v, ok := scope.Lookup(name).(*types.Var)
			if !ok || v.IsField() || !match.IsContext(v.Type()) || s.Result(scope, v) {
				continue
			}

			// The variable must be in scope at pos, which excludes declarations after pos
			// and variables declared by the statement containing pos.
			if _, obj := innermost.LookupParent(name, pos); obj != v {
				continue
			}

			seen[name] = struct{}{}
			vars = append(vars, v)
		}

		slices.SortFunc(vars, func(a, b *types.Var) int { return cmp.Compare(b.Pos(), a.Pos()) })

		for _, v := range vars {
			candidates = append(candidates, Candidate{Var: v, Param: s.Param(scope, v), Scope: Name(s[scope])})
		}
	}

	return candidates
}
