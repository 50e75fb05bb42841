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
	"go/ast"
	"go/token"
	"go/types"
	"iter"
)

// Index maps scopes to their corresponding AST nodes.
type Index map[*types.Scope]ast.Node

// NewIndex creates a scope index from the type checker's scope map.
func NewIndex(info *types.Info) Index {
	s := make(Index, len(info.Scopes))
	for node, scope := range info.Scopes {
		s[scope] = node
	}

	return s
}

// Local yields the local scopes enclosing pos, innermost first.
// Package, file and universe scopes are not local and end the sequence.
func (s Index) Local(pkg *types.Package, pos token.Pos) iter.Seq[*types.Scope] {
	return func(yield func(*types.Scope) bool) {
		if pkg == nil {
			return
		}

		for scope := pkg.Scope().Innermost(pos); scope != nil; scope = scope.Parent() {
			switch s[scope].(type) {
			case *ast.File, nil:
				return
			}

			if !yield(scope) {
				return
			}
		}
	}
}

// Param reports whether v is a parameter (or receiver) of the function owning scope.
func (s Index) Param(scope *types.Scope, v *types.Var) bool {
	ft, ok := s[scope].(*ast.FuncType)
	if !ok {
		return false
	}

	if ft.Results != nil && v.Pos() >= ft.Results.Pos() {
		return false
	}

	return v.Pos() < ft.End() // receivers and parameters
}

// Result reports whether v is a named result of the function owning scope.
func (s Index) Result(scope *types.Scope, v *types.Var) bool {
	ft, ok := s[scope].(*ast.FuncType)
	if !ok || ft.Results == nil {
		return false
	}

	return ft.Results.Pos() <= v.Pos() && v.Pos() < ft.Results.End()
}
