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

package match

import (
	"go/ast"
	"go/types"
)

//go:generate go tool stringer -type NoOpKind -linecomment

// NoOpKind classifies an empty context value.
type NoOpKind uint8

const (
	// ExplicitNoneAccessor is a call to context.Background or context.TODO.
	ExplicitNoneAccessor NoOpKind = iota + 1 // explicit empty context

	// DefaultValueExpression is a nil context.
	DefaultValueExpression // nil context
)

var noOpAccessors = map[FuncName]struct{}{
	{Path: contextPath, Name: "Background"}: {},
	{Path: contextPath, Name: "TODO"}:       {},
}

// ContextNoOp determines whether expr is a context value that never gets canceled.
//
// expected is the type expr is assigned to and is only needed to classify an untyped nil.
func ContextNoOp(info *types.Info, expr ast.Expr, expected types.Type) (NoOpKind, bool) {
	expr = ast.Unparen(expr)

	switch e := expr.(type) {
	case *ast.CallExpr:
		// Conversion: context.Context(nil)
		if tv, ok := info.Types[e.Fun]; ok && tv.IsType() {
			if len(e.Args) == 1 && IsContext(tv.Type) && isNil(info, e.Args[0]) {
				return DefaultValueExpression, true
			}

			return 0, false
		}

		fun := Callee(info, e)
		if fun == nil {
			return 0, false
		}

		if _, ok := noOpAccessors[FuncNameOf(fun)]; ok {
			return ExplicitNoneAccessor, true
		}

	case *ast.Ident:
		if !isNil(info, e) {
			return 0, false
		}

		if tv, ok := info.Types[e]; ok && IsContext(tv.Type) {
			return DefaultValueExpression, true
		}

		if expected != nil && IsContext(expected) {
			return DefaultValueExpression, true
		}
	}

	return 0, false
}

func isNil(info *types.Info, expr ast.Expr) bool {
	id, ok := ast.Unparen(expr).(*ast.Ident)
	if !ok {
		return false
	}

	_, ok = info.Uses[id].(*types.Nil)

	return ok
}
