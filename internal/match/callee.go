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

// CalleeIdent unwraps the function expression of a call down to the identifier naming the callee.
// It returns nil for calls through function values that are not named, e.g. "fns[0]()".
func CalleeIdent(call *ast.CallExpr) *ast.Ident {
	ex := call.Fun

unwrap:
	switch e := ex.(type) {
	case *ast.Ident:
		return e

	case *ast.SelectorExpr:
		return e.Sel

	case *ast.IndexExpr: // Generic function instantiation with a type parameter ("myFunc[T]").
		ex = e.X
		goto unwrap

	case *ast.IndexListExpr: // Generic function instantiation with multiple type parameters ("myFunc[T, U]").
		ex = e.X
		goto unwrap

	case *ast.ParenExpr: // Parenthesized expression ("(myFunc)")
		ex = e.X
		goto unwrap

	default:
		return nil
	}
}

// Callee returns the statically resolved function or method called by call.
// It returns nil when the callee can't be resolved, e.g. in incomplete code or for dynamic calls.
func Callee(info *types.Info, call *ast.CallExpr) *types.Func {
	id := CalleeIdent(call)
	if id == nil {
		return nil
	}

	fun, _ := info.Uses[id].(*types.Func)

	return fun
}
