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

package rule

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/asyncguard/internal/match"
)

// PropagateContext reports empty contexts passed as a call argument while a context
// variable is in scope.
//
// Only direct arguments for a context.Context parameter are reported, possibly
// parenthesized; assignments and initializers are not. The visible alternative must
// itself be of type context.Context.
type PropagateContext struct{}

// ID implements [Rule].
func (PropagateContext) ID() ID { return PropagateContextID }

// NodeTypes implements [Rule].
func (PropagateContext) NodeTypes() []ast.Node {
	return []ast.Node{(*ast.CallExpr)(nil), (*ast.Ident)(nil)}
}

// Check implements [Rule].
func (PropagateContext) Check(p *Pass, c inspector.Cursor) (Diagnostic, bool) {
	expr, ok := c.Node().(ast.Expr)
	if !ok {
		return Diagnostic{}, false
	}

	if id, ok := expr.(*ast.Ident); ok && id.Name != "nil" {
		return Diagnostic{}, false
	}

	// argument → call, looking through parentheses
	arg := c
	for {
		if _, ok := arg.Parent().Node().(*ast.ParenExpr); !ok {
			break
		}

		arg = arg.Parent()
	}

	k, index := arg.ParentEdge()
	if k != edge.CallExpr_Args {
		return Diagnostic{}, false
	}

	call := arg.Parent().Node().(*ast.CallExpr)

	tv, ok := p.Info.Types[call.Fun]
	if !ok || tv.IsType() {
		return Diagnostic{}, false // unresolved or conversion
	}

	sig, ok := tv.Type.Underlying().(*types.Signature)
	if !ok {
		return Diagnostic{}, false // builtin
	}

	expected := match.ParamType(sig, index, call.Ellipsis.IsValid())
	if expected == nil || !match.IsContext(expected) {
		return Diagnostic{}, false
	}

	kind, ok := match.ContextNoOp(p.Info, expr, expected)
	if !ok {
		return Diagnostic{}, false
	}

	candidates := p.Scopes.ContextVars(p.Pkg, expr.Pos())
	if len(candidates) == 0 {
		return Diagnostic{}, false
	}

	best := candidates[0].Var.Name()

	var related []Related
	for _, cand := range candidates {
		what := "variable"
		if cand.Param {
			what = "parameter"
		}

		related = append(related, Related{
			Pos:     cand.Var.Pos(),
			End:     cand.Var.Pos() + token.Pos(len(cand.Var.Name())),
			Message: fmt.Sprintf("Context %s '%s' in %s scope", what, cand.Var.Name(), cand.Scope),
		})
	}

	return Diagnostic{
		Rule:    PropagateContextID,
		Pos:     expr.Pos(),
		End:     expr.End(),
		Args:    []string{best, kind.String(), types.ExprString(call.Fun)},
		Related: related,
		Fix:     PropagateFix{Expr: SpanOf(arg.Node()), Name: best},
	}, true
}
