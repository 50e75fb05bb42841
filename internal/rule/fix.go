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
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/ast/inspector"
)

// Fix is the data needed to generate a fix for a [Diagnostic].
type Fix interface {
	fix()
}

// DelayFix replaces a blocking sleep call with a receive from a timer channel.
type DelayFix struct {
	Call      Span   // the whole call expression
	Args      Span   // the argument list, including parentheses
	Qualifier string // package qualifier including the dot, empty for dot-imports
}

// PropagateFix replaces an empty context argument with a context variable.
type PropagateFix struct {
	Expr Span   // the argument expression
	Name string // identifier of the replacement context
}

func (DelayFix) fix()     {}
func (PropagateFix) fix() {}

// Span is a range of source positions.
type Span struct {
	Pos, End token.Pos
}

// SpanOf returns the [Span] of a node.
func SpanOf(n ast.Node) Span {
	return Span{Pos: n.Pos(), End: n.End()}
}

// delayFix returns a [DelayFix] for a blocking sleep call, or nil when the call can't be rewritten.
//
// The call must be an expression statement, since "go" and "defer" require a call.
func delayFix(p *Pass, c inspector.Cursor, call *ast.CallExpr) Fix {
	if _, ok := c.Parent().Node().(*ast.ExprStmt); !ok {
		return nil
	}

	if call.Ellipsis.IsValid() {
		return nil
	}

	qualifier, ok := delayQualifier(p, call)
	if !ok {
		return nil
	}

	return DelayFix{
		Call:      SpanOf(call),
		Args:      Span{Pos: call.Lparen, End: call.Rparen + 1},
		Qualifier: qualifier,
	}
}

// delayQualifier determines how the time package is referenced at the call site.
func delayQualifier(p *Pass, call *ast.CallExpr) (string, bool) {
	switch fun := ast.Unparen(call.Fun).(type) {
	case *ast.SelectorExpr: // time.Sleep, t.Sleep
		x, ok := fun.X.(*ast.Ident)
		if !ok {
			return "", false
		}

		if _, ok := p.Info.Uses[x].(*types.PkgName); !ok {
			return "", false
		}

		return x.Name + ".", true

	case *ast.Ident: // dot-import: Sleep
		if p.Pkg == nil {
			return "", false
		}

		scope := p.Pkg.Scope().Innermost(fun.Pos())
		if scope == nil {
			return "", false
		}

		// After must resolve to the time package at the call site.
		_, obj := scope.LookupParent(delayName, fun.Pos())
		if f, ok := obj.(*types.Func); !ok || f.Pkg() == nil || f.Pkg().Path() != "time" {
			return "", false
		}

		return "", true

	default:
		return "", false
	}
}

// delayName is the name of the non-blocking delay function.
const delayName = "After"

// DelayText returns the replacement call text for arguments args, e.g. "<-time.After(d)".
func (f DelayFix) DelayText(args string) string {
	return "<-" + f.Qualifier + delayName + args
}
