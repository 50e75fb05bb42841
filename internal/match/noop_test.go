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

package match_test

import (
	"go/ast"
	"go/types"
	"testing"

	"golang.org/x/tools/go/ast/edge"

	. "fillmore-labs.com/asyncguard/internal/match"
	"fillmore-labs.com/asyncguard/internal/testsource"
)

func TestContextNoOp(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name   string
		arg    string
		want   NoOpKind
		wantOK bool
	}{
		{"Background", "context.Background()", ExplicitNoneAccessor, true},
		{"TODO", "context.TODO()", ExplicitNoneAccessor, true},
		{"nil", "nil", DefaultValueExpression, true},
		{"parenthesized nil", "(nil)", DefaultValueExpression, true},
		{"conversion", "context.Context(nil)", DefaultValueExpression, true},
		{"variable", "ctx", 0, false},
		{"derived", "context.WithoutCancel(ctx)", 0, false},
		{"other function", "background()", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := `package test

import "context"

func background() context.Context { return nil }

func use(context.Context) {}

func _(ctx context.Context) {
	use(` + tt.arg + `)
}
`
			s := testsource.Load(t, src)

			call := s.Call(t, "use", 0)
			arg := call.ChildAt(edge.CallExpr_Args, 0).Node().(ast.Expr)

			sig := ParamType(s.Info.TypeOf(call.Node().(*ast.CallExpr).Fun).(*types.Signature), 0, false)

			got, ok := ContextNoOp(s.Info, arg, sig)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ContextNoOp(%s) = %v, %t, want %v, %t", tt.arg, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestNoOpKindString(t *testing.T) {
	t.Parallel()

	if got, want := ExplicitNoneAccessor.String(), "explicit empty context"; got != want {
		t.Errorf("ExplicitNoneAccessor = %q, want %q", got, want)
	}

	if got, want := DefaultValueExpression.String(), "nil context"; got != want {
		t.Errorf("DefaultValueExpression = %q, want %q", got, want)
	}
}
