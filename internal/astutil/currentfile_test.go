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

package astutil_test

import (
	"go/ast"
	"testing"

	. "fillmore-labs.com/asyncguard/internal/astutil"
	"fillmore-labs.com/asyncguard/internal/testsource"
)

func TestCommentHasNoLint(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		comment string
		want    bool
	}{
		{"//nolint:asyncguard", true},
		{"// nolint:asyncguard", true},
		{"//nolint:errcheck,asyncguard // reason", true},
		{"//nolint:AsyncGuard", true},
		{"//nolint:all", true},
		{"//nolint:errcheck", false},
		{"//nolint", false},
		{"// asyncguard", false},
	}

	for _, tt := range tests {
		if got := CommentHasNoLint(&ast.Comment{Text: tt.comment}); got != tt.want {
			t.Errorf("CommentHasNoLint(%q) = %t, want %t", tt.comment, got, tt.want)
		}
	}
}

const noLintSrc = `package test

import "time"

//nolint:asyncguard
func excluded() {
	time.Sleep(0)
}

func included() {
	time.Sleep(0) //nolint:asyncguard
	time.Sleep(1)
}
`

func TestCurrentFile(t *testing.T) {
	t.Parallel()

	s := testsource.Load(t, noLintSrc)

	file := NewCurrentFile(s.Fset, s.File, NewGeneratedCache(false))
	if !file.Valid() || file.Generated() || file.NoLint() {
		t.Fatalf("Valid, Generated, NoLint = %t, %t, %t", file.Valid(), file.Generated(), file.NoLint())
	}

	first := s.Call(t, "time.Sleep", 1)
	if !file.NoLintComment(first.Node().Pos()) {
		t.Error("Expected nolint comment on first line of included")
	}

	second := s.Call(t, "time.Sleep", 2)
	if file.NoLintComment(second.Node().Pos()) {
		t.Error("Expected no nolint comment on second line of included")
	}

	var funcs []bool
	for _, decl := range s.File.Decls {
		if fun, ok := decl.(*ast.FuncDecl); ok {
			funcs = append(funcs, FuncNoLint(fun))
		}
	}

	if len(funcs) != 2 || !funcs[0] || funcs[1] {
		t.Errorf("FuncNoLint = %v, want [true false]", funcs)
	}
}

func TestGeneratedCache(t *testing.T) {
	t.Parallel()

	s := testsource.Load(t, "// Code generated by test. DO NOT EDIT.\n\npackage test\n")

	if cache := NewGeneratedCache(true); cache.IsGenerated(s.File) {
		t.Error("Including generated files must treat files as not generated")
	}

	cache := NewGeneratedCache(false)
	if !cache.IsGenerated(s.File) || !cache.IsGenerated(s.File) {
		t.Error("Expected generated file")
	}

	if len(cache) != 1 {
		t.Errorf("Got %d cached files, want 1", len(cache))
	}

	if file := NewCurrentFile(s.Fset, s.File, cache); !file.Generated() {
		t.Error("Expected generated current file")
	}

	if file := NewCurrentFile(s.Fset, nil, cache); file.Valid() {
		t.Error("Expected invalid current file")
	}
}
