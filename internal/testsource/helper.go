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

// Package testsource provides utilities for parsing and analyzing Go source code in tests.
//
// It is designed to simplify testing of the asyncguard rules by handling common
// boilerplate code for parsing and type-checking Go source files.
package testsource

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"golang.org/x/tools/go/ast/inspector"
)

const (
	testpkg  = "test"
	filename = "test.go"
)

// Source is a parsed and type-checked single file package.
type Source struct {
	Fset *token.FileSet
	File *ast.File
	Pkg  *types.Package
	Info *types.Info
	Text []byte
	Root inspector.Cursor // cursor positioned at the file
}

// Load parses and type checks a complete Go source file of package "test".
func Load(tb testing.TB, src string) Source {
	tb.Helper()

	fset, f := Parse(tb, src)
	pkg, info := Check(tb, fset, f)

	root := inspector.New([]*ast.File{f}).Root()

	file, ok := root.FirstChild()
	if !ok {
		tb.Fatal("Can't find file")
	}

	return Source{Fset: fset, File: f, Pkg: pkg, Info: info, Text: []byte(src), Root: file}
}

// Parse parses a complete Go source file into an AST.
//
// Call [Check] on the result when type information is needed.
func Parse(tb testing.TB, src string) (*token.FileSet, *ast.File) {
	tb.Helper()

	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, filename, src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	return fset, f
}

// Check performs type checking on the provided AST file.
// It creates and returns a fully type-checked *types.Package and *types.Info.
func Check(tb testing.TB, fset *token.FileSet, f *ast.File) (*types.Package, *types.Info) {
	tb.Helper()

	info := &types.Info{
		Types:  make(map[ast.Expr]types.TypeAndValue),
		Defs:   make(map[*ast.Ident]types.Object),
		Uses:   make(map[*ast.Ident]types.Object),
		Scopes: make(map[ast.Node]*types.Scope),
	}

	conf := types.Config{Importer: importer.Default()}

	pkg, err := conf.Check(testpkg, fset, []*ast.File{f}, info)
	if err != nil {
		tb.Fatalf("failed to type Check source: %v", err)
	}

	return pkg, info
}

// Call returns the cursor of the n-th call (counting from 0) whose function expression prints as fun.
func (s Source) Call(tb testing.TB, fun string, n int) inspector.Cursor {
	tb.Helper()

	for c := range s.Root.Preorder((*ast.CallExpr)(nil)) {
		if types.ExprString(c.Node().(*ast.CallExpr).Fun) != fun {
			continue
		}

		if n == 0 {
			return c
		}

		n--
	}

	tb.Fatalf("Can't find call to %s", fun)

	return inspector.Cursor{}
}
