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

package boundary

import (
	"fmt"
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/asyncguard/internal/match"
)

// Boundary is an execution boundary enclosing a code location.
type Boundary struct {
	Kind      Kind
	Async     bool
	Goroutine bool   // function literal started on its own goroutine
	Name      string // function or method name, empty for closures
	Recv      string // receiver type name of methods
	Node      ast.Node
}

// Description returns a human-readable description of the boundary, e.g. "function 'Serve'".
func (b Boundary) Description() string {
	switch b.Kind {
	case OrdinaryFunction:
		if b.Recv != "" {
			return fmt.Sprintf("method '%s.%s'", b.Recv, b.Name)
		}

		return fmt.Sprintf("function '%s'", b.Name)

	case Closure:
		if b.Goroutine {
			return "goroutine function literal"
		}

		return "function literal"

	default:
		return b.Kind.String()
	}
}

// Walker classifies enclosing boundaries using type information.
type Walker struct {
	info     *types.Info
	spawners match.Spawners
}

// NewWalker creates a new [Walker].
func NewWalker(info *types.Info, spawners match.Spawners) Walker {
	return Walker{info: info, spawners: spawners}
}

// Nearest returns the nearest boundary strictly enclosing c.
//
// It returns false when c is not inside any function, e.g. in a package level variable initializer.
func (w Walker) Nearest(c inspector.Cursor) (Boundary, bool) {
	for e := range c.Parent().Enclosing((*ast.FuncDecl)(nil), (*ast.FuncLit)(nil)) {
		return w.classify(e), true
	}

	return Boundary{}, false
}

// InsideAsync returns the nearest asynchronous boundary enclosing c, looking through
// synchronous function literals. Function declarations end the search.
func (w Walker) InsideAsync(c inspector.Cursor) (Boundary, bool) {
	for e := range c.Parent().Enclosing((*ast.FuncDecl)(nil), (*ast.FuncLit)(nil)) {
		b := w.classify(e)
		if b.Async {
			return b, true
		}

		if b.Kind == OrdinaryFunction {
			break
		}
	}

	return Boundary{}, false
}

// classify builds the [Boundary] for a cursor positioned at a function declaration or literal.
func (w Walker) classify(c inspector.Cursor) Boundary {
	switch n := c.Node().(type) {
	case *ast.FuncDecl:
		b := Boundary{Kind: OrdinaryFunction, Name: n.Name.Name, Node: n}
		if n.Recv != nil && len(n.Recv.List) > 0 {
			b.Recv = recvName(n.Recv.List[0].Type)
		}

		if fun, ok := w.info.Defs[n.Name].(*types.Func); ok {
			b.Async = match.HasContextParam(fun.Signature())
		}

		return b

	case *ast.FuncLit:
		b := Boundary{Kind: Closure, Node: n}
		b.Goroutine = w.startsGoroutine(c)

		if b.Goroutine {
			b.Async = true
		} else if sig, ok := w.info.TypeOf(n).(*types.Signature); ok {
			b.Async = match.HasContextParam(sig)
		}

		return b

	default:
		panic(fmt.Sprintf("unexpected boundary node %T", n))
	}
}

// startsGoroutine reports whether the function literal at c runs on a new goroutine,
// either by a go statement or by being passed to a known spawner.
func (w Walker) startsGoroutine(c inspector.Cursor) bool {
	call := c.Parent()
	if _, ok := call.Node().(*ast.CallExpr); !ok {
		return false
	}

	switch k, _ := c.ParentEdge(); k {
	case edge.CallExpr_Fun: // go func() { ... }()
		stmt := call.Parent()
		_, ok := stmt.Node().(*ast.GoStmt)

		return ok

	case edge.CallExpr_Args: // g.Go(func() error { ... })
		return w.spawners.IsSpawner(match.Callee(w.info, call.Node().(*ast.CallExpr)))

	default:
		return false
	}
}

// recvName returns the receiver base type name.
func recvName(expr ast.Expr) string {
	for {
		switch e := expr.(type) {
		case *ast.StarExpr:
			expr = e.X

		case *ast.IndexExpr: // generic receiver T[P]
			expr = e.X

		case *ast.IndexListExpr: // generic receiver T[P, Q]
			expr = e.X

		case *ast.ParenExpr:
			expr = e.X

		case *ast.Ident:
			return e.Name

		default:
			return ""
		}
	}
}
