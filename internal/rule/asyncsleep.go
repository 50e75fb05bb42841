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

	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/asyncguard/internal/boundary"
	"fillmore-labs.com/asyncguard/internal/match"
)

// AsyncSleep reports blocking sleep calls inside asynchronous functions.
//
// Only the nearest enclosing function counts: a synchronous function literal inside
// asynchronous code is not asynchronous itself. With Transitive set, synchronous function
// literals are looked through up to the enclosing function declaration.
type AsyncSleep struct {
	Transitive bool
}

// ID implements [Rule].
func (AsyncSleep) ID() ID { return AsyncSleepID }

// NodeTypes implements [Rule].
func (AsyncSleep) NodeTypes() []ast.Node { return []ast.Node{(*ast.CallExpr)(nil)} }

// Check implements [Rule].
func (r AsyncSleep) Check(p *Pass, c inspector.Cursor) (Diagnostic, bool) {
	call, ok := c.Node().(*ast.CallExpr)
	if !ok || !match.IsBlockingCall(p.Info, call, match.Sleep) {
		return Diagnostic{}, false
	}

	var (
		b     boundary.Boundary
		found bool
	)

	if r.Transitive {
		b, found = p.Walker.InsideAsync(c)
	} else {
		b, found = p.Walker.Nearest(c)
	}

	if !found || !b.Async {
		return Diagnostic{}, false
	}

	return Diagnostic{
		Rule:    AsyncSleepID,
		Pos:     call.Pos(),
		End:     call.End(),
		Args:    []string{b.Description()},
		Related: []Related{{Pos: b.Node.Pos(), End: b.Node.Pos(), Message: "Inside this " + b.Description()}},
		Fix:     delayFix(p, c, call),
	}, true
}
