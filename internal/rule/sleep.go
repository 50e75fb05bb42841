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

	"fillmore-labs.com/asyncguard/internal/match"
)

// Sleep reports blocking sleep calls anywhere.
type Sleep struct{}

// ID implements [Rule].
func (Sleep) ID() ID { return SleepID }

// NodeTypes implements [Rule].
func (Sleep) NodeTypes() []ast.Node { return []ast.Node{(*ast.CallExpr)(nil)} }

// Check implements [Rule].
func (Sleep) Check(p *Pass, c inspector.Cursor) (Diagnostic, bool) {
	call, ok := c.Node().(*ast.CallExpr)
	if !ok || !match.IsBlockingCall(p.Info, call, match.Sleep) {
		return Diagnostic{}, false
	}

	return Diagnostic{
		Rule: SleepID,
		Pos:  call.Pos(),
		End:  call.End(),
		Fix:  delayFix(p, c, call),
	}, true
}
