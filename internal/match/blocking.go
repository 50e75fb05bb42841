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
	"strings"
)

// Sleep is the blocking sleep operation.
var Sleep = FuncName{Path: "time", Name: "Sleep"}

// IsBlockingCall reports whether call invokes target.
//
// Matching is done by symbol identity, so qualified, aliased and dot-imported calls all match.
// The callee name is checked first to skip symbol resolution for the vast majority of calls.
func IsBlockingCall(info *types.Info, call *ast.CallExpr, target FuncName) bool {
	id := CalleeIdent(call)
	if id == nil || !strings.Contains(id.Name, target.Name) {
		return false
	}

	fun, ok := info.Uses[id].(*types.Func)
	if !ok {
		return false // unresolved or not a function
	}

	return FuncNameOf(fun) == target
}
