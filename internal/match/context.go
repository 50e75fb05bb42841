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

import "go/types"

const (
	contextPath = "context"
	contextName = "Context"
)

// IsContext reports whether t is context.Context.
func IsContext(t types.Type) bool {
	named, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return false
	}

	obj := named.Obj()

	return obj.Name() == contextName && obj.Pkg() != nil && obj.Pkg().Path() == contextPath
}

// HasContextParam reports whether the signature accepts a context.Context parameter.
func HasContextParam(sig *types.Signature) bool {
	if sig == nil {
		return false
	}

	for v := range sig.Params().Variables() {
		if IsContext(v.Type()) {
			return true
		}
	}

	return false
}

// ParamType returns the type of the parameter receiving argument i of a call with signature sig.
// It returns nil if there is no such parameter.
func ParamType(sig *types.Signature, i int, hasEllipsis bool) types.Type {
	params := sig.Params()
	n := params.Len()

	switch {
	case sig.Variadic() && i >= n-1:
		last := params.At(n - 1).Type()
		if hasEllipsis {
			return last
		}

		if s, ok := last.Underlying().(*types.Slice); ok {
			return s.Elem()
		}

		return nil

	case i < n:
		return params.At(i).Type()

	default:
		return nil
	}
}
