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
	"go/types"
	"strings"
)

// FuncName identifies a function or method by package path, receiver type name and name.
type FuncName struct {
	Path     string
	Receiver string
	Name     string
}

// FuncNameOf returns the [FuncName] of a resolved function or method.
func FuncNameOf(fun *types.Func) FuncName {
	sig, ok := fun.Type().(*types.Signature)
	if !ok || sig.Recv() == nil {
		return FuncName{Path: pkgPath(fun.Pkg()), Name: fun.Name()}
	}

	recv := types.Unalias(sig.Recv().Type())
	if ptr, ok := recv.(*types.Pointer); ok {
		recv = types.Unalias(ptr.Elem())
	}

	switch t := recv.(type) {
	case *types.Named:
		obj := t.Obj()

		return FuncName{Path: pkgPath(obj.Pkg()), Receiver: obj.Name(), Name: fun.Name()}

	case *types.Interface:
		return FuncName{Receiver: "interface", Name: fun.Name()}

	default:
		return FuncName{Receiver: "<invalid>", Name: fun.Name()}
	}
}

func pkgPath(pkg *types.Package) string {
	if pkg == nil {
		return ""
	}

	return pkg.Path()
}

// String returns the qualified name, e.g. "time.Sleep" or "(golang.org/x/sync/errgroup.Group).Go".
func (f FuncName) String() string {
	var b strings.Builder

	if f.Receiver != "" {
		b.WriteByte('(') // ignore error

		if f.Path != "" {
			b.WriteString(f.Path) // ignore error
			b.WriteByte('.')      // ignore error
		}

		b.WriteString(f.Receiver) // ignore error
		b.WriteString(").")       // ignore error
	} else if f.Path != "" {
		b.WriteString(f.Path) // ignore error
		b.WriteByte('.')      // ignore error
	}

	b.WriteString(f.Name) // ignore error

	return b.String()
}
