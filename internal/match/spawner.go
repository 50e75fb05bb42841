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

// Spawners are functions and methods that run a function argument on a new goroutine.
type Spawners map[FuncName]struct{}

// DefaultSpawners returns the known goroutine spawners.
func DefaultSpawners() Spawners {
	return Spawners{
		{Path: "golang.org/x/sync/errgroup", Receiver: "Group", Name: "Go"}:    {},
		{Path: "golang.org/x/sync/errgroup", Receiver: "Group", Name: "TryGo"}: {},
		{Path: "sync", Receiver: "WaitGroup", Name: "Go"}:                       {},
	}
}

// IsSpawner reports whether fun starts its function argument on a new goroutine.
func (s Spawners) IsSpawner(fun *types.Func) bool {
	if fun == nil {
		return false
	}

	_, ok := s[FuncNameOf(fun)]

	return ok
}
