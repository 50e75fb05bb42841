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
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/asyncguard/internal/boundary"
	"fillmore-labs.com/asyncguard/internal/config"
	"fillmore-labs.com/asyncguard/internal/match"
	"fillmore-labs.com/asyncguard/internal/scope"
)

// ID is the stable identifier of a rule, used as the diagnostic category.
type ID string

const (
	// SleepID identifies [Sleep].
	SleepID ID = "sleep"

	// AsyncSleepID identifies [AsyncSleep].
	AsyncSleepID ID = "async-sleep"

	// PropagateContextID identifies [PropagateContext].
	PropagateContextID ID = "propagate-context"
)

// Rule is a single diagnostic rule.
type Rule interface {
	// ID returns the stable rule identifier.
	ID() ID

	// NodeTypes returns the node types Check should be invoked on.
	NodeTypes() []ast.Node

	// Check inspects the node at c.
	Check(p *Pass, c inspector.Cursor) (Diagnostic, bool)
}

// Pass holds the read-only source model shared by all rules of one analysis pass.
type Pass struct {
	Pkg    *types.Package
	Info   *types.Info
	Scopes scope.Index
	Walker boundary.Walker
}

// NewPass creates a new [Pass] for a type-checked package.
func NewPass(pkg *types.Package, info *types.Info) *Pass {
	return &Pass{
		Pkg:    pkg,
		Info:   info,
		Scopes: scope.NewIndex(info),
		Walker: boundary.NewWalker(info, match.DefaultSpawners()),
	}
}

// Diagnostic is a single rule violation.
type Diagnostic struct {
	Rule     ID
	Pos, End token.Pos
	Args     []string
	Related  []Related
	Fix      Fix // nil when no fix is available
}

// Related points to a location related to a [Diagnostic].
type Related struct {
	Pos, End token.Pos
	Message  string
}

// ErrUnknownRule is returned when rules are requested that have no implementation.
var ErrUnknownRule = errors.New("unknown rule")

// New returns the enabled rules. It fails for requested rules without an implementation.
func New(rules config.Rules, behavior config.Behavior) ([]Rule, error) {
	if unknown := rules.Value() &^ config.AllRules; unknown != 0 {
		return nil, fmt.Errorf("%w: %#x", ErrUnknownRule, unknown)
	}

	var enabled []Rule

	if rules.Enabled(config.SleepRule) {
		enabled = append(enabled, Sleep{})
	}

	if rules.Enabled(config.AsyncSleepRule) {
		enabled = append(enabled, AsyncSleep{Transitive: behavior.Enabled(config.Transitive)})
	}

	if rules.Enabled(config.PropagateContextRule) {
		enabled = append(enabled, PropagateContext{})
	}

	return enabled, nil
}
