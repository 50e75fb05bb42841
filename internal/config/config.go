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

package config

// RuleFlags represents specific diagnostic rules.
type RuleFlags uint8

const (
	// SleepRule reports blocking sleep calls anywhere.
	SleepRule RuleFlags = 1 << iota

	// AsyncSleepRule reports blocking sleep calls inside asynchronous functions.
	AsyncSleepRule

	// PropagateContextRule reports empty contexts passed while another context is in scope.
	PropagateContextRule
)

// AllRules is the set of all implemented rules.
const AllRules = SleepRule | AsyncSleepRule | PropagateContextRule

// Rules is the set of enabled rules.
type Rules = BitMask[RuleFlags]

// DefaultRules returns the rules enabled by default.
func DefaultRules() Rules {
	return NewBitMask(AsyncSleepRule, PropagateContextRule)
}

// Config represents configuration options for the rules.
type Config uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated Config = 1 << iota

	// Transitive reports blocking calls in synchronous closures nested in asynchronous functions.
	Transitive
)

// Behavior holds behavioral options.
type Behavior = BitMask[Config]

// DefaultBehavior returns the default behavior.
func DefaultBehavior() Behavior {
	return NewBitMask[Config]()
}
