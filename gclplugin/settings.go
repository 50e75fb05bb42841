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

package gclplugin

import (
	asyncguard "fillmore-labs.com/asyncguard/analyzer"
	"fillmore-labs.com/asyncguard/analyzer/level"
)

// Settings represents the configuration options for an instance of the [Plugin].
//
// The same settings are read from .asyncguard.yaml by the asyncguard command.
type Settings struct {
	// Sleep reports every time.Sleep call.
	Sleep *bool `json:"sleep,omitzero" yaml:"sleep,omitempty"`
	// AsyncSleep sets the level of time.Sleep checks in asynchronous functions.
	AsyncSleep *level.AsyncSleep `json:"async-sleep,omitzero" yaml:"async-sleep,omitempty"`
	// PropagateContext reports empty contexts passed while a context is in scope.
	PropagateContext *bool `json:"propagate-context,omitzero" yaml:"propagate-context,omitempty"`
	// Generated enables diagnostics in generated files. Ignored by golangci-lint.
	Generated *bool `json:"generated,omitzero" yaml:"generated,omitempty"`
}

// Options converts [Settings] into a list of [asyncguard.Option] for the asyncguard analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []asyncguard.Option {
	var opts []asyncguard.Option

	opts = appendOption(opts, s.Sleep, asyncguard.WithSleep)
	opts = appendOption(opts, s.AsyncSleep, asyncguard.WithAsyncSleepLevel)
	opts = appendOption(opts, s.PropagateContext, asyncguard.WithPropagateContext)
	opts = appendOption(opts, s.Generated, asyncguard.WithGenerated)

	return opts
}

// appendOption appends a non-nil setting to an [asyncguard.Option] list.
func appendOption[T any](opts []asyncguard.Option, value *T, constructor func(T) asyncguard.Option) []asyncguard.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
