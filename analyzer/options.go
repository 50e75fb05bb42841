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

package analyzer

import (
	"log/slog"

	"fillmore-labs.com/asyncguard/analyzer/level"
	"fillmore-labs.com/asyncguard/internal/config"
	"fillmore-labs.com/asyncguard/internal/run"
)

// Option configures specific behavior of a [New] asyncguard analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithSleep is an [Option] to configure whether every time.Sleep call is reported.
func WithSleep(sleep bool) Option { return sleepOption{sleep: sleep} }

type sleepOption struct{ sleep bool }

func (o sleepOption) apply(r *run.Options) {
	r.Rules.Set(config.SleepRule, o.sleep)
}

func (o sleepOption) LogAttr() slog.Attr {
	return slog.Bool("sleep", o.sleep)
}

// WithAsyncSleep is an [Option] to configure whether time.Sleep in asynchronous functions is reported.
func WithAsyncSleep(asyncSleep bool) Option { return asyncSleepOption{asyncSleep: asyncSleep} }

type asyncSleepOption struct{ asyncSleep bool }

func (o asyncSleepOption) apply(r *run.Options) {
	r.Rules.Set(config.AsyncSleepRule, o.asyncSleep)
}

func (o asyncSleepOption) LogAttr() slog.Attr {
	return slog.Bool("async-sleep", o.asyncSleep)
}

// WithTransitive is an [Option] to look through synchronous function literals nested in
// asynchronous functions when checking time.Sleep calls.
func WithTransitive(transitive bool) Option { return transitiveOption{transitive: transitive} }

type transitiveOption struct{ transitive bool }

func (o transitiveOption) apply(r *run.Options) {
	r.Behavior.Set(config.Transitive, o.transitive)
}

func (o transitiveOption) LogAttr() slog.Attr {
	return slog.Bool("transitive", o.transitive)
}

// WithAsyncSleepLevel is an [Option] combining [WithAsyncSleep] and [WithTransitive].
func WithAsyncSleepLevel(l level.AsyncSleep) Option { return asyncSleepLevelOption{level: l} }

type asyncSleepLevelOption struct{ level level.AsyncSleep }

func (o asyncSleepLevelOption) apply(r *run.Options) {
	r.Rules.Set(config.AsyncSleepRule, o.level.Enabled())
	r.Behavior.Set(config.Transitive, o.level.Transitive())
}

func (o asyncSleepLevelOption) LogAttr() slog.Attr {
	return slog.Any("async-sleep", o.level)
}

// WithPropagateContext is an [Option] to configure whether empty contexts passed while a
// context variable is in scope are reported.
func WithPropagateContext(propagate bool) Option { return propagateOption{propagate: propagate} }

type propagateOption struct{ propagate bool }

func (o propagateOption) apply(r *run.Options) {
	r.Rules.Set(config.PropagateContextRule, o.propagate)
}

func (o propagateOption) LogAttr() slog.Attr {
	return slog.Bool("propagate-context", o.propagate)
}
