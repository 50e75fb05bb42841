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

package boundary_test

import (
	"testing"

	. "fillmore-labs.com/asyncguard/internal/boundary"
	"fillmore-labs.com/asyncguard/internal/match"
	"fillmore-labs.com/asyncguard/internal/testsource"
)

const header = `package test

import (
	"context"
	"time"
)

type Pool struct{}

func (*Pool) Go(f func()) { go f() }

var _ context.Context

`

func TestWalker(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name string
		body string

		found   bool   // a boundary encloses the call
		nearest string // description of the nearest boundary
		async   bool   // the nearest boundary is asynchronous

		inside string // description of the asynchronous boundary found transitively, empty for none
		kind   Kind
	}{
		{
			name:    "plain function",
			body:    `func f() { time.Sleep(0) }`,
			found:   true,
			nearest: "function 'f'",
			kind:    OrdinaryFunction,
		},
		{
			name:    "context function",
			body:    `func f(ctx context.Context) { time.Sleep(0) }`,
			found:   true,
			nearest: "function 'f'",
			async:   true,
			inside:  "function 'f'",
			kind:    OrdinaryFunction,
		},
		{
			name:    "method",
			body:    `type S[T any] struct{}; func (s *S[T]) Run(_ context.Context) { time.Sleep(0) }`,
			found:   true,
			nearest: "method 'S.Run'",
			async:   true,
			inside:  "method 'S.Run'",
			kind:    OrdinaryFunction,
		},
		{
			name:    "go statement",
			body:    `func f() { go func() { time.Sleep(0) }() }`,
			found:   true,
			nearest: "goroutine function literal",
			async:   true,
			inside:  "goroutine function literal",
			kind:    Closure,
		},
		{
			name:    "spawner",
			body:    `func f(p *Pool) { p.Go(func() { time.Sleep(0) }) }`,
			found:   true,
			nearest: "goroutine function literal",
			async:   true,
			inside:  "goroutine function literal",
			kind:    Closure,
		},
		{
			name:    "immediately invoked",
			body:    `func f() { func() { time.Sleep(0) }() }`,
			found:   true,
			nearest: "function literal",
			kind:    Closure,
		},
		{
			name:    "context literal",
			body:    `var f = func(ctx context.Context) { time.Sleep(0) }`,
			found:   true,
			nearest: "function literal",
			async:   true,
			inside:  "function literal",
			kind:    Closure,
		},
		{
			name:    "sync literal in async function",
			body:    `func f(ctx context.Context) { g := func() { time.Sleep(0) }; g() }`,
			found:   true,
			nearest: "function literal",
			inside:  "function 'f'",
			kind:    Closure,
		},
		{
			name:    "sync literal in sync function",
			body:    `func f() { g := func() { time.Sleep(0) }; g() }`,
			found:   true,
			nearest: "function literal",
			kind:    Closure,
		},
	}

	spawners := match.Spawners{{Path: "test", Receiver: "Pool", Name: "Go"}: {}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := testsource.Load(t, header+tt.body)
			w := NewWalker(s.Info, spawners)

			c := s.Call(t, "time.Sleep", 0)

			b, ok := w.Nearest(c)
			if ok != tt.found {
				t.Fatalf("Nearest() found = %t, want %t", ok, tt.found)
			}

			if got := b.Description(); got != tt.nearest {
				t.Errorf("Nearest() = %q, want %q", got, tt.nearest)
			}

			if b.Async != tt.async {
				t.Errorf("Nearest().Async = %t, want %t", b.Async, tt.async)
			}

			if b.Kind != tt.kind {
				t.Errorf("Nearest().Kind = %s, want %s", b.Kind, tt.kind)
			}

			inside, ok := w.InsideAsync(c)
			if ok != (tt.inside != "") {
				t.Fatalf("InsideAsync() found = %t, want %q", ok, tt.inside)
			}

			if ok && inside.Description() != tt.inside {
				t.Errorf("InsideAsync() = %q, want %q", inside.Description(), tt.inside)
			}
		})
	}
}

func TestWalkerPackageLevel(t *testing.T) {
	t.Parallel()

	s := testsource.Load(t, header+`var x = delay(time.Second); func delay(d time.Duration) int { return 0 }`)
	w := NewWalker(s.Info, match.DefaultSpawners())

	c := s.Call(t, "delay", 0)

	if b, ok := w.Nearest(c); ok {
		t.Errorf("Nearest() = %q, want none", b.Description())
	}

	if b, ok := w.InsideAsync(c); ok {
		t.Errorf("InsideAsync() = %q, want none", b.Description())
	}
}

func TestKindString(t *testing.T) {
	t.Parallel()

	if got, want := OrdinaryFunction.String(), "function"; got != want {
		t.Errorf("OrdinaryFunction = %q, want %q", got, want)
	}

	if got, want := Closure.String(), "function literal"; got != want {
		t.Errorf("Closure = %q, want %q", got, want)
	}
}
