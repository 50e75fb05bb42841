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

package match_test

import (
	"go/ast"
	"testing"

	. "fillmore-labs.com/asyncguard/internal/match"
	"fillmore-labs.com/asyncguard/internal/testsource"
)

func TestIsBlockingCall(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name string
		src  string
		want bool
	}{
		{
			name: "qualified",
			src:  `package test; import "time"; func _() { time.Sleep(0) }`,
			want: true,
		},
		{
			name: "aliased",
			src:  `package test; import clock "time"; func _() { clock.Sleep(0) }`,
			want: true,
		},
		{
			name: "dot import",
			src:  `package test; import . "time"; func _() { Sleep(0) }`,
			want: true,
		},
		{
			name: "parenthesized",
			src:  `package test; import "time"; func _() { (time.Sleep)(0) }`,
			want: true,
		},
		{
			name: "local function",
			src:  `package test; func Sleep(int) {}; func _() { Sleep(0) }`,
			want: false,
		},
		{
			name: "method",
			src:  `package test; type T struct{}; func (T) Sleep() {}; func _() { T{}.Sleep() }`,
			want: false,
		},
		{
			name: "function value",
			src:  `package test; import "time"; var sleep = time.Sleep; func _() { sleep(0) }`,
			want: false,
		},
		{
			name: "other name",
			src:  `package test; import "time"; func _() { _ = time.Now() }`,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := testsource.Load(t, tt.src)

			var got bool
			for c := range s.Root.Preorder((*ast.CallExpr)(nil)) {
				if IsBlockingCall(s.Info, c.Node().(*ast.CallExpr), Sleep) {
					got = true
				}
			}

			if got != tt.want {
				t.Errorf("IsBlockingCall() = %t, want %t", got, tt.want)
			}
		})
	}
}

func TestSleepName(t *testing.T) {
	t.Parallel()

	if got, want := Sleep.String(), "time.Sleep"; got != want {
		t.Errorf("Sleep = %q, want %q", got, want)
	}
}
