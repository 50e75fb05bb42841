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

package fix_test

import (
	"errors"
	"go/token"
	"testing"

	. "fillmore-labs.com/asyncguard/internal/fix"
)

func TestDocumentOffset(t *testing.T) {
	t.Parallel()

	text := []byte("package a\n")

	fset := token.NewFileSet()
	fset.AddFile("other.go", -1, 100) // shift the base of the next file
	file := fset.AddFile("a.go", -1, len(text))

	doc := NewDocument(file, text)

	if doc.Name != "a.go" {
		t.Errorf("Name = %q, want a.go", doc.Name)
	}

	span, err := doc.SpanOf(file.Pos(8), file.Pos(9))
	if err != nil {
		t.Fatalf("SpanOf() failed: %v", err)
	}

	if got := string(doc.Slice(span)); got != "a" {
		t.Errorf("Slice(%s) = %q, want %q", span, got, "a")
	}

	if _, err := doc.Offset(token.NoPos); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Offset(NoPos) error = %v, want out of range", err)
	}

	if _, err := doc.Offset(file.Pos(0) - 1); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Offset(before) error = %v, want out of range", err)
	}

	if _, err := doc.SpanOf(file.Pos(5), file.Pos(2)); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("SpanOf(inverted) error = %v, want out of range", err)
	}
}

func TestSpanOverlaps(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		a, b Span
		want bool
	}{
		{Span{0, 2}, Span{2, 4}, false},
		{Span{0, 3}, Span{2, 4}, true},
		{Span{1, 1}, Span{1, 1}, false},
		{Span{1, 1}, Span{0, 2}, true},
		{Span{0, 1}, Span{1, 1}, false},
		{Span{1, 2}, Span{1, 1}, false},
		{Span{0, 5}, Span{1, 2}, true},
	}

	for _, tt := range tests {
		if got := tt.a.Overlaps(tt.b); got != tt.want {
			t.Errorf("%s.Overlaps(%s) = %t, want %t", tt.a, tt.b, got, tt.want)
		}

		if got := tt.b.Overlaps(tt.a); got != tt.want {
			t.Errorf("%s.Overlaps(%s) = %t, want %t", tt.b, tt.a, got, tt.want)
		}
	}
}
