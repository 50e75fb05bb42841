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

package fix

import (
	"errors"
	"fmt"
	"go/token"
)

// Document is the text of one source file.
type Document struct {
	Name string
	Text []byte
	base int // file set base of the text, see [token.File.Base]
}

// NewDocument creates a [Document] for text of a file in a [token.FileSet].
// A nil file creates a document without position mapping.
func NewDocument(file *token.File, text []byte) Document {
	if file == nil {
		return Document{Text: text}
	}

	return Document{Name: file.Name(), Text: text, base: file.Base()}
}

// ErrOutOfRange is returned for positions outside of a [Document].
var ErrOutOfRange = errors.New("position out of range")

// Offset converts a position to a byte offset into the document text.
func (d Document) Offset(pos token.Pos) (int, error) {
	if !pos.IsValid() {
		return 0, fmt.Errorf("%s: invalid position: %w", d.Name, ErrOutOfRange)
	}

	offset := int(pos) - d.base
	if offset < 0 || offset > len(d.Text) {
		return 0, fmt.Errorf("%s: position %d (offset %d): %w", d.Name, pos, offset, ErrOutOfRange)
	}

	return offset, nil
}

// SpanOf converts a position range to a [Span].
func (d Document) SpanOf(pos, end token.Pos) (Span, error) {
	start, err := d.Offset(pos)
	if err != nil {
		return Span{}, err
	}

	stop, err := d.Offset(end)
	if err != nil {
		return Span{}, err
	}

	if stop < start {
		return Span{}, fmt.Errorf("%s: inverted span %d-%d: %w", d.Name, start, stop, ErrOutOfRange)
	}

	return Span{Start: start, End: stop}, nil
}

// Slice returns the text covered by s.
func (d Document) Slice(s Span) []byte {
	return d.Text[s.Start:s.End]
}

// Span is a half-open range [Start, End) of byte offsets.
type Span struct {
	Start, End int
}

// String formats the span as "start-end".
func (s Span) String() string {
	return fmt.Sprintf("%d-%d", s.Start, s.End)
}

// Overlaps reports whether two spans overlap.
//
// Two insertions (empty spans) never overlap. An insertion overlaps a non-empty span when
// it is strictly inside it.
func (s Span) Overlaps(o Span) bool {
	switch {
	case s.Start == s.End && o.Start == o.End:
		return false

	case s.Start == s.End:
		return o.Start < s.Start && s.Start < o.End

	case o.Start == o.End:
		return s.Start < o.Start && o.Start < s.End

	default:
		return s.Start < o.End && o.Start < s.End
	}
}

// Edit is a single text substitution.
type Edit struct {
	Span    Span
	NewText string
}
