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
	"bytes"
	"cmp"
	"context"
	"errors"
	"fmt"
	"go/parser"
	"go/token"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"
)

// ErrConflict is returned when edits of a batch overlap.
var ErrConflict = errors.New("conflicting edits")

// ConflictError reports two overlapping edits.
type ConflictError struct {
	Document string
	A, B     Span
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: edit %s overlaps edit %s", e.Document, e.A, e.B)
}

// Is makes [ConflictError] match [ErrConflict].
func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

// Apply applies all edits to doc in one pass.
//
// Edits must not overlap; otherwise no edit is applied and a *[ConflictError] naming both spans
// is returned. Edits are applied from the rightmost to the leftmost, so every edit is applied at
// its original offset.
func Apply(doc Document, edits []Edit) (Document, error) {
	// Sort indexes by descending offsets; insertions at the same offset keep their input order
	// in the result, so they are applied in reverse.
	order := make([]int, len(edits))
	for i := range order {
		order[i] = i
	}

	slices.SortFunc(order, func(i, j int) int {
		a, b := edits[i].Span, edits[j].Span
		if c := cmp.Compare(b.Start, a.Start); c != 0 {
			return c
		}

		if c := cmp.Compare(b.End, a.End); c != 0 {
			return c
		}

		return cmp.Compare(j, i)
	})

	for n, i := range order {
		e := edits[i]
		if e.Span.Start < 0 || e.Span.End < e.Span.Start || e.Span.End > len(doc.Text) {
			return doc, fmt.Errorf("%s: edit %s: %w", doc.Name, e.Span, ErrOutOfRange)
		}

		if n > 0 {
			if prev := edits[order[n-1]].Span; e.Span.Overlaps(prev) {
				return doc, &ConflictError{Document: doc.Name, A: e.Span, B: prev}
			}
		}
	}

	parts := make([][]byte, 0, 2*len(edits)+1)
	end := len(doc.Text)

	for _, i := range order {
		e := edits[i]
		parts = append(parts, doc.Text[e.Span.End:end], []byte(e.NewText))
		end = e.Span.Start
	}

	parts = append(parts, doc.Text[:end])

	var buf bytes.Buffer
	buf.Grow(len(doc.Text) + growth(edits))

	for i := len(parts) - 1; i >= 0; i-- {
		buf.Write(parts[i]) // ignore error
	}

	return Document{Name: doc.Name, Text: buf.Bytes()}, nil
}

func growth(edits []Edit) int {
	var n int
	for _, e := range edits {
		n += max(0, len(e.NewText)-(e.Span.End-e.Span.Start))
	}

	return n
}

// ErrInvalidSource is returned when a rewritten document does not parse.
var ErrInvalidSource = errors.New("invalid source after applying fixes")

// Verify checks that doc still parses as a Go source file.
func Verify(doc Document) error {
	fset := token.NewFileSet()
	if _, err := parser.ParseFile(fset, doc.Name, doc.Text, parser.SkipObjectResolution); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSource, err)
	}

	return nil
}

// Batch is a set of edits for one document.
type Batch struct {
	Document Document
	Edits    []Edit
}

// Result is the outcome of one [Batch].
type Result struct {
	Document Document // the rewritten document, valid when Err is nil
	Err      error
}

// ApplyAll applies every batch with [Apply] and [Verify]. Documents are independent and
// processed concurrently; a failing batch does not affect the others. The results are in
// the order of batches.
func ApplyAll(ctx context.Context, batches []Batch) []Result {
	results := make([]Result, len(batches))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, b := range batches {
		g.Go(func() error {
			results[i] = applyBatch(ctx, b)

			return nil
		})
	}

	_ = g.Wait() // batches report through results

	return results
}

func applyBatch(ctx context.Context, b Batch) Result {
	if err := ctx.Err(); err != nil {
		return Result{Err: fmt.Errorf("%s: %w", b.Document.Name, err)}
	}

	doc, err := Apply(b.Document, b.Edits)
	if err != nil {
		return Result{Err: err}
	}

	if err := Verify(doc); err != nil {
		return Result{Err: fmt.Errorf("%s: %w", doc.Name, err)}
	}

	return Result{Document: doc}
}
