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

package main

import (
	"bytes"
	"cmp"
	"slices"

	"fortio.org/safecast"
	"github.com/sourcegraph/go-diff/diff"

	"fillmore-labs.com/asyncguard/internal/fix"
)

// contextLines is the number of unchanged lines around a change.
const contextLines = 3

// change replaces the original lines first to last (inclusive, zero-based).
type change struct {
	first, last int
	lines       [][]byte
}

// unifiedDiff renders the edits of a document as a unified diff.
func unifiedDiff(doc fix.Document, edits []fix.Edit) ([]byte, error) {
	lines, starts := splitLines(doc.Text)

	changes, err := lineChanges(doc, edits, lines, starts)
	if err != nil {
		return nil, err
	}

	fd := &diff.FileDiff{OrigName: "a/" + doc.Name, NewName: "b/" + doc.Name}

	delta := 0
	for len(changes) > 0 {
		n := 1
		for n < len(changes) && changes[n].first-changes[n-1].last-1 <= 2*contextLines {
			n++
		}

		h, d, err := hunk(lines, changes[:n], delta)
		if err != nil {
			return nil, err
		}

		fd.Hunks = append(fd.Hunks, h)
		delta += d
		changes = changes[n:]
	}

	return diff.PrintFileDiff(fd)
}

// lineChanges groups edits by the lines they touch and rewrites those lines.
func lineChanges(doc fix.Document, edits []fix.Edit, lines [][]byte, starts []int) ([]change, error) {
	sorted := slices.Clone(edits)
	slices.SortFunc(sorted, func(a, b fix.Edit) int {
		return cmp.Or(cmp.Compare(a.Span.Start, b.Span.Start), cmp.Compare(a.Span.End, b.Span.End))
	})

	type group struct {
		first, last int
		edits       []fix.Edit
	}

	var groups []group

	for _, e := range sorted {
		first := lineOf(starts, e.Span.Start)

		last := first
		if e.Span.End > e.Span.Start {
			last = lineOf(starts, e.Span.End-1)
		}

		if n := len(groups); n > 0 && first <= groups[n-1].last {
			groups[n-1].last = max(groups[n-1].last, last)
			groups[n-1].edits = append(groups[n-1].edits, e)

			continue
		}

		groups = append(groups, group{first: first, last: last, edits: []fix.Edit{e}})
	}

	changes := make([]change, 0, len(groups))

	for _, g := range groups {
		base, end := starts[g.first], starts[g.last]+len(lines[g.last])

		shifted := make([]fix.Edit, 0, len(g.edits))
		for _, e := range g.edits {
			shifted = append(shifted, fix.Edit{
				Span:    fix.Span{Start: e.Span.Start - base, End: e.Span.End - base},
				NewText: e.NewText,
			})
		}

		seg, err := fix.Apply(fix.Document{Name: doc.Name, Text: doc.Text[base:end]}, shifted)
		if err != nil {
			return nil, err
		}

		newLines, _ := splitLines(seg.Text)
		changes = append(changes, change{first: g.first, last: g.last, lines: newLines})
	}

	return changes, nil
}

// hunk renders consecutive changes with context. delta is the line count difference of preceding hunks.
func hunk(lines [][]byte, changes []change, delta int) (*diff.Hunk, int, error) {
	var body bytes.Buffer

	origStart := max(0, changes[0].first-contextLines)
	origEnd := min(len(lines)-1, changes[len(changes)-1].last+contextLines)

	removed, added := 0, 0
	pos := origStart

	for _, c := range changes {
		for ; pos < c.first; pos++ {
			writeLine(&body, ' ', lines[pos])
		}

		for ; pos <= c.last; pos++ {
			writeLine(&body, '-', lines[pos])
			removed++
		}

		for _, l := range c.lines {
			writeLine(&body, '+', l)
			added++
		}
	}

	for ; pos <= origEnd; pos++ {
		writeLine(&body, ' ', lines[pos])
	}

	origLines := origEnd - origStart + 1
	h := &diff.Hunk{Body: body.Bytes()}

	for _, f := range [...]struct {
		dst *int32
		val int
	}{
		{&h.OrigStartLine, origStart + 1},
		{&h.OrigLines, origLines},
		{&h.NewStartLine, origStart + 1 + delta},
		{&h.NewLines, origLines - removed + added},
	} {
		v, err := safecast.Conv[int32](f.val)
		if err != nil {
			return nil, 0, err
		}

		*f.dst = v
	}

	return h, added - removed, nil
}

// splitLines splits text after each newline and returns the lines with their start offsets.
// Empty text is a single empty line.
func splitLines(text []byte) ([][]byte, []int) {
	lines := bytes.SplitAfter(text, []byte("\n"))
	if len(lines) > 1 && len(lines[len(lines)-1]) == 0 {
		lines = lines[:len(lines)-1]
	}

	starts := make([]int, len(lines))

	offset := 0
	for i, l := range lines {
		starts[i] = offset
		offset += len(l)
	}

	return lines, starts
}

// lineOf returns the zero-based line containing offset.
func lineOf(starts []int, offset int) int {
	i, found := slices.BinarySearch(starts, offset)
	if found {
		return i
	}

	return i - 1
}

func writeLine(b *bytes.Buffer, prefix byte, line []byte) {
	b.WriteByte(prefix)
	b.Write(line)

	if !bytes.HasSuffix(line, []byte("\n")) {
		b.WriteByte('\n')
	}
}
