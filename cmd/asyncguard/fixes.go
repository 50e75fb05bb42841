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
	"context"
	"errors"
	"fmt"
	"go/token"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"fillmore-labs.com/asyncguard/internal/fix"
)

// ErrStale is returned when a file changed after loading.
var ErrStale = errors.New("file changed since loading")

// pending collects the edits of one file.
type pending struct {
	doc      fix.Document
	edits    []fix.Edit
	findings []finding // findings whose fixes are in edits
}

// add adds the edits of the first suggested fix of f, skipping edits already present.
// It reports false, adding nothing, when an edit overlaps a different edit of the file.
func (pf *pending) add(f finding) (bool, error) {
	sf := f.diag.SuggestedFixes[0]

	var edits []fix.Edit

	for _, te := range sf.TextEdits {
		end := te.End
		if !end.IsValid() {
			end = te.Pos
		}

		if tf := f.fset.File(te.Pos); tf == nil || tf.Name() != pf.doc.Name {
			return false, fmt.Errorf("%s: fix %q edits another file", pf.doc.Name, sf.Message)
		}

		span, err := pf.doc.SpanOf(te.Pos, end)
		if err != nil {
			return false, err
		}

		e := fix.Edit{Span: span, NewText: string(te.NewText)}
		if slices.Contains(pf.edits, e) || slices.Contains(edits, e) {
			continue
		}

		if slices.ContainsFunc(pf.edits, func(prev fix.Edit) bool { return prev.Span.Overlaps(e.Span) }) {
			return false, nil
		}

		edits = append(edits, e)
	}

	pf.edits = append(pf.edits, edits...)
	pf.findings = append(pf.findings, f)

	return true, nil
}

// fixResult summarizes fix application.
type fixResult struct {
	remaining []finding // findings not fixed
	failed    int       // number of files whose fixes could not be applied
}

// applyFixes applies or prints the first suggested fix of every finding.
//
// Fixes overlapping an earlier fix of the same file are left for the next run. A file whose
// edits can not be applied is reported to ep and does not affect other files.
func (o *options) applyFixes(ctx context.Context, p, ep *printer, findings []finding, logger *slog.Logger) (fixResult, error) {
	var (
		res   fixResult
		names []string
	)

	files := make(map[string]*pending)

	for _, f := range findings {
		if len(f.diag.SuggestedFixes) == 0 {
			res.remaining = append(res.remaining, f)

			continue
		}

		tf := f.fset.File(f.diag.Pos)
		if tf == nil {
			return res, fmt.Errorf("%s: no file for diagnostic %q", f.posn, f.diag.Message)
		}

		name := tf.Name()

		pf, ok := files[name]
		if !ok {
			text, err := readSource(tf)
			if err != nil {
				return res, err
			}

			pf = &pending{doc: fix.NewDocument(tf, text)}
			files[name] = pf
			names = append(names, name)
		}

		added, err := pf.add(f)
		if err != nil {
			return res, err
		}

		if !added {
			logger.Debug("Skipped overlapping fix", slog.String("position", f.posn.String()))
			res.remaining = append(res.remaining, f)
		}
	}

	slices.Sort(names)

	batches := make([]fix.Batch, 0, len(names))
	for _, name := range names {
		pf := files[name]
		batches = append(batches, fix.Batch{Document: pf.doc, Edits: pf.edits})
	}

	for i, r := range fix.ApplyAll(ctx, batches) {
		b := batches[i]
		pf := files[b.Document.Name]

		if r.Err != nil {
			ep.fixError(r.Err)
			res.failed++
			res.remaining = append(res.remaining, pf.findings...)

			continue
		}

		if o.diff {
			d, err := unifiedDiff(b.Document, b.Edits)
			if err != nil {
				return res, err
			}

			if _, err := p.w.Write(d); err != nil {
				return res, err
			}

			continue
		}

		if err := writeSource(r.Document); err != nil {
			return res, err
		}

		logger.Debug("Applied fixes", slog.String("file", r.Document.Name), slog.Int("edits", len(pf.edits)))
		p.fixed(relative(o.dir, r.Document.Name), len(pf.findings))
	}

	slices.SortFunc(res.remaining, compareFindings)

	return res, nil
}

// readSource reads the current content of a loaded file.
func readSource(tf *token.File) ([]byte, error) {
	text, err := os.ReadFile(tf.Name())
	if err != nil {
		return nil, err
	}

	if len(text) != tf.Size() {
		return nil, fmt.Errorf("%s: %w", tf.Name(), ErrStale)
	}

	return text, nil
}

func writeSource(doc fix.Document) error {
	info, err := os.Stat(doc.Name)
	if err != nil {
		return err
	}

	return os.WriteFile(doc.Name, doc.Text, info.Mode().Perm())
}

// relative shortens name for display when it is below dir.
func relative(dir, name string) string {
	base, err := filepath.Abs(dir)
	if err != nil {
		return name
	}

	rel, err := filepath.Rel(base, name)
	if err != nil || strings.HasPrefix(rel, "..") {
		return name
	}

	return rel
}
