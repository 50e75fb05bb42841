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

package report

import (
	"context"
	"fmt"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/asyncguard/internal/astutil"
	"fillmore-labs.com/asyncguard/internal/fix"
	"fillmore-labs.com/asyncguard/internal/rule"
)

// Reporter emits the diagnostics of one file.
type Reporter struct {
	p    *analysis.Pass
	file astutil.CurrentFile

	doc    *fix.Document // read on first use
	docErr error

	offered []fix.Edit // edits of fixes already suggested for this file
}

// New creates a [Reporter] for a file of the pass.
func New(p *analysis.Pass, file astutil.CurrentFile) *Reporter {
	return &Reporter{p: p, file: file}
}

// Report emits diagnostics with suggested fixes, skipping lines with a //nolint:asyncguard comment.
//
// Diagnostics must be ordered by position. A fix overlapping a fix already suggested for the file
// is omitted, the diagnostic is still reported; it gets its fix on the next run.
func (r *Reporter) Report(ctx context.Context, diagnostics []rule.Diagnostic) {
	defer trace.StartRegion(ctx, "Report").End()

	for _, d := range diagnostics {
		if r.file.NoLintComment(d.Pos) {
			continue
		}

		diagnostic := analysis.Diagnostic{
			Pos:      d.Pos,
			End:      d.End,
			Category: string(d.Rule),
			Message:  Message(d),
			Related:  related(d.Related),
		}

		if d.Fix != nil {
			if edits := r.edits(d); len(edits) > 0 {
				diagnostic.SuggestedFixes = []analysis.SuggestedFix{{Message: FixMessage(d), TextEdits: edits}}
			}
		}

		r.p.Report(diagnostic)
	}
}

// edits generates the text edits for the fix of d.
func (r *Reporter) edits(d rule.Diagnostic) []analysis.TextEdit {
	doc, err := r.document()
	if err != nil {
		astutil.InternalError(r.p, d.Pos, d.End, "Can't read source: %s", err)

		return nil
	}

	edit, err := fix.For(d, doc)
	if err != nil {
		astutil.InternalError(r.p, d.Pos, d.End, "Can't create fix: %s", err)

		return nil
	}

	if !r.offer(edit) {
		return nil
	}

	handle := r.file.Handle()

	return []analysis.TextEdit{{
		Pos:     handle.Pos(edit.Span.Start),
		End:     handle.Pos(edit.Span.End),
		NewText: []byte(edit.NewText),
	}}
}

// offer records edit unless it overlaps an edit already offered. Identical edits are compatible.
func (r *Reporter) offer(edit fix.Edit) bool {
	for _, prev := range r.offered {
		if prev == edit {
			return true
		}

		if prev.Span.Overlaps(edit.Span) {
			return false
		}
	}

	r.offered = append(r.offered, edit)

	return true
}

// document returns the text of the current file, reading it once.
func (r *Reporter) document() (fix.Document, error) {
	if r.doc == nil && r.docErr == nil {
		r.doc, r.docErr = r.read()
	}

	if r.docErr != nil {
		return fix.Document{}, r.docErr
	}

	return *r.doc, nil
}

func (r *Reporter) read() (*fix.Document, error) {
	handle := r.file.Handle()

	text, err := r.p.ReadFile(handle.Name())
	if err != nil {
		return nil, err
	}

	if len(text) != handle.Size() {
		return nil, fmt.Errorf("%s: size %d differs from parsed size %d", handle.Name(), len(text), handle.Size())
	}

	doc := fix.NewDocument(handle, text)

	return &doc, nil
}

// related converts related locations.
func related(rs []rule.Related) []analysis.RelatedInformation {
	if len(rs) == 0 {
		return nil
	}

	info := make([]analysis.RelatedInformation, 0, len(rs))
	for _, rel := range rs {
		info = append(info, analysis.RelatedInformation{Pos: rel.Pos, End: rel.End, Message: rel.Message})
	}

	return info
}
