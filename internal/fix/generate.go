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

	"fillmore-labs.com/asyncguard/internal/rule"
)

// ErrNoFix is returned for diagnostics without fix data.
var ErrNoFix = errors.New("diagnostic has no fix")

// For generates the [Edit] fixing d in doc.
func For(d rule.Diagnostic, doc Document) (Edit, error) {
	switch f := d.Fix.(type) {
	case rule.DelayFix:
		return Delay(f, doc)

	case rule.PropagateFix:
		return Propagate(f, doc)

	case nil:
		return Edit{}, fmt.Errorf("%s: %w", d.Rule, ErrNoFix)

	default:
		return Edit{}, fmt.Errorf("%s: unexpected fix type %T: %w", d.Rule, f, ErrNoFix)
	}
}

// Delay replaces a blocking sleep call with a receive from a timer channel,
// keeping the original argument text verbatim:
//
//	time.Sleep(100 * time.Millisecond) → <-time.After(100 * time.Millisecond)
func Delay(f rule.DelayFix, doc Document) (Edit, error) {
	call, err := doc.SpanOf(f.Call.Pos, f.Call.End)
	if err != nil {
		return Edit{}, err
	}

	args, err := doc.SpanOf(f.Args.Pos, f.Args.End)
	if err != nil {
		return Edit{}, err
	}

	if args.Start < call.Start || call.End < args.End {
		return Edit{}, fmt.Errorf("%s: arguments %s outside of call %s: %w", doc.Name, args, call, ErrOutOfRange)
	}

	return Edit{Span: call, NewText: f.DelayText(string(doc.Slice(args)))}, nil
}

// Propagate replaces an empty context argument with the identifier of a context variable.
func Propagate(f rule.PropagateFix, doc Document) (Edit, error) {
	expr, err := doc.SpanOf(f.Expr.Pos, f.Expr.End)
	if err != nil {
		return Edit{}, err
	}

	return Edit{Span: expr, NewText: f.Name}, nil
}
