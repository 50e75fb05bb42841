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
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"fillmore-labs.com/asyncguard/internal/match"
	"fillmore-labs.com/asyncguard/internal/rule"
)

// Message formats the diagnostic message of d.
func Message(d rule.Diagnostic) string {
	switch d.Rule {
	case rule.SleepID:
		return fmt.Sprintf("%s should not be used (ag:%s)", match.Sleep, d.Rule)

	case rule.AsyncSleepID:
		return fmt.Sprintf("%s should not call %s (ag:%s)", capitalize(arg(d, 0)), match.Sleep, d.Rule)

	case rule.PropagateContextID:
		return fmt.Sprintf("Propagate context '%s' instead of %s in call to %s (ag:%s)", arg(d, 0), arg(d, 1), arg(d, 2), d.Rule)

	default:
		return fmt.Sprintf("%s (ag:%s)", strings.Join(d.Args, ", "), d.Rule)
	}
}

// FixMessage formats the description of the suggested fix for d.
func FixMessage(d rule.Diagnostic) string {
	switch f := d.Fix.(type) {
	case rule.DelayFix:
		return fmt.Sprintf("Replace with <-%sAfter, keeping the uncancelable delay", f.Qualifier)

	case rule.PropagateFix:
		return fmt.Sprintf("Pass context '%s'", f.Name)

	default:
		return Message(d)
	}
}

func arg(d rule.Diagnostic, i int) string {
	if i >= len(d.Args) {
		return "<unknown>"
	}

	return d.Args[i]
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}

	return string(unicode.ToUpper(r)) + s[size:]
}
