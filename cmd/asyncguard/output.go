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
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"golang.org/x/tools/go/packages"
)

// ErrColorMode is returned for unknown --color values.
var ErrColorMode = errors.New("unknown color mode")

// printer writes findings, optionally colorized.
type printer struct {
	w        io.Writer
	position *color.Color
	related  *color.Color
	failure  *color.Color
}

func newPrinter(w io.Writer, mode string) (*printer, error) {
	enabled, err := colorEnabled(w, mode)
	if err != nil {
		return nil, err
	}

	p := &printer{
		w:        w,
		position: color.New(color.Bold),
		related:  color.New(color.Faint),
		failure:  color.New(color.FgRed, color.Bold),
	}

	for _, c := range [...]*color.Color{p.position, p.related, p.failure} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return p, nil
}

// colorEnabled decides whether output to w is colorized.
func colorEnabled(w io.Writer, mode string) (bool, error) {
	switch mode {
	case "on", "always":
		return true, nil

	case "off", "never":
		return false, nil

	case "auto", "":
		if _, ok := os.LookupEnv("NO_COLOR"); ok {
			return false, nil
		}

		f, ok := w.(*os.File)
		if !ok {
			return false, nil
		}

		fd := f.Fd()

		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd), nil

	default:
		return false, fmt.Errorf("%w %q", ErrColorMode, mode)
	}
}

// finding prints a diagnostic with its related information.
func (p *printer) finding(f finding) {
	_, _ = p.position.Fprintf(p.w, "%s:", f.posn)
	_, _ = fmt.Fprintf(p.w, " %s\n", f.diag.Message)

	for _, r := range f.diag.Related {
		_, _ = p.related.Fprintf(p.w, "\t%s: %s\n", f.fset.Position(r.Pos), r.Message)
	}
}

func (p *printer) loadError(err packages.Error) {
	_, _ = p.failure.Fprintf(p.w, "%s\n", err)
}

func (p *printer) fixError(err error) {
	_, _ = p.failure.Fprintf(p.w, "%s\n", err)
}

func (p *printer) fixed(name string, n int) {
	_, _ = fmt.Fprintf(p.w, "%s: applied %d fixes\n", name, n)
}
