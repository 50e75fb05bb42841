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

package astutil

import (
	"go/ast"
	"go/token"
	"regexp"
	"slices"
	"strings"
)

// asyncguard is the name of the linter.
const asyncguard = "asyncguard"

// CurrentFile holds file information for analysis.
type CurrentFile struct {
	file      *ast.File
	handle    *token.File
	generated bool
}

// NewCurrentFile creates a new [CurrentFile] from a [token.FileSet] and an *[ast.File].
// The generated status is taken from cache.
func NewCurrentFile(fset *token.FileSet, file *ast.File, cache GeneratedCache) CurrentFile {
	if file == nil {
		return CurrentFile{}
	}

	handle := fset.File(file.FileStart)
	if handle == nil {
		return CurrentFile{}
	}

	return CurrentFile{file, handle, cache.IsGenerated(file)}
}

// Valid returns true if the [CurrentFile] was successfully created
// from a valid file handle.
func (c CurrentFile) Valid() bool {
	return c.handle != nil
}

// Generated returns true if the file is a generated file.
func (c CurrentFile) Generated() bool {
	return c.generated
}

// Handle returns the [token.File] of the current file.
func (c CurrentFile) Handle() *token.File {
	return c.handle
}

func (c CurrentFile) line(pos token.Pos) int {
	return c.handle.PositionFor(pos, false).Line
}

// NoLint reports whether the whole file is excluded by a //nolint:asyncguard package comment.
func (c CurrentFile) NoLint() bool {
	if c.file == nil || c.file.Doc == nil {
		return false
	}

	return CommentHasNoLint(c.file.Doc.List[len(c.file.Doc.List)-1])
}

// NoLintComment checks if a line is followed by a //nolint:asyncguard comment.
func (c CurrentFile) NoLintComment(pos token.Pos) bool {
	if c.file == nil {
		return false
	}

	// find the first comment starting after pos
	i, _ := slices.BinarySearchFunc(c.file.Comments, pos,
		func(c *ast.CommentGroup, p token.Pos) int { return int(c.Pos() - p) })

	for ; i < len(c.file.Comments); i++ {
		comment := c.file.Comments[i].List[0]

		if c.line(comment.Pos()) != c.line(pos) {
			return false // not on this line
		}

		if CommentHasNoLint(comment) {
			return true
		}
	}

	return false
}

// FuncNoLint reports whether a function declaration is excluded by a //nolint:asyncguard doc comment.
func FuncNoLint(fun *ast.FuncDecl) bool {
	return fun.Doc != nil && CommentHasNoLint(fun.Doc.List[len(fun.Doc.List)-1])
}

var nolintPattern = regexp.MustCompile(`^//\s*nolint:([a-zA-Z0-9,_-]+)`)

// CommentHasNoLint checks if the provided comment contains a `//nolint:asyncguard` directive.
func CommentHasNoLint(comment *ast.Comment) bool {
	matches := nolintPattern.FindStringSubmatch(comment.Text)
	if matches == nil {
		return false
	}

	// Parse comma-separated linter list
	for linter := range strings.SplitSeq(matches[1], ",") {
		if l := strings.ToLower(strings.TrimSpace(linter)); l == asyncguard || l == "all" {
			return true
		}
	}

	return false
}
