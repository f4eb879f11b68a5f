// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package gosource is the input boundary around the Go parser. It
// produces the syntax tree the translation core consumes and keeps the
// original source bytes alongside it so diagnostics and output can
// quote the exact offending or translated text.
package gosource

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"

	"github.com/cockroachdb/errors"
)

// File is one parsed Go source file.
type File struct {
	// Path is the name the file was parsed under, used in diagnostics.
	Path string
	// Code is the unmodified source text.
	Code []byte
	// AST is the parsed file with comments attached.
	AST *ast.File
	// Fset resolves node offsets back to positions in Code.
	Fset *token.FileSet
}

// Parse parses src as a single Go file. A syntax error is fatal and
// carries the parser's positional diagnostic.
func Parse(path string, src []byte) (*File, error) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, path, src, parser.ParseComments)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	return &File{Path: path, Code: src, AST: f, Fset: fset}, nil
}

// Load reads and parses the Go file at path.
func Load(path string) (*File, error) {
	src, err := os.ReadFile(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return Parse(path, src)
}

// Snippet returns the source text covered by node n.
func (f *File) Snippet(n ast.Node) string {
	start := f.Fset.Position(n.Pos()).Offset
	end := f.Fset.Position(n.End()).Offset
	if start < 0 || end > len(f.Code) || start > end {
		return ""
	}
	return string(f.Code[start:end])
}

// Position returns the source position of node n.
func (f *File) Position(n ast.Node) token.Position {
	return f.Fset.Position(n.Pos())
}
