// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package rustgen builds and renders Rust source: structs, fields,
// type aliases and use-declarations. Callers accumulate items in any
// order; imports are deduplicated on insertion and sorted at render
// time so output is stable regardless of input ordering.
package rustgen

import (
	"sort"
	"strings"
)

// Scope is a top-level collection of Rust items sharing one import block.
type Scope struct {
	imports map[string]map[string]struct{} // path -> item set
	items   []item
}

type item interface {
	render(sb *strings.Builder)
}

// rawItem is a verbatim line, used for type aliases and attributes that
// attach to them.
type rawItem string

func (r rawItem) render(sb *strings.Builder) {
	sb.WriteString(string(r))
	sb.WriteString("\n")
}

// NewScope returns an empty Scope.
func NewScope() *Scope {
	return &Scope{imports: make(map[string]map[string]struct{})}
}

// Import records a use-declaration of item from path. Duplicates collapse.
func (s *Scope) Import(path, name string) *Scope {
	set, ok := s.imports[path]
	if !ok {
		set = make(map[string]struct{})
		s.imports[path] = set
	}
	set[name] = struct{}{}
	return s
}

// ImportPath records a fully qualified path such as
// "std::collections::HashMap", splitting it at the last "::" into a
// (path, item) pair.
func (s *Scope) ImportPath(full string) *Scope {
	idx := strings.LastIndex(full, "::")
	if idx < 0 {
		return s.Import(full, "self")
	}
	return s.Import(full[:idx], full[idx+2:])
}

// Raw appends a verbatim line to the scope body.
func (s *Scope) Raw(line string) *Scope {
	s.items = append(s.items, rawItem(line))
	return s
}

// PushStruct appends a struct definition to the scope body.
func (s *Scope) PushStruct(st *Struct) *Scope {
	s.items = append(s.items, st)
	return s
}

// Len reports the number of body items accumulated so far.
func (s *Scope) Len() int {
	return len(s.items)
}

// String renders the scope: the sorted import block first, then every
// item in push order, separated by blank lines.
func (s *Scope) String() string {
	var sb strings.Builder

	paths := make([]string, 0, len(s.imports))
	for path := range s.imports {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		names := make([]string, 0, len(s.imports[path]))
		for name := range s.imports[path] {
			names = append(names, name)
		}
		sort.Strings(names)

		sb.WriteString("use ")
		sb.WriteString(path)
		sb.WriteString("::")
		if len(names) == 1 {
			sb.WriteString(names[0])
		} else {
			sb.WriteString("{")
			sb.WriteString(strings.Join(names, ", "))
			sb.WriteString("}")
		}
		sb.WriteString(";\n")
	}

	for i, it := range s.items {
		if i > 0 || len(paths) > 0 {
			sb.WriteString("\n")
		}
		it.render(&sb)
	}

	return sb.String()
}

// Bytes renders the scope as a byte slice.
func (s *Scope) Bytes() []byte {
	return []byte(s.String())
}
