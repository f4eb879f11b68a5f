// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package rustgen

import "strings"

// TypeAlias is a `pub type Name = Target;` item with optional
// attribute annotations rendered directly above it.
type TypeAlias struct {
	name        string
	target      string
	annotations []string
}

// NewTypeAlias returns an alias builder for a (formatted) name and target.
func NewTypeAlias(name, target string) *TypeAlias {
	return &TypeAlias{name: name, target: target}
}

// Annotation appends attribute lines such as `#[serde(bound="")]`.
func (a *TypeAlias) Annotation(lines ...string) *TypeAlias {
	a.annotations = append(a.annotations, lines...)
	return a
}

// PushTypeAlias appends a type alias to the scope body.
func (s *Scope) PushTypeAlias(a *TypeAlias) *Scope {
	s.items = append(s.items, a)
	return s
}

func (a *TypeAlias) render(sb *strings.Builder) {
	for _, ann := range a.annotations {
		sb.WriteString(ann)
		sb.WriteString("\n")
	}
	sb.WriteString("pub type ")
	sb.WriteString(a.name)
	sb.WriteString(" = ")
	sb.WriteString(a.target)
	sb.WriteString(";\n")
}
