// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package rustgen

import (
	"strings"
)

// Generic is a type parameter declared on a struct: its placeholder
// name, an optional default type, and the trait bounds it must satisfy.
type Generic struct {
	Name    string
	Default string
	Bounds  []string
}

// Struct accumulates one Rust struct definition.
type Struct struct {
	name     string
	vis      string
	derives  []string
	doc      []string
	generics []Generic
	fields   []*Field
}

// NewStruct returns a struct builder for the given (already formatted) name.
func NewStruct(name string) *Struct {
	return &Struct{name: name}
}

// Vis sets the struct visibility, e.g. "pub".
func (s *Struct) Vis(vis string) *Struct {
	s.vis = vis
	return s
}

// Derive appends derive attributes in declaration order.
func (s *Struct) Derive(names ...string) *Struct {
	s.derives = append(s.derives, names...)
	return s
}

// Doc sets the struct doc comment, one entry per line.
func (s *Struct) Doc(lines []string) *Struct {
	s.doc = lines
	return s
}

// Generic declares a type parameter on the struct.
func (s *Struct) Generic(g Generic) *Struct {
	s.generics = append(s.generics, g)
	return s
}

// PushField appends a field in declaration order.
func (s *Struct) PushField(f *Field) *Struct {
	s.fields = append(s.fields, f)
	return s
}

func (s *Struct) render(sb *strings.Builder) {
	writeDoc(sb, s.doc, "")

	if len(s.derives) > 0 {
		sb.WriteString("#[derive(")
		sb.WriteString(strings.Join(s.derives, ", "))
		sb.WriteString(")]\n")
	}

	if s.vis != "" {
		sb.WriteString(s.vis)
		sb.WriteString(" ")
	}
	sb.WriteString("struct ")
	sb.WriteString(s.name)

	if len(s.generics) > 0 {
		sb.WriteString("<")
		for i, g := range s.generics {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(g.Name)
			if g.Default != "" {
				sb.WriteString(" = ")
				sb.WriteString(g.Default)
			}
		}
		sb.WriteString(">")
	}

	var bounds []string
	for _, g := range s.generics {
		for _, b := range g.Bounds {
			bounds = append(bounds, g.Name+": "+b)
		}
	}
	if len(bounds) > 0 {
		sb.WriteString("\nwhere\n")
		for _, b := range bounds {
			sb.WriteString("    ")
			sb.WriteString(b)
			sb.WriteString(",\n")
		}
		sb.WriteString("{\n")
	} else {
		sb.WriteString(" {\n")
	}

	for _, f := range s.fields {
		f.render(sb)
	}

	sb.WriteString("}\n")
}

// Field accumulates one struct field.
type Field struct {
	name        string
	typ         string
	vis         string
	doc         []string
	annotations []string
}

// NewField returns a field builder for a (formatted) name and type.
func NewField(name, typ string) *Field {
	return &Field{name: name, typ: typ}
}

// Vis sets the field visibility, e.g. "pub".
func (f *Field) Vis(vis string) *Field {
	f.vis = vis
	return f
}

// Doc sets the field doc comment, one entry per line.
func (f *Field) Doc(lines []string) *Field {
	f.doc = lines
	return f
}

// Annotation appends attribute lines such as `#[serde(default)]`.
func (f *Field) Annotation(lines ...string) *Field {
	f.annotations = append(f.annotations, lines...)
	return f
}

// Annotations returns the attribute lines accumulated so far.
func (f *Field) Annotations() []string {
	return f.annotations
}

// Type returns the field's rendered type expression.
func (f *Field) Type() string {
	return f.typ
}

func (f *Field) render(sb *strings.Builder) {
	writeDoc(sb, f.doc, "    ")
	for _, a := range f.annotations {
		sb.WriteString("    ")
		sb.WriteString(a)
		sb.WriteString("\n")
	}
	sb.WriteString("    ")
	if f.vis != "" {
		sb.WriteString(f.vis)
		sb.WriteString(" ")
	}
	sb.WriteString(f.name)
	sb.WriteString(": ")
	sb.WriteString(f.typ)
	sb.WriteString(",\n")
}

func writeDoc(sb *strings.Builder, lines []string, indent string) {
	for _, line := range lines {
		sb.WriteString(indent)
		if line == "" {
			sb.WriteString("///\n")
			continue
		}
		sb.WriteString("/// ")
		sb.WriteString(line)
		sb.WriteString("\n")
	}
}
