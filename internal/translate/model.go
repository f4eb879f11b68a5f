// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"go/token"
	"strings"
)

// TypeKind tags the closed set of source type variants. Every switch
// over a TypeKind must handle all kinds and fail on the default case.
type TypeKind int

const (
	KindString TypeKind = iota
	KindInt
	KindUint
	KindFloat
	KindBool
	KindByte
	KindNamed
	KindArray
	KindMap
	KindAny
	KindPointer
	KindTime
	KindEpochMillis
	KindEpochSeconds
	KindRawJSON
)

// GoType is one node of the source type tree. Which payload fields are
// set depends on Kind: Name for KindNamed, Elem for KindArray and
// KindPointer, Key and Value for KindMap.
type GoType struct {
	Kind  TypeKind
	Name  string
	Elem  *GoType
	Key   *GoType
	Value *GoType
}

// Primitive reports whether the type is one of the scalar kinds
// permitted as a map key.
func (t GoType) Primitive() bool {
	switch t.Kind {
	case KindString, KindInt, KindUint, KindFloat, KindBool, KindByte:
		return true
	default:
		return false
	}
}

// String renders the type in source-dialect syntax for diagnostics.
func (t GoType) String() string {
	switch t.Kind {
	case KindString:
		return "string"
	case KindInt:
		return "int64"
	case KindUint:
		return "uint64"
	case KindFloat:
		return "float64"
	case KindBool:
		return "bool"
	case KindByte:
		return "byte"
	case KindNamed:
		return t.Name
	case KindArray:
		return "[]" + t.Elem.String()
	case KindMap:
		return "map[" + t.Key.String() + "]" + t.Value.String()
	case KindAny:
		return "interface{}"
	case KindPointer:
		return "*" + t.Elem.String()
	case KindTime:
		return "time.Time"
	case KindEpochMillis:
		return "MilliSecondsEpochTime"
	case KindEpochSeconds:
		return "SecondsEpochTime"
	case KindRawJSON:
		return "json.RawMessage"
	default:
		return "<invalid>"
	}
}

// Tag carries the serialization hints parsed from a field's tag node:
// the serialized name, the omit-if-empty flag, and any inline comment
// that trailed the field on the same line.
type Tag struct {
	Name      string
	OmitEmpty bool
	Comment   string
}

// Field is one declared struct field. Built once from the syntax tree
// and immutable afterwards.
type Field struct {
	// Name is the source identifier. For embedded fields it is the
	// embedded type name.
	Name string
	// Doc holds the field's doc-comment lines, markers stripped.
	Doc []string
	// Tag is nil when the field carries no serialization tag.
	Tag *Tag
	// Pointer is set when the field type was pointer-qualified at the
	// top level; the pointee is stored in Type.
	Pointer bool
	// Type is the field's source type.
	Type GoType
	// Embedded marks anonymous fields whose members are flattened
	// into the parent during serialization.
	Embedded bool
}

// Decl is a top-level declaration accepted by the dispatcher.
type Decl interface {
	DeclName() string
}

// StructDecl is a struct declaration with its doc comment and fields.
type StructDecl struct {
	Name   string
	Doc    []string
	Fields []Field
	Pos    token.Position
}

// DeclName returns the declared struct name.
func (d StructDecl) DeclName() string { return d.Name }

// AliasDecl is a type alias (or defined type) whose target is a single
// source type.
type AliasDecl struct {
	Name   string
	Target GoType
	Pos    token.Position
}

// DeclName returns the declared alias name.
func (d AliasDecl) DeclName() string { return d.Name }

// Source is the dispatcher's output: the original input text plus the
// accepted declarations in source order.
type Source struct {
	Path  string
	Code  []byte
	Decls []Decl
}

// cleanComment strips the comment marker and surrounding whitespace
// from one comment line.
func cleanComment(line string) string {
	line = strings.TrimPrefix(line, "//")
	line = strings.TrimPrefix(line, "/*")
	line = strings.TrimSuffix(line, "*/")
	return strings.TrimSpace(line)
}
