// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package rust

import (
	"fmt"
	"regexp"
	"slices"

	"github.com/arahalevich-move/aws-lambda-events/internal/rustgen"
	"github.com/arahalevich-move/aws-lambda-events/internal/translate"
)

var hashMapRe = regexp.MustCompile(`^HashMap<.+>$`)

// derivedField is one translated field plus the imports and generic
// parameters it hoists onto the enclosing struct.
type derivedField struct {
	field    *rustgen.Field
	imports  map[string]struct{}
	generics []rustgen.Generic
}

// deriveField applies the per-field policy: identifier rewriting and
// keyword escaping, type translation, optionality, rename or flatten
// annotations, and the two null-safety overrides for strings and maps.
func deriveField(f translate.Field, counter *int) (derivedField, error) {
	name := translate.Mangle(translate.ToSnakeCase(f.Name))

	rt, err := translateType(f.Type, counter)
	if err != nil {
		return derivedField{}, err
	}

	// A pointer field can be nil and is therefore always optional,
	// whether or not the tag says omitempty.
	omitEmpty := f.Pointer
	if f.Tag != nil && f.Tag.OmitEmpty {
		omitEmpty = true
	}

	typ := rt.value
	var overrides []string
	switch {
	case typ == "String":
		// The source dialect turns null strings into "" and its event
		// definitions sometimes mark nullable string fields as plain
		// strings. Every String field decodes as Option<String> with
		// null coalescing to compensate.
		typ = "Option<String>"
		overrides = []string{
			`#[serde(deserialize_with = "deserialize_lambda_string")]`,
			"#[serde(default)]",
		}
		rt.addImports(customSerdeImport)
	case hashMapRe.MatchString(typ):
		// Maps decode a null value as an empty map instead of being
		// Option-wrapped.
		overrides = []string{
			`#[serde(deserialize_with = "deserialize_lambda_map")]`,
			"#[serde(default)]",
		}
		rt.addImports(customSerdeImport)
	case omitEmpty:
		typ = "Option<" + typ + ">"
	}

	var annotations []string
	if f.Embedded {
		annotations = append(annotations, "#[serde(flatten)]")
	} else if f.Tag != nil && f.Tag.Name != "" && f.Tag.Name != name {
		annotations = append(annotations, fmt.Sprintf("#[serde(rename = %q)]", f.Tag.Name))
	}
	annotations = append(annotations, rt.annotations...)
	annotations = append(annotations, overrides...)

	doc := slices.Clone(f.Doc)
	if f.Tag != nil && f.Tag.Comment != "" {
		if len(doc) > 0 {
			doc = append(doc, "")
		}
		doc = append(doc, f.Tag.Comment)
	}

	field := rustgen.NewField(name, typ).
		Vis("pub").
		Doc(doc).
		Annotation(annotations...)

	return derivedField{
		field:    field,
		imports:  rt.imports,
		generics: rt.generics,
	}, nil
}
