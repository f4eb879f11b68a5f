// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package rust

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/arahalevich-move/aws-lambda-events/internal/rustgen"
	"github.com/arahalevich-move/aws-lambda-events/internal/translate"
)

// Fully qualified import paths pulled in by translated types. Paths
// under super::super::encodings resolve against the generated crate's
// module layout.
const (
	base64Import          = "super::super::encodings::Base64Data"
	secondTimestampImport = "super::super::encodings::SecondTimestamp"
	milliTimestampImport  = "super::super::encodings::MillisecondTimestamp"
	hashMapImport         = "std::collections::HashMap"
	valueImport           = "serde_json::Value"
	deserializeImport     = "serde::de::DeserializeOwned"
	serializeImport       = "serde::ser::Serialize"
	customSerdeImport     = "custom_serde::*"
)

// rustType is the result of translating one source type: the rendered
// type expression, the imports it needs, the field annotations it
// demands, and any generic parameters it introduced on the enclosing
// struct.
type rustType struct {
	value       string
	imports     map[string]struct{}
	annotations []string
	generics    []rustgen.Generic
}

func scalar(value string) rustType {
	return rustType{value: value}
}

func (r *rustType) addImports(paths ...string) {
	if r.imports == nil {
		r.imports = make(map[string]struct{}, len(paths))
	}
	for _, p := range paths {
		r.imports[p] = struct{}{}
	}
}

// translateType maps one source type to its Rust equivalent. counter is
// the enclosing struct's generic parameter counter, threaded by
// reference through the whole recursion so placeholder numbering stays
// sequential across a struct's fields; it is nil when no struct is in
// scope (type alias targets).
func translateType(t translate.GoType, counter *int) (rustType, error) {
	switch t.Kind {
	case translate.KindString:
		return scalar("String"), nil
	case translate.KindBool:
		return scalar("bool"), nil
	case translate.KindByte:
		return scalar("u8"), nil
	case translate.KindInt:
		return scalar("i64"), nil
	case translate.KindUint:
		return scalar("u64"), nil
	case translate.KindFloat:
		return scalar("f64"), nil
	case translate.KindNamed:
		return scalar(translate.ToPascalCase(t.Name)), nil

	case translate.KindArray:
		inner, err := translateType(*t.Elem, counter)
		if err != nil {
			return rustType{}, err
		}
		// Byte slices are serialized as base64 text, so they collapse
		// to the codec scalar. One level only: a slice of Base64Data
		// stays a Vec.
		if inner.value == "u8" {
			inner.value = "Base64Data"
			inner.addImports(base64Import)
			return inner, nil
		}
		inner.value = "Vec<" + inner.value + ">"
		return inner, nil

	case translate.KindPointer:
		inner, err := translateType(*t.Elem, counter)
		if err != nil {
			return rustType{}, err
		}
		inner.value = "Option<" + inner.value + ">"
		return inner, nil

	case translate.KindMap:
		return translateMap(t, counter)

	case translate.KindAny, translate.KindRawJSON:
		return translateDynamic(counter), nil

	case translate.KindEpochSeconds:
		r := scalar("SecondTimestamp")
		r.addImports(secondTimestampImport)
		return r, nil
	case translate.KindEpochMillis:
		r := scalar("MillisecondTimestamp")
		r.addImports(milliTimestampImport)
		return r, nil

	case translate.KindTime:
		// The source dialect's default time encoding already matches
		// chrono's default decoding, so no custom rule is needed.
		r := scalar("DateTime<Utc>")
		r.addImports("chrono::DateTime", "chrono::Utc")
		return r, nil

	default:
		return rustType{}, errors.Newf("unsupported source type: %s", t)
	}
}

func translateMap(t translate.GoType, counter *int) (rustType, error) {
	if !t.Key.Primitive() {
		return rustType{}, errors.Newf("map key must be a primitive type, got %s in %s", t.Key, t)
	}

	// Key and value share the counter so value-side placeholders
	// continue numbering where key-side allocations stopped.
	key, err := translateType(*t.Key, counter)
	if err != nil {
		return rustType{}, err
	}
	value, err := translateType(*t.Value, counter)
	if err != nil {
		return rustType{}, err
	}

	r := rustType{
		value:       "HashMap<" + key.value + ", " + value.value + ">",
		annotations: append(key.annotations, value.annotations...),
		generics:    append(key.generics, value.generics...),
	}
	r.addImports(hashMapImport)
	for imp := range key.imports {
		r.addImports(imp)
	}
	for imp := range value.imports {
		r.addImports(imp)
	}
	return r, nil
}

// translateDynamic handles the dynamic "any" placeholder and raw
// dynamic payloads. Inside a struct each occurrence becomes a fresh
// generic parameter defaulting to Value; outside (alias targets) it is
// the concrete Value type.
func translateDynamic(counter *int) rustType {
	r := rustType{}
	r.addImports(valueImport)

	if counter == nil {
		r.value = "Value"
		return r
	}

	*counter++
	name := fmt.Sprintf("T%d", *counter)

	r.value = name
	r.addImports(deserializeImport, serializeImport)
	// The bound is declared on the struct, so bound checking on the
	// field itself is relaxed.
	r.annotations = []string{`#[serde(bound="")]`}
	r.generics = []rustgen.Generic{{
		Name:    name,
		Default: "Value",
		Bounds:  []string{"DeserializeOwned", "Serialize"},
	}}
	return r
}
