// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package rustgen

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestScope_ImportsSortedGroupedDeduplicated(t *testing.T) {
	scope := NewScope()
	scope.ImportPath("std::collections::HashMap")
	scope.ImportPath("chrono::Utc")
	scope.ImportPath("chrono::DateTime")
	scope.ImportPath("std::collections::HashMap")
	scope.ImportPath("custom_serde::*")

	want := `use chrono::{DateTime, Utc};
use custom_serde::*;
use std::collections::HashMap;
`
	if diff := cmp.Diff(want, scope.String()); diff != "" {
		t.Errorf("rendered imports mismatch (-want +got):\n%s", diff)
	}
}

func TestScope_StructRender(t *testing.T) {
	st := NewStruct("S3Event").
		Vis("pub").
		Derive("Debug", "Clone", "PartialEq", "Deserialize", "Serialize").
		Doc([]string{"`S3Event` notification."}).
		PushField(NewField("records", "Vec<S3EventRecord>").
			Vis("pub").
			Annotation(`#[serde(rename = "Records")]`))

	scope := NewScope().PushStruct(st)

	want := `/// ` + "`S3Event`" + ` notification.
#[derive(Debug, Clone, PartialEq, Deserialize, Serialize)]
pub struct S3Event {
    #[serde(rename = "Records")]
    pub records: Vec<S3EventRecord>,
}
`
	if diff := cmp.Diff(want, scope.String()); diff != "" {
		t.Errorf("rendered struct mismatch (-want +got):\n%s", diff)
	}
}

func TestScope_StructWithGenericsAndBounds(t *testing.T) {
	st := NewStruct("Envelope").
		Vis("pub").
		Generic(Generic{Name: "T1", Default: "Value", Bounds: []string{"DeserializeOwned", "Serialize"}}).
		PushField(NewField("detail", "T1").Vis("pub"))

	got := NewScope().PushStruct(st).String()

	assert.Contains(t, got, "pub struct Envelope<T1 = Value>\n")
	assert.Contains(t, got, "where\n    T1: DeserializeOwned,\n    T1: Serialize,\n{\n")
}

func TestScope_TypeAliasWithAnnotations(t *testing.T) {
	alias := NewTypeAlias("Raw", "Value").Annotation(`#[serde(bound="")]`)
	got := NewScope().PushTypeAlias(alias).String()

	want := `#[serde(bound="")]
pub type Raw = Value;
`
	assert.Equal(t, want, got)
}

func TestScope_ItemsSeparatedByBlankLines(t *testing.T) {
	scope := NewScope().
		PushTypeAlias(NewTypeAlias("A", "String")).
		PushTypeAlias(NewTypeAlias("B", "bool"))

	want := `pub type A = String;

pub type B = bool;
`
	assert.Equal(t, want, scope.String())
}

func TestScope_EmptyStruct(t *testing.T) {
	got := NewScope().PushStruct(NewStruct("Empty").Vis("pub")).String()
	assert.Equal(t, "pub struct Empty {\n}\n", got)
}
