// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package rust translates source struct and type-alias declarations to
// Rust structs and aliases with serde derive attributes.
package rust

import (
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/arahalevich-move/aws-lambda-events/internal/rustgen"
	"github.com/arahalevich-move/aws-lambda-events/internal/translate"
)

// Derives attached to every emitted struct.
var structDerives = []string{"Debug", "Clone", "PartialEq", "Deserialize", "Serialize"}

// Translator translates gathered declarations to Rust definitions.
type Translator struct {
	log *zap.SugaredLogger
}

// NewTranslator returns a Translator logging through log; a nil log
// disables logging.
func NewTranslator(log *zap.SugaredLogger) *Translator {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Translator{log: log}
}

// WithLogger returns a copy of the translator logging through log.
func (t *Translator) WithLogger(log *zap.SugaredLogger) translate.Translator {
	return NewTranslator(log)
}

// Name returns the translator's identifier.
func (t *Translator) Name() string {
	return "rust"
}

// FileExtension returns the file extension for Rust source files.
func (t *Translator) FileExtension() string {
	return ".rs"
}

// Translate converts the accepted declarations of one source file into
// rendered Rust. The first unsupported construct aborts with no output.
func (t *Translator) Translate(src *translate.Source) ([]byte, error) {
	scope := rustgen.NewScope()

	for _, decl := range src.Decls {
		switch d := decl.(type) {
		case translate.StructDecl:
			t.log.Debugw("translating struct", "name", d.Name, "fields", len(d.Fields))
			st, imports, err := t.translateStruct(d)
			if err != nil {
				return nil, err
			}
			scope.PushStruct(st)
			addImports(scope, imports)
		case translate.AliasDecl:
			t.log.Debugw("translating type alias", "name", d.Name)
			alias, imports, err := t.translateAlias(d)
			if err != nil {
				return nil, err
			}
			scope.PushTypeAlias(alias)
			addImports(scope, imports)
		default:
			return nil, errors.Newf("unsupported declaration kind for %q", decl.DeclName())
		}
	}

	return scope.Bytes(), nil
}

// translateStruct builds one Rust struct. The generic parameter counter
// is scoped here: placeholder numbering restarts for every struct.
func (t *Translator) translateStruct(d translate.StructDecl) (*rustgen.Struct, map[string]struct{}, error) {
	name := translate.ToPascalCase(d.Name)

	st := rustgen.NewStruct(name).
		Vis("pub").
		Derive(structDerives...)

	if len(d.Doc) > 0 {
		doc := make([]string, len(d.Doc))
		for i, line := range d.Doc {
			// Keep cross-references in the doc pointing at the
			// emitted name.
			doc[i] = strings.ReplaceAll(line, d.Name, "`"+name+"`")
		}
		st.Doc(doc)
	}

	imports := make(map[string]struct{})
	counter := 0

	for _, f := range d.Fields {
		df, err := deriveField(f, &counter)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "field %s of struct %s (%s)", f.Name, d.Name, d.Pos)
		}
		for _, g := range df.generics {
			st.Generic(g)
		}
		for imp := range df.imports {
			imports[imp] = struct{}{}
		}
		st.PushField(df.field)
	}

	return st, imports, nil
}

// translateAlias builds one Rust type alias. No struct is in scope, so
// dynamic types resolve to the concrete Value type.
func (t *Translator) translateAlias(d translate.AliasDecl) (*rustgen.TypeAlias, map[string]struct{}, error) {
	rt, err := translateType(d.Target, nil)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "type alias %s (%s)", d.Name, d.Pos)
	}

	alias := rustgen.NewTypeAlias(translate.Mangle(d.Name), rt.value).
		Annotation(rt.annotations...)

	return alias, rt.imports, nil
}

func addImports(scope *rustgen.Scope, imports map[string]struct{}) {
	for imp := range imports {
		scope.ImportPath(imp)
	}
}
