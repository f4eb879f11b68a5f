// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"go/ast"
	"go/token"
	"reflect"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/arahalevich-move/aws-lambda-events/internal/gosource"
)

// predeclared spellings the source dialect does not support. They are
// rejected by name so the diagnostic can quote the exact identifier,
// instead of falling through to a user-defined named type.
var unsupportedPrimitives = map[string]struct{}{
	"int8":       {},
	"int16":      {},
	"uint8":      {},
	"uint16":     {},
	"uintptr":    {},
	"rune":       {},
	"complex64":  {},
	"complex128": {},
	"error":      {},
}

// Gather walks the top-level declarations of one parsed file and builds
// the source declaration model. Struct and type-alias declarations are
// accepted; imports, constants (including enum option blocks) and
// functions are skipped; anything else aborts with a diagnostic quoting
// the offending declaration. The first error wins; there is no partial
// result.
func Gather(f *gosource.File) (*Source, error) {
	g := &gatherer{file: f}

	src := &Source{Path: f.Path, Code: f.Code}
	for _, decl := range f.AST.Decls {
		accepted, err := g.topLevel(decl)
		if err != nil {
			return nil, err
		}
		src.Decls = append(src.Decls, accepted...)
	}

	return src, nil
}

type gatherer struct {
	file *gosource.File
}

func (g *gatherer) topLevel(decl ast.Decl) ([]Decl, error) {
	switch d := decl.(type) {
	case *ast.FuncDecl:
		// Functions carry no serializable shape.
		return nil, nil
	case *ast.GenDecl:
		switch d.Tok {
		case token.IMPORT, token.CONST:
			return nil, nil
		case token.TYPE:
			return g.typeDecl(d)
		default:
			return nil, g.unexpected(decl)
		}
	default:
		return nil, g.unexpected(decl)
	}
}

func (g *gatherer) unexpected(decl ast.Decl) error {
	return errors.Newf("unexpected top-level declaration at %s: %s",
		g.file.Position(decl), g.file.Snippet(decl))
}

func (g *gatherer) typeDecl(d *ast.GenDecl) ([]Decl, error) {
	var decls []Decl
	for _, spec := range d.Specs {
		ts, ok := spec.(*ast.TypeSpec)
		if !ok {
			return nil, g.unexpected(d)
		}

		if st, ok := ts.Type.(*ast.StructType); ok {
			sd, err := g.structDecl(d, ts, st)
			if err != nil {
				return nil, err
			}
			decls = append(decls, sd)
			continue
		}

		target, err := g.goType(ts.Type)
		if err != nil {
			return nil, err
		}
		decls = append(decls, AliasDecl{
			Name:   ts.Name.Name,
			Target: target,
			Pos:    g.file.Position(ts),
		})
	}
	return decls, nil
}

func (g *gatherer) structDecl(d *ast.GenDecl, ts *ast.TypeSpec, st *ast.StructType) (StructDecl, error) {
	if ts.Name == nil || ts.Name.Name == "" {
		return StructDecl{}, errors.Newf("struct without a name at %s", g.file.Position(ts))
	}

	sd := StructDecl{
		Name: ts.Name.Name,
		Doc:  commentLines(d.Doc, ts.Doc),
		Pos:  g.file.Position(ts),
	}

	for _, field := range st.Fields.List {
		fields, err := g.structFields(field)
		if err != nil {
			return StructDecl{}, err
		}
		sd.Fields = append(sd.Fields, fields...)
	}

	return sd, nil
}

// structFields builds one Field per declared name; an anonymous field
// yields a single embedded Field named after its type.
func (g *gatherer) structFields(field *ast.Field) ([]Field, error) {
	doc := commentLines(field.Doc)

	tag, err := g.fieldTag(field)
	if err != nil {
		return nil, err
	}

	typeExpr := field.Type
	pointer := false
	if star, ok := typeExpr.(*ast.StarExpr); ok {
		pointer = true
		typeExpr = star.X
	}

	if len(field.Names) == 0 {
		ident, ok := typeExpr.(*ast.Ident)
		if !ok {
			return nil, errors.Newf("unsupported embedded field at %s: %s",
				g.file.Position(field), g.file.Snippet(field))
		}
		t, err := g.goType(typeExpr)
		if err != nil {
			return nil, err
		}
		return []Field{{
			Name:     ident.Name,
			Doc:      doc,
			Tag:      tag,
			Pointer:  pointer,
			Type:     t,
			Embedded: true,
		}}, nil
	}

	t, err := g.goType(typeExpr)
	if err != nil {
		return nil, err
	}

	fields := make([]Field, 0, len(field.Names))
	for _, name := range field.Names {
		fields = append(fields, Field{
			Name:    name.Name,
			Doc:     doc,
			Tag:     tag,
			Pointer: pointer,
			Type:    t,
		})
	}
	return fields, nil
}

// fieldTag parses the json key of a field tag. The inline comment after
// the tag belongs to the tag, matching the source dialect's habit of
// annotating the serialized name.
func (g *gatherer) fieldTag(field *ast.Field) (*Tag, error) {
	if field.Tag == nil {
		return nil, nil
	}

	raw, err := strconv.Unquote(field.Tag.Value)
	if err != nil {
		return nil, errors.Wrapf(err, "malformed field tag at %s: %s",
			g.file.Position(field.Tag), field.Tag.Value)
	}

	value, ok := reflect.StructTag(raw).Lookup("json")
	if !ok {
		return nil, nil
	}

	parts := strings.Split(value, ",")
	tag := &Tag{Name: parts[0]}
	for _, opt := range parts[1:] {
		if opt == "omitempty" {
			tag.OmitEmpty = true
		}
	}

	if field.Comment != nil && len(field.Comment.List) > 0 {
		tag.Comment = cleanComment(field.Comment.List[0].Text)
	}

	return tag, nil
}

func (g *gatherer) goType(expr ast.Expr) (GoType, error) {
	switch t := expr.(type) {
	case *ast.Ident:
		return g.identType(t)
	case *ast.SelectorExpr:
		return g.selectorType(t)
	case *ast.StarExpr:
		elem, err := g.goType(t.X)
		if err != nil {
			return GoType{}, err
		}
		return GoType{Kind: KindPointer, Elem: &elem}, nil
	case *ast.ArrayType:
		if t.Len != nil {
			return GoType{}, errors.Newf("unsupported fixed-size array at %s: %s",
				g.file.Position(t), g.file.Snippet(t))
		}
		elem, err := g.goType(t.Elt)
		if err != nil {
			return GoType{}, err
		}
		return GoType{Kind: KindArray, Elem: &elem}, nil
	case *ast.MapType:
		key, err := g.goType(t.Key)
		if err != nil {
			return GoType{}, err
		}
		value, err := g.goType(t.Value)
		if err != nil {
			return GoType{}, err
		}
		return GoType{Kind: KindMap, Key: &key, Value: &value}, nil
	case *ast.InterfaceType:
		if t.Methods != nil && len(t.Methods.List) > 0 {
			return GoType{}, errors.Newf("unsupported non-empty interface at %s: %s",
				g.file.Position(t), g.file.Snippet(t))
		}
		return GoType{Kind: KindAny}, nil
	default:
		return GoType{}, errors.Newf("unsupported type at %s: %s",
			g.file.Position(expr), g.file.Snippet(expr))
	}
}

func (g *gatherer) identType(ident *ast.Ident) (GoType, error) {
	switch ident.Name {
	case "string":
		return GoType{Kind: KindString}, nil
	case "bool":
		return GoType{Kind: KindBool}, nil
	case "byte":
		return GoType{Kind: KindByte}, nil
	case "int", "int32", "int64":
		return GoType{Kind: KindInt}, nil
	case "uint", "uint32", "uint64":
		return GoType{Kind: KindUint}, nil
	case "float32", "float64":
		return GoType{Kind: KindFloat}, nil
	case "any":
		return GoType{Kind: KindAny}, nil
	case "MilliSecondsEpochTime":
		return GoType{Kind: KindEpochMillis}, nil
	case "SecondsEpochTime":
		return GoType{Kind: KindEpochSeconds}, nil
	}

	if _, bad := unsupportedPrimitives[ident.Name]; bad {
		return GoType{}, errors.Newf("unsupported primitive type %q at %s",
			ident.Name, g.file.Position(ident))
	}

	return GoType{Kind: KindNamed, Name: ident.Name}, nil
}

func (g *gatherer) selectorType(sel *ast.SelectorExpr) (GoType, error) {
	pkg, ok := sel.X.(*ast.Ident)
	if !ok {
		return GoType{}, errors.Newf("unsupported qualified type at %s: %s",
			g.file.Position(sel), g.file.Snippet(sel))
	}

	qualified := pkg.Name + "." + sel.Sel.Name
	switch qualified {
	case "time.Time":
		return GoType{Kind: KindTime}, nil
	case "json.RawMessage":
		return GoType{Kind: KindRawJSON}, nil
	default:
		return GoType{}, errors.Newf("unsupported package-qualified identifier %q at %s",
			qualified, g.file.Position(sel))
	}
}

// commentLines flattens comment groups into cleaned lines, in order.
func commentLines(groups ...*ast.CommentGroup) []string {
	var lines []string
	for _, group := range groups {
		if group == nil {
			continue
		}
		for _, c := range group.List {
			if text := cleanComment(c.Text); text != "" {
				lines = append(lines, text)
			}
		}
	}
	return lines
}
