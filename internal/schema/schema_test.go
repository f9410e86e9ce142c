// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package schema_test

import (
	"testing"

	"github.com/playbymail/sdlc/internal/ast"
	"github.com/playbymail/sdlc/internal/diag"
	"github.com/playbymail/sdlc/internal/schema"
)

func TestCheckFieldsMissingRequired(t *testing.T) {
	reg := schema.Default()
	spec := reg.Components["transform"]
	fields := ast.NewFields()
	fields.Append(ast.Field{Name: "position", Value: ast.Vector3Value([3]float64{0, 0, 0}, diag.Span{})})
	diags := schema.CheckFields("t.sdl", spec, fields, nil, diag.Span{Line: 1, Col: 1})
	var gotMissing int
	for _, d := range diags {
		if d.Code == diag.ErrMissingField {
			gotMissing++
		}
	}
	if gotMissing != 2 {
		t.Fatalf("want 2 missing-field diagnostics (rotation, scale), got %d: %+v", gotMissing, diags)
	}
}

func TestCheckFieldsUnknownField(t *testing.T) {
	reg := schema.Default()
	spec := reg.Components["geometry"]
	fields := ast.NewFields()
	fields.Append(ast.Field{Name: "primitive", Value: ast.IdentifierValue("cube", diag.Span{})})
	fields.Append(ast.Field{Name: "bogus", Value: ast.NumberValue(1, diag.Span{})})
	diags := schema.CheckFields("t.sdl", spec, fields, nil, diag.Span{})
	if len(diags) != 1 || diags[0].Code != diag.ErrUnknownField {
		t.Fatalf("want 1 E211, got %+v", diags)
	}
}

func TestCheckFieldsKindMismatch(t *testing.T) {
	reg := schema.Default()
	spec := reg.Components["physical"]
	fields := ast.NewFields()
	fields.Append(ast.Field{Name: "mass", Value: ast.StringValue("heavy", diag.Span{})})
	fields.Append(ast.Field{Name: "rigid", Value: ast.IdentifierValue("true", diag.Span{})})
	diags := schema.CheckFields("t.sdl", spec, fields, nil, diag.Span{})
	if len(diags) != 1 || diags[0].Code != diag.ErrFieldKindMismatch {
		t.Fatalf("want 1 E220 for mass, got %+v", diags)
	}
}

func TestCheckFieldsBadBoolean(t *testing.T) {
	reg := schema.Default()
	spec := reg.Components["physical"]
	fields := ast.NewFields()
	fields.Append(ast.Field{Name: "mass", Value: ast.NumberValue(2, diag.Span{})})
	fields.Append(ast.Field{Name: "rigid", Value: ast.IdentifierValue("maybe", diag.Span{})})
	diags := schema.CheckFields("t.sdl", spec, fields, nil, diag.Span{})
	if len(diags) != 1 || diags[0].Code != diag.ErrBadBooleanIdent {
		t.Fatalf("want 1 E221, got %+v", diags)
	}
}

func TestCheckFieldsEnumMismatch(t *testing.T) {
	reg := schema.Default()
	spec := reg.Components["geometry"]
	fields := ast.NewFields()
	fields.Append(ast.Field{Name: "primitive", Value: ast.IdentifierValue("torus", diag.Span{})})
	diags := schema.CheckFields("t.sdl", spec, fields, nil, diag.Span{})
	if len(diags) != 1 || diags[0].Code != diag.ErrFieldKindMismatch {
		t.Fatalf("want 1 E220 for bad enum value, got %+v", diags)
	}
}

func TestCheckFieldsIgnoresStructuralFields(t *testing.T) {
	reg := schema.Default()
	spec := reg.Constraints["fixed_joint"]
	fields := ast.NewFields()
	fields.Append(ast.Field{Name: "type", Value: ast.IdentifierValue("fixed_joint", diag.Span{})})
	fields.Append(ast.Field{Name: "parent", Value: ast.IdentifierValue("a", diag.Span{})})
	fields.Append(ast.Field{Name: "child", Value: ast.IdentifierValue("b", diag.Span{})})
	diags := schema.CheckFields("t.sdl", spec, fields, map[string]bool{"type": true}, diag.Span{})
	if len(diags) != 0 {
		t.Fatalf("want no diagnostics, got %+v", diags)
	}
}
