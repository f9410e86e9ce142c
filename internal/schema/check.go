// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package schema

import (
	"github.com/playbymail/sdlc/internal/ast"
	"github.com/playbymail/sdlc/internal/diag"
)

// CheckFields runs the schema validator's per-node checks (§4.5) against one
// field bag: missing required fields (E210), unknown fields (E211), value
// kind mismatches (E220), and boolean-identifier coercion failures (E221).
// ignore lists field names the caller has already consumed structurally
// (a constraint's "type", a motion's "target"/"type") and that should not
// be checked against the registry at all.
func CheckFields(file string, spec TypeSpec, fields *ast.Fields, ignore map[string]bool, nodeSpan diag.Span) []diag.Diagnostic {
	var diags []diag.Diagnostic

	seen := make(map[string]bool)
	for _, f := range fields.List() {
		if ignore[f.Name] {
			continue
		}
		seen[f.Name] = true
		fspec, ok := spec.Field(f.Name)
		if !ok {
			diags = append(diags, diag.New(diag.ErrUnknownField, file, f.NameSpan,
				"unknown field %q for type %q", f.Name, spec.Name))
			continue
		}
		if d, ok := checkFieldKind(file, fspec, f.Value); !ok {
			diags = append(diags, d)
		}
	}

	for _, fspec := range spec.Fields {
		if fspec.Required && !seen[fspec.Name] {
			diags = append(diags, diag.New(diag.ErrMissingField, file, nodeSpan,
				"missing required field %q for type %q", fspec.Name, spec.Name).
				WithHelp("add %q: <%s>", fspec.Name, fspec.Type))
		}
	}
	return diags
}

// checkFieldKind validates one field value against its declared type. The
// bool result is true when the field is valid; the Diagnostic is only
// meaningful when it is false.
func checkFieldKind(file string, fspec FieldSpec, v ast.Value) (diag.Diagnostic, bool) {
	switch fspec.Type {
	case TypeNumber:
		if v.Kind != ast.KindNumber {
			return diag.New(diag.ErrFieldKindMismatch, file, v.Span,
				"field %q expects a number, found %s", fspec.Name, v.Kind), false
		}
	case TypeString:
		if v.Kind != ast.KindString {
			return diag.New(diag.ErrFieldKindMismatch, file, v.Span,
				"field %q expects a string, found %s", fspec.Name, v.Kind), false
		}
	case TypeIdentifier:
		if v.Kind != ast.KindIdentifier {
			return diag.New(diag.ErrFieldKindMismatch, file, v.Span,
				"field %q expects an identifier, found %s", fspec.Name, v.Kind), false
		}
	case TypeVector3:
		if v.Kind != ast.KindVector3 {
			return diag.New(diag.ErrFieldKindMismatch, file, v.Span,
				"field %q expects a vector3, found %s", fspec.Name, v.Kind), false
		}
	case TypeBoolean:
		if v.Kind != ast.KindIdentifier || (v.Identifier != "true" && v.Identifier != "false") {
			return diag.New(diag.ErrBadBooleanIdent, file, v.Span,
				"field %q expects 'true' or 'false', found %s", fspec.Name, describeValue(v)), false
		}
	case TypeEnum:
		if v.Kind != ast.KindIdentifier || !contains(fspec.EnumValues, v.Identifier) {
			return diag.New(diag.ErrFieldKindMismatch, file, v.Span,
				"field %q expects one of %v, found %s", fspec.Name, fspec.EnumValues, describeValue(v)), false
		}
	}
	return diag.Diagnostic{}, true
}

// CoerceBoolean returns the Go bool a schema-validated Boolean field holds.
// It must only be called after CheckFields has confirmed the field's kind.
func CoerceBoolean(v ast.Value) bool {
	return v.Identifier == "true"
}

func contains(xs []string, s string) bool {
	for _, x := range xs {
		if x == s {
			return true
		}
	}
	return false
}

func describeValue(v ast.Value) string {
	switch v.Kind {
	case ast.KindIdentifier:
		return "identifier " + v.Identifier
	default:
		return v.Kind.String()
	}
}
