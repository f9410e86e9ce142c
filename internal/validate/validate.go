// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package validate

import (
	"github.com/playbymail/sdlc/internal/ast"
	"github.com/playbymail/sdlc/internal/diag"
	"github.com/playbymail/sdlc/internal/library"
	"github.com/playbymail/sdlc/internal/schema"
)

// Run executes all five passes over f in the fixed order the spec
// requires (§5's ordering guarantee) and returns every diagnostic they
// produced, sorted by span within each pass's own contribution. It does
// not stop early: a failing syntax pass does not prevent schema, reference,
// unit, or library diagnostics from also being collected, since validators
// only read the AST and never mutate it.
func Run(file string, schemaReg *schema.Registry, libReg *library.Registry, f *ast.File) []diag.Diagnostic {
	var all []diag.Diagnostic

	syntaxDiags := Syntax(file, f)
	diag.SortBySpan(syntaxDiags)
	all = append(all, syntaxDiags...)

	schemaDiags := Schema(file, schemaReg, f)
	diag.SortBySpan(schemaDiags)
	all = append(all, schemaDiags...)

	referenceDiags := Reference(file, f)
	diag.SortBySpan(referenceDiags)
	all = append(all, referenceDiags...)

	unitDiags := Unit(file, f.Scene.UnitSystem, f)
	diag.SortBySpan(unitDiags)
	all = append(all, unitDiags...)

	libraryDiags := Library(file, schemaReg, libReg, f)
	diag.SortBySpan(libraryDiags)
	all = append(all, libraryDiags...)

	return all
}
