// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package validate

import (
	"github.com/playbymail/sdlc/internal/ast"
	"github.com/playbymail/sdlc/internal/diag"
	"github.com/playbymail/sdlc/internal/library"
	"github.com/playbymail/sdlc/internal/schema"
)

// Library runs the library validator (pass 5, §4.8) last, after schema and
// reference diagnostics for well-known types have already been collected.
// It resolves library_imports against the registry (E500) and, for every
// type name used anywhere in the file, confirms an imported library
// provides it (E510). A type name absent from both the schema registry and
// every imported library additionally escalates to E200.
func Library(file string, schemaReg *schema.Registry, libReg *library.Registry, f *ast.File) []diag.Diagnostic {
	c := diag.NewCollector()

	imported, importDiags := library.CheckImports(file, libReg, f.LibraryImports)
	addAll(c, importDiags)

	unknown := make(map[string]bool)
	for _, u := range UnknownTypes(schemaReg, f) {
		unknown[u.TypeName] = true
	}

	for _, usage := range AllTypeUsages(f) {
		if d := library.CheckTypeUsage(file, libReg, imported, usage.TypeName, usage.Span); d != nil {
			c.Add(*d)
			if unknown[usage.TypeName] {
				c.Addf(diag.ErrUnknownType, file, usage.Span,
					"type %q is not a known schema type and is not provided by any imported library",
					usage.TypeName)
			}
		}
	}
	return c.Diagnostics()
}
