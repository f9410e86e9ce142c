// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package library

import (
	"strings"

	"github.com/playbymail/sdlc/internal/ast"
	"github.com/playbymail/sdlc/internal/diag"
)

// CheckImports resolves each library_imports entry against the registry,
// emitting E500 for any import naming an unknown library. It returns the
// set of libraries actually imported (by library name, not alias) so
// CheckTypeUsage can look up providers.
func CheckImports(file string, reg *Registry, imports *ast.LibraryImports) ([]Library, []diag.Diagnostic) {
	var resolved []Library
	var diags []diag.Diagnostic
	for _, imp := range imports.List() {
		lib, ok := reg.Get(imp.Library)
		if !ok {
			d := diag.New(diag.ErrUnknownLibrary, file, imp.LibrarySpan,
				"unknown library %q", imp.Library)
			if suggestions := reg.Suggest(imp.Library); len(suggestions) > 0 {
				d = d.WithHelp("did you mean %s?", strings.Join(suggestions, ", "))
			}
			diags = append(diags, d)
			continue
		}
		resolved = append(resolved, lib)
	}
	return resolved, diags
}

// CheckTypeUsage confirms typeName is provided by at least one of the
// imported libraries (E510). usageSpan is where the type name was used
// (an entity's component type span, a constraint's type span, a motion's
// type span).
func CheckTypeUsage(file string, reg *Registry, imported []Library, typeName string, usageSpan diag.Span) *diag.Diagnostic {
	for _, lib := range imported {
		if lib.Provides[typeName] {
			return nil
		}
	}
	d := diag.New(diag.ErrTypeNotProvided, file, usageSpan,
		"type %q is not provided by any imported library", typeName)
	if providers := reg.Providers(typeName); len(providers) > 0 {
		d = d.WithHelp("import one of: %s", strings.Join(providers, ", "))
	}
	return &d
}
