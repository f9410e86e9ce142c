// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package library_test

import (
	"testing"

	"github.com/playbymail/sdlc/internal/ast"
	"github.com/playbymail/sdlc/internal/diag"
	"github.com/playbymail/sdlc/internal/library"
)

func TestCheckImportsUnknownLibrary(t *testing.T) {
	reg := library.Default()
	imports := ast.NewLibraryImports()
	imports.Append(ast.LibraryImport{Alias: "math", Library: "core_mechanic"})
	resolved, diags := library.CheckImports("t.sdl", reg, imports)
	if len(resolved) != 0 {
		t.Fatalf("want no resolved libraries, got %+v", resolved)
	}
	if len(diags) != 1 || diags[0].Code != diag.ErrUnknownLibrary {
		t.Fatalf("want 1 E500, got %+v", diags)
	}
	if diags[0].Help == "" {
		t.Error("want a suggestion in Help for a one-letter typo")
	}
}

func TestCheckImportsKnownLibrary(t *testing.T) {
	reg := library.Default()
	imports := ast.NewLibraryImports()
	imports.Append(ast.LibraryImport{Alias: "math", Library: "core_mechanics"})
	resolved, diags := library.CheckImports("t.sdl", reg, imports)
	if len(diags) != 0 {
		t.Fatalf("want no diagnostics, got %+v", diags)
	}
	if len(resolved) != 1 || resolved[0].Name != "core_mechanics" {
		t.Fatalf("want core_mechanics resolved, got %+v", resolved)
	}
}

func TestCheckTypeUsageProvided(t *testing.T) {
	reg := library.Default()
	lib, _ := reg.Get("core_mechanics")
	d := library.CheckTypeUsage("t.sdl", reg, []library.Library{lib}, "transform", diag.Span{})
	if d != nil {
		t.Fatalf("want no diagnostic, got %v", d)
	}
}

func TestCheckTypeUsageNotProvided(t *testing.T) {
	reg := library.Default()
	lib, _ := reg.Get("basic_solids")
	d := library.CheckTypeUsage("t.sdl", reg, []library.Library{lib}, "physical", diag.Span{})
	if d == nil {
		t.Fatal("want a diagnostic")
	}
	if d.Code != diag.ErrTypeNotProvided {
		t.Errorf("want %s, got %s", diag.ErrTypeNotProvided, d.Code)
	}
	if d.Help == "" {
		t.Error("want Help to list a providing library")
	}
}

func TestSuggestOrdersByDistance(t *testing.T) {
	reg := library.Default()
	got := reg.Suggest("gear_system")
	if len(got) == 0 || got[0] != "gear_systems" {
		t.Fatalf("want gear_systems as closest match, got %+v", got)
	}
}
