// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package validate_test

import (
	"testing"

	"github.com/playbymail/sdlc/internal/diag"
	"github.com/playbymail/sdlc/internal/library"
	"github.com/playbymail/sdlc/internal/parser"
	"github.com/playbymail/sdlc/internal/schema"
	"github.com/playbymail/sdlc/internal/validate"
)

const minimalScene = `
scene {
	name: "T"
	version: 1
	ir_version: "0.1.0"
	unit_system: "SI"
}
library_imports {
	math: "core_mechanics"
}
`

func runValidate(t *testing.T, src string) []diag.Diagnostic {
	t.Helper()
	f, d := parser.Parse("t.sdl", []byte(src))
	if d != nil {
		t.Fatalf("unexpected parse diagnostic: %v", d)
	}
	return validate.Run("t.sdl", schema.Default(), library.Default(), f)
}

func hasCode(diags []diag.Diagnostic, code diag.Code) bool {
	for _, d := range diags {
		if d.Code == code {
			return true
		}
	}
	return false
}

func TestValidateMinimalSceneSucceeds(t *testing.T) {
	diags := runValidate(t, minimalScene)
	if len(diags) != 0 {
		t.Fatalf("want no diagnostics, got %+v", diags)
	}
}

func TestValidateBadSceneVersion(t *testing.T) {
	src := `
scene {
	name: "T"
	version: 0
	ir_version: "0.1.0"
	unit_system: "SI"
}
library_imports { math: "core_mechanics" }
`
	diags := runValidate(t, src)
	if !hasCode(diags, diag.ErrBadSceneVersion) {
		t.Fatalf("want E120, got %+v", diags)
	}
}

func TestValidateBadUnitSystem(t *testing.T) {
	src := `
scene {
	name: "T"
	version: 1
	ir_version: "0.1.0"
	unit_system: "Metric"
}
library_imports { math: "core_mechanics" }
`
	diags := runValidate(t, src)
	if !hasCode(diags, diag.ErrBadUnitSystem) {
		t.Fatalf("want E122, got %+v", diags)
	}
}

func TestValidateDuplicateEntityID(t *testing.T) {
	src := minimalScene + `
entity cube1 { kind: solid components {} }
entity cube1 { kind: solid components {} }
`
	diags := runValidate(t, src)
	if !hasCode(diags, diag.ErrDuplicateID) {
		t.Fatalf("want E130, got %+v", diags)
	}
}

func TestValidateUndefinedMotionInEvent(t *testing.T) {
	src := minimalScene + `
entity cube1 { kind: solid components {} }
motion spin {
	target: cube1
	type: rotation
	axis: [0, 1, 0]
	speed: 1.5708
}
timeline t1 {
	event { motion: spiin start: 0 duration: 10 }
}
`
	diags := runValidate(t, src)
	if !hasCode(diags, diag.ErrUndefinedMotion) {
		t.Fatalf("want E301, got %+v", diags)
	}
}

func TestValidateGearRelationCycle(t *testing.T) {
	src := minimalScene + `
entity a { kind: solid components {} }
entity b { kind: solid components {} }
constraint c1 { type: gear_relation driver: a driven: b }
constraint c2 { type: gear_relation driver: b driven: a }
`
	diags := runValidate(t, src)
	if !hasCode(diags, diag.ErrDependencyCycle) {
		t.Fatalf("want E310, got %+v", diags)
	}
}

func TestValidateTimelineOverlap(t *testing.T) {
	src := minimalScene + `
entity cube1 { kind: solid components {} }
motion spin {
	target: cube1
	type: rotation
	axis: [0, 1, 0]
	speed: 1.0
}
timeline t1 {
	event { motion: spin start: 0 duration: 2 }
	event { motion: spin start: 1 duration: 1 }
}
`
	diags := runValidate(t, src)
	if !hasCode(diags, diag.ErrTimelineOverlap) {
		t.Fatalf("want E320, got %+v", diags)
	}
}

func TestValidateNonUnitAxis(t *testing.T) {
	src := minimalScene + `
entity cube1 { kind: solid components {} }
motion spin {
	target: cube1
	type: rotation
	axis: [1, 1, 0]
	speed: 1.0
}
`
	diags := runValidate(t, src)
	if !hasCode(diags, diag.ErrAxisNotUnit) {
		t.Fatalf("want E400, got %+v", diags)
	}
}

func TestValidateMassBounds(t *testing.T) {
	for _, tc := range []struct {
		mass string
		want diag.Code
	}{
		{"0", diag.ErrMassNonPositive},
		{"-1", diag.ErrMassNonPositive},
		{"1e7", diag.ErrMassOutOfRange},
	} {
		src := minimalScene + `
entity cube1 {
	kind: solid
	components {
		physical { mass: ` + tc.mass + ` rigid: true }
	}
}
`
		diags := runValidate(t, src)
		if !hasCode(diags, tc.want) {
			t.Errorf("mass=%s: want %s, got %+v", tc.mass, tc.want, diags)
		}
	}
}

func TestValidateUnknownLibrary(t *testing.T) {
	src := `
scene {
	name: "T"
	version: 1
	ir_version: "0.1.0"
	unit_system: "SI"
}
library_imports { math: "core_mechanic" }
`
	diags := runValidate(t, src)
	if !hasCode(diags, diag.ErrUnknownLibrary) {
		t.Fatalf("want E500, got %+v", diags)
	}
}

func TestValidateTypeNotProvided(t *testing.T) {
	src := `
scene {
	name: "T"
	version: 1
	ir_version: "0.1.0"
	unit_system: "SI"
}
library_imports { solids: "basic_solids" }
entity cube1 {
	kind: solid
	components {
		physical { mass: 1 rigid: true }
	}
}
`
	diags := runValidate(t, src)
	if !hasCode(diags, diag.ErrTypeNotProvided) {
		t.Fatalf("want E510, got %+v", diags)
	}
}
