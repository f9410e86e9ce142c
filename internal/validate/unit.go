// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package validate

import (
	"math"

	"github.com/playbymail/sdlc/internal/ast"
	"github.com/playbymail/sdlc/internal/diag"
)

// axisTolerance is how far a rotation axis's magnitude may stray from 1
// before it is rejected as non-unit (E400).
const axisTolerance = 1e-6

// kgToLb converts the SI mass ceiling to its Imperial equivalent.
const kgToLb = 2.20462

// maxMassSI is the upper mass bound under SI (E411 beyond this).
const maxMassSI = 1e6

// degreeSuspectThreshold is 4*pi; transform.rotation components beyond this
// magnitude likely mean the author used degrees instead of radians (W420).
const degreeSuspectThreshold = 4 * math.Pi

// Unit runs the unit validator (pass 4, §4.7): rotation axis normalization,
// mass range checks (system-dependent), degree-vs-radian warnings, and a
// last-chance finite-number sweep.
func Unit(file string, unitSystem string, f *ast.File) []diag.Diagnostic {
	c := diag.NewCollector()

	for _, m := range f.Motions {
		if m.Type != "rotation" {
			continue
		}
		if axis, ok := m.Fields.Get("axis"); ok && axis.Value.Kind == ast.KindVector3 {
			addAll(c, checkUnitAxis(file, axis.Value))
		}
	}

	for _, e := range f.Entities {
		if physical, ok := e.Components.Get("physical"); ok {
			if mass, ok := physical.Fields.Get("mass"); ok && mass.Value.Kind == ast.KindNumber {
				addAll(c, checkMassRange(file, unitSystem, mass.Value))
			}
		}
		if transform, ok := e.Components.Get("transform"); ok {
			if rot, ok := transform.Fields.Get("rotation"); ok && rot.Value.Kind == ast.KindVector3 {
				addAll(c, checkDegreesSuspected(file, rot.Value))
			}
		}
	}

	addAll(c, lateFiniteSweep(file, f))
	return c.Diagnostics()
}

func checkUnitAxis(file string, v ast.Value) []diag.Diagnostic {
	mag := math.Sqrt(v.Vector[0]*v.Vector[0] + v.Vector[1]*v.Vector[1] + v.Vector[2]*v.Vector[2])
	if math.Abs(mag-1) > axisTolerance {
		return []diag.Diagnostic{diag.New(diag.ErrAxisNotUnit, file, v.Span,
			"rotation axis must be a unit vector, magnitude is %v", mag)}
	}
	return nil
}

func checkMassRange(file, unitSystem string, v ast.Value) []diag.Diagnostic {
	if v.Number <= 0 {
		return []diag.Diagnostic{diag.New(diag.ErrMassNonPositive, file, v.Span,
			"mass must be strictly positive, found %v", v.Number)}
	}
	max := maxMassSI
	if unitSystem == "Imperial" {
		max = maxMassSI * kgToLb
	}
	if v.Number > max {
		return []diag.Diagnostic{diag.New(diag.ErrMassOutOfRange, file, v.Span,
			"mass %v exceeds the %s maximum of %v", v.Number, unitSystem, max)}
	}
	return nil
}

func checkDegreesSuspected(file string, v ast.Value) []diag.Diagnostic {
	for _, c := range v.Vector {
		if math.Abs(c) > degreeSuspectThreshold {
			return []diag.Diagnostic{diag.New(diag.WarnDegreesSuspected, file, v.Span,
				"rotation component %v exceeds 4*pi radians; did you mean degrees?", c)}
		}
	}
	return nil
}

// lateFiniteSweep is the unit pass's last-chance finite-number check
// (E430): it walks every field in every component/constraint/motion/event
// once more, after the other passes have already run their own targeted
// finite checks, as the spec's final backstop before lowering.
func lateFiniteSweep(file string, f *ast.File) []diag.Diagnostic {
	var diags []diag.Diagnostic
	check := func(fields *ast.Fields) {
		for _, field := range fields.List() {
			switch field.Value.Kind {
			case ast.KindNumber:
				if !isFinite(field.Value.Number) {
					diags = append(diags, diag.New(diag.ErrNonFiniteLate, file, field.Value.Span,
						"field %q must be finite", field.Name))
				}
			case ast.KindVector3:
				for _, c := range field.Value.Vector {
					if !isFinite(c) {
						diags = append(diags, diag.New(diag.ErrNonFiniteLate, file, field.Value.Span,
							"field %q must be finite", field.Name))
						break
					}
				}
			}
		}
	}
	for _, e := range f.Entities {
		for _, c := range e.Components.List() {
			check(c.Fields)
		}
	}
	for _, c := range f.Constraints {
		check(c.Fields)
	}
	for _, m := range f.Motions {
		check(m.Fields)
	}
	for _, tl := range f.Timelines {
		for _, ev := range tl.Events {
			if !isFinite(ev.Start.Number) || !isFinite(ev.Duration.Number) {
				diags = append(diags, diag.New(diag.ErrNonFiniteLate, file, ev.Span,
					"event start/duration must be finite"))
			}
		}
	}
	return diags
}
