// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package validate

import (
	"math"
	"strconv"
	"strings"

	"github.com/playbymail/sdlc/internal/ast"
	"github.com/playbymail/sdlc/internal/diag"
)

// Syntax runs the syntax validator (pass 1, §4.4): scene field range/format
// checks, duplicate-id checks, duplicate-component checks, finite-number
// checks, motion axis/speed checks, and timeline event range checks. It
// collects every violation it finds rather than stopping at the first.
func Syntax(file string, f *ast.File) []diag.Diagnostic {
	c := diag.NewCollector()

	addAll(c, checkSceneFields(file, f.Scene))
	addAll(c, checkDuplicateIDs(file, "entity", entityIDs(f)))
	addAll(c, checkDuplicateIDs(file, "constraint", constraintIDs(f)))
	addAll(c, checkDuplicateIDs(file, "motion", motionIDs(f)))
	addAll(c, checkDuplicateIDs(file, "timeline", timelineIDs(f)))

	for _, e := range f.Entities {
		addAll(c, checkDuplicateComponents(file, e))
		for _, comp := range e.Components.List() {
			addAll(c, checkFiniteFields(file, comp.Fields))
		}
	}
	for _, con := range f.Constraints {
		addAll(c, checkFiniteFields(file, con.Fields))
	}
	for _, m := range f.Motions {
		addAll(c, checkFiniteFields(file, m.Fields))
		addAll(c, checkMotionAxis(file, m))
	}
	for _, tl := range f.Timelines {
		for _, ev := range tl.Events {
			addAll(c, checkEventRange(file, ev))
		}
	}
	return c.Diagnostics()
}

// addAll feeds a helper's batch of findings through the pass's Collector,
// the same shape every pass in this package uses to gather its own
// diagnostics (§4.1's ErrorCollector) before Run sorts and concatenates
// them.
func addAll(c *diag.Collector, ds []diag.Diagnostic) {
	for _, d := range ds {
		c.Add(d)
	}
}

func checkSceneFields(file string, s *ast.Scene) []diag.Diagnostic {
	var diags []diag.Diagnostic
	if s.Version < 1 {
		diags = append(diags, diag.New(diag.ErrBadSceneVersion, file, s.VersionSpan,
			"scene.version must be >= 1, found %d", s.Version))
	}
	if !isSemverShape(s.IrVersion) {
		diags = append(diags, diag.New(diag.ErrBadIrVersion, file, s.IrVersionSpan,
			"ir_version must be MAJOR.MINOR.PATCH with integer parts, found %q", s.IrVersion))
	}
	if s.UnitSystem != "SI" && s.UnitSystem != "Imperial" {
		diags = append(diags, diag.New(diag.ErrBadUnitSystem, file, s.UnitSystemSpan,
			`unit_system must be "SI" or "Imperial", found %q`, s.UnitSystem))
	}
	return diags
}

func isSemverShape(v string) bool {
	parts := strings.Split(v, ".")
	if len(parts) != 3 {
		return false
	}
	for _, p := range parts {
		if p == "" {
			return false
		}
		if _, err := strconv.Atoi(p); err != nil {
			return false
		}
	}
	return true
}

type idSpan struct {
	id   string
	span diag.Span
}

func entityIDs(f *ast.File) []idSpan {
	out := make([]idSpan, len(f.Entities))
	for i, e := range f.Entities {
		out[i] = idSpan{e.ID, e.IDSpan}
	}
	return out
}

func constraintIDs(f *ast.File) []idSpan {
	out := make([]idSpan, len(f.Constraints))
	for i, c := range f.Constraints {
		out[i] = idSpan{c.ID, c.IDSpan}
	}
	return out
}

func motionIDs(f *ast.File) []idSpan {
	out := make([]idSpan, len(f.Motions))
	for i, m := range f.Motions {
		out[i] = idSpan{m.ID, m.IDSpan}
	}
	return out
}

func timelineIDs(f *ast.File) []idSpan {
	out := make([]idSpan, len(f.Timelines))
	for i, t := range f.Timelines {
		out[i] = idSpan{t.ID, t.IDSpan}
	}
	return out
}

// checkDuplicateIDs emits one E130 per redefinition, pointing at the later
// occurrence and naming the first definition's line.
func checkDuplicateIDs(file, kind string, ids []idSpan) []diag.Diagnostic {
	var diags []diag.Diagnostic
	first := make(map[string]diag.Span)
	for _, is := range ids {
		if prev, ok := first[is.id]; ok {
			diags = append(diags, diag.New(diag.ErrDuplicateID, file, is.span,
				"duplicate %s id %q, first defined at line %d", kind, is.id, prev.Line))
			continue
		}
		first[is.id] = is.span
	}
	return diags
}

func checkDuplicateComponents(file string, e *ast.Entity) []diag.Diagnostic {
	var diags []diag.Diagnostic
	first := make(map[string]diag.Span)
	for _, c := range e.Components.List() {
		if prev, ok := first[c.Type]; ok {
			diags = append(diags, diag.New(diag.ErrDuplicateComponent, file, c.TypeSpan,
				"duplicate component %q on entity %q, first defined at line %d", c.Type, e.ID, prev.Line))
			continue
		}
		first[c.Type] = c.TypeSpan
	}
	return diags
}

// checkFiniteFields rejects NaN/+-Inf anywhere a number appears: directly,
// or as one of a vector's three components (E140).
func checkFiniteFields(file string, fields *ast.Fields) []diag.Diagnostic {
	var diags []diag.Diagnostic
	for _, f := range fields.List() {
		switch f.Value.Kind {
		case ast.KindNumber:
			if !isFinite(f.Value.Number) {
				diags = append(diags, diag.New(diag.ErrNonFiniteNumber, file, f.Value.Span,
					"field %q must be a finite number, found %v", f.Name, f.Value.Number))
			}
		case ast.KindVector3:
			for i, c := range f.Value.Vector {
				if !isFinite(c) {
					diags = append(diags, diag.New(diag.ErrNonFiniteNumber, file, f.Value.Span,
						"field %q component %d must be finite, found %v", f.Name, i, c))
				}
			}
		}
	}
	return diags
}

func isFinite(n float64) bool {
	return !math.IsNaN(n) && !math.IsInf(n, 0)
}

// checkMotionAxis enforces that a rotation motion's axis field, when
// present, is a vector (E141). Numeric finiteness of speed/axis components
// is already covered by checkFiniteFields; this check is purely structural.
func checkMotionAxis(file string, m *ast.Motion) []diag.Diagnostic {
	if m.Type != "rotation" {
		return nil
	}
	axis, ok := m.Fields.Get("axis")
	if !ok {
		return nil
	}
	if axis.Value.Kind != ast.KindVector3 {
		return []diag.Diagnostic{diag.New(diag.ErrMotionFieldInvalid, file, axis.Value.Span,
			"rotation motion %q: axis must be a vector3, found %s", m.ID, axis.Value.Kind)}
	}
	return nil
}

func checkEventRange(file string, ev *ast.Event) []diag.Diagnostic {
	var diags []diag.Diagnostic
	if ev.Duration.Number <= 0 {
		diags = append(diags, diag.New(diag.ErrNonPositiveDuration, file, ev.Duration.Span,
			"event duration must be > 0, found %v", ev.Duration.Number))
	}
	if ev.Start.Number < 0 {
		diags = append(diags, diag.New(diag.ErrNegativeStart, file, ev.Start.Span,
			"event start must be >= 0, found %v", ev.Start.Number))
	}
	return diags
}
