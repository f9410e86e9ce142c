// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package validate

import (
	"github.com/playbymail/sdlc/internal/ast"
	"github.com/playbymail/sdlc/internal/diag"
	"github.com/playbymail/sdlc/internal/schema"
)

var constraintIgnore = map[string]bool{"type": true}
var motionIgnore = map[string]bool{"target": true, "type": true}

// Schema runs the schema validator (pass 2, §4.5) against every
// component/constraint/motion node in the AST. A type name unknown to the
// registry is skipped here and never reported by this pass; the library
// pass (Library) reports E200 for such a type when no imported library
// provides it either.
func Schema(file string, reg *schema.Registry, f *ast.File) []diag.Diagnostic {
	c := diag.NewCollector()

	for _, e := range f.Entities {
		for _, comp := range e.Components.List() {
			spec, ok := reg.Components[comp.Type]
			if !ok {
				continue // deferred to the library pass; see UnknownTypes
			}
			addAll(c, schema.CheckFields(file, spec, comp.Fields, nil, comp.Span))
		}
	}
	for _, con := range f.Constraints {
		spec, ok := reg.Constraints[con.Type]
		if !ok {
			continue
		}
		addAll(c, schema.CheckFields(file, spec, con.Fields, constraintIgnore, con.Span))
	}
	for _, m := range f.Motions {
		spec, ok := reg.Motions[m.Type]
		if !ok {
			continue
		}
		addAll(c, schema.CheckFields(file, spec, m.Fields, motionIgnore, m.Span))
	}
	return c.Diagnostics()
}

// UnknownTypes returns every component/constraint/motion type name in f
// that the schema registry does not recognize, along with its usage span.
// The library pass uses this to decide whether a type that fails the
// library-provision check (E510) is also truly unknown, absent from the
// registry as well, and so additionally reported as E200.
type TypeUsage struct {
	TypeName string
	Span     diag.Span
}

func UnknownTypes(reg *schema.Registry, f *ast.File) []TypeUsage {
	var unknown []TypeUsage
	for _, e := range f.Entities {
		for _, c := range e.Components.List() {
			if _, ok := reg.Components[c.Type]; !ok {
				unknown = append(unknown, TypeUsage{c.Type, c.TypeSpan})
			}
		}
	}
	for _, c := range f.Constraints {
		if _, ok := reg.Constraints[c.Type]; !ok {
			unknown = append(unknown, TypeUsage{c.Type, c.TypeSpan})
		}
	}
	for _, m := range f.Motions {
		if _, ok := reg.Motions[m.Type]; !ok {
			unknown = append(unknown, TypeUsage{m.Type, m.TypeSpan})
		}
	}
	return unknown
}

// AllTypeUsages returns every component/constraint/motion type usage in f,
// known or not. The library pass checks each against the imported
// libraries' provided sets (E510), regardless of registry membership.
func AllTypeUsages(f *ast.File) []TypeUsage {
	var usages []TypeUsage
	for _, e := range f.Entities {
		for _, c := range e.Components.List() {
			usages = append(usages, TypeUsage{c.Type, c.TypeSpan})
		}
	}
	for _, c := range f.Constraints {
		usages = append(usages, TypeUsage{c.Type, c.TypeSpan})
	}
	for _, m := range f.Motions {
		usages = append(usages, TypeUsage{m.Type, m.TypeSpan})
	}
	return usages
}
