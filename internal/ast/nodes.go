// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package ast

import "github.com/playbymail/sdlc/internal/diag"

// File is the AST root: one scene block, one library_imports block, and the
// four ordered item lists, in the mandatory grammar order (§4.3).
type File struct {
	Scene          *Scene
	LibraryImports *LibraryImports
	Entities       []*Entity
	Constraints    []*Constraint
	Motions        []*Motion
	Timelines      []*Timeline
	Span           diag.Span
}

// Scene holds the four required top-level fields. The parser itself checks
// their value kinds (§4.3); Version/IrVersion/UnitSystem are also re-checked
// for range/format by the syntax validator (§4.4, E120-E122).
type Scene struct {
	Name       string
	NameSpan   diag.Span
	Version      int
	VersionSpan  diag.Span
	IrVersion     string
	IrVersionSpan diag.Span
	UnitSystem    string
	UnitSystemSpan diag.Span
	Span diag.Span
}

// Entity is a named object with a kind and an ordered set of components.
type Entity struct {
	ID     string
	IDSpan diag.Span
	Kind   string
	Components *Components
	Span   diag.Span
}

// Component is a typed, named field bundle attached to an Entity.
type Component struct {
	Type     string
	TypeSpan diag.Span
	Fields   *Fields
	Span     diag.Span
}

// Constraint is a typed relation between entities.
type Constraint struct {
	ID       string
	IDSpan   diag.Span
	Type     string
	TypeSpan diag.Span
	Fields   *Fields
	Span     diag.Span
}

// Motion is a typed rate-based behaviour over one entity. Target and Type
// are copied out of Fields at parse time (either order is accepted per
// §4.3); Fields still holds every field, target and type included, and
// lowering groups all but those two into IR parameters (§9 open question #1).
type Motion struct {
	ID         string
	IDSpan     diag.Span
	Target     string
	TargetSpan diag.Span
	Type       string
	TypeSpan   diag.Span
	Fields     *Fields
	Span       diag.Span
}

// Timeline is an ordered list of scheduling events.
type Timeline struct {
	ID     string
	IDSpan diag.Span
	Events []*Event
	Span   diag.Span
}

// Event schedules one motion's playback window.
type Event struct {
	Motion      string
	MotionSpan  diag.Span
	Start       Value
	Duration    Value
	Span        diag.Span
}
