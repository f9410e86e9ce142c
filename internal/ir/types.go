// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package ir

// IrScene is the top-level JSON document a successful compile produces
// (§6). Field order here drives JSON key order; list order mirrors the
// source-textual order the AST preserves (§5).
type IrScene struct {
	Metadata       IrMetadata        `json:"metadata"`
	LibraryImports map[string]string `json:"library_imports"`
	Entities       []IrEntity        `json:"entities"`
	Constraints    []IrConstraint    `json:"constraints"`
	Motions        []IrMotion        `json:"motions"`
	Timelines      []IrTimeline      `json:"timelines"`
}

// IrMetadata mirrors the scene block's four required fields verbatim.
type IrMetadata struct {
	Name       string `json:"name"`
	Version    int    `json:"version"`
	IrVersion  string `json:"ir_version"`
	UnitSystem string `json:"unit_system"`
}

// IrEntity is one lowered entity: its declared kind and its components,
// keyed by component type. Components is a map, so source order is not kept.
type IrEntity struct {
	ID         string               `json:"id"`
	Kind       string               `json:"kind"`
	Components map[string]IrComponent `json:"components"`
}

// IrComponent is one typed field bundle attached to an entity.
type IrComponent struct {
	ComponentType string             `json:"component_type"`
	Properties    map[string]IrValue `json:"properties"`
}

// IrConstraint is a lowered typed relation between entities. Its id comes
// from the block header and its `type` is pulled out of the AST's field
// bag; every other field becomes a parameter.
type IrConstraint struct {
	ID             string             `json:"id"`
	ConstraintType string             `json:"constraint_type"`
	Parameters     map[string]IrValue `json:"parameters"`
}

// IrMotion is a lowered rate-based behaviour. TargetEntity and MotionType
// are pulled out of the AST's Target/Type fields; every other field on the
// motion becomes a parameter (§9 open question: flat motion fields).
type IrMotion struct {
	ID           string             `json:"id"`
	MotionType   string             `json:"motion_type"`
	TargetEntity string             `json:"target_entity"`
	Parameters   map[string]IrValue `json:"parameters"`
}

// IrTimeline is an ordered list of scheduling events.
type IrTimeline struct {
	ID     string    `json:"id"`
	Events []IrEvent `json:"events"`
}

// IrEvent schedules one motion's playback window.
type IrEvent struct {
	MotionID string  `json:"motion_id"`
	StartTime float64 `json:"start_time"`
	Duration  float64 `json:"duration"`
}
