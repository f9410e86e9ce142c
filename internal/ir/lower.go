// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package ir

import "github.com/playbymail/sdlc/internal/ast"

// Lower is a pure function over a validated AST (§4.9). It cannot fail: if
// it would, that indicates a bug upstream in validation, not a condition
// Lower itself reports.
func Lower(f *ast.File) *IrScene {
	scene := &IrScene{
		Metadata: IrMetadata{
			Name:       f.Scene.Name,
			Version:    f.Scene.Version,
			IrVersion:  f.Scene.IrVersion,
			UnitSystem: f.Scene.UnitSystem,
		},
		LibraryImports: lowerLibraryImports(f.LibraryImports),
		Entities:       lowerEntities(f.Entities),
		Constraints:    lowerConstraints(f.Constraints),
		Motions:        lowerMotions(f.Motions),
		Timelines:      lowerTimelines(f.Timelines),
	}
	return scene
}

func lowerLibraryImports(li *ast.LibraryImports) map[string]string {
	out := make(map[string]string, len(li.List()))
	for _, entry := range li.List() {
		out[entry.Alias] = entry.Library
	}
	return out
}

func lowerEntities(entities []*ast.Entity) []IrEntity {
	out := make([]IrEntity, 0, len(entities))
	for _, e := range entities {
		components := make(map[string]IrComponent, len(e.Components.List()))
		for _, c := range e.Components.List() {
			components[c.Type] = IrComponent{
				ComponentType: c.Type,
				Properties:    lowerFields(c.Fields, nil),
			}
		}
		out = append(out, IrEntity{ID: e.ID, Kind: e.Kind, Components: components})
	}
	return out
}

func lowerConstraints(constraints []*ast.Constraint) []IrConstraint {
	out := make([]IrConstraint, 0, len(constraints))
	for _, c := range constraints {
		out = append(out, IrConstraint{
			ID:             c.ID,
			ConstraintType: c.Type,
			Parameters:     lowerFields(c.Fields, map[string]bool{"type": true}),
		})
	}
	return out
}

func lowerMotions(motions []*ast.Motion) []IrMotion {
	out := make([]IrMotion, 0, len(motions))
	for _, m := range motions {
		out = append(out, IrMotion{
			ID:           m.ID,
			MotionType:   m.Type,
			TargetEntity: m.Target,
			Parameters:   lowerFields(m.Fields, map[string]bool{"target": true, "type": true}),
		})
	}
	return out
}

func lowerTimelines(timelines []*ast.Timeline) []IrTimeline {
	out := make([]IrTimeline, 0, len(timelines))
	for _, tl := range timelines {
		events := make([]IrEvent, 0, len(tl.Events))
		for _, ev := range tl.Events {
			events = append(events, IrEvent{
				MotionID:  ev.Motion,
				StartTime: ev.Start.Number,
				Duration:  ev.Duration.Number,
			})
		}
		out = append(out, IrTimeline{ID: tl.ID, Events: events})
	}
	return out
}

// lowerFields converts a field bag to IR parameters/properties, skipping
// names in ignore (the structural fields the parser already pulled out
// into their own struct fields). A bare `true`/`false` identifier becomes
// Boolean; any other identifier is a reference and stays Identifier.
func lowerFields(fields *ast.Fields, ignore map[string]bool) map[string]IrValue {
	out := make(map[string]IrValue, fields.Len())
	for _, field := range fields.List() {
		if ignore[field.Name] {
			continue
		}
		out[field.Name] = lowerValue(field.Value)
	}
	return out
}

func lowerValue(v ast.Value) IrValue {
	switch v.Kind {
	case ast.KindNumber:
		return NumberValue(v.Number)
	case ast.KindString:
		return StringValue(v.Str)
	case ast.KindVector3:
		return Vector3Value(v.Vector)
	case ast.KindIdentifier:
		switch v.Identifier {
		case "true":
			return BooleanValue(true)
		case "false":
			return BooleanValue(false)
		default:
			return IdentifierValue(v.Identifier)
		}
	default:
		return IrValue{}
	}
}
