// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package validate

import (
	"sort"

	"github.com/playbymail/sdlc/internal/ast"
	"github.com/playbymail/sdlc/internal/diag"
	"github.com/playbymail/sdlc/internal/schema"
)

// Reference runs the reference validator (pass 3, §4.6): symbol resolution
// (E300/E301), constraint dependency cycle detection (E310), and timeline
// overlap detection (E320).
func Reference(file string, f *ast.File) []diag.Diagnostic {
	entities := make(map[string]bool, len(f.Entities))
	for _, e := range f.Entities {
		entities[e.ID] = true
	}
	motions := make(map[string]bool, len(f.Motions))
	for _, m := range f.Motions {
		motions[m.ID] = true
	}

	c := diag.NewCollector()
	addAll(c, checkConstraintReferences(file, f.Constraints, entities))
	addAll(c, checkMotionTargets(file, f.Motions, entities))
	addAll(c, checkEventMotions(file, f.Timelines, motions))
	addAll(c, detectCycles(file, f.Constraints))
	addAll(c, detectTimelineOverlaps(file, f.Timelines))
	return c.Diagnostics()
}

func checkConstraintReferences(file string, constraints []*ast.Constraint, entities map[string]bool) []diag.Diagnostic {
	var diags []diag.Diagnostic
	for _, c := range constraints {
		for _, field := range c.Fields.List() {
			if !schema.EntityReferenceFields[field.Name] {
				continue
			}
			if field.Value.Kind != ast.KindIdentifier {
				continue // schema pass already reported the kind mismatch
			}
			if !entities[field.Value.Identifier] {
				diags = append(diags, diag.New(diag.ErrUndefinedEntity, file, field.Value.Span,
					"undefined entity %q", field.Value.Identifier))
			}
		}
	}
	return diags
}

func checkMotionTargets(file string, motions []*ast.Motion, entities map[string]bool) []diag.Diagnostic {
	var diags []diag.Diagnostic
	for _, m := range motions {
		if !entities[m.Target] {
			diags = append(diags, diag.New(diag.ErrUndefinedEntity, file, m.TargetSpan,
				"undefined entity %q", m.Target))
		}
	}
	return diags
}

func checkEventMotions(file string, timelines []*ast.Timeline, motions map[string]bool) []diag.Diagnostic {
	var diags []diag.Diagnostic
	for _, tl := range timelines {
		for _, ev := range tl.Events {
			if !motions[ev.Motion] {
				diags = append(diags, diag.New(diag.ErrUndefinedMotion, file, ev.MotionSpan,
					"undefined motion %q", ev.Motion))
			}
		}
	}
	return diags
}

type edge struct {
	from, to   string
	constraint *ast.Constraint
}

// detectCycles builds the fixed_joint/gear_relation dependency graph and
// runs a three-color DFS; a back-edge to a grey node is reported at the
// constraint that closes the cycle, with the full cycle in Help text.
func detectCycles(file string, constraints []*ast.Constraint) []diag.Diagnostic {
	adj := make(map[string][]edge)
	nodes := make(map[string]bool)
	for _, c := range constraints {
		var fromField, toField string
		switch c.Type {
		case "fixed_joint":
			fromField, toField = "parent", "child"
		case "gear_relation":
			fromField, toField = "driver", "driven"
		default:
			continue
		}
		fromF, ok1 := c.Fields.Get(fromField)
		toF, ok2 := c.Fields.Get(toField)
		if !ok1 || !ok2 || fromF.Value.Kind != ast.KindIdentifier || toF.Value.Kind != ast.KindIdentifier {
			continue
		}
		from, to := fromF.Value.Identifier, toF.Value.Identifier
		nodes[from], nodes[to] = true, true
		adj[from] = append(adj[from], edge{from: from, to: to, constraint: c})
	}

	const (
		white = iota
		grey
		black
	)
	color := make(map[string]int, len(nodes))
	var order []string
	for n := range nodes {
		order = append(order, n)
	}
	sort.Strings(order)

	var diags []diag.Diagnostic
	var path []string
	var dfs func(node string) bool
	dfs = func(node string) bool {
		color[node] = grey
		path = append(path, node)
		for _, e := range adj[node] {
			switch color[e.to] {
			case white:
				if dfs(e.to) {
					return true
				}
			case grey:
				cycleStart := indexOf(path, e.to)
				cycle := append(append([]string{}, path[cycleStart:]...), e.to)
				diags = append(diags, diag.New(diag.ErrDependencyCycle, file, e.constraint.Span,
					"constraint %q closes a dependency cycle", e.constraint.ID).
					WithHelp("cycle: %s", joinCycle(cycle)))
				return true
			}
		}
		path = path[:len(path)-1]
		color[node] = black
		return false
	}
	for _, n := range order {
		if color[n] == white {
			path = nil
			dfs(n)
		}
	}
	return diags
}

func indexOf(xs []string, x string) int {
	for i, v := range xs {
		if v == x {
			return i
		}
	}
	return -1
}

func joinCycle(cycle []string) string {
	s := ""
	for i, n := range cycle {
		if i > 0 {
			s += " -> "
		}
		s += n
	}
	return s
}

type eventWindow struct {
	start, end float64
	ev         *ast.Event
}

// detectTimelineOverlaps groups each timeline's events by motion id and
// flags overlapping [start, start+duration) intervals within a group
// (E320). Events for different motions, or the same motion in different
// timelines, never conflict.
func detectTimelineOverlaps(file string, timelines []*ast.Timeline) []diag.Diagnostic {
	var diags []diag.Diagnostic
	for _, tl := range timelines {
		byMotion := make(map[string][]eventWindow)
		for _, ev := range tl.Events {
			byMotion[ev.Motion] = append(byMotion[ev.Motion], eventWindow{
				start: ev.Start.Number, end: ev.Start.Number + ev.Duration.Number, ev: ev,
			})
		}
		for _, windows := range byMotion {
			sort.Slice(windows, func(i, j int) bool { return windows[i].start < windows[j].start })
			for i := 1; i < len(windows); i++ {
				prev, cur := windows[i-1], windows[i]
				if cur.start < prev.end {
					diags = append(diags, diag.New(diag.ErrTimelineOverlap, file, cur.ev.Span,
						"event for motion %q overlaps a preceding event on the same timeline",
						cur.ev.Motion).
						WithHelp("[%v, %v) overlaps [%v, %v)",
							cur.start, cur.end, prev.start, prev.end))
				}
			}
		}
	}
	return diags
}
