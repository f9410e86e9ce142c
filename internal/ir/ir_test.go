// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package ir_test

import (
	"encoding/json"
	"testing"

	"github.com/go-test/deep"
	"github.com/playbymail/sdlc/internal/ir"
	"github.com/playbymail/sdlc/internal/parser"
)

func TestIrValueRoundTrip(t *testing.T) {
	for _, v := range []ir.IrValue{
		ir.NumberValue(1.5),
		ir.StringValue("cube"),
		ir.Vector3Value([3]float64{0, 1, 0}),
		ir.BooleanValue(true),
		ir.BooleanValue(false),
		ir.IdentifierValue("cube1"),
	} {
		data, err := json.Marshal(v)
		if err != nil {
			t.Fatalf("marshal %+v: %v", v, err)
		}
		var got ir.IrValue
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatalf("unmarshal %s: %v", data, err)
		}
		if diff := deep.Equal(v, got); diff != nil {
			t.Errorf("round trip %+v: %v", v, diff)
		}
	}
}

func TestIrValueMarshalShape(t *testing.T) {
	data, err := json.Marshal(ir.IdentifierValue("cube1"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"Identifier":"cube1"}` {
		t.Errorf("want tagged single-key object, got %s", data)
	}
}

func TestIrValueUnmarshalRejectsMultiKey(t *testing.T) {
	var v ir.IrValue
	err := json.Unmarshal([]byte(`{"Number": 1, "String": "x"}`), &v)
	if err == nil {
		t.Fatal("want error for multi-key IrValue")
	}
}

const lowerScene = `
scene {
	name: "demo"
	version: 1
	ir_version: "0.1.0"
	unit_system: "SI"
}
library_imports {
	math: "core_mechanics"
}
entity cube1 {
	kind: solid
	components {
		transform {
			position: [0, 0, 0]
			rotation: [0, 0, 0]
			scale: [1, 1, 1]
		}
		physical {
			mass: 2.5
			rigid: true
		}
	}
}
entity cube2 {
	kind: solid
	components {
		transform {
			position: [1, 0, 0]
			rotation: [0, 0, 0]
			scale: [1, 1, 1]
		}
	}
}
constraint joint1 {
	type: fixed_joint
	parent: cube1
	child: cube2
}
motion spin {
	target: cube1
	type: rotation
	axis: [0, 1, 0]
	speed: 1.5708
}
timeline t1 {
	event { motion: spin start: 0 duration: 10 }
}
`

func TestLowerProducesExpectedShape(t *testing.T) {
	f, d := parser.Parse("demo.sdl", []byte(lowerScene))
	if d != nil {
		t.Fatalf("unexpected parse diagnostic: %v", d)
	}
	scene := ir.Lower(f)

	if scene.Metadata.Name != "demo" || scene.Metadata.Version != 1 {
		t.Errorf("unexpected metadata: %+v", scene.Metadata)
	}
	if scene.LibraryImports["math"] != "core_mechanics" {
		t.Errorf("unexpected library imports: %+v", scene.LibraryImports)
	}
	if len(scene.Entities) != 2 {
		t.Fatalf("want 2 entities, got %d", len(scene.Entities))
	}
	cube1 := findEntity(scene.Entities, "cube1")
	if cube1 == nil {
		t.Fatal("cube1 not found")
	}
	physical, ok := cube1.Components["physical"]
	if !ok {
		t.Fatal("cube1 missing physical component")
	}
	if diff := deep.Equal(physical.Properties["mass"], ir.NumberValue(2.5)); diff != nil {
		t.Errorf("mass: %v", diff)
	}
	if diff := deep.Equal(physical.Properties["rigid"], ir.BooleanValue(true)); diff != nil {
		t.Errorf("rigid: %v", diff)
	}

	if len(scene.Constraints) != 1 {
		t.Fatalf("want 1 constraint, got %d", len(scene.Constraints))
	}
	joint := scene.Constraints[0]
	if joint.ConstraintType != "fixed_joint" {
		t.Errorf("want fixed_joint, got %s", joint.ConstraintType)
	}
	if _, ok := joint.Parameters["type"]; ok {
		t.Errorf("structural field 'type' leaked into parameters: %+v", joint.Parameters)
	}
	if diff := deep.Equal(joint.Parameters["parent"], ir.IdentifierValue("cube1")); diff != nil {
		t.Errorf("parent: %v", diff)
	}

	if len(scene.Motions) != 1 {
		t.Fatalf("want 1 motion, got %d", len(scene.Motions))
	}
	m := scene.Motions[0]
	if m.MotionType != "rotation" || m.TargetEntity != "cube1" {
		t.Errorf("unexpected motion: %+v", m)
	}
	if _, ok := m.Parameters["target"]; ok {
		t.Errorf("structural field 'target' leaked into parameters: %+v", m.Parameters)
	}
	if diff := deep.Equal(m.Parameters["axis"], ir.Vector3Value([3]float64{0, 1, 0})); diff != nil {
		t.Errorf("axis: %v", diff)
	}

	if len(scene.Timelines) != 1 || len(scene.Timelines[0].Events) != 1 {
		t.Fatalf("unexpected timelines: %+v", scene.Timelines)
	}
	ev := scene.Timelines[0].Events[0]
	if ev.MotionID != "spin" || ev.StartTime != 0 || ev.Duration != 10 {
		t.Errorf("unexpected event: %+v", ev)
	}
}

func findEntity(entities []ir.IrEntity, id string) *ir.IrEntity {
	for i := range entities {
		if entities[i].ID == id {
			return &entities[i]
		}
	}
	return nil
}

func TestLowerSceneMarshalsToJSON(t *testing.T) {
	f, d := parser.Parse("demo.sdl", []byte(lowerScene))
	if d != nil {
		t.Fatalf("unexpected parse diagnostic: %v", d)
	}
	scene := ir.Lower(f)
	data, err := json.Marshal(scene)
	if err != nil {
		t.Fatalf("marshal scene: %v", err)
	}
	var roundTripped map[string]json.RawMessage
	if err := json.Unmarshal(data, &roundTripped); err != nil {
		t.Fatalf("unmarshal scene: %v", err)
	}
	for _, key := range []string{"metadata", "library_imports", "entities", "constraints", "motions", "timelines"} {
		if _, ok := roundTripped[key]; !ok {
			t.Errorf("missing top-level key %q in %s", key, data)
		}
	}
}
