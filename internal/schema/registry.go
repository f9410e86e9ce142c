// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package schema

import "fmt"

// FieldType discriminates the kind of value a FieldSpec accepts.
type FieldType int

const (
	TypeNumber FieldType = iota
	TypeString
	TypeIdentifier
	TypeVector3
	TypeBoolean
	TypeEnum
)

func (t FieldType) String() string {
	switch t {
	case TypeNumber:
		return "number"
	case TypeString:
		return "string"
	case TypeIdentifier:
		return "identifier"
	case TypeVector3:
		return "vector3"
	case TypeBoolean:
		return "boolean"
	case TypeEnum:
		return "enum"
	default:
		return fmt.Sprintf("FieldType(%d)", int(t))
	}
}

// FieldSpec describes one field a component/constraint/motion type accepts.
type FieldSpec struct {
	Name       string
	Required   bool
	Type       FieldType
	EnumValues []string // only meaningful when Type == TypeEnum
}

// TypeSpec is the ordered field list for one component, constraint, or
// motion type name.
type TypeSpec struct {
	Name   string
	Fields []FieldSpec
}

// Field looks up a field by name within the type spec.
func (t TypeSpec) Field(name string) (FieldSpec, bool) {
	for _, f := range t.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldSpec{}, false
}

// Registry is the process-wide component/constraint/motion field registry
// (§4.5). Host code may extend it at startup (before any compile call) but
// never during one (§5).
type Registry struct {
	Components  map[string]TypeSpec
	Constraints map[string]TypeSpec
	Motions     map[string]TypeSpec
}

// Default returns the registry seeded with the spec's built-in defaults.
func Default() *Registry {
	return &Registry{
		Components: map[string]TypeSpec{
			"transform": {
				Name: "transform",
				Fields: []FieldSpec{
					{Name: "position", Required: true, Type: TypeVector3},
					{Name: "rotation", Required: true, Type: TypeVector3},
					{Name: "scale", Required: true, Type: TypeVector3},
				},
			},
			"geometry": {
				Name: "geometry",
				Fields: []FieldSpec{
					{Name: "primitive", Required: true, Type: TypeEnum,
						EnumValues: []string{"cube", "sphere", "cylinder", "cone", "plane"}},
				},
			},
			"physical": {
				Name: "physical",
				Fields: []FieldSpec{
					{Name: "mass", Required: true, Type: TypeNumber},
					{Name: "rigid", Required: true, Type: TypeBoolean},
				},
			},
		},
		Constraints: map[string]TypeSpec{
			"fixed_joint": {
				Name: "fixed_joint",
				Fields: []FieldSpec{
					{Name: "parent", Required: true, Type: TypeIdentifier},
					{Name: "child", Required: true, Type: TypeIdentifier},
				},
			},
			"gear_relation": {
				Name: "gear_relation",
				Fields: []FieldSpec{
					{Name: "driver", Required: false, Type: TypeIdentifier},
					{Name: "driven", Required: false, Type: TypeIdentifier},
					{Name: "ratio", Required: false, Type: TypeNumber},
				},
			},
		},
		Motions: map[string]TypeSpec{
			"rotation": {
				Name: "rotation",
				Fields: []FieldSpec{
					{Name: "axis", Required: false, Type: TypeVector3},
					{Name: "speed", Required: false, Type: TypeNumber},
				},
			},
			"translation": {
				Name: "translation",
				Fields: []FieldSpec{
					{Name: "direction", Required: false, Type: TypeVector3},
					{Name: "speed", Required: false, Type: TypeNumber},
				},
			},
		},
	}
}

// EntityReferenceFields are the constraint field names the reference
// validator (§4.6) must resolve against the entity symbol table.
var EntityReferenceFields = map[string]bool{
	"parent": true, "child": true, "driver": true, "driven": true,
}
