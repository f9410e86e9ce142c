// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package ir

import (
	"encoding/json"
	"fmt"
)

// IrValueKind discriminates an IrValue. Unlike ast.Value, IrValue has a
// distinct Boolean variant: the AST's bare `true`/`false` identifiers are
// resolved into it during lowering (§4.9).
type IrValueKind int

const (
	IrKindNumber IrValueKind = iota
	IrKindString
	IrKindVector3
	IrKindBoolean
	IrKindIdentifier
)

// IrValue is a tagged union serialized as a single-key JSON object, e.g.
// `{"Number": 1.5}` or `{"Identifier": "cube1"}`, so a consumer can tell a
// string literal from an identifier reference without a side channel.
type IrValue struct {
	Kind       IrValueKind
	Number     float64
	String     string
	Vector     [3]float64
	Boolean    bool
	Identifier string
}

func NumberValue(n float64) IrValue          { return IrValue{Kind: IrKindNumber, Number: n} }
func StringValue(s string) IrValue           { return IrValue{Kind: IrKindString, String: s} }
func Vector3Value(v [3]float64) IrValue      { return IrValue{Kind: IrKindVector3, Vector: v} }
func BooleanValue(b bool) IrValue            { return IrValue{Kind: IrKindBoolean, Boolean: b} }
func IdentifierValue(s string) IrValue       { return IrValue{Kind: IrKindIdentifier, Identifier: s} }

func (v IrValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case IrKindNumber:
		return json.Marshal(map[string]float64{"Number": v.Number})
	case IrKindString:
		return json.Marshal(map[string]string{"String": v.String})
	case IrKindVector3:
		return json.Marshal(map[string][3]float64{"Vector3": v.Vector})
	case IrKindBoolean:
		return json.Marshal(map[string]bool{"Boolean": v.Boolean})
	case IrKindIdentifier:
		return json.Marshal(map[string]string{"Identifier": v.Identifier})
	default:
		return nil, fmt.Errorf("ir: unknown IrValueKind %d", v.Kind)
	}
}

func (v *IrValue) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != 1 {
		return fmt.Errorf("ir: IrValue must have exactly one key, got %d", len(raw))
	}
	for key, payload := range raw {
		switch key {
		case "Number":
			var n float64
			if err := json.Unmarshal(payload, &n); err != nil {
				return err
			}
			*v = NumberValue(n)
		case "String":
			var s string
			if err := json.Unmarshal(payload, &s); err != nil {
				return err
			}
			*v = StringValue(s)
		case "Vector3":
			var arr [3]float64
			if err := json.Unmarshal(payload, &arr); err != nil {
				return err
			}
			*v = Vector3Value(arr)
		case "Boolean":
			var b bool
			if err := json.Unmarshal(payload, &b); err != nil {
				return err
			}
			*v = BooleanValue(b)
		case "Identifier":
			var s string
			if err := json.Unmarshal(payload, &s); err != nil {
				return err
			}
			*v = IdentifierValue(s)
		default:
			return fmt.Errorf("ir: unknown IrValue key %q", key)
		}
	}
	return nil
}
