// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package ast

import (
	"fmt"

	"github.com/playbymail/sdlc/internal/diag"
)

// ValueKind discriminates an AstValue.
type ValueKind int

const (
	// KindNumber covers both integer and floating-point literals; the
	// parser does not distinguish them past the scene.version field, which
	// is checked directly against the lexer's Integer token kind.
	KindNumber ValueKind = iota
	KindString
	KindIdentifier
	KindVector3
)

func (k ValueKind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindIdentifier:
		return "identifier"
	case KindVector3:
		return "vector3"
	default:
		return fmt.Sprintf("ValueKind(%d)", int(k))
	}
}

// Value is a tagged union over the four value shapes the SDL grammar
// allows: number, string, identifier, and a 3-element vector of numbers.
// Downstream consumers switch on Kind and never introspect further.
type Value struct {
	Kind       ValueKind
	Number     float64
	Str        string
	Identifier string
	Vector     [3]float64
	Span       diag.Span
}

func NumberValue(n float64, span diag.Span) Value {
	return Value{Kind: KindNumber, Number: n, Span: span}
}

func StringValue(s string, span diag.Span) Value {
	return Value{Kind: KindString, Str: s, Span: span}
}

func IdentifierValue(s string, span diag.Span) Value {
	return Value{Kind: KindIdentifier, Identifier: s, Span: span}
}

func Vector3Value(v [3]float64, span diag.Span) Value {
	return Value{Kind: KindVector3, Vector: v, Span: span}
}
