// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package lexer

import (
	"fmt"

	"github.com/playbymail/sdlc/internal/diag"
)

// Kind discriminates a Token. Keywords are recognized by exact lexeme match
// against the reserved-word table in keywords.
type Kind int

const (
	EOF Kind = iota

	Identifier
	Integer
	Number
	String

	Colon
	Comma
	LBrace
	RBrace
	LBracket
	RBracket

	// keywords

	KwScene
	KwEntity
	KwComponents
	KwConstraint
	KwMotion
	KwTimeline
	KwEvent
	KwLibraryImports
	KwKind
)

func (k Kind) String() string {
	switch k {
	case EOF:
		return "EOF"
	case Identifier:
		return "identifier"
	case Integer:
		return "integer"
	case Number:
		return "number"
	case String:
		return "string"
	case Colon:
		return "colon"
	case Comma:
		return "comma"
	case LBrace:
		return "left_brace"
	case RBrace:
		return "right_brace"
	case LBracket:
		return "left_bracket"
	case RBracket:
		return "right_bracket"
	case KwScene:
		return "scene"
	case KwEntity:
		return "entity"
	case KwComponents:
		return "components"
	case KwConstraint:
		return "constraint"
	case KwMotion:
		return "motion"
	case KwTimeline:
		return "timeline"
	case KwEvent:
		return "event"
	case KwLibraryImports:
		return "library_imports"
	case KwKind:
		return "kind"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// IsKeyword reports whether k is one of the nine reserved words.
func (k Kind) IsKeyword() bool {
	return k >= KwScene && k <= KwKind
}

var keywords = map[string]Kind{
	"scene":           KwScene,
	"entity":          KwEntity,
	"components":      KwComponents,
	"constraint":      KwConstraint,
	"motion":          KwMotion,
	"timeline":        KwTimeline,
	"event":           KwEvent,
	"library_imports": KwLibraryImports,
	"kind":            KwKind,
}

// Token is a single lexeme with its kind and source span. Lexeme holds the
// original text for identifiers, numbers, and strings (unquoted for
// strings); it is empty for single-character punctuation and EOF.
type Token struct {
	Kind   Kind
	Lexeme string
	Span   diag.Span
}
