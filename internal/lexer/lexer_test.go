// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package lexer_test

import (
	"testing"

	"github.com/playbymail/sdlc/internal/diag"
	"github.com/playbymail/sdlc/internal/lexer"
)

func TestTokenizeEmptySource(t *testing.T) {
	toks, d := lexer.Tokenize("empty.sdl", []byte(""))
	if d != nil {
		t.Fatalf("unexpected diagnostic: %v", d)
	}
	if len(toks) != 1 || toks[0].Kind != lexer.EOF {
		t.Fatalf("want single EOF token, got %+v", toks)
	}
}

func TestTokenizeKeywordsAndPunctuation(t *testing.T) {
	src := `scene { name: "box" } library_imports {} entity e1 { kind: solid }`
	toks, d := lexer.Tokenize("t.sdl", []byte(src))
	if d != nil {
		t.Fatalf("unexpected diagnostic: %v", d)
	}
	want := []lexer.Kind{
		lexer.KwScene, lexer.LBrace, lexer.Identifier, lexer.Colon, lexer.String, lexer.RBrace,
		lexer.KwLibraryImports, lexer.LBrace, lexer.RBrace,
		lexer.KwEntity, lexer.Identifier, lexer.LBrace, lexer.KwKind, lexer.Colon, lexer.Identifier, lexer.RBrace,
		lexer.EOF,
	}
	if len(toks) != len(want) {
		t.Fatalf("want %d tokens, got %d: %+v", len(want), len(toks), toks)
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d: want %s, got %s (%q)", i, k, toks[i].Kind, toks[i].Lexeme)
		}
	}
}

func TestTokenizeNumbers(t *testing.T) {
	for _, tc := range []struct {
		src      string
		wantKind lexer.Kind
		wantLex  string
	}{
		{"42", lexer.Integer, "42"},
		{"-7", lexer.Integer, "-7"},
		{"3.14", lexer.Number, "3.14"},
		{"-0.5", lexer.Number, "-0.5"},
		{"1e10", lexer.Number, "1e10"},
		{"1.5e-3", lexer.Number, "1.5e-3"},
	} {
		toks, d := lexer.Tokenize("n.sdl", []byte(tc.src))
		if d != nil {
			t.Fatalf("%q: unexpected diagnostic: %v", tc.src, d)
		}
		if len(toks) != 2 {
			t.Fatalf("%q: want 2 tokens (value + EOF), got %d", tc.src, len(toks))
		}
		if toks[0].Kind != tc.wantKind {
			t.Errorf("%q: want kind %s, got %s", tc.src, tc.wantKind, toks[0].Kind)
		}
		if toks[0].Lexeme != tc.wantLex {
			t.Errorf("%q: want lexeme %q, got %q", tc.src, tc.wantLex, toks[0].Lexeme)
		}
	}
}

func TestTokenizeUnterminatedString(t *testing.T) {
	_, d := lexer.Tokenize("s.sdl", []byte(`"unterminated`))
	if d == nil {
		t.Fatal("want a diagnostic, got nil")
	}
	if d.Code != diag.ErrUnterminatedString {
		t.Errorf("want %s, got %s", diag.ErrUnterminatedString, d.Code)
	}
}

func TestTokenizeNanLiteralRejected(t *testing.T) {
	_, d := lexer.Tokenize("nan.sdl", []byte("mass: nan"))
	if d == nil {
		t.Fatal("want a diagnostic for bare 'nan'")
	}
	if d.Code != diag.ErrUnexpectedChar {
		t.Errorf("want %s, got %s", diag.ErrUnexpectedChar, d.Code)
	}
}

func TestTokenizeUnexpectedChar(t *testing.T) {
	_, d := lexer.Tokenize("c.sdl", []byte("scene { name: @ }"))
	if d == nil {
		t.Fatal("want a diagnostic, got nil")
	}
	if d.Code != diag.ErrUnexpectedChar {
		t.Errorf("want %s, got %s", diag.ErrUnexpectedChar, d.Code)
	}
	if d.Span.Line != 1 {
		t.Errorf("want line 1, got %d", d.Span.Line)
	}
}

func TestTokenizeLineCommentsAndNewlines(t *testing.T) {
	src := "scene { // a comment\n  name: \"x\"\n}"
	toks, d := lexer.Tokenize("cm.sdl", []byte(src))
	if d != nil {
		t.Fatalf("unexpected diagnostic: %v", d)
	}
	// name: starts on line 2.
	var found bool
	for _, tok := range toks {
		if tok.Kind == lexer.Identifier && tok.Lexeme == "name" {
			found = true
			if tok.Span.Line != 2 {
				t.Errorf("want name on line 2, got %d", tok.Span.Line)
			}
		}
	}
	if !found {
		t.Fatal("did not find 'name' identifier token")
	}
}

func TestTokenizeVector(t *testing.T) {
	toks, d := lexer.Tokenize("v.sdl", []byte("[0, 1.5, -2]"))
	if d != nil {
		t.Fatalf("unexpected diagnostic: %v", d)
	}
	want := []lexer.Kind{lexer.LBracket, lexer.Integer, lexer.Comma, lexer.Number, lexer.Comma, lexer.Integer, lexer.RBracket, lexer.EOF}
	if len(toks) != len(want) {
		t.Fatalf("want %d tokens, got %d: %+v", len(want), len(toks), toks)
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d: want %s, got %s", i, k, toks[i].Kind)
		}
	}
}
