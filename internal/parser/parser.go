// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package parser

import (
	"strconv"

	"github.com/playbymail/sdlc/internal/ast"
	"github.com/playbymail/sdlc/internal/diag"
	"github.com/playbymail/sdlc/internal/lexer"
)

// Parse runs the lexer and then the parser over source, producing an AST or
// the single diagnostic that halted the pipeline (§4.2 lexer, §4.3 parser;
// both stages are fail-fast).
func Parse(file string, source []byte) (*ast.File, *diag.Diagnostic) {
	toks, lexErr := lexer.Tokenize(file, source)
	if lexErr != nil {
		return nil, lexErr
	}
	p := &parser{file: file, toks: toks}
	return p.parseFile()
}

type parser struct {
	file string
	toks []lexer.Token
	pos  int
}

func (p *parser) cur() lexer.Token {
	return p.toks[p.pos]
}

func (p *parser) advance() lexer.Token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *parser) errTok(code diag.Code, format string, args ...any) *diag.Diagnostic {
	d := diag.New(code, p.file, p.cur().Span, format, args...)
	return &d
}

// expect consumes the current token if it has kind k, else returns a
// diagnostic describing the mismatch.
func (p *parser) expect(k lexer.Kind) (lexer.Token, *diag.Diagnostic) {
	if p.cur().Kind != k {
		return lexer.Token{}, p.errTok(diag.ErrUnexpectedToken,
			"expected %s, found %s", k, describe(p.cur()))
	}
	return p.advance(), nil
}

func describe(t lexer.Token) string {
	if t.Kind == lexer.EOF {
		return "end of file"
	}
	if t.Lexeme != "" {
		return t.Kind.String() + " " + strconv.Quote(t.Lexeme)
	}
	return t.Kind.String()
}

func (p *parser) parseFile() (*ast.File, *diag.Diagnostic) {
	f := &ast.File{}
	f.Span.Start = p.cur().Span.Start
	f.Span.Line, f.Span.Col = p.cur().Span.Line, p.cur().Span.Col

	if p.cur().Kind != lexer.KwScene {
		return nil, p.errTok(diag.ErrMissingSection, "missing required 'scene' section")
	}
	scene, err := p.parseScene()
	if err != nil {
		return nil, err
	}
	f.Scene = scene

	if p.cur().Kind != lexer.KwLibraryImports {
		return nil, p.errTok(diag.ErrMissingSection, "missing required 'library_imports' section")
	}
	imports, err := p.parseLibraryImports()
	if err != nil {
		return nil, err
	}
	f.LibraryImports = imports

	for p.cur().Kind == lexer.KwEntity {
		e, err := p.parseEntity()
		if err != nil {
			return nil, err
		}
		f.Entities = append(f.Entities, e)
	}
	for p.cur().Kind == lexer.KwConstraint {
		c, err := p.parseConstraint()
		if err != nil {
			return nil, err
		}
		f.Constraints = append(f.Constraints, c)
	}
	for p.cur().Kind == lexer.KwMotion {
		m, err := p.parseMotion()
		if err != nil {
			return nil, err
		}
		f.Motions = append(f.Motions, m)
	}
	for p.cur().Kind == lexer.KwTimeline {
		t, err := p.parseTimeline()
		if err != nil {
			return nil, err
		}
		f.Timelines = append(f.Timelines, t)
	}

	if p.cur().Kind != lexer.EOF {
		return nil, p.errTok(diag.ErrUnexpectedToken,
			"unexpected %s: top-level items must appear in order entity*, constraint*, motion*, timeline*",
			describe(p.cur()))
	}
	f.Span.End = p.cur().Span.End
	return f, nil
}

// parseScene parses `scene { name: ... version: ... ir_version: ...
// unit_system: ... }`. Field kinds are enforced here per §4.3; range/format
// checks (version >= 1, ir_version shape, unit_system membership) belong to
// the syntax validator (§4.4).
func (p *parser) parseScene() (*ast.Scene, *diag.Diagnostic) {
	kw := p.advance() // 'scene'
	scene := &ast.Scene{Span: kw.Span}

	if _, err := p.expect(lexer.LBrace); err != nil {
		return nil, err
	}
	haveName, haveVersion, haveIrVersion, haveUnitSystem := false, false, false, false
	for p.cur().Kind != lexer.RBrace {
		field, err := p.parseFieldName()
		if err != nil {
			return nil, err
		}
		switch field.Name {
		case "name":
			v, err := p.expectValueKind(ast.KindString)
			if err != nil {
				return nil, err
			}
			scene.Name, scene.NameSpan = v.Str, v.Span
			haveName = true
		case "version":
			if p.cur().Kind != lexer.Integer {
				return nil, p.errTok(diag.ErrUnexpectedToken,
					"scene.version must be an integer, found %s", describe(p.cur()))
			}
			tok := p.advance()
			n, _ := strconv.Atoi(tok.Lexeme)
			scene.Version, scene.VersionSpan = n, tok.Span
			haveVersion = true
		case "ir_version":
			v, err := p.expectValueKind(ast.KindString)
			if err != nil {
				return nil, err
			}
			scene.IrVersion, scene.IrVersionSpan = v.Str, v.Span
			haveIrVersion = true
		case "unit_system":
			v, err := p.expectValueKind(ast.KindString)
			if err != nil {
				return nil, err
			}
			scene.UnitSystem, scene.UnitSystemSpan = v.Str, v.Span
			haveUnitSystem = true
		default:
			return nil, &diag.Diagnostic{
				Code: diag.ErrUnexpectedToken, File: p.file, Span: field.NameSpan,
				Message: "unexpected field '" + field.Name + "' in scene block",
			}
		}
	}
	rb, err := p.expect(lexer.RBrace)
	if err != nil {
		return nil, err
	}
	scene.Span.End = rb.Span.End

	if !(haveName && haveVersion && haveIrVersion && haveUnitSystem) {
		return nil, &diag.Diagnostic{
			Code: diag.ErrMissingSection, File: p.file, Span: scene.Span,
			Message: "scene block must set name, version, ir_version, and unit_system",
		}
	}
	return scene, nil
}

func (p *parser) parseLibraryImports() (*ast.LibraryImports, *diag.Diagnostic) {
	kw := p.advance() // 'library_imports'
	imports := ast.NewLibraryImports()
	imports.Span = kw.Span

	if _, err := p.expect(lexer.LBrace); err != nil {
		return nil, err
	}
	for p.cur().Kind != lexer.RBrace {
		aliasTok, err := p.expect(lexer.Identifier)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.Colon); err != nil {
			return nil, err
		}
		libTok, err := p.expect(lexer.String)
		if err != nil {
			return nil, err
		}
		imports.Append(ast.LibraryImport{
			Alias: aliasTok.Lexeme, AliasSpan: aliasTok.Span,
			Library: libTok.Lexeme, LibrarySpan: libTok.Span,
		})
	}
	rb, err := p.expect(lexer.RBrace)
	if err != nil {
		return nil, err
	}
	imports.Span.End = rb.Span.End
	return imports, nil
}

// parseFieldName consumes IDENT ":" for a generic field. "motion" is a
// reserved word (it also opens a top-level motion block), so an event's
// "motion:" field lexes as KwMotion rather than Identifier; it is the only
// field name that collides with the keyword table and is accepted here too.
func (p *parser) parseFieldName() (ast.Field, *diag.Diagnostic) {
	if p.cur().Kind != lexer.Identifier && p.cur().Kind != lexer.KwMotion {
		return ast.Field{}, p.errTok(diag.ErrUnexpectedToken,
			"expected a field name, found %s", describe(p.cur()))
	}
	nameTok := p.advance()
	if _, err := p.expect(lexer.Colon); err != nil {
		return ast.Field{}, err
	}
	return ast.Field{Name: nameTok.Lexeme, NameSpan: nameTok.Span}, nil
}

// parseField consumes a full "name: value" pair.
func (p *parser) parseField() (ast.Field, *diag.Diagnostic) {
	f, err := p.parseFieldName()
	if err != nil {
		return ast.Field{}, err
	}
	v, err := p.parseValue()
	if err != nil {
		return ast.Field{}, err
	}
	f.Value = v
	return f, nil
}

// expectValueKind parses a value and requires it to have the given kind.
func (p *parser) expectValueKind(kind ast.ValueKind) (ast.Value, *diag.Diagnostic) {
	v, err := p.parseValue()
	if err != nil {
		return ast.Value{}, err
	}
	if v.Kind != kind {
		return ast.Value{}, &diag.Diagnostic{
			Code: diag.ErrUnexpectedToken, File: p.file, Span: v.Span,
			Message: "expected a " + kind.String() + " value",
		}
	}
	return v, nil
}

func (p *parser) parseValue() (ast.Value, *diag.Diagnostic) {
	switch p.cur().Kind {
	case lexer.Integer, lexer.Number:
		tok := p.advance()
		n, _ := strconv.ParseFloat(tok.Lexeme, 64)
		return ast.NumberValue(n, tok.Span), nil
	case lexer.String:
		tok := p.advance()
		return ast.StringValue(tok.Lexeme, tok.Span), nil
	case lexer.Identifier:
		tok := p.advance()
		return ast.IdentifierValue(tok.Lexeme, tok.Span), nil
	case lexer.LBracket:
		return p.parseVector()
	default:
		return ast.Value{}, p.errTok(diag.ErrUnexpectedToken,
			"expected a value, found %s", describe(p.cur()))
	}
}

func (p *parser) parseVector() (ast.Value, *diag.Diagnostic) {
	lb := p.advance() // '['
	var nums []float64
	for {
		if p.cur().Kind != lexer.Integer && p.cur().Kind != lexer.Number {
			return ast.Value{}, p.errTok(diag.ErrMalformedVector,
				"vector components must be numbers, found %s", describe(p.cur()))
		}
		tok := p.advance()
		n, _ := strconv.ParseFloat(tok.Lexeme, 64)
		nums = append(nums, n)
		if p.cur().Kind == lexer.Comma {
			p.advance()
			continue
		}
		break
	}
	rb, err := p.expect(lexer.RBracket)
	if err != nil {
		return ast.Value{}, err
	}
	span := diag.Span{Start: lb.Span.Start, End: rb.Span.End, Line: lb.Span.Line, Col: lb.Span.Col}
	if len(nums) != 3 {
		return ast.Value{}, &diag.Diagnostic{
			Code: diag.ErrMalformedVector, File: p.file, Span: span,
			Message: "vector must have exactly 3 components, found " + strconv.Itoa(len(nums)),
		}
	}
	return ast.Vector3Value([3]float64{nums[0], nums[1], nums[2]}, span), nil
}

func (p *parser) parseBody() (*ast.Fields, diag.Span, *diag.Diagnostic) {
	lb, err := p.expect(lexer.LBrace)
	if err != nil {
		return nil, diag.Span{}, err
	}
	fields := ast.NewFields()
	for p.cur().Kind != lexer.RBrace {
		f, err := p.parseField()
		if err != nil {
			return nil, diag.Span{}, err
		}
		fields.Append(f)
	}
	rb, err := p.expect(lexer.RBrace)
	if err != nil {
		return nil, diag.Span{}, err
	}
	span := diag.Span{Start: lb.Span.Start, End: rb.Span.End, Line: lb.Span.Line, Col: lb.Span.Col}
	return fields, span, nil
}

func (p *parser) parseEntity() (*ast.Entity, *diag.Diagnostic) {
	kw := p.advance() // 'entity'
	idTok, err := p.expect(lexer.Identifier)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LBrace); err != nil {
		return nil, err
	}

	e := &ast.Entity{ID: idTok.Lexeme, IDSpan: idTok.Span, Span: kw.Span}

	// "kind" and "components" are reserved words, so they lex as KwKind and
	// KwComponents rather than plain Identifier tokens; they cannot go
	// through the generic parseFieldName path used for ordinary fields.
	if p.cur().Kind != lexer.KwKind {
		return nil, p.errTok(diag.ErrUnexpectedToken,
			"entity must begin with 'kind:', found %s", describe(p.cur()))
	}
	p.advance()
	if _, err := p.expect(lexer.Colon); err != nil {
		return nil, err
	}
	kindVal, err := p.expectValueKind(ast.KindIdentifier)
	if err != nil {
		return nil, err
	}
	e.Kind = kindVal.Identifier

	if p.cur().Kind != lexer.KwComponents {
		return nil, p.errTok(diag.ErrMissingSection,
			"entity must declare 'components' after 'kind', found %s", describe(p.cur()))
	}
	p.advance()
	// "components" is a nested block, not a field: `components { ... }`
	// with no colon, unlike the leading `kind:` field.
	if p.cur().Kind != lexer.LBrace {
		return nil, p.errTok(diag.ErrUnexpectedToken,
			"expected '{' after 'components', found %s", describe(p.cur()))
	}
	components := ast.NewComponents()
	if _, err := p.expect(lexer.LBrace); err != nil {
		return nil, err
	}
	for p.cur().Kind != lexer.RBrace {
		c, err := p.parseComponent()
		if err != nil {
			return nil, err
		}
		components.Append(c)
	}
	if _, err := p.expect(lexer.RBrace); err != nil {
		return nil, err
	}
	e.Components = components

	rb, err := p.expect(lexer.RBrace)
	if err != nil {
		return nil, err
	}
	e.Span.End = rb.Span.End
	return e, nil
}

func (p *parser) parseComponent() (*ast.Component, *diag.Diagnostic) {
	typeTok, err := p.expect(lexer.Identifier)
	if err != nil {
		return nil, err
	}
	fields, bodySpan, err := p.parseBody()
	if err != nil {
		return nil, err
	}
	return &ast.Component{
		Type: typeTok.Lexeme, TypeSpan: typeTok.Span,
		Fields: fields,
		Span:   diag.Span{Start: typeTok.Span.Start, End: bodySpan.End, Line: typeTok.Span.Line, Col: typeTok.Span.Col},
	}, nil
}

func (p *parser) parseConstraint() (*ast.Constraint, *diag.Diagnostic) {
	kw := p.advance() // 'constraint'
	idTok, err := p.expect(lexer.Identifier)
	if err != nil {
		return nil, err
	}
	fields, bodySpan, err := p.parseBody()
	if err != nil {
		return nil, err
	}
	typeField, ok := fields.Get("type")
	if !ok {
		return nil, &diag.Diagnostic{
			Code: diag.ErrMissingSection, File: p.file, Span: bodySpan,
			Message: "constraint must set 'type' as its first field",
		}
	}
	if first := fields.List()[0]; first.Name != "type" {
		return nil, &diag.Diagnostic{
			Code: diag.ErrUnexpectedToken, File: p.file, Span: first.NameSpan,
			Message: "constraint must set 'type' as its first field, found '" + first.Name + "'",
		}
	}
	if typeField.Value.Kind != ast.KindIdentifier {
		return nil, &diag.Diagnostic{
			Code: diag.ErrUnexpectedToken, File: p.file, Span: typeField.Value.Span,
			Message: "constraint 'type' must be an identifier",
		}
	}
	c := &ast.Constraint{
		ID: idTok.Lexeme, IDSpan: idTok.Span,
		Type: typeField.Value.Identifier, TypeSpan: typeField.Value.Span,
		Fields: fields,
		Span:   diag.Span{Start: kw.Span.Start, End: bodySpan.End, Line: kw.Span.Line, Col: kw.Span.Col},
	}
	return c, nil
}

func (p *parser) parseMotion() (*ast.Motion, *diag.Diagnostic) {
	kw := p.advance() // 'motion'
	idTok, err := p.expect(lexer.Identifier)
	if err != nil {
		return nil, err
	}
	fields, bodySpan, err := p.parseBody()
	if err != nil {
		return nil, err
	}
	targetField, hasTarget := fields.Get("target")
	typeField, hasType := fields.Get("type")
	if !hasTarget || !hasType {
		return nil, &diag.Diagnostic{
			Code: diag.ErrMissingSection, File: p.file, Span: bodySpan,
			Message: "motion must set both 'target' and 'type'",
		}
	}
	if targetField.Value.Kind != ast.KindIdentifier {
		return nil, &diag.Diagnostic{
			Code: diag.ErrUnexpectedToken, File: p.file, Span: targetField.Value.Span,
			Message: "motion 'target' must be an identifier",
		}
	}
	if typeField.Value.Kind != ast.KindIdentifier {
		return nil, &diag.Diagnostic{
			Code: diag.ErrUnexpectedToken, File: p.file, Span: typeField.Value.Span,
			Message: "motion 'type' must be an identifier",
		}
	}
	m := &ast.Motion{
		ID: idTok.Lexeme, IDSpan: idTok.Span,
		Target: targetField.Value.Identifier, TargetSpan: targetField.Value.Span,
		Type: typeField.Value.Identifier, TypeSpan: typeField.Value.Span,
		Fields: fields,
		Span:   diag.Span{Start: kw.Span.Start, End: bodySpan.End, Line: kw.Span.Line, Col: kw.Span.Col},
	}
	return m, nil
}

func (p *parser) parseTimeline() (*ast.Timeline, *diag.Diagnostic) {
	kw := p.advance() // 'timeline'
	idTok, err := p.expect(lexer.Identifier)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LBrace); err != nil {
		return nil, err
	}
	t := &ast.Timeline{ID: idTok.Lexeme, IDSpan: idTok.Span, Span: kw.Span}
	for p.cur().Kind != lexer.RBrace {
		ev, err := p.parseEvent()
		if err != nil {
			return nil, err
		}
		t.Events = append(t.Events, ev)
	}
	rb, err := p.expect(lexer.RBrace)
	if err != nil {
		return nil, err
	}
	t.Span.End = rb.Span.End
	return t, nil
}

func (p *parser) parseEvent() (*ast.Event, *diag.Diagnostic) {
	kw, err := p.expect(lexer.KwEvent)
	if err != nil {
		return nil, err
	}
	fields, bodySpan, err := p.parseBody()
	if err != nil {
		return nil, err
	}
	motionField, hasMotion := fields.Get("motion")
	startField, hasStart := fields.Get("start")
	durField, hasDur := fields.Get("duration")
	if !hasMotion || !hasStart || !hasDur {
		return nil, &diag.Diagnostic{
			Code: diag.ErrMissingSection, File: p.file, Span: bodySpan,
			Message: "event must set 'motion', 'start', and 'duration'",
		}
	}
	if motionField.Value.Kind != ast.KindIdentifier {
		return nil, &diag.Diagnostic{
			Code: diag.ErrUnexpectedToken, File: p.file, Span: motionField.Value.Span,
			Message: "event 'motion' must be an identifier",
		}
	}
	if startField.Value.Kind != ast.KindNumber {
		return nil, &diag.Diagnostic{
			Code: diag.ErrUnexpectedToken, File: p.file, Span: startField.Value.Span,
			Message: "event 'start' must be a number",
		}
	}
	if durField.Value.Kind != ast.KindNumber {
		return nil, &diag.Diagnostic{
			Code: diag.ErrUnexpectedToken, File: p.file, Span: durField.Value.Span,
			Message: "event 'duration' must be a number",
		}
	}
	return &ast.Event{
		Motion: motionField.Value.Identifier, MotionSpan: motionField.Value.Span,
		Start: startField.Value, Duration: durField.Value,
		Span: diag.Span{Start: kw.Span.Start, End: bodySpan.End, Line: kw.Span.Line, Col: kw.Span.Col},
	}, nil
}
