// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package compiler

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/playbymail/sdlc/cerrs"
	"github.com/playbymail/sdlc/internal/ast"
	"github.com/playbymail/sdlc/internal/diag"
	"github.com/playbymail/sdlc/internal/ir"
	"github.com/playbymail/sdlc/internal/library"
	"github.com/playbymail/sdlc/internal/parser"
	"github.com/playbymail/sdlc/internal/schema"
	"github.com/playbymail/sdlc/internal/validate"
)

// Result is what Compile returns on success: the lowered scene plus any
// warning-class diagnostics gathered along the way (§7: warnings accompany
// a successful IR rather than blocking it).
type Result struct {
	Scene    *ir.IrScene
	Warnings []diag.Diagnostic
}

// Registries bundles the two process-wide, immutable lookup tables a
// compile needs (§5's "process-wide immutable after construction"). A nil
// field falls back to its package default.
type Registries struct {
	Schema  *schema.Registry
	Library *library.Registry
}

func (r Registries) schema() *schema.Registry {
	if r.Schema != nil {
		return r.Schema
	}
	return schema.Default()
}

func (r Registries) library() *library.Registry {
	if r.Library != nil {
		return r.Library
	}
	return library.Default()
}

// Compile runs the full pipeline over source (§6's primary API): lex,
// parse, validate, and lower. A lexer or parser failure returns its single
// diagnostic; any non-warning validator diagnostic returns the full list
// with no IR (§7's "no success with errors"); otherwise it returns the
// lowered scene and any warnings collected along the way.
func Compile(source []byte, fileID string, regs Registries) (*Result, []diag.Diagnostic) {
	correlationID := uuid.New().String()
	started := time.Now()
	logger := slog.Default().With("file", fileID, "compile_id", correlationID)
	logger.Debug("compile: start", "bytes", len(source))

	f, d := parser.Parse(fileID, source)
	if d != nil {
		logger.Error("compile: parse failed", "error", d.String())
		return nil, []diag.Diagnostic{*d}
	}
	logger.Debug("compile: parsed", "elapsed", time.Since(started))

	diags := validate.Run(fileID, regs.schema(), regs.library(), f)
	errs, warnings := splitDiagnostics(diags)
	if len(errs) > 0 {
		logger.Info("compile: validation failed", "errors", len(errs), "warnings", len(warnings))
		return nil, diags
	}

	scene := ir.Lower(f)
	logger.Debug("compile: done", "elapsed", time.Since(started), "warnings", len(warnings))
	return &Result{Scene: scene, Warnings: warnings}, nil
}

// ParseOnly runs just the lexer and parser (§6), for callers that only
// need a syntax check or want to drive validation themselves.
func ParseOnly(source []byte, fileID string) (*ast.File, *diag.Diagnostic) {
	return parser.Parse(fileID, source)
}

// ValidateOnly runs the five validator passes over an already-parsed AST
// (§6) without lowering. It returns an error wrapping cerrs.ErrValidationFailed
// alongside the diagnostic list when any non-warning diagnostic was found,
// so callers can use errors.Is the same way the rest of the host does.
func ValidateOnly(fileID string, regs Registries, f *ast.File) ([]diag.Diagnostic, error) {
	diags := validate.Run(fileID, regs.schema(), regs.library(), f)
	errs, _ := splitDiagnostics(diags)
	if len(errs) > 0 {
		return diags, cerrs.ErrValidationFailed
	}
	return diags, nil
}

func splitDiagnostics(diags []diag.Diagnostic) (errs, warnings []diag.Diagnostic) {
	for _, d := range diags {
		if d.Code.IsWarning() {
			warnings = append(warnings, d)
		} else {
			errs = append(errs, d)
		}
	}
	return errs, warnings
}
