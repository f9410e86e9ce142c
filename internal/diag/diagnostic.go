// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package diag

import "fmt"

// Diagnostic is a single compiler finding: an error or a warning, tied to a
// source span. The File/Message/Help fields drive both the terminal
// formatter and the §6 JSON wire form.
type Diagnostic struct {
	Code    Code
	Message string
	Span    Span
	File    string
	Help    string
}

// New builds a Diagnostic with no help text.
func New(code Code, file string, span Span, format string, args ...any) Diagnostic {
	return Diagnostic{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Span:    span,
		File:    file,
	}
}

// WithHelp returns a copy of d with Help set.
func (d Diagnostic) WithHelp(format string, args ...any) Diagnostic {
	d.Help = fmt.Sprintf(format, args...)
	return d
}

// String renders a one-line summary, mostly for logs and test failures.
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s (%s:%d:%d)", d.Code, d.Message, d.File, d.Span.Line, d.Span.Col)
}

// Wire is the §6 JSON diagnostic wire form, for non-terminal clients.
type Wire struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	File    string `json:"file"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Help    string `json:"help,omitempty"`
}

// ToWire converts a Diagnostic to its JSON wire form.
func (d Diagnostic) ToWire() Wire {
	return Wire{
		Code:    string(d.Code),
		Message: d.Message,
		File:    d.File,
		Line:    d.Span.Line,
		Column:  d.Span.Col,
		Help:    d.Help,
	}
}
