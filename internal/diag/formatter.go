// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package diag

import (
	"fmt"
	"strings"
)

// Formatter renders diagnostics in the terminal form used by §4.1 and §7:
//
//	E300: Undefined entity 'gearB'
//	 --> scene.dsl:42:12
//	  |
//	42|   driven: gearB
//	  |           ^^^^^ entity not found in scope
//	help: define 'gearB' before referencing it
//
// Source is the full text the diagnostic's span was computed against; the
// line text is reconstructed from it on demand rather than stored on the
// Diagnostic itself.
type Formatter struct {
	Source []byte
	// Color enables ANSI SGR wrapping of the code prefix and caret line.
	// cmd/sdlc sets this from isatty.IsTerminal(os.Stdout.Fd()); the JSON
	// wire form (Diagnostic.ToWire) is never colorized.
	Color bool
}

// NewFormatter returns a Formatter bound to source.
func NewFormatter(source []byte) *Formatter {
	return &Formatter{Source: source}
}

const (
	ansiRed   = "\x1b[31;1m"
	ansiReset = "\x1b[0m"
)

// Format renders a single diagnostic.
func (f *Formatter) Format(d Diagnostic) string {
	var sb strings.Builder

	header := fmt.Sprintf("%s: %s", d.Code, d.Message)
	if f.Color {
		header = ansiRed + string(d.Code) + ":" + ansiReset + " " + d.Message
	}
	sb.WriteString(header)
	sb.WriteByte('\n')

	fmt.Fprintf(&sb, " --> %s:%d:%d\n", d.File, d.Span.Line, d.Span.Col)

	lineNo := d.Span.Line
	lineText := f.lineText(lineNo)
	gutter := fmt.Sprintf("%d", lineNo)
	pad := strings.Repeat(" ", len(gutter))

	fmt.Fprintf(&sb, "%s|\n", pad)
	fmt.Fprintf(&sb, "%s| %s\n", gutter, lineText)

	caretCol := d.Span.Col - 1
	if caretCol < 0 {
		caretCol = 0
	}
	caretLen := d.Span.Len()
	if caretLen < 1 {
		caretLen = 1
	}
	caret := strings.Repeat(" ", caretCol) + strings.Repeat("^", caretLen)
	caretLine := caret
	if f.Color {
		caretLine = ansiRed + caret + ansiReset
	}
	fmt.Fprintf(&sb, "%s| %s\n", pad, caretLine)

	if d.Help != "" {
		fmt.Fprintf(&sb, "help: %s\n", d.Help)
	}

	return sb.String()
}

// FormatAll renders a sequence of diagnostics separated by blank lines.
func (f *Formatter) FormatAll(ds []Diagnostic) string {
	var parts []string
	for _, d := range ds {
		parts = append(parts, f.Format(d))
	}
	return strings.Join(parts, "\n")
}

// lineText returns the 1-based line's text, without its terminator.
func (f *Formatter) lineText(line int) string {
	if line < 1 {
		return ""
	}
	cur := 1
	start := 0
	for i, b := range f.Source {
		if cur == line {
			start = i
			break
		}
		if b == '\n' {
			cur++
			start = i + 1
		}
	}
	if cur < line {
		return ""
	}
	end := start
	for end < len(f.Source) && f.Source[end] != '\n' {
		end++
	}
	return string(f.Source[start:end])
}
