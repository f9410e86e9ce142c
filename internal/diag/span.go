// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package diag

// Span is a source location: a byte range plus the 1-based line/column of
// its start. Offsets are 0-based. Every token and AST node carries one;
// spans survive into diagnostics but never into IR.
type Span struct {
	Start int // byte offset (inclusive)
	End   int // byte offset (exclusive)
	Line  int // 1-based
	Col   int // 1-based, in UTF-8 code points
}

// Text returns the source slice the span covers.
func (s Span) Text(src []byte) string {
	if s.Start < 0 || s.End > len(src) || s.Start > s.End {
		return ""
	}
	return string(src[s.Start:s.End])
}

// Len returns the byte length of the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Cover returns the smallest span containing both a and b.
func Cover(a, b Span) Span {
	cov := a
	if b.Start < cov.Start {
		cov.Start = b.Start
		cov.Line = b.Line
		cov.Col = b.Col
	}
	if b.End > cov.End {
		cov.End = b.End
	}
	return cov
}
