// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package compiler implements the primary in-process API of §6: Compile,
// ParseOnly, and ValidateOnly. It orchestrates lex -> parse -> validate ->
// lower, the same sequence cmd/sdlc drives from the command line, so both
// callers share one code path.
package compiler
