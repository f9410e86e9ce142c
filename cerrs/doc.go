// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package cerrs defines constant error types using a custom Error string type.
// It centralizes host-level failures — bad CLI flags, missing files, cache
// I/O — that are not source-span diagnostics. The Error type supports
// comparison via errors.Is(). Compiler diagnostics live in package diag, not
// here: a Diagnostic is data to collect, never a Go error to return.
package cerrs
