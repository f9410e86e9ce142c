// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package diag implements the compiler's diagnostic subsystem: source spans,
// the E001-E599/W4xx error-code taxonomy, a batching collector, and a
// rustc-style text formatter. A Diagnostic is data, not a Go error — the
// pipeline collects as many as it safely can before a pass yields (§4.1,
// §7 of the governing specification).
package diag
