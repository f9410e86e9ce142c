// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package validate implements the five independent validator passes that
// run over a parsed AST before lowering: syntax, schema, reference, unit,
// and library (§4.4-§4.8). Each pass collects every diagnostic it can
// safely produce rather than stopping at the first one; Run executes them
// in the fixed order the spec requires so diagnostic output is stable.
package validate
