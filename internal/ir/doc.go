// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package ir holds the JSON intermediate representation a validated scene
// lowers into (§4.9, §6) and the pure Lower function that produces it. The
// IR is the compiler's sole output contract: a renderer or other consumer
// depends only on the shapes in this package, never on internal/ast.
package ir
