// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package schema holds the built-in component/constraint/motion field
// registry and the per-node checks the schema validator runs against it
// (§4.5): presence, kind, and enum/boolean coercion. The registry is plain
// Go data: Default builds a fresh copy of the built-in table on each call,
// and compiles only read it.
package schema
