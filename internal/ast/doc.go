// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package ast defines the scene description tree the parser builds and
// every validator pass reads immutably. Field order within a block is
// preserved for diagnostic quality (§3, §9 "Ordered mappings") but carries
// no semantic weight.
package ast
