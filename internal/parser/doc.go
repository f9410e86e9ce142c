// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package parser implements the recursive-descent SDL parser: token stream
// to AST, enforcing the mandatory section order "scene library_imports
// entity* constraint* motion* timeline* eof" (§4.3). It does not interpret
// field semantics; it only verifies grammar shape and constructs the tree.
// Like the lexer, it is fail-fast: the first syntax error halts parsing and
// is returned as a single diagnostic.
package parser
