// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package library implements the built-in library registry and the
// library validator's checks (§4.8): resolving library_imports aliases
// against known libraries (E500, with edit-distance suggestions) and
// confirming every used type name is provided by at least one imported
// library (E510).
package library
