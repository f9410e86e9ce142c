// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package stdlib provides small filesystem helpers shared by the CLI and
// the cache layer: existence checks for files and directories.
package stdlib
