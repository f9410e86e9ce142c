// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package main

import (
	"os"

	"github.com/playbymail/sdlc/cerrs"
	"github.com/playbymail/sdlc/internal/stdlib"
)

// readSource reads path as an SDL scene file. Every subcommand that takes a
// file argument goes through this so a directory passed by mistake reports
// the same cerrs.ErrInvalidInputPath instead of an os.PathError from a
// failed read.
func readSource(path string) ([]byte, error) {
	if isDir, err := stdlib.IsDirExists(path); err != nil {
		return nil, err
	} else if isDir {
		return nil, cerrs.ErrInvalidInputPath
	}
	return os.ReadFile(path)
}
