// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/playbymail/sdlc/cerrs"
	"github.com/playbymail/sdlc/internal/compiler"
	"github.com/playbymail/sdlc/internal/diag"
)

var cmdParse = &cobra.Command{
	Use:   "parse <file>",
	Short: "parse an SDL scene and report the first syntax error, if any",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		source, err := readSource(path)
		if err != nil {
			return err
		}
		f, d := compiler.ParseOnly(source, path)
		if d != nil {
			printDiagnostics(source, []diag.Diagnostic{*d})
			return cerrs.ErrParseFailed
		}
		fmt.Printf("%s: ok (%d entities, %d constraints, %d motions, %d timelines)\n",
			path, len(f.Entities), len(f.Constraints), len(f.Motions), len(f.Timelines))
		return nil
	},
}
