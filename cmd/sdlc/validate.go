// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/playbymail/sdlc/cerrs"
	"github.com/playbymail/sdlc/internal/compiler"
	"github.com/playbymail/sdlc/internal/diag"
)

var cmdValidate = &cobra.Command{
	Use:   "validate <file>",
	Short: "parse and validate an SDL scene without producing IR",
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
		diags, err := compiler.ValidateOnly(path, compiler.Registries{}, f)
		if len(diags) > 0 {
			printDiagnostics(source, diags)
		}
		if err != nil {
			return err
		}
		fmt.Printf("%s: valid\n", path)
		return nil
	},
}
