// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package main implements the sdlc command line tool: compile, parse,
// validate, and cache-inspect SDL scene files.
package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/maloquacious/semver"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/playbymail/sdlc/internal/config"
)

var (
	version = semver.Version{
		Major: 0,
		Minor: 1,
		Patch: 0,
		Build: semver.Commit(),
	}
	globalConfig *config.Config
	useColor     bool
)

var cmdRoot = &cobra.Command{
	Use:           "sdlc",
	Short:         "SDL scene compiler",
	Long:          `Compile, parse, validate, and inspect the cache for SDL scene files.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logLevel, err := cmd.Root().PersistentFlags().GetString("log-level")
		if err != nil {
			return err
		}
		var lvl slog.Level
		switch logLevel {
		case "debug":
			lvl = slog.LevelDebug
		case "info":
			lvl = slog.LevelInfo
		case "warn", "warning":
			lvl = slog.LevelWarn
		case "error":
			lvl = slog.LevelError
		default:
			return fmt.Errorf("log-level: unknown value %q", logLevel)
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
		return nil
	},
}

func main() {
	for _, arg := range os.Args {
		if arg == "-version" || arg == "--version" {
			fmt.Printf("%s\n", version.Short())
			return
		} else if arg == "-build-info" || arg == "--build-info" {
			fmt.Printf("%s\n", version.String())
			return
		}
	}
	log.SetFlags(log.Lshortfile | log.Ltime)

	cfg, err := config.Load("sdlc.json", false)
	if err != nil {
		log.Printf("[config] %v\n", err)
	}
	globalConfig = cfg
	useColor = isatty.IsTerminal(os.Stdout.Fd())

	if err := Execute(); err != nil {
		log.Fatal(err)
	}
}

func Execute() error {
	cmdRoot.PersistentFlags().String("log-level", "error", "logging level (debug|info|warn|error)")

	cmdRoot.AddCommand(cmdCompile)
	cmdRoot.AddCommand(cmdParse)
	cmdRoot.AddCommand(cmdValidate)
	cmdRoot.AddCommand(cmdVersion)

	cmdRoot.AddCommand(cmdCache)
	cmdCache.AddCommand(cmdCacheInit)
	cmdCache.AddCommand(cmdCacheShow)
	cmdCache.AddCommand(cmdCacheClear)

	return cmdRoot.Execute()
}
