// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/playbymail/sdlc/cerrs"
	"github.com/playbymail/sdlc/internal/cache"
	"github.com/playbymail/sdlc/internal/cache/sqlite"
	"github.com/playbymail/sdlc/internal/compiler"
	"github.com/playbymail/sdlc/internal/diag"
	"github.com/playbymail/sdlc/internal/ir"
	"github.com/playbymail/sdlc/internal/stdlib"
)

var argsCompile struct {
	output  string
	noCache bool
}

// compileMemCache is the in-process LRU front for the sqlite-backed compile
// cache (§ "Compile cache"). It is shared across every compile in this
// process, lazily sized from sdlc.json's Cache.Capacity the first time it
// is needed.
var compileMemCache *cache.Memory

var cmdCompile = &cobra.Command{
	Use:   "compile <file>",
	Short: "compile an SDL scene to JSON IR",
	Long:  `Run the full pipeline and write the resulting IR as JSON, or report every diagnostic found.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		source, err := readSource(path)
		if err != nil {
			return err
		}
		if len(source) == 0 {
			return cerrs.ErrEmptySource
		}

		started := time.Now()
		key := cache.Key(source, path)

		var scene *ir.IrScene
		var warnings []diag.Diagnostic
		cacheHit := false
		if cacheEnabled() {
			if s, ok := lookupCache(key); ok {
				scene, cacheHit = s, true
			}
		}

		if !cacheHit {
			result, diags := compiler.Compile(source, path, compiler.Registries{})
			if result == nil {
				printDiagnostics(source, diags)
				return fmt.Errorf("compile failed with %d diagnostic(s)", len(diags))
			}
			scene, warnings = result.Scene, result.Warnings
			if cacheEnabled() {
				storeCache(key, path, scene)
			}
		}
		if len(warnings) > 0 {
			printDiagnostics(source, warnings)
		}

		data, err := json.MarshalIndent(scene, "", "  ")
		if err != nil {
			return err
		}

		out := os.Stdout
		if argsCompile.output != "" {
			if isDir, err := stdlib.IsDirExists(argsCompile.output); err != nil {
				return err
			} else if isDir {
				return cerrs.ErrInvalidOutputPath
			}
			f, err := os.Create(argsCompile.output)
			if err != nil {
				return err
			}
			defer func() { _ = f.Close() }()
			out = f
		}
		if _, err := out.Write(data); err != nil {
			return err
		}
		if _, err := out.Write([]byte("\n")); err != nil {
			return err
		}

		status := "compiled"
		if cacheHit {
			status = "compiled (cache hit)"
		}
		fmt.Fprintf(os.Stderr, "%s %s (%s) in %s\n",
			status, path, humanize.Bytes(uint64(len(source))), time.Since(started))
		return nil
	},
}

func init() {
	cmdCompile.Flags().StringVar(&argsCompile.output, "output", "", "write IR JSON to this file instead of stdout")
	cmdCompile.Flags().BoolVar(&argsCompile.noCache, "no-cache", false, "skip the compile cache for this invocation")
}

func printDiagnostics(source []byte, diags []diag.Diagnostic) {
	f := diag.NewFormatter(source)
	f.Color = useColor
	fmt.Fprint(os.Stderr, f.FormatAll(diags))
	fmt.Fprintln(os.Stderr)
}

// cacheEnabled reports whether compile should consult the compile cache:
// on by default, off via --no-cache or Cache.Enabled=false in sdlc.json.
func cacheEnabled() bool {
	return !argsCompile.noCache && globalConfig != nil && globalConfig.Cache.Enabled
}

func cacheCapacity() int {
	if globalConfig != nil && globalConfig.Cache.Capacity > 0 {
		return globalConfig.Cache.Capacity
	}
	return 256
}

func cacheDBPath() string {
	if globalConfig != nil && globalConfig.Cache.Path != "" {
		return globalConfig.Cache.Path
	}
	return "sdlc-cache.db"
}

// lookupCache checks the in-process Memory front, then the persistent
// sqlite store, for key. A persistent hit is promoted into Memory so the
// next lookup in this process is free.
func lookupCache(key string) (*ir.IrScene, bool) {
	if compileMemCache == nil {
		if m, err := cache.NewMemory(cacheCapacity()); err == nil {
			compileMemCache = m
		}
	}
	if compileMemCache != nil {
		if scene, ok := compileMemCache.Get(key); ok {
			return scene, true
		}
	}

	store, err := sqlite.Open(cacheDBPath(), context.Background())
	if err != nil {
		return nil, false
	}
	defer func() { _ = store.Close() }()

	scene, err := store.Get(key)
	if err != nil {
		if !errors.Is(err, cerrs.ErrCacheMiss) {
			slog.Default().Warn("cache: lookup failed", "error", err)
		}
		return nil, false
	}
	if compileMemCache != nil {
		compileMemCache.Put(key, scene)
	}
	return scene, true
}

// storeCache writes scene into Memory and the persistent sqlite store,
// creating the database file on first use. Cache write failures are
// logged, not returned: a cache miss next time costs a recompile, nothing
// worse.
func storeCache(key, fileID string, scene *ir.IrScene) {
	if compileMemCache == nil {
		if m, err := cache.NewMemory(cacheCapacity()); err == nil {
			compileMemCache = m
		}
	}
	if compileMemCache != nil {
		compileMemCache.Put(key, scene)
	}

	dbPath := cacheDBPath()
	store, err := sqlite.Open(dbPath, context.Background())
	if errors.Is(err, cerrs.ErrInvalidPath) {
		if err := sqlite.Create(dbPath, context.Background()); err != nil {
			slog.Default().Warn("cache: create failed", "path", dbPath, "error", err)
			return
		}
		store, err = sqlite.Open(dbPath, context.Background())
	}
	if err != nil {
		slog.Default().Warn("cache: open failed", "path", dbPath, "error", err)
		return
	}
	defer func() { _ = store.Close() }()

	if err := store.Put(key, fileID, scene.Metadata.IrVersion, scene); err != nil {
		slog.Default().Warn("cache: store failed", "path", dbPath, "error", err)
	}
}
