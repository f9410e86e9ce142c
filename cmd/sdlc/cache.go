// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/playbymail/sdlc/cerrs"
	"github.com/playbymail/sdlc/internal/cache/sqlite"
)

var argsCache struct {
	path  string
	force bool
}

var cmdCache = &cobra.Command{
	Use:   "cache",
	Short: "inspect and manage the compile cache database",
}

var cmdCacheInit = &cobra.Command{
	Use:   "init",
	Short: "create a new, empty cache database",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cachePath()
		err := sqlite.Create(path, context.Background())
		if argsCache.force && errors.Is(err, cerrs.ErrDatabaseExists) {
			if err := os.Remove(path); err != nil {
				return err
			}
			err = sqlite.Create(path, context.Background())
		}
		if err != nil {
			return err
		}
		fmt.Printf("cache: created %s\n", path)
		return nil
	},
}

var cmdCacheShow = &cobra.Command{
	Use:   "show",
	Short: "print the number of entries in the cache database",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cachePath()
		store, err := sqlite.Open(path, context.Background())
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()
		n, err := store.Len()
		if err != nil {
			return err
		}
		fmt.Printf("%s: %d entries\n", path, n)
		return nil
	},
}

var cmdCacheClear = &cobra.Command{
	Use:   "clear",
	Short: "remove every entry from the cache database",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cachePath()
		store, err := sqlite.Open(path, context.Background())
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()
		if err := store.Clear(); err != nil {
			return err
		}
		fmt.Printf("%s: cleared\n", path)
		return nil
	},
}

func init() {
	cmdCache.PersistentFlags().StringVar(&argsCache.path, "path", "", "path to the cache database (default from sdlc.json)")
	cmdCacheInit.Flags().BoolVar(&argsCache.force, "force", false, "overwrite an existing cache database")
}

func cachePath() string {
	if argsCache.path != "" {
		return argsCache.path
	}
	if globalConfig != nil && globalConfig.Cache.Path != "" {
		return globalConfig.Cache.Path
	}
	return "sdlc-cache.db"
}
