// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package sqlite_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/playbymail/sdlc/cerrs"
	"github.com/playbymail/sdlc/internal/cache/sqlite"
	"github.com/playbymail/sdlc/internal/ir"
)

func TestCreateOpenPutGetDelete(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cache.db")

	if err := sqlite.Create(path, ctx); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := sqlite.Create(path, ctx); !errors.Is(err, cerrs.ErrDatabaseExists) {
		t.Fatalf("want ErrDatabaseExists on second create, got %v", err)
	}

	store, err := sqlite.Open(path, ctx)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer store.Close()

	if _, err := store.Get("missing"); !errors.Is(err, cerrs.ErrCacheMiss) {
		t.Fatalf("want ErrCacheMiss, got %v", err)
	}

	scene := &ir.IrScene{Metadata: ir.IrMetadata{Name: "demo", Version: 1, IrVersion: "0.1.0", UnitSystem: "SI"}}
	if err := store.Put("k1", "demo.sdl", "0.1.0", scene); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := store.Get("k1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Metadata.Name != "demo" {
		t.Errorf("want name demo, got %q", got.Metadata.Name)
	}

	scene.Metadata.Name = "demo2"
	if err := store.Put("k1", "demo.sdl", "0.1.0", scene); err != nil {
		t.Fatalf("re-put: %v", err)
	}
	got, err = store.Get("k1")
	if err != nil {
		t.Fatalf("get after re-put: %v", err)
	}
	if got.Metadata.Name != "demo2" {
		t.Errorf("want upsert to replace name, got %q", got.Metadata.Name)
	}

	if n, err := store.Len(); err != nil || n != 1 {
		t.Errorf("want 1 entry, got %d, %v", n, err)
	}

	if err := store.Delete("k1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Get("k1"); !errors.Is(err, cerrs.ErrCacheMiss) {
		t.Fatalf("want ErrCacheMiss after delete, got %v", err)
	}
}

func TestOpenMissingPath(t *testing.T) {
	_, err := sqlite.Open(filepath.Join(t.TempDir(), "missing.db"), context.Background())
	if !errors.Is(err, cerrs.ErrInvalidPath) {
		t.Fatalf("want ErrInvalidPath, got %v", err)
	}
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cache.db")
	if err := sqlite.Create(path, ctx); err != nil {
		t.Fatal(err)
	}
	store, err := sqlite.Open(path, ctx)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	scene := &ir.IrScene{Metadata: ir.IrMetadata{Name: "demo"}}
	_ = store.Put("k1", "a.sdl", "0.1.0", scene)
	_ = store.Put("k2", "b.sdl", "0.1.0", scene)
	if err := store.Clear(); err != nil {
		t.Fatal(err)
	}
	if n, _ := store.Len(); n != 0 {
		t.Errorf("want 0 entries after clear, got %d", n)
	}
}
