// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package cache_test

import (
	"testing"

	"github.com/playbymail/sdlc/internal/cache"
	"github.com/playbymail/sdlc/internal/ir"
)

func TestKeyIsDeterministicAndDistinguishesSplit(t *testing.T) {
	k1 := cache.Key([]byte("bc"), "a")
	k2 := cache.Key([]byte("c"), "ab")
	if k1 == k2 {
		t.Fatalf("want distinct keys for differently-split (fileID, source), got %q for both", k1)
	}
	if cache.Key([]byte("bc"), "a") != k1 {
		t.Fatal("want Key to be deterministic for identical inputs")
	}
}

func TestMemoryGetPutEviction(t *testing.T) {
	m, err := cache.NewMemory(2)
	if err != nil {
		t.Fatal(err)
	}
	scene1 := &ir.IrScene{Metadata: ir.IrMetadata{Name: "one"}}
	scene2 := &ir.IrScene{Metadata: ir.IrMetadata{Name: "two"}}
	scene3 := &ir.IrScene{Metadata: ir.IrMetadata{Name: "three"}}

	m.Put("k1", scene1)
	m.Put("k2", scene2)
	if _, ok := m.Get("k1"); !ok {
		t.Fatal("want k1 present")
	}
	m.Put("k3", scene3) // evicts k2, since k1 was just touched by Get
	if _, ok := m.Get("k2"); ok {
		t.Fatal("want k2 evicted")
	}
	if got, ok := m.Get("k1"); !ok || got.Metadata.Name != "one" {
		t.Fatalf("want k1 still present with scene1, got %+v, %v", got, ok)
	}
	if m.Len() != 2 {
		t.Errorf("want 2 entries, got %d", m.Len())
	}

	m.Purge()
	if m.Len() != 0 {
		t.Errorf("want empty cache after purge, got %d entries", m.Len())
	}
}
