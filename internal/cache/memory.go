// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package cache

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/playbymail/sdlc/internal/ir"
)

// Memory is an in-process, size-bounded front for compiled scenes. It never
// talks to disk; cache/sqlite is the persistent layer a host wires in front
// of or behind it.
type Memory struct {
	entries *lru.Cache[string, *ir.IrScene]
}

// NewMemory returns a Memory holding at most capacity entries, evicting the
// least recently used scene once full.
func NewMemory(capacity int) (*Memory, error) {
	c, err := lru.New[string, *ir.IrScene](capacity)
	if err != nil {
		return nil, err
	}
	return &Memory{entries: c}, nil
}

// Get returns the cached scene for key, if present.
func (m *Memory) Get(key string) (*ir.IrScene, bool) {
	return m.entries.Get(key)
}

// Put stores scene under key, possibly evicting the least recently used
// entry.
func (m *Memory) Put(key string, scene *ir.IrScene) {
	m.entries.Add(key, scene)
}

// Len returns the number of entries currently cached.
func (m *Memory) Len() int {
	return m.entries.Len()
}

// Purge empties the cache.
func (m *Memory) Purge() {
	m.entries.Purge()
}
