// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package cache memoizes compile results keyed by the SHA-256 of a scene's
// (source, file_id) pair. Memory is an in-process LRU front; cache/sqlite
// backs it with a persistent store so repeat compiles of unchanged scenes
// skip the pipeline entirely across process restarts.
package cache
