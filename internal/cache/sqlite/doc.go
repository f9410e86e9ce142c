// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package sqlite is the persistent backing store for internal/cache: one
// table mapping a compile's cache key to its serialized IR, so repeat
// compiles of an unchanged scene survive process restarts. It follows the
// same Create/Open, PRAGMA-checked, embedded-schema shape the host's other
// sqlite store uses, but talks to database/sql directly with hand-written
// queries instead of a generated query layer.
package sqlite
