// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"log"

	_ "modernc.org/sqlite"

	"github.com/playbymail/sdlc/cerrs"
	"github.com/playbymail/sdlc/internal/ir"
	"github.com/playbymail/sdlc/internal/stdlib"
)

//go:embed schema.sql
var schemaDDL string

// Create creates a new, empty cache database. Returns cerrs.ErrDatabaseExists
// if path already exists; the caller must delete it first to start fresh.
func Create(path string, ctx context.Context) error {
	if ok, err := stdlib.IsFileExists(path); err != nil {
		log.Printf("cache/sqlite: create: %q: %v\n", path, err)
		return err
	} else if ok {
		return cerrs.ErrDatabaseExists
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		log.Printf("cache/sqlite: create: %v\n", err)
		return err
	}
	defer func() { _ = db.Close() }()

	if rslt, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return cerrs.ErrForeignKeysDisabled
	} else if rslt == nil {
		return cerrs.ErrPragmaReturnedNil
	}

	if _, err := db.Exec(schemaDDL); err != nil {
		log.Printf("cache/sqlite: create: failed to initialize schema: %v\n", err)
		return errors.Join(cerrs.ErrCreateSchema, err)
	}

	log.Printf("cache/sqlite: create: created %s\n", path)
	return nil
}

// Store wraps a database/sql handle for the cache table.
type Store struct {
	path string
	db   *sql.DB
	ctx  context.Context
}

// Open opens an existing cache database. Returns cerrs.ErrInvalidPath if
// path does not already exist or is not a regular file.
func Open(path string, ctx context.Context) (*Store, error) {
	if ok, err := stdlib.IsFileExists(path); err != nil {
		return nil, err
	} else if !ok {
		return nil, cerrs.ErrInvalidPath
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if rslt, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		return nil, cerrs.ErrForeignKeysDisabled
	} else if rslt == nil {
		_ = db.Close()
		return nil, cerrs.ErrPragmaReturnedNil
	}

	return &Store{path: path, db: db, ctx: ctx}, nil
}

func (s *Store) Close() error {
	var err error
	if s != nil && s.db != nil {
		err = s.db.Close()
		s.db = nil
	}
	return err
}

// Put upserts the scene under key, replacing any earlier entry for the
// same key since the source it was compiled from is, by definition of the
// key, identical.
func (s *Store) Put(key, fileID, irVersion string, scene *ir.IrScene) error {
	data, err := json.Marshal(scene)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(s.ctx, `
		INSERT INTO compiles (cache_key, file_id, ir_version, ir_json)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (cache_key) DO UPDATE SET
			file_id = excluded.file_id,
			ir_version = excluded.ir_version,
			ir_json = excluded.ir_json`,
		key, fileID, irVersion, string(data))
	return err
}

// Get returns the cached scene for key, or cerrs.ErrCacheMiss.
func (s *Store) Get(key string) (*ir.IrScene, error) {
	var data string
	err := s.db.QueryRowContext(s.ctx,
		`SELECT ir_json FROM compiles WHERE cache_key = ?`, key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, cerrs.ErrCacheMiss
	} else if err != nil {
		return nil, err
	}
	var scene ir.IrScene
	if err := json.Unmarshal([]byte(data), &scene); err != nil {
		return nil, err
	}
	return &scene, nil
}

// Delete removes the cached entry for key, if any. It is not an error to
// delete a key that does not exist.
func (s *Store) Delete(key string) error {
	_, err := s.db.ExecContext(s.ctx, `DELETE FROM compiles WHERE cache_key = ?`, key)
	return err
}

// Clear removes every cached entry.
func (s *Store) Clear() error {
	_, err := s.db.ExecContext(s.ctx, `DELETE FROM compiles`)
	return err
}

// Len returns the number of cached entries.
func (s *Store) Len() (int, error) {
	var n int
	err := s.db.QueryRowContext(s.ctx, `SELECT COUNT(*) FROM compiles`).Scan(&n)
	return n, err
}
