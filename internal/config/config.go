// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package config

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"reflect"

	"github.com/playbymail/sdlc/cerrs"
)

// Config holds host-level defaults for the sdlc CLI. None of it changes the
// compiler's semantics (§5: the core stays purely functional) — it only
// seeds flags the CLI would otherwise require on every invocation.
type Config struct {
	DefaultUnitSystem string       `json:"DefaultUnitSystem,omitempty"`
	Libraries         Libraries_t  `json:"Libraries"`
	Cache             Cache_t      `json:"Cache"`
	DebugFlags        DebugFlags_t `json:"DebugFlags"`
}

// Libraries_t lists libraries the host wants importable by default, beyond
// the ones the scene file names in its own library_imports block. Neither
// the compiler nor any sdlc command reads it; compiles use the built-in
// library registry.
type Libraries_t struct {
	Search []string `json:"Search,omitempty"`
}

type Cache_t struct {
	Enabled  bool   `json:"Enabled,omitempty"`
	Path     string `json:"Path,omitempty"`
	Capacity int    `json:"Capacity,omitempty"`
}

type DebugFlags_t struct {
	LogSource bool `json:"LogSource,omitempty"`
	LogTime   bool `json:"LogTime,omitempty"`
}

// Default returns the configuration used when no sdlc.json is found.
func Default() *Config {
	return &Config{
		DefaultUnitSystem: "SI",
		Cache: Cache_t{
			Enabled:  true,
			Path:     "sdlc-cache.db",
			Capacity: 256,
		},
	}
}

// Load reads name and merges non-zero fields over Default(). A missing file
// is not an error — it is the expected case for most invocations — but a
// file that exists and is not a regular file, or that fails to parse, is
// reported to the caller; debug controls whether details are also logged.
func Load(name string, debug bool) (*Config, error) {
	if debug {
		log.Printf("[config] %q: loading configuration...\n", name)
	}
	cfg := Default()
	sb, err := os.Stat(name)
	if errors.Is(err, os.ErrNotExist) {
		if debug {
			log.Printf("[config] %q: %v\n", name, err)
		}
		return cfg, nil
	} else if err != nil {
		return cfg, err
	} else if sb.Mode().IsDir() {
		return cfg, cerrs.ErrNotAFile
	} else if !sb.Mode().IsRegular() {
		return cfg, cerrs.ErrNotAFile
	}

	data, err := os.ReadFile(name)
	if err != nil {
		return cfg, err
	}
	var tmp Config
	if err := json.Unmarshal(data, &tmp); err != nil {
		return cfg, err
	}
	if debug {
		if nice, err := json.MarshalIndent(tmp, "", "  "); err == nil {
			log.Printf("[config] %s\n", nice)
		}
	}

	copyNonZeroFields(&tmp, cfg)

	// copyNonZeroFields cannot tell an explicit false from an absent field,
	// so Cache.Enabled is read on its own to let sdlc.json turn the cache off.
	var explicit struct {
		Cache struct {
			Enabled *bool `json:"Enabled"`
		} `json:"Cache"`
	}
	if err := json.Unmarshal(data, &explicit); err == nil && explicit.Cache.Enabled != nil {
		cfg.Cache.Enabled = *explicit.Cache.Enabled
	}

	return cfg, nil
}

// copyNonZeroFields recursively copies non-zero fields from src to dst using reflection
func copyNonZeroFields(src, dst interface{}) {
	srcVal := reflect.ValueOf(src)
	dstVal := reflect.ValueOf(dst)

	if srcVal.Kind() == reflect.Ptr {
		srcVal = srcVal.Elem()
	}
	if dstVal.Kind() == reflect.Ptr {
		dstVal = dstVal.Elem()
	}

	if srcVal.Kind() != reflect.Struct || dstVal.Kind() != reflect.Struct {
		return
	}

	for i := 0; i < srcVal.NumField(); i++ {
		srcField := srcVal.Field(i)
		dstField := dstVal.Field(i)

		if !srcField.CanInterface() || !dstField.CanSet() {
			continue
		}
		if srcField.IsZero() {
			continue
		}

		switch srcField.Kind() {
		case reflect.Struct:
			copyNonZeroFields(srcField.Interface(), dstField.Addr().Interface())
		default:
			dstField.Set(srcField)
		}
	}
}
