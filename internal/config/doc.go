// Package config loads the optional sdlc.json host configuration: default
// unit system, default library search set, and compile-cache settings. It
// never fails a compile — a missing or malformed config file falls back to
// Default() and is only logged.
package config
