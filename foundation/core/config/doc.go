// File: doc.go
// Title: Package Documentation for config
// Description: Package config loads tool configuration from TOML or YAML
//              files with environment variable overrides.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-07
// Modified: 2025-03-07
//
// Change History:
// - 2025-03-07 v0.1.0: Initial implementation

// Package config implements configuration loading for the cftime tools.
//
// Configuration files carry the defaults the CLI falls back to when a flag
// is not given: the calendar, the units string, the log level and format.
// Both TOML and YAML are accepted, detected from the file extension.
// Environment variables with the CFTIME_ prefix override file values, e.g.
// CFTIME_DEFAULTS_CALENDAR overrides the key "defaults.calendar".
//
// Keys use dot notation to address nested tables. Typed accessors return the
// caller's default when a key is absent, so a missing file section never
// fails at lookup time.
package config
