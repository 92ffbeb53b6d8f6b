// File: doc.go
// Title: Package Documentation for log
// Description: Package log provides structured logging for the cftime
//              command-line tools with leveled output, multiple formats, and
//              contextual fields.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-07
// Modified: 2025-03-07
//
// Change History:
// - 2025-03-07 v0.1.0: Initial implementation

// Package log implements structured, leveled logging.
//
// The conversion packages themselves never log; they are pure and report
// failures as errors. Logging belongs to the surfaces around them: the CLI
// reports batch progress and configuration, the TUI its interactions. A
// Logger is an immutable configuration; the With* methods return augmented
// copies, so a derived logger can be handed to a subsystem without affecting
// the parent.
//
// Three output formats are supported: JSON for machine consumption, plain
// text, and colored console output for interactive use.
package log
