// File: doc.go
// Title: Package Documentation for parser
// Description: Package parser implements the strict CF units-string grammar
//              "<unit> since <date>[ <time>[ <tz>]]" and the Unit
//              enumeration it produces.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-06
// Modified: 2025-03-06
//
// Change History:
// - 2025-03-06 v0.1.0: Initial implementation

// Package parser implements the CF units-string grammar.
//
// A units attribute like "days since 2000-01-01 00:00:00" fixes the
// reference point for every subsequent decode and encode, so parsing is
// strict: the unit word must come from the CF alias table, the literal
// "since" is mandatory, and the date, optional time, and optional timezone
// offset are fixed-width numeric fields. Any malformed field fails with
// UNIT_PARSER or PARSE_NUMBER naming the offending substring. Nanosecond
// unit words are not part of the grammar and are rejected.
//
// The parser only tokenizes and validates; materializing the reference
// datetime is left to the caller so the same parse result can serve a whole
// batch.
package parser
