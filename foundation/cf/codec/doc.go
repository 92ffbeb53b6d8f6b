// File: doc.go
// Title: Package Documentation for codec
// Description: Package codec converts between numeric offsets and datetimes
//              under a CF units string, generically over the four numeric
//              kinds CF files carry.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-06
// Modified: 2025-03-06
//
// Change History:
// - 2025-03-06 v0.1.0: Initial implementation

// Package codec implements CF decode and encode.
//
// Decoding turns a numeric offset like 2 under "days since 2000-01-01" into
// the datetime 2000-01-03; encoding is the inverse. The numeric kind matters:
// integer offsets scale the unit duration exactly, floating offsets scale in
// double precision, so both paths are kept distinct under one generic
// signature over int32, int64, float32 and float64.
//
// The batch forms parse the units string and build the reference datetime
// once and reuse them for every element. All values involved are immutable,
// so callers may partition a large offset array across goroutines and decode
// each slice independently.
package codec
