// File: doc.go
// Title: Package Documentation for duration
// Description: Package duration implements the calendar-aware elapsed-time
//              quantity used by the CF decode and encode paths.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-05
// Modified: 2025-03-05
//
// Change History:
// - 2025-03-05 v0.1.0: Initial implementation

// Package duration implements the CF duration model.
//
// A CFDuration is a signed elapsed-time quantity held as an integer number of
// seconds plus a non-negative nanosecond remainder in [0, 1e9), tagged with
// the calendar its year and month lengths are defined against. The pair is
// floor-normalized after every operation: a duration of -0.5 seconds is held
// as seconds = -1, nanoseconds = 500_000_000.
//
// Construction from years and months depends on the calendar (a NoLeap year
// is exactly 365 days, a Standard year is the udunits tropical year, ...);
// construction from weeks down to nanoseconds is calendar-independent and
// exact. Decomposition mirrors construction: NumDays and below are exact,
// NumYears and NumMonths are approximate by nature and tested against an
// epsilon.
//
// Durations are immutable values. Combining two durations requires equal
// calendar tags and fails with DIFFERENT_CALENDARS otherwise.
package duration
