// File: doc.go
// Title: Package Documentation for datetime
// Description: Package datetime implements the calendar-aware CFDatetime type
//              and the timestamp/civil-date conversion engine behind it.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-05
// Modified: 2025-03-11
//
// Change History:
// - 2025-03-05 v0.1.0: Initial implementation
// - 2025-03-11 v0.1.1: Closed-form Day360 conversion in both directions

// Package datetime implements the CF datetime model.
//
// A CFDatetime is an instant held as a signed integer timestamp (seconds
// since 1970-01-01T00:00:00), a non-negative nanosecond remainder in
// [0, 1e9), a fixed UTC offset, and the owning calendar. The calendar is
// fixed at construction and selects which conversion ruleset applies; mixing
// calendars in arithmetic fails with DIFFERENT_CALENDARS.
//
// Timestamps convert to and from civil dates by walking year lengths from
// the 1970 epoch, leap-aware per calendar. The walk is intentionally linear
// in |year-1970|: exact integer arithmetic over closed-form approximations.
// Conversions therefore get slower far from the epoch (milliseconds around
// 10^15 seconds for the leap-rule calendars); the Day360 calendar instead
// converts in constant time through plain division. The Standard calendar
// follows Julian rules before 1582-10-15 and Gregorian rules from it onward,
// with the ten skipped days 1582-10-05..14 rejected as invalid on every
// construction path.
//
// CFDatetime values are immutable and safe to share across goroutines.
package datetime
