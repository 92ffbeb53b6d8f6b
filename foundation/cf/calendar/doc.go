// File: doc.go
// Title: Package Documentation for calendar
// Description: Package calendar defines the closed set of CF Conventions
//              calendars together with their leap-year rules, month-length
//              tables, and name parsing.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-04
// Modified: 2025-03-04
//
// Change History:
// - 2025-03-04 v0.1.0: Initial implementation

// Package calendar defines the CF Conventions calendar systems.
//
// A Calendar is an immutable value selecting which conversion rules apply to
// every datetime and duration computation: Standard (the historical
// Julian-to-Gregorian hybrid), ProlepticGregorian, Julian, NoLeap (fixed
// 365-day years), AllLeap (fixed 366-day years), and Day360 (twelve fixed
// 30-day months).
//
// The package also holds the precomputed month-length and cumulative
// day-of-year tables shared by the conversion engine, and the per-calendar
// average year lengths used by the duration model. All tables are computed
// once at package initialization and are read-only afterwards.
//
// Calendar names are parsed from the identifiers used in scientific file
// metadata ("standard", "proleptic_gregorian", "no_leap", "360_day", ...).
// Parse falls back to Standard for unrecognized names, matching the behavior
// existing datasets rely on; ParseStrict fails loudly instead and is what the
// CLI uses.
package calendar
