// File: calendar.go
// Title: Calendar Enumeration and Name Parsing
// Description: Implements the Calendar type, its display names, and the
//              case-insensitive parsing of CF calendar attribute values with
//              both the lenient (default Standard) and strict variants.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-04
// Modified: 2025-03-04
//
// Change History:
// - 2025-03-04 v0.1.0: Initial implementation

package calendar

import (
	"strings"

	cferror "github.com/msto63/cftime/foundation/core/error"
)

// Calendar identifies one of the six CF Conventions calendar rulesets.
// It is a copyable value; equality of calendars is required before any
// arithmetic combining two datetimes or durations.
type Calendar int

const (
	// Standard is the historical hybrid calendar: Julian rules before the
	// 1582-10-15 reform, Gregorian rules from it onward. The ten days
	// 1582-10-05 through 1582-10-14 do not exist.
	Standard Calendar = iota

	// ProlepticGregorian applies Gregorian rules indefinitely in both
	// directions, ignoring the historical adoption date.
	ProlepticGregorian

	// Julian applies the 4-year leap rule indefinitely.
	Julian

	// NoLeap has fixed 365-day years (CF names: noleap, 365_day).
	NoLeap

	// AllLeap has fixed 366-day years (CF names: all_leap, 366_day).
	AllLeap

	// Day360 has twelve fixed 30-day months and 360-day years.
	Day360
)

// Default returns the calendar assumed when a dataset carries none.
func Default() Calendar {
	return Standard
}

// String returns the display name of the calendar
func (c Calendar) String() string {
	switch c {
	case Standard:
		return "Standard"
	case ProlepticGregorian:
		return "Proleptic Gregorian"
	case Julian:
		return "Julian"
	case NoLeap:
		return "No Leap"
	case AllLeap:
		return "All Leap"
	case Day360:
		return "360 Day"
	default:
		return "unknown"
	}
}

// Attribute returns the canonical CF attribute value for the calendar
func (c Calendar) Attribute() string {
	switch c {
	case Standard:
		return "standard"
	case ProlepticGregorian:
		return "proleptic_gregorian"
	case Julian:
		return "julian"
	case NoLeap:
		return "no_leap"
	case AllLeap:
		return "all_leap"
	case Day360:
		return "360_day"
	default:
		return "unknown"
	}
}

// Aliases returns the accepted attribute spellings for the calendar
func (c Calendar) Aliases() []string {
	switch c {
	case Standard:
		return []string{"standard", "gregorian"}
	case ProlepticGregorian:
		return []string{"proleptic_gregorian"}
	case Julian:
		return []string{"julian"}
	case NoLeap:
		return []string{"no_leap", "noleap", "day365", "365_day"}
	case AllLeap:
		return []string{"all_leap", "allleap", "day366", "366_day"}
	case Day360:
		return []string{"360_day", "day360"}
	default:
		return nil
	}
}

// All lists every calendar in declaration order
func All() []Calendar {
	return []Calendar{Standard, ProlepticGregorian, Julian, NoLeap, AllLeap, Day360}
}

// lookup resolves a normalized attribute value to a calendar
func lookup(name string) (Calendar, bool) {
	for _, c := range All() {
		for _, alias := range c.Aliases() {
			if name == alias {
				return c, true
			}
		}
	}
	return Standard, false
}

// Parse resolves a CF calendar attribute value case-insensitively.
// Unrecognized names fall back to Standard; this lenient behavior is what
// existing file metadata relies on. Use ParseStrict to fail instead.
func Parse(name string) Calendar {
	c, _ := lookup(strings.ToLower(strings.TrimSpace(name)))
	return c
}

// ParseStrict resolves a CF calendar attribute value case-insensitively and
// returns an INVALID_CALENDAR error for unrecognized names.
func ParseStrict(name string) (Calendar, error) {
	c, ok := lookup(strings.ToLower(strings.TrimSpace(name)))
	if !ok {
		return Standard, cferror.Newf("unknown calendar %q", name).
			WithCode(cferror.CodeInvalidCalendar).
			WithOperation("ParseStrict")
	}
	return c, nil
}
