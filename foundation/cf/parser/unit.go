// File: unit.go
// Title: Duration Unit Enumeration
// Description: Defines the Unit tag produced by the units-string parser and
//              its mapping to a magnitude-1 calendar duration.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-06
// Modified: 2025-03-06
//
// Change History:
// - 2025-03-06 v0.1.0: Initial implementation

package parser

import (
	"github.com/msto63/cftime/foundation/cf/calendar"
	"github.com/msto63/cftime/foundation/cf/duration"
)

// Unit is the base unit of a CF units string
type Unit int

const (
	UnitYear Unit = iota
	UnitMonth
	UnitDay
	UnitHour
	UnitMinute
	UnitSecond
	UnitMillisecond
	UnitMicrosecond
	UnitNanosecond
)

// String returns the canonical name of the unit
func (u Unit) String() string {
	switch u {
	case UnitYear:
		return "year"
	case UnitMonth:
		return "month"
	case UnitDay:
		return "day"
	case UnitHour:
		return "hour"
	case UnitMinute:
		return "minute"
	case UnitSecond:
		return "second"
	case UnitMillisecond:
		return "millisecond"
	case UnitMicrosecond:
		return "microsecond"
	case UnitNanosecond:
		return "nanosecond"
	default:
		return "unknown"
	}
}

// Duration returns the magnitude-1 duration of the unit in a calendar, the
// quantity the codec scales by a numeric offset
func (u Unit) Duration(cal calendar.Calendar) duration.CFDuration {
	switch u {
	case UnitYear:
		return duration.FromYears(1, cal)
	case UnitMonth:
		return duration.FromMonths(1, cal)
	case UnitDay:
		return duration.FromDays(1, cal)
	case UnitHour:
		return duration.FromHours(1, cal)
	case UnitMinute:
		return duration.FromMinutes(1, cal)
	case UnitSecond:
		return duration.FromSeconds(1, cal)
	case UnitMillisecond:
		return duration.FromMilliseconds(1, cal)
	case UnitMicrosecond:
		return duration.FromMicroseconds(1, cal)
	case UnitNanosecond:
		return duration.FromNanoseconds(1, cal)
	default:
		return duration.FromSeconds(1, cal)
	}
}

// Decompose expresses a duration in the unit, the inverse of Duration
// followed by scaling
func (u Unit) Decompose(d duration.CFDuration) float64 {
	switch u {
	case UnitYear:
		return d.NumYears()
	case UnitMonth:
		return d.NumMonths()
	case UnitDay:
		return d.NumDays()
	case UnitHour:
		return d.NumHours()
	case UnitMinute:
		return d.NumMinutes()
	case UnitSecond:
		return d.NumSeconds()
	case UnitMillisecond:
		return d.NumMilliseconds()
	case UnitMicrosecond:
		return d.NumMicroseconds()
	case UnitNanosecond:
		return d.NumNanoseconds()
	default:
		return d.NumSeconds()
	}
}

// unitAliases maps the CF unit words onto units. Nanosecond words are
// deliberately absent: the grammar does not accept them.
var unitAliases = map[string]Unit{
	"common_years": UnitYear,
	"common_year":  UnitYear,

	"months": UnitMonth,
	"month":  UnitMonth,

	"days": UnitDay,
	"day":  UnitDay,
	"d":    UnitDay,

	"hours": UnitHour,
	"hour":  UnitHour,
	"hrs":   UnitHour,
	"hr":    UnitHour,
	"h":     UnitHour,

	"minutes": UnitMinute,
	"minute":  UnitMinute,
	"mins":    UnitMinute,
	"min":     UnitMinute,

	"seconds": UnitSecond,
	"second":  UnitSecond,
	"secs":    UnitSecond,
	"sec":     UnitSecond,
	"s":       UnitSecond,

	"milliseconds": UnitMillisecond,
	"millisecond":  UnitMillisecond,
	"millisecs":    UnitMillisecond,
	"millisec":     UnitMillisecond,
	"msecs":        UnitMillisecond,
	"msec":         UnitMillisecond,
	"ms":           UnitMillisecond,

	"microseconds": UnitMicrosecond,
	"microsecond":  UnitMicrosecond,
	"microsecs":    UnitMicrosecond,
	"microsec":     UnitMicrosecond,
}
