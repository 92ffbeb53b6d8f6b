// File: duration.go
// Title: CF Duration Implementation
// Description: Implements the CFDuration value type: construction from any
//              unit, decomposition into any unit, and the normalized
//              arithmetic (add, subtract, negate, scale) used by the decode
//              and encode paths.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-05
// Modified: 2025-03-05
//
// Change History:
// - 2025-03-05 v0.1.0: Initial implementation

package duration

import (
	"fmt"
	"math"

	"github.com/msto63/cftime/foundation/cf/calendar"
	cferror "github.com/msto63/cftime/foundation/core/error"
)

// CFDuration is a signed elapsed-time quantity tagged with a calendar.
// The invariant seconds + nanoseconds/1e9 with nanoseconds in [0, 1e9)
// holds after every operation (floor semantics, not truncation).
type CFDuration struct {
	seconds     int64
	nanoseconds uint32
	cal         calendar.Calendar
}

// NormalizeNanoseconds floor-divides a signed nanosecond count into whole
// seconds and a non-negative remainder in [0, 1e9).
func NormalizeNanoseconds(nanoseconds int64) (int64, uint32) {
	seconds := nanoseconds / calendar.MaxNs
	remainder := nanoseconds % calendar.MaxNs
	if remainder < 0 {
		seconds--
		remainder += calendar.MaxNs
	}
	return seconds, uint32(remainder)
}

// New builds a normalized duration from seconds plus a signed nanosecond
// count that may lie outside [0, 1e9).
func New(seconds, nanoseconds int64, cal calendar.Calendar) CFDuration {
	carry, remainder := NormalizeNanoseconds(nanoseconds)
	return CFDuration{
		seconds:     seconds + carry,
		nanoseconds: remainder,
		cal:         cal,
	}
}

// FromYears builds a duration of the given number of calendar years.
// Year length follows the udunits definitions: the tropical year for
// Standard and ProlepticGregorian, the exact fixed length otherwise.
func FromYears(years int64, cal calendar.Calendar) CFDuration {
	return New(int64(cal.SecondsPerYear())*years, 0, cal)
}

// FromMonths builds a duration of the given number of calendar months,
// a month being one twelfth of the calendar's year.
func FromMonths(months int64, cal calendar.Calendar) CFDuration {
	perYear := FromYears(1, cal).seconds
	return New(perYear/12*months, 0, cal)
}

// FromWeeks builds a duration of the given number of 7-day weeks
func FromWeeks(weeks int64, cal calendar.Calendar) CFDuration {
	return New(weeks*7*calendar.SecsPerDay, 0, cal)
}

// FromDays builds a duration of the given number of 86400-second days
func FromDays(days int64, cal calendar.Calendar) CFDuration {
	return New(days*calendar.SecsPerDay, 0, cal)
}

// FromHours builds a duration of the given number of hours
func FromHours(hours int64, cal calendar.Calendar) CFDuration {
	return New(hours*calendar.SecsPerHour, 0, cal)
}

// FromMinutes builds a duration of the given number of minutes
func FromMinutes(minutes int64, cal calendar.Calendar) CFDuration {
	return New(minutes*calendar.SecsPerMinute, 0, cal)
}

// FromSeconds builds a duration of the given number of seconds
func FromSeconds(seconds int64, cal calendar.Calendar) CFDuration {
	return New(seconds, 0, cal)
}

// FromMilliseconds builds a duration of the given number of milliseconds
func FromMilliseconds(milliseconds int64, cal calendar.Calendar) CFDuration {
	return New(0, milliseconds*1_000_000, cal)
}

// FromMicroseconds builds a duration of the given number of microseconds
func FromMicroseconds(microseconds int64, cal calendar.Calendar) CFDuration {
	return New(0, microseconds*1_000, cal)
}

// FromNanoseconds builds a duration of the given number of nanoseconds
func FromNanoseconds(nanoseconds int64, cal calendar.Calendar) CFDuration {
	return New(0, nanoseconds, cal)
}

// Seconds returns the whole-second component (may be negative)
func (d CFDuration) Seconds() int64 {
	return d.seconds
}

// Nanoseconds returns the fractional remainder in [0, 1e9)
func (d CFDuration) Nanoseconds() uint32 {
	return d.nanoseconds
}

// Calendar returns the calendar tag
func (d CFDuration) Calendar() calendar.Calendar {
	return d.cal
}

// NumYears returns the duration expressed in calendar years. Approximate by
// nature: year length is the calendar's average, not any concrete year.
func (d CFDuration) NumYears() float64 {
	return d.NumSeconds() / d.cal.SecondsPerYear()
}

// NumMonths returns the duration expressed in calendar months
func (d CFDuration) NumMonths() float64 {
	return d.NumYears() * 12
}

// NumWeeks returns the duration expressed in 7-day weeks
func (d CFDuration) NumWeeks() float64 {
	return d.NumDays() / 7
}

// NumDays returns the duration expressed in 86400-second days
func (d CFDuration) NumDays() float64 {
	return d.NumHours() / 24
}

// NumHours returns the duration expressed in hours
func (d CFDuration) NumHours() float64 {
	return d.NumMinutes() / 60
}

// NumMinutes returns the duration expressed in minutes
func (d CFDuration) NumMinutes() float64 {
	return d.NumSeconds() / 60
}

// NumSeconds returns the duration expressed in seconds
func (d CFDuration) NumSeconds() float64 {
	return float64(d.seconds) + float64(d.nanoseconds)/1e9
}

// NumMilliseconds returns the duration expressed in milliseconds
func (d CFDuration) NumMilliseconds() float64 {
	return d.NumSeconds() * 1e3
}

// NumMicroseconds returns the duration expressed in microseconds
func (d CFDuration) NumMicroseconds() float64 {
	return d.NumSeconds() * 1e6
}

// NumNanoseconds returns the duration expressed in nanoseconds
func (d CFDuration) NumNanoseconds() float64 {
	return float64(d.seconds*calendar.MaxNs + int64(d.nanoseconds))
}

// Add returns d + other. Both operands must share a calendar.
func (d CFDuration) Add(other CFDuration) (CFDuration, error) {
	if d.cal != other.cal {
		return CFDuration{}, differentCalendars(d.cal, other.cal, "Add")
	}
	return New(d.seconds+other.seconds, int64(d.nanoseconds)+int64(other.nanoseconds), d.cal), nil
}

// Sub returns d - other. Both operands must share a calendar.
func (d CFDuration) Sub(other CFDuration) (CFDuration, error) {
	if d.cal != other.cal {
		return CFDuration{}, differentCalendars(d.cal, other.cal, "Sub")
	}
	return New(d.seconds-other.seconds, int64(d.nanoseconds)-int64(other.nanoseconds), d.cal), nil
}

// Neg returns the negated duration
func (d CFDuration) Neg() CFDuration {
	return New(-d.seconds, -int64(d.nanoseconds), d.cal)
}

// ScaleInt returns the duration multiplied by an integer factor, exactly
func (d CFDuration) ScaleInt(factor int64) CFDuration {
	return New(d.seconds*factor, int64(d.nanoseconds)*factor, d.cal)
}

// ScaleFloat returns the duration multiplied by a floating factor. The
// product is computed in double precision and the nanosecond remainder is
// re-floored, so negative fractional factors do not drift toward zero.
func (d CFDuration) ScaleFloat(factor float64) CFDuration {
	total := d.NumSeconds() * factor
	seconds := math.Floor(total)
	nanoseconds := int64(math.Round((total - seconds) * 1e9))
	return New(int64(seconds), nanoseconds, d.cal)
}

// String formats the duration as decimal seconds with its calendar
func (d CFDuration) String() string {
	return fmt.Sprintf("%d.%09ds (%s)", d.seconds, d.nanoseconds, d.cal)
}

func differentCalendars(a, b calendar.Calendar, op string) error {
	return cferror.Newf("different calendars found: %s and %s", a, b).
		WithCode(cferror.CodeDifferentCalendars).
		WithOperation(op)
}
