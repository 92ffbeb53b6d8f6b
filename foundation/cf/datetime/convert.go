// File: convert.go
// Title: Timestamp/Civil-Date Conversion Engine
// Description: Implements the leap-year-aware year walk shared by all
//              calendars with irregular years, plus the time-of-day helpers.
//              Pure integer arithmetic throughout; floor semantics for every
//              negative remainder.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-05
// Modified: 2025-03-05
//
// Change History:
// - 2025-03-05 v0.1.0: Initial implementation

package datetime

import (
	"math"

	"github.com/msto63/cftime/foundation/cf/calendar"
	cferror "github.com/msto63/cftime/foundation/core/error"
)

// leapFunc is the leap-year capability a calendar contributes to the walk
type leapFunc func(year int64) bool

// floorDiv divides rounding toward negative infinity
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// floorMod returns the non-negative remainder of floorDiv
func floorMod(a, b int64) int64 {
	return a - floorDiv(a, b)*b
}

// validateYMD bounds-checks the civil date fields for a calendar
func validateYMD(cal calendar.Calendar, year int64, month, day int) error {
	if month < 1 || month > 12 {
		return cferror.Newf("month %d is out of bounds", month).
			WithCode(cferror.CodeInvalidDate).
			WithDetail("month", month)
	}
	maxDay := 31
	if cal == calendar.Day360 {
		maxDay = 30
	}
	if day < 1 || day > maxDay {
		return cferror.Newf("day %d is out of bounds for calendar %s", day, cal).
			WithCode(cferror.CodeInvalidDate).
			WithDetail("day", day)
	}
	return nil
}

// timestampFromYMD walks year lengths from the epoch toward year, then adds
// the cumulative days preceding month and the remaining whole days. The
// date fields must already be validated.
func timestampFromYMD(year int64, month, day int, isLeap leapFunc) int64 {
	var ts int64

	current := year
	for current != calendar.EpochYear {
		// Crossing from year y to y+1 consumes the length of y, so the walk
		// looks at the year below the cursor when moving down
		lookAt := current
		if current > calendar.EpochYear {
			lookAt = current - 1
		}
		secondsInYear := calendar.SecondsPerYearNonLeap
		if isLeap(lookAt) {
			secondsInYear = calendar.SecondsPerYearLeap
		}
		if current > calendar.EpochYear {
			ts += secondsInYear
			current--
		} else {
			ts -= secondsInYear
			current++
		}
	}

	cum := &calendar.CumDaysPerMonth
	if isLeap(year) {
		cum = &calendar.CumDaysPerMonthLeap
	}
	ts += cum[month-1] * calendar.SecsPerDay
	ts += int64(day-1) * calendar.SecsPerDay
	return ts
}

// ymdhmsFromTimestamp inverts timestampFromYMD: it walks whole years until
// the remainder fits inside one, then whole months, then splits the
// remaining seconds-of-day. The remainder never goes negative, so negative
// timestamps floor toward the earlier day.
func ymdhmsFromTimestamp(ts int64, isLeap leapFunc) (int64, int, int, int, int, int) {
	remaining := ts
	year := calendar.EpochYear

	direction := int64(1)
	if ts < 0 {
		direction = -1
	}

	for {
		lookAt := year
		if direction < 0 {
			lookAt = year - 1
		}
		secondsInYear := calendar.SecondsPerYearNonLeap
		if isLeap(lookAt) {
			secondsInYear = calendar.SecondsPerYearLeap
		}

		next := remaining - direction*secondsInYear
		if direction > 0 && next < 0 {
			break
		}
		remaining = next
		year += direction
		if direction < 0 && next >= 0 {
			break
		}
	}

	monthDays := &calendar.DaysPerMonth
	if isLeap(year) {
		monthDays = &calendar.DaysPerMonthLeap
	}
	month := 0
	for month < 11 {
		secondsInMonth := monthDays[month] * calendar.SecsPerDay
		if remaining < secondsInMonth {
			break
		}
		remaining -= secondsInMonth
		month++
	}

	day := int(remaining / calendar.SecsPerDay)
	hour, minute, second := hmsFromSeconds(remaining)
	return year, month + 1, day + 1, hour, minute, second
}

// hmsFromSeconds splits the seconds-of-day of a timestamp, flooring negative
// inputs into the previous day
func hmsFromSeconds(ts int64) (int, int, int) {
	seconds := floorMod(ts, calendar.SecsPerDay)
	return int((seconds / calendar.SecsPerHour) % 24),
		int((seconds / calendar.SecsPerMinute) % 60),
		int(seconds % 60)
}

// timeOfDay validates the time fields and converts them into whole seconds
// of day plus a nanosecond remainder split off the fractional second
func timeOfDay(hour, minute int, second float64) (int64, uint32, error) {
	if hour < 0 || hour > 23 {
		return 0, 0, cferror.Newf("hour %d is out of bounds", hour).
			WithCode(cferror.CodeInvalidTime).
			WithDetail("hour", hour)
	}
	if minute < 0 || minute > 59 {
		return 0, 0, cferror.Newf("minute %d is out of bounds", minute).
			WithCode(cferror.CodeInvalidTime).
			WithDetail("minute", minute)
	}
	if second < 0 || second >= 60 {
		return 0, 0, cferror.Newf("second %g is out of bounds", second).
			WithCode(cferror.CodeInvalidTime).
			WithDetail("second", second)
	}

	whole := int64(second)
	nanoseconds := int64(math.Round((second - float64(whole)) * 1e9))
	if nanoseconds >= calendar.MaxNs {
		whole++
		nanoseconds -= calendar.MaxNs
	}

	total := int64(hour)*calendar.SecsPerHour + int64(minute)*calendar.SecsPerMinute + whole
	return total, uint32(nanoseconds), nil
}
