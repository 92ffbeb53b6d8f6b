// File: day360.go
// Title: 360-Day Calendar Ruleset
// Description: Implements the Day360 conversion in closed form. With twelve
//              fixed 30-day months every conversion reduces to division and
//              modulo on day counts, so the year walk is never needed and
//              conversion cost is constant regardless of distance from the
//              epoch.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-05
// Modified: 2025-03-11
//
// Change History:
// - 2025-03-05 v0.1.0: Initial implementation
// - 2025-03-11 v0.1.1: Closed form for the civil-to-timestamp direction too

package datetime

import (
	"github.com/msto63/cftime/foundation/cf/calendar"
)

// day360TimestampFromYMD converts a Day360 civil date directly:
// (year-1970) whole years of 360 days plus whole 30-day months plus days
func day360TimestampFromYMD(year int64, month, day int) int64 {
	days := (year-calendar.EpochYear)*calendar.DaysPerYear360 +
		int64(month-1)*30 + int64(day-1)
	return days * calendar.SecsPerDay
}

// day360YMDHMSFromTimestamp inverts day360TimestampFromYMD through floor
// division so negative timestamps land in the preceding day
func day360YMDHMSFromTimestamp(ts int64) (int64, int, int, int, int, int) {
	days := floorDiv(ts, calendar.SecsPerDay)
	year := calendar.EpochYear + floorDiv(days, calendar.DaysPerYear360)
	dayOfYear := floorMod(days, calendar.DaysPerYear360)

	month := int(dayOfYear/30) + 1
	day := int(dayOfYear%30) + 1
	hour, minute, second := hmsFromSeconds(ts)
	return year, month, day, hour, minute, second
}
