// File: standard.go
// Title: Standard Calendar Ruleset
// Description: Implements the hybrid Julian/Gregorian conversion used by the
//              Standard calendar: Julian leap rules before the 1582 reform,
//              Gregorian from it onward, a fixed 10-day offset bridging the
//              two, and rejection of the ten days removed by the reform.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-05
// Modified: 2025-03-05
//
// Change History:
// - 2025-03-05 v0.1.0: Initial implementation

package datetime

import (
	"github.com/msto63/cftime/foundation/cf/calendar"
	cferror "github.com/msto63/cftime/foundation/core/error"
)

// cutoverGapSeconds is the 10 days removed by the Gregorian reform
const cutoverGapSeconds = 10 * 24 * 60 * 60

func standardIsLeap(year int64) bool {
	return calendar.Standard.IsLeap(year)
}

// gregorianBeginTimestamp is the walk-space timestamp of 1582-10-15, the
// first Gregorian day. Computed once; every Standard conversion compares
// against it.
var gregorianBeginTimestamp = timestampFromYMD(1582, 10, 15, standardIsLeap)

// beforeCutover reports whether the civil date lies before 1582-10-15
func beforeCutover(year int64, month, day int) bool {
	return year < 1582 ||
		(year == 1582 && month < 10) ||
		(year == 1582 && month == 10 && day < 15)
}

// inCutoverGap reports whether the civil date falls into the removed range.
// 1582-10-04 itself only counts when a time of day pushes past midnight.
func inCutoverGap(year int64, month, day int, timeOfDaySeconds int64, nanoseconds uint32) bool {
	if year != 1582 || month != 10 {
		return false
	}
	if day >= 5 && day < 15 {
		return true
	}
	return day == 4 && (timeOfDaySeconds > 0 || nanoseconds > 0)
}

// standardTimestampFromYMD converts a Standard civil date into a timestamp,
// rejecting dates inside the reform gap. Dates before the cutover are
// computed under Julian rules and shifted by the fixed 10-day offset so both
// conversion directions agree.
func standardTimestampFromYMD(year int64, month, day int, todSeconds int64, todNanoseconds uint32) (int64, error) {
	if inCutoverGap(year, month, day, todSeconds, todNanoseconds) {
		return 0, cferror.New("dates between 1582-10-04 and 1582-10-15 are not defined in the standard calendar").
			WithCode(cferror.CodeInvalidDate).
			WithDetail("year", year).
			WithDetail("month", month).
			WithDetail("day", day)
	}

	ts := timestampFromYMD(year, month, day, standardIsLeap)
	if beforeCutover(year, month, day) {
		ts += cutoverGapSeconds
	}
	return ts, nil
}

// standardYMDHMSFromTimestamp inverts standardTimestampFromYMD, removing the
// 10-day offset for instants before the first Gregorian day
func standardYMDHMSFromTimestamp(ts int64) (int64, int, int, int, int, int) {
	if ts < gregorianBeginTimestamp {
		ts -= cutoverGapSeconds
	}
	return ymdhmsFromTimestamp(ts, standardIsLeap)
}
