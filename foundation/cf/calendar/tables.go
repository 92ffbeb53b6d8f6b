// File: tables.go
// Title: Month-Length and Day-of-Year Tables
// Description: Holds the fixed month-length tables, their cumulative
//              day-of-year sums, and the time constants shared by the
//              conversion engine and the duration model. All tables are
//              computed once at package initialization.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-04
// Modified: 2025-03-04
//
// Change History:
// - 2025-03-04 v0.1.0: Initial implementation

package calendar

// Time constants
const (
	SecsPerMinute int64 = 60
	SecsPerHour   int64 = 60 * SecsPerMinute
	SecsPerDay    int64 = 24 * SecsPerHour

	DaysPerYearLeap    int64 = 366
	DaysPerYearNonLeap int64 = 365
	DaysPerYear360     int64 = 360

	SecondsPerYearLeap    = DaysPerYearLeap * SecsPerDay
	SecondsPerYearNonLeap = DaysPerYearNonLeap * SecsPerDay
	SecondsPerYear360     = DaysPerYear360 * SecsPerDay

	// MaxNs is the nanosecond normalization modulus
	MaxNs int64 = 1_000_000_000
)

// Epoch: 1970-01-01T00:00:00, the zero point for internal timestamps
const (
	EpochYear  int64 = 1970
	EpochMonth int   = 1
	EpochDay   int   = 1
)

// Month-length tables, indexed by zero-based month
var (
	DaysPerMonth     = [12]int64{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	DaysPerMonthLeap = [12]int64{31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	DaysPerMonth360  = [12]int64{30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30}
)

// Cumulative day-of-year tables; entry m is the number of days preceding
// zero-based month m, entry 12 the length of the year.
var (
	CumDaysPerMonth     = cumsum(DaysPerMonth)
	CumDaysPerMonthLeap = cumsum(DaysPerMonthLeap)
	CumDaysPerMonth360  = cumsum(DaysPerMonth360)
)

// MonthNames holds the English month names, indexed by zero-based month
var MonthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

func cumsum(months [12]int64) [13]int64 {
	var out [13]int64
	for i := 1; i < 13; i++ {
		out[i] = out[i-1] + months[i-1]
	}
	return out
}

// MonthDays returns the month-length table for a year of the calendar
func (c Calendar) MonthDays(year int64) [12]int64 {
	switch {
	case c == Day360:
		return DaysPerMonth360
	case c.IsLeap(year):
		return DaysPerMonthLeap
	default:
		return DaysPerMonth
	}
}

// DaysInYear returns the number of days in a year of the calendar
func (c Calendar) DaysInYear(year int64) int64 {
	switch {
	case c == Day360:
		return DaysPerYear360
	case c.IsLeap(year):
		return DaysPerYearLeap
	default:
		return DaysPerYearNonLeap
	}
}

// SecondsPerYear returns the average length of a year in seconds, used by
// the duration model. The Standard and ProlepticGregorian values follow the
// udunits tropical year; the fixed calendars use their exact year lengths.
func (c Calendar) SecondsPerYear() float64 {
	switch c {
	case Standard, ProlepticGregorian:
		return 3.15569259747e7
	case Julian:
		return 365.25 * float64(SecsPerDay)
	case NoLeap:
		return 365.0 * float64(SecsPerDay)
	case AllLeap:
		return 366.0 * float64(SecsPerDay)
	case Day360:
		return 360.0 * float64(SecsPerDay)
	default:
		return 3.15569259747e7
	}
}
