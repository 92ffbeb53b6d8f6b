// File: leap.go
// Title: Leap Year Rules
// Description: Implements the per-calendar leap-year capability. The
//              proleptic rules use a floor convention for negative years so
//              that year 0 and negative multiples of 4/100/400 evaluate the
//              same as their positive counterparts.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-04
// Modified: 2025-03-04
//
// Change History:
// - 2025-03-04 v0.1.0: Initial implementation

package calendar

// gregorianReformYear is the first year in which the Standard calendar
// follows Gregorian leap rules.
const gregorianReformYear = 1582

// shiftNegative adds 1 for negative years and 0 otherwise, extracting the
// sign bit so the proleptic leap rules divide the negative axis the same way
// they divide the positive one.
func shiftNegative(year int64) int64 {
	return year + (year>>63)&1
}

// IsLeapGregorian reports whether year is a leap year under proleptic
// Gregorian rules.
func IsLeapGregorian(year int64) bool {
	y := shiftNegative(year)
	return y%400 == 0 || (y%4 == 0 && y%100 != 0)
}

// IsLeapJulian reports whether year is a leap year under Julian rules.
func IsLeapJulian(year int64) bool {
	return shiftNegative(year)%4 == 0
}

// IsLeap reports whether year is a leap year in the calendar. For Day360 the
// notion does not apply and the result is always false.
func (c Calendar) IsLeap(year int64) bool {
	switch c {
	case Standard:
		if year < gregorianReformYear {
			return IsLeapJulian(year)
		}
		return IsLeapGregorian(year)
	case ProlepticGregorian:
		return IsLeapGregorian(year)
	case Julian:
		return IsLeapJulian(year)
	case AllLeap:
		return true
	default: // NoLeap, Day360
		return false
	}
}
