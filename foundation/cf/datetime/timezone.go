// File: timezone.go
// Title: Fixed UTC Offset
// Description: Implements the Tz fixed-offset type attached to every
//              CFDatetime. Offsets are informational: they are validated and
//              carried, never applied to the timestamp (no DST, no locale).
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-05
// Modified: 2025-03-05
//
// Change History:
// - 2025-03-05 v0.1.0: Initial implementation

package datetime

import (
	"fmt"

	cferror "github.com/msto63/cftime/foundation/core/error"
)

// Tz is a fixed UTC offset in hours and minutes. The hour carries the sign.
type Tz struct {
	hour   int
	minute int
}

// UTC is the zero offset every constructor attaches by default
func UTC() Tz {
	return Tz{}
}

// NewTz builds a fixed offset, bounded to ±23 hours and 59 minutes
func NewTz(hour, minute int) (Tz, error) {
	if hour < -23 || hour > 23 {
		return Tz{}, cferror.Newf("tz hour is out of bounds %d:%d", hour, minute).
			WithCode(cferror.CodeInvalidTz).
			WithOperation("NewTz")
	}
	if minute < 0 || minute > 59 {
		return Tz{}, cferror.Newf("tz minute is out of bounds %d:%d", hour, minute).
			WithCode(cferror.CodeInvalidTz).
			WithOperation("NewTz")
	}
	return Tz{hour: hour, minute: minute}, nil
}

// Hour returns the signed hour component
func (tz Tz) Hour() int {
	return tz.hour
}

// Minute returns the minute component
func (tz Tz) Minute() int {
	return tz.minute
}

// String formats the offset as ±HH:MM
func (tz Tz) String() string {
	sign := "+"
	hour := tz.hour
	if hour < 0 {
		sign = "-"
		hour = -hour
	}
	return fmt.Sprintf("%s%02d:%02d", sign, hour, tz.minute)
}
