// File: datetime.go
// Title: CF Datetime Implementation
// Description: Implements the CFDatetime value type: constructors from civil
//              fields or raw timestamps, decomposition back into civil
//              fields, duration arithmetic, and calendar changes. Dispatch
//              over the calendar tag is closed: one ruleset per calendar,
//              selected here and nowhere else.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-05
// Modified: 2025-03-11
//
// Change History:
// - 2025-03-05 v0.1.0: Initial implementation
// - 2025-03-11 v0.1.1: ChangeCalendar variants, nanosecond carry in AddDuration

package datetime

import (
	"fmt"

	"github.com/msto63/cftime/foundation/cf/calendar"
	"github.com/msto63/cftime/foundation/cf/duration"
	cferror "github.com/msto63/cftime/foundation/core/error"
)

// CFDatetime is an instant in one CF calendar: seconds since the 1970 epoch,
// a nanosecond remainder in [0, 1e9), a fixed UTC offset, and the calendar
// tag fixed at construction. Values are immutable.
type CFDatetime struct {
	timestamp   int64
	nanoseconds uint32
	tz          Tz
	cal         calendar.Calendar
}

// FromYMDHMS builds a datetime from civil fields. The fractional part of
// second becomes the nanosecond remainder. Construction fails with
// INVALID_DATE or INVALID_TIME on out-of-range fields and, for the Standard
// calendar, on dates inside the 1582 reform gap.
func FromYMDHMS(year int64, month, day, hour, minute int, second float64, cal calendar.Calendar) (CFDatetime, error) {
	if err := validateYMD(cal, year, month, day); err != nil {
		return CFDatetime{}, err
	}
	todSeconds, nanoseconds, err := timeOfDay(hour, minute, second)
	if err != nil {
		return CFDatetime{}, err
	}

	var ts int64
	switch cal {
	case calendar.Standard:
		ts, err = standardTimestampFromYMD(year, month, day, todSeconds, nanoseconds)
		if err != nil {
			return CFDatetime{}, err
		}
	case calendar.Day360:
		ts = day360TimestampFromYMD(year, month, day)
	default:
		ts = timestampFromYMD(year, month, day, cal.IsLeap)
	}

	return CFDatetime{
		timestamp:   ts + todSeconds,
		nanoseconds: nanoseconds,
		tz:          UTC(),
		cal:         cal,
	}, nil
}

// FromYMD builds a datetime at midnight of the given civil date
func FromYMD(year int64, month, day int, cal calendar.Calendar) (CFDatetime, error) {
	return FromYMDHMS(year, month, day, 0, 0, 0, cal)
}

// FromHMS builds a datetime at the given time of day on 1970-01-01
func FromHMS(hour, minute int, second float64, cal calendar.Calendar) (CFDatetime, error) {
	return FromYMDHMS(calendar.EpochYear, calendar.EpochMonth, calendar.EpochDay, hour, minute, second, cal)
}

// FromTimestamp builds a datetime from a raw timestamp and nanosecond
// remainder. Every timestamp is representable: the reform gap has no
// timestamp range, so this path cannot fail.
func FromTimestamp(timestamp int64, nanoseconds uint32, cal calendar.Calendar) CFDatetime {
	return CFDatetime{
		timestamp:   timestamp,
		nanoseconds: nanoseconds,
		tz:          UTC(),
		cal:         cal,
	}
}

// Timestamp returns the seconds since the 1970 epoch (possibly negative)
func (dt CFDatetime) Timestamp() int64 {
	return dt.timestamp
}

// Nanoseconds returns the fractional remainder in [0, 1e9)
func (dt CFDatetime) Nanoseconds() uint32 {
	return dt.nanoseconds
}

// Calendar returns the owning calendar
func (dt CFDatetime) Calendar() calendar.Calendar {
	return dt.cal
}

// Timezone returns the fixed UTC offset attached at construction
func (dt CFDatetime) Timezone() Tz {
	return dt.tz
}

// WithTimezone returns a copy carrying the given fixed offset. The offset is
// informational; the timestamp is not shifted.
func (dt CFDatetime) WithTimezone(tz Tz) CFDatetime {
	dt.tz = tz
	return dt
}

// YMDHMS decomposes the instant into civil fields under the owning calendar
func (dt CFDatetime) YMDHMS() (year int64, month, day, hour, minute, second int) {
	switch dt.cal {
	case calendar.Standard:
		return standardYMDHMSFromTimestamp(dt.timestamp)
	case calendar.Day360:
		return day360YMDHMSFromTimestamp(dt.timestamp)
	default:
		return ymdhmsFromTimestamp(dt.timestamp, dt.cal.IsLeap)
	}
}

// YMD returns the civil date of the instant
func (dt CFDatetime) YMD() (int64, int, int) {
	year, month, day, _, _, _ := dt.YMDHMS()
	return year, month, day
}

// HMS returns the time of day of the instant
func (dt CFDatetime) HMS() (int, int, int) {
	_, _, _, hour, minute, second := dt.YMDHMS()
	return hour, minute, second
}

// AddDuration returns the instant shifted forward by d
func (dt CFDatetime) AddDuration(d duration.CFDuration) (CFDatetime, error) {
	if dt.cal != d.Calendar() {
		return CFDatetime{}, differentCalendars(dt.cal, d.Calendar(), "AddDuration")
	}
	carry, nanoseconds := duration.NormalizeNanoseconds(int64(dt.nanoseconds) + int64(d.Nanoseconds()))
	return FromTimestamp(dt.timestamp+d.Seconds()+carry, nanoseconds, dt.cal), nil
}

// SubDuration returns the instant shifted backward by d
func (dt CFDatetime) SubDuration(d duration.CFDuration) (CFDatetime, error) {
	if dt.cal != d.Calendar() {
		return CFDatetime{}, differentCalendars(dt.cal, d.Calendar(), "SubDuration")
	}
	carry, nanoseconds := duration.NormalizeNanoseconds(int64(dt.nanoseconds) - int64(d.Nanoseconds()))
	return FromTimestamp(dt.timestamp-d.Seconds()+carry, nanoseconds, dt.cal), nil
}

// Sub returns the elapsed time dt - other as a duration in their shared
// calendar
func (dt CFDatetime) Sub(other CFDatetime) (duration.CFDuration, error) {
	if dt.cal != other.cal {
		return duration.CFDuration{}, differentCalendars(dt.cal, other.cal, "Sub")
	}
	return duration.New(
		dt.timestamp-other.timestamp,
		int64(dt.nanoseconds)-int64(other.nanoseconds),
		dt.cal,
	), nil
}

// ChangeCalendar re-expresses the same civil date in another calendar. The
// timestamp generally changes; the printed date stays the same. Fails when
// the target calendar rejects the civil date, e.g. day 31 under Day360 or a
// reform-gap date under Standard.
func (dt CFDatetime) ChangeCalendar(cal calendar.Calendar) (CFDatetime, error) {
	year, month, day, hour, minute, second := dt.YMDHMS()
	fractional := float64(second) + float64(dt.nanoseconds)/1e9
	return FromYMDHMS(year, month, day, hour, minute, fractional, cal)
}

// ChangeCalendarFromTimestamp keeps the same distance from the epoch in
// another calendar. The civil date will usually differ.
func (dt CFDatetime) ChangeCalendarFromTimestamp(cal calendar.Calendar) CFDatetime {
	return FromTimestamp(dt.timestamp, dt.nanoseconds, cal)
}

// String formats the instant as YYYY-MM-DD HH:MM:SS.mmm
func (dt CFDatetime) String() string {
	year, month, day, hour, minute, second := dt.YMDHMS()
	millis := dt.nanoseconds / 1_000_000
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d.%03d",
		year, month, day, hour, minute, second, millis)
}

func differentCalendars(a, b calendar.Calendar, op string) error {
	return cferror.Newf("different calendars found: %s and %s", a, b).
		WithCode(cferror.CodeDifferentCalendars).
		WithOperation(op)
}
