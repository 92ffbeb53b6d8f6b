// File: codec.go
// Title: CF Decode and Encode
// Description: Implements the generic Decode/Encode entry points and their
//              batch forms. The reference datetime and unit duration are
//              derived from the units string once per call and shared across
//              a whole batch.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-06
// Modified: 2025-03-06
//
// Change History:
// - 2025-03-06 v0.1.0: Initial implementation

package codec

import (
	"github.com/msto63/cftime/foundation/cf/calendar"
	"github.com/msto63/cftime/foundation/cf/datetime"
	"github.com/msto63/cftime/foundation/cf/duration"
	"github.com/msto63/cftime/foundation/cf/parser"
)

// Numeric covers the four offset kinds CF files store time coordinates in
type Numeric interface {
	~int32 | ~int64 | ~float32 | ~float64
}

// Decode converts one numeric offset under a units string into a datetime
func Decode[T Numeric](value T, units string, cal calendar.Calendar) (datetime.CFDatetime, error) {
	ref, unit, err := Reference(units, cal)
	if err != nil {
		return datetime.CFDatetime{}, err
	}
	return decodeOne(value, ref, unit.Duration(cal))
}

// DecodeSlice converts a homogeneous batch of offsets, parsing the units
// string once. The first failing element aborts the batch.
func DecodeSlice[T Numeric](values []T, units string, cal calendar.Calendar) ([]datetime.CFDatetime, error) {
	ref, unit, err := Reference(units, cal)
	if err != nil {
		return nil, err
	}
	unitDuration := unit.Duration(cal)

	datetimes := make([]datetime.CFDatetime, len(values))
	for i, value := range values {
		datetimes[i], err = decodeOne(value, ref, unitDuration)
		if err != nil {
			return nil, err
		}
	}
	return datetimes, nil
}

// Encode converts one datetime into a numeric offset under a units string.
// Integer targets truncate the offset toward zero.
func Encode[T Numeric](dt datetime.CFDatetime, units string, cal calendar.Calendar) (T, error) {
	ref, unit, err := Reference(units, cal)
	if err != nil {
		return 0, err
	}
	return encodeOne[T](dt, ref, unit)
}

// EncodeSlice converts a batch of datetimes, parsing the units string once.
// The first failing element aborts the batch.
func EncodeSlice[T Numeric](dts []datetime.CFDatetime, units string, cal calendar.Calendar) ([]T, error) {
	ref, unit, err := Reference(units, cal)
	if err != nil {
		return nil, err
	}

	values := make([]T, len(dts))
	for i, dt := range dts {
		values[i], err = encodeOne[T](dt, ref, unit)
		if err != nil {
			return nil, err
		}
	}
	return values, nil
}

// Reference parses a units string and materializes its reference datetime in
// the given calendar. A parsed timezone offset is validated and attached to
// the datetime without shifting it.
func Reference(units string, cal calendar.Calendar) (datetime.CFDatetime, parser.Unit, error) {
	parsed, err := parser.ParseUnits(units)
	if err != nil {
		return datetime.CFDatetime{}, 0, err
	}

	ref, err := datetime.FromYMDHMS(parsed.Year, parsed.Month, parsed.Day,
		parsed.Hour, parsed.Minute, parsed.Second, cal)
	if err != nil {
		return datetime.CFDatetime{}, 0, err
	}

	if parsed.HasTz {
		tz, err := datetime.NewTz(parsed.TzHour, parsed.TzMinute)
		if err != nil {
			return datetime.CFDatetime{}, 0, err
		}
		ref = ref.WithTimezone(tz)
	}

	return ref, parsed.Unit, nil
}

// decodeOne scales the unit duration by the offset and adds it to the
// reference. Integer offsets scale exactly, floating offsets in double
// precision.
func decodeOne[T Numeric](value T, ref datetime.CFDatetime, unitDuration duration.CFDuration) (datetime.CFDatetime, error) {
	var scaled duration.CFDuration
	switch v := any(value).(type) {
	case int32:
		scaled = unitDuration.ScaleInt(int64(v))
	case int64:
		scaled = unitDuration.ScaleInt(v)
	case float32:
		scaled = unitDuration.ScaleFloat(float64(v))
	case float64:
		scaled = unitDuration.ScaleFloat(v)
	default:
		scaled = unitDuration.ScaleFloat(float64(value))
	}
	return ref.AddDuration(scaled)
}

func encodeOne[T Numeric](dt datetime.CFDatetime, ref datetime.CFDatetime, unit parser.Unit) (T, error) {
	elapsed, err := dt.Sub(ref)
	if err != nil {
		return 0, err
	}
	return T(unit.Decompose(elapsed)), nil
}
