// File: duration_test.go
// Title: Tests for the CF Duration Model
// Description: Covers nanosecond normalization (floor semantics), unit
//              idempotence for every construction unit, arithmetic, and the
//              integer and floating scaling paths including negative and
//              fractional factors.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-05
// Modified: 2025-03-05
//
// Change History:
// - 2025-03-05 v0.1.0: Initial implementation

package duration

import (
	"math"
	"testing"

	"github.com/msto63/cftime/foundation/cf/calendar"
	cferror "github.com/msto63/cftime/foundation/core/error"
)

func TestNormalizeNanoseconds(t *testing.T) {
	tests := []struct {
		name        string
		nanoseconds int64
		seconds     int64
		remainder   uint32
	}{
		{"zero", 0, 0, 0},
		{"sub second", 500_000_000, 0, 500_000_000},
		{"one and a half", 1_500_000_000, 1, 500_000_000},
		{"exact positive", 2_000_000_000, 2, 0},
		{"negative half", -500_000_000, -1, 500_000_000},
		{"negative one and a half", -1_500_000_000, -2, 500_000_000},
		{"exact negative", -2_000_000_000, -2, 0},
		{"negative one", -1, -1, 999_999_999},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seconds, remainder := NormalizeNanoseconds(tt.nanoseconds)
			if seconds != tt.seconds || remainder != tt.remainder {
				t.Errorf("NormalizeNanoseconds(%d) = (%d, %d), want (%d, %d)",
					tt.nanoseconds, seconds, remainder, tt.seconds, tt.remainder)
			}
		})
	}
}

func TestUnitIdempotence(t *testing.T) {
	cal := calendar.Standard
	tests := []struct {
		name  string
		d     CFDuration
		read  func(CFDuration) float64
		exact bool
	}{
		{"week", FromWeeks(1, cal), CFDuration.NumWeeks, true},
		{"day", FromDays(1, cal), CFDuration.NumDays, true},
		{"hour", FromHours(1, cal), CFDuration.NumHours, true},
		{"minute", FromMinutes(1, cal), CFDuration.NumMinutes, true},
		{"second", FromSeconds(1, cal), CFDuration.NumSeconds, true},
		{"millisecond", FromMilliseconds(1, cal), CFDuration.NumMilliseconds, true},
		{"microsecond", FromMicroseconds(1, cal), CFDuration.NumMicroseconds, true},
		{"nanosecond", FromNanoseconds(1, cal), CFDuration.NumNanoseconds, true},
		{"year", FromYears(1, cal), CFDuration.NumYears, false},
		{"month", FromMonths(1, cal), CFDuration.NumMonths, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.read(tt.d)
			if tt.exact {
				if got != 1.0 {
					t.Errorf("round trip of 1 %s = %v, want exactly 1", tt.name, got)
				}
			} else if math.Abs(got-1.0) > 1e-6 {
				t.Errorf("round trip of 1 %s = %v, want 1 within 1e-6", tt.name, got)
			}
		})
	}
}

func TestYearLengthPerCalendar(t *testing.T) {
	tests := []struct {
		cal     calendar.Calendar
		seconds int64
	}{
		{calendar.Standard, 31556925},
		{calendar.ProlepticGregorian, 31556925},
		{calendar.Julian, 31557600},
		{calendar.NoLeap, 31536000},
		{calendar.AllLeap, 31622400},
		{calendar.Day360, 31104000},
	}

	for _, tt := range tests {
		t.Run(tt.cal.String(), func(t *testing.T) {
			d := FromYears(1, tt.cal)
			if d.Seconds() != tt.seconds {
				t.Errorf("FromYears(1, %v).Seconds() = %d, want %d",
					tt.cal, d.Seconds(), tt.seconds)
			}
		})
	}
}

func TestFromMonthsIsTwelfthOfYear(t *testing.T) {
	for _, cal := range calendar.All() {
		year := FromYears(1, cal)
		month := FromMonths(12, cal)
		// integer division by 12 may drop up to 11 seconds per year
		diff := year.Seconds() - month.Seconds()
		if diff < 0 || diff > 11 {
			t.Errorf("%v: 12 months differ from 1 year by %d seconds", cal, diff)
		}
	}
}

func TestAddSub(t *testing.T) {
	cal := calendar.NoLeap
	a := New(1, 600_000_000, cal)
	b := New(2, 700_000_000, cal)

	sum, err := a.Add(b)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if sum.Seconds() != 4 || sum.Nanoseconds() != 300_000_000 {
		t.Errorf("Add = (%d, %d), want (4, 300000000)", sum.Seconds(), sum.Nanoseconds())
	}

	diff, err := a.Sub(b)
	if err != nil {
		t.Fatalf("Sub failed: %v", err)
	}
	if diff.Seconds() != -2 || diff.Nanoseconds() != 900_000_000 {
		t.Errorf("Sub = (%d, %d), want (-2, 900000000)", diff.Seconds(), diff.Nanoseconds())
	}
}

func TestCalendarMismatch(t *testing.T) {
	a := FromDays(1, calendar.Standard)
	b := FromDays(1, calendar.Day360)

	if _, err := a.Add(b); !cferror.IsCode(err, cferror.CodeDifferentCalendars) {
		t.Errorf("Add across calendars: code = %v, want DIFFERENT_CALENDARS", cferror.CodeOf(err))
	}
	if _, err := a.Sub(b); !cferror.IsCode(err, cferror.CodeDifferentCalendars) {
		t.Errorf("Sub across calendars: code = %v, want DIFFERENT_CALENDARS", cferror.CodeOf(err))
	}
}

func TestNeg(t *testing.T) {
	d := New(1, 250_000_000, calendar.Standard)
	n := d.Neg()
	if n.Seconds() != -2 || n.Nanoseconds() != 750_000_000 {
		t.Errorf("Neg = (%d, %d), want (-2, 750000000)", n.Seconds(), n.Nanoseconds())
	}
	back := n.Neg()
	if back.Seconds() != d.Seconds() || back.Nanoseconds() != d.Nanoseconds() {
		t.Errorf("double Neg = (%d, %d), want (%d, %d)",
			back.Seconds(), back.Nanoseconds(), d.Seconds(), d.Nanoseconds())
	}
}

func TestScaleInt(t *testing.T) {
	d := FromDays(1, calendar.Standard)

	scaled := d.ScaleInt(3)
	if scaled.Seconds() != 3*86400 {
		t.Errorf("ScaleInt(3) = %d seconds, want %d", scaled.Seconds(), 3*86400)
	}

	scaled = d.ScaleInt(-2)
	if scaled.Seconds() != -2*86400 || scaled.Nanoseconds() != 0 {
		t.Errorf("ScaleInt(-2) = (%d, %d), want (%d, 0)",
			scaled.Seconds(), scaled.Nanoseconds(), -2*86400)
	}

	withNs := New(0, 500_000_000, calendar.Standard)
	scaled = withNs.ScaleInt(3)
	if scaled.Seconds() != 1 || scaled.Nanoseconds() != 500_000_000 {
		t.Errorf("ScaleInt carry = (%d, %d), want (1, 500000000)",
			scaled.Seconds(), scaled.Nanoseconds())
	}
}

func TestScaleFloat(t *testing.T) {
	day := FromDays(1, calendar.Standard)

	tests := []struct {
		name        string
		factor      float64
		seconds     int64
		nanoseconds uint32
	}{
		{"half", 0.5, 43200, 0},
		{"one and a half", 1.5, 129600, 0},
		{"negative half", -0.5, -43200, 0},
		{"negative fractional", -1.25, -108000, 0},
		{"quarter second", 0.25 / 86400.0, 0, 250_000_000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scaled := day.ScaleFloat(tt.factor)
			if scaled.Seconds() != tt.seconds || scaled.Nanoseconds() != tt.nanoseconds {
				t.Errorf("ScaleFloat(%v) = (%d, %d), want (%d, %d)",
					tt.factor, scaled.Seconds(), scaled.Nanoseconds(),
					tt.seconds, tt.nanoseconds)
			}
		})
	}
}

// Naive truncation of a negative product drifts toward zero; the floor and
// re-round must keep -0.5 days at exactly -43200 seconds instead of -43199.
func TestScaleFloatNegativeNoDrift(t *testing.T) {
	hour := FromHours(1, calendar.Standard)
	scaled := hour.ScaleFloat(-1.5)
	total := scaled.NumSeconds()
	if total != -5400 {
		t.Errorf("ScaleFloat(-1.5) on an hour = %v seconds, want -5400", total)
	}
}

func TestString(t *testing.T) {
	d := New(5, 250_000_000, calendar.Julian)
	want := "5.250000000s (Julian)"
	if got := d.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
