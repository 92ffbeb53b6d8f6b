// File: codec_test.go
// Title: Tests for CF Decode and Encode
// Description: Covers the scalar and batch conversion paths, the exact
//              integer and double-precision floating scaling, and the
//              round-trip behavior across calendars.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-06
// Modified: 2025-03-06
//
// Change History:
// - 2025-03-06 v0.1.0: Initial implementation

package codec

import (
	"testing"

	"github.com/msto63/cftime/foundation/cf/calendar"
	"github.com/msto63/cftime/foundation/cf/datetime"
	cferror "github.com/msto63/cftime/foundation/core/error"
)

func assertYMDHMS(t *testing.T, dt datetime.CFDatetime, year int64, month, day, hour, minute, second int) {
	t.Helper()
	gy, gmo, gd, gh, gmi, gs := dt.YMDHMS()
	if gy != year || gmo != month || gd != day || gh != hour || gmi != minute || gs != second {
		t.Errorf("got %04d-%02d-%02d %02d:%02d:%02d, want %04d-%02d-%02d %02d:%02d:%02d",
			gy, gmo, gd, gh, gmi, gs, year, month, day, hour, minute, second)
	}
}

func TestDecodeDays(t *testing.T) {
	dt, err := Decode(int64(2), "days since 2000-01-01 00:00:00", calendar.Standard)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	assertYMDHMS(t, dt, 2000, 1, 3, 0, 0, 0)
}

func TestDecodeFloatHours(t *testing.T) {
	dt, err := Decode(2.0, "hours since 2000-01-01 00:00:00", calendar.Standard)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	assertYMDHMS(t, dt, 2000, 1, 1, 2, 0, 0)
}

func TestDecodeSliceInts(t *testing.T) {
	dts, err := DecodeSlice([]int32{0, 1, 2}, "days since 2000-01-01 00:00:00", calendar.Standard)
	if err != nil {
		t.Fatalf("DecodeSlice failed: %v", err)
	}
	for i, dt := range dts {
		assertYMDHMS(t, dt, 2000, 1, i+1, 0, 0, 0)
	}
}

func TestDecodeSliceFractionalHours(t *testing.T) {
	offsets := []float64{1.0, 1.25, 1.5, 1.75, 2.0}
	dts, err := DecodeSlice(offsets, "hours since 2000-01-01 00:00:00", calendar.Standard)
	if err != nil {
		t.Fatalf("DecodeSlice failed: %v", err)
	}
	wantMinutes := []int{0, 15, 30, 45, 0}
	wantHours := []int{1, 1, 1, 1, 2}
	for i, dt := range dts {
		assertYMDHMS(t, dt, 2000, 1, 1, wantHours[i], wantMinutes[i], 0)
	}
}

// 95795.0 days is exactly representable in float32, so all three numeric
// kinds must land on midnight of the same day.
func TestDecodeLargeDayOffsetAllKinds(t *testing.T) {
	units := "days since 1970-01-01"

	f32, err := Decode(float32(95795.0), units, calendar.Standard)
	if err != nil {
		t.Fatalf("Decode float32 failed: %v", err)
	}
	assertYMDHMS(t, f32, 2232, 4, 12, 0, 0, 0)

	f64, err := Decode(float64(95795.0), units, calendar.Standard)
	if err != nil {
		t.Fatalf("Decode float64 failed: %v", err)
	}
	assertYMDHMS(t, f64, 2232, 4, 12, 0, 0, 0)

	i64, err := Decode(int64(95795), units, calendar.Standard)
	if err != nil {
		t.Fatalf("Decode int64 failed: %v", err)
	}
	assertYMDHMS(t, i64, 2232, 4, 12, 0, 0, 0)
}

func TestDecodeNegativeOffset(t *testing.T) {
	dt, err := Decode(int64(-1), "days since 1970-01-01", calendar.Standard)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	assertYMDHMS(t, dt, 1969, 12, 31, 0, 0, 0)
}

func TestEncodeSeconds(t *testing.T) {
	dt, err := datetime.FromYMD(2000, 1, 1, calendar.Standard)
	if err != nil {
		t.Fatalf("FromYMD failed: %v", err)
	}
	got, err := Encode[int64](dt, "seconds since 2000-01-01 00:00:00", calendar.Standard)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if got != 0 {
		t.Errorf("Encode = %d, want 0", got)
	}

	dt, err = datetime.FromYMD(2023, 1, 1, calendar.Standard)
	if err != nil {
		t.Fatalf("FromYMD failed: %v", err)
	}
	got, err = Encode[int64](dt, "seconds since 1970-01-01 00:00:00", calendar.Standard)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if got != 1672531200 {
		t.Errorf("Encode = %d, want 1672531200", got)
	}
}

func TestEncodeSliceSeconds(t *testing.T) {
	var dts []datetime.CFDatetime
	for day := 1; day <= 3; day++ {
		dt, err := datetime.FromYMD(2000, 1, day, calendar.Standard)
		if err != nil {
			t.Fatalf("FromYMD failed: %v", err)
		}
		dts = append(dts, dt)
	}
	got, err := EncodeSlice[int64](dts, "seconds since 2000-01-01 00:00:00", calendar.Standard)
	if err != nil {
		t.Fatalf("EncodeSlice failed: %v", err)
	}
	want := []int64{0, 86400, 172800}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("element %d = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestEncodeFloatDays(t *testing.T) {
	dt, err := datetime.FromYMDHMS(2000, 1, 2, 12, 0, 0, calendar.Standard)
	if err != nil {
		t.Fatalf("FromYMDHMS failed: %v", err)
	}
	got, err := Encode[float64](dt, "days since 2000-01-01 00:00:00", calendar.Standard)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if got != 1.5 {
		t.Errorf("Encode = %v, want 1.5", got)
	}
}

func TestRoundTripPerCalendar(t *testing.T) {
	units := "hours since 1850-01-01 00:00:00"
	for _, cal := range calendar.All() {
		t.Run(cal.String(), func(t *testing.T) {
			offsets := []int64{0, 1, 24, 8760, 1_000_000}
			dts, err := DecodeSlice(offsets, units, cal)
			if err != nil {
				t.Fatalf("DecodeSlice failed: %v", err)
			}
			back, err := EncodeSlice[int64](dts, units, cal)
			if err != nil {
				t.Fatalf("EncodeSlice failed: %v", err)
			}
			for i := range offsets {
				if back[i] != offsets[i] {
					t.Errorf("round trip of %d gave %d", offsets[i], back[i])
				}
			}
		})
	}
}

func TestEncodeCalendarMismatch(t *testing.T) {
	dt, err := datetime.FromYMD(2000, 1, 1, calendar.NoLeap)
	if err != nil {
		t.Fatalf("FromYMD failed: %v", err)
	}
	_, err = Encode[int64](dt, "seconds since 2000-01-01", calendar.Standard)
	if err == nil {
		t.Fatal("Encode succeeded across calendars, want error")
	}
	if !cferror.IsCode(err, cferror.CodeDifferentCalendars) {
		t.Errorf("code = %v, want %v", cferror.CodeOf(err), cferror.CodeDifferentCalendars)
	}
}

func TestDecodeBadUnits(t *testing.T) {
	_, err := Decode(int64(0), "minutes 2023-01-01", calendar.Standard)
	if err == nil {
		t.Fatal("Decode succeeded on malformed units, want error")
	}
	if !cferror.IsCode(err, cferror.CodeUnitParser) {
		t.Errorf("code = %v, want %v", cferror.CodeOf(err), cferror.CodeUnitParser)
	}
}

func TestDecodeReferenceInGap(t *testing.T) {
	_, err := Decode(int64(0), "days since 1582-10-08", calendar.Standard)
	if err == nil {
		t.Fatal("Decode succeeded with reference inside the reform gap, want error")
	}
	if !cferror.IsCode(err, cferror.CodeInvalidDate) {
		t.Errorf("code = %v, want %v", cferror.CodeOf(err), cferror.CodeInvalidDate)
	}
}

func TestReferenceCarriesTimezone(t *testing.T) {
	ref, _, err := Reference("seconds since 1970-01-01 00:00:00 +05:30", calendar.Standard)
	if err != nil {
		t.Fatalf("Reference failed: %v", err)
	}
	tz := ref.Timezone()
	if tz.Hour() != 5 || tz.Minute() != 30 {
		t.Errorf("tz = %d:%d, want 5:30", tz.Hour(), tz.Minute())
	}
	// the offset is carried, not applied
	if ref.Timestamp() != 0 {
		t.Errorf("timestamp = %d, want 0", ref.Timestamp())
	}
}
