// File: day360_test.go
// Title: Tests for the 360-Day Calendar Ruleset
// Description: Covers the closed-form conversion in both directions,
//              including negative timestamps and distances from the epoch
//              that would be prohibitively slow for a year walk.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-05
// Modified: 2025-03-05
//
// Change History:
// - 2025-03-05 v0.1.0: Initial implementation

package datetime

import (
	"testing"

	"github.com/msto63/cftime/foundation/cf/calendar"
)

func TestDay360KnownValues(t *testing.T) {
	tests := []struct {
		year  int64
		month int
		day   int
		ts    int64
	}{
		{1970, 1, 1, 0},
		{1970, 1, 2, 86400},
		{1970, 2, 1, 30 * 86400},
		{1971, 1, 1, 360 * 86400},
		{1969, 12, 30, -86400},
		{1969, 1, 1, -360 * 86400},
	}

	for _, tt := range tests {
		dt, err := FromYMD(tt.year, tt.month, tt.day, calendar.Day360)
		if err != nil {
			t.Fatalf("FromYMD(%d,%d,%d) failed: %v", tt.year, tt.month, tt.day, err)
		}
		if dt.Timestamp() != tt.ts {
			t.Errorf("%d-%02d-%02d timestamp = %d, want %d",
				tt.year, tt.month, tt.day, dt.Timestamp(), tt.ts)
		}

		year, month, day := FromTimestamp(tt.ts, 0, calendar.Day360).YMD()
		if year != tt.year || month != tt.month || day != tt.day {
			t.Errorf("timestamp %d = %d-%02d-%02d, want %d-%02d-%02d",
				tt.ts, year, month, day, tt.year, tt.month, tt.day)
		}
	}
}

// The closed form has no walk, so even timestamps around 1e15 seconds must
// convert exactly and instantly.
func TestDay360FarFromEpoch(t *testing.T) {
	const ts = int64(1e15)
	dt := FromTimestamp(ts, 0, calendar.Day360)
	year, month, day, hour, minute, second := dt.YMDHMS()

	back, err := FromYMDHMS(year, month, day, hour, minute, float64(second), calendar.Day360)
	if err != nil {
		t.Fatalf("FromYMDHMS failed: %v", err)
	}
	if back.Timestamp() != ts {
		t.Errorf("round trip of %d gave %d", ts, back.Timestamp())
	}

	neg := FromTimestamp(-ts, 0, calendar.Day360)
	year, month, day, hour, minute, second = neg.YMDHMS()
	back, err = FromYMDHMS(year, month, day, hour, minute, float64(second), calendar.Day360)
	if err != nil {
		t.Fatalf("FromYMDHMS failed: %v", err)
	}
	if back.Timestamp() != -ts {
		t.Errorf("round trip of %d gave %d", -ts, back.Timestamp())
	}
}

func TestDay360EveryDayOfYear(t *testing.T) {
	for month := 1; month <= 12; month++ {
		for day := 1; day <= 30; day++ {
			dt, err := FromYMD(2000, month, day, calendar.Day360)
			if err != nil {
				t.Fatalf("FromYMD(2000,%d,%d) failed: %v", month, day, err)
			}
			gy, gm, gd := dt.YMD()
			if gy != 2000 || gm != month || gd != day {
				t.Errorf("round trip of 2000-%02d-%02d gave %d-%02d-%02d",
					month, day, gy, gm, gd)
			}
		}
	}
}
