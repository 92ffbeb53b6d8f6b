// File: level_test.go
// Title: Log Level Tests
// Description: Tests for log level parsing, representation, and filtering.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-07
// Modified: 2025-03-07
//
// Change History:
// - 2025-03-07 v0.1.0: Initial implementation

package log

import "testing"

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
		short string
	}{
		{LevelTrace, "trace", "TRC"},
		{LevelDebug, "debug", "DBG"},
		{LevelInfo, "info", "INF"},
		{LevelWarn, "warn", "WRN"},
		{LevelError, "error", "ERR"},
		{LevelFatal, "fatal", "FTL"},
		{Level(99), "unknown", "???"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("String(%d) = %q, want %q", int(tt.level), got, tt.want)
		}
		if got := tt.level.ShortString(); got != tt.short {
			t.Errorf("ShortString(%d) = %q, want %q", int(tt.level), got, tt.short)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"trace", LevelTrace, false},
		{"DEBUG", LevelDebug, false},
		{" info ", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"err", LevelError, false},
		{"fatal", LevelFatal, false},
		{"verbose", LevelInfo, true},
		{"", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestShouldLog(t *testing.T) {
	if LevelDebug.ShouldLog(LevelInfo) {
		t.Error("debug should not log at info minimum")
	}
	if !LevelError.ShouldLog(LevelInfo) {
		t.Error("error should log at info minimum")
	}
	if !LevelInfo.ShouldLog(LevelInfo) {
		t.Error("info should log at info minimum")
	}
}

func TestAllLevelsOrdered(t *testing.T) {
	levels := AllLevels()
	for i := 1; i < len(levels); i++ {
		if levels[i] <= levels[i-1] {
			t.Errorf("levels out of order at index %d", i)
		}
	}
}
