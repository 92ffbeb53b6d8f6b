// File: severity_test.go
// Title: Severity Level Tests
// Description: Tests for the severity levels and the code-to-severity
//              derivation.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

package error

import "testing"

func TestSeverityString(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
	}{
		{SeverityLow, "low"},
		{SeverityMedium, "medium"},
		{SeverityHigh, "high"},
		{Severity(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.severity.String(); got != tt.want {
			t.Errorf("String(%d) = %q, want %q", tt.severity.Level(), got, tt.want)
		}
	}
}

func TestSeverityLevelOrdering(t *testing.T) {
	if !(SeverityLow.Level() < SeverityMedium.Level() &&
		SeverityMedium.Level() < SeverityHigh.Level()) {
		t.Error("severity levels are not strictly ordered")
	}
}

func TestGetSeverityFromCode(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeInternal, SeverityHigh},
		{CodeDifferentCalendars, SeverityMedium},
		{CodeConfigError, SeverityMedium},
		{CodeInvalidDate, SeverityLow},
		{CodeUnitParser, SeverityLow},
		{Code("MADE_UP"), SeverityMedium},
	}

	for _, tt := range tests {
		if got := GetSeverityFromCode(tt.code); got != tt.want {
			t.Errorf("GetSeverityFromCode(%v) = %v, want %v", tt.code, got, tt.want)
		}
	}
}
