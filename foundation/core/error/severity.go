// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors to enable proper
//              prioritization and log filtering. Almost all cftime errors are
//              caller mistakes and therefore low severity; internal arithmetic
//              invariant violations rank higher.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error that doesn't affect core functionality
	// Examples: malformed units strings, out-of-range date fields
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	// Examples: configuration problems, mixed-calendar arithmetic
	SeverityMedium

	// SeverityHigh indicates a serious error that significantly impacts functionality
	// Examples: broken internal invariants in the conversion engine
	SeverityHigh
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-2)
func (s Severity) Level() int {
	return int(s)
}

// GetSeverityFromCode determines the appropriate severity level for an error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	// Internal invariant violations
	case CodeInternal:
		return SeverityHigh

	// Configuration and cross-calendar mistakes
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig, CodeDifferentCalendars:
		return SeverityMedium

	// Caller input errors
	case CodeInvalidInput, CodeInvalidDate, CodeInvalidTime, CodeInvalidTz,
		CodeInvalidCalendar, CodeUnitParser, CodeParseNumber:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
