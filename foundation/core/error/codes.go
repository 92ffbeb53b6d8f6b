// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error
//              classification across the cftime library. These codes enable
//              structured error handling in the CLI, the TUI, and tests.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation with core error codes

package error

// Code represents a structured error code for categorizing errors
type Code string

// Core error codes for the cftime library
const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Calendar arithmetic
	CodeInvalidDate        Code = "INVALID_DATE"
	CodeInvalidTime        Code = "INVALID_TIME"
	CodeInvalidTz          Code = "INVALID_TZ"
	CodeDifferentCalendars Code = "DIFFERENT_CALENDARS"
	CodeInvalidCalendar    Code = "INVALID_CALENDAR"

	// Units string parsing
	CodeUnitParser  Code = "UNIT_PARSER"
	CodeParseNumber Code = "PARSE_NUMBER"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeInvalidInput,
		CodeInvalidDate, CodeInvalidTime, CodeInvalidTz, CodeDifferentCalendars, CodeInvalidCalendar,
		CodeUnitParser, CodeParseNumber,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeInvalidDate, CodeInvalidTime, CodeInvalidTz, CodeDifferentCalendars, CodeInvalidCalendar:
		return "calendar"
	case CodeUnitParser, CodeParseNumber:
		return "parser"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}
