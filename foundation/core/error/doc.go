// File: doc.go
// Title: Package Documentation for error
// Description: Package error provides structured error handling for the cftime
//              library with error codes, severities, and contextual details.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

// Package error provides structured error handling for the cftime library.
//
// Every failure produced by the calendar, datetime, duration, parser, and
// codec packages is an *Error carrying a Code that identifies the failure
// class (INVALID_DATE, INVALID_TIME, UNIT_PARSER, ...) and a message that
// always names the offending value or substring. Errors integrate with the
// standard library through the error interface and Unwrap, so errors.Is and
// errors.As work as expected.
//
// Typical construction:
//
//	return cferror.New("hour 25 is out of bounds").
//		WithCode(cferror.CodeInvalidTime).
//		WithOperation("FromYMDHMS")
//
// Callers branch on failure classes with IsCode:
//
//	if cferror.IsCode(err, cferror.CodeInvalidDate) { ... }
package error
