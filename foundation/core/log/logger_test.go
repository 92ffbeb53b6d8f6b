// File: logger_test.go
// Title: Logger Tests
// Description: Tests for the Logger type covering level filtering, immutable
//              With* derivation, contextual fields, and severity-driven error
//              logging.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-07
// Modified: 2025-03-07
//
// Change History:
// - 2025-03-07 v0.1.0: Initial implementation

package log

import (
	"bytes"
	"strings"
	"testing"

	cferror "github.com/msto63/cftime/foundation/core/error"
)

func newTestLogger(buf *bytes.Buffer, level Level) *Logger {
	return NewWithConfig(Config{
		Level:  level,
		Format: FormatText,
		Output: buf,
	})
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LevelWarn)

	logger.Debug("invisible")
	logger.Info("invisible")
	if buf.Len() != 0 {
		t.Errorf("suppressed levels produced output: %q", buf.String())
	}

	logger.Warn("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Errorf("warn output missing: %q", buf.String())
	}
}

func TestWithFieldIsImmutable(t *testing.T) {
	var buf bytes.Buffer
	base := newTestLogger(&buf, LevelInfo)
	derived := base.WithField("calendar", "standard")

	base.Info("from base")
	if strings.Contains(buf.String(), "calendar=standard") {
		t.Error("base logger inherited the derived field")
	}

	buf.Reset()
	derived.Info("from derived")
	if !strings.Contains(buf.String(), "calendar=standard") {
		t.Errorf("derived logger missing field: %q", buf.String())
	}
}

func TestWithName(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LevelInfo).WithName("decode")

	logger.Info("running")
	if !strings.Contains(buf.String(), "{decode}") {
		t.Errorf("output missing logger name: %q", buf.String())
	}
}

func TestPerCallFields(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LevelInfo)

	logger.Info("decoded", Int("count", 42), String("units", "days since 2000-01-01"))
	out := buf.String()
	if !strings.Contains(out, "count=42") {
		t.Errorf("output missing count field: %q", out)
	}
	if !strings.Contains(out, "units=days since 2000-01-01") {
		t.Errorf("output missing units field: %q", out)
	}
}

func TestErrorWithErr(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LevelInfo)

	logger.ErrorWithErr("decode failed", cferror.New("bad units"))
	if !strings.Contains(buf.String(), `error="bad units"`) {
		t.Errorf("output missing error: %q", buf.String())
	}
}

// LogError picks the log level from the structured error's severity, so a
// low-severity caller mistake logs at info and is filtered by a warn-level
// logger.
func TestLogErrorSeverityMapping(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LevelWarn)

	logger.LogError(cferror.New("day out of bounds").WithCode(cferror.CodeInvalidDate))
	if buf.Len() != 0 {
		t.Errorf("low-severity error logged at warn minimum: %q", buf.String())
	}

	logger.LogError(cferror.New("mixed calendars").WithCode(cferror.CodeDifferentCalendars))
	if !strings.Contains(buf.String(), "error_code=DIFFERENT_CALENDARS") {
		t.Errorf("medium-severity error missing code field: %q", buf.String())
	}
}

func TestLogErrorNil(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LevelTrace)

	logger.LogError(nil)
	if buf.Len() != 0 {
		t.Errorf("nil error produced output: %q", buf.String())
	}
}

func TestIsLevelEnabled(t *testing.T) {
	logger := New().WithLevel(LevelError)
	if logger.IsLevelEnabled(LevelInfo) {
		t.Error("info enabled at error minimum")
	}
	if !logger.IsLevelEnabled(LevelFatal) {
		t.Error("fatal disabled at error minimum")
	}
}
