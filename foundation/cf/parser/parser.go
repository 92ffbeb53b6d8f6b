// File: parser.go
// Title: CF Units-String Parser
// Description: Implements ParseUnits for the grammar
//              "<unit> since <date>[ <time>[ <tz>]]". The unit word is looked
//              up in the CF alias table, the date carries a signed year, and
//              the optional time and timezone fields are colon-separated
//              numeric groups. Errors carry the offending substring.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.1
// Created: 2025-03-06
// Modified: 2025-03-08
//
// Change History:
// - 2025-03-06 v0.1.0: Initial implementation
// - 2025-03-08 v0.1.1: Require full HH:MM:SS in the time field

package parser

import (
	"strconv"
	"strings"

	cferror "github.com/msto63/cftime/foundation/core/error"
)

// ParsedUnits is the structured form of a CF units attribute. The reference
// point is kept as raw civil fields; turning them into a datetime is the
// codec's job because that step needs a calendar.
type ParsedUnits struct {
	Unit Unit

	Year  int64
	Month int
	Day   int

	HasTime bool
	Hour    int
	Minute  int
	Second  float64

	HasTz    bool
	TzHour   int
	TzMinute int
}

// ParseUnits parses a units attribute like
// "seconds since 1970-01-01 00:00:00 +01:00". The time and timezone parts
// are optional; everything else is mandatory. Unknown unit words, a missing
// "since", and malformed fields fail with UNIT_PARSER; numeric fields that do
// not parse fail with PARSE_NUMBER.
func ParseUnits(units string) (ParsedUnits, error) {
	fields := strings.Fields(units)
	if len(fields) < 3 || len(fields) > 5 {
		return ParsedUnits{}, cferror.Newf("expected '<unit> since <date> [time] [tz]', got %q", units).
			WithCode(cferror.CodeUnitParser).
			WithOperation("ParseUnits")
	}

	unit, ok := unitAliases[strings.ToLower(fields[0])]
	if !ok {
		return ParsedUnits{}, cferror.Newf("unknown duration unit %q", fields[0]).
			WithCode(cferror.CodeUnitParser).
			WithOperation("ParseUnits")
	}

	if fields[1] != "since" {
		return ParsedUnits{}, cferror.Newf("expected 'since' after the unit, got %q", fields[1]).
			WithCode(cferror.CodeUnitParser).
			WithOperation("ParseUnits")
	}

	parsed := ParsedUnits{Unit: unit}

	var err error
	parsed.Year, parsed.Month, parsed.Day, err = parseDate(fields[2])
	if err != nil {
		return ParsedUnits{}, err
	}

	if len(fields) >= 4 {
		parsed.Hour, parsed.Minute, parsed.Second, err = parseTime(fields[3])
		if err != nil {
			return ParsedUnits{}, err
		}
		parsed.HasTime = true
	}

	if len(fields) == 5 {
		parsed.TzHour, parsed.TzMinute, err = parseTzOffset(fields[4])
		if err != nil {
			return ParsedUnits{}, err
		}
		parsed.HasTz = true
	}

	return parsed, nil
}

// parseDate parses "[-]YYYY-MM-DD". The sign belongs to the year, so it is
// stripped before splitting on the remaining hyphens.
func parseDate(s string) (int64, int, int, error) {
	negative := strings.HasPrefix(s, "-")
	body := strings.TrimPrefix(s, "-")

	parts := strings.Split(body, "-")
	if len(parts) != 3 {
		return 0, 0, 0, cferror.Newf("expected a YYYY-MM-DD date, got %q", s).
			WithCode(cferror.CodeUnitParser).
			WithOperation("parseDate")
	}

	year, err := parseInt(parts[0], s)
	if err != nil {
		return 0, 0, 0, err
	}
	if negative {
		year = -year
	}
	month, err := parseInt(parts[1], s)
	if err != nil {
		return 0, 0, 0, err
	}
	day, err := parseInt(parts[2], s)
	if err != nil {
		return 0, 0, 0, err
	}
	return year, int(month), int(day), nil
}

// parseTime parses "HH:MM:SS[.fraction]", exactly three colon-separated
// fields. A leading sign is rejected so a timezone offset in the time
// position is caught here instead of surfacing later as an invalid hour.
func parseTime(s string) (int, int, float64, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 ||
		strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return 0, 0, 0, cferror.Newf("expected a HH:MM:SS time, got %q", s).
			WithCode(cferror.CodeUnitParser).
			WithOperation("parseTime")
	}

	hour, err := parseInt(parts[0], s)
	if err != nil {
		return 0, 0, 0, err
	}

	minute, err := parseInt(parts[1], s)
	if err != nil {
		return 0, 0, 0, err
	}

	second, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return 0, 0, 0, cferror.Newf("cannot parse %q as a number in %q", parts[2], s).
			WithCode(cferror.CodeParseNumber).
			WithOperation("parseTime")
	}

	return int(hour), int(minute), second, nil
}

// parseTzOffset parses "+HH", "-HH", "+HH:MM" or "-HHMM" style offsets. The
// sign is mandatory so a bare time field can never be mistaken for an offset.
func parseTzOffset(s string) (int, int, error) {
	var sign int64
	switch {
	case strings.HasPrefix(s, "+"):
		sign = 1
	case strings.HasPrefix(s, "-"):
		sign = -1
	default:
		return 0, 0, cferror.Newf("expected a signed timezone offset, got %q", s).
			WithCode(cferror.CodeUnitParser).
			WithOperation("parseTzOffset")
	}
	body := s[1:]

	var hourStr, minuteStr string
	switch {
	case strings.Contains(body, ":"):
		parts := strings.Split(body, ":")
		if len(parts) != 2 {
			return 0, 0, cferror.Newf("expected a ±HH:MM timezone offset, got %q", s).
				WithCode(cferror.CodeUnitParser).
				WithOperation("parseTzOffset")
		}
		hourStr, minuteStr = parts[0], parts[1]
	case len(body) == 4:
		hourStr, minuteStr = body[:2], body[2:]
	default:
		hourStr, minuteStr = body, "0"
	}

	hour, err := parseInt(hourStr, s)
	if err != nil {
		return 0, 0, err
	}
	minute, err := parseInt(minuteStr, s)
	if err != nil {
		return 0, 0, err
	}
	// the sign lives on the hour, matching the Tz representation
	return int(sign * hour), int(minute), nil
}

func parseInt(field, context string) (int64, error) {
	n, err := strconv.ParseInt(field, 10, 64)
	if err != nil {
		return 0, cferror.Newf("cannot parse %q as a number in %q", field, context).
			WithCode(cferror.CodeParseNumber).
			WithOperation("ParseUnits")
	}
	return n, nil
}
