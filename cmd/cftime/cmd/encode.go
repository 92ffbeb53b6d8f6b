package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/msto63/cftime/foundation/cf/calendar"
	"github.com/msto63/cftime/foundation/cf/codec"
	"github.com/msto63/cftime/foundation/cf/datetime"
	cflog "github.com/msto63/cftime/foundation/core/log"
	"github.com/spf13/cobra"
)

var (
	encodeUnits    string
	encodeCalendar string
	encodeFloat    bool
)

var encodeCmd = &cobra.Command{
	Use:   "encode <datetime> [datetime...]",
	Short: "Encode datetimes into numeric offsets",
	Long: `Encodes datetimes into numeric time coordinates.

Datetimes are written as YYYY-MM-DD, optionally followed by a time of
day separated by 'T' or a space: YYYY-MM-DDTHH:MM:SS.fff. Negative
years carry a leading minus sign.

Offsets are emitted as 64-bit integers, truncated toward zero. With
--float they are emitted as floating point values instead.

With no arguments, datetimes are read whitespace-separated from stdin.

Examples:
  cftime encode --units "days since 2000-01-01" 2000-01-02 2001-01-01
  cftime encode --units "hours since 2000-01-01" --float 2000-01-01T12:30:00`,
	Args: cobra.ArbitraryArgs,
	RunE: runEncode,
}

func init() {
	encodeCmd.Flags().StringVarP(&encodeUnits, "units", "u", "", `units string, e.g. "days since 2000-01-01"`)
	encodeCmd.Flags().StringVarP(&encodeCalendar, "calendar", "c", "", "calendar name")
	encodeCmd.Flags().BoolVar(&encodeFloat, "float", false, "emit offsets as floating point values")
	rootCmd.AddCommand(encodeCmd)
}

func runEncode(cmd *cobra.Command, args []string) error {
	args, err := gatherInputs(args)
	if err != nil {
		return err
	}

	units := resolveUnits(encodeUnits)
	cal, err := calendar.ParseStrict(resolveCalendar(encodeCalendar))
	if err != nil {
		logger.LogError(err)
		return err
	}

	runID := uuid.NewString()
	logger.Debug("encoding batch",
		cflog.String("run_id", runID),
		cflog.Int("count", len(args)),
		cflog.String("units", units),
		cflog.String("calendar", cal.String()))

	dts := make([]datetime.CFDatetime, len(args))
	for i, arg := range args {
		dt, err := parseDatetimeArg(arg, cal)
		if err != nil {
			logger.LogError(err)
			return err
		}
		dts[i] = dt
	}

	fmt.Println(headingStyle.Render(fmt.Sprintf("%s (%s)", units, cal)))

	if encodeFloat {
		values, err := codec.EncodeSlice[float64](dts, units, cal)
		if err != nil {
			logger.LogError(err)
			return err
		}
		for i, v := range values {
			fmt.Printf("  %s %s %s\n",
				datetimeStyle.Render(dts[i].String()),
				mutedStyle.Render("->"),
				offsetStyle.Render(strconv.FormatFloat(v, 'g', -1, 64)))
		}
		return nil
	}

	values, err := codec.EncodeSlice[int64](dts, units, cal)
	if err != nil {
		logger.LogError(err)
		return err
	}
	for i, v := range values {
		fmt.Printf("  %s %s %s\n",
			datetimeStyle.Render(dts[i].String()),
			mutedStyle.Render("->"),
			offsetStyle.Render(strconv.FormatInt(v, 10)))
	}
	return nil
}

// parseDatetimeArg parses a command line datetime of the form
// YYYY-MM-DD[THH:MM[:SS[.fff]]]. A space works as separator too when
// the argument is quoted.
func parseDatetimeArg(arg string, cal calendar.Calendar) (datetime.CFDatetime, error) {
	datePart := arg
	timePart := ""
	if i := strings.IndexAny(arg, "T "); i >= 0 {
		datePart = arg[:i]
		timePart = arg[i+1:]
	}

	year, month, day, err := parseDatePart(datePart)
	if err != nil {
		return datetime.CFDatetime{}, err
	}

	hour, minute := 0, 0
	second := 0.0
	if timePart != "" {
		hour, minute, second, err = parseTimePart(timePart)
		if err != nil {
			return datetime.CFDatetime{}, err
		}
	}

	return datetime.FromYMDHMS(year, month, day, hour, minute, second, cal)
}

func parseDatePart(s string) (int64, int, int, error) {
	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}

	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("date %q is not of the form YYYY-MM-DD", s)
	}

	year, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("year %q is not a number", parts[0])
	}
	if negative {
		year = -year
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("month %q is not a number", parts[1])
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("day %q is not a number", parts[2])
	}
	return year, month, day, nil
}

func parseTimePart(s string) (int, int, float64, error) {
	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return 0, 0, 0, fmt.Errorf("time %q is not of the form HH:MM:SS", s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("hour %q is not a number", parts[0])
	}

	minute := 0
	if len(parts) > 1 {
		minute, err = strconv.Atoi(parts[1])
		if err != nil {
			return 0, 0, 0, fmt.Errorf("minute %q is not a number", parts[1])
		}
	}

	second := 0.0
	if len(parts) > 2 {
		second, err = strconv.ParseFloat(parts[2], 64)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("second %q is not a number", parts[2])
		}
	}
	return hour, minute, second, nil
}
