package cmd

import (
	"fmt"
	"time"

	"github.com/msto63/cftime/foundation/cf/calendar"
	"github.com/msto63/cftime/foundation/cf/codec"
	"github.com/spf13/cobra"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run the built-in conversion benchmarks",
	Long: `Runs two quick benchmarks and prints wall clock timings:

  - decoding a single offset one petasecond from the reference date,
    which stresses the year walk of the hybrid calendars
  - decoding and re-encoding one million consecutive second offsets`,
	RunE: runBench,
}

func init() {
	rootCmd.AddCommand(benchCmd)
}

func runBench(cmd *cobra.Command, args []string) error {
	calendars := []calendar.Calendar{calendar.Standard, calendar.AllLeap, calendar.Day360}
	const units = "seconds since 2000-01-01 00:00:00"
	const farOffset = int64(1_000_000_000_000_000)

	fmt.Println(headingStyle.Render("Far offset decode"))
	for _, cal := range calendars {
		start := time.Now()
		dt, err := codec.Decode(farOffset, units, cal)
		if err != nil {
			return err
		}
		elapsed := time.Since(start)
		fmt.Printf("  %-20s %s  %s\n",
			cal.Attribute(),
			datetimeStyle.Render(dt.String()),
			mutedStyle.Render(elapsed.String()))
	}

	values := make([]int64, 1_000_000)
	for i := range values {
		values[i] = int64(i)
	}

	fmt.Println(headingStyle.Render("One million element round trip"))
	for _, cal := range calendars {
		start := time.Now()
		dts, err := codec.DecodeSlice(values, units, cal)
		if err != nil {
			return err
		}
		if _, err := codec.EncodeSlice[int64](dts, units, cal); err != nil {
			return err
		}
		elapsed := time.Since(start)
		fmt.Printf("  %-20s %s\n", cal.Attribute(), mutedStyle.Render(elapsed.String()))
	}

	return nil
}
