package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/msto63/cftime/foundation/core/config"
	cflog "github.com/msto63/cftime/foundation/core/log"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool

	cfg    = config.Empty()
	logger = cflog.New()
)

var rootCmd = &cobra.Command{
	Use:   "cftime",
	Short: "CF time coordinate conversion",
	Long: `cftime converts between CF (Climate and Forecast) time coordinates
and calendar datetimes.

A CF time coordinate is a numeric offset together with a units string
such as "days since 2000-01-01" and a calendar attribute. cftime decodes
offsets into datetimes and encodes datetimes back into offsets.

Supported calendars:
  standard             Julian before the 1582 reform, Gregorian after
  proleptic_gregorian  Gregorian rules for all years
  julian               Julian rules for all years
  no_leap              365 days in every year
  all_leap             366 days in every year
  360_day              twelve months of 30 days`,
	PersistentPreRunE: setup,
	SilenceUsage:      true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./cftime.toml, $CFTIME_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// setup loads the configuration and builds the logger before any
// subcommand runs. A missing default config file is not an error, an
// explicitly named one must exist.
func setup(cmd *cobra.Command, args []string) error {
	path := cfgFile
	explicit := path != ""
	if path == "" {
		path = os.Getenv("CFTIME_CONFIG")
		explicit = path != ""
	}
	if path == "" {
		path = "cftime.toml"
	}

	_, statErr := os.Stat(path)
	if statErr == nil || explicit {
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	level := cflog.DefaultLevel()
	if parsed, err := cflog.ParseLevel(cfg.GetString("log.level", "info")); err == nil {
		level = parsed
	}
	if verbose {
		level = cflog.LevelDebug
	}

	format := cflog.FormatConsole
	if parsed, err := cflog.ParseFormat(cfg.GetString("log.format", "console")); err == nil {
		format = parsed
	}

	logger = cflog.NewWithConfig(cflog.Config{
		Level:  level,
		Format: format,
		Output: os.Stderr,
	})
	cflog.SetDefault(logger)

	return nil
}

// resolveUnits picks the units string from the flag, then the config,
// then the conventional default.
func resolveUnits(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return cfg.GetString("defaults.units", "days since 1970-01-01")
}

// resolveCalendar picks the calendar name from the flag, then the
// config, then "standard".
func resolveCalendar(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return cfg.GetString("defaults.calendar", "standard")
}

// gatherInputs returns the positional arguments, or when none are given
// the whitespace-separated fields read from stdin. Batch pipelines feed
// offsets through a pipe without quoting gymnastics.
func gatherInputs(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	fields := strings.Fields(string(data))
	if len(fields) == 0 {
		return nil, fmt.Errorf("no input given on the command line or stdin")
	}
	return fields, nil
}
