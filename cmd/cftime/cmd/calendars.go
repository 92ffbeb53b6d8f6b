package cmd

import (
	"fmt"
	"strings"

	"github.com/msto63/cftime/foundation/cf/calendar"
	"github.com/spf13/cobra"
)

var calendarsCmd = &cobra.Command{
	Use:   "calendars",
	Short: "List the supported calendars",
	Long: `Lists the supported calendars with their CF attribute values and
accepted aliases. Any alias can be passed to --calendar.`,
	Run: runCalendars,
}

func init() {
	rootCmd.AddCommand(calendarsCmd)
}

func runCalendars(cmd *cobra.Command, args []string) {
	fmt.Println(headingStyle.Render("Supported calendars"))
	fmt.Println()

	for _, cal := range calendar.All() {
		fmt.Printf("  %s\n", datetimeStyle.Render(cal.Attribute()))
		fmt.Printf("    %s %s\n",
			mutedStyle.Render("aliases:"),
			strings.Join(cal.Aliases(), ", "))
	}
}
