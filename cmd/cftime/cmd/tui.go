package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/msto63/cftime/internal/tui/convert"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Start the interactive converter",
	Long: `Starts the interactive terminal converter.

Offsets typed into the value field are decoded live against the units
string and calendar. Tab switches between fields, Ctrl+E toggles
between decode and encode mode, Ctrl+C quits.`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	units := resolveUnits("")
	cal := resolveCalendar("")

	p := tea.NewProgram(
		convert.NewModel(units, cal),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "tui error: %v\n", err)
		return err
	}

	return nil
}
