// ============================================================================
// cftime - CF Time Coordinate Conversion
// ============================================================================
//
// Package:     convert
// Description: Bubbletea model for the interactive converter
// Author:      msto63 with Claude Sonnet 4.0
// Created:     2025-03-07
// License:     MIT
// ============================================================================

package convert

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/msto63/cftime/foundation/cf/calendar"
	"github.com/msto63/cftime/foundation/cf/codec"
	"github.com/msto63/cftime/foundation/cf/datetime"
)

// Mode selects the conversion direction
type Mode int

const (
	ModeDecode Mode = iota
	ModeEncode
)

func (m Mode) String() string {
	if m == ModeEncode {
		return "encode"
	}
	return "decode"
}

// Field indices into the inputs slice
const (
	fieldUnits = iota
	fieldCalendar
	fieldValue
	fieldCount
)

// Model is the bubbletea model for the interactive converter
type Model struct {
	width  int
	height int

	mode   Mode
	focus  int
	inputs []textinput.Model

	result string
	err    error
}

// NewModel builds the converter model seeded with the configured units
// string and calendar name.
func NewModel(units, calendarName string) Model {
	inputs := make([]textinput.Model, fieldCount)

	unitsInput := textinput.New()
	unitsInput.Placeholder = "days since 1970-01-01"
	unitsInput.SetValue(units)
	unitsInput.CharLimit = 80
	unitsInput.Width = 48
	unitsInput.Focus()
	inputs[fieldUnits] = unitsInput

	calendarInput := textinput.New()
	calendarInput.Placeholder = "standard"
	calendarInput.SetValue(calendarName)
	calendarInput.CharLimit = 30
	calendarInput.Width = 48
	inputs[fieldCalendar] = calendarInput

	valueInput := textinput.New()
	valueInput.Placeholder = "0"
	valueInput.CharLimit = 40
	valueInput.Width = 48
	inputs[fieldValue] = valueInput

	return Model{
		mode:   ModeDecode,
		inputs: inputs,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab", "down":
			m.setFocus((m.focus + 1) % fieldCount)
			return m, nil

		case "shift+tab", "up":
			m.setFocus((m.focus + fieldCount - 1) % fieldCount)
			return m, nil

		case "ctrl+e":
			if m.mode == ModeDecode {
				m.mode = ModeEncode
				m.inputs[fieldValue].Placeholder = "2000-01-01T12:00:00"
			} else {
				m.mode = ModeDecode
				m.inputs[fieldValue].Placeholder = "0"
			}
			m.inputs[fieldValue].SetValue("")
			m.result = ""
			m.err = nil
			return m, nil

		case "enter":
			m.convert()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *Model) setFocus(index int) {
	m.inputs[m.focus].Blur()
	m.focus = index
	m.inputs[m.focus].Focus()
}

// convert runs the conversion for the current inputs and stores the
// outcome in result or err.
func (m *Model) convert() {
	m.result = ""
	m.err = nil

	units := strings.TrimSpace(m.inputs[fieldUnits].Value())
	cal := calendar.Parse(strings.TrimSpace(m.inputs[fieldCalendar].Value()))
	value := strings.TrimSpace(m.inputs[fieldValue].Value())

	if value == "" {
		return
	}

	if m.mode == ModeDecode {
		offset, err := strconv.ParseFloat(value, 64)
		if err != nil {
			m.err = fmt.Errorf("offset %q is not a number", value)
			return
		}
		dt, err := codec.Decode(offset, units, cal)
		if err != nil {
			m.err = err
			return
		}
		m.result = dt.String()
		return
	}

	dt, err := parseDatetimeInput(value, cal)
	if err != nil {
		m.err = err
		return
	}
	offset, err := codec.Encode[float64](dt, units, cal)
	if err != nil {
		m.err = err
		return
	}
	m.result = strconv.FormatFloat(offset, 'g', -1, 64)
}

// parseDatetimeInput parses YYYY-MM-DD[THH:MM[:SS[.fff]]] with an
// optional space instead of the 'T'.
func parseDatetimeInput(s string, cal calendar.Calendar) (datetime.CFDatetime, error) {
	datePart := s
	timePart := ""
	if i := strings.IndexAny(s, "T "); i >= 0 {
		datePart = s[:i]
		timePart = s[i+1:]
	}

	negative := strings.HasPrefix(datePart, "-")
	if negative {
		datePart = datePart[1:]
	}
	dateFields := strings.Split(datePart, "-")
	if len(dateFields) != 3 {
		return datetime.CFDatetime{}, fmt.Errorf("date %q is not of the form YYYY-MM-DD", s)
	}
	year, err := strconv.ParseInt(dateFields[0], 10, 64)
	if err != nil {
		return datetime.CFDatetime{}, fmt.Errorf("year %q is not a number", dateFields[0])
	}
	if negative {
		year = -year
	}
	month, err := strconv.Atoi(dateFields[1])
	if err != nil {
		return datetime.CFDatetime{}, fmt.Errorf("month %q is not a number", dateFields[1])
	}
	day, err := strconv.Atoi(dateFields[2])
	if err != nil {
		return datetime.CFDatetime{}, fmt.Errorf("day %q is not a number", dateFields[2])
	}

	hour, minute := 0, 0
	second := 0.0
	if timePart != "" {
		timeFields := strings.Split(timePart, ":")
		if len(timeFields) > 3 {
			return datetime.CFDatetime{}, fmt.Errorf("time %q is not of the form HH:MM:SS", timePart)
		}
		hour, err = strconv.Atoi(timeFields[0])
		if err != nil {
			return datetime.CFDatetime{}, fmt.Errorf("hour %q is not a number", timeFields[0])
		}
		if len(timeFields) > 1 {
			minute, err = strconv.Atoi(timeFields[1])
			if err != nil {
				return datetime.CFDatetime{}, fmt.Errorf("minute %q is not a number", timeFields[1])
			}
		}
		if len(timeFields) > 2 {
			second, err = strconv.ParseFloat(timeFields[2], 64)
			if err != nil {
				return datetime.CFDatetime{}, fmt.Errorf("second %q is not a number", timeFields[2])
			}
		}
	}

	return datetime.FromYMDHMS(year, month, day, hour, minute, second, cal)
}

// View implements tea.Model
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("cftime converter"))
	b.WriteString("  ")
	b.WriteString(ModeStyle.Render(fmt.Sprintf("[%s]", m.mode)))
	b.WriteString("\n\n")

	labels := [fieldCount]string{"units", "calendar", "value"}
	for i, input := range m.inputs {
		label := LabelStyle.Render(labels[i])
		if i == m.focus {
			label = FocusedLabelStyle.Render(labels[i])
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, label, input.View()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case m.err != nil:
		b.WriteString(ErrorStyle.Render(m.err.Error()))
	case m.result != "":
		b.WriteString(ResultStyle.Render(m.result))
	}
	b.WriteString("\n")

	b.WriteString(HelpStyle.Render("tab: next field · enter: convert · ctrl+e: decode/encode · ctrl+c: quit"))

	return BoxStyle.Render(b.String())
}
