package widget

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/banda-ui/banda"
	"github.com/banda-ui/banda/event"
	"github.com/banda-ui/banda/theme"
)

// DatePickerOptions configures a DatePicker.
type DatePickerOptions struct {
	Label string
	// Value preselects a date.
	Value time.Time
	// Min and Max bound the selectable range (inclusive). Zero means
	// unbounded.
	Min time.Time
	Max time.Time
	// Disabled lists individually unselectable dates.
	Disabled []time.Time
	// OnChange fires with each selected date. Disabled dates never reach it.
	OnChange func(date time.Time)
	Theme    *theme.Theme
}

type datePickerModel struct {
	opts     DatePickerOptions
	theme    *theme.Theme
	open     bool
	selected time.Time
	// viewDate is the month cursor, independent of the selection: paging
	// months moves viewDate and leaves selected alone.
	viewDate time.Time
	cursor   time.Time
	outside  *event.OutsideClick
	bounds   event.Bounds
}

var _ banda.Component = (*datePickerModel)(nil)

// DatePicker creates a month-grid date selector.
func DatePicker(opts DatePickerOptions) banda.Component {
	m := &datePickerModel{opts: opts, theme: themeOrDefault(opts.Theme), selected: truncateDay(opts.Value)}
	anchor := opts.Value
	if anchor.IsZero() {
		anchor = time.Now()
	}
	m.viewDate = monthStart(anchor)
	m.cursor = truncateDay(anchor)
	m.outside = event.NewOutsideClick(func() event.Bounds { return m.bounds })
	return m
}

func truncateDay(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	return !a.IsZero() && !b.IsZero() &&
		a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// dateDisabled applies the policy: strictly before Min, strictly after Max,
// or an exact match in the disabled list.
func (m *datePickerModel) dateDisabled(d time.Time) bool {
	if !m.opts.Min.IsZero() && d.Before(truncateDay(m.opts.Min)) {
		return true
	}
	if !m.opts.Max.IsZero() && d.After(truncateDay(m.opts.Max)) {
		return true
	}
	for _, dis := range m.opts.Disabled {
		if sameDay(d, dis) {
			return true
		}
	}
	return false
}

// monthGrid returns the 6x7 grid for the viewed month, filled with leading
// and trailing days from the adjacent months.
func (m *datePickerModel) monthGrid() [][]time.Time {
	first := m.viewDate
	lead := int(first.Weekday()) // days shown from the previous month
	start := first.AddDate(0, 0, -lead)

	grid := make([][]time.Time, 6)
	day := start
	for week := range grid {
		grid[week] = make([]time.Time, 7)
		for dow := range grid[week] {
			grid[week][dow] = day
			day = day.AddDate(0, 0, 1)
		}
	}
	return grid
}

func (m *datePickerModel) Init() tea.Cmd { return nil }

func (m *datePickerModel) Update(msg tea.Msg) (banda.Component, tea.Cmd) {
	if mouse, ok := msg.(tea.MouseMsg); ok {
		if m.open && m.outside.Observe(mouse) {
			m.close()
		}
		return m, nil
	}
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if !m.open {
		switch key.String() {
		case "enter", " ", "down":
			m.open = true
			if m.cursor.IsZero() {
				m.cursor = truncateDay(time.Now())
			}
			m.viewDate = monthStart(m.cursor)
			m.outside.Arm()
		}
		return m, nil
	}

	switch key.String() {
	case "esc":
		m.close()
	case "left":
		m.moveCursor(-1)
	case "right":
		m.moveCursor(1)
	case "up":
		m.moveCursor(-7)
	case "down":
		m.moveCursor(7)
	case "pgup", "[":
		m.viewDate = m.viewDate.AddDate(0, -1, 0)
	case "pgdown", "]":
		m.viewDate = m.viewDate.AddDate(0, 1, 0)
	case "enter":
		m.selectDate(m.cursor)
	}
	return m, nil
}

func (m *datePickerModel) close() {
	m.open = false
	m.outside.Disarm()
}

// moveCursor moves by days, paging the view when the cursor leaves the
// visible month.
func (m *datePickerModel) moveCursor(days int) {
	m.cursor = m.cursor.AddDate(0, 0, days)
	if !monthStart(m.cursor).Equal(m.viewDate) {
		m.viewDate = monthStart(m.cursor)
	}
}

// selectDate commits a selection. Disabled dates are ignored entirely; an
// adjacent-month day jumps the view to its month and selects it.
func (m *datePickerModel) selectDate(d time.Time) {
	if d.IsZero() || m.dateDisabled(d) {
		return
	}
	if !monthStart(d).Equal(m.viewDate) {
		m.viewDate = monthStart(d)
	}
	m.selected = d
	m.cursor = d
	m.close()
	if m.opts.OnChange != nil {
		m.opts.OnChange(d)
	}
}

func (m *datePickerModel) View() string {
	display := "no date"
	if !m.selected.IsZero() {
		display = m.selected.Format("2006-01-02")
	}

	var b strings.Builder
	if m.opts.Label != "" {
		b.WriteString(m.theme.Label.Render(m.opts.Label) + "\n")
	}
	trigger := m.theme.BoxCompact
	if m.open {
		trigger = m.theme.BoxFocused
	}
	b.WriteString(trigger.Render(display + " ▾"))
	if !m.open {
		out := b.String()
		m.bounds = event.Bounds{W: lipgloss.Width(out), H: lipgloss.Height(out)}
		return out
	}

	var rows []string
	rows = append(rows, m.theme.Title.Render(m.viewDate.Format("January 2006")))
	rows = append(rows, m.theme.Hint.Render("Su Mo Tu We Th Fr Sa"))
	for _, week := range m.monthGrid() {
		cells := make([]string, 0, 7)
		for _, day := range week {
			cells = append(cells, m.renderDay(day))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	rows = append(rows, m.theme.Hint.Render("←↑→↓ move  [/] month  Enter select"))
	b.WriteString("\n" + m.theme.BoxCompact.Render(strings.Join(rows, "\n")))
	out := b.String()
	m.bounds = event.Bounds{W: lipgloss.Width(out), H: lipgloss.Height(out)}
	return out
}

func (m *datePickerModel) renderDay(day time.Time) string {
	label := day.Format("_2")
	if len(label) == 1 {
		label = " " + label
	}
	cell := label + " "

	switch {
	case m.dateDisabled(day):
		return m.theme.Disabled.Render(cell)
	case sameDay(day, m.cursor):
		return m.theme.Selected.Render(cell)
	case sameDay(day, m.selected):
		return m.theme.Status.Render(cell)
	case !monthStart(day).Equal(m.viewDate):
		// Leading/trailing adjacent-month day.
		return m.theme.Muted.Render(cell)
	default:
		return m.theme.Normal.Render(cell)
	}
}
