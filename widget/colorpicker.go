package widget

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/banda-ui/banda"
	"github.com/banda-ui/banda/event"
	"github.com/banda-ui/banda/theme"
)

// hexColorRe matches #rgb and #rrggbb.
var hexColorRe = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// DefaultPalette is the stock swatch grid.
var DefaultPalette = []string{
	"#ef4444", "#f97316", "#f59e0b", "#84cc16", "#22c55e", "#14b8a6",
	"#06b6d4", "#3b82f6", "#6366f1", "#8b5cf6", "#d946ef", "#ec4899",
	"#ffffff", "#d4d4d4", "#737373", "#404040", "#171717", "#000000",
}

// ColorPickerOptions configures a ColorPicker.
type ColorPickerOptions struct {
	Label string
	// Value is the initial color as a hex string.
	Value string
	// Palette overrides the swatch grid. Nil means DefaultPalette.
	Palette []string
	// Columns is the grid width. Zero means 6.
	Columns  int
	OnChange func(hex string)
	Theme    *theme.Theme
}

type colorPickerModel struct {
	opts    ColorPickerOptions
	theme   *theme.Theme
	palette []string
	cols    int

	open   bool
	cursor int
	value  string

	// hex input mode: "i" switches from grid nav to free-form entry
	hexMode bool
	hex     textinput.Model
	hexErr  bool

	outside *event.OutsideClick
	bounds  event.Bounds
}

var _ banda.Component = (*colorPickerModel)(nil)

// ColorPicker creates a swatch-grid color picker with a free-form hex input.
// OnChange fires once per committed selection, whether it came from the grid
// or the hex field.
func ColorPicker(opts ColorPickerOptions) banda.Component {
	palette := opts.Palette
	if palette == nil {
		palette = DefaultPalette
	}
	cols := opts.Columns
	if cols <= 0 {
		cols = 6
	}

	hex := textinput.New()
	hex.Placeholder = "#rrggbb"
	hex.CharLimit = 7
	hex.Width = 9

	m := &colorPickerModel{
		opts:    opts,
		theme:   themeOrDefault(opts.Theme),
		palette: palette,
		cols:    cols,
		value:   opts.Value,
		hex:     hex,
	}
	m.outside = event.NewOutsideClick(func() event.Bounds { return m.bounds })
	return m
}

// Value returns the committed color.
func (m *colorPickerModel) Value() string { return m.value }

func (m *colorPickerModel) Init() tea.Cmd { return nil }

func (m *colorPickerModel) Update(msg tea.Msg) (banda.Component, tea.Cmd) {
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
		if s := key.String(); s == "enter" || s == " " {
			m.open = true
			m.cursor = m.indexOf(m.value)
			m.outside.Arm()
		}
		return m, nil
	}

	if m.hexMode {
		return m.updateHex(key)
	}

	switch key.String() {
	case "esc":
		m.close()
	case "left", "h":
		m.moveCursor(-1)
	case "right", "l":
		m.moveCursor(1)
	case "up", "k":
		m.moveCursor(-m.cols)
	case "down", "j":
		m.moveCursor(m.cols)
	case "i", "#":
		m.hexMode = true
		m.hexErr = false
		m.hex.SetValue(m.value)
		return m, m.hex.Focus()
	case "enter", " ":
		m.commit(m.palette[m.cursor])
		m.close()
	}
	return m, nil
}

// close shuts the palette, leaving hex mode and disarming outside detection.
func (m *colorPickerModel) close() {
	m.open = false
	m.hexMode = false
	m.hex.Blur()
	m.outside.Disarm()
}

func (m *colorPickerModel) updateHex(key tea.KeyMsg) (banda.Component, tea.Cmd) {
	switch key.String() {
	case "esc":
		m.hexMode = false
		m.hex.Blur()
		return m, nil
	case "enter":
		raw := strings.TrimSpace(m.hex.Value())
		if !strings.HasPrefix(raw, "#") {
			raw = "#" + raw
		}
		if !hexColorRe.MatchString(raw) {
			m.hexErr = true
			return m, nil
		}
		m.commit(strings.ToLower(raw))
		m.close()
		return m, nil
	}
	var cmd tea.Cmd
	m.hex, cmd = m.hex.Update(key)
	m.hexErr = false
	return m, cmd
}

func (m *colorPickerModel) moveCursor(delta int) {
	next := m.cursor + delta
	if next >= 0 && next < len(m.palette) {
		m.cursor = next
	}
}

func (m *colorPickerModel) commit(hex string) {
	if hex == m.value {
		return
	}
	m.value = hex
	if m.opts.OnChange != nil {
		m.opts.OnChange(hex)
	}
}

func (m *colorPickerModel) indexOf(hex string) int {
	for i, c := range m.palette {
		if strings.EqualFold(c, hex) {
			return i
		}
	}
	return 0
}

func (m *colorPickerModel) View() string {
	swatch := "  "
	if m.value != "" {
		swatch = lipgloss.NewStyle().Background(lipgloss.Color(m.value)).Render("  ")
	}
	header := fmt.Sprintf("%s %s %s", m.theme.Label.Render(m.opts.Label), swatch, m.theme.Muted.Render(m.value))
	if !m.open {
		m.bounds = event.Bounds{W: lipgloss.Width(header), H: lipgloss.Height(header)}
		return header
	}

	var rows []string
	for start := 0; start < len(m.palette); start += m.cols {
		end := start + m.cols
		if end > len(m.palette) {
			end = len(m.palette)
		}
		var cells []string
		for i := start; i < end; i++ {
			cell := lipgloss.NewStyle().Background(lipgloss.Color(m.palette[i])).Render("  ")
			if i == m.cursor && !m.hexMode {
				cell = m.theme.Selected.Render("[") + cell + m.theme.Selected.Render("]")
			} else {
				cell = " " + cell + " "
			}
			cells = append(cells, cell)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	grid := strings.Join(rows, "\n")

	hexLine := m.theme.Muted.Render("hex: ") + m.hex.View()
	if m.hexErr {
		hexLine += " " + m.theme.Error.Render("invalid hex color")
	}

	out := header + "\n" + m.theme.Box.Render(grid+"\n"+hexLine)
	m.bounds = event.Bounds{W: lipgloss.Width(out), H: lipgloss.Height(out)}
	return out
}
