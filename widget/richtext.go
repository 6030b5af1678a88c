package widget

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/banda-ui/banda"
	"github.com/banda-ui/banda/theme"
)

// RichTextOptions configures a RichTextEditor.
type RichTextOptions struct {
	// Value is the initial markdown content.
	Value       string
	Placeholder string
	Width       int
	Height      int
	OnChange    func(markdown string)
	Theme       *theme.Theme
}

type richTextModel struct {
	opts  RichTextOptions
	theme *theme.Theme
	area  textarea.Model

	// command mode: ctrl+t enters it, the next key picks a formatting
	// command, anything else falls back to plain input
	command bool
}

var _ banda.Component = (*richTextModel)(nil)

// RichTextEditor creates a markdown editor over a textarea. Formatting
// commands live behind a ctrl+t prefix: b/i/c wrap the current line's word in
// bold/italic/code markers, h cycles the heading level, l toggles a list
// bullet.
func RichTextEditor(opts RichTextOptions) banda.Component {
	area := textarea.New()
	area.Placeholder = opts.Placeholder
	area.SetValue(opts.Value)
	if opts.Width > 0 {
		area.SetWidth(opts.Width)
	}
	if opts.Height > 0 {
		area.SetHeight(opts.Height)
	}
	area.Focus()

	return &richTextModel{
		opts:  opts,
		theme: themeOrDefault(opts.Theme),
		area:  area,
	}
}

// Value returns the current markdown content.
func (m *richTextModel) Value() string { return m.area.Value() }

func (m *richTextModel) Init() tea.Cmd { return textarea.Blink }

func (m *richTextModel) Update(msg tea.Msg) (banda.Component, tea.Cmd) {
	key, isKey := msg.(tea.KeyMsg)
	if isKey && m.command {
		m.command = false
		if m.applyCommand(key.String()) {
			m.notify()
			return m, nil
		}
		// Unrecognized command keys fall through to the textarea.
	}
	if isKey && key.String() == "ctrl+t" {
		m.command = true
		return m, nil
	}

	before := m.area.Value()
	var cmd tea.Cmd
	m.area, cmd = m.area.Update(msg)
	if m.area.Value() != before {
		m.notify()
	}
	return m, cmd
}

func (m *richTextModel) notify() {
	if m.opts.OnChange != nil {
		m.opts.OnChange(m.area.Value())
	}
}

// applyCommand runs one formatting command against the current line.
// Returns false for keys that are not commands.
func (m *richTextModel) applyCommand(key string) bool {
	switch key {
	case "b":
		m.wrapLine("**")
	case "i":
		m.wrapLine("*")
	case "c":
		m.wrapLine("`")
	case "h":
		m.cycleHeading()
	case "l":
		m.toggleBullet()
	default:
		return false
	}
	return true
}

// wrapLine toggles a marker pair around the current line's text.
func (m *richTextModel) wrapLine(marker string) {
	m.editLine(func(line string) string {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			return line
		}
		indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		if strings.HasPrefix(trimmed, marker) && strings.HasSuffix(trimmed, marker) && len(trimmed) >= 2*len(marker) {
			return indent + strings.TrimSuffix(strings.TrimPrefix(trimmed, marker), marker)
		}
		return indent + marker + trimmed + marker
	})
}

// cycleHeading steps the line through h1..h3 then back to plain text.
func (m *richTextModel) cycleHeading() {
	m.editLine(func(line string) string {
		switch {
		case strings.HasPrefix(line, "### "):
			return strings.TrimPrefix(line, "### ")
		case strings.HasPrefix(line, "## "):
			return "#" + line
		case strings.HasPrefix(line, "# "):
			return "#" + line
		default:
			return "# " + line
		}
	})
}

func (m *richTextModel) toggleBullet() {
	m.editLine(func(line string) string {
		if strings.HasPrefix(line, "- ") {
			return strings.TrimPrefix(line, "- ")
		}
		return "- " + line
	})
}

// editLine rewrites the line under the cursor, preserving the cursor's row.
func (m *richTextModel) editLine(fn func(string) string) {
	lines := strings.Split(m.area.Value(), "\n")
	row := m.area.Line()
	if row < 0 || row >= len(lines) {
		return
	}
	lines[row] = fn(lines[row])
	m.area.SetValue(strings.Join(lines, "\n"))

	// SetValue moves the cursor to the end; walk it back to the edited row.
	m.area.CursorStart()
	for i := 0; i < row; i++ {
		m.area.CursorDown()
	}
	m.area.CursorEnd()
}

// wordCount counts whitespace-separated words, ignoring markdown markers
// that stand alone.
func wordCount(s string) int {
	n := 0
	for _, w := range strings.Fields(s) {
		if strings.Trim(w, "*`#-") != "" {
			n++
		}
	}
	return n
}

func (m *richTextModel) View() string {
	mode := "insert"
	if m.command {
		mode = "command: b/i/c wrap · h heading · l list"
	}
	status := m.theme.Hint.Render(fmt.Sprintf("%s · %d words", mode, wordCount(m.area.Value())))
	return m.area.View() + "\n" + status
}
