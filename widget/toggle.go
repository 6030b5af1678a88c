package widget

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/banda-ui/banda"
	"github.com/banda-ui/banda/theme"
)

// ToggleOptions configures a Checkbox or Switch.
type ToggleOptions struct {
	Label    string
	Checked  bool
	Disabled bool
	OnChange func(checked bool)
	Theme    *theme.Theme
}

type toggleKind int

const (
	toggleCheckbox toggleKind = iota
	toggleSwitch
)

type toggleModel struct {
	opts    ToggleOptions
	theme   *theme.Theme
	kind    toggleKind
	checked bool
}

var _ banda.Component = (*toggleModel)(nil)

// Checkbox creates a [x]-style toggle.
func Checkbox(opts ToggleOptions) banda.Component {
	return &toggleModel{opts: opts, theme: themeOrDefault(opts.Theme), kind: toggleCheckbox, checked: opts.Checked}
}

// Switch creates an on/off slider-style toggle.
func Switch(opts ToggleOptions) banda.Component {
	return &toggleModel{opts: opts, theme: themeOrDefault(opts.Theme), kind: toggleSwitch, checked: opts.Checked}
}

// Checked reports the current state.
func (m *toggleModel) Checked() bool { return m.checked }

func (m *toggleModel) Init() tea.Cmd { return nil }

func (m *toggleModel) Update(msg tea.Msg) (banda.Component, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || m.opts.Disabled {
		return m, nil
	}
	switch key.String() {
	case " ", "enter":
		m.checked = !m.checked
		if m.opts.OnChange != nil {
			m.opts.OnChange(m.checked)
		}
	}
	return m, nil
}

func (m *toggleModel) View() string {
	var mark string
	switch m.kind {
	case toggleSwitch:
		if m.checked {
			mark = m.theme.Success.Render("(──●)")
		} else {
			mark = m.theme.Muted.Render("(●──)")
		}
	default:
		if m.checked {
			mark = m.theme.Selected.Render("[x]")
		} else {
			mark = "[ ]"
		}
	}
	label := m.opts.Label
	if m.opts.Disabled {
		return m.theme.Disabled.Render(fmt.Sprintf("%s %s", mark, label))
	}
	return fmt.Sprintf("%s %s", mark, m.theme.Normal.Render(label))
}

// RadioOption is one choice in a RadioGroup.
type RadioOption struct {
	Label    string
	Value    string
	Disabled bool
}

// RadioGroupOptions configures a RadioGroup.
type RadioGroupOptions struct {
	Label   string
	Options []RadioOption
	// Value is the initially selected option value.
	Value    string
	OnChange func(value string)
	Theme    *theme.Theme
}

type radioGroupModel struct {
	opts     RadioGroupOptions
	theme    *theme.Theme
	cursor   int
	selected int // -1 until something is chosen
}

var _ banda.Component = (*radioGroupModel)(nil)

// RadioGroup creates a single-choice option list. Up/down move the cursor
// past disabled options; space or enter selects.
func RadioGroup(opts RadioGroupOptions) banda.Component {
	m := &radioGroupModel{opts: opts, theme: themeOrDefault(opts.Theme), selected: -1}
	for i, o := range opts.Options {
		if o.Value == opts.Value && opts.Value != "" {
			m.selected = i
			m.cursor = i
			break
		}
	}
	return m
}

// Value returns the selected option's value, or "" when nothing is selected.
func (m *radioGroupModel) Value() string {
	if m.selected < 0 || m.selected >= len(m.opts.Options) {
		return ""
	}
	return m.opts.Options[m.selected].Value
}

func (m *radioGroupModel) Init() tea.Cmd { return nil }

func (m *radioGroupModel) Update(msg tea.Msg) (banda.Component, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "up", "k":
		m.move(-1)
	case "down", "j":
		m.move(1)
	case " ", "enter":
		if m.cursor < len(m.opts.Options) && !m.opts.Options[m.cursor].Disabled && m.cursor != m.selected {
			m.selected = m.cursor
			if m.opts.OnChange != nil {
				m.opts.OnChange(m.opts.Options[m.cursor].Value)
			}
		}
	}
	return m, nil
}

func (m *radioGroupModel) move(delta int) {
	for i := m.cursor + delta; i >= 0 && i < len(m.opts.Options); i += delta {
		if !m.opts.Options[i].Disabled {
			m.cursor = i
			return
		}
	}
}

func (m *radioGroupModel) View() string {
	out := ""
	if m.opts.Label != "" {
		out = m.theme.Label.Render(m.opts.Label) + "\n"
	}
	for i, o := range m.opts.Options {
		mark := "( )"
		if i == m.selected {
			mark = "(●)"
		}
		line := fmt.Sprintf("%s %s", mark, o.Label)
		switch {
		case o.Disabled:
			line = m.theme.Disabled.Render(line)
		case i == m.cursor:
			line = m.theme.Selected.Render(line)
		default:
			line = m.theme.Normal.Render(line)
		}
		out += line
		if i < len(m.opts.Options)-1 {
			out += "\n"
		}
	}
	return out
}
