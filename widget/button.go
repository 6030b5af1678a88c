package widget

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/banda-ui/banda"
	"github.com/banda-ui/banda/theme"
)

// ButtonVariant selects a button's visual treatment.
type ButtonVariant int

const (
	ButtonPrimary ButtonVariant = iota
	ButtonSecondary
	ButtonDanger
)

// ButtonOptions configures a Button.
type ButtonOptions struct {
	Label    string
	Variant  ButtonVariant
	Disabled bool
	// OnPress runs when the button is activated with enter or space.
	// Its command (may be nil) is returned to the runtime.
	OnPress func() tea.Cmd
	Theme   *theme.Theme
}

type buttonModel struct {
	opts    ButtonOptions
	theme   *theme.Theme
	focused bool
}

var _ banda.Component = (*buttonModel)(nil)

// Button creates a pressable button. Disabled buttons render dimmed and
// ignore activation.
func Button(opts ButtonOptions) banda.Component {
	return &buttonModel{opts: opts, theme: themeOrDefault(opts.Theme)}
}

func (m *buttonModel) Init() tea.Cmd { return nil }

func (m *buttonModel) Update(msg tea.Msg) (banda.Component, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "enter", " ":
		if m.opts.Disabled || m.opts.OnPress == nil {
			return m, nil
		}
		return m, m.opts.OnPress()
	}
	return m, nil
}

// SetFocused toggles the focus ring treatment.
func (m *buttonModel) SetFocused(focused bool) { m.focused = focused }

func (m *buttonModel) View() string {
	label := " " + m.opts.Label + " "

	var s lipgloss.Style
	switch {
	case m.opts.Disabled:
		s = m.theme.Disabled
	case m.opts.Variant == ButtonDanger:
		s = m.theme.Error.Bold(true)
	case m.opts.Variant == ButtonSecondary:
		s = m.theme.Normal
	default:
		s = m.theme.Selected
	}
	if m.focused && !m.opts.Disabled {
		return s.Render("[" + label + "]")
	}
	return s.Render("⟨" + label + "⟩")
}
