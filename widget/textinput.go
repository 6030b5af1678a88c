package widget

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/banda-ui/banda"
	"github.com/banda-ui/banda/theme"
	"github.com/banda-ui/banda/validate"
)

// TextInputOptions configures a TextInput.
type TextInputOptions struct {
	Label       string
	Placeholder string
	Value       string
	// Password masks the input.
	Password bool
	Width    int
	// Field binds the input to form validation. Every edit writes through
	// to the field; the inline error line follows the field's ShowError
	// policy (touched and invalid). Nil disables validation display.
	Field    *validate.Field
	OnChange func(value string)
	Theme    *theme.Theme
}

type textInputModel struct {
	opts  TextInputOptions
	theme *theme.Theme
	input textinput.Model
}

var _ banda.Component = (*textInputModel)(nil)

// TextInput creates a single-line input, optionally bound to a
// validate.Field for inline errors.
func TextInput(opts TextInputOptions) banda.Component {
	in := textinput.New()
	in.Placeholder = opts.Placeholder
	in.SetValue(opts.Value)
	if opts.Width > 0 {
		in.Width = opts.Width
	}
	if opts.Password {
		in.EchoMode = textinput.EchoPassword
	}
	in.Focus()

	if opts.Field != nil && opts.Value != "" {
		opts.Field.SetValue(opts.Value, true)
	}

	return &textInputModel{
		opts:  opts,
		theme: themeOrDefault(opts.Theme),
		input: in,
	}
}

// Value returns the current text.
func (m *textInputModel) Value() string { return m.input.Value() }

func (m *textInputModel) Init() tea.Cmd { return textinput.Blink }

func (m *textInputModel) Update(msg tea.Msg) (banda.Component, tea.Cmd) {
	// Esc acts as blur: touch the field so pristine required errors show.
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		if m.opts.Field != nil {
			m.opts.Field.Touch()
		}
		m.input.Blur()
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	if v := m.input.Value(); v != before {
		if m.opts.Field != nil {
			m.opts.Field.SetValue(v)
		}
		if m.opts.OnChange != nil {
			m.opts.OnChange(v)
		}
	}
	return m, cmd
}

// Focus refocuses the input after a blur.
func (m *textInputModel) Focus() tea.Cmd { return m.input.Focus() }

func (m *textInputModel) View() string {
	out := ""
	if m.opts.Label != "" {
		out = m.theme.Label.Render(m.opts.Label) + "\n"
	}
	out += m.input.View()
	if m.opts.Field != nil && m.opts.Field.ShowError() {
		for _, msg := range m.opts.Field.Errors() {
			out += "\n" + m.theme.Error.Render("✗ "+msg)
		}
	}
	return out
}
