package widget

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/banda-ui/banda"
	"github.com/banda-ui/banda/theme"
)

// ConfirmOptions configures a confirmation dialog.
// Enter or y confirms; Esc cancels.
type ConfirmOptions struct {
	Title   string
	Label   string
	Details string // optional warning details shown under the label
	Danger  bool
	// OnConfirm produces the message to emit on confirmation.
	OnConfirm func() tea.Msg
	Theme     *theme.Theme
}

// Confirm builds the ModalSpec for a confirmation dialog, ready for
// Modals.Open.
func Confirm(opts ConfirmOptions) ModalSpec {
	return ModalSpec{
		Title:   opts.Title,
		Danger:  opts.Danger,
		Content: &confirmDialog{opts: opts, theme: themeOrDefault(opts.Theme)},
	}
}

type confirmDialog struct {
	opts  ConfirmOptions
	theme *theme.Theme
}

var _ banda.Component = (*confirmDialog)(nil)

func (d *confirmDialog) Init() tea.Cmd { return nil }

func (d *confirmDialog) Update(msg tea.Msg) (banda.Component, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "enter", "y":
			cmds := []tea.Cmd{RequestClose}
			if d.opts.OnConfirm != nil {
				cmds = append(cmds, d.opts.OnConfirm)
			}
			return d, tea.Batch(cmds...)
		}
	}
	return d, nil
}

func (d *confirmDialog) View() string {
	content := d.theme.Label.Render(d.opts.Label)
	if d.opts.Details != "" {
		content += "\n" + d.theme.Details.Render(d.opts.Details)
	}
	return content + "\n\n" + d.theme.Hint.Render("y/Enter: confirm  Esc: cancel")
}

// PromptOptions configures a single-line text prompt dialog.
type PromptOptions struct {
	Title       string
	Placeholder string
	Initial     string
	Width       int
	// OnSubmit produces the message to emit with the trimmed value.
	// An empty value does not submit.
	OnSubmit func(value string) tea.Msg
	Theme    *theme.Theme
}

// Prompt builds the ModalSpec for a text prompt dialog.
func Prompt(opts PromptOptions) ModalSpec {
	ti := textinput.New()
	ti.Placeholder = opts.Placeholder
	ti.SetValue(opts.Initial)
	ti.Width = opts.Width
	if ti.Width == 0 {
		ti.Width = 40
	}
	ti.Focus()
	return ModalSpec{
		Title:   opts.Title,
		Content: &promptDialog{opts: opts, input: ti, theme: themeOrDefault(opts.Theme)},
	}
}

type promptDialog struct {
	opts  PromptOptions
	input textinput.Model
	theme *theme.Theme
}

var _ banda.Component = (*promptDialog)(nil)

func (d *promptDialog) Init() tea.Cmd { return textinput.Blink }

func (d *promptDialog) Update(msg tea.Msg) (banda.Component, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "enter" {
		value := strings.TrimSpace(d.input.Value())
		if value == "" {
			return d, nil
		}
		cmds := []tea.Cmd{RequestClose}
		if d.opts.OnSubmit != nil {
			cmds = append(cmds, func() tea.Msg { return d.opts.OnSubmit(value) })
		}
		return d, tea.Batch(cmds...)
	}
	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return d, cmd
}

func (d *promptDialog) View() string {
	return d.input.View() + "\n\n" + d.theme.Hint.Render("Enter: submit  Esc: cancel")
}
