package main

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/banda-ui/banda"
	"github.com/banda-ui/banda/validate"
	"github.com/banda-ui/banda/widget"
)

// formScreen composes validated text inputs into a signup form: per-field
// errors appear on blur, submit validates everything and toasts the outcome.
type formScreen struct {
	g    *gallery
	form *validate.Form

	inputs  []banda.Component
	labels  []string
	focused int
}

func newFormScreen(g *gallery) banda.Component {
	form := validate.NewForm()

	name := validate.NewField(validate.Required(), validate.MinLength(2))
	email := validate.NewField(validate.Required(), validate.Email())
	age := validate.NewField(validate.Numeric(), validate.Min(13), validate.Max(120))
	form.AddField("name", name).
		AddField("email", email).
		AddField("age", age)

	s := &formScreen{g: g, form: form, labels: []string{"Name", "Email", "Age"}}
	s.inputs = []banda.Component{
		widget.TextInput(widget.TextInputOptions{Label: "Name", Placeholder: "Ada Lovelace", Width: 32, Field: name}),
		widget.TextInput(widget.TextInputOptions{Label: "Email", Placeholder: "ada@example.com", Width: 32, Field: email}),
		widget.TextInput(widget.TextInputOptions{Label: "Age", Placeholder: "36", Width: 8, Field: age}),
	}
	return s
}

var _ banda.Component = (*formScreen)(nil)

func (s *formScreen) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(s.inputs))
	for _, in := range s.inputs {
		cmds = append(cmds, in.Init())
	}
	return tea.Batch(cmds...)
}

func (s *formScreen) Update(msg tea.Msg) (banda.Component, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch key.String() {
	case "tab":
		s.blurFocused()
		s.focused = (s.focused + 1) % len(s.inputs)
		return s, nil
	case "shift+tab":
		s.blurFocused()
		s.focused = (s.focused + len(s.inputs) - 1) % len(s.inputs)
		return s, nil
	case "enter":
		return s, s.submit()
	}

	next, cmd := s.inputs[s.focused].Update(msg)
	s.inputs[s.focused] = next
	return s, cmd
}

// blurFocused touches the field being left so its errors surface.
func (s *formScreen) blurFocused() {
	names := s.form.FieldNames()
	if s.focused < len(names) {
		s.form.Field(names[s.focused]).Touch()
	}
}

func (s *formScreen) submit() tea.Cmd {
	// No backend here; the handler just accepts the validated values.
	submitted, err := s.form.HandleSubmit(context.Background(), func(context.Context, map[string]any) error {
		return nil
	})
	if !submitted {
		return widget.ShowToast(widget.ToastOptions{Message: "fix the highlighted fields", Level: widget.ToastError})
	}
	if err != nil {
		return widget.ShowToast(widget.ToastOptions{Message: "submit failed: " + err.Error(), Level: widget.ToastError})
	}
	name, _ := s.form.Values()["name"].(string)
	return widget.ShowToast(widget.ToastOptions{Message: "welcome, " + strings.TrimSpace(name), Level: widget.ToastSuccess})
}

func (s *formScreen) View() string {
	th := s.g.theme
	parts := []string{th.Title.Render("Signup")}
	for i, in := range s.inputs {
		marker := "  "
		if i == s.focused {
			marker = th.Status.Render("▸ ")
		}
		parts = append(parts, marker+strings.ReplaceAll(in.View(), "\n", "\n  "), "")
	}
	parts = append(parts, th.Hint.Render("tab: next field · enter: submit"))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
