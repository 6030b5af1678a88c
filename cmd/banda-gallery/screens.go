package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/banda-ui/banda"
	"github.com/banda-ui/banda/state"
	"github.com/banda-ui/banda/widget"
)

// demoSection is one named widget on a screen.
type demoSection struct {
	name string
	c    banda.Component
}

// demoScreen lays out a column of widgets; tab moves keyboard focus between
// them, every other key goes to the focused one.
type demoScreen struct {
	g        *gallery
	title    string
	sections []demoSection
	focused  int
}

var _ banda.Component = (*demoScreen)(nil)

func newDemoScreen(g *gallery, title string, sections ...demoSection) *demoScreen {
	return &demoScreen{g: g, title: title, sections: sections}
}

func (s *demoScreen) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(s.sections))
	for _, sec := range s.sections {
		cmds = append(cmds, sec.c.Init())
	}
	return tea.Batch(cmds...)
}

func (s *demoScreen) Update(msg tea.Msg) (banda.Component, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab":
			s.focused = (s.focused + 1) % len(s.sections)
			return s, nil
		case "shift+tab":
			s.focused = (s.focused + len(s.sections) - 1) % len(s.sections)
			return s, nil
		}
		sec := s.sections[s.focused]
		next, cmd := sec.c.Update(msg)
		s.sections[s.focused].c = next
		return s, cmd
	}

	// Non-key messages (ticks, progress frames) go to every section.
	var cmds []tea.Cmd
	for i, sec := range s.sections {
		next, cmd := sec.c.Update(msg)
		s.sections[i].c = next
		cmds = append(cmds, cmd)
	}
	return s, tea.Batch(cmds...)
}

func (s *demoScreen) View() string {
	th := s.g.theme
	parts := []string{th.Title.Render(s.title)}
	for i, sec := range s.sections {
		label := "  " + sec.name
		if i == s.focused {
			label = th.Status.Render("▸ " + sec.name)
		} else {
			label = th.Muted.Render(label)
		}
		parts = append(parts, label, sec.c.View(), "")
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func newInputsScreen(g *gallery) banda.Component {
	return newDemoScreen(g, "Inputs",
		demoSection{"Text input", widget.TextInput(widget.TextInputOptions{
			Label: "Name", Placeholder: "Ada Lovelace", Width: 32,
		})},
		demoSection{"Password", widget.TextInput(widget.TextInputOptions{
			Label: "Password", Password: true, Width: 32,
		})},
		demoSection{"Checkbox", widget.Checkbox(widget.ToggleOptions{Label: "Subscribe to updates"})},
		demoSection{"Switch", widget.Switch(widget.ToggleOptions{Label: "Dark mode", Checked: true})},
		demoSection{"Radio", widget.RadioGroup(widget.RadioGroupOptions{
			Label: "Size",
			Options: []widget.RadioOption{
				{Label: "Small", Value: "s"},
				{Label: "Medium", Value: "m"},
				{Label: "Large", Value: "l", Disabled: true},
			},
		})},
		demoSection{"Button", widget.Button(widget.ButtonOptions{
			Label: "Say hi",
			OnPress: func() tea.Cmd {
				return widget.ShowToast(widget.ToastOptions{Message: "hi!", Level: widget.ToastInfo})
			},
		})},
	)
}

func newPickersScreen(g *gallery) banda.Component {
	return newDemoScreen(g, "Pickers",
		demoSection{"Select", widget.Select(widget.SelectOptions{
			Label:      "Language",
			Searchable: true,
			Groups: []widget.SelectGroup{
				{Label: "Compiled", Options: []widget.SelectOption{
					{Label: "Go", Value: "go"},
					{Label: "Rust", Value: "rust"},
					{Label: "Zig", Value: "zig"},
				}},
				{Label: "Interpreted", Options: []widget.SelectOption{
					{Label: "Python", Value: "python"},
					{Label: "Ruby", Value: "ruby"},
				}},
			},
		})},
		demoSection{"Date", widget.DatePicker(widget.DatePickerOptions{
			Label: "Departure",
			Min:   time.Now(),
		})},
		demoSection{"Color", widget.ColorPicker(widget.ColorPickerOptions{
			Label: "Accent",
			Value: "#3b82f6",
		})},
	)
}

func newDataScreen(g *gallery) banda.Component {
	rows := []widget.Row{
		{"service": "gateway", "p99_ms": 41, "errors": 2},
		{"service": "auth", "p99_ms": 12, "errors": 0},
		{"service": "billing", "p99_ms": 187, "errors": 9},
		{"service": "search", "p99_ms": 64, "errors": 1},
	}
	table := widget.Table(widget.TableOptions{
		Columns: []widget.Column{
			{Key: "service", Title: "Service", Sortable: true},
			{Key: "p99_ms", Title: "p99 (ms)", Sortable: true},
			{Key: "errors", Title: "Errors", Sortable: true},
		},
		Rows:       rows,
		KeyField:   "service",
		PageSize:   3,
		Selectable: true,
	})

	tabs := widget.Tabs(widget.TabsOptions{
		Tabs: []widget.Tab{
			{Title: "Overview", Content: widget.Card(widget.CardOptions{
				Title: "Fleet", Body: "Four services, one misbehaving.", Width: 36,
			})},
			{Title: "Alerts", Content: widget.Alert(widget.AlertOptions{
				Title: "billing p99 regression", Message: "Latency above budget for 20 minutes.",
				Level: widget.BadgeWarning, Width: 36,
			})},
			{Title: "Archive", Disabled: true},
		},
	})

	accordion := widget.Accordion(widget.AccordionOptions{
		Exclusive: true,
		Sections: []widget.AccordionSection{
			{Title: "What is this?", Content: "A table, tabs, and this accordion."},
			{Title: "Sorting", Content: "Press s on a sortable column:\nascending, descending, then back to input order."},
		},
	})

	return newDemoScreen(g, "Data",
		demoSection{"Table (s: sort, space: select)", table},
		demoSection{"Tabs", tabs},
		demoSection{"Accordion", accordion},
	)
}

// feedbackScreen adds modal and toast triggers plus a counter whose state
// changes flow through the plugin hook pipeline.
type feedbackScreen struct {
	*demoScreen
	counter *state.State[int]
	label   string
}

func newFeedbackScreen(g *gallery) banda.Component {
	counter := state.New(0, state.WithName[int]("gallery.counter"))
	s := &feedbackScreen{counter: counter}
	counter.Subscribe(func(n, _ int) {
		s.label = fmt.Sprintf("counter: %d", n)
	})
	s.label = "counter: 0"

	s.demoScreen = newDemoScreen(g, "Feedback",
		demoSection{"Spinner", widget.Spinner(widget.SpinnerOptions{Label: "reticulating splines"})},
		demoSection{"Progress", widget.ProgressBar(widget.ProgressBarOptions{Label: "Deploy", Percent: 0.4, Width: 32})},
		demoSection{"Badges", widget.Badge("stable", widget.BadgeSuccess, nil)},
	)
	return s
}

func (s *feedbackScreen) Update(msg tea.Msg) (banda.Component, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "m":
			return s, s.demoScreen.g.modals.Open(widget.Confirm(widget.ConfirmOptions{
				Title:  "Delete everything?",
				Label:  "This cannot be undone.",
				Danger: true,
				OnConfirm: func() tea.Msg {
					return widget.ShowToastMsg{Options: widget.ToastOptions{Message: "deleted", Level: widget.ToastError}}
				},
			}))
		case "t":
			return s, widget.ShowToast(widget.ToastOptions{Message: "a wild toast appears", Level: widget.ToastInfo})
		case "+":
			s.counter.Update(func(n int) int { return n + 1 })
			return s, nil
		}
	}
	next, cmd := s.demoScreen.Update(msg)
	s.demoScreen = next.(*demoScreen)
	return s, cmd
}

func (s *feedbackScreen) View() string {
	th := s.demoScreen.g.theme
	extra := th.Hint.Render("m: modal · t: toast · +: increment") + "\n" + th.Normal.Render(s.label)
	return s.demoScreen.View() + "\n" + extra
}

func newEditorScreen(g *gallery) banda.Component {
	return newDemoScreen(g, "Editor",
		demoSection{"Markdown (ctrl+t then b/i/c/h/l)", widget.RichTextEditor(widget.RichTextOptions{
			Placeholder: "Write something…",
			Width:       60,
			Height:      10,
		})},
	)
}

func newUploadScreen(g *gallery) banda.Component {
	return newDemoScreen(g, "Upload",
		demoSection{"Images only", widget.FileUpload(widget.FileUploadOptions{
			Accept: []string{"image"},
			Upload: func(path string, emit *widget.ProgressEmitter) {
				// Simulated transfer.
				for i := 1; i <= 10; i++ {
					time.Sleep(80 * time.Millisecond)
					emit.Emit(widget.ProgressEvent{Percent: float64(i) / 10, Status: widget.ProgressRunning})
				}
				emit.Emit(widget.ProgressEvent{Percent: 1, Status: widget.ProgressDone})
			},
		})},
	)
}

func newTerminalScreen(g *gallery) banda.Component {
	return newDemoScreen(g, "Terminal",
		demoSection{"Shell", widget.Terminal(widget.TerminalOptions{})},
	)
}
