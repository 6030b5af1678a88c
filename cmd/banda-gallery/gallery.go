package main

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/banda-ui/banda"
	"github.com/banda-ui/banda/state"
	"github.com/banda-ui/banda/theme"
	"github.com/banda-ui/banda/widget"
)

// goHomeMsg pops every screen back to the index.
type goHomeMsg struct{}

// setThemeMsg switches the active theme preset and rebuilds the screens.
type setThemeMsg struct {
	name string
}

// screenEntry is one row of the gallery index.
type screenEntry struct {
	title string
	desc  string
	build func() banda.Component
}

func (e screenEntry) Title() string       { return e.title }
func (e screenEntry) Description() string { return e.desc }
func (e screenEntry) FilterValue() string { return e.title }

type gallery struct {
	theme     *theme.Theme
	modals    *widget.Modals
	toasts    *widget.Toasts
	themeName *state.State[string]

	index list.Model
	stack banda.Stack
}

func newGallery(th *theme.Theme, modals *widget.Modals, toasts *widget.Toasts, themeName *state.State[string]) *gallery {
	g := &gallery{
		theme:     th,
		modals:    modals,
		toasts:    toasts,
		themeName: themeName,
	}

	entries := []list.Item{
		screenEntry{"Inputs", "text input, toggles, radio, button", func() banda.Component { return newInputsScreen(g) }},
		screenEntry{"Pickers", "select, date picker, color picker", func() banda.Component { return newPickersScreen(g) }},
		screenEntry{"Data", "table, tabs, accordion", func() banda.Component { return newDataScreen(g) }},
		screenEntry{"Feedback", "modal, toast, spinner, progress", func() banda.Component { return newFeedbackScreen(g) }},
		screenEntry{"Form", "validated signup form", func() banda.Component { return newFormScreen(g) }},
		screenEntry{"Editor", "markdown rich text", func() banda.Component { return newEditorScreen(g) }},
		screenEntry{"Upload", "file picker with progress", func() banda.Component { return newUploadScreen(g) }},
		screenEntry{"Terminal", "pty-backed shell", func() banda.Component { return newTerminalScreen(g) }},
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(lipgloss.Color(th.Tokens.Color.Primary)).
		BorderLeftForeground(lipgloss.Color(th.Tokens.Color.Primary))
	idx := list.New(entries, delegate, 48, 22)
	idx.Title = "banda gallery"
	idx.SetShowStatusBar(false)
	idx.SetFilteringEnabled(true)
	g.index = idx

	return g
}

var _ banda.Component = (*gallery)(nil)

func (g *gallery) Init() tea.Cmd { return nil }

func (g *gallery) Update(msg tea.Msg) (banda.Component, tea.Cmd) {
	switch msg := msg.(type) {
	case goHomeMsg:
		g.stack.Items = nil
		return g, nil

	case setThemeMsg:
		return g, g.switchTheme(msg.name)

	case tea.WindowSizeMsg:
		g.index.SetSize(msg.Width-4, msg.Height-4)
		if top := g.stack.Peek(); top != nil {
			next, cmd := top.Update(msg)
			g.stack.Replace(next)
			return g, cmd
		}
		return g, nil

	case tea.KeyMsg:
		if top := g.stack.Peek(); top != nil {
			if msg.String() == "esc" {
				g.stack.Pop()
				return g, nil
			}
			next, cmd := top.Update(msg)
			g.stack.Replace(next)
			return g, cmd
		}
		if msg.String() == "enter" && g.index.FilterState() != list.Filtering {
			if entry, ok := g.index.SelectedItem().(screenEntry); ok {
				screen := entry.build()
				g.stack.Push(screen)
				return g, screen.Init()
			}
		}
		var cmd tea.Cmd
		g.index, cmd = g.index.Update(msg)
		return g, cmd
	}

	// Ticks and widget messages go to whichever screen is showing.
	if top := g.stack.Peek(); top != nil {
		next, cmd := top.Update(msg)
		g.stack.Replace(next)
		return g, cmd
	}
	var cmd tea.Cmd
	g.index, cmd = g.index.Update(msg)
	return g, cmd
}

// switchTheme persists the chosen preset and rebuilds the index and any open
// screen with the new styles.
func (g *gallery) switchTheme(name string) tea.Cmd {
	th, err := loadTheme(name)
	if err != nil {
		_, cmd := g.toasts.Show(widget.ToastOptions{Message: "unknown theme: " + name, Level: widget.ToastError})
		return cmd
	}
	theme.SetDefault(th)
	g.theme = th
	g.themeName.Set(name)

	rebuilt := newGallery(th, g.modals, g.toasts, g.themeName)
	g.index = rebuilt.index
	g.stack.Items = nil

	_, cmd := g.toasts.Show(widget.ToastOptions{Message: "theme: " + name, Level: widget.ToastSuccess})
	return cmd
}

func (g *gallery) View() string {
	if top := g.stack.Peek(); top != nil {
		hint := g.theme.Hint.Render("esc: back · SPC: commands")
		return lipgloss.JoinVertical(lipgloss.Left, top.View(), hint)
	}
	return g.index.View()
}
