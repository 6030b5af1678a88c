package widget

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/banda-ui/banda"
	"github.com/banda-ui/banda/theme"
)

// Tab is one entry in a tab strip. Content is rendered below the strip while
// the tab is active. Disabled tabs are skipped during keyboard navigation.
type Tab struct {
	Title    string
	Content  banda.Component
	Disabled bool
}

// TabsOptions configures a tab strip.
type TabsOptions struct {
	Tabs []Tab
	// Active is the initially active tab index.
	Active   int
	OnChange func(index int)
	Theme    *theme.Theme
}

type tabsModel struct {
	opts   TabsOptions
	theme  *theme.Theme
	active int
}

var _ banda.Component = (*tabsModel)(nil)

// Tabs creates a tab strip. Left/right move between enabled tabs and the
// number keys jump directly; jumping to a disabled tab is a no-op.
func Tabs(opts TabsOptions) banda.Component {
	m := &tabsModel{
		opts:   opts,
		theme:  themeOrDefault(opts.Theme),
		active: opts.Active,
	}
	if m.active < 0 || m.active >= len(opts.Tabs) {
		m.active = 0
	}
	return m
}

func (m *tabsModel) Init() tea.Cmd {
	if m.active < len(m.opts.Tabs) && m.opts.Tabs[m.active].Content != nil {
		return m.opts.Tabs[m.active].Content.Init()
	}
	return nil
}

func (m *tabsModel) Update(msg tea.Msg) (banda.Component, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch s := key.String(); s {
		case "left", "h":
			return m, m.move(-1)
		case "right", "l":
			return m, m.move(1)
		default:
			if len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
				return m, m.jump(int(s[0] - '1'))
			}
		}
	}

	// Everything else flows to the active tab's content.
	if m.active < len(m.opts.Tabs) {
		tab := m.opts.Tabs[m.active]
		if tab.Content != nil {
			next, cmd := tab.Content.Update(msg)
			m.opts.Tabs[m.active].Content = next
			return m, cmd
		}
	}
	return m, nil
}

// move steps the active tab by delta, skipping disabled tabs. It does not
// wrap; stepping past either end stays put.
func (m *tabsModel) move(delta int) tea.Cmd {
	for i := m.active + delta; i >= 0 && i < len(m.opts.Tabs); i += delta {
		if !m.opts.Tabs[i].Disabled {
			return m.activate(i)
		}
	}
	return nil
}

func (m *tabsModel) jump(i int) tea.Cmd {
	if i < 0 || i >= len(m.opts.Tabs) || m.opts.Tabs[i].Disabled || i == m.active {
		return nil
	}
	return m.activate(i)
}

func (m *tabsModel) activate(i int) tea.Cmd {
	m.active = i
	if m.opts.OnChange != nil {
		m.opts.OnChange(i)
	}
	if c := m.opts.Tabs[i].Content; c != nil {
		return c.Init()
	}
	return nil
}

func (m *tabsModel) View() string {
	var labels []string
	for i, tab := range m.opts.Tabs {
		label := fmt.Sprintf(" %d %s ", i+1, tab.Title)
		switch {
		case tab.Disabled:
			labels = append(labels, m.theme.Disabled.Render(label))
		case i == m.active:
			labels = append(labels, m.theme.Selected.Underline(true).Render(label))
		default:
			labels = append(labels, m.theme.Muted.Render(label))
		}
	}
	strip := lipgloss.JoinHorizontal(lipgloss.Bottom, labels...)

	var body string
	if m.active < len(m.opts.Tabs) && m.opts.Tabs[m.active].Content != nil {
		body = m.opts.Tabs[m.active].Content.View()
	}
	if body == "" {
		return strip
	}
	return strings.Join([]string{strip, body}, "\n")
}
