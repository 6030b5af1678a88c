package widget

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/banda-ui/banda"
	"github.com/banda-ui/banda/theme"
)

// AccordionSection is one collapsible section.
type AccordionSection struct {
	Title   string
	Content string
	Open    bool
}

// AccordionOptions configures an Accordion.
type AccordionOptions struct {
	Sections []AccordionSection
	// Exclusive keeps at most one section open at a time.
	Exclusive bool
	Theme     *theme.Theme
}

type accordionModel struct {
	opts     AccordionOptions
	theme    *theme.Theme
	sections []AccordionSection
	cursor   int
}

var _ banda.Component = (*accordionModel)(nil)

// Accordion creates a list of collapsible sections. Up/down move, enter or
// space toggles the section under the cursor.
func Accordion(opts AccordionOptions) banda.Component {
	sections := make([]AccordionSection, len(opts.Sections))
	copy(sections, opts.Sections)
	return &accordionModel{
		opts:     opts,
		theme:    themeOrDefault(opts.Theme),
		sections: sections,
	}
}

func (m *accordionModel) Init() tea.Cmd { return nil }

func (m *accordionModel) Update(msg tea.Msg) (banda.Component, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.sections)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.toggle(m.cursor)
	}
	return m, nil
}

func (m *accordionModel) toggle(i int) {
	if i < 0 || i >= len(m.sections) {
		return
	}
	opening := !m.sections[i].Open
	if opening && m.opts.Exclusive {
		for j := range m.sections {
			m.sections[j].Open = false
		}
	}
	m.sections[i].Open = opening
}

func (m *accordionModel) View() string {
	var out []string
	for i, s := range m.sections {
		chevron := "▸"
		if s.Open {
			chevron = "▾"
		}
		title := chevron + " " + s.Title
		if i == m.cursor {
			title = m.theme.Selected.Render(title)
		} else {
			title = m.theme.Normal.Render(title)
		}
		out = append(out, title)
		if s.Open {
			for _, line := range strings.Split(s.Content, "\n") {
				out = append(out, "  "+m.theme.Muted.Render(line))
			}
		}
	}
	return strings.Join(out, "\n")
}
