package widget

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/banda-ui/banda"
	"github.com/banda-ui/banda/event"
	"github.com/banda-ui/banda/theme"
)

// SelectOption is one selectable entry.
type SelectOption struct {
	Label    string
	Value    string
	Disabled bool
}

// SelectGroup is a labelled group of options.
type SelectGroup struct {
	Label   string
	Options []SelectOption
}

// SelectOptions configures a Select. Options and Groups may both be set;
// flat options render before the groups.
type SelectOptions struct {
	Label       string
	Placeholder string
	Options     []SelectOption
	Groups      []SelectGroup
	// Searchable shows a filter input while the dropdown is open.
	Searchable bool
	// Value preselects an option by value.
	Value string
	// OnChange fires exactly once per selection with the selected value.
	OnChange func(value string)
	Theme    *theme.Theme
	Width    int
}

// selectEntry is one row of the flattened dropdown: a group header or an
// option.
type selectEntry struct {
	header bool
	group  string
	opt    SelectOption
}

type selectModel struct {
	opts    SelectOptions
	theme   *theme.Theme
	open    bool
	value   string
	label   string // label of the selected option
	cursor  int
	search  textinput.Model
	entries []selectEntry // full flattened list
	visible []selectEntry // filtered view, group structure preserved
	outside *event.OutsideClick
	bounds  event.Bounds
}

var _ banda.Component = (*selectModel)(nil)

// Select creates a dropdown selector.
func Select(opts SelectOptions) banda.Component {
	search := textinput.New()
	search.Placeholder = "filter…"
	search.Width = 24

	m := &selectModel{
		opts:   opts,
		theme:  themeOrDefault(opts.Theme),
		value:  opts.Value,
		search: search,
	}
	m.entries = flattenOptions(opts)
	m.visible = m.entries
	if opts.Value != "" {
		for _, e := range m.entries {
			if !e.header && e.opt.Value == opts.Value {
				m.label = e.opt.Label
				break
			}
		}
	}
	m.outside = event.NewOutsideClick(func() event.Bounds { return m.bounds })
	return m
}

// flattenOptions merges flat and grouped options into one lookup list with
// header rows marking group boundaries.
func flattenOptions(opts SelectOptions) []selectEntry {
	var out []selectEntry
	for _, o := range opts.Options {
		out = append(out, selectEntry{opt: o})
	}
	for _, g := range opts.Groups {
		out = append(out, selectEntry{header: true, group: g.Label})
		for _, o := range g.Options {
			out = append(out, selectEntry{group: g.Label, opt: o})
		}
	}
	return out
}

// filterEntries keeps options whose label contains query case-insensitively,
// preserving group headers that still have at least one visible option.
func filterEntries(entries []selectEntry, query string) []selectEntry {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return entries
	}
	var out []selectEntry
	for _, e := range entries {
		if e.header || strings.Contains(strings.ToLower(e.opt.Label), query) {
			out = append(out, e)
		}
	}
	// Drop headers whose group matched nothing.
	pruned := out[:0]
	for i, e := range out {
		if e.header && (i+1 >= len(out) || out[i+1].header) {
			continue
		}
		pruned = append(pruned, e)
	}
	return pruned
}

func (m *selectModel) Init() tea.Cmd { return nil }

func (m *selectModel) Update(msg tea.Msg) (banda.Component, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		if m.open && m.outside.Observe(msg) {
			m.close()
		}
		return m, nil
	}
	if m.open && m.opts.Searchable {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *selectModel) handleKey(msg tea.KeyMsg) (banda.Component, tea.Cmd) {
	if !m.open {
		switch msg.String() {
		case "enter", " ", "down":
			m.openDropdown()
		}
		return m, nil
	}

	switch msg.String() {
	case "esc":
		m.close()
		return m, nil
	case "up":
		m.moveCursor(-1)
		return m, nil
	case "down":
		m.moveCursor(1)
		return m, nil
	case "enter":
		m.selectAtCursor()
		return m, nil
	}

	if m.opts.Searchable {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.visible = filterEntries(m.entries, m.search.Value())
		m.clampCursor()
		return m, cmd
	}
	return m, nil
}

func (m *selectModel) openDropdown() {
	m.open = true
	m.search.SetValue("")
	m.search.Focus()
	m.visible = m.entries
	m.cursor = 0
	m.clampCursor()
	m.outside.Arm()
}

func (m *selectModel) close() {
	m.open = false
	m.search.Blur()
	m.outside.Disarm()
}

// selectAtCursor sets the value, closes the dropdown, and fires OnChange
// exactly once.
func (m *selectModel) selectAtCursor() {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return
	}
	e := m.visible[m.cursor]
	if e.header || e.opt.Disabled {
		return
	}
	m.value = e.opt.Value
	m.label = e.opt.Label
	m.close()
	if m.opts.OnChange != nil {
		m.opts.OnChange(e.opt.Value)
	}
}

// moveCursor steps over headers and disabled options.
func (m *selectModel) moveCursor(step int) {
	if len(m.visible) == 0 {
		return
	}
	i := m.cursor
	for range m.visible {
		i += step
		if i < 0 || i >= len(m.visible) {
			return
		}
		if e := m.visible[i]; !e.header && !e.opt.Disabled {
			m.cursor = i
			return
		}
	}
}

// clampCursor parks the cursor on the first selectable visible entry.
func (m *selectModel) clampCursor() {
	for i, e := range m.visible {
		if !e.header && !e.opt.Disabled {
			m.cursor = i
			return
		}
	}
	m.cursor = -1
}

func (m *selectModel) View() string {
	display := m.label
	if display == "" {
		display = m.opts.Placeholder
		if display == "" {
			display = "Select…"
		}
	}

	var b strings.Builder
	if m.opts.Label != "" {
		b.WriteString(m.theme.Label.Render(m.opts.Label) + "\n")
	}

	trigger := m.theme.BoxCompact
	if m.open {
		trigger = m.theme.BoxFocused
	}
	b.WriteString(trigger.Render(display + " ▾"))

	if m.open {
		var rows []string
		if m.opts.Searchable {
			rows = append(rows, m.search.View())
		}
		if len(m.visible) == 0 {
			rows = append(rows, m.theme.Empty.Render("no matches"))
		}
		for i, e := range m.visible {
			switch {
			case e.header:
				rows = append(rows, m.theme.Section.Render(e.group))
			case e.opt.Disabled:
				rows = append(rows, "  "+m.theme.Disabled.Render(e.opt.Label))
			case i == m.cursor:
				rows = append(rows, m.theme.Selected.Render("> "+e.opt.Label))
			default:
				rows = append(rows, "  "+m.theme.Normal.Render(e.opt.Label))
			}
		}
		dropdown := m.theme.BoxCompact.Render(strings.Join(rows, "\n"))
		b.WriteString("\n" + dropdown)
	}

	out := b.String()
	m.bounds = event.Bounds{W: lipgloss.Width(out), H: lipgloss.Height(out)}
	return out
}
