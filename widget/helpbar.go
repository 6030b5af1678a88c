package widget

import (
	"sort"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/banda-ui/banda"
	"github.com/banda-ui/banda/event"
	"github.com/banda-ui/banda/theme"
)

// HelpBarOptions configures a HelpBar.
type HelpBarOptions struct {
	// Handler supplies the bindings. Hints follow the handler's scope and
	// leader state as the user navigates.
	Handler *event.Handler
	Scope   event.Scope
	Theme   *theme.Theme
}

type helpBarModel struct {
	opts  HelpBarOptions
	theme *theme.Theme
	help  help.Model
	full  bool
}

var _ banda.Component = (*helpBarModel)(nil)

// HelpBar renders the keymap's hints for the current scope in a one-line
// bubbles help bar. "?" toggles the expanded view.
func HelpBar(opts HelpBarOptions) banda.Component {
	th := themeOrDefault(opts.Theme)
	h := help.New()
	h.Styles.ShortKey = th.Selected
	h.Styles.ShortDesc = th.Hint
	h.Styles.ShortSeparator = th.Hint
	h.Styles.FullKey = th.Selected
	h.Styles.FullDesc = th.Hint

	return &helpBarModel{opts: opts, theme: th, help: h}
}

func (m *helpBarModel) Init() tea.Cmd { return nil }

func (m *helpBarModel) Update(msg tea.Msg) (banda.Component, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "?" {
			m.full = !m.full
			m.help.ShowAll = m.full
		}
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m *helpBarModel) View() string {
	if m.opts.Handler == nil {
		return ""
	}
	// Leader mode takes over the bar with the pending sequence's hints.
	if m.opts.Handler.LeaderWaiting {
		return event.RenderLeaderHelp(m.opts.Handler, m.opts.Scope, m.theme)
	}
	return m.help.View(topLevelKeyMap{handler: m.opts.Handler, scope: m.opts.Scope})
}

// topLevelKeyMap surfaces the handler's non-leader hints.
type topLevelKeyMap struct {
	handler *event.Handler
	scope   event.Scope
}

func (m topLevelKeyMap) ShortHelp() []key.Binding {
	hints := m.handler.Keymap.Hints()
	keys := make([]string, 0, len(hints))
	for k := range hints {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	bindings := make([]key.Binding, 0, len(keys))
	for _, k := range keys {
		bindings = append(bindings, key.NewBinding(
			key.WithKeys(k),
			key.WithHelp(k, hints[k]),
		))
	}
	return bindings
}

func (m topLevelKeyMap) FullHelp() [][]key.Binding {
	short := m.ShortHelp()
	if len(short) == 0 {
		return nil
	}
	// Chunk into columns of four.
	var cols [][]key.Binding
	for start := 0; start < len(short); start += 4 {
		end := start + 4
		if end > len(short) {
			end = len(short)
		}
		cols = append(cols, short[start:end])
	}
	return cols
}
