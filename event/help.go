package event

import (
	"sort"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"

	"github.com/banda-ui/banda/theme"
)

// Bindings converts the keymap's leader hints for the given handler state and
// scope into bubbles key.Bindings, sorted for stable display, with a trailing
// "esc: cancel" entry.
func Bindings(h *Handler, scope Scope) []key.Binding {
	if h == nil || h.Keymap == nil {
		return nil
	}
	hints := h.Keymap.LeaderHints(h.PendingSeq(), scope)
	if len(hints) == 0 {
		return nil
	}

	keys := make([]string, 0, len(hints))
	for k := range hints {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	bindings := make([]key.Binding, 0, len(keys)+1)
	for _, k := range keys {
		bindings = append(bindings, key.NewBinding(
			key.WithKeys(k),
			key.WithHelp(k, hints[k]),
		))
	}
	bindings = append(bindings, key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	))
	return bindings
}

// RenderLeaderHelp produces the transient help bar shown while the handler is
// in leader mode, styled from th. When the handler holds a partial sequence
// (e.g. "SPC t"), next-level hints are shown under that prefix.
func RenderLeaderHelp(h *Handler, scope Scope, th *theme.Theme) string {
	bindings := Bindings(h, scope)
	if len(bindings) == 0 {
		return ""
	}

	helpModel := help.New()
	helpModel.Styles.ShortKey = th.Selected
	helpModel.Styles.ShortDesc = th.Hint
	helpModel.Styles.ShortSeparator = th.Hint

	prefix := h.LeaderSeq
	if seq := h.PendingSeq(); seq != "" {
		prefix = seq
	}
	content := th.Hint.Render(prefix) + " " + helpModel.ShortHelpView(bindings)
	return th.BoxCompact.Render(content)
}

// helpKeyMap adapts a Handler to bubbles' help.KeyMap.
type helpKeyMap struct {
	handler *Handler
	scope   Scope
}

// NewHelpKeyMap wraps the handler for use with help.Model views.
func NewHelpKeyMap(h *Handler, scope Scope) help.KeyMap {
	return &helpKeyMap{handler: h, scope: scope}
}

// ShortHelp implements help.KeyMap.
func (m *helpKeyMap) ShortHelp() []key.Binding {
	return Bindings(m.handler, m.scope)
}

// FullHelp implements help.KeyMap. Single column for now.
func (m *helpKeyMap) FullHelp() [][]key.Binding {
	short := m.ShortHelp()
	if len(short) == 0 {
		return nil
	}
	return [][]key.Binding{short}
}
