// Package event provides the kit's input plumbing: a keyboard dispatch table
// with leader-key sequences, debounce/throttle wrappers for expensive
// callbacks, and outside-press detection for dismissable popups.
package event

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Scope names a UI context a binding is limited to (e.g. "gallery", "form").
// ScopeAll matches every context.
type Scope = string

// ScopeAll is the zero scope: bindings without a scope filter apply everywhere.
const ScopeAll Scope = ""

// Keymap maps key sequences to commands.
// Sequences use spacemacs-style notation: "SPC" for space, "SPC t" for SPC
// then t. Single keys: "j", "k", "esc", "ctrl+c", "enter".
type Keymap struct {
	bindings     map[string]tea.Cmd
	descriptions map[string]string
	scopeFilter  map[string][]Scope // nil/empty = applies to all scopes
	submenuLabel map[string]string  // first-level key -> submenu display label
}

// NewKeymap creates an empty keymap.
func NewKeymap() *Keymap {
	return &Keymap{
		bindings:     make(map[string]tea.Cmd),
		descriptions: make(map[string]string),
		scopeFilter:  make(map[string][]Scope),
		submenuLabel: make(map[string]string),
	}
}

// Bind registers a key sequence to a command.
// Overwrites any existing binding for the sequence.
// Use BindWithDesc for human-readable hints in the help bar.
func (k *Keymap) Bind(seq string, cmd tea.Cmd) {
	k.BindWithDesc(seq, cmd, "")
}

// BindWithDesc registers a key sequence with a description for help display.
// The binding applies to all scopes.
func (k *Keymap) BindWithDesc(seq string, cmd tea.Cmd, desc string) {
	k.BindScoped(seq, cmd, desc, nil)
}

// BindScoped registers a key sequence with a description and scope filter.
// If scopes is nil or empty, the binding applies everywhere; otherwise hints
// are only offered when the current scope is listed.
func (k *Keymap) BindScoped(seq string, cmd tea.Cmd, desc string, scopes []Scope) {
	n := normalizeSeq(seq)
	k.bindings[n] = cmd
	if desc != "" {
		k.descriptions[n] = desc
	}
	if len(scopes) > 0 {
		k.scopeFilter[n] = scopes
	}
}

// LabelSubmenu sets the display label shown for a first-level key that opens
// a submenu (e.g. "t" -> "Theme"). Without a label the key renders as "t…".
func (k *Keymap) LabelSubmenu(key, label string) {
	k.submenuLabel[key] = label
}

// Lookup returns the command for a key sequence, or nil if not bound.
func (k *Keymap) Lookup(seq string) tea.Cmd {
	return k.bindings[normalizeSeq(seq)]
}

// HasPrefix returns true if any binding starts with seq and a space
// (i.e. more keys follow).
func (k *Keymap) HasPrefix(seq string) bool {
	prefix := normalizeSeq(seq) + " "
	for bound := range k.bindings {
		if strings.HasPrefix(bound, prefix) {
			return true
		}
	}
	return false
}

// Hints returns all bound sequences with descriptions for display.
// Keys are normalized sequences; values are descriptions (or the sequence if
// none was set).
func (k *Keymap) Hints() map[string]string {
	out := make(map[string]string)
	for seq, cmd := range k.bindings {
		if cmd == nil {
			continue
		}
		if d, ok := k.descriptions[seq]; ok && d != "" {
			out[seq] = d
		} else {
			out[seq] = seq
		}
	}
	return out
}

// LeaderHints returns hints for SPC-prefixed bindings, filtered by scope.
// When currentSeq is empty, returns first-level hints. When currentSeq is
// e.g. "SPC t", returns next-level hints. First-level keys with sub-bindings
// show their submenu label instead of a specific sub-action.
func (k *Keymap) LeaderHints(currentSeq string, scope Scope) map[string]string {
	out := make(map[string]string)
	prefix := "SPC "
	if currentSeq != "" {
		prefix = normalizeSeq(currentSeq) + " "
	}
	for seq, cmd := range k.bindings {
		if cmd == nil || !strings.HasPrefix(seq, prefix) {
			continue
		}
		if !k.appliesToScope(seq, scope) {
			continue
		}
		rest := strings.TrimPrefix(seq, prefix)
		parts := strings.Fields(rest)
		key := rest
		if len(parts) > 0 {
			key = parts[0]
		}
		if k.HasPrefix(strings.TrimSuffix(prefix, " ") + " " + key) {
			if label, ok := k.submenuLabel[key]; ok {
				out[key] = label
			} else {
				out[key] = key + "…"
			}
		} else {
			if d, ok := k.descriptions[seq]; ok && d != "" {
				out[key] = d
			} else {
				out[key] = seq
			}
		}
	}
	return out
}

// appliesToScope returns true if the binding applies to the given scope.
func (k *Keymap) appliesToScope(seq string, scope Scope) bool {
	scopes, ok := k.scopeFilter[seq]
	if !ok || len(scopes) == 0 {
		return true
	}
	for _, s := range scopes {
		if s == scope {
			return true
		}
	}
	return false
}

// normalizeSeq converts tea key strings to the canonical format.
// "space" -> "SPC", "ctrl+c" -> "ctrl+c", "j" -> "j".
func normalizeSeq(seq string) string {
	parts := strings.Fields(seq)
	for i, p := range parts {
		if p == "space" || p == " " {
			parts[i] = "SPC"
		}
	}
	return strings.Join(parts, " ")
}

// Handler manages leader key state and dispatches to the keymap.
type Handler struct {
	Keymap        *Keymap
	LeaderKey     string   // " " (tea.KeyMsg.String() format for space)
	LeaderSeq     string   // "SPC"
	LeaderWaiting bool     // true when waiting for key after leader
	Buffer        []string // accumulated sequence in leader mode
}

// NewHandler creates a handler with SPC as leader.
// Bubble Tea reports space as " " (KeySpace), not "space".
func NewHandler(keymap *Keymap) *Handler {
	return &Handler{
		Keymap:    keymap,
		LeaderKey: " ",
		LeaderSeq: "SPC",
	}
}

// PendingSeq returns the accumulated leader sequence, or "".
func (h *Handler) PendingSeq() string {
	return strings.Join(h.Buffer, " ")
}

// Handle processes a KeyMsg. Returns (consumed, cmd). If consumed is true the
// key was taken by the keymap and should not be passed to widgets.
func (h *Handler) Handle(msg tea.KeyMsg) (consumed bool, cmd tea.Cmd) {
	s := msg.String()

	// Esc cancels leader mode
	if s == "esc" {
		if h.LeaderWaiting {
			h.LeaderWaiting = false
			h.Buffer = nil
			return true, nil
		}
		return false, nil
	}

	// Leader key pressed
	if s == h.LeaderKey {
		h.LeaderWaiting = true
		h.Buffer = []string{h.LeaderSeq}
		return true, nil
	}

	// In leader mode: append key and look up
	if h.LeaderWaiting {
		h.Buffer = append(h.Buffer, keyToSeqPart(s))
		seq := strings.Join(h.Buffer, " ")

		if c := h.Keymap.Lookup(seq); c != nil {
			h.LeaderWaiting = false
			h.Buffer = nil
			return true, c
		}
		// No exact match; stay in leader mode if a longer binding exists
		if h.Keymap.HasPrefix(seq) {
			return true, nil
		}
		h.LeaderWaiting = false
		h.Buffer = nil
		return true, nil
	}

	// Not in leader mode: check single-key bindings
	if c := h.Keymap.Lookup(keyToSeqPart(s)); c != nil {
		return true, c
	}

	return false, nil
}

// keyToSeqPart converts a tea key string to a sequence part.
func keyToSeqPart(s string) string {
	if s == " " || s == "space" {
		return "SPC"
	}
	return s
}
