package widget

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/banda-ui/banda"
	"github.com/banda-ui/banda/theme"
)

// ToastLevel selects a toast's styling.
type ToastLevel int

const (
	ToastInfo ToastLevel = iota
	ToastSuccess
	ToastWarning
	ToastError
)

// DefaultToastDuration is the auto-dismiss delay when none is given.
const DefaultToastDuration = 3 * time.Second

const toastExitDelay = 150 * time.Millisecond

// ToastOptions describes one notification.
type ToastOptions struct {
	Message  string
	Level    ToastLevel
	Duration time.Duration // zero means DefaultToastDuration; negative sticks until dismissed
}

// ShowToastMsg requests a toast from anywhere in the component tree; the
// toast layer picks it up via broadcast.
type ShowToastMsg struct {
	Options ToastOptions
}

// ShowToast is a convenience command constructor.
func ShowToast(opts ToastOptions) tea.Cmd {
	return func() tea.Msg { return ShowToastMsg{Options: opts} }
}

type toastExpireMsg struct {
	id  string
	seq int
}

type toastRemoveMsg struct {
	id  string
	seq int
}

type toastItem struct {
	id      string
	opts    ToastOptions
	seq     int // bumped on manual dismiss so the stale auto-expire tick is ignored
	leaving bool
}

// Toasts is the notification layer: a keyed collection of timed toasts.
// Each toast auto-dismisses after its duration, stays rendered through a
// short exit state, then leaves the collection; the region renders nothing
// while the collection is empty. Toasts never capture input.
type Toasts struct {
	theme *theme.Theme
	items []*toastItem
	width int
}

// NewToasts creates the toast layer.
func NewToasts(t *theme.Theme) *Toasts {
	return &Toasts{theme: themeOrDefault(t)}
}

// Active implements banda.Layer: the region never captures input.
func (t *Toasts) Active() bool { return false }

// Len returns the number of live toasts (including ones in their exit state).
func (t *Toasts) Len() int { return len(t.items) }

// Show adds a toast and returns its id plus the timer command driving
// auto-dismiss. Run the command for the timer to fire.
func (t *Toasts) Show(opts ToastOptions) (string, tea.Cmd) {
	item := &toastItem{id: uuid.NewString(), opts: opts}
	t.items = append(t.items, item)

	duration := opts.Duration
	if duration == 0 {
		duration = DefaultToastDuration
	}
	if duration < 0 {
		return item.id, nil // sticky: dismissed manually
	}
	id, seq := item.id, item.seq
	return item.id, tea.Tick(duration, func(time.Time) tea.Msg {
		return toastExpireMsg{id: id, seq: seq}
	})
}

// Dismiss starts a toast's exit immediately, cancelling its pending
// auto-dismiss timer. Unknown ids are a no-op.
func (t *Toasts) Dismiss(id string) tea.Cmd {
	item := t.find(id)
	if item == nil || item.leaving {
		return nil
	}
	return t.beginExit(item)
}

func (t *Toasts) beginExit(item *toastItem) tea.Cmd {
	item.leaving = true
	item.seq++ // stale auto-expire ticks no longer match
	id, seq := item.id, item.seq
	return tea.Tick(toastExitDelay, func(time.Time) tea.Msg {
		return toastRemoveMsg{id: id, seq: seq}
	})
}

func (t *Toasts) find(id string) *toastItem {
	for _, item := range t.items {
		if item.id == id {
			return item
		}
	}
	return nil
}

func (t *Toasts) remove(id string) {
	for i, item := range t.items {
		if item.id == id {
			t.items = append(t.items[:i], t.items[i+1:]...)
			return
		}
	}
}

// Init implements banda.Component.
func (t *Toasts) Init() tea.Cmd { return nil }

// Update implements banda.Component.
func (t *Toasts) Update(msg tea.Msg) (banda.Component, tea.Cmd) {
	switch msg := msg.(type) {
	case ShowToastMsg:
		_, cmd := t.Show(msg.Options)
		return t, cmd

	case toastExpireMsg:
		item := t.find(msg.id)
		if item == nil || item.seq != msg.seq || item.leaving {
			return t, nil // dismissed or superseded; no dangling timer effect
		}
		return t, t.beginExit(item)

	case toastRemoveMsg:
		if item := t.find(msg.id); item != nil && item.seq == msg.seq {
			t.remove(msg.id)
		}
		return t, nil

	case tea.WindowSizeMsg:
		t.width = msg.Width
		return t, nil
	}
	return t, nil
}

// View implements banda.Component. Empty collection renders nothing — the
// region exists only while toasts are live.
func (t *Toasts) View() string {
	if len(t.items) == 0 {
		return ""
	}
	rendered := make([]string, 0, len(t.items))
	for _, item := range t.items {
		rendered = append(rendered, t.renderItem(item))
	}
	return lipgloss.JoinVertical(lipgloss.Right, rendered...)
}

func (t *Toasts) renderItem(item *toastItem) string {
	var accent lipgloss.Style
	switch item.opts.Level {
	case ToastSuccess:
		accent = t.theme.Success
	case ToastWarning:
		accent = t.theme.Details
	case ToastError:
		accent = t.theme.Error
	default:
		accent = t.theme.Status
	}
	box := t.theme.BoxCompact
	if item.leaving {
		box = box.Faint(true)
	}
	return box.Render(accent.Render(item.opts.Message))
}
