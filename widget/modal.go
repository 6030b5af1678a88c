package widget

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/banda-ui/banda"
	"github.com/banda-ui/banda/event"
	"github.com/banda-ui/banda/focus"
	"github.com/banda-ui/banda/theme"
)

// ModalPhase tracks the modal's lifecycle for entry/exit rendering.
type ModalPhase int

const (
	ModalClosed ModalPhase = iota
	ModalOpening
	ModalOpen
	ModalClosing
)

// DefaultExitDelay is how long a closing modal stays rendered so the exit
// state is visible, matching the close-animation delay of the web ancestry.
const DefaultExitDelay = 150 * time.Millisecond

const defaultEnterDelay = 30 * time.Millisecond

// ModalSpec describes one dialog.
type ModalSpec struct {
	// Title renders in the dialog header.
	Title string
	// Content is the dialog body.
	Content banda.Component
	// Focusables lists focusable ids inside the dialog in tab order. Empty
	// means no focus trap: Tab falls through to the content.
	Focusables []string
	// DisableEsc keeps Escape from closing the dialog.
	DisableEsc bool
	// DisableOutsideClose keeps presses outside the dialog from closing it.
	DisableOutsideClose bool
	// Danger styles the dialog for destructive confirmation.
	Danger bool
	// OnClose runs as part of the dialog's cleanup, exactly once.
	OnClose func()
	// Width fixes the dialog width. Zero sizes to content.
	Width int
}

// RequestCloseMsg asks the modal manager to close the current dialog.
// Dialog content returns it as a command to close itself.
type RequestCloseMsg struct{}

// RequestClose is a tea.Cmd producing RequestCloseMsg.
func RequestClose() tea.Msg { return RequestCloseMsg{} }

type modalOpenedMsg struct{ seq int }
type modalClosedMsg struct{ seq int }

// Modals is the modal layer: a process-wide-singleton in behavior — at most
// one dialog is open at a time, and opening a second implicitly closes the
// first (its cleanup runs immediately).
//
// All close paths (Close, Escape, outside press, RequestCloseMsg) route
// through one transition: the dialog enters ModalClosing, stays rendered for
// the exit delay, then runs its composed cleanup (release the focus trap,
// restore remembered focus, fire OnClose, drop the subtree).
type Modals struct {
	theme     *theme.Theme
	phase     ModalPhase
	spec      ModalSpec
	trap      *focus.Trap
	ring      *focus.Ring
	outside   *event.OutsideClick
	seq       int // invalidates in-flight phase ticks after reopen/cleanup
	exitDelay time.Duration
	bounds    event.Bounds
}

// ModalsOptions configures the modal layer.
type ModalsOptions struct {
	Theme *theme.Theme
	// Ring is the application focus ring the trap remembers and restores.
	// Nil uses a private ring.
	Ring *focus.Ring
	// ExitDelay overrides DefaultExitDelay.
	ExitDelay time.Duration
}

// NewModals creates the modal layer.
func NewModals(opts ModalsOptions) *Modals {
	ring := opts.Ring
	if ring == nil {
		ring = &focus.Ring{}
	}
	delay := opts.ExitDelay
	if delay <= 0 {
		delay = DefaultExitDelay
	}
	m := &Modals{
		theme:     themeOrDefault(opts.Theme),
		ring:      ring,
		exitDelay: delay,
	}
	m.outside = event.NewOutsideClick(func() event.Bounds { return m.bounds })
	return m
}

// Phase returns the current lifecycle phase.
func (m *Modals) Phase() ModalPhase { return m.phase }

// Active implements banda.Layer: any phase but ModalClosed captures input.
func (m *Modals) Active() bool { return m.phase != ModalClosed }

// FocusedID returns the id the focus trap currently holds, or "".
func (m *Modals) FocusedID() string {
	if m.trap == nil {
		return ""
	}
	return m.trap.Current()
}

// Open opens a dialog. If one is already open its cleanup runs immediately —
// there is no modal stacking.
func (m *Modals) Open(spec ModalSpec) tea.Cmd {
	if m.phase != ModalClosed {
		m.cleanup()
	}
	m.spec = spec
	m.phase = ModalOpening
	m.seq++
	seq := m.seq

	m.trap = focus.NewTrap(m.ring, spec.Focusables)
	m.trap.Activate() // zero focusables: no-op, default navigation applies
	if !spec.DisableOutsideClose {
		m.outside.Arm()
	}

	cmds := []tea.Cmd{
		tea.Tick(defaultEnterDelay, func(time.Time) tea.Msg { return modalOpenedMsg{seq: seq} }),
	}
	if spec.Content != nil {
		cmds = append(cmds, spec.Content.Init())
	}
	return tea.Batch(cmds...)
}

// Close starts the closing transition. A closed or already-closing modal
// ignores the call.
func (m *Modals) Close() tea.Cmd {
	if m.phase != ModalOpening && m.phase != ModalOpen {
		return nil
	}
	m.phase = ModalClosing
	m.seq++
	seq := m.seq
	return tea.Tick(m.exitDelay, func(time.Time) tea.Msg { return modalClosedMsg{seq: seq} })
}

// cleanup tears the current dialog down: release the trap (restoring the
// remembered focus), disarm outside detection, fire OnClose, drop the spec.
// Safe to call once per dialog by construction — callers transition phase
// first, and seq invalidates stale ticks.
func (m *Modals) cleanup() {
	if m.trap != nil {
		m.trap.Release()
		m.trap = nil
	}
	m.outside.Disarm()
	if m.spec.OnClose != nil {
		m.spec.OnClose()
	}
	m.spec = ModalSpec{}
	m.phase = ModalClosed
	m.seq++
}

// Init implements banda.Component.
func (m *Modals) Init() tea.Cmd { return nil }

// Update implements banda.Component.
func (m *Modals) Update(msg tea.Msg) (banda.Component, tea.Cmd) {
	switch msg := msg.(type) {
	case modalOpenedMsg:
		if msg.seq == m.seq && m.phase == ModalOpening {
			m.phase = ModalOpen
		}
		return m, nil

	case modalClosedMsg:
		if msg.seq == m.seq && m.phase == ModalClosing {
			m.cleanup()
		}
		return m, nil

	case RequestCloseMsg:
		return m, m.Close()

	case tea.KeyMsg:
		if m.phase != ModalOpen && m.phase != ModalOpening {
			return m, nil
		}
		switch msg.String() {
		case "esc":
			if !m.spec.DisableEsc {
				return m, m.Close()
			}
		case "tab":
			if m.trap != nil && m.trap.HandleTab(false) {
				return m, nil
			}
		case "shift+tab":
			if m.trap != nil && m.trap.HandleTab(true) {
				return m, nil
			}
		}
		return m, m.updateContent(msg)

	case tea.MouseMsg:
		if m.phase == ModalOpen || m.phase == ModalOpening {
			if m.outside.Observe(msg) {
				return m, m.Close()
			}
		}
		return m, m.updateContent(msg)
	}

	// Ticks and widget messages reach the content even mid-transition.
	if m.spec.Content != nil {
		return m, m.updateContent(msg)
	}
	return m, nil
}

func (m *Modals) updateContent(msg tea.Msg) tea.Cmd {
	if m.spec.Content == nil {
		return nil
	}
	next, cmd := m.spec.Content.Update(msg)
	m.spec.Content = next
	return cmd
}

// View implements banda.Component.
func (m *Modals) View() string {
	if m.phase == ModalClosed {
		return ""
	}

	box := m.theme.Box
	title := m.theme.Title
	if m.spec.Danger {
		box = m.theme.BoxDanger
		title = m.theme.TitleDanger
	}
	if m.spec.Width > 0 {
		box = box.Width(m.spec.Width)
	}
	if m.phase == ModalClosing {
		box = box.Faint(true)
	}

	content := ""
	if m.spec.Title != "" {
		content = title.Render(m.spec.Title) + "\n\n"
	}
	if m.spec.Content != nil {
		content += m.spec.Content.View()
	}

	rendered := box.Render(content)
	m.bounds = event.Bounds{W: lipgloss.Width(rendered), H: lipgloss.Height(rendered)}
	return rendered
}

// SetBounds records the dialog's on-screen rectangle for outside-press
// hit-testing when the embedder places the dialog itself.
func (m *Modals) SetBounds(b event.Bounds) { m.bounds = b }
