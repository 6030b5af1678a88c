package widget

import (
	"bytes"
	"io"
	"os/exec"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/banda-ui/banda"
	"github.com/banda-ui/banda/internal/pty"
	"github.com/banda-ui/banda/theme"
)

// TerminalOutputMsg carries bytes read from the PTY for display.
type TerminalOutputMsg struct {
	Data []byte
}

// TerminalOptions configures a Terminal widget.
type TerminalOptions struct {
	// Command is the program to run. Empty spawns bash (or sh).
	Command []string
	// Dir is the working directory. Empty means cwd.
	Dir string
	// Runner is injected so tests can substitute an in-memory PTY.
	// Nil means the real creack/pty implementation.
	Runner pty.Runner
	Width  int
	Height int
	// OnExit fires when the PTY closes.
	OnExit func()
	Theme  *theme.Theme
}

const (
	defaultTerminalWidth  = 70
	defaultTerminalHeight = 18
)

type TerminalView struct {
	opts   TerminalOptions
	theme  *theme.Theme
	runner pty.Runner

	ptmx     io.ReadWriteCloser
	content  *bytes.Buffer
	viewport viewport.Model
	width    int
	height   int
	outputCh chan []byte
	closed   bool
}

var _ banda.Component = (*TerminalView)(nil)

// Terminal creates a PTY-backed command widget: keystrokes pass through to
// the child process and output scrolls in a viewport. Call Close (or rely on
// OnExit) to release the PTY.
func Terminal(opts TerminalOptions) *TerminalView {
	w, h := opts.Width, opts.Height
	if w <= 0 {
		w = defaultTerminalWidth
	}
	if h <= 0 {
		h = defaultTerminalHeight
	}
	vp := viewport.New(w, h)
	th := themeOrDefault(opts.Theme)
	vp.Style = th.BoxCompact

	runner := opts.Runner
	if runner == nil {
		runner = pty.Creack{}
	}

	return &TerminalView{
		opts:     opts,
		theme:    th,
		runner:   runner,
		content:  &bytes.Buffer{},
		viewport: vp,
		width:    w,
		height:   h,
		outputCh: make(chan []byte, 64),
	}
}

// Init spawns the command and starts the PTY read pump.
func (m *TerminalView) Init() tea.Cmd {
	var cmd *exec.Cmd
	if len(m.opts.Command) > 0 {
		cmd = exec.Command(m.opts.Command[0], m.opts.Command[1:]...)
	} else {
		shell := "sh"
		if path, err := exec.LookPath("bash"); err == nil {
			shell = path
		}
		cmd = exec.Command(shell)
	}
	cmd.Dir = m.opts.Dir
	if cmd.Dir == "" {
		cmd.Dir = "."
	}

	sz := pty.Size{Rows: uint16(m.height), Cols: uint16(m.width)}
	ptmx, err := m.runner.Start(nil, cmd, sz)
	if err != nil {
		m.content.WriteString("failed to start: " + err.Error() + "\r\n")
		m.refresh()
		return nil
	}
	m.ptmx = ptmx

	ch := m.outputCh
	go func() {
		buf := make([]byte, 256)
		for {
			n, err := ptmx.Read(buf)
			if n > 0 {
				cp := make([]byte, n)
				copy(cp, buf[:n])
				select {
				case ch <- cp:
				default:
					// Channel full, drop rather than block the reader.
				}
			}
			if err != nil {
				close(ch)
				return
			}
		}
	}()

	return m.waitForOutput()
}

func (m *TerminalView) waitForOutput() tea.Cmd {
	return func() tea.Msg {
		data, ok := <-m.outputCh
		if !ok {
			return nil
		}
		return TerminalOutputMsg{Data: data}
	}
}

func (m *TerminalView) Update(msg tea.Msg) (banda.Component, tea.Cmd) {
	switch msg := msg.(type) {
	case TerminalOutputMsg:
		if m.ptmx != nil {
			m.content.Write(msg.Data)
			m.refresh()
			m.viewport.GotoBottom()
		}
		return m, m.waitForOutput()
	case tea.KeyMsg:
		if m.ptmx != nil && !m.closed {
			if b := keyToPTYBytes(msg); len(b) > 0 {
				m.ptmx.Write(b)
			}
		}
		return m, m.waitForOutput()
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, m.waitForOutput()
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, tea.Batch(cmd, m.waitForOutput())
}

func (m *TerminalView) resize(w, h int) {
	if w < 40 {
		w = 40
	}
	if h < 12 {
		h = 12
	}
	m.width, m.height = w, h
	m.viewport.Width = w
	m.viewport.Height = h
	if m.ptmx != nil {
		m.runner.Resize(m.ptmx, pty.Size{Rows: uint16(h), Cols: uint16(w)})
	}
	m.refresh()
}

func (m *TerminalView) View() string {
	header := m.theme.Title.Render("Terminal") + m.theme.Hint.Render("  scrollback via viewport keys")
	return header + "\n" + m.viewport.View()
}

func (m *TerminalView) refresh() {
	m.viewport.SetContent(m.content.String())
}

// Close releases the PTY. Idempotent.
func (m *TerminalView) Close() error {
	if m.closed || m.ptmx == nil {
		m.closed = true
		return nil
	}
	m.closed = true
	err := m.ptmx.Close()
	if m.opts.OnExit != nil {
		m.opts.OnExit()
	}
	return err
}

// keyToPTYBytes converts a key message to the byte sequence the PTY expects.
func keyToPTYBytes(msg tea.KeyMsg) []byte {
	switch msg.Type {
	case tea.KeyEnter:
		return []byte{'\r'}
	case tea.KeyBackspace:
		return []byte{0x7f}
	case tea.KeyTab:
		return []byte{'\t'}
	case tea.KeySpace:
		return []byte{' '}
	case tea.KeyUp:
		return []byte{0x1b, '[', 'A'}
	case tea.KeyDown:
		return []byte{0x1b, '[', 'B'}
	case tea.KeyRight:
		return []byte{0x1b, '[', 'C'}
	case tea.KeyLeft:
		return []byte{0x1b, '[', 'D'}
	case tea.KeyCtrlC:
		return []byte{0x03}
	case tea.KeyCtrlD:
		return []byte{0x04}
	case tea.KeyEsc:
		return []byte{0x1b}
	case tea.KeyRunes:
		return []byte(string(msg.Runes))
	default:
		if len(msg.Runes) > 0 {
			return []byte(string(msg.Runes))
		}
		return nil
	}
}
