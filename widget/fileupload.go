package widget

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/banda-ui/banda"
	"github.com/banda-ui/banda/theme"
	"github.com/banda-ui/banda/validate"
)

// UploadFunc performs the actual upload. It runs on its own goroutine and
// reports through the emitter; the widget consumes the events. Implementations
// should emit a terminal status (done/error/aborted) exactly once.
type UploadFunc func(path string, emit *ProgressEmitter)

// FileUploadOptions configures a FileUpload widget.
type FileUploadOptions struct {
	// Accept lists allowed extensions or media-type groups ("image", "video",
	// "audio", "document"). Empty accepts everything.
	Accept []string
	// Dir is the starting directory for the picker. Empty means cwd.
	Dir    string
	Upload UploadFunc
	// OnComplete fires when an upload reaches a terminal status.
	OnComplete func(path string, status ProgressStatus)
	Theme      *theme.Theme
}

type uploadPhase int

const (
	uploadPicking uploadPhase = iota
	uploadRunning
	uploadFinished
)

type uploadProgressMsg struct {
	seq int
	ev  ProgressEvent
}

type fileUploadModel struct {
	opts  FileUploadOptions
	theme *theme.Theme

	picker  filepicker.Model
	bar     progress.Model
	spin    spinner.Model
	phase   uploadPhase
	path    string
	percent float64
	status  ProgressStatus
	message string
	errText string

	// seq guards against progress from an abandoned upload.
	seq    int
	events chan ProgressEvent
}

var _ banda.Component = (*fileUploadModel)(nil)

// FileUpload creates a file picker with accept-list validation and a
// progress-reporting upload phase.
func FileUpload(opts FileUploadOptions) banda.Component {
	th := themeOrDefault(opts.Theme)

	fp := filepicker.New()
	fp.CurrentDirectory = opts.Dir
	if fp.CurrentDirectory == "" {
		fp.CurrentDirectory = "."
	}
	fp.ShowHidden = false

	bar := progress.New(progress.WithDefaultGradient())
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &fileUploadModel{
		opts:   opts,
		theme:  th,
		picker: fp,
		bar:    bar,
		spin:   sp,
	}
}

func (m *fileUploadModel) Init() tea.Cmd {
	return m.picker.Init()
}

func (m *fileUploadModel) Update(msg tea.Msg) (banda.Component, tea.Cmd) {
	switch m.phase {
	case uploadPicking:
		return m.updatePicking(msg)
	case uploadRunning:
		return m.updateRunning(msg)
	default:
		if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
			// Reset back to the picker for another upload.
			m.phase = uploadPicking
			m.errText = ""
			m.message = ""
			return m, m.picker.Init()
		}
		return m, nil
	}
}

func (m *fileUploadModel) updatePicking(msg tea.Msg) (banda.Component, tea.Cmd) {
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if ok, path := m.picker.DidSelectFile(msg); ok {
		if !validate.Accepted(path, m.opts.Accept) {
			m.errText = fmt.Sprintf("%s files are not accepted here", strings.TrimPrefix(filepath.Ext(path), "."))
			return m, cmd
		}
		m.errText = ""
		return m, tea.Batch(cmd, m.begin(path))
	}
	return m, cmd
}

// begin starts the upload goroutine and the event pump.
func (m *fileUploadModel) begin(path string) tea.Cmd {
	m.phase = uploadRunning
	m.path = path
	m.percent = 0
	m.status = ProgressRunning
	m.message = ""
	m.seq++
	m.events = make(chan ProgressEvent, 64)

	emitter := &ProgressEmitter{Ch: m.events}
	upload := m.opts.Upload
	ch := m.events
	go func() {
		if upload != nil {
			upload(path, emitter)
		} else {
			emitter.Emit(ProgressEvent{Status: ProgressDone, Percent: 1})
		}
		close(ch)
	}()

	return tea.Batch(m.spin.Tick, m.waitForEvent(m.seq, ch))
}

// waitForEvent blocks on the upload's event channel and re-arms itself after
// each delivery. A closed channel ends the pump.
func (m *fileUploadModel) waitForEvent(seq int, ch <-chan ProgressEvent) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return uploadProgressMsg{seq: seq, ev: ev}
	}
}

func (m *fileUploadModel) updateRunning(msg tea.Msg) (banda.Component, tea.Cmd) {
	switch msg := msg.(type) {
	case uploadProgressMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		ev := msg.ev
		if ev.Percent >= 0 {
			m.percent = ev.Percent
		}
		if ev.Message != "" {
			m.message = ev.Message
		}
		if ev.Status != "" {
			m.status = ev.Status
		}
		if m.status != ProgressRunning {
			m.phase = uploadFinished
			if m.opts.OnComplete != nil {
				m.opts.OnComplete(m.path, m.status)
			}
			return m, nil
		}
		return m, m.waitForEvent(m.seq, m.events)
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	case progress.FrameMsg:
		model, cmd := m.bar.Update(msg)
		m.bar = model.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m *fileUploadModel) View() string {
	switch m.phase {
	case uploadPicking:
		out := m.theme.Label.Render("Select a file") + "\n" + m.picker.View()
		if m.errText != "" {
			out += "\n" + m.theme.Error.Render(m.errText)
		}
		return out
	case uploadRunning:
		name := filepath.Base(m.path)
		line := fmt.Sprintf("%s Uploading %s", m.spin.View(), name)
		if m.message != "" {
			line += "  " + m.theme.Muted.Render(m.message)
		}
		return line + "\n" + m.bar.ViewAs(m.percent)
	default:
		name := filepath.Base(m.path)
		switch m.status {
		case ProgressDone:
			return m.theme.Success.Render(fmt.Sprintf("✓ Uploaded %s", name)) +
				"\n" + m.theme.Hint.Render("enter to upload another")
		case ProgressAborted:
			return m.theme.Details.Render(fmt.Sprintf("Upload of %s aborted", name)) +
				"\n" + m.theme.Hint.Render("enter to retry")
		default:
			reason := m.message
			if reason == "" {
				reason = "upload failed"
			}
			return m.theme.Error.Render(fmt.Sprintf("✗ %s: %s", name, reason)) +
				"\n" + m.theme.Hint.Render("enter to retry")
		}
	}
}
