package widget

import (
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/banda-ui/banda"
	"github.com/banda-ui/banda/theme"
)

// SpinnerOptions configures a Spinner.
type SpinnerOptions struct {
	Label string
	// Frames overrides the animation. Zero value means the dot spinner.
	Frames spinner.Spinner
	Theme  *theme.Theme
}

type spinnerModel struct {
	opts  SpinnerOptions
	theme *theme.Theme
	spin  spinner.Model
}

var _ banda.Component = (*spinnerModel)(nil)

// Spinner creates an indeterminate activity indicator.
func Spinner(opts SpinnerOptions) banda.Component {
	sp := spinner.New()
	if len(opts.Frames.Frames) > 0 {
		sp.Spinner = opts.Frames
	} else {
		sp.Spinner = spinner.Dot
	}
	th := themeOrDefault(opts.Theme)
	sp.Style = th.Status
	return &spinnerModel{opts: opts, theme: th, spin: sp}
}

func (m *spinnerModel) Init() tea.Cmd { return m.spin.Tick }

func (m *spinnerModel) Update(msg tea.Msg) (banda.Component, tea.Cmd) {
	if _, ok := msg.(spinner.TickMsg); !ok {
		return m, nil
	}
	var cmd tea.Cmd
	m.spin, cmd = m.spin.Update(msg)
	return m, cmd
}

func (m *spinnerModel) View() string {
	if m.opts.Label == "" {
		return m.spin.View()
	}
	return m.spin.View() + " " + m.theme.Muted.Render(m.opts.Label)
}

// ProgressBarOptions configures a ProgressBar.
type ProgressBarOptions struct {
	Label string
	// Percent is the initial fill, 0..1.
	Percent float64
	Width   int
	Theme   *theme.Theme
}

type progressBarModel struct {
	opts    ProgressBarOptions
	theme   *theme.Theme
	bar     progress.Model
	percent float64
}

var _ banda.Component = (*progressBarModel)(nil)

// SetPercentMsg updates a ProgressBar's fill. 0..1.
type SetPercentMsg struct {
	Percent float64
}

// ProgressBar creates a determinate progress bar. Drive it by sending
// SetPercentMsg through the runtime.
func ProgressBar(opts ProgressBarOptions) banda.Component {
	bar := progress.New(progress.WithDefaultGradient())
	if opts.Width > 0 {
		bar.Width = opts.Width
	}
	return &progressBarModel{
		opts:    opts,
		theme:   themeOrDefault(opts.Theme),
		bar:     bar,
		percent: opts.Percent,
	}
}

func (m *progressBarModel) Init() tea.Cmd { return nil }

func (m *progressBarModel) Update(msg tea.Msg) (banda.Component, tea.Cmd) {
	switch msg := msg.(type) {
	case SetPercentMsg:
		m.percent = msg.Percent
		if m.percent < 0 {
			m.percent = 0
		}
		if m.percent > 1 {
			m.percent = 1
		}
		return m, m.bar.SetPercent(m.percent)
	case progress.FrameMsg:
		model, cmd := m.bar.Update(msg)
		m.bar = model.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m *progressBarModel) View() string {
	if m.opts.Label == "" {
		return m.bar.View()
	}
	return m.theme.Label.Render(m.opts.Label) + "\n" + m.bar.View()
}
