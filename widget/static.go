package widget

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/banda-ui/banda"
	"github.com/banda-ui/banda/internal/textutil"
	"github.com/banda-ui/banda/theme"
)

// CardOptions configures a Card.
type CardOptions struct {
	Title string
	Body  string
	// Footer renders muted below a divider. Empty omits it.
	Footer string
	// Width wraps the body. Zero means no wrap.
	Width int
	Theme *theme.Theme
}

type CardView struct {
	theme *theme.Theme
	root  *banda.Element
}

var _ banda.Component = (*CardView)(nil)

// Card creates a titled content box backed by an element tree, so callers
// can Find and patch its parts after construction.
func Card(opts CardOptions) *CardView {
	th := themeOrDefault(opts.Theme)

	body := opts.Body
	if opts.Width > 0 {
		body = textutil.Wrap(body, opts.Width)
	}

	root := banda.Box(banda.WithID("card"), banda.WithStyle(th.Box))
	root.Append(
		banda.Text(opts.Title, banda.WithID("card.title"), banda.WithStyle(th.Title)),
		banda.Text(body, banda.WithID("card.body"), banda.WithStyle(th.Normal)),
	)
	if opts.Footer != "" {
		root.Append(banda.Text(opts.Footer, banda.WithID("card.footer"), banda.WithStyle(th.Muted)))
	}

	return &CardView{theme: th, root: root}
}

// Root exposes the element tree for imperative patching.
func (m *CardView) Root() *banda.Element { return m.root }

func (m *CardView) Init() tea.Cmd { return nil }

func (m *CardView) Update(msg tea.Msg) (banda.Component, tea.Cmd) { return m, nil }

func (m *CardView) View() string { return m.root.Render() }

// static wraps a fixed render function as a Component.
type static struct {
	render func() string
}

var _ banda.Component = static{}

func (s static) Init() tea.Cmd { return nil }
func (s static) Update(tea.Msg) (banda.Component, tea.Cmd) { return s, nil }
func (s static) View() string { return s.render() }

// BadgeLevel selects a badge's color.
type BadgeLevel int

const (
	BadgeNeutral BadgeLevel = iota
	BadgeInfo
	BadgeSuccess
	BadgeWarning
	BadgeError
)

// Badge renders a small status label.
func Badge(text string, level BadgeLevel, th *theme.Theme) banda.Component {
	t := themeOrDefault(th)
	return static{render: func() string {
		label := "⟨" + text + "⟩"
		switch level {
		case BadgeInfo:
			return t.Status.Render(label)
		case BadgeSuccess:
			return t.Success.Render(label)
		case BadgeWarning:
			return t.Details.Render(label)
		case BadgeError:
			return t.Error.Render(label)
		default:
			return t.Muted.Render(label)
		}
	}}
}

// AlertOptions configures an Alert.
type AlertOptions struct {
	Title   string
	Message string
	Level   BadgeLevel
	Width   int
	Theme   *theme.Theme
}

// Alert renders a bordered callout. Error and warning levels use the danger
// border.
func Alert(opts AlertOptions) banda.Component {
	t := themeOrDefault(opts.Theme)
	return static{render: func() string {
		var title string
		switch opts.Level {
		case BadgeSuccess:
			title = t.Success.Render("✓ " + opts.Title)
		case BadgeWarning:
			title = t.Details.Render("⚠ " + opts.Title)
		case BadgeError:
			title = t.Error.Render("✗ " + opts.Title)
		default:
			title = t.Status.Render("ℹ " + opts.Title)
		}
		msg := opts.Message
		if opts.Width > 0 {
			msg = textutil.Wrap(msg, opts.Width)
		}
		box := t.Box
		if opts.Level == BadgeError || opts.Level == BadgeWarning {
			box = t.BoxDanger
		}
		return box.Render(title + "\n" + t.Normal.Render(msg))
	}}
}

// Divider renders a horizontal rule of the given width.
func Divider(width int, th *theme.Theme) banda.Component {
	t := themeOrDefault(th)
	if width <= 0 {
		width = 40
	}
	return static{render: func() string {
		return t.Muted.Render(strings.Repeat("─", width))
	}}
}

// Breadcrumbs renders a path trail with the last segment highlighted.
func Breadcrumbs(segments []string, th *theme.Theme) banda.Component {
	t := themeOrDefault(th)
	return static{render: func() string {
		if len(segments) == 0 {
			return ""
		}
		parts := make([]string, len(segments))
		for i, s := range segments {
			if i == len(segments)-1 {
				parts[i] = t.Selected.Render(s)
			} else {
				parts[i] = t.Muted.Render(s)
			}
		}
		return strings.Join(parts, t.Muted.Render(" › "))
	}}
}
