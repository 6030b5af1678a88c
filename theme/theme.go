// Package theme maps the banda token contract onto lipgloss styles.
//
// A Theme derives every shared style from a Tokens value once; widgets hold a
// *Theme and never construct colors inline. Consumers theme an application by
// overriding tokens (in code or via a YAML file) and rebuilding the Theme.
package theme

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds the derived style table shared across widgets.
type Theme struct {
	Tokens Tokens

	// Title styles
	Title       lipgloss.Style // bold accent, for widget titles
	TitleDanger lipgloss.Style // bold danger, for destructive dialogs

	// Box styles
	Box        lipgloss.Style // standard box, medium radius, primary border
	BoxDanger  lipgloss.Style // warning/error box, danger border
	BoxCompact lipgloss.Style // less padding, for list-shaped content
	BoxFocused lipgloss.Style // accent border for the focused widget

	// Text styles
	Selected lipgloss.Style // highlighted/selected items
	Muted    lipgloss.Style // dimmed text
	Normal   lipgloss.Style // normal text
	Hint     lipgloss.Style // help/hint text
	Status   lipgloss.Style // status indicators
	Section  lipgloss.Style // section headers
	Empty    lipgloss.Style // empty-state text
	Label    lipgloss.Style // form labels
	Details  lipgloss.Style // warning details
	Error    lipgloss.Style // inline validation errors
	Success  lipgloss.Style // confirmation text
	Disabled lipgloss.Style // non-interactive items
	Backdrop lipgloss.Style // dimmed content behind a modal
}

// New derives a Theme from tokens.
func New(tokens Tokens) *Theme {
	c := tokens.Color
	t := &Theme{Tokens: tokens}

	t.Title = textStyle(tokens.Text.Title)
	t.TitleDanger = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.Danger))

	t.Box = lipgloss.NewStyle().
		Border(Border(tokens.Radius.Medium)).
		BorderForeground(lipgloss.Color(c.Border)).
		Padding(tokens.Space.SM, tokens.Space.MD)
	t.BoxDanger = t.Box.
		BorderForeground(lipgloss.Color(c.Danger))
	t.BoxCompact = lipgloss.NewStyle().
		Border(Border(tokens.Radius.Medium)).
		BorderForeground(lipgloss.Color(c.Border)).
		Padding(0, tokens.Space.SM)
	t.BoxFocused = t.Box.
		BorderForeground(lipgloss.Color(c.Accent))

	t.Selected = lipgloss.NewStyle().Foreground(lipgloss.Color(c.Primary)).Bold(true)
	t.Muted = lipgloss.NewStyle().Foreground(lipgloss.Color(c.Muted))
	t.Normal = lipgloss.NewStyle().Foreground(lipgloss.Color(c.Text))
	t.Hint = textStyle(tokens.Text.Help)
	t.Status = lipgloss.NewStyle().Foreground(lipgloss.Color(c.Accent))
	t.Section = lipgloss.NewStyle().Foreground(lipgloss.Color(c.Primary))
	t.Empty = lipgloss.NewStyle().Foreground(lipgloss.Color(c.Muted)).Italic(true)
	t.Label = textStyle(tokens.Text.Label)
	t.Details = lipgloss.NewStyle().Foreground(lipgloss.Color(c.Warning))
	t.Error = lipgloss.NewStyle().Foreground(lipgloss.Color(c.Danger))
	t.Success = lipgloss.NewStyle().Foreground(lipgloss.Color(c.Success))
	t.Disabled = lipgloss.NewStyle().Foreground(lipgloss.Color(c.Dim)).Faint(true)
	t.Backdrop = lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Shadow.Backdrop)).Faint(true)

	return t
}

// Border maps a radius token to a lipgloss border shape.
// Unknown names fall back to the rounded border.
func Border(radius string) lipgloss.Border {
	switch radius {
	case "normal":
		return lipgloss.NormalBorder()
	case "thick":
		return lipgloss.ThickBorder()
	case "double":
		return lipgloss.DoubleBorder()
	case "hidden":
		return lipgloss.HiddenBorder()
	default:
		return lipgloss.RoundedBorder()
	}
}

func textStyle(spec StyleSpec) lipgloss.Style {
	s := lipgloss.NewStyle()
	if spec.Color != "" {
		s = s.Foreground(lipgloss.Color(spec.Color))
	}
	if spec.Bold {
		s = s.Bold(true)
	}
	if spec.Italic {
		s = s.Italic(true)
	}
	if spec.Faint {
		s = s.Faint(true)
	}
	return s
}

var (
	defaultMu    sync.RWMutex
	defaultTheme *Theme
)

// Default returns the process-wide default theme, building it on first use.
func Default() *Theme {
	defaultMu.RLock()
	t := defaultTheme
	defaultMu.RUnlock()
	if t != nil {
		return t
	}

	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultTheme == nil {
		defaultTheme = New(DefaultTokens())
	}
	return defaultTheme
}

// SetDefault replaces the process-wide default theme. Widgets constructed
// afterwards pick it up; existing widgets keep the theme they were built with.
func SetDefault(t *Theme) {
	defaultMu.Lock()
	defaultTheme = t
	defaultMu.Unlock()
}
