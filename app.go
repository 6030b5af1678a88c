package banda

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/banda-ui/banda/event"
	"github.com/banda-ui/banda/lifecycle"
	"github.com/banda-ui/banda/plugin"
	"github.com/banda-ui/banda/theme"
)

// App is the root model: it composes a content Component with overlay layers
// (the modal host, the toast region), the leader-key handler, a plugin
// registry, and a cleanup registry. While an input-capturing layer is active,
// key and mouse input is routed to that layer only — the terminal analog of
// disabling interaction with the page behind a modal.
type App struct {
	content Component
	layers  []Layer
	handler *event.Handler
	scope   event.Scope
	plugins *plugin.Registry
	cleanup *lifecycle.Registry
	theme   *theme.Theme
	log     *logrus.Logger

	mounted map[string]Component
	width   int
	height  int
}

// AppOption configures an App at construction.
type AppOption func(*App)

// WithTheme sets the app's theme. Defaults to theme.Default().
func WithTheme(t *theme.Theme) AppOption {
	return func(a *App) { a.theme = t }
}

// WithKeymap installs a leader-key handler over the keymap.
func WithKeymap(km *event.Keymap) AppOption {
	return func(a *App) { a.handler = event.NewHandler(km) }
}

// WithAppLogger routes app logging to log. Defaults to the package logger.
func WithAppLogger(log *logrus.Logger) AppOption {
	return func(a *App) { a.log = log }
}

// NewApp creates an app around content.
func NewApp(content Component, opts ...AppOption) *App {
	a := &App{
		content: content,
		mounted: make(map[string]Component),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.theme == nil {
		a.theme = theme.Default()
	}
	if a.log == nil {
		a.log = Logger()
	}
	a.plugins = plugin.NewRegistry(a.log)
	a.cleanup = lifecycle.New(a.log)
	return a
}

// Theme returns the app's theme.
func (a *App) Theme() *theme.Theme { return a.theme }

// Plugins returns the app's plugin registry.
func (a *App) Plugins() *plugin.Registry { return a.plugins }

// Handler returns the leader-key handler, or nil when no keymap was set.
func (a *App) Handler() *event.Handler { return a.handler }

// SetScope changes the keymap scope used for binding filters and help hints.
func (a *App) SetScope(s event.Scope) { a.scope = s }

// Use installs a plugin.
func (a *App) Use(p plugin.Plugin) error {
	return a.plugins.Install(p)
}

// AddLayer appends an overlay layer. Later layers render and capture input
// above earlier ones.
func (a *App) AddLayer(l Layer) {
	a.layers = append(a.layers, l)
}

// Mount registers a component instance: assigns it an id, fires plugin
// OnMount hooks, and opens a cleanup scope. Returns the id and the
// component's Init command.
func (a *App) Mount(c Component) (string, tea.Cmd) {
	id := uuid.NewString()
	a.mounted[id] = c
	a.plugins.DispatchMount(id)
	return id, c.Init()
}

// OnCleanup registers fn to run when the instance id unmounts. Cleanups run
// in reverse registration order.
func (a *App) OnCleanup(id string, fn func()) {
	a.cleanup.OnCleanup(id, fn)
}

// Unmount runs the instance's cleanups and fires plugin OnUnmount hooks.
// Unmounting an unknown or already-unmounted id is a no-op.
func (a *App) Unmount(id string) {
	if _, ok := a.mounted[id]; !ok {
		return
	}
	delete(a.mounted, id)
	a.cleanup.Dispose(id)
	a.plugins.DispatchUnmount(id)
}

// Model returns a tea.Model adapter for use with tea.NewProgram.
func (a *App) Model() tea.Model {
	return &appAdapter{App: a}
}

// appAdapter wraps App to implement tea.Model.
type appAdapter struct {
	*App
}

var _ tea.Model = (*appAdapter)(nil)

// Init implements tea.Model.
func (a *appAdapter) Init() tea.Cmd {
	cmds := []tea.Cmd{a.content.Init()}
	for _, l := range a.layers {
		cmds = append(cmds, l.Init())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (a *appAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		return a, a.broadcast(msg)

	case tea.KeyMsg:
		// An active layer owns the keyboard.
		if top := a.topActiveLayer(); top >= 0 {
			return a, a.updateLayer(top, msg)
		}
		if a.handler != nil {
			if consumed, cmd := a.handler.Handle(msg); consumed {
				return a, cmd
			}
		}
		return a, a.updateContent(msg)

	case tea.MouseMsg:
		if top := a.topActiveLayer(); top >= 0 {
			return a, a.updateLayer(top, msg)
		}
		return a, a.updateContent(msg)
	}

	// Everything else (ticks, widget messages) reaches content and every
	// layer, so toast timers and modal close delays fire regardless of who
	// holds input.
	return a, a.broadcast(msg)
}

// View implements tea.Model.
func (a *appAdapter) View() string {
	base := a.content.View()

	activeView := ""
	if top := a.topActiveLayer(); top >= 0 {
		activeView = a.layers[top].View()
	}
	if activeView != "" {
		// The modal layer replaces interaction with the content behind it;
		// the content is dimmed and the dialog centered over the canvas.
		if a.width > 0 && a.height > 0 {
			base = lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, activeView,
				lipgloss.WithWhitespaceForeground(lipgloss.Color(a.theme.Tokens.Shadow.Backdrop)),
				lipgloss.WithWhitespaceChars("░"))
		} else {
			base = activeView
		}
	}

	// Passive layers (toast region) render below the canvas in Z order.
	for _, l := range a.layers {
		if l.Active() {
			continue
		}
		if v := l.View(); v != "" {
			base = lipgloss.JoinVertical(lipgloss.Right, base, v)
		}
	}

	if a.handler != nil && a.handler.LeaderWaiting {
		base = lipgloss.JoinVertical(lipgloss.Left, base, event.RenderLeaderHelp(a.handler, a.scope, a.theme))
	}
	return base
}

func (a *appAdapter) topActiveLayer() int {
	for i := len(a.layers) - 1; i >= 0; i-- {
		if a.layers[i].Active() {
			return i
		}
	}
	return -1
}

func (a *appAdapter) updateLayer(i int, msg tea.Msg) tea.Cmd {
	next, cmd := a.layers[i].Update(msg)
	if l, ok := next.(Layer); ok {
		a.layers[i] = l
	}
	return cmd
}

func (a *appAdapter) updateContent(msg tea.Msg) tea.Cmd {
	next, cmd := a.content.Update(msg)
	a.content = next
	return cmd
}

func (a *appAdapter) broadcast(msg tea.Msg) tea.Cmd {
	cmds := []tea.Cmd{a.updateContent(msg)}
	for i := range a.layers {
		cmds = append(cmds, a.updateLayer(i, msg))
	}
	return tea.Batch(cmds...)
}
