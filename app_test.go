package banda

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/banda-ui/banda/plugin"
)

// nullComponent is a minimal Component for composition tests.
type nullComponent struct{ view string }

func (nullComponent) Init() tea.Cmd                           { return nil }
func (n nullComponent) Update(tea.Msg) (Component, tea.Cmd)   { return n, nil }
func (n nullComponent) View() string                          { return n.view }

// stubLayer records whether it received input.
type stubLayer struct {
	active bool
	keys   int
	view   string
}

func (l *stubLayer) Init() tea.Cmd { return nil }
func (l *stubLayer) Update(msg tea.Msg) (Component, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		l.keys++
	}
	return l, nil
}
func (l *stubLayer) View() string { return l.view }
func (l *stubLayer) Active() bool { return l.active }

// keyCounter counts key messages reaching the content.
type keyCounter struct{ keys *int }

func (keyCounter) Init() tea.Cmd { return nil }
func (c keyCounter) Update(msg tea.Msg) (Component, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		*c.keys++
	}
	return c, nil
}
func (keyCounter) View() string { return "content" }

func TestApp_ActiveLayerCapturesKeys(t *testing.T) {
	var contentKeys int
	app := NewApp(keyCounter{keys: &contentKeys})
	layer := &stubLayer{active: true}
	app.AddLayer(layer)

	model := app.Model()
	model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})

	if contentKeys != 0 {
		t.Error("content must not see keys while a layer is active")
	}
	if layer.keys != 1 {
		t.Errorf("expected layer to receive the key, got %d", layer.keys)
	}

	layer.active = false
	model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	if contentKeys != 1 {
		t.Errorf("expected content to receive keys with no active layer, got %d", contentKeys)
	}
}

func TestApp_PassiveLayerViewAppended(t *testing.T) {
	app := NewApp(nullComponent{view: "content"})
	app.AddLayer(&stubLayer{view: "toast-region"})

	model := app.Model()
	view := model.View()
	if view == "content" {
		t.Error("expected passive layer view appended")
	}
}

func TestApp_MountUnmountLifecycle(t *testing.T) {
	app := NewApp(nullComponent{})
	var mounts, unmounts []string
	if err := app.Use(plugin.Plugin{
		Name: "probe",
		Hooks: plugin.Hooks{
			OnMount:   func(id string) { mounts = append(mounts, id) },
			OnUnmount: func(id string) { unmounts = append(unmounts, id) },
		},
	}); err != nil {
		t.Fatal(err)
	}

	id, _ := app.Mount(nullComponent{})
	if len(mounts) != 1 || mounts[0] != id {
		t.Errorf("expected OnMount with %q, got %v", id, mounts)
	}

	var order []int
	app.OnCleanup(id, func() { order = append(order, 1) })
	app.OnCleanup(id, func() { order = append(order, 2) })

	app.Unmount(id)
	if len(unmounts) != 1 || unmounts[0] != id {
		t.Errorf("expected OnUnmount with %q, got %v", id, unmounts)
	}
	if len(order) != 2 || order[0] != 2 || order[1] != 1 {
		t.Errorf("expected LIFO cleanups, got %v", order)
	}

	app.Unmount(id) // idempotent
	if len(unmounts) != 1 {
		t.Error("second unmount must be a no-op")
	}
}
