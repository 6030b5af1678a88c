package plugin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banda-ui/banda/state"
)

func TestRegistry_InstallAndInject(t *testing.T) {
	r := NewRegistry(nil)
	err := r.Install(Plugin{
		Name:     "icons",
		Provides: map[string]any{"icon.check": "✓"},
	})
	require.NoError(t, err)
	assert.True(t, r.Installed("icons"))

	v, ok := r.Inject("icon.check")
	require.True(t, ok)
	assert.Equal(t, "✓", v)
}

func TestRegistry_MissingDependencyRejected(t *testing.T) {
	r := NewRegistry(nil)
	err := r.Install(Plugin{Name: "child", Requires: []string{"parent"}})
	assert.ErrorIs(t, err, ErrMissingDependency)
	assert.False(t, r.Installed("child"))
}

func TestRegistry_DuplicateInstallIsNoOp(t *testing.T) {
	r := NewRegistry(nil)
	require.NoError(t, r.Install(Plugin{Name: "p", Version: "1"}))
	require.NoError(t, r.Install(Plugin{Name: "p", Version: "2"}), "duplicate install must not error")
	assert.Equal(t, "1", r.plugins["p"].Version, "original plugin wins")
}

func TestRegistry_InstallHookErrorRollsBack(t *testing.T) {
	r := NewRegistry(nil)
	err := r.Install(Plugin{
		Name:     "bad",
		Provides: map[string]any{"k": 1},
		Hooks: Hooks{
			Install: func(*Registry) error { return assert.AnError },
		},
	})
	require.Error(t, err)
	assert.False(t, r.Installed("bad"))
	_, ok := r.Inject("k")
	assert.False(t, ok, "provides from a failed install must be removed")
}

func TestRegistry_PanickingHookDoesNotBreakDispatch(t *testing.T) {
	r := NewRegistry(nil)
	require.NoError(t, r.Install(Plugin{
		Name:  "broken",
		Hooks: Hooks{OnMount: func(string) { panic("boom") }},
	}))
	var mounted []string
	require.NoError(t, r.Install(Plugin{
		Name:  "healthy",
		Hooks: Hooks{OnMount: func(id string) { mounted = append(mounted, id) }},
	}))

	r.DispatchMount("w1")
	assert.Equal(t, []string{"w1"}, mounted)
}

func TestRegistry_StateHooks(t *testing.T) {
	r := NewRegistry(nil)
	var before, after []any
	require.NoError(t, r.Install(Plugin{
		Name: "observer",
		Hooks: Hooks{
			BeforeStateUpdate: func(name string, oldValue, newValue any) {
				before = append(before, name, oldValue, newValue)
			},
			AfterStateUpdate: func(name string, oldValue, newValue any) {
				after = append(after, name)
			},
		},
	}))

	s := state.New(0, state.WithName[int]("count"), state.WithHooks[int](r))
	s.Set(3)
	assert.Equal(t, []any{"count", 0, 3}, before)
	assert.Equal(t, []any{"count"}, after)
}
