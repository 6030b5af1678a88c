// Package plugin implements the kit's extension registry: named plugins with
// lifecycle hooks, a provided-capability map consumed via Inject, and
// dependency checking at install time.
//
// The registry is an explicit object passed to whatever needs it — there is
// no process-wide plugin state, so independent registries can coexist (one
// per App, one per test).
package plugin

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Hooks are the lifecycle points a plugin can subscribe to. All fields are
// optional; nil hooks are skipped.
type Hooks struct {
	// Install runs once when the plugin is installed.
	Install func(r *Registry) error
	// OnMount runs when a component instance mounts.
	OnMount func(id string)
	// OnUnmount runs when a component instance unmounts.
	OnUnmount func(id string)
	// BeforeStateUpdate runs before a named state commits a change.
	BeforeStateUpdate func(name string, oldValue, newValue any)
	// AfterStateUpdate runs after a named state's subscribers were notified.
	AfterStateUpdate func(name string, oldValue, newValue any)
}

// Plugin bundles a named extension.
type Plugin struct {
	// Name is the unique registry key.
	Name string
	// Version is informational.
	Version string
	// Hooks subscribe to lifecycle points.
	Hooks Hooks
	// Provides is merged into the registry's capability map on install.
	Provides map[string]any
	// Requires lists plugin names that must already be installed.
	Requires []string
}

// ErrMissingDependency is wrapped by Install when a required plugin is absent.
var ErrMissingDependency = fmt.Errorf("missing plugin dependency")

// Registry holds installed plugins and their provided capabilities.
// Not safe for concurrent mutation; the kit drives it from the single
// Bubble Tea update loop.
type Registry struct {
	plugins  map[string]Plugin
	order    []string
	provided map[string]any
	log      *logrus.Logger
}

// NewRegistry creates an empty registry. If log is nil, warnings about
// duplicate installs and panicking hooks are dropped.
func NewRegistry(log *logrus.Logger) *Registry {
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	return &Registry{
		plugins:  make(map[string]Plugin),
		provided: make(map[string]any),
		log:      log,
	}
}

// Install adds p to the registry.
//
// A plugin whose Requires names an uninstalled plugin is rejected with an
// error wrapping ErrMissingDependency. Installing a name that already exists
// is a no-op with a warning, not an error. The Install hook runs last; its
// error aborts the install and unregisters the plugin.
func (r *Registry) Install(p Plugin) error {
	if _, exists := r.plugins[p.Name]; exists {
		r.log.WithField("plugin", p.Name).Warn("plugin already installed, ignoring")
		return nil
	}
	for _, dep := range p.Requires {
		if _, installedDep := r.plugins[dep]; !installedDep {
			return fmt.Errorf("plugin %q: %w: %q", p.Name, ErrMissingDependency, dep)
		}
	}

	r.plugins[p.Name] = p
	r.order = append(r.order, p.Name)
	for key, value := range p.Provides {
		r.provided[key] = value
	}

	if p.Hooks.Install != nil {
		if err := p.Hooks.Install(r); err != nil {
			delete(r.plugins, p.Name)
			r.order = r.order[:len(r.order)-1]
			for key := range p.Provides {
				delete(r.provided, key)
			}
			return fmt.Errorf("plugin %q: install hook: %w", p.Name, err)
		}
	}
	return nil
}

// Installed reports whether a plugin name is registered.
func (r *Registry) Installed(name string) bool {
	_, exists := r.plugins[name]
	return exists
}

// Inject returns the provided capability under key.
func (r *Registry) Inject(key string) (any, bool) {
	v, exists := r.provided[key]
	return v, exists
}

// DispatchMount fires every plugin's OnMount hook.
func (r *Registry) DispatchMount(id string) {
	for _, name := range r.order {
		p := r.plugins[name]
		if p.Hooks.OnMount != nil {
			r.guard(name, "OnMount", func() { p.Hooks.OnMount(id) })
		}
	}
}

// DispatchUnmount fires every plugin's OnUnmount hook.
func (r *Registry) DispatchUnmount(id string) {
	for _, name := range r.order {
		p := r.plugins[name]
		if p.Hooks.OnUnmount != nil {
			r.guard(name, "OnUnmount", func() { p.Hooks.OnUnmount(id) })
		}
	}
}

// BeforeUpdate implements state.Hooks: it fans a named state transition out
// to every plugin's BeforeStateUpdate hook.
func (r *Registry) BeforeUpdate(name string, oldValue, newValue any) {
	for _, pname := range r.order {
		p := r.plugins[pname]
		if p.Hooks.BeforeStateUpdate != nil {
			r.guard(pname, "BeforeStateUpdate", func() { p.Hooks.BeforeStateUpdate(name, oldValue, newValue) })
		}
	}
}

// AfterUpdate implements state.Hooks.
func (r *Registry) AfterUpdate(name string, oldValue, newValue any) {
	for _, pname := range r.order {
		p := r.plugins[pname]
		if p.Hooks.AfterStateUpdate != nil {
			r.guard(pname, "AfterStateUpdate", func() { p.Hooks.AfterStateUpdate(name, oldValue, newValue) })
		}
	}
}

// guard runs one hook with panic recovery so a broken plugin cannot break
// dispatch for the others.
func (r *Registry) guard(plugin, hook string, fn func()) {
	defer func() {
		if rec := recover(); rec != nil {
			r.log.WithFields(logrus.Fields{
				"plugin": plugin,
				"hook":   hook,
				"panic":  rec,
			}).Error("plugin hook panicked")
		}
	}()
	fn()
}
