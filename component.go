// Package banda is a component kit for terminal applications built on
// Bubble Tea: a typed retained-node construction layer, a reactive state
// primitive (package state), and a set of prebuilt widgets (package widget)
// composed from that layer.
//
// There is no diffing: a widget builds its node subtree once, wires input
// handling that mutates local reactive state, and patches the affected nodes
// imperatively when state changes. Teardown is explicit — unmounting runs
// registered cleanups; nothing relies on garbage collection.
package banda

import tea "github.com/charmbracelet/bubbletea"

// Component is the unit of composition; it follows Bubble Tea's
// Init/Update/View shape. Each Component represents a widget, screen, or
// major UI region with its own model, update, and view.
type Component interface {
	Init() tea.Cmd
	Update(tea.Msg) (Component, tea.Cmd)
	View() string
}

// Layer is a Component that participates in the App's overlay compositing.
// An active layer captures all input; inactive layers still render (the toast
// region) and receive non-input messages (timer ticks).
type Layer interface {
	Component
	// Active reports whether the layer currently captures input.
	Active() bool
}
