package event

import tea "github.com/charmbracelet/bubbletea"

// Bounds is a rectangle in terminal cells.
type Bounds struct {
	X, Y, W, H int
}

// Contains reports whether the point (x, y) lies inside the rectangle.
func (b Bounds) Contains(x, y int) bool {
	return x >= b.X && x < b.X+b.W && y >= b.Y && y < b.Y+b.H
}

// OutsideClick reports mouse presses that land outside a widget's bounds,
// used to close open popups (Select dropdown, DatePicker calendar, ColorPicker
// palette).
//
// The press that opened the popup arrives after Arm and must not immediately
// close it, so the first press after arming is always ignored.
type OutsideClick struct {
	armed     bool
	skipFirst bool
	bounds    func() Bounds
}

// NewOutsideClick creates a detector over the popup's current bounds.
func NewOutsideClick(bounds func() Bounds) *OutsideClick {
	return &OutsideClick{bounds: bounds}
}

// Arm starts watching. The next press is swallowed regardless of position.
func (o *OutsideClick) Arm() {
	o.armed = true
	o.skipFirst = true
}

// Disarm stops watching.
func (o *OutsideClick) Disarm() {
	o.armed = false
}

// Armed reports whether the detector is watching.
func (o *OutsideClick) Armed() bool { return o.armed }

// Observe inspects a mouse message and returns true when an outside press
// should close the popup. Non-press events and presses inside bounds return
// false.
func (o *OutsideClick) Observe(msg tea.MouseMsg) bool {
	if !o.armed || msg.Action != tea.MouseActionPress {
		return false
	}
	if o.skipFirst {
		o.skipFirst = false
		return false
	}
	if o.bounds != nil && o.bounds().Contains(msg.X, msg.Y) {
		return false
	}
	return true
}
