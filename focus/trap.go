package focus

// Trap constrains tab cycling to a widget subtree. On activation it remembers
// the currently focused id, swaps the ring's tab order for the trap's, and
// moves focus to the first focusable entry; Tab at the last entry wraps to the
// first and Shift+Tab at the first wraps to the last; Release restores the
// remembered order and id.
//
// A trap over zero focusables is a no-op: activation and key handling do
// nothing, and tab behavior falls through to the embedding component.
type Trap struct {
	ring       *Ring
	order      []string
	savedOrder []string
	previous   string
	active     bool
}

// NewTrap creates a trap over the given tab order. The trap operates on the
// ring itself, so OnChange observers keep firing while it holds focus.
func NewTrap(ring *Ring, order []string) *Trap {
	return &Trap{ring: ring, order: order}
}

// Activate remembers the current focus and order, installs the trap's order,
// and moves focus to the first focusable.
func (t *Trap) Activate() {
	if len(t.order) == 0 {
		return
	}
	t.previous = t.ring.Current
	t.savedOrder = t.ring.Order
	t.ring.Order = t.order
	t.active = true
	t.ring.SetFocus(t.order[0])
}

// Active reports whether the trap currently holds focus.
func (t *Trap) Active() bool { return t.active }

// Current returns the focused id inside the trap, or "" when inactive.
func (t *Trap) Current() string {
	if !t.active {
		return ""
	}
	return t.ring.Current
}

// HandleTab processes a Tab (shift=false) or Shift+Tab (shift=true) press.
// Returns true when the trap consumed the key. An inactive or empty trap
// consumes nothing, so default navigation applies.
func (t *Trap) HandleTab(shift bool) bool {
	if !t.active || len(t.order) == 0 {
		return false
	}
	if shift {
		t.ring.Prev()
	} else {
		t.ring.Next()
	}
	return true
}

// Release restores the remembered order and focus. OnChange fires only when
// focus actually moves back.
func (t *Trap) Release() {
	if !t.active {
		return
	}
	t.active = false
	t.ring.Order = t.savedOrder
	t.savedOrder = nil
	from := t.ring.Current
	t.ring.Current = t.previous
	if t.ring.OnChange != nil && from != t.previous {
		t.ring.OnChange(from, t.previous)
	}
}
