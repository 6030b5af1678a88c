// Package focus tracks keyboard focus across widget ids: a Ring rotates focus
// through an ordered list with wrap-around, and a Trap constrains tab cycling
// to a subtree (a modal dialog) while remembering where focus came from.
package focus

// Ring tracks and rotates focus across an ordered set of focusable ids.
type Ring struct {
	Current  string   // id of the currently focused entry
	Order    []string // tab order for rotation
	OnChange func(from, to string)
}

// Next advances focus to the next id in order, wrapping at the end.
// Returns the new current id.
func (r *Ring) Next() string {
	return r.move(1)
}

// Prev moves focus to the previous id in order, wrapping at the start.
func (r *Ring) Prev() string {
	return r.move(-1)
}

func (r *Ring) move(step int) string {
	if len(r.Order) == 0 {
		return ""
	}
	idx := r.indexOf(r.Current)
	next := idx + step
	if idx == -1 && step > 0 {
		next = 0
	}
	if next < 0 {
		next = len(r.Order) - 1
	}
	next %= len(r.Order)

	from := r.Current
	r.Current = r.Order[next]
	if r.OnChange != nil && from != r.Current {
		r.OnChange(from, r.Current)
	}
	return r.Current
}

// SetFocus moves focus to id. Returns true if the id exists in order.
func (r *Ring) SetFocus(id string) bool {
	if r.indexOf(id) == -1 {
		return false
	}
	from := r.Current
	r.Current = id
	if r.OnChange != nil && from != id {
		r.OnChange(from, id)
	}
	return true
}

func (r *Ring) indexOf(id string) int {
	for i, cur := range r.Order {
		if cur == id {
			return i
		}
	}
	return -1
}
