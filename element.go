package banda

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/banda-ui/banda/event"
)

// Kind selects an Element's layout behavior.
type Kind int

const (
	// KindBox renders its children vertically inside its own style frame.
	KindBox Kind = iota
	// KindRow joins its children horizontally.
	KindRow
	// KindColumn joins its children vertically.
	KindColumn
	// KindText renders its text through its style.
	KindText
)

// Element is a retained render node. Widgets build a subtree once and mutate
// it imperatively; Render re-renders only dirty subtrees and caches the rest.
type Element struct {
	kind     Kind
	id       string
	text     string
	style    lipgloss.Style
	styled   bool
	hidden   bool
	parent   *Element
	children []*Element

	onClick func()
	onKey   func(tea.KeyMsg) bool

	dirty  bool
	cache  string
	bounds event.Bounds
}

// ElementOption configures an Element at construction.
type ElementOption func(*Element)

// WithID names the element for lookup via Find.
func WithID(id string) ElementOption {
	return func(e *Element) { e.id = id }
}

// WithStyle sets the element's lipgloss style.
func WithStyle(s lipgloss.Style) ElementOption {
	return func(e *Element) { e.style = s; e.styled = true }
}

// WithOnClick registers a click handler hit-tested against the element's
// last rendered bounds.
func WithOnClick(fn func()) ElementOption {
	return func(e *Element) { e.onClick = fn }
}

// WithOnKey registers a key handler. The handler returns true when it
// consumed the key; dispatch visits children before parents.
func WithOnKey(fn func(tea.KeyMsg) bool) ElementOption {
	return func(e *Element) { e.onKey = fn }
}

// WithHidden creates the element hidden.
func WithHidden() ElementOption {
	return func(e *Element) { e.hidden = true }
}

func newElement(kind Kind, opts ...ElementOption) *Element {
	e := &Element{kind: kind, dirty: true}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Box creates a container that stacks children vertically inside its style
// frame (border, padding).
func Box(opts ...ElementOption) *Element { return newElement(KindBox, opts...) }

// Row creates a container that joins children horizontally.
func Row(opts ...ElementOption) *Element { return newElement(KindRow, opts...) }

// Column creates a container that joins children vertically.
func Column(opts ...ElementOption) *Element { return newElement(KindColumn, opts...) }

// Text creates a leaf rendering s.
func Text(s string, opts ...ElementOption) *Element {
	e := newElement(KindText, opts...)
	e.text = s
	return e
}

// ID returns the element's id.
func (e *Element) ID() string { return e.id }

// Hidden reports whether the element is excluded from rendering.
func (e *Element) Hidden() bool { return e.hidden }

// Bounds returns the rectangle the element occupied in the last render pass.
func (e *Element) Bounds() event.Bounds { return e.bounds }

// SetText replaces a text element's content and invalidates its subtree.
func (e *Element) SetText(s string) {
	if e.text == s {
		return
	}
	e.text = s
	e.invalidate()
}

// SetStyle replaces the element's style and invalidates its subtree.
func (e *Element) SetStyle(s lipgloss.Style) {
	e.style = s
	e.styled = true
	e.invalidate()
}

// SetHidden shows or hides the element.
func (e *Element) SetHidden(hidden bool) {
	if e.hidden == hidden {
		return
	}
	e.hidden = hidden
	e.invalidate()
}

// SetOnClick replaces the click handler.
func (e *Element) SetOnClick(fn func()) { e.onClick = fn }

// Append adds children to the end of the element's child list.
func (e *Element) Append(children ...*Element) *Element {
	for _, c := range children {
		c.parent = e
	}
	e.children = append(e.children, children...)
	e.invalidate()
	return e
}

// Remove detaches child. Returns true if it was present.
func (e *Element) Remove(child *Element) bool {
	for i, c := range e.children {
		if c == child {
			e.children = append(e.children[:i], e.children[i+1:]...)
			child.parent = nil
			e.invalidate()
			return true
		}
	}
	return false
}

// Clear detaches all children.
func (e *Element) Clear() {
	for _, c := range e.children {
		c.parent = nil
	}
	e.children = nil
	e.invalidate()
}

// Children returns the child list. Callers must not mutate it directly.
func (e *Element) Children() []*Element { return e.children }

// Find returns the first element in the subtree with the given id, or nil.
func (e *Element) Find(id string) *Element {
	if e.id == id {
		return e
	}
	for _, c := range e.children {
		if found := c.Find(id); found != nil {
			return found
		}
	}
	return nil
}

// invalidate marks the element and its ancestors dirty so the next Render
// re-renders this subtree while siblings keep their caches.
func (e *Element) invalidate() {
	for cur := e; cur != nil; cur = cur.parent {
		if cur.dirty {
			return
		}
		cur.dirty = true
	}
}

// Render returns the element's string, re-rendering only dirty subtrees.
func (e *Element) Render() string {
	if e.hidden {
		return ""
	}
	if !e.dirty {
		return e.cache
	}

	switch e.kind {
	case KindText:
		if e.styled {
			e.cache = e.style.Render(e.text)
		} else {
			e.cache = e.text
		}
	case KindRow:
		e.cache = lipgloss.JoinHorizontal(lipgloss.Top, e.renderChildren()...)
	case KindColumn:
		e.cache = lipgloss.JoinVertical(lipgloss.Left, e.renderChildren()...)
	case KindBox:
		inner := lipgloss.JoinVertical(lipgloss.Left, e.renderChildren()...)
		if e.styled {
			e.cache = e.style.Render(inner)
		} else {
			e.cache = inner
		}
	}
	e.dirty = false
	return e.cache
}

func (e *Element) renderChildren() []string {
	out := make([]string, 0, len(e.children))
	for _, c := range e.children {
		if c.hidden {
			continue
		}
		out = append(out, c.Render())
	}
	if len(out) == 0 {
		out = append(out, "")
	}
	return out
}

// LayoutAt renders the subtree and records each element's bounds with the
// top-left corner at (x, y). Bounds feed click hit-testing.
func (e *Element) LayoutAt(x, y int) string {
	rendered := e.Render()
	e.bounds = event.Bounds{X: x, Y: y, W: lipgloss.Width(rendered), H: lipgloss.Height(rendered)}
	if e.hidden {
		return rendered
	}

	childX, childY := x, y
	if e.kind == KindBox && e.styled {
		childX += e.style.GetBorderLeftSize() + e.style.GetPaddingLeft()
		childY += e.style.GetBorderTopSize() + e.style.GetPaddingTop()
	}
	for _, c := range e.children {
		if c.hidden {
			continue
		}
		childRendered := c.LayoutAt(childX, childY)
		switch e.kind {
		case KindRow:
			childX += lipgloss.Width(childRendered)
		default:
			childY += lipgloss.Height(childRendered)
		}
	}
	return rendered
}

// HitTest returns the deepest visible element whose last rendered bounds
// contain (x, y), or nil.
func (e *Element) HitTest(x, y int) *Element {
	if e.hidden || !e.bounds.Contains(x, y) {
		return nil
	}
	// Visit children in reverse so later siblings (rendered on top in a
	// stacking sense) win.
	for i := len(e.children) - 1; i >= 0; i-- {
		if hit := e.children[i].HitTest(x, y); hit != nil {
			return hit
		}
	}
	return e
}

// Click dispatches a press at (x, y) to the innermost element with a click
// handler. Returns true when a handler ran.
func (e *Element) Click(x, y int) bool {
	hit := e.HitTest(x, y)
	for ; hit != nil; hit = hit.parent {
		if hit.onClick != nil {
			hit.onClick()
			return true
		}
	}
	return false
}

// DispatchKey walks the subtree depth-first, children before parents, until
// a key handler consumes msg. Returns true when one did.
func (e *Element) DispatchKey(msg tea.KeyMsg) bool {
	if e.hidden {
		return false
	}
	for _, c := range e.children {
		if c.DispatchKey(msg) {
			return true
		}
	}
	return e.onKey != nil && e.onKey(msg)
}

// PlainText returns the subtree's text content without styling, for tests
// and accessibility-style inspection.
func (e *Element) PlainText() string {
	if e.hidden {
		return ""
	}
	if e.kind == KindText {
		return e.text
	}
	var parts []string
	for _, c := range e.children {
		if t := c.PlainText(); t != "" {
			parts = append(parts, t)
		}
	}
	sep := "\n"
	if e.kind == KindRow {
		sep = " "
	}
	return strings.Join(parts, sep)
}
