package banda

// BoundsFunc returns a panel's position and size given terminal dimensions.
// Returns x, y, width, height.
type BoundsFunc func(width, height int) (x, y, w, h int)

// Panel hosts a Component and knows its bounds within a layout. Bounds also
// serve as the hit-test rectangle for outside-press detection.
type Panel struct {
	ID        string
	Component Component
	Bounds    BoundsFunc
}

// Layout arranges panels and defines focus order.
type Layout interface {
	Panels() []Panel
	FocusOrder() []string // tab order for focus rotation
}

// SplitLayout is a two-panel horizontal split at a fractional ratio.
type SplitLayout struct {
	Left, Right Panel
	// Ratio is the left panel's share of the width, (0, 1). Zero means 0.5.
	Ratio float64
}

// Panels implements Layout.
func (l *SplitLayout) Panels() []Panel {
	ratio := l.Ratio
	if ratio <= 0 || ratio >= 1 {
		ratio = 0.5
	}
	left := l.Left
	left.Bounds = func(width, height int) (int, int, int, int) {
		return 0, 0, int(float64(width) * ratio), height
	}
	right := l.Right
	right.Bounds = func(width, height int) (int, int, int, int) {
		lw := int(float64(width) * ratio)
		return lw, 0, width - lw, height
	}
	return []Panel{left, right}
}

// FocusOrder implements Layout.
func (l *SplitLayout) FocusOrder() []string {
	return []string{l.Left.ID, l.Right.ID}
}
