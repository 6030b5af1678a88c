// Package textutil provides unicode-aware text helpers for widget rendering:
// visual-width measurement, truncation with ellipsis, padding, and word wrap.
package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Ellipsis is the character appended when text is truncated.
const Ellipsis = "…"

// Width returns the number of terminal columns s occupies.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate shortens s to at most maxWidth visual columns, appending the
// ellipsis when anything was cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if Width(s) <= maxWidth {
		return s
	}

	budget := maxWidth - Width(Ellipsis)
	if budget < 0 {
		return Ellipsis
	}
	var b strings.Builder
	used := 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if used+rw > budget {
			break
		}
		b.WriteRune(r)
		used += rw
	}
	return b.String() + Ellipsis
}

// PadRight pads s with spaces to targetWidth columns, truncating if wider.
func PadRight(s string, targetWidth int) string {
	w := Width(s)
	if w >= targetWidth {
		return Truncate(s, targetWidth)
	}
	return s + strings.Repeat(" ", targetWidth-w)
}

// PadLeft pads s with leading spaces to targetWidth columns, truncating if
// wider. Used for right-aligned numeric cells.
func PadLeft(s string, targetWidth int) string {
	w := Width(s)
	if w >= targetWidth {
		return Truncate(s, targetWidth)
	}
	return strings.Repeat(" ", targetWidth-w) + s
}

// Wrap word-wraps s to fit within maxWidth columns. Words wider than the
// line are broken mid-word. Existing newlines are kept.
func Wrap(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return s
	}

	var out []string
	for _, paragraph := range strings.Split(s, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}

		line := ""
		for _, word := range words {
			candidate := word
			if line != "" {
				candidate = line + " " + word
			}
			if Width(candidate) <= maxWidth {
				line = candidate
				continue
			}
			if line != "" {
				out = append(out, line)
			}
			for Width(word) > maxWidth {
				head, rest := splitAtWidth(word, maxWidth)
				out = append(out, head)
				word = rest
			}
			line = word
		}
		if line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}

// splitAtWidth splits s into a head of at most maxWidth columns and the rest.
// The head always contains at least one rune so callers make progress.
func splitAtWidth(s string, maxWidth int) (head, rest string) {
	w := 0
	for i, r := range s {
		rw := runewidth.RuneWidth(r)
		if w+rw > maxWidth && i > 0 {
			return s[:i], s[i:]
		}
		w += rw
	}
	return s, ""
}
