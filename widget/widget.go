// Package widget provides the kit's prebuilt components. Every widget is a
// factory taking one typed options struct with defaulted fields and returning
// a banda.Component (or, for the modal and toast managers, a banda.Layer the
// caller drives through methods).
//
// Factories do not validate their inputs: malformed options render visibly
// broken widgets rather than panicking.
package widget

import (
	"fmt"

	"github.com/banda-ui/banda/theme"
)

// themeOrDefault resolves a widget's theme option.
func themeOrDefault(t *theme.Theme) *theme.Theme {
	if t != nil {
		return t
	}
	return theme.Default()
}

// cellString renders an arbitrary cell value for display. Whole floats print
// as integers so JSON-decoded numbers look right in tables.
func cellString(v any) string {
	if v == nil {
		return ""
	}
	switch val := v.(type) {
	case string:
		return val
	case float64:
		if val == float64(int64(val)) {
			return fmt.Sprintf("%.0f", val)
		}
		return fmt.Sprintf("%g", val)
	case bool:
		return fmt.Sprintf("%t", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
