// Package validate implements the form validation engine: pure rule functions
// producing Result values, per-field state (value, touched, dirty, errors),
// and per-form aggregation with an async submit wrapper.
//
// Validation failures are data, never errors — a failing rule yields a Result
// with OK false and a message, and nothing in this package panics or returns
// an error for invalid input.
package validate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Result is the outcome of applying one rule to a value.
type Result struct {
	OK      bool
	Message string
}

// Rule checks a value and reports the outcome.
type Rule func(value any) Result

var ok = Result{OK: true}

func fail(msg string) Result { return Result{Message: msg} }

// ruleValidator backs the rules that delegate to go-playground tags.
var ruleValidator = validator.New()

// toString renders a value the way a form field holds it.
func toString(v any) string {
	if v == nil {
		return ""
	}
	if s, isString := v.(string); isString {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// toFloat parses a value as a number. Returns (0, false) when it is not one.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// Required fails on nil, empty, or whitespace-only values.
func Required() Rule {
	return func(v any) Result {
		if strings.TrimSpace(toString(v)) == "" {
			return fail("This field is required")
		}
		return ok
	}
}

// MinLength fails when the value is shorter than n runes.
// Empty values pass; combine with Required to forbid them.
func MinLength(n int) Rule {
	return func(v any) Result {
		s := toString(v)
		if s == "" {
			return ok
		}
		if len([]rune(s)) < n {
			return fail(fmt.Sprintf("Must be at least %d characters", n))
		}
		return ok
	}
}

// MaxLength fails when the value is longer than n runes.
func MaxLength(n int) Rule {
	return func(v any) Result {
		if len([]rune(toString(v))) > n {
			return fail(fmt.Sprintf("Must be no longer than %d characters", n))
		}
		return ok
	}
}

// Email fails when the value is not a valid email address.
// Empty values pass.
func Email() Rule {
	return tagRule("email", "Must be a valid email address")
}

// URL fails when the value is not a valid absolute URL. Empty values pass.
func URL() Rule {
	return tagRule("url", "Must be a valid URL")
}

// Numeric fails when the value is not a number. Empty values pass.
func Numeric() Rule {
	return func(v any) Result {
		s := toString(v)
		if s == "" {
			return ok
		}
		if _, isNum := toFloat(v); !isNum {
			return fail("Must be a number")
		}
		return ok
	}
}

// Min fails when the value is a number below n. Non-numeric values pass
// (combine with Numeric to forbid them).
func Min(n float64) Rule {
	return func(v any) Result {
		if f, isNum := toFloat(v); isNum && f < n {
			return fail(fmt.Sprintf("Must be at least %v", n))
		}
		return ok
	}
}

// Max fails when the value is a number above n.
func Max(n float64) Rule {
	return func(v any) Result {
		if f, isNum := toFloat(v); isNum && f > n {
			return fail(fmt.Sprintf("Must be at most %v", n))
		}
		return ok
	}
}

// Pattern fails when the value does not match re. Empty values pass.
func Pattern(re *regexp.Regexp, message string) Rule {
	return func(v any) Result {
		s := toString(v)
		if s == "" {
			return ok
		}
		if !re.MatchString(s) {
			return fail(message)
		}
		return ok
	}
}

// Matches fails when the value differs from other's current value.
func Matches(other *Field, message string) Rule {
	return func(v any) Result {
		if toString(v) != toString(other.Value()) {
			return fail(message)
		}
		return ok
	}
}

// Custom wraps a predicate into a rule.
func Custom(pred func(value any) bool, message string) Rule {
	return func(v any) Result {
		if !pred(v) {
			return fail(message)
		}
		return ok
	}
}

// tagRule delegates to a go-playground/validator tag. Empty values pass.
func tagRule(tag, message string) Rule {
	return func(v any) Result {
		s := toString(v)
		if s == "" {
			return ok
		}
		if err := ruleValidator.Var(s, tag); err != nil {
			return fail(message)
		}
		return ok
	}
}
