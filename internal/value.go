package internal

import (
	"fmt"
	"math"
	"strconv"
)

// isTruthy implements spec.md §3's truthiness rule: only false and nil
// are falsy, everything else — including 0 and "" — is truthy.
func isTruthy(value interface{}) bool {
	if value == nil {
		return false
	}
	if b, ok := value.(bool); ok {
		return b
	}
	return true
}

// isEqual implements spec.md §3's equality rule: value equality for
// primitives, identity for callables and instances, and the explicit
// policy that NaN == NaN is true (unlike IEEE-754).
func isEqual(a, b interface{}) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	an, aIsNum := a.(float64)
	bn, bIsNum := b.(float64)
	if aIsNum && bIsNum {
		if math.IsNaN(an) && math.IsNaN(bn) {
			return true
		}
		return an == bn
	}
	return a == b
}

// stringify renders a runtime value the way `print` and the REPL's
// expression echo do.
func stringify(value interface{}) string {
	if value == nil {
		return "nil"
	}
	switch v := value.(type) {
	case bool:
		if v {
			return "true"
		}
		return "false"
	case float64:
		return formatNumber(v)
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// formatNumber is the resolved Open Question from spec.md §9: shortest
// round-trip decimal, with integral values printed without a trailing
// ".0" — which strconv's shortest-digits mode already gives us for free.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
