package errors

import (
	"fmt"
	"strings"
)

// ValidateEnum checks that value is one of the allowed strings for field.
// The code is used for the returned error so callers can distinguish
// mode failures from order-by failures.
func ValidateEnum(code Code, field, value string, allowed ...string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return New(code, "invalid %s: %q (valid: %s)", field, value, strings.Join(allowed, ", "))
}

// ValidateAtLeast checks that v >= min for an integer parameter.
func ValidateAtLeast(field string, v, min int) error {
	if v < min {
		return New(ErrCodeBounds, "%s must be >= %d, got %d", field, min, v)
	}
	return nil
}

// ValidateWindow checks that an integer window [lo, hi) spans at least span.
func ValidateWindow(field string, lo, hi, span int) error {
	if hi-lo < span {
		return New(ErrCodeBounds, "%s window [%d, %d) must span at least %d", field, lo, hi, span)
	}
	return nil
}

// ValidateExclusive fails when both of two mutually exclusive parameters are
// set, or when neither is and required is true.
func ValidateExclusive(nameA, nameB string, setA, setB, required bool) error {
	if setA && setB {
		return New(ErrCodeExclusive, "cannot set both %s and %s", nameA, nameB)
	}
	if required && !setA && !setB {
		return New(ErrCodeExclusive, "either %s or %s must be set", nameA, nameB)
	}
	return nil
}

// ValidateOrdered checks lo <= mid <= hi for float parameters, reporting the
// field names in the message.
func ValidateOrdered(loName, midName, hiName string, lo, mid, hi float64) error {
	if lo > mid || mid > hi {
		return New(ErrCodeBounds, "%s must satisfy %s <= %s <= %s (%s)", midName, loName, midName, hiName,
			fmt.Sprintf("%g, %g, %g", lo, mid, hi))
	}
	return nil
}
