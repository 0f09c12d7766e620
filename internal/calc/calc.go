// Package calc holds the health formulas behind every tool. Each function is a
// pure evaluation of its inputs: it checks its own numeric domain first and
// returns a *ValidationError instead of ever producing NaN or Inf.
package calc

import (
	"errors"
	"fmt"
	"math"
)

// ValidationError reports a rejected input. It covers both malformed input and
// combinations that would leave a formula undefined (log of a non-positive
// number, division by a zero rate); callers treat both the same way.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// invalid builds a *ValidationError with a formatted message.
func invalid(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Sex selects the sex-specific coefficients of a formula.
type Sex string

const (
	Male   Sex = "male"
	Female Sex = "female"
)

// ParseSex accepts "male" or "female" and rejects anything else.
func ParseSex(s string) (Sex, error) {
	switch Sex(s) {
	case Male, Female:
		return Sex(s), nil
	}
	return "", invalid("sex", "Sex must be male or female")
}

/* ─── Rounding ────────────────────────────────────────────────────────── */

// RoundHalfUp rounds to the nearest integer with halves going up. Every value
// rounded here is non-negative, where math.Round already behaves that way.
func RoundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

// Round1 rounds to one decimal place, halves up.
func Round1(x float64) float64 {
	return math.Floor(x*10+0.5) / 10
}

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}

// checkRange rejects v unless lo < v <= hi. hi <= 0 means no upper bound.
func checkRange(field, label string, v, hi float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 || (hi > 0 && v > hi) {
		if hi > 0 {
			return invalid(field, "%s must be greater than 0 and at most %g", label, hi)
		}
		return invalid(field, "%s must be greater than 0", label)
	}
	return nil
}

// checkFinite rejects a result that overflowed on extreme but in-range input.
func checkFinite(field, message string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return invalid(field, "%s", message)
	}
	return nil
}
