// core/quantity/errors.go
package quantity

import (
	"fmt"
	"math"
	"strconv"
)

// PreconditionError reports an invalid input supplied by the caller.
// It names the offending element, the constraint and the actual value.
type PreconditionError struct {
	Element  string
	Expected string
	Actual   string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s: Expected %s got %s", e.Element, e.Expected, e.Actual)
}

// NewPreconditionError builds a PreconditionError for a numeric value.
func NewPreconditionError(element, expected string, actual float64) *PreconditionError {
	return &PreconditionError{Element: element, Expected: expected, Actual: FormatValue(actual)}
}

// RuntimeError reports an internally inconsistent computation
// (non-finite landmark, a phase that cannot bracket an age, ...).
type RuntimeError struct {
	Component string
	Detail    string
}

func (e *RuntimeError) Error() string {
	return e.Component + ": " + e.Detail
}

// Runtimef builds a RuntimeError with a formatted detail.
func Runtimef(component, format string, a ...any) *RuntimeError {
	return &RuntimeError{Component: component, Detail: fmt.Sprintf(format, a...)}
}

// FormatValue renders a float with the shortest exact representation.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// NotPositive fails unless v > 0.
func NotPositive(v float64, element string) error {
	if !(v > 0) {
		return NewPreconditionError(element, ">0", v)
	}
	return nil
}

// Negative fails unless v >= 0.
func Negative(v float64, element string) error {
	if !(v >= 0) {
		return NewPreconditionError(element, ">=0", v)
	}
	return nil
}

// Finite returns a RuntimeError if v is NaN or infinite.
func Finite(v float64, component, what string) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Runtimef(component, "%s is not finite (%v)", what, v)
	}
	return nil
}
