package stats

import (
	"fmt"
)

// Tail selects how the survival-function value is turned into a reported
// p-value. It is caller-selected post-processing, never part of statistic
// computation.
type Tail string

const (
	OneTailed Tail = "one-tailed"
	TwoTailed Tail = "two-tailed"
)

// ParseTail parses a tail selector from user input.
func ParseTail(s string) (Tail, error) {
	switch Tail(s) {
	case OneTailed, TwoTailed:
		return Tail(s), nil
	default:
		return "", fmt.Errorf("unknown tail %q (want %q or %q)", s, OneTailed, TwoTailed)
	}
}

// TestResult is the immutable output bundle of a hypothesis-test calculation.
// PValue holds the one-tailed survival-function value at the statistic; DoF
// may be non-integer under the Welch approximation and is zero for Z-tests,
// whose normal reference has no shape parameter.
type TestResult struct {
	Test      string  `json:"test"`
	Statistic float64 `json:"statistic"`
	DoF       float64 `json:"degrees_of_freedom"`
	PValue    float64 `json:"p_value"`
}

// TwoTailedP doubles the one-tailed p-value, capped at 1.
func (r TestResult) TwoTailedP() float64 {
	p := 2 * r.PValue
	if p > 1 {
		return 1
	}
	return p
}

// PForTail applies the caller-selected tailing to the survival value.
func (r TestResult) PForTail(tail Tail) float64 {
	if tail == TwoTailed {
		return r.TwoTailedP()
	}
	return r.PValue
}
