// Package hypothesis implements the hypothesis-test calculators: chi-squared
// tests over counts and contingency tables, Z-tests over summary statistics,
// and T-tests over raw samples. Every calculation is a pure function of its
// inputs; reference-distribution probabilities come from an injected
// DistributionOracle and are never computed here.
package hypothesis

import (
	"hypotest/ports"
)

// Test names carried on TestResult for reporting.
const (
	TestGoodnessOfFit = "chi-squared goodness-of-fit"
	TestContingency   = "chi-squared contingency"
	TestOneSampleZ    = "one-sample z"
	TestTwoSampleZ    = "two-sample z"
	TestOneSampleT    = "one-sample t"
	TestWelchT        = "two-sample t (Welch)"
	TestPooledT       = "two-sample t (pooled)"
	TestPairedT       = "paired t"
)

// Calculator computes hypothesis-test statistics and p-values. It holds no
// mutable state and may be shared across goroutines.
type Calculator struct {
	dist ports.DistributionOracle
}

// NewCalculator creates a calculator backed by the given distribution oracle.
func NewCalculator(dist ports.DistributionOracle) *Calculator {
	return &Calculator{dist: dist}
}
