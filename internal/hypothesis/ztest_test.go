package hypothesis

import (
	"testing"

	"hypotest/domain/core"
)

func TestOneSampleZKnownQuantile(t *testing.T) {
	calc := newTestCalculator()

	// z lands exactly on the 97.5th percentile of the standard normal.
	result, err := calc.OneSampleZ(1.959964, 0, 1, 1)
	if err != nil {
		t.Fatalf("one-sample z: %v", err)
	}
	aeq(t, result.Statistic, 1.959964, 1e-9, "statistic")
	aeq(t, result.DoF, 0, 0, "dof")
	aeq(t, result.PValue, 0.025, 1e-5, "one-tailed p")
	aeq(t, result.TwoTailedP(), 0.05, 2e-5, "two-tailed p")
}

func TestOneSampleZScalesWithSampleSize(t *testing.T) {
	calc := newTestCalculator()

	// Quadrupling n halves the standard error and doubles z.
	small, err := calc.OneSampleZ(5.5, 5.0, 2.0, 4)
	if err != nil {
		t.Fatalf("n=4: %v", err)
	}
	large, err := calc.OneSampleZ(5.5, 5.0, 2.0, 16)
	if err != nil {
		t.Fatalf("n=16: %v", err)
	}
	aeq(t, large.Statistic, 2*small.Statistic, 1e-12, "z scaling")
}

func TestOneSampleZNegativeStatisticSameTail(t *testing.T) {
	calc := newTestCalculator()

	above, err := calc.OneSampleZ(5.5, 5.0, 1.0, 9)
	if err != nil {
		t.Fatalf("above: %v", err)
	}
	below, err := calc.OneSampleZ(4.5, 5.0, 1.0, 9)
	if err != nil {
		t.Fatalf("below: %v", err)
	}

	aeq(t, below.Statistic, -above.Statistic, 1e-12, "sign")
	// The survival value is taken at |z|, so the tails match.
	aeq(t, below.PValue, above.PValue, 1e-12, "p symmetry")
}

func TestOneSampleZRejectsBadInput(t *testing.T) {
	calc := newTestCalculator()

	if _, err := calc.OneSampleZ(1, 0, 0, 10); !core.IsInvalidInputError(err) {
		t.Fatalf("expected invalid input for zero std, got %v", err)
	}
	if _, err := calc.OneSampleZ(1, 0, -1, 10); !core.IsInvalidInputError(err) {
		t.Fatalf("expected invalid input for negative std, got %v", err)
	}
	if _, err := calc.OneSampleZ(1, 0, 1, 0); !core.IsInvalidInputError(err) {
		t.Fatalf("expected invalid input for n=0, got %v", err)
	}
}

func TestTwoSampleZEqualMeans(t *testing.T) {
	calc := newTestCalculator()

	result, err := calc.TwoSampleZ(5, 5, 1, 1, 30, 30, 0)
	if err != nil {
		t.Fatalf("two-sample z: %v", err)
	}
	aeq(t, result.Statistic, 0, 1e-12, "statistic")
	aeq(t, result.PValue, 0.5, 1e-12, "one-tailed p")
	aeq(t, result.TwoTailedP(), 1, 1e-12, "two-tailed p")
}

func TestTwoSampleZHypothesizedDifference(t *testing.T) {
	calc := newTestCalculator()

	// The observed difference equals the hypothesized one, so z is zero.
	result, err := calc.TwoSampleZ(7, 5, 1.5, 2.5, 40, 50, 2)
	if err != nil {
		t.Fatalf("two-sample z: %v", err)
	}
	aeq(t, result.Statistic, 0, 1e-12, "statistic")
}

func TestTwoSampleZKnownValue(t *testing.T) {
	calc := newTestCalculator()

	// se = sqrt(1/4 + 1/4) = sqrt(0.5); z = 1.385929.../sqrt(0.5) = 1.959964
	result, err := calc.TwoSampleZ(1.385929, 0, 1, 1, 4, 4, 0)
	if err != nil {
		t.Fatalf("two-sample z: %v", err)
	}
	aeq(t, result.Statistic, 1.959964, 1e-5, "statistic")
	aeq(t, result.PValue, 0.025, 1e-5, "one-tailed p")
}

func TestTwoSampleZRejectsBadInput(t *testing.T) {
	calc := newTestCalculator()

	if _, err := calc.TwoSampleZ(1, 2, 0, 1, 5, 5, 0); !core.IsInvalidInputError(err) {
		t.Fatalf("expected invalid input for zero std1, got %v", err)
	}
	if _, err := calc.TwoSampleZ(1, 2, 1, 1, 5, 0, 0); !core.IsInvalidInputError(err) {
		t.Fatalf("expected invalid input for n2=0, got %v", err)
	}
}
