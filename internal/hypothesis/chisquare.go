package hypothesis

import (
	"fmt"

	"hypotest/domain/core"
	"hypotest/domain/stats"
)

// GoodnessOfFit computes the chi-squared goodness-of-fit statistic for
// observed counts against an expected distribution. A nil or empty expected
// slice means a uniform expectation at the observed mean. The expected
// distribution is rescaled so its sum matches the observed total before the
// statistic is computed, so any uniform rescaling of expected leaves the
// result unchanged. extraParams counts distribution parameters estimated
// from the data; it reduces the degrees of freedom below n-1.
//
// The p-value is the upper tail of the chi-squared distribution and is
// inherently one-sided.
func (c *Calculator) GoodnessOfFit(observed, expected []float64, extraParams int) (stats.TestResult, error) {
	if len(observed) == 0 {
		return stats.TestResult{}, core.NewSampleTooSmallError("observed", 0, 1)
	}

	sumObs := 0.0
	for _, o := range observed {
		if o < 0 {
			return stats.TestResult{}, fmt.Errorf("%w: observed count %g", core.ErrNegativeCellCount, o)
		}
		sumObs += o
	}
	if sumObs == 0 {
		return stats.TestResult{}, fmt.Errorf("%w: observed total is zero", core.ErrInvalidInput)
	}

	if len(expected) == 0 {
		// Uniform expectation: every category expects the observed mean.
		mean := sumObs / float64(len(observed))
		expected = make([]float64, len(observed))
		for i := range expected {
			expected[i] = mean
		}
	}
	if len(expected) != len(observed) {
		return stats.TestResult{}, core.NewLengthMismatchError("expected", len(expected), len(observed))
	}

	sumExp := 0.0
	for _, e := range expected {
		if e <= 0 {
			return stats.TestResult{}, fmt.Errorf("%w: got %g", core.ErrNonPositiveCount, e)
		}
		sumExp += e
	}

	dof := float64(len(observed) - 1 - extraParams)
	if dof <= 0 {
		return stats.TestResult{}, core.NewDegreesOfFreedomError(dof)
	}

	// Rescale expected to the observed total.
	scale := sumObs / sumExp
	statistic := 0.0
	for i, o := range observed {
		e := expected[i] * scale
		d := o - e
		statistic += d * d / e
	}

	return stats.TestResult{
		Test:      TestGoodnessOfFit,
		Statistic: statistic,
		DoF:       dof,
		PValue:    c.dist.ChiSquaredSurvival(statistic, dof),
	}, nil
}

// ContingencyTest computes the chi-squared test of independence (equivalently
// homogeneity) over an R x C contingency table. Expected cell counts are
// rowTotal*colTotal/grandTotal; a zero row or column total leaves them
// undefined and is rejected.
func (c *Calculator) ContingencyTest(table stats.ContingencyTable) (stats.TestResult, error) {
	if table.Rows() < 2 || table.Cols() < 2 {
		return stats.TestResult{}, fmt.Errorf("%w: need at least 2 rows and 2 columns, got %dx%d",
			core.ErrDegenerateTable, table.Rows(), table.Cols())
	}

	rowTotals := table.RowTotals()
	colTotals := table.ColTotals()
	grand := table.GrandTotal()

	for i, rt := range rowTotals {
		if rt == 0 {
			return stats.TestResult{}, fmt.Errorf("%w: row %q total is zero",
				core.ErrDegenerateTable, table.RowLabels()[i])
		}
	}
	for j, ct := range colTotals {
		if ct == 0 {
			return stats.TestResult{}, fmt.Errorf("%w: column %q total is zero",
				core.ErrDegenerateTable, table.ColLabels()[j])
		}
	}

	statistic := 0.0
	for i := 0; i < table.Rows(); i++ {
		for j := 0; j < table.Cols(); j++ {
			e := rowTotals[i] * colTotals[j] / grand
			d := table.Count(i, j) - e
			statistic += d * d / e
		}
	}

	dof := float64((table.Rows() - 1) * (table.Cols() - 1))
	return stats.TestResult{
		Test:      TestContingency,
		Statistic: statistic,
		DoF:       dof,
		PValue:    c.dist.ChiSquaredSurvival(statistic, dof),
	}, nil
}
