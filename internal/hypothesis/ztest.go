package hypothesis

import (
	"fmt"
	"math"

	"hypotest/domain/core"
	"hypotest/domain/stats"
)

// OneSampleZ tests a sample mean against a population mean with known
// population standard deviation. PValue is the one-tailed survival value at
// |z|; callers double it for a two-tailed report.
func (c *Calculator) OneSampleZ(sampleMean, popMean, popStd float64, n int) (stats.TestResult, error) {
	if popStd <= 0 {
		return stats.TestResult{}, fmt.Errorf("%w: population std %g", core.ErrNonPositiveScale, popStd)
	}
	if n < 1 {
		return stats.TestResult{}, core.NewSampleTooSmallError("sample", n, 1)
	}

	z := (sampleMean - popMean) / (popStd / math.Sqrt(float64(n)))
	return stats.TestResult{
		Test:      TestOneSampleZ,
		Statistic: z,
		PValue:    c.dist.NormalSurvival(math.Abs(z)),
	}, nil
}

// TwoSampleZ tests the difference of two means against a hypothesized
// difference, with known population standard deviations.
func (c *Calculator) TwoSampleZ(mean1, mean2, std1, std2 float64, n1, n2 int, hypDiff float64) (stats.TestResult, error) {
	if std1 <= 0 {
		return stats.TestResult{}, fmt.Errorf("%w: std1 %g", core.ErrNonPositiveScale, std1)
	}
	if std2 <= 0 {
		return stats.TestResult{}, fmt.Errorf("%w: std2 %g", core.ErrNonPositiveScale, std2)
	}
	if n1 < 1 {
		return stats.TestResult{}, core.NewSampleTooSmallError("sample 1", n1, 1)
	}
	if n2 < 1 {
		return stats.TestResult{}, core.NewSampleTooSmallError("sample 2", n2, 1)
	}

	se := math.Sqrt(std1*std1/float64(n1) + std2*std2/float64(n2))
	z := ((mean1 - mean2) - hypDiff) / se
	return stats.TestResult{
		Test:      TestTwoSampleZ,
		Statistic: z,
		PValue:    c.dist.NormalSurvival(math.Abs(z)),
	}, nil
}
