package hypothesis

import (
	"fmt"
	"math"

	"hypotest/domain/core"
	"hypotest/domain/stats"
)

// OneSampleT tests a sample mean against a hypothesized mean using the
// sample's own variance (n-1 denominator). A constant sample has zero
// variance and leaves the statistic undefined.
func (c *Calculator) OneSampleT(sample stats.Sample, hypMean float64) (stats.TestResult, error) {
	return c.oneSampleT(TestOneSampleT, sample, hypMean)
}

func (c *Calculator) oneSampleT(name string, sample stats.Sample, hypMean float64) (stats.TestResult, error) {
	n := sample.N()
	if n < 2 {
		return stats.TestResult{}, core.NewSampleTooSmallError("sample", n, 2)
	}
	s := sample.StdDev()
	if s == 0 {
		return stats.TestResult{}, fmt.Errorf("%w: sample is constant", core.ErrZeroVariance)
	}

	t := (sample.Mean() - hypMean) / (s / math.Sqrt(float64(n)))
	dof := float64(n - 1)
	return stats.TestResult{
		Test:      name,
		Statistic: t,
		DoF:       dof,
		PValue:    c.dist.StudentsTSurvival(math.Abs(t), dof),
	}, nil
}

// TwoSampleTWelch tests the difference of two sample means without assuming
// equal population variances. Degrees of freedom follow the
// Welch-Satterthwaite approximation and are generally non-integer.
func (c *Calculator) TwoSampleTWelch(s1, s2 stats.Sample) (stats.TestResult, error) {
	n1, n2 := s1.N(), s2.N()
	if n1 < 2 {
		return stats.TestResult{}, core.NewSampleTooSmallError("sample 1", n1, 2)
	}
	if n2 < 2 {
		return stats.TestResult{}, core.NewSampleTooSmallError("sample 2", n2, 2)
	}

	v1 := s1.Variance() / float64(n1)
	v2 := s2.Variance() / float64(n2)
	se := math.Sqrt(v1 + v2)
	if se == 0 {
		return stats.TestResult{}, fmt.Errorf("%w: both samples are constant", core.ErrZeroVariance)
	}

	t := (s1.Mean() - s2.Mean()) / se
	dof := (v1 + v2) * (v1 + v2) / (v1*v1/float64(n1-1) + v2*v2/float64(n2-1))
	return stats.TestResult{
		Test:      TestWelchT,
		Statistic: t,
		DoF:       dof,
		PValue:    c.dist.StudentsTSurvival(math.Abs(t), dof),
	}, nil
}

// TwoSampleTPooled tests the difference of two sample means assuming equal
// population variances, pooling the two sample variances.
func (c *Calculator) TwoSampleTPooled(s1, s2 stats.Sample) (stats.TestResult, error) {
	n1, n2 := s1.N(), s2.N()
	if n1 < 2 {
		return stats.TestResult{}, core.NewSampleTooSmallError("sample 1", n1, 2)
	}
	if n2 < 2 {
		return stats.TestResult{}, core.NewSampleTooSmallError("sample 2", n2, 2)
	}

	dof := float64(n1 + n2 - 2)
	pooled := (float64(n1-1)*s1.Variance() + float64(n2-1)*s2.Variance()) / dof
	if pooled == 0 {
		return stats.TestResult{}, fmt.Errorf("%w: both samples are constant", core.ErrZeroVariance)
	}

	se := math.Sqrt(pooled) * math.Sqrt(1/float64(n1)+1/float64(n2))
	t := (s1.Mean() - s2.Mean()) / se
	return stats.TestResult{
		Test:      TestPooledT,
		Statistic: t,
		DoF:       dof,
		PValue:    c.dist.StudentsTSurvival(math.Abs(t), dof),
	}, nil
}

// PairedT tests the mean of per-index differences between two equal-length
// samples against a hypothesized difference, delegating to the one-sample
// path over the deltas.
func (c *Calculator) PairedT(s1, s2 stats.Sample, hypDiff float64) (stats.TestResult, error) {
	if s1.N() != s2.N() {
		return stats.TestResult{}, core.NewLengthMismatchError("sample 2", s2.N(), s1.N())
	}

	v1, v2 := s1.Values(), s2.Values()
	deltas := make([]float64, len(v1))
	for i := range v1 {
		deltas[i] = v1[i] - v2[i]
	}
	ds, err := stats.NewSample(deltas)
	if err != nil {
		return stats.TestResult{}, err
	}
	return c.oneSampleT(TestPairedT, ds, hypDiff)
}
