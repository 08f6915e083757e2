package stats

import (
	"fmt"
	"math"

	"hypotest/domain/core"

	descriptive "github.com/montanaflynn/stats"
)

// Sample is an ordered sequence of real-valued observations. It is immutable
// after construction; derived moments use the n-1 (sample) denominator.
type Sample struct {
	values []float64
}

// NewSample copies values into a Sample. At least one observation is required.
func NewSample(values []float64) (Sample, error) {
	if len(values) == 0 {
		return Sample{}, core.NewSampleTooSmallError("sample", 0, 1)
	}
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Sample{}, fmt.Errorf("%w: non-finite observation %v", core.ErrInvalidInput, v)
		}
	}
	vs := make([]float64, len(values))
	copy(vs, values)
	return Sample{values: vs}, nil
}

// MustSample is a convenience constructor for literals in tests and demos.
// It panics on invalid input.
func MustSample(values ...float64) Sample {
	s, err := NewSample(values)
	if err != nil {
		panic(err)
	}
	return s
}

// N returns the number of observations.
func (s Sample) N() int {
	return len(s.values)
}

// Values returns a copy of the underlying observations.
func (s Sample) Values() []float64 {
	vs := make([]float64, len(s.values))
	copy(vs, s.values)
	return vs
}

// Mean returns the arithmetic mean.
func (s Sample) Mean() float64 {
	m, _ := descriptive.Mean(s.values)
	return m
}

// Variance returns the sample variance (n-1 denominator). Zero for n < 2.
func (s Sample) Variance() float64 {
	if len(s.values) < 2 {
		return 0
	}
	v, _ := descriptive.SampleVariance(s.values)
	return v
}

// StdDev returns the sample standard deviation (n-1 denominator).
func (s Sample) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// Summary bundles the descriptive statistics reported alongside test results.
type Summary struct {
	N      int     `json:"n"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Median float64 `json:"median"`
}

// Describe computes the descriptive summary of the sample.
func (s Sample) Describe() Summary {
	min, _ := descriptive.Min(s.values)
	max, _ := descriptive.Max(s.values)
	median, _ := descriptive.Median(s.values)
	return Summary{
		N:      s.N(),
		Mean:   s.Mean(),
		StdDev: s.StdDev(),
		Min:    min,
		Max:    max,
		Median: median,
	}
}
