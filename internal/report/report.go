// Package report wraps test results in artifact envelopes and renders the
// human-readable interpretation printed by the CLI.
package report

import (
	"fmt"

	"hypotest/domain/core"
	"hypotest/domain/stats"
)

// Report pairs a test result with the caller's tailing choice and the
// significance level used for interpretation.
type Report struct {
	Result stats.TestResult `json:"result"`
	Tail   stats.Tail       `json:"tail"`
	Alpha  float64          `json:"alpha"`
}

// P returns the p-value under the report's tailing.
func (r Report) P() float64 {
	return r.Result.PForTail(r.Tail)
}

// Significant reports whether the null hypothesis is rejected at alpha.
func (r Report) Significant() bool {
	return r.P() < r.Alpha
}

// Interpretation renders a one-line reading of the result.
func (r Report) Interpretation() string {
	verdict := "fail to reject the null hypothesis"
	if r.Significant() {
		verdict = "reject the null hypothesis"
	}
	if r.Result.DoF > 0 {
		return fmt.Sprintf("%s: statistic=%.4f, dof=%.4g, %s p=%.4g; %s at alpha=%.3g",
			r.Result.Test, r.Result.Statistic, r.Result.DoF, r.Tail, r.P(), verdict, r.Alpha)
	}
	return fmt.Sprintf("%s: statistic=%.4f, %s p=%.4g; %s at alpha=%.3g",
		r.Result.Test, r.Result.Statistic, r.Tail, r.P(), verdict, r.Alpha)
}

// Artifact wraps the report in the standard artifact envelope.
func (r Report) Artifact() core.Artifact {
	return core.Artifact{
		ID:   core.NewID(),
		Kind: core.ArtifactTestResult,
		Payload: map[string]interface{}{
			"test":               r.Result.Test,
			"statistic":          r.Result.Statistic,
			"degrees_of_freedom": r.Result.DoF,
			"p_value":            r.P(),
			"tail":               string(r.Tail),
			"alpha":              r.Alpha,
			"significant":        r.Significant(),
		},
		CreatedAt: core.Now(),
	}
}

// New builds a report from a result, tail and alpha.
func New(result stats.TestResult, tail stats.Tail, alpha float64) Report {
	return Report{Result: result, Tail: tail, Alpha: alpha}
}
