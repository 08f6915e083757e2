package report

import (
	"strings"
	"testing"

	"hypotest/domain/core"
	"hypotest/domain/stats"
)

func TestSignificance(t *testing.T) {
	result := stats.TestResult{Test: "one-sample z", Statistic: 2.1, PValue: 0.0179}

	oneTailed := New(result, stats.OneTailed, 0.05)
	if !oneTailed.Significant() {
		t.Fatalf("one-tailed p=%v should be significant at 0.05", oneTailed.P())
	}

	// Doubling pushes the two-tailed p past a stricter alpha.
	twoTailed := New(result, stats.TwoTailed, 0.01)
	if twoTailed.Significant() {
		t.Fatalf("two-tailed p=%v should not be significant at 0.01", twoTailed.P())
	}
	if twoTailed.P() != 0.0358 {
		t.Fatalf("two-tailed p: got %v, want 0.0358", twoTailed.P())
	}
}

func TestInterpretation(t *testing.T) {
	r := New(stats.TestResult{Test: "paired t", Statistic: 3.2, DoF: 9, PValue: 0.005}, stats.TwoTailed, 0.05)
	text := r.Interpretation()

	if !strings.Contains(text, "paired t") {
		t.Fatalf("missing test name: %q", text)
	}
	if !strings.Contains(text, "reject the null hypothesis") {
		t.Fatalf("missing verdict: %q", text)
	}
	if !strings.Contains(text, "dof=9") {
		t.Fatalf("missing dof: %q", text)
	}

	// Z results carry no degrees of freedom and must not print one.
	z := New(stats.TestResult{Test: "one-sample z", Statistic: 0.3, PValue: 0.38}, stats.TwoTailed, 0.05)
	ztext := z.Interpretation()
	if strings.Contains(ztext, "dof") {
		t.Fatalf("z interpretation should omit dof: %q", ztext)
	}
	if !strings.Contains(ztext, "fail to reject") {
		t.Fatalf("missing verdict: %q", ztext)
	}
}

func TestArtifactEnvelope(t *testing.T) {
	r := New(stats.TestResult{Test: "one-sample t", Statistic: 2.0, DoF: 14, PValue: 0.03}, stats.OneTailed, 0.05)
	artifact := r.Artifact()

	if artifact.Kind != core.ArtifactTestResult {
		t.Fatalf("kind: got %v", artifact.Kind)
	}
	if artifact.ID.IsEmpty() {
		t.Fatal("artifact ID must be set")
	}
	if artifact.CreatedAt.IsZero() {
		t.Fatal("artifact timestamp must be set")
	}

	payload, ok := artifact.Payload.(map[string]interface{})
	if !ok {
		t.Fatalf("payload type: %T", artifact.Payload)
	}
	if payload["test"] != "one-sample t" || payload["significant"] != true {
		t.Fatalf("payload: %+v", payload)
	}
}
