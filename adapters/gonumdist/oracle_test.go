package gonumdist

import (
	"math"
	"testing"
)

func aeq(t *testing.T, got, want, tol float64, what string) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Fatalf("%s: got %v, want %v (tol %v)", what, got, want, tol)
	}
}

func TestChiSquaredSurvivalClosedForm(t *testing.T) {
	oracle := NewOracle()

	// With 2 degrees of freedom the survival function is exp(-x/2).
	for _, x := range []float64{0.1, 0.4828, 1, 2.5, 7} {
		aeq(t, oracle.ChiSquaredSurvival(x, 2), math.Exp(-x/2), 1e-12, "chi2 dof=2 survival")
	}
}

func TestNormalSurvivalKnownQuantiles(t *testing.T) {
	oracle := NewOracle()

	aeq(t, oracle.NormalSurvival(0), 0.5, 1e-12, "survival at 0")
	aeq(t, oracle.NormalSurvival(1.644854), 0.05, 1e-6, "survival at 1.644854")
	aeq(t, oracle.NormalSurvival(1.959964), 0.025, 1e-6, "survival at 1.959964")
	aeq(t, oracle.NormalSurvival(2.575829), 0.005, 1e-6, "survival at 2.575829")

	// CDF and survival partition the line.
	for _, z := range []float64{-2, -0.5, 0, 0.7, 3} {
		aeq(t, oracle.NormalCDF(z)+oracle.NormalSurvival(z), 1, 1e-12, "cdf+survival")
	}
}

func TestStudentsTSurvivalCauchyCase(t *testing.T) {
	oracle := NewOracle()

	// dof 1 is the Cauchy distribution: P(T > t) = 1/2 - atan(t)/pi.
	for _, x := range []float64{0, 0.5, 1, 2} {
		want := 0.5 - math.Atan(x)/math.Pi
		aeq(t, oracle.StudentsTSurvival(x, 1), want, 1e-9, "t dof=1 survival")
	}
}

func TestStudentsTApproachesNormal(t *testing.T) {
	oracle := NewOracle()

	// For large dof the t distribution converges to the standard normal.
	got := oracle.StudentsTSurvival(1.959964, 1e6)
	aeq(t, got, oracle.NormalSurvival(1.959964), 1e-5, "t vs normal tail")
}

func TestStudentsTCDFSymmetry(t *testing.T) {
	oracle := NewOracle()

	for _, dof := range []float64{1, 4, 5.5846, 30} {
		aeq(t, oracle.StudentsTCDF(0, dof), 0.5, 1e-12, "cdf at 0")
		aeq(t, oracle.StudentsTCDF(-1.3, dof), oracle.StudentsTSurvival(1.3, dof), 1e-9, "symmetry")
	}
}
