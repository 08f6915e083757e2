package ports

// DistributionOracle supplies upper-tail (survival) and cumulative
// probabilities for the reference distributions used by the calculators.
// Implementations wrap a statistics library; the calculators treat them as a
// black-box numeric oracle and never reimplement the distributions.
type DistributionOracle interface {
	// ChiSquaredSurvival returns P(X > x) for a chi-squared distribution
	// with dof degrees of freedom.
	ChiSquaredSurvival(x, dof float64) float64

	// NormalSurvival returns P(Z > z) for the standard normal distribution.
	NormalSurvival(z float64) float64

	// StudentsTSurvival returns P(T > t) for Student's t distribution with
	// dof degrees of freedom. dof need not be an integer.
	StudentsTSurvival(t, dof float64) float64

	// NormalCDF returns P(Z <= z) for the standard normal distribution.
	NormalCDF(z float64) float64

	// StudentsTCDF returns P(T <= t) for Student's t with dof degrees of
	// freedom.
	StudentsTCDF(t, dof float64) float64
}
