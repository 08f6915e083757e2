package gonumdist

import (
	"gonum.org/v1/gonum/stat/distuv"
)

// Oracle implements ports.DistributionOracle on top of gonum's distuv
// distributions. It is stateless and safe for concurrent use.
type Oracle struct{}

// NewOracle creates a new gonum-backed distribution oracle.
func NewOracle() Oracle {
	return Oracle{}
}

// ChiSquaredSurvival returns the upper tail of the chi-squared distribution.
func (Oracle) ChiSquaredSurvival(x, dof float64) float64 {
	return distuv.ChiSquared{K: dof}.Survival(x)
}

// NormalSurvival returns the upper tail of the standard normal distribution.
func (Oracle) NormalSurvival(z float64) float64 {
	return distuv.UnitNormal.Survival(z)
}

// StudentsTSurvival returns the upper tail of Student's t distribution.
func (Oracle) StudentsTSurvival(t, dof float64) float64 {
	return distuv.StudentsT{Mu: 0, Sigma: 1, Nu: dof}.Survival(t)
}

// NormalCDF returns the standard normal cumulative probability.
func (Oracle) NormalCDF(z float64) float64 {
	return distuv.UnitNormal.CDF(z)
}

// StudentsTCDF returns the cumulative probability of Student's t.
func (Oracle) StudentsTCDF(t, dof float64) float64 {
	return distuv.StudentsT{Mu: 0, Sigma: 1, Nu: dof}.CDF(t)
}
