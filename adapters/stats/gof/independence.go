package gof

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"copulagof/domain/core"
)

// IndependenceResult is the outcome of the bivariate independence test
type IndependenceResult struct {
	Tau       float64 `json:"tau"`
	Statistic float64 `json:"statistic"`
	PValue    float64 `json:"p_value"`
}

// IndependenceTest runs the asymptotic independence test on paired
// pseudo-observations, a sibling utility to the pairwise model tests.
// The statistic scales Kendall's tau by its asymptotic standard
// deviation under independence, sqrt(9N(N-1) / (2(2N+5))), and the
// p-value is two-sided normal.
func IndependenceTest(u, v []float64) (IndependenceResult, error) {
	if len(u) != len(v) {
		return IndependenceResult{}, core.ErrLengthMismatch
	}
	if len(u) < 2 {
		return IndependenceResult{}, core.ErrInsufficientData
	}

	n := float64(len(u))
	tau := stat.Kendall(u, v, nil)
	statistic := math.Sqrt(9*n*(n-1)/(2*(2*n+5))) * math.Abs(tau)

	return IndependenceResult{
		Tau:       tau,
		Statistic: statistic,
		PValue:    2 * (1 - distuv.UnitNormal.CDF(statistic)),
	}, nil
}
