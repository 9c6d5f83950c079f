package gof

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	domain "copulagof/domain/gof"
)

// VuongTest is the asymptotic normal test for non-nested model
// comparison, based on the mean and variance of the per-observation
// log-likelihood differences.
type VuongTest struct{}

// NewVuongTest creates the Vuong pairwise test
func NewVuongTest() *VuongTest {
	return &VuongTest{}
}

// Name returns the test name
func (t *VuongTest) Name() string {
	return "vuong"
}

// Kind returns the test kind
func (t *VuongTest) Kind() domain.TestKind {
	return domain.KindVuong
}

// Compare runs the Vuong test on one comparison.
//
// The statistic is ν = sqrt(N)·mean(m) / sqrt(((N-1)/N)·sampleVar(m)).
// The (N-1)/N factor converts the sample variance to its population
// form before normalizing. When the variance of
// the differences is zero (identical log-likelihoods) the statistic is
// undefined: the result records NaN and no decision rather than failing
// the whole run.
func (t *VuongTest) Compare(c Comparison) domain.TestResult {
	n := float64(len(c.First))
	m, raw := correctedDifferences(c)

	result := domain.TestResult{
		Kind:     domain.KindVuong,
		Decision: domain.DecisionNone,
		Kurtosis: Kurtosis(raw),
	}

	mean, variance := meanAndSampleVariance(m)
	if variance == 0 {
		result.Statistic = math.NaN()
		result.PValue = math.NaN()
		return result
	}

	nu := math.Sqrt(n) * mean / math.Sqrt((n-1)/n*variance)
	z := distuv.UnitNormal.Quantile(1 - c.Alpha/2)

	// Both boundary branches evaluated in sequence; at ν == z the closed
	// ">=" fires and the second branch cannot (z > 0 for any valid alpha).
	if nu >= z {
		result.Decision = domain.DecisionFirst
	}
	if nu <= -z {
		result.Decision = domain.DecisionSecond
	}

	result.Statistic = nu
	result.PValue = 2 * (1 - distuv.UnitNormal.CDF(math.Abs(nu)))
	return result
}
