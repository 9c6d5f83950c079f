package gof

import (
	"gonum.org/v1/gonum/stat/distuv"

	domain "copulagof/domain/gof"
)

// ClarkeTest is the sign-test alternative to Vuong: a two-sided exact
// binomial test on the count of observations whose corrected
// log-likelihood difference favors the first model.
type ClarkeTest struct{}

// NewClarkeTest creates the Clarke pairwise test
func NewClarkeTest() *ClarkeTest {
	return &ClarkeTest{}
}

// Name returns the test name
func (t *ClarkeTest) Name() string {
	return "clarke"
}

// Kind returns the test kind
func (t *ClarkeTest) Kind() domain.TestKind {
	return domain.KindClarke
}

// Compare runs the Clarke test on one comparison. The statistic
// reported is B, the number of strictly positive corrected differences;
// under the null each observation favors either model with probability
// one half.
func (t *ClarkeTest) Compare(c Comparison) domain.TestResult {
	n := len(c.First)
	m, raw := correctedDifferences(c)

	b := 0
	for _, d := range m {
		if d > 0 {
			b++
		}
	}

	binom := distuv.Binomial{N: float64(n), P: 0.5}

	result := domain.TestResult{
		Kind:      domain.KindClarke,
		Decision:  domain.DecisionNone,
		Statistic: float64(b),
		Kurtosis:  Kurtosis(raw),
	}

	if float64(b) >= float64(n)/2 {
		result.PValue = 2 * (1 - binom.CDF(float64(b-1)))
		if result.PValue <= c.Alpha {
			result.Decision = domain.DecisionFirst
		}
	} else {
		result.PValue = 2 * binom.CDF(float64(b))
		if result.PValue <= c.Alpha {
			result.Decision = domain.DecisionSecond
		}
	}

	return result
}
