package gof

import (
	"math"

	domain "copulagof/domain/gof"
)

// Comparison carries the aligned inputs for one pairwise test: two
// per-observation log-likelihood vectors of equal length, their models'
// parameter counts, and the run configuration.
type Comparison struct {
	First        []float64
	Second       []float64
	FirstParams  int
	SecondParams int
	Correction   domain.Correction
	Alpha        float64
}

// PairwiseTest compares two fitted models through their log-likelihood
// vectors and produces a categorical decision plus a numeric statistic.
type PairwiseTest interface {
	Name() string
	Kind() domain.TestKind
	Compare(c Comparison) domain.TestResult
}

// correctedDifferences builds the per-observation difference vector
// m_i = L1_i - L2_i adjusted by the configured parameter-count penalty.
// The uncorrected differences are returned as well for the kurtosis
// diagnostic, which is always computed on the raw differences.
func correctedDifferences(c Comparison) (corrected, raw []float64) {
	n := float64(len(c.First))
	penalty := 0.0
	switch c.Correction {
	case domain.CorrectionAkaike:
		penalty = float64(c.FirstParams-c.SecondParams) / n
	case domain.CorrectionSchwarz:
		penalty = float64(c.FirstParams-c.SecondParams) * math.Log(n) / (2 * n)
	}

	corrected = make([]float64, len(c.First))
	raw = make([]float64, len(c.First))
	for i := range c.First {
		d := c.First[i] - c.Second[i]
		raw[i] = d
		corrected[i] = d - penalty
	}
	return corrected, raw
}
