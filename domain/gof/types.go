package gof

import (
	"fmt"
	"math"
	"strings"

	"copulagof/domain/copula"
)

// Decision is the categorical outcome of one pairwise model comparison
type Decision int

const (
	// DecisionNone means the test could not distinguish the two models
	DecisionNone Decision = iota
	// DecisionFirst means the test favors the first (reference) model
	DecisionFirst
	// DecisionSecond means the test favors the second (candidate) model
	DecisionSecond
	// DecisionAbsent marks a self-comparison placeholder; it is excluded
	// from scoring entirely, not counted as a tie
	DecisionAbsent
)

// String returns a short label for the decision
func (d Decision) String() string {
	switch d {
	case DecisionFirst:
		return "first"
	case DecisionSecond:
		return "second"
	case DecisionAbsent:
		return "absent"
	default:
		return "none"
	}
}

// Correction selects the parameter-count penalty applied to the
// per-observation log-likelihood differences before testing
type Correction int

const (
	CorrectionNone Correction = iota
	CorrectionAkaike
	CorrectionSchwarz
)

// String returns the correction name
func (c Correction) String() string {
	switch c {
	case CorrectionAkaike:
		return "akaike"
	case CorrectionSchwarz:
		return "schwarz"
	default:
		return "none"
	}
}

// ParseCorrection converts a correction name into its enum value
func ParseCorrection(s string) (Correction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return CorrectionNone, nil
	case "akaike", "aic":
		return CorrectionAkaike, nil
	case "schwarz", "bic":
		return CorrectionSchwarz, nil
	default:
		return CorrectionNone, fmt.Errorf("unknown correction %q", s)
	}
}

// TestKind distinguishes the two pairwise tests
type TestKind int

const (
	KindVuong TestKind = iota
	KindClarke
)

// String returns the test name
func (k TestKind) String() string {
	if k == KindClarke {
		return "clarke"
	}
	return "vuong"
}

// TestResult is the immutable outcome of one pairwise comparison.
// Statistic holds the Vuong ν or the Clarke positive-difference count B;
// Kurtosis is the diagnostic computed on the uncorrected differences.
// A self-comparison produces the absent sentinel with NaN numeric fields.
type TestResult struct {
	Candidate copula.Family `json:"candidate"`
	Kind      TestKind      `json:"kind"`
	Decision  Decision      `json:"decision"`
	Statistic float64       `json:"statistic"`
	PValue    float64       `json:"p_value"`
	Kurtosis  float64       `json:"kurtosis"`
}

// AbsentResult builds the self-comparison placeholder for a candidate
func AbsentResult(candidate copula.Family, kind TestKind) TestResult {
	return TestResult{
		Candidate: candidate,
		Kind:      kind,
		Decision:  DecisionAbsent,
		Statistic: math.NaN(),
		PValue:    math.NaN(),
		Kurtosis:  math.NaN(),
	}
}

// IsAbsent reports whether the result is a self-comparison placeholder
func (r TestResult) IsAbsent() bool {
	return r.Decision == DecisionAbsent
}

// DisplayStatistic returns the statistic rounded to 3 decimals for
// presentation; the full-precision value stays in Statistic.
func (r TestResult) DisplayStatistic() float64 {
	if math.IsNaN(r.Statistic) {
		return r.Statistic
	}
	return math.Round(r.Statistic*1000) / 1000
}

// ScoreMatrix is the sole output of a scoring run: one signed score per
// (test kind, family) cell, columns in the caller's family order. Cells
// are allocated up front and written by index, one column per reference
// family.
type ScoreMatrix struct {
	Families []copula.Family `json:"families"`
	Vuong    []int           `json:"vuong"`
	Clarke   []int           `json:"clarke"`
}

// NewScoreMatrix allocates a zeroed matrix for the given family set
func NewScoreMatrix(families []copula.Family) *ScoreMatrix {
	cols := make([]copula.Family, len(families))
	copy(cols, families)
	return &ScoreMatrix{
		Families: cols,
		Vuong:    make([]int, len(families)),
		Clarke:   make([]int, len(families)),
	}
}

// SetColumn writes both scores for the reference family at column i
func (m *ScoreMatrix) SetColumn(i, vuong, clarke int) {
	m.Vuong[i] = vuong
	m.Clarke[i] = clarke
}

// Column returns the scores for the family at column i
func (m *ScoreMatrix) Column(i int) (vuong, clarke int) {
	return m.Vuong[i], m.Clarke[i]
}
