package testkit

import (
	"context"
	"math/rand"

	"copulagof/adapters/evaluator"
	"copulagof/domain/copula"
	"copulagof/internal/errors"
	"copulagof/ports"
)

// FixedModel is a FamilyModel stub returning a preset log-likelihood
// vector, useful when a test needs exact control over the comparison
// inputs.
type FixedModel struct {
	family copula.Family
	theta  []float64
	loglik []float64
}

// NewFixedModel creates a stub model for the given family
func NewFixedModel(family copula.Family, loglik []float64) *FixedModel {
	theta := make([]float64, family.ParamCount())
	for i := range theta {
		theta[i] = 0.5
	}
	return &FixedModel{family: family, theta: theta, loglik: loglik}
}

// Family returns the stub's family code
func (m *FixedModel) Family() copula.Family {
	return m.family
}

// Fit returns the preset parameter vector
func (m *FixedModel) Fit(ctx context.Context, u, v []float64) ([]float64, error) {
	out := make([]float64, len(m.theta))
	copy(out, m.theta)
	return out, nil
}

// LogLikelihood returns the preset vector; it must match the data length
func (m *FixedModel) LogLikelihood(ctx context.Context, u, v, theta []float64) ([]float64, error) {
	if len(m.loglik) != len(u) {
		return nil, errors.InvalidInput("fixed log-likelihood length does not match data")
	}
	out := make([]float64, len(m.loglik))
	copy(out, m.loglik)
	return out, nil
}

// SyntheticModel is a FamilyModel stub producing deterministic
// pseudo-random log-likelihoods seeded by the family code, with a
// quality offset so that some families systematically outscore others.
type SyntheticModel struct {
	family  copula.Family
	quality float64
	seed    int64
}

// NewSyntheticModel creates a deterministic synthetic model
func NewSyntheticModel(family copula.Family, quality float64, seed int64) *SyntheticModel {
	return &SyntheticModel{family: family, quality: quality, seed: seed}
}

// Family returns the stub's family code
func (m *SyntheticModel) Family() copula.Family {
	return m.family
}

// Fit returns a deterministic parameter vector
func (m *SyntheticModel) Fit(ctx context.Context, u, v []float64) ([]float64, error) {
	theta := make([]float64, m.family.ParamCount())
	for i := range theta {
		theta[i] = 0.5 + float64(i)
	}
	return theta, nil
}

// LogLikelihood generates n deterministic values around the model's
// quality offset
func (m *SyntheticModel) LogLikelihood(ctx context.Context, u, v, theta []float64) ([]float64, error) {
	rng := rand.New(rand.NewSource(m.seed + int64(m.family)*7919))
	out := make([]float64, len(u))
	for i := range out {
		out[i] = m.quality + rng.NormFloat64()
	}
	return out, nil
}

// NewSyntheticRegistry builds a registry of synthetic models for the
// given families. Quality decreases with position, so earlier families
// fit "better" and the expected score ordering is known.
func NewSyntheticRegistry(families []copula.Family, seed int64) *evaluator.MapRegistry {
	models := make([]ports.FamilyModel, len(families))
	for i, f := range families {
		quality := 1.0 - 0.25*float64(i)
		models[i] = NewSyntheticModel(f, quality, seed)
	}
	return evaluator.NewMapRegistry(models...)
}

// GeneratePairs produces n deterministic pseudo-observation pairs in
// [0,1]
func GeneratePairs(n int, seed int64) (u, v []float64) {
	rng := rand.New(rand.NewSource(seed))
	u = make([]float64, n)
	v = make([]float64, n)
	for i := 0; i < n; i++ {
		u[i] = rng.Float64()
		v[i] = rng.Float64()
	}
	return u, v
}
