package evaluator

import (
	"context"
	"math"

	"copulagof/domain/copula"
	"copulagof/domain/core"
	"copulagof/internal/errors"
	"copulagof/ports"
)

// Sentinel replaces non-finite log-likelihood values coming out of the
// external density evaluation, keeping downstream variance and kurtosis
// computations finite.
const Sentinel = 1e10

// ClampedEvaluator implements ports.ModelEvaluator over a family
// registry: fit the family's parameters, evaluate the per-observation
// log density, then clamp numerical failures at this boundary.
type ClampedEvaluator struct {
	registry ports.FamilyRegistry
}

// NewClampedEvaluator creates an evaluator over the given registry
func NewClampedEvaluator(registry ports.FamilyRegistry) *ClampedEvaluator {
	return &ClampedEvaluator{registry: registry}
}

// Evaluate resolves the family's model, fits it, and returns the clamped
// log-likelihood vector plus the family's parameter count.
func (e *ClampedEvaluator) Evaluate(ctx context.Context, u, v []float64, family copula.Family) ([]float64, int, error) {
	model, ok := e.registry.Lookup(family)
	if !ok {
		return nil, 0, errors.Wrapf(core.ErrFamilyNotRegistered, "family %s", family)
	}

	theta, err := model.Fit(ctx, u, v)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "fitting family %s", family)
	}

	loglik, err := model.LogLikelihood(ctx, u, v, theta)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "evaluating family %s", family)
	}
	if len(loglik) != len(u) {
		return nil, 0, errors.InvalidInput("log-likelihood length does not match observation count")
	}

	for i, ll := range loglik {
		if math.IsNaN(ll) || math.IsInf(ll, 0) {
			loglik[i] = Sentinel
		}
	}

	return loglik, family.ParamCount(), nil
}
