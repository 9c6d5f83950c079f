package ports

import (
	"context"

	"copulagof/domain/copula"
)

// ModelEvaluator produces the per-observation log-likelihood vector for
// one (dataset, family) pair, along with the family's parameter count.
// Implementations own the fit step and must clamp non-finite values to a
// large finite sentinel so downstream variance and kurtosis computations
// stay finite.
type ModelEvaluator interface {
	Evaluate(ctx context.Context, u, v []float64, family copula.Family) (loglik []float64, paramCount int, err error)
}
