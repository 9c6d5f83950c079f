package ports

import (
	"context"

	"copulagof/domain/copula"
)

// FamilyModel is the capability contract for one copula family. The
// density catalog itself is supplied externally; this core only consumes
// the two operations it needs.
type FamilyModel interface {
	// Family returns the catalog code this model implements
	Family() copula.Family

	// Fit estimates the family's parameters (1 or 2 values) from paired
	// pseudo-observations in [0,1]
	Fit(ctx context.Context, u, v []float64) ([]float64, error)

	// LogLikelihood evaluates the fitted model's log density at every
	// observation, returning one value per row
	LogLikelihood(ctx context.Context, u, v, theta []float64) ([]float64, error)
}

// FamilyRegistry resolves a family code to its model implementation.
// Dispatch happens through this single lookup rather than a conditional
// per call site.
type FamilyRegistry interface {
	Lookup(f copula.Family) (FamilyModel, bool)
}
