package preprocess

import (
	"math"

	"copulagof/domain/core"
	"copulagof/internal/errors"
)

// Clean validates and filters paired pseudo-observations before they
// enter the scoring core. Rows where either value is missing (NaN) are
// dropped; values outside [0,1] are rejected outright since they cannot
// be pseudo-observations. The core downstream assumes equal-length,
// in-range input and does not re-validate.
func Clean(u, v []float64) ([]float64, []float64, error) {
	if len(u) != len(v) {
		return nil, nil, errors.Wrap(core.ErrLengthMismatch, "cleaning paired observations")
	}

	cleanU := make([]float64, 0, len(u))
	cleanV := make([]float64, 0, len(v))

	for i := range u {
		if math.IsNaN(u[i]) || math.IsNaN(v[i]) {
			continue
		}
		if u[i] < 0 || u[i] > 1 || v[i] < 0 || v[i] > 1 {
			return nil, nil, errors.Wrapf(core.ErrOutOfRange, "row %d: (%v, %v)", i, u[i], v[i])
		}
		cleanU = append(cleanU, u[i])
		cleanV = append(cleanV, v[i])
	}

	if len(cleanU) < 2 {
		return nil, nil, errors.Wrap(core.ErrInsufficientData, "fewer than 2 complete rows after cleaning")
	}

	return cleanU, cleanV, nil
}
