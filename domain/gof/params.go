package gof

import (
	"fmt"

	"copulagof/domain/copula"
)

// DefaultAlpha is the significance level used when the caller does not
// supply one.
const DefaultAlpha = 0.05

// Params is the validated, immutable configuration for a scoring run.
// It is built once by NewParams and then only read; core functions never
// see unvalidated caller input.
type Params struct {
	families   []copula.Family
	correction Correction
	alpha      float64
}

// NewParams validates the caller's configuration and returns the
// parameter set the core consumes. When rotations is true, the rotated
// variants of each family are appended as a block after their base.
// An empty family set selects the full catalog.
func NewParams(families []copula.Family, correction Correction, alpha float64, rotations bool) (Params, error) {
	if alpha <= 0 || alpha >= 1 {
		return Params{}, fmt.Errorf("significance level must be in (0,1), got %v", alpha)
	}
	if correction < CorrectionNone || correction > CorrectionSchwarz {
		return Params{}, fmt.Errorf("unknown correction mode %d", int(correction))
	}

	if len(families) == 0 {
		families = copula.All()
	}
	for _, f := range families {
		if !f.IsValid() {
			return Params{}, fmt.Errorf("unknown family code %d", int(f))
		}
	}
	if rotations {
		families = copula.ExpandRotations(families)
	} else {
		families = dedupe(families)
	}

	owned := make([]copula.Family, len(families))
	copy(owned, families)

	return Params{
		families:   owned,
		correction: correction,
		alpha:      alpha,
	}, nil
}

// DefaultParams returns the default configuration: full catalog, no
// correction, alpha 0.05.
func DefaultParams() Params {
	p, err := NewParams(nil, CorrectionNone, DefaultAlpha, false)
	if err != nil {
		panic(err) // defaults are statically valid
	}
	return p
}

// Families returns a copy of the family set, in evaluation order
func (p Params) Families() []copula.Family {
	out := make([]copula.Family, len(p.families))
	copy(out, p.families)
	return out
}

// Correction returns the configured correction mode
func (p Params) Correction() Correction {
	return p.correction
}

// Alpha returns the configured significance level
func (p Params) Alpha() float64 {
	return p.alpha
}

func dedupe(set []copula.Family) []copula.Family {
	seen := make(map[copula.Family]bool, len(set))
	out := make([]copula.Family, 0, len(set))
	for _, f := range set {
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	return out
}
