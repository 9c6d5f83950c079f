package evaluator

import (
	"copulagof/domain/copula"
	"copulagof/ports"
)

// MapRegistry is the standard FamilyRegistry: a fixed lookup table from
// family code to model implementation, built once at wiring time.
type MapRegistry struct {
	models map[copula.Family]ports.FamilyModel
}

// NewMapRegistry builds a registry from the given models. A later model
// with the same family code replaces an earlier one.
func NewMapRegistry(models ...ports.FamilyModel) *MapRegistry {
	table := make(map[copula.Family]ports.FamilyModel, len(models))
	for _, m := range models {
		table[m.Family()] = m
	}
	return &MapRegistry{models: table}
}

// Lookup resolves a family code to its model
func (r *MapRegistry) Lookup(f copula.Family) (ports.FamilyModel, bool) {
	m, ok := r.models[f]
	return m, ok
}

// Families returns the codes with a registered model
func (r *MapRegistry) Families() []copula.Family {
	out := make([]copula.Family, 0, len(r.models))
	for f := range r.models {
		out = append(out, f)
	}
	return out
}
