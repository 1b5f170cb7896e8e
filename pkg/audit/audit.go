// Package audit implements the deterministic risk-scoring engine: category
// scoring, revenue-at-risk aggregation, narrative selection, and report
// assembly. Every method is a pure function of its inputs plus the engine's
// read-only policy, so an Engine is safe for concurrent use.
package audit

import (
	"github.com/thecontlab/continuity-sim/pkg/catalog"
	"github.com/thecontlab/continuity-sim/pkg/domain/model/config"
)

type Engine struct {
	catalog *catalog.Catalog
	policy  *config.Policy
}

// New creates an Engine. A nil policy selects the default policy constants.
func New(cat *catalog.Catalog, policy *config.Policy) *Engine {
	if cat == nil {
		cat = catalog.New()
	}
	if policy == nil {
		policy = config.DefaultPolicy()
	}
	return &Engine{
		catalog: cat,
		policy:  policy,
	}
}

// Catalog returns the scenario catalog the engine scores against
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}
