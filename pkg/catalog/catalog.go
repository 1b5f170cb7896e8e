// Package catalog holds the industry-conditioned question trees and their
// scoring functions. The catalog is immutable after construction and safe
// for concurrent lookup.
package catalog

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/thecontlab/continuity-sim/pkg/domain/types"
)

// DefaultIndustry is the fallback key used when an industry has no entry
const DefaultIndustry = "default"

// ErrScenarioNotFound indicates a category missing from the catalog even
// after the default fallback. This is a programmer error: the default set
// must cover every category, which the catalog tests assert.
var ErrScenarioNotFound = goerr.New("scenario not found in catalog")

// industryOrder is the display order presented to the wizard
var industryOrder = []string{
	"Manufacturing & Industrial",
	"SaaS / Software",
	"Professional Services",
	"Retail / E-commerce",
	"Construction & Real Estate",
	"Logistics & Transportation",
	"Healthcare / MedTech",
	"Financial Services / Fintech",
	"Energy & Utilities",
	"Other",
}

// Catalog maps (industry, category) to a Scenario. Read-only after New.
type Catalog struct {
	industries map[string]map[types.RiskCategory]Scenario
}

// New builds the catalog: the generic fallback merged with per-industry
// overrides, so industries only restate the categories they customize.
func New() *Catalog {
	overrides := map[string]map[types.RiskCategory]Scenario{
		"Construction & Real Estate":   constructionScenarios(),
		"Skilled Trades":               skilledTradesScenarios(),
		"SaaS / Software":              softwareScenarios(),
		"Professional Services":        professionalServicesScenarios(),
		"Logistics & Transportation":   logisticsScenarios(),
		"Healthcare / MedTech":         healthcareScenarios(),
		"Retail / E-commerce":          retailScenarios(),
		"Manufacturing & Industrial":   manufacturingScenarios(),
		"Financial Services / Fintech": nil,
		"Energy & Utilities":           nil,
		"Other":                        nil,
	}

	industries := make(map[string]map[types.RiskCategory]Scenario, len(overrides)+1)
	industries[DefaultIndustry] = genericScenarios()
	for name, ov := range overrides {
		industries[name] = withOverrides(genericScenarios(), ov)
	}

	return &Catalog{industries: industries}
}

func withOverrides(base, overrides map[types.RiskCategory]Scenario) map[types.RiskCategory]Scenario {
	for category, scenario := range overrides {
		base[category] = scenario
	}
	return base
}

// Lookup resolves the scenario for an (industry, category) pair. Unknown
// industries fall back to the default set.
func (c *Catalog) Lookup(industry string, category types.RiskCategory) (*Scenario, error) {
	if err := category.Validate(); err != nil {
		return nil, goerr.Wrap(err, "cannot look up scenario")
	}

	set, ok := c.industries[industry]
	if !ok {
		set = c.industries[DefaultIndustry]
	}
	if scenario, ok := set[category]; ok {
		return &scenario, nil
	}

	// The industry set is always a superset of the default set, so a miss
	// here means the default set itself is incomplete.
	return nil, goerr.Wrap(ErrScenarioNotFound, "default scenario set is incomplete",
		goerr.V("industry", industry), goerr.V("category", category))
}

// Industries returns the known industries in display order
func (c *Catalog) Industries() []string {
	out := make([]string, len(industryOrder))
	copy(out, industryOrder)
	return out
}

// HasIndustry reports whether the industry has a dedicated scenario set
func (c *Catalog) HasIndustry(industry string) bool {
	_, ok := c.industries[industry]
	return ok
}
