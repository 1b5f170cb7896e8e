package types

import (
	"github.com/m-mizutani/goerr/v2"
)

// RiskCategory identifies one of the five continuity risk categories.
// The string values are wire-level identifiers shared with external
// consumers (wizard, persistence) and must not change.
type RiskCategory string

const (
	CategorySupplyChain         RiskCategory = "Supply Chain"
	CategoryCashFlow            RiskCategory = "Cash Flow"
	CategoryWeatherPhysical     RiskCategory = "Weather & Physical"
	CategoryInfrastructureTools RiskCategory = "Infrastructure & Tools"
	CategoryWorkforce           RiskCategory = "Workforce"
)

// AllCategories returns the categories in traversal order. The order drives
// wizard sequencing and primary-risk tie-breaking, not scoring.
func AllCategories() []RiskCategory {
	return []RiskCategory{
		CategorySupplyChain,
		CategoryCashFlow,
		CategoryWeatherPhysical,
		CategoryInfrastructureTools,
		CategoryWorkforce,
	}
}

// IsValid reports whether the category is one of the five known categories
func (c RiskCategory) IsValid() bool {
	switch c {
	case CategorySupplyChain, CategoryCashFlow, CategoryWeatherPhysical,
		CategoryInfrastructureTools, CategoryWorkforce:
		return true
	}
	return false
}

// Validate checks if the RiskCategory is valid
func (c RiskCategory) Validate() error {
	if c == "" {
		return goerr.New("risk category cannot be empty")
	}
	if !c.IsValid() {
		return goerr.New("unknown risk category", goerr.V("category", c))
	}
	return nil
}

// String returns the string representation of RiskCategory
func (c RiskCategory) String() string {
	return string(c)
}
