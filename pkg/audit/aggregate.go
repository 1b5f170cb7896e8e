package audit

import (
	"math"

	"github.com/thecontlab/continuity-sim/pkg/domain/model"
	"github.com/thecontlab/continuity-sim/pkg/domain/types"
)

// categoryWeights scale each category's revenue-at-risk contribution.
// Fixed design constants, not user-extensible.
var categoryWeights = map[types.RiskCategory]float64{
	types.CategorySupplyChain:         1.0,
	types.CategoryCashFlow:            1.0,
	types.CategoryWorkforce:           0.8,
	types.CategoryInfrastructureTools: 0.8,
	types.CategoryWeatherPhysical:     0.6,
}

// fallbackWeight applies to categories outside the fixed set
const fallbackWeight = 0.5

// Weight returns the RAR weight of a category
func Weight(category types.RiskCategory) float64 {
	if w, ok := categoryWeights[category]; ok {
		return w
	}
	return fallbackWeight
}

// RevenueAtRisk computes the per-category RAR in whole currency units:
// revenue scaled by the (severity x latency)/100 risk factor and the
// category weight.
func RevenueAtRisk(revenue float64, input *model.RiskInput) int64 {
	riskFactor := float64(input.Severity*input.Latency) / 100
	return int64(math.Round(revenue * riskFactor * Weight(input.Category)))
}

// Aggregate computes the audit mechanics from the risk inputs and revenue.
// Callers supply exactly one input per category; the aggregator itself only
// requires a consistent traversal order for the primary tie-break.
func (e *Engine) Aggregate(revenue float64, inputs []model.RiskInput) *model.Mechanics {
	mechanics := &model.Mechanics{
		PrimaryRiskCategory: model.GeneralVolatility,
		HeatmapCoordinates:  make([]model.HeatmapPoint, 0, len(inputs)),
	}

	totalMagnitude := 0
	for i := range inputs {
		input := &inputs[i]

		rar := RevenueAtRisk(revenue, input)
		// Strict comparison keeps the first-encountered category on ties.
		// With zero revenue every RAR is zero and the primary stays at the
		// General Volatility fallback.
		if rar > mechanics.PrimaryRAR {
			mechanics.PrimaryRAR = rar
			mechanics.PrimaryRiskCategory = input.Category.String()
			mechanics.PrimaryInput = input
		}

		totalMagnitude += input.Magnitude()

		status := types.StatusVerified
		if input.Skipped {
			status = types.StatusUnknown
		}
		band := types.BandForMagnitude(input.Magnitude())
		mechanics.HeatmapCoordinates = append(mechanics.HeatmapCoordinates, model.HeatmapPoint{
			Label:  input.Category.String(),
			X:      input.Severity,
			Y:      input.Latency,
			Status: status,
			Band:   band,
			Color:  band.Color(),
		})
	}

	// Normalize onto 0-100 against the maximum magnitude of count*20.
	// Guarded for empty input: an audit with no answers is degenerate but
	// still yields a valid report.
	if len(inputs) > 0 {
		ratio := float64(totalMagnitude) / float64(len(inputs)*types.MaxMagnitude)
		mechanics.VolatilityIndex = int(math.Round(math.Min(100, ratio*100)))
	}

	return mechanics
}
