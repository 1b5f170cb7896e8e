package audit

import (
	"math"

	"github.com/m-mizutani/goerr/v2"
	"github.com/thecontlab/continuity-sim/pkg/domain/model"
	"github.com/thecontlab/continuity-sim/pkg/domain/types"
	"github.com/thecontlab/continuity-sim/pkg/utils/logging"
)

// Score reduces one category's raw answers into a normalized RiskInput.
//
// A skipped category receives the shadow score: elevated-but-unverified
// risk with no provenance metadata. Otherwise the scenario's scoring
// function runs and both axes are clamped onto [1,10]; a non-finite axis is
// replaced by the scale midpoint so garbage can never reach the monetary
// aggregation. Only a catalog resolution failure is returned as an error.
func (e *Engine) Score(industry string, category types.RiskCategory, answer1, answer2 any, skipped bool) (*model.RiskInput, error) {
	if skipped {
		return &model.RiskInput{
			Category: category,
			Severity: e.policy.ShadowSeverity,
			Latency:  e.policy.ShadowLatency,
			Skipped:  true,
		}, nil
	}

	scenario, err := e.catalog.Lookup(industry, category)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to resolve scenario",
			goerr.V("industry", industry), goerr.V("category", category))
	}

	raw := scenario.Score(answer1, answer2)

	metadata := &model.InputMetadata{
		Question1Label: scenario.Q1.Label,
		Answer1Value:   answer1,
		SelectedTags:   scenario.ContextTags,
	}
	if q2 := scenario.Q2(answer1); q2 != nil && answer2 != nil {
		metadata.Question2Label = q2.Label
		metadata.Answer2Value = answer2
	}

	return &model.RiskInput{
		Category: category,
		Severity: sanitizeAxis(category, "severity", raw.Severity),
		Latency:  sanitizeAxis(category, "latency", raw.Latency),
		Metadata: metadata,
	}, nil
}

// sanitizeAxis converts one raw scoring axis into a valid scale integer
func sanitizeAxis(category types.RiskCategory, axis string, v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		logging.Default().Warn("scoring function returned non-finite value, substituting midpoint",
			"category", category, "axis", axis)
		return types.ScaleMidpoint
	}
	return types.ClampScale(int(math.Round(v)))
}
