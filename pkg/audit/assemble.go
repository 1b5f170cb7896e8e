package audit

import (
	"fmt"

	"github.com/thecontlab/continuity-sim/pkg/domain/model"
)

// Assemble produces the complete deterministic audit report. This is the
// engine's entry point: it runs the aggregator and composes the narrative,
// the remediation plan, and the unverified-category list into the final
// value. The result is a full copy; callers can hand it out freely.
func (e *Engine) Assemble(foundation model.Foundation, inputs []model.RiskInput) *model.Report {
	mechanics := e.Aggregate(foundation.Revenue, inputs)

	unknown := []string{}
	for i := range inputs {
		if inputs[i].Skipped {
			unknown = append(unknown, fmt.Sprintf("%s Protocol Unverified", inputs[i].Category))
		}
	}

	return &model.Report{
		AuditResults: model.AuditResults{
			PrimaryRAR:             mechanics.PrimaryRAR,
			PrimaryRiskCategory:    mechanics.PrimaryRiskCategory,
			VolatilityIndex:        mechanics.VolatilityIndex,
			UnknownVulnerabilities: unknown,
		},
		HeatmapCoordinates: mechanics.HeatmapCoordinates,
		TeaserSummary:      e.SelectNarrative(mechanics),
		PriorityFixList:    e.SelectFixes(mechanics.PrimaryRiskCategory),
	}
}

// ApplyAugmentation overlays generative prose onto a deterministic report.
// Only cosmetic fields are taken from the augmentation; every numeric field
// of the returned report comes from the deterministic input report, so an
// augmentation round-trip can never change a computed figure. Empty
// augmentation fields keep the deterministic text.
func (e *Engine) ApplyAugmentation(report *model.Report, aug *model.Augmentation) *model.Report {
	out := *report
	if aug == nil {
		return &out
	}

	if aug.Headline != "" {
		out.TeaserSummary.Headline = aug.Headline
	}
	if aug.CriticalFinding != "" {
		out.TeaserSummary.CriticalFinding = aug.CriticalFinding
	}
	if len(aug.PriorityFixList) > 0 {
		out.PriorityFixList = aug.PriorityFixList
	}
	return &out
}
