package audit_test

import (
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/thecontlab/continuity-sim/pkg/audit"
	"github.com/thecontlab/continuity-sim/pkg/domain/model"
	"github.com/thecontlab/continuity-sim/pkg/domain/model/config"
	"github.com/thecontlab/continuity-sim/pkg/domain/types"
)

func mechanicsFor(category types.RiskCategory, severity, latency int) *model.Mechanics {
	input := &model.RiskInput{
		Category: category,
		Severity: severity,
		Latency:  latency,
		Metadata: &model.InputMetadata{
			Question1Label: "Cash Runway",
			Answer1Value:   float64(20),
		},
	}
	return &model.Mechanics{
		PrimaryRAR:          1,
		PrimaryRiskCategory: category.String(),
		PrimaryInput:        input,
	}
}

func TestSelectNarrativeCriticalThreshold(t *testing.T) {
	engine := audit.New(nil, nil)

	// Magnitude 12 is not above the threshold: elevated tone
	summary := engine.SelectNarrative(mechanicsFor(types.CategoryCashFlow, 6, 6))
	gt.Value(t, summary.Headline).Equal("CASH CONVERSION CYCLE IMBALANCE")

	// Magnitude 13 crosses it: critical tone
	summary = engine.SelectNarrative(mechanicsFor(types.CategoryCashFlow, 7, 6))
	gt.Value(t, summary.Headline).Equal("SOLVENCY RUNWAY COMPROMISED")
}

func TestSelectNarrativeThresholdFollowsPolicy(t *testing.T) {
	policy := config.DefaultPolicy()
	policy.CriticalThreshold = 8
	engine := audit.New(nil, policy)

	summary := engine.SelectNarrative(mechanicsFor(types.CategorySupplyChain, 5, 4))
	gt.Value(t, summary.Headline).Equal("CRITICAL UPSTREAM DEPENDENCY")
}

func TestSelectNarrativeTieBack(t *testing.T) {
	engine := audit.New(nil, nil)

	mechanics := mechanicsFor(types.CategoryCashFlow, 6, 6)
	summary := engine.SelectNarrative(mechanics)
	gt.B(t, strings.HasSuffix(summary.CriticalFinding,
		"This exposure is driven by your input for Cash Runway (20).")).True()

	// Two answered questions produce the combined form
	mechanics.PrimaryInput.Metadata.Question2Label = "Recovery Plan Status"
	mechanics.PrimaryInput.Metadata.Answer2Value = "No Plan"
	summary = engine.SelectNarrative(mechanics)
	gt.B(t, strings.HasSuffix(summary.CriticalFinding,
		"This exposure is driven by your input for Cash Runway (20) combined with Recovery Plan Status (No Plan).")).True()
}

func TestSelectNarrativeWithoutProvenance(t *testing.T) {
	engine := audit.New(nil, nil)

	mechanics := mechanicsFor(types.CategoryWorkforce, 8, 8)
	mechanics.PrimaryInput.Metadata = nil

	summary := engine.SelectNarrative(mechanics)
	gt.String(t, summary.CriticalFinding).NotEqual("")
	gt.B(t, strings.Contains(summary.CriticalFinding, "This exposure is driven")).False()
}

func TestSelectNarrativeFallbackForUnknownPrimary(t *testing.T) {
	engine := audit.New(nil, nil)

	mechanics := &model.Mechanics{PrimaryRiskCategory: model.GeneralVolatility}
	summary := engine.SelectNarrative(mechanics)

	// The fallback borrows the cash flow critical tone regardless of magnitude
	gt.Value(t, summary.Headline).Equal("SOLVENCY RUNWAY COMPROMISED")
}

func TestSelectFixes(t *testing.T) {
	engine := audit.New(nil, nil)

	for _, category := range types.AllCategories() {
		fixes := engine.SelectFixes(category.String())
		gt.Array(t, fixes).Length(3)
		gt.Value(t, fixes[0].Timeline).Equal("30 Days")
		gt.Value(t, fixes[1].Timeline).Equal("60 Days")
		gt.Value(t, fixes[2].Timeline).Equal("90 Days")
	}

	gt.Array(t, engine.SelectFixes(model.GeneralVolatility)).Length(0)
	gt.Array(t, engine.SelectFixes("Cyber")).Length(0)
}

func TestSelectFixesReturnsCopy(t *testing.T) {
	engine := audit.New(nil, nil)

	first := engine.SelectFixes("Cash Flow")
	first[0].Task = "mutated"

	second := engine.SelectFixes("Cash Flow")
	gt.String(t, second[0].Task).NotEqual("mutated")
}
