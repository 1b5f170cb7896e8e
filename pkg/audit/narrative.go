package audit

import (
	"fmt"

	"github.com/thecontlab/continuity-sim/pkg/domain/model"
	"github.com/thecontlab/continuity-sim/pkg/domain/types"
)

// narrative is one headline/finding template
type narrative struct {
	Headline string
	Finding  string
}

// narrativePair holds the two tones per category: Critical applies when the
// primary magnitude exceeds the policy's critical threshold, Elevated
// otherwise.
type narrativePair struct {
	Critical narrative
	Elevated narrative
}

var narratives = map[types.RiskCategory]narrativePair{
	types.CategorySupplyChain: {
		Critical: narrative{
			Headline: "CRITICAL UPSTREAM DEPENDENCY",
			Finding:  "Your value chain has a single point of failure. A disruption at one key external provider creates a 'cascade failure,' halting your ability to deliver value within the calculated latency window.",
		},
		Elevated: narrative{
			Headline: "VOLATILE INPUT STABILITY",
			Finding:  "External inputs, whether physical goods, digital services, or talent, are exhibiting instability. Without a larger operational buffer, this volatility will force unforced revenue pauses.",
		},
	},
	types.CategoryCashFlow: {
		Critical: narrative{
			Headline: "SOLVENCY RUNWAY COMPROMISED",
			Finding:  "Operational reserves are insufficient to absorb a 30-day revenue shock. The divergence between your fixed obligations and revenue timing creates a mathematically inevitable liquidity gap.",
		},
		Elevated: narrative{
			Headline: "CASH CONVERSION CYCLE IMBALANCE",
			Finding:  "Your outflow velocity exceeds your inflow velocity. This structural misalignment drains working capital and reduces your capacity to weather market contractions.",
		},
	},
	types.CategoryWorkforce: {
		Critical: narrative{
			Headline: "KEY PERSON DEPENDENCY",
			Finding:  "Institutional knowledge is dangerously concentrated. The loss of specific individuals would result in an immediate capability regression, as critical execution processes are not transferable.",
		},
		Elevated: narrative{
			Headline: "KNOWLEDGE SILO RISK",
			Finding:  "Critical operations rely on tribal knowledge rather than documented systems. This prevents 'surging' capacity during high-demand periods and creates fragility during turnover.",
		},
	},
	types.CategoryInfrastructureTools: {
		Critical: narrative{
			Headline: "PLATFORM & DATA LOCK-IN",
			Finding:  "Operational continuity is fully dependent on proprietary external systems. You lack an autonomous recovery protocol, meaning a vendor outage results in total operational paralysis.",
		},
		Elevated: narrative{
			Headline: "FRAGMENTED OPERATIONAL TRUTH",
			Finding:  "Critical data is siloed across disconnected tools or manual trackers. The lack of a unified 'single source of truth' creates dangerous blind spots during rapid decision-making.",
		},
	},
	types.CategoryWeatherPhysical: {
		Critical: narrative{
			Headline: "GEOGRAPHIC CONCENTRATION EXPOSURE",
			Finding:  "Asset density in a high-risk zone exceeds safe diversification limits. A single localized event (natural or infrastructure) has the probability of disabling 100% of revenue generation.",
		},
		Elevated: narrative{
			Headline: "ACCESS & RECOVERY FRAGILITY",
			Finding:  "Your operations lack location independence. While assets may be insured, the inability to physically access or utilize them during a disruption creates an unrecoverable revenue loss.",
		},
	},
}

// SelectNarrative chooses the headline/finding for the primary risk and
// appends the deterministic tie-back sentence built from the primary
// input's provenance. It never fabricates values: the tie-back only quotes
// answers recorded in the metadata.
func (e *Engine) SelectNarrative(mechanics *model.Mechanics) model.TeaserSummary {
	pair, ok := narratives[types.RiskCategory(mechanics.PrimaryRiskCategory)]
	if !ok {
		// Should not happen with the fixed category set; fall back to the
		// most universally applicable tone.
		pair = narratives[types.CategoryCashFlow]
		pair.Elevated = pair.Critical
	}

	selected := pair.Elevated
	if mechanics.PrimaryMagnitude() > e.policy.CriticalThreshold {
		selected = pair.Critical
	}

	return model.TeaserSummary{
		Headline:        selected.Headline,
		CriticalFinding: selected.Finding + tieBack(mechanics.PrimaryInput),
	}
}

// tieBack synthesizes the "why" sentence from the primary input's answers
func tieBack(input *model.RiskInput) string {
	if input == nil || input.Metadata == nil || input.Metadata.Answer1Value == nil {
		return ""
	}

	meta := input.Metadata
	s := fmt.Sprintf(" This exposure is driven by your input for %s (%v)",
		meta.Question1Label, meta.Answer1Value)
	if meta.Answer2Value != nil {
		return s + fmt.Sprintf(" combined with %s (%v).", meta.Question2Label, meta.Answer2Value)
	}
	return s + "."
}
