package audit

import (
	"github.com/thecontlab/continuity-sim/pkg/domain/model"
	"github.com/thecontlab/continuity-sim/pkg/domain/types"
)

// priorityFixes holds the fixed 30/60/90-day remediation plans per category
var priorityFixes = map[types.RiskCategory][]model.PriorityFix{
	types.CategorySupplyChain: {
		{Timeline: "30 Days", Task: "Audit Tier-1 critical vendors for financial solvency", Target: "Identification"},
		{Timeline: "60 Days", Task: "Qualify one alternative provider for primary inputs", Target: "Redundancy"},
		{Timeline: "90 Days", Task: "Negotiate 'Force Majeure' clauses in vendor contracts", Target: "Legal Shield"},
	},
	types.CategoryCashFlow: {
		{Timeline: "30 Days", Task: "Aggressively collect overdue Accounts Receivable", Target: "Cash Injection"},
		{Timeline: "60 Days", Task: "Establish a rolling 13-week cash flow forecast", Target: "Visibility"},
		{Timeline: "90 Days", Task: "Secure a standby Line of Credit (LOC) or bridge facility", Target: "Safety Net"},
	},
	types.CategoryWorkforce: {
		{Timeline: "30 Days", Task: "Identify 'Bus Factor' personnel for immediate triage", Target: "Assessment"},
		{Timeline: "60 Days", Task: "Document top 5 critical execution processes (SOPs)", Target: "Knowledge Capture"},
		{Timeline: "90 Days", Task: "Cross-train junior staff on one critical function", Target: "Continuity"},
	},
	types.CategoryInfrastructureTools: {
		{Timeline: "30 Days", Task: "Test offline/manual operating procedures", Target: "Resilience"},
		{Timeline: "60 Days", Task: "Audit SaaS contracts for data ownership/export clauses", Target: "Sovereignty"},
		{Timeline: "90 Days", Task: "Implement a secondary communication channel (out-of-band)", Target: "Redundancy"},
	},
	types.CategoryWeatherPhysical: {
		{Timeline: "30 Days", Task: "Review insurance policy for Business Interruption gaps", Target: "Financial Shield"},
		{Timeline: "60 Days", Task: "Digitize physical records to redundant cloud storage", Target: "Asset Protection"},
		{Timeline: "90 Days", Task: "Establish a remote-work protocol for HQ staff", Target: "Agility"},
	},
}

// SelectFixes returns the ordered remediation plan for the primary risk
// category. Unrecognized categories (including the General Volatility
// fallback) yield an empty list.
func (e *Engine) SelectFixes(primaryCategory string) []model.PriorityFix {
	fixes, ok := priorityFixes[types.RiskCategory(primaryCategory)]
	if !ok {
		return []model.PriorityFix{}
	}

	out := make([]model.PriorityFix, len(fixes))
	copy(out, fixes)
	return out
}
