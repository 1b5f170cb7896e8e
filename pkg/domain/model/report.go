package model

import (
	"github.com/thecontlab/continuity-sim/pkg/domain/types"
)

// GeneralVolatility is the fallback primary category label when an audit
// has no inputs at all.
const GeneralVolatility = "General Volatility"

// HeatmapPoint is one category plotted on the severity/latency plane
type HeatmapPoint struct {
	Label  string                   `json:"label"`
	X      int                      `json:"x"`
	Y      int                      `json:"y"`
	Status types.VerificationStatus `json:"status"`
	Band   types.RiskBand           `json:"band"`
	Color  string                   `json:"color"`
}

// Mechanics is the deterministic aggregate computed from the risk inputs
// and revenue. It has no lifecycle of its own; it is recomputed fresh on
// every audit run.
type Mechanics struct {
	PrimaryRAR          int64
	PrimaryRiskCategory string
	PrimaryInput        *RiskInput
	VolatilityIndex     int
	HeatmapCoordinates  []HeatmapPoint
}

// PrimaryMagnitude returns the magnitude of the primary input, or 0 when
// the audit had no inputs.
func (m *Mechanics) PrimaryMagnitude() int {
	if m.PrimaryInput == nil {
		return 0
	}
	return m.PrimaryInput.Magnitude()
}

// AuditResults is the numeric portion of the report. Its fields are always
// written by the local aggregator, never by the augmentation service.
type AuditResults struct {
	PrimaryRAR             int64    `json:"primary_rar"`
	PrimaryRiskCategory    string   `json:"primary_risk_category"`
	VolatilityIndex        int      `json:"volatility_index"`
	UnknownVulnerabilities []string `json:"unknown_vulnerabilities"`
}

// TeaserSummary is the narrative portion of the report
type TeaserSummary struct {
	Headline        string `json:"headline"`
	CriticalFinding string `json:"critical_finding"`
}

// PriorityFix is one entry of the 30/60/90-day remediation plan
type PriorityFix struct {
	Timeline string `json:"timeline"`
	Task     string `json:"task"`
	Target   string `json:"target"`
}

// Report is the externally visible audit artifact. It is a plain value:
// consumers receive a full copy, and it is immutable once produced.
type Report struct {
	AuditResults       AuditResults   `json:"audit_results"`
	HeatmapCoordinates []HeatmapPoint `json:"heatmap_coordinates"`
	TeaserSummary      TeaserSummary  `json:"teaser_summary"`
	PriorityFixList    []PriorityFix  `json:"priority_fix_list"`
}

// Augmentation is what the optional generative-text collaborator may
// contribute: prose and remediation copy only. It deliberately has no
// numeric fields, so augmented output can never displace computed figures.
type Augmentation struct {
	Headline        string        `json:"headline"`
	CriticalFinding string        `json:"critical_finding"`
	PriorityFixList []PriorityFix `json:"priority_fix_list"`
}
