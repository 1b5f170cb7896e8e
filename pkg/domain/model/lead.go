package model

import (
	"time"

	"github.com/thecontlab/continuity-sim/pkg/domain/types"
)

// RiskVector is the per-category telemetry stored with a lead
type RiskVector struct {
	Category  types.RiskCategory `json:"category" firestore:"category"`
	Severity  int                `json:"severity" firestore:"severity"`
	Latency   int                `json:"latency" firestore:"latency"`
	Magnitude int                `json:"magnitude" firestore:"magnitude"`
	Skipped   bool               `json:"skipped" firestore:"skipped"`
	Q1Label   string             `json:"q1_label,omitempty" firestore:"q1_label,omitempty"`
	Q1Value   any                `json:"q1_value,omitempty" firestore:"q1_value,omitempty"`
	Q2Label   string             `json:"q2_label,omitempty" firestore:"q2_label,omitempty"`
	Q2Value   any                `json:"q2_value,omitempty" firestore:"q2_value,omitempty"`
}

// Lead is a captured audit session. It is drafted anonymously when the
// report is generated and finalized later when the user unlocks the full
// report with their identity. CompanyName and Email are PII and masked
// in logs via the masq tag.
type Lead struct {
	ID              types.LeadID `json:"id"`
	Industry        string       `json:"industry"`
	Revenue         float64      `json:"revenue"`
	PrimaryRAR      int64        `json:"primary_rar"`
	VolatilityIndex int          `json:"volatility_index"`
	RiskVectors     []RiskVector `json:"risk_vectors"`
	CompanyName     string       `json:"company_name,omitempty" masq:"secret"`
	Email           string       `json:"email,omitempty" masq:"secret"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
	FinalizedAt     *time.Time   `json:"finalized_at,omitempty"`
}

// Finalized reports whether the lead identity has been captured
func (l *Lead) Finalized() bool {
	return l.FinalizedAt != nil
}

// NewLeadDraft builds an anonymous lead from an audit run
func NewLeadDraft(foundation Foundation, inputs []RiskInput, report *Report) *Lead {
	vectors := make([]RiskVector, 0, len(inputs))
	for _, input := range inputs {
		v := RiskVector{
			Category:  input.Category,
			Severity:  input.Severity,
			Latency:   input.Latency,
			Magnitude: input.Magnitude(),
			Skipped:   input.Skipped,
		}
		if input.Metadata != nil {
			v.Q1Label = input.Metadata.Question1Label
			v.Q1Value = input.Metadata.Answer1Value
			v.Q2Label = input.Metadata.Question2Label
			v.Q2Value = input.Metadata.Answer2Value
		}
		vectors = append(vectors, v)
	}

	lead := &Lead{
		ID:          types.NewLeadID(),
		Industry:    foundation.Industry,
		Revenue:     foundation.Revenue,
		RiskVectors: vectors,
	}
	if report != nil {
		lead.PrimaryRAR = report.AuditResults.PrimaryRAR
		lead.VolatilityIndex = report.AuditResults.VolatilityIndex
	}
	return lead
}
