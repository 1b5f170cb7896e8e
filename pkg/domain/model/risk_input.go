package model

import (
	"github.com/thecontlab/continuity-sim/pkg/domain/types"
)

// Answer is the raw submission for one category as collected by the wizard.
// Answer1/Answer2 carry a number for slider questions and a string for
// binary/picker questions.
type Answer struct {
	Category types.RiskCategory `json:"category"`
	Answer1  any                `json:"answer1,omitempty"`
	Answer2  any                `json:"answer2,omitempty"`
	Skipped  bool               `json:"skipped"`
}

// InputMetadata records the provenance of a scored category: which questions
// were resolved and what the user answered. Needed for the narrative
// tie-back sentence; never used for scoring.
type InputMetadata struct {
	Question1Label string   `json:"question1_label" firestore:"question1_label"`
	Answer1Value   any      `json:"answer1_value" firestore:"answer1_value"`
	Question2Label string   `json:"question2_label,omitempty" firestore:"question2_label,omitempty"`
	Answer2Value   any      `json:"answer2_value,omitempty" firestore:"answer2_value,omitempty"`
	SelectedTags   []string `json:"selected_tags,omitempty" firestore:"selected_tags,omitempty"`
}

// RiskInput is the normalized result of one answered (or skipped) category.
// Severity and latency are integers in [1,10]. Exactly one RiskInput exists
// per category per audit, in traversal order.
type RiskInput struct {
	Category types.RiskCategory `json:"category"`
	Severity int                `json:"severity"`
	Latency  int                `json:"latency"`
	Skipped  bool               `json:"skipped"`
	Metadata *InputMetadata     `json:"metadata,omitempty"`
}

// Magnitude returns severity+latency, the per-category risk magnitude
func (r *RiskInput) Magnitude() int {
	return r.Severity + r.Latency
}
