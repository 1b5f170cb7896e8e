package catalog

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/thecontlab/continuity-sim/pkg/domain/types"
)

// Question describes one input prompt shown by the wizard. Questions are
// immutable; they are defined once at catalog build time.
type Question struct {
	ID         string             `json:"id"`
	Type       types.QuestionType `json:"type"`
	Label      string             `json:"label"`
	Options    []string           `json:"options,omitempty"`
	HelperText string             `json:"helperText,omitempty"`
	MinLabel   string             `json:"minLabel,omitempty"`
	MaxLabel   string             `json:"maxLabel,omitempty"`
	Tooltip    string             `json:"tooltip,omitempty"`
}

// Validate checks if the Question definition is complete
func (q *Question) Validate() error {
	if q.ID == "" {
		return goerr.New("question ID is required")
	}
	if err := q.Type.Validate(); err != nil {
		return goerr.Wrap(err, "invalid question type", goerr.V("id", q.ID))
	}
	if q.Label == "" {
		return goerr.New("question label is required", goerr.V("id", q.ID))
	}
	if q.Type.RequiresOptions() && len(q.Options) == 0 {
		return goerr.New("question type requires options",
			goerr.V("id", q.ID), goerr.V("type", q.Type))
	}
	return nil
}
