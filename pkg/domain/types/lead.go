package types

import (
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// LeadID is the opaque identifier of a captured lead. It doubles as the
// finalization token handed to the wizard, so it must be unguessable.
type LeadID string

// NewLeadID generates a new random LeadID
func NewLeadID() LeadID {
	return LeadID(uuid.New().String())
}

// Validate checks if the LeadID is a well-formed UUID
func (l LeadID) Validate() error {
	if l == "" {
		return goerr.New("lead ID cannot be empty")
	}
	if _, err := uuid.Parse(string(l)); err != nil {
		return goerr.Wrap(err, "lead ID must be a UUID", goerr.V("id", l))
	}
	return nil
}

// String returns the string representation of LeadID
func (l LeadID) String() string {
	return string(l)
}
