package interfaces

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/thecontlab/continuity-sim/pkg/domain/model"
	"github.com/thecontlab/continuity-sim/pkg/domain/types"
)

// ErrLeadNotFound is returned by any repository backend when the
// requested lead does not exist
var ErrLeadNotFound = goerr.New("lead not found")

// Repository defines the interface for data persistence
type Repository interface {
	Lead() LeadRepository

	Close() error
}

// LeadRepository stores captured audit sessions
type LeadRepository interface {
	// Create stores a new lead draft. The lead's ID must be set by the
	// caller; it doubles as the finalization token.
	Create(ctx context.Context, lead *model.Lead) (*model.Lead, error)

	// Get retrieves a lead by ID
	Get(ctx context.Context, id types.LeadID) (*model.Lead, error)

	// Finalize attaches the captured identity to a drafted lead
	Finalize(ctx context.Context, id types.LeadID, companyName, email string) (*model.Lead, error)

	// List retrieves all leads
	List(ctx context.Context) ([]*model.Lead, error)
}
