package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/thecontlab/continuity-sim/pkg/domain/model"
	"github.com/thecontlab/continuity-sim/pkg/domain/types"
)

type leadRepository struct {
	mu    sync.RWMutex
	leads map[types.LeadID]*model.Lead
}

func newLeadRepository() *leadRepository {
	return &leadRepository{
		leads: make(map[types.LeadID]*model.Lead),
	}
}

// copyLead creates a deep copy of a lead
func copyLead(lead *model.Lead) *model.Lead {
	copied := *lead

	copied.RiskVectors = make([]model.RiskVector, len(lead.RiskVectors))
	copy(copied.RiskVectors, lead.RiskVectors)

	if lead.FinalizedAt != nil {
		t := *lead.FinalizedAt
		copied.FinalizedAt = &t
	}

	return &copied
}

func (r *leadRepository) Create(ctx context.Context, lead *model.Lead) (*model.Lead, error) {
	if err := lead.ID.Validate(); err != nil {
		return nil, goerr.Wrap(err, "lead ID is required for create")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.leads[lead.ID]; exists {
		return nil, goerr.New("lead already exists", goerr.V("id", lead.ID))
	}

	now := time.Now().UTC()
	created := copyLead(lead)
	created.CreatedAt = now
	created.UpdatedAt = now

	r.leads[created.ID] = created
	return copyLead(created), nil
}

func (r *leadRepository) Get(ctx context.Context, id types.LeadID) (*model.Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lead, exists := r.leads[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "lead not found", goerr.V("id", id))
	}

	return copyLead(lead), nil
}

func (r *leadRepository) Finalize(ctx context.Context, id types.LeadID, companyName, email string) (*model.Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lead, exists := r.leads[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "lead not found", goerr.V("id", id))
	}

	now := time.Now().UTC()
	lead.CompanyName = companyName
	lead.Email = email
	lead.FinalizedAt = &now
	lead.UpdatedAt = now

	return copyLead(lead), nil
}

func (r *leadRepository) List(ctx context.Context) ([]*model.Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	leads := make([]*model.Lead, 0, len(r.leads))
	for _, lead := range r.leads {
		leads = append(leads, copyLead(lead))
	}

	return leads, nil
}
