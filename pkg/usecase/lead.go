package usecase

import (
	"context"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/thecontlab/continuity-sim/pkg/domain/interfaces"
	"github.com/thecontlab/continuity-sim/pkg/domain/model"
	"github.com/thecontlab/continuity-sim/pkg/domain/types"
)

// LeadUseCase manages captured leads
type LeadUseCase struct {
	repo interfaces.Repository
}

func NewLeadUseCase(repo interfaces.Repository) *LeadUseCase {
	return &LeadUseCase{repo: repo}
}

// FinalizeLead attaches the identity collected at the report gate to a
// drafted lead. The lead ID acts as the authorization token: only the
// session that ran the audit knows it.
func (uc *LeadUseCase) FinalizeLead(ctx context.Context, id types.LeadID, companyName, email string) (*model.Lead, error) {
	if err := id.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid lead ID")
	}
	if companyName == "" {
		return nil, goerr.New("company name is required")
	}
	if !strings.Contains(email, "@") {
		return nil, goerr.New("valid email is required")
	}

	lead, err := uc.repo.Lead().Finalize(ctx, id, companyName, email)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to finalize lead")
	}

	return lead, nil
}

// GetLead retrieves a lead by ID
func (uc *LeadUseCase) GetLead(ctx context.Context, id types.LeadID) (*model.Lead, error) {
	lead, err := uc.repo.Lead().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get lead")
	}

	return lead, nil
}

// ListLeads retrieves all captured leads
func (uc *LeadUseCase) ListLeads(ctx context.Context) ([]*model.Lead, error) {
	leads, err := uc.repo.Lead().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list leads")
	}

	return leads, nil
}
