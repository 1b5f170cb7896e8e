package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/thecontlab/continuity-sim/pkg/audit"
	"github.com/thecontlab/continuity-sim/pkg/domain/interfaces"
	"github.com/thecontlab/continuity-sim/pkg/domain/model"
	"github.com/thecontlab/continuity-sim/pkg/domain/model/config"
	"github.com/thecontlab/continuity-sim/pkg/domain/types"
	"github.com/thecontlab/continuity-sim/pkg/utils/async"
	"github.com/thecontlab/continuity-sim/pkg/utils/logging"
)

// AuditUseCase runs a complete audit: scoring, aggregation, optional
// narrative augmentation, and background lead capture.
type AuditUseCase struct {
	engine    *audit.Engine
	repo      interfaces.Repository
	augmenter interfaces.Augmenter
	policy    *config.Policy
}

func NewAuditUseCase(engine *audit.Engine, repo interfaces.Repository, augmenter interfaces.Augmenter, policy *config.Policy) *AuditUseCase {
	if policy == nil {
		policy = config.DefaultPolicy()
	}
	return &AuditUseCase{
		engine:    engine,
		repo:      repo,
		augmenter: augmenter,
		policy:    policy,
	}
}

// AuditResult is the outcome of one audit run. LeadID identifies the
// background-drafted lead; it is the token the wizard later uses to
// finalize the lead with the user's identity.
type AuditResult struct {
	Report *model.Report
	LeadID types.LeadID
}

// RunAudit scores the submitted answers, assembles the deterministic
// report, overlays the optional augmentation, and drafts a lead in the
// background. The deterministic path always succeeds given a valid
// foundation; augmentation and persistence failures degrade gracefully.
func (uc *AuditUseCase) RunAudit(ctx context.Context, foundation model.Foundation, answers []model.Answer) (*AuditResult, error) {
	if err := foundation.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid foundation")
	}

	inputs, err := uc.ScoreAnswers(foundation.Industry, answers)
	if err != nil {
		return nil, err
	}

	report := uc.engine.Assemble(foundation, inputs)

	if uc.augmenter != nil {
		report = uc.applyAugmentation(ctx, foundation, inputs, report)
	}

	lead := model.NewLeadDraft(foundation, inputs, report)
	uc.draftLead(ctx, lead)

	return &AuditResult{
		Report: report,
		LeadID: lead.ID,
	}, nil
}

// ScoreAnswers normalizes one submission per category, in traversal order.
// Categories without a submission are treated as skipped, so the engine
// always aggregates a complete input set.
func (uc *AuditUseCase) ScoreAnswers(industry string, answers []model.Answer) ([]model.RiskInput, error) {
	byCategory := make(map[types.RiskCategory]model.Answer, len(answers))
	for _, answer := range answers {
		if err := answer.Category.Validate(); err != nil {
			return nil, goerr.Wrap(err, "invalid answer category")
		}
		if _, dup := byCategory[answer.Category]; dup {
			return nil, goerr.New("duplicate answer for category", goerr.V("category", answer.Category))
		}
		byCategory[answer.Category] = answer
	}

	inputs := make([]model.RiskInput, 0, len(types.AllCategories()))
	for _, category := range types.AllCategories() {
		answer, ok := byCategory[category]
		if !ok {
			answer = model.Answer{Category: category, Skipped: true}
		}

		input, err := uc.engine.Score(industry, category, answer.Answer1, answer.Answer2, answer.Skipped)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to score category", goerr.V("category", category))
		}
		inputs = append(inputs, *input)
	}

	return inputs, nil
}

// applyAugmentation races the augmenter against the policy timeout. Any
// failure falls back to the deterministic report; the numeric fields are
// immune either way because the augmentation carries no numbers.
func (uc *AuditUseCase) applyAugmentation(ctx context.Context, foundation model.Foundation, inputs []model.RiskInput, report *model.Report) *model.Report {
	augCtx, cancel := context.WithTimeout(ctx, uc.policy.AugmentTimeout)
	defer cancel()

	mechanics := uc.engine.Aggregate(foundation.Revenue, inputs)
	aug, err := uc.augmenter.Augment(augCtx, foundation, inputs, mechanics)
	if err != nil {
		logging.From(ctx).Warn("narrative augmentation unavailable, using deterministic narrative",
			"error", err.Error())
		return report
	}

	return uc.engine.ApplyAugmentation(report, aug)
}

// draftLead persists the anonymous lead in the background. The audit
// response never waits on, or fails because of, the persistence write.
func (uc *AuditUseCase) draftLead(ctx context.Context, lead *model.Lead) {
	if uc.repo == nil {
		return
	}

	async.Dispatch(ctx, func(ctx context.Context) error {
		if _, err := uc.repo.Lead().Create(ctx, lead); err != nil {
			return goerr.Wrap(err, "failed to draft lead", goerr.V("lead_id", lead.ID))
		}
		logging.From(ctx).Info("lead drafted", "lead_id", lead.ID, "industry", lead.Industry)
		return nil
	})
}
