package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/thecontlab/continuity-sim/pkg/domain/model"
	"github.com/thecontlab/continuity-sim/pkg/domain/types"
	"github.com/thecontlab/continuity-sim/pkg/repository/memory"
	"github.com/thecontlab/continuity-sim/pkg/usecase"
)

// stubAugmenter returns a fixed augmentation or error
type stubAugmenter struct {
	aug *model.Augmentation
	err error
}

func (s *stubAugmenter) Augment(ctx context.Context, foundation model.Foundation, inputs []model.RiskInput, mechanics *model.Mechanics) (*model.Augmentation, error) {
	return s.aug, s.err
}

func constructionAnswers() []model.Answer {
	return []model.Answer{
		{Category: types.CategorySupplyChain, Answer1: float64(50), Answer2: "< 3 Days (JIT)"},
		{Category: types.CategoryCashFlow, Answer1: float64(50)},
		{Category: types.CategoryWeatherPhysical, Answer1: float64(50)},
		{Category: types.CategoryInfrastructureTools, Answer1: float64(50)},
		{Category: types.CategoryWorkforce, Answer1: float64(50)},
	}
}

// waitForLead polls the repository until the background draft lands
func waitForLead(t *testing.T, repo *memory.Memory, id types.LeadID) *model.Lead {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if lead, err := repo.Lead().Get(context.Background(), id); err == nil {
			return lead
		}
		time.Sleep(10 * time.Millisecond)
	}

	t.Fatal("lead was not drafted in time")
	return nil
}

func TestRunAuditConstruction(t *testing.T) {
	repo := memory.New()
	uc := usecase.New(repo)
	ctx := context.Background()

	foundation := model.Foundation{Industry: "Construction & Real Estate", Revenue: 5_000_000}
	result, err := uc.Audit.RunAudit(ctx, foundation, constructionAnswers())
	gt.NoError(t, err)

	report := result.Report
	gt.Value(t, report.AuditResults.PrimaryRAR).Equal(int64(3_200_000))
	gt.Value(t, report.AuditResults.PrimaryRiskCategory).Equal("Supply Chain")
	gt.Value(t, report.AuditResults.VolatilityIndex).Equal(56)
	gt.Array(t, report.AuditResults.UnknownVulnerabilities).Length(0)
	gt.Array(t, report.HeatmapCoordinates).Length(5)
	gt.Array(t, report.PriorityFixList).Length(3)

	// The lead draft carries the same figures
	lead := waitForLead(t, repo, result.LeadID)
	gt.Value(t, lead.Industry).Equal("Construction & Real Estate")
	gt.Value(t, lead.PrimaryRAR).Equal(int64(3_200_000))
	gt.Value(t, lead.VolatilityIndex).Equal(56)
	gt.Array(t, lead.RiskVectors).Length(5)
	gt.B(t, lead.Finalized()).False()
}

func TestRunAuditMissingCategoriesTreatedAsSkipped(t *testing.T) {
	repo := memory.New()
	uc := usecase.New(repo)
	ctx := context.Background()

	foundation := model.Foundation{Industry: "default", Revenue: 1_000_000}
	answers := []model.Answer{
		{Category: types.CategoryCashFlow, Answer1: float64(50)},
	}

	result, err := uc.Audit.RunAudit(ctx, foundation, answers)
	gt.NoError(t, err)

	gt.Array(t, result.Report.AuditResults.UnknownVulnerabilities).Length(4)
	gt.Array(t, result.Report.HeatmapCoordinates).Length(5)
}

func TestRunAuditRejectsInvalidInput(t *testing.T) {
	uc := usecase.New(memory.New())
	ctx := context.Background()

	_, err := uc.Audit.RunAudit(ctx, model.Foundation{Revenue: 100}, nil)
	gt.Error(t, err)

	_, err = uc.Audit.RunAudit(ctx, model.Foundation{Industry: "default", Revenue: -1}, nil)
	gt.Error(t, err)

	_, err = uc.Audit.RunAudit(ctx, model.Foundation{Industry: "default", Revenue: 100},
		[]model.Answer{
			{Category: types.CategoryCashFlow, Answer1: float64(10)},
			{Category: types.CategoryCashFlow, Answer1: float64(20)},
		})
	gt.Error(t, err)

	_, err = uc.Audit.RunAudit(ctx, model.Foundation{Industry: "default", Revenue: 100},
		[]model.Answer{{Category: types.RiskCategory("Cyber")}})
	gt.Error(t, err)
}

func TestRunAuditAppliesAugmentation(t *testing.T) {
	repo := memory.New()
	aug := &stubAugmenter{
		aug: &model.Augmentation{
			Headline:        "TAILORED HEADLINE",
			CriticalFinding: "Tailored finding.",
		},
	}
	uc := usecase.New(repo, usecase.WithAugmenter(aug))
	ctx := context.Background()

	foundation := model.Foundation{Industry: "Construction & Real Estate", Revenue: 5_000_000}
	result, err := uc.Audit.RunAudit(ctx, foundation, constructionAnswers())
	gt.NoError(t, err)

	gt.Value(t, result.Report.TeaserSummary.Headline).Equal("TAILORED HEADLINE")
	gt.Value(t, result.Report.TeaserSummary.CriticalFinding).Equal("Tailored finding.")

	// Augmentation never changes computed figures
	gt.Value(t, result.Report.AuditResults.PrimaryRAR).Equal(int64(3_200_000))
	gt.Value(t, result.Report.AuditResults.VolatilityIndex).Equal(56)
}

func TestRunAuditAugmenterFailureFallsBack(t *testing.T) {
	repo := memory.New()
	aug := &stubAugmenter{err: goerr.New("model unavailable")}
	uc := usecase.New(repo, usecase.WithAugmenter(aug))
	ctx := context.Background()

	foundation := model.Foundation{Industry: "Construction & Real Estate", Revenue: 5_000_000}
	result, err := uc.Audit.RunAudit(ctx, foundation, constructionAnswers())
	gt.NoError(t, err)

	// Primary magnitude 16 selects the critical supply chain narrative
	gt.Value(t, result.Report.TeaserSummary.Headline).Equal("CRITICAL UPSTREAM DEPENDENCY")
	gt.Value(t, result.Report.AuditResults.PrimaryRAR).Equal(int64(3_200_000))
}

func TestFinalizeLead(t *testing.T) {
	repo := memory.New()
	uc := usecase.New(repo)
	ctx := context.Background()

	foundation := model.Foundation{Industry: "default", Revenue: 1_000_000}
	result, err := uc.Audit.RunAudit(ctx, foundation, constructionAnswers())
	gt.NoError(t, err)

	waitForLead(t, repo, result.LeadID)

	lead, err := uc.Lead.FinalizeLead(ctx, result.LeadID, "Acme Corp", "owner@acme.example")
	gt.NoError(t, err)
	gt.B(t, lead.Finalized()).True()
	gt.Value(t, lead.CompanyName).Equal("Acme Corp")
}

func TestFinalizeLeadValidation(t *testing.T) {
	uc := usecase.New(memory.New())
	ctx := context.Background()

	_, err := uc.Lead.FinalizeLead(ctx, "not-a-uuid", "Acme", "a@b.c")
	gt.Error(t, err)

	id := types.NewLeadID()
	_, err = uc.Lead.FinalizeLead(ctx, id, "", "a@b.c")
	gt.Error(t, err)

	_, err = uc.Lead.FinalizeLead(ctx, id, "Acme", "no-at-sign")
	gt.Error(t, err)
}
