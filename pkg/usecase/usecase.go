package usecase

import (
	"github.com/thecontlab/continuity-sim/pkg/audit"
	"github.com/thecontlab/continuity-sim/pkg/domain/interfaces"
	"github.com/thecontlab/continuity-sim/pkg/domain/model/config"
)

type UseCases struct {
	repo      interfaces.Repository
	engine    *audit.Engine
	augmenter interfaces.Augmenter
	policy    *config.Policy

	Audit *AuditUseCase
	Lead  *LeadUseCase
}

type Option func(*UseCases)

// WithPolicy overrides the default scoring policy
func WithPolicy(policy *config.Policy) Option {
	return func(uc *UseCases) {
		uc.policy = policy
	}
}

// WithAugmenter enables the optional generative narrative augmentation
func WithAugmenter(augmenter interfaces.Augmenter) Option {
	return func(uc *UseCases) {
		uc.augmenter = augmenter
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo:   repo,
		policy: config.DefaultPolicy(),
	}

	for _, opt := range opts {
		opt(uc)
	}

	uc.engine = audit.New(nil, uc.policy)
	uc.Audit = NewAuditUseCase(uc.engine, repo, uc.augmenter, uc.policy)
	uc.Lead = NewLeadUseCase(repo)

	return uc
}

// Engine exposes the audit engine, mainly for the catalog endpoints
func (uc *UseCases) Engine() *audit.Engine {
	return uc.engine
}
