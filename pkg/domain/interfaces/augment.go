package interfaces

import (
	"context"

	"github.com/thecontlab/continuity-sim/pkg/domain/model"
)

// Augmenter is the optional generative-text collaborator. It may propose
// replacement prose for the teaser summary and the remediation plan; it
// cannot influence any computed figure. Implementations must respect
// context cancellation, as calls are time-boxed by the caller.
type Augmenter interface {
	Augment(ctx context.Context, foundation model.Foundation, inputs []model.RiskInput, mechanics *model.Mechanics) (*model.Augmentation, error)
}
