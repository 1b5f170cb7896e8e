package async

import (
	"context"

	"github.com/thecontlab/continuity-sim/pkg/utils/errutil"
	"github.com/thecontlab/continuity-sim/pkg/utils/logging"
)

// Dispatch runs a handler in a new goroutine, detached from the caller's
// cancellation but keeping its logger. Errors and panics are logged, never
// propagated: the audit flow must not depend on background work such as
// lead persistence.
func Dispatch(ctx context.Context, handler func(ctx context.Context) error) {
	bgCtx := logging.With(context.Background(), logging.From(ctx))

	go func() {
		defer func() {
			if r := recover(); r != nil {
				logging.From(bgCtx).Error("panic in async handler", "panic", r)
			}
		}()

		_ = errutil.Handle(bgCtx, handler(bgCtx), "async handler failed")
	}()
}
