package config

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/thecontlab/continuity-sim/pkg/domain/types"
)

// Defaults for the tunable scoring policy. The shadow score of 7 and the
// critical threshold of 12 are inherited policy constants, not derived
// values; both can be overridden via the policy file.
const (
	DefaultShadowSeverity    = 7
	DefaultShadowLatency     = 7
	DefaultCriticalThreshold = 12

	DefaultAugmentTimeout = 10 * time.Second
)

// Policy carries the tunable constants of the scoring engine
type Policy struct {
	// ShadowSeverity and ShadowLatency are assigned to skipped categories:
	// assumed-elevated-but-unverified risk. Neither zero (which would hide
	// the category) nor the maximum (which would overstate confidence).
	ShadowSeverity int
	ShadowLatency  int

	// CriticalThreshold separates the "critical" narrative tone from the
	// "elevated" one. A primary magnitude strictly above this value selects
	// the critical template.
	CriticalThreshold int

	// AugmentTimeout bounds the optional generative-text call
	AugmentTimeout time.Duration
}

// DefaultPolicy returns the policy with all constants at their defaults
func DefaultPolicy() *Policy {
	return &Policy{
		ShadowSeverity:    DefaultShadowSeverity,
		ShadowLatency:     DefaultShadowLatency,
		CriticalThreshold: DefaultCriticalThreshold,
		AugmentTimeout:    DefaultAugmentTimeout,
	}
}

// Validate checks if the Policy values are within their domains
func (p *Policy) Validate() error {
	if p.ShadowSeverity < types.ScaleMin || p.ShadowSeverity > types.ScaleMax {
		return goerr.New("shadow severity out of range", goerr.V("value", p.ShadowSeverity))
	}
	if p.ShadowLatency < types.ScaleMin || p.ShadowLatency > types.ScaleMax {
		return goerr.New("shadow latency out of range", goerr.V("value", p.ShadowLatency))
	}
	if p.CriticalThreshold < 0 || p.CriticalThreshold > types.MaxMagnitude {
		return goerr.New("critical threshold out of range", goerr.V("value", p.CriticalThreshold))
	}
	if p.AugmentTimeout < 0 {
		return goerr.New("augment timeout cannot be negative", goerr.V("value", p.AugmentTimeout))
	}
	return nil
}
