package config

import (
	"os"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	domainConfig "github.com/thecontlab/continuity-sim/pkg/domain/model/config"
	"github.com/urfave/cli/v3"
)

// Policy holds CLI flags for the scoring policy file
type Policy struct {
	path string
}

// policyFile is the TOML shape of the policy file. All fields are
// optional; absent fields keep their defaults.
type policyFile struct {
	ShadowSeverity    *int    `toml:"shadow_severity"`
	ShadowLatency     *int    `toml:"shadow_latency"`
	CriticalThreshold *int    `toml:"critical_threshold"`
	AugmentTimeout    *string `toml:"augment_timeout"`
}

// Flags returns CLI flags for policy configuration
func (p *Policy) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "policy-file",
			Usage:       "Path to TOML file overriding scoring policy constants",
			Sources:     cli.EnvVars("CONTINUITY_SIM_POLICY_FILE"),
			Destination: &p.path,
		},
	}
}

// Configure loads the policy, starting from defaults and applying the
// overrides from the policy file when one is configured.
func (p *Policy) Configure() (*domainConfig.Policy, error) {
	policy := domainConfig.DefaultPolicy()
	if p.path == "" {
		return policy, nil
	}

	data, err := os.ReadFile(p.path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read policy file", goerr.V("path", p.path))
	}

	var file policyFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, goerr.Wrap(err, "failed to parse policy file", goerr.V("path", p.path))
	}

	if file.ShadowSeverity != nil {
		policy.ShadowSeverity = *file.ShadowSeverity
	}
	if file.ShadowLatency != nil {
		policy.ShadowLatency = *file.ShadowLatency
	}
	if file.CriticalThreshold != nil {
		policy.CriticalThreshold = *file.CriticalThreshold
	}
	if file.AugmentTimeout != nil {
		d, err := time.ParseDuration(*file.AugmentTimeout)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid augment timeout", goerr.V("value", *file.AugmentTimeout))
		}
		policy.AugmentTimeout = d
	}

	if err := policy.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid policy", goerr.V("path", p.path))
	}

	return policy, nil
}
