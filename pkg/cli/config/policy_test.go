package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/thecontlab/continuity-sim/pkg/cli/config"
	"github.com/urfave/cli/v3"
)

// configurePolicy runs the flag pipeline the way the real commands do
func configurePolicy(t *testing.T, args []string) *config.Policy {
	t.Helper()

	var policyCfg config.Policy
	cmd := &cli.Command{
		Name:  "test",
		Flags: policyCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			return nil
		},
	}
	gt.NoError(t, cmd.Run(context.Background(), append([]string{"test"}, args...)))
	return &policyCfg
}

func TestPolicyDefaults(t *testing.T) {
	policyCfg := configurePolicy(t, nil)

	policy, err := policyCfg.Configure()
	gt.NoError(t, err)
	gt.Value(t, policy.ShadowSeverity).Equal(7)
	gt.Value(t, policy.ShadowLatency).Equal(7)
	gt.Value(t, policy.CriticalThreshold).Equal(12)
	gt.Value(t, policy.AugmentTimeout).Equal(10 * time.Second)
}

func TestPolicyFileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.toml")
	content := `
shadow_severity = 5
critical_threshold = 14
augment_timeout = "3s"
`
	gt.NoError(t, os.WriteFile(path, []byte(content), 0644))

	policyCfg := configurePolicy(t, []string{"--policy-file", path})

	policy, err := policyCfg.Configure()
	gt.NoError(t, err)
	gt.Value(t, policy.ShadowSeverity).Equal(5)
	gt.Value(t, policy.ShadowLatency).Equal(7)
	gt.Value(t, policy.CriticalThreshold).Equal(14)
	gt.Value(t, policy.AugmentTimeout).Equal(3 * time.Second)
}

func TestPolicyFileRejectsOutOfRange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.toml")
	gt.NoError(t, os.WriteFile(path, []byte("shadow_severity = 11\n"), 0644))

	policyCfg := configurePolicy(t, []string{"--policy-file", path})

	_, err := policyCfg.Configure()
	gt.Error(t, err)
}

func TestPolicyFileMissing(t *testing.T) {
	policyCfg := configurePolicy(t, []string{"--policy-file", "/nonexistent/policy.toml"})

	_, err := policyCfg.Configure()
	gt.Error(t, err)
}
