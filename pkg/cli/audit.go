package cli

import (
	"context"
	"encoding/json"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/thecontlab/continuity-sim/pkg/cli/config"
	"github.com/thecontlab/continuity-sim/pkg/domain/model"
	"github.com/thecontlab/continuity-sim/pkg/repository/memory"
	"github.com/thecontlab/continuity-sim/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// auditFile is the JSON shape accepted by the audit command
type auditFile struct {
	Industry string         `json:"industry"`
	Revenue  float64        `json:"revenue"`
	Answers  []model.Answer `json:"answers"`
}

func cmdAudit() *cli.Command {
	var input string
	var policyCfg config.Policy

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "input",
			Aliases:     []string{"i"},
			Usage:       "Path to JSON file with industry, revenue and answers",
			Required:    true,
			Sources:     cli.EnvVars("CONTINUITY_SIM_AUDIT_INPUT"),
			Destination: &input,
		},
	}
	flags = append(flags, policyCfg.Flags()...)

	return &cli.Command{
		Name:  "audit",
		Usage: "Run a single audit from a JSON file and print the report",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			policy, err := policyCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load scoring policy")
			}

			data, err := os.ReadFile(input)
			if err != nil {
				return goerr.Wrap(err, "failed to read input file", goerr.V("path", input))
			}

			var file auditFile
			if err := json.Unmarshal(data, &file); err != nil {
				return goerr.Wrap(err, "failed to parse input file", goerr.V("path", input))
			}

			uc := usecase.New(memory.New(), usecase.WithPolicy(policy))

			foundation := model.Foundation{
				Industry: file.Industry,
				Revenue:  file.Revenue,
			}
			result, err := uc.Audit.RunAudit(ctx, foundation, file.Answers)
			if err != nil {
				return goerr.Wrap(err, "audit failed")
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(result.Report); err != nil {
				return goerr.Wrap(err, "failed to encode report")
			}

			return nil
		},
	}
}
