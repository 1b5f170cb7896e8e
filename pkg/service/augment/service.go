// Package augment embellishes the deterministic audit narrative with
// LLM-generated prose. It is strictly optional: callers time-box the call
// and fall back to the deterministic narrative on any failure, and the
// response schema carries no numeric fields.
package augment

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"text/template"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
	"github.com/thecontlab/continuity-sim/pkg/domain/interfaces"
	"github.com/thecontlab/continuity-sim/pkg/domain/model"
)

//go:embed prompt/augment_system.md
var systemPromptTmpl string

var systemPrompt = template.Must(template.New("augment_system").Parse(systemPromptTmpl))

// Service generates narrative augmentations through a gollem LLM client
type Service struct {
	llmClient gollem.LLMClient
}

var _ interfaces.Augmenter = &Service{}

// New creates an augmentation service. The client must not be nil.
func New(llmClient gollem.LLMClient) *Service {
	return &Service{llmClient: llmClient}
}

// promptInput is one category line rendered into the prompt
type promptInput struct {
	Category string
	Severity int
	Latency  int
	Skipped  bool
	Detail   string
}

// promptData holds all data for the system prompt template
type promptData struct {
	Industry         string
	PrimaryCategory  string
	PrimaryMagnitude int
	VolatilityIndex  int
	Inputs           []promptInput
}

// augmentResponse mirrors the JSON schema requested from the model
type augmentResponse struct {
	Headline        string `json:"headline"`
	CriticalFinding string `json:"critical_finding"`
	PriorityFixList []struct {
		Timeline string `json:"timeline"`
		Task     string `json:"task"`
		Target   string `json:"target"`
	} `json:"priority_fix_list"`
}

func responseSchema() *gollem.Parameter {
	fixItem := &gollem.Parameter{
		Type: gollem.TypeObject,
		Properties: map[string]*gollem.Parameter{
			"timeline": {
				Type:        gollem.TypeString,
				Description: `One of "30 Days", "60 Days", "90 Days".`,
				Required:    true,
			},
			"task": {
				Type:        gollem.TypeString,
				Description: "Concrete remediation task.",
				Required:    true,
			},
			"target": {
				Type:        gollem.TypeString,
				Description: "Short label of what the task protects.",
				Required:    true,
			},
		},
	}

	return &gollem.Parameter{
		Title:       "AuditNarrative",
		Description: "Narrative fields of a continuity risk audit report",
		Type:        gollem.TypeObject,
		Properties: map[string]*gollem.Parameter{
			"headline": {
				Type:        gollem.TypeString,
				Description: "ALL CAPS headline naming the primary exposure, at most 6 words.",
				Required:    true,
			},
			"critical_finding": {
				Type:        gollem.TypeString,
				Description: "2-3 sentence finding tied back to the user's answers.",
				Required:    true,
			},
			"priority_fix_list": {
				Type:        gollem.TypeArray,
				Description: "Exactly 3 remediation entries (30/60/90 days).",
				Items:       fixItem,
				Required:    true,
			},
		},
	}
}

// Augment asks the model for replacement narrative fields
func (s *Service) Augment(ctx context.Context, foundation model.Foundation, inputs []model.RiskInput, mechanics *model.Mechanics) (*model.Augmentation, error) {
	prompt, err := buildPrompt(foundation, inputs, mechanics)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build augmentation prompt")
	}

	session, err := s.llmClient.NewSession(ctx,
		gollem.WithSessionContentType(gollem.ContentTypeJSON),
		gollem.WithSessionResponseSchema(responseSchema()),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create augmentation session")
	}

	resp, err := session.GenerateContent(ctx, gollem.Text(prompt))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to generate augmentation")
	}
	if len(resp.Texts) == 0 {
		return nil, goerr.New("augmentation returned empty result")
	}

	var parsed augmentResponse
	if err := json.Unmarshal([]byte(resp.Texts[0]), &parsed); err != nil {
		return nil, goerr.Wrap(err, "failed to parse augmentation JSON",
			goerr.V("response", resp.Texts[0]))
	}

	aug := &model.Augmentation{
		Headline:        parsed.Headline,
		CriticalFinding: parsed.CriticalFinding,
	}
	for _, fix := range parsed.PriorityFixList {
		aug.PriorityFixList = append(aug.PriorityFixList, model.PriorityFix{
			Timeline: fix.Timeline,
			Task:     fix.Task,
			Target:   fix.Target,
		})
	}

	return aug, nil
}

func buildPrompt(foundation model.Foundation, inputs []model.RiskInput, mechanics *model.Mechanics) (string, error) {
	data := promptData{
		Industry:         foundation.Industry,
		PrimaryCategory:  mechanics.PrimaryRiskCategory,
		PrimaryMagnitude: mechanics.PrimaryMagnitude(),
		VolatilityIndex:  mechanics.VolatilityIndex,
	}

	for _, input := range inputs {
		line := promptInput{
			Category: input.Category.String(),
			Severity: input.Severity,
			Latency:  input.Latency,
			Skipped:  input.Skipped,
		}
		if input.Metadata != nil && input.Metadata.Answer1Value != nil {
			line.Detail = fmt.Sprintf("%s: %v", input.Metadata.Question1Label, input.Metadata.Answer1Value)
			if input.Metadata.Answer2Value != nil {
				line.Detail += fmt.Sprintf("; %s: %v", input.Metadata.Question2Label, input.Metadata.Answer2Value)
			}
		}
		data.Inputs = append(data.Inputs, line)
	}

	var buf bytes.Buffer
	if err := systemPrompt.Execute(&buf, data); err != nil {
		return "", goerr.Wrap(err, "failed to render augmentation prompt")
	}
	return buf.String(), nil
}
