package catalog

import (
	"github.com/thecontlab/continuity-sim/pkg/domain/types"
)

// genericScenarios is the fallback scenario set used for every category an
// industry does not override, and for industries absent from the catalog.
func genericScenarios() map[types.RiskCategory]Scenario {
	return map[types.RiskCategory]Scenario{
		types.CategorySupplyChain: {
			ContextTags: []string{"Single Source", "Logistics", "Quality Fade"},
			Q1: Question{
				ID:       "gen_supply",
				Type:     types.QuestionSlider,
				Label:    "Supplier Concentration",
				MinLabel: "Single Source",
				MaxLabel: "Distributed",
				Tooltip:  `Risk increases when a large % of revenue relies on a single vendor. "Safe" usually means no vendor controls >20% of your input.`,
			},
			Q2: func(any) *Question {
				return &Question{
					ID:      "gen_rec",
					Type:    types.QuestionPicker,
					Label:   "Recovery Plan Status",
					Options: []string{"Full Backup Active", "Plan Exists (Untested)", "No Plan"},
					Tooltip: "Do you have a written, tested plan to switch vendors immediately if your primary source fails?",
				}
			},
			Score: func(a1, a2 any) Score {
				latency := 6.0
				switch choice(a2) {
				case "Full Backup Active":
					latency = 3
				case "No Plan":
					latency = 9
				}
				return Score{Severity: normalize(100 - number(a1)), Latency: latency}
			},
		},
		types.CategoryCashFlow: {
			ContextTags: []string{"Late Payments", "Payroll"},
			Q1: Question{
				ID:       "gen_cash",
				Type:     types.QuestionSlider,
				Label:    "Cash Runway",
				MinLabel: "< 30 Days",
				MaxLabel: "6+ Months",
			},
			Q2: func(any) *Question { return nil },
			Score: func(a1, _ any) Score {
				return Score{Severity: normalize(100 - number(a1)), Latency: 5}
			},
		},
		types.CategoryWorkforce: {
			ContextTags: []string{"Key Person", "Burnout"},
			Q1: Question{
				ID:       "gen_wf",
				Type:     types.QuestionSlider,
				Label:    "Key Person Dependency",
				MinLabel: "Redundant Teams",
				MaxLabel: "Single Points of Failure",
			},
			Q2: func(any) *Question { return nil },
			Score: func(a1, _ any) Score {
				return Score{Severity: normalize(number(a1)), Latency: 5}
			},
		},
		types.CategoryInfrastructureTools: {
			ContextTags: []string{"SaaS Outage", "Data Loss"},
			Q1: Question{
				ID:       "gen_tool",
				Type:     types.QuestionSlider,
				Label:    "Platform Dependency",
				MinLabel: "Open Standard",
				MaxLabel: "Vendor Locked",
			},
			Q2: func(any) *Question { return nil },
			Score: func(a1, _ any) Score {
				return Score{Severity: normalize(number(a1)), Latency: 5}
			},
		},
		types.CategoryWeatherPhysical: {
			ContextTags: []string{"Access", "Power"},
			Q1: Question{
				ID:       "gen_wea",
				Type:     types.QuestionSlider,
				Label:    "Physical Vulnerability",
				MinLabel: "Safe Zone",
				MaxLabel: "High Risk Zone",
			},
			Q2: func(any) *Question { return nil },
			Score: func(a1, _ any) Score {
				return Score{Severity: normalize(number(a1)), Latency: 5}
			},
		},
	}
}
