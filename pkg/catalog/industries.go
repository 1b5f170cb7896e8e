package catalog

import (
	"github.com/thecontlab/continuity-sim/pkg/domain/types"
)

// Industry override sets. Each function returns only the categories the
// industry customizes; the rest resolve through the generic fallback.

func constructionScenarios() map[types.RiskCategory]Scenario {
	return map[types.RiskCategory]Scenario{
		types.CategorySupplyChain: {
			ContextTags: []string{"Lumber Shortage", "Steel Tariffs", "Vendor Insolvency", "Shipping Delays"},
			Q1: Question{
				ID:         "supply_resilience",
				Type:       types.QuestionSlider,
				Label:      "Material Lead Time Volatility",
				HelperText: "Predictability of critical path delivery dates.",
				MinLabel:   "Unpredictable",
				MaxLabel:   "Guaranteed",
				Tooltip:    `In construction, "Volatility" is the enemy. Even if you have a supplier, if their delivery dates fluctuate by >20%, your project schedule (and margin) is at risk.`,
			},
			Q2: func(any) *Question {
				return &Question{
					ID:      "inventory_buffer",
					Type:    types.QuestionPicker,
					Label:   "On-Site Inventory Buffer",
					Options: []string{"< 3 Days (JIT)", "1-2 Weeks", "Massive Stockpile (>1 Mo)"},
					Tooltip: "Just-in-Time (JIT) is efficient for cash flow but fatal for continuity. A buffer allows you to keep working even if the supply chain breaks.",
				}
			},
			Score: func(a1, a2 any) Score {
				risk := normalize(100 - number(a1))
				switch choice(a2) {
				case "< 3 Days (JIT)":
					risk += 3
				case "Massive Stockpile (>1 Mo)":
					risk -= 2
				}
				latency := 4.0
				if risk > 7 {
					latency = 8
				}
				return Score{Severity: risk, Latency: latency}
			},
		},
	}
}

func skilledTradesScenarios() map[types.RiskCategory]Scenario {
	return map[types.RiskCategory]Scenario{
		types.CategoryWorkforce: {
			ContextTags: []string{"Labor Shortage", "Aging Workforce", "Training Gaps"},
			Q1: Question{
				ID:       "hiring_difficulty",
				Type:     types.QuestionSlider,
				Label:    "Time-to-Hire for Lead Technicians",
				MinLabel: "< 2 Weeks",
				MaxLabel: "> 3 Months",
				Tooltip:  "If your lead electrician or plumber quits today, how long until a fully qualified replacement is in the van generating revenue?",
			},
			Q2: func(any) *Question {
				return &Question{
					ID:      "apprentice_ratio",
					Type:    types.QuestionPicker,
					Label:   "Apprentice Pipeline",
					Options: []string{"Robust (1:1 Ratio)", "Thin Pipeline", "None / Rely on Senior Hires"},
					Tooltip: "Buying talent is expensive and slow. Building talent (Apprenticeships) lowers latency but requires upfront investment.",
				}
			},
			Score: func(a1, a2 any) Score {
				latency := 5.0
				switch choice(a2) {
				case "None / Rely on Senior Hires":
					latency = 9
				case "Robust (1:1 Ratio)":
					latency = 3
				}
				return Score{Severity: normalize(number(a1)), Latency: latency}
			},
		},
		types.CategorySupplyChain: {
			ContextTags: []string{"Parts Availability", "Distributor Lock-in", "Price Inflation"},
			Q1: Question{
				ID:       "parts_availability",
				Type:     types.QuestionSlider,
				Label:    "Parts Availability Risk",
				MinLabel: "Always in Stock",
				MaxLabel: "Backorder Hell",
				Tooltip:  "Are you constantly waiting on HVAC units, breakers, or specialized fittings? Waiting = No Revenue.",
			},
			Q2: func(any) *Question {
				return &Question{
					ID:      "distributor_count",
					Type:    types.QuestionPicker,
					Label:   "Distributor Redundancy",
					Options: []string{"3+ Active Accounts", "Single Primary + Backup", "Single Source Loyalty"},
					Tooltip: "Loyalty to one supply house is great for pricing until they run out of stock. Do you have active credit lines elsewhere?",
				}
			},
			Score: func(a1, a2 any) Score {
				latency := 4.0
				if choice(a2) == "Single Source Loyalty" {
					latency = 8
				}
				return Score{Severity: normalize(number(a1)), Latency: latency}
			},
		},
	}
}

func softwareScenarios() map[types.RiskCategory]Scenario {
	return map[types.RiskCategory]Scenario{
		// Supply chain maps to third-party API dependency for software shops
		types.CategorySupplyChain: {
			ContextTags: []string{"API Dependency", "Vendor Insolvency", "Price Hikes"},
			Q1: Question{
				ID:         "api_dependency",
				Type:       types.QuestionSlider,
				Label:      "Critical API Dependency",
				HelperText: "Reliance on 3rd party APIs (e.g. OpenAI, Stripe, Twilio).",
				MinLabel:   "Independent",
				MaxLabel:   "Totally Dependent",
				Tooltip:    `Your "Supply Chain" is code. If a critical API (like an AI model or SMS gateway) goes down or triples its price, does your product stop working?`,
			},
			Q2: func(any) *Question {
				return &Question{
					ID:      "fallback_code",
					Type:    types.QuestionPicker,
					Label:   "API Fallback Capability",
					Options: []string{"Auto-Failover", "Manual Switch", "Hard-Coded / No Backup"},
					Tooltip: "Can you switch providers (e.g. from Twilio to Plivo) instantly via a code switch, or would it require a full rewrite?",
				}
			},
			Score: func(a1, a2 any) Score {
				latency := 5.0
				switch choice(a2) {
				case "Auto-Failover":
					latency = 2
				case "Hard-Coded / No Backup":
					latency = 9
				}
				return Score{Severity: normalize(number(a1)), Latency: latency}
			},
		},
		types.CategoryWorkforce: {
			ContextTags: []string{"Bus Factor", "Burnout", "IP Retention"},
			Q1: Question{
				ID:       "bus_factor",
				Type:     types.QuestionSlider,
				Label:    `Technical "Bus Factor"`,
				MinLabel: "Documented / Distributed",
				MaxLabel: "Tribal Knowledge",
				Tooltip:  "If your Lead Engineer gets hit by a bus (or poached by Google), does development halt? 0% = Full Documentation, 100% = Only in their head.",
			},
			Q2: func(any) *Question {
				return &Question{
					ID:      "documentation",
					Type:    types.QuestionPicker,
					Label:   "Codebase Documentation",
					Options: []string{"Live/Auto-Generated", "Outdated Wiki", `None / "Ask Dave"`},
					Tooltip: "Code without documentation is a liability. It increases the time required for a new hire to become productive (Latency).",
				}
			},
			Score: func(a1, a2 any) Score {
				latency := 4.0
				if choice(a2) == `None / "Ask Dave"` {
					latency = 9
				}
				return Score{Severity: normalize(number(a1)), Latency: latency}
			},
		},
	}
}

func professionalServicesScenarios() map[types.RiskCategory]Scenario {
	return map[types.RiskCategory]Scenario{
		types.CategoryCashFlow: {
			ContextTags: []string{"Client Concentration", "WIP", "Retainers"},
			Q1: Question{
				ID:         "client_conc",
				Type:       types.QuestionSlider,
				Label:      "Revenue Concentration",
				HelperText: "% of revenue from top 3 clients.",
				MinLabel:   "Diversified (<20%)",
				MaxLabel:   "Concentrated (>60%)",
				Tooltip:    "If your biggest client fires you tomorrow, do you lose >20% of your revenue? That is a solvency risk.",
			},
			Q2: func(any) *Question {
				return &Question{
					ID:      "contract_structure",
					Type:    types.QuestionPicker,
					Label:   "Contract Consistency",
					Options: []string{"Long-term Retainers", "Mix of Both", "One-off Projects"},
					Tooltip: `Retainers provide predictable cash flow (Low Latency). "Eat what you kill" projects create feast/famine cycles (High Latency).`,
				}
			},
			Score: func(a1, a2 any) Score {
				severity := normalize(number(a1))
				if choice(a2) == "One-off Projects" {
					severity += 2
				}
				return Score{Severity: severity, Latency: 5}
			},
		},
		types.CategoryWorkforce: {
			ContextTags: []string{"Partner Burnout", "Non-Competes", "Succession"},
			Q1: Question{
				ID:       "partner_dependence",
				Type:     types.QuestionSlider,
				Label:    "Rainmaker Dependency",
				MinLabel: "Sales System",
				MaxLabel: "Founder Led Sales",
				Tooltip:  "Does new business depend entirely on the Founder's network? If so, the business has very little enterprise value without you.",
			},
			Q2: func(any) *Question {
				return &Question{
					ID:      "mid_level_management",
					Type:    types.QuestionPicker,
					Label:   "Delivery Delegation",
					Options: []string{"Team Delivers 100%", "Founder Reviews Final", "Founder Does Work"},
					Tooltip: "Can you take a 2-week vacation without the quality of work suffering? If not, you have a delivery bottleneck.",
				}
			},
			Score: func(a1, a2 any) Score {
				latency := 4.0
				if choice(a2) == "Founder Does Work" {
					latency = 9
				}
				return Score{Severity: normalize(number(a1)), Latency: latency}
			},
		},
	}
}

func logisticsScenarios() map[types.RiskCategory]Scenario {
	return map[types.RiskCategory]Scenario{
		types.CategoryWeatherPhysical: {
			ContextTags: []string{"Route Disruption", "Fuel Costs", "Vehicle Maintenance"},
			Q1: Question{
				ID:       "fleet_age",
				Type:     types.QuestionSlider,
				Label:    "Fleet Reliability (Avg Age)",
				MinLabel: "Modern (< 3 Yrs)",
				MaxLabel: "Aging (> 7 Yrs)",
				Tooltip:  "Old trucks break down. Breakdown = missed delivery + repair cost + reputational damage. It is a compounding risk.",
			},
			Q2: func(any) *Question {
				return &Question{
					ID:      "maintenance_plan",
					Type:    types.QuestionPicker,
					Label:   "Maintenance Protocol",
					Options: []string{"Predictive / PM", "Scheduled Intervals", "Run to Failure"},
					Tooltip: `Reactive maintenance ("Run to Failure") has 10x the latency of Predictive maintenance. You cannot schedule a breakdown.`,
				}
			},
			Score: func(a1, a2 any) Score {
				latency := 4.0
				if choice(a2) == "Run to Failure" {
					latency = 9
				}
				return Score{Severity: normalize(number(a1)), Latency: latency}
			},
		},
		types.CategoryWorkforce: {
			ContextTags: []string{"Driver Shortage", "Safety Compliance", "Turnover"},
			Q1: Question{
				ID:       "driver_turnover",
				Type:     types.QuestionSlider,
				Label:    "Driver Turnover Rate",
				MinLabel: "Stable (< 20%)",
				MaxLabel: "High (> 80%)",
				Tooltip:  "The industry average is high, but if you are constantly recruiting, your safety rating and delivery reliability will suffer.",
			},
			Q2: func(any) *Question {
				return &Question{
					ID:      "driver_pipeline",
					Type:    types.QuestionPicker,
					Label:   "Recruiting Pipeline",
					Options: []string{"Waitlist of Drivers", "Always Hiring", "Trucks Sitting Empty"},
					Tooltip: "A parked truck costs money. Do you have a bench of qualified drivers ready to step in?",
				}
			},
			Score: func(a1, a2 any) Score {
				latency := 5.0
				switch choice(a2) {
				case "Trucks Sitting Empty":
					latency = 10
				case "Waitlist of Drivers":
					latency = 2
				}
				return Score{Severity: normalize(number(a1)), Latency: latency}
			},
		},
	}
}

func healthcareScenarios() map[types.RiskCategory]Scenario {
	return map[types.RiskCategory]Scenario{
		types.CategoryInfrastructureTools: {
			ContextTags: []string{"EHR", "HIPAA", "Ransomware"},
			Q1: Question{
				ID:       "ehr_downtime",
				Type:     types.QuestionSlider,
				Label:    "Operational Dependency on EHR",
				MinLabel: "Can operate on Paper",
				MaxLabel: "Total Paralysis",
				Tooltip:  "If the internet cuts or ransomware hits, can you legally and safely treat patients using paper charts?",
			},
			Q2: func(any) *Question {
				return &Question{
					ID:      "cyber_insurance",
					Type:    types.QuestionPicker,
					Label:   "Cyber Insurance Coverage",
					Options: []string{"Comprehensive Policy", "Basic Coverage", "Self-Insured / None"},
					Tooltip: "Ransomware payments average $1M+. Do you have a policy that covers business interruption and data recovery?",
				}
			},
			Score: func(a1, a2 any) Score {
				latency := 8.0
				if choice(a2) == "Comprehensive Policy" {
					latency = 3
				}
				return Score{Severity: normalize(number(a1)), Latency: latency}
			},
		},
		types.CategorySupplyChain: {
			ContextTags: []string{"PPE", "Reagents", "Implants"},
			Q1: Question{
				ID:       "single_source",
				Type:     types.QuestionSlider,
				Label:    "Consumable Dependency",
				MinLabel: "Generics Available",
				MaxLabel: "Proprietary / Single",
				Tooltip:  `In healthcare, "Single Source" is a compliance risk. If a specific catheter is unavailable, can you legally use a substitute?`,
			},
			Q2: func(any) *Question {
				return &Question{
					ID:      "emergency_stock",
					Type:    types.QuestionPicker,
					Label:   "Emergency Stockpile Status",
					Options: []string{"> 1 Month On-Hand", "1-2 Weeks", "Just-in-Time"},
					Tooltip: "JIT is dangerous in MedTech. A 2-week buffer is often the minimum standard for resilience.",
				}
			},
			Score: func(a1, a2 any) Score {
				latency := 8.0
				if choice(a2) == "> 1 Month On-Hand" {
					latency = 3
				}
				return Score{Severity: normalize(number(a1)), Latency: latency}
			},
		},
	}
}

func retailScenarios() map[types.RiskCategory]Scenario {
	return map[types.RiskCategory]Scenario{
		types.CategorySupplyChain: {
			ContextTags: []string{"Inventory", "Shipping Costs", "Seasonality", "Port Strikes"},
			Q1: Question{
				ID:       "inventory_depth",
				Type:     types.QuestionSlider,
				Label:    "Inventory Turnover Risk",
				MinLabel: "Optimized",
				MaxLabel: "Volatile",
				Tooltip:  "High volatility = stockouts or dead stock. Ideally, you want a stable flow matching demand.",
			},
			Q2: func(any) *Question {
				return &Question{
					ID:      "3pl_backup",
					Type:    types.QuestionPicker,
					Label:   "Logistics / 3PL Redundancy",
					Options: []string{"Multiple Active Carriers", "Single Partner + Backup", "Single Point of Failure"},
					Tooltip: "If your main shipper raises rates or strikes, do you have an active account with a competitor?",
				}
			},
			Score: func(a1, a2 any) Score {
				latency := 4.0
				if choice(a2) == "Single Point of Failure" {
					latency = 9
				}
				return Score{Severity: normalize(number(a1)), Latency: latency}
			},
		},
	}
}

func manufacturingScenarios() map[types.RiskCategory]Scenario {
	return map[types.RiskCategory]Scenario{
		types.CategorySupplyChain: {
			ContextTags: []string{"Raw Materials", "Shipping", "Quality Control", "Custom Tooling"},
			Q1: Question{
				ID:         "single_source_components",
				Type:       types.QuestionSlider,
				Label:      "Single-Source Components",
				HelperText: "Percentage of BOM (Bill of Materials) that comes from exactly 1 factory.",
				MinLabel:   "Multi-Sourced",
				MaxLabel:   "Single-Sourced",
				Tooltip:    "If a specific part (e.g., a custom chipset or molded plastic) comes from only one factory, your production line is fragile.",
			},
			Q2: func(any) *Question {
				return &Question{
					ID:      "equipment_failure",
					Type:    types.QuestionPicker,
					Label:   "Critical Equipment Recovery",
					Options: []string{"Rapid Repair (< 1 Wk)", "Weeks (Parts Delay)", "Months (Custom Import)"},
					Tooltip: "Focus on your single most critical machine. If it fails today and parts are unavailable, how long until you are back online?",
				}
			},
			Score: func(a1, a2 any) Score {
				latency := 6.0
				switch choice(a2) {
				case "Rapid Repair (< 1 Wk)":
					latency = 3
				case "Months (Custom Import)":
					latency = 10
				}
				return Score{Severity: normalize(number(a1)), Latency: latency}
			},
		},
	}
}
