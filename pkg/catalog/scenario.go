package catalog

import (
	"encoding/json"
	"math"
)

// Score is the raw output of a scenario scoring function. Values may fall
// outside [1,10] or be non-finite; the category scorer clamps and guards
// before they reach any monetary calculation.
type Score struct {
	Severity float64
	Latency  float64
}

// Scenario pairs the question tree of one (industry, category) cell with
// its scoring function. Q2 is a pure function of the first answer: it may
// return nil (no second question) or a question whose shape depends on the
// answer, which keeps the tree branchable up to depth 2.
type Scenario struct {
	ContextTags []string
	Q1          Question
	Q2          func(answer1 any) *Question
	Score       func(answer1, answer2 any) Score
}

// number coerces a raw slider answer into a float64. Non-numeric answers
// yield NaN, which the scorer later replaces with the scale midpoint.
func number(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return math.NaN()
		}
		return f
	default:
		return math.NaN()
	}
}

// choice coerces a raw picker/binary answer into its option string
func choice(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

// normalize maps a 0-100 slider value onto the 1-10 scale
func normalize(v float64) float64 {
	return math.Ceil(v / 10)
}
