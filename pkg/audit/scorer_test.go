package audit_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/thecontlab/continuity-sim/pkg/audit"
	"github.com/thecontlab/continuity-sim/pkg/domain/model/config"
	"github.com/thecontlab/continuity-sim/pkg/domain/types"
)

func TestScoreSkippedCategory(t *testing.T) {
	engine := audit.New(nil, nil)

	input, err := engine.Score("default", types.CategoryCashFlow, nil, nil, true)
	gt.NoError(t, err)

	gt.Value(t, input.Severity).Equal(7)
	gt.Value(t, input.Latency).Equal(7)
	gt.B(t, input.Skipped).True()
	gt.Value(t, input.Metadata).Nil()
}

func TestScoreShadowFollowsPolicy(t *testing.T) {
	policy := config.DefaultPolicy()
	policy.ShadowSeverity = 4
	policy.ShadowLatency = 6
	engine := audit.New(nil, policy)

	input, err := engine.Score("default", types.CategoryWorkforce, nil, nil, true)
	gt.NoError(t, err)

	gt.Value(t, input.Severity).Equal(4)
	gt.Value(t, input.Latency).Equal(6)
}

func TestScoreClampsToScale(t *testing.T) {
	engine := audit.New(nil, nil)

	// A full cash runway scores raw severity 0, clamped up to 1
	input, err := engine.Score("default", types.CategoryCashFlow, float64(100), nil, false)
	gt.NoError(t, err)
	gt.Value(t, input.Severity).Equal(1)

	// The construction supply scenario can exceed 10 before clamping
	input, err = engine.Score("Construction & Real Estate", types.CategorySupplyChain,
		float64(10), "< 3 Days (JIT)", false)
	gt.NoError(t, err)
	gt.Value(t, input.Severity).Equal(10)
	gt.Value(t, input.Latency).Equal(8)
}

func TestScoreSubstitutesMidpointForGarbage(t *testing.T) {
	engine := audit.New(nil, nil)

	// A non-numeric slider answer propagates NaN through the scoring
	// function; the scorer substitutes the midpoint instead of failing.
	input, err := engine.Score("default", types.CategoryWorkforce, "garbage", nil, false)
	gt.NoError(t, err)
	gt.Value(t, input.Severity).Equal(5)
	gt.Value(t, input.Latency).Equal(5)
}

func TestScoreRecordsProvenance(t *testing.T) {
	engine := audit.New(nil, nil)

	input, err := engine.Score("Construction & Real Estate", types.CategorySupplyChain,
		float64(50), "< 3 Days (JIT)", false)
	gt.NoError(t, err)

	meta := input.Metadata
	gt.Value(t, meta).NotNil()
	gt.Value(t, meta.Question1Label).Equal("Material Lead Time Volatility")
	gt.Value(t, meta.Answer1Value).Equal(any(float64(50)))
	gt.Value(t, meta.Question2Label).Equal("On-Site Inventory Buffer")
	gt.Value(t, meta.Answer2Value).Equal(any("< 3 Days (JIT)"))
	gt.Array(t, meta.SelectedTags).Length(4)
}

func TestScoreSingleQuestionScenarioOmitsSecondAnswer(t *testing.T) {
	engine := audit.New(nil, nil)

	input, err := engine.Score("default", types.CategoryCashFlow, float64(30), nil, false)
	gt.NoError(t, err)

	gt.Value(t, input.Metadata.Question2Label).Equal("")
	gt.Value(t, input.Metadata.Answer2Value).Nil()
}
