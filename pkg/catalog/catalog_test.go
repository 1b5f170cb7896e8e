package catalog_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/thecontlab/continuity-sim/pkg/catalog"
	"github.com/thecontlab/continuity-sim/pkg/domain/types"
)

func TestDefaultSetCoversAllCategories(t *testing.T) {
	cat := catalog.New()

	for _, category := range types.AllCategories() {
		scenario, err := cat.Lookup(catalog.DefaultIndustry, category)
		gt.NoError(t, err)
		gt.Value(t, scenario).NotNil()
		gt.NoError(t, scenario.Q1.Validate())
	}
}

func TestEveryIndustryCoversAllCategories(t *testing.T) {
	cat := catalog.New()

	for _, industry := range cat.Industries() {
		for _, category := range types.AllCategories() {
			scenario, err := cat.Lookup(industry, category)
			gt.NoError(t, err)
			gt.NoError(t, scenario.Q1.Validate())

			// Follow-up questions must be well formed for any first answer
			// shape the wizard can produce.
			for _, a1 := range []any{float64(0), float64(50), float64(100), "opt", nil} {
				if q2 := scenario.Q2(a1); q2 != nil {
					gt.NoError(t, q2.Validate())
				}
			}
		}
	}
}

func TestUnknownIndustryFallsBack(t *testing.T) {
	cat := catalog.New()

	fromUnknown, err := cat.Lookup("Interplanetary Mining", types.CategoryCashFlow)
	gt.NoError(t, err)
	fromDefault, err := cat.Lookup(catalog.DefaultIndustry, types.CategoryCashFlow)
	gt.NoError(t, err)

	gt.Value(t, fromUnknown.Q1.ID).Equal(fromDefault.Q1.ID)
}

func TestIndustryOverrideWins(t *testing.T) {
	cat := catalog.New()

	construction, err := cat.Lookup("Construction & Real Estate", types.CategorySupplyChain)
	gt.NoError(t, err)
	generic, err := cat.Lookup(catalog.DefaultIndustry, types.CategorySupplyChain)
	gt.NoError(t, err)

	gt.Value(t, construction.Q1.ID).Equal("supply_resilience")
	gt.String(t, construction.Q1.ID).NotEqual(generic.Q1.ID)

	// Non-overridden categories resolve through the generic set
	cash, err := cat.Lookup("Construction & Real Estate", types.CategoryCashFlow)
	gt.NoError(t, err)
	gt.Value(t, cash.Q1.ID).Equal("gen_cash")
}

func TestLookupRejectsInvalidCategory(t *testing.T) {
	cat := catalog.New()

	_, err := cat.Lookup(catalog.DefaultIndustry, types.RiskCategory("Cyber"))
	gt.Error(t, err)
}

func TestIndustriesDisplayList(t *testing.T) {
	cat := catalog.New()

	industries := cat.Industries()
	gt.Array(t, industries).Length(10)
	gt.Value(t, industries[0]).Equal("Manufacturing & Industrial")
	gt.Value(t, industries[9]).Equal("Other")

	// Skilled Trades has scenarios but is intentionally absent from the
	// display list.
	gt.B(t, cat.HasIndustry("Skilled Trades")).True()
	for _, name := range industries {
		gt.String(t, name).NotEqual("Skilled Trades")
	}
}

func TestConstructionSupplyChainScoring(t *testing.T) {
	cat := catalog.New()
	scenario, err := cat.Lookup("Construction & Real Estate", types.CategorySupplyChain)
	gt.NoError(t, err)

	// Mid stability with a just-in-time buffer lands at 8, which also
	// pushes latency into the elevated tier.
	score := scenario.Score(float64(50), "< 3 Days (JIT)")
	gt.Value(t, score.Severity).Equal(8.0)
	gt.Value(t, score.Latency).Equal(8.0)

	// A large stockpile subtracts from the risk and keeps latency low
	score = scenario.Score(float64(50), "Massive Stockpile (>1 Mo)")
	gt.Value(t, score.Severity).Equal(3.0)
	gt.Value(t, score.Latency).Equal(4.0)
}

func TestGenericScoringNormalization(t *testing.T) {
	cat := catalog.New()
	scenario, err := cat.Lookup(catalog.DefaultIndustry, types.CategoryCashFlow)
	gt.NoError(t, err)

	// The cash runway slider is inverted: a long runway means low severity
	gt.Value(t, scenario.Score(float64(100), nil).Severity).Equal(0.0)
	gt.Value(t, scenario.Score(float64(0), nil).Severity).Equal(10.0)
	gt.Value(t, scenario.Score(float64(41), nil).Severity).Equal(6.0)
}

func TestScoringPropagatesNaN(t *testing.T) {
	cat := catalog.New()
	scenario, err := cat.Lookup(catalog.DefaultIndustry, types.CategoryWorkforce)
	gt.NoError(t, err)

	score := scenario.Score("not a number", nil)
	gt.B(t, score.Severity != score.Severity).True() // NaN
}
