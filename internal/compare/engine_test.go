package compare

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vetfin/vetplan/internal/calculation"
	"github.com/vetfin/vetplan/internal/domain"
)

func testConfiguration() *domain.Configuration {
	base := domain.RetirementInputs{
		CurrentAge:          35,
		RetirementAge:       65,
		MonthlyExpenses:     6000,
		MonthlyContribution: 500,
		CurrentSavings:      50000,
		RiskTolerance:       50,
		Market:              domain.MarketAverage,
	}
	alt := base
	alt.RiskTolerance = 80

	return &domain.Configuration{
		Profile: "test",
		Scenarios: []domain.Scenario{
			{Name: "Baseline", Retirement: base},
			{Name: "Aggressive", Retirement: alt},
		},
	}
}

func TestCompareEngine_Compare(t *testing.T) {
	engine := NewCompareEngine(calculation.NewCalculationEngine())

	compSet, err := engine.Compare(context.Background(), testConfiguration(), CompareOptions{
		BaseScenarioName: "Baseline",
		Templates:        []string{"postpone_3yr", "weak_market", "contribute_more_250"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Baseline", compSet.BaseScenarioName)
	require.NotNil(t, compSet.BaseResult)
	assert.Equal(t, "834660.95", compSet.BaseResult.Shortfall.StringFixed(2))
	assert.Equal(t, "713.72", compSet.BaseResult.RequiredMonthlySavings.StringFixed(2))
	assert.Equal(t, "15.8", compSet.BaseResult.SuccessProbability.StringFixed(1))
	assert.Equal(t, 74, compSet.BaseResult.EarliestRetirementAge)

	require.Len(t, compSet.AlternativeResults, 3)

	postpone := compSet.AlternativeResults[0]
	assert.Equal(t, "Baseline_postpone_3yr", postpone.ScenarioName)
	assert.Equal(t, "Postpone retirement by 3 years", postpone.Description)
	assert.Equal(t, 68, postpone.RetirementAge)
	assert.True(t, postpone.SavingsDiffFromBase.IsPositive())
	assert.True(t, postpone.ShortfallDiffFromBase.IsNegative())

	weak := compSet.AlternativeResults[1]
	assert.Equal(t, "below", weak.Market)
	assert.Equal(t, 12, weak.EarliestAgeDiff)
	assert.True(t, weak.SuccessDiffFromBase.IsNegative())

	more := compSet.AlternativeResults[2]
	assert.Equal(t, 71, more.EarliestRetirementAge)
	assert.Equal(t, "4.7", more.SuccessDiffFromBase.StringFixed(1))

	assert.Equal(t, []string{
		"Best Outlook: Baseline_contribute_more_250 raises the success score by 4.7 points",
		"Smallest Shortfall: Baseline_contribute_more_250 reduces the shortfall by $292363",
		"Earliest Retirement: Baseline_contribute_more_250 could retire at 71, 3 years sooner",
		"Lowest Savings Burden: Baseline_postpone_3yr needs $308 less per month",
	}, compSet.Recommendations)
}

func TestCompareEngine_Compare_DefaultsToFirstScenario(t *testing.T) {
	engine := NewCompareEngine(calculation.NewCalculationEngine())

	compSet, err := engine.Compare(context.Background(), testConfiguration(), CompareOptions{})

	require.NoError(t, err)
	assert.Equal(t, "Baseline", compSet.BaseScenarioName)
	assert.Empty(t, compSet.AlternativeResults)
	assert.Empty(t, compSet.Recommendations)
}

func TestCompareEngine_Compare_Errors(t *testing.T) {
	engine := NewCompareEngine(calculation.NewCalculationEngine())
	ctx := context.Background()

	_, err := engine.Compare(ctx, testConfiguration(), CompareOptions{BaseScenarioName: "Missing"})
	assert.EqualError(t, err, "base scenario Missing not found in configuration")

	_, err = engine.Compare(ctx, testConfiguration(), CompareOptions{Templates: []string{"teleport"}})
	assert.EqualError(t, err, "template teleport not found")

	_, err = engine.Compare(ctx, &domain.Configuration{}, CompareOptions{})
	assert.EqualError(t, err, "no scenarios provided")

	// Retiring 2 years earlier than 36 leaves no working years
	cfg := testConfiguration()
	cfg.Scenarios[0].Retirement.RetirementAge = 36
	_, err = engine.Compare(ctx, cfg, CompareOptions{Templates: []string{"retire_early_2yr"}})
	assert.ErrorContains(t, err, "failed to apply template retire_early_2yr")
}

func TestCompareEngine_Compare_Canceled(t *testing.T) {
	engine := NewCompareEngine(calculation.NewCalculationEngine())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.Compare(ctx, testConfiguration(), CompareOptions{Templates: []string{"aggressive"}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCompareEngine_NilRegistryUsesBuiltIns(t *testing.T) {
	engine := NewCompareEngine(calculation.NewCalculationEngine())
	engine.TemplateRegistry = nil

	compSet, err := engine.Compare(context.Background(), testConfiguration(), CompareOptions{Templates: []string{"conservative"}})
	require.NoError(t, err)
	assert.Equal(t, "Baseline_conservative", compSet.AlternativeResults[0].ScenarioName)
	assert.Nil(t, engine.TemplateRegistry)
}

func TestCompareEngine_CompareScenarios(t *testing.T) {
	engine := NewCompareEngine(calculation.NewCalculationEngine())

	compSet, err := engine.CompareScenarios(context.Background(), testConfiguration(), "Baseline", []string{"Aggressive"})

	require.NoError(t, err)
	require.Len(t, compSet.AlternativeResults, 1)
	alt := compSet.AlternativeResults[0]
	assert.Equal(t, "aggressive", alt.RiskProfile)
	assert.True(t, alt.SavingsDiffFromBase.GreaterThan(decimal.Zero))

	_, err = engine.CompareScenarios(context.Background(), testConfiguration(), "Baseline", []string{"Nope"})
	assert.EqualError(t, err, "alternative scenario Nope not found")
}

func TestComparisonSet_ToPlanComparison(t *testing.T) {
	engine := NewCompareEngine(calculation.NewCalculationEngine())
	compSet, err := engine.Compare(context.Background(), testConfiguration(), CompareOptions{Templates: []string{"aggressive"}})
	require.NoError(t, err)

	comparison := compSet.ToPlanComparison("test")

	assert.Equal(t, "test", comparison.Profile)
	require.Len(t, comparison.Plans, 2)
	assert.Equal(t, "Baseline", comparison.Plans[0].Name)
	assert.Equal(t, "Baseline_aggressive", comparison.Plans[1].Name)
}
