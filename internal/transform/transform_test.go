package transform

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vetfin/vetplan/internal/domain"
)

// Helper function to create a basic test scenario
func createTestScenario() *domain.Scenario {
	return &domain.Scenario{
		Name: "Test Scenario",
		Retirement: domain.RetirementInputs{
			CurrentAge:          40,
			RetirementAge:       62,
			MonthlyExpenses:     4000,
			MonthlyContribution: 600,
			CurrentSavings:      90000,
			PensionMonthly:      1800,
			DisabilityMonthly:   950,
			ReceivingDisability: true,
			RiskTolerance:       50,
			Market:              domain.MarketAverage,
		},
	}
}

func TestApplyTransforms_NilScenario(t *testing.T) {
	_, err := ApplyTransforms(nil, []ScenarioTransform{&PostponeRetirement{Years: 1}})
	assert.Error(t, err, "Expected error for nil scenario")
}

func TestApplyTransforms_EmptyTransforms(t *testing.T) {
	base := createTestScenario()

	result, err := ApplyTransforms(base, nil)

	require.NoError(t, err)
	assert.NotSame(t, base, result, "Expected a copy, got same instance")
	assert.Equal(t, base, result)
}

func TestApplyTransforms_NilTransform(t *testing.T) {
	_, err := ApplyTransforms(createTestScenario(), []ScenarioTransform{&PostponeRetirement{Years: 1}, nil})
	assert.EqualError(t, err, "transform at index 1 is nil")
}

func TestApplyTransforms_ValidationFailure(t *testing.T) {
	_, err := ApplyTransforms(createTestScenario(), []ScenarioTransform{&PostponeRetirement{Years: -1}})

	require.Error(t, err)
	var terr *TransformError
	require.True(t, errors.As(err, &terr))
	assert.Equal(t, "postpone_retirement", terr.TransformName)
	assert.Equal(t, "validate", terr.Operation)
}

func TestApplyTransforms_Chain(t *testing.T) {
	base := createTestScenario()

	result, err := ApplyTransforms(base, []ScenarioTransform{
		&PostponeRetirement{Years: 3},
		&SetRiskTolerance{Tolerance: 80},
		&SetMarketScenario{Market: domain.MarketStrong},
		&AdjustContribution{Delta: 250},
	})

	require.NoError(t, err)
	assert.Equal(t, 65, result.Retirement.RetirementAge)
	assert.Equal(t, 80.0, result.Retirement.RiskTolerance)
	assert.Equal(t, domain.MarketStrong, result.Retirement.Market)
	assert.Equal(t, 850.0, result.Retirement.MonthlyContribution)

	// Original should be unchanged
	assert.Equal(t, createTestScenario(), base)
}

func TestPostponeRetirement(t *testing.T) {
	base := createTestScenario()

	assert.NoError(t, (&PostponeRetirement{Years: 0}).Validate(base))
	assert.NoError(t, (&PostponeRetirement{Years: 38}).Validate(base))
	assert.Error(t, (&PostponeRetirement{Years: 39}).Validate(base), "past age 100")
	assert.Error(t, (&PostponeRetirement{Years: 1}).Validate(nil))
	assert.Equal(t, "Postpone retirement by 2 years", (&PostponeRetirement{Years: 2}).Description())
}

func TestRetireEarlier(t *testing.T) {
	base := createTestScenario()

	result, err := ApplyTransforms(base, []ScenarioTransform{&RetireEarlier{Years: 2}})
	require.NoError(t, err)
	assert.Equal(t, 60, result.Retirement.RetirementAge)

	err = (&RetireEarlier{Years: 22}).Validate(base)
	assert.ErrorContains(t, err, "retirement age 40 must stay after current age 40")
}

func TestSetRiskTolerance_Validate(t *testing.T) {
	base := createTestScenario()

	assert.NoError(t, (&SetRiskTolerance{Tolerance: 0}).Validate(base))
	assert.NoError(t, (&SetRiskTolerance{Tolerance: 100}).Validate(base))
	assert.Error(t, (&SetRiskTolerance{Tolerance: 101}).Validate(base))
	assert.Equal(t, "Set risk tolerance to 80 (aggressive portfolio)", (&SetRiskTolerance{Tolerance: 80}).Description())
}

func TestSetMarketScenario_Validate(t *testing.T) {
	assert.Error(t, (&SetMarketScenario{Market: "bubble"}).Validate(createTestScenario()))
	assert.Equal(t, "Assume a Below Average market", (&SetMarketScenario{Market: domain.MarketBelowAverage}).Description())
}

func TestAdjustContribution(t *testing.T) {
	base := createTestScenario()

	assert.Error(t, (&AdjustContribution{Delta: -601}).Validate(base))
	assert.NoError(t, (&AdjustContribution{Delta: -600}).Validate(base))
	assert.Equal(t, "Contribute $100 less per month", (&AdjustContribution{Delta: -100}).Description())

	// A derived contribution is fixed at its current amount before adjusting
	base.Retirement.Contribution = &domain.ContributionSource{MonthlyIncome: 6000, Percent: 10}
	result, err := (&AdjustContribution{Delta: 100}).Apply(base)
	require.NoError(t, err)
	assert.Nil(t, result.Retirement.Contribution)
	assert.Equal(t, 700.0, result.Retirement.MonthlyContribution)
	assert.NotNil(t, base.Retirement.Contribution)
}

func TestSetContributionPercent(t *testing.T) {
	base := createTestScenario()

	assert.ErrorContains(t, (&SetContributionPercent{Percent: 10}).Validate(base), "monthly income is required")

	result, err := ApplyTransforms(base, []ScenarioTransform{&SetContributionPercent{Percent: 15, Income: 5000}})
	require.NoError(t, err)
	require.NotNil(t, result.Retirement.Contribution)
	assert.Equal(t, domain.ContributionSource{MonthlyIncome: 5000, Percent: 15}, *result.Retirement.Contribution)

	// Income carries over from an existing source
	again, err := ApplyTransforms(result, []ScenarioTransform{&SetContributionPercent{Percent: 20}})
	require.NoError(t, err)
	assert.Equal(t, 5000.0, again.Retirement.Contribution.MonthlyIncome)
	assert.Equal(t, 15.0, result.Retirement.Contribution.Percent)
}

func TestStartGuaranteedIncome(t *testing.T) {
	base := createTestScenario()

	result, err := ApplyTransforms(base, []ScenarioTransform{&StartGuaranteedIncome{Pension: true}})
	require.NoError(t, err)
	assert.True(t, result.Retirement.ReceivingPension)
	assert.True(t, result.Retirement.ReceivingDisability)
	assert.False(t, base.Retirement.ReceivingPension)

	assert.Error(t, (&StartGuaranteedIncome{}).Validate(base))

	base.Retirement.PensionMonthly = 0
	assert.ErrorContains(t, (&StartGuaranteedIncome{Pension: true}).Validate(base), "no pension amount")
	assert.Equal(t, "Start receiving pension and disability now", (&StartGuaranteedIncome{Pension: true, Disability: true}).Description())
}

func TestSetGuaranteedIncome(t *testing.T) {
	result, err := (&SetGuaranteedIncome{Pension: 2500, Disability: -1}).Apply(createTestScenario())

	require.NoError(t, err)
	assert.Equal(t, 2500.0, result.Retirement.PensionMonthly)
	assert.Equal(t, 950.0, result.Retirement.DisabilityMonthly)
}

func TestTransformError(t *testing.T) {
	inner := errors.New("boom")
	err := NewTransformError("set_risk", "apply", "bad value", inner)

	assert.EqualError(t, err, "transform set_risk (apply): bad value: boom")
	assert.ErrorIs(t, err, inner)
	assert.EqualError(t, NewTransformError("set_risk", "validate", "bad value", nil), "transform set_risk (validate): bad value")
}

func TestApplyTransforms_StepNumberInError(t *testing.T) {
	_, err := ApplyTransforms(createTestScenario(), []ScenarioTransform{
		&PostponeRetirement{Years: 1},
		&SetRiskTolerance{Tolerance: 150},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "step 2: ")

	var terr *TransformError
	require.True(t, errors.As(err, &terr))
	assert.Equal(t, "set_risk", terr.TransformName)
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "", Describe(nil))
	assert.Equal(t,
		(&PostponeRetirement{Years: 2}).Description()+" + "+(&AdjustContribution{Delta: 100}).Description(),
		Describe([]ScenarioTransform{&PostponeRetirement{Years: 2}, nil, &AdjustContribution{Delta: 100}}))
}
