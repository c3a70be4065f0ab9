package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vetfin/vetplan/internal/domain"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input   string
		want    float64
		wantErr string
	}{
		{"3000", 3000, ""},
		{" 1,250.50 ", 1250.5, ""},
		{"$50,000", 50000, ""},
		{"0", 0, ""},
		{"", 0, "monthly_expenses: is required"},
		{"   ", 0, "monthly_expenses: is required"},
		{"abc", 0, "monthly_expenses: must be a number"},
		{"-10", 0, "monthly_expenses: cannot be negative"},
		{"NaN", 0, "monthly_expenses: must be a finite number"},
		{"Inf", 0, "monthly_expenses: must be a finite number"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAmount("monthly_expenses", tt.input)
			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAge(t *testing.T) {
	got, err := ParseAge("current_age", " 42 ")
	require.NoError(t, err)
	assert.Equal(t, 42, got)

	_, err = ParseAge("current_age", "42.5")
	assert.EqualError(t, err, "current_age: must be a whole number")

	_, err = ParseAge("current_age", "")
	assert.EqualError(t, err, "current_age: is required")

	_, err = ParseAge("retirement_age", "101")
	assert.EqualError(t, err, "retirement_age: must be between 0 and 100")
}

func TestParsePercent(t *testing.T) {
	got, err := ParsePercent("risk_tolerance", "65%")
	require.NoError(t, err)
	assert.Equal(t, 65.0, got)

	_, err = ParsePercent("risk_tolerance", "120")
	assert.EqualError(t, err, "risk_tolerance: must be between 0 and 100")

	_, err = ParsePercent("risk_tolerance", "lots")
	assert.EqualError(t, err, "risk_tolerance: must be a number")
}

func TestParseMarket(t *testing.T) {
	m, err := ParseMarket("Below Average")
	require.NoError(t, err)
	assert.Equal(t, domain.MarketBelowAverage, m)

	m, err = ParseMarket("")
	require.NoError(t, err)
	assert.Equal(t, domain.MarketAverage, m)

	_, err = ParseMarket("moon")
	var fe *FieldParseError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "market", fe.Field)
}

func TestParseBool(t *testing.T) {
	for _, s := range []string{"yes", "Y", "true", "1", "on"} {
		v, err := ParseBool("receiving_pension", s)
		require.NoError(t, err, s)
		assert.True(t, v, s)
	}
	for _, s := range []string{"", "no", "false", "0", "off"} {
		v, err := ParseBool("receiving_pension", s)
		require.NoError(t, err, s)
		assert.False(t, v, s)
	}
	_, err := ParseBool("receiving_pension", "maybe")
	assert.EqualError(t, err, "receiving_pension: must be yes or no")
}

func validForm() FormInputs {
	return FormInputs{
		CurrentAge:          "35",
		RetirementAge:       "65",
		MonthlyExpenses:     "3,000",
		MonthlyContribution: "500",
		CurrentSavings:      "$50,000",
		DisabilityMonthly:   "950",
		ReceivingDisability: "yes",
		RiskTolerance:       "50",
		Market:              "average",
	}
}

func TestFormInputs_Resolve(t *testing.T) {
	in, err := validForm().Resolve()
	require.NoError(t, err)

	assert.Equal(t, domain.RetirementInputs{
		CurrentAge:          35,
		RetirementAge:       65,
		MonthlyExpenses:     3000,
		MonthlyContribution: 500,
		CurrentSavings:      50000,
		DisabilityMonthly:   950,
		ReceivingDisability: true,
		RiskTolerance:       50,
		Market:              domain.MarketAverage,
	}, in)
}

func TestFormInputs_Resolve_AggregatesParseErrors(t *testing.T) {
	form := validForm()
	form.CurrentAge = "thirty"
	form.MonthlyExpenses = ""
	form.RiskTolerance = "200"
	form.Market = "sideways"

	_, err := form.Resolve()

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Fields, 4)
	for _, f := range []string{"current_age", "monthly_expenses", "risk_tolerance", "market"} {
		assert.True(t, verr.HasField(f), f)
	}
}

func TestFormInputs_Resolve_RejectsRetirementBeforeCurrentAge(t *testing.T) {
	form := validForm()
	form.RetirementAge = "30"

	_, err := form.Resolve()

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.True(t, verr.HasField("retirement_age"))
}
