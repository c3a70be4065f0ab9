package domain

import (
	"math"
	"strconv"
)

// Age bounds accepted by Validate
const (
	MinCurrentAge = 18
	MaxPlanAge    = 100
)

// Validate checks the inputs before a calculation. Zero expenses and zero
// contributions are valid; a retirement age at or before the current age is not.
func (in RetirementInputs) Validate() error {
	verr := &ValidationError{}

	if in.CurrentAge < MinCurrentAge || in.CurrentAge > MaxPlanAge {
		verr.Add("current_age", strconv.Itoa(in.CurrentAge), "must be between 18 and 100")
	}
	if in.RetirementAge > MaxPlanAge {
		verr.Add("retirement_age", strconv.Itoa(in.RetirementAge), "must be 100 or less")
	} else if in.RetirementAge <= in.CurrentAge {
		verr.Add("retirement_age", strconv.Itoa(in.RetirementAge), "must be after the current age")
	}

	checkAmount(verr, "monthly_expenses", in.MonthlyExpenses)
	checkAmount(verr, "monthly_contribution", in.MonthlyContribution)
	checkAmount(verr, "current_savings", in.CurrentSavings)
	checkAmount(verr, "pension_monthly", in.PensionMonthly)
	checkAmount(verr, "disability_monthly", in.DisabilityMonthly)

	if in.Contribution != nil {
		checkAmount(verr, "contribution.monthly_income", in.Contribution.MonthlyIncome)
		checkPercent(verr, "contribution.percent", in.Contribution.Percent)
	}
	checkPercent(verr, "risk_tolerance", in.RiskTolerance)

	if in.Market != "" && !in.Market.Valid() {
		verr.Add("market", string(in.Market), "must be strong, average or below")
	}

	return verr.ErrOrNil()
}

func checkAmount(verr *ValidationError, field string, v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		verr.Add(field, formatFloat(v), "must be a finite number")
	} else if v < 0 {
		verr.Add(field, formatFloat(v), "cannot be negative")
	}
}

func checkPercent(verr *ValidationError, field string, v float64) {
	if math.IsNaN(v) || v < 0 || v > 100 {
		verr.Add(field, formatFloat(v), "must be between 0 and 100")
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
