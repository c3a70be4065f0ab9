package calculation

import (
	"math"

	"github.com/vetfin/vetplan/internal/domain"
)

const (
	// SafeWithdrawalMultiple is the 4% rule: required principal is 25x the annual need
	SafeWithdrawalMultiple = 25.0
	monthsPerYear          = 12.0
)

// AnnualReturn is the risk profile's expected return scaled by the market scenario
func AnnualReturn(profile domain.RiskProfile, market domain.MarketScenario) float64 {
	return profile.ExpectedReturnPercent / 100 * market.Multiplier()
}

// MonthlyRate converts an annual return into the equivalent monthly compounded rate
func MonthlyRate(annualReturn float64) float64 {
	return math.Pow(1+annualReturn, 1.0/monthsPerYear) - 1
}

// FutureValue grows a lump sum at the annual return for the given number of years
func FutureValue(principal, annualReturn float64, years int) float64 {
	return principal * math.Pow(1+annualReturn, float64(years))
}

// FutureValueOfContributions is the future value of a level monthly contribution
// (ordinary annuity). A non-positive monthly rate degrades to the plain sum.
func FutureValueOfContributions(monthly, monthlyRate float64, years int) float64 {
	months := float64(years) * monthsPerYear
	if monthlyRate <= 0 {
		return monthly * months
	}
	return monthly * ((math.Pow(1+monthlyRate, months) - 1) / monthlyRate)
}

// RequiredContribution is the monthly payment that accumulates to target over the
// given years. It is zero when there is nothing to close or the formula is undefined.
func RequiredContribution(target, monthlyRate float64, years int) float64 {
	if target <= 0 || monthlyRate <= 0 || years <= 0 {
		return 0
	}
	return (target * monthlyRate) / (math.Pow(1+monthlyRate, float64(years)*monthsPerYear) - 1)
}

// LifetimeValue capitalises a monthly income stream with the 4% rule
func LifetimeValue(monthly float64) float64 {
	return monthly * monthsPerYear * SafeWithdrawalMultiple
}

// MonthlyExpenseGap is the part of monthly expenses not covered by guaranteed income
func MonthlyExpenseGap(in domain.RetirementInputs) float64 {
	return math.Max(0, in.MonthlyExpenses-in.GuaranteedMonthlyIncome())
}

// TotalSavingsNeeded is the principal required to fund the expense gap
func TotalSavingsNeeded(in domain.RetirementInputs) float64 {
	return LifetimeValue(MonthlyExpenseGap(in))
}

// ProjectedSavings is the value of current savings plus contributions at retirement
func ProjectedSavings(in domain.RetirementInputs, annualReturn float64) float64 {
	years := in.YearsToRetirement()
	return FutureValue(in.CurrentSavings, annualReturn, years) +
		FutureValueOfContributions(MonthlyContribution(in), MonthlyRate(annualReturn), years)
}

// CalculateNeeds computes the capital requirement, projected savings, shortfall and
// required monthly savings. EarliestRetirementAge and SuccessProbability are left
// zero; the engine fills them from their own calculators.
func CalculateNeeds(in domain.RetirementInputs) domain.RetirementResults {
	annualReturn := AnnualReturn(ResolveRiskProfile(in.RiskTolerance), in.Market)
	years := in.YearsToRetirement()

	totalNeeded := TotalSavingsNeeded(in)
	projected := ProjectedSavings(in, annualReturn)
	shortfall := math.Max(0, totalNeeded-projected)

	return domain.RetirementResults{
		TotalNeeded:             totalNeeded,
		ProjectedSavings:        projected,
		PensionLifetimeValue:    LifetimeValue(in.PensionMonthly),
		DisabilityLifetimeValue: LifetimeValue(in.DisabilityMonthly),
		Shortfall:               shortfall,
		RequiredMonthlySavings:  RequiredContribution(shortfall, MonthlyRate(annualReturn), years),
		YearsToRetirement:       years,
	}
}
