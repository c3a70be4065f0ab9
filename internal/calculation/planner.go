package calculation

import (
	"fmt"
	"math"

	"github.com/vetfin/vetplan/internal/domain"
)

// expenseShares is the fixed budget split used for the expense chart
var expenseShares = []struct {
	name  string
	share float64
}{
	{"Housing", 0.35},
	{"Food", 0.15},
	{"Transportation", 0.15},
	{"Healthcare", 0.10},
	{"Utilities", 0.10},
	{"Entertainment", 0.05},
	{"Other", 0.10},
}

// RetirementNeedsWithGuaranteedIncome is the principal needed for the monthly
// expenses that pension and disability do not cover.
func RetirementNeedsWithGuaranteedIncome(monthlyExpenses, monthlyPension, monthlyDisability float64) float64 {
	gap := math.Max(0, monthlyExpenses-(monthlyPension+monthlyDisability))
	return LifetimeValue(gap)
}

// CalculateFinancialSummary computes the planner's monthly surplus, savings target
// and a straight-line estimate of the years needed to reach the target.
func CalculateFinancialSummary(in domain.FinancialInputs) domain.FinancialSummary {
	monthlyIncome := in.MonthlyIncome + in.PensionMonthly + in.DisabilityMonthly
	surplus := monthlyIncome - in.MonthlyExpenses
	target := RetirementNeedsWithGuaranteedIncome(in.MonthlyExpenses, in.PensionMonthly, in.DisabilityMonthly)

	annualSavings := surplus * monthsPerYear
	var years float64
	if annualSavings > 0 {
		years = math.Max(0, (target-in.CurrentSavings)/annualSavings)
	}

	return domain.FinancialSummary{
		MonthlyIncome:     monthlyIncome,
		MonthlyExpenses:   in.MonthlyExpenses,
		Surplus:           surplus,
		SavingsTarget:     target,
		YearsToRetirement: years,
		CurrentSavings:    in.CurrentSavings,
		PensionAmount:     in.PensionMonthly,
		DisabilityAmount:  in.DisabilityMonthly,
	}
}

// IncomeBreakdown returns the monthly income sources as chart slices
func IncomeBreakdown(income, pension, disability float64) []domain.ChartSlice {
	return []domain.ChartSlice{
		{Name: "Regular Income", Value: income},
		{Name: "Military Pension", Value: pension},
		{Name: "Disability Benefits", Value: disability},
	}
}

// ExpenseBreakdown splits monthly expenses across the standard budget categories
func ExpenseBreakdown(expenses float64) []domain.ChartSlice {
	slices := make([]domain.ChartSlice, len(expenseShares))
	for i, s := range expenseShares {
		slices[i] = domain.ChartSlice{Name: s.name, Value: expenses * s.share}
	}
	return slices
}

// SavingsProjection checkpoints savings every 4 years over 20 years, adding four
// years of savings between checkpoints without growth.
func SavingsProjection(currentSavings, annualSavings float64) []domain.SavingsProjectionPoint {
	var points []domain.SavingsProjectionPoint
	projected := currentSavings
	for year := 0; year <= 20; year += 4 {
		points = append(points, domain.SavingsProjectionPoint{
			Year:    year,
			Label:   fmt.Sprintf("Year %d", year),
			Savings: roundDollars(projected),
		})
		projected += annualSavings * 4
	}
	return points
}

// BuildFinancialPlan runs the planner and assembles its chart data
func BuildFinancialPlan(in domain.FinancialInputs) *domain.FinancialPlan {
	summary := CalculateFinancialSummary(in)
	return &domain.FinancialPlan{
		Inputs:            in,
		Summary:           summary,
		Income:            IncomeBreakdown(in.MonthlyIncome, in.PensionMonthly, in.DisabilityMonthly),
		Expenses:          ExpenseBreakdown(in.MonthlyExpenses),
		SavingsProjection: SavingsProjection(in.CurrentSavings, summary.Surplus*monthsPerYear),
	}
}
