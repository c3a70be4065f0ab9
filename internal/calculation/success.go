package calculation

import (
	"math"

	"github.com/vetfin/vetplan/internal/domain"
)

// Weights of the success-probability heuristic
const (
	coverageWeight    = 0.7
	sufficiencyWeight = 0.3
)

// ExpensesCoveredPercent is the share of annual expenses paid by guaranteed income,
// capped at 100. Zero expenses count as fully covered.
func ExpensesCoveredPercent(in domain.RetirementInputs) float64 {
	annualExpenses := in.MonthlyExpenses * monthsPerYear
	if annualExpenses <= 0 {
		return 100
	}
	annualGuaranteed := in.GuaranteedMonthlyIncome() * monthsPerYear
	return math.Min(1, annualGuaranteed/annualExpenses) * 100
}

// annualSavingsAtRetirement is savings*(1+r)^n plus an ordinary annuity of 12x the
// monthly contribution paid yearly: c*((1+r)^n-1)/r, or c*n when r is zero.
func annualSavingsAtRetirement(in domain.RetirementInputs, annualReturn float64) float64 {
	years := float64(in.YearsToRetirement())
	growth := math.Pow(1+annualReturn, years)
	annualContribution := MonthlyContribution(in) * monthsPerYear

	contributions := annualContribution * years
	if annualReturn != 0 {
		contributions = annualContribution * ((growth - 1) / annualReturn)
	}
	return in.CurrentSavings*growth + contributions
}

// SavingsSufficiencyPercent compares projected savings with the required principal,
// capped at 100.
func SavingsSufficiencyPercent(in domain.RetirementInputs) float64 {
	annualReturn := AnnualReturn(ResolveRiskProfile(in.RiskTolerance), in.Market)
	needed := math.Max(TotalSavingsNeeded(in), 1)
	return math.Min(1, annualSavingsAtRetirement(in, annualReturn)/needed) * 100
}

// SuccessProbability blends expense coverage (70%) and savings sufficiency (30%)
// into a 0-100 score. It is a weighted heuristic, not a statistical probability;
// see MonteCarloSimulator for a stochastic estimate.
func SuccessProbability(in domain.RetirementInputs) float64 {
	p := ExpensesCoveredPercent(in)*coverageWeight + SavingsSufficiencyPercent(in)*sufficiencyWeight
	return math.Max(0, math.Min(100, p))
}
