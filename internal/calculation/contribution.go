package calculation

import "github.com/vetfin/vetplan/internal/domain"

// ContributionAmount converts a percentage of income into a contribution amount.
// Negative inputs are passed through unchanged.
func ContributionAmount(income, percent float64) float64 {
	return (income * percent) / 100
}

// MonthlyContribution returns the contribution used by the calculators. When a
// contribution source is configured it takes precedence over the flat amount.
func MonthlyContribution(in domain.RetirementInputs) float64 {
	if in.Contribution != nil {
		return ContributionAmount(in.Contribution.MonthlyIncome, in.Contribution.Percent)
	}
	return in.MonthlyContribution
}
