package calculation

import "github.com/vetfin/vetplan/internal/domain"

// MaxAge is the hard ceiling of every age-indexed search and projection
const MaxAge = 100

// EarliestRetirementAge steps forward one year at a time, growing savings and then
// adding a year of contributions, until savings cover the required principal. It
// returns CurrentAge when guaranteed income already covers expenses and MaxAge when
// the target is never reached.
func EarliestRetirementAge(in domain.RetirementInputs) int {
	if MonthlyExpenseGap(in) <= 0 {
		return in.CurrentAge
	}

	needed := TotalSavingsNeeded(in)
	annualReturn := AnnualReturn(ResolveRiskProfile(in.RiskTolerance), in.Market)
	annualContribution := MonthlyContribution(in) * monthsPerYear

	age := in.CurrentAge
	savings := in.CurrentSavings
	for savings < needed && age < MaxAge {
		savings *= 1 + annualReturn
		savings += annualContribution
		age++
	}

	if age > MaxAge {
		return MaxAge
	}
	return age
}
