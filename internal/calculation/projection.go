package calculation

import (
	"math"

	"github.com/shopspring/decimal"
	"github.com/vetfin/vetplan/internal/domain"
)

// RetirementHorizonYears is how far past retirement the projection runs
const RetirementHorizonYears = 30

// ProjectionEndAge is the last age of the projection series
func ProjectionEndAge(retirementAge int) int {
	return min(retirementAge+RetirementHorizonYears, MaxAge)
}

// GenerateProjection produces one point per age from CurrentAge to
// ProjectionEndAge using the return implied by the inputs' risk and market.
func GenerateProjection(in domain.RetirementInputs) []domain.ProjectionPoint {
	return GenerateProjectionWithReturn(in, AnnualReturn(ResolveRiskProfile(in.RiskTolerance), in.Market))
}

// GenerateProjectionWithReturn produces the projection series for an explicit
// annual return.
//
// Before retirement savings grow by a full year of return and then receive a year
// of contributions; pension and disability accumulate only if already received.
// From retirement on savings grow at half the return, both income streams
// accumulate, and the part of annual expenses they do not cover is withdrawn.
// Savings never go below zero.
func GenerateProjectionWithReturn(in domain.RetirementInputs, annualReturn float64) []domain.ProjectionPoint {
	endAge := ProjectionEndAge(in.RetirementAge)
	if endAge < in.CurrentAge {
		return []domain.ProjectionPoint{}
	}

	annualPension := in.PensionMonthly * monthsPerYear
	annualDisability := in.DisabilityMonthly * monthsPerYear
	annualContribution := MonthlyContribution(in) * monthsPerYear
	annualExpenses := in.MonthlyExpenses * monthsPerYear

	points := make([]domain.ProjectionPoint, 0, endAge-in.CurrentAge+1)
	savings := in.CurrentSavings
	var cumulativePension, cumulativeDisability float64

	for age := in.CurrentAge; age <= endAge; age++ {
		if age < in.RetirementAge {
			if in.ReceivingPension {
				cumulativePension += annualPension
			}
			if in.ReceivingDisability {
				cumulativeDisability += annualDisability
			}
			savings = savings*(1+annualReturn) + annualContribution

			pension, disability := 0.0, 0.0
			if in.ReceivingPension {
				pension = cumulativePension
			}
			if in.ReceivingDisability {
				disability = cumulativeDisability
			}
			points = append(points, domain.ProjectionPoint{
				Age:                  age,
				Savings:              roundDollars(savings),
				CumulativePension:    roundDollars(pension),
				CumulativeDisability: roundDollars(disability),
				Total:                roundDollars(savings + pension + disability),
			})
			continue
		}

		cumulativePension += annualPension
		cumulativeDisability += annualDisability

		savings *= 1 + annualReturn*0.5
		withdrawal := math.Max(0, annualExpenses-(annualPension+annualDisability))
		savings = math.Max(0, savings-withdrawal)

		points = append(points, domain.ProjectionPoint{
			Age:                  age,
			Savings:              roundDollars(savings),
			CumulativePension:    roundDollars(cumulativePension),
			CumulativeDisability: roundDollars(cumulativeDisability),
			Total:                roundDollars(savings + cumulativePension + cumulativeDisability),
			Retired:              true,
		})
	}

	return points
}

// roundDollars rounds half away from zero. Non-finite values pass through.
func roundDollars(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	f, _ := decimal.NewFromFloat(v).Round(0).Float64()
	return f
}
