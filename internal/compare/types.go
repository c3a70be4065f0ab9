package compare

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/vetfin/vetplan/internal/domain"
)

// ComparisonResult represents a single scenario comparison with calculated metrics
type ComparisonResult struct {
	ScenarioName string                 `json:"scenarioName"`
	Description  string                 `json:"description"`
	Plan         *domain.RetirementPlan `json:"-"`

	// Key Metrics
	RetirementAge          int             `json:"retirementAge"`
	ProjectedSavings       decimal.Decimal `json:"projectedSavings"`
	TotalNeeded            decimal.Decimal `json:"totalNeeded"`
	Shortfall              decimal.Decimal `json:"shortfall"`
	RequiredMonthlySavings decimal.Decimal `json:"requiredMonthlySavings"`
	SuccessProbability     decimal.Decimal `json:"successProbability"`
	EarliestRetirementAge  int             `json:"earliestRetirementAge"`
	FinalSavings           decimal.Decimal `json:"finalSavings"`
	DepletionAge           int             `json:"depletionAge,omitempty"` // 0 when savings last the horizon

	// Comparison to Base
	SavingsDiffFromBase   decimal.Decimal `json:"savingsDiffFromBase"`
	SavingsPctFromBase    decimal.Decimal `json:"savingsPctFromBase"`
	ShortfallDiffFromBase decimal.Decimal `json:"shortfallDiffFromBase"`
	RequiredDiffFromBase  decimal.Decimal `json:"requiredDiffFromBase"`
	SuccessDiffFromBase   decimal.Decimal `json:"successDiffFromBase"`
	EarliestAgeDiff       int             `json:"earliestAgeDiff"`

	// Scenario specifics for display
	RiskProfile string `json:"riskProfile,omitempty"`
	Market      string `json:"market,omitempty"`
}

// ComparisonSet represents a collection of scenario comparisons
type ComparisonSet struct {
	BaseScenarioName   string             `json:"baseScenarioName"`
	BaseResult         *ComparisonResult  `json:"baseResult"`
	AlternativeResults []ComparisonResult `json:"alternativeResults"`
	Recommendations    []string           `json:"recommendations"`
	ConfigPath         string             `json:"configPath"`
}

// ToPlanComparison collects the plans behind the comparison, base first, for the
// report formatters
func (cs *ComparisonSet) ToPlanComparison(profile string) *domain.PlanComparison {
	plans := make([]domain.RetirementPlan, 0, len(cs.AlternativeResults)+1)

	if cs.BaseResult != nil && cs.BaseResult.Plan != nil {
		plans = append(plans, *cs.BaseResult.Plan)
	}
	for _, result := range cs.AlternativeResults {
		if result.Plan != nil {
			plans = append(plans, *result.Plan)
		}
	}

	return &domain.PlanComparison{Profile: profile, Plans: plans}
}

// MetricsCalculator extracts key metrics from retirement plans
type MetricsCalculator struct{}

// NewMetricsCalculator creates a new metrics calculator
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{}
}

func money(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}

// CalculateMetrics computes all comparison metrics for a plan
func (mc *MetricsCalculator) CalculateMetrics(plan *domain.RetirementPlan) ComparisonResult {
	result := ComparisonResult{
		ScenarioName:           plan.Name,
		Plan:                   plan,
		RetirementAge:          plan.Inputs.RetirementAge,
		ProjectedSavings:       money(plan.Results.ProjectedSavings),
		TotalNeeded:            money(plan.Results.TotalNeeded),
		Shortfall:              money(plan.Results.Shortfall),
		RequiredMonthlySavings: money(plan.Results.RequiredMonthlySavings),
		SuccessProbability:     decimal.NewFromFloat(plan.Results.SuccessProbability).Round(1),
		EarliestRetirementAge:  plan.Results.EarliestRetirementAge,
		RiskProfile:            plan.RiskProfile.Name,
		Market:                 string(plan.Inputs.Market),
	}

	if last, ok := plan.FinalPoint(); ok {
		result.FinalSavings = money(last.Savings)
	}
	if age, depleted := plan.SavingsDepletedAge(); depleted {
		result.DepletionAge = age
	}

	return result
}

// CalculateComparison computes comparison metrics between a scenario and a base
func (mc *MetricsCalculator) CalculateComparison(scenario, base ComparisonResult) ComparisonResult {
	scenario.SavingsDiffFromBase = scenario.ProjectedSavings.Sub(base.ProjectedSavings)

	if !base.ProjectedSavings.IsZero() {
		scenario.SavingsPctFromBase = scenario.SavingsDiffFromBase.
			Div(base.ProjectedSavings).
			Mul(decimal.NewFromInt(100)).
			Round(2)
	}

	scenario.ShortfallDiffFromBase = scenario.Shortfall.Sub(base.Shortfall)
	scenario.RequiredDiffFromBase = scenario.RequiredMonthlySavings.Sub(base.RequiredMonthlySavings)
	scenario.SuccessDiffFromBase = scenario.SuccessProbability.Sub(base.SuccessProbability)
	scenario.EarliestAgeDiff = scenario.EarliestRetirementAge - base.EarliestRetirementAge

	return scenario
}

// GenerateRecommendations creates recommendations based on comparison results
func GenerateRecommendations(compSet *ComparisonSet) []string {
	recommendations := []string{}

	if compSet.BaseResult == nil || len(compSet.AlternativeResults) == 0 {
		return recommendations
	}
	base := compSet.BaseResult

	// Highest success score
	best := base
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.SuccessProbability.GreaterThan(best.SuccessProbability) {
			best = alt
		}
	}
	if best != base {
		recommendations = append(recommendations,
			"Best Outlook: "+best.ScenarioName+" raises the success score by "+
				best.SuccessProbability.Sub(base.SuccessProbability).StringFixed(1)+" points")
	}

	// Largest shortfall reduction
	if base.Shortfall.IsPositive() {
		lowest := base
		for i := range compSet.AlternativeResults {
			alt := &compSet.AlternativeResults[i]
			if alt.Shortfall.LessThan(lowest.Shortfall) {
				lowest = alt
			}
		}
		if lowest != base {
			if lowest.Shortfall.IsZero() {
				recommendations = append(recommendations,
					"Closes the Gap: "+lowest.ScenarioName+" eliminates the $"+base.Shortfall.StringFixed(0)+" shortfall")
			} else {
				recommendations = append(recommendations,
					"Smallest Shortfall: "+lowest.ScenarioName+" reduces the shortfall by $"+
						base.Shortfall.Sub(lowest.Shortfall).StringFixed(0))
			}
		}
	}

	// Earliest possible retirement
	earliest := base
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.EarliestRetirementAge < earliest.EarliestRetirementAge {
			earliest = alt
		}
	}
	if earliest != base {
		recommendations = append(recommendations,
			"Earliest Retirement: "+earliest.ScenarioName+" could retire at "+
				fmt.Sprintf("%d, %d years sooner", earliest.EarliestRetirementAge, base.EarliestRetirementAge-earliest.EarliestRetirementAge))
	}

	// Lowest required monthly savings
	if base.RequiredMonthlySavings.IsPositive() {
		cheapest := base
		for i := range compSet.AlternativeResults {
			alt := &compSet.AlternativeResults[i]
			if alt.RequiredMonthlySavings.LessThan(cheapest.RequiredMonthlySavings) {
				cheapest = alt
			}
		}
		if cheapest != base {
			recommendations = append(recommendations,
				"Lowest Savings Burden: "+cheapest.ScenarioName+" needs $"+
					base.RequiredMonthlySavings.Sub(cheapest.RequiredMonthlySavings).StringFixed(0)+" less per month")
		}
	}

	return recommendations
}
