package domain

import (
	"fmt"
	"strings"
)

// RiskProfile is a fixed asset allocation bucket with its expected annual return
type RiskProfile struct {
	Name                  string  `yaml:"name" json:"name"`
	StockPercent          float64 `yaml:"stock_percent" json:"stockPercent"`
	BondPercent           float64 `yaml:"bond_percent" json:"bondPercent"`
	CashPercent           float64 `yaml:"cash_percent" json:"cashPercent"`
	ExpectedReturnPercent float64 `yaml:"expected_return_percent" json:"expectedReturnPercent"`
}

// MarketScenario selects a multiplier applied to the expected return
type MarketScenario string

const (
	MarketStrong       MarketScenario = "strong"
	MarketAverage      MarketScenario = "average"
	MarketBelowAverage MarketScenario = "below"
)

// MarketScenarios lists the supported scenarios in display order
var MarketScenarios = []MarketScenario{MarketStrong, MarketAverage, MarketBelowAverage}

// Multiplier returns the return multiplier for the scenario.
// Unknown scenarios behave like an average market.
func (m MarketScenario) Multiplier() float64 {
	switch m {
	case MarketStrong:
		return 1.3
	case MarketBelowAverage:
		return 0.7
	default:
		return 1.0
	}
}

// Valid reports whether m is one of the supported scenarios
func (m MarketScenario) Valid() bool {
	switch m {
	case MarketStrong, MarketAverage, MarketBelowAverage:
		return true
	}
	return false
}

// Label returns a human-readable name
func (m MarketScenario) Label() string {
	switch m {
	case MarketStrong:
		return "Strong"
	case MarketBelowAverage:
		return "Below Average"
	case MarketAverage:
		return "Average"
	default:
		return string(m)
	}
}

// ParseMarketScenario resolves a user supplied scenario name. "below_average" and
// "belowaverage" are accepted as aliases of "below".
func ParseMarketScenario(s string) (MarketScenario, error) {
	n := strings.ToLower(strings.TrimSpace(s))
	n = strings.NewReplacer("_", "", "-", "", " ", "").Replace(n)
	switch n {
	case "strong":
		return MarketStrong, nil
	case "average", "":
		return MarketAverage, nil
	case "below", "belowaverage", "weak":
		return MarketBelowAverage, nil
	}
	return "", fmt.Errorf("unknown market scenario %q (valid: strong, average, below)", s)
}

// ContributionSource derives the monthly contribution from income and a percentage
type ContributionSource struct {
	MonthlyIncome float64 `yaml:"monthly_income" json:"monthlyIncome"`
	Percent       float64 `yaml:"percent" json:"percent"`
}

// RetirementInputs holds every parameter of a single retirement calculation
type RetirementInputs struct {
	CurrentAge          int                 `yaml:"current_age" json:"currentAge"`
	RetirementAge       int                 `yaml:"retirement_age" json:"retirementAge"`
	MonthlyExpenses     float64             `yaml:"monthly_expenses" json:"monthlyExpenses"` // in retirement
	MonthlyContribution float64             `yaml:"monthly_contribution" json:"monthlyContribution"`
	Contribution        *ContributionSource `yaml:"contribution,omitempty" json:"contribution,omitempty"`
	CurrentSavings      float64             `yaml:"current_savings" json:"currentSavings"`
	PensionMonthly      float64             `yaml:"pension_monthly" json:"pensionMonthly"`
	DisabilityMonthly   float64             `yaml:"disability_monthly" json:"disabilityMonthly"`
	ReceivingPension    bool                `yaml:"receiving_pension" json:"receivingPension"`
	ReceivingDisability bool                `yaml:"receiving_disability" json:"receivingDisability"`
	RiskTolerance       float64             `yaml:"risk_tolerance" json:"riskTolerance"`
	Market              MarketScenario      `yaml:"market" json:"market"`
}

// YearsToRetirement may be zero or negative; callers validate before relying on it
func (in RetirementInputs) YearsToRetirement() int {
	return in.RetirementAge - in.CurrentAge
}

// GuaranteedMonthlyIncome sums pension and disability that are currently being received
func (in RetirementInputs) GuaranteedMonthlyIncome() float64 {
	var total float64
	if in.ReceivingPension {
		total += in.PensionMonthly
	}
	if in.ReceivingDisability {
		total += in.DisabilityMonthly
	}
	return total
}

// RetirementResults holds the summary figures of a calculation
type RetirementResults struct {
	TotalNeeded             float64 `yaml:"total_needed" json:"totalNeeded"`
	ProjectedSavings        float64 `yaml:"projected_savings" json:"projectedSavings"`
	PensionLifetimeValue    float64 `yaml:"pension_lifetime_value" json:"pensionLifetimeValue"`
	DisabilityLifetimeValue float64 `yaml:"disability_lifetime_value" json:"disabilityLifetimeValue"`
	Shortfall               float64 `yaml:"shortfall" json:"shortfall"`
	RequiredMonthlySavings  float64 `yaml:"required_monthly_savings" json:"requiredMonthlySavings"`
	YearsToRetirement       int     `yaml:"years_to_retirement" json:"yearsToRetirement"`
	EarliestRetirementAge   int     `yaml:"earliest_retirement_age" json:"earliestRetirementAge"`
	SuccessProbability      float64 `yaml:"success_probability" json:"successProbability"`
}

// ProjectionPoint is one age-indexed row of the projection series.
// Amounts are rounded to whole dollars.
type ProjectionPoint struct {
	Age                  int     `yaml:"age" json:"age"`
	Savings              float64 `yaml:"savings" json:"savings"`
	CumulativePension    float64 `yaml:"cumulative_pension" json:"cumulativePension"`
	CumulativeDisability float64 `yaml:"cumulative_disability" json:"cumulativeDisability"`
	Total                float64 `yaml:"total" json:"total"`
	Retired              bool    `yaml:"retired" json:"retired"`
}

// ChartSlice is a named value used for pie and bar charts
type ChartSlice struct {
	Name  string  `yaml:"name" json:"name"`
	Value float64 `yaml:"value" json:"value"`
}

// SimulationSummary is the outcome of the optional stochastic simulation.
// It is reported next to, never instead of, the heuristic success probability.
type SimulationSummary struct {
	Paths            int     `yaml:"paths" json:"paths"`
	Seed             int64   `yaml:"seed" json:"seed"`
	Volatility       float64 `yaml:"volatility" json:"volatility"`
	SuccessRate      float64 `yaml:"success_rate" json:"successRate"` // percent, 0-100
	MedianEndBalance float64 `yaml:"median_end_balance" json:"medianEndBalance"`
	P10EndBalance    float64 `yaml:"p10_end_balance" json:"p10EndBalance"`
	P90EndBalance    float64 `yaml:"p90_end_balance" json:"p90EndBalance"`
}

// RetirementPlan is the complete output of one scenario calculation
type RetirementPlan struct {
	Name            string             `yaml:"name" json:"name"`
	Inputs          RetirementInputs   `yaml:"inputs" json:"inputs"`
	AnnualReturn    float64            `yaml:"annual_return" json:"annualReturn"`
	RiskProfile     RiskProfile        `yaml:"risk_profile" json:"riskProfile"`
	Results         RetirementResults  `yaml:"results" json:"results"`
	Projection      []ProjectionPoint  `yaml:"projection" json:"projection"`
	AssetAllocation []ChartSlice       `yaml:"asset_allocation" json:"assetAllocation"`
	IncomeSources   []ChartSlice       `yaml:"income_sources" json:"incomeSources"`
	Simulation      *SimulationSummary `yaml:"simulation,omitempty" json:"simulation,omitempty"`
}

// FinalPoint returns the last projection point, or false when the projection is empty
func (p *RetirementPlan) FinalPoint() (ProjectionPoint, bool) {
	if len(p.Projection) == 0 {
		return ProjectionPoint{}, false
	}
	return p.Projection[len(p.Projection)-1], true
}

// SavingsDepletedAge returns the first retired age at which savings reach zero
func (p *RetirementPlan) SavingsDepletedAge() (int, bool) {
	for _, pt := range p.Projection {
		if pt.Retired && pt.Savings <= 0 {
			return pt.Age, true
		}
	}
	return 0, false
}

// DefaultRetirementInputs are the simulator's starting values
func DefaultRetirementInputs() RetirementInputs {
	return RetirementInputs{
		CurrentAge:          35,
		RetirementAge:       65,
		MonthlyContribution: 500,
		RiskTolerance:       50,
		Market:              MarketAverage,
	}
}
