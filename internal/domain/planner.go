package domain

// FinancialInputs are the monthly figures collected by the budget planner
type FinancialInputs struct {
	MonthlyIncome     float64 `yaml:"monthly_income" json:"monthlyIncome"`
	PensionMonthly    float64 `yaml:"pension_monthly" json:"pensionMonthly"`
	DisabilityMonthly float64 `yaml:"disability_monthly" json:"disabilityMonthly"`
	MonthlyExpenses   float64 `yaml:"monthly_expenses" json:"monthlyExpenses"`
	CurrentSavings    float64 `yaml:"current_savings" json:"currentSavings"`
}

// FinancialSummary is the budget planner's headline output
type FinancialSummary struct {
	MonthlyIncome     float64 `yaml:"monthly_income" json:"monthlyIncome"`
	MonthlyExpenses   float64 `yaml:"monthly_expenses" json:"monthlyExpenses"`
	Surplus           float64 `yaml:"surplus" json:"surplus"`
	SavingsTarget     float64 `yaml:"savings_target" json:"savingsTarget"`
	YearsToRetirement float64 `yaml:"years_to_retirement" json:"yearsToRetirement"`
	CurrentSavings    float64 `yaml:"current_savings" json:"currentSavings"`
	PensionAmount     float64 `yaml:"pension_amount" json:"pensionAmount"`
	DisabilityAmount  float64 `yaml:"disability_amount" json:"disabilityAmount"`
}

// SavingsProjectionPoint is a coarse savings checkpoint for the planner chart
type SavingsProjectionPoint struct {
	Year    int     `yaml:"year" json:"year"`
	Label   string  `yaml:"label" json:"label"`
	Savings float64 `yaml:"savings" json:"savings"`
}

// FinancialPlan bundles the planner summary with its chart data
type FinancialPlan struct {
	Inputs            FinancialInputs          `yaml:"inputs" json:"inputs"`
	Summary           FinancialSummary         `yaml:"summary" json:"summary"`
	Income            []ChartSlice             `yaml:"income" json:"income"`
	Expenses          []ChartSlice             `yaml:"expenses" json:"expenses"`
	SavingsProjection []SavingsProjectionPoint `yaml:"savings_projection" json:"savingsProjection"`
}
