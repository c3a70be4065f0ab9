package output

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/vetfin/vetplan/internal/domain"
	"gopkg.in/yaml.v3"
)

// Recommendation names the plan with the best outlook in a comparison
type Recommendation struct {
	ScenarioName string
	Reason       string
	Success      decimal.Decimal
	Shortfall    decimal.Decimal
}

// AnalyzeScenarios picks the plan with the highest success score. Ties go to the
// smaller shortfall, then to the earlier plan.
func AnalyzeScenarios(results *domain.PlanComparison) Recommendation {
	var best *domain.RetirementPlan
	for i := range results.Plans {
		plan := &results.Plans[i]
		if best == nil {
			best = plan
			continue
		}
		if plan.Results.SuccessProbability > best.Results.SuccessProbability ||
			(plan.Results.SuccessProbability == best.Results.SuccessProbability &&
				plan.Results.Shortfall < best.Results.Shortfall) {
			best = plan
		}
	}
	if best == nil {
		return Recommendation{}
	}

	rec := Recommendation{
		ScenarioName: best.Name,
		Success:      Money(best.Results.SuccessProbability).Round(1),
		Shortfall:    Money(best.Results.Shortfall),
	}
	if rec.Shortfall.IsZero() {
		rec.Reason = "fully funds retirement expenses"
	} else {
		rec.Reason = fmt.Sprintf("highest success score with a %s shortfall", FormatCurrency(rec.Shortfall))
	}
	return rec
}

// SaveConfiguration writes a plan configuration as YAML
func SaveConfiguration(config *domain.Configuration, filename string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}
	return os.WriteFile(filename, data, 0o644)
}

// Money converts a float amount to a decimal rounded to cents
func Money(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}

// FormatCurrency formats a decimal as currency
func FormatCurrency(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

// FormatDollars formats a float amount as whole dollars with thousands separators
func FormatDollars(amount float64) string {
	d := decimal.NewFromFloat(amount).Round(0)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	digits := d.StringFixed(0)
	for i := len(digits) - 3; i > 0; i -= 3 {
		digits = digits[:i] + "," + digits[i:]
	}
	return sign + "$" + digits
}

// FormatPercentage formats a decimal as percentage
func FormatPercentage(amount decimal.Decimal) string {
	return amount.StringFixed(2) + "%"
}
