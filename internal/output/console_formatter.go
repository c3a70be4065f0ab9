package output

import (
	"bytes"
	"fmt"

	"github.com/vetfin/vetplan/internal/domain"
)

// ConsoleFormatter prints a short one-line-per-plan summary
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(results *domain.PlanComparison) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "RETIREMENT PLAN SUMMARY")
	fmt.Fprintln(&buf, "=======================")
	if results.Profile != "" {
		fmt.Fprintf(&buf, "Profile: %s\n", results.Profile)
	}

	if len(results.Plans) == 0 {
		fmt.Fprintln(&buf, "No plans calculated")
		return buf.Bytes(), nil
	}

	for _, plan := range results.Plans {
		r := plan.Results
		fmt.Fprintf(&buf, "%s: retire at %d, success %s, shortfall %s, earliest retirement %d\n",
			plan.Name,
			plan.Inputs.RetirementAge,
			FormatPercentage(Money(r.SuccessProbability).Round(1)),
			FormatDollars(r.Shortfall),
			r.EarliestRetirementAge)
	}

	rec := AnalyzeScenarios(results)
	fmt.Fprintf(&buf, "Recommended: %s (%s)\n", rec.ScenarioName, rec.Reason)
	return buf.Bytes(), nil
}
