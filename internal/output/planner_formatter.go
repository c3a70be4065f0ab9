package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/vetfin/vetplan/internal/domain"
)

// PlannerConsoleFormatter formats the budget planner output for console
type PlannerConsoleFormatter struct{}

func (pf PlannerConsoleFormatter) Name() string { return "console" }

func (pf PlannerConsoleFormatter) FormatFinancialPlan(plan *domain.FinancialPlan) string {
	var buf bytes.Buffer
	s := plan.Summary

	fmt.Fprintln(&buf, "FINANCIAL PLANNER")
	fmt.Fprintln(&buf, strings.Repeat("=", 60))
	fmt.Fprintf(&buf, "Monthly Income:         %s\n", FormatDollars(s.MonthlyIncome))
	fmt.Fprintf(&buf, "  Regular Income:       %s\n", FormatDollars(plan.Inputs.MonthlyIncome))
	fmt.Fprintf(&buf, "  Military Pension:     %s\n", FormatDollars(s.PensionAmount))
	fmt.Fprintf(&buf, "  Disability Benefits:  %s\n", FormatDollars(s.DisabilityAmount))
	fmt.Fprintf(&buf, "Monthly Expenses:       %s\n", FormatDollars(s.MonthlyExpenses))
	fmt.Fprintf(&buf, "Monthly Surplus:        %s\n", FormatDollars(s.Surplus))
	fmt.Fprintln(&buf)

	fmt.Fprintf(&buf, "Savings Target:         %s\n", FormatDollars(s.SavingsTarget))
	fmt.Fprintf(&buf, "Current Savings:        %s\n", FormatDollars(s.CurrentSavings))
	switch {
	case s.CurrentSavings >= s.SavingsTarget:
		fmt.Fprintln(&buf, "Years to Target:        target already met")
	case s.Surplus <= 0:
		fmt.Fprintln(&buf, "Years to Target:        not reachable without a monthly surplus")
	default:
		fmt.Fprintf(&buf, "Years to Target:        %.1f\n", s.YearsToRetirement)
	}
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "EXPENSE BREAKDOWN:")
	for _, slice := range plan.Expenses {
		fmt.Fprintf(&buf, "  %-20s %s\n", slice.Name+":", FormatDollars(slice.Value))
	}
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "SAVINGS PROJECTION:")
	for _, pt := range plan.SavingsProjection {
		fmt.Fprintf(&buf, "  %-8s %s\n", pt.Label, FormatDollars(pt.Savings))
	}

	return buf.String()
}
