package compare

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/shopspring/decimal"
)

// TableFormatter renders a comparison set for the terminal
type TableFormatter struct{}

const (
	ruleWidth     = 92
	nameColumnMax = 28
)

var (
	thousand = decimal.NewFromInt(1_000)
	million  = decimal.NewFromInt(1_000_000)
)

// Format writes the scenario grid, the per-alternative deltas and the
// recommendations
func (tf *TableFormatter) Format(compSet *ComparisonSet) string {
	var sb strings.Builder
	rule := func(c string) { sb.WriteString(strings.Repeat(c, ruleWidth) + "\n") }
	section := func(title string) {
		sb.WriteString("\n" + title + "\n")
		rule("-")
	}

	sb.WriteString("RETIREMENT SCENARIO COMPARISON\n")
	rule("=")
	fmt.Fprintf(&sb, "Base Scenario: %s\n", compSet.BaseScenarioName)
	if compSet.ConfigPath != "" {
		fmt.Fprintf(&sb, "Configuration: %s\n", compSet.ConfigPath)
	}
	sb.WriteString("\n")
	sb.WriteString(tf.grid(compSet))
	sb.WriteString("\n")

	if len(compSet.AlternativeResults) > 0 {
		section("COMPARISON TO BASE")
		for i := range compSet.AlternativeResults {
			sb.WriteString(tf.deltas(&compSet.AlternativeResults[i]))
		}
	}

	if len(compSet.Recommendations) > 0 {
		section("RECOMMENDATIONS")
		for _, rec := range compSet.Recommendations {
			sb.WriteString("• " + rec + "\n")
		}
	}

	return sb.String()
}

func (tf *TableFormatter) grid(compSet *ComparisonSet) string {
	cell := lipgloss.NewStyle().Padding(0, 1)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Scenario", "Retire Age", "Projected", "Shortfall", "Success", "Earliest").
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 0 || row == table.HeaderRow {
				return cell
			}
			return cell.Align(lipgloss.Right)
		})

	if base := compSet.BaseResult; base != nil {
		t.Row(tf.rowCells(base, true)...)
	}
	for i := range compSet.AlternativeResults {
		t.Row(tf.rowCells(&compSet.AlternativeResults[i], false)...)
	}
	return t.String()
}

// rowCells is one scenario's line in the grid
func (tf *TableFormatter) rowCells(result *ComparisonResult, isBase bool) []string {
	name := result.ScenarioName
	if isBase {
		name += " (base)"
	}
	shortfall := "none"
	if !result.Shortfall.IsZero() {
		shortfall = "$" + tf.formatDecimal(result.Shortfall)
	}
	return []string{
		tf.truncate(name, nameColumnMax),
		strconv.Itoa(result.RetirementAge),
		"$" + tf.formatDecimal(result.ProjectedSavings),
		shortfall,
		result.SuccessProbability.StringFixed(1) + "%",
		strconv.Itoa(result.EarliestRetirementAge),
	}
}

// deltas lists how an alternative moved each metric relative to the base.
// Unchanged metrics other than savings are omitted.
func (tf *TableFormatter) deltas(alt *ComparisonResult) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "\n%s:\n", alt.ScenarioName)
	if alt.Description != "" {
		fmt.Fprintf(&sb, "  %s\n", alt.Description)
	}

	sign := " "
	if !alt.SavingsDiffFromBase.IsZero() {
		sign = tf.signed(alt.SavingsDiffFromBase)
	}
	fmt.Fprintf(&sb, "  Projected Savings: %s$%s (%s%%)\n",
		sign, tf.formatDecimal(alt.SavingsDiffFromBase.Abs()), alt.SavingsPctFromBase.StringFixed(1))

	if d := alt.ShortfallDiffFromBase; !d.IsZero() {
		fmt.Fprintf(&sb, "  Shortfall:         %s$%s\n", tf.signed(d), tf.formatDecimal(d.Abs()))
	}
	if d := alt.SuccessDiffFromBase; !d.IsZero() {
		fmt.Fprintf(&sb, "  Success Score:     %s%s pts\n", tf.signed(d), d.Abs().StringFixed(1))
	}
	if alt.EarliestAgeDiff != 0 {
		fmt.Fprintf(&sb, "  Earliest Age:      %+d years\n", alt.EarliestAgeDiff)
	}
	return sb.String()
}

// formatDecimal abbreviates to K or M above a thousand
func (tf *TableFormatter) formatDecimal(d decimal.Decimal) string {
	switch abs := d.Abs(); {
	case abs.GreaterThanOrEqual(million):
		return d.Div(million).StringFixed(2) + "M"
	case abs.GreaterThanOrEqual(thousand):
		return d.Div(thousand).StringFixed(1) + "K"
	default:
		return d.StringFixed(0)
	}
}

func (tf *TableFormatter) signed(delta decimal.Decimal) string {
	if delta.IsNegative() {
		return "-"
	}
	return "+"
}

func (tf *TableFormatter) truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// FormatCompact is a one-line summary of each alternative's success change
func (tf *TableFormatter) FormatCompact(compSet *ComparisonSet) string {
	parts := make([]string, 0, len(compSet.AlternativeResults))
	for _, alt := range compSet.AlternativeResults {
		change := "="
		if d := alt.SuccessDiffFromBase; !d.IsZero() {
			change = d.StringFixed(1) + " pts"
			if d.IsPositive() {
				change = "+" + change
			}
		}
		parts = append(parts, alt.ScenarioName+": "+change)
	}
	return "Base: " + compSet.BaseScenarioName + " | " + strings.Join(parts, " | ")
}
