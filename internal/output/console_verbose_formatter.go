package output

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/vetfin/vetplan/internal/domain"
)

// ConsoleVerboseFormatter renders the detailed console report
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

type consoleStyles struct {
	title   lipgloss.Style
	section lipgloss.Style
	label   lipgloss.Style
	good    lipgloss.Style
	bad     lipgloss.Style
	header  lipgloss.Style
	cell    lipgloss.Style
}

// Styles are bound to a renderer on the output buffer so colour is dropped
// whenever the report is not written to a terminal.
func newConsoleStyles(r *lipgloss.Renderer) consoleStyles {
	return consoleStyles{
		title: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4")).
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("#7D56F4")).
			Padding(0, 2),
		section: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#04B575")),
		label:   r.NewStyle().Foreground(lipgloss.Color("#626262")).Width(28),
		good:    r.NewStyle().Foreground(lipgloss.Color("#04B575")),
		bad:     r.NewStyle().Foreground(lipgloss.Color("#FF4672")),
		header:  r.NewStyle().Bold(true).Padding(0, 1),
		cell:    r.NewStyle().Padding(0, 1).Align(lipgloss.Right),
	}
}

func (c ConsoleVerboseFormatter) Format(results *domain.PlanComparison) ([]byte, error) {
	var buf bytes.Buffer
	st := newConsoleStyles(lipgloss.NewRenderer(&buf))

	fmt.Fprintln(&buf, st.title.Render("VETERAN RETIREMENT PLAN ANALYSIS"))
	if results.Profile != "" {
		fmt.Fprintf(&buf, "Profile: %s\n", results.Profile)
	}
	if !results.GeneratedAt.IsZero() {
		fmt.Fprintf(&buf, "Generated: %s\n", results.GeneratedAt.Format("2006-01-02 15:04"))
	}
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, st.section.Render("KEY ASSUMPTIONS:"))
	for _, a := range DefaultAssumptions {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	for i := range results.Plans {
		c.writePlan(&buf, st, i+1, &results.Plans[i])
	}

	if len(results.Plans) > 0 {
		rec := AnalyzeScenarios(results)
		fmt.Fprintln(&buf, st.section.Render("SUMMARY & RECOMMENDATION"))
		fmt.Fprintln(&buf, strings.Repeat("=", 50))
		fmt.Fprintf(&buf, "Recommended: %s (%s)\n", rec.ScenarioName, rec.Reason)
	} else {
		fmt.Fprintln(&buf, "No plans calculated")
	}

	return buf.Bytes(), nil
}

func (c ConsoleVerboseFormatter) writePlan(buf *bytes.Buffer, st consoleStyles, n int, plan *domain.RetirementPlan) {
	in := plan.Inputs
	r := plan.Results
	line := func(label, value string) {
		fmt.Fprintf(buf, "  %s%s\n", st.label.Render(label), value)
	}

	fmt.Fprintf(buf, "SCENARIO %d: %s\n", n, plan.Name)
	fmt.Fprintln(buf, strings.Repeat("=", 50))

	fmt.Fprintln(buf, st.section.Render("INPUTS:"))
	line("Current Age:", strconv.Itoa(in.CurrentAge))
	line("Retirement Age:", fmt.Sprintf("%d (%d years away)", in.RetirementAge, r.YearsToRetirement))
	line("Monthly Expenses:", FormatDollars(in.MonthlyExpenses))
	line("Monthly Contribution:", FormatDollars(in.MonthlyContribution))
	if in.Contribution != nil {
		line("  from income:", fmt.Sprintf("%s at %g%%", FormatDollars(in.Contribution.MonthlyIncome), in.Contribution.Percent))
	}
	line("Current Savings:", FormatDollars(in.CurrentSavings))
	line("Pension:", incomeStatus(in.PensionMonthly, in.ReceivingPension))
	line("Disability:", incomeStatus(in.DisabilityMonthly, in.ReceivingDisability))
	line("Risk Profile:", fmt.Sprintf("%s (%g%% stocks / %g%% bonds / %g%% cash)",
		plan.RiskProfile.Name, plan.RiskProfile.StockPercent, plan.RiskProfile.BondPercent, plan.RiskProfile.CashPercent))
	line("Market:", fmt.Sprintf("%s (%s expected return)", in.Market.Label(), FormatPercentage(Money(plan.AnnualReturn*100))))
	fmt.Fprintln(buf)

	fmt.Fprintln(buf, st.section.Render("RESULTS:"))
	line("Total Needed:", FormatDollars(r.TotalNeeded))
	line("Projected Savings:", FormatDollars(r.ProjectedSavings))
	line("Pension Lifetime Value:", FormatDollars(r.PensionLifetimeValue))
	line("Disability Lifetime Value:", FormatDollars(r.DisabilityLifetimeValue))
	if r.Shortfall > 0 {
		line("Shortfall:", st.bad.Render(FormatDollars(r.Shortfall)))
		line("Required Monthly Savings:", FormatDollars(r.RequiredMonthlySavings))
	} else {
		line("Shortfall:", st.good.Render("none"))
	}
	line("Earliest Retirement Age:", strconv.Itoa(r.EarliestRetirementAge))
	line("Success Score:", FormatPercentage(Money(r.SuccessProbability).Round(1)))
	fmt.Fprintln(buf)

	if sim := plan.Simulation; sim != nil {
		fmt.Fprintln(buf, st.section.Render("SIMULATION:"))
		line("Paths:", fmt.Sprintf("%d (seed %d, volatility %s)", sim.Paths, sim.Seed, FormatPercentage(Money(sim.Volatility*100))))
		line("Success Rate:", FormatPercentage(Money(sim.SuccessRate).Round(1)))
		line("Median End Balance:", FormatDollars(sim.MedianEndBalance))
		line("10th Percentile:", FormatDollars(sim.P10EndBalance))
		line("90th Percentile:", FormatDollars(sim.P90EndBalance))
		fmt.Fprintln(buf)
	}

	fmt.Fprintln(buf, st.section.Render("PROJECTION:"))
	fmt.Fprintln(buf, projectionTable(st, plan, ProjectionMilestones(plan)))
	if age, depleted := plan.SavingsDepletedAge(); depleted {
		fmt.Fprintln(buf, st.bad.Render(fmt.Sprintf("⚠ Savings depleted at age %d", age)))
	}
	fmt.Fprintln(buf)
	fmt.Fprintln(buf)
}

// ProjectionTable renders the given projection rows of plan, styled for w
func ProjectionTable(w io.Writer, plan *domain.RetirementPlan, rows []domain.ProjectionPoint) string {
	return projectionTable(newConsoleStyles(lipgloss.NewRenderer(w)), plan, rows)
}

func projectionTable(st consoleStyles, plan *domain.RetirementPlan, rows []domain.ProjectionPoint) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Age", "Savings", "Pension", "Disability", "Total").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return st.header
			}
			return st.cell
		})

	for _, pt := range rows {
		age := strconv.Itoa(pt.Age)
		if pt.Age == plan.Inputs.RetirementAge {
			age += " *"
		}
		t.Row(age,
			FormatDollars(pt.Savings),
			FormatDollars(pt.CumulativePension),
			FormatDollars(pt.CumulativeDisability),
			FormatDollars(pt.Total))
	}
	return t.String()
}

// ProjectionMilestones selects the projection rows shown in summaries: the first
// and last ages, every fifth year, the retirement age and the depletion age.
func ProjectionMilestones(plan *domain.RetirementPlan) []domain.ProjectionPoint {
	depletedAge, depleted := plan.SavingsDepletedAge()
	last := len(plan.Projection) - 1

	var rows []domain.ProjectionPoint
	for i, pt := range plan.Projection {
		if i == 0 || i == last ||
			(pt.Age-plan.Inputs.CurrentAge)%5 == 0 ||
			pt.Age == plan.Inputs.RetirementAge ||
			(depleted && pt.Age == depletedAge) {
			rows = append(rows, pt)
		}
	}
	return rows
}

func incomeStatus(monthly float64, receiving bool) string {
	if monthly == 0 {
		return "none"
	}
	status := "starts at retirement"
	if receiving {
		status = "receiving now"
	}
	return fmt.Sprintf("%s/month (%s)", FormatDollars(monthly), status)
}
