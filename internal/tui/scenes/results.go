package scenes

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vetfin/vetplan/internal/domain"
	"github.com/vetfin/vetplan/internal/tui/components"
	"github.com/vetfin/vetplan/internal/tui/tuistyles"
)

// ResultsModel renders the plan for the inputs being edited
type ResultsModel struct {
	plan   *domain.RetirementPlan
	err    error
	width  int
	height int
}

// NewResultsModel creates a new results scene model
func NewResultsModel() *ResultsModel {
	return &ResultsModel{width: 80}
}

// SetPlan replaces the displayed plan. A non-nil err keeps the last good plan
// out of view and reports the error inline.
func (m *ResultsModel) SetPlan(plan *domain.RetirementPlan, err error) {
	m.plan = plan
	m.err = err
}

// Plan returns the displayed plan, if any
func (m *ResultsModel) Plan() *domain.RetirementPlan {
	return m.plan
}

// SetSize updates the scene dimensions
func (m *ResultsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages for the results scene
func (m *ResultsModel) Update(msg tea.Msg) (*ResultsModel, tea.Cmd) {
	// Results are read-only
	return m, nil
}

// View renders the results scene
func (m *ResultsModel) View() string {
	if m.err != nil {
		return tuistyles.ErrorStyle.Render("Cannot calculate: " + m.err.Error())
	}
	if m.plan == nil {
		return tuistyles.InfoStyle.Render("Calculating...")
	}

	plan := m.plan
	r := plan.Results

	var content strings.Builder
	content.WriteString(lipgloss.NewStyle().Bold(true).Foreground(tuistyles.ColorPrimary).Render("Results"))
	content.WriteString(tuistyles.SubtitleStyle.Render(fmt.Sprintf("  %s allocation, %.1f%% expected return",
		plan.RiskProfile.Name, plan.AnnualReturn*100)))
	content.WriteString("\n")

	content.WriteString(components.MetricGrid(components.PlanCards(plan), 3))
	content.WriteString("\n")

	content.WriteString(components.NewGauge("Success score", r.SuccessProbability).WithWidth(30).Render())
	content.WriteString("\n")
	if sim := plan.Simulation; sim != nil {
		content.WriteString(components.NewGauge(fmt.Sprintf("Simulated (%d paths)", sim.Paths), sim.SuccessRate).WithWidth(30).Render())
		content.WriteString("\n")
	}

	if age, depleted := plan.SavingsDepletedAge(); depleted {
		content.WriteString(tuistyles.ErrorStyle.Render(fmt.Sprintf("⚠ Savings depleted at age %d", age)))
		content.WriteString("\n")
	}

	content.WriteString("\n")
	chartWidth := max(40, min(m.width, 100))
	content.WriteString(components.ProjectionChart(plan).WithSize(chartWidth, 10).Render())

	return content.String()
}
