package components

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/vetfin/vetplan/internal/domain"
	"github.com/vetfin/vetplan/internal/tui/tuistyles"
)

const metricCardWidth = 24

// MetricCard is one boxed figure on the results scene
type MetricCard struct {
	Label string
	Value string
	Trend *Trend
}

// Trend is the colored note under a card's value
type Trend struct {
	IsPositive bool
	Change     string
}

// NewMetricCard creates a card without a trend
func NewMetricCard(label, value string) *MetricCard {
	return &MetricCard{Label: label, Value: value}
}

// WithTrend attaches a trend note
func (m *MetricCard) WithTrend(isPositive bool, change string) *MetricCard {
	m.Trend = &Trend{IsPositive: isPositive, Change: change}
	return m
}

func (m *MetricCard) trend() string {
	if m.Trend == nil {
		return ""
	}
	return tuistyles.MetricTrendStyle(m.Trend.IsPositive).
		Render(tuistyles.TrendIndicator(m.Trend.IsPositive) + " " + m.Trend.Change)
}

// Render draws the card inside a rounded border
func (m *MetricCard) Render() string {
	body := tuistyles.MetricLabelStyle.Render(m.Label) + "\n" + tuistyles.MetricValueStyle.Render(m.Value)
	if t := m.trend(); t != "" {
		body += "\n" + t
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(tuistyles.ColorBorder).
		Padding(0, 1).
		Width(metricCardWidth).
		Render(body)
}

// RenderCompact draws the card as a single line
func (m *MetricCard) RenderCompact() string {
	line := tuistyles.MetricLabelStyle.Render(m.Label+":") + " " + tuistyles.MetricValueStyle.Render(m.Value)
	if t := m.trend(); t != "" {
		line += " " + t
	}
	return line
}

// PlanCards builds the headline cards for a calculated plan
func PlanCards(plan *domain.RetirementPlan) []*MetricCard {
	if plan == nil {
		return nil
	}
	r := plan.Results

	shortfall := NewMetricCard("Shortfall", tuistyles.FormatCurrency(r.Shortfall))
	if r.Shortfall > 0 {
		shortfall.WithTrend(false, "save "+tuistyles.FormatCurrency(r.RequiredMonthlySavings)+"/mo more")
	} else {
		shortfall.WithTrend(true, "fully funded")
	}

	earliest := NewMetricCard("Earliest Retirement", fmt.Sprintf("age %d", r.EarliestRetirementAge))
	switch gap := plan.Inputs.RetirementAge - r.EarliestRetirementAge; {
	case gap > 0:
		earliest.WithTrend(true, fmt.Sprintf("%d yrs before plan", gap))
	case gap < 0:
		earliest.WithTrend(false, fmt.Sprintf("%d yrs after plan", -gap))
	}

	return []*MetricCard{
		NewMetricCard("Total Needed", tuistyles.FormatCurrency(r.TotalNeeded)),
		NewMetricCard("Projected Savings", tuistyles.FormatCurrency(r.ProjectedSavings)),
		shortfall,
		NewMetricCard("Pension Value", tuistyles.FormatCurrency(r.PensionLifetimeValue)),
		NewMetricCard("Disability Value", tuistyles.FormatCurrency(r.DisabilityLifetimeValue)),
		NewMetricCard("Years to Retirement", strconv.Itoa(r.YearsToRetirement)),
		earliest,
	}
}

// MetricGrid lays cards out in rows of columns
func MetricGrid(cards []*MetricCard, columns int) string {
	if len(cards) == 0 || columns <= 0 {
		return ""
	}
	var rows []string
	for start := 0; start < len(cards); start += columns {
		end := min(start+columns, len(cards))
		row := make([]string, 0, end-start)
		for _, c := range cards[start:end] {
			row = append(row, c.Render())
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
