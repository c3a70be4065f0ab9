package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vetfin/vetplan/internal/domain"
	"github.com/vetfin/vetplan/internal/tui/tuistyles"
)

var (
	scenarioNameStyle      = lipgloss.NewStyle().Bold(true).Foreground(tuistyles.ColorPrimary)
	scenarioHighlightStyle = lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)
)

// ScenarioCard is one entry in the scenario picker
type ScenarioCard struct {
	Name       string
	Highlights []string
}

// NewScenarioCard creates a card with no highlights
func NewScenarioCard(name string) *ScenarioCard {
	return &ScenarioCard{Name: name}
}

// ScenarioCardFor summarises a scenario's inputs. The first highlight is the
// one shown in the picker list.
func ScenarioCardFor(sc domain.Scenario) *ScenarioCard {
	in := sc.Retirement
	market := in.Market
	if market == "" {
		market = domain.MarketAverage
	}
	card := NewScenarioCard(sc.Name).
		AddHighlight(fmt.Sprintf("Retire at %d (now %d)", in.RetirementAge, in.CurrentAge)).
		AddHighlight("Expenses " + tuistyles.FormatCurrency(in.MonthlyExpenses) + "/mo").
		AddHighlight(fmt.Sprintf("Risk %.0f, %s market", in.RiskTolerance, strings.ToLower(market.Label())))
	if g := in.GuaranteedMonthlyIncome(); g > 0 {
		card.AddHighlight("Receiving " + tuistyles.FormatCurrency(g) + "/mo")
	}
	return card
}

// AddHighlight appends a summary line
func (s *ScenarioCard) AddHighlight(highlight string) *ScenarioCard {
	s.Highlights = append(s.Highlights, highlight)
	return s
}

// RenderCompact draws the name and first highlight on one line
func (s *ScenarioCard) RenderCompact() string {
	line := scenarioNameStyle.Render(s.Name)
	if len(s.Highlights) > 0 {
		line += " " + scenarioHighlightStyle.Render("• "+s.Highlights[0])
	}
	return line
}

// ScenarioListCompact renders the picker list with the selected entry marked
func ScenarioListCompact(cards []*ScenarioCard, selectedIndex int) string {
	if len(cards) == 0 {
		return tuistyles.InfoStyle.Render("No scenarios available")
	}
	var b strings.Builder
	for i, card := range cards {
		if i > 0 {
			b.WriteByte('\n')
		}
		if i == selectedIndex {
			b.WriteString(tuistyles.SelectedItemStyle.Render("▸ " + card.RenderCompact()))
		} else {
			b.WriteString(tuistyles.UnselectedItemStyle.Render("  " + card.RenderCompact()))
		}
	}
	return b.String()
}
