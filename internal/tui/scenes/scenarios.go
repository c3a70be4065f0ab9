package scenes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vetfin/vetplan/internal/calculation"
	"github.com/vetfin/vetplan/internal/domain"
	"github.com/vetfin/vetplan/internal/tui/components"
	"github.com/vetfin/vetplan/internal/tui/tuimsg"
	"github.com/vetfin/vetplan/internal/tui/tuistyles"
)

// ScenariosModel represents the scenarios browsing scene
type ScenariosModel struct {
	scenarios     []domain.Scenario
	selectedIndex int
	cards         []*components.ScenarioCard
	width         int
	height        int
}

// NewScenariosModel creates a new scenarios scene model
func NewScenariosModel() *ScenariosModel {
	return &ScenariosModel{}
}

// SetScenarios updates the scenarios list
func (m *ScenariosModel) SetScenarios(scenarios []domain.Scenario) {
	m.scenarios = scenarios
	m.cards = make([]*components.ScenarioCard, 0, len(scenarios))
	for _, sc := range scenarios {
		m.cards = append(m.cards, components.ScenarioCardFor(sc))
	}
	if m.selectedIndex >= len(m.scenarios) {
		m.selectedIndex = 0
	}
}

// SetSize updates the scene dimensions
func (m *ScenariosModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SelectedScenario returns the currently selected scenario name
func (m *ScenariosModel) SelectedScenario() string {
	if m.selectedIndex >= 0 && m.selectedIndex < len(m.scenarios) {
		return m.scenarios[m.selectedIndex].Name
	}
	return ""
}

var scenarioKeys = struct {
	Up, Down, First, Last, Load key.Binding
}{
	Up:    key.NewBinding(key.WithKeys("up", "k")),
	Down:  key.NewBinding(key.WithKeys("down", "j")),
	First: key.NewBinding(key.WithKeys("g")),
	Last:  key.NewBinding(key.WithKeys("G")),
	Load:  key.NewBinding(key.WithKeys("enter")),
}

// Update moves the selection and loads the selected scenario on enter
func (m *ScenariosModel) Update(msg tea.Msg) (*ScenariosModel, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok || len(m.scenarios) == 0 {
		return m, nil
	}
	switch {
	case key.Matches(k, scenarioKeys.Up):
		m.selectedIndex = max(m.selectedIndex-1, 0)
	case key.Matches(k, scenarioKeys.Down):
		m.selectedIndex = min(m.selectedIndex+1, len(m.scenarios)-1)
	case key.Matches(k, scenarioKeys.First):
		m.selectedIndex = 0
	case key.Matches(k, scenarioKeys.Last):
		m.selectedIndex = len(m.scenarios) - 1
	case key.Matches(k, scenarioKeys.Load):
		return m, m.selectScenario()
	}
	return m, nil
}

// selectScenario returns a command to select the current scenario
func (m *ScenariosModel) selectScenario() tea.Cmd {
	name := m.SelectedScenario()
	if name == "" {
		return nil
	}
	return func() tea.Msg {
		return tuimsg.ScenarioSelectedMsg{ScenarioName: name}
	}
}

// View renders the scenarios scene
func (m *ScenariosModel) View() string {
	if len(m.scenarios) == 0 {
		return "No scenarios available.\n\nLoad a plan file with scenarios defined.\n\nPress ESC to go back."
	}

	listStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(tuistyles.ColorBorder).
		Padding(1, 2).
		Width(44)
	title := lipgloss.NewStyle().Bold(true).Foreground(tuistyles.ColorPrimary).MarginBottom(1).Render("Scenarios")
	left := listStyle.Render(title + "\n" + components.ScenarioListCompact(m.cards, m.selectedIndex))

	content := lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", renderScenarioDetails(m.scenarios[m.selectedIndex]))
	return content + "\n\n" + tuistyles.HelpStyle.Render("↑/k up • ↓/j down • Enter load into simulator • g top • G bottom • ESC back")
}

// renderScenarioDetails renders the inputs of a scenario
func renderScenarioDetails(sc domain.Scenario) string {
	in := sc.Retirement
	labelStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted).Bold(true).Width(22)
	valueStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorForeground)

	row := func(label, value string) string {
		return labelStyle.Render(label) + valueStyle.Render(value) + "\n"
	}
	receiving := func(amount float64, now bool) string {
		s := tuistyles.FormatCurrency(amount) + "/mo"
		if now {
			s += " (receiving)"
		}
		return s
	}

	var content strings.Builder
	content.WriteString(lipgloss.NewStyle().Bold(true).Foreground(tuistyles.ColorPrimary).Render(sc.Name))
	content.WriteString("\n\n")
	content.WriteString(row("Ages", fmt.Sprintf("%d now, retire at %d", in.CurrentAge, in.RetirementAge)))
	content.WriteString(row("Monthly expenses", tuistyles.FormatCurrency(in.MonthlyExpenses)))
	content.WriteString(row("Monthly contribution", tuistyles.FormatCurrency(calculation.MonthlyContribution(in))))
	if in.Contribution != nil {
		content.WriteString(row("", fmt.Sprintf("%.1f%% of %s income", in.Contribution.Percent, tuistyles.FormatCurrency(in.Contribution.MonthlyIncome))))
	}
	content.WriteString(row("Current savings", tuistyles.FormatCurrency(in.CurrentSavings)))
	content.WriteString(row("Pension", receiving(in.PensionMonthly, in.ReceivingPension)))
	content.WriteString(row("Disability", receiving(in.DisabilityMonthly, in.ReceivingDisability)))
	content.WriteString(row("Risk tolerance", fmt.Sprintf("%.0f (%s)", in.RiskTolerance, calculation.ResolveRiskProfile(in.RiskTolerance).Name)))
	market := in.Market
	if market == "" {
		market = domain.MarketAverage
	}
	content.WriteString(row("Market", market.Label()))

	content.WriteString("\n")
	content.WriteString(lipgloss.NewStyle().Foreground(tuistyles.ColorInfo).Italic(true).Render("Press Enter to load this scenario"))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(tuistyles.ColorPrimary).
		Padding(1, 2).
		Width(60).
		Render(content.String())
}
