package scenes

import (
	"fmt"
	"math"
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

// paramField identifies one editable input, in display order
type paramField int

const (
	fieldCurrentAge paramField = iota
	fieldRetirementAge
	fieldExpenses
	fieldContribution
	fieldSavings
	fieldPension
	fieldReceivingPension
	fieldDisability
	fieldReceivingDisability
	fieldRisk
	fieldMarket
	fieldCount
)

// marketOrder is the slider order, weakest first
var marketOrder = []domain.MarketScenario{
	domain.MarketBelowAverage,
	domain.MarketAverage,
	domain.MarketStrong,
}

// ParametersModel represents the parameter editing scene
type ParametersModel struct {
	scenarioName string
	original     domain.RetirementInputs
	inputs       domain.RetirementInputs
	sliders      map[paramField]*components.ParameterSlider
	toggles      map[paramField]*components.Toggle
	focused      paramField
	width        int
	height       int
	modified     bool
}

// NewParametersModel creates a new parameters scene model
func NewParametersModel() *ParametersModel {
	m := &ParametersModel{}
	m.SetInputs("", domain.DefaultRetirementInputs())
	return m
}

// SetInputs loads a scenario for editing and clears the modified flag
func (m *ParametersModel) SetInputs(name string, in domain.RetirementInputs) {
	if in.Market == "" {
		in.Market = domain.MarketAverage
	}
	m.scenarioName = name
	m.original = copyInputs(in)
	m.inputs = copyInputs(in)
	m.modified = false
	m.build()
}

// Inputs returns the edited inputs
func (m *ParametersModel) Inputs() domain.RetirementInputs {
	return copyInputs(m.inputs)
}

// ScenarioName returns the name of the scenario being edited
func (m *ParametersModel) ScenarioName() string {
	return m.scenarioName
}

// Modified reports whether the inputs differ from the loaded scenario
func (m *ParametersModel) Modified() bool {
	return m.modified
}

// SetSize updates the scene dimensions
func (m *ParametersModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func copyInputs(in domain.RetirementInputs) domain.RetirementInputs {
	if in.Contribution != nil {
		src := *in.Contribution
		in.Contribution = &src
	}
	return in
}

// build creates the sliders and toggles from the current inputs
func (m *ParametersModel) build() {
	in := m.inputs
	currency := tuistyles.FormatCurrency
	age := func(v float64) string { return fmt.Sprintf("%.0f", v) }

	m.sliders = map[paramField]*components.ParameterSlider{
		fieldCurrentAge: components.NewParameterSlider("Current Age", float64(in.CurrentAge), 18, 99, 1).
			WithFormatter(age).WithBigStep(5),
		fieldRetirementAge: components.NewParameterSlider("Retirement Age", float64(in.RetirementAge), 19, 100, 1).
			WithFormatter(age).WithBigStep(5).
			WithHint("Must be later than the current age"),
		fieldExpenses: components.NewParameterSlider("Monthly Expenses", in.MonthlyExpenses, 0, ceiling(20_000, in.MonthlyExpenses), 100).
			WithFormatter(currency).
			WithHint("Monthly spending in retirement"),
		fieldContribution: components.NewParameterSlider("Monthly Contribution", calculation.MonthlyContribution(in), 0, ceiling(10_000, calculation.MonthlyContribution(in)), 50).
			WithFormatter(currency).
			WithHint("Saved every month until retirement"),
		fieldSavings: components.NewParameterSlider("Current Savings", in.CurrentSavings, 0, ceiling(2_000_000, in.CurrentSavings), 1000).
			WithFormatter(currency).WithBigStep(25_000),
		fieldPension: components.NewParameterSlider("Pension", in.PensionMonthly, 0, ceiling(10_000, in.PensionMonthly), 50).
			WithFormatter(currency).
			WithHint("Monthly military pension"),
		fieldDisability: components.NewParameterSlider("Disability", in.DisabilityMonthly, 0, ceiling(10_000, in.DisabilityMonthly), 50).
			WithFormatter(currency).
			WithHint("Monthly VA disability compensation"),
		fieldRisk: components.NewParameterSlider("Risk Tolerance", in.RiskTolerance, 0, 100, 1).
			WithFormatter(func(v float64) string {
				return fmt.Sprintf("%.0f (%s)", v, calculation.ResolveRiskProfile(v).Name)
			}).
			WithHint("0 to 100; selects the conservative, moderate or aggressive allocation"),
		fieldMarket: components.NewParameterSlider("Market", float64(marketIndex(in.Market)), 0, float64(len(marketOrder)-1), 1).
			WithFormatter(func(v float64) string {
				return marketOrder[int(v)].Label()
			}).WithBigStep(1),
	}
	m.toggles = map[paramField]*components.Toggle{
		fieldReceivingPension:    components.NewToggle("Receiving pension now", in.ReceivingPension),
		fieldReceivingDisability: components.NewToggle("Receiving disability now", in.ReceivingDisability),
	}
	for _, s := range m.sliders {
		s.WithWidth(24)
	}
	m.setFocus(m.focused)
}

// ceiling widens a slider's range so a loaded value is never clamped
func ceiling(limit, value float64) float64 {
	return math.Max(limit, math.Ceil(value))
}

func marketIndex(market domain.MarketScenario) int {
	for i, mk := range marketOrder {
		if mk == market {
			return i
		}
	}
	return 1
}

// Update handles messages for the parameters scene
func (m *ParametersModel) Update(msg tea.Msg) (*ParametersModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}
	return m, nil
}

// handleKeyPress processes keyboard input
func (m *ParametersModel) handleKeyPress(msg tea.KeyMsg) (*ParametersModel, tea.Cmd) {
	switch {
	case key.Matches(msg, key.NewBinding(key.WithKeys("up", "k"))):
		m.setFocus((m.focused + fieldCount - 1) % fieldCount)
		return m, nil

	case key.Matches(msg, key.NewBinding(key.WithKeys("down", "j", "tab"))):
		m.setFocus((m.focused + 1) % fieldCount)
		return m, nil

	case key.Matches(msg, key.NewBinding(key.WithKeys("left", "h"))):
		return m, m.adjust(func(s *components.ParameterSlider) bool { return s.Nudge(-1) })

	case key.Matches(msg, key.NewBinding(key.WithKeys("right", "l"))):
		return m, m.adjust(func(s *components.ParameterSlider) bool { return s.Nudge(1) })

	case key.Matches(msg, key.NewBinding(key.WithKeys("pgdown", "["))):
		return m, m.adjust(func(s *components.ParameterSlider) bool { return s.Jump(-1) })

	case key.Matches(msg, key.NewBinding(key.WithKeys("pgup", "]"))):
		return m, m.adjust(func(s *components.ParameterSlider) bool { return s.Jump(1) })

	case key.Matches(msg, key.NewBinding(key.WithKeys(" ", "enter"))):
		if t, ok := m.toggles[m.focused]; ok {
			t.Flip()
			return m, m.changed()
		}
		return m, nil

	case key.Matches(msg, key.NewBinding(key.WithKeys("r"))):
		m.inputs = copyInputs(m.original)
		m.modified = false
		m.build()
		return m, m.emitInputs()

	case key.Matches(msg, key.NewBinding(key.WithKeys("ctrl+s"))):
		if !m.modified {
			return m, nil
		}
		return m, m.saveScenario()
	}

	return m, nil
}

func (m *ParametersModel) setFocus(f paramField) {
	m.focused = f
	for field, s := range m.sliders {
		s.SetFocused(field == f)
	}
	for field, t := range m.toggles {
		t.SetFocused(field == f)
	}
}

// adjust applies move to the focused slider; toggles ignore it
func (m *ParametersModel) adjust(move func(*components.ParameterSlider) bool) tea.Cmd {
	s, ok := m.sliders[m.focused]
	if !ok || !move(s) {
		return nil
	}
	return m.changed()
}

// changed copies the widget values into the inputs and announces them
func (m *ParametersModel) changed() tea.Cmd {
	m.enforceAgeOrder()

	in := &m.inputs
	in.CurrentAge = int(m.sliders[fieldCurrentAge].Value)
	in.RetirementAge = int(m.sliders[fieldRetirementAge].Value)
	in.MonthlyExpenses = m.sliders[fieldExpenses].Value
	in.CurrentSavings = m.sliders[fieldSavings].Value
	in.PensionMonthly = m.sliders[fieldPension].Value
	in.DisabilityMonthly = m.sliders[fieldDisability].Value
	in.RiskTolerance = m.sliders[fieldRisk].Value
	in.Market = marketOrder[int(m.sliders[fieldMarket].Value)]
	in.ReceivingPension = m.toggles[fieldReceivingPension].On
	in.ReceivingDisability = m.toggles[fieldReceivingDisability].On

	// An edited contribution replaces any income-derived one
	if m.focused == fieldContribution {
		in.Contribution = nil
		in.MonthlyContribution = m.sliders[fieldContribution].Value
	}

	m.modified = true
	return m.emitInputs()
}

// enforceAgeOrder keeps retirement age strictly after current age by moving
// whichever slider was not being edited
func (m *ParametersModel) enforceAgeOrder() {
	current, retire := m.sliders[fieldCurrentAge], m.sliders[fieldRetirementAge]
	if retire.Value > current.Value {
		return
	}
	if m.focused == fieldRetirementAge {
		current.SetValue(retire.Value - 1)
		if retire.Value <= current.Value {
			retire.SetValue(current.Value + 1)
		}
		return
	}
	retire.SetValue(current.Value + 1)
	if retire.Value <= current.Value {
		current.SetValue(retire.Value - 1)
	}
}

func (m *ParametersModel) emitInputs() tea.Cmd {
	in := m.Inputs()
	return func() tea.Msg {
		return tuimsg.InputsChangedMsg{Inputs: in}
	}
}

// saveScenario returns a command to save the edited scenario
func (m *ParametersModel) saveScenario() tea.Cmd {
	sc := &domain.Scenario{Name: m.scenarioName, Retirement: m.Inputs()}
	return func() tea.Msg {
		return tuimsg.SaveScenarioMsg{Scenario: sc}
	}
}

// View renders the parameters scene
func (m *ParametersModel) View() string {
	var content strings.Builder

	title := "Parameters"
	if m.scenarioName != "" {
		title += ": " + m.scenarioName
	}
	content.WriteString(lipgloss.NewStyle().Bold(true).Foreground(tuistyles.ColorPrimary).Render(title))
	if m.modified {
		content.WriteString(" " + lipgloss.NewStyle().Foreground(tuistyles.ColorAccent).Render("(modified)"))
	}
	content.WriteString("\n\n")

	// Only the focused slider draws its bar
	for f := paramField(0); f < fieldCount; f++ {
		switch s, ok := m.sliders[f]; {
		case ok && f == m.focused:
			content.WriteString(s.Render())
		case ok:
			content.WriteString(s.RenderCompact())
		default:
			content.WriteString(m.toggles[f].Render())
		}
		content.WriteString("\n")
	}

	content.WriteString("\n")
	content.WriteString(tuistyles.HelpStyle.Render("↑/↓ select • ←/→ adjust • [/] big step • space toggle • r reset • ctrl+s save"))

	return tuistyles.BorderStyle.Render(content.String())
}
