package scenes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vetfin/vetplan/internal/compare"
	"github.com/vetfin/vetplan/internal/transform"
	"github.com/vetfin/vetplan/internal/tui/components"
	"github.com/vetfin/vetplan/internal/tui/tuimsg"
	"github.com/vetfin/vetplan/internal/tui/tuistyles"
)

// CompareModel lets the user pick what-if templates to compare against the
// inputs being edited
type CompareModel struct {
	templates []transform.Template
	selected  map[int]bool
	cursor    int
	results   *compare.ComparisonSet
	err       error
	comparing bool
	width     int
	height    int
}

// NewCompareModel creates a new compare scene model with the built-in templates
func NewCompareModel() *CompareModel {
	registry := transform.CreateBuiltInTemplates()
	m := &CompareModel{selected: make(map[int]bool)}
	for _, name := range registry.List() {
		t, _ := registry.Get(name)
		m.templates = append(m.templates, t)
	}
	return m
}

// SetResults stores comparison results
func (m *CompareModel) SetResults(results *compare.ComparisonSet, err error) {
	m.results = results
	m.err = err
	m.comparing = false
}

// Results returns the last comparison, if any
func (m *CompareModel) Results() *compare.ComparisonSet {
	return m.results
}

// SetSize updates the model dimensions
func (m *CompareModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages for the compare scene
func (m *CompareModel) Update(msg tea.Msg) (*CompareModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("up", "k"))):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("down", "j"))):
		if m.cursor < len(m.templates)-1 {
			m.cursor++
		}

	case key.Matches(keyMsg, key.NewBinding(key.WithKeys(" ", "x"))):
		m.selected[m.cursor] = !m.selected[m.cursor]

	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("enter"))):
		names := m.SelectedTemplates()
		if len(names) == 0 {
			return m, nil
		}
		m.comparing = true
		return m, func() tea.Msg {
			return tuimsg.CompareRequestedMsg{Templates: names}
		}

	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("c"))):
		m.selected = make(map[int]bool)
		m.results = nil
		m.err = nil
	}

	return m, nil
}

// SelectedTemplates returns the chosen template names in list order
func (m *CompareModel) SelectedTemplates() []string {
	var names []string
	for i, t := range m.templates {
		if m.selected[i] {
			names = append(names, t.Name)
		}
	}
	return names
}

// View renders the compare scene
func (m *CompareModel) View() string {
	selection := m.renderSelection()

	var right string
	switch {
	case m.comparing:
		right = tuistyles.InfoStyle.Render("Calculating comparison...")
	case m.err != nil:
		right = tuistyles.ErrorStyle.Render("Comparison failed: " + m.err.Error())
	case m.results != nil:
		tf := &compare.TableFormatter{}
		right = tuistyles.BorderStyle.Render(tf.Format(m.results))
	default:
		return selection
	}

	if m.width > 0 && m.width < 120 {
		return lipgloss.JoinVertical(lipgloss.Left, selection, right)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, selection, "  ", right)
}

func (m *CompareModel) renderSelection() string {
	var content strings.Builder

	content.WriteString(lipgloss.NewStyle().Bold(true).Foreground(tuistyles.ColorPrimary).Render("What-if Templates"))
	content.WriteString("\n\n")

	cursorStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorPrimary)
	descStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)
	for i, t := range m.templates {
		prefix := "  "
		if i == m.cursor {
			prefix = cursorStyle.Render("❯ ")
		}
		box := components.NewToggle(t.Name, m.selected[i]).SetFocused(i == m.cursor)
		content.WriteString(prefix + box.Render())
		if i == m.cursor {
			content.WriteString(descStyle.Render("  " + t.Description))
		}
		content.WriteString("\n")
	}

	content.WriteString("\n")
	n := len(m.SelectedTemplates())
	if n == 0 {
		content.WriteString(descStyle.Render("Select at least one template"))
	} else {
		content.WriteString(lipgloss.NewStyle().Foreground(tuistyles.ColorSuccess).Render(
			fmt.Sprintf("Selected: %d • Press Enter to compare", n)))
	}
	content.WriteString("\n")
	content.WriteString(tuistyles.HelpStyle.Render("↑/↓ move • space select • enter compare • c clear"))

	return tuistyles.BorderStyle.Render(content.String())
}
