package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// View renders the current scene inside the title and status bars
func (m Model) View() string {
	switch {
	case m.loading:
		message := m.loadingMessage
		if message == "" {
			message = "Loading..."
		}
		return m.frame(BorderStyle.Render(m.spinner.View() + " " + message))
	case m.err != nil:
		return m.frame(ErrorStyle.Render("Error: " + m.err.Error() + "\n\nPress any key to continue..."))
	}

	var content string
	switch m.currentScene {
	case SceneSimulator:
		params, results := m.parametersModel.View(), m.resultsModel.View()
		if m.width < 110 {
			content = lipgloss.JoinVertical(lipgloss.Left, params, results)
		} else {
			content = lipgloss.JoinHorizontal(lipgloss.Top, params, "  ", results)
		}
	case SceneScenarios:
		content = m.scenariosModel.View()
	case SceneCompare:
		content = m.compareModel.View()
	case SceneHelp:
		content = m.helpScreen()
	default:
		content = "Unknown scene"
	}
	return m.frame(content)
}

// frame stacks the title bar, the content and the status bar. The title takes
// two lines and the status bar one.
func (m Model) frame(content string) string {
	body := lipgloss.NewStyle().Height(max(0, m.height-4)).Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, m.titleBar(), body, m.statusBar())
}

// titleBar shows the profile, scene and selected scenario as a breadcrumb
func (m Model) titleBar() string {
	var crumbs []string
	if m.config != nil && m.config.Profile != "" {
		crumbs = append(crumbs, m.config.Profile)
	}
	crumbs = append(crumbs, m.currentScene.String())
	if m.selectedScenario != "" {
		crumbs = append(crumbs, m.selectedScenario)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		TitleStyle.Render("VETPLAN - Veteran Retirement Simulator"),
		SubtitleStyle.Render(strings.Join(crumbs, " / ")))
}

// statusBar lists the global keys, with the status message or plan path on the right
func (m Model) statusBar() string {
	left := m.help.ShortHelpView(keys.ShortHelp())

	right := m.status
	if right == "" {
		right = m.configPath
	}
	if right != "" {
		right = SubtitleStyle.Render(right)
		gap := max(1, m.width-lipgloss.Width(left)-lipgloss.Width(right)-4)
		left += strings.Repeat(" ", gap) + right
	}
	return StatusBarStyle.Width(m.width).Render(left)
}

func (m Model) helpScreen() string {
	section := func(title string, groups [][]key.Binding) string {
		return lipgloss.NewStyle().Bold(true).Render(title) + "\n" + m.help.FullHelpView(groups)
	}
	return BorderStyle.Render(strings.Join([]string{
		section("KEYBOARD SHORTCUTS", keys.FullHelp()),
		section("SIMULATOR", simulatorHelp),
		section("COMPARE", compareHelp),
	}, "\n\n"))
}
