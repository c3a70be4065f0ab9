package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vetfin/vetplan/internal/tui/tuimsg"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	// Standard tea.Msg types
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.scenariosModel.SetSize(msg.Width, msg.Height)
		m.parametersModel.SetSize(msg.Width, msg.Height)
		m.resultsModel.SetSize(msg.Width, msg.Height)
		m.compareModel.SetSize(msg.Width, msg.Height)
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	// Custom messages
	case NavigateMsg:
		if msg.Scene != m.currentScene {
			m.previousScene = m.currentScene
			m.currentScene = msg.Scene
		}
		return m, nil

	case ErrorMsg:
		m.loading = false
		m.err = msg.Err
		if m.config == nil {
			// A plan that fails to load leaves the default inputs to work with
			m.config = DefaultConfiguration()
			m.scenariosModel.SetScenarios(m.config.Scenarios)
			return m, m.selectScenario(DefaultScenarioName)
		}
		return m, nil

	case ConfigLoadedMsg:
		m.loading = false
		m.config = msg.Config
		if msg.Config == nil || len(msg.Config.Scenarios) == 0 {
			return m, nil
		}
		m.scenariosModel.SetScenarios(msg.Config.Scenarios)
		return m, m.selectScenario(msg.Config.Scenarios[0].Name)

	case tuimsg.ScenarioSelectedMsg:
		cmd := m.selectScenario(msg.ScenarioName)
		m.previousScene = m.currentScene
		m.currentScene = SceneSimulator
		return m, cmd

	case tuimsg.InputsChangedMsg:
		m.status = ""
		return m, m.recalculate(msg.Inputs)

	case CalculationCompleteMsg:
		if msg.Seq != m.calcSeq {
			return m, nil
		}
		m.resultsModel.SetPlan(msg.Plan, msg.Err)
		return m, nil

	case tuimsg.CompareRequestedMsg:
		profile := ""
		if m.config != nil {
			profile = m.config.Profile
		}
		return m, compareCmd(m.compareEngine, profile, m.comparisonBaseName(), m.parametersModel.Inputs(), msg.Templates)

	case ComparisonCompleteMsg:
		m.compareModel.SetResults(msg.Set, msg.Err)
		return m, nil

	case tuimsg.SaveScenarioMsg:
		path := msg.Filename
		if path == "" {
			path = savePath(m.configPath)
		}
		return m, saveCmd(m.config, msg.Scenario, path)

	case ScenarioSavedMsg:
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.status = "Saved to " + msg.Path
		return m, nil
	}

	// Delegate to scene-specific update handlers
	return m.updateCurrentScene(msg)
}

func (m Model) comparisonBaseName() string {
	if m.selectedScenario == "" {
		return DefaultScenarioName
	}
	return m.selectedScenario
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key dismisses an error
	if m.err != nil {
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		m.err = nil
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Help):
		return m, navigate(SceneHelp)

	case key.Matches(msg, keys.Back):
		if m.currentScene != SceneSimulator {
			target := m.previousScene
			if target == m.currentScene {
				target = SceneSimulator
			}
			return m, navigate(target)
		}

	case key.Matches(msg, keys.Simulator):
		return m, navigate(SceneSimulator)

	case key.Matches(msg, keys.Scenarios):
		return m, navigate(SceneScenarios)

	case key.Matches(msg, keys.Compare):
		return m, navigate(SceneCompare)
	}

	// Let the current scene handle other keys
	return m.updateCurrentScene(msg)
}

func navigate(scene Scene) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Scene: scene}
	}
}

// updateCurrentScene delegates updates to the current scene's model
func (m Model) updateCurrentScene(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.currentScene {
	case SceneSimulator:
		m.parametersModel, cmd = m.parametersModel.Update(msg)
	case SceneScenarios:
		m.scenariosModel, cmd = m.scenariosModel.Update(msg)
	case SceneCompare:
		m.compareModel, cmd = m.compareModel.Update(msg)
	}
	return m, cmd
}
