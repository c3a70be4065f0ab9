package tui

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vetfin/vetplan/internal/calculation"
	"github.com/vetfin/vetplan/internal/compare"
	"github.com/vetfin/vetplan/internal/config"
	"github.com/vetfin/vetplan/internal/domain"
	"github.com/vetfin/vetplan/internal/output"
	"github.com/vetfin/vetplan/internal/tui/scenes"
)

// DefaultScenarioName names the scenario used when no plan file is given
const DefaultScenarioName = "Default"

// Model represents the entire application state
type Model struct {
	// Navigation
	currentScene  Scene
	previousScene Scene

	// Terminal dimensions
	width  int
	height int

	// Configuration and data
	configPath       string
	defaultMarket    domain.MarketScenario // for scenarios that leave market empty
	config           *domain.Configuration
	selectedScenario string

	calcEngine    *calculation.CalculationEngine
	compareEngine *compare.CompareEngine

	// calcSeq identifies the newest calculation request
	calcSeq int

	scenariosModel  *scenes.ScenariosModel
	parametersModel *scenes.ParametersModel
	resultsModel    *scenes.ResultsModel
	compareModel    *scenes.CompareModel

	spinner spinner.Model
	help    help.Model

	// Error state
	err error

	// Loading state
	loading        bool
	loadingMessage string

	// status is shown on the right of the status bar
	status string
}

// NewModel creates a new application model. An empty configPath starts the
// simulator from the default inputs; a nil engine uses a default one.
// defaultMarket fills empty scenario markets the same way the CLI does.
func NewModel(configPath string, engine *calculation.CalculationEngine, defaultMarket domain.MarketScenario) Model {
	if engine == nil {
		engine = calculation.NewCalculationEngine()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = InfoStyle

	return Model{
		currentScene:    SceneSimulator,
		configPath:      configPath,
		defaultMarket:   defaultMarket,
		calcEngine:      engine,
		compareEngine:   compare.NewCompareEngine(engine),
		scenariosModel:  scenes.NewScenariosModel(),
		parametersModel: scenes.NewParametersModel(),
		resultsModel:    scenes.NewResultsModel(),
		compareModel:    scenes.NewCompareModel(),
		spinner:         sp,
		help:            newHelp(),
		loading:         true,
		loadingMessage:  "Loading plan...",
		width:           80,
		height:          24,
	}
}

// Init initializes the model (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	return tea.Batch(loadConfigCmd(m.configPath, m.defaultMarket), m.spinner.Tick)
}

// DefaultConfiguration is the single-scenario plan used without a plan file
func DefaultConfiguration() *domain.Configuration {
	return &domain.Configuration{
		Scenarios: []domain.Scenario{
			{Name: DefaultScenarioName, Retirement: domain.DefaultRetirementInputs()},
		},
	}
}

// loadConfigCmd returns a command that loads the configuration file
func loadConfigCmd(path string, defaultMarket domain.MarketScenario) tea.Cmd {
	return func() tea.Msg {
		if path == "" {
			return ConfigLoadedMsg{Config: DefaultConfiguration()}
		}
		parser := config.NewInputParser()
		parser.DefaultMarket = defaultMarket
		cfg, err := parser.LoadFromFile(path)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		// A planner or service only file still needs something to simulate
		if len(cfg.Scenarios) == 0 {
			cfg.Scenarios = DefaultConfiguration().Scenarios
		}
		return ConfigLoadedMsg{Config: cfg}
	}
}

// calculateCmd returns a command that calculates the edited inputs
func calculateCmd(engine *calculation.CalculationEngine, seq int, name string, in domain.RetirementInputs) tea.Cmd {
	return func() tea.Msg {
		plan, err := engine.Calculate(context.Background(), name, in)
		return CalculationCompleteMsg{Seq: seq, ScenarioName: name, Plan: plan, Err: err}
	}
}

// compareCmd compares the edited inputs against the chosen templates
func compareCmd(engine *compare.CompareEngine, profile, name string, in domain.RetirementInputs, templates []string) tea.Cmd {
	return func() tea.Msg {
		cfg := &domain.Configuration{
			Profile:   profile,
			Scenarios: []domain.Scenario{{Name: name, Retirement: in}},
		}
		set, err := engine.Compare(context.Background(), cfg, compare.CompareOptions{
			BaseScenarioName: name,
			Templates:        templates,
		})
		return ComparisonCompleteMsg{Set: set, Err: err}
	}
}

// saveCmd writes cfg with sc replacing the scenario of the same name
func saveCmd(cfg *domain.Configuration, sc *domain.Scenario, path string) tea.Cmd {
	out := &domain.Configuration{}
	if cfg != nil {
		*out = *cfg
	}
	out.Scenarios = make([]domain.Scenario, 0, len(out.Scenarios)+1)
	replaced := false
	if cfg != nil {
		for _, existing := range cfg.Scenarios {
			if existing.Name == sc.Name {
				existing = *sc.DeepCopy()
				replaced = true
			}
			out.Scenarios = append(out.Scenarios, existing)
		}
	}
	if !replaced {
		out.Scenarios = append(out.Scenarios, *sc.DeepCopy())
	}

	return func() tea.Msg {
		if err := output.SaveConfiguration(out, path); err != nil {
			return ScenarioSavedMsg{Path: path, Err: fmt.Errorf("save %s: %w", path, err)}
		}
		return ScenarioSavedMsg{Path: path}
	}
}

// savePath derives the edited-plan file name from the loaded plan path
func savePath(configPath string) string {
	if configPath == "" {
		return "vetplan_scenario.yaml"
	}
	ext := filepath.Ext(configPath)
	if ext == "" {
		ext = ".yaml"
	}
	return strings.TrimSuffix(configPath, filepath.Ext(configPath)) + "_edited" + ext
}

// selectScenario loads the named scenario into the editor and recalculates
func (m *Model) selectScenario(name string) tea.Cmd {
	if m.config == nil {
		return nil
	}
	sc, ok := m.config.FindScenario(name)
	if !ok {
		err := fmt.Errorf("scenario %s not found", name)
		return func() tea.Msg { return ErrorMsg{Err: err} }
	}

	m.selectedScenario = name
	m.parametersModel.SetInputs(name, sc.Retirement)
	m.resultsModel.SetPlan(nil, nil)
	return m.recalculate(m.parametersModel.Inputs())
}

func (m *Model) recalculate(in domain.RetirementInputs) tea.Cmd {
	m.calcSeq++
	return calculateCmd(m.calcEngine, m.calcSeq, m.selectedScenario, in)
}
