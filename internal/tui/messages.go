package tui

import (
	"github.com/vetfin/vetplan/internal/compare"
	"github.com/vetfin/vetplan/internal/domain"
)

// Scene represents different screens in the TUI
type Scene int

const (
	SceneSimulator Scene = iota
	SceneScenarios
	SceneCompare
	SceneHelp
)

// NavigateMsg switches to a different scene
type NavigateMsg struct {
	Scene Scene
}

// ErrorMsg displays an error to the user
type ErrorMsg struct {
	Err error
}

// ConfigLoadedMsg signals configuration has been loaded
type ConfigLoadedMsg struct {
	Config *domain.Configuration
}

// CalculationCompleteMsg carries the plan for the current inputs. Seq orders
// results so a slow calculation never overwrites a newer one.
type CalculationCompleteMsg struct {
	Seq          int
	ScenarioName string
	Plan         *domain.RetirementPlan
	Err          error
}

// ComparisonCompleteMsg signals a comparison has finished
type ComparisonCompleteMsg struct {
	Set *compare.ComparisonSet
	Err error
}

// ScenarioSavedMsg signals a save operation has finished
type ScenarioSavedMsg struct {
	Path string
	Err  error
}

// String returns a human-readable name for a scene
func (s Scene) String() string {
	switch s {
	case SceneSimulator:
		return "Simulator"
	case SceneScenarios:
		return "Scenarios"
	case SceneCompare:
		return "Compare"
	case SceneHelp:
		return "Help"
	default:
		return "Unknown"
	}
}
