package tuimsg

import (
	"github.com/vetfin/vetplan/internal/domain"
)

// ScenarioSelectedMsg signals a scenario has been selected
type ScenarioSelectedMsg struct {
	ScenarioName string
}

// InputsChangedMsg carries the edited inputs after any parameter change
type InputsChangedMsg struct {
	Inputs domain.RetirementInputs
}

// CompareRequestedMsg asks for the current inputs to be compared against templates
type CompareRequestedMsg struct {
	Templates []string
}

// SaveScenarioMsg signals a request to save the edited scenario
type SaveScenarioMsg struct {
	Scenario *domain.Scenario
	Filename string
}
