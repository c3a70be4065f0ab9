package domain

import "time"

// Scenario is a named set of retirement inputs
type Scenario struct {
	Name       string           `yaml:"name" json:"name"`
	Retirement RetirementInputs `yaml:"retirement" json:"retirement"`
}

// DeepCopy returns a copy that shares no pointers with s
func (s *Scenario) DeepCopy() *Scenario {
	if s == nil {
		return nil
	}
	cp := *s
	if s.Retirement.Contribution != nil {
		src := *s.Retirement.Contribution
		cp.Retirement.Contribution = &src
	}
	return &cp
}

// Configuration is the contents of a plan file
type Configuration struct {
	Profile   string           `yaml:"profile" json:"profile"`
	Scenarios []Scenario       `yaml:"scenarios" json:"scenarios"`
	Planner   *FinancialInputs `yaml:"planner,omitempty" json:"planner,omitempty"`
	Service   *ServiceProfile  `yaml:"service,omitempty" json:"service,omitempty"`
}

// FindScenario returns the scenario with the given name
func (c *Configuration) FindScenario(name string) (*Scenario, bool) {
	for i := range c.Scenarios {
		if c.Scenarios[i].Name == name {
			return &c.Scenarios[i], true
		}
	}
	return nil, false
}

// PlanComparison collects the plans calculated from one configuration
type PlanComparison struct {
	Profile     string           `yaml:"profile" json:"profile"`
	GeneratedAt time.Time        `yaml:"generated_at" json:"generatedAt"`
	Plans       []RetirementPlan `yaml:"plans" json:"plans"`
}
