package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vetfin/vetplan/internal/calculation"
	"github.com/vetfin/vetplan/internal/domain"
	"gopkg.in/yaml.v3"
)

// ValidationError lists every invalid field found at the input boundary
type ValidationError = domain.ValidationError

// InputParser handles parsing of plan files
type InputParser struct {
	// DefaultMarket replaces an empty market in a scenario; zero means average
	DefaultMarket domain.MarketScenario
}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a plan from a YAML (or JSON) file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates plan file contents. Keys that match no field are
// rejected so a misspelled amount never loads as zero.
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	// Markets are written free-form in plan files
	for i := range config.Scenarios {
		raw := string(config.Scenarios[i].Retirement.Market)
		if strings.TrimSpace(raw) == "" {
			raw = string(ip.DefaultMarket)
		}
		m, err := ParseMarket(raw)
		if err != nil {
			return nil, fmt.Errorf("scenario %d: %w", i, err)
		}
		config.Scenarios[i].Retirement.Market = m
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration. A file may hold
// only planner or service sections; commands that need scenarios check for
// them when they run.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if len(config.Scenarios) == 0 && config.Planner == nil && config.Service == nil {
		return fmt.Errorf("no scenarios, planner or service section provided")
	}

	seen := make(map[string]bool, len(config.Scenarios))
	for i, scenario := range config.Scenarios {
		name := strings.TrimSpace(scenario.Name)
		if name == "" {
			return fmt.Errorf("scenario %d: scenario name is required", i)
		}
		if seen[name] {
			return fmt.Errorf("scenario %d: duplicate scenario name %q", i, name)
		}
		seen[name] = true

		if err := ValidateRetirementInputs(scenario.Retirement); err != nil {
			return fmt.Errorf("scenario %d (%s) validation failed: %w", i, name, err)
		}
	}

	if config.Planner != nil {
		if err := ValidateFinancialInputs(*config.Planner); err != nil {
			return fmt.Errorf("planner validation failed: %w", err)
		}
	}
	if config.Service != nil {
		if err := calculation.ValidateServiceProfile(*config.Service); err != nil {
			return fmt.Errorf("service profile validation failed: %w", err)
		}
	}

	return nil
}

// ValidateRetirementInputs checks one scenario's inputs. An empty market is
// accepted and treated as average.
func ValidateRetirementInputs(in domain.RetirementInputs) error {
	return in.Validate()
}

// ValidateFinancialInputs checks the budget planner figures
func ValidateFinancialInputs(in domain.FinancialInputs) error {
	verr := &ValidationError{}
	amounts := []struct {
		field string
		value float64
	}{
		{"monthly_income", in.MonthlyIncome},
		{"pension_monthly", in.PensionMonthly},
		{"disability_monthly", in.DisabilityMonthly},
		{"monthly_expenses", in.MonthlyExpenses},
		{"current_savings", in.CurrentSavings},
	}
	for _, a := range amounts {
		if err := checkAmount(a.value); err != "" {
			verr.Add(a.field, formatFloat(a.value), err)
		}
	}
	return verr.ErrOrNil()
}
