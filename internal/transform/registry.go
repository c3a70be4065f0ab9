package transform

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/vetfin/vetplan/internal/domain"
)

// TransformRegistry provides a central registry for all available transforms.
// It enables creation of transforms from string parameters, useful for CLI commands.
type TransformRegistry struct {
	factories map[string]TransformFactory
}

// TransformFactory is a function that creates a transform from parameters.
type TransformFactory func(params map[string]string) (ScenarioTransform, error)

// NewTransformRegistry creates a new registry with all built-in transforms registered.
func NewTransformRegistry() *TransformRegistry {
	registry := &TransformRegistry{
		factories: make(map[string]TransformFactory),
	}

	registry.Register("postpone_retirement", createPostponeRetirement)
	registry.Register("retire_earlier", createRetireEarlier)
	registry.Register("set_risk", createSetRiskTolerance)
	registry.Register("set_market", createSetMarketScenario)
	registry.Register("adjust_contribution", createAdjustContribution)
	registry.Register("set_contribution_percent", createSetContributionPercent)
	registry.Register("start_income", createStartGuaranteedIncome)
	registry.Register("set_income", createSetGuaranteedIncome)

	return registry
}

// Register adds a transform factory to the registry.
func (r *TransformRegistry) Register(name string, factory TransformFactory) {
	r.factories[name] = factory
}

// Create creates a transform by name with the given parameters.
func (r *TransformRegistry) Create(name string, params map[string]string) (ScenarioTransform, error) {
	factory, exists := r.factories[name]
	if !exists {
		return nil, fmt.Errorf("unknown transform: %s", name)
	}

	return factory(params)
}

// List returns the sorted names of all registered transforms.
func (r *TransformRegistry) List() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseTransformSpec builds a transform from "name:key=value,..." text, as in
// "postpone_retirement:years=2"
func (r *TransformRegistry) ParseTransformSpec(spec string) (ScenarioTransform, error) {
	parts := strings.SplitN(spec, ":", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid transform spec format, expected 'name:params', got: %s", spec)
	}

	name := strings.TrimSpace(parts[0])
	paramsStr := strings.TrimSpace(parts[1])

	params := make(map[string]string)
	if paramsStr != "" {
		for _, paramPair := range strings.Split(paramsStr, ",") {
			kv := strings.SplitN(paramPair, "=", 2)
			if len(kv) != 2 {
				return nil, fmt.Errorf("invalid parameter format, expected 'key=value', got: %s", paramPair)
			}
			params[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
		}
	}

	return r.Create(name, params)
}

// Factory functions for each transform

func requireInt(transform string, params map[string]string, key string) (int, error) {
	s, ok := params[key]
	if !ok {
		return 0, fmt.Errorf("%s requires '%s' parameter", transform, key)
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return v, nil
}

func requireFloat(transform string, params map[string]string, key string) (float64, error) {
	s, ok := params[key]
	if !ok {
		return 0, fmt.Errorf("%s requires '%s' parameter", transform, key)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return v, nil
}

func optionalFloat(params map[string]string, key string, def float64) (float64, error) {
	s, ok := params[key]
	if !ok {
		return def, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return v, nil
}

func flag(params map[string]string, key string) bool {
	v := strings.ToLower(params[key])
	return v == "true" || v == "yes" || v == "1"
}

func createPostponeRetirement(params map[string]string) (ScenarioTransform, error) {
	years, err := requireInt("postpone_retirement", params, "years")
	if err != nil {
		return nil, err
	}
	return &PostponeRetirement{Years: years}, nil
}

func createRetireEarlier(params map[string]string) (ScenarioTransform, error) {
	years, err := requireInt("retire_earlier", params, "years")
	if err != nil {
		return nil, err
	}
	return &RetireEarlier{Years: years}, nil
}

func createSetRiskTolerance(params map[string]string) (ScenarioTransform, error) {
	tolerance, err := requireFloat("set_risk", params, "tolerance")
	if err != nil {
		return nil, err
	}
	return &SetRiskTolerance{Tolerance: tolerance}, nil
}

func createSetMarketScenario(params map[string]string) (ScenarioTransform, error) {
	raw, ok := params["market"]
	if !ok {
		return nil, fmt.Errorf("set_market requires 'market' parameter")
	}
	market, err := domain.ParseMarketScenario(raw)
	if err != nil {
		return nil, err
	}
	return &SetMarketScenario{Market: market}, nil
}

func createAdjustContribution(params map[string]string) (ScenarioTransform, error) {
	delta, err := requireFloat("adjust_contribution", params, "delta")
	if err != nil {
		return nil, err
	}
	return &AdjustContribution{Delta: delta}, nil
}

func createSetContributionPercent(params map[string]string) (ScenarioTransform, error) {
	percent, err := requireFloat("set_contribution_percent", params, "percent")
	if err != nil {
		return nil, err
	}
	income, err := optionalFloat(params, "income", 0)
	if err != nil {
		return nil, err
	}
	return &SetContributionPercent{Percent: percent, Income: income}, nil
}

func createStartGuaranteedIncome(params map[string]string) (ScenarioTransform, error) {
	return &StartGuaranteedIncome{
		Pension:    flag(params, "pension"),
		Disability: flag(params, "disability"),
	}, nil
}

func createSetGuaranteedIncome(params map[string]string) (ScenarioTransform, error) {
	pension, err := optionalFloat(params, "pension", -1)
	if err != nil {
		return nil, err
	}
	disability, err := optionalFloat(params, "disability", -1)
	if err != nil {
		return nil, err
	}
	if pension < 0 && disability < 0 {
		return nil, fmt.Errorf("set_income requires 'pension' or 'disability' parameter")
	}
	return &SetGuaranteedIncome{Pension: pension, Disability: disability}, nil
}
