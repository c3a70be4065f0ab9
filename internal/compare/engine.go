package compare

import (
	"context"
	"fmt"

	"github.com/vetfin/vetplan/internal/calculation"
	"github.com/vetfin/vetplan/internal/domain"
	"github.com/vetfin/vetplan/internal/transform"
)

// CompareEngine runs a base scenario against alternatives built from templates
// or taken from the plan file
type CompareEngine struct {
	CalcEngine        *calculation.CalculationEngine
	MetricsCalculator *MetricsCalculator
	TemplateRegistry  *transform.TemplateRegistry
}

// NewCompareEngine creates an engine with the built-in templates registered
func NewCompareEngine(calcEngine *calculation.CalculationEngine) *CompareEngine {
	return &CompareEngine{
		CalcEngine:        calcEngine,
		MetricsCalculator: NewMetricsCalculator(),
		TemplateRegistry:  transform.CreateBuiltInTemplates(),
	}
}

// CompareOptions selects the base scenario and the templates applied to it.
// An empty BaseScenarioName selects the first scenario.
type CompareOptions struct {
	BaseScenarioName string
	Templates        []string
}

func findBase(config *domain.Configuration, name string) (*domain.Scenario, error) {
	if len(config.Scenarios) == 0 {
		return nil, fmt.Errorf("no scenarios provided")
	}
	if name == "" {
		return &config.Scenarios[0], nil
	}
	base, ok := config.FindScenario(name)
	if !ok {
		return nil, fmt.Errorf("base scenario %s not found in configuration", name)
	}
	return base, nil
}

// alternative is a scenario waiting to be calculated against the base
type alternative struct {
	scenario    *domain.Scenario
	label       string // used in error messages
	description string
}

// Compare runs the base scenario and one variant per template. Variants are
// named <base>_<template>.
func (ce *CompareEngine) Compare(ctx context.Context, config *domain.Configuration, options CompareOptions) (*ComparisonSet, error) {
	registry := ce.TemplateRegistry
	if registry == nil {
		registry = transform.CreateBuiltInTemplates()
	}

	base, err := findBase(config, options.BaseScenarioName)
	if err != nil {
		return nil, err
	}

	alts := make([]alternative, 0, len(options.Templates))
	for _, name := range options.Templates {
		tmpl, ok := registry.Get(name)
		if !ok {
			return nil, fmt.Errorf("template %s not found", name)
		}
		variant, err := transform.ApplyTemplate(base, tmpl)
		if err != nil {
			return nil, fmt.Errorf("failed to apply template %s: %w", name, err)
		}
		variant.Name = base.Name + "_" + tmpl.Name
		alts = append(alts, alternative{scenario: variant, label: name, description: tmpl.Description})
	}

	return ce.run(ctx, base, alts)
}

// CompareScenarios compares named scenarios from the plan file against the base
func (ce *CompareEngine) CompareScenarios(ctx context.Context, config *domain.Configuration, baseScenarioName string, alternativeScenarioNames []string) (*ComparisonSet, error) {
	base, err := findBase(config, baseScenarioName)
	if err != nil {
		return nil, err
	}

	alts := make([]alternative, 0, len(alternativeScenarioNames))
	for _, name := range alternativeScenarioNames {
		sc, ok := config.FindScenario(name)
		if !ok {
			return nil, fmt.Errorf("alternative scenario %s not found", name)
		}
		alts = append(alts, alternative{scenario: sc, label: name})
	}

	return ce.run(ctx, base, alts)
}

func (ce *CompareEngine) run(ctx context.Context, base *domain.Scenario, alts []alternative) (*ComparisonSet, error) {
	metrics := ce.MetricsCalculator
	if metrics == nil {
		metrics = NewMetricsCalculator()
	}

	basePlan, err := ce.CalcEngine.Calculate(ctx, base.Name, base.Retirement)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate base scenario: %w", err)
	}
	baseResult := metrics.CalculateMetrics(basePlan)

	set := &ComparisonSet{
		BaseScenarioName:   base.Name,
		BaseResult:         &baseResult,
		AlternativeResults: make([]ComparisonResult, 0, len(alts)),
	}
	for _, alt := range alts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		plan, err := ce.CalcEngine.Calculate(ctx, alt.scenario.Name, alt.scenario.Retirement)
		if err != nil {
			return nil, fmt.Errorf("failed to calculate scenario %s: %w", alt.label, err)
		}
		result := metrics.CalculateMetrics(plan)
		result.Description = alt.description
		set.AlternativeResults = append(set.AlternativeResults, metrics.CalculateComparison(result, baseResult))
	}
	set.Recommendations = GenerateRecommendations(set)
	return set, nil
}
