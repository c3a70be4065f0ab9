package transform

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vetfin/vetplan/internal/domain"
)

// TemplateRegistry holds named what-if templates, keyed case-insensitively
type TemplateRegistry struct {
	templates map[string]Template
}

// Template is a named chain of transforms applied to a base scenario.
// Templates without a Category are listed under combinations.
type Template struct {
	Name        string
	Description string
	Category    string
	Transforms  []ScenarioTransform
}

const (
	CategoryTiming        = "Retirement Timing"
	CategoryInvestment    = "Investment Mix"
	CategoryMarket        = "Market Outlook"
	CategoryContributions = "Contributions & Income"
	CategoryCombination   = "Combination Strategies"
)

var templateCategories = []string{
	CategoryTiming,
	CategoryInvestment,
	CategoryMarket,
	CategoryContributions,
	CategoryCombination,
}

func NewTemplateRegistry() *TemplateRegistry {
	return &TemplateRegistry{templates: make(map[string]Template)}
}

// Register adds t, replacing any template with the same name
func (tr *TemplateRegistry) Register(t Template) {
	if t.Category == "" {
		t.Category = CategoryCombination
	}
	tr.templates[strings.ToLower(t.Name)] = t
}

func (tr *TemplateRegistry) Get(name string) (Template, bool) {
	t, ok := tr.templates[strings.ToLower(strings.TrimSpace(name))]
	return t, ok
}

// List returns the registered names in sorted order
func (tr *TemplateRegistry) List() []string {
	names := make([]string, 0, len(tr.templates))
	for name := range tr.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func steps(ts ...ScenarioTransform) []ScenarioTransform { return ts }

// builtInTemplates are the what-ifs offered by compare --with and the simulator
var builtInTemplates = []Template{
	{"postpone_1yr", "Postpone retirement by 1 year", CategoryTiming, steps(&PostponeRetirement{Years: 1})},
	{"postpone_3yr", "Postpone retirement by 3 years", CategoryTiming, steps(&PostponeRetirement{Years: 3})},
	{"retire_early_2yr", "Retire 2 years earlier", CategoryTiming, steps(&RetireEarlier{Years: 2})},

	{"conservative", "Conservative portfolio (30% stocks, 5% expected return)", CategoryInvestment, steps(&SetRiskTolerance{Tolerance: 20})},
	{"moderate", "Moderate portfolio (60% stocks, 7% expected return)", CategoryInvestment, steps(&SetRiskTolerance{Tolerance: 50})},
	{"aggressive", "Aggressive portfolio (80% stocks, 9% expected return)", CategoryInvestment, steps(&SetRiskTolerance{Tolerance: 80})},

	{"strong_market", "Strong market (returns x1.3)", CategoryMarket, steps(&SetMarketScenario{Market: domain.MarketStrong})},
	{"weak_market", "Below-average market (returns x0.7)", CategoryMarket, steps(&SetMarketScenario{Market: domain.MarketBelowAverage})},

	{"contribute_more_250", "Contribute $250 more per month", CategoryContributions, steps(&AdjustContribution{Delta: 250})},
	{"start_pension", "Start receiving the pension now", CategoryContributions, steps(&StartGuaranteedIncome{Pension: true})},

	{"work_longer_save_more", "Postpone retirement 2 years + contribute $250 more per month", CategoryCombination,
		steps(&PostponeRetirement{Years: 2}, &AdjustContribution{Delta: 250})},
	{"stress_test", "Conservative portfolio in a below-average market", CategoryCombination,
		steps(&SetRiskTolerance{Tolerance: 20}, &SetMarketScenario{Market: domain.MarketBelowAverage})},
}

// CreateBuiltInTemplates returns a registry holding the built-in templates
func CreateBuiltInTemplates() *TemplateRegistry {
	registry := NewTemplateRegistry()
	for _, t := range builtInTemplates {
		registry.Register(t)
	}
	return registry
}

// ApplyTemplate applies a template to a base scenario
func ApplyTemplate(base *domain.Scenario, template Template) (*domain.Scenario, error) {
	if len(template.Transforms) == 0 {
		if base == nil {
			return nil, fmt.Errorf("base scenario cannot be nil")
		}
		return base.DeepCopy(), nil
	}
	return ApplyTransforms(base, template.Transforms)
}

// ParseTemplateList parses a comma-separated list of template names
func ParseTemplateList(templateList string) []string {
	if templateList == "" {
		return nil
	}

	parts := strings.Split(templateList, ",")
	templates := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			templates = append(templates, trimmed)
		}
	}
	return templates
}

// GetTemplateHelp returns formatted help text for all templates
func GetTemplateHelp(registry *TemplateRegistry) string {
	if len(registry.templates) == 0 {
		return "No templates registered"
	}

	categories := make(map[string][]Template)
	for _, name := range registry.List() {
		t := registry.templates[name]
		categories[t.Category] = append(categories[t.Category], t)
	}

	var sb strings.Builder
	sb.WriteString("Available Templates:\n\n")

	for _, category := range templateCategories {
		templates := categories[category]
		if len(templates) == 0 {
			continue
		}

		fmt.Fprintf(&sb, "%s:\n", category)
		for _, t := range templates {
			fmt.Fprintf(&sb, "  %-24s %s\n", t.Name, t.Description)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("Usage:\n")
	sb.WriteString("  vetplan compare plan.yaml --with postpone_1yr,contribute_more_250\n")
	sb.WriteString("  vetplan compare plan.yaml --base Baseline --with conservative,aggressive\n")

	return sb.String()
}
