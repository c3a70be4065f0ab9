package output

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"

	"github.com/vetfin/vetplan/internal/domain"
)

//go:embed templates/report.html.tmpl
var reportTemplateText string

var reportTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"dollars":    FormatDollars,
	"score":      func(v float64) string { return FormatPercentage(Money(v).Round(1)) },
	"milestones": func(p domain.RetirementPlan) []domain.ProjectionPoint { return ProjectionMilestones(&p) },
	"depleted": func(p domain.RetirementPlan) int {
		age, ok := p.SavingsDepletedAge()
		if !ok {
			return 0
		}
		return age
	},
}).Parse(reportTemplateText))

// htmlReport is the value the report template is executed against
type htmlReport struct {
	*domain.PlanComparison
	Recommendation Recommendation
	Assumptions    []string
}

// HTMLFormatter renders a self-contained page with one section per plan
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

func (h HTMLFormatter) Format(results *domain.PlanComparison) ([]byte, error) {
	report := htmlReport{
		PlanComparison: results,
		Recommendation: AnalyzeScenarios(results),
		Assumptions:    DefaultAssumptions,
	}
	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, report); err != nil {
		return nil, fmt.Errorf("render html report: %w", err)
	}
	return buf.Bytes(), nil
}
