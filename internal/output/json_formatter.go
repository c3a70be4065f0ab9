package output

import (
	json "github.com/goccy/go-json"
	"github.com/vetfin/vetplan/internal/domain"
)

// JSONFormatter emits the full plan comparison as indented JSON
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(results *domain.PlanComparison) ([]byte, error) {
	return json.MarshalIndent(results, "", "  ")
}
