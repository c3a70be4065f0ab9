package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/vetfin/vetplan/internal/domain"
)

// DetailedCSVFormatter writes every projection row of every plan
type DetailedCSVFormatter struct{}

func (d DetailedCSVFormatter) Name() string { return "detailed-csv" }

func (d DetailedCSVFormatter) Format(results *domain.PlanComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Age", "Savings", "CumulativePension", "CumulativeDisability", "Total", "Retired"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, plan := range results.Plans {
		for _, pt := range plan.Projection {
			row := []string{
				plan.Name,
				strconv.Itoa(pt.Age),
				Money(pt.Savings).StringFixed(0),
				Money(pt.CumulativePension).StringFixed(0),
				Money(pt.CumulativeDisability).StringFixed(0),
				Money(pt.Total).StringFixed(0),
				strconv.FormatBool(pt.Retired),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
