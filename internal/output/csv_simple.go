package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/vetfin/vetplan/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per plan).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(results *domain.PlanComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{
		"Scenario", "RetirementAge", "TotalNeeded", "ProjectedSavings", "Shortfall",
		"RequiredMonthlySavings", "EarliestRetirementAge", "SuccessProbability",
		"FinalSavings", "DepletionAge",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for i := range results.Plans {
		plan := &results.Plans[i]
		r := plan.Results

		var final float64
		if last, ok := plan.FinalPoint(); ok {
			final = last.Savings
		}
		depletion := ""
		if age, depleted := plan.SavingsDepletedAge(); depleted {
			depletion = strconv.Itoa(age)
		}

		row := []string{
			plan.Name,
			strconv.Itoa(plan.Inputs.RetirementAge),
			Money(r.TotalNeeded).StringFixed(2),
			Money(r.ProjectedSavings).StringFixed(2),
			Money(r.Shortfall).StringFixed(2),
			Money(r.RequiredMonthlySavings).StringFixed(2),
			strconv.Itoa(r.EarliestRetirementAge),
			Money(r.SuccessProbability).StringFixed(1),
			Money(final).StringFixed(2),
			depletion,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
