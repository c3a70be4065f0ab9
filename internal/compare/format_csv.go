package compare

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// CSVFormatter writes one row per scenario, base first
type CSVFormatter struct{}

type csvColumn struct {
	header string
	value  func(*ComparisonResult) string
}

func fixed(places int32, field func(*ComparisonResult) decimal.Decimal) func(*ComparisonResult) string {
	return func(r *ComparisonResult) string { return field(r).StringFixed(places) }
}

func whole(field func(*ComparisonResult) int) func(*ComparisonResult) string {
	return func(r *ComparisonResult) string { return strconv.Itoa(field(r)) }
}

// csvColumns follow the Type column, which is filled per row
var csvColumns = []csvColumn{
	{"Retirement Age", whole(func(r *ComparisonResult) int { return r.RetirementAge })},
	{"Projected Savings", fixed(2, func(r *ComparisonResult) decimal.Decimal { return r.ProjectedSavings })},
	{"Total Needed", fixed(2, func(r *ComparisonResult) decimal.Decimal { return r.TotalNeeded })},
	{"Shortfall", fixed(2, func(r *ComparisonResult) decimal.Decimal { return r.Shortfall })},
	{"Required Monthly Savings", fixed(2, func(r *ComparisonResult) decimal.Decimal { return r.RequiredMonthlySavings })},
	{"Success Score", fixed(1, func(r *ComparisonResult) decimal.Decimal { return r.SuccessProbability })},
	{"Earliest Retirement Age", whole(func(r *ComparisonResult) int { return r.EarliestRetirementAge })},
	{"Final Savings", fixed(2, func(r *ComparisonResult) decimal.Decimal { return r.FinalSavings })},
	{"Savings Diff from Base", fixed(2, func(r *ComparisonResult) decimal.Decimal { return r.SavingsDiffFromBase })},
	{"Savings % Change", fixed(2, func(r *ComparisonResult) decimal.Decimal { return r.SavingsPctFromBase })},
	{"Shortfall Diff from Base", fixed(2, func(r *ComparisonResult) decimal.Decimal { return r.ShortfallDiffFromBase })},
	{"Success Diff from Base", fixed(1, func(r *ComparisonResult) decimal.Decimal { return r.SuccessDiffFromBase })},
	{"Earliest Age Diff", whole(func(r *ComparisonResult) int { return r.EarliestAgeDiff })},
	{"Risk Profile", func(r *ComparisonResult) string { return r.RiskProfile }},
	{"Market", func(r *ComparisonResult) string { return r.Market }},
}

func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	header := []string{"Scenario", "Type"}
	for _, c := range csvColumns {
		header = append(header, c.header)
	}
	records := [][]string{header}
	if compSet.BaseResult != nil {
		records = append(records, cf.record(compSet.BaseResult, "base"))
	}
	for i := range compSet.AlternativeResults {
		records = append(records, cf.record(&compSet.AlternativeResults[i], "alternative"))
	}

	var sb strings.Builder
	if err := csv.NewWriter(&sb).WriteAll(records); err != nil {
		return "", fmt.Errorf("write comparison csv: %w", err)
	}
	return sb.String(), nil
}

func (cf *CSVFormatter) record(result *ComparisonResult, kind string) []string {
	row := make([]string, 0, len(csvColumns)+2)
	row = append(row, result.ScenarioName, kind)
	for _, c := range csvColumns {
		row = append(row, c.value(result))
	}
	return row
}
