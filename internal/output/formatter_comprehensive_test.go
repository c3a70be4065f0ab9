package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vetfin/vetplan/internal/calculation"
	"github.com/vetfin/vetplan/internal/domain"
	"gopkg.in/yaml.v3"
)

func buildTestComparison() *domain.PlanComparison {
	moderate := domain.RiskProfile{Name: "moderate", StockPercent: 60, BondPercent: 35, CashPercent: 5, ExpectedReturnPercent: 7}
	return &domain.PlanComparison{
		Profile:     "test",
		GeneratedAt: time.Date(2025, 1, 15, 9, 30, 0, 0, time.UTC),
		Plans: []domain.RetirementPlan{
			{
				Name: "A",
				Inputs: domain.RetirementInputs{
					CurrentAge: 60, RetirementAge: 62, MonthlyExpenses: 4000,
					MonthlyContribution: 500, CurrentSavings: 200000, RiskTolerance: 50,
					Market: domain.MarketAverage,
				},
				AnnualReturn: 0.07,
				RiskProfile:  moderate,
				Results: domain.RetirementResults{
					TotalNeeded: 1200000, ProjectedSavings: 240000, Shortfall: 960000,
					RequiredMonthlySavings: 1500, YearsToRetirement: 2,
					EarliestRetirementAge: 75, SuccessProbability: 6,
				},
				Projection: []domain.ProjectionPoint{
					{Age: 60, Savings: 220000, Total: 220000},
					{Age: 61, Savings: 241000, Total: 241000},
					{Age: 62, Savings: 200000, Total: 200000, Retired: true},
					{Age: 63, Savings: 0, Total: 0, Retired: true},
				},
			},
			{
				Name: "B",
				Inputs: domain.RetirementInputs{
					CurrentAge: 60, RetirementAge: 62, MonthlyExpenses: 4000,
					MonthlyContribution: 500, CurrentSavings: 200000, PensionMonthly: 1500,
					ReceivingPension: true, RiskTolerance: 50, Market: domain.MarketAverage,
				},
				AnnualReturn: 0.07,
				RiskProfile:  moderate,
				Results: domain.RetirementResults{
					TotalNeeded: 750000, ProjectedSavings: 760000, PensionLifetimeValue: 450000,
					YearsToRetirement: 2, EarliestRetirementAge: 60, SuccessProbability: 56.25,
				},
				Projection: []domain.ProjectionPoint{
					{Age: 60, Savings: 220000, CumulativePension: 18000, Total: 238000},
					{Age: 61, Savings: 241000, CumulativePension: 36000, Total: 277000},
					{Age: 62, Savings: 230000, CumulativePension: 54000, Total: 284000, Retired: true},
				},
			},
		},
	}
}

func TestFormatterFunc_Format(t *testing.T) {
	called := false
	var receivedResults *domain.PlanComparison

	formatter := FormatterFunc{
		ID: "test-formatter",
		F: func(results *domain.PlanComparison) ([]byte, error) {
			called = true
			receivedResults = results
			return []byte("test output"), nil
		},
	}

	testResults := buildTestComparison()
	output, err := formatter.Format(testResults)

	assert.NoError(t, err, "Should not error")
	assert.True(t, called, "Should call the function")
	assert.Equal(t, testResults, receivedResults, "Should pass the results")
	assert.Equal(t, []byte("test output"), output, "Should return the function output")
	assert.Equal(t, "test-formatter", formatter.Name(), "Should return the ID")
}

func TestWriteFormatted(t *testing.T) {
	t.Chdir(t.TempDir())

	formatter := FormatterFunc{
		ID: "test-formatter",
		F: func(results *domain.PlanComparison) ([]byte, error) {
			return []byte("test output content"), nil
		},
	}

	filename, err := WriteFormatted(formatter, buildTestComparison(), "txt")

	assert.NoError(t, err, "Should not error")
	assert.Contains(t, filename, "retirement_report_", "Should have correct prefix")
	assert.Equal(t, ".txt", filepath.Ext(filename), "Should have correct extension")

	content, err := os.ReadFile(filename)
	assert.NoError(t, err, "Should be able to read the file")
	assert.Equal(t, "test output content", string(content), "Should have correct content")
}

func TestWriteFormatted_FormatterError(t *testing.T) {
	formatter := FormatterFunc{
		ID: "error-formatter",
		F: func(results *domain.PlanComparison) ([]byte, error) {
			return nil, fmt.Errorf("formatter error")
		},
	}

	filename, err := WriteFormatted(formatter, buildTestComparison(), "txt")

	assert.Error(t, err, "Should error when formatter fails")
	assert.Empty(t, filename, "Should return empty filename on error")
	assert.Contains(t, err.Error(), "formatter error", "Should propagate formatter error")
}

func TestConsoleFormatter_Format_EmptyPlans(t *testing.T) {
	formatter := ConsoleFormatter{}
	assert.Equal(t, "console-lite", formatter.Name())

	output, err := formatter.Format(&domain.PlanComparison{Profile: "empty"})

	require.NoError(t, err)
	content := string(output)
	assert.Contains(t, content, "RETIREMENT PLAN SUMMARY", "Should have header")
	assert.Contains(t, content, "Profile: empty")
	assert.Contains(t, content, "No plans calculated")
	assert.NotContains(t, content, "Recommended")
}

func TestConsoleFormatter_Format_WithRecommendation(t *testing.T) {
	output, err := ConsoleFormatter{}.Format(buildTestComparison())

	require.NoError(t, err)
	content := string(output)
	assert.Contains(t, content, "A: retire at 62, success 6.00%, shortfall $960,000, earliest retirement 75")
	assert.Contains(t, content, "B: retire at 62, success 56.30%, shortfall $0, earliest retirement 60")
	assert.Contains(t, content, "Recommended: B (fully funds retirement expenses)")
}

func TestConsoleVerboseFormatter_Format(t *testing.T) {
	formatter := ConsoleVerboseFormatter{}
	assert.Equal(t, "console", formatter.Name())

	output, err := formatter.Format(buildTestComparison())

	require.NoError(t, err)
	content := string(output)
	for _, want := range []string{
		"VETERAN RETIREMENT PLAN ANALYSIS",
		"Profile: test",
		"Generated: 2025-01-15 09:30",
		"KEY ASSUMPTIONS:",
		"SCENARIO 1: A",
		"SCENARIO 2: B",
		"62 (2 years away)",
		"$1,500/month (receiving now)",
		"moderate (60% stocks / 35% bonds / 5% cash)",
		"Average (7.00% expected return)",
		"$1,200,000",
		"$960,000",
		"Savings depleted at age 63",
		"62 *",
		"Recommended: B (fully funds retirement expenses)",
	} {
		assert.Contains(t, content, want)
	}
	assert.NotContains(t, content, "SIMULATION:")
}

func TestConsoleVerboseFormatter_Format_Simulation(t *testing.T) {
	results := buildTestComparison()
	results.Plans[0].Simulation = &domain.SimulationSummary{
		Paths: 500, Seed: 7, Volatility: 0.12, SuccessRate: 42.5,
		MedianEndBalance: 10000, P10EndBalance: 0, P90EndBalance: 250000,
	}

	output, err := ConsoleVerboseFormatter{}.Format(results)

	require.NoError(t, err)
	content := string(output)
	assert.Contains(t, content, "SIMULATION:")
	assert.Contains(t, content, "500 (seed 7, volatility 12.00%)")
	assert.Contains(t, content, "42.50%")
	assert.Contains(t, content, "$250,000")
}

func TestConsoleVerboseFormatter_Format_EmptyPlans(t *testing.T) {
	output, err := ConsoleVerboseFormatter{}.Format(&domain.PlanComparison{})

	require.NoError(t, err)
	assert.Contains(t, string(output), "No plans calculated")
}

func TestCSVSummarizer_Format(t *testing.T) {
	formatter := CSVSummarizer{}
	assert.Equal(t, "csv", formatter.Name())

	output, err := formatter.Format(buildTestComparison())
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(output))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "Scenario", records[0][0], "Should have CSV header")
	assert.Equal(t, []string{"A", "62", "1200000.00", "240000.00", "960000.00", "1500.00", "75", "6.0", "0.00", "63"}, records[1])
	assert.Equal(t, "B", records[2][0])
	assert.Equal(t, "56.3", records[2][7])
	assert.Equal(t, "", records[2][9], "Should leave depletion age empty when savings last")
}

func TestDetailedCSVFormatter_Format(t *testing.T) {
	formatter := DetailedCSVFormatter{}
	assert.Equal(t, "detailed-csv", formatter.Name())

	output, err := formatter.Format(buildTestComparison())
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(output))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 8)

	assert.Equal(t, []string{"Scenario", "Age", "Savings", "CumulativePension", "CumulativeDisability", "Total", "Retired"}, records[0])
	assert.Equal(t, []string{"A", "60", "220000", "0", "0", "220000", "false"}, records[1])
	assert.Equal(t, []string{"B", "62", "230000", "54000", "0", "284000", "true"}, records[7])
}

func TestJSONFormatter_Format(t *testing.T) {
	formatter := JSONFormatter{}
	assert.Equal(t, "json", formatter.Name())

	output, err := formatter.Format(buildTestComparison())
	require.NoError(t, err)

	content := string(output)
	assert.Contains(t, content, "\"plans\"", "Should have plans array")
	assert.Contains(t, content, "\"successProbability\"")

	var decoded domain.PlanComparison
	require.NoError(t, json.Unmarshal(output, &decoded))
	require.Len(t, decoded.Plans, 2)
	assert.Equal(t, "A", decoded.Plans[0].Name)
	assert.Equal(t, 960000.0, decoded.Plans[0].Results.Shortfall)
}

func TestYAMLFormatter_Format(t *testing.T) {
	formatter := YAMLFormatter{}
	assert.Equal(t, "yaml", formatter.Name())

	output, err := formatter.Format(buildTestComparison())
	require.NoError(t, err)

	var decoded domain.PlanComparison
	require.NoError(t, yaml.Unmarshal(output, &decoded))
	require.Len(t, decoded.Plans, 2)
	assert.Equal(t, "B", decoded.Plans[1].Name)
	assert.True(t, decoded.Plans[1].Inputs.ReceivingPension)
}

func TestHTMLFormatter_Format(t *testing.T) {
	formatter := HTMLFormatter{}
	assert.Equal(t, "html", formatter.Name())

	output, err := formatter.Format(buildTestComparison())
	require.NoError(t, err)

	content := string(output)
	assert.Contains(t, content, "<!DOCTYPE html>", "Should have HTML structure")
	assert.Contains(t, content, "<title>Veteran Retirement Plan Analysis</title>")
	assert.Contains(t, content, "<h2>A</h2>")
	assert.Contains(t, content, "$960,000")
	assert.Contains(t, content, "Recommended: B")
	assert.Contains(t, content, "Savings Depleted</td><td class=\"shortfall\">age 63")
	assert.NotContains(t, content, "Simulated Success")

	withSim := buildTestComparison()
	withSim.Plans[1].Simulation = &domain.SimulationSummary{Paths: 500, SuccessRate: 81.24}
	output, err = formatter.Format(withSim)
	require.NoError(t, err)
	assert.Contains(t, string(output), "Simulated Success (500 paths)</td><td>81.20%")
}

func TestAvailableFormatterNames(t *testing.T) {
	assert.Equal(t,
		[]string{"console-lite", "console", "csv", "detailed-csv", "json", "yaml", "html"},
		AvailableFormatterNames())
}

func TestAvailableFormatAliases(t *testing.T) {
	aliases := AvailableFormatAliases()

	assert.Contains(t, aliases, "verbose")
	assert.Contains(t, aliases, "console-verbose")
	assert.Contains(t, aliases, "yml")
	assert.IsNonDecreasing(t, aliases)
}

func TestGetFormatterByName(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"console-lite", "console-lite"},
		{"console", "console"},
		{"VERBOSE", "console"},
		{" yml ", "yaml"},
		{"projection-csv", "detailed-csv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formatter := GetFormatterByName(tt.name)
			require.NotNil(t, formatter)
			assert.Equal(t, tt.expected, formatter.Name())
		})
	}

	assert.Nil(t, GetFormatterByName("non-existent"), "Should return nil formatter for non-existent name")
}

func TestFileExtension(t *testing.T) {
	assert.Equal(t, "csv", FileExtension(DetailedCSVFormatter{}))
	assert.Equal(t, "json", FileExtension(JSONFormatter{}))
	assert.Equal(t, "html", FileExtension(HTMLFormatter{}))
	assert.Equal(t, "txt", FileExtension(ConsoleVerboseFormatter{}))
}

func TestAnalyzeScenarios(t *testing.T) {
	assert.Equal(t, Recommendation{}, AnalyzeScenarios(&domain.PlanComparison{}))

	results := buildTestComparison()
	results.Plans[1].Results.SuccessProbability = 6
	results.Plans[1].Results.Shortfall = 1000

	rec := AnalyzeScenarios(results)

	assert.Equal(t, "B", rec.ScenarioName, "Ties go to the smaller shortfall")
	assert.Equal(t, "highest success score with a $1000.00 shortfall", rec.Reason)
}

func TestProjectionMilestones(t *testing.T) {
	plan, err := calculation.NewCalculationEngine().Calculate(t.Context(), "milestones", domain.RetirementInputs{
		CurrentAge: 35, RetirementAge: 65, MonthlyExpenses: 3000, MonthlyContribution: 500,
		CurrentSavings: 50000, RiskTolerance: 50, Market: domain.MarketAverage,
	})
	require.NoError(t, err)

	rows := ProjectionMilestones(plan)

	require.Len(t, rows, 13)
	assert.Equal(t, 35, rows[0].Age)
	assert.Equal(t, 65, rows[6].Age)
	assert.Equal(t, 95, rows[12].Age)
}

func TestFormatDollars(t *testing.T) {
	tests := []struct {
		amount   float64
		expected string
	}{
		{0, "$0"},
		{100, "$100"},
		{999.5, "$1,000"},
		{1234567.89, "$1,234,568"},
		{-1500, "-$1,500"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatDollars(tt.amount), "amount %v", tt.amount)
	}
}

func TestSaveConfiguration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")
	config := &domain.Configuration{
		Profile: "saved",
		Scenarios: []domain.Scenario{{Name: "Baseline", Retirement: domain.RetirementInputs{
			CurrentAge: 40, RetirementAge: 60, Market: domain.MarketStrong,
		}}},
	}

	require.NoError(t, SaveConfiguration(config, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var loaded domain.Configuration
	require.NoError(t, yaml.Unmarshal(data, &loaded))
	assert.Equal(t, "saved", loaded.Profile)
	assert.Equal(t, domain.MarketStrong, loaded.Scenarios[0].Retirement.Market)
}

func TestPlannerConsoleFormatter(t *testing.T) {
	plan := calculation.BuildFinancialPlan(domain.FinancialInputs{
		MonthlyIncome: 5000, PensionMonthly: 1000, DisabilityMonthly: 500,
		MonthlyExpenses: 4000, CurrentSavings: 10000,
	})

	content := PlannerConsoleFormatter{}.FormatFinancialPlan(plan)

	assert.Contains(t, content, "Monthly Income:         $6,500")
	assert.Contains(t, content, "Monthly Surplus:        $2,500")
	assert.Contains(t, content, "Savings Target:         $750,000")
	assert.Contains(t, content, "Years to Target:        24.7")
	assert.Contains(t, content, "Housing:")
	assert.Contains(t, content, "Year 4   $130,000")
}

func TestPlannerConsoleFormatter_NoSurplus(t *testing.T) {
	plan := calculation.BuildFinancialPlan(domain.FinancialInputs{MonthlyIncome: 2000, MonthlyExpenses: 3000})

	content := PlannerConsoleFormatter{}.FormatFinancialPlan(plan)

	assert.Contains(t, content, "not reachable without a monthly surplus")
}

func TestBenefitsConsoleFormatter(t *testing.T) {
	report, err := calculation.EstimateBenefits(domain.ServiceProfile{
		YearsOfService: 4, Rank: "e-6", State: "Texas", DisabilityRating: 70,
	})
	require.NoError(t, err)

	content := BenefitsConsoleFormatter{}.FormatBenefitReport(report)

	assert.Contains(t, content, "Rank: E-6 | Years of Service: 4 | State: Texas | Disability Rating: 70%")
	assert.Contains(t, content, "Estimated:   $1529.95/month")
	assert.Contains(t, content, "Coverage:    100%")
	assert.Contains(t, content, "Texas State Veterans Benefits")
}
