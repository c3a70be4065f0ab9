package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/huh"
	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/vetfin/vetplan/internal/compare"
	"github.com/vetfin/vetplan/internal/domain"
)

const (
	examplePlan     = "testdata/example_plan.yaml"
	sideCalculators = "testdata/side_calculators.yaml"
)

// run executes the CLI with a private settings file and returns everything it
// printed
func run(t *testing.T, settingsPath string, args ...string) (string, error) {
	t.Helper()
	if settingsPath == "" {
		settingsPath = filepath.Join(t.TempDir(), "config.toml")
	}
	root := newRootCmd()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(append([]string{"--settings", settingsPath}, args...))
	err := root.ExecuteContext(t.Context())
	return buf.String(), err
}

func absPlan(t *testing.T) string {
	t.Helper()
	p, err := filepath.Abs(examplePlan)
	require.NoError(t, err)
	return p
}

func TestRootCommand(t *testing.T) {
	root := newRootCmd()
	assert.Equal(t, "vetplan", root.Use)
	assert.NotEmpty(t, root.Short)
	assert.NotEmpty(t, root.Long)

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"calculate", "validate", "project", "compare", "planner", "benefits", "settings", "version"} {
		assert.Contains(t, names, want)
	}
}

func TestRootCommand_Help(t *testing.T) {
	out, err := run(t, "", "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "calculate")
	assert.Contains(t, out, "--debug")
}

func TestCalculate_Console(t *testing.T) {
	out, err := run(t, "", "calculate", examplePlan)
	require.NoError(t, err)
	assert.Contains(t, out, "VETERAN RETIREMENT PLAN ANALYSIS")
	assert.Contains(t, out, "Profile: Example Veteran")
	assert.Contains(t, out, "Baseline")
	assert.Contains(t, out, "Aggressive Saver")
	assert.Contains(t, out, "Recommended:")
}

func TestCalculate_ScenarioFilter(t *testing.T) {
	out, err := run(t, "", "calculate", examplePlan, "--scenario", "Early", "--format", "csv")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "Scenario,"))
	assert.True(t, strings.HasPrefix(lines[1], "Early,"))

	_, err = run(t, "", "calculate", examplePlan, "--scenario", "Missing")
	assert.ErrorContains(t, err, "scenario Missing not found")
}

func TestCalculate_JSONWithSimulation(t *testing.T) {
	out, err := run(t, "", "calculate", examplePlan, "--format", "json", "--simulate", "--paths", "200", "--seed", "7")
	require.NoError(t, err)

	var results domain.PlanComparison
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results.Plans, 3)
	for _, plan := range results.Plans {
		require.NotNil(t, plan.Simulation, plan.Name)
		assert.Equal(t, 200, plan.Simulation.Paths)
	}
}

func TestCalculate_Formats(t *testing.T) {
	t.Run("unknown format", func(t *testing.T) {
		_, err := run(t, "", "calculate", examplePlan, "--format", "pdf")
		assert.ErrorContains(t, err, `unknown format "pdf"`)
	})

	t.Run("list formats needs no plan", func(t *testing.T) {
		out, err := run(t, "", "calculate", "--list-formats")
		require.NoError(t, err)
		assert.Contains(t, out, "detailed-csv")
		assert.Contains(t, out, "Aliases:")
	})

	t.Run("plan required otherwise", func(t *testing.T) {
		_, err := run(t, "", "calculate")
		assert.Error(t, err)
	})

	t.Run("settings choose the default format", func(t *testing.T) {
		settings := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(settings, []byte("[output]\nformat = \"yaml\"\n"), 0o644))

		out, err := run(t, settings, "calculate", examplePlan)
		require.NoError(t, err)
		assert.Contains(t, out, "profile: Example Veteran")
	})
}

func TestCalculate_Save(t *testing.T) {
	plan := absPlan(t)
	dir := t.TempDir()
	t.Chdir(dir)

	out, err := run(t, "", "calculate", plan, "--format", "json", "--save")
	require.NoError(t, err)
	assert.Contains(t, out, "Report saved to retirement_report_")

	matches, err := filepath.Glob(filepath.Join(dir, "retirement_report_*.json"))
	require.NoError(t, err)
	require.Len(t, matches, 1)
}

func TestCalculate_InvalidPlan(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`scenarios:
  - name: Bad
    retirement:
      current_age: 60
      retirement_age: 55
      monthly_expenses: 3000
`), 0o644))

	_, err := run(t, "", "calculate", path)
	assert.ErrorContains(t, err, "validation failed")
}

func TestValidate(t *testing.T) {
	out, err := run(t, "", "validate", examplePlan)
	require.NoError(t, err)
	assert.Contains(t, out, "is valid")
	assert.Contains(t, out, "Scenarios: 3")
	assert.Contains(t, out, "  - Early (retire at 57)")
	assert.Contains(t, out, "Planner inputs: present")
	assert.Contains(t, out, "Service profile: present")
}

func TestProject(t *testing.T) {
	t.Run("milestones", func(t *testing.T) {
		out, err := run(t, "", "project", examplePlan)
		require.NoError(t, err)
		assert.Contains(t, out, "Baseline: moderate allocation, 7.0% expected return")
	})

	t.Run("every year as csv", func(t *testing.T) {
		out, err := run(t, "", "project", examplePlan, "--scenario", "Early", "--format", "csv")
		require.NoError(t, err)
		assert.Contains(t, out, "Early")
		assert.NotContains(t, out, "Baseline")
	})

	t.Run("unknown scenario", func(t *testing.T) {
		_, err := run(t, "", "project", examplePlan, "--scenario", "Nope")
		assert.ErrorContains(t, err, "scenario Nope not found")
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := run(t, "", "project", examplePlan, "--format", "xml")
		assert.ErrorContains(t, err, "use table or csv")
	})
}

func TestCompare_Templates(t *testing.T) {
	out, err := run(t, "", "compare", examplePlan, "--base", "Baseline", "--with", "postpone_1yr, aggressive")
	require.NoError(t, err)
	assert.Contains(t, out, "RETIREMENT SCENARIO COMPARISON")
	assert.Contains(t, out, "Base Scenario: Baseline")
	assert.Contains(t, out, "Baseline_postpone_1yr")
	assert.Contains(t, out, "Baseline_aggressive")
}

func TestCompare_Scenarios(t *testing.T) {
	out, err := run(t, "", "compare", examplePlan, "--scenarios", "Early,Aggressive Saver", "--format", "json")
	require.NoError(t, err)

	var set compare.ComparisonSet
	require.NoError(t, json.Unmarshal([]byte(out), &set))
	assert.Equal(t, "Baseline", set.BaseScenarioName)
	require.Len(t, set.AlternativeResults, 2)
	assert.Equal(t, "Early", set.AlternativeResults[0].ScenarioName)
	assert.Equal(t, examplePlan, set.ConfigPath)
}

func TestCompare_ReportFormat(t *testing.T) {
	out, err := run(t, "", "compare", examplePlan, "--with", "stress_test", "--format", "csv")
	require.NoError(t, err)
	assert.Contains(t, out, "Baseline_stress_test")

	out, err = run(t, "", "compare", examplePlan, "--with", "stress_test", "--format", "console-lite")
	require.NoError(t, err)
	assert.Contains(t, out, "Baseline_stress_test")
}

func TestCompare_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"nothing to compare", []string{"compare", examplePlan}, "--with, --transform or --scenarios is required"},
		{"both sources", []string{"compare", examplePlan, "--with", "aggressive", "--scenarios", "Early"}, "cannot be combined"},
		{"bad transform", []string{"compare", examplePlan, "--transform", "postpone_retirement"}, `--transform "postpone_retirement"`},
		{"unknown template", []string{"compare", examplePlan, "--with", "retire_tomorrow"}, "template retire_tomorrow not found"},
		{"unknown base", []string{"compare", examplePlan, "--base", "Nope", "--with", "aggressive"}, "base scenario Nope not found"},
		{"unknown format", []string{"compare", examplePlan, "--with", "aggressive", "--format", "pdf"}, `unknown format "pdf"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, "", tt.args...)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestCompare_Transforms(t *testing.T) {
	out, err := run(t, "", "compare", examplePlan,
		"--transform", "postpone_retirement:years=2",
		"--transform", "set_contribution_percent:percent=12,income=7000",
		"--format", "json")
	require.NoError(t, err)

	var set compare.ComparisonSet
	require.NoError(t, json.Unmarshal([]byte(out), &set))
	require.Len(t, set.AlternativeResults, 1)
	alt := set.AlternativeResults[0]
	assert.Equal(t, "Baseline_custom", alt.ScenarioName)
	assert.Equal(t, 64, alt.RetirementAge)
	assert.Contains(t, alt.Description, " + ")
}

func TestCompare_ListTemplates(t *testing.T) {
	out, err := run(t, "", "compare", "--list-templates")
	require.NoError(t, err)
	assert.Contains(t, out, "Available Templates:")
	assert.Contains(t, out, "postpone_1yr")
	assert.Contains(t, out, "stress_test")
	assert.Contains(t, out, "postpone_retirement")
}

func TestPlanner(t *testing.T) {
	t.Run("flags", func(t *testing.T) {
		out, err := run(t, "", "planner",
			"--income", "$6,500", "--pension", "2100", "--disability", "1200",
			"--expenses", "4800", "--savings", "85000")
		require.NoError(t, err)
		assert.Contains(t, out, "FINANCIAL PLANNER")
		assert.Contains(t, out, "Monthly Income:         $9,800")
		assert.Contains(t, out, "Monthly Surplus:        $5,000")
	})

	t.Run("plan file with override", func(t *testing.T) {
		out, err := run(t, "", "planner", "--plan", examplePlan, "--income", "7000", "--format", "json")
		require.NoError(t, err)

		var plan domain.FinancialPlan
		require.NoError(t, json.Unmarshal([]byte(out), &plan))
		assert.Equal(t, 7000.0, plan.Inputs.MonthlyIncome)
		assert.Equal(t, 4800.0, plan.Inputs.MonthlyExpenses)
		assert.Equal(t, 85000.0, plan.Inputs.CurrentSavings)
	})

	t.Run("bad amount", func(t *testing.T) {
		_, err := run(t, "", "planner", "--income", "lots")
		assert.ErrorContains(t, err, "income: must be a number")
	})

	t.Run("negative amount", func(t *testing.T) {
		_, err := run(t, "", "planner", "--expenses", "-5")
		assert.Error(t, err)
	})
}

func TestPlanner_Interactive(t *testing.T) {
	orig := runForm
	t.Cleanup(func() { runForm = orig })

	t.Run("answers keep prefilled values", func(t *testing.T) {
		var asked *huh.Form
		runForm = func(f *huh.Form) error {
			asked = f
			return nil
		}
		out, err := run(t, "", "planner", "--plan", examplePlan, "--interactive")
		require.NoError(t, err)
		assert.NotNil(t, asked)
		assert.Contains(t, out, "Monthly Expenses:       $4,800")
	})

	t.Run("aborted form", func(t *testing.T) {
		runForm = func(*huh.Form) error { return huh.ErrUserAborted }
		_, err := run(t, "", "planner", "--interactive")
		require.Error(t, err)
		assert.True(t, errors.Is(err, huh.ErrUserAborted))
	})

	t.Run("empty answers are rejected", func(t *testing.T) {
		runForm = func(*huh.Form) error { return nil }
		_, err := run(t, "", "planner", "--interactive")
		assert.ErrorContains(t, err, "income: is required")
	})
}

func TestBenefits(t *testing.T) {
	t.Run("flags", func(t *testing.T) {
		out, err := run(t, "", "benefits", "--years", "8", "--rank", "e-6", "--state", "Texas", "--rating", "70")
		require.NoError(t, err)
		assert.Contains(t, out, "VETERAN BENEFITS ESTIMATE")
		assert.Contains(t, out, "Rank: E-6 | Years of Service: 8 | State: Texas | Disability Rating: 70%")
		assert.Contains(t, out, "$1529.95/month")
		assert.Contains(t, out, "Texas State Veterans Benefits")
	})

	t.Run("plan file as json", func(t *testing.T) {
		out, err := run(t, "", "benefits", "--plan", examplePlan, "--rating", "100", "--format", "json")
		require.NoError(t, err)

		var report domain.BenefitReport
		require.NoError(t, json.Unmarshal([]byte(out), &report))
		assert.Equal(t, 100, report.Profile.DisabilityRating)
		assert.Equal(t, "E-6", report.Profile.Rank)
		require.Len(t, report.Benefits, 4)
		require.NotNil(t, report.Benefits[2].Monthly)
		assert.Equal(t, "3332.06", report.Benefits[2].Monthly.StringFixed(2))
	})

	t.Run("missing rank", func(t *testing.T) {
		_, err := run(t, "", "benefits", "--years", "4", "--state", "Ohio")
		assert.ErrorContains(t, err, "rank")
	})
}

func TestSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vetplan", "config.toml")

	out, err := run(t, path, "settings", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Settings written to "+path)
	assert.FileExists(t, path)

	_, err = run(t, path, "settings", "init")
	assert.ErrorContains(t, err, "already exists")

	_, err = run(t, path, "settings", "init", "--force")
	require.NoError(t, err)

	out, err = run(t, path, "settings", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "# "+path)
	assert.Contains(t, out, `format = "console"`)
	assert.Contains(t, out, "paths = 1000")
}

func TestSettings_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[defaults]\nmarket = \"booming\"\n"), 0o644))

	_, err := run(t, path, "validate", examplePlan)
	assert.ErrorContains(t, err, "defaults.market")
}

func TestSettings_DefaultMarket(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[defaults]\nmarket = \"strong\"\n"), 0o644))

	out, err := run(t, path, "calculate", examplePlan, "--scenario", "Early", "--format", "json")
	require.NoError(t, err)

	var results domain.PlanComparison
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results.Plans, 1)
	assert.Equal(t, domain.MarketStrong, results.Plans[0].Inputs.Market)
}

func TestVersion(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "vetplan dev (commit none, built unknown)")
}

func TestNewLogger(t *testing.T) {
	logger, err := newLogger("warn", false)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))

	logger, err = newLogger("warn", true)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))

	_, err = newLogger("loud", false)
	assert.ErrorContains(t, err, "log level")
}

func TestPlanFileWithoutScenarios(t *testing.T) {
	out, err := run(t, "", "planner", "--plan", sideCalculators)
	require.NoError(t, err)
	assert.Contains(t, out, "Monthly Income:         $9,800")
	assert.Contains(t, out, "Monthly Surplus:        $5,000")

	out, err = run(t, "", "benefits", "--plan", sideCalculators)
	require.NoError(t, err)
	assert.Contains(t, out, "$1529.95/month")

	out, err = run(t, "", "validate", sideCalculators)
	require.NoError(t, err)
	assert.Contains(t, out, "Scenarios: 0")
	assert.Contains(t, out, "Planner inputs: present")

	_, err = run(t, "", "calculate", sideCalculators)
	assert.ErrorContains(t, err, "no scenarios provided")

	_, err = run(t, "", "project", sideCalculators)
	assert.ErrorContains(t, err, "has no scenarios")
}

func TestPlanFileWithMisspelledKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "typo.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`scenarios:
  - name: Typo
    retirement:
      current_age: 45
      retirement_age: 62
      monthly_expense: 6000
`), 0o644))

	_, err := run(t, "", "calculate", path)
	assert.ErrorContains(t, err, "field monthly_expense not found")
}
