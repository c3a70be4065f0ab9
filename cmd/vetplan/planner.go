package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/vetfin/vetplan/internal/calculation"
	"github.com/vetfin/vetplan/internal/config"
	"github.com/vetfin/vetplan/internal/domain"
	"github.com/vetfin/vetplan/internal/output"
)

// plannerField is one of the budget planner's five monthly figures
type plannerField struct {
	flag     string
	question string
	usage    string
	target   func(*domain.FinancialInputs) *float64
}

var plannerFields = []plannerField{
	{"income", "What is your current monthly income?", "Monthly income",
		func(in *domain.FinancialInputs) *float64 { return &in.MonthlyIncome }},
	{"pension", "What is your expected monthly pension amount?", "Expected monthly pension",
		func(in *domain.FinancialInputs) *float64 { return &in.PensionMonthly }},
	{"disability", "What is your monthly disability payment amount?", "Monthly disability payment",
		func(in *domain.FinancialInputs) *float64 { return &in.DisabilityMonthly }},
	{"expenses", "What are your total monthly expenses?", "Total monthly expenses",
		func(in *domain.FinancialInputs) *float64 { return &in.MonthlyExpenses }},
	{"savings", "How much do you currently have in savings?", "Current savings",
		func(in *domain.FinancialInputs) *float64 { return &in.CurrentSavings }},
}

// runForm is replaced in tests
var runForm = func(f *huh.Form) error { return f.Run() }

func (c *cli) plannerCmd() *cobra.Command {
	var (
		planFile    string
		interactive bool
		format      string
		values      = make([]string, len(plannerFields))
	)

	cmd := &cobra.Command{
		Use:   "planner",
		Short: "Summarize monthly cash flow and savings toward retirement",
		Long: `Build a budget summary from monthly income, guaranteed income, expenses
and current savings. Figures come from a plan file's planner section, from
flags, or from an interactive form; flags override the plan file.

Examples:
  vetplan planner --income 6500 --pension 2100 --disability 1700 --expenses 4800 --savings 85000
  vetplan planner --plan plan.yaml --format json
  vetplan planner --interactive`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var in domain.FinancialInputs
			if planFile != "" {
				cfg, err := c.loadPlan(planFile)
				if err != nil {
					return err
				}
				if cfg.Planner == nil {
					return fmt.Errorf("%s has no planner section", planFile)
				}
				in = *cfg.Planner
			}

			for i, field := range plannerFields {
				if !cmd.Flags().Changed(field.flag) {
					continue
				}
				v, err := config.ParseAmount(field.flag, values[i])
				if err != nil {
					return err
				}
				*field.target(&in) = v
			}

			if interactive {
				if err := askFinancials(&in); err != nil {
					return err
				}
			}

			if err := config.ValidateFinancialInputs(in); err != nil {
				return err
			}
			plan := calculation.BuildFinancialPlan(in)

			out := cmd.OutOrStdout()
			switch format {
			case "console":
				fmt.Fprintln(out, output.PlannerConsoleFormatter{}.FormatFinancialPlan(plan))
			case "json":
				data, err := json.MarshalIndent(plan, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(data))
			default:
				return fmt.Errorf("unknown format %q (use console or json)", format)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&planFile, "plan", "", "Plan file with a planner section")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Answer the planner questions in a form")
	cmd.Flags().StringVarP(&format, "format", "f", "console", "Output format (console, json)")
	for i, field := range plannerFields {
		cmd.Flags().StringVar(&values[i], field.flag, "", field.usage)
	}
	return cmd
}

// askFinancials asks the planner questions, prefilled with the known figures
func askFinancials(in *domain.FinancialInputs) error {
	answers := make([]string, len(plannerFields))
	inputs := make([]huh.Field, 0, len(plannerFields))
	for i, field := range plannerFields {
		if v := *field.target(in); v != 0 {
			answers[i] = strconv.FormatFloat(v, 'f', -1, 64)
		}
		name := field.flag
		inputs = append(inputs, huh.NewInput().
			Title(field.question).
			Placeholder("0").
			Value(&answers[i]).
			Validate(func(s string) error {
				_, err := config.ParseAmount(name, s)
				return err
			}))
	}

	form := huh.NewForm(huh.NewGroup(inputs...))
	if err := runForm(form); err != nil {
		return fmt.Errorf("planner form: %w", err)
	}

	for i, field := range plannerFields {
		v, err := config.ParseAmount(field.flag, answers[i])
		if err != nil {
			return err
		}
		*field.target(in) = v
	}
	return nil
}
