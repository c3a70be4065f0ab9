package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vetfin/vetplan/internal/domain"
	"github.com/vetfin/vetplan/internal/output"
)

func (c *cli) projectCmd() *cobra.Command {
	var (
		scenario string
		all      bool
		format   string
	)

	cmd := &cobra.Command{
		Use:   "project [plan-file]",
		Short: "Show the year-by-year savings projection for a scenario",
		Long: `Print the yearly projection of savings and guaranteed income for one
scenario. By default only milestone years are shown; --all prints every year.

Examples:
  vetplan project plan.yaml
  vetplan project plan.yaml --scenario Early --all
  vetplan project plan.yaml --format csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadPlan(args[0])
			if err != nil {
				return err
			}

			if len(cfg.Scenarios) == 0 {
				return fmt.Errorf("%s has no scenarios", args[0])
			}
			idx := 0
			if scenario != "" {
				idx = -1
				for i := range cfg.Scenarios {
					if cfg.Scenarios[i].Name == scenario {
						idx = i
						break
					}
				}
				if idx < 0 {
					return fmt.Errorf("scenario %s not found in %s", scenario, args[0])
				}
			}

			plan, err := c.engine(false).RunScenario(cmd.Context(), cfg, idx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch format {
			case "csv":
				data, err := output.DetailedCSVFormatter{}.Format(&domain.PlanComparison{
					Profile: cfg.Profile,
					Plans:   []domain.RetirementPlan{*plan},
				})
				if err != nil {
					return err
				}
				_, err = out.Write(data)
				return err
			case "table":
				rows := plan.Projection
				if !all {
					rows = output.ProjectionMilestones(plan)
				}
				fmt.Fprintf(out, "%s: %s allocation, %.1f%% expected return\n",
					plan.Name, plan.RiskProfile.Name, plan.AnnualReturn*100)
				fmt.Fprintln(out, output.ProjectionTable(out, plan, rows))
				if age, depleted := plan.SavingsDepletedAge(); depleted {
					fmt.Fprintf(out, "Savings are depleted at age %d\n", age)
				}
				return nil
			default:
				return fmt.Errorf("unknown format %q (use table or csv)", format)
			}
		},
	}

	cmd.Flags().StringVar(&scenario, "scenario", "", "Scenario to project (default: first scenario)")
	cmd.Flags().BoolVar(&all, "all", false, "Show every year instead of milestones")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format (table, csv)")
	return cmd
}
