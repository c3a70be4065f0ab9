package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vetfin/vetplan/internal/domain"
	"github.com/vetfin/vetplan/internal/output"
)

func (c *cli) calculateCmd() *cobra.Command {
	var (
		format      string
		scenario    string
		simulate    bool
		paths       int
		seed        int64
		save        bool
		listFormats bool
	)

	cmd := &cobra.Command{
		Use:   "calculate [plan-file]",
		Short: "Calculate retirement scenarios",
		Long: `Calculate every scenario in a plan file and print a report.

Examples:
  vetplan calculate plan.yaml
  vetplan calculate plan.yaml --format csv --save
  vetplan calculate plan.yaml --scenario Baseline --simulate --paths 5000`,
		Args: func(cmd *cobra.Command, args []string) error {
			if listFormats {
				return nil
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if listFormats {
				fmt.Fprintf(out, "Formats: %s\n", strings.Join(output.AvailableFormatterNames(), ", "))
				fmt.Fprintf(out, "Aliases: %s\n", strings.Join(output.AvailableFormatAliases(), ", "))
				return nil
			}

			if format == "" {
				format = c.settings.Output.Format
			}
			f := output.GetFormatterByName(format)
			if f == nil {
				return fmt.Errorf("unknown format %q (available: %s)", format, strings.Join(output.AvailableFormatterNames(), ", "))
			}

			cfg, err := c.loadPlan(args[0])
			if err != nil {
				return err
			}
			if scenario != "" {
				sc, ok := cfg.FindScenario(scenario)
				if !ok {
					return fmt.Errorf("scenario %s not found in %s", scenario, args[0])
				}
				cfg.Scenarios = []domain.Scenario{*sc}
			}

			engine := c.engine(simulate)
			if engine.Simulator != nil {
				if cmd.Flags().Changed("paths") {
					engine.Simulator.Config.Paths = paths
				}
				if cmd.Flags().Changed("seed") {
					engine.Simulator.Config.Seed = seed
				}
			}

			results, err := engine.RunScenarios(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			if save {
				filename, err := output.WriteFormatted(f, results, output.FileExtension(f))
				if err != nil {
					return err
				}
				c.logger.Info("report saved", zap.String("file", filename), zap.String("format", f.Name()))
				fmt.Fprintf(out, "Report saved to %s\n", filename)
				return nil
			}

			data, err := f.Format(results)
			if err != nil {
				return fmt.Errorf("format %s: %w", f.Name(), err)
			}
			_, err = out.Write(data)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format (default from settings; see --list-formats)")
	cmd.Flags().StringVar(&scenario, "scenario", "", "Only calculate the named scenario")
	cmd.Flags().BoolVar(&simulate, "simulate", false, "Run the Monte Carlo success simulation")
	cmd.Flags().IntVar(&paths, "paths", 1000, "Simulation paths")
	cmd.Flags().Int64Var(&seed, "seed", 1, "Simulation seed")
	cmd.Flags().BoolVar(&save, "save", false, "Write the report to a timestamped file instead of stdout")
	cmd.Flags().BoolVar(&listFormats, "list-formats", false, "List the available output formats")
	return cmd
}

func (c *cli) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [plan-file]",
		Short: "Validate a plan file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadPlan(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s is valid\n", args[0])
			fmt.Fprintf(out, "Scenarios: %d\n", len(cfg.Scenarios))
			for _, sc := range cfg.Scenarios {
				fmt.Fprintf(out, "  - %s (retire at %d)\n", sc.Name, sc.Retirement.RetirementAge)
			}
			if cfg.Planner != nil {
				fmt.Fprintln(out, "Planner inputs: present")
			}
			if cfg.Service != nil {
				fmt.Fprintln(out, "Service profile: present")
			}
			return nil
		},
	}
}
