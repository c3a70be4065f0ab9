package main

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/vetfin/vetplan/internal/calculation"
	"github.com/vetfin/vetplan/internal/domain"
	"github.com/vetfin/vetplan/internal/output"
)

func (c *cli) benefitsCmd() *cobra.Command {
	var (
		planFile string
		profile  domain.ServiceProfile
		format   string
	)

	cmd := &cobra.Command{
		Use:   "benefits",
		Short: "Estimate benefits earned through service",
		Long: `Estimate disability compensation, GI Bill coverage and related benefits
from a service record. The record comes from a plan file's service section or
from flags; flags override the plan file.

Examples:
  vetplan benefits --years 8 --rank E-6 --state TX --rating 70
  vetplan benefits --plan plan.yaml --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := domain.ServiceProfile{}
			if planFile != "" {
				cfg, err := c.loadPlan(planFile)
				if err != nil {
					return err
				}
				if cfg.Service == nil {
					return fmt.Errorf("%s has no service section", planFile)
				}
				p = *cfg.Service
			}
			flags := cmd.Flags()
			if flags.Changed("years") {
				p.YearsOfService = profile.YearsOfService
			}
			if flags.Changed("rank") {
				p.Rank = profile.Rank
			}
			if flags.Changed("state") {
				p.State = profile.State
			}
			if flags.Changed("rating") {
				p.DisabilityRating = profile.DisabilityRating
			}

			report, err := calculation.EstimateBenefits(p)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch format {
			case "console":
				fmt.Fprintln(out, output.BenefitsConsoleFormatter{}.FormatBenefitReport(report))
			case "json":
				data, err := json.MarshalIndent(report, "", "  ")
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

	cmd.Flags().StringVar(&planFile, "plan", "", "Plan file with a service section")
	cmd.Flags().IntVar(&profile.YearsOfService, "years", 0, "Years of service")
	cmd.Flags().StringVar(&profile.Rank, "rank", "", "Pay grade, e.g. E-5 or O-3")
	cmd.Flags().StringVar(&profile.State, "state", "", "State of residence")
	cmd.Flags().IntVar(&profile.DisabilityRating, "rating", 0, "VA disability rating (0-100, multiple of 10)")
	cmd.Flags().StringVarP(&format, "format", "f", "console", "Output format (console, json)")
	return cmd
}
