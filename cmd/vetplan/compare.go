package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vetfin/vetplan/internal/compare"
	"github.com/vetfin/vetplan/internal/output"
	"github.com/vetfin/vetplan/internal/transform"
)

func (c *cli) compareCmd() *cobra.Command {
	var (
		base          string
		with          string
		scenarios     string
		format        string
		listTemplates bool
		specs         []string
	)

	cmd := &cobra.Command{
		Use:   "compare [plan-file]",
		Short: "Compare a scenario against what-if alternatives",
		Long: `Compare a base scenario against alternatives built from strategy templates
or against other scenarios in the same plan file.

Examples:
  vetplan compare plan.yaml --base Baseline --with postpone_3yr,aggressive
  vetplan compare plan.yaml --base Baseline --scenarios Early,Late --format csv
  vetplan compare plan.yaml --with contribute_more_250 --format html
  vetplan compare plan.yaml --transform postpone_retirement:years=2 --transform set_risk:tolerance=70
  vetplan compare --list-templates`,
		Args: func(cmd *cobra.Command, args []string) error {
			if listTemplates {
				return nil
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if listTemplates {
				fmt.Fprintln(out, transform.GetTemplateHelp(transform.CreateBuiltInTemplates()))
				fmt.Fprintf(out, "Transforms for --transform: %s\n", strings.Join(transform.NewTransformRegistry().List(), ", "))
				return nil
			}

			templates := transform.ParseTemplateList(with)
			alternatives := transform.ParseTemplateList(scenarios)
			registry := transform.CreateBuiltInTemplates()
			if len(specs) > 0 {
				custom, err := customTemplate(specs)
				if err != nil {
					return err
				}
				registry.Register(custom)
				templates = append(templates, custom.Name)
			}
			if len(templates) == 0 && len(alternatives) == 0 {
				return fmt.Errorf("--with, --transform or --scenarios is required (see --list-templates)")
			}
			if len(templates) > 0 && len(alternatives) > 0 {
				return fmt.Errorf("--scenarios cannot be combined with --with or --transform")
			}

			cfg, err := c.loadPlan(args[0])
			if err != nil {
				return err
			}

			engine := compare.NewCompareEngine(c.engine(false))
			engine.TemplateRegistry = registry
			var set *compare.ComparisonSet
			if len(templates) > 0 {
				set, err = engine.Compare(cmd.Context(), cfg, compare.CompareOptions{
					BaseScenarioName: base,
					Templates:        templates,
				})
			} else {
				set, err = engine.CompareScenarios(cmd.Context(), cfg, base, alternatives)
			}
			if err != nil {
				return err
			}
			set.ConfigPath = args[0]
			c.logger.Debug("comparison complete",
				zap.String("base", set.BaseScenarioName),
				zap.Int("alternatives", len(set.AlternativeResults)))

			var rendered string
			switch strings.ToLower(format) {
			case "table":
				rendered = (&compare.TableFormatter{}).Format(set)
			case "compact":
				rendered = (&compare.TableFormatter{}).FormatCompact(set)
			case "csv":
				rendered, err = (&compare.CSVFormatter{}).Format(set)
			case "json":
				rendered, err = (&compare.JSONFormatter{Pretty: true}).Format(set)
			default:
				f := output.GetFormatterByName(format)
				if f == nil {
					return fmt.Errorf("unknown format %q (use table, compact, csv, json or a report format)", format)
				}
				var data []byte
				data, err = f.Format(set.ToPlanComparison(cfg.Profile))
				rendered = string(data)
			}
			if err != nil {
				return err
			}
			fmt.Fprint(out, rendered)
			if !strings.HasSuffix(rendered, "\n") {
				fmt.Fprintln(out)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&base, "base", "", "Base scenario name (default: first scenario)")
	cmd.Flags().StringVar(&with, "with", "", "Comma-separated list of templates to compare")
	cmd.Flags().StringArrayVar(&specs, "transform", nil, "Transform applied to a custom alternative, as name:param=value (repeatable)")
	cmd.Flags().StringVar(&scenarios, "scenarios", "", "Comma-separated list of scenarios from the plan file to compare")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format (table, compact, csv, json, or any report format)")
	cmd.Flags().BoolVar(&listTemplates, "list-templates", false, "List all available scenario templates")
	return cmd
}

// customTemplate chains transform specs into a single "custom" alternative
func customTemplate(specs []string) (transform.Template, error) {
	registry := transform.NewTransformRegistry()
	t := transform.Template{Name: "custom"}
	for _, spec := range specs {
		tr, err := registry.ParseTransformSpec(spec)
		if err != nil {
			return transform.Template{}, fmt.Errorf("--transform %q: %w", spec, err)
		}
		t.Transforms = append(t.Transforms, tr)
	}
	t.Description = transform.Describe(t.Transforms)
	return t, nil
}
