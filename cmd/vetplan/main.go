package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vetfin/vetplan/internal/calculation"
	"github.com/vetfin/vetplan/internal/config"
	"github.com/vetfin/vetplan/internal/domain"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// cli holds the state shared by every command
type cli struct {
	settingsPath string
	debug        bool

	settings config.Settings
	logger   *zap.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{settings: config.DefaultSettings(), logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "vetplan",
		Short: "Veteran retirement and benefits planner",
		Long: `Plan retirement as a veteran: project savings alongside pension and
disability income, compare what-if strategies, budget monthly cash flow and
estimate service-connected benefits.`,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = c.logger.Sync()
		},
	}

	root.PersistentFlags().StringVar(&c.settingsPath, "settings", "", "Settings file (default "+config.SettingsPath()+")")
	root.PersistentFlags().BoolVar(&c.debug, "debug", false, "Enable debug output for detailed calculations")

	root.AddCommand(
		c.calculateCmd(),
		c.validateCmd(),
		c.projectCmd(),
		c.compareCmd(),
		c.plannerCmd(),
		c.benefitsCmd(),
		c.settingsCmd(),
		versionCmd(),
	)
	return root
}

// setup loads user settings and builds the logger before any command runs
func (c *cli) setup(cmd *cobra.Command, args []string) error {
	path := c.settingsPath
	if path == "" {
		path = config.SettingsPath()
	}
	settings, err := config.LoadSettingsFrom(path)
	if err != nil {
		return err
	}
	c.settings = settings

	logger, err := newLogger(settings.Log.Level, c.debug)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	c.logger = logger
	return nil
}

// loadPlan parses a plan file, filling empty markets from the settings
func (c *cli) loadPlan(path string) (*domain.Configuration, error) {
	parser := config.NewInputParser()
	parser.DefaultMarket = c.settings.DefaultMarket()
	cfg, err := parser.LoadFromFile(path)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("plan loaded", zap.String("path", path), zap.Int("scenarios", len(cfg.Scenarios)))
	return cfg, nil
}

// engine returns a calculation engine wired to the CLI logger. Simulation runs
// when requested on the command line or enabled in the settings.
func (c *cli) engine(simulate bool) *calculation.CalculationEngine {
	engine := calculation.NewCalculationEngine()
	engine.SetLogger(newEngineLogger(c.logger))
	engine.Debug = c.debug

	if simulate || c.settings.Simulation.Enabled {
		cfg := calculation.DefaultSimulationConfig()
		if c.settings.Simulation.Paths > 0 {
			cfg.Paths = c.settings.Simulation.Paths
		}
		cfg.Seed = c.settings.Simulation.Seed
		engine.EnableSimulation(cfg)
	}
	return engine
}

func versionCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "vetplan %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" && verbose {
				fmt.Fprintln(cmd.OutOrStdout(), info)
			}
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Include module build information")
	return cmd
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
