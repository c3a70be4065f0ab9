package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/vetfin/vetplan/internal/calculation"
	"github.com/vetfin/vetplan/internal/config"
	"github.com/vetfin/vetplan/internal/tui"
)

// zapEngineLogger adapts zap to calculation.Logger
type zapEngineLogger struct{ *zap.SugaredLogger }

func newRootCmd() *cobra.Command {
	var (
		settingsPath string
		debugLog     string
	)

	cmd := &cobra.Command{
		Use:   "vetplan-tui [plan-file]",
		Short: "Interactive veteran retirement simulator",
		Long: `Adjust retirement inputs with sliders and watch the projection update.
Without a plan file the simulator starts from default inputs.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			planPath := ""
			if len(args) == 1 {
				planPath = args[0]
				if _, err := os.Stat(planPath); err != nil {
					return fmt.Errorf("plan file not found: %s", planPath)
				}
			}

			if settingsPath == "" {
				settingsPath = config.SettingsPath()
			}
			settings, err := config.LoadSettingsFrom(settingsPath)
			if err != nil {
				return err
			}

			engine := calculation.NewCalculationEngine()
			if settings.Simulation.Enabled {
				sim := calculation.DefaultSimulationConfig()
				if settings.Simulation.Paths > 0 {
					sim.Paths = settings.Simulation.Paths
				}
				sim.Seed = settings.Simulation.Seed
				engine.EnableSimulation(sim)
			}

			// The alternate screen owns the terminal, so logs only go to a file
			if debugLog != "" {
				logger, err := fileLogger(debugLog)
				if err != nil {
					return err
				}
				defer func() { _ = logger.Sync() }()
				engine.SetLogger(zapEngineLogger{logger.Sugar()})
				engine.Debug = true
			}

			p := tea.NewProgram(
				tui.NewModel(planPath, engine, settings.DefaultMarket()),
				tea.WithAltScreen(),
				tea.WithMouseCellMotion(),
				tea.WithContext(cmd.Context()),
			)
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("running TUI: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&settingsPath, "settings", "", "Settings file (default "+config.SettingsPath()+")")
	cmd.Flags().StringVar(&debugLog, "debug-log", "", "Write calculation debug logs to this file")
	return cmd
}

func fileLogger(path string) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	return cfg.Build()
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
