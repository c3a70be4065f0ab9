package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/vetfin/vetplan/internal/domain"
)

// Settings holds the user's vetplan preferences
type Settings struct {
	Output     OutputSettings     `toml:"output"`
	Simulation SimulationSettings `toml:"simulation"`
	Defaults   ScenarioDefaults   `toml:"defaults"`
	Log        LogSettings        `toml:"log"`
}

// OutputSettings holds report preferences.
type OutputSettings struct {
	Format string `toml:"format"`
}

// SimulationSettings configures the Monte Carlo simulation.
type SimulationSettings struct {
	Enabled bool  `toml:"enabled"`
	Paths   int   `toml:"paths"`
	Seed    int64 `toml:"seed"`
}

// ScenarioDefaults are applied to scenarios that leave a field empty.
type ScenarioDefaults struct {
	Market string `toml:"market"`
}

// LogSettings controls CLI logging.
type LogSettings struct {
	Level string `toml:"level"`
}

// DefaultSettings returns the built-in preferences.
func DefaultSettings() Settings {
	return Settings{
		Output:     OutputSettings{Format: "console"},
		Simulation: SimulationSettings{Paths: 1000, Seed: 1},
		Defaults:   ScenarioDefaults{Market: string(domain.MarketAverage)},
		Log:        LogSettings{Level: "info"},
	}
}

// SettingsDir returns the XDG-compliant config directory.
func SettingsDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "vetplan")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "vetplan")
}

// SettingsPath returns the full path to the settings file.
func SettingsPath() string {
	return filepath.Join(SettingsDir(), "config.toml")
}

// LoadSettings reads the settings file, returning defaults if it doesn't exist.
func LoadSettings() (Settings, error) {
	return LoadSettingsFrom(SettingsPath())
}

// LoadSettingsFrom reads settings from path
func LoadSettingsFrom(path string) (Settings, error) {
	s := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, fmt.Errorf("reading settings: %w", err)
	}

	if err := toml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parsing settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return s, err
	}

	return s, nil
}

// SaveSettings writes the settings to disk.
func SaveSettings(s Settings) error {
	return SaveSettingsTo(SettingsPath(), s)
}

// SaveSettingsTo writes the settings to path, creating its directory
func SaveSettingsTo(path string, s Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating settings dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating settings file: %w", err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(s)
}

// Validate checks values that would otherwise fail later at run time
func (s Settings) Validate() error {
	if s.Simulation.Paths < 0 {
		return fmt.Errorf("simulation.paths cannot be negative")
	}
	if _, err := ParseMarket(s.Defaults.Market); err != nil {
		return fmt.Errorf("defaults.market: %w", err)
	}
	return nil
}

// DefaultMarket returns the configured default market scenario
func (s Settings) DefaultMarket() domain.MarketScenario {
	m, err := ParseMarket(s.Defaults.Market)
	if err != nil {
		return domain.MarketAverage
	}
	return m
}
