package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vetfin/vetplan/internal/domain"
)

func TestLoadSettings_MissingFileGivesDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	s, err := LoadSettings()

	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
	assert.Equal(t, domain.MarketAverage, s.DefaultMarket())
}

func TestSettingsPath_UsesXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	assert.Equal(t, filepath.Join(dir, "vetplan", "config.toml"), SettingsPath())
}

func TestSaveAndLoadSettings(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	s := DefaultSettings()
	s.Output.Format = "json"
	s.Simulation.Enabled = true
	s.Simulation.Paths = 250
	s.Defaults.Market = "strong"

	require.NoError(t, SaveSettings(s))
	loaded, err := LoadSettings()

	require.NoError(t, err)
	assert.Equal(t, s, loaded)
	assert.Equal(t, domain.MarketStrong, loaded.DefaultMarket())
}

func TestLoadSettings_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[output]\nformat = \"csv\"\n"), 0o600))

	s, err := LoadSettingsFrom(path)

	require.NoError(t, err)
	assert.Equal(t, "csv", s.Output.Format)
	assert.Equal(t, 1000, s.Simulation.Paths)
	assert.Equal(t, "info", s.Log.Level)
}

func TestLoadSettings_Invalid(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[output\n"), 0o600))
	_, err := LoadSettingsFrom(bad)
	assert.ErrorContains(t, err, "parsing settings")

	market := filepath.Join(dir, "market.toml")
	require.NoError(t, os.WriteFile(market, []byte("[defaults]\nmarket = \"bubble\"\n"), 0o600))
	_, err = LoadSettingsFrom(market)
	assert.ErrorContains(t, err, "defaults.market")
}
