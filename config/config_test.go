package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"duel/searcher"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644), "Should write the config file")
	return path
}

func TestLoad(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		require.NoError(t, Default().Validate(), "Default config should validate")
	})

	t.Run("file overrides only what it names", func(t *testing.T) {
		path := writeConfig(t, `
logging:
  level: debug
search:
  depth: 6
  duration: 250ms
  voluntary_pass: true
weights:
  round_lead: 800
  hand_size: [1, 2, 3]
experiment:
  games: 4
  opponents: [greedy]
`)

		cfg, err := Load(path)

		require.NoError(t, err, "Config should load")
		require.Equal(t, "debug", cfg.Logging.Level, "Level should be read")
		require.Equal(t, 6, cfg.Search.Depth, "Depth should be read")
		require.Equal(t, 250*time.Millisecond, cfg.Search.Duration, "Duration should be parsed")
		require.True(t, cfg.Search.VoluntaryPass, "Voluntary pass should be read")
		require.Equal(t, 1, cfg.Search.Goroutines, "Goroutines should keep the default")
		require.Equal(t, 800.0, cfg.Weights.RoundLead, "Weight should be read")
		require.Equal(t, [3]float64{1, 2, 3}, cfg.Weights.HandSize, "Round weights should be read")
		require.Equal(t, searcher.DefaultWeights().Special, cfg.Weights.Special, "Unnamed weights should keep the default")
		require.Equal(t, 4, cfg.Experiment.Games, "Games should be read")
		require.Equal(t, []string{OpponentGreedy}, cfg.Experiment.Opponents, "Opponents should be replaced")
		require.Equal(t, "strength", cfg.Experiment.Name, "Name should keep the default")
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

		require.ErrorIs(t, err, os.ErrNotExist, "Missing file should wrap the os error")
	})

	t.Run("malformed yaml is an error", func(t *testing.T) {
		_, err := Load(writeConfig(t, "search: [depth"))

		require.Error(t, err, "Malformed file should fail")
	})

	t.Run("invalid values are rejected", func(t *testing.T) {
		for name, content := range map[string]string{
			"depth":    "search:\n  depth: -1\n",
			"level":    "logging:\n  level: loud\n",
			"opponent": "experiment:\n  opponents: [oracle]\n",
			"games":    "experiment:\n  games: 0\n",
		} {
			_, err := Load(writeConfig(t, content))
			require.Error(t, err, "Invalid %s should be rejected", name)
		}
	})
}

func TestSearchOptions(t *testing.T) {
	t.Run("options build a working searcher", func(t *testing.T) {
		cfg := Default()
		cfg.Search.Depth = 2
		cfg.Search.NodeBudget = 1000
		cfg.Search.AdaptiveDepth = true

		m := searcher.NewMinimax(cfg.SearchOptions()...)

		require.NotNil(t, m, "Options should construct a searcher")
	})
}
