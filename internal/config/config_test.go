package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jengzang/photomap-go/internal/models"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, []float64{100, 1000, 10000}, cfg.Levels)
	assert.Equal(t, time.Hour, cfg.MaxGap())
}

func TestValidateFailures(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"no levels", func(c *Config) { c.Levels = nil }, "levels"},
		{"negative level", func(c *Config) { c.Levels = []float64{-5} }, "levels"},
		{"levels not increasing", func(c *Config) { c.Levels = []float64{1000, 100} }, "levels"},
		{"zero gap", func(c *Config) { c.MaxGapMinutes = 0 }, "max_gap_minutes"},
		{"zero dimension", func(c *Config) { c.MaxDimension = 0 }, "max_dimension"},
		{"zero concurrency", func(c *Config) { c.Concurrency = 0 }, "concurrency"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)

			err := cfg.Validate()

			var cerr *models.ConfigError
			require.ErrorAs(t, err, &cerr)
			assert.Equal(t, tc.field, cerr.Field)
		})
	}
}

func TestLoadWithoutFileReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().Levels, cfg.Levels)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
levels: [50, 500]
max_gap_minutes: 30
max_dimension: 150
output_dir: /tmp/out
report_formats: [json, sqlite]
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []float64{50, 500}, cfg.Levels)
	assert.Equal(t, 30*time.Minute, cfg.MaxGap())
	assert.Equal(t, 150, cfg.MaxDimension)
	assert.Equal(t, "/tmp/out", cfg.OutputDir)
	assert.Equal(t, []string{"json", "sqlite"}, cfg.ReportFormats)
	// Untouched keys keep their defaults.
	assert.Equal(t, 4, cfg.Concurrency)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("PORT", ":9090")
	t.Setenv("DB_PATH", "/tmp/test.db")
	t.Setenv("GEOCODE_API_KEY", "test-key")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Port)
	assert.Equal(t, "/tmp/test.db", cfg.DBPath)
	assert.Equal(t, "test-key", cfg.GeocodeAPIKey)
}
