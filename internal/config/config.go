package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jengzang/photomap-go/internal/models"
)

// Config is the full configuration surface of the toolkit.
type Config struct {
	// Pipeline
	Levels        []float64 `yaml:"levels"`          // cluster distance thresholds in meters, strictly increasing
	MaxGapMinutes int       `yaml:"max_gap_minutes"` // route break threshold
	MaxDimension  int       `yaml:"max_dimension"`   // thumbnail longest side in pixels
	Concurrency   int       `yaml:"concurrency"`     // thumbnail workers

	// Toolkit
	OutputDir     string   `yaml:"output_dir"`
	ReportFormats []string `yaml:"report_formats"` // json, csv, txt, sqlite
	DBPath        string   `yaml:"db_path"`
	Port          string   `yaml:"port"`
	GeocodeAPIKey string   `yaml:"geocode_api_key"`
}

// Default returns the configuration used when no file is given. The exact
// thresholds are deployment knobs; these values work well for typical photo
// sets (hundreds to low thousands of points).
func Default() *Config {
	return &Config{
		Levels:        []float64{100, 1000, 10000},
		MaxGapMinutes: 60,
		MaxDimension:  200,
		Concurrency:   4,
		OutputDir:     "./photomap_output",
		ReportFormats: []string{"json", "csv", "txt", "sqlite"},
		DBPath:        "./photomap_output/photomap.db",
		Port:          ":8080",
	}
}

// Load builds the configuration from an optional YAML file, then applies
// environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}
	if dbPath := os.Getenv("DB_PATH"); dbPath != "" {
		cfg.DBPath = dbPath
	}
	if key := os.Getenv("GEOCODE_API_KEY"); key != "" {
		cfg.GeocodeAPIKey = key
	}

	return cfg, nil
}

// MaxGap returns the route break threshold as a duration.
func (c *Config) MaxGap() time.Duration {
	return time.Duration(c.MaxGapMinutes) * time.Minute
}

// Validate checks the configuration. Invalid configuration aborts the whole
// run before processing: no partial result is meaningful.
func (c *Config) Validate() error {
	if len(c.Levels) == 0 {
		return &models.ConfigError{Field: "levels", Reason: "no distance thresholds configured"}
	}
	for i, lvl := range c.Levels {
		if lvl <= 0 {
			return &models.ConfigError{Field: "levels", Reason: "thresholds must be positive"}
		}
		if i > 0 && lvl <= c.Levels[i-1] {
			return &models.ConfigError{Field: "levels", Reason: "thresholds must be strictly increasing"}
		}
	}
	if c.MaxGapMinutes <= 0 {
		return &models.ConfigError{Field: "max_gap_minutes", Reason: "must be positive"}
	}
	if c.MaxDimension <= 0 {
		return &models.ConfigError{Field: "max_dimension", Reason: "must be positive"}
	}
	if c.Concurrency < 1 {
		return &models.ConfigError{Field: "concurrency", Reason: "must be at least 1"}
	}
	return nil
}
