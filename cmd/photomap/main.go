package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/jengzang/photomap-go/internal/api"
	"github.com/jengzang/photomap-go/internal/config"
	"github.com/jengzang/photomap-go/internal/geocode"
	"github.com/jengzang/photomap-go/internal/report"
	"github.com/jengzang/photomap-go/internal/service"
)

func usage() {
	fmt.Fprintln(os.Stderr, `usage: photomap <command> [flags]

commands:
  scan    extract metadata and write reports
  render  run the full pipeline and write the map artifact plus reports
  serve   run the full pipeline and serve the map for review

flags:
  -input   directory of media files to process (default ".")
  -config  optional YAML config file
  -out     output directory (overrides config)
  -addr    listen address for serve (overrides config)`)
	os.Exit(2)
}

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	if len(os.Args) < 2 || !knownCommand(os.Args[1]) {
		usage()
	}
	command := os.Args[1]

	fs := flag.NewFlagSet(command, flag.ExitOnError)
	input := fs.String("input", ".", "directory of media files to process")
	cfgPath := fs.String("config", "", "optional YAML config file")
	out := fs.String("out", "", "output directory (overrides config)")
	addr := fs.String("addr", "", "listen address for serve (overrides config)")
	fs.Parse(os.Args[2:])

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}
	if *out != "" {
		cfg.OutputDir = *out
		cfg.DBPath = filepath.Join(*out, "photomap.db")
	}
	if *addr != "" {
		cfg.Port = *addr
	}

	var geocoder geocode.Provider = geocode.NopProvider{}
	if cfg.GeocodeAPIKey != "" {
		g, err := geocode.NewGoogleProvider(cfg.GeocodeAPIKey)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize geocoder")
		}
		geocoder = g
	}

	pipeline := service.NewPipelineService(cfg, logger, geocoder)

	result, err := pipeline.Run(context.Background(), *input)
	if err != nil {
		logger.Fatal().Err(err).Msg("pipeline failed")
	}

	switch command {
	case "scan":
		writer := report.NewWriter(logger)
		if err := writer.Write(cfg.OutputDir, cfg.ReportFormats, cfg.DBPath, result.Points(), result.Report); err != nil {
			logger.Fatal().Err(err).Msg("failed to write reports")
		}

	case "render":
		mapPath, err := pipeline.WriteOutputs(result)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to write outputs")
		}
		logger.Info().Str("map", mapPath).Msg("map artifact written")

	case "serve":
		router := api.SetupRouter(logger, result)
		logger.Info().Str("addr", cfg.Port).Msg("review server starting")
		if err := router.Run(cfg.Port); err != nil {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}
}

// knownCommand reports whether name is a recognized subcommand. Unknown
// commands must be rejected before any pipeline work starts.
func knownCommand(name string) bool {
	switch name {
	case "scan", "render", "serve":
		return true
	}
	return false
}
