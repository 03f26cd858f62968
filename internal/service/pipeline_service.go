package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jengzang/photomap-go/internal/cluster"
	"github.com/jengzang/photomap-go/internal/config"
	"github.com/jengzang/photomap-go/internal/extract"
	"github.com/jengzang/photomap-go/internal/geocode"
	"github.com/jengzang/photomap-go/internal/models"
	"github.com/jengzang/photomap-go/internal/render"
	"github.com/jengzang/photomap-go/internal/report"
	"github.com/jengzang/photomap-go/internal/route"
	"github.com/jengzang/photomap-go/internal/store"
	"github.com/jengzang/photomap-go/internal/thumbnail"
)

// PipelineService composes the pipeline: extraction, ingestion, clustering,
// route construction, thumbnail preparation and rendering. Components share
// nothing but the read-only store; results and failures travel in an
// explicit RunReport rather than any process-wide state.
type PipelineService struct {
	cfg      *config.Config
	logger   zerolog.Logger
	geocoder geocode.Provider
}

// NewPipelineService creates a pipeline service.
func NewPipelineService(cfg *config.Config, logger zerolog.Logger, geocoder geocode.Provider) *PipelineService {
	if geocoder == nil {
		geocoder = geocode.NopProvider{}
	}
	return &PipelineService{
		cfg:      cfg,
		logger:   logger,
		geocoder: geocoder,
	}
}

// Result holds everything a run produces. The artifact is immutable once
// built; re-running identical inputs produces an equivalent result.
type Result struct {
	Store     *store.Store
	Hierarchy models.Hierarchy
	Routes    []models.RouteSegment
	Model     models.RenderModel
	Artifact  []byte
	Report    *models.RunReport
}

// Points returns the validated records in ingestion order.
func (r *Result) Points() []models.PointRecord {
	pts := make([]models.PointRecord, 0, r.Store.Len())
	for rec := range r.Store.All() {
		pts = append(pts, rec)
	}
	return pts
}

// Run executes the full pipeline over a directory of media files.
// Configuration errors abort immediately; per-point failures degrade and
// are collected in the report.
func (s *PipelineService) Run(ctx context.Context, inputDir string) (*Result, error) {
	if err := s.cfg.Validate(); err != nil {
		return nil, err
	}

	rep := &models.RunReport{
		RunID:     uuid.New().String(),
		Source:    inputDir,
		CreatedAt: time.Now().UTC(),
	}

	scanner := extract.NewScanner(s.logger)
	raws, err := scanner.ScanDir(inputDir, rep)
	if err != nil {
		return nil, fmt.Errorf("failed to scan input: %w", err)
	}

	st := store.Ingest(raws, rep)
	s.logger.Info().Int("ingested", rep.PointsIngested).Int("rejected", rep.PointsRejected).
		Msg("ingestion completed")

	geocode.Annotate(ctx, s.logger, s.geocoder, st, rep)

	hierarchy, err := cluster.Build(st, s.cfg.Levels)
	if err != nil {
		return nil, err
	}
	for _, lvl := range hierarchy {
		rep.ClusterLevels = append(rep.ClusterLevels, models.LevelSummary{
			Level:      lvl.Level,
			ThresholdM: lvl.Threshold,
			Clusters:   len(lvl.Clusters),
		})
	}

	routes := route.Build(st, s.cfg.MaxGap())
	rep.RouteSegments = len(routes)

	thumbs := thumbnail.PrepareAll(s.logger, st, s.cfg.MaxDimension, s.cfg.Concurrency, rep)

	model := render.BuildModel(st, hierarchy, routes, thumbs)
	artifact, err := render.Render(model)
	if err != nil {
		return nil, fmt.Errorf("failed to render map: %w", err)
	}

	s.logger.Info().Int("points", st.Len()).Int("clusters", hierarchy.TotalClusters()).
		Int("routes", len(routes)).Msg("pipeline completed")

	return &Result{
		Store:     st,
		Hierarchy: hierarchy,
		Routes:    routes,
		Model:     model,
		Artifact:  artifact,
		Report:    rep,
	}, nil
}

// WriteOutputs persists the artifact and the configured report formats to
// the output directory. It returns the map artifact path.
func (s *PipelineService) WriteOutputs(res *Result) (string, error) {
	if err := os.MkdirAll(s.cfg.OutputDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	mapPath := filepath.Join(s.cfg.OutputDir, "map.html")
	if err := os.WriteFile(mapPath, res.Artifact, 0o644); err != nil {
		return "", fmt.Errorf("failed to write map artifact: %w", err)
	}

	writer := report.NewWriter(s.logger)
	if err := writer.Write(s.cfg.OutputDir, s.cfg.ReportFormats, s.cfg.DBPath, res.Points(), res.Report); err != nil {
		return "", err
	}

	return mapPath, nil
}
