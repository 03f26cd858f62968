package models

import "time"

// Failure stages
const (
	StageExtract   = "EXTRACT"
	StageIngest    = "INGEST"
	StageThumbnail = "THUMBNAIL"
	StageGeocode   = "GEOCODE"
)

// PointFailure records one per-point, non-fatal failure. Failures are
// collected and reported alongside successful counts, never silently
// dropped.
type PointFailure struct {
	RecordID string `json:"record_id" db:"record_id"`
	Stage    string `json:"stage" db:"stage"`
	Reason   string `json:"reason" db:"reason"`
}

// LevelSummary is the per-level cluster count in a run report.
type LevelSummary struct {
	Level      int     `json:"level"`
	ThresholdM float64 `json:"threshold_m"`
	Clusters   int     `json:"clusters"`
}

// RunReport is the explicit result/report object threaded through the
// pipeline components and merged by the caller. It replaces any shared
// logging or progress state: each component contributes counts and
// failures, nothing else crosses component boundaries.
type RunReport struct {
	RunID     string    `json:"run_id" db:"run_id"`
	Source    string    `json:"source" db:"source"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	// Ingestion
	FilesScanned    int `json:"files_scanned" db:"files_scanned"`
	PointsIngested  int `json:"points_ingested" db:"points_ingested"`
	PointsRejected  int `json:"points_rejected" db:"points_rejected"`

	// Derived outputs
	ClusterLevels      []LevelSummary `json:"cluster_levels,omitempty"`
	RouteSegments      int            `json:"route_segments" db:"route_segments"`
	ThumbnailsEmbedded int            `json:"thumbnails_embedded" db:"thumbnails_embedded"`
	ThumbnailsFailed   int            `json:"thumbnails_failed" db:"thumbnails_failed"`

	Failures []PointFailure `json:"failures,omitempty"`
}

// AddFailure appends a per-point failure to the report.
func (r *RunReport) AddFailure(recordID, stage, reason string) {
	r.Failures = append(r.Failures, PointFailure{
		RecordID: recordID,
		Stage:    stage,
		Reason:   reason,
	})
}

// FailuresAt returns the failures recorded for a given stage.
func (r *RunReport) FailuresAt(stage string) []PointFailure {
	var out []PointFailure
	for _, f := range r.Failures {
		if f.Stage == stage {
			out = append(out, f)
		}
	}
	return out
}
