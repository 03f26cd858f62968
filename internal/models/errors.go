package models

import "fmt"

// ValidationError reports a record rejected at ingestion. The run continues
// with the remaining records; rejected ids are collected in the RunReport.
type ValidationError struct {
	RecordID string
	Reason   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid record %q: %s", e.RecordID, e.Reason)
}

// ConfigError reports invalid configuration. It is fatal: no partial result
// is meaningful, so the run aborts before any processing starts.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid config %q: %s", e.Field, e.Reason)
}

// ThumbnailError reports a per-point thumbnail failure. It never propagates
// past the thumbnail preparer; the point is rendered with a default marker.
type ThumbnailError struct {
	RecordID string
	Path     string
	Err      error
}

func (e *ThumbnailError) Error() string {
	return fmt.Sprintf("thumbnail for %q (%s): %v", e.RecordID, e.Path, e.Err)
}

func (e *ThumbnailError) Unwrap() error {
	return e.Err
}
