// Package extract is the metadata-extraction collaborator: it walks a
// directory of media files and produces raw records with field presence
// exactly as extracted, no assumed defaults. The store decides what is
// geolocatable; this package only reports what the files contain.
package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rwcarlsen/goexif/exif"

	"github.com/jengzang/photomap-go/internal/models"
)

// Scanner extracts metadata and digests from files in a directory.
type Scanner struct {
	logger zerolog.Logger
}

// NewScanner creates a new scanner.
func NewScanner(logger zerolog.Logger) *Scanner {
	return &Scanner{logger: logger}
}

// ScanDir produces one raw record per regular file in dir (non-recursive,
// matching the original toolkit's folder layout). Files without EXIF GPS
// data still yield records; ingestion rejects and reports them. Unreadable
// files are collected as extract failures and skipped, never aborting the
// scan.
func (s *Scanner) ScanDir(dir string, report *models.RunReport) ([]models.RawRecord, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var records []models.RawRecord
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		report.FilesScanned++

		path := filepath.Join(dir, entry.Name())
		rec, err := s.scanFile(entry.Name(), path)
		if err != nil {
			s.logger.Warn().Str("file", entry.Name()).Err(err).Msg("extraction failed")
			report.AddFailure(entry.Name(), models.StageExtract, err.Error())
			continue
		}

		records = append(records, rec)
	}

	s.logger.Info().Int("files", report.FilesScanned).Int("records", len(records)).
		Str("dir", dir).Msg("scan completed")

	return records, nil
}

// scanFile hashes one file and pulls its EXIF coordinates and capture time.
func (s *Scanner) scanFile(name, path string) (models.RawRecord, error) {
	hashes, err := HashFile(path)
	if err != nil {
		return models.RawRecord{}, err
	}

	rec := models.RawRecord{
		ID:         name,
		Label:      name,
		SourcePath: path,
		SizeBytes:  hashes.Size,
		MD5Hash:    hashes.MD5,
		SHA1Hash:   hashes.SHA1,
		SHA256Hash: hashes.SHA256,
	}

	lat, lon, ts := exifFields(path)
	rec.Lat = lat
	rec.Lon = lon
	rec.Timestamp = ts

	return rec, nil
}

// exifFields reads GPS coordinates and the capture timestamp from a file's
// EXIF block. Absent or unparseable fields stay nil; that is data, not an
// error, and the store reports it at ingestion.
func exifFields(path string) (lat, lon *float64, ts *time.Time) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, nil, nil
	}
	defer fh.Close()

	x, err := exif.Decode(fh)
	if err != nil {
		return nil, nil, nil
	}

	if la, lo, err := x.LatLong(); err == nil {
		lat = &la
		lon = &lo
	}

	if t, err := x.DateTime(); err == nil {
		ts = &t
	}

	return lat, lon, ts
}
