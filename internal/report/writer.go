// Package report writes the consolidated run report in the formats the
// toolkit has always produced: JSON, CSV, TXT and a SQLite database.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jengzang/photomap-go/internal/models"
)

// Writer persists run reports to an output directory.
type Writer struct {
	logger zerolog.Logger
}

// NewWriter creates a new report writer.
func NewWriter(logger zerolog.Logger) *Writer {
	return &Writer{logger: logger}
}

// Write emits the report in every requested format. Formats are written
// independently; the first failure aborts since a partially written report
// directory is worse than none.
func (w *Writer) Write(dir string, formats []string, dbPath string, points []models.PointRecord, rep *models.RunReport) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	for _, format := range formats {
		var err error
		switch strings.ToLower(format) {
		case "json":
			err = w.writeJSON(filepath.Join(dir, "report.json"), points, rep)
		case "csv":
			err = w.writeCSV(filepath.Join(dir, "points.csv"), points)
		case "txt":
			err = w.writeTXT(filepath.Join(dir, "report.txt"), points, rep)
		case "sqlite":
			err = WriteSQLite(dbPath, points, rep)
		default:
			err = fmt.Errorf("unknown report format %q", format)
		}
		if err != nil {
			return fmt.Errorf("failed to write %s report: %w", format, err)
		}
		w.logger.Info().Str("format", format).Msg("report written")
	}

	return nil
}

type jsonReport struct {
	Report *models.RunReport    `json:"report"`
	Points []models.PointRecord `json:"points"`
}

func (w *Writer) writeJSON(path string, points []models.PointRecord, rep *models.RunReport) error {
	data, err := json.MarshalIndent(jsonReport{Report: rep, Points: points}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func (w *Writer) writeCSV(path string, points []models.PointRecord) error {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	defer fh.Close()

	cw := csv.NewWriter(fh)
	header := []string{"id", "lat", "lon", "timestamp", "label", "place", "size_bytes", "md5", "sha1", "sha256"}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, p := range points {
		ts := ""
		if p.HasTimestamp() {
			ts = p.Timestamp.UTC().Format(time.RFC3339)
		}
		row := []string{
			p.ID,
			strconv.FormatFloat(p.Lat, 'f', -1, 64),
			strconv.FormatFloat(p.Lon, 'f', -1, 64),
			ts,
			p.Label,
			p.Place,
			strconv.FormatInt(p.SizeBytes, 10),
			p.MD5Hash,
			p.SHA1Hash,
			p.SHA256Hash,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func (w *Writer) writeTXT(path string, points []models.PointRecord, rep *models.RunReport) error {
	var b strings.Builder
	rule := strings.Repeat("=", 50)

	fmt.Fprintf(&b, "%s\nRUN %s\n%s\n", rule, rep.RunID, rule)
	fmt.Fprintf(&b, "Source: %s\n", rep.Source)
	fmt.Fprintf(&b, "Files scanned: %d\n", rep.FilesScanned)
	fmt.Fprintf(&b, "Points ingested: %d\n", rep.PointsIngested)
	fmt.Fprintf(&b, "Points rejected: %d\n", rep.PointsRejected)
	fmt.Fprintf(&b, "Route segments: %d\n", rep.RouteSegments)
	fmt.Fprintf(&b, "Thumbnails embedded: %d, failed: %d\n\n", rep.ThumbnailsEmbedded, rep.ThumbnailsFailed)

	for _, p := range points {
		fmt.Fprintf(&b, "%s\nFILE: %s\n%s\n", rule, p.Label, rule)
		fmt.Fprintf(&b, "Coordinates: %f, %f\n", p.Lat, p.Lon)
		if p.HasTimestamp() {
			fmt.Fprintf(&b, "Timestamp: %s\n", p.Timestamp.UTC().Format(time.RFC3339))
		}
		if p.Place != "" {
			fmt.Fprintf(&b, "Place: %s\n", p.Place)
		}
		fmt.Fprintf(&b, "MD5: %s\nSHA1: %s\nSHA256: %s\n\n", p.MD5Hash, p.SHA1Hash, p.SHA256Hash)
	}

	if len(rep.Failures) > 0 {
		fmt.Fprintf(&b, "%s\nFAILURES\n%s\n", rule, rule)
		for _, f := range rep.Failures {
			fmt.Fprintf(&b, "[%s] %s: %s\n", f.Stage, f.RecordID, f.Reason)
		}
	}

	return os.WriteFile(path, []byte(b.String()), 0o644)
}
