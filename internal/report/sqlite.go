package report

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/jengzang/photomap-go/internal/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id TEXT PRIMARY KEY,
	source TEXT NOT NULL,
	created_at TEXT NOT NULL,
	files_scanned INTEGER NOT NULL,
	points_ingested INTEGER NOT NULL,
	points_rejected INTEGER NOT NULL,
	route_segments INTEGER NOT NULL,
	thumbnails_embedded INTEGER NOT NULL,
	thumbnails_failed INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS points (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id TEXT NOT NULL REFERENCES runs(run_id),
	point_id TEXT NOT NULL,
	lat REAL NOT NULL,
	lon REAL NOT NULL,
	timestamp TEXT,
	label TEXT NOT NULL,
	place TEXT,
	size_bytes INTEGER,
	md5 TEXT,
	sha1 TEXT,
	sha256 TEXT
);

CREATE TABLE IF NOT EXISTS failures (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id TEXT NOT NULL REFERENCES runs(run_id),
	record_id TEXT NOT NULL,
	stage TEXT NOT NULL,
	reason TEXT NOT NULL
);
`

// WriteSQLite appends one run and its points and failures to the report
// database, creating it when absent. The connection is scoped to the call:
// the pipeline holds no long-lived external resources.
func WriteSQLite(path string, points []models.PointRecord, rep *models.RunReport) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return transaction(db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(
			`INSERT INTO runs (run_id, source, created_at, files_scanned, points_ingested,
				points_rejected, route_segments, thumbnails_embedded, thumbnails_failed)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			rep.RunID, rep.Source, rep.CreatedAt.UTC().Format(time.RFC3339),
			rep.FilesScanned, rep.PointsIngested, rep.PointsRejected,
			rep.RouteSegments, rep.ThumbnailsEmbedded, rep.ThumbnailsFailed,
		); err != nil {
			return fmt.Errorf("failed to insert run: %w", err)
		}

		for _, p := range points {
			var ts any
			if p.HasTimestamp() {
				ts = p.Timestamp.UTC().Format(time.RFC3339)
			}
			if _, err := tx.Exec(
				`INSERT INTO points (run_id, point_id, lat, lon, timestamp, label, place,
					size_bytes, md5, sha1, sha256)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				rep.RunID, p.ID, p.Lat, p.Lon, ts, p.Label, p.Place,
				p.SizeBytes, p.MD5Hash, p.SHA1Hash, p.SHA256Hash,
			); err != nil {
				return fmt.Errorf("failed to insert point %s: %w", p.ID, err)
			}
		}

		for _, f := range rep.Failures {
			if _, err := tx.Exec(
				`INSERT INTO failures (run_id, record_id, stage, reason) VALUES (?, ?, ?, ?)`,
				rep.RunID, f.RecordID, f.Stage, f.Reason,
			); err != nil {
				return fmt.Errorf("failed to insert failure for %s: %w", f.RecordID, err)
			}
		}

		return nil
	})
}

// transaction executes a function within a database transaction
func transaction(db *sql.DB, fn func(*sql.Tx) error) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("transaction error: %v, rollback error: %w", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
