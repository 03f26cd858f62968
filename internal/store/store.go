// Package store holds the validated in-memory collection of geotagged
// records. It is intentionally inert: its job is to guarantee every
// downstream component sees only well-formed, uniquely-identified,
// geolocatable points.
package store

import (
	"iter"

	"github.com/jengzang/photomap-go/internal/models"
)

// Store owns all PointRecords for the duration of a run. Downstream
// components read it and produce derived, independently-owned structures.
type Store struct {
	points []models.PointRecord
	index  map[string]int
}

// New creates an empty store.
func New() *Store {
	return &Store{
		index: make(map[string]int),
	}
}

// Ingest builds a store from raw extractor records. Malformed records are
// rejected with a ValidationError collected into the report; the run
// continues with the remaining records.
func Ingest(raws []models.RawRecord, report *models.RunReport) *Store {
	s := New()

	for _, raw := range raws {
		if err := s.Add(raw); err != nil {
			report.PointsRejected++
			report.AddFailure(raw.ID, models.StageIngest, err.Error())
			continue
		}
		report.PointsIngested++
	}

	return s
}

// Add validates a raw record and appends it to the store. It fails with a
// ValidationError if lat/lon is missing or out of range, or the id is
// empty or already present.
func (s *Store) Add(raw models.RawRecord) error {
	if raw.ID == "" {
		return &models.ValidationError{RecordID: raw.ID, Reason: "missing id"}
	}
	if _, exists := s.index[raw.ID]; exists {
		return &models.ValidationError{RecordID: raw.ID, Reason: "duplicate id"}
	}
	if raw.Lat == nil || raw.Lon == nil {
		return &models.ValidationError{RecordID: raw.ID, Reason: "missing coordinates"}
	}
	if *raw.Lat < -90 || *raw.Lat > 90 {
		return &models.ValidationError{RecordID: raw.ID, Reason: "latitude out of range"}
	}
	if *raw.Lon < -180 || *raw.Lon > 180 {
		return &models.ValidationError{RecordID: raw.ID, Reason: "longitude out of range"}
	}

	label := raw.Label
	if label == "" {
		label = raw.ID
	}

	s.index[raw.ID] = len(s.points)
	s.points = append(s.points, models.PointRecord{
		ID:           raw.ID,
		Lat:          *raw.Lat,
		Lon:          *raw.Lon,
		Timestamp:    raw.Timestamp,
		Label:        label,
		ThumbnailRef: raw.SourcePath,
		SizeBytes:    raw.SizeBytes,
		MD5Hash:      raw.MD5Hash,
		SHA1Hash:     raw.SHA1Hash,
		SHA256Hash:   raw.SHA256Hash,
	})

	return nil
}

// All produces the records in ingestion order. The sequence is finite and
// restartable: each range starts over from the first record.
func (s *Store) All() iter.Seq[models.PointRecord] {
	return func(yield func(models.PointRecord) bool) {
		for _, p := range s.points {
			if !yield(p) {
				return
			}
		}
	}
}

// Len returns the number of records in the store.
func (s *Store) Len() int {
	return len(s.points)
}

// Get returns the record with the given id.
func (s *Store) Get(id string) (models.PointRecord, bool) {
	i, ok := s.index[id]
	if !ok {
		return models.PointRecord{}, false
	}
	return s.points[i], true
}

// Annotate attaches a reverse-geocoded place name to a record. It reports
// whether the id was present.
func (s *Store) Annotate(id, place string) bool {
	i, ok := s.index[id]
	if !ok {
		return false
	}
	s.points[i].Place = place
	return true
}
