package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jengzang/photomap-go/internal/models"
)

func fptr(v float64) *float64 {
	return &v
}

func validRaw(id string) models.RawRecord {
	return models.RawRecord{
		ID:    id,
		Lat:   fptr(44.4268),
		Lon:   fptr(26.1025),
		Label: id + ".jpg",
	}
}

func TestAddValidRecord(t *testing.T) {
	s := New()

	err := s.Add(validRaw("a"))
	require.NoError(t, err)
	assert.Equal(t, 1, s.Len())

	rec, ok := s.Get("a")
	require.True(t, ok)
	assert.Equal(t, 44.4268, rec.Lat)
	assert.Equal(t, "a.jpg", rec.Label)
}

func TestAddRejectsMissingCoordinates(t *testing.T) {
	s := New()

	raw := models.RawRecord{ID: "no-gps", Lon: fptr(26.1)}
	err := s.Add(raw)

	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "no-gps", verr.RecordID)
	assert.Equal(t, 0, s.Len())
}

func TestAddRejectsOutOfRange(t *testing.T) {
	cases := []struct {
		name string
		lat  float64
		lon  float64
	}{
		{"latitude too high", 90.5, 0},
		{"latitude too low", -91, 0},
		{"longitude too high", 0, 180.5},
		{"longitude too low", 0, -181},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := New()
			err := s.Add(models.RawRecord{ID: "x", Lat: fptr(tc.lat), Lon: fptr(tc.lon)})

			var verr *models.ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}
}

func TestAddRejectsDuplicateID(t *testing.T) {
	s := New()
	require.NoError(t, s.Add(validRaw("a")))

	err := s.Add(validRaw("a"))

	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "duplicate id", verr.Reason)
	assert.Equal(t, 1, s.Len())
}

func TestIngestCollectsRejections(t *testing.T) {
	rep := &models.RunReport{}
	raws := []models.RawRecord{
		validRaw("a"),
		{ID: "no-coords"},
		validRaw("b"),
	}

	s := Ingest(raws, rep)

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 2, rep.PointsIngested)
	assert.Equal(t, 1, rep.PointsRejected)

	failures := rep.FailuresAt(models.StageIngest)
	require.Len(t, failures, 1)
	assert.Equal(t, "no-coords", failures[0].RecordID)
}

func TestAllIsRestartableAndOrdered(t *testing.T) {
	rep := &models.RunReport{}
	s := Ingest([]models.RawRecord{validRaw("a"), validRaw("b"), validRaw("c")}, rep)

	var first, second []string
	for rec := range s.All() {
		first = append(first, rec.ID)
	}
	for rec := range s.All() {
		second = append(second, rec.ID)
	}

	assert.Equal(t, []string{"a", "b", "c"}, first)
	assert.Equal(t, first, second)
}

func TestAnnotate(t *testing.T) {
	s := New()
	require.NoError(t, s.Add(validRaw("a")))

	assert.True(t, s.Annotate("a", "Bucharest, Romania"))
	assert.False(t, s.Annotate("missing", "Nowhere"))

	rec, _ := s.Get("a")
	assert.Equal(t, "Bucharest, Romania", rec.Place)
}

func TestTimestampCarriedThrough(t *testing.T) {
	s := New()
	ts := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	raw := validRaw("a")
	raw.Timestamp = &ts

	require.NoError(t, s.Add(raw))

	rec, _ := s.Get("a")
	require.True(t, rec.HasTimestamp())
	assert.Equal(t, ts, *rec.Timestamp)
}
