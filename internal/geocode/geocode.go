// Package geocode optionally enriches points with reverse-geocoded place
// names for marker popups. Enrichment is best-effort: failures are per
// point and never block the pipeline.
package geocode

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/jengzang/photomap-go/internal/models"
	"github.com/jengzang/photomap-go/internal/store"
)

// Provider resolves a coordinate to a human-readable place name. An empty
// result with a nil error means the provider has nothing to say about the
// location.
type Provider interface {
	ReverseGeocode(ctx context.Context, lat, lon float64) (string, error)
}

// NopProvider is the default provider; it never resolves anything.
type NopProvider struct{}

// ReverseGeocode always returns an empty place name.
func (NopProvider) ReverseGeocode(ctx context.Context, lat, lon float64) (string, error) {
	return "", nil
}

// Annotate resolves a place name for every point in the store. Failures are
// logged and collected into the report as geocode failures; the point keeps
// its plain label.
func Annotate(ctx context.Context, logger zerolog.Logger, provider Provider, st *store.Store, report *models.RunReport) {
	switch provider.(type) {
	case nil, NopProvider, *NopProvider:
		return
	}

	for rec := range st.All() {
		place, err := provider.ReverseGeocode(ctx, rec.Lat, rec.Lon)
		if err != nil {
			logger.Warn().Str("point", rec.ID).Err(err).Msg("reverse geocoding failed")
			report.AddFailure(rec.ID, models.StageGeocode, err.Error())
			continue
		}
		if place != "" {
			st.Annotate(rec.ID, place)
		}
	}
}
