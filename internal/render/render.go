// Package render composes clusters, route lines and thumbnail-annotated
// markers into one self-contained interactive document.
package render

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"html/template"
	"time"

	"github.com/jengzang/photomap-go/internal/models"
	"github.com/jengzang/photomap-go/internal/spatial"
	"github.com/jengzang/photomap-go/internal/store"
)

//go:embed map.html
var mapHTML string

var mapTemplate = template.Must(template.New("map").Parse(mapHTML))

// BuildModel merges the three derived outputs and the store into the
// structure the template consumes. The model is built fresh per call and
// ordered by ingestion/timestamp, never by completion order, so identical
// inputs always produce an identical model.
func BuildModel(st *store.Store, hierarchy models.Hierarchy, routes []models.RouteSegment, thumbs map[string]string) models.RenderModel {
	model := models.RenderModel{
		Points:   []models.RenderPoint{},
		Clusters: []models.RenderLevel{},
		Routes:   []models.RenderRoute{},
	}

	var bbox []spatial.Point
	for rec := range st.All() {
		rp := models.RenderPoint{
			ID:        rec.ID,
			Lat:       rec.Lat,
			Lon:       rec.Lon,
			Label:     rec.Label,
			Place:     rec.Place,
			MD5:       rec.MD5Hash,
			Thumbnail: thumbs[rec.ID],
		}
		if rec.HasTimestamp() {
			rp.Time = rec.Timestamp.UTC().Format(time.RFC3339)
		}
		model.Points = append(model.Points, rp)
		bbox = append(bbox, spatial.Point{Lat: rec.Lat, Lon: rec.Lon})
	}

	if len(bbox) > 0 {
		minLat, minLon, maxLat, maxLon := spatial.BoundingBox(bbox)
		model.CenterLat = (minLat + maxLat) / 2
		model.CenterLon = (minLon + maxLon) / 2
	}

	for _, lvl := range hierarchy {
		rl := models.RenderLevel{
			Name:      fmt.Sprintf("Clusters ≤ %s", formatDistance(lvl.Threshold)),
			Threshold: lvl.Threshold,
			Clusters:  make([]models.RenderCluster, len(lvl.Clusters)),
		}
		for i, c := range lvl.Clusters {
			rl.Clusters[i] = models.RenderCluster{
				Lat:     c.CentroidLat,
				Lon:     c.CentroidLon,
				Count:   len(c.Members),
				RadiusM: clusterRadius(c, lvl.Threshold),
				Label:   c.Geohash,
			}
		}
		model.Clusters = append(model.Clusters, rl)
	}

	for _, seg := range routes {
		rr := models.RenderRoute{Broken: seg.BreakBefore}
		for _, id := range seg.Points {
			rec, ok := st.Get(id)
			if !ok {
				continue
			}
			rr.Coords = append(rr.Coords, [2]float64{rec.Lat, rec.Lon})
		}
		model.Routes = append(model.Routes, rr)
	}

	return model
}

// Render emits the interactive document for a model. Zero clusters, routes
// or thumbnails are all valid inputs; the artifact is immutable once
// produced and re-rendering identical inputs yields identical bytes.
func Render(model models.RenderModel) ([]byte, error) {
	payload, err := json.Marshal(model)
	if err != nil {
		return nil, fmt.Errorf("failed to encode render model: %w", err)
	}

	var buf bytes.Buffer
	data := struct {
		Title     string
		ModelJSON template.JS
	}{
		Title:     "photomap",
		ModelJSON: template.JS(payload),
	}
	if err := mapTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute map template: %w", err)
	}

	return buf.Bytes(), nil
}

// clusterRadius sizes a cluster circle. Singletons have zero dispersion, so
// they get a fixed fraction of the level threshold to stay visible.
func clusterRadius(c models.Cluster, threshold float64) float64 {
	if c.RadiusHint > 0 {
		return c.RadiusHint
	}
	return threshold / 10
}

func formatDistance(meters float64) string {
	if meters >= 1000 {
		return fmt.Sprintf("%g km", meters/1000)
	}
	return fmt.Sprintf("%g m", meters)
}
