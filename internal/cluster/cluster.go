// Package cluster groups geotagged points by proximity into a hierarchy
// usable at multiple zoom levels.
package cluster

import (
	"sort"

	"github.com/jengzang/photomap-go/internal/models"
	"github.com/jengzang/photomap-go/internal/spatial"
	"github.com/jengzang/photomap-go/internal/store"
)

// ValidateLevels checks the configured distance thresholds. It fails with a
// ConfigError when levels is empty or not strictly increasing.
func ValidateLevels(levels []float64) error {
	if len(levels) == 0 {
		return &models.ConfigError{Field: "levels", Reason: "no distance thresholds configured"}
	}
	for i, lvl := range levels {
		if lvl <= 0 {
			return &models.ConfigError{Field: "levels", Reason: "thresholds must be positive"}
		}
		if i > 0 && lvl <= levels[i-1] {
			return &models.ConfigError{Field: "levels", Reason: "thresholds must be strictly increasing"}
		}
	}
	return nil
}

// Build performs proximity grouping at every configured level and returns
// the hierarchy coarsest level first. levels are distance thresholds in
// meters, strictly increasing. Every point ends up in exactly one cluster
// per level; assignments are deterministic for identical input order.
func Build(st *store.Store, levels []float64) (models.Hierarchy, error) {
	if err := ValidateLevels(levels); err != nil {
		return nil, err
	}

	ordered := sweepOrder(st)

	hierarchy := make(models.Hierarchy, 0, len(levels))
	for i := len(levels) - 1; i >= 0; i-- {
		hierarchy = append(hierarchy, models.ClusterLevel{
			Level:     i,
			Threshold: levels[i],
			Clusters:  buildLevel(ordered, i, levels[i]),
		})
	}

	return hierarchy, nil
}

// sweepPoint pairs a record with its position on the space-filling curve.
type sweepPoint struct {
	rec models.PointRecord
	key uint64
	ord int // ingestion order, secondary sort key
}

// sweepOrder sorts the store's points by their S2 Hilbert curve key so the
// greedy sweep visits geographically close points consecutively. Ingestion
// order breaks key ties to keep runs reproducible.
func sweepOrder(st *store.Store) []sweepPoint {
	pts := make([]sweepPoint, 0, st.Len())
	for rec := range st.All() {
		pts = append(pts, sweepPoint{
			rec: rec,
			key: spatial.CurveKey(rec.Lat, rec.Lon),
			ord: len(pts),
		})
	}

	sort.Slice(pts, func(i, j int) bool {
		if pts[i].key != pts[j].key {
			return pts[i].key < pts[j].key
		}
		return pts[i].ord < pts[j].ord
	})

	return pts
}

// running accumulates a cluster's members and mean centroid during a sweep.
type running struct {
	sumLat, sumLon float64
	members        []models.PointRecord
}

func (r *running) centroid() spatial.Point {
	n := float64(len(r.members))
	return spatial.Point{Lat: r.sumLat / n, Lon: r.sumLon / n}
}

// buildLevel runs the greedy single-pass assignment at one distance
// threshold. Each point joins the nearest existing cluster whose centroid
// lies within the threshold, or founds a new cluster when none qualifies.
// Clusters are never merged once created within the same pass; this bounded
// non-optimality is acceptable for a visualization aid.
func buildLevel(ordered []sweepPoint, level int, threshold float64) []models.Cluster {
	var clusters []running

	for _, sp := range ordered {
		best := -1
		bestDist := threshold
		for ci := range clusters {
			c := clusters[ci].centroid()
			d := spatial.HaversineDistance(sp.rec.Lat, sp.rec.Lon, c.Lat, c.Lon)
			// Strict < keeps the lowest creation order on exact ties
			if d <= threshold && (best == -1 || d < bestDist) {
				best = ci
				bestDist = d
			}
		}

		if best == -1 {
			clusters = append(clusters, running{
				sumLat:  sp.rec.Lat,
				sumLon:  sp.rec.Lon,
				members: []models.PointRecord{sp.rec},
			})
			continue
		}

		clusters[best].sumLat += sp.rec.Lat
		clusters[best].sumLon += sp.rec.Lon
		clusters[best].members = append(clusters[best].members, sp.rec)
	}

	precision := spatial.GeohashPrecisionForDistance(threshold)

	out := make([]models.Cluster, len(clusters))
	for ci, c := range clusters {
		memberPts := make([]spatial.Point, len(c.members))
		memberIDs := make([]string, len(c.members))
		for mi, m := range c.members {
			memberPts[mi] = spatial.Point{Lat: m.Lat, Lon: m.Lon}
			memberIDs[mi] = m.ID
		}

		// The final centroid is the plain mean of all members, which the
		// running sums converge to once assignment is done.
		centroid := spatial.Centroid(memberPts)

		out[ci] = models.Cluster{
			ID:          ci,
			Level:       level,
			CentroidLat: centroid.Lat,
			CentroidLon: centroid.Lon,
			Members:     memberIDs,
			RadiusHint:  spatial.RadiusOfGyration(centroid, memberPts),
			Geohash:     spatial.EncodeGeohash(centroid.Lat, centroid.Lon, precision),
		}
	}

	return out
}
