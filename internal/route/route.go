// Package route orders timestamped points into path segments, breaking at
// temporal gaps rather than inventing movement across unknown intervals.
package route

import (
	"sort"
	"time"

	"github.com/jengzang/photomap-go/internal/models"
	"github.com/jengzang/photomap-go/internal/spatial"
	"github.com/jengzang/photomap-go/internal/store"
)

// Build orders the store's timestamped points ascending by timestamp and
// partitions them into segments at every adjacent pair whose time delta
// exceeds maxGap. Records with no timestamp are excluded entirely: ordering
// is undefined without a time axis (they still appear as plain markers).
// Segments with fewer than 2 points are dropped, there is nothing to
// connect. Pure function of store state and maxGap.
func Build(st *store.Store, maxGap time.Duration) []models.RouteSegment {
	var pts []models.PointRecord
	for rec := range st.All() {
		if rec.HasTimestamp() {
			pts = append(pts, rec)
		}
	}

	// Stable: ties preserve ingestion order, true ordering is unknowable
	sort.SliceStable(pts, func(i, j int) bool {
		return pts[i].Timestamp.Before(*pts[j].Timestamp)
	})

	var segments []models.RouteSegment
	var current []models.PointRecord
	brokeBefore := false

	flush := func(nextBroken bool) {
		if len(current) >= 2 {
			segments = append(segments, buildSegment(current, brokeBefore))
		}
		current = nil
		brokeBefore = nextBroken
	}

	for _, p := range pts {
		if len(current) > 0 {
			prev := current[len(current)-1]
			if p.Timestamp.Sub(*prev.Timestamp) > maxGap {
				flush(true)
			}
		}
		current = append(current, p)
	}
	flush(false)

	return segments
}

func buildSegment(pts []models.PointRecord, breakBefore bool) models.RouteSegment {
	ids := make([]string, len(pts))
	path := make([]spatial.Point, len(pts))
	for i, p := range pts {
		ids[i] = p.ID
		path[i] = spatial.Point{Lat: p.Lat, Lon: p.Lon}
	}

	return models.RouteSegment{
		Points:         ids,
		BreakBefore:    breakBefore,
		StartTime:      *pts[0].Timestamp,
		EndTime:        *pts[len(pts)-1].Timestamp,
		DistanceMeters: spatial.PathLength(path),
	}
}
