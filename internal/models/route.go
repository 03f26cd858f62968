package models

import "time"

// RouteSegment is a maximal run of timestamp-ordered points with no
// temporal gap exceeding the configured maximum between consecutive members.
type RouteSegment struct {
	// Points holds point ids in non-decreasing timestamp order
	Points []string `json:"points"`

	// BreakBefore is true when the segment starts after a gap larger
	// than the configured maximum, so no connector is drawn to the
	// previous segment.
	BreakBefore bool `json:"break_before"`

	// Temporal extent
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	// DistanceMeters is the summed haversine path length over members
	DistanceMeters float64 `json:"distance_meters"`
}

// DurationSeconds returns the temporal extent of the segment in seconds.
func (s *RouteSegment) DurationSeconds() int64 {
	return int64(s.EndTime.Sub(s.StartTime).Seconds())
}
