package models

// Cluster represents a proximity group of points at one zoom tier.
type Cluster struct {
	ID    int `json:"id"`    // creation order within the level, 0-based
	Level int `json:"level"` // index into the configured level thresholds

	// Centroid is the running mean of member coordinates
	CentroidLat float64 `json:"centroid_lat"`
	CentroidLon float64 `json:"centroid_lon"`

	// Members holds point ids in assignment order
	Members []string `json:"members"`

	// RadiusHint is the dispersion of members around the centroid in
	// meters (radius of gyration), used to size the rendered circle.
	RadiusHint float64 `json:"radius_hint"`

	// Geohash is a human-readable cell label at a precision matched to
	// the level's distance threshold.
	Geohash string `json:"geohash,omitempty"`
}

// ClusterLevel holds all clusters produced at one distance threshold.
// Every point belongs to exactly one cluster per level.
type ClusterLevel struct {
	Level     int       `json:"level"`
	Threshold float64   `json:"threshold_m"` // meters
	Clusters  []Cluster `json:"clusters"`
}

// Hierarchy is the full clustering result, coarsest level first.
type Hierarchy []ClusterLevel

// TotalClusters returns the cluster count summed over all levels.
func (h Hierarchy) TotalClusters() int {
	n := 0
	for _, lvl := range h {
		n += len(lvl.Clusters)
	}
	return n
}
