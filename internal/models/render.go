package models

// RenderModel is the merged structure consumed solely by the renderer.
// It is built fresh per render call and never mutated afterwards; all
// ordering is point-id/timestamp derived so identical inputs always
// produce an identical model.
type RenderModel struct {
	Points   []RenderPoint `json:"points"`
	Clusters []RenderLevel `json:"clusters"`
	Routes   []RenderRoute `json:"routes"`

	// Viewport hints
	CenterLat float64 `json:"center_lat"`
	CenterLon float64 `json:"center_lon"`
}

// RenderPoint is one marker on the map.
type RenderPoint struct {
	ID    string  `json:"id"`
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
	Label string  `json:"label"`
	Place string  `json:"place,omitempty"`
	Time  string  `json:"time,omitempty"` // RFC 3339, empty when untimestamped
	MD5   string  `json:"md5,omitempty"`

	// Thumbnail is a base64 data URI embedded directly in the document,
	// empty when preparation failed or no source image exists (the
	// marker then falls back to its label).
	Thumbnail string `json:"thumbnail,omitempty"`
}

// RenderLevel is one switchable cluster overlay.
type RenderLevel struct {
	Name      string          `json:"name"` // e.g. "Clusters ≤ 1 km"
	Threshold float64         `json:"threshold_m"`
	Clusters  []RenderCluster `json:"clusters"`
}

// RenderCluster is one cluster circle within an overlay.
type RenderCluster struct {
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Count   int     `json:"count"`
	RadiusM float64 `json:"radius_m"`
	Label   string  `json:"label,omitempty"`
}

// RenderRoute is one polyline drawn in temporal order.
type RenderRoute struct {
	// Coords is a sequence of [lat, lon] pairs
	Coords [][2]float64 `json:"coords"`
	Broken bool         `json:"broken"` // preceded by an unknown interval
}
