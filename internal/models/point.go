package models

import "time"

// RawRecord is a record as handed over by the metadata extractor, field
// presence exactly as extracted. Lat/Lon/Timestamp are nil when the source
// file carried no such metadata; no defaults are assumed.
type RawRecord struct {
	ID         string     `json:"id"`
	Lat        *float64   `json:"lat,omitempty"`
	Lon        *float64   `json:"lon,omitempty"`
	Timestamp  *time.Time `json:"timestamp,omitempty"`
	SourcePath string     `json:"source_path,omitempty"`
	Label      string     `json:"label,omitempty"`

	// File identification (forensic fields carried through to reports)
	SizeBytes  int64  `json:"size_bytes,omitempty"`
	MD5Hash    string `json:"md5_hash,omitempty"`
	SHA1Hash   string `json:"sha1_hash,omitempty"`
	SHA256Hash string `json:"sha256_hash,omitempty"`
}

// PointRecord is a validated, geolocatable record. Instances are constructed
// only through the store's ingestion path, so downstream components always
// see in-range coordinates and a unique id.
type PointRecord struct {
	ID        string     `json:"id" db:"id"`
	Lat       float64    `json:"lat" db:"lat"`
	Lon       float64    `json:"lon" db:"lon"`
	Timestamp *time.Time `json:"timestamp,omitempty" db:"timestamp"`
	Label     string     `json:"label" db:"label"`

	// ThumbnailRef points at the source image used for thumbnail
	// preparation. Empty when the record has no associated image.
	ThumbnailRef string `json:"thumbnail_ref,omitempty" db:"thumbnail_ref"`

	// Place is an optional reverse-geocoded place name (city, country)
	// used in marker popups when present.
	Place string `json:"place,omitempty" db:"place"`

	// File identification
	SizeBytes  int64  `json:"size_bytes,omitempty" db:"size_bytes"`
	MD5Hash    string `json:"md5_hash,omitempty" db:"md5_hash"`
	SHA1Hash   string `json:"sha1_hash,omitempty" db:"sha1_hash"`
	SHA256Hash string `json:"sha256_hash,omitempty" db:"sha256_hash"`
}

// HasTimestamp reports whether the record can participate in route
// construction. Ordering is undefined without a time axis.
func (p *PointRecord) HasTimestamp() bool {
	return p.Timestamp != nil && !p.Timestamp.IsZero()
}
