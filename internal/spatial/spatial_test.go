package spatial

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineDistanceKnownPairs(t *testing.T) {
	cases := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		expected               float64
		tolerance              float64
	}{
		{"same point", 44.4268, 26.1025, 44.4268, 26.1025, 0, 0.001},
		{"bucharest to ploiesti", 44.4268, 26.1025, 44.9416, 26.0231, 57500, 1000},
		{"paris to london", 48.8566, 2.3522, 51.5074, -0.1278, 343500, 2000},
		{"antipodal-ish equator", 0, 0, 0, 180, 20015000, 10000},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := HaversineDistance(tc.lat1, tc.lon1, tc.lat2, tc.lon2)
			assert.InDelta(t, tc.expected, d, tc.tolerance)
		})
	}
}

func TestHaversineDistanceSymmetric(t *testing.T) {
	d1 := HaversineDistance(44.4268, 26.1025, 45.7489, 21.2087)
	d2 := HaversineDistance(45.7489, 21.2087, 44.4268, 26.1025)
	assert.InDelta(t, d1, d2, 0.0001)
}

func TestCentroid(t *testing.T) {
	pts := []Point{
		{Lat: 44.0, Lon: 26.0},
		{Lat: 46.0, Lon: 28.0},
	}
	c := Centroid(pts)
	assert.Equal(t, 45.0, c.Lat)
	assert.Equal(t, 27.0, c.Lon)

	assert.Equal(t, Point{}, Centroid(nil))
}

func TestRadiusOfGyration(t *testing.T) {
	center := Point{Lat: 44.4268, Lon: 26.1025}

	assert.Zero(t, RadiusOfGyration(center, nil))
	assert.Zero(t, RadiusOfGyration(center, []Point{center}))

	spread := []Point{
		{Lat: 44.4268, Lon: 26.1025},
		{Lat: 44.4368, Lon: 26.1125},
	}
	r := RadiusOfGyration(center, spread)
	assert.Greater(t, r, 0.0)
	assert.Less(t, r, 2000.0)
}

func TestBoundingBox(t *testing.T) {
	pts := []Point{
		{Lat: 44.0, Lon: 26.5},
		{Lat: 45.5, Lon: 25.0},
		{Lat: 44.8, Lon: 27.0},
	}
	minLat, minLon, maxLat, maxLon := BoundingBox(pts)
	assert.Equal(t, 44.0, minLat)
	assert.Equal(t, 25.0, minLon)
	assert.Equal(t, 45.5, maxLat)
	assert.Equal(t, 27.0, maxLon)
}

func TestPathLength(t *testing.T) {
	assert.Zero(t, PathLength(nil))
	assert.Zero(t, PathLength([]Point{{Lat: 44, Lon: 26}}))

	a := Point{Lat: 44.4268, Lon: 26.1025}
	b := Point{Lat: 44.9416, Lon: 26.0231}
	c := Point{Lat: 45.7489, Lon: 21.2087}

	direct := HaversineDistance(a.Lat, a.Lon, c.Lat, c.Lon)
	via := PathLength([]Point{a, b, c})
	assert.GreaterOrEqual(t, via, direct)
	assert.InDelta(t, HaversineDistance(a.Lat, a.Lon, b.Lat, b.Lon)+
		HaversineDistance(b.Lat, b.Lon, c.Lat, c.Lon), via, 0.001)
}

func TestCurveKeyDeterministic(t *testing.T) {
	k1 := CurveKey(44.4268, 26.1025)
	k2 := CurveKey(44.4268, 26.1025)
	assert.Equal(t, k1, k2)
	assert.NotZero(t, k1)
	assert.NotEqual(t, k1, CurveKey(45.7489, 21.2087))
}

func TestCurveKeyLocality(t *testing.T) {
	// Points meters apart should sort closer than points across the country.
	base := CurveKey(44.4268, 26.1025)
	near := CurveKey(44.4269, 26.1026)
	far := CurveKey(45.7489, 21.2087)

	diff := func(a, b uint64) uint64 {
		if a > b {
			return a - b
		}
		return b - a
	}
	assert.Less(t, diff(base, near), diff(base, far))
}

func TestEncodeGeohashKnownValue(t *testing.T) {
	// Classic test vector for geohash encoding.
	assert.Equal(t, "u4pruydqqvj", EncodeGeohash(57.64911, 10.40744, 11))
	assert.Equal(t, "u4pru", EncodeGeohash(57.64911, 10.40744, 5))
}

func TestEncodeGeohashClampsPrecision(t *testing.T) {
	assert.Len(t, EncodeGeohash(44.4, 26.1, 0), 1)
	assert.Len(t, EncodeGeohash(44.4, 26.1, 20), 12)
}

func TestGeohashPrecisionForDistance(t *testing.T) {
	assert.Equal(t, 6, GeohashPrecisionForDistance(1000))
	assert.Equal(t, 8, GeohashPrecisionForDistance(100))
	assert.Equal(t, 4, GeohashPrecisionForDistance(20000))
	assert.Equal(t, 1, GeohashPrecisionForDistance(10000000))
	assert.Equal(t, 12, GeohashPrecisionForDistance(0.001))
}
