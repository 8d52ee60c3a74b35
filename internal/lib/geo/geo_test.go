package geo

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeoUtils_PointToPoint(t *testing.T) {
	// Highway 4 test coordinates: Angels Camp to Murphys (real route)
	angelscamp := Point{Latitude: 38.0675, Longitude: -120.5436}
	murphys := Point{Latitude: 38.1391, Longitude: -120.4561}

	geoUtils := NewGeoUtils()

	// Test great-circle distance calculation
	distance, err := geoUtils.PointToPoint(angelscamp, murphys)
	require.NoError(t, err)

	// Expected distance ~11.0 km between Angels Camp and Murphys
	assert.InDelta(t, 11046, distance, 100, "Distance should be approximately 11.0km")

	// Symmetric
	reverse, err := geoUtils.PointToPoint(murphys, angelscamp)
	require.NoError(t, err)
	assert.InDelta(t, distance, reverse, 0.001, "Distance should be symmetric")

	// Zero for coincident points
	zero, err := geoUtils.PointToPoint(angelscamp, angelscamp)
	require.NoError(t, err)
	assert.Equal(t, 0.0, zero)

	// Test error cases
	invalidPoint := Point{Latitude: 200, Longitude: -300}
	_, err = geoUtils.PointToPoint(angelscamp, invalidPoint)
	assert.Error(t, err, "Should return error for invalid coordinates")
}

func TestGeoUtils_Bearing(t *testing.T) {
	geoUtils := NewGeoUtils()

	origin := Point{Latitude: 38.0, Longitude: -120.5}

	// Cardinal directions from a mid-latitude origin
	north := Point{Latitude: 38.1, Longitude: -120.5}
	assert.InDelta(t, 0.0, geoUtils.Bearing(origin, north), 0.01, "Due north should be bearing 0")

	south := Point{Latitude: 37.9, Longitude: -120.5}
	assert.InDelta(t, 180.0, geoUtils.Bearing(origin, south), 0.01, "Due south should be bearing 180")

	east := Point{Latitude: 38.0, Longitude: -120.4}
	assert.InDelta(t, 90.0, geoUtils.Bearing(origin, east), 0.1, "Due east should be near bearing 90")

	west := Point{Latitude: 38.0, Longitude: -120.6}
	assert.InDelta(t, 270.0, geoUtils.Bearing(origin, west), 0.1, "Due west should be near bearing 270")

	// Degenerate: coincident points yield a stable 0, never NaN
	assert.Equal(t, 0.0, geoUtils.Bearing(origin, origin))
}

func TestGeoUtils_Destination(t *testing.T) {
	geoUtils := NewGeoUtils()

	// Angels Camp, due north 1km: latitude increases ~0.009 degrees, longitude unchanged
	angelscamp := Point{Latitude: 38.0675, Longitude: -120.5436}
	dest := geoUtils.Destination(angelscamp, 0, 1.0)

	assert.InDelta(t, 38.0765, dest.Latitude, 0.0005)
	assert.InDelta(t, angelscamp.Longitude, dest.Longitude, 1e-9, "Due north travel should not change longitude")
}

func TestGeoUtils_BearingDestinationRoundTrip(t *testing.T) {
	geoUtils := NewGeoUtils()
	rng := rand.New(rand.NewSource(42))

	origin := Point{Latitude: 38.0675, Longitude: -120.5436}

	// Destination must be the algebraic inverse of bearing + haversine for
	// small distances: travel d along bearing b, then measure back.
	for i := 0; i < 100; i++ {
		bearing := rng.Float64() * 360
		distanceKm := rng.Float64()*49.9 + 0.1 // 0.1km to 50km

		dest := geoUtils.Destination(origin, bearing, distanceKm)

		measured, err := geoUtils.PointToPoint(origin, dest)
		require.NoError(t, err)
		assert.InDelta(t, distanceKm*1000, measured, 1.0,
			"Round-trip distance should match within 1 meter")

		measuredBearing := geoUtils.Bearing(origin, dest)
		diff := AngleDiff(bearing, measuredBearing)
		assert.InDelta(t, 0.0, diff, 0.01,
			"Round-trip bearing should match within 0.01 degrees")
	}
}

func TestGeoUtils_DecodePolyline(t *testing.T) {
	geoUtils := NewGeoUtils()

	// Google's documented example polyline
	points, err := geoUtils.DecodePolyline("_p~iF~ps|U_ulLnnqC_mqNvxq`@")
	require.NoError(t, err)
	require.Len(t, points, 3)

	assert.InDelta(t, 38.5, points[0].Latitude, 0.00001)
	assert.InDelta(t, -120.2, points[0].Longitude, 0.00001)
	assert.InDelta(t, 43.252, points[2].Latitude, 0.00001)
	assert.InDelta(t, -126.453, points[2].Longitude, 0.00001)

	// Empty input is an error
	_, err = geoUtils.DecodePolyline("")
	assert.Error(t, err)
}

func TestNormalizeBearing(t *testing.T) {
	assert.Equal(t, 0.0, NormalizeBearing(0))
	assert.Equal(t, 0.0, NormalizeBearing(360))
	assert.Equal(t, 350.0, NormalizeBearing(-10))
	assert.Equal(t, 10.0, NormalizeBearing(370))
	assert.Equal(t, 180.0, NormalizeBearing(-180))
}

func TestAngleDiff(t *testing.T) {
	assert.Equal(t, 0.0, AngleDiff(90, 90))
	assert.Equal(t, 90.0, AngleDiff(0, 90))
	assert.Equal(t, -90.0, AngleDiff(90, 0))
	assert.Equal(t, 180.0, AngleDiff(0, 180), "Exact reversal should normalize to +180")
	assert.Equal(t, -10.0, AngleDiff(5, 355), "Wraparound should take the short way")
	assert.Equal(t, 10.0, AngleDiff(355, 5))
}

func TestNewPoint(t *testing.T) {
	p, err := NewPoint(38.0675, -120.5436)
	require.NoError(t, err)
	assert.Equal(t, 38.0675, p.Latitude)

	_, err = NewPoint(91, 0)
	assert.Error(t, err, "Latitude beyond 90 should be rejected")

	_, err = NewPoint(0, 181)
	assert.Error(t, err, "Longitude beyond 180 should be rejected")
}
