package geo

// Point represents a geographic coordinate
type Point struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// GeoUtils interface defines geographic calculation utilities
type GeoUtils interface {
	// Calculate great-circle distance between two points in meters
	PointToPoint(p1, p2 Point) (float64, error)

	// Calculate initial compass bearing from one point to another, degrees [0, 360)
	Bearing(from, to Point) float64

	// Project a point along a great-circle bearing for a distance in kilometers
	Destination(origin Point, bearingDeg, distanceKm float64) Point

	// Decode Google polyline string to point sequence
	DecodePolyline(encoded string) ([]Point, error)

	// Calculate distance between coordinate pairs (convenience method)
	DistanceFromCoords(lat1, lon1, lat2, lon2 float64) (float64, error)
}

// NewGeoUtils is implemented in geo.go
