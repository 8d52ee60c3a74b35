package routing

import (
	"github.com/dpup/geofence.ersn.net/server/internal/lib/geo"
)

// consolidator implements the Consolidator interface
type consolidator struct {
	geoUtils geo.GeoUtils
}

// NewConsolidator creates a new Consolidator implementation
func NewConsolidator() Consolidator {
	return &consolidator{
		geoUtils: geo.NewGeoUtils(),
	}
}

// Consolidate processes routes left to right in a single pass, accumulating a
// current path and appending each subsequent route whose first point sits
// within the connection threshold of the current path's last point. The
// shared endpoint is dropped from the appended route so chained segments do
// not produce a duplicate vertex. Output paths are fresh slices; input routes
// are never aliased or mutated.
func (c *consolidator) Consolidate(routes [][]geo.Point, connectionThresholdMeters float64) [][]geo.Point {
	if connectionThresholdMeters <= 0 {
		connectionThresholdMeters = DefaultConnectionThresholdMeters
	}

	consolidated := make([][]geo.Point, 0, len(routes))
	var current []geo.Point

	for _, route := range routes {
		if len(route) == 0 {
			continue
		}

		if current == nil {
			current = appendPoints(nil, route)
			continue
		}

		if c.connects(current[len(current)-1], route[0], connectionThresholdMeters) {
			// Continuous with the accumulating path; skip the coincident
			// first point of the new route.
			current = appendPoints(current, route[1:])
			continue
		}

		consolidated = append(consolidated, current)
		current = appendPoints(nil, route)
	}

	if current != nil {
		consolidated = append(consolidated, current)
	}

	return consolidated
}

// connects reports whether two endpoints are within the connection threshold.
// Points with out-of-range coordinates never connect; the malformed route is
// emitted as its own path rather than aborting the pass.
func (c *consolidator) connects(last, first geo.Point, thresholdMeters float64) bool {
	distance, err := c.geoUtils.PointToPoint(last, first)
	if err != nil {
		return false
	}
	return distance < thresholdMeters
}

// appendPoints copies points onto dst, always returning a freshly grown slice
func appendPoints(dst []geo.Point, points []geo.Point) []geo.Point {
	out := make([]geo.Point, 0, len(dst)+len(points))
	out = append(out, dst...)
	out = append(out, points...)
	return out
}
