package routing

import (
	"github.com/dpup/geofence.ersn.net/server/internal/lib/geo"
)

// DefaultConnectionThresholdMeters is the endpoint distance below which two
// route segments are treated as one continuous path.
const DefaultConnectionThresholdMeters = 1.0

// Consolidator interface defines route segment consolidation
type Consolidator interface {
	// Merge ordered route segments into maximal continuous paths. Segments
	// whose endpoints are within connectionThresholdMeters of the previous
	// segment's end are chained together; the shared vertex is kept once.
	Consolidate(routes [][]geo.Point, connectionThresholdMeters float64) [][]geo.Point
}

// NewConsolidator is implemented in consolidator.go
