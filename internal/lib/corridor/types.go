package corridor

import (
	"errors"

	"github.com/dpup/geofence.ersn.net/server/internal/config"
	"github.com/dpup/geofence.ersn.net/server/internal/lib/geo"
)

// FeatureKind tags every corridor feature in serialized output
const FeatureKind = "geofence_corridor"

// DefaultMiterLimit caps the miter extension factor at sharp turns
const DefaultMiterLimit = 3.0

var (
	// ErrInsufficientPoints is returned when a path has fewer than 2 points;
	// no direction, and therefore no corridor, is defined for it
	ErrInsufficientPoints = errors.New("path must have at least 2 points to build a corridor")

	// ErrInvalidWidth is returned for a non-positive corridor width
	ErrInvalidWidth = errors.New("corridor width must be positive")
)

// Polygon is a closed corridor ring: the first point equals the last
type Polygon []geo.Point

// Closed reports whether the ring has enough points and is explicitly closed
func (p Polygon) Closed() bool {
	return len(p) >= 4 && p[0] == p[len(p)-1]
}

// Feature is a corridor polygon with its collection metadata
type Feature struct {
	Ring       Polygon `json:"ring"`
	RouteIndex int     `json:"route_index"`
	BufferKm   float64 `json:"buffer_distance_km"`
}

// Collection is an ordered set of corridor features, one per input path that
// produced a polygon
type Collection []Feature

// Builder interface defines corridor polygon construction for a single path
type Builder interface {
	// Build a flat-capped, miter-joined buffer polygon of the given width (in
	// kilometers) around the path. miterLimit caps the corner extension
	// factor; values below 1 are coerced to 1.
	BuildCorridor(path []geo.Point, widthKm, miterLimit float64) (Polygon, error)
}

// Generator interface defines the full corridor generation pipeline
type Generator interface {
	// Consolidate routes, simplify each continuous path, and buffer each
	// surviving path into a corridor feature. Paths that degenerate below 2
	// points are skipped; only a non-positive width fails the whole call.
	Generate(routes [][]geo.Point, widthKm float64, opts config.Options) (Collection, error)
}

// NewBuilder is implemented in builder.go; NewGenerator in generator.go
