// Package simplify provides polyline simplification for corridor generation.
// The corridor builder only needs the contract here: an ordered point sequence
// in, a subsequence out, first and last point preserved, geometry approximated
// within a tolerance expressed in decimal degrees.
package simplify

import (
	"github.com/paulmach/orb"
	orbsimplify "github.com/paulmach/orb/simplify"

	"github.com/dpup/geofence.ersn.net/server/internal/lib/geo"
)

// DefaultTolerance approximates 5 meters in degree units at mid latitudes.
const DefaultTolerance = 0.00005

// Simplifier interface defines endpoint-preserving polyline simplification
type Simplifier interface {
	// Reduce a point sequence within toleranceDeg. The first and last points
	// are always preserved and the point count never increases.
	Simplify(points []geo.Point, toleranceDeg float64) []geo.Point
}

// douglasPeucker implements Simplifier on orb's Douglas-Peucker reducer
type douglasPeucker struct{}

// NewDouglasPeucker creates the default Simplifier implementation
func NewDouglasPeucker() Simplifier {
	return &douglasPeucker{}
}

// Simplify reduces the point sequence using Ramer-Douglas-Peucker. A
// non-positive tolerance or a sequence too short to reduce returns a copy of
// the input unchanged.
func (d *douglasPeucker) Simplify(points []geo.Point, toleranceDeg float64) []geo.Point {
	if toleranceDeg <= 0 || len(points) < 3 {
		return append([]geo.Point(nil), points...)
	}

	line := make(orb.LineString, len(points))
	for i, p := range points {
		line[i] = orb.Point{p.Longitude, p.Latitude}
	}

	reduced := orbsimplify.DouglasPeucker(toleranceDeg).LineString(line)

	out := make([]geo.Point, len(reduced))
	for i, p := range reduced {
		out[i] = geo.Point{Latitude: p.Lat(), Longitude: p.Lon()}
	}
	return out
}
