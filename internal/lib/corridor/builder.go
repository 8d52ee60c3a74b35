package corridor

import (
	"math"

	"github.com/dpup/geofence.ersn.net/server/internal/lib/geo"
)

// builder implements the Builder interface
type builder struct {
	geoUtils geo.GeoUtils
}

// NewBuilder creates a new Builder implementation
func NewBuilder() Builder {
	return &builder{
		geoUtils: geo.NewGeoUtils(),
	}
}

// BuildCorridor walks the path once, projecting a left and right offset point
// at each vertex, then assembles the ring as the left wall in path order
// followed by the right wall in reverse order, closed back on the first left
// point.
//
// Endpoints take the bearing of their single adjacent segment at exactly
// widthKm, which makes the end caps flat: the cap edge is perpendicular to
// the path's terminal direction with nothing extending past the endpoint.
// Interior vertices take the bisector of the incoming and outgoing bearings,
// extended by the miter factor so the two adjacent offset edges meet without
// a gap.
func (b *builder) BuildCorridor(path []geo.Point, widthKm, miterLimit float64) (Polygon, error) {
	if widthKm <= 0 {
		return nil, ErrInvalidWidth
	}
	if len(path) < 2 {
		return nil, ErrInsufficientPoints
	}
	if miterLimit < 1 {
		miterLimit = 1
	}

	n := len(path)
	leftSide := make([]geo.Point, n)
	rightSide := make([]geo.Point, n)

	for i := 0; i < n; i++ {
		var offsetBearing, offsetKm float64

		switch {
		case i == 0:
			offsetBearing = b.geoUtils.Bearing(path[0], path[1])
			offsetKm = widthKm
		case i == n-1:
			offsetBearing = b.geoUtils.Bearing(path[n-2], path[n-1])
			offsetKm = widthKm
		default:
			inBearing := b.geoUtils.Bearing(path[i-1], path[i])
			outBearing := b.geoUtils.Bearing(path[i], path[i+1])
			turn := geo.AngleDiff(inBearing, outBearing)

			// Bisector of the two segment directions: the outgoing bearing
			// rotated back by half the turn
			offsetBearing = geo.NormalizeBearing(outBearing - turn/2)
			offsetKm = widthKm * miterFactor(turn, miterLimit)
		}

		leftSide[i] = b.geoUtils.Destination(path[i], geo.NormalizeBearing(offsetBearing-90), offsetKm)
		rightSide[i] = b.geoUtils.Destination(path[i], geo.NormalizeBearing(offsetBearing+90), offsetKm)
	}

	// Left wall forward, right wall backward, closed on the first left point.
	// Traversing the two walls in opposite directions traces the corridor
	// boundary as a single consistent ring.
	ring := make(Polygon, 0, 2*n+1)
	ring = append(ring, leftSide...)
	for i := n - 1; i >= 0; i-- {
		ring = append(ring, rightSide[i])
	}
	ring = append(ring, leftSide[0])

	return ring, nil
}

// miterFactor computes the offset extension 1/cos(halfAngle) for a turn,
// capped at miterLimit. A straight continuation (turn 0) yields exactly 1.
// Near a 180 degree reversal the cosine approaches zero and the raw factor
// diverges; the guard applies the cap before the division can produce Inf or
// NaN.
func miterFactor(turnDeg, miterLimit float64) float64 {
	halfAngle := math.Abs(turnDeg) / 2 * math.Pi / 180

	cos := math.Cos(halfAngle)
	if cos <= 1e-9 {
		return miterLimit
	}

	return math.Min(1/cos, miterLimit)
}
