package simplify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dpup/geofence.ersn.net/server/internal/lib/geo"
)

func TestDouglasPeucker_RemovesCollinearPoints(t *testing.T) {
	simplifier := NewDouglasPeucker()

	// Straight run along a parallel with a redundant midpoint
	points := []geo.Point{
		{Latitude: 38.0, Longitude: -120.50},
		{Latitude: 38.0, Longitude: -120.45},
		{Latitude: 38.0, Longitude: -120.40},
	}

	simplified := simplifier.Simplify(points, 0.00005)

	require.Len(t, simplified, 2, "Collinear midpoint should be removed")
	assert.Equal(t, points[0], simplified[0], "First point preserved")
	assert.Equal(t, points[2], simplified[1], "Last point preserved")
}

func TestDouglasPeucker_KeepsSignificantTurns(t *testing.T) {
	simplifier := NewDouglasPeucker()

	// Right-angle turn well beyond tolerance
	points := []geo.Point{
		{Latitude: 38.0, Longitude: -120.50},
		{Latitude: 38.0, Longitude: -120.40},
		{Latitude: 38.1, Longitude: -120.40},
	}

	simplified := simplifier.Simplify(points, 0.00005)

	assert.Len(t, simplified, 3, "Turn vertex must survive simplification")
}

func TestDouglasPeucker_ShortInputsUnchanged(t *testing.T) {
	simplifier := NewDouglasPeucker()

	points := []geo.Point{
		{Latitude: 38.0, Longitude: -120.5},
		{Latitude: 38.1, Longitude: -120.4},
	}

	simplified := simplifier.Simplify(points, 0.00005)
	assert.Equal(t, points, simplified)

	single := []geo.Point{{Latitude: 38.0, Longitude: -120.5}}
	assert.Equal(t, single, simplifier.Simplify(single, 0.00005))
}

func TestDouglasPeucker_ZeroToleranceUnchanged(t *testing.T) {
	simplifier := NewDouglasPeucker()

	points := []geo.Point{
		{Latitude: 38.0, Longitude: -120.50},
		{Latitude: 38.0001, Longitude: -120.45},
		{Latitude: 38.0, Longitude: -120.40},
	}

	simplified := simplifier.Simplify(points, 0)
	assert.Equal(t, points, simplified)
}

func TestDouglasPeucker_DoesNotAliasInput(t *testing.T) {
	simplifier := NewDouglasPeucker()

	points := []geo.Point{
		{Latitude: 38.0, Longitude: -120.5},
		{Latitude: 38.1, Longitude: -120.4},
	}

	simplified := simplifier.Simplify(points, 0.00005)
	simplified[0] = geo.Point{}

	assert.Equal(t, 38.0, points[0].Latitude, "Returned slice must be a copy")
}
