package corridor

import (
	"github.com/dpup/geofence.ersn.net/server/internal/config"
	"github.com/dpup/geofence.ersn.net/server/internal/lib/geo"
	"github.com/dpup/geofence.ersn.net/server/internal/lib/routing"
	"github.com/dpup/geofence.ersn.net/server/internal/lib/simplify"
)

// generator implements the Generator interface
type generator struct {
	consolidator routing.Consolidator
	simplifier   simplify.Simplifier
	builder      Builder
}

// NewGenerator creates a Generator using the given simplifier. A nil
// simplifier falls back to the default Douglas-Peucker implementation.
func NewGenerator(simplifier simplify.Simplifier) Generator {
	if simplifier == nil {
		simplifier = simplify.NewDouglasPeucker()
	}
	return &generator{
		consolidator: routing.NewConsolidator(),
		simplifier:   simplifier,
		builder:      NewBuilder(),
	}
}

// Generate runs the full pipeline: consolidate connected route segments,
// simplify each continuous path, and buffer each path that still has a
// direction into a corridor feature. A path that degenerates below 2 points
// is skipped without affecting its siblings; RouteIndex is 1-based over the
// corridors that were actually built.
func (g *generator) Generate(routes [][]geo.Point, widthKm float64, opts config.Options) (Collection, error) {
	if widthKm <= 0 {
		return nil, ErrInvalidWidth
	}
	if opts.MiterLimit <= 0 {
		opts.MiterLimit = DefaultMiterLimit
	}

	paths := g.consolidator.Consolidate(routes, opts.ConnectionThresholdMeters)

	collection := make(Collection, 0, len(paths))
	for _, path := range paths {
		simplified := g.simplifier.Simplify(path, opts.SimplifyTolerance)
		if len(simplified) < 2 {
			continue
		}

		ring, err := g.builder.BuildCorridor(simplified, widthKm, opts.MiterLimit)
		if err != nil {
			continue
		}

		collection = append(collection, Feature{
			Ring:       ring,
			RouteIndex: len(collection) + 1,
			BufferKm:   widthKm,
		})
	}

	return collection, nil
}
