package corridor

import (
	"encoding/json"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// ToGeoJSON maps a collection onto a GeoJSON FeatureCollection. GeoJSON uses
// [longitude, latitude] point order, the reverse of the internal convention;
// the swap happens here and nowhere else.
func ToGeoJSON(c Collection) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	for _, f := range c {
		ring := make(orb.Ring, len(f.Ring))
		for i, p := range f.Ring {
			ring[i] = orb.Point{p.Longitude, p.Latitude}
		}

		feature := geojson.NewFeature(orb.Polygon{ring})
		feature.Properties["routeIndex"] = f.RouteIndex
		feature.Properties["bufferDistanceKm"] = f.BufferKm
		feature.Properties["type"] = FeatureKind
		fc.Append(feature)
	}

	return fc
}

// MarshalGeoJSON serializes a collection as a GeoJSON FeatureCollection
func MarshalGeoJSON(c Collection) ([]byte, error) {
	return json.Marshal(ToGeoJSON(c))
}
