package corridor

import (
	"fmt"

	"github.com/twpayne/go-kml/v2"
)

// ToKML maps a collection onto a KML document with one polygon placemark per
// corridor, for previewing output in map tools that speak KML.
func ToKML(c Collection) *kml.CompoundElement {
	placemarks := make([]kml.Element, 0, len(c))

	for _, f := range c {
		coords := make([]kml.Coordinate, len(f.Ring))
		for i, p := range f.Ring {
			coords[i] = kml.Coordinate{Lon: p.Longitude, Lat: p.Latitude}
		}

		placemarks = append(placemarks, kml.Placemark(
			kml.Name(fmt.Sprintf("Corridor %d", f.RouteIndex)),
			kml.Description(fmt.Sprintf("Geofence corridor, %.3f km buffer", f.BufferKm)),
			kml.Polygon(
				kml.OuterBoundaryIs(
					kml.LinearRing(
						kml.Coordinates(coords...),
					),
				),
			),
		))
	}

	return kml.KML(kml.Document(placemarks...))
}
