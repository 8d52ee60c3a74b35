package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/dpup/geofence.ersn.net/server/internal/lib/geo"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	geoUtils := geo.NewGeoUtils()

	switch command {
	case "distance":
		handleDistance(geoUtils)
	case "bearing":
		handleBearing(geoUtils)
	case "destination":
		handleDestination(geoUtils)
	case "decode-polyline":
		handleDecodePolyline(geoUtils)
	case "help":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func handleDistance(geoUtils geo.GeoUtils) {
	fs := flag.NewFlagSet("distance", flag.ExitOnError)
	lat1 := fs.Float64("lat1", 0, "Latitude of first point")
	lng1 := fs.Float64("lng1", 0, "Longitude of first point")
	lat2 := fs.Float64("lat2", 0, "Latitude of second point")
	lng2 := fs.Float64("lng2", 0, "Longitude of second point")

	fs.Parse(os.Args[2:])

	if *lat1 == 0 && *lng1 == 0 && *lat2 == 0 && *lng2 == 0 {
		fmt.Println("Example usage:")
		fmt.Println("  test-geo-utils distance --lat1 38.0675 --lng1 -120.5436 --lat2 38.1391 --lng2 -120.4561")
		fmt.Println("  (Distance between Angels Camp and Murphys)")
		os.Exit(1)
	}

	distance, err := geoUtils.DistanceFromCoords(*lat1, *lng1, *lat2, *lng2)
	if err != nil {
		log.Fatalf("Error calculating distance: %v", err)
	}

	fmt.Printf("Distance between points:\n")
	fmt.Printf("  Point 1: (%.6f, %.6f)\n", *lat1, *lng1)
	fmt.Printf("  Point 2: (%.6f, %.6f)\n", *lat2, *lng2)
	fmt.Printf("  Distance: %.2f meters (%.2f km, %.2f miles)\n",
		distance, distance/1000, distance*0.000621371)
}

func handleBearing(geoUtils geo.GeoUtils) {
	fs := flag.NewFlagSet("bearing", flag.ExitOnError)
	lat1 := fs.Float64("lat1", 0, "Latitude of origin")
	lng1 := fs.Float64("lng1", 0, "Longitude of origin")
	lat2 := fs.Float64("lat2", 0, "Latitude of target")
	lng2 := fs.Float64("lng2", 0, "Longitude of target")

	fs.Parse(os.Args[2:])

	if *lat1 == 0 && *lng1 == 0 && *lat2 == 0 && *lng2 == 0 {
		fmt.Println("Example usage:")
		fmt.Println("  test-geo-utils bearing --lat1 38.0675 --lng1 -120.5436 --lat2 38.1391 --lng2 -120.4561")
		os.Exit(1)
	}

	from := geo.Point{Latitude: *lat1, Longitude: *lng1}
	to := geo.Point{Latitude: *lat2, Longitude: *lng2}

	bearing := geoUtils.Bearing(from, to)

	fmt.Printf("Bearing from (%.6f, %.6f) to (%.6f, %.6f):\n",
		from.Latitude, from.Longitude, to.Latitude, to.Longitude)
	fmt.Printf("  %.2f degrees\n", bearing)
}

func handleDestination(geoUtils geo.GeoUtils) {
	fs := flag.NewFlagSet("destination", flag.ExitOnError)
	lat := fs.Float64("lat", 0, "Latitude of origin")
	lng := fs.Float64("lng", 0, "Longitude of origin")
	bearing := fs.Float64("bearing", 0, "Compass bearing in degrees")
	distance := fs.Float64("distance-km", 0, "Travel distance in kilometers")

	fs.Parse(os.Args[2:])

	if *lat == 0 && *lng == 0 && *distance == 0 {
		fmt.Println("Example usage:")
		fmt.Println("  test-geo-utils destination --lat 38.0675 --lng -120.5436 --bearing 45 --distance-km 10")
		os.Exit(1)
	}

	origin := geo.Point{Latitude: *lat, Longitude: *lng}
	dest := geoUtils.Destination(origin, *bearing, *distance)

	fmt.Printf("Destination from (%.6f, %.6f), bearing %.2f, %.2f km:\n",
		origin.Latitude, origin.Longitude, *bearing, *distance)
	fmt.Printf("  (%.6f, %.6f)\n", dest.Latitude, dest.Longitude)
}

func handleDecodePolyline(geoUtils geo.GeoUtils) {
	fs := flag.NewFlagSet("decode-polyline", flag.ExitOnError)
	encoded := fs.String("polyline", "", "Encoded polyline string")

	fs.Parse(os.Args[2:])

	if *encoded == "" {
		fmt.Println("Example usage:")
		fmt.Println("  test-geo-utils decode-polyline --polyline \"_p~iF~ps|U_ulLnnqC_mqNvxq`@\"")
		os.Exit(1)
	}

	points, err := geoUtils.DecodePolyline(*encoded)
	if err != nil {
		log.Fatalf("Error decoding polyline: %v", err)
	}

	fmt.Printf("Decoded %d points:\n", len(points))
	for i, p := range points {
		fmt.Printf("  %d: (%.6f, %.6f)\n", i, p.Latitude, p.Longitude)
	}
}

func printUsage() {
	fmt.Println("Geo utilities test tool")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  test-geo-utils <command> [flags]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  distance         Great-circle distance between two points")
	fmt.Println("  bearing          Initial compass bearing between two points")
	fmt.Println("  destination      Project a point along a bearing")
	fmt.Println("  decode-polyline  Decode a Google encoded polyline")
	fmt.Println("  help             Show this help")
}
