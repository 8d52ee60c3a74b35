package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/dpup/geofence.ersn.net/server/internal/config"
	"github.com/dpup/geofence.ersn.net/server/internal/lib/corridor"
	"github.com/dpup/geofence.ersn.net/server/internal/lib/geo"
	"github.com/dpup/geofence.ersn.net/server/internal/lib/routing"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "build":
		handleBuild()
	case "consolidate":
		handleConsolidate()
	case "help":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func handleBuild() {
	fs := flag.NewFlagSet("build", flag.ExitOnError)
	polylines := fs.String("polylines", "", "Semicolon-separated encoded polylines")
	points := fs.String("points", "", "Route as lat,lng pairs: \"38.0675,-120.5436 38.1391,-120.4561\" (use ; between routes)")
	widthKm := fs.Float64("width-km", 0.1, "Corridor half-width in kilometers")
	format := fs.String("format", "geojson", "Output format: geojson or kml")
	optionsPath := fs.String("options", "", "Optional YAML options file")

	fs.Parse(os.Args[2:])

	routes, err := parseRoutes(*polylines, *points)
	if err != nil {
		log.Fatalf("Error parsing routes: %v", err)
	}
	if len(routes) == 0 {
		fmt.Println("Example usage:")
		fmt.Println("  test-corridor build --points \"38.0675,-120.5436 38.1391,-120.4561\" --width-km 0.5")
		fmt.Println("  test-corridor build --polylines \"_p~iF~ps|U_ulLnnqC_mqNvxq`@\" --format kml")
		os.Exit(1)
	}

	opts := config.DefaultOptions()
	if *optionsPath != "" {
		opts, err = config.Load(*optionsPath)
		if err != nil {
			log.Fatalf("Error loading options: %v", err)
		}
	}

	generator := corridor.NewGenerator(nil)
	collection, err := generator.Generate(routes, *widthKm, opts)
	if err != nil {
		log.Fatalf("Error generating corridors: %v", err)
	}

	log.Printf("Built %d corridor(s) from %d route(s)", len(collection), len(routes))

	switch *format {
	case "geojson":
		data, err := corridor.MarshalGeoJSON(collection)
		if err != nil {
			log.Fatalf("Error serializing GeoJSON: %v", err)
		}
		fmt.Println(string(data))
	case "kml":
		if err := corridor.ToKML(collection).WriteIndent(os.Stdout, "", "  "); err != nil {
			log.Fatalf("Error serializing KML: %v", err)
		}
		fmt.Println()
	default:
		log.Fatalf("Unknown output format: %s", *format)
	}
}

func handleConsolidate() {
	fs := flag.NewFlagSet("consolidate", flag.ExitOnError)
	points := fs.String("points", "", "Routes as lat,lng pairs separated by ; between routes")
	threshold := fs.Float64("threshold-m", routing.DefaultConnectionThresholdMeters, "Connection threshold in meters")

	fs.Parse(os.Args[2:])

	routes, err := parseRoutes("", *points)
	if err != nil {
		log.Fatalf("Error parsing routes: %v", err)
	}
	if len(routes) == 0 {
		fmt.Println("Example usage:")
		fmt.Println("  test-corridor consolidate --points \"38.0,-120.5 38.1,-120.4; 38.1,-120.4 38.2,-120.3\"")
		os.Exit(1)
	}

	consolidator := routing.NewConsolidator()
	paths := consolidator.Consolidate(routes, *threshold)

	fmt.Printf("Consolidated %d route(s) into %d path(s):\n", len(routes), len(paths))
	for i, path := range paths {
		fmt.Printf("  Path %d (%d points):\n", i+1, len(path))
		for _, p := range path {
			fmt.Printf("    (%.6f, %.6f)\n", p.Latitude, p.Longitude)
		}
	}
}

// parseRoutes builds route point sequences from either encoded polylines or
// whitespace-separated lat,lng pairs, with ; separating routes in both forms
func parseRoutes(polylines, points string) ([][]geo.Point, error) {
	geoUtils := geo.NewGeoUtils()
	var routes [][]geo.Point

	if polylines != "" {
		for _, encoded := range strings.Split(polylines, ";") {
			encoded = strings.TrimSpace(encoded)
			if encoded == "" {
				continue
			}
			decoded, err := geoUtils.DecodePolyline(encoded)
			if err != nil {
				return nil, err
			}
			routes = append(routes, decoded)
		}
	}

	if points != "" {
		for _, routeStr := range strings.Split(points, ";") {
			routeStr = strings.TrimSpace(routeStr)
			if routeStr == "" {
				continue
			}
			var route []geo.Point
			for _, pairStr := range strings.Fields(routeStr) {
				parts := strings.Split(pairStr, ",")
				if len(parts) != 2 {
					return nil, fmt.Errorf("invalid lat,lng pair: %q", pairStr)
				}
				lat, err := strconv.ParseFloat(parts[0], 64)
				if err != nil {
					return nil, fmt.Errorf("invalid latitude %q: %w", parts[0], err)
				}
				lng, err := strconv.ParseFloat(parts[1], 64)
				if err != nil {
					return nil, fmt.Errorf("invalid longitude %q: %w", parts[1], err)
				}
				point, err := geo.NewPoint(lat, lng)
				if err != nil {
					return nil, err
				}
				route = append(route, point)
			}
			routes = append(routes, route)
		}
	}

	return routes, nil
}

func printUsage() {
	fmt.Println("Geofence corridor test tool")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  test-corridor <command> [flags]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  build        Build corridor polygons and print GeoJSON or KML")
	fmt.Println("  consolidate  Show how route segments merge into continuous paths")
	fmt.Println("  help         Show this help")
}
