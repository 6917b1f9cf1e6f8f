package main

import (
	"fmt"
	"log"

	geojson "github.com/paulmach/go.geojson"

	"github.com/ecmwf/earthkit-maps/pkg/domains"
)

func main() {
	box := domains.BoundingBox{MinX: -20, MaxX: 40, MinY: -30, MaxY: 50}

	merc, err := domains.ParseCRS("Mercator", nil)
	if err != nil {
		log.Fatal(err)
	}

	projected, err := domains.ProjectBounds(box, merc, domains.ProjectOptions{})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Mercator bounds: %.0f\n", projected.Extents())

	back, err := domains.ProjectBounds(projected, domains.LatLon, domains.ProjectOptions{Source: merc})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Back to lat/lon: %s\n", back)

	// A box across the antimeridian is unwrapped
	pacific := domains.BoundingBox{MinX: 170, MaxX: -170, MinY: -10, MaxY: 10}
	unwrapped, err := domains.ProjectBounds(pacific, domains.LatLon, domains.ProjectOptions{})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Antimeridian span: %v\n", unwrapped.Extents())

	// Bounds of a GeoJSON geometry
	fiji := geojson.NewMultiPolygonGeometry(
		[][][]float64{{{177, -20}, {180, -20}, {180, -15}, {177, -15}, {177, -20}}},
		[][][]float64{{{-180, -20}, {-178, -20}, {-178, -15}, {-180, -15}, {-180, -20}}},
	)
	gb, err := domains.BoundsFromGeometry(fiji, nil)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Geometry bounds: %v\n", gb.Extents())
}
