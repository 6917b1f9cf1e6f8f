package main

import (
	"fmt"
	"log"

	"github.com/ecmwf/earthkit-maps/pkg/domains"
)

func main() {
	catalog, err := domains.DefaultCatalog()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Catalog contains %d domains\n\n", catalog.Count())

	// Domains containing a location, smallest first
	lon, lat := 4.9, 52.4
	fmt.Printf("Domains containing %.2f, %.2f:\n", lon, lat)
	for _, entry := range catalog.Containing(lon, lat) {
		fmt.Printf("  %-16s %s\n", entry.Name, entry.Extent)
	}

	// Domains intersecting a viewport across the antimeridian
	viewport := domains.BoundingBox{MinX: 172, MaxX: -172, MinY: -22, MaxY: -10}
	fmt.Printf("\nDomains intersecting %s:\n", viewport)
	for _, entry := range catalog.Intersecting(viewport) {
		fmt.Printf("  %-16s %.0f square degrees\n", entry.Name, entry.Area())
	}
}
