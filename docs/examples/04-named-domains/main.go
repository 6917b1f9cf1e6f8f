package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/ecmwf/earthkit-maps/pkg/domains"
)

func main() {
	cfg := domains.DefaultConfig()

	for _, name := range []string{"great_britain", "Europe", "Alps", "Arctic"} {
		d, err := domains.FromName(name, nil, nil, cfg)
		if err != nil {
			log.Printf("Failed to load %s: %v", name, err)
			continue
		}

		fmt.Printf("Domain: %s\n", d.Title())
		fmt.Printf("  Projection: %s\n", d.CRS().Family())
		if b := d.Bounds(); b != nil {
			fmt.Printf("  Bounds: %.0f\n", b.Extents())
		} else {
			fmt.Println("  Bounds: full projection extent")
		}
	}

	// A custom domain
	d, err := domains.NewDomain(&domains.BoundingBox{MinX: 170, MaxX: -170, MinY: -10, MaxY: 10}, nil, "", cfg)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("\nDomain: %s\n", d.Title())

	outline, err := d.Outline()
	if err != nil {
		log.Fatal(err)
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(outline); err != nil {
		log.Fatal(err)
	}
}
