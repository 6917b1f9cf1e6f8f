package main

import (
	"fmt"
	"log"

	"github.com/ecmwf/earthkit-maps/pkg/domains"
)

func main() {
	// Western Europe
	box := domains.BoundingBox{MinX: -20, MaxX: 40, MinY: 30, MaxY: 70}

	choice, err := domains.SelectProjection(box)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Box: %s\n", box)
	fmt.Printf("Projection: %s\n", choice.Family())
	for name, value := range choice.Params() {
		fmt.Printf("  %s = %.2f\n", name, value)
	}

	// Walk of the decision graph
	fmt.Printf("Classes: %v\n", domains.Classes(domains.Classify(box, domains.Thresholds{})))
}
