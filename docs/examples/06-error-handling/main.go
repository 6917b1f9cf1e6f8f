package main

import (
	"errors"
	"fmt"
	"log"

	"gonum.org/v1/gonum/mat"

	"github.com/ecmwf/earthkit-maps/pkg/domains"
)

func main() {
	// Malformed input fails fast
	_, err := domains.SelectProjection(domains.BoundingBox{MinX: -10, MaxX: 10, MinY: 50, MaxY: 40})
	if errors.Is(err, domains.ErrMalformedBoundingBox) {
		log.Printf("Expected error: %v", err)
	}

	// Stereographic bounds are not computed from corners
	arctic := domains.BoundingBox{MinX: -180, MaxX: 180, MinY: 60, MaxY: 90}
	nps, err := domains.ParseCRS("NorthPolarStereo", nil)
	if err != nil {
		log.Fatal(err)
	}
	_, err = domains.ProjectBounds(arctic, nps, domains.ProjectOptions{})
	var unsupported *domains.UnsupportedProjectionError
	if errors.As(err, &unsupported) {
		log.Printf("Expected error for %s: %s", unsupported.Family, unsupported.Reason)
	}

	// Sampling every edge is an explicit opt-in
	square, err := domains.ProjectBounds(arctic, nps, domains.ProjectOptions{AllowApproximate: true})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Approximate polar bounds (m): %.0f\n", square.Extents())

	// The fallback policy decides what a domain does with such bounds
	cfg := domains.DefaultConfig()
	cfg.Fallback = domains.FallbackError
	if _, err := domains.NewDomain(&arctic, nil, "", cfg); err != nil {
		log.Printf("Strict domain: %v", err)
	}

	// Windows that miss the grid
	lons := mat.NewDense(1, 3, []float64{0, 1, 2})
	lats := mat.NewDense(1, 3, []float64{0, 0, 0})
	values := mat.NewDense(1, 3, []float64{1, 2, 3})
	far := domains.BoundingBox{MinX: 100, MaxX: 110, MinY: 10, MaxY: 20}
	_, _, _, err = domains.Window(values, lons, lats, &far, domains.DefaultConfig())
	if errors.Is(err, domains.ErrEmptyWindow) {
		log.Printf("Expected error: %v", err)
	}

	// Unknown domain names
	_, err = domains.FromName("Atlantis", nil, nil, domains.DefaultConfig())
	var unknown *domains.UnknownDomainError
	if errors.As(err, &unknown) {
		fmt.Printf("No domain called %q\n", unknown.Name)
	}
}
