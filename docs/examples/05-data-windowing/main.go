package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"math"
	"os"

	"gonum.org/v1/gonum/mat"

	"github.com/ecmwf/earthkit-maps/pkg/domains"
)

// globalGrid builds a 1 degree grid on 0..360 longitudes with a synthetic
// wind field.
func globalGrid() (u, v, lons, lats *mat.Dense) {
	rows, cols := 181, 360
	u = mat.NewDense(rows, cols, nil)
	v = mat.NewDense(rows, cols, nil)
	lons = mat.NewDense(rows, cols, nil)
	lats = mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			lon, lat := float64(j), 90-float64(i)
			lons.Set(i, j, lon)
			lats.Set(i, j, lat)
			u.Set(i, j, 10*math.Cos(lat*math.Pi/180))
			v.Set(i, j, 5*math.Sin(lon*math.Pi/180))
		}
	}
	return u, v, lons, lats
}

func main() {
	u, v, lons, lats := globalGrid()

	cfg := domains.DefaultConfig()
	cfg.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))

	// Europe crosses the grid's 0/360 seam
	europe := domains.BoundingBox{MinX: -25, MaxX: 45, MinY: 30, MaxY: 72}

	out, err := domains.WindowFields(context.Background(), []*mat.Dense{u, v}, lons, lats, &europe, cfg)
	if err != nil {
		log.Fatal(err)
	}

	r, c := out.Values[0].Dims()
	fmt.Printf("Window: %d x %d cells\n", r, c)
	fmt.Printf("Longitudes: %.0f to %.0f\n", out.X.At(0, 0), out.X.At(0, c-1))
	fmt.Printf("Latitudes: %.0f to %.0f\n", out.Y.At(0, 0), out.Y.At(r-1, 0))

	// Cropping disabled
	cfg.ExtractDomain = false
	full, _, _, err := domains.Window(u, lons, lats, &europe, cfg)
	if err != nil {
		log.Fatal(err)
	}
	r, c = full.Dims()
	fmt.Printf("Unclipped: %d x %d cells\n", r, c)
}
