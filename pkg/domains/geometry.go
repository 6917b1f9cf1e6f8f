package domains

import (
	"errors"
	"fmt"

	geojson "github.com/paulmach/go.geojson"
	"gonum.org/v1/gonum/floats"
)

// BoundsFromGeometry returns the box around a longitude/latitude GeoJSON
// geometry, in target coordinates. With a nil target the box stays in
// longitude/latitude, and a geometry touching ±180 (such as a country
// crossing the antimeridian) is measured on 0..360 longitudes so that its
// box does not span the whole globe.
func BoundsFromGeometry(g *geojson.Geometry, target CRS) (BoundingBox, error) {
	if g == nil {
		return BoundingBox{}, errors.New("geometry is nil")
	}
	var xs, ys []float64
	collectCoordinates(g, &xs, &ys)
	if len(xs) == 0 {
		return BoundingBox{}, fmt.Errorf("%s geometry has no coordinates", g.Type)
	}

	if target != nil {
		for i := range xs {
			x, y, err := target.TransformPoint(xs[i], ys[i], LatLon)
			if err != nil {
				return BoundingBox{}, fmt.Errorf("transform (%g, %g): %w", xs[i], ys[i], err)
			}
			xs[i], ys[i] = x, y
		}
	} else if touchesAntimeridian(xs) {
		for i := range xs {
			xs[i] = mod(xs[i], 360)
		}
	}

	return BoundingBox{
		MinX: floats.Min(xs),
		MaxX: floats.Max(xs),
		MinY: floats.Min(ys),
		MaxY: floats.Max(ys),
	}, nil
}

func touchesAntimeridian(lons []float64) bool {
	lo, hi := floats.Min(lons), floats.Max(lons)
	for _, edge := range []float64{-180, 180} {
		if lo == edge || hi == edge {
			return true
		}
	}
	return false
}

func collectCoordinates(g *geojson.Geometry, xs, ys *[]float64) {
	add := func(p []float64) {
		if len(p) >= 2 {
			*xs = append(*xs, p[0])
			*ys = append(*ys, p[1])
		}
	}
	addAll := func(ps [][]float64) {
		for _, p := range ps {
			add(p)
		}
	}
	switch g.Type {
	case geojson.GeometryPoint:
		add(g.Point)
	case geojson.GeometryMultiPoint:
		addAll(g.MultiPoint)
	case geojson.GeometryLineString:
		addAll(g.LineString)
	case geojson.GeometryMultiLineString:
		for _, l := range g.MultiLineString {
			addAll(l)
		}
	case geojson.GeometryPolygon:
		for _, ring := range g.Polygon {
			addAll(ring)
		}
	case geojson.GeometryMultiPolygon:
		for _, poly := range g.MultiPolygon {
			for _, ring := range poly {
				addAll(ring)
			}
		}
	case geojson.GeometryCollection:
		for _, child := range g.Geometries {
			collectCoordinates(child, xs, ys)
		}
	}
}
