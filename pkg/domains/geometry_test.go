package domains

import (
	"testing"

	geojson "github.com/paulmach/go.geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundsFromGeometry(t *testing.T) {
	square := [][][]float64{{{-10, 40}, {20, 40}, {20, 60}, {-10, 60}, {-10, 40}}}

	tests := []struct {
		name string
		geom *geojson.Geometry
		want BoundingBox
	}{
		{
			name: "point",
			geom: geojson.NewPointGeometry([]float64{5, 10}),
			want: BoundingBox{5, 5, 10, 10},
		},
		{
			name: "polygon",
			geom: geojson.NewPolygonGeometry(square),
			want: BoundingBox{-10, 20, 40, 60},
		},
		{
			name: "multipolygon",
			geom: geojson.NewMultiPolygonGeometry(square, [][][]float64{{{30, -5}, {35, -5}, {35, 0}, {30, -5}}}),
			want: BoundingBox{-10, 35, -5, 60},
		},
		{
			name: "collection",
			geom: geojson.NewCollectionGeometry(
				geojson.NewLineStringGeometry([][]float64{{0, 0}, {1, 1}}),
				geojson.NewMultiPointGeometry([]float64{-3, 4}, []float64{2, -8}),
			),
			want: BoundingBox{-3, 2, -8, 4},
		},
		{
			name: "antimeridian",
			geom: geojson.NewMultiPolygonGeometry(
				[][][]float64{{{177, -20}, {180, -20}, {180, -15}, {177, -15}, {177, -20}}},
				[][][]float64{{{-180, -20}, {-178, -20}, {-178, -15}, {-180, -15}, {-180, -20}}},
			),
			want: BoundingBox{177, 182, -20, -15},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BoundsFromGeometry(tt.geom, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBoundsFromGeometryTarget(t *testing.T) {
	pacific := MustProjection(NewProjectionChoice(PlateCarree, 180, 0, [2]float64{}))
	g := geojson.NewLineStringGeometry([][]float64{{170, 0}, {-170, 10}})

	got, err := BoundsFromGeometry(g, pacific)
	require.NoError(t, err)
	assert.Equal(t, BoundingBox{-10, 10, 0, 10}, got)
}

func TestBoundsFromGeometryErrors(t *testing.T) {
	_, err := BoundsFromGeometry(nil, nil)
	assert.Error(t, err)

	_, err = BoundsFromGeometry(geojson.NewMultiPointGeometry(), nil)
	assert.ErrorContains(t, err, "no coordinates")

	_, err = BoundsFromGeometry(geojson.NewPointGeometry([]float64{0, 0}), identityCRS{family: FamilyUnknown})
	require.NoError(t, err)
}
