package domains

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyArea(t *testing.T) {
	tests := []struct {
		name string
		box  BoundingBox
		want float64
	}{
		{"square", BoundingBox{-30, 30, -30, 30}, 3600},
		{"antimeridian", BoundingBox{130, -130, -30, 30}, 6000},
		{"restated", BoundingBox{-50, 50, -30, 30}, 6000},
		{"globe", GlobalBounds, GlobeArea},
		{"polar cap line", BoundingBox{-10, 10, 80, 80}, 400},
		{"pole", BoundingBox{-180, 180, 90, 90}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.box, Thresholds{}).Area())
		})
	}
}

func TestClassifyAspectRatio(t *testing.T) {
	tests := []struct {
		name string
		box  BoundingBox
		want float64
	}{
		{"square", BoundingBox{-30, 30, -30, 30}, 1},
		{"landscape", BoundingBox{-60, 60, -30, 30}, 2},
		{"zero width", BoundingBox{10, 10, -30, 30}, 0},
		{"polar cap line", BoundingBox{-10, 10, 80, 80}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.box, Thresholds{}).AspectRatio())
		})
	}
}

func TestClassifyCentre(t *testing.T) {
	e := Classify(BoundingBox{-70, 30, 30, 70}, Thresholds{})
	assert.Equal(t, -20.0, e.CentralLongitude())
	assert.Equal(t, 50.0, e.CentralLatitude())

	wrapped := Classify(BoundingBox{170, -150, -10, 10}, Thresholds{})
	assert.Equal(t, 190.0, wrapped.CentralLongitude())
	assert.Equal(t, BoundingBox{170, 210, -10, 10}, wrapped.Bounds())
}

func TestClassifyStandardParallels(t *testing.T) {
	north := Classify(BoundingBox{-70, 30, 30, 70}, Thresholds{}).StandardParallels()
	assert.InDelta(t, 36.4, north[0], 1e-9)
	assert.InDelta(t, 63.6, north[1], 1e-9)

	south := Classify(BoundingBox{-70, 30, -70, -30}, Thresholds{}).StandardParallels()
	assert.InDelta(t, -63.6, south[0], 1e-9)
	assert.InDelta(t, -36.4, south[1], 1e-9)
}

func TestClassifyPredicates(t *testing.T) {
	tests := []struct {
		name                        string
		box                         BoundingBox
		global, large, small        bool
		landscape, portrait, square bool
		polar, equatorial           bool
	}{
		{
			name:   "globe",
			box:    GlobalBounds,
			global: true, landscape: true, equatorial: true,
		},
		{
			name:   "almost global",
			box:    BoundingBox{-150, 150, -65, 65},
			global: true, landscape: true, equatorial: true,
		},
		{
			name:  "large equatorial",
			box:   BoundingBox{-140, 140, -65, 65},
			large: true, landscape: true, equatorial: true,
		},
		{
			name:  "small square",
			box:   BoundingBox{-30, 30, -30, 30},
			small: true, square: true, equatorial: true,
		},
		{
			name:  "mid latitude landscape",
			box:   BoundingBox{-70, 30, 30, 70},
			small: true, landscape: true,
		},
		{
			name:  "mid latitude portrait",
			box:   BoundingBox{0, 30, 30, 70},
			small: true, portrait: true,
		},
		{
			name:  "arctic",
			box:   BoundingBox{-180, 180, 70, 90},
			small: true, landscape: true, polar: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Classify(tt.box, Thresholds{})
			assert.Equal(t, tt.global, e.IsGlobal(), "global")
			assert.Equal(t, tt.large, e.IsLarge(), "large")
			assert.Equal(t, tt.small, e.IsSmall(), "small")
			assert.Equal(t, tt.landscape, e.IsLandscape(), "landscape")
			assert.Equal(t, tt.portrait, e.IsPortrait(), "portrait")
			assert.Equal(t, tt.square, e.IsSquare(), "square")
			assert.Equal(t, tt.polar, e.IsPolar(), "polar")
			assert.Equal(t, tt.equatorial, e.IsEquatorial(), "equatorial")
		})
	}
}

func TestClassifyThresholdBoundary(t *testing.T) {
	// 360 x 108 is exactly 60% of the globe.
	box := BoundingBox{-180, 180, -54, 54}
	assert.True(t, Classify(box, Thresholds{}).IsGlobal())
	assert.False(t, Classify(box, Thresholds{Small: 0.2, Large: 0.7}).IsGlobal())
}
