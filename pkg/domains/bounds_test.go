package domains

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nan() float64 { return math.NaN() }
func inf() float64 { return math.Inf(1) }

func TestNewBoundingBox(t *testing.T) {
	b, err := NewBoundingBox([]float64{-20, 40, 30, 50})
	require.NoError(t, err)
	assert.Equal(t, BoundingBox{MinX: -20, MaxX: 40, MinY: 30, MaxY: 50}, b)
	assert.Equal(t, [4]float64{-20, 40, 30, 50}, b.Extents())

	_, err = NewBoundingBox([]float64{1, 2, 3})
	assert.ErrorIs(t, err, ErrMalformedBoundingBox)
}

func TestBoundingBoxValidate(t *testing.T) {
	tests := []struct {
		name       string
		box        BoundingBox
		validate   bool
		geographic bool
		planar     bool
	}{
		{"plain", BoundingBox{-20, 40, 30, 50}, true, true, true},
		{"antimeridian", BoundingBox{170, -170, 30, 50}, true, true, false},
		{"projected", BoundingBox{-2e6, 2e6, -1e7, 1e7}, true, false, true},
		{"inverted y", BoundingBox{-20, 40, 50, 30}, false, false, false},
		{"nan", BoundingBox{-20, 40, nan(), 30}, false, false, false},
	}

	check := func(t *testing.T, want bool, err error) {
		t.Helper()
		if want {
			assert.NoError(t, err)
		} else {
			assert.ErrorIs(t, err, ErrMalformedBoundingBox)
		}
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			check(t, tt.validate, tt.box.Validate())
			check(t, tt.geographic, tt.box.ValidateGeographic())
			check(t, tt.planar, tt.box.ValidatePlanar())
		})
	}
}

func TestBoundingBoxWrap(t *testing.T) {
	b := BoundingBox{170, -170, -10, 10}
	assert.True(t, b.Wraps())
	assert.Equal(t, BoundingBox{170, 190, -10, 10}, b.Unwrapped())
	assert.Equal(t, 20.0, b.Width())
	assert.Equal(t, 20.0, b.Height())

	plain := BoundingBox{-10, 10, -10, 10}
	assert.False(t, plain.Wraps())
	assert.Equal(t, plain, plain.Unwrapped())
}

func TestBoundingBoxGeometry(t *testing.T) {
	a := BoundingBox{0, 10, 0, 10}
	b := BoundingBox{5, 20, -5, 5}

	assert.True(t, a.Contains(10, 10))
	assert.False(t, a.Contains(10.1, 5))
	assert.True(t, a.Intersects(b))
	assert.False(t, a.Intersects(BoundingBox{11, 12, 0, 1}))
	assert.Equal(t, BoundingBox{0, 20, -5, 10}, a.Union(b))
	assert.Equal(t, BoundingBox{-1, 11, -1, 11}, a.Expand(1))
	assert.Equal(t, BoundingBox{1.23, 4.57, -1.23, 0}, BoundingBox{1.234, 4.567, -1.2345, 0.001}.Round(2))
}

func TestBoundingBoxString(t *testing.T) {
	tests := []struct {
		box  BoundingBox
		want string
	}{
		{BoundingBox{-20, 40, -30, 50}, "20°W, 40°E, 30°S, 50°N"},
		{BoundingBox{0, 10.256, 0, 1}, "0, 10.26°E, 0, 1°N"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.box.String())
		})
	}
}

func TestMod(t *testing.T) {
	assert.Equal(t, 350.0, mod(-10, 360))
	assert.Equal(t, 10.0, mod(370, 360))
	assert.Equal(t, 0.0, mod(360, 360))
}
