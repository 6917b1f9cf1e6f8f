package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

func TestRollColumns(t *testing.T) {
	m := mat.NewDense(2, 4, []float64{
		0, 1, 2, 3,
		4, 5, 6, 7,
	})

	tests := []struct {
		name  string
		start int
		want  []float64
	}{
		{"no roll", 0, []float64{0, 1, 2, 3, 4, 5, 6, 7}},
		{"by one", 1, []float64{1, 2, 3, 0, 5, 6, 7, 4}},
		{"by three", 3, []float64{3, 0, 1, 2, 7, 4, 5, 6}},
		{"out of range", 4, []float64{0, 1, 2, 3, 4, 5, 6, 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RollColumns(m, tt.start)
			assert.True(t, mat.Equal(mat.NewDense(2, 4, tt.want), got), "got %v", mat.Formatted(got))
			got.Set(0, 0, -1)
			assert.Equal(t, 0.0, m.At(0, 0), "input changed")
		})
	}
}

func TestCrop(t *testing.T) {
	m := mat.NewDense(3, 3, []float64{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	})

	got := Crop(m, Rect{Row0: 1, Row1: 3, Col0: 0, Col1: 2})
	assert.True(t, mat.Equal(mat.NewDense(2, 2, []float64{4, 5, 7, 8}), got))

	got.Set(0, 0, -1)
	assert.Equal(t, 4.0, m.At(1, 0))
}

func TestFirstColumn(t *testing.T) {
	m := mat.NewDense(2, 4, []float64{
		0, 90, 190, 270,
		0, 90, 190, 270,
	})
	assert.Equal(t, 2, FirstColumn(m, func(v float64) bool { return v > 180 }))
	assert.Equal(t, -1, FirstColumn(m, func(v float64) bool { return v > 360 }))
}

func TestApply(t *testing.T) {
	m := mat.NewDense(1, 3, []float64{10, 200, 350})
	got := Apply(m, func(v float64) float64 {
		if v > 180 {
			return v - 360
		}
		return v
	})
	assert.Equal(t, []float64{10, -160, -10}, mat.Row(nil, 0, got))
	assert.Equal(t, 200.0, m.At(0, 1))
}
