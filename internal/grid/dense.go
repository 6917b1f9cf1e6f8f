package grid

import "gonum.org/v1/gonum/mat"

// RollColumns returns a copy of m rotated left along the column axis so
// that column start becomes column 0. Columns before start wrap around to
// the end. m is not modified.
func RollColumns(m *mat.Dense, start int) *mat.Dense {
	r, c := m.Dims()
	if start <= 0 || start >= c {
		return mat.DenseCopyOf(m)
	}
	var out mat.Dense
	out.Augment(m.Slice(0, r, start, c), m.Slice(0, r, 0, start))
	return &out
}

// Crop returns a copy of the cells of m inside rect. The copy shares no
// storage with m.
func Crop(m *mat.Dense, rect Rect) *mat.Dense {
	return mat.DenseCopyOf(m.Slice(rect.Row0, rect.Row1, rect.Col0, rect.Col1))
}

// FirstColumn returns the index of the first column whose value in row 0
// satisfies pred, or -1.
func FirstColumn(m *mat.Dense, pred func(float64) bool) int {
	_, c := m.Dims()
	for j := 0; j < c; j++ {
		if pred(m.At(0, j)) {
			return j
		}
	}
	return -1
}

// Apply returns a copy of m with f applied to every cell.
func Apply(m *mat.Dense, f func(float64) float64) *mat.Dense {
	var out mat.Dense
	out.Apply(func(_, _ int, v float64) float64 { return f(v) }, m)
	return &out
}
