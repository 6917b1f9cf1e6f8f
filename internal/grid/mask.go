// Package grid holds the array operations behind data windowing: boolean
// masks over a row-major grid, square morphological dilation, and column
// rolls and crops of gonum matrices.
package grid

// Mask is a row-major boolean grid.
type Mask struct {
	Rows, Cols int
	Cells      []bool
}

// NewMask allocates an all-false mask.
func NewMask(rows, cols int) *Mask {
	return &Mask{Rows: rows, Cols: cols, Cells: make([]bool, rows*cols)}
}

// At reports whether cell (i, j) is set.
func (m *Mask) At(i, j int) bool {
	return m.Cells[i*m.Cols+j]
}

// Set sets cell (i, j).
func (m *Mask) Set(i, j int, v bool) {
	m.Cells[i*m.Cols+j] = v
}

// Count returns the number of set cells.
func (m *Mask) Count() int {
	n := 0
	for _, v := range m.Cells {
		if v {
			n++
		}
	}
	return n
}

// Rect is a half-open range of rows and columns.
type Rect struct {
	Row0, Row1 int
	Col0, Col1 int
}

// Empty reports whether the rectangle holds no cells.
func (r Rect) Empty() bool {
	return r.Row1 <= r.Row0 || r.Col1 <= r.Col0
}

// Bounds returns the smallest rectangle holding every set cell, found by
// reducing the mask along each axis. The rectangle is empty when no cell is
// set.
func (m *Mask) Bounds() Rect {
	rowAny := make([]bool, m.Rows)
	colAny := make([]bool, m.Cols)
	for i := 0; i < m.Rows; i++ {
		row := m.Cells[i*m.Cols : (i+1)*m.Cols]
		for j, v := range row {
			if v {
				rowAny[i] = true
				colAny[j] = true
			}
		}
	}
	r0, r1 := span(rowAny)
	c0, c1 := span(colAny)
	if r1 <= r0 || c1 <= c0 {
		return Rect{}
	}
	return Rect{Row0: r0, Row1: r1, Col0: c0, Col1: c1}
}

// span returns the half-open index range between the first and last true
// value.
func span(v []bool) (int, int) {
	first, last := -1, -1
	for i, ok := range v {
		if ok {
			if first < 0 {
				first = i
			}
			last = i
		}
	}
	if first < 0 {
		return 0, 0
	}
	return first, last + 1
}

// Dilate returns the dilation of m by a size×size square of ones. The
// element's origin is cell (size/2, size/2), so odd sizes grow the mask
// equally on every side and even sizes grow it one cell less towards the
// bottom and right. Sizes below 2 return a copy of m.
//
// The square is separable, so rows and then columns are dilated with a
// sliding count, keeping the cost at O(rows*cols) for any size.
func Dilate(m *Mask, size int) *Mask {
	out := &Mask{Rows: m.Rows, Cols: m.Cols, Cells: make([]bool, len(m.Cells))}
	if size < 2 {
		copy(out.Cells, m.Cells)
		return out
	}
	before := size / 2
	after := size - 1 - before

	tmp := make([]bool, len(m.Cells))
	for i := 0; i < m.Rows; i++ {
		dilate1D(m.Cells[i*m.Cols:(i+1)*m.Cols], tmp[i*m.Cols:(i+1)*m.Cols], 1, before, after)
	}
	for j := 0; j < m.Cols; j++ {
		dilate1D(tmp[j:], out.Cells[j:], m.Cols, before, after)
	}
	return out
}

// dilate1D sets dst[k] when any src within [k-after, k+before] is set,
// walking both slices with the given stride. A set source cell therefore
// spreads `before` cells towards lower indices and `after` towards higher.
func dilate1D(src, dst []bool, stride, before, after int) {
	if len(src) == 0 {
		return
	}
	n := (len(src)-1)/stride + 1
	count := 0
	// window for index k covers src indices [k-after, k+before]
	for k := 0; k < before && k < n; k++ {
		if src[k*stride] {
			count++
		}
	}
	for k := 0; k < n; k++ {
		if add := k + before; add < n && src[add*stride] {
			count++
		}
		if drop := k - after - 1; drop >= 0 && src[drop*stride] {
			count--
		}
		dst[k*stride] = count > 0
	}
}
