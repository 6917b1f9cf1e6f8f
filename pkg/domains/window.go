package domains

import (
	"log/slog"

	"gonum.org/v1/gonum/mat"

	"github.com/ecmwf/earthkit-maps/internal/grid"
)

// convention is a longitude convention conversion applied to grid x
// coordinates before masking.
type convention int

const (
	keepConvention convention = iota
	toSigned                  // 0..360 data, box west of Greenwich
	toUnsigned                // ±180 data, box east of the antimeridian
)

// WindowPlan records how a coordinate grid is cut down to a bounding box,
// so that any number of value arrays on the same grid can be cut the same
// way. Build one with PlanWindow; a plan is immutable and safe for
// concurrent use.
type WindowPlan struct {
	rows, cols  int
	passthrough bool
	roll        int
	rect        grid.Rect
	x, y        *mat.Dense
}

// PlanWindow computes the window of the (x, y) coordinate grid covered by
// bounds, a longitude/latitude box.
//
// The steps are:
//  1. If the box reaches west of Greenwich and the grid uses 0..360
//     longitudes, x is converted to ±180; if the box reaches east of the
//     antimeridian and the grid uses ±180, x is converted to 0..360.
//  2. After a conversion the grid is rolled along its columns so the first
//     column past the old seam comes first, keeping the window contiguous.
//  3. Cells inside the box are marked, and the marks are dilated by a
//     cfg.DilationSize square so that cells overlapping the box edges
//     survive.
//  4. The window is the tight rectangle around the dilated marks.
//
// A nil bounds, or cfg.ExtractDomain == false, gives a pass-through plan. A
// box that selects no cells fails with EmptyWindowError.
func PlanWindow(x, y *mat.Dense, bounds *BoundingBox, cfg Config) (*WindowPlan, error) {
	rows, cols := x.Dims()
	if err := checkShape("y", y, rows, cols); err != nil {
		return nil, err
	}
	plan := &WindowPlan{rows: rows, cols: cols}
	if bounds == nil || !cfg.ExtractDomain {
		plan.passthrough = true
		plan.x, plan.y = x, y
		return plan, nil
	}
	if err := bounds.ValidateGeographic(); err != nil {
		return nil, err
	}
	b := bounds.Unwrapped()

	xs, ys := x, y
	conv := keepConvention
	switch xmin := mat.Min(x); {
	case b.MinX < 0 && xmin >= 0:
		conv = toSigned
		plan.roll = grid.FirstColumn(x, func(v float64) bool { return v > 180 })
		xs = grid.Apply(x, func(v float64) float64 {
			if v > 180 {
				return v - 360
			}
			return v
		})
	case b.MaxX > 180 && xmin < 0:
		conv = toUnsigned
		plan.roll = grid.FirstColumn(x, func(v float64) bool { return v >= 0 })
		xs = grid.Apply(x, func(v float64) float64 {
			if v < 0 {
				return v + 360
			}
			return v
		})
	}
	if plan.roll > 0 {
		xs = grid.RollColumns(xs, plan.roll)
		ys = grid.RollColumns(ys, plan.roll)
	} else {
		plan.roll = 0
	}

	mask := grid.NewMask(rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			mask.Set(i, j, b.Contains(xs.At(i, j), ys.At(i, j)))
		}
	}
	dilated := grid.Dilate(mask, cfg.DilationSize)
	plan.rect = dilated.Bounds()
	if plan.rect.Empty() {
		return nil, &EmptyWindowError{Bounds: *bounds}
	}
	plan.x = grid.Crop(xs, plan.rect)
	plan.y = grid.Crop(ys, plan.rect)

	cfg.logger().Debug("planned data window",
		slog.Any("bounds", b.Extents()),
		slog.Int("convention", int(conv)),
		slog.Int("roll", plan.roll),
		slog.Int("cells", mask.Count()),
		slog.Any("rows", [2]int{plan.rect.Row0, plan.rect.Row1}),
		slog.Any("cols", [2]int{plan.rect.Col0, plan.rect.Col1}))
	return plan, nil
}

// Passthrough reports whether the plan leaves arrays unchanged.
func (p *WindowPlan) Passthrough() bool { return p.passthrough }

// X returns the windowed x coordinates.
func (p *WindowPlan) X() *mat.Dense { return p.x }

// Y returns the windowed y coordinates.
func (p *WindowPlan) Y() *mat.Dense { return p.y }

// Apply cuts values, an array on the planned grid, to the window. The
// result never shares storage with values, except for a pass-through plan,
// which returns values itself.
func (p *WindowPlan) Apply(values *mat.Dense) (*mat.Dense, error) {
	if err := checkShape("values", values, p.rows, p.cols); err != nil {
		return nil, err
	}
	if p.passthrough {
		return values, nil
	}
	v := values
	if p.roll > 0 {
		v = grid.RollColumns(v, p.roll)
	}
	return grid.Crop(v, p.rect), nil
}

// Window crops values and its coordinate grid to bounds. See PlanWindow for
// the rules; with a nil bounds or cfg.ExtractDomain == false the inputs are
// returned unchanged.
//
// Example:
//
//	v, x, y, err := domains.Window(values, lons, lats,
//	    &domains.BoundingBox{MinX: -30, MaxX: 30, MinY: 30, MaxY: 70},
//	    domains.DefaultConfig())
func Window(values, x, y *mat.Dense, bounds *BoundingBox, cfg Config) (v, wx, wy *mat.Dense, err error) {
	plan, err := PlanWindow(x, y, bounds, cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	if v, err = plan.Apply(values); err != nil {
		return nil, nil, nil, err
	}
	return v, plan.X(), plan.Y(), nil
}

func checkShape(name string, m *mat.Dense, rows, cols int) error {
	r, c := m.Dims()
	if r != rows || c != cols {
		return &ShapeMismatchError{Name: name, Rows: r, Cols: c, WantRows: rows, WantCols: cols}
	}
	return nil
}
