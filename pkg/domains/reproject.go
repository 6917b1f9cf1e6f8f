package domains

import (
	"fmt"
	"math"
)

// defaultEdgeSamples is the number of points sampled along each edge when
// approximating bounds for a family excluded from corner sampling.
const defaultEdgeSamples = 64

// ProjectOptions controls ProjectBounds.
type ProjectOptions struct {
	// Source is the system the input box is expressed in.
	// If nil, LatLon is assumed.
	Source CRS

	// AllowApproximate lets ProjectBounds handle stereographic families by
	// sampling points along every edge of the box instead of returning
	// UnsupportedProjectionError. The result may miss extremes that fall
	// between samples.
	AllowApproximate bool

	// EdgeSamples is the number of points per edge used when approximating.
	// If 0, defaults to 64.
	EdgeSamples int
}

// ProjectBounds returns the smallest box in target coordinates that encloses
// b, a box expressed in opts.Source coordinates.
//
// The box corners are transformed and the x extent is taken from the western
// pair of corners (min) and the eastern pair (max), the y extent from the
// southern and northern pairs; a plain min/max over all four corners would be
// wrong for projections that fold space. The midpoints of the northern and
// southern edges are also transformed to catch edges that bulge past the
// corners. For cyclic targets (PlateCarree, Mercator) x values that jump by
// more than half a revolution are folded onto one revolution.
//
// Stereographic families are excluded because their extremes are not at the
// corners; they fail with UnsupportedProjectionError unless
// opts.AllowApproximate is set. A planar target whose projected corners come
// out inverted, because the box reaches past the area the projection can
// show, also fails with UnsupportedProjectionError.
//
// Example:
//
//	lcc, _ := domains.ParseCRS("LambertConformal", nil)
//	box, err := domains.ProjectBounds(
//	    domains.BoundingBox{MinX: -20, MaxX: 40, MinY: 30, MaxY: 70},
//	    lcc, domains.ProjectOptions{},
//	)
func ProjectBounds(b BoundingBox, target CRS, opts ProjectOptions) (BoundingBox, error) {
	src := opts.Source
	if src == nil {
		src = LatLon
	}

	if p := period(src); p > 0 {
		if err := b.Validate(); err != nil {
			return BoundingBox{}, err
		}
		if b.Wraps() {
			b.MaxX += p
		}
	} else if err := b.ValidatePlanar(); err != nil {
		return BoundingBox{}, err
	}

	for _, c := range []CRS{src, target} {
		if !c.Family().stereographic() {
			continue
		}
		if !opts.AllowApproximate {
			return BoundingBox{}, &UnsupportedProjectionError{
				Family: c.Family(),
				Reason: "bounding box extremes are not at the corners",
			}
		}
		return sampleBounds(b, target, src, opts.EdgeSamples)
	}

	return cornerBounds(b, target, src)
}

type point struct{ x, y float64 }

func cornerBounds(b BoundingBox, target, src CRS) (BoundingBox, error) {
	transform := func(x, y float64) (point, error) {
		px, py, err := target.TransformPoint(x, y, src)
		if err != nil {
			return point{}, fmt.Errorf("transform (%g, %g): %w", x, y, err)
		}
		return point{px, py}, nil
	}

	// south-west, north-west, north-east, south-east
	inputs := [4]point{
		{b.MinX, b.MinY},
		{b.MinX, b.MaxY},
		{b.MaxX, b.MaxY},
		{b.MaxX, b.MinY},
	}
	var c [4]point
	for i, in := range inputs {
		var err error
		if c[i], err = transform(in.x, in.y); err != nil {
			return BoundingBox{}, err
		}
	}

	out := BoundingBox{
		MinX: math.Min(c[0].x, c[1].x),
		MaxX: math.Max(c[2].x, c[3].x),
		MinY: math.Min(c[0].y, c[3].y),
		MaxY: math.Max(c[1].y, c[2].y),
	}

	p := period(target)
	if p > 0 && (math.Abs(c[2].x-c[3].x) > p/2 || math.Abs(c[0].x-c[1].x) > p/2) {
		out.MinX = math.Min(mod(c[0].x, p), mod(c[1].x, p))
		out.MaxX = math.Max(mod(c[2].x, p), mod(c[3].x, p))
	}

	midX := b.MaxX - (b.MaxX-b.MinX)/2
	bottom, err := transform(midX, b.MinY)
	if err != nil {
		return BoundingBox{}, err
	}
	top, err := transform(midX, b.MaxY)
	if err != nil {
		return BoundingBox{}, err
	}
	out.MinY = math.Min(out.MinY, bottom.y)
	out.MaxY = math.Max(out.MaxY, top.y)

	if p > 0 && out.MinX > out.MaxX {
		out.MinX = mod(out.MinX, p)
		out.MaxX = mod(out.MaxX, p)
	}

	// Corners of a box reaching past the area a planar projection can show
	// land on the wrong side of it, turning the box inside out.
	if err := out.Validate(); err != nil || (p == 0 && out.MinX > out.MaxX) {
		return BoundingBox{}, &UnsupportedProjectionError{
			Family: target.Family(),
			Reason: fmt.Sprintf("box %v reaches beyond the area the projection can represent", b.Extents()),
		}
	}
	return out, nil
}

// sampleBounds walks every edge of b and returns the extent of the
// transformed samples.
func sampleBounds(b BoundingBox, target, src CRS, n int) (BoundingBox, error) {
	if n <= 0 {
		n = defaultEdgeSamples
	}
	out := BoundingBox{
		MinX: math.Inf(1), MaxX: math.Inf(-1),
		MinY: math.Inf(1), MaxY: math.Inf(-1),
	}
	edges := [4][2]point{
		{{b.MinX, b.MinY}, {b.MaxX, b.MinY}},
		{{b.MaxX, b.MinY}, {b.MaxX, b.MaxY}},
		{{b.MaxX, b.MaxY}, {b.MinX, b.MaxY}},
		{{b.MinX, b.MaxY}, {b.MinX, b.MinY}},
	}
	for _, e := range edges {
		for i := 0; i <= n; i++ {
			t := float64(i) / float64(n)
			x := e[0].x + (e[1].x-e[0].x)*t
			y := e[0].y + (e[1].y-e[0].y)*t
			px, py, err := target.TransformPoint(x, y, src)
			if err != nil {
				return BoundingBox{}, fmt.Errorf("transform (%g, %g): %w", x, y, err)
			}
			out.MinX = math.Min(out.MinX, px)
			out.MaxX = math.Max(out.MaxX, px)
			out.MinY = math.Min(out.MinY, py)
			out.MaxY = math.Max(out.MaxY, py)
		}
	}

	// A box around the centre of a stereographic source holds the centre
	// itself, which no edge passes through. Around a pole that is every
	// meridian.
	if src.Family().stereographic() && b.Contains(0, 0) {
		px, py, err := target.TransformPoint(0, 0, src)
		if err != nil {
			return BoundingBox{}, fmt.Errorf("transform centre: %w", err)
		}
		out = out.Union(BoundingBox{MinX: px, MaxX: px, MinY: py, MaxY: py})
		if p := period(target); p > 0 && src.Family().polar() {
			out.MinX, out.MaxX = -p/2, p/2
		}
	}
	return out, nil
}
