package domains

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// BoundingBox is an axis-aligned box in some coordinate reference system.
//
// For geographic boxes X is longitude and Y is latitude, in decimal degrees.
// A geographic box with MinX > MaxX spans the antimeridian; its eastern edge
// is read as MaxX+360 (see Unwrapped).
type BoundingBox struct {
	MinX float64 // Western edge
	MaxX float64 // Eastern edge
	MinY float64 // Southern edge
	MaxY float64 // Northern edge
}

// GlobalBounds covers the whole globe in longitude/latitude.
var GlobalBounds = BoundingBox{MinX: -180, MaxX: 180, MinY: -90, MaxY: 90}

// NewBoundingBox builds a box from extents given as
// [min_x, max_x, min_y, max_y].
func NewBoundingBox(extents []float64) (BoundingBox, error) {
	if len(extents) != 4 {
		return BoundingBox{}, &MalformedBoundingBoxError{
			Reason: fmt.Sprintf("need 4 extents [min_x, max_x, min_y, max_y], got %d", len(extents)),
		}
	}
	return BoundingBox{MinX: extents[0], MaxX: extents[1], MinY: extents[2], MaxY: extents[3]}, nil
}

// Extents returns the box as [min_x, max_x, min_y, max_y].
func (b BoundingBox) Extents() [4]float64 {
	return [4]float64{b.MinX, b.MaxX, b.MinY, b.MaxY}
}

// Validate checks that all edges are finite and MinY <= MaxY.
//
// MinX > MaxX is accepted here because geographic boxes use it to mark an
// antimeridian span; use ValidatePlanar for boxes in projected units.
func (b BoundingBox) Validate() error {
	for _, v := range b.Extents() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &MalformedBoundingBoxError{Bounds: b, Reason: "non-finite edge"}
		}
	}
	if b.MinY > b.MaxY {
		return &MalformedBoundingBoxError{Bounds: b, Reason: "min_y is greater than max_y"}
	}
	return nil
}

// ValidateGeographic checks a longitude/latitude box: finite edges,
// latitudes within ±90 and MinY <= MaxY.
func (b BoundingBox) ValidateGeographic() error {
	if err := b.Validate(); err != nil {
		return err
	}
	if b.MinY < -90 || b.MaxY > 90 {
		return &MalformedBoundingBoxError{Bounds: b, Reason: "latitude outside ±90"}
	}
	return nil
}

// ValidatePlanar checks a box in projected units, where MinX > MaxX has no
// wrapping interpretation.
func (b BoundingBox) ValidatePlanar() error {
	if err := b.Validate(); err != nil {
		return err
	}
	if b.MinX > b.MaxX {
		return &MalformedBoundingBoxError{Bounds: b, Reason: "min_x is greater than max_x"}
	}
	return nil
}

// Wraps reports whether the box is written as an antimeridian span.
func (b BoundingBox) Wraps() bool {
	return b.MaxX < b.MinX
}

// Unwrapped returns the box with an antimeridian span rewritten so that
// MinX <= MaxX, by moving the eastern edge 360 degrees east.
func (b BoundingBox) Unwrapped() BoundingBox {
	if b.Wraps() {
		b.MaxX += 360
	}
	return b
}

// Width returns the east-west extent, accounting for antimeridian spans.
func (b BoundingBox) Width() float64 {
	u := b.Unwrapped()
	return u.MaxX - u.MinX
}

// Height returns the north-south extent.
func (b BoundingBox) Height() float64 {
	return b.MaxY - b.MinY
}

// Contains returns true if the point (x, y) is within the box.
func (b BoundingBox) Contains(x, y float64) bool {
	return x >= b.MinX && x <= b.MaxX &&
		y >= b.MinY && y <= b.MaxY
}

// Intersects returns true if the given box intersects with this box.
func (b BoundingBox) Intersects(other BoundingBox) bool {
	return !(other.MaxX < b.MinX ||
		other.MinX > b.MaxX ||
		other.MaxY < b.MinY ||
		other.MinY > b.MaxY)
}

// Expand returns a new box expanded by the given margin in all directions.
func (b BoundingBox) Expand(margin float64) BoundingBox {
	return BoundingBox{
		MinX: b.MinX - margin,
		MaxX: b.MaxX + margin,
		MinY: b.MinY - margin,
		MaxY: b.MaxY + margin,
	}
}

// Union returns the smallest box containing both boxes.
func (b BoundingBox) Union(other BoundingBox) BoundingBox {
	return BoundingBox{
		MinX: math.Min(b.MinX, other.MinX),
		MaxX: math.Max(b.MaxX, other.MaxX),
		MinY: math.Min(b.MinY, other.MinY),
		MaxY: math.Max(b.MaxY, other.MaxY),
	}
}

// Round returns the box with every edge rounded to the given number of
// decimal places.
func (b BoundingBox) Round(places int) BoundingBox {
	return BoundingBox{
		MinX: roundTo(b.MinX, places),
		MaxX: roundTo(b.MaxX, places),
		MinY: roundTo(b.MinY, places),
		MaxY: roundTo(b.MaxY, places),
	}
}

// String formats a geographic box for people, for example
// "20°W, 40°E, 30°S, 50°N". Values are rounded to two decimals.
func (b BoundingBox) String() string {
	parts := make([]string, 0, 4)
	for _, lon := range []float64{b.MinX, b.MaxX} {
		parts = append(parts, ordinal(lon, "E", "W"))
	}
	for _, lat := range []float64{b.MinY, b.MaxY} {
		parts = append(parts, ordinal(lat, "N", "S"))
	}
	return strings.Join(parts, ", ")
}

func ordinal(v float64, positive, negative string) string {
	s := strconv.FormatFloat(roundTo(math.Abs(v), 2), 'f', -1, 64)
	switch {
	case v > 0:
		return s + "°" + positive
	case v < 0:
		return s + "°" + negative
	}
	return s
}

func roundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}

// mod returns x modulo period in [0, period).
func mod(x, period float64) float64 {
	m := math.Mod(x, period)
	if m < 0 {
		m += period
	}
	return m
}
