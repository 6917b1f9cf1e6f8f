package domains

import "math"

// GlobeArea is the area of the whole globe in square degrees (360*180).
const GlobeArea = 64800

const (
	landscapeRatio     = 1.2
	portraitRatio      = 0.8
	polarLatitude      = 75
	equatorialLatitude = 25

	// Standard parallels sit this fraction of the latitude span inside the
	// box edges.
	parallelOffset = 4.0 / 25.0
)

// Thresholds are the area fractions of the globe that separate small, large
// and global extents.
type Thresholds struct {
	// Small is the fraction below which an extent is small (default 0.2).
	Small float64 `yaml:"small"`

	// Large is the fraction at or above which an extent is global
	// (default 0.6). Extents between Small and Large are large.
	Large float64 `yaml:"large"`
}

// DefaultThresholds returns the Projection Wizard area thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{Small: 0.2, Large: 0.6}
}

// ExtentClassification is a read-only view of the geometric properties of a
// longitude/latitude box that drive projection selection.
//
// The box is unwrapped on construction, so an antimeridian span such as
// [130, -130, -30, 30] behaves like [130, 230, -30, 30].
type ExtentClassification struct {
	bounds     BoundingBox
	thresholds Thresholds
}

// Classify returns the classification of b under the given thresholds.
// A zero Thresholds value selects DefaultThresholds.
func Classify(b BoundingBox, t Thresholds) ExtentClassification {
	if t == (Thresholds{}) {
		t = DefaultThresholds()
	}
	return ExtentClassification{bounds: b.Unwrapped(), thresholds: t}
}

// Bounds returns the unwrapped box being classified.
func (e ExtentClassification) Bounds() BoundingBox {
	return e.bounds
}

// latitudeSpan returns the height used for area and ratio. A box with no
// latitude span is read as a cap around the nearest pole.
func (e ExtentClassification) latitudeSpan() float64 {
	b := e.bounds
	if b.MinY == b.MaxY {
		return 2 * (90 - math.Abs(b.MaxY))
	}
	return b.MaxY - b.MinY
}

// Area returns the box area in square degrees.
func (e ExtentClassification) Area() float64 {
	return (e.bounds.MaxX - e.bounds.MinX) * e.latitudeSpan()
}

// AspectRatio returns width divided by height, or 0 for a box without
// width.
func (e ExtentClassification) AspectRatio() float64 {
	width := e.bounds.MaxX - e.bounds.MinX
	if width == 0 {
		return 0
	}
	return width / e.latitudeSpan()
}

// CentralLongitude returns the longitude half way between the box edges.
// It may exceed 180 for antimeridian spans.
func (e ExtentClassification) CentralLongitude() float64 {
	return e.bounds.MaxX - (e.bounds.MaxX-e.bounds.MinX)/2
}

// CentralLatitude returns the latitude half way between the box edges.
func (e ExtentClassification) CentralLatitude() float64 {
	return e.bounds.MaxY - (e.bounds.MaxY-e.bounds.MinY)/2
}

// StandardParallels returns two latitudes 16% of the latitude span inside
// the southern and northern edges.
func (e ExtentClassification) StandardParallels() [2]float64 {
	offset := (e.bounds.MaxY - e.bounds.MinY) * parallelOffset
	return [2]float64{e.bounds.MinY + offset, e.bounds.MaxY - offset}
}

// IsLandscape reports whether the box is more than 20% wider than tall.
func (e ExtentClassification) IsLandscape() bool {
	return e.AspectRatio() > landscapeRatio
}

// IsPortrait reports whether the box is more than 20% taller than wide.
func (e ExtentClassification) IsPortrait() bool {
	return e.AspectRatio() < portraitRatio
}

// IsSquare reports whether width and height are within 20% of each other.
func (e ExtentClassification) IsSquare() bool {
	return !e.IsLandscape() && !e.IsPortrait()
}

// IsGlobal reports whether the box covers at least the large fraction of
// the globe.
func (e ExtentClassification) IsGlobal() bool {
	return e.Area() >= e.thresholds.Large*GlobeArea
}

// IsLarge reports whether the box is not global but covers at least the
// small fraction of the globe.
func (e ExtentClassification) IsLarge() bool {
	return !e.IsGlobal() && e.Area() >= e.thresholds.Small*GlobeArea
}

// IsSmall reports whether the box covers less than the small fraction of
// the globe.
func (e ExtentClassification) IsSmall() bool {
	return !e.IsGlobal() && !e.IsLarge()
}

// IsPolar reports whether the box is centred within 15 degrees of a pole.
func (e ExtentClassification) IsPolar() bool {
	return math.Abs(e.CentralLatitude()) > polarLatitude
}

// IsEquatorial reports whether the box is centred within 25 degrees of the
// equator.
func (e ExtentClassification) IsEquatorial() bool {
	return math.Abs(e.CentralLatitude()) < equatorialLatitude
}
