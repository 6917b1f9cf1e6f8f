package domains

import (
	"fmt"
	"log/slog"
)

// ExtentClass is a node of the projection selection decision graph.
type ExtentClass int

const (
	ClassGlobal ExtentClass = iota
	ClassEquatorial
	ClassNorthPolar
	ClassSouthPolar
	ClassLargeEquatorial
	ClassSquare
	ClassLandscape
	ClassPortrait
)

// maxTransitions bounds the walk from ClassGlobal to any terminal class.
// The longest path is Global, Equatorial, Square, Landscape.
const maxTransitions = 5

var classNames = [...]string{
	ClassGlobal:          "Global",
	ClassEquatorial:      "Equatorial",
	ClassNorthPolar:      "NorthPolar",
	ClassSouthPolar:      "SouthPolar",
	ClassLargeEquatorial: "LargeEquatorial",
	ClassSquare:          "Square",
	ClassLandscape:       "Landscape",
	ClassPortrait:        "Portrait",
}

// String returns the class name.
func (c ExtentClass) String() string {
	if int(c) >= 0 && int(c) < len(classNames) {
		return classNames[c]
	}
	return fmt.Sprintf("ExtentClass(%d)", int(c))
}

// classFamilies maps each class to the projection family used when the walk
// stops there.
var classFamilies = map[ExtentClass]Family{
	ClassGlobal:          PlateCarree,
	ClassEquatorial:      PlateCarree,
	ClassNorthPolar:      NorthPolarStereo,
	ClassSouthPolar:      SouthPolarStereo,
	ClassLargeEquatorial: TransverseMercator,
	ClassSquare:          AlbersEqualArea,
	ClassLandscape:       AlbersEqualArea,
	ClassPortrait:        TransverseMercator,
}

// Family returns the projection family for the class.
func (c ExtentClass) Family() Family {
	return classFamilies[c]
}

// next returns the class that follows c for extent e. Returning c marks a
// fixed point.
func (c ExtentClass) next(e ExtentClassification) ExtentClass {
	switch c {
	case ClassGlobal:
		if !e.IsGlobal() {
			return ClassEquatorial
		}
	case ClassEquatorial:
		if !e.IsEquatorial() {
			if e.IsPolar() {
				return ClassNorthPolar
			}
			return ClassSquare
		}
		if e.IsLarge() {
			return ClassLargeEquatorial
		}
	case ClassNorthPolar:
		if e.CentralLatitude() < 0 {
			return ClassSouthPolar
		}
	case ClassSquare:
		if e.IsLandscape() {
			return ClassLandscape
		}
		if e.IsPortrait() {
			return ClassPortrait
		}
	}
	return c
}

// Classes walks the decision graph for e from ClassGlobal and returns every
// class visited, the last one being the fixed point.
func Classes(e ExtentClassification) []ExtentClass {
	path := []ExtentClass{ClassGlobal}
	for i := 0; i < maxTransitions; i++ {
		cur := path[len(path)-1]
		nxt := cur.next(e)
		if nxt == cur {
			return path
		}
		path = append(path, nxt)
	}
	// The graph is acyclic with depth below maxTransitions.
	panic(fmt.Sprintf("domains: extent class walk did not settle: %v", path))
}

// Selector chooses a projection for a longitude/latitude box, following the
// Projection Wizard heuristic (Šavrič, Jenny and Jenny, 2016):
//
//   - boxes covering at least 60% of the globe use PlateCarree;
//   - boxes centred within 25° of the equator use PlateCarree, or
//     TransverseMercator when they cover at least 20% of the globe;
//   - boxes centred within 15° of a pole use a polar stereographic family;
//   - other boxes use AlbersEqualArea, or TransverseMercator when they are
//     more than 20% taller than wide.
//
// The zero Selector uses DefaultThresholds and discards log output.
type Selector struct {
	Thresholds Thresholds
	Logger     *slog.Logger
}

// NewSelector returns a selector using the thresholds and logger of cfg.
func NewSelector(cfg Config) Selector {
	return Selector{Thresholds: cfg.Thresholds, Logger: cfg.logger()}
}

// Select returns the projection for b.
//
// Example:
//
//	choice, err := domains.Selector{}.Select(domains.BoundingBox{
//	    MinX: -70, MaxX: 30, MinY: 30, MaxY: 70,
//	})
//	// choice.Family() == domains.AlbersEqualArea
func (s Selector) Select(b BoundingBox) (ProjectionChoice, error) {
	if err := b.ValidateGeographic(); err != nil {
		return ProjectionChoice{}, err
	}
	e := Classify(b, s.Thresholds)
	path := Classes(e)
	final := path[len(path)-1]
	choice := NewProjectionChoice(final.Family(), e.CentralLongitude(), e.CentralLatitude(), e.StandardParallels())

	if s.Logger != nil {
		s.Logger.Debug("selected projection",
			slog.Any("bounds", b.Extents()),
			slog.Any("classes", path),
			slog.String("family", choice.Family().String()),
			slog.Float64("area", e.Area()),
			slog.Float64("aspect_ratio", e.AspectRatio()))
	}
	return choice, nil
}

// SelectProjection returns the projection for b with default thresholds.
func SelectProjection(b BoundingBox) (ProjectionChoice, error) {
	return Selector{}.Select(b)
}
