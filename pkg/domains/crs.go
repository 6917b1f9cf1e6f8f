package domains

import (
	"fmt"
	"math"

	"github.com/ctessum/geom/proj"
)

// earthRadius is the sphere radius used for the Mercator family, in metres.
const earthRadius = 6378137

const longLatDef = "+proj=longlat +ellps=WGS84 +datum=WGS84 +no_defs"

// CRS is a coordinate reference system able to map points from another
// system into its own coordinate space. It is the only capability the
// bounds and windowing code needs from a projection library.
type CRS interface {
	// Family returns the projection family of the system.
	Family() Family

	// TransformPoint maps (x, y) given in src coordinates into this system.
	TransformPoint(x, y float64, src CRS) (float64, float64, error)
}

// Geodetic is a CRS that converts directly to and from longitude/latitude
// in degrees. Projection implements it, and TransformPoint uses it on the
// source system.
type Geodetic interface {
	CRS
	Forward(lon, lat float64) (x, y float64, err error)
	Inverse(x, y float64) (lon, lat float64, err error)
}

// Projection is a CRS built from a ProjectionChoice.
//
// PlateCarree is evaluated natively in degrees, and the stereographic
// families natively on a sphere, in metres. Every other family is backed by
// a PROJ.4 definition evaluated with github.com/ctessum/geom/proj, in
// metres. A family whose definition the library cannot evaluate still
// constructs; its transforms fail with UnsupportedProjectionError.
//
// A Projection is immutable and safe for concurrent use.
type Projection struct {
	choice  ProjectionChoice
	def     string
	forward proj.Transformer
	inverse proj.Transformer
	err     error // set when the transforms could not be built
}

// NewProjection builds the CRS for a choice.
func NewProjection(choice ProjectionChoice) (*Projection, error) {
	p := &Projection{choice: choice}
	if choice.family == PlateCarree {
		return p, nil
	}
	def, err := proj4Definition(choice)
	if err != nil {
		return nil, err
	}
	p.def = def
	if choice.family.stereographic() {
		return p, nil
	}
	p.forward, p.inverse, p.err = transforms.get(def, buildTransforms)
	return p, nil
}

// MustProjection is like NewProjection but panics on error. It is meant for
// package-level variables.
func MustProjection(choice ProjectionChoice) *Projection {
	p, err := NewProjection(choice)
	if err != nil {
		panic(err)
	}
	return p
}

// LatLon is the default reference system: PlateCarree centred on Greenwich.
var LatLon = MustProjection(NewProjectionChoice(PlateCarree, 0, 0, [2]float64{}))

func proj4Definition(c ProjectionChoice) (string, error) {
	const datum = "+x_0=0 +y_0=0 +ellps=WGS84 +datum=WGS84 +units=m +no_defs"
	switch c.family {
	case Mercator:
		return fmt.Sprintf("+proj=merc +a=%d +b=%d +lat_ts=0.0 +lon_0=%g +x_0=0.0 +y_0=0 +k=1.0 +units=m +no_defs",
			earthRadius, earthRadius, c.centralLongitude), nil
	case AlbersEqualArea:
		return fmt.Sprintf("+proj=aea +lat_1=%g +lat_2=%g +lat_0=%g +lon_0=%g %s",
			c.standardParallels[0], c.standardParallels[1], c.centralLatitude, c.centralLongitude, datum), nil
	case LambertConformal:
		return fmt.Sprintf("+proj=lcc +lat_1=%g +lat_2=%g +lat_0=%g +lon_0=%g %s",
			c.standardParallels[0], c.standardParallels[1], c.centralLatitude, c.centralLongitude, datum), nil
	case TransverseMercator:
		return fmt.Sprintf("+proj=tmerc +lat_0=%g +lon_0=%g +k=1 %s",
			c.centralLatitude, c.centralLongitude, datum), nil
	case Stereographic, NorthPolarStereo, SouthPolarStereo:
		lon0, lat0 := c.stereographicOrigin()
		return fmt.Sprintf("+proj=stere +lat_0=%g +lon_0=%g +k=1 +a=%d +b=%d +x_0=0 +y_0=0 +units=m +no_defs",
			lat0, lon0, earthRadius, earthRadius), nil
	}
	return "", &UnknownProjectionError{Name: c.family.String()}
}

func buildTransforms(def string) (forward, inverse proj.Transformer, err error) {
	src, err := proj.Parse(longLatDef)
	if err != nil {
		return nil, nil, fmt.Errorf("parse %q: %w", longLatDef, err)
	}
	dst, err := proj.Parse(def)
	if err != nil {
		return nil, nil, fmt.Errorf("parse %q: %w", def, err)
	}
	// Parse accepts any +proj name; the transformer is only looked up here.
	if _, _, err := dst.Transformers(); err != nil {
		return nil, nil, fmt.Errorf("parse %q: %w", def, err)
	}
	if forward, err = src.NewTransform(dst); err != nil {
		return nil, nil, fmt.Errorf("forward transform: %w", err)
	}
	if inverse, err = dst.NewTransform(src); err != nil {
		return nil, nil, fmt.Errorf("inverse transform: %w", err)
	}
	return forward, inverse, nil
}

// Family returns the projection family.
func (p *Projection) Family() Family { return p.choice.family }

// Choice returns the family and parameters the projection was built from.
func (p *Projection) Choice() ProjectionChoice { return p.choice }

// Definition returns the PROJ.4 definition, or "" for PlateCarree.
func (p *Projection) Definition() string { return p.def }

// XPeriod returns the width of one revolution of the globe in projected x
// units for cyclic families, and 0 otherwise.
func (p *Projection) XPeriod() float64 {
	switch p.choice.family {
	case PlateCarree:
		return 360
	case Mercator:
		return 2 * math.Pi * earthRadius
	}
	return 0
}

// Forward projects longitude/latitude in degrees into this system.
func (p *Projection) Forward(lon, lat float64) (float64, float64, error) {
	switch {
	case p.choice.family == PlateCarree:
		return wrapLongitude(lon - p.choice.centralLongitude), lat, nil
	case p.choice.family.stereographic():
		return stereographicForward(p.choice, lon, lat)
	}
	if p.err != nil {
		return 0, 0, p.unavailable()
	}
	x, y, err := p.forward(lon, lat)
	if err != nil {
		return 0, 0, fmt.Errorf("%s forward (%g, %g): %w", p.choice.family, lon, lat, err)
	}
	return x, y, nil
}

// Inverse maps a point of this system back to longitude/latitude.
func (p *Projection) Inverse(x, y float64) (float64, float64, error) {
	switch {
	case p.choice.family == PlateCarree:
		return x + p.choice.centralLongitude, y, nil
	case p.choice.family.stereographic():
		return stereographicInverse(p.choice, x, y)
	}
	if p.err != nil {
		return 0, 0, p.unavailable()
	}
	lon, lat, err := p.inverse(x, y)
	if err != nil {
		return 0, 0, fmt.Errorf("%s inverse (%g, %g): %w", p.choice.family, x, y, err)
	}
	return lon, lat, nil
}

// TransformPoint maps (x, y) from src into this system by way of
// longitude/latitude. A nil src means LatLon.
func (p *Projection) TransformPoint(x, y float64, src CRS) (float64, float64, error) {
	if src == nil {
		src = LatLon
	}
	g, ok := src.(Geodetic)
	if !ok {
		return 0, 0, &UnsupportedProjectionError{
			Family: src.Family(),
			Reason: "source system cannot be converted to longitude/latitude",
		}
	}
	lon, lat, err := g.Inverse(x, y)
	if err != nil {
		return 0, 0, err
	}
	return p.Forward(lon, lat)
}

func (p *Projection) unavailable() error {
	return &UnsupportedProjectionError{
		Family: p.choice.family,
		Reason: fmt.Sprintf("no point transform available: %v", p.err),
	}
}

// wrapLongitude brings a longitude into [-180, 180], leaving both
// endpoints in place.
func wrapLongitude(lon float64) float64 {
	if lon > 180 || lon < -180 {
		return mod(lon+180, 360) - 180
	}
	return lon
}

// period returns the x period of a cyclic CRS, or 0.
func period(c CRS) float64 {
	if p, ok := c.(interface{ XPeriod() float64 }); ok {
		return p.XPeriod()
	}
	if c.Family().cyclic() {
		return 360
	}
	return 0
}
