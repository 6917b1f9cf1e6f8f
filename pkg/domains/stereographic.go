package domains

import (
	"fmt"
	"math"
)

const degToRad = math.Pi / 180

// stereographicOrigin returns the longitude and latitude of the point the
// projection is centred on.
func (c ProjectionChoice) stereographicOrigin() (lon, lat float64) {
	switch c.family {
	case NorthPolarStereo:
		return c.centralLongitude, 90
	case SouthPolarStereo:
		return c.centralLongitude, -90
	}
	return c.centralLongitude, c.centralLatitude
}

// stereographicForward is the spherical stereographic projection with unit
// scale at the origin (Snyder, Map Projections: A Working Manual, eq. 21-2
// to 21-4).
func stereographicForward(c ProjectionChoice, lon, lat float64) (float64, float64, error) {
	lon0, lat0 := c.stereographicOrigin()
	sinPhi, cosPhi := math.Sincos(lat * degToRad)
	sinPhi1, cosPhi1 := math.Sincos(lat0 * degToRad)
	sinDl, cosDl := math.Sincos((lon - lon0) * degToRad)

	denom := 1 + sinPhi1*sinPhi + cosPhi1*cosPhi*cosDl
	if denom < 1e-12 {
		return 0, 0, fmt.Errorf("%s forward (%g, %g): point is opposite the projection centre", c.family, lon, lat)
	}
	k := 2 * earthRadius / denom
	x := k * cosPhi * sinDl
	y := k * (cosPhi1*sinPhi - sinPhi1*cosPhi*cosDl)
	return x, y, nil
}

// stereographicInverse maps projected metres back to longitude/latitude.
// Every point of the plane has an inverse.
func stereographicInverse(c ProjectionChoice, x, y float64) (float64, float64, error) {
	lon0, lat0 := c.stereographicOrigin()
	rho := math.Hypot(x, y)
	if rho == 0 {
		return lon0, lat0, nil
	}
	sinC, cosC := math.Sincos(2 * math.Atan(rho/(2*earthRadius)))
	sinPhi1, cosPhi1 := math.Sincos(lat0 * degToRad)

	s := cosC*sinPhi1 + y*sinC*cosPhi1/rho
	lat := math.Asin(math.Max(-1, math.Min(1, s)))
	dl := math.Atan2(x*sinC, rho*cosPhi1*cosC-y*sinPhi1*sinC)
	return wrapLongitude(lon0 + dl/degToRad), lat / degToRad, nil
}
