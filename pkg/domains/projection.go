package domains

import (
	"sort"
	"strings"
)

// Family identifies a map projection family.
type Family int

const (
	FamilyUnknown Family = iota
	PlateCarree
	Mercator
	AlbersEqualArea
	TransverseMercator
	LambertConformal
	Stereographic
	NorthPolarStereo
	SouthPolarStereo
)

var familyNames = map[Family]string{
	FamilyUnknown:      "Unknown",
	PlateCarree:        "PlateCarree",
	Mercator:           "Mercator",
	AlbersEqualArea:    "AlbersEqualArea",
	TransverseMercator: "TransverseMercator",
	LambertConformal:   "LambertConformal",
	Stereographic:      "Stereographic",
	NorthPolarStereo:   "NorthPolarStereo",
	SouthPolarStereo:   "SouthPolarStereo",
}

// String returns the projection family name.
func (f Family) String() string {
	if name, ok := familyNames[f]; ok {
		return name
	}
	return "Unknown"
}

// ParseFamily looks up a family by name, ignoring case, spaces and
// underscores ("plate_carree" and "PlateCarree" are the same family).
func ParseFamily(name string) (Family, error) {
	key := normalizeFamilyName(name)
	for f, n := range familyNames {
		if f != FamilyUnknown && normalizeFamilyName(n) == key {
			return f, nil
		}
	}
	return FamilyUnknown, &UnknownProjectionError{Name: name}
}

// Families returns the names of all buildable families, sorted.
func Families() []string {
	names := make([]string, 0, len(familyNames)-1)
	for f, n := range familyNames {
		if f != FamilyUnknown {
			names = append(names, n)
		}
	}
	sort.Strings(names)
	return names
}

func normalizeFamilyName(name string) string {
	r := strings.NewReplacer("_", "", " ", "", "-", "")
	return strings.ToLower(r.Replace(name))
}

// cyclic reports whether x coordinates of the family wrap around the globe.
func (f Family) cyclic() bool {
	return f == PlateCarree || f == Mercator
}

// stereographic reports whether the family is azimuthal stereographic,
// whose extremes are not at the corners of a projected box.
func (f Family) stereographic() bool {
	return f == Stereographic || f == NorthPolarStereo || f == SouthPolarStereo
}

// polar reports whether the family is centred on a pole.
func (f Family) polar() bool {
	return f == NorthPolarStereo || f == SouthPolarStereo
}

// ProjectionChoice is an immutable projection family with its parameters.
//
// Which parameters are meaningful depends on the family: PlateCarree,
// Mercator and the polar stereographic families use CentralLongitude only;
// TransverseMercator and Stereographic add CentralLatitude; AlbersEqualArea
// and LambertConformal also use StandardParallels.
type ProjectionChoice struct {
	family            Family
	centralLongitude  float64
	centralLatitude   float64
	standardParallels [2]float64
}

// NewProjectionChoice builds a choice, keeping only the parameters the
// family uses.
func NewProjectionChoice(f Family, centralLon, centralLat float64, parallels [2]float64) ProjectionChoice {
	c := ProjectionChoice{family: f, centralLongitude: centralLon}
	switch f {
	case TransverseMercator, Stereographic:
		c.centralLatitude = centralLat
	case AlbersEqualArea, LambertConformal:
		c.centralLatitude = centralLat
		c.standardParallels = parallels
	}
	return c
}

// Family returns the projection family.
func (c ProjectionChoice) Family() Family { return c.family }

// CentralLongitude returns the central meridian in degrees.
func (c ProjectionChoice) CentralLongitude() float64 { return c.centralLongitude }

// CentralLatitude returns the latitude of origin in degrees.
func (c ProjectionChoice) CentralLatitude() float64 { return c.centralLatitude }

// StandardParallels returns the two standard parallels of a conic family.
func (c ProjectionChoice) StandardParallels() [2]float64 { return c.standardParallels }

// Params returns the family's parameters keyed by their conventional names.
func (c ProjectionChoice) Params() map[string]float64 {
	p := map[string]float64{"central_longitude": c.centralLongitude}
	switch c.family {
	case TransverseMercator, Stereographic:
		p["central_latitude"] = c.centralLatitude
	case AlbersEqualArea, LambertConformal:
		p["central_latitude"] = c.centralLatitude
		p["standard_parallel_1"] = c.standardParallels[0]
		p["standard_parallel_2"] = c.standardParallels[1]
	}
	return p
}

// ParseCRS builds a projection from a family name and parameters keyed as
// in Params. An empty name selects PlateCarree. Missing parameters default
// to zero, except standard parallels, which default to 20 and 50.
//
// Example:
//
//	crs, err := domains.ParseCRS("LambertConformal", map[string]float64{
//	    "central_longitude": 10,
//	    "central_latitude":  50,
//	})
func ParseCRS(name string, params map[string]float64) (*Projection, error) {
	f := PlateCarree
	if name != "" {
		var err error
		if f, err = ParseFamily(name); err != nil {
			return nil, err
		}
	}
	parallels := [2]float64{20, 50}
	if v, ok := params["standard_parallel_1"]; ok {
		parallels[0] = v
	}
	if v, ok := params["standard_parallel_2"]; ok {
		parallels[1] = v
	}
	choice := NewProjectionChoice(f, params["central_longitude"], params["central_latitude"], parallels)
	return NewProjection(choice)
}
