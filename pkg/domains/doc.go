// Package domains chooses map projections for geographic areas, projects
// bounding boxes between coordinate systems and cuts gridded data down to
// the area a map shows.
//
// # Choosing a Projection
//
// A longitude/latitude box is classified by its area, aspect ratio and
// central latitude, and a projection family is picked following the
// Projection Wizard heuristic:
//
//	choice, err := domains.SelectProjection(domains.BoundingBox{
//	    MinX: -20, MaxX: 40, MinY: 30, MaxY: 70,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(choice.Family(), choice.Params())
//	// AlbersEqualArea map[central_latitude:50 central_longitude:10 ...]
//
// # Projecting Bounds
//
// ProjectBounds maps a box into another CRS by sampling its corners and edge
// midpoints. Boxes that cross the antimeridian are written with MinX > MaxX:
//
//	pacific := domains.BoundingBox{MinX: 170, MaxX: -170, MinY: -10, MaxY: 10}
//	box, err := domains.ProjectBounds(pacific, domains.LatLon, domains.ProjectOptions{})
//	// box == {170, 190, -10, 10}
//
// # Windowing Data
//
// Window crops a field and its coordinate grid to a box, converting between
// 0..360 and ±180 longitudes and rolling the grid when the box crosses the
// grid's seam:
//
//	v, lons, lats, err := domains.Window(values, lons, lats,
//	    &domains.BoundingBox{MinX: -30, MaxX: 30, MinY: 30, MaxY: 70},
//	    domains.DefaultConfig())
//
// # Domains
//
// A Domain ties a box, a CRS and a name together. Named domains come from a
// Catalog:
//
//	d, err := domains.FromName("great_britain", nil, nil, domains.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(d.Title()) // the United Kingdom
//
// # Errors
//
// Failures are typed errors matching a sentinel with errors.Is:
// ErrMalformedBoundingBox, ErrUnsupportedProjection, ErrEmptyWindow,
// ErrUnknownDomain, ErrUnknownProjection and ErrShapeMismatch.
package domains
