package domains

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	geojson "github.com/paulmach/go.geojson"
	"gonum.org/v1/gonum/mat"
)

// Domain is the area shown by one map: a box in the coordinates of its CRS,
// the CRS itself and an optional name.
//
// A Domain is immutable after construction apart from its lazily computed
// longitude/latitude bounds, which are memoised safely for concurrent use.
type Domain struct {
	name    string
	bounds  *BoundingBox // In crs coordinates; nil means the full extent of crs
	crs     CRS
	cfg     Config
	catalog *Catalog

	latlonOnce sync.Once
	latlon     *BoundingBox
	latlonErr  error
}

// NewDomain creates a domain.
//
//   - With a CRS, bounds are taken as already expressed in that CRS.
//   - Without a CRS but with bounds, bounds are a longitude/latitude box;
//     the projection is chosen with a Selector and the box is projected into
//     it. If the box cannot be projected, cfg.Fallback decides between a
//     domain without bounds and an error.
//   - With neither, the domain covers the whole of cfg.ReferenceCRS.
//
// Example:
//
//	d, err := domains.NewDomain(
//	    &domains.BoundingBox{MinX: -20, MaxX: 40, MinY: 30, MaxY: 70},
//	    nil, "", domains.DefaultConfig())
//	// d.CRS().Family() == domains.AlbersEqualArea
func NewDomain(bounds *BoundingBox, crs CRS, name string, cfg Config) (*Domain, error) {
	d := &Domain{name: name, cfg: cfg}
	switch {
	case crs != nil:
		d.crs = crs
		if bounds != nil {
			b := *bounds
			d.bounds = &b
		}
	case bounds != nil:
		choice, err := NewSelector(cfg).Select(*bounds)
		if err != nil {
			return nil, err
		}
		p, err := NewProjection(choice)
		if err != nil {
			return nil, err
		}
		d.crs = p
		if d.bounds, err = d.project(*bounds, LatLon); err != nil {
			return nil, err
		}
	default:
		p, err := cfg.referenceCRS()
		if err != nil {
			return nil, fmt.Errorf("reference crs: %w", err)
		}
		d.crs = p
	}
	return d, nil
}

// FromName creates the domain called name in catalog. A nil catalog means
// DefaultCatalog. With a nil crs the domain uses the catalog's projection
// for the entry, or one chosen by a Selector.
func FromName(name string, crs CRS, catalog *Catalog, cfg Config) (*Domain, error) {
	if catalog == nil {
		var err error
		if catalog, err = DefaultCatalog(); err != nil {
			return nil, err
		}
	}
	entry, ok := catalog.Lookup(name)
	if !ok {
		return nil, &UnknownDomainError{Name: name}
	}

	var d *Domain
	switch {
	case crs != nil:
		d = &Domain{name: entry.Name, crs: crs, cfg: cfg}
	case entry.CRS != nil:
		p, err := entry.CRS.Build()
		if err != nil {
			return nil, fmt.Errorf("domain %q: %w", entry.Name, err)
		}
		d = &Domain{name: entry.Name, crs: p, cfg: cfg}
	default:
		var err error
		if d, err = NewDomain(&entry.Extent, nil, entry.Name, cfg); err != nil {
			return nil, fmt.Errorf("domain %q: %w", entry.Name, err)
		}
		d.catalog = catalog
		return d, nil
	}

	var err error
	if d.bounds, err = d.project(entry.Extent, LatLon); err != nil {
		return nil, fmt.Errorf("domain %q: %w", entry.Name, err)
	}
	d.catalog = catalog
	return d, nil
}

// project maps b from src into the domain CRS, applying the fallback policy
// to projections whose bounds cannot be computed. A nil box with a nil error
// means the domain is unclipped.
func (d *Domain) project(b BoundingBox, src CRS) (*BoundingBox, error) {
	out, err := ProjectBounds(b, d.crs, ProjectOptions{
		Source:           src,
		AllowApproximate: d.cfg.ApproximateBounds,
	})
	if err == nil {
		return &out, nil
	}
	if !errors.Is(err, ErrUnsupportedProjection) || d.cfg.Fallback == FallbackError {
		return nil, err
	}
	d.cfg.logger().Warn("domain bounds not projected, data will not be clipped",
		slog.String("domain", d.name),
		slog.String("family", d.crs.Family().String()),
		slog.Any("bounds", b.Extents()),
		slog.Any("error", err))
	return nil, nil
}

// Name returns the domain name, or "" for a custom domain.
func (d *Domain) Name() string { return d.name }

// CRS returns the coordinate reference system of the domain.
func (d *Domain) CRS() CRS { return d.crs }

// Bounds returns a copy of the domain box in CRS coordinates, or nil when the
// domain covers the whole CRS.
func (d *Domain) Bounds() *BoundingBox {
	if d.bounds == nil {
		return nil
	}
	b := *d.bounds
	return &b
}

// LatLonBounds returns the domain box in longitude/latitude. It is computed
// on first use and memoised. A domain without bounds returns nil.
func (d *Domain) LatLonBounds() (*BoundingBox, error) {
	d.latlonOnce.Do(func() {
		if d.bounds == nil {
			return
		}
		b, err := ProjectBounds(*d.bounds, LatLon, ProjectOptions{
			Source:           d.crs,
			AllowApproximate: d.cfg.ApproximateBounds,
		})
		if err != nil {
			d.latlonErr = fmt.Errorf("longitude/latitude bounds: %w", err)
			return
		}
		d.latlon = &b
	})
	if d.latlon == nil {
		return nil, d.latlonErr
	}
	b := *d.latlon
	return &b, nil
}

// Title returns a human readable description of the domain, such as
// "the Netherlands", "Europe" or "a custom domain ([-20, 40, 30, 70])".
func (d *Domain) Title() string {
	if d.name == "" {
		title := "a custom domain"
		if b, err := d.LatLonBounds(); err == nil && b != nil {
			r := b.Round(2)
			extents := r.Extents()
			parts := make([]string, len(extents))
			for i, v := range extents {
				parts[i] = fmt.Sprintf("%g", v)
			}
			title += fmt.Sprintf(" ([%s])", strings.Join(parts, ", "))
		}
		return title
	}
	cat := d.catalog
	if cat == nil {
		cat, _ = DefaultCatalog()
	}
	if cat != nil && cat.Definite(d.name) {
		return "the " + d.name
	}
	return d.name
}

// windowBounds returns the longitude/latitude box data is cut to. Bounds that
// cannot be mapped back are handled by the fallback policy.
func (d *Domain) windowBounds() (*BoundingBox, error) {
	b, err := d.LatLonBounds()
	if err != nil && errors.Is(err, ErrUnsupportedProjection) && d.cfg.Fallback != FallbackError {
		return nil, nil
	}
	return b, err
}

// Window cuts values on the (x, y) longitude/latitude grid to the domain.
// See PlanWindow.
func (d *Domain) Window(values, x, y *mat.Dense) (v, wx, wy *mat.Dense, err error) {
	b, err := d.windowBounds()
	if err != nil {
		return nil, nil, nil, err
	}
	return Window(values, x, y, b, d.cfg)
}

// WindowFields cuts several fields sharing the (x, y) grid to the domain.
// See the package-level WindowFields.
func (d *Domain) WindowFields(ctx context.Context, fields []*mat.Dense, x, y *mat.Dense) (*WindowedFields, error) {
	b, err := d.windowBounds()
	if err != nil {
		return nil, err
	}
	return WindowFields(ctx, fields, x, y, b, d.cfg)
}

// Outline returns the domain as a GeoJSON polygon feature in
// longitude/latitude, carrying the name, title and projection as
// properties. A domain without bounds is outlined as the whole globe.
// Antimeridian spans keep increasing longitudes past 180.
func (d *Domain) Outline() (*geojson.Feature, error) {
	b, err := d.windowBounds()
	if err != nil {
		return nil, err
	}
	box := GlobalBounds
	if b != nil {
		box = b.Unwrapped()
	}

	ring := [][]float64{
		{box.MinX, box.MinY},
		{box.MaxX, box.MinY},
		{box.MaxX, box.MaxY},
		{box.MinX, box.MaxY},
		{box.MinX, box.MinY},
	}
	f := geojson.NewPolygonFeature([][][]float64{ring})
	f.BoundingBox = []float64{box.MinX, box.MinY, box.MaxX, box.MaxY}
	f.SetProperty("title", d.Title())
	f.SetProperty("projection", d.crs.Family().String())
	if d.name != "" {
		f.SetProperty("name", d.name)
	}
	if p, ok := d.crs.(*Projection); ok {
		for k, v := range p.Choice().Params() {
			f.SetProperty(k, v)
		}
	}
	return f, nil
}
