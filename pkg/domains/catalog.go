package domains

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"math"
	"sort"
	"strings"
	"sync"

	"github.com/dhconnelly/rtreego"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

// CatalogEntry is a named domain.
type CatalogEntry struct {
	Name   string
	Extent BoundingBox // Longitude/latitude extent
	CRS    *CRSConfig  // Preferred projection, or nil to select one
}

// Area returns the entry's extent in square degrees.
func (e CatalogEntry) Area() float64 {
	return Classify(e.Extent, Thresholds{}).Area()
}

// catalogEntryYAML accepts both the list form and the mapping form of a
// domain.
type catalogEntryYAML struct {
	Bounds []float64  `yaml:"bounds"`
	CRS    *CRSConfig `yaml:"crs"`
}

func (c *catalogEntryYAML) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.SequenceNode {
		return node.Decode(&c.Bounds)
	}
	type plain catalogEntryYAML
	return node.Decode((*plain)(c))
}

type catalogFile struct {
	Domains        map[string]catalogEntryYAML `yaml:"domains"`
	AlternateNames map[string][]string         `yaml:"alternate_names"`
	TheCountries   []string                    `yaml:"the_countries"`
}

// Catalog is a set of named domains with an R-tree over their extents.
//
// Example:
//
//	cat, err := domains.DefaultCatalog()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	entry, ok := cat.Lookup("great_britain") // "United Kingdom"
//	names := cat.Containing(-3.2, 55.9)      // smallest domains first
type Catalog struct {
	entries  map[string]CatalogEntry
	aliases  map[string]string // normalised name or alternate name -> name
	definite map[string]bool   // names written with "the"
	rtree    *rtreego.Rtree
}

// indexedEntry places an entry in the R-tree.
type indexedEntry struct {
	name string
	rect rtreego.Rect
}

// Bounds method for rtreego.Spatial interface.
func (e indexedEntry) Bounds() rtreego.Rect {
	return e.rect
}

// minExtent keeps R-tree rectangles of degenerate boxes non-empty.
const minExtent = 1e-9

func toRect(b BoundingBox) rtreego.Rect {
	point := rtreego.Point{b.MinX, b.MinY}
	lengths := []float64{
		math.Max(b.MaxX-b.MinX, minExtent),
		math.Max(b.MaxY-b.MinY, minExtent),
	}
	rect, _ := rtreego.NewRect(point, lengths)
	return rect
}

var defaultCatalog = sync.OnceValues(func() (*Catalog, error) {
	return LoadCatalog(bytes.NewReader(catalogYAML))
})

// DefaultCatalog returns the catalog of built-in domains. It is loaded once
// and shared; a Catalog is read-only.
func DefaultCatalog() (*Catalog, error) {
	return defaultCatalog()
}

// LoadCatalog reads a catalog YAML document. See catalog.yaml for the
// format.
func LoadCatalog(r io.Reader) (*Catalog, error) {
	var file catalogFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	c := &Catalog{
		entries:  make(map[string]CatalogEntry, len(file.Domains)),
		aliases:  make(map[string]string),
		definite: make(map[string]bool),
		rtree:    rtreego.NewTree(2, 25, 50),
	}

	for name, raw := range file.Domains {
		extent, err := NewBoundingBox(raw.Bounds)
		if err != nil {
			return nil, fmt.Errorf("domain %q: %w", name, err)
		}
		if err := extent.ValidateGeographic(); err != nil {
			return nil, fmt.Errorf("domain %q: %w", name, err)
		}
		if raw.CRS != nil {
			if _, err := raw.CRS.Build(); err != nil {
				return nil, fmt.Errorf("domain %q crs: %w", name, err)
			}
		}
		c.entries[name] = CatalogEntry{Name: name, Extent: extent, CRS: raw.CRS}
		c.aliases[normalizeDomainName(name)] = name
		c.rtree.Insert(indexedEntry{name: name, rect: toRect(extent.Unwrapped())})
	}

	for name, alternates := range file.AlternateNames {
		if _, ok := c.entries[name]; !ok {
			return nil, fmt.Errorf("alternate names given for unknown domain %q", name)
		}
		for _, alt := range alternates {
			key := normalizeDomainName(alt)
			if other, ok := c.aliases[key]; ok && other != name {
				return nil, fmt.Errorf("alternate name %q of %q already names %q", alt, name, other)
			}
			c.aliases[key] = name
		}
	}

	for _, name := range file.TheCountries {
		c.definite[name] = true
	}
	return c, nil
}

// normalizeDomainName folds case and treats underscores as spaces.
func normalizeDomainName(name string) string {
	return strings.ToLower(strings.TrimSpace(strings.ReplaceAll(name, "_", " ")))
}

// Lookup finds a domain by name or alternate name, ignoring case and
// treating underscores as spaces.
func (c *Catalog) Lookup(name string) (CatalogEntry, bool) {
	canonical, ok := c.aliases[normalizeDomainName(name)]
	if !ok {
		return CatalogEntry{}, false
	}
	return c.entries[canonical], true
}

// Definite reports whether the domain name reads with a leading "the", as in
// "the Netherlands".
func (c *Catalog) Definite(name string) bool {
	return c.definite[name]
}

// Count returns the number of domains in the catalog.
func (c *Catalog) Count() int {
	return len(c.entries)
}

// Names returns all domain names, sorted.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.entries))
	for name := range c.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Intersecting returns the domains whose extent intersects b, smallest
// first. Antimeridian spans are matched on either side of the seam.
func (c *Catalog) Intersecting(b BoundingBox) []CatalogEntry {
	return c.search(b.Unwrapped())
}

// Containing returns the domains whose extent contains the point, smallest
// first.
func (c *Catalog) Containing(lon, lat float64) []CatalogEntry {
	lon = wrapLongitude(lon)
	return c.search(BoundingBox{MinX: lon, MaxX: lon, MinY: lat, MaxY: lat})
}

func (c *Catalog) search(q BoundingBox) []CatalogEntry {
	seen := make(map[string]bool)
	var result []CatalogEntry
	for _, shift := range []float64{-360, 0, 360} {
		shifted := BoundingBox{MinX: q.MinX + shift, MaxX: q.MaxX + shift, MinY: q.MinY, MaxY: q.MaxY}
		for _, spatial := range c.rtree.SearchIntersect(toRect(shifted)) {
			entry := spatial.(indexedEntry)
			if seen[entry.name] {
				continue
			}
			seen[entry.name] = true
			result = append(result, c.entries[entry.name])
		}
	}

	sort.Slice(result, func(i, j int) bool {
		ai, aj := result[i].Area(), result[j].Area()
		if ai != aj {
			return ai < aj
		}
		return result[i].Name < result[j].Name
	})
	return result
}
