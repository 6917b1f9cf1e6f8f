package domains

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"

	"gopkg.in/yaml.v3"
)

// DefaultDilationSize is the side of the square used to grow window masks.
// A 3×3 square keeps one extra cell on every side of the box, enough to keep
// cells whose centre is outside the box but whose area overlaps it.
const DefaultDilationSize = 3

// FallbackPolicy says what a Domain does when its bounds cannot be
// reprojected into its CRS.
type FallbackPolicy string

const (
	// FallbackUnclipped keeps the domain without projected bounds: the map
	// shows the projection's full extent and data is not cropped.
	FallbackUnclipped FallbackPolicy = "unclipped"

	// FallbackError returns the UnsupportedProjectionError to the caller.
	FallbackError FallbackPolicy = "error"
)

// CRSConfig names a projection family and its parameters, as accepted by
// ParseCRS.
type CRSConfig struct {
	Name   string             `yaml:"name"`
	Params map[string]float64 `yaml:",inline"`
}

// Build returns the projection described by c.
func (c CRSConfig) Build() (*Projection, error) {
	return ParseCRS(c.Name, c.Params)
}

// Config holds the settings shared by domain construction, projection
// selection and data windowing. It is passed explicitly; there is no
// package-level configuration.
type Config struct {
	// ExtractDomain enables cropping data to the domain. When false,
	// windowing returns its inputs unchanged.
	ExtractDomain bool `yaml:"extract_domain"`

	// ReferenceCRS is the system of a domain built with neither bounds nor
	// a CRS. Domain bounds given without a CRS are always
	// longitude/latitude, as projection selection requires.
	ReferenceCRS CRSConfig `yaml:"reference_crs"`

	// DilationSize is the side of the square that grows the window mask.
	// Values below 2 disable dilation.
	DilationSize int `yaml:"dilation_size"`

	// Thresholds are the area fractions used by projection selection.
	Thresholds Thresholds `yaml:"thresholds"`

	// Fallback is applied when domain bounds cannot be reprojected.
	Fallback FallbackPolicy `yaml:"fallback"`

	// ApproximateBounds opts in to edge sampling for stereographic families
	// instead of treating them as unsupported.
	ApproximateBounds bool `yaml:"approximate_bounds"`

	// Workers is the number of goroutines used by WindowFields.
	// If 0, defaults to runtime.NumCPU().
	Workers int `yaml:"workers"`

	// Logger receives debug and warning records. If nil, records are
	// discarded.
	Logger *slog.Logger `yaml:"-"`
}

// DefaultConfig returns the configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		ExtractDomain: true,
		ReferenceCRS:  CRSConfig{Name: PlateCarree.String()},
		DilationSize:  DefaultDilationSize,
		Thresholds:    DefaultThresholds(),
		Fallback:      FallbackUnclipped,
		Workers:       runtime.NumCPU(),
	}
}

// LoadConfig reads a YAML document over DefaultConfig. Keys absent from the
// document keep their defaults; unknown keys are an error.
//
// Example document:
//
//	extract_domain: true
//	dilation_size: 8
//	reference_crs:
//	  name: PlateCarree
//	  central_longitude: 180
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for values that cannot work.
func (c Config) Validate() error {
	if c.DilationSize < 0 {
		return fmt.Errorf("dilation_size must not be negative, got %d", c.DilationSize)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	t := c.Thresholds
	if t.Small < 0 || t.Large > 1 || t.Small > t.Large {
		return fmt.Errorf("thresholds must satisfy 0 <= small <= large <= 1, got small=%g large=%g", t.Small, t.Large)
	}
	switch c.Fallback {
	case "", FallbackUnclipped, FallbackError:
	default:
		return fmt.Errorf("unknown fallback policy %q", c.Fallback)
	}
	if _, err := c.ReferenceCRS.Build(); err != nil {
		return fmt.Errorf("reference_crs: %w", err)
	}
	return nil
}

func (c Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (c Config) workers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.NumCPU()
}

func (c Config) referenceCRS() (*Projection, error) {
	return c.ReferenceCRS.Build()
}
