package domains

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.True(t, cfg.ExtractDomain)
	assert.Equal(t, DefaultDilationSize, cfg.DilationSize)
	assert.Equal(t, FallbackUnclipped, cfg.Fallback)
	assert.Equal(t, DefaultThresholds(), cfg.Thresholds)

	ref, err := cfg.referenceCRS()
	require.NoError(t, err)
	assert.Equal(t, PlateCarree, ref.Family())
}

func TestLoadConfig(t *testing.T) {
	doc := `
extract_domain: false
dilation_size: 8
fallback: error
approximate_bounds: true
workers: 4
thresholds:
  small: 0.1
  large: 0.5
reference_crs:
  name: PlateCarree
  central_longitude: 180
`
	cfg, err := LoadConfig(strings.NewReader(doc))
	require.NoError(t, err)

	assert.False(t, cfg.ExtractDomain)
	assert.Equal(t, 8, cfg.DilationSize)
	assert.Equal(t, FallbackError, cfg.Fallback)
	assert.True(t, cfg.ApproximateBounds)
	assert.Equal(t, 4, cfg.workers())
	assert.Equal(t, Thresholds{Small: 0.1, Large: 0.5}, cfg.Thresholds)

	ref, err := cfg.referenceCRS()
	require.NoError(t, err)
	assert.Equal(t, 180.0, ref.Choice().CentralLongitude())
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultDilationSize, cfg.DilationSize)
	assert.True(t, cfg.ExtractDomain)

	cfg, err = LoadConfig(strings.NewReader("dilation_size: 4\n"))
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.DilationSize)
	assert.Equal(t, FallbackUnclipped, cfg.Fallback)
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"unknown key", "crop: true\n", "field crop not found"},
		{"negative dilation", "dilation_size: -1\n", "dilation_size"},
		{"inverted thresholds", "thresholds: {small: 0.7, large: 0.2}\n", "thresholds"},
		{"unknown fallback", "fallback: ignore\n", "fallback policy"},
		{"unknown projection", "reference_crs: {name: Robinson}\n", "reference_crs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestConfigLoggerDefaults(t *testing.T) {
	var cfg Config
	assert.NotNil(t, cfg.logger())
	assert.Positive(t, cfg.workers())
}
