package domains

import (
	"errors"
	"testing"

	"github.com/ctessum/geom/proj"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countingBuilder(calls *int) transformBuilder {
	return func(def string) (proj.Transformer, proj.Transformer, error) {
		*calls++
		identity := func(x, y float64) (float64, float64, error) { return x, y, nil }
		return identity, identity, nil
	}
}

func TestTransformCacheHit(t *testing.T) {
	c := newTransformCache(4)
	calls := 0

	_, _, err := c.get("+proj=merc", countingBuilder(&calls))
	require.NoError(t, err)
	fwd, _, err := c.get("+proj=merc", countingBuilder(&calls))
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	x, y, err := fwd(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 1.0, x)
	assert.Equal(t, 2.0, y)
	assert.Equal(t, TransformCacheStats{Definitions: 1, Capacity: 4, Hits: 1, Misses: 1}, c.stats())
}

func TestTransformCacheEviction(t *testing.T) {
	c := newTransformCache(2)
	calls := 0
	build := countingBuilder(&calls)

	for _, def := range []string{"a", "b", "a", "c"} {
		_, _, err := c.get(def, build)
		require.NoError(t, err)
	}
	// "b" was least recently used when "c" arrived
	assert.Equal(t, 3, calls)
	assert.Contains(t, c.entries, "a")
	assert.Contains(t, c.entries, "c")
	assert.NotContains(t, c.entries, "b")

	_, _, err := c.get("b", build)
	require.NoError(t, err)
	assert.Equal(t, 4, calls)
	assert.Equal(t, 2, c.stats().Definitions)
}

func TestTransformCacheSkipsFailures(t *testing.T) {
	c := newTransformCache(2)
	calls := 0
	failing := func(def string) (proj.Transformer, proj.Transformer, error) {
		calls++
		return nil, nil, errors.New("bad definition")
	}

	for i := 0; i < 2; i++ {
		_, _, err := c.get("+proj=nope", failing)
		assert.Error(t, err)
	}
	assert.Equal(t, 2, calls)
	assert.Zero(t, c.stats().Definitions)
}

func TestProjectionsShareTransforms(t *testing.T) {
	before := TransformCache()
	_, err := ParseCRS("Mercator", map[string]float64{"central_longitude": 33.25})
	require.NoError(t, err)
	_, err = ParseCRS("Mercator", map[string]float64{"central_longitude": 33.25})
	require.NoError(t, err)

	after := TransformCache()
	assert.GreaterOrEqual(t, after.Hits-before.Hits, 1)
}
