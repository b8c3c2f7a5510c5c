package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storefront/core/catalog"
)

func TestParseMaxPrice(t *testing.T) {
	t.Parallel()

	f, err := catalog.ParseMaxPrice("")
	require.NoError(t, err)
	assert.False(t, f.HasMaxPrice)

	f, err = catalog.ParseMaxPrice(" 99.5 ")
	require.NoError(t, err)
	assert.True(t, f.HasMaxPrice)
	assert.InDelta(t, 99.5, f.MaxPrice, 1e-9)

	for _, in := range []string{"cheap", "-1", "NaN", "Inf", "1e400"} {
		_, err := catalog.ParseMaxPrice(in)
		assert.ErrorIs(t, err, catalog.ErrInvalidPrice, "input %q", in)
	}
}

func TestIsCategory(t *testing.T) {
	t.Parallel()

	assert.True(t, catalog.IsCategory(""))
	assert.True(t, catalog.IsCategory("men's clothing"))
	assert.False(t, catalog.IsCategory("toys"))
}
