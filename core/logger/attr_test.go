package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storefront/core/logger"
)

func TestGroup(t *testing.T) {
	t.Parallel()
	attr := logger.Group("cart", slog.String("id", "5"), slog.Int("qty", 2))
	require.Equal(t, "cart", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "id", g[0].Key)
	assert.Equal(t, "qty", g[1].Key)
}

func TestErrors(t *testing.T) {
	t.Parallel()
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, err1, g[0].Value.Any())
	assert.Equal(t, err2, g[1].Value.Any())

	assert.True(t, logger.Errors(nil).Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	t.Parallel()
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestEmptyStringHelpers(t *testing.T) {
	t.Parallel()

	assert.True(t, logger.RequestID("").Equal(slog.Attr{}))
	assert.True(t, logger.Username("").Equal(slog.Attr{}))
	assert.True(t, logger.ProductID("").Equal(slog.Attr{}))
	assert.True(t, logger.Key("k", nil).Equal(slog.Attr{}))

	assert.Equal(t, "mor_2314", logger.Username("mor_2314").Value.String())
	assert.Equal(t, "5", logger.ProductID("5").Value.String())
}

func TestSimpleHelpers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		attr slog.Attr
		key  string
	}{
		{logger.Duration(time.Second), "duration"},
		{logger.Elapsed(time.Now()), "elapsed"},
		{logger.Method("GET"), "method"},
		{logger.Path("/cart"), "path"},
		{logger.StatusCode(403), "status_code"},
		{logger.Component("cart"), "component"},
		{logger.Action("checkout"), "action"},
		{logger.Result("denied"), "result"},
		{logger.Count("total_items", 3), "total_items"},
		{logger.Attempt(2), "attempt"},
		{logger.Route("/cart"), "route"},
		{logger.StorageKey("cartItems"), "storage_key"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.key, tt.attr.Key)
	}
}
