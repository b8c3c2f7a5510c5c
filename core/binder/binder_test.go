package binder_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storefront/core/binder"
)

func jsonRequest(body, contentType string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	if contentType != "" {
		r.Header.Set("Content-Type", contentType)
	}
	return r
}

func TestJSON(t *testing.T) {
	t.Parallel()

	type login struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	t.Run("decodes body", func(t *testing.T) {
		t.Parallel()
		var got login
		err := binder.JSON()(jsonRequest(`{"username":"johnd","password":"m38rmF$"}`, "application/json; charset=utf-8"), &got)
		require.NoError(t, err)
		assert.Equal(t, login{Username: "johnd", Password: "m38rmF$"}, got)
	})

	t.Run("empty body keeps target", func(t *testing.T) {
		t.Parallel()
		got := login{Username: "kept"}
		require.NoError(t, binder.JSON()(jsonRequest("", ""), &got))
		assert.Equal(t, "kept", got.Username)
	})

	tests := []struct {
		name        string
		body        string
		contentType string
		want        error
	}{
		{"unknown field", `{"user":"x"}`, "application/json", binder.ErrFailedToParseJSON},
		{"malformed", `{"username":`, "application/json", binder.ErrFailedToParseJSON},
		{"trailing data", `{"username":"a"} {"username":"b"}`, "application/json", binder.ErrFailedToParseJSON},
		{"wrong type", `{"username":1}`, "", binder.ErrFailedToParseJSON},
		{"form content type", `username=a`, "application/x-www-form-urlencoded", binder.ErrUnsupportedMediaType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var got login
			assert.ErrorIs(t, binder.JSON()(jsonRequest(tt.body, tt.contentType), &got), tt.want)
		})
	}
}

type productsRequest struct {
	Category string   `query:"category"`
	Sort     string   `query:"sort"`
	MaxPrice *float64 `query:"max_price"`
	Limit    int
	InStock  bool   `query:"in_stock"`
	Internal string `query:"-"`
}

func TestQuery(t *testing.T) {
	t.Parallel()

	t.Run("fills tagged fields", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/home?category=jewelery&sort=desc&max_price=99.5&limit=5&in_stock=yes&Internal=x", nil)
		var got productsRequest
		require.NoError(t, binder.Query()(r, &got))
		assert.Equal(t, "jewelery", got.Category)
		assert.Equal(t, "desc", got.Sort)
		require.NotNil(t, got.MaxPrice)
		assert.InDelta(t, 99.5, *got.MaxPrice, 0.001)
		assert.Equal(t, 5, got.Limit)
		assert.True(t, got.InStock)
		assert.Empty(t, got.Internal)
	})

	t.Run("missing params leave zero values", func(t *testing.T) {
		t.Parallel()
		var got productsRequest
		require.NoError(t, binder.Query()(httptest.NewRequest(http.MethodGet, "/home", nil), &got))
		assert.Nil(t, got.MaxPrice)
		assert.Equal(t, productsRequest{}, got)
	})

	t.Run("bad number", func(t *testing.T) {
		t.Parallel()
		var got productsRequest
		err := binder.Query()(httptest.NewRequest(http.MethodGet, "/home?max_price=cheap", nil), &got)
		require.ErrorIs(t, err, binder.ErrFailedToParseQuery)
		assert.Contains(t, err.Error(), "max_price")
	})

	t.Run("invalid target", func(t *testing.T) {
		t.Parallel()
		err := binder.Query()(httptest.NewRequest(http.MethodGet, "/", nil), productsRequest{})
		assert.ErrorIs(t, err, binder.ErrInvalidTarget)
		assert.ErrorIs(t, err, binder.ErrFailedToParseQuery)
	})
}

func TestPathAndBind(t *testing.T) {
	t.Parallel()

	params := map[string]string{"userID": "1", "orderID": "5"}
	extract := func(_ *http.Request, name string) string { return params[name] }

	type orderRequest struct {
		UserID  int    `path:"userID"`
		OrderID string `path:"orderID"`
		Expand  bool   `query:"expand"`
	}

	var got orderRequest
	r := httptest.NewRequest(http.MethodGet, "/cart-history/1/5?expand=true", nil)
	require.NoError(t, binder.Bind(r, &got, binder.Path(extract), binder.Query()))
	assert.Equal(t, orderRequest{UserID: 1, OrderID: "5", Expand: true}, got)

	params["userID"] = "one"
	err := binder.Bind(r, &got, binder.Path(extract), binder.Query())
	assert.ErrorIs(t, err, binder.ErrFailedToParsePath)
}
