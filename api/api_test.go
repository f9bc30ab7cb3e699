package api_test

import (
	"encoding/json"
	"testing"

	"restaurant/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestLoad(t *testing.T) {
	doc, err := api.Load(t.Context())

	require.NoError(t, err)
	assert.Equal(t, "3.0.3", doc.OpenAPI)

	routes := []struct {
		path   string
		method string
	}{
		{"/api/v1/menu", "GET"},
		{"/api/v1/menu/categories/{id}", "PATCH"},
		{"/api/v1/menu/items/{id}/price", "PUT"},
		{"/api/v1/cart", "DELETE"},
		{"/api/v1/cart/items/{id}/instructions", "PUT"},
		{"/api/v1/orders", "POST"},
		{"/api/v1/orders/{id}", "GET"},
		{"/api/v1/orders/{id}/advance", "POST"},
		{"/api/v1/orders/{id}/cancel", "POST"},
		{"/api/v1/orders/{id}/qrcode", "GET"},
		{"/api/v1/profile", "POST"},
		{"/api/v1/users/{id}/role", "PUT"},
		{"/api/v1/dashboard", "GET"},
	}
	for _, r := range routes {
		item := doc.Paths.Value(r.path)
		require.NotNil(t, item, r.path)
		assert.NotNil(t, item.GetOperation(r.method), "%s %s", r.method, r.path)
	}
}

func TestLoad_ReturnsIndependentDocuments(t *testing.T) {
	first, err := api.Load(t.Context())
	require.NoError(t, err)
	second, err := api.Load(t.Context())
	require.NoError(t, err)

	first.Info.Title = "changed"

	assert.NotEqual(t, first.Info.Title, second.Info.Title)
}

func TestRegisteredSwaggerDoc(t *testing.T) {
	raw, err := swag.ReadDoc()
	require.NoError(t, err)

	var doc struct {
		OpenAPI string         `json:"openapi"`
		Paths   map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	assert.Equal(t, "3.0.3", doc.OpenAPI)
	assert.Contains(t, doc.Paths, "/api/v1/orders/{id}/qrcode")
}
