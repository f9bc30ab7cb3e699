package http_test

import (
	"net/http"
	"testing"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestValidation(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		target     string
		role       user.Role
		body       any
		wantFields []string
	}{
		{"unknown order status", http.MethodGet, "/api/v1/orders?status=lost", user.RoleServer, nil, []string{"status"}},
		{"malformed item id in body", http.MethodPost, "/api/v1/cart/items", user.RoleClient,
			map[string]any{"item_id": "margherita"}, []string{"item_id"}},
		{"numeric price", http.MethodPut, "/api/v1/menu/items/" + kernel.NewUUID().String() + "/price", user.RoleAdmin,
			map[string]any{"price": 9.5}, []string{"price"}},
		{"unknown role", http.MethodPut, "/api/v1/users/" + kernel.NewUUID().String() + "/role", user.RoleAdmin,
			map[string]any{"role": "chef"}, []string{"role"}},
		{"malformed path id", http.MethodGet, "/api/v1/orders/42", user.RoleClient, nil, []string{"id"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			rec := f.do(t, tt.method, tt.target, f.token(t, kernel.NewUUID(), tt.role), tt.body)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.wantFields, decodeError(t, rec).Fields)
		})
	}
}

func TestRequestValidationRunsAfterAuthentication(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/api/v1/orders?status=lost", "", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSwaggerDocument(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/swagger/doc.json", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"openapi":"3.0.3"`)
	assert.Contains(t, rec.Body.String(), "/api/v1/orders/{id}/qrcode")
}
