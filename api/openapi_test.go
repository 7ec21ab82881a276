package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The contract file is hand-maintained; this keeps it loadable and in
// sync with the routes the server actually mounts.
func TestOpenAPIContract_IsValid(t *testing.T) {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromFile("openapi.yml")
	require.NoError(t, err)

	require.NoError(t, doc.Validate(context.Background()))
}

func TestOpenAPIContract_DeclaresAllRoutes(t *testing.T) {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromFile("openapi.yml")
	require.NoError(t, err)

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/v1/orders"},
		{http.MethodGet, "/api/v1/orders"},
		{http.MethodGet, "/api/v1/orders/{id}/status"},
		{http.MethodPatch, "/api/v1/orders/{id}/status"},
		{http.MethodGet, "/health"},
	}

	for _, route := range routes {
		item := doc.Paths.Find(route.path)
		require.NotNil(t, item, "path %s is missing", route.path)
		assert.NotNil(t, item.GetOperation(route.method),
			"operation %s %s is missing", route.method, route.path)
	}
}
