package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoc_IsValidJSONWithAllRoutes(t *testing.T) {
	var doc struct {
		Paths map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(SwaggerInfo.ReadDoc()), &doc))

	want := map[string][]string{
		"/pets":              {"get", "post"},
		"/pets/{petID}":      {"get", "delete"},
		"/tasks":             {"get", "post"},
		"/tasks/{taskID}":    {"get", "put", "delete"},
		"/health":            {"get", "post"},
		"/health/{metricID}": {"get", "delete"},
		"/users":             {"get", "post"},
		"/users/{userID}":    {"get", "delete"},
	}
	assert.Len(t, doc.Paths, len(want))
	for path, methods := range want {
		require.Contains(t, doc.Paths, path)
		for _, m := range methods {
			assert.Contains(t, doc.Paths[path], m, "%s %s", m, path)
		}
	}
}
