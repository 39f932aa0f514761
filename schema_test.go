package twconfig

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchema(t *testing.T) {
	s := Schema()
	require.NotNil(t, s.Properties)

	for _, key := range []string{"content", "safelist", "theme"} {
		_, ok := s.Properties.Get(key)
		assert.True(t, ok, "missing property %q", key)
	}
	// An empty document is valid with a content-empty warning.
	assert.Empty(t, s.Required)
	assert.Equal(t, "twconfig", s.Title)
}

func TestSchemaJSON(t *testing.T) {
	data, err := SchemaJSON()
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "object", decoded["type"])
	assert.Contains(t, string(data), `"keyframes"`)
	assert.Contains(t, string(data), "Glob patterns of source files scanned for class names")
	assert.NotContains(t, string(data), `"required"`)
}
