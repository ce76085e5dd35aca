package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/t83714/ts-module-alias-transformer/internal/model"
)

func writeManifest(t *testing.T, content string) m.Path {
	t.Helper()

	path := filepath.Join(t.TempDir(), "package.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return m.Path(path)
}

func TestLocalManifestAdapter_Load(t *testing.T) {
	adapter := NewLocalManifestAdapter()

	path := writeManifest(t, `{
		"name": "demo",
		"_moduleMappings": {
			"@app": "./internal",
			"@shared/utils": "../shared-utils"
		}
	}`)

	table, err := adapter.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2, table.Len())
	assert.Equal(t, []m.AliasMapping{
		{Prefix: "@app", Replacement: "./internal"},
		{Prefix: "@shared/utils", Replacement: "../shared-utils"},
	}, table.Mappings())
}

func TestLocalManifestAdapter_Load_PreservesManifestOrder(t *testing.T) {
	adapter := NewLocalManifestAdapter()

	// Deliberately not alphabetical: lookup is first-match-wins, so the
	// document order must survive decoding.
	path := writeManifest(t, `{"_moduleMappings": {"z": "1", "a": "2", "m": "3"}}`)

	table, err := adapter.Load(path)
	require.NoError(t, err)

	mappings := table.Mappings()
	require.Len(t, mappings, 3)
	assert.Equal(t, "z", mappings[0].Prefix)
	assert.Equal(t, "a", mappings[1].Prefix)
	assert.Equal(t, "m", mappings[2].Prefix)
}

func TestLocalManifestAdapter_Load_Errors(t *testing.T) {
	adapter := NewLocalManifestAdapter()

	tests := []struct {
		name     string
		manifest string
		wantErr  error
	}{
		{"key missing", `{"name": "demo"}`, m.ErrConfigKeyMissing},
		{"key is a string", `{"_moduleMappings": "nope"}`, m.ErrConfigKeyInvalidType},
		{"key is an array", `{"_moduleMappings": ["@app"]}`, m.ErrConfigKeyInvalidType},
		{"key is a number", `{"_moduleMappings": 42}`, m.ErrConfigKeyInvalidType},
		{"nested value", `{"_moduleMappings": {"@app": {"x": "y"}}}`, m.ErrConfigKeyInvalidType},
		{"non-string value", `{"_moduleMappings": {"@app": 1}}`, m.ErrConfigKeyInvalidType},
		{"empty mapping", `{"_moduleMappings": {}}`, m.ErrConfigKeyEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeManifest(t, tt.manifest)

			_, err := adapter.Load(path)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLocalManifestAdapter_Load_NotFound(t *testing.T) {
	adapter := NewLocalManifestAdapter()

	_, err := adapter.Load(m.Path(filepath.Join(t.TempDir(), "missing.json")))
	assert.ErrorIs(t, err, m.ErrConfigNotFound)
}

func TestLocalManifestAdapter_Load_MalformedJSON(t *testing.T) {
	adapter := NewLocalManifestAdapter()

	path := writeManifest(t, `{"_moduleMappings": {`)

	_, err := adapter.Load(path)
	require.Error(t, err)
	assert.NotErrorIs(t, err, m.ErrConfigNotFound)
}
