// Package adapter contains infrastructure adapters for the transformer CLI.
package adapter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	m "github.com/t83714/ts-module-alias-transformer/internal/model"
)

// MappingKey is the manifest property the alias table is read from.
const MappingKey = "_moduleMappings"

// ManifestAdapter loads the alias table from a project manifest. It hides
// file access and JSON decoding so the workflow can be tested against an
// in-memory implementation.
type ManifestAdapter interface {
	// Load reads the manifest at path and returns the alias table stored
	// under the recognized mapping key, in manifest order.
	Load(path m.Path) (m.AliasTable, error)
}

// LocalManifestAdapter reads manifests from the local filesystem.
type LocalManifestAdapter struct {
	key string
}

// NewLocalManifestAdapter constructs a LocalManifestAdapter bound to the
// conventional mapping key.
func NewLocalManifestAdapter() *LocalManifestAdapter {
	return &LocalManifestAdapter{key: MappingKey}
}

// Load implements ManifestAdapter.
//
// Keys and values are returned verbatim: no case folding, no trailing-slash
// normalization. Whatever the manifest says is what gets matched.
func (a *LocalManifestAdapter) Load(path m.Path) (m.AliasTable, error) {
	raw, err := os.ReadFile(string(path))
	if err != nil {
		if os.IsNotExist(err) {
			return m.AliasTable{}, fmt.Errorf("%w: %s", m.ErrConfigNotFound, path)
		}

		return m.AliasTable{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var manifest map[string]json.RawMessage
	if err := json.Unmarshal(raw, &manifest); err != nil {
		return m.AliasTable{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	section, ok := manifest[a.key]
	if !ok {
		return m.AliasTable{}, fmt.Errorf("%w: %s has no %q property", m.ErrConfigKeyMissing, path, a.key)
	}

	mappings, err := decodeOrderedMappings(section)
	if err != nil {
		return m.AliasTable{}, fmt.Errorf("%w: %q in %s", err, a.key, path)
	}

	if len(mappings) == 0 {
		return m.AliasTable{}, fmt.Errorf("%w: %q in %s", m.ErrConfigKeyEmpty, a.key, path)
	}

	return m.NewAliasTable(mappings), nil
}

// decodeOrderedMappings decodes a JSON object into mappings while preserving
// the property order of the document. encoding/json maps would shuffle keys,
// and the first-match-wins lookup makes order significant, so the object is
// walked token by token instead.
func decodeOrderedMappings(raw json.RawMessage) ([]m.AliasMapping, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))

	open, err := dec.Token()
	if err != nil {
		return nil, m.ErrConfigKeyInvalidType
	}

	if delim, ok := open.(json.Delim); !ok || delim != '{' {
		return nil, m.ErrConfigKeyInvalidType
	}

	var mappings []m.AliasMapping

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, m.ErrConfigKeyInvalidType
		}

		prefix, ok := keyTok.(string)
		if !ok {
			return nil, m.ErrConfigKeyInvalidType
		}

		valTok, err := dec.Token()
		if err != nil {
			return nil, m.ErrConfigKeyInvalidType
		}

		replacement, ok := valTok.(string)
		if !ok {
			return nil, m.ErrConfigKeyInvalidType
		}

		mappings = append(mappings, m.AliasMapping{Prefix: prefix, Replacement: replacement})
	}

	return mappings, nil
}
