package model

import "strings"

// AliasMapping is a single literal-prefix rewrite rule.
type AliasMapping struct {
	// Prefix is the module-path prefix to match (e.g. "@app").
	Prefix string

	// Replacement is the text substituted for a matched prefix
	// (e.g. "./internal").
	Replacement string
}

// AliasTable is an immutable, ordered set of literal-prefix rewrite rules
// loaded from the manifest. Order matters: when several prefixes match a
// specifier, the first configured one wins. Matching is case-sensitive and
// purely literal: no wildcards, no regular expressions, no path-segment
// boundary checks.
type AliasTable struct {
	mappings []AliasMapping
}

// NewAliasTable builds a table from mappings in manifest order.
func NewAliasTable(mappings []AliasMapping) AliasTable {
	owned := make([]AliasMapping, len(mappings))
	copy(owned, mappings)

	return AliasTable{mappings: owned}
}

// Len returns the number of configured mappings.
func (t AliasTable) Len() int {
	return len(t.mappings)
}

// Mappings returns a copy of the configured mappings in manifest order.
func (t AliasTable) Mappings() []AliasMapping {
	out := make([]AliasMapping, len(t.mappings))
	copy(out, t.mappings)

	return out
}

// Apply rewrites a module specifier against the table.
//
// An exact match against any prefix wins outright and yields the replacement
// verbatim. Otherwise the first configured prefix (in manifest order) that
// the specifier starts with is replaced, and the remainder of the specifier
// is preserved verbatim. A specifier matching nothing is returned unchanged.
//
// The second return value reports whether any rule applied.
func (t AliasTable) Apply(specifier string) (string, bool) {
	for _, mapping := range t.mappings {
		if specifier == mapping.Prefix {
			return mapping.Replacement, true
		}
	}

	for _, mapping := range t.mappings {
		if strings.HasPrefix(specifier, mapping.Prefix) {
			return mapping.Replacement + specifier[len(mapping.Prefix):], true
		}
	}

	return specifier, false
}
