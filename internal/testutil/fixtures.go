// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"testing"

	"go.yaml.in/yaml/v4"
)

// DecodeYAML decodes src into the generic composite form the walker
// operates on: map[string]any for mappings, []any for sequences. The test
// fails immediately on malformed YAML.
func DecodeYAML(t *testing.T, src string) any {
	t.Helper()
	var doc any
	if err := yaml.Unmarshal([]byte(src), &doc); err != nil {
		t.Fatalf("decoding fixture YAML: %v", err)
	}
	return doc
}

// NewMixedDocument creates a document mixing a scalar entry, a sequence, and
// a nested mapping. Its four leaves are "hash", "array", "ref", and
// "nesting".
func NewMixedDocument() map[string]any {
	return map[string]any{
		"a":    "hash",
		"or":   []any{"array", "ref"},
		"with": map[string]any{"arbitrary": "nesting"},
	}
}

// NewEmptyContainersDocument creates a document whose containers are all
// empty at some level. It contains zero leaves.
func NewEmptyContainersDocument() map[string]any {
	return map[string]any{
		"a": map[string]any{},
		"b": []any{[]any{}},
	}
}

// NewDeepDocument creates a sequence nested depth levels down with a single
// leaf value at the bottom.
func NewDeepDocument(depth int, leaf any) []any {
	cur := []any{leaf}
	for i := 1; i < depth; i++ {
		cur = []any{cur}
	}
	return cur
}
