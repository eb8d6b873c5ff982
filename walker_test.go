// walker_test.go - Tests for the resumable depth-first leaf enumeration.
// Covers mixed nesting, empty containers, resumability, degenerate roots,
// and the derived Paths/Values passes.

package leafwalk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/leafwalk/internal/testutil"
	"github.com/erraggy/leafwalk/lwerrors"
)

// drain runs w to exhaustion from its current position.
func drain(t *testing.T, w *Walker) (paths []Path, values []any) {
	t.Helper()
	for {
		p, v, ok := w.Next()
		if !ok {
			break
		}
		paths = append(paths, p)
		values = append(values, v)
	}
	require.NoError(t, w.Err())
	return paths, values
}

func TestNext_MixedDocument(t *testing.T) {
	w := New(testutil.NewMixedDocument())
	paths, values := drain(t, w)

	require.Len(t, values, 4, "every leaf visited exactly once")
	assert.ElementsMatch(t, []any{"hash", "array", "ref", "nesting"}, values)

	byPath := make(map[string]any, len(paths))
	for i, p := range paths {
		byPath[p.String()] = values[i]
	}
	assert.Equal(t, "hash", byPath["$['a']"])
	assert.Equal(t, "array", byPath["$['or'][0]"])
	assert.Equal(t, "ref", byPath["$['or'][1]"])
	assert.Equal(t, "nesting", byPath["$['with']['arbitrary']"])
}

func TestNext_SequenceOrder(t *testing.T) {
	// Within one sequence the cursor is monotonically increasing from 0.
	w := New([]any{"first", "second", []any{"third"}})
	paths, values := drain(t, w)

	require.Equal(t, []any{"first", "second", "third"}, values)
	assert.Equal(t, "$[0]", paths[0].String())
	assert.Equal(t, "$[1]", paths[1].String())
	assert.Equal(t, "$[2][0]", paths[2].String())
}

func TestNext_Resumable(t *testing.T) {
	doc := []any{"a", []any{"b", "c"}}
	w := New(doc)

	p, v, ok := w.Next()
	require.True(t, ok)
	assert.Equal(t, "a", v)
	assert.Equal(t, P(0), p)

	// While mid-pass the frame stack is one longer than the key trail.
	_, _, ok = w.Next()
	require.True(t, ok)
	assert.Equal(t, len(w.frames), len(w.trail)+1)

	_, v, ok = w.Next()
	require.True(t, ok)
	assert.Equal(t, "c", v)

	_, _, ok = w.Next()
	assert.False(t, ok, "pass exhausted")
	require.NoError(t, w.Err())
}

func TestNext_FreshPassAfterExhaustion(t *testing.T) {
	w := New(testutil.NewMixedDocument())

	_, first := drain(t, w)
	_, second := drain(t, w)

	assert.ElementsMatch(t, first, second, "exhaustion resets state for a fresh pass")
}

func TestNext_ResetAbandonsPartialPass(t *testing.T) {
	w := New(testutil.NewMixedDocument())

	_, _, ok := w.Next()
	require.True(t, ok)
	w.Reset()

	_, values := drain(t, w)
	assert.Len(t, values, 4, "Reset restarts from the root")
}

func TestNext_EmptyContainers(t *testing.T) {
	tests := []struct {
		name string
		root any
	}{
		{name: "empty mapping root", root: map[string]any{}},
		{name: "empty sequence root", root: []any{}},
		{name: "nested empties", root: testutil.NewEmptyContainersDocument()},
		{name: "deeply nested empties", root: []any{[]any{[]any{map[string]any{}}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := New(tt.root)
			_, _, ok := w.Next()
			assert.False(t, ok, "empty containers contribute zero leaves")
			assert.NoError(t, w.Err())
		})
	}
}

func TestNext_LeafRoot(t *testing.T) {
	w := New("just a scalar")

	_, _, ok := w.Next()
	require.False(t, ok)
	assert.ErrorIs(t, w.Err(), lwerrors.ErrLeafRoot)

	// The error is sticky until Reset.
	_, _, ok = w.Next()
	assert.False(t, ok)
	assert.Error(t, w.Err())

	w.Reset()
	assert.NoError(t, w.Err())

	_, err := w.Paths()
	assert.ErrorIs(t, err, lwerrors.ErrLeafRoot)
	_, err = w.Values()
	assert.ErrorIs(t, err, lwerrors.ErrLeafRoot)
}

func TestNext_NilLeaves(t *testing.T) {
	w := New([]any{nil, "x", nil})
	_, values := drain(t, w)
	assert.Equal(t, []any{nil, "x", nil}, values, "nil is a leaf, not a container")
}

func TestNext_DeepNesting(t *testing.T) {
	// The engine iterates over an explicit frame stack; depth like this
	// would overflow the call stack under a recursive implementation.
	const depth = 50000
	w := New(testutil.NewDeepDocument(depth, "bottom"))

	p, v, ok := w.Next()
	require.True(t, ok)
	assert.Equal(t, "bottom", v)
	require.Len(t, p, depth)
	for _, key := range p {
		require.Equal(t, Index(0), key)
	}

	_, _, ok = w.Next()
	assert.False(t, ok)
}

func TestNext_SharedSequenceAcrossWalkers(t *testing.T) {
	// Cursor state lives in the walker's own frames, never on the container,
	// so interleaved passes over the same physical sequence do not interfere.
	shared := []any{"x", "y", "z"}
	w1 := New(shared)
	w2 := New(shared)

	_, v1, ok := w1.Next()
	require.True(t, ok)
	assert.Equal(t, "x", v1)

	_, values2 := drain(t, w2)
	assert.Equal(t, []any{"x", "y", "z"}, values2, "second walker sees every leaf")

	_, rest1 := drain(t, w1)
	assert.Equal(t, []any{"y", "z"}, rest1, "first walker resumes where it left off")
}

func TestPaths_Values_Align(t *testing.T) {
	// Paths and Values are separate passes, so positions only correspond if
	// an unmodified mapping enumerates in the same order on every pass.
	// Repeat enough rounds that an order re-randomized per pass would be
	// caught.
	w := New(testutil.NewMixedDocument())

	for round := 0; round < 50; round++ {
		paths, err := w.Paths()
		require.NoError(t, err)
		values, err := w.Values()
		require.NoError(t, err)

		require.Len(t, paths, 4)
		require.Len(t, values, 4)
		for i, p := range paths {
			got, ferr := w.Fetch(p)
			require.NoError(t, ferr)
			require.Equal(t, values[i], got,
				"round %d: Fetch(%s) should equal Values()[%d]", round, p, i)
		}
	}
}

func TestNext_StableMappingOrder(t *testing.T) {
	// Mapping keys are snapshot in sorted order, so two full passes over the
	// same document agree position by position.
	w := New(testutil.NewMixedDocument())

	paths1, _ := drain(t, w)
	paths2, _ := drain(t, w)
	require.Equal(t, paths1, paths2)

	assert.Equal(t, "$['a']", paths1[0].String())
	assert.Equal(t, "$['or'][0]", paths1[1].String())
	assert.Equal(t, "$['or'][1]", paths1[2].String())
	assert.Equal(t, "$['with']['arbitrary']", paths1[3].String())
}

func TestPaths_DiscardsMidPassPosition(t *testing.T) {
	w := New(testutil.NewMixedDocument())

	_, _, ok := w.Next()
	require.True(t, ok)

	paths, err := w.Paths()
	require.NoError(t, err)
	assert.Len(t, paths, 4, "Paths performs a complete fresh pass")

	// State is left empty: the next Next starts over.
	_, values := drain(t, w)
	assert.Len(t, values, 4)
}

func TestNext_YAMLDocument(t *testing.T) {
	doc := testutil.DecodeYAML(t, `
servers:
  - host: alpha
    ports: [80, 443]
  - host: beta
    ports: []
`)

	w := New(doc)
	_, values := drain(t, w)
	assert.ElementsMatch(t, []any{"alpha", 80, 443, "beta"}, values)

	got, err := w.Fetch(P("servers", 0, "ports", 1))
	require.NoError(t, err)
	assert.Equal(t, 443, got)
}
