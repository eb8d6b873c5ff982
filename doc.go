// Package leafwalk enumerates and addresses the leaves of heterogeneously
// nested composite data: structures built from sequences ([]any) and
// mappings (map[string]any), nested to arbitrary depth, where every other
// value is a leaf.
//
// A [Walker] wraps one root value and exposes two independent groups of
// operations: resumable enumeration ([Walker.Next], with [Walker.Paths] and
// [Walker.Values] derived from it) and path-addressed access
// ([Walker.Fetch], [Walker.Store], [Walker.Delete], [Walker.Exists]). The
// root is shared by reference, so mutations made through the walker are
// visible to its owner.
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/erraggy/leafwalk
//
// # Quick Start
//
// Enumerate every leaf with its key path:
//
//	doc := map[string]any{
//	    "a":    "hash",
//	    "or":   []any{"array", "ref"},
//	    "with": map[string]any{"arbitrary": "nesting"},
//	}
//
//	w := leafwalk.New(doc)
//	for {
//	    path, value, ok := w.Next()
//	    if !ok {
//	        break
//	    }
//	    fmt.Printf("%s = %v\n", path, value)
//	}
//
// Address a single leaf by key path:
//
//	v, err := w.Fetch(leafwalk.P("or", 1)) // "ref"
//	err = w.Store(leafwalk.P("or", 1), "slice")
//	ok := w.Exists(leafwalk.P("with", "arbitrary"))
//
// # Key Paths
//
// A [Path] is an ordered sequence of keys: [Index] selects into a sequence,
// [MapKey] into a mapping. The empty path denotes the root. [P] builds paths
// from plain ints and strings.
//
// # Errors
//
// Path-addressed operations fail with the structured error types in
// [github.com/erraggy/leafwalk/lwerrors]; see that package for matching them
// with errors.Is and errors.As. Operations fail atomically: at most the
// single target slot is written.
package leafwalk
