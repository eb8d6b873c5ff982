// Package lwerrors provides structured error types for the leafwalk library.
//
// Import path: github.com/erraggy/leafwalk/lwerrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish between different categories of errors raised by
// path-addressed operations and iteration.
//
// # Error Types
//
// The package provides four core error types:
//
//   - [TypeLookupError]: a key was applied to a value that is neither a sequence
//     nor a mapping, or the key kind does not match the container kind
//   - [MissingIntermediateError]: a store targeted a path whose parent container
//     does not exist; intermediate containers are never created implicitly
//   - [InvalidOperationError]: an operation the design declines to support, such as
//     deleting from a sequence
//   - [InternalError]: a frame inconsistency in the traversal engine
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrTypeLookup]: Matches any [TypeLookupError]
//   - [ErrMissingIntermediate]: Matches any [MissingIntermediateError]
//   - [ErrInvalidOperation]: Matches any [InvalidOperationError]
//   - [ErrInternal]: Matches any [InternalError]
//
// Two further sentinels describe degenerate inputs directly:
//
//   - [ErrLeafRoot]: iteration was started on a root that is not a container
//   - [ErrEmptyPath]: Store or Delete was called with an empty path
//
// # Usage Examples
//
// Check error category with errors.Is():
//
//	err := w.Store(leafwalk.P("x", "y"), 1)
//	if errors.Is(err, lwerrors.ErrMissingIntermediate) {
//	    // Parent container "x" does not exist
//	}
//
// Extract error details with errors.As():
//
//	var tlErr *lwerrors.TypeLookupError
//	if errors.As(err, &tlErr) {
//	    fmt.Printf("cannot descend at %s by key %v\n", tlErr.Path, tlErr.Key)
//	}
package lwerrors
