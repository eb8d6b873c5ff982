package lwerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrTypeLookup indicates a descent by key into a non-container value.
	ErrTypeLookup = errors.New("type lookup error")

	// ErrMissingIntermediate indicates a store whose parent container does not exist.
	ErrMissingIntermediate = errors.New("missing intermediate container")

	// ErrInvalidOperation indicates an operation the design does not support.
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrInternal indicates a frame inconsistency in the traversal engine.
	ErrInternal = errors.New("internal consistency error")

	// ErrLeafRoot indicates iteration over a root that is neither a sequence
	// nor a mapping.
	ErrLeafRoot = errors.New("root is not a container")

	// ErrEmptyPath indicates a Store or Delete call with an empty path.
	ErrEmptyPath = errors.New("empty path")
)

// TypeLookupError represents a failed descent: a key was applied to a value that
// is neither a sequence nor a mapping, or the key kind does not match the
// container kind (an integer index into a mapping, a string key into a sequence).
type TypeLookupError struct {
	// Path is the rendered path to the value that could not be descended into
	Path string
	// Key is the key that was about to be applied (may be nil)
	Key any
	// Value is the value the key was applied to
	Value any
	// Message provides additional context about the failure
	Message string
}

// Error returns a human-readable error message.
func (e *TypeLookupError) Error() string {
	msg := "type lookup error"
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Key != nil {
		msg += fmt.Sprintf(": cannot look up key %v in invalid type %T", e.Key, e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *TypeLookupError) Is(target error) bool {
	return target == ErrTypeLookup
}

// MissingIntermediateError represents a store targeting a path whose parent
// container does not exist. Intermediate containers are never created
// implicitly (no autovivification).
type MissingIntermediateError struct {
	// Path is the rendered path of the missing parent container
	Path string
	// Message provides additional context about the failure
	Message string
}

// Error returns a human-readable error message.
func (e *MissingIntermediateError) Error() string {
	msg := "missing intermediate container"
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *MissingIntermediateError) Is(target error) bool {
	return target == ErrMissingIntermediate
}

// InvalidOperationError represents an operation the design declines to support,
// such as deleting a sequence element or growing a sequence backwards.
type InvalidOperationError struct {
	// Op is the operation that was attempted, e.g. "delete" or "store"
	Op string
	// Path is the rendered path the operation targeted
	Path string
	// Message describes why the operation is unsupported
	Message string
}

// Error returns a human-readable error message.
func (e *InvalidOperationError) Error() string {
	msg := "invalid operation"
	if e.Op != "" {
		msg += " " + e.Op
	}
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *InvalidOperationError) Is(target error) bool {
	return target == ErrInvalidOperation
}

// InternalError represents a frame inconsistency in the traversal engine.
// Callers structurally check values before pushing frames, so this error is
// not expected to be observed.
type InternalError struct {
	// Message describes the inconsistency
	Message string
}

// Error returns a human-readable error message.
func (e *InternalError) Error() string {
	msg := "internal consistency error"
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *InternalError) Is(target error) bool {
	return target == ErrInternal
}
