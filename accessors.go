package leafwalk

import (
	"github.com/erraggy/leafwalk/lwerrors"
)

// Fetch navigates from the root, consuming one key per step, and returns the
// value the path addresses. The empty path returns the root unchanged.
//
// Per step: a sequence requires an [Index] (negative values select from the
// end; out-of-range indices yield nil, not an error) and a mapping requires a
// [MapKey] (a missing key yields nil). As soon as the current value is
// neither a sequence nor a mapping while keys remain unconsumed, Fetch fails
// with a [lwerrors.TypeLookupError]; a trailing nil with no keys left is
// simply returned.
func (w *Walker) Fetch(path Path) (any, error) {
	cur := w.root
	for i, key := range path {
		switch c := cur.(type) {
		case []any:
			idx, ok := key.(Index)
			if !ok {
				return nil, &lwerrors.TypeLookupError{
					Path:    path[:i].String(),
					Key:     key,
					Value:   cur,
					Message: "sequence requires an integer index",
				}
			}
			j := int(idx)
			if j < 0 {
				j += len(c)
			}
			if j < 0 || j >= len(c) {
				cur = nil
			} else {
				cur = c[j]
			}
		case map[string]any:
			k, ok := key.(MapKey)
			if !ok {
				return nil, &lwerrors.TypeLookupError{
					Path:    path[:i].String(),
					Key:     key,
					Value:   cur,
					Message: "mapping requires a string key",
				}
			}
			cur = c[string(k)]
		default:
			return nil, &lwerrors.TypeLookupError{
				Path:  path[:i].String(),
				Key:   key,
				Value: cur,
			}
		}
	}
	return cur, nil
}

// Store writes value at path. The parent container must already exist:
// intermediate containers are never created implicitly, so a nil parent
// fails with [lwerrors.MissingIntermediateError], and a parent that is
// neither a sequence nor a mapping fails with [lwerrors.TypeLookupError].
// An empty path fails with [lwerrors.ErrEmptyPath].
//
// Storing past the end of a sequence grows it, filling the gap with nils.
// Growth re-seats the grown slice into the sequence's own parent slot, so it
// is visible through the root; the one position where that is impossible is
// the root sequence itself, which fails with
// [lwerrors.InvalidOperationError] rather than silently diverging from the
// caller's reference. A negative index that remains negative after
// normalizing from the end also fails with InvalidOperationError.
//
// At most the single target slot is written; a failed Store leaves the
// structure unmodified.
func (w *Walker) Store(path Path, value any) error {
	if len(path) == 0 {
		return lwerrors.ErrEmptyPath
	}
	prefix, last := path[:len(path)-1], path[len(path)-1]
	twig, err := w.Fetch(prefix)
	if err != nil {
		return err
	}
	switch c := twig.(type) {
	case map[string]any:
		k, ok := last.(MapKey)
		if !ok {
			return &lwerrors.TypeLookupError{
				Path:    prefix.String(),
				Key:     last,
				Value:   twig,
				Message: "mapping requires a string key",
			}
		}
		c[string(k)] = value
		return nil
	case []any:
		idx, ok := last.(Index)
		if !ok {
			return &lwerrors.TypeLookupError{
				Path:    prefix.String(),
				Key:     last,
				Value:   twig,
				Message: "sequence requires an integer index",
			}
		}
		j := int(idx)
		if j < 0 {
			j += len(c)
		}
		if j < 0 {
			return &lwerrors.InvalidOperationError{
				Op:      "store",
				Path:    path.String(),
				Message: "index is before the start of the sequence",
			}
		}
		if j < len(c) {
			c[j] = value
			return nil
		}
		if len(prefix) == 0 {
			return &lwerrors.InvalidOperationError{
				Op:      "store",
				Path:    path.String(),
				Message: "cannot grow the root sequence in place",
			}
		}
		grown := append(c, make([]any, j+1-len(c))...)
		grown[j] = value
		return w.Store(prefix, grown)
	case nil:
		return &lwerrors.MissingIntermediateError{
			Path:    prefix.String(),
			Message: "cannot autovivify arbitrarily",
		}
	default:
		return &lwerrors.TypeLookupError{
			Path:  prefix.String(),
			Key:   last,
			Value: twig,
		}
	}
}

// Delete removes the mapping entry at path and returns its previous value.
// existed is false when the parent container is missing or the entry is
// absent; neither case is an error. Deleting a sequence element is
// unsupported by design (removing by index has ambiguous shift-versus-nil
// semantics) and fails with [lwerrors.InvalidOperationError]. A parent that
// is a leaf fails with [lwerrors.TypeLookupError], and an empty path with
// [lwerrors.ErrEmptyPath].
func (w *Walker) Delete(path Path) (prev any, existed bool, err error) {
	if len(path) == 0 {
		return nil, false, lwerrors.ErrEmptyPath
	}
	prefix, last := path[:len(path)-1], path[len(path)-1]
	twig, err := w.Fetch(prefix)
	if err != nil {
		return nil, false, err
	}
	switch c := twig.(type) {
	case map[string]any:
		k, ok := last.(MapKey)
		if !ok {
			return nil, false, &lwerrors.TypeLookupError{
				Path:    prefix.String(),
				Key:     last,
				Value:   twig,
				Message: "mapping requires a string key",
			}
		}
		prev, existed = c[string(k)]
		if !existed {
			return nil, false, nil
		}
		delete(c, string(k))
		return prev, true, nil
	case []any:
		return nil, false, &lwerrors.InvalidOperationError{
			Op:      "delete",
			Path:    path.String(),
			Message: "sequence elements cannot be deleted; only mapping entries",
		}
	case nil:
		return nil, false, nil
	default:
		return nil, false, &lwerrors.TypeLookupError{
			Path:  prefix.String(),
			Key:   last,
			Value: twig,
		}
	}
}

// Exists reports whether path addresses a present entry: key presence for a
// mapping parent, a normalized in-bounds index for a sequence parent. Any
// path through a missing intermediate container, a parent of the wrong kind,
// or a key of the wrong kind reports false rather than failing. The empty
// path reports true, the root always existing.
func (w *Walker) Exists(path Path) bool {
	if len(path) == 0 {
		return true
	}
	prefix, last := path[:len(path)-1], path[len(path)-1]
	twig, err := w.Fetch(prefix)
	if err != nil {
		return false
	}
	switch c := twig.(type) {
	case map[string]any:
		k, ok := last.(MapKey)
		if !ok {
			return false
		}
		_, present := c[string(k)]
		return present
	case []any:
		idx, ok := last.(Index)
		if !ok {
			return false
		}
		j := int(idx)
		if j < 0 {
			j += len(c)
		}
		return j >= 0 && j < len(c)
	default:
		return false
	}
}
