package leafwalk

import (
	"github.com/erraggy/leafwalk/lwerrors"
)

// Next advances the traversal by exactly one leaf and returns its key path
// and value. It returns ok=false when the pass is exhausted; iteration state
// is then empty, so the following Next call starts a fresh pass from the
// root. ok=false with a non-nil [Walker.Err] means the walk could not run at
// all (see ErrLeafRoot).
//
// Traversal is depth-first: when Next meets a nested container it descends
// immediately, and only leaves are yielded. Empty containers anywhere in the
// structure contribute zero leaves and are transparently skipped. The
// returned Path is caller-owned and remains valid across further calls.
//
// Containers whose frame is currently on the iteration stack must not be
// structurally mutated between calls; doing so can skip or repeat entries.
func (w *Walker) Next() (Path, any, bool) {
	if w.err != nil {
		return nil, nil, false
	}

	// First call of a pass: push the root as the sole frame.
	if len(w.frames) == 0 {
		f, ok := newFrame(w.root)
		if !ok {
			w.err = lwerrors.ErrLeafRoot
			return nil, nil, false
		}
		w.frames = append(w.frames, f)
	}

	// Explicit iterative loop over the frame stack. No self-recursion, so
	// depth is bounded only by memory, not by the call stack.
	for {
		if len(w.frames) == 0 {
			// Whole traversal finished. State is already empty, ready for
			// a fresh pass.
			return nil, nil, false
		}

		top := &w.frames[len(w.frames)-1]
		if top.kind != KindSequence && top.kind != KindMapping {
			w.err = &lwerrors.InternalError{Message: "iteration frame holds a " + top.kind.String()}
			w.frames = nil
			w.trail = nil
			return nil, nil, false
		}

		key, val, ok := top.advance()
		if !ok {
			// Top container exhausted: pop its frame and the key that led
			// into it. The root frame has no incoming key.
			w.frames = w.frames[:len(w.frames)-1]
			if len(w.trail) > 0 {
				w.trail = w.trail[:len(w.trail)-1]
			}
			continue
		}

		if child, isContainer := newFrame(val); isContainer {
			if w.maxDepth > 0 && len(w.trail)+1 >= w.maxDepth {
				// Any leaf inside child would exceed the depth cutoff.
				continue
			}
			w.frames = append(w.frames, child)
			w.trail = append(w.trail, key)
			continue
		}

		depth := len(w.trail) + 1
		if depth < w.minDepth {
			continue
		}

		path := make(Path, 0, depth)
		path = append(path, w.trail...)
		path = append(path, key)
		return path, val, true
	}
}

// Err reports why the last pass could not run: [lwerrors.ErrLeafRoot] for a
// root that is not a container, or an [lwerrors.InternalError] for a frame
// inconsistency. It returns nil after a normally exhausted pass. The error
// is sticky until Reset is called.
func (w *Walker) Err() error {
	return w.err
}

// Reset abandons any partial traversal, returning the walker to the state of
// a freshly constructed instance. The next call to Next starts a full pass
// from the root.
func (w *Walker) Reset() {
	w.frames = nil
	w.trail = nil
	w.err = nil
}

// Paths performs one complete pass and returns every leaf's key path in
// traversal order. Any mid-pass position is discarded first, and the
// walker's iteration state is left empty afterwards. Passes over an
// unmodified document enumerate in the same order, so Paths and Values
// results correspond position by position.
func (w *Walker) Paths() ([]Path, error) {
	w.Reset()
	var paths []Path
	for {
		p, _, ok := w.Next()
		if !ok {
			break
		}
		paths = append(paths, p)
	}
	if w.err != nil {
		return nil, w.err
	}
	return paths, nil
}

// Values performs one complete pass and returns every leaf value in
// traversal order. Any mid-pass position is discarded first, and the
// walker's iteration state is left empty afterwards.
func (w *Walker) Values() ([]any, error) {
	w.Reset()
	var values []any
	for {
		_, v, ok := w.Next()
		if !ok {
			break
		}
		values = append(values, v)
	}
	if w.err != nil {
		return nil, w.err
	}
	return values, nil
}
