package leafwalk

import "sort"

// Walker wraps one root composite value and provides resumable leaf
// enumeration plus path-addressed access. The root is held by reference and
// never copied: every mutation made through [Walker.Store] or [Walker.Delete]
// is visible to the owner of the root.
//
// A Walker is not safe for concurrent use: iteration state is mutated in
// place by [Walker.Next]. Wrap calls with external synchronization if the
// walker is shared, or give each goroutine its own Walker.
type Walker struct {
	root any

	// Iteration state. frames holds one entry per container currently being
	// enumerated; trail holds the key that led into each frame from its
	// parent. Invariant while mid-pass: len(frames) == len(trail)+1, the
	// root frame having no incoming key.
	frames []frame
	trail  Path

	err error

	// Configuration
	minDepth int
	maxDepth int
}

// New creates a Walker over root. No validation is performed: a root that is
// not a container simply yields no leaves (see [Walker.Err]) and fails Fetch
// and Store for any non-empty path.
func New(root any, opts ...Option) *Walker {
	w := &Walker{root: root}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Root returns the wrapped root value.
func (w *Walker) Root() any {
	return w.root
}

// Option configures a Walker.
type Option func(*Walker)

// frame is one entry in the iteration stack: a container plus its cursor.
// The cursor is owned exclusively by the frame; nothing is ever attached to
// the container itself, so two walkers sharing a container never interfere.
type frame struct {
	kind Kind
	seq  []any
	m    map[string]any

	// keys is the enumeration order snapshot for a mapping frame, taken when
	// the frame is pushed and sorted so that an unmodified mapping enumerates
	// in the same order on every pass. Each entry is visited exactly once per
	// pass as long as the mapping is not structurally mutated while its frame
	// is on the stack.
	keys []string

	// next is the cursor: the next sequence index or snapshot position.
	next int
}

// newFrame wraps a container value as a frame. ok is false for leaves.
func newFrame(v any) (frame, bool) {
	switch c := v.(type) {
	case []any:
		return frame{kind: KindSequence, seq: c}, true
	case map[string]any:
		keys := make([]string, 0, len(c))
		for k := range c {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return frame{kind: KindMapping, m: c, keys: keys}, true
	default:
		return frame{}, false
	}
}

// advance moves the cursor past the next entry and returns it.
// ok is false once the container is exhausted.
func (f *frame) advance() (Key, any, bool) {
	switch f.kind {
	case KindSequence:
		if f.next >= len(f.seq) {
			return nil, nil, false
		}
		i := f.next
		f.next++
		return Index(i), f.seq[i], true
	case KindMapping:
		if f.next >= len(f.keys) {
			return nil, nil, false
		}
		k := f.keys[f.next]
		f.next++
		return MapKey(k), f.m[k], true
	default:
		return nil, nil, false
	}
}
