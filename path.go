package leafwalk

import (
	"fmt"
	"strconv"

	"github.com/erraggy/leafwalk/internal/pathutil"
)

// Kind classifies a value in a composite document.
type Kind int

const (
	// KindLeaf is any value that is neither a sequence nor a mapping,
	// including nil and scalars.
	KindLeaf Kind = iota

	// KindSequence is an ordered, 0-indexed []any.
	KindSequence

	// KindMapping is a string-keyed map[string]any.
	KindMapping
)

// String returns a string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "leaf"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// KindOf classifies a value structurally. Only []any and map[string]any count
// as containers; every other type, including other slice and map types, is a
// leaf. This matches the generic form produced by JSON/YAML unmarshaling into
// an untyped destination.
func KindOf(v any) Kind {
	switch v.(type) {
	case []any:
		return KindSequence
	case map[string]any:
		return KindMapping
	default:
		return KindLeaf
	}
}

// Key is a single descent step in a key path. The only implementations are
// [MapKey], which selects into a mapping, and [Index], which selects into a
// sequence. The interface is closed so that a Path is a tagged variant rather
// than an open bag of values.
type Key interface {
	// String renders the key for display and error messages.
	String() string

	isKey()
}

// MapKey selects a mapping entry by its string key.
type MapKey string

func (MapKey) isKey() {}

// String returns the raw key text.
func (k MapKey) String() string { return string(k) }

// Index selects a sequence element by 0-based position.
// Negative values select from the end, as the accessors document.
type Index int

func (Index) isKey() {}

// String returns the decimal index.
func (i Index) String() string { return strconv.Itoa(int(i)) }

// Path is an ordered key path locating a value from the root of a composite
// document. The empty path denotes the root itself.
type Path []Key

// P builds a Path from loosely-typed steps: a string becomes a [MapKey], an
// int becomes an [Index], and a value that is already a [Key] passes through.
// Any other step type panics; passing one is a programmer error, not input
// validation.
//
//	leafwalk.P("or", 1) // Path{MapKey("or"), Index(1)}
func P(steps ...any) Path {
	if len(steps) == 0 {
		return nil
	}
	p := make(Path, 0, len(steps))
	for i, step := range steps {
		switch s := step.(type) {
		case string:
			p = append(p, MapKey(s))
		case int:
			p = append(p, Index(s))
		case Key:
			p = append(p, s)
		default:
			panic(fmt.Sprintf("leafwalk: P: step %d has unsupported key type %T", i, step))
		}
	}
	return p
}

// Clone returns an independent copy of the path. Paths returned by iteration
// are already caller-owned; Clone is for callers who want to extend a path
// without sharing backing storage.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	c := make(Path, len(p))
	copy(c, p)
	return c
}

// String renders the path in bracket notation rooted at "$", e.g.
// "$['or'][1]". The empty path renders as "$".
func (p Path) String() string {
	if len(p) == 0 {
		return "$"
	}
	b := pathutil.Get()
	defer pathutil.Put(b)
	for _, key := range p {
		switch k := key.(type) {
		case MapKey:
			b.PushKey(string(k))
		case Index:
			b.PushIndex(int(k))
		}
	}
	return b.String()
}
