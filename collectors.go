package leafwalk

// LeafInfo contains information about a collected leaf.
type LeafInfo struct {
	// Path is the key path to the leaf.
	Path Path

	// Value is the leaf value.
	Value any

	// PathString is the rendered form of Path, e.g. "$['or'][1]".
	PathString string
}

// LeafCollector holds leaves collected during one full pass.
type LeafCollector struct {
	// All contains all leaves in traversal order.
	All []LeafInfo

	// ByPath provides lookup by rendered path.
	ByPath map[string]LeafInfo
}

// Collect performs one complete pass over root and gathers every leaf.
// Options apply as they would on [New], so depth filtering carries over to
// what is collected.
func Collect(root any, opts ...Option) (*LeafCollector, error) {
	w := New(root, opts...)
	c := &LeafCollector{
		All:    make([]LeafInfo, 0),
		ByPath: make(map[string]LeafInfo),
	}
	for {
		p, v, ok := w.Next()
		if !ok {
			break
		}
		info := LeafInfo{
			Path:       p,
			Value:      v,
			PathString: p.String(),
		}
		c.All = append(c.All, info)
		c.ByPath[info.PathString] = info
	}
	if err := w.Err(); err != nil {
		return nil, err
	}
	return c, nil
}
