package leafwalk

// WithMinDepth skips leaves whose key-path length is less than depth during
// iteration. A leaf directly under the root has depth 1.
// If depth is not positive, it is silently ignored and the default (0, no
// filtering) is kept.
func WithMinDepth(depth int) Option {
	return func(w *Walker) {
		if depth > 0 {
			w.minDepth = depth
		}
		// If depth <= 0, keep the default (0)
	}
}

// WithMaxDepth stops iteration from descending into containers whose leaves
// would sit deeper than depth steps from the root. Containers below the
// cutoff are not entered at all.
// If depth is not positive, it is silently ignored and the default (0,
// unlimited) is kept.
func WithMaxDepth(depth int) Option {
	return func(w *Walker) {
		if depth > 0 {
			w.maxDepth = depth
		}
		// If depth <= 0, keep the default (0)
	}
}
