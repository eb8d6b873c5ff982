// Copyright 2024 Erraggy
// SPDX-License-Identifier: MIT

package pathutil

import (
	"strconv"
	"strings"
)

// PathBuilder provides efficient incremental path construction.
// Uses push/pop semantics to avoid allocations during traversal.
// The full string is only materialized when String() is called.
type PathBuilder struct {
	segments []string
	length   int // Pre-calculated length for String() allocation
}

// PushKey adds a mapping-key segment: "['name']".
// Single quotes and backslashes inside the key are backslash-escaped.
func (p *PathBuilder) PushKey(key string) {
	seg := "['" + escapeKey(key) + "']"
	p.segments = append(p.segments, seg)
	p.length += len(seg)
}

// PushIndex adds a sequence-index segment: "[0]", "[1]", etc.
func (p *PathBuilder) PushIndex(i int) {
	seg := "[" + strconv.Itoa(i) + "]"
	p.segments = append(p.segments, seg)
	p.length += len(seg)
}

// Pop removes the last segment.
func (p *PathBuilder) Pop() {
	if len(p.segments) == 0 {
		return
	}
	last := p.segments[len(p.segments)-1]
	p.segments = p.segments[:len(p.segments)-1]
	p.length -= len(last)
}

// Depth returns the number of segments currently pushed.
func (p *PathBuilder) Depth() int {
	return len(p.segments)
}

// Reset clears the builder for reuse.
func (p *PathBuilder) Reset() {
	p.segments = p.segments[:0]
	p.length = 0
}

// String materializes the full path, rooted at "$".
func (p *PathBuilder) String() string {
	if len(p.segments) == 0 {
		return "$"
	}
	var b strings.Builder
	b.Grow(1 + p.length)
	b.WriteByte('$')
	for _, seg := range p.segments {
		b.WriteString(seg)
	}
	return b.String()
}

// escapeKey escapes single quotes and backslashes for bracket notation.
// Keys without either character are returned unchanged, no allocation.
func escapeKey(key string) string {
	if !strings.ContainsAny(key, `'\`) {
		return key
	}
	var b strings.Builder
	b.Grow(len(key) + 2)
	for i := 0; i < len(key); i++ {
		ch := key[i]
		if ch == '\'' || ch == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(ch)
	}
	return b.String()
}
