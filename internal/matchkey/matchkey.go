// Package matchkey implements a small byte-keyed set/map used by the
// chart to make match insertion idempotent (spec §4.6: "insertion is
// idempotent: a duplicate is dropped silently").
//
// Adapted from the teacher's internal/bmap.BMap[T]: dedup keys here
// are the fixed-width byte encodings of a match's (rule name, start,
// end, depth, ...) tuple (see match.CompleteMatch.Key /
// match.ForwardMatch.Key), so the same small-fixed-key-set map shape
// fits directly.
package matchkey

import "unsafe"

// Map stores values keyed by a []byte, copying each new key into an
// internal arena so callers may reuse or discard their key slice.
type Map[T any] struct {
	keys []byte
	m    map[string]T
}

// New returns an empty Map, sized as a hint for the expected key count.
func New[T any](sizeHint int) *Map[T] {
	return &Map[T]{m: make(map[string]T, sizeHint)}
}

func asString(key []byte) string {
	if len(key) == 0 {
		return ""
	}
	return unsafe.String(&key[0], len(key))
}

// Get returns the value stored for key and whether it was present.
func (m *Map[T]) Get(key []byte) (T, bool) {
	v, ok := m.m[asString(key)]
	return v, ok
}

// Set stores value for key if key is not already present, and reports
// whether the insertion happened (false means key was a duplicate).
func (m *Map[T]) Set(key []byte, value T) bool {
	if _, has := m.Get(key); has {
		return false
	}

	ofs := len(m.keys)
	m.keys = append(m.keys, key...)
	owned := m.keys[ofs : ofs+len(key)]
	m.m[asString(owned)] = value
	return true
}

// Len returns the number of distinct keys stored.
func (m *Map[T]) Len() int {
	return len(m.m)
}
