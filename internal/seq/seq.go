// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package seq provides the two low-level collections used throughout the
// compiler, the VM, and the library façade: a growable sequence of
// uniform elements, and a string-keyed map backed by a sorted sequence
// rather than Go's built-in (randomly ordered) map. program.Array's
// element store and bcgo.Context's handle arena are built on Sequence;
// program.Program's name tables (functions, globals, arrays, registers)
// are plain Go maps.
package seq

import "sort"

// Sequence is a growable array of uniform elements. It exists mainly so
// that the zero value is immediately usable and so that Push reports the
// index it assigned, which every table above needs to hand back to its
// caller as a stable handle.
type Sequence[T any] struct {
	elems []T
}

// Len reports the number of elements currently in the sequence.
func (s *Sequence[T]) Len() int {
	return len(s.elems)
}

// Push appends v and returns the index it was stored at.
func (s *Sequence[T]) Push(v T) int {
	s.elems = append(s.elems, v)
	return len(s.elems) - 1
}

// At returns the element at index i.
func (s *Sequence[T]) At(i int) T {
	return s.elems[i]
}

// Set overwrites the element at index i.
func (s *Sequence[T]) Set(i int, v T) {
	s.elems[i] = v
}

// Pop removes and returns the last element. Pop on an empty sequence panics,
// matching the teacher's fail-fast style for programmer errors.
func (s *Sequence[T]) Pop() T {
	n := len(s.elems) - 1
	v := s.elems[n]
	s.elems = s.elems[:n]
	return v
}

// Truncate shrinks the sequence to length n, discarding everything after it.
func (s *Sequence[T]) Truncate(n int) {
	s.elems = s.elems[:n]
}

// Slice returns the live backing slice. Callers must not retain it across a
// Push, which may reallocate.
func (s *Sequence[T]) Slice() []T {
	return s.elems
}

// entry is one key/value pair in an OrderedMap, kept sorted by Key.
type entry[V any] struct {
	key   string
	index int
}

// OrderedMap maps names to integer handles (indices into a parallel
// Sequence) while keeping names in sorted order, so that "the same input
// under the same flags produces byte-identical bytecode" (spec.md §8,
// property 10) regardless of Go map iteration randomization.
type OrderedMap struct {
	entries []entry[int]
}

// Lookup returns the index bound to name and whether it was found.
func (m *OrderedMap) Lookup(name string) (int, bool) {
	i := sort.Search(len(m.entries), func(i int) bool { return m.entries[i].key >= name })
	if i < len(m.entries) && m.entries[i].key == name {
		return m.entries[i].index, true
	}
	return 0, false
}

// Insert binds name to index, inserting a new sorted entry if name is new,
// or overwriting the existing binding otherwise. It reports whether the
// name was newly inserted.
func (m *OrderedMap) Insert(name string, index int) bool {
	i := sort.Search(len(m.entries), func(i int) bool { return m.entries[i].key >= name })
	if i < len(m.entries) && m.entries[i].key == name {
		m.entries[i].index = index
		return false
	}
	m.entries = append(m.entries, entry[int]{})
	copy(m.entries[i+1:], m.entries[i:])
	m.entries[i] = entry[int]{key: name, index: index}
	return true
}

// Names returns the bound names in sorted order.
func (m *OrderedMap) Names() []string {
	names := make([]string, len(m.entries))
	for i, e := range m.entries {
		names[i] = e.key
	}
	return names
}

// Len reports the number of bound names.
func (m *OrderedMap) Len() int {
	return len(m.entries)
}
