// Copyright 2025 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package intern provides a string set for deduplicating symbol
// references within one run.
package intern

import "bytes"

// numBuckets is fixed. Expected cardinality is a few hundred distinct
// symbols per compilation unit, so chains stay short and there is no
// need to resize.
const numBuckets = 256

type entry struct {
	next *entry
	hash uint32
	name []byte
}

// Set is a fixed-bucket chained hash set of byte strings.
// Keys are never deleted. Not safe for concurrent use.
type Set struct {
	buckets [numBuckets]*entry
	n       int
}

// NewSet creates an empty Set.
func NewSet() *Set {
	return &Set{}
}

// strhash is 32-bit FNV-1a over raw bytes.
func strhash(b []byte) uint32 {
	h := uint32(2166136261)
	for _, c := range b {
		h = (h ^ uint32(c)) * 16777619
	}
	return h
}

// ContainsOrInsert reports whether b is already in the set.
// On a miss it records a copy of b before returning, so a false result
// also means "now recorded". The stored hash and the length are
// compared before the bytes to short-circuit mismatches in a chain.
func (s *Set) ContainsOrInsert(b []byte) bool {
	h := strhash(b)
	i := h % numBuckets
	for e := s.buckets[i]; e != nil; e = e.next {
		if e.hash == h && len(e.name) == len(b) && bytes.Equal(e.name, b) {
			return true
		}
	}
	s.buckets[i] = &entry{
		next: s.buckets[i],
		hash: h,
		name: bytes.Clone(b),
	}
	s.n++
	return false
}

// Len returns the number of distinct strings recorded.
func (s *Set) Len() int {
	return s.n
}
