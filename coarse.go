package cset

import "sync"

// CoarseSet guards the whole table and its counters with a single mutex,
// the same exclusive-ownership discipline the teacher uses for the rare
// slow path in absir-cmap.Map.getNode (m.mu guarding the lazily-created
// node pointer) — generalized here to cover every operation instead of
// just first-touch initialization.
//
// Every operation acquires the mutex on entry and releases it on every
// exit path, including a triggered resize: the resize runs while the
// caller that triggered it still holds the lock, so no operation ever
// observes a partially rehashed table.
type CoarseSet[K comparable] struct {
	mu        sync.Mutex
	t         *table[K]
	elemCount int
}

// NewCoarseSet creates a coarse-locked set with the given initial bucket
// count, which must be strictly positive.
func NewCoarseSet[K comparable](initialCapacity int, hash Hash[K]) *CoarseSet[K] {
	if initialCapacity < 1 {
		panic("cset: initial capacity must be positive")
	}
	return &CoarseSet[K]{t: newTable(hash, initialCapacity)}
}

func (s *CoarseSet[K]) Add(key K) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.t.locate(key)
	if s.t.bucketContains(i, key) {
		return false
	}
	s.t.bucketInsert(i, key)
	s.elemCount++
	if overLoadFactor(s.elemCount, s.t.bucketCount()) {
		s.t = s.t.rehashed(2 * s.t.bucketCount())
	}
	return true
}

func (s *CoarseSet[K]) Remove(key K) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.t.locate(key)
	if !s.t.bucketRemove(i, key) {
		return false
	}
	s.elemCount--
	return true
}

func (s *CoarseSet[K]) Contains(key K) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.t.locate(key)
	return s.t.bucketContains(i, key)
}

func (s *CoarseSet[K]) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.elemCount
}

var _ Set[int] = (*CoarseSet[int])(nil)
