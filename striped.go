package cset

import (
	"sync"
	"sync/atomic"
)

// StripedSet guards a growing table with a fixed-width array of mutexes,
// sized once at construction to initial_bucket_count and never replaced.
// As the table doubles, each lock comes to cover an ever-larger multiple
// of buckets (bucket b is guarded by locks[b % lockCount]), trading some
// lock contention for a resize that never has to replace the lock array
// itself — only the table.
//
// This generalizes the teacher's per-bucket sync.RWMutex
// (absir-cmap.bucket.mu) from one lock per bucket to one lock per stripe,
// and its atomic bucket-count bookkeeping (absir-cmap.node.B /
// atomic.LoadPointer(&m.node)) to an atomic.Pointer[table] swap performed
// under every stripe lock at once.
type StripedSet[K comparable] struct {
	hash      Hash[K]
	locks     []sync.Mutex
	t         atomic.Pointer[table[K]]
	elemCount atomic.Int64
}

// NewStripedSet creates a striped set whose lock array and initial table
// both have initialCapacity buckets; initialCapacity must be strictly
// positive. The lock array's width never changes after construction.
func NewStripedSet[K comparable](initialCapacity int, hash Hash[K]) *StripedSet[K] {
	if initialCapacity < 1 {
		panic("cset: initial capacity must be positive")
	}
	s := &StripedSet[K]{
		hash:  hash,
		locks: make([]sync.Mutex, initialCapacity),
	}
	s.t.Store(newTable(hash, initialCapacity))
	return s
}

// lockIndex picks the stripe guarding h's key. Because bucket_count is
// always a multiple of lock_count (doubling starts from lock_count and
// only ever multiplies it), hash % lock_count equals (hash % bucket_count)
// % lock_count for any bucket_count the table has ever had or will have,
// so this can be computed without first reading the current table.
func (s *StripedSet[K]) lockIndex(h uint64) int {
	return int(h % uint64(len(s.locks)))
}

func (s *StripedSet[K]) Add(key K) bool {
	h := s.hash(key)
	li := s.lockIndex(h)

	s.locks[li].Lock()
	t := s.t.Load()
	bi := int(h % uint64(t.bucketCount()))
	if t.bucketContains(bi, key) {
		s.locks[li].Unlock()
		return false
	}
	t.bucketInsert(bi, key)
	count := s.elemCount.Add(1)
	oldCount := t.bucketCount()
	s.locks[li].Unlock()

	if overLoadFactor(int(count), oldCount) {
		s.tryResize(oldCount)
	}
	return true
}

func (s *StripedSet[K]) Remove(key K) bool {
	h := s.hash(key)
	li := s.lockIndex(h)

	s.locks[li].Lock()
	defer s.locks[li].Unlock()

	t := s.t.Load()
	bi := int(h % uint64(t.bucketCount()))
	if !t.bucketRemove(bi, key) {
		return false
	}
	s.elemCount.Add(-1)
	return true
}

func (s *StripedSet[K]) Contains(key K) bool {
	h := s.hash(key)
	li := s.lockIndex(h)

	s.locks[li].Lock()
	defer s.locks[li].Unlock()

	t := s.t.Load()
	bi := int(h % uint64(t.bucketCount()))
	return t.bucketContains(bi, key)
}

func (s *StripedSet[K]) Size() int {
	return int(s.elemCount.Load())
}

// tryResize acquires every stripe in index order — a fixed total order
// that makes the all-locks acquisition deadlock-free even when two
// callers race to resize at once — then doubles the table if it is still
// the same table that triggered the policy check. The policy check itself
// runs outside any stripe lock, so a second racing caller simply finds
// bucketCount has already moved and returns without doing anything: a
// redundant resize is harmless, a missed one is re-triggered by the next
// Add.
func (s *StripedSet[K]) tryResize(oldCount int) {
	for i := range s.locks {
		s.locks[i].Lock()
	}
	defer func() {
		for i := range s.locks {
			s.locks[i].Unlock()
		}
	}()

	t := s.t.Load()
	if t.bucketCount() != oldCount {
		return
	}
	s.t.Store(t.rehashed(2 * oldCount))
}

var _ Set[int] = (*StripedSet[int])(nil)
