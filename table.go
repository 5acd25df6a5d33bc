package cset

// table is the unsynchronized bucket array shared by every variant's
// storage layer. It mirrors the bucket-of-a-map shape from the teacher's
// node/bucket split (absir-cmap's node.buckets), but without that type's
// own resize bookkeeping: here, each variant's lock discipline owns when a
// rehash may safely run, not the table itself.
type table[K comparable] struct {
	hash    Hash[K]
	buckets [][]K
}

// newTable allocates a table of bucketCount empty buckets.
func newTable[K comparable](hash Hash[K], bucketCount int) *table[K] {
	if bucketCount < 1 {
		panic("cset: bucket count must be positive")
	}
	t := &table[K]{
		hash:    hash,
		buckets: make([][]K, bucketCount),
	}
	return t
}

func (t *table[K]) bucketCount() int {
	return len(t.buckets)
}

// locate returns the bucket index a key maps to under this table's current
// width.
func (t *table[K]) locate(key K) int {
	return int(t.hash(key) % uint64(len(t.buckets)))
}

// bucketContains performs a linear scan of bucket i.
func (t *table[K]) bucketContains(i int, key K) bool {
	for _, k := range t.buckets[i] {
		if k == key {
			return true
		}
	}
	return false
}

// bucketInsert appends key to bucket i. The caller must already have
// verified the key is absent from the bucket.
func (t *table[K]) bucketInsert(i int, key K) {
	t.buckets[i] = append(t.buckets[i], key)
}

// bucketRemove deletes the first (and, by invariant, only) occurrence of
// key from bucket i. It reports whether key was found.
func (t *table[K]) bucketRemove(i int, key K) bool {
	bucket := t.buckets[i]
	for j, k := range bucket {
		if k == key {
			last := len(bucket) - 1
			bucket[j] = bucket[last]
			t.buckets[i] = bucket[:last]
			return true
		}
	}
	return false
}

// rehashed returns a fresh table of newCount empty buckets with every key
// in t redistributed by hash(k) mod newCount. It does not mutate t; callers
// install the result themselves once they hold whatever exclusion the
// variant requires for the swap.
func (t *table[K]) rehashed(newCount int) *table[K] {
	nt := newTable(t.hash, newCount)
	for _, bucket := range t.buckets {
		for _, k := range bucket {
			i := nt.locate(k)
			nt.buckets[i] = append(nt.buckets[i], k)
		}
	}
	return nt
}

// size returns the total number of keys currently stored, by summing every
// bucket. Only the package's own tests use it; every variant, the
// sequential baseline included, tracks elem_count separately to avoid an
// O(bucket_count) scan on every Size call.
func (t *table[K]) size() int {
	n := 0
	for _, bucket := range t.buckets {
		n += len(bucket)
	}
	return n
}

// overLoadFactor reports whether elemCount/bucketCount strictly exceeds 4,
// using integer division as the original implementation did (so the
// policy fires only once elemCount reaches 5*bucketCount; a fractional
// load factor such as 17/4 truncates to 4 and does not fire). See spec
// §9's "Open questions" note on this threshold.
func overLoadFactor(elemCount, bucketCount int) bool {
	return elemCount/bucketCount > 4
}
