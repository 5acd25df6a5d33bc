package cset

import "hash/maphash"

// Every variant in this package is parameterized over a Hash[K] supplied
// at construction, the same way the original's key type is a compile-time
// template parameter paired with a hash functor. Go cannot derive a hash
// for an arbitrary comparable type, so these constructors cover the key
// types the harness and demos actually use; callers with other key types
// supply their own Hash[K].

// IntHash returns a Hash[int] built on a maphash.Seed made once per call,
// so the returned function maps each key stably for its whole lifetime,
// but two IntHash calls (and two runs) give different mappings and the
// table's shape can't be predicted in advance (no third-party library in this
// corpus hashes arbitrary scalars; hash/maphash is the standard-library
// tool runtime's own map uses for the same purpose).
func IntHash() Hash[int] {
	seed := maphash.MakeSeed()
	return func(key int) uint64 {
		var h maphash.Hash
		h.SetSeed(seed)
		buf := [8]byte{
			byte(key), byte(key >> 8), byte(key >> 16), byte(key >> 24),
			byte(key >> 32), byte(key >> 40), byte(key >> 48), byte(key >> 56),
		}
		h.Write(buf[:])
		return h.Sum64()
	}
}

// StringHash returns a Hash[string] seeded once at construction.
func StringHash() Hash[string] {
	seed := maphash.MakeSeed()
	return func(key string) uint64 {
		return maphash.String(seed, key)
	}
}
