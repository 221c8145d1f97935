package chained

import (
	"iter"

	"github.com/scottcagno/hashtables/pkg/hashmap"
)

// table is the bucket array and bookkeeping shared by every chained variant
type table[K comparable, V any] struct {
	hash    hashmap.Hasher[K]
	cached  bool // store hashkeys and compare them before calling Equal
	mask    uint64
	keys    int // live entries
	used    int // non-empty buckets
	buckets []bucket[K, V]
}

// alignBucketCount aligns buckets to ensure all sizes are powers of two
func alignBucketCount(size int) int {
	count := hashmap.InitialCapacity
	for count < size {
		count *= 2
	}
	return count
}

func newTable[K comparable, V any](size int, hash hashmap.Hasher[K], cached bool) table[K, V] {
	bukCnt := alignBucketCount(size)
	return table[K, V]{
		hash:    hash,
		cached:  cached,
		mask:    uint64(bukCnt - 1),
		buckets: make([]bucket[K, V], bukCnt),
	}
}

// matcher returns the comparison used to find key in a chain
func (t *table[K, V]) matcher(hashkey uint64, key K) matchFunc[K, V] {
	if t.cached {
		return func(e *entry[K, V]) bool {
			return hashmap.KeysMatch(t.hash, e.key, e.hashkey, key, hashkey)
		}
	}
	return func(e *entry[K, V]) bool {
		return t.hash.Equal(e.key, key)
	}
}

// locate returns the bucket index for hashkey and the position of key in
// that chain, or -1 if it is not there
func (t *table[K, V]) locate(hashkey uint64, key K) (uint64, int) {
	i := hashkey & t.mask
	return i, t.buckets[i].search(t.matcher(hashkey, key))
}

// insert adds or overwrites key without any resize check
func (t *table[K, V]) insert(hashkey uint64, key K, value V) {
	i := hashkey & t.mask
	e := entry[K, V]{key: key, val: value}
	if t.cached {
		e.hashkey = hashkey
	}
	wasEmpty := t.buckets[i].empty()
	if t.buckets[i].insert(e, t.matcher(hashkey, key)) {
		t.keys++
		if wasEmpty {
			t.used++
		}
	}
}

func (t *table[K, V]) lookup(hashkey uint64, key K) (V, bool) {
	i, j := t.locate(hashkey, key)
	if j < 0 {
		return *new(V), false
	}
	return t.buckets[i].entries[j].val, true
}

// delete removes key, reporting whether it was present
func (t *table[K, V]) delete(hashkey uint64, key K) bool {
	i, j := t.locate(hashkey, key)
	if j < 0 {
		return false
	}
	t.buckets[i].delete(j)
	t.keys--
	if t.buckets[i].empty() {
		t.used--
	}
	return true
}

// rebuild replaces the bucket array with one of size buckets and reinserts
// every entry through insert. Cached tables reuse the stored hashkeys, the
// others hash each key again.
func (t *table[K, V]) rebuild(size int) {
	old := t.buckets
	*t = newTable[K, V](size, t.hash, t.cached)
	for i := range old {
		for _, e := range old[i].entries {
			hashkey := e.hashkey
			if !t.cached {
				hashkey = t.hash.Hash(e.key)
			}
			t.insert(hashkey, e.key, e.val)
		}
	}
}

// Range takes an Iterator and ranges the table as long as the iterator
// function continues to be true. The iterator may call Set or Del; it keeps
// walking the buckets it started with, so a resize part way through is
// never seen.
func (t *table[K, V]) Range(it hashmap.Iterator[K, V]) {
	buckets := t.buckets
	for i := range buckets {
		if !buckets[i].scan(it) {
			return
		}
	}
}

// Items yields every live pair in bucket order, and within a bucket in
// insertion order
func (t *table[K, V]) Items() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		t.Range(yield)
	}
}

// Len returns the number of entries currently in the table
func (t *table[K, V]) Len() int {
	return t.keys
}

// Cap returns the number of buckets
func (t *table[K, V]) Cap() int {
	return len(t.buckets)
}

// PercentFull returns the current load factor
func (t *table[K, V]) PercentFull() float64 {
	return float64(t.keys) / float64(len(t.buckets))
}
