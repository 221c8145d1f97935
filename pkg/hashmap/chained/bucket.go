package chained

import "github.com/scottcagno/hashtables/pkg/hashmap"

// entry is a key value pair that is found in each bucket. The hashkey is
// only consulted by the cached variant; the others leave it zero.
type entry[K comparable, V any] struct {
	key     K
	hashkey uint64
	val     V
}

// matchFunc reports whether an entry already in the bucket holds the key
// being looked for
type matchFunc[K comparable, V any] func(e *entry[K, V]) bool

// bucket represents a single chain in the table. Entries are kept in
// insertion order, new keys go on the tail.
type bucket[K comparable, V any] struct {
	entries []entry[K, V]
}

// search returns the index of the first matching entry, or -1
func (b *bucket[K, V]) search(match matchFunc[K, V]) int {
	for i := range b.entries {
		if match(&b.entries[i]) {
			return i
		}
	}
	return -1
}

// insert overwrites the value of the matching entry in place or appends e
// to the tail. It returns true if a new entry was appended.
func (b *bucket[K, V]) insert(e entry[K, V], match matchFunc[K, V]) bool {
	if i := b.search(match); i >= 0 {
		// already exists, keep the stored key
		b.entries[i].val = e.val
		return false
	}
	b.entries = append(b.entries, e)
	return true
}

// delete removes the entry at index i, preserving the order of the rest.
// The backing array is never written, so a scan already walking it is left
// intact.
func (b *bucket[K, V]) delete(i int) entry[K, V] {
	e := b.entries[i]
	b.entries = append(b.entries[:i:i], b.entries[i+1:]...)
	return e
}

// scan calls it for each entry present when the scan started and returns
// false if it asked to stop
func (b *bucket[K, V]) scan(it hashmap.Iterator[K, V]) bool {
	entries := b.entries
	for i := range entries {
		if !it(entries[i].key, entries[i].val) {
			return false
		}
	}
	return true
}

func (b *bucket[K, V]) empty() bool {
	return len(b.entries) == 0
}
