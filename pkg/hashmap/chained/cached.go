package chained

import "github.com/scottcagno/hashtables/pkg/hashmap"

// CachedHashMap is a growable HashMap that stores each key's hash next to it.
// Resizing reuses the stored hashes instead of hashing every key again, and
// lookups compare hashes before falling back to Hasher.Equal.
type CachedHashMap[K comparable, V any] struct {
	*HashMap[K, V]
}

func NewCachedHashMap[K comparable, V any](opts ...hashmap.Option[K, V]) *CachedHashMap[K, V] {
	return &CachedHashMap[K, V]{
		HashMap: newHashMap(true, opts...),
	}
}
