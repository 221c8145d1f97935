package chained

import "github.com/scottcagno/hashtables/pkg/hashmap"

// FixedHashMap is a separate chaining table with a fixed number of buckets.
// It never resizes, so chains simply get longer as keys are added.
type FixedHashMap[K comparable, V any] struct {
	table[K, V]
}

// NewFixedHashMap returns a FixedHashMap with hashmap.InitialCapacity buckets
func NewFixedHashMap[K comparable, V any](opts ...hashmap.Option[K, V]) *FixedHashMap[K, V] {
	conf := hashmap.NewConfig(opts...)
	m := &FixedHashMap[K, V]{
		table: newTable[K, V](hashmap.InitialCapacity, conf.Hasher, false),
	}
	for _, p := range conf.Pairs {
		m.Set(p.Key, p.Value)
	}
	return m
}

// Set inserts key, or overwrites its value if it is already present
func (m *FixedHashMap[K, V]) Set(key K, value V) {
	m.insert(m.hash.Hash(key), key, value)
}

// Get returns the value stored for key
func (m *FixedHashMap[K, V]) Get(key K) (V, error) {
	val, ok := m.lookup(m.hash.Hash(key), key)
	if !ok {
		return val, hashmap.KeyNotFound(key)
	}
	return val, nil
}

// Del removes key from the map
func (m *FixedHashMap[K, V]) Del(key K) error {
	if !m.delete(m.hash.Hash(key), key) {
		return hashmap.KeyNotFound(key)
	}
	return nil
}

func (m *FixedHashMap[K, V]) Stats() hashmap.Stats {
	return hashmap.Stats{
		Len:  m.keys,
		Cap:  len(m.buckets),
		Used: m.used,
	}
}
