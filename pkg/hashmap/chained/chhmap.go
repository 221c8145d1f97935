package chained

import (
	"github.com/Scusemua/go-utils/config"
	"github.com/Scusemua/go-utils/logger"

	"github.com/scottcagno/hashtables/pkg/hashmap"
)

// HashMap represents a separate chaining hashtable that doubles its bucket
// count once two thirds of the buckets are in use and halves it again once
// fewer than a third are.
type HashMap[K comparable, V any] struct {
	table[K, V]
	log     logger.Logger
	grows   int
	shrinks int
}

// NewHashMap returns a new growable HashMap with hashmap.InitialCapacity
// buckets
func NewHashMap[K comparable, V any](opts ...hashmap.Option[K, V]) *HashMap[K, V] {
	return newHashMap(false, opts...)
}

// newHashMap is the internal variant of the previous function and is shared
// with the cached variant
func newHashMap[K comparable, V any](cached bool, opts ...hashmap.Option[K, V]) *HashMap[K, V] {
	conf := hashmap.NewConfig(opts...)
	m := &HashMap[K, V]{
		table: newTable[K, V](hashmap.InitialCapacity, conf.Hasher, cached),
		log:   conf.Logger,
	}
	prefix := "HashMap "
	if cached {
		prefix = "CachedHashMap "
	}
	config.InitLogger(&m.log, prefix)
	for _, p := range conf.Pairs {
		m.Set(p.Key, p.Value)
	}
	return m
}

// resize rebuilds the table with newSize buckets, reinserting every entry
func (m *HashMap[K, V]) resize(newSize int) {
	m.log.Debug("resizing from %d to %d buckets (keys=%d, used=%d)", len(m.buckets), newSize, m.keys, m.used)
	m.rebuild(newSize)
}

// Set inserts key, or overwrites its value if it is already present. The
// grow check runs first, so an overwrite can also trigger a resize.
func (m *HashMap[K, V]) Set(key K, value V) {
	if hashmap.ShouldGrow(m.used, len(m.buckets)) {
		m.resize(hashmap.GrowCapacity(len(m.buckets)))
		m.grows++
	}
	m.insert(m.hash.Hash(key), key, value)
}

// Get returns the value stored for key
func (m *HashMap[K, V]) Get(key K) (V, error) {
	val, ok := m.lookup(m.hash.Hash(key), key)
	if !ok {
		return val, hashmap.KeyNotFound(key)
	}
	return val, nil
}

// Del removes key from the map. A missing key leaves the map untouched; the
// shrink check only runs once the key is known to be present.
func (m *HashMap[K, V]) Del(key K) error {
	hashkey := m.hash.Hash(key)
	if _, j := m.locate(hashkey, key); j < 0 {
		return hashmap.KeyNotFound(key)
	}
	if hashmap.ShouldShrink(m.used, len(m.buckets)) {
		m.resize(hashmap.ShrinkCapacity(len(m.buckets)))
		m.shrinks++
	}
	m.delete(hashkey, key)
	return nil
}

func (m *HashMap[K, V]) Stats() hashmap.Stats {
	return hashmap.Stats{
		Len:     m.keys,
		Cap:     len(m.buckets),
		Used:    m.used,
		Grows:   m.grows,
		Shrinks: m.shrinks,
	}
}
