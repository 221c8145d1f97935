// Package hashmap holds the contract shared by every hash table variant in
// this module, along with the hashing, resize policy and option plumbing they
// all use.
package hashmap

import "iter"

// InitialCapacity is the bucket (or slot) count every table starts with. The
// capacity of a resizing table never drops below it.
const InitialCapacity = 8

// Iterator is an iterator function type
type Iterator[K any, V any] func(key K, value V) bool

// Pair is a key value pair
type Pair[K any, V any] struct {
	Key   K
	Value V
}

// Table is the contract satisfied by every variant. Implementations are not
// safe for concurrent use; see the sharded package for that.
type Table[K any, V any] interface {
	// Set inserts or silently overwrites the value stored for key.
	Set(key K, value V)

	// Get returns the value stored for key, or an error matching
	// ErrKeyNotFound.
	Get(key K) (V, error)

	// Del removes key, or returns an error matching ErrKeyNotFound and
	// leaves the table untouched.
	Del(key K) error

	// Items returns a lazy, restartable sequence over every live pair.
	Items() iter.Seq2[K, V]

	// Range calls it for every live pair until it returns false.
	Range(it Iterator[K, V])

	// Len returns the number of live entries.
	Len() int

	// Cap returns the current number of buckets or slots.
	Cap() int
}

// Stats is a point in time view of a table's internal storage.
type Stats struct {
	Len         int // live entries
	Cap         int // buckets or slots
	Used        int // non-empty buckets, or occupied slots
	Tombstones  int // deleted slots still in probe paths (open addressing)
	Grows       int // number of times capacity doubled
	Shrinks     int // number of times capacity halved
	Compactions int // same capacity rebuilds that dropped tombstones
}

// StatsProvider is implemented by every table variant in this module.
type StatsProvider interface {
	Stats() Stats
	PercentFull() float64
}

// Collect drains the sequence into a slice of pairs.
func Collect[K any, V any](seq iter.Seq2[K, V]) []Pair[K, V] {
	var pairs []Pair[K, V]
	for k, v := range seq {
		pairs = append(pairs, Pair[K, V]{Key: k, Value: v})
	}
	return pairs
}
