// Package sharded spreads keys over a fixed set of independently locked
// tables so a single-threaded variant can be shared between goroutines.
package sharded

import (
	"iter"
	"sync"

	"github.com/Scusemua/go-utils/config"
	"github.com/Scusemua/go-utils/logger"

	"github.com/scottcagno/hashtables/pkg/hashmap"
)

// DefaultShardCount is used when a non positive count is requested
const DefaultShardCount = 16

// fibonacci hashing constant, 2^64 / golden ratio
const fibMul = 0x9e3779b97f4a7c15

// Factory builds the table behind one shard
type Factory[K comparable, V any] func(opts ...hashmap.Option[K, V]) hashmap.Table[K, V]

type shard[K comparable, V any] struct {
	mu sync.RWMutex
	hm hashmap.Table[K, V]
}

// HashMap is safe for concurrent use. Operations on keys in different shards
// never contend; Len, Cap and Items lock one shard at a time, so under
// concurrent writes they describe no single instant.
type HashMap[K comparable, V any] struct {
	hash   hashmap.Hasher[K]
	shift  uint
	shards []*shard[K, V]
	log    logger.Logger
}

func alignShardCount(size int) int {
	if size <= 0 {
		return DefaultShardCount
	}
	count := 1
	for count < size {
		count *= 2
	}
	return count
}

// NewHashMap returns a HashMap with count shards (rounded up to a power of
// two) each built by factory. The hasher and logger from opts are handed to
// every shard; any initial pairs are inserted once, into their own shards.
func NewHashMap[K comparable, V any](count int, factory Factory[K, V], opts ...hashmap.Option[K, V]) *HashMap[K, V] {
	conf := hashmap.NewConfig(opts...)
	shCount := alignShardCount(count)
	s := &HashMap[K, V]{
		hash:   conf.Hasher,
		shards: make([]*shard[K, V], shCount),
		log:    conf.Logger,
	}
	config.InitLogger(&s.log, "ShardedHashMap ")
	for shCount>>s.shift > 1 {
		s.shift++
	}
	// keep the top bits of the mixed hash
	s.shift = 64 - s.shift
	for i := range s.shards {
		s.shards[i] = &shard[K, V]{
			hm: factory(hashmap.WithHasher[K, V](conf.Hasher), hashmap.WithLogger[K, V](conf.Logger)),
		}
	}
	s.log.Debug("new sharded hashmap with %d shards", shCount)
	for _, p := range conf.Pairs {
		s.Set(p.Key, p.Value)
	}
	return s
}

// getShard picks the shard for key from the top bits of its mixed hash, so
// it stays independent of the low bits each shard uses for its own index
func (s *HashMap[K, V]) getShard(key K) *shard[K, V] {
	if s.shift >= 64 {
		return s.shards[0]
	}
	return s.shards[(s.hash.Hash(key)*fibMul)>>s.shift]
}

// ShardCount returns the number of shards
func (s *HashMap[K, V]) ShardCount() int {
	return len(s.shards)
}

func (s *HashMap[K, V]) Set(key K, val V) {
	sh := s.getShard(key)
	sh.mu.Lock()
	sh.hm.Set(key, val)
	sh.mu.Unlock()
}

// Add inserts key only if it is not already present and reports whether it
// did
func (s *HashMap[K, V]) Add(key K, val V) bool {
	sh := s.getShard(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	if _, err := sh.hm.Get(key); err == nil {
		return false
	}
	sh.hm.Set(key, val)
	return true
}

func (s *HashMap[K, V]) Get(key K) (V, error) {
	sh := s.getShard(key)
	sh.mu.RLock()
	defer sh.mu.RUnlock()
	return sh.hm.Get(key)
}

func (s *HashMap[K, V]) Del(key K) error {
	sh := s.getShard(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	return sh.hm.Del(key)
}

func (s *HashMap[K, V]) Len() int {
	var length int
	for _, sh := range s.shards {
		sh.mu.RLock()
		length += sh.hm.Len()
		sh.mu.RUnlock()
	}
	return length
}

// Cap returns the total capacity across all shards
func (s *HashMap[K, V]) Cap() int {
	var capacity int
	for _, sh := range s.shards {
		sh.mu.RLock()
		capacity += sh.hm.Cap()
		sh.mu.RUnlock()
	}
	return capacity
}

// Items yields a snapshot of each shard in turn. The shard lock is not held
// while yielding, so the caller may modify the map from inside the loop.
func (s *HashMap[K, V]) Items() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, sh := range s.shards {
			sh.mu.RLock()
			pairs := hashmap.Collect(sh.hm.Items())
			sh.mu.RUnlock()
			for _, p := range pairs {
				if !yield(p.Key, p.Value) {
					return
				}
			}
		}
	}
}

func (s *HashMap[K, V]) Range(it hashmap.Iterator[K, V]) {
	for k, v := range s.Items() {
		if !it(k, v) {
			return
		}
	}
}

// Stats sums the stats of every shard whose table reports them
func (s *HashMap[K, V]) Stats() hashmap.Stats {
	var st hashmap.Stats
	for _, sh := range s.shards {
		sh.mu.RLock()
		if sp, ok := sh.hm.(hashmap.StatsProvider); ok {
			ss := sp.Stats()
			st.Len += ss.Len
			st.Cap += ss.Cap
			st.Used += ss.Used
			st.Tombstones += ss.Tombstones
			st.Grows += ss.Grows
			st.Shrinks += ss.Shrinks
			st.Compactions += ss.Compactions
		} else {
			st.Len += sh.hm.Len()
			st.Cap += sh.hm.Cap()
		}
		sh.mu.RUnlock()
	}
	return st
}

func (s *HashMap[K, V]) PercentFull() float64 {
	st := s.Stats()
	if st.Cap == 0 {
		return 0
	}
	return float64(st.Len) / float64(st.Cap)
}

// LogStats writes the fill percent of every non-empty shard at debug level
func (s *HashMap[K, V]) LogStats() {
	for i, sh := range s.shards {
		sh.mu.RLock()
		if sp, ok := sh.hm.(hashmap.StatsProvider); ok {
			if pf := sp.PercentFull(); pf > 0 {
				s.log.Debug("shard %d, fill percent: %.4f", i, pf)
			}
		}
		sh.mu.RUnlock()
	}
}
