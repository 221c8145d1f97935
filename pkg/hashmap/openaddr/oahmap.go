package openaddr

import (
	"iter"

	"github.com/Scusemua/go-utils/config"
	"github.com/Scusemua/go-utils/logger"

	"github.com/scottcagno/hashtables/pkg/hashmap"
)

// HashMap represents a closed hashing hashtable implementation with
// tombstone deletion. See details.go for the probe sequences.
type HashMap[K comparable, V any] struct {
	hash        hashmap.Hasher[K]
	probing     Probing
	log         logger.Logger
	mask        uint64
	keys        int // occupied slots
	tombs       int // tombstone slots
	grows       int
	shrinks     int
	compactions int
	slots       []slot[K, V]
}

// NewLinearHashMap returns an open addressing HashMap that probes linearly
func NewLinearHashMap[K comparable, V any](opts ...hashmap.Option[K, V]) *HashMap[K, V] {
	return NewHashMap(Linear, opts...)
}

// NewPerturbedHashMap returns an open addressing HashMap that probes with a
// hash perturbed sequence
func NewPerturbedHashMap[K comparable, V any](opts ...hashmap.Option[K, V]) *HashMap[K, V] {
	return NewHashMap(Perturbed, opts...)
}

// NewHashMap returns a new HashMap with hashmap.InitialCapacity slots using
// the given probe sequence
func NewHashMap[K comparable, V any](probing Probing, opts ...hashmap.Option[K, V]) *HashMap[K, V] {
	conf := hashmap.NewConfig(opts...)
	m := &HashMap[K, V]{
		hash:    conf.Hasher,
		probing: probing,
		log:     conf.Logger,
		mask:    uint64(hashmap.InitialCapacity - 1),
		slots:   make([]slot[K, V], hashmap.InitialCapacity),
	}
	config.InitLogger(&m.log, probing.String()+" HashMap ")
	for _, p := range conf.Pairs {
		m.Set(p.Key, p.Value)
	}
	return m
}

// Probing returns the probe sequence the map was built with
func (m *HashMap[K, V]) Probing() Probing {
	return m.probing
}

// resize allocates newSize slots and reinserts every live entry with its
// stored hashkey. Tombstones are dropped along the way.
func (m *HashMap[K, V]) resize(newSize int) {
	m.log.Debug("resizing from %d to %d slots (keys=%d, tombstones=%d)", len(m.slots), newSize, m.keys, m.tombs)
	old := m.slots
	m.slots = make([]slot[K, V], newSize)
	m.mask = uint64(newSize - 1)
	m.keys, m.tombs = 0, 0
	for i := range old {
		if old[i].state == occupied {
			m.insert(old[i].hashkey, old[i].key, old[i].val)
		}
	}
}

// find returns the slot holding key, or -1 once the probe reaches an empty
// slot
func (m *HashMap[K, V]) find(hashkey uint64, key K) int {
	p := newProber(m.probing, hashkey, m.mask)
	for {
		s := &m.slots[p.pos]
		switch s.state {
		case empty:
			return -1
		case occupied:
			if hashmap.KeysMatch(m.hash, s.key, s.hashkey, key, hashkey) {
				return int(p.pos)
			}
		}
		p.next()
	}
}

// insert adds or overwrites key without any resize check. A new key goes
// into the first tombstone crossed on the way, or the empty slot that ended
// the probe.
func (m *HashMap[K, V]) insert(hashkey uint64, key K, value V) {
	p := newProber(m.probing, hashkey, m.mask)
	reuse := -1
	for {
		s := &m.slots[p.pos]
		switch s.state {
		case empty:
			if reuse >= 0 {
				s = &m.slots[reuse]
				m.tombs--
			}
			*s = slot[K, V]{state: occupied, hashkey: hashkey, key: key, val: value}
			m.keys++
			return
		case tombstone:
			if reuse < 0 {
				reuse = int(p.pos)
			}
		case occupied:
			if hashmap.KeysMatch(m.hash, s.key, s.hashkey, key, hashkey) {
				s.val = value
				return
			}
		}
		p.next()
	}
}

// Set inserts key, or overwrites its value if it is already present. The map
// doubles when live entries reach two thirds of the slots, and is rebuilt at
// the same size when tombstones alone push it there, which keeps at least
// one empty slot around to end every probe.
func (m *HashMap[K, V]) Set(key K, value V) {
	switch {
	case hashmap.ShouldGrow(m.keys, len(m.slots)):
		m.resize(hashmap.GrowCapacity(len(m.slots)))
		m.grows++
	case hashmap.ShouldGrow(m.keys+m.tombs, len(m.slots)):
		m.resize(len(m.slots))
		m.compactions++
	}
	m.insert(m.hash.Hash(key), key, value)
}

// Get returns the value stored for key
func (m *HashMap[K, V]) Get(key K) (V, error) {
	i := m.find(m.hash.Hash(key), key)
	if i < 0 {
		return *new(V), hashmap.KeyNotFound(key)
	}
	return m.slots[i].val, nil
}

// Del replaces the slot holding key with a tombstone. A missing key leaves
// the map untouched; the shrink check only runs once the key is known to be
// present.
func (m *HashMap[K, V]) Del(key K) error {
	hashkey := m.hash.Hash(key)
	i := m.find(hashkey, key)
	if i < 0 {
		return hashmap.KeyNotFound(key)
	}
	if hashmap.ShouldShrink(m.keys, len(m.slots)) {
		m.resize(hashmap.ShrinkCapacity(len(m.slots)))
		m.shrinks++
		i = m.find(hashkey, key)
	}
	m.slots[i] = slot[K, V]{state: tombstone}
	m.keys--
	m.tombs++
	return nil
}

// Range takes an Iterator and ranges the HashMap as long as the iterator
// function continues to be true. The iterator may call Set or Del; a
// tombstone written into the current slots is skipped, while a resize
// leaves Range walking the slots it started with.
func (m *HashMap[K, V]) Range(it hashmap.Iterator[K, V]) {
	slots := m.slots
	for i := range slots {
		if slots[i].state != occupied {
			continue
		}
		if !it(slots[i].key, slots[i].val) {
			return
		}
	}
}

// Items yields every live pair in slot order
func (m *HashMap[K, V]) Items() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		m.Range(yield)
	}
}

// Len returns the number of entries currently in the HashMap
func (m *HashMap[K, V]) Len() int {
	return m.keys
}

// Cap returns the number of slots
func (m *HashMap[K, V]) Cap() int {
	return len(m.slots)
}

// PercentFull returns the current load factor of the HashMap
func (m *HashMap[K, V]) PercentFull() float64 {
	return float64(m.keys) / float64(len(m.slots))
}

func (m *HashMap[K, V]) Stats() hashmap.Stats {
	return hashmap.Stats{
		Len:         m.keys,
		Cap:         len(m.slots),
		Used:        m.keys,
		Tombstones:  m.tombs,
		Grows:       m.grows,
		Shrinks:     m.shrinks,
		Compactions: m.compactions,
	}
}
