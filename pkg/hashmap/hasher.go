package hashmap

import (
	"hash/maphash"
	"math"

	"github.com/cespare/xxhash"
	"github.com/spaolacci/murmur3"
)

// Hasher supplies the hash function and equality relation for keys of type
// K. Implementations must guarantee that Equal(a, b) implies Hash(a) ==
// Hash(b); tables do not check this and behave unpredictably when it is
// violated.
type Hasher[K any] interface {
	Hash(key K) uint64
	Equal(a, b K) bool
}

// HasherFuncs adapts a pair of plain functions into a Hasher.
type HasherFuncs[K any] struct {
	HashFunc  func(key K) uint64
	EqualFunc func(a, b K) bool
}

func (h HasherFuncs[K]) Hash(key K) uint64 { return h.HashFunc(key) }
func (h HasherFuncs[K]) Equal(a, b K) bool { return h.EqualFunc(a, b) }

// seed is shared by every comparableHasher so hashes are stable for the life
// of the process.
var seed = maphash.MakeSeed()

// comparableHasher is the default Hasher for comparable keys.
type comparableHasher[K comparable] struct {
	str func(s string) uint64
}

// DefaultHasher returns the Hasher used when none is configured. Strings are
// hashed with xxhash, integers hash to their own value, floats to their IEEE
// bits (with -0 folded into +0), and everything else goes through maphash.
func DefaultHasher[K comparable]() Hasher[K] {
	return comparableHasher[K]{str: xxhashString}
}

// Murmur3Hasher is DefaultHasher with string keys hashed by murmur3 instead
// of xxhash.
func Murmur3Hasher[K comparable]() Hasher[K] {
	return comparableHasher[K]{str: murmur3String}
}

func xxhashString(s string) uint64 {
	return xxhash.Sum64([]byte(s))
}

func murmur3String(s string) uint64 {
	return murmur3.Sum64([]byte(s))
}

func (h comparableHasher[K]) Equal(a, b K) bool {
	return a == b
}

func (h comparableHasher[K]) Hash(key K) uint64 {
	switch k := any(key).(type) {
	case string:
		return h.str(k)
	case int:
		return uint64(k)
	case int8:
		return uint64(k)
	case int16:
		return uint64(k)
	case int32:
		return uint64(k)
	case int64:
		return uint64(k)
	case uint:
		return uint64(k)
	case uint8:
		return uint64(k)
	case uint16:
		return uint64(k)
	case uint32:
		return uint64(k)
	case uint64:
		return k
	case uintptr:
		return uint64(k)
	case bool:
		if k {
			return 1
		}
		return 0
	case float32:
		return floatHash(float64(k))
	case float64:
		return floatHash(k)
	default:
		return maphash.Comparable(seed, key)
	}
}

// floatHash keeps 0.0 and -0.0, which compare equal, on the same hash.
func floatHash(f float64) uint64 {
	if f == 0 {
		return 0
	}
	return math.Float64bits(f)
}
