package hashmap

// ShouldGrow reports whether a table with used occupied buckets (or slots)
// out of capacity has reached the 2/3 load factor and must double before the
// next insertion.
func ShouldGrow(used, capacity int) bool {
	return used*3 >= capacity*2
}

// ShouldShrink reports whether a table has dropped under the 1/3 load factor
// and may halve before the next deletion. Tables at InitialCapacity never
// shrink.
func ShouldShrink(used, capacity int) bool {
	return capacity > InitialCapacity && used*3 < capacity
}

// GrowCapacity returns the doubled capacity.
func GrowCapacity(capacity int) int {
	if capacity < InitialCapacity {
		return InitialCapacity
	}
	return capacity * 2
}

// ShrinkCapacity returns the halved capacity, clamped to InitialCapacity.
func ShrinkCapacity(capacity int) int {
	if capacity/2 < InitialCapacity {
		return InitialCapacity
	}
	return capacity / 2
}

// KeysMatch reports whether two keys, each with its cached hash, refer to the
// same entry. Comparison is deferred as long as possible since Equal may be
// expensive: identical stored keys match outright (for pointer keys this is
// reference identity, so a key matches itself even if Equal is not
// reflexive), differing hashes never match, and only then is Equal consulted.
func KeysMatch[K comparable](h Hasher[K], k1 K, h1 uint64, k2 K, h2 uint64) bool {
	if k1 == k2 {
		return true
	}
	if h1 != h2 {
		return false
	}
	return h.Equal(k1, k2)
}
