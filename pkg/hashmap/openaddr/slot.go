package openaddr

// slotState tags each slot of the table
type slotState uint8

const (
	empty     slotState = iota // never used, terminates every probe
	occupied                   // holds a live entry
	tombstone                  // held an entry that was deleted
)

// slot represents a single position in the HashMap table
type slot[K comparable, V any] struct {
	state   slotState
	hashkey uint64
	key     K
	val     V
}
