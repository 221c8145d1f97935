// Package hashtables builds any of the hash table variants in this module
// behind the common hashmap.Table contract.
package hashtables

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/scottcagno/hashtables/pkg/hashmap"
	"github.com/scottcagno/hashtables/pkg/hashmap/chained"
	"github.com/scottcagno/hashtables/pkg/hashmap/openaddr"
	"github.com/scottcagno/hashtables/pkg/hashmap/sharded"
)

// Variant names a hash table implementation
type Variant int

const (
	Fixed     Variant = iota // separate chaining, 8 buckets forever
	Growable                 // separate chaining with grow and shrink
	Cached                   // Growable plus cached key hashes
	Linear                   // open addressing, linear probing
	Perturbed                // open addressing, perturbed probing
)

var ErrUnknownVariant = errors.New("hashtables: unknown variant")

var variantNames = []string{
	Fixed:     "fixed",
	Growable:  "growable",
	Cached:    "cached",
	Linear:    "linear",
	Perturbed: "perturbed",
}

func (v Variant) String() string {
	if v < 0 || int(v) >= len(variantNames) {
		return "unknown"
	}
	return variantNames[v]
}

// Variants lists every variant in declaration order
func Variants() []Variant {
	vs := make([]Variant, len(variantNames))
	for i := range vs {
		vs[i] = Variant(i)
	}
	return vs
}

// ParseVariant is the inverse of Variant.String
func ParseVariant(s string) (Variant, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range variantNames {
		if n == name {
			return Variant(i), nil
		}
	}
	return 0, errors.WithMessagef(ErrUnknownVariant, "%q", s)
}

// New returns an empty table of the given variant
func New[K comparable, V any](v Variant, opts ...hashmap.Option[K, V]) (hashmap.Table[K, V], error) {
	factory, err := Factory[K, V](v)
	if err != nil {
		return nil, err
	}
	return factory(opts...), nil
}

// Factory returns the constructor for the given variant, in the form a
// sharded map takes for its shards
func Factory[K comparable, V any](v Variant) (sharded.Factory[K, V], error) {
	switch v {
	case Fixed:
		return func(opts ...hashmap.Option[K, V]) hashmap.Table[K, V] {
			return chained.NewFixedHashMap(opts...)
		}, nil
	case Growable:
		return func(opts ...hashmap.Option[K, V]) hashmap.Table[K, V] {
			return chained.NewHashMap(opts...)
		}, nil
	case Cached:
		return func(opts ...hashmap.Option[K, V]) hashmap.Table[K, V] {
			return chained.NewCachedHashMap(opts...)
		}, nil
	case Linear:
		return func(opts ...hashmap.Option[K, V]) hashmap.Table[K, V] {
			return openaddr.NewLinearHashMap(opts...)
		}, nil
	case Perturbed:
		return func(opts ...hashmap.Option[K, V]) hashmap.Table[K, V] {
			return openaddr.NewPerturbedHashMap(opts...)
		}, nil
	}
	return nil, errors.WithMessagef(ErrUnknownVariant, "%d", int(v))
}

// NewSharded returns a concurrency safe map of count shards of the given
// variant
func NewSharded[K comparable, V any](v Variant, count int, opts ...hashmap.Option[K, V]) (*sharded.HashMap[K, V], error) {
	factory, err := Factory[K, V](v)
	if err != nil {
		return nil, err
	}
	return sharded.NewHashMap(count, factory, opts...), nil
}
