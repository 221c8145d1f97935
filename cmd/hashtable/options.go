package main

import (
	"strings"

	"github.com/Scusemua/go-utils/config"
	"github.com/pkg/errors"

	"github.com/scottcagno/hashtables"
	"github.com/scottcagno/hashtables/pkg/hashmap"
)

const (
	KeyKindInt    = "int"
	KeyKindString = "string"
	KeyKindUUID   = "uuid"

	HasherDefault = "default"
	HasherXX      = "xxhash"
	HasherMurmur3 = "murmur3"

	AllVariants = "all"
)

type Options struct {
	config.LoggerOptions

	Variant string `name:"variant" description:"Variant to exercise: fixed, growable, cached, linear, perturbed or all."`
	Keys    int    `name:"keys" description:"Number of keys inserted by the workload."`
	KeyKind string `name:"key-kind" description:"Kind of keys to generate: int, string or uuid."`
	Hasher  string `name:"hasher" description:"Hasher for string keys: default, xxhash or murmur3."`
	Shards  int    `name:"shards" description:"Number of shards; 0 runs each table unsharded."`
	Metrics bool   `name:"metrics" description:"Print the prometheus series recorded for each run."`
}

func (o *Options) Validate() error {
	if o.Keys <= 0 {
		return errors.Errorf("-keys must be positive, got %d", o.Keys)
	}
	if o.Shards < 0 {
		return errors.Errorf("-shards must not be negative, got %d", o.Shards)
	}
	if _, err := o.Variants(); err != nil {
		return err
	}
	switch o.KeyKind {
	case KeyKindInt, KeyKindString, KeyKindUUID:
	default:
		return errors.Errorf("unknown -key-kind %q", o.KeyKind)
	}
	switch o.Hasher {
	case HasherDefault, HasherXX, HasherMurmur3:
	default:
		return errors.Errorf("unknown -hasher %q", o.Hasher)
	}
	return nil
}

// Variants resolves the -variant flag
func (o *Options) Variants() ([]hashtables.Variant, error) {
	if strings.EqualFold(o.Variant, AllVariants) {
		return hashtables.Variants(), nil
	}
	v, err := hashtables.ParseVariant(o.Variant)
	if err != nil {
		return nil, errors.Wrap(err, "-variant")
	}
	return []hashtables.Variant{v}, nil
}

func hasherFor[K comparable](name string) hashmap.Hasher[K] {
	// the default already hashes strings with xxhash
	switch name {
	case HasherMurmur3:
		return hashmap.Murmur3Hasher[K]()
	}
	return hashmap.DefaultHasher[K]()
}
