package hashmap

import (
	"github.com/Scusemua/go-utils/logger"
)

// Config holds the settings shared by every table constructor.
type Config[K comparable, V any] struct {
	Hasher Hasher[K]
	Logger logger.Logger
	Pairs  []Pair[K, V]
}

// Option configures a table at construction time.
type Option[K comparable, V any] func(conf *Config[K, V])

// WithHasher sets the key hashing and equality provider. A nil hasher keeps
// the default.
func WithHasher[K comparable, V any](h Hasher[K]) Option[K, V] {
	return func(conf *Config[K, V]) {
		if h != nil {
			conf.Hasher = h
		}
	}
}

// WithLogger sets the logger used for resize events.
func WithLogger[K comparable, V any](log logger.Logger) Option[K, V] {
	return func(conf *Config[K, V]) {
		conf.Logger = log
	}
}

// WithPairs seeds the table with an initial batch. Pairs are inserted in
// order, so a later duplicate key wins.
func WithPairs[K comparable, V any](pairs ...Pair[K, V]) Option[K, V] {
	return func(conf *Config[K, V]) {
		conf.Pairs = append(conf.Pairs, pairs...)
	}
}

// NewConfig applies opts over the defaults.
func NewConfig[K comparable, V any](opts ...Option[K, V]) *Config[K, V] {
	conf := &Config[K, V]{
		Hasher: DefaultHasher[K](),
	}
	for _, opt := range opts {
		opt(conf)
	}
	return conf
}
