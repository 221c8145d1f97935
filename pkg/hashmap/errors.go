package hashmap

import "github.com/pkg/errors"

var (
	// ErrKeyNotFound is returned by Get and Del when the key has no live entry.
	ErrKeyNotFound = errors.New("hashmap: key not found")
)

// KeyNotFound returns ErrKeyNotFound annotated with the missing key.
func KeyNotFound(key any) error {
	return errors.WithMessagef(ErrKeyNotFound, "key %v", key)
}

// IsKeyNotFound reports whether err is (or wraps) ErrKeyNotFound.
func IsKeyNotFound(err error) bool {
	return errors.Is(err, ErrKeyNotFound)
}
