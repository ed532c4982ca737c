package datasource

import "errors"

var (
	// ErrNotInitialized is returned by Read on a store that has never been
	// written.
	ErrNotInitialized = errors.New("data source not initialized")

	// ErrDecode is returned when a layer cannot invert the stored value,
	// e.g. the inner data was not written through a compatible stack.
	ErrDecode = errors.New("cannot decode stored value")
)

// DataSource stores a single text value and hands it back on request.
//
// Implementations are either a leaf that owns the value (MemoryStore) or a
// layer that wraps exactly one inner DataSource, transforming the value on
// Write and applying the inverse on Read. Layers must propagate inner errors
// unchanged.
type DataSource interface {
	Write(value string) error
	Read() (string, error)
}

// Layer constructs a wrapper around an inner DataSource.
type Layer func(inner DataSource) DataSource

// Chain wraps inner with the given layers. The first layer becomes the
// outermost: Chain(s, L1, L2).Write runs L1 then L2 then s.
func Chain(inner DataSource, layers ...Layer) DataSource {
	for i := len(layers) - 1; i >= 0; i-- {
		inner = layers[i](inner)
	}
	return inner
}
