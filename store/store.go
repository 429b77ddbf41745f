package store

// Store is the persistent key-value contract the revenue-share registry is
// built on. Keys are opaque composite byte strings, values are opaque encoded
// records. Absence of a key is reported through Has or ErrKeyNotFound from
// Get, never through an empty value.
type Store interface {
	// Has reports whether a value exists for key.
	Has(key []byte) (bool, error)

	// Get retrieves the value stored at key.
	// Returns ErrKeyNotFound when no value exists.
	Get(key []byte) ([]byte, error)

	// Set stores value at key, overwriting any previous value.
	Set(key []byte, value []byte) error

	// Close releases the underlying resources. The store must not be used
	// after Close returns.
	Close() error
}

// validateKey rejects empty keys up front so all backends behave identically.
func validateKey(key []byte) error {
	if len(key) == 0 {
		return ErrEmptyKey
	}
	return nil
}
