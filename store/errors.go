package store

import "errors"

var (
	// ErrKeyNotFound indicates no value exists for the given key.
	ErrKeyNotFound = errors.New("store: key not found")

	// ErrEmptyKey indicates an operation was attempted with an empty key.
	ErrEmptyKey = errors.New("store: key must not be empty")

	// ErrEmptyValue indicates an attempt to store an empty value.
	ErrEmptyValue = errors.New("store: value must not be empty")

	// ErrIOFailure indicates a read/write error in the backing engine.
	ErrIOFailure = errors.New("store: I/O failure")
)
