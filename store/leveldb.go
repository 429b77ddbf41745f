package store

import (
	"errors"
	"fmt"

	"github.com/syndtr/goleveldb/leveldb"
)

// LevelStore is a Store backed by a LevelDB database.
type LevelStore struct {
	db *leveldb.DB
}

// Compile-time interface check.
var _ Store = (*LevelStore)(nil)

// OpenLevelStore opens or creates the LevelDB database at dbPath.
func OpenLevelStore(dbPath string) (*LevelStore, error) {
	db, err := leveldb.OpenFile(dbPath, nil)
	if err != nil {
		return nil, fmt.Errorf("store: open leveldb: %w", err)
	}
	return &LevelStore{db: db}, nil
}

// Has reports whether a value exists for key.
func (s *LevelStore) Has(key []byte) (bool, error) {
	if err := validateKey(key); err != nil {
		return false, err
	}

	found, err := s.db.Has(key, nil)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrIOFailure, err)
	}
	return found, nil
}

// Get retrieves the value stored at key.
func (s *LevelStore) Get(key []byte) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}

	value, err := s.db.Get(key, nil)
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("%w: %w", ErrIOFailure, err)
	}
	return value, nil
}

// Set stores value at key.
func (s *LevelStore) Set(key []byte, value []byte) error {
	if err := validateKey(key); err != nil {
		return err
	}
	if len(value) == 0 {
		return ErrEmptyValue
	}

	if err := s.db.Put(key, value, nil); err != nil {
		return fmt.Errorf("%w: %w", ErrIOFailure, err)
	}
	return nil
}

// Close closes the underlying database.
func (s *LevelStore) Close() error { return s.db.Close() }
