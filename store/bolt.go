package store

import (
	"fmt"
	"os"
	"path/filepath"

	"go.etcd.io/bbolt"
)

var bucketState = []byte("state")

// BoltStore is a Store backed by a bbolt database. All keys live in a single
// bucket; composite key prefixes provide the namespacing.
type BoltStore struct {
	db *bbolt.DB
}

// Compile-time interface check.
var _ Store = (*BoltStore)(nil)

// OpenBoltStore opens or creates the bbolt database at dbPath.
// The parent directory is created if it does not exist.
func OpenBoltStore(dbPath string) (*BoltStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0700); err != nil {
		return nil, fmt.Errorf("store: create directory: %w", err)
	}
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("store: open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketState)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: create bucket %q: %w", bucketState, err)
	}

	return &BoltStore{db: db}, nil
}

// Has reports whether a value exists for key.
func (s *BoltStore) Has(key []byte) (bool, error) {
	if err := validateKey(key); err != nil {
		return false, err
	}

	var found bool
	err := s.db.View(func(tx *bbolt.Tx) error {
		found = tx.Bucket(bucketState).Get(key) != nil
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrIOFailure, err)
	}
	return found, nil
}

// Get retrieves the value stored at key.
func (s *BoltStore) Get(key []byte) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}

	var value []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketState).Get(key)
		if data == nil {
			return ErrKeyNotFound
		}
		// Bolt values are only valid inside the transaction.
		value = make([]byte, len(data))
		copy(value, data)
		return nil
	})
	if err != nil {
		if err == ErrKeyNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrIOFailure, err)
	}
	return value, nil
}

// Set stores value at key.
func (s *BoltStore) Set(key []byte, value []byte) error {
	if err := validateKey(key); err != nil {
		return err
	}
	if len(value) == 0 {
		return ErrEmptyValue
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketState).Put(key, value)
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIOFailure, err)
	}
	return nil
}

// Close closes the underlying database.
func (s *BoltStore) Close() error { return s.db.Close() }
