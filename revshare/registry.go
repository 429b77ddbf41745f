package revshare

import (
	"errors"
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/common"

	"github.com/revoraorg/librevshare-go/auth"
	"github.com/revoraorg/librevshare-go/events"
	"github.com/revoraorg/librevshare-go/store"
)

// Registry is the revenue-share offering registry and blacklist manager.
// All state lives in the backing store; the Registry itself only carries the
// collaborators and the lock that serializes operations on non-transactional
// engines. Mutating operations take the write lock, queries the read lock, so
// every public operation observes and produces consistent state.
type Registry struct {
	mu    sync.RWMutex
	store store.Store
	auth  auth.Authorizer
	emit  events.Emitter
}

// New creates a Registry over the given store. A nil emitter discards all
// notifications.
func New(st store.Store, authz auth.Authorizer, emitter events.Emitter) (*Registry, error) {
	if st == nil {
		return nil, fmt.Errorf("%w: store", ErrNilParam)
	}
	if authz == nil {
		return nil, fmt.Errorf("%w: authorizer", ErrNilParam)
	}
	if emitter == nil {
		emitter = events.NoopEmitter{}
	}
	return &Registry{store: st, auth: authz, emit: emitter}, nil
}

// RegisterOffering persists a new offering for (issuer, token) and appends the
// token to the issuer's index. The registration notification is emitted after
// the state is durable. Fails with ErrUnauthorized, ErrInvalidBps or
// ErrOfferingExists; a failed registration leaves no state behind.
func (r *Registry) RegisterOffering(issuer, token common.Address, revenueShareBps uint32) error {
	if err := r.auth.RequireAuth(issuer); err != nil {
		return fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}
	if revenueShareBps > MaxBps {
		return fmt.Errorf("%w: got %d", ErrInvalidBps, revenueShareBps)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := offeringKey(issuer, token)
	exists, err := r.store.Has(key)
	if err != nil {
		return fmt.Errorf("revshare: check offering: %w", err)
	}
	if exists {
		return ErrOfferingExists
	}

	tokens, err := r.readAddressList(issuerIndexKey(issuer))
	if err != nil {
		return err
	}

	offering := &Offering{
		Issuer:          issuer,
		Token:           token,
		RevenueShareBps: revenueShareBps,
		Status:          StatusActive,
	}
	if err := r.store.Set(key, SerializeOffering(offering)); err != nil {
		return fmt.Errorf("revshare: store offering: %w", err)
	}
	if err := r.writeAddressList(issuerIndexKey(issuer), append(tokens, token)); err != nil {
		return fmt.Errorf("revshare: store issuer index: %w", err)
	}

	r.emit.Emit(events.OfferingRegistered{
		Issuer:          issuer,
		Token:           token,
		RevenueShareBps: revenueShareBps,
	})
	return nil
}

// GetOffering returns the offering for (issuer, token), or nil when none is
// registered. Absence is not an error.
func (r *Registry) GetOffering(issuer, token common.Address) (*Offering, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.getOffering(issuer, token)
}

// ListOfferings returns all of the issuer's offering tokens in creation order.
// Unknown issuers yield an empty list.
func (r *Registry) ListOfferings(issuer common.Address) ([]common.Address, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.readAddressList(issuerIndexKey(issuer))
}

// GetOfferingCount returns the number of offerings registered by issuer.
func (r *Registry) GetOfferingCount(issuer common.Address) (uint64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tokens, err := r.readAddressList(issuerIndexKey(issuer))
	if err != nil {
		return 0, err
	}
	return uint64(len(tokens)), nil
}

// GetOfferingsPage returns the issuer's offerings at index range
// [start, start+limit) in creation order, and the index of the next unread
// offering, or nil when the page reaches the end. A limit of 0, or any limit
// above MaxPageLimit, behaves as MaxPageLimit. A start at or past the end is
// not an error; it yields an empty page with no cursor.
func (r *Registry) GetOfferingsPage(issuer common.Address, start, limit uint64) ([]Offering, *uint64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	effective := limit
	if effective == 0 || effective > MaxPageLimit {
		effective = MaxPageLimit
	}

	tokens, err := r.readAddressList(issuerIndexKey(issuer))
	if err != nil {
		return nil, nil, err
	}
	count := uint64(len(tokens))
	if start >= count {
		return nil, nil, nil
	}

	end := start + effective
	if end > count {
		end = count
	}

	page := make([]Offering, 0, end-start)
	for _, token := range tokens[start:end] {
		offering, err := r.getOffering(issuer, token)
		if err != nil {
			return nil, nil, err
		}
		if offering == nil {
			return nil, nil, fmt.Errorf("%w: issuer %s token %s", ErrCorruptIndex, issuer.Hex(), token.Hex())
		}
		page = append(page, *offering)
	}

	var next *uint64
	if end < count {
		cursor := end
		next = &cursor
	}
	return page, next, nil
}

// getOffering loads one offering record. Callers hold the lock.
func (r *Registry) getOffering(issuer, token common.Address) (*Offering, error) {
	data, err := r.store.Get(offeringKey(issuer, token))
	if err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("revshare: load offering: %w", err)
	}
	return DeserializeOffering(data)
}

// readAddressList loads the address list at key; a missing key is an empty
// list. Callers hold the lock.
func (r *Registry) readAddressList(key []byte) ([]common.Address, error) {
	data, err := r.store.Get(key)
	if err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("revshare: load address list: %w", err)
	}
	return DeserializeAddressList(data)
}

// writeAddressList stores the address list at key. Callers hold the lock.
func (r *Registry) writeAddressList(key []byte, addrs []common.Address) error {
	data, err := SerializeAddressList(addrs)
	if err != nil {
		return err
	}
	return r.store.Set(key, data)
}
