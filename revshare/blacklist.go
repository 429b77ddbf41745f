package revshare

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/ethereum/go-ethereum/common"

	"github.com/revoraorg/librevshare-go/events"
)

// BlacklistAdd inserts investor into token's blacklist. Adding an
// already-listed investor is a no-op, not an error. Any authorized caller may
// curate any token's blacklist; which principals are permitted is entirely the
// authorizer's decision. The add notification is emitted unconditionally.
func (r *Registry) BlacklistAdd(caller, token, investor common.Address) error {
	if err := r.auth.RequireAuth(caller); err != nil {
		return fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	listed, err := r.readAddressList(blacklistKey(token))
	if err != nil {
		return err
	}

	if !containsAddress(listed, investor) {
		listed = append(listed, investor)
		// Keep the stored list sorted so state is deterministic across
		// insertion orders.
		sort.Slice(listed, func(i, j int) bool {
			return bytes.Compare(listed[i][:], listed[j][:]) < 0
		})
		if err := r.writeAddressList(blacklistKey(token), listed); err != nil {
			return fmt.Errorf("revshare: store blacklist: %w", err)
		}
	}

	r.emit.Emit(events.BlacklistAdded{Token: token, Caller: caller, Investor: investor})
	return nil
}

// BlacklistRemove deletes investor from token's blacklist. Removing an
// unlisted investor is a no-op, not an error. The remove notification is
// emitted unconditionally.
func (r *Registry) BlacklistRemove(caller, token, investor common.Address) error {
	if err := r.auth.RequireAuth(caller); err != nil {
		return fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	listed, err := r.readAddressList(blacklistKey(token))
	if err != nil {
		return err
	}

	if containsAddress(listed, investor) {
		remaining := make([]common.Address, 0, len(listed)-1)
		for _, addr := range listed {
			if addr != investor {
				remaining = append(remaining, addr)
			}
		}
		if err := r.writeAddressList(blacklistKey(token), remaining); err != nil {
			return fmt.Errorf("revshare: store blacklist: %w", err)
		}
	}

	r.emit.Emit(events.BlacklistRemoved{Token: token, Caller: caller, Investor: investor})
	return nil
}

// IsBlacklisted reports whether investor is blocked for token. No
// authorization is required; unknown tokens and unknown investors both read
// as false.
func (r *Registry) IsBlacklisted(token, investor common.Address) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	listed, err := r.readAddressList(blacklistKey(token))
	if err != nil {
		return false, err
	}
	return containsAddress(listed, investor), nil
}

// GetBlacklist returns all blocked investor addresses for token, empty when
// none are recorded. Order carries no meaning.
func (r *Registry) GetBlacklist(token common.Address) ([]common.Address, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.readAddressList(blacklistKey(token))
}

func containsAddress(addrs []common.Address, target common.Address) bool {
	for _, addr := range addrs {
		if addr == target {
			return true
		}
	}
	return false
}
