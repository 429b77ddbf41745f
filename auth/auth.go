package auth

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// Authorizer proves that the current caller controls a principal address.
// Implementations return nil when the proof holds and ErrDenied (possibly
// wrapped) otherwise. The registry aborts any mutating operation whose
// authorization fails, with no state change.
type Authorizer interface {
	RequireAuth(principal common.Address) error
}

// AllowAll authorizes every principal. Intended for tests and for trusted
// local tooling where the operator controls the whole store.
type AllowAll struct{}

// RequireAuth implements the Authorizer interface.
func (AllowAll) RequireAuth(common.Address) error { return nil }

// DenyAll rejects every principal.
type DenyAll struct{}

// RequireAuth implements the Authorizer interface.
func (DenyAll) RequireAuth(principal common.Address) error {
	return fmt.Errorf("%w: %s", ErrDenied, principal.Hex())
}

// Static authorizes a fixed set of principals.
type Static struct {
	allowed map[common.Address]bool
}

// NewStatic creates an Authorizer accepting exactly the given principals.
func NewStatic(principals ...common.Address) *Static {
	allowed := make(map[common.Address]bool, len(principals))
	for _, p := range principals {
		allowed[p] = true
	}
	return &Static{allowed: allowed}
}

// RequireAuth implements the Authorizer interface.
func (s *Static) RequireAuth(principal common.Address) error {
	if !s.allowed[principal] {
		return fmt.Errorf("%w: %s", ErrDenied, principal.Hex())
	}
	return nil
}
