package revshare

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/revoraorg/librevshare-go/auth"
	"github.com/revoraorg/librevshare-go/events"
	"github.com/revoraorg/librevshare-go/store"
)

func makeAddr(seed byte) common.Address {
	var addr common.Address
	for i := range addr {
		addr[i] = seed
	}
	return addr
}

// newTestRegistry builds a registry over a fresh in-memory store with
// authorization granted to everyone, and records all emitted events.
func newTestRegistry(t *testing.T) (*Registry, *events.Recorder) {
	t.Helper()
	rec := &events.Recorder{}
	reg, err := New(store.NewMemStore(), auth.AllowAll{}, rec)
	require.NoError(t, err)
	return reg, rec
}

// newDeniedRegistry builds a registry whose authorizer rejects every caller.
func newDeniedRegistry(t *testing.T) (*Registry, *events.Recorder) {
	t.Helper()
	rec := &events.Recorder{}
	reg, err := New(store.NewMemStore(), auth.DenyAll{}, rec)
	require.NoError(t, err)
	return reg, rec
}

func TestNew_RequiresStoreAndAuthorizer(t *testing.T) {
	_, err := New(nil, auth.AllowAll{}, nil)
	require.ErrorIs(t, err, ErrNilParam)

	_, err = New(store.NewMemStore(), nil, nil)
	require.ErrorIs(t, err, ErrNilParam)
}

func TestNew_NilEmitterDiscardsEvents(t *testing.T) {
	reg, err := New(store.NewMemStore(), auth.AllowAll{}, nil)
	require.NoError(t, err)

	// Must not panic when emitting.
	require.NoError(t, reg.RegisterOffering(makeAddr(0x01), makeAddr(0x02), 100))
}
