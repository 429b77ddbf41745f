package revshare

import (
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revoraorg/librevshare-go/auth"
	"github.com/revoraorg/librevshare-go/events"
	"github.com/revoraorg/librevshare-go/store"
)

func TestRegisterOffering_StoresData(t *testing.T) {
	reg, _ := newTestRegistry(t)
	issuer := makeAddr(0xAA)
	token := makeAddr(0xBB)

	require.NoError(t, reg.RegisterOffering(issuer, token, 500))

	offering, err := reg.GetOffering(issuer, token)
	require.NoError(t, err)
	require.NotNil(t, offering)
	assert.Equal(t, issuer, offering.Issuer)
	assert.Equal(t, token, offering.Token)
	assert.Equal(t, uint32(500), offering.RevenueShareBps)
	assert.Equal(t, StatusActive, offering.Status)
}

func TestRegisterOffering_EmitsRegistrationEvent(t *testing.T) {
	reg, rec := newTestRegistry(t)
	issuer := makeAddr(0xAA)
	token := makeAddr(0xBB)

	require.NoError(t, reg.RegisterOffering(issuer, token, 1000))

	emitted := rec.Events()
	require.Len(t, emitted, 1)
	ev, ok := emitted[0].(events.OfferingRegistered)
	require.True(t, ok)
	assert.Equal(t, issuer, ev.Issuer)
	assert.Equal(t, token, ev.Token)
	assert.Equal(t, uint32(1000), ev.RevenueShareBps)
}

func TestRegisterOffering_BpsBoundary(t *testing.T) {
	reg, _ := newTestRegistry(t)

	// Exactly 10000 is valid.
	require.NoError(t, reg.RegisterOffering(makeAddr(0x01), makeAddr(0x02), 10_000))

	// 10001 is not, and must leave no trace.
	issuer := makeAddr(0x03)
	err := reg.RegisterOffering(issuer, makeAddr(0x04), 10_001)
	assert.ErrorIs(t, err, ErrInvalidBps)

	count, err := reg.GetOfferingCount(issuer)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestRegisterOffering_DuplicateFails(t *testing.T) {
	reg, _ := newTestRegistry(t)
	issuer := makeAddr(0xAA)
	token := makeAddr(0xBB)

	require.NoError(t, reg.RegisterOffering(issuer, token, 100))
	err := reg.RegisterOffering(issuer, token, 200)
	assert.ErrorIs(t, err, ErrOfferingExists)

	// First registration is untouched.
	offering, err := reg.GetOffering(issuer, token)
	require.NoError(t, err)
	require.NotNil(t, offering)
	assert.Equal(t, uint32(100), offering.RevenueShareBps)

	count, err := reg.GetOfferingCount(issuer)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), count)
}

func TestRegisterOffering_Unauthorized(t *testing.T) {
	reg, rec := newDeniedRegistry(t)
	issuer := makeAddr(0xAA)
	token := makeAddr(0xBB)

	err := reg.RegisterOffering(issuer, token, 100)
	assert.ErrorIs(t, err, ErrUnauthorized)

	offering, err := reg.GetOffering(issuer, token)
	require.NoError(t, err)
	assert.Nil(t, offering)

	count, err := reg.GetOfferingCount(issuer)
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Empty(t, rec.Events())
}

func TestGetOffering_NilForNonexistent(t *testing.T) {
	reg, _ := newTestRegistry(t)

	offering, err := reg.GetOffering(makeAddr(0x01), makeAddr(0x02))
	require.NoError(t, err)
	assert.Nil(t, offering)
}

func TestListOfferings_EmptyForNewIssuer(t *testing.T) {
	reg, _ := newTestRegistry(t)

	list, err := reg.ListOfferings(makeAddr(0x01))
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestListOfferings_CreationOrder(t *testing.T) {
	reg, _ := newTestRegistry(t)
	issuer := makeAddr(0xAA)
	tokens := []common.Address{makeAddr(0x03), makeAddr(0x01), makeAddr(0x02)}

	for i, token := range tokens {
		require.NoError(t, reg.RegisterOffering(issuer, token, uint32(i*100)))
	}

	list, err := reg.ListOfferings(issuer)
	require.NoError(t, err)
	assert.Equal(t, tokens, list)
}

func TestOfferingIsolationBetweenIssuers(t *testing.T) {
	reg, _ := newTestRegistry(t)
	issuerA := makeAddr(0xA1)
	issuerB := makeAddr(0xB1)
	token := makeAddr(0xCC)

	require.NoError(t, reg.RegisterOffering(issuerA, token, 100))
	require.NoError(t, reg.RegisterOffering(issuerB, token, 200))

	offA, err := reg.GetOffering(issuerA, token)
	require.NoError(t, err)
	require.NotNil(t, offA)
	assert.Equal(t, uint32(100), offA.RevenueShareBps)

	offB, err := reg.GetOffering(issuerB, token)
	require.NoError(t, err)
	require.NotNil(t, offB)
	assert.Equal(t, uint32(200), offB.RevenueShareBps)

	for _, issuer := range []common.Address{issuerA, issuerB} {
		count, err := reg.GetOfferingCount(issuer)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), count)
	}
}

// registerN registers n offerings for issuer with distinct tokens and returns
// the tokens in creation order.
func registerN(t *testing.T, reg *Registry, issuer common.Address, n int) []common.Address {
	t.Helper()
	tokens := make([]common.Address, 0, n)
	for i := 0; i < n; i++ {
		token := makeAddr(byte(i + 1))
		require.NoError(t, reg.RegisterOffering(issuer, token, uint32(i)*10))
		tokens = append(tokens, token)
	}
	return tokens
}

func TestGetOfferingsPage_Limits(t *testing.T) {
	tests := []struct {
		name       string
		total      int
		start      uint64
		limit      uint64
		wantLen    int
		wantCursor *uint64
	}{
		{"first page of many", 7, 0, 3, 3, cursorAt(3)},
		{"middle page", 7, 3, 3, 3, cursorAt(6)},
		{"final partial page", 7, 6, 3, 1, nil},
		{"start at count", 7, 7, 3, 0, nil},
		{"start past count", 7, 100, 3, 0, nil},
		{"limit zero means max", 25, 0, 0, 20, cursorAt(20)},
		{"limit above max is clamped", 25, 0, 50, 20, cursorAt(20)},
		{"exact fit leaves no cursor", 20, 0, 20, 20, nil},
		{"empty issuer", 0, 0, 5, 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg, _ := newTestRegistry(t)
			issuer := makeAddr(0xEE)
			registerN(t, reg, issuer, tt.total)

			page, next, err := reg.GetOfferingsPage(issuer, tt.start, tt.limit)
			require.NoError(t, err)
			assert.Len(t, page, tt.wantLen)
			if tt.wantCursor == nil {
				assert.Nil(t, next)
			} else {
				require.NotNil(t, next)
				assert.Equal(t, *tt.wantCursor, *next)
			}
		})
	}
}

func cursorAt(i uint64) *uint64 { return &i }

func TestGetOfferingsPage_CursorChainingVisitsAllOnce(t *testing.T) {
	reg, _ := newTestRegistry(t)
	issuer := makeAddr(0xEE)
	tokens := registerN(t, reg, issuer, 7)

	var visited []common.Address
	var start uint64
	for {
		page, next, err := reg.GetOfferingsPage(issuer, start, 3)
		require.NoError(t, err)
		for _, offering := range page {
			visited = append(visited, offering.Token)
		}
		if next == nil {
			break
		}
		start = *next
	}

	assert.Equal(t, tokens, visited)
}

func TestGetOfferingsPage_ReturnsFullRecords(t *testing.T) {
	reg, _ := newTestRegistry(t)
	issuer := makeAddr(0xEE)
	registerN(t, reg, issuer, 3)

	page, next, err := reg.GetOfferingsPage(issuer, 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	require.NotNil(t, next)
	assert.Equal(t, uint64(2), *next)
	assert.Equal(t, issuer, page[0].Issuer)
	assert.Equal(t, makeAddr(0x02), page[0].Token)
	assert.Equal(t, uint32(10), page[0].RevenueShareBps)
	assert.Equal(t, StatusActive, page[0].Status)
}

func TestRegistry_ManyOfferingsOneIssuer(t *testing.T) {
	reg, _ := newTestRegistry(t)
	issuer := makeAddr(0xEE)
	registerN(t, reg, issuer, 50)

	count, err := reg.GetOfferingCount(issuer)
	require.NoError(t, err)
	assert.Equal(t, uint64(50), count)

	list, err := reg.ListOfferings(issuer)
	require.NoError(t, err)
	assert.Len(t, list, 50)
}

func TestRegistry_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")
	issuer := makeAddr(0xAA)
	token := makeAddr(0xBB)
	investor := makeAddr(0xCC)

	st, err := store.OpenBoltStore(path)
	require.NoError(t, err)
	reg, err := New(st, auth.AllowAll{}, nil)
	require.NoError(t, err)
	require.NoError(t, reg.RegisterOffering(issuer, token, 2500))
	require.NoError(t, reg.BlacklistAdd(issuer, token, investor))
	require.NoError(t, st.Close())

	st, err = store.OpenBoltStore(path)
	require.NoError(t, err)
	defer st.Close()
	reg, err = New(st, auth.AllowAll{}, nil)
	require.NoError(t, err)

	offering, err := reg.GetOffering(issuer, token)
	require.NoError(t, err)
	require.NotNil(t, offering)
	assert.Equal(t, uint32(2500), offering.RevenueShareBps)

	blocked, err := reg.IsBlacklisted(token, investor)
	require.NoError(t, err)
	assert.True(t, blocked)
}
