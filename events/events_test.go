package events

import (
	"bufio"
	"bytes"
	"encoding/json"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_CapturesInOrder(t *testing.T) {
	rec := &Recorder{}
	token := common.HexToAddress("0x01")
	investor := common.HexToAddress("0x02")

	rec.Emit(BlacklistAdded{Token: token, Investor: investor})
	rec.Emit(BlacklistRemoved{Token: token, Investor: investor})

	got := rec.Events()
	require.Len(t, got, 2)
	assert.Equal(t, TypeBlacklistAdded, got[0].EventType())
	assert.Equal(t, TypeBlacklistRemoved, got[1].EventType())
}

func TestRecorder_EventsReturnsSnapshot(t *testing.T) {
	rec := &Recorder{}
	rec.Emit(BlacklistAdded{})

	snapshot := rec.Events()
	rec.Emit(BlacklistRemoved{})

	assert.Len(t, snapshot, 1)
	assert.Len(t, rec.Events(), 2)
}

func TestJSONEmitter_OneEnvelopePerLine(t *testing.T) {
	var buf bytes.Buffer
	em := NewJSONEmitter(&buf)

	issuer := common.HexToAddress("0xaa")
	token := common.HexToAddress("0xbb")

	em.Emit(OfferingRegistered{Issuer: issuer, Token: token, RevenueShareBps: 750})
	em.Emit(RevenueReported{
		Issuer:    issuer,
		Token:     token,
		Amount:    big.NewInt(1_000_000),
		PeriodID:  7,
		Blacklist: []common.Address{common.HexToAddress("0xcc")},
	})

	scanner := bufio.NewScanner(&buf)
	var envelopes []map[string]json.RawMessage
	for scanner.Scan() {
		var env map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &env))
		envelopes = append(envelopes, env)
	}
	require.NoError(t, scanner.Err())
	require.Len(t, envelopes, 2)

	var typ string
	require.NoError(t, json.Unmarshal(envelopes[0]["type"], &typ))
	assert.Equal(t, TypeOfferingRegistered, typ)

	require.NoError(t, json.Unmarshal(envelopes[1]["type"], &typ))
	assert.Equal(t, TypeRevenueReported, typ)

	// Envelope ids must be unique per emission.
	var idA, idB string
	require.NoError(t, json.Unmarshal(envelopes[0]["id"], &idA))
	require.NoError(t, json.Unmarshal(envelopes[1]["id"], &idB))
	assert.NotEqual(t, idA, idB)
	assert.NotEmpty(t, idA)
}
