package events

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

const (
	// TypeOfferingRegistered is emitted when a new revenue-share offering is
	// registered for an (issuer, token) pair.
	TypeOfferingRegistered = "revshare.offering.registered"
	// TypeBlacklistAdded is emitted when an investor is added to a token's
	// blacklist. Emission is unconditional, including for already-listed
	// investors.
	TypeBlacklistAdded = "revshare.blacklist.added"
	// TypeBlacklistRemoved is emitted when an investor is removed from a
	// token's blacklist. Emission is unconditional, including for investors
	// that were never listed.
	TypeBlacklistRemoved = "revshare.blacklist.removed"
	// TypeRevenueReported is emitted when an issuer reports revenue for a
	// period. The payload carries the blacklist snapshot read in the same
	// atomic step so consumers can filter recipients without a second query.
	TypeRevenueReported = "revshare.revenue.reported"
)

// OfferingRegistered notifies that a new offering exists.
type OfferingRegistered struct {
	Issuer          common.Address `json:"issuer"`
	Token           common.Address `json:"token"`
	RevenueShareBps uint32         `json:"revenueShareBps"`
}

// EventType implements the Event interface.
func (OfferingRegistered) EventType() string { return TypeOfferingRegistered }

// BlacklistAdded notifies that an investor was blocked for a token.
type BlacklistAdded struct {
	Token    common.Address `json:"token"`
	Caller   common.Address `json:"caller"`
	Investor common.Address `json:"investor"`
}

// EventType implements the Event interface.
func (BlacklistAdded) EventType() string { return TypeBlacklistAdded }

// BlacklistRemoved notifies that an investor was unblocked for a token.
type BlacklistRemoved struct {
	Token    common.Address `json:"token"`
	Caller   common.Address `json:"caller"`
	Investor common.Address `json:"investor"`
}

// EventType implements the Event interface.
func (BlacklistRemoved) EventType() string { return TypeBlacklistRemoved }

// RevenueReported notifies that an issuer reported revenue for a period.
// Blacklist is the token's full exclusion list at the moment of the report.
type RevenueReported struct {
	Issuer    common.Address   `json:"issuer"`
	Token     common.Address   `json:"token"`
	Amount    *big.Int         `json:"amount"`
	PeriodID  uint64           `json:"periodId"`
	Blacklist []common.Address `json:"blacklist"`
}

// EventType implements the Event interface.
func (RevenueReported) EventType() string { return TypeRevenueReported }
