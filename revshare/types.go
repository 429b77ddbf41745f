package revshare

import "github.com/ethereum/go-ethereum/common"

// MaxBps is the upper bound of a revenue share expressed in basis points.
const MaxBps = 10_000

// MaxPageLimit caps the number of offerings returned per page. The value is a
// fixed part of the pagination contract; callers depend on it.
const MaxPageLimit = 20

// OfferingStatus is the lifecycle state of an offering. Only StatusActive is
// ever assigned today; transition rules for the other states are an explicit
// extension point.
type OfferingStatus uint8

const (
	StatusActive OfferingStatus = iota
	StatusSuspended
	StatusClosed
)

// String returns the status name.
func (s OfferingStatus) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusSuspended:
		return "suspended"
	case StatusClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// valid reports whether the status is one of the defined values.
func (s OfferingStatus) valid() bool {
	return s <= StatusClosed
}

// Offering is one issuer's revenue-share terms for one token. At most one
// offering exists per (issuer, token) pair; the record is immutable once
// registered.
type Offering struct {
	Issuer          common.Address
	Token           common.Address
	RevenueShareBps uint32
	Status          OfferingStatus
}
