package revshare

import "errors"

var (
	// ErrUnauthorized indicates the authorization collaborator denied the caller.
	ErrUnauthorized = errors.New("revshare: unauthorized")

	// ErrInvalidBps indicates a revenue share outside [0, 10000] basis points.
	ErrInvalidBps = errors.New("revshare: revenue share bps exceeds 10000")

	// ErrOfferingExists indicates the (issuer, token) pair is already registered.
	ErrOfferingExists = errors.New("revshare: offering already exists")

	// ErrInvalidOfferingData indicates a stored offering record is malformed.
	ErrInvalidOfferingData = errors.New("revshare: invalid offering data")

	// ErrInvalidAddressList indicates a stored address list is malformed.
	ErrInvalidAddressList = errors.New("revshare: invalid address list data")

	// ErrCorruptIndex indicates the issuer index references a missing offering.
	ErrCorruptIndex = errors.New("revshare: index references missing offering")

	// ErrNilParam indicates a required parameter was nil.
	ErrNilParam = errors.New("revshare: nil parameter")
)
