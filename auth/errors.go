package auth

import "errors"

var (
	// ErrDenied indicates the caller could not prove control of the principal.
	ErrDenied = errors.New("auth: authorization denied")

	// ErrInvalidSignature indicates the signature is malformed or does not
	// recover to a public key.
	ErrInvalidSignature = errors.New("auth: invalid signature")
)
