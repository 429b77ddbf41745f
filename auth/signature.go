package auth

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// SignatureVerifier authorizes the single principal recovered from a
// secp256k1 signature over a challenge message. The challenge is hashed with
// the standard personal-sign prefix, so any wallet capable of personal_sign
// can produce a valid proof.
type SignatureVerifier struct {
	recovered common.Address
}

// Compile-time interface check.
var _ Authorizer = (*SignatureVerifier)(nil)

// NewSignatureVerifier recovers the signer of signature over challenge.
// signature must be the 65-byte [R || S || V] form; V may be 0/1 or 27/28.
func NewSignatureVerifier(challenge []byte, signature []byte) (*SignatureVerifier, error) {
	if len(signature) != crypto.SignatureLength {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d",
			ErrInvalidSignature, crypto.SignatureLength, len(signature))
	}

	sig := make([]byte, crypto.SignatureLength)
	copy(sig, signature)
	if sig[crypto.RecoveryIDOffset] >= 27 {
		sig[crypto.RecoveryIDOffset] -= 27
	}

	pubKey, err := crypto.SigToPub(personalDigest(challenge), sig)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}

	return &SignatureVerifier{recovered: crypto.PubkeyToAddress(*pubKey)}, nil
}

// Principal returns the address recovered from the signature.
func (v *SignatureVerifier) Principal() common.Address { return v.recovered }

// RequireAuth implements the Authorizer interface.
func (v *SignatureVerifier) RequireAuth(principal common.Address) error {
	if principal != v.recovered {
		return fmt.Errorf("%w: signature recovers %s, not %s",
			ErrDenied, v.recovered.Hex(), principal.Hex())
	}
	return nil
}

// personalDigest hashes a challenge with the personal-sign message prefix.
func personalDigest(challenge []byte) []byte {
	prefixed := fmt.Sprintf("\x19Ethereum Signed Message:\n%d%s", len(challenge), challenge)
	return crypto.Keccak256([]byte(prefixed))
}
