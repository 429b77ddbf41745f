package revshare

import "github.com/ethereum/go-ethereum/common"

// Storage key scheme. Every record lives in one flat key-value namespace;
// single-byte prefixes separate the three record families:
//
//	'o' + issuer(20) + token(20)  -> offering record
//	'i' + issuer(20)              -> issuer's token sequence, creation order
//	'b' + token(20)               -> token's blacklist
const (
	prefixOffering       = 'o'
	prefixIssuerIndex    = 'i'
	prefixBlacklist      = 'b'
	offeringKeySize      = 1 + 2*common.AddressLength
	singleAddressKeySize = 1 + common.AddressLength
)

// offeringKey addresses the offering record for (issuer, token).
func offeringKey(issuer, token common.Address) []byte {
	key := make([]byte, offeringKeySize)
	key[0] = prefixOffering
	copy(key[1:], issuer[:])
	copy(key[1+common.AddressLength:], token[:])
	return key
}

// issuerIndexKey addresses the issuer's ordered token sequence.
func issuerIndexKey(issuer common.Address) []byte {
	key := make([]byte, singleAddressKeySize)
	key[0] = prefixIssuerIndex
	copy(key[1:], issuer[:])
	return key
}

// blacklistKey addresses the token's blacklist.
func blacklistKey(token common.Address) []byte {
	key := make([]byte, singleAddressKeySize)
	key[0] = prefixBlacklist
	copy(key[1:], token[:])
	return key
}
