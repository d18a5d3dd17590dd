package types

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// TokenHashLen is the length of an IBC token hash. It is the SHA-256 digest
// truncated to its first 20 bytes, so distinct denoms may in principle collide.
const TokenHashLen = AddressLen

// TokenHash identifies an IBC token derived from its denom trace.
type TokenHash [TokenHashLen]byte

// String returns the lowercase hex encoding of the hash.
func (h TokenHash) String() string {
	return hex.EncodeToString(h[:])
}

// ParseTokenHash parses the hex encoding produced by TokenHash.String.
func ParseTokenHash(s string) (TokenHash, error) {
	bz, err := hex.DecodeString(s)
	if err != nil {
		return TokenHash{}, ErrInvalidKey.Wrapf("invalid token hash %q: %s", s, err)
	}
	if len(bz) != TokenHashLen {
		return TokenHash{}, ErrInvalidKey.Wrapf("invalid token hash length %d", len(bz))
	}

	var hash TokenHash
	copy(hash[:], bz)
	return hash, nil
}

// CalcIbcTokenHash hashes the denom trace as given; no normalization is applied.
func CalcIbcTokenHash(denom string) TokenHash {
	digest := sha256.Sum256([]byte(denom))

	var hash TokenHash
	copy(hash[:], digest[:TokenHashLen])
	return hash
}

// CalcHash returns the hex encoded token hash of the denom.
func CalcHash(denom string) string {
	return CalcIbcTokenHash(denom).String()
}

// IbcToken returns the internal token address of the denom.
func IbcToken(denom string) Address {
	return NewIbcTokenAddress(CalcIbcTokenHash(denom))
}

// IbcTokenForNft returns the internal token address of an NFT, hashing
// "<classID>/<tokenID>".
func IbcTokenForNft(classID, tokenID string) Address {
	return IbcToken(NftTrace(classID, tokenID))
}

// NftTrace joins the class and token IDs into the hashed trace.
func NftTrace(classID, tokenID string) string {
	return fmt.Sprintf("%s/%s", classID, tokenID)
}
