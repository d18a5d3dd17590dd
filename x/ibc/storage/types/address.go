package types

import (
	"bytes"
	"fmt"

	"cosmossdk.io/core/address"

	"github.com/cosmos/cosmos-sdk/types/bech32"
)

// AddressHRP is the human readable part of every encoded address. It is part
// of the storage layout and must not change.
const AddressHRP = "tnam"

// AddressLen is the length of an address payload.
const AddressLen = 20

// AddressKind discriminates the address variants. The values are written as
// the first byte of the raw address encoding.
type AddressKind byte

const (
	AddressKindEstablished AddressKind = 0x00
	AddressKindImplicit    AddressKind = 0x01
	AddressKindInternalIbc AddressKind = 0x02
	AddressKindIbcToken    AddressKind = 0x03
)

func (k AddressKind) String() string {
	switch k {
	case AddressKindEstablished:
		return "established"
	case AddressKindImplicit:
		return "implicit"
	case AddressKindInternalIbc:
		return "internal/ibc"
	case AddressKindIbcToken:
		return "internal/ibc-token"
	default:
		return fmt.Sprintf("unknown(%d)", byte(k))
	}
}

// Address is a 20-byte payload tagged with its kind.
type Address struct {
	kind    AddressKind
	payload [AddressLen]byte
}

// IbcAddress is the internal address of the IBC module. It is both the
// authority recorded for IBC mints and the first segment of every IBC key.
var IbcAddress = Address{kind: AddressKindInternalIbc}

// NewEstablishedAddress wraps a contract or module account.
func NewEstablishedAddress(bz []byte) (Address, error) {
	return newAddress(AddressKindEstablished, bz)
}

// NewImplicitAddress wraps a user account.
func NewImplicitAddress(bz []byte) (Address, error) {
	return newAddress(AddressKindImplicit, bz)
}

// NewIbcTokenAddress wraps a token hash into an internal IBC token address.
func NewIbcTokenAddress(hash TokenHash) Address {
	return Address{kind: AddressKindIbcToken, payload: hash}
}

func newAddress(kind AddressKind, bz []byte) (Address, error) {
	if len(bz) != AddressLen {
		return Address{}, ErrInvalidAddress.Wrapf("expected %d bytes, got %d", AddressLen, len(bz))
	}

	addr := Address{kind: kind}
	copy(addr.payload[:], bz)
	return addr, nil
}

// Kind returns the address variant.
func (a Address) Kind() AddressKind {
	return a.kind
}

// Payload returns a copy of the 20-byte payload.
func (a Address) Payload() []byte {
	return bytes.Clone(a.payload[:])
}

// IsInternal returns true for module-reserved addresses.
func (a Address) IsInternal() bool {
	return a.kind == AddressKindInternalIbc || a.kind == AddressKindIbcToken
}

// IbcTokenHash returns the token hash of an internal IBC token address.
func (a Address) IbcTokenHash() (TokenHash, bool) {
	if a.kind != AddressKindIbcToken {
		return TokenHash{}, false
	}
	return TokenHash(a.payload), true
}

// Bytes returns the raw encoding: kind byte followed by the payload.
func (a Address) Bytes() []byte {
	bz := make([]byte, 0, AddressLen+1)
	bz = append(bz, byte(a.kind))
	return append(bz, a.payload[:]...)
}

// Equal compares both kind and payload.
func (a Address) Equal(other Address) bool {
	return a == other
}

// Empty returns true for the zero value.
func (a Address) Empty() bool {
	return a == Address{}
}

// String returns the bech32 encoding of the raw address.
func (a Address) String() string {
	s, err := bech32.ConvertAndEncode(AddressHRP, a.Bytes())
	if err != nil {
		panic(err)
	}
	return s
}

// AddressFromBytes decodes the raw encoding produced by Address.Bytes.
func AddressFromBytes(bz []byte) (Address, error) {
	if len(bz) != AddressLen+1 {
		return Address{}, ErrInvalidAddress.Wrapf("expected %d bytes, got %d", AddressLen+1, len(bz))
	}

	kind := AddressKind(bz[0])
	switch kind {
	case AddressKindEstablished, AddressKindImplicit, AddressKindIbcToken:
		return newAddress(kind, bz[1:])
	case AddressKindInternalIbc:
		addr, err := newAddress(kind, bz[1:])
		if err != nil {
			return Address{}, err
		}
		if addr != IbcAddress {
			return Address{}, ErrInvalidAddress.Wrap("internal ibc address must have an empty payload")
		}
		return addr, nil
	default:
		return Address{}, ErrInvalidAddress.Wrapf("unknown address kind %d", bz[0])
	}
}

// ParseAddress decodes the bech32 string produced by Address.String.
func ParseAddress(s string) (Address, error) {
	hrp, bz, err := bech32.DecodeAndConvert(s)
	if err != nil {
		return Address{}, ErrInvalidAddress.Wrapf("%s: %s", s, err)
	}
	if hrp != AddressHRP {
		return Address{}, ErrInvalidAddress.Wrapf("unexpected prefix %q in %s", hrp, s)
	}

	return AddressFromBytes(bz)
}

var _ address.Codec = AddressCodec{}

// AddressCodec converts between the raw and textual address encodings.
type AddressCodec struct{}

// StringToBytes implements address.Codec.
func (AddressCodec) StringToBytes(text string) ([]byte, error) {
	addr, err := ParseAddress(text)
	if err != nil {
		return nil, err
	}
	return addr.Bytes(), nil
}

// BytesToString implements address.Codec.
func (AddressCodec) BytesToString(bz []byte) (string, error) {
	addr, err := AddressFromBytes(bz)
	if err != nil {
		return "", err
	}
	return addr.String(), nil
}
