package types

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIbcAddress_String(t *testing.T) {
	require.Equal(t, "tnam1qgqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqdmzxvr", IbcAddress.String())
	require.True(t, IbcAddress.IsInternal())
	require.Equal(t, AddressKindInternalIbc, IbcAddress.Kind())
}

func TestParseAddress(t *testing.T) {
	implicit, err := NewImplicitAddress(bytes.Repeat([]byte{1}, AddressLen))
	require.NoError(t, err)
	require.Equal(t, "tnam1qyqszqgpqyqszqgpqyqszqgpqyqszqgpqyn23fwx", implicit.String())

	established, err := NewEstablishedAddress(bytes.Repeat([]byte{0xab}, AddressLen))
	require.NoError(t, err)

	for _, addr := range []Address{IbcAddress, implicit, established, IbcToken("transfer/channel-0/uatom")} {
		parsed, err := ParseAddress(addr.String())
		require.NoError(t, err)
		require.True(t, addr.Equal(parsed), addr.String())

		fromBytes, err := AddressFromBytes(addr.Bytes())
		require.NoError(t, err)
		require.Equal(t, addr, fromBytes)
	}
}

func TestParseAddress_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		addr string
	}{
		{"empty", ""},
		{"not bech32", "tnam1invalid"},
		{"foreign prefix", "init1qgqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqdmzxvr"},
		{"bad checksum", "tnam1qgqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqdmzxvq"},
	}

	for _, tc := range testCases {
		_, err := ParseAddress(tc.addr)
		require.ErrorIs(t, err, ErrInvalidAddress, tc.name)
	}
}

func TestAddressFromBytes_Invalid(t *testing.T) {
	_, err := AddressFromBytes([]byte{byte(AddressKindImplicit), 1, 2})
	require.ErrorIs(t, err, ErrInvalidAddress)

	_, err = AddressFromBytes(append([]byte{0x7f}, make([]byte, AddressLen)...))
	require.ErrorIs(t, err, ErrInvalidAddress)

	// the internal ibc address has no payload
	_, err = AddressFromBytes(append([]byte{byte(AddressKindInternalIbc)}, bytes.Repeat([]byte{1}, AddressLen)...))
	require.ErrorIs(t, err, ErrInvalidAddress)

	_, err = NewImplicitAddress([]byte{1})
	require.ErrorIs(t, err, ErrInvalidAddress)
}

func TestAddressCodec(t *testing.T) {
	codec := AddressCodec{}

	token := IbcToken("transfer/channel-0/uatom")
	bz, err := codec.StringToBytes(token.String())
	require.NoError(t, err)
	require.Equal(t, token.Bytes(), bz)

	text, err := codec.BytesToString(bz)
	require.NoError(t, err)
	require.Equal(t, "tnam1qvnnjnasjtfwen2kzg78fumwfs0eycqpece7dhvu", text)

	_, err = codec.BytesToString([]byte{1})
	require.Error(t, err)
}
