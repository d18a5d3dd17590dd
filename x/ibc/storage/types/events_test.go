package types_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/initia-labs/ibc-storage/x/ibc/storage/types"
)

func TestBalanceChangeEvent(t *testing.T) {
	target, err := types.NewImplicitAddress(bytes.Repeat([]byte{1}, types.AddressLen))
	require.NoError(t, err)
	token := types.IbcToken("transfer/channel-0/uatom")

	event := types.BalanceChangeEvent{
		Level:       types.EventLevelTx,
		Descriptor:  types.DescriptorMintIbcTokens,
		Token:       token,
		Target:      target,
		PostBalance: math.NewInt(150),
		Diff:        math.NewInt(50),
	}

	sdkEvent := event.ToEvent()
	require.Equal(t, types.EventTypeBalanceChange, sdkEvent.Type)

	attrs := make(map[string]string)
	for _, attr := range sdkEvent.Attributes {
		attrs[attr.Key] = attr.Value
	}
	require.Equal(t, map[string]string{
		types.AttributeKeyLevel:       "tx",
		types.AttributeKeyDescriptor:  "mint-ibc-tokens",
		types.AttributeKeyToken:       "tnam1qvnnjnasjtfwen2kzg78fumwfs0eycqpece7dhvu",
		types.AttributeKeyTarget:      "tnam1qyqszqgpqyqszqgpqyqszqgpqyqszqgpqyn23fwx",
		types.AttributeKeyPostBalance: "150",
		types.AttributeKeyDiff:        "50",
	}, attrs)

	parsed, err := types.BalanceChangeEventFromEvent(sdkEvent)
	require.NoError(t, err)
	require.Equal(t, event.Level, parsed.Level)
	require.Equal(t, event.Descriptor, parsed.Descriptor)
	require.Equal(t, token, parsed.Token)
	require.Equal(t, target, parsed.Target)
	require.True(t, event.PostBalance.Equal(parsed.PostBalance))
	require.True(t, event.Diff.Equal(parsed.Diff))

	_, err = types.BalanceChangeEventFromEvent(sdk.NewEvent("transfer"))
	require.ErrorIs(t, err, types.ErrInvalidEvent)

	_, err = types.BalanceChangeEventFromEvent(sdk.NewEvent(types.EventTypeBalanceChange,
		sdk.NewAttribute(types.AttributeKeyToken, token.String()),
		sdk.NewAttribute(types.AttributeKeyTarget, target.String()),
		sdk.NewAttribute(types.AttributeKeyPostBalance, "abc"),
	))
	require.ErrorIs(t, err, types.ErrInvalidEvent)
}
