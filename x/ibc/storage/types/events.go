package types

import (
	"cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// IBC storage events
const (
	EventTypeBalanceChange = "balance_change"

	AttributeKeyLevel       = "level"
	AttributeKeyDescriptor  = "descriptor"
	AttributeKeyToken       = "token"
	AttributeKeyTarget      = "target"
	AttributeKeyPostBalance = "post_balance"
	AttributeKeyDiff        = "diff"

	EventLevelTx = "tx"

	DescriptorMintIbcTokens = "mint-ibc-tokens"
)

// BalanceChangeEvent records a balance mutation and the resulting balance.
type BalanceChangeEvent struct {
	Level       string
	Descriptor  string
	Token       Address
	Target      Address
	PostBalance math.Int
	// Diff is signed; mints are positive.
	Diff math.Int
}

// ToEvent converts the balance change to an sdk event.
func (e BalanceChangeEvent) ToEvent() sdk.Event {
	return sdk.NewEvent(
		EventTypeBalanceChange,
		sdk.NewAttribute(AttributeKeyLevel, e.Level),
		sdk.NewAttribute(AttributeKeyDescriptor, e.Descriptor),
		sdk.NewAttribute(AttributeKeyToken, e.Token.String()),
		sdk.NewAttribute(AttributeKeyTarget, e.Target.String()),
		sdk.NewAttribute(AttributeKeyPostBalance, e.PostBalance.String()),
		sdk.NewAttribute(AttributeKeyDiff, e.Diff.String()),
	)
}

// BalanceChangeEventFromEvent parses an event produced by ToEvent.
func BalanceChangeEventFromEvent(event sdk.Event) (BalanceChangeEvent, error) {
	if event.Type != EventTypeBalanceChange {
		return BalanceChangeEvent{}, ErrInvalidEvent.Wrapf("unexpected event type %s", event.Type)
	}

	attrs := make(map[string]string, len(event.Attributes))
	for _, attr := range event.Attributes {
		attrs[attr.Key] = attr.Value
	}

	token, err := ParseAddress(attrs[AttributeKeyToken])
	if err != nil {
		return BalanceChangeEvent{}, err
	}
	target, err := ParseAddress(attrs[AttributeKeyTarget])
	if err != nil {
		return BalanceChangeEvent{}, err
	}
	postBalance, ok := math.NewIntFromString(attrs[AttributeKeyPostBalance])
	if !ok {
		return BalanceChangeEvent{}, ErrInvalidEvent.Wrapf("invalid post balance %q", attrs[AttributeKeyPostBalance])
	}
	diff, ok := math.NewIntFromString(attrs[AttributeKeyDiff])
	if !ok {
		return BalanceChangeEvent{}, ErrInvalidEvent.Wrapf("invalid diff %q", attrs[AttributeKeyDiff])
	}

	return BalanceChangeEvent{
		Level:       attrs[AttributeKeyLevel],
		Descriptor:  attrs[AttributeKeyDescriptor],
		Token:       token,
		Target:      target,
		PostBalance: postBalance,
		Diff:        diff,
	}, nil
}
