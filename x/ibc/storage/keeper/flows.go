package keeper

import (
	"context"

	"cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/initia-labs/ibc-storage/x/ibc/storage/types"
)

// IterateDeposits walks the per-epoch deposits of every token.
func (k Keeper) IterateDeposits(ctx context.Context, cb func(token string, amount math.Int) (bool, error)) error {
	return k.iterateTokenAmounts(ctx, types.DepositPrefix(), types.DepositToken, cb)
}

// IterateWithdraws walks the per-epoch withdrawals of every token.
func (k Keeper) IterateWithdraws(ctx context.Context, cb func(token string, amount math.Int) (bool, error)) error {
	return k.iterateTokenAmounts(ctx, types.WithdrawPrefix(), types.WithdrawToken, cb)
}

func (k Keeper) iterateTokenAmounts(
	ctx context.Context,
	prefix types.Key,
	decode func(types.Key) (string, error),
	cb func(token string, amount math.Int) (bool, error),
) error {
	return k.Storage(ctx).IteratePrefix(prefix, func(key types.Key, value []byte) (bool, error) {
		token, err := decode(key)
		if err != nil {
			return true, err
		}

		amount, err := sdk.IntValue.Decode(value)
		if err != nil {
			return true, err
		}

		return cb(token, amount)
	})
}
