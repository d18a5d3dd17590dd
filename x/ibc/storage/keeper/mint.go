package keeper

import (
	"context"

	"cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/initia-labs/ibc-storage/x/ibc/storage/types"
)

// MintTokens mints the amount of the token to the target on behalf of the IBC
// module and emits a balance change event carrying the post balance.
func (k Keeper) MintTokens(ctx context.Context, target, token types.Address, amount math.Int) error {
	if amount.IsNil() || amount.IsNegative() {
		return types.ErrInvalidParams.Wrapf("invalid mint amount %s", amount)
	}

	if err := k.tokenKeeper.MintTokens(ctx, types.IbcAddress, token, target, amount); err != nil {
		return err
	}

	postBalance, err := k.tokenKeeper.GetBalance(ctx, token, target)
	if err != nil {
		return err
	}

	event := types.BalanceChangeEvent{
		Level:       types.EventLevelTx,
		Descriptor:  types.DescriptorMintIbcTokens,
		Token:       token,
		Target:      target,
		PostBalance: postBalance,
		Diff:        amount,
	}
	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(event.ToEvent())

	k.Logger(ctx).Debug("minted ibc tokens", "token", token.String(), "target", target.String(), "amount", amount.String())
	return nil
}
