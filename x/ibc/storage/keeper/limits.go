package keeper

import (
	"context"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/initia-labs/ibc-storage/x/ibc/storage/types"
)

// GetParams returns the IBC parameters.
func (k Keeper) GetParams(ctx context.Context) (types.Params, error) {
	params, found, err := Read(k.Storage(ctx), types.ParamsKey(), types.ParamsValue)
	if err != nil {
		return types.Params{}, err
	}
	if !found {
		return types.Params{}, errorsmod.Wrap(collections.ErrNotFound, "ibc parameters")
	}

	return params, nil
}

// SetParams stores the IBC parameters.
func (k Keeper) SetParams(ctx context.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}
	return Write(k.Storage(ctx), types.ParamsKey(), types.ParamsValue, params)
}

// SetMintLimit overrides the default mint limit for the token.
func (k Keeper) SetMintLimit(ctx context.Context, token types.Address, limit math.Int) error {
	return k.setLimit(ctx, types.MintLimitKey(token), limit)
}

// SetThroughputLimit overrides the default per-epoch throughput limit for the token.
func (k Keeper) SetThroughputLimit(ctx context.Context, token types.Address, limit math.Int) error {
	return k.setLimit(ctx, types.ThroughputLimitKey(token), limit)
}

// DeleteMintLimit removes the mint limit override of the token.
func (k Keeper) DeleteMintLimit(ctx context.Context, token types.Address) error {
	return k.Storage(ctx).Delete(types.MintLimitKey(token))
}

// DeleteThroughputLimit removes the throughput limit override of the token.
func (k Keeper) DeleteThroughputLimit(ctx context.Context, token types.Address) error {
	return k.Storage(ctx).Delete(types.ThroughputLimitKey(token))
}

func (k Keeper) setLimit(ctx context.Context, key types.Key, limit math.Int) error {
	if limit.IsNil() || limit.IsNegative() {
		return types.ErrInvalidParams.Wrapf("invalid limit %s for %s", limit, key)
	}
	return Write(k.Storage(ctx), key, sdk.IntValue, limit)
}

// GetLimits returns the mint limit and the per-epoch throughput limit of the
// token. Each falls back to the default of the IBC parameters independently.
func (k Keeper) GetLimits(ctx context.Context, token types.Address) (mintLimit, throughputLimit math.Int, err error) {
	s := k.Storage(ctx)

	mintLimit, hasMintLimit, err := Read(s, types.MintLimitKey(token), sdk.IntValue)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	throughputLimit, hasThroughputLimit, err := Read(s, types.ThroughputLimitKey(token), sdk.IntValue)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	if hasMintLimit && hasThroughputLimit {
		return mintLimit, throughputLimit, nil
	}

	params, found, err := Read(s, types.ParamsKey(), types.ParamsValue)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	if !found {
		// params are written at genesis
		panic("ibc parameters should be stored")
	}

	if !hasMintLimit {
		mintLimit = params.DefaultMintLimit
	}
	if !hasThroughputLimit {
		throughputLimit = params.DefaultPerEpochThroughputLimit
	}

	return mintLimit, throughputLimit, nil
}
