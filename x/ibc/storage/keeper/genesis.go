package keeper

import (
	"context"

	"cosmossdk.io/collections"
	"cosmossdk.io/math"

	"github.com/initia-labs/ibc-storage/x/ibc/storage/types"
)

// InitGenesis initializes the ibc storage state: parameters, zeroed
// client/connection/channel counters, limit overrides and denom traces.
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) {
	if err := genState.Validate(); err != nil {
		panic(err)
	}

	s := k.Storage(ctx)
	if err := Write(s, types.ParamsKey(), types.ParamsValue, genState.Params); err != nil {
		panic(err)
	}

	for _, key := range []types.Key{types.ClientCounterKey(), types.ConnectionCounterKey(), types.ChannelCounterKey()} {
		if err := Write(s, key, collections.Uint64Value, 0); err != nil {
			panic(err)
		}
	}

	for _, limit := range genState.MintLimits {
		token, err := types.ParseAddress(limit.Token)
		if err != nil {
			panic(err)
		}
		if err := k.SetMintLimit(ctx, token, limit.Limit); err != nil {
			panic(err)
		}
	}

	for _, limit := range genState.ThroughputLimits {
		token, err := types.ParseAddress(limit.Token)
		if err != nil {
			panic(err)
		}
		if err := k.SetThroughputLimit(ctx, token, limit.Limit); err != nil {
			panic(err)
		}
	}

	for _, trace := range genState.Traces {
		if err := Write(s, trace.Key(), collections.StringValue, trace.Trace); err != nil {
			panic(err)
		}
	}

	k.Logger(ctx).Info("initialized ibc storage",
		"mint_limits", len(genState.MintLimits),
		"throughput_limits", len(genState.ThroughputLimits),
		"traces", len(genState.Traces),
	)
}

// ExportGenesis exports the ibc storage state.
func (k Keeper) ExportGenesis(ctx context.Context) *types.GenesisState {
	params, err := k.GetParams(ctx)
	if err != nil {
		panic(err)
	}

	mintLimits, err := k.exportLimits(ctx, types.MintLimitPrefix(), types.MintLimitToken)
	if err != nil {
		panic(err)
	}
	throughputLimits, err := k.exportLimits(ctx, types.ThroughputLimitPrefix(), types.ThroughputLimitToken)
	if err != nil {
		panic(err)
	}
	traces, err := k.GetAllIbcTraces(ctx)
	if err != nil {
		panic(err)
	}

	return types.NewGenesisState(params, mintLimits, throughputLimits, traces)
}

func (k Keeper) exportLimits(ctx context.Context, prefix types.Key, decode func(types.Key) (string, error)) ([]types.TokenLimit, error) {
	limits := []types.TokenLimit{}
	err := k.iterateTokenAmounts(ctx, prefix, decode, func(token string, amount math.Int) (bool, error) {
		limits = append(limits, types.TokenLimit{Token: token, Limit: amount})
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	return limits, nil
}
