package keeper

import (
	"context"

	"cosmossdk.io/collections"

	"github.com/initia-labs/ibc-storage/x/ibc/storage/types"
)

// StoreIbcTrace stores the denom trace under the owner and the hash of the trace.
func (k Keeper) StoreIbcTrace(ctx context.Context, owner, trace string) (types.IbcTrace, error) {
	ibcTrace := types.NewIbcTrace(owner, trace)
	if err := ibcTrace.Validate(); err != nil {
		return types.IbcTrace{}, err
	}

	if err := Write(k.Storage(ctx), ibcTrace.Key(), collections.StringValue, trace); err != nil {
		return types.IbcTrace{}, err
	}
	return ibcTrace, nil
}

// GetIbcTrace returns the denom trace stored under the owner and the hash.
func (k Keeper) GetIbcTrace(ctx context.Context, owner, tokenHash string) (string, bool, error) {
	if err := validateTraceSegs(owner, tokenHash); err != nil {
		return "", false, err
	}
	return Read(k.Storage(ctx), types.IbcTraceKey(owner, tokenHash), collections.StringValue)
}

// IterateIbcTraces walks the denom traces of the owner, or of every owner if
// owner is nil.
func (k Keeper) IterateIbcTraces(ctx context.Context, owner *string, cb func(trace types.IbcTrace) (bool, error)) error {
	if owner != nil {
		if err := validateTraceSegs(*owner); err != nil {
			return err
		}
	}

	return k.Storage(ctx).IteratePrefix(types.IbcTraceKeyPrefix(owner), func(key types.Key, value []byte) (bool, error) {
		traceOwner, hash, ok := types.IsIbcTraceKey(key)
		if !ok {
			return false, nil
		}

		trace, err := collections.StringValue.Decode(value)
		if err != nil {
			return true, err
		}

		return cb(types.IbcTrace{Owner: traceOwner, Hash: hash, Trace: trace})
	})
}

// GetAllIbcTraces returns every stored denom trace.
func (k Keeper) GetAllIbcTraces(ctx context.Context) ([]types.IbcTrace, error) {
	traces := []types.IbcTrace{}
	err := k.IterateIbcTraces(ctx, nil, func(trace types.IbcTrace) (bool, error) {
		traces = append(traces, trace)
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	return traces, nil
}

// validateTraceSegs rejects owners and hashes that can't form a trace key.
func validateTraceSegs(segs ...string) error {
	for _, seg := range segs {
		if err := types.ValidateKeySeg(seg); err != nil {
			return err
		}
	}
	return nil
}
