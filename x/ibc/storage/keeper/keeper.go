package keeper

import (
	"context"

	"cosmossdk.io/core/store"
	"cosmossdk.io/log"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cosmos/ibc-go/v8/modules/core/exported"

	"github.com/initia-labs/ibc-storage/x/ibc/storage/types"
)

type Keeper struct {
	storeService store.KVStoreService
	tokenKeeper  types.TokenKeeper
}

// NewKeeper creates a new IBC storage Keeper instance
func NewKeeper(storeService store.KVStoreService, tokenKeeper types.TokenKeeper) *Keeper {
	return &Keeper{
		storeService: storeService,
		tokenKeeper:  tokenKeeper,
	}
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx context.Context) log.Logger {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.Logger().With("module", "x/"+exported.ModuleName+"-"+types.ModuleName)
}

// Storage opens the module store of the current transaction.
func (k Keeper) Storage(ctx context.Context) Storage {
	return NewStorage(k.storeService.OpenKVStore(ctx))
}
