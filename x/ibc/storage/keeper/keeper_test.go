package keeper_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	tmproto "github.com/cometbft/cometbft/proto/tendermint/types"

	"github.com/stretchr/testify/require"

	"cosmossdk.io/collections"
	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/initia-labs/ibc-storage/x/ibc/storage/keeper"
	"github.com/initia-labs/ibc-storage/x/ibc/storage/types"
)

// tokenKeeper is an in-memory multitoken ledger.
type tokenKeeper struct {
	balances map[string]math.Int
	minters  []types.Address
}

func newTokenKeeper() *tokenKeeper {
	return &tokenKeeper{balances: make(map[string]math.Int)}
}

func balanceKey(token, owner types.Address) string {
	return token.String() + "/" + owner.String()
}

func (tk *tokenKeeper) MintTokens(_ context.Context, minter, token, target types.Address, amount math.Int) error {
	tk.minters = append(tk.minters, minter)

	balance, ok := tk.balances[balanceKey(token, target)]
	if !ok {
		balance = math.ZeroInt()
	}
	tk.balances[balanceKey(token, target)] = balance.Add(amount)
	return nil
}

func (tk *tokenKeeper) GetBalance(_ context.Context, token, owner types.Address) (math.Int, error) {
	balance, ok := tk.balances[balanceKey(token, owner)]
	if !ok {
		return math.ZeroInt(), nil
	}
	return balance, nil
}

func _createTestInput(
	t testing.TB,
	db dbm.DB,
	tokenKeeper types.TokenKeeper,
) (sdk.Context, *keeper.Keeper) {
	keys := storetypes.NewKVStoreKeys(types.StoreKey)
	ms := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	for _, v := range keys {
		ms.MountStoreWithDB(v, storetypes.StoreTypeIAVL, db)
	}

	require.NoError(t, ms.LoadLatestVersion())

	ctx := sdk.NewContext(ms, tmproto.Header{
		Height: 1234567,
		Time:   time.Date(2020, time.April, 22, 12, 0, 0, 0, time.UTC),
	}, false, log.NewNopLogger())

	storageKeeper := keeper.NewKeeper(
		runtime.NewKVStoreService(keys[types.StoreKey]),
		tokenKeeper,
	)

	return ctx, storageKeeper
}

func testAddress(t testing.TB, b byte) types.Address {
	addr, err := types.NewImplicitAddress(bytes.Repeat([]byte{b}, types.AddressLen))
	require.NoError(t, err)
	return addr
}

func Test_Storage(t *testing.T) {
	ctx, k := _createTestInput(t, dbm.NewMemDB(), newTokenKeeper())
	s := k.Storage(ctx)

	token := types.IbcToken("transfer/channel-0/uatom")
	key := types.MintAmountKey(token)

	_, found, err := keeper.Read(s, key, sdk.IntValue)
	require.NoError(t, err)
	require.False(t, found)

	require.NoError(t, keeper.Write(s, key, sdk.IntValue, math.NewInt(42)))
	ok, err := s.HasKey(key)
	require.NoError(t, err)
	require.True(t, ok)

	amount, found, err := keeper.Read(s, key, sdk.IntValue)
	require.NoError(t, err)
	require.True(t, found)
	require.True(t, math.NewInt(42).Equal(amount))

	require.NoError(t, s.Delete(key))
	ok, err = s.HasKey(key)
	require.NoError(t, err)
	require.False(t, ok)
}

func Test_Storage_DecodeError(t *testing.T) {
	ctx, k := _createTestInput(t, dbm.NewMemDB(), newTokenKeeper())
	s := k.Storage(ctx)

	require.NoError(t, keeper.Write(s, types.ParamsKey(), sdk.IntValue, math.NewInt(1)))
	_, _, err := keeper.Read(s, types.ParamsKey(), types.ParamsValue)
	require.Error(t, err)
	require.Contains(t, err.Error(), types.ParamsKey().String())
}

func Test_Storage_IteratePrefix(t *testing.T) {
	ctx, k := _createTestInput(t, dbm.NewMemDB(), newTokenKeeper())
	s := k.Storage(ctx)

	prefix := types.ConsensusStatePrefix("07-tendermint-0")
	heights := []string{"1-10", "1-2", "0-5"}
	for _, h := range heights {
		key, err := prefix.PushString(h)
		require.NoError(t, err)
		require.NoError(t, keeper.Write(s, key, collections.StringValue, h))
	}

	// the prefix itself and a sibling client are not descendants
	for _, key := range []types.Key{
		prefix,
		types.ConsensusStatePrefix("07-tendermint-01"),
		types.ClientStateKey("07-tendermint-0"),
	} {
		require.NoError(t, keeper.Write(s, key, collections.StringValue, "other"))
	}

	var visited []string
	err := s.IteratePrefix(prefix, func(key types.Key, value []byte) (bool, error) {
		require.True(t, prefix.IsPrefixOf(key))
		require.Equal(t, key.Segments[key.Len()-1].Raw(), string(value))
		visited = append(visited, string(value))
		return false, nil
	})
	require.NoError(t, err)
	require.Equal(t, []string{"0-5", "1-10", "1-2"}, visited)

	visited = nil
	err = s.IteratePrefix(prefix, func(key types.Key, _ []byte) (bool, error) {
		visited = append(visited, key.String())
		return true, nil
	})
	require.NoError(t, err)
	require.Len(t, visited, 1)
}
