package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"cosmossdk.io/math"

	"github.com/initia-labs/ibc-storage/x/ibc/storage/types"
)

func TestGenesisState_Validate(t *testing.T) {
	token := types.IbcToken("transfer/channel-0/uatom").String()
	other := types.IbcToken("transfer/channel-1/uosmo").String()
	trace := types.NewIbcTrace("owner", "transfer/channel-0/uatom")

	testCases := []struct {
		name     string
		genState *types.GenesisState
		err      error
	}{
		{
			name:     "default",
			genState: types.DefaultGenesisState(),
		},
		{
			name: "valid",
			genState: types.NewGenesisState(
				types.NewParams(math.NewInt(100), math.NewInt(10)),
				[]types.TokenLimit{{Token: token, Limit: math.NewInt(1)}, {Token: other, Limit: math.NewInt(2)}},
				[]types.TokenLimit{{Token: token, Limit: math.NewInt(3)}},
				[]types.IbcTrace{trace, types.NewIbcTrace("other", "transfer/channel-0/uatom")},
			),
		},
		{
			name:     "invalid params",
			genState: types.NewGenesisState(types.NewParams(math.NewInt(-1), math.ZeroInt()), nil, nil, nil),
			err:      types.ErrInvalidParams,
		},
		{
			name: "invalid token",
			genState: types.NewGenesisState(types.DefaultParams(),
				[]types.TokenLimit{{Token: "uatom", Limit: math.NewInt(1)}}, nil, nil),
			err: types.ErrInvalidGenesis,
		},
		{
			name: "duplicated token",
			genState: types.NewGenesisState(types.DefaultParams(), nil,
				[]types.TokenLimit{{Token: token, Limit: math.NewInt(1)}, {Token: token, Limit: math.NewInt(2)}}, nil),
			err: types.ErrInvalidGenesis,
		},
		{
			name: "negative limit",
			genState: types.NewGenesisState(types.DefaultParams(),
				[]types.TokenLimit{{Token: token, Limit: math.NewInt(-1)}}, nil, nil),
			err: types.ErrInvalidGenesis,
		},
		{
			name: "hash mismatch",
			genState: types.NewGenesisState(types.DefaultParams(), nil, nil,
				[]types.IbcTrace{{Owner: "owner", Hash: types.CalcHash("uosmo"), Trace: "uatom"}}),
			err: types.ErrInvalidGenesis,
		},
		{
			name: "empty trace",
			genState: types.NewGenesisState(types.DefaultParams(), nil, nil,
				[]types.IbcTrace{{Owner: "owner", Hash: types.CalcHash(""), Trace: ""}}),
			err: types.ErrInvalidGenesis,
		},
		{
			name: "invalid owner",
			genState: types.NewGenesisState(types.DefaultParams(), nil, nil,
				[]types.IbcTrace{types.NewIbcTrace("a/b", "uatom")}),
			err: types.ErrInvalidGenesis,
		},
		{
			name: "duplicated trace",
			genState: types.NewGenesisState(types.DefaultParams(), nil, nil,
				[]types.IbcTrace{trace, trace}),
			err: types.ErrInvalidGenesis,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.genState.Validate()
			if tc.err == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tc.err)
			}
		})
	}
}

func TestIbcTrace_Key(t *testing.T) {
	trace := types.NewIbcTrace("owner", "transfer/channel-0/uatom")
	require.Equal(t, "27394fb092d2eccd56123c74f36e4c1f926001ce", trace.Hash)

	owner, hash, ok := types.IsIbcTraceKey(trace.Key())
	require.True(t, ok)
	require.Equal(t, "owner", owner)
	require.Equal(t, trace.Hash, hash)
}
