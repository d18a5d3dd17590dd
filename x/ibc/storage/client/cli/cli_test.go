package cli_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/initia-labs/ibc-storage/x/ibc/storage/client/cli"
	"github.com/initia-labs/ibc-storage/x/ibc/storage/types"
)

func execute(t *testing.T, args ...string) ([]byte, error) {
	t.Helper()

	cmd := cli.GetRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.Bytes(), err
}

func Test_HashCmd(t *testing.T) {
	out, err := execute(t, "hash", "transfer/channel-0/uatom", "--output", "json")
	require.NoError(t, err)

	var res cli.TokenOutput
	require.NoError(t, json.Unmarshal(out, &res))
	require.Equal(t, "transfer/channel-0/uatom", res.Trace)
	require.Equal(t, "27394fb092d2eccd56123c74f36e4c1f926001ce", res.Hash)
	require.Empty(t, res.Address)
}

func Test_TokenAddressCmd(t *testing.T) {
	out, err := execute(t, "token-address", "transfer/channel-0/uatom")
	require.NoError(t, err)

	var res cli.TokenOutput
	require.NoError(t, yaml.Unmarshal(out, &res))
	require.Equal(t, "tnam1qvnnjnasjtfwen2kzg78fumwfs0eycqpece7dhvu", res.Address)

	out, err = execute(t, "nft-token-address", "nft-transfer/channel-1/class", "token-1", "-o", "json")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(out, &res))
	require.Equal(t, types.IbcTokenForNft("nft-transfer/channel-1/class", "token-1").String(), res.Address)
	require.Equal(t, "e3416ad7afeee5598a3a6499da0212227485ec18", res.Hash)
}

func Test_KeyCmd(t *testing.T) {
	testCases := []struct {
		args []string
		exp  types.Key
	}{
		{[]string{"client-counter"}, types.ClientCounterKey()},
		{[]string{"client-state", "07-tendermint-0"}, types.ClientStateKey("07-tendermint-0")},
		{[]string{"consensus-state", "07-tendermint-0", "1-10"}, types.ConsensusStateKey("07-tendermint-0", clientHeight(1, 10))},
		{[]string{"channel", "transfer", "channel-0"}, types.ChannelKey("transfer", "channel-0")},
		{[]string{"commitment", "transfer", "channel-0", "7"}, types.CommitmentKey("transfer", "channel-0", 7)},
		{[]string{"nft-class", "nft-transfer/channel-1/class"}, types.NftClassKey("nft-transfer/channel-1/class")},
		{[]string{"mint-limit", "tnam1qvnnjnasjtfwen2kzg78fumwfs0eycqpece7dhvu"}, types.MintLimitKey(types.IbcToken("transfer/channel-0/uatom"))},
		{[]string{"params"}, types.ParamsKey()},
	}

	for _, tc := range testCases {
		out, err := execute(t, append(append([]string{"key"}, tc.args...), "-o", "json")...)
		require.NoError(t, err, tc.args)

		var res cli.KeyOutput
		require.NoError(t, json.Unmarshal(out, &res))
		require.Equal(t, tc.args[0], res.Entity)
		require.Equal(t, tc.exp.String(), res.Key)
	}
}

func Test_KeyCmd_Invalid(t *testing.T) {
	_, err := execute(t, "key", "commitment", "transfer", "channel-0", "-1")
	require.Error(t, err)

	_, err = execute(t, "key", "mint-limit", "uatom")
	require.Error(t, err)

	_, err = execute(t, "key", "client-state", "")
	require.Error(t, err)

	_, err = execute(t, "key", "client-state")
	require.Error(t, err)

	_, err = execute(t, "key", "channel", "p/channels/c", "d")
	require.Error(t, err)
}

func Test_DecodeCmd(t *testing.T) {
	key := types.CommitmentKey("transfer", "channel-0", 7)
	out, err := execute(t, "decode", key.String(), "-o", "json")
	require.NoError(t, err)

	var res cli.DecodeOutput
	require.NoError(t, json.Unmarshal(out, &res))
	require.Equal(t, cli.DecodeOutput{
		Key:    key.String(),
		Entity: "commitment",
		Fields: map[string]string{"port_id": "transfer", "channel_id": "channel-0", "sequence": "7"},
	}, res)

	_, err = execute(t, "decode", "clients/07-tendermint-0/clientState")
	require.ErrorIs(t, err, types.ErrInvalidKey)
}

func Test_DecodeKey(t *testing.T) {
	testCases := []struct {
		key    types.Key
		entity string
		fields map[string]string
	}{
		{types.ClientStateKey("07-tendermint-0"), "client-state", map[string]string{"client_id": "07-tendermint-0"}},
		{types.ConsensusStateKey("07-tendermint-0", clientHeight(0, 0)), "consensus-state", map[string]string{"client_id": "07-tendermint-0", "height": "0-0"}},
		{types.ConsensusStatePrefix("07-tendermint-0"), "consensus-state-prefix", map[string]string{"client_id": "07-tendermint-0"}},
		{types.ConnectionKey("connection-0"), "connection", map[string]string{"connection_id": "connection-0"}},
		{types.NextSequenceAckKey("transfer", "channel-0"), "next-sequence-ack", map[string]string{"port_id": "transfer", "channel_id": "channel-0"}},
		{types.ChannelCounterKey(), "counter", map[string]string{"prefix": "channelEnds"}},
		{types.IbcTraceKey("owner", "abc"), "ibc-trace", map[string]string{"owner": "owner", "hash": "abc"}},
		{types.ParamsKey(), "params", nil},
		{types.WithdrawKey(types.IbcToken("uatom")), "withdraw", map[string]string{"token": types.IbcToken("uatom").String()}},
	}

	for _, tc := range testCases {
		res, err := cli.DecodeKey(tc.key)
		require.NoError(t, err, tc.key.String())
		require.Equal(t, tc.entity, res.Entity, tc.key.String())
		require.Equal(t, tc.fields, res.Fields, tc.key.String())
	}

	res, err := cli.DecodeKey(types.NftMetadataKey("class", "token-1"))
	require.NoError(t, err)
	require.Equal(t, "nft-metadata", res.Entity)
	require.Equal(t, types.CalcHash(types.NftTrace("class", "token-1")), res.Fields["hash"])
}
