package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/version"

	clienttypes "github.com/cosmos/ibc-go/v8/modules/core/02-client/types"

	"github.com/initia-labs/ibc-storage/x/ibc/storage/types"
)

// KeyOutput is a rendered storage key.
type KeyOutput struct {
	Entity string `json:"entity" yaml:"entity"`
	Key    string `json:"key" yaml:"key"`
}

type keyEncoder struct {
	use    string
	short  string
	args   []string
	encode func(args []string) (types.Key, error)
}

func noArgs(f func() types.Key) func([]string) (types.Key, error) {
	return func([]string) (types.Key, error) { return f(), nil }
}

func oneArg(f func(string) types.Key) func([]string) (types.Key, error) {
	return func(args []string) (types.Key, error) { return f(args[0]), nil }
}

func twoArgs(f func(string, string) types.Key) func([]string) (types.Key, error) {
	return func(args []string) (types.Key, error) { return f(args[0], args[1]), nil }
}

func withSequence(f func(string, string, uint64) types.Key) func([]string) (types.Key, error) {
	return func(args []string) (types.Key, error) {
		sequence, err := strconv.ParseUint(args[2], 10, 64)
		if err != nil {
			return types.Key{}, fmt.Errorf("invalid sequence %q: %w", args[2], err)
		}
		return f(args[0], args[1], sequence), nil
	}
}

func withToken(f func(types.Address) types.Key) func([]string) (types.Key, error) {
	return func(args []string) (types.Key, error) {
		token, err := types.ParseAddress(args[0])
		if err != nil {
			return types.Key{}, err
		}
		return f(token), nil
	}
}

var keyEncoders = []keyEncoder{
	{"client-counter", "Key of the client counter", nil, noArgs(types.ClientCounterKey)},
	{"connection-counter", "Key of the connection counter", nil, noArgs(types.ConnectionCounterKey)},
	{"channel-counter", "Key of the channel counter", nil, noArgs(types.ChannelCounterKey)},
	{"client-state", "Key of a client state", []string{"client-id"}, oneArg(types.ClientStateKey)},
	{"consensus-state", "Key of a consensus state", []string{"client-id", "height"}, func(args []string) (types.Key, error) {
		height, err := clienttypes.ParseHeight(args[1])
		if err != nil {
			return types.Key{}, err
		}
		return types.ConsensusStateKey(args[0], height), nil
	}},
	{"consensus-state-prefix", "Prefix of all consensus states of a client", []string{"client-id"}, oneArg(types.ConsensusStatePrefix)},
	{"client-connections", "Key of the connection list of a client", []string{"client-id"}, oneArg(types.ClientConnectionsKey)},
	{"client-update-timestamp", "Key of the last update timestamp of a client", []string{"client-id"}, oneArg(types.ClientUpdateTimestampKey)},
	{"client-update-height", "Key of the last update height of a client", []string{"client-id"}, oneArg(types.ClientUpdateHeightKey)},
	{"connection", "Key of a connection end", []string{"connection-id"}, oneArg(types.ConnectionKey)},
	{"port", "Key of a port capability", []string{"port-id"}, oneArg(types.PortKey)},
	{"channel", "Key of a channel end", []string{"port-id", "channel-id"}, twoArgs(types.ChannelKey)},
	{"next-sequence-send", "Key of the next send sequence", []string{"port-id", "channel-id"}, twoArgs(types.NextSequenceSendKey)},
	{"next-sequence-recv", "Key of the next receive sequence", []string{"port-id", "channel-id"}, twoArgs(types.NextSequenceRecvKey)},
	{"next-sequence-ack", "Key of the next ack sequence", []string{"port-id", "channel-id"}, twoArgs(types.NextSequenceAckKey)},
	{"commitment", "Key of a packet commitment", []string{"port-id", "channel-id", "sequence"}, withSequence(types.CommitmentKey)},
	{"receipt", "Key of a packet receipt", []string{"port-id", "channel-id", "sequence"}, withSequence(types.ReceiptKey)},
	{"ack", "Key of a packet acknowledgement", []string{"port-id", "channel-id", "sequence"}, withSequence(types.AckKey)},
	{"nft-class", "Key of an NFT class", []string{"class-id"}, oneArg(types.NftClassKey)},
	{"nft-metadata", "Key of an NFT metadata", []string{"class-id", "token-id"}, twoArgs(types.NftMetadataKey)},
	{"ibc-trace", "Key of a denom trace", []string{"owner", "hash"}, twoArgs(types.IbcTraceKey)},
	{"params", "Key of the IBC parameters", nil, noArgs(types.ParamsKey)},
	{"mint-limit", "Key of the mint limit of a token", []string{"token"}, withToken(types.MintLimitKey)},
	{"mint-amount", "Key of the minted amount of a token", []string{"token"}, withToken(types.MintAmountKey)},
	{"throughput-limit", "Key of the throughput limit of a token", []string{"token"}, withToken(types.ThroughputLimitKey)},
	{"deposit", "Key of the per-epoch deposit of a token", []string{"token"}, withToken(types.DepositKey)},
	{"withdraw", "Key of the per-epoch withdrawal of a token", []string{"token"}, withToken(types.WithdrawKey)},
}

// GetCmdKey defines the command group rendering storage keys.
func GetCmdKey() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        "key",
		Short:                      "Render the storage key of an IBC entity",
		SuggestionsMinimumDistance: 2,
		RunE:                       validateCmd,
	}

	for _, encoder := range keyEncoders {
		cmd.AddCommand(newKeyCmd(encoder))
	}

	return cmd
}

func newKeyCmd(encoder keyEncoder) *cobra.Command {
	use := encoder.use
	for _, arg := range encoder.args {
		use += fmt.Sprintf(" [%s]", arg)
	}

	cmd := &cobra.Command{
		Use:     use,
		Short:   encoder.short,
		Example: fmt.Sprintf("%s key %s", version.AppName, use),
		Args:    cobra.ExactArgs(len(encoder.args)),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			// key encoders panic on segments that can't be stored
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("%v", r)
				}
			}()

			key, err := encoder.encode(args)
			if err != nil {
				return err
			}

			return printOutput(cmd, KeyOutput{
				Entity: encoder.use,
				Key:    key.String(),
			})
		},
	}

	AddOutputFlag(cmd)
	return cmd
}

// validateCmd returns unknown command errors for command groups invoked
// without a valid subcommand.
func validateCmd(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}
	return fmt.Errorf("unknown subcommand %q for %q", args[0], cmd.CommandPath())
}
