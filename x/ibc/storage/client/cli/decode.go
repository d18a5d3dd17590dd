package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/version"

	"github.com/initia-labs/ibc-storage/x/ibc/storage/types"
)

// DecodeOutput is the entity and the identifiers held by a storage key.
type DecodeOutput struct {
	Key    string            `json:"key" yaml:"key"`
	Entity string            `json:"entity" yaml:"entity"`
	Fields map[string]string `json:"fields,omitempty" yaml:"fields,omitempty"`
}

type keyDecoder struct {
	entity string
	decode func(types.Key) (map[string]string, error)
}

func clientDecoder(decode func(types.Key) (string, error)) func(types.Key) (map[string]string, error) {
	return func(key types.Key) (map[string]string, error) {
		clientID, err := decode(key)
		if err != nil {
			return nil, err
		}
		return map[string]string{"client_id": clientID}, nil
	}
}

func channelDecoder(decode func(types.Key) (string, string, error)) func(types.Key) (map[string]string, error) {
	return func(key types.Key) (map[string]string, error) {
		portID, channelID, err := decode(key)
		if err != nil {
			return nil, err
		}
		return map[string]string{"port_id": portID, "channel_id": channelID}, nil
	}
}

func packetDecoder(decode func(types.Key) (string, string, uint64, error)) func(types.Key) (map[string]string, error) {
	return func(key types.Key) (map[string]string, error) {
		portID, channelID, sequence, err := decode(key)
		if err != nil {
			return nil, err
		}
		return map[string]string{
			"port_id":    portID,
			"channel_id": channelID,
			"sequence":   strconv.FormatUint(sequence, 10),
		}, nil
	}
}

func tokenDecoder(decode func(types.Key) (string, error)) func(types.Key) (map[string]string, error) {
	return func(key types.Key) (map[string]string, error) {
		token, err := decode(key)
		if err != nil {
			return nil, err
		}
		return map[string]string{"token": token}, nil
	}
}

func hashDecoder(decode func(types.Key) (types.Address, error)) func(types.Key) (map[string]string, error) {
	return func(key types.Key) (map[string]string, error) {
		addr, err := decode(key)
		if err != nil {
			return nil, err
		}
		hash, _ := addr.IbcTokenHash()
		return map[string]string{"address": addr.String(), "hash": hash.String()}, nil
	}
}

// keyDecoders are tried in order; the shapes are disjoint so at most one
// entity matches a key.
var keyDecoders = []keyDecoder{
	{"client-state", clientDecoder(types.ClientStateID)},
	{"consensus-state", func(key types.Key) (map[string]string, error) {
		clientID, height, err := types.ConsensusStateID(key)
		if err != nil {
			return nil, err
		}
		return map[string]string{"client_id": clientID, "height": height.String()}, nil
	}},
	{"consensus-state-prefix", func(key types.Key) (map[string]string, error) {
		clientID, err := types.ClientID(key)
		if err != nil {
			return nil, err
		}
		if !key.Equal(types.ConsensusStatePrefix(clientID)) {
			return nil, types.ErrInvalidKey.Wrapf("the key doesn't have a consensus state prefix: %s", key)
		}
		return map[string]string{"client_id": clientID}, nil
	}},
	{"client-connections", clientDecoder(types.ClientConnectionsID)},
	{"client-update-timestamp", clientDecoder(types.ClientUpdateTimestampID)},
	{"client-update-height", clientDecoder(types.ClientUpdateHeightID)},
	{"connection", func(key types.Key) (map[string]string, error) {
		connectionID, err := types.ConnectionID(key)
		if err != nil {
			return nil, err
		}
		return map[string]string{"connection_id": connectionID}, nil
	}},
	{"port", func(key types.Key) (map[string]string, error) {
		portID, err := types.PortID(key)
		if err != nil {
			return nil, err
		}
		return map[string]string{"port_id": portID}, nil
	}},
	{"channel", channelDecoder(types.ChannelEndID)},
	{"next-sequence-send", channelDecoder(types.NextSequenceSendID)},
	{"next-sequence-recv", channelDecoder(types.NextSequenceRecvID)},
	{"next-sequence-ack", channelDecoder(types.NextSequenceAckID)},
	{"commitment", packetDecoder(types.CommitmentID)},
	{"receipt", packetDecoder(types.ReceiptID)},
	{"ack", packetDecoder(types.AckID)},
	{"counter", func(key types.Key) (map[string]string, error) {
		prefix, ok := types.IsIbcCounterKey(key)
		if !ok {
			return nil, types.ErrInvalidKey
		}
		return map[string]string{"prefix": prefix}, nil
	}},
	{"nft-class", hashDecoder(types.NftClassHash)},
	{"nft-metadata", hashDecoder(types.NftMetadataHash)},
	{"ibc-trace", func(key types.Key) (map[string]string, error) {
		owner, hash, ok := types.IsIbcTraceKey(key)
		if !ok {
			return nil, types.ErrInvalidKey
		}
		return map[string]string{"owner": owner, "hash": hash}, nil
	}},
	{"params", func(key types.Key) (map[string]string, error) {
		if !types.IsParamsKey(key) {
			return nil, types.ErrInvalidKey
		}
		return nil, nil
	}},
	{"mint-limit", tokenDecoder(types.MintLimitToken)},
	{"mint-amount", tokenDecoder(types.MintAmountToken)},
	{"throughput-limit", tokenDecoder(types.ThroughputLimitToken)},
	{"deposit", tokenDecoder(types.DepositToken)},
	{"withdraw", tokenDecoder(types.WithdrawToken)},
}

// DecodeKey returns the entity and the identifiers held by the key.
func DecodeKey(key types.Key) (DecodeOutput, error) {
	for _, decoder := range keyDecoders {
		fields, err := decoder.decode(key)
		if err != nil {
			continue
		}

		return DecodeOutput{
			Key:    key.String(),
			Entity: decoder.entity,
			Fields: fields,
		}, nil
	}

	return DecodeOutput{}, types.ErrInvalidKey.Wrapf("unknown IBC key: %s", key)
}

// GetCmdDecode defines the command to decode a storage key.
func GetCmdDecode() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode [key]",
		Short: "Decode a storage key into the IBC entity and its identifiers",
		Example: fmt.Sprintf("%s decode '#%s/clients/07-tendermint-0/clientState'",
			version.AppName, types.IbcAddress),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := types.ParseKey(args[0])
			if err != nil {
				return err
			}

			out, err := DecodeKey(key)
			if err != nil {
				return err
			}

			return printOutput(cmd, out)
		},
	}

	AddOutputFlag(cmd)
	return cmd
}
