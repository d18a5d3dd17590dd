package types

import (
	"fmt"
	"strings"

	clienttypes "github.com/cosmos/ibc-go/v8/modules/core/02-client/types"
	host "github.com/cosmos/ibc-go/v8/modules/core/24-host"
)

const (
	// ModuleName defines the IBC storage name
	ModuleName = "ibcstorage"

	// StoreKey is the store key string for IBC storage
	StoreKey = ModuleName
)

// Fixed key labels. They are part of the consensus state layout.
const (
	ClientsCounterPrefix     = "clients"
	ConnectionsCounterPrefix = host.KeyConnectionPrefix
	ChannelsCounterPrefix    = host.KeyChannelEndPrefix
	CounterSeg               = "counter"

	UpdateTimestampSeg = "update_timestamp"
	UpdateHeightSeg    = "update_height"

	TraceLabel           = "ibc_trace"
	NftClassLabel        = "nft_class"
	NftMetadataLabel     = "nft_meta"
	ParamsLabel          = "params"
	MintLimitLabel       = "mint_limit"
	MintAmountLabel      = "mint"
	ThroughputLimitLabel = "throughput_limit"
	DepositLabel         = "deposit"
	WithdrawLabel        = "withdraw"
)

// zeroHeightSuffix is stripped from the zero-height consensus state path to
// obtain the prefix of all consensus states of a client.
var zeroHeightSuffix = KeySeparator + clienttypes.ZeroHeight().String()

// IbcKey returns the key of the path under the IBC namespace.
func IbcKey(path string) (Key, error) {
	p, err := ParseKey(path)
	if err != nil {
		return Key{}, err
	}
	return KeyFromAddress(IbcAddress).Join(p), nil
}

// mustIbcKey builds the key of a path formatted from identifiers. Each
// identifier must be a single segment so that distinct identifiers never
// produce the same key.
func mustIbcKey(path, what string, ids ...string) Key {
	for _, id := range ids {
		if err := ValidateKeySeg(id); err != nil {
			panic(fmt.Sprintf("invalid identifier for the %s: %s", what, err))
		}
	}

	key, err := IbcKey(path)
	if err != nil {
		panic(fmt.Sprintf("creating a key for the %s shouldn't fail: %s", what, err))
	}
	return key
}

func mustPush(key Key, seg string) Key {
	key, err := key.PushString(seg)
	if err != nil {
		panic(fmt.Sprintf("cannot obtain a storage key: %s", err))
	}
	return key
}

// ClientCounterKey returns the key of the client counter.
func ClientCounterKey() Key {
	return mustIbcKey(ClientsCounterPrefix+KeySeparator+CounterSeg, "client counter")
}

// ConnectionCounterKey returns the key of the connection counter.
func ConnectionCounterKey() Key {
	return mustIbcKey(ConnectionsCounterPrefix+KeySeparator+CounterSeg, "connection counter")
}

// ChannelCounterKey returns the key of the channel counter.
func ChannelCounterKey() Key {
	return mustIbcKey(ChannelsCounterPrefix+KeySeparator+CounterSeg, "channel counter")
}

// ClientStateKey returns the key of the client state.
func ClientStateKey(clientID string) Key {
	return mustIbcKey(host.FullClientStatePath(clientID), "client state", clientID)
}

// ConsensusStateKey returns the key of the consensus state at the height.
func ConsensusStateKey(clientID string, height clienttypes.Height) Key {
	return mustIbcKey(host.FullConsensusStatePath(clientID, height), "consensus state", clientID)
}

// ConsensusStatePrefix returns the key prefix of all consensus states of the client.
func ConsensusStatePrefix(clientID string) Key {
	path := host.FullConsensusStatePath(clientID, clienttypes.ZeroHeight())
	prefix, ok := strings.CutSuffix(path, zeroHeightSuffix)
	if !ok {
		panic("the zero height suffix should exist")
	}
	return mustIbcKey(prefix, "consensus state prefix", clientID)
}

// ConnectionKey returns the key of the connection end.
func ConnectionKey(connectionID string) Key {
	return mustIbcKey(host.ConnectionPath(connectionID), "connection", connectionID)
}

// ChannelKey returns the key of the channel end.
func ChannelKey(portID, channelID string) Key {
	return mustIbcKey(host.ChannelPath(portID, channelID), "channel", portID, channelID)
}

// ClientConnectionsKey returns the key of the connection list of the client.
func ClientConnectionsKey(clientID string) Key {
	return mustIbcKey(host.ClientConnectionsPath(clientID), "client connections", clientID)
}

// PortKey returns the key of the port.
func PortKey(portID string) Key {
	return mustIbcKey(host.PortPath(portID), "port", portID)
}

// NextSequenceSendKey returns the key of nextSequenceSend.
func NextSequenceSendKey(portID, channelID string) Key {
	return mustIbcKey(host.NextSequenceSendPath(portID, channelID), "nextSequenceSend", portID, channelID)
}

// NextSequenceRecvKey returns the key of nextSequenceRecv.
func NextSequenceRecvKey(portID, channelID string) Key {
	return mustIbcKey(host.NextSequenceRecvPath(portID, channelID), "nextSequenceRecv", portID, channelID)
}

// NextSequenceAckKey returns the key of nextSequenceAck.
func NextSequenceAckKey(portID, channelID string) Key {
	return mustIbcKey(host.NextSequenceAckPath(portID, channelID), "nextSequenceAck", portID, channelID)
}

// CommitmentKey returns the key of the packet commitment.
func CommitmentKey(portID, channelID string, sequence uint64) Key {
	return mustIbcKey(host.PacketCommitmentPath(portID, channelID, sequence), "commitment", portID, channelID)
}

// ReceiptKey returns the key of the packet receipt.
func ReceiptKey(portID, channelID string, sequence uint64) Key {
	return mustIbcKey(host.PacketReceiptPath(portID, channelID, sequence), "receipt", portID, channelID)
}

// AckKey returns the key of the packet acknowledgement.
func AckKey(portID, channelID string, sequence uint64) Key {
	return mustIbcKey(host.PacketAcknowledgementPath(portID, channelID, sequence), "ack", portID, channelID)
}

// ClientUpdateTimestampKey returns the key of the last client update timestamp.
func ClientUpdateTimestampKey(clientID string) Key {
	path := fmt.Sprintf("%s/%s/%s", ClientsCounterPrefix, clientID, UpdateTimestampSeg)
	return mustIbcKey(path, "client update timestamp", clientID)
}

// ClientUpdateHeightKey returns the key of the last client update height.
func ClientUpdateHeightKey(clientID string) Key {
	path := fmt.Sprintf("%s/%s/%s", ClientsCounterPrefix, clientID, UpdateHeightSeg)
	return mustIbcKey(path, "client update height", clientID)
}

// NftClassKey returns the key of the NFT class, addressed by the hashed class ID.
func NftClassKey(classID string) Key {
	path := fmt.Sprintf("%s/%s", NftClassLabel, IbcToken(classID))
	return mustIbcKey(path, "NFT class")
}

// NftMetadataKey returns the key of the NFT metadata, addressed by the hashed
// class and token IDs.
func NftMetadataKey(classID, tokenID string) Key {
	path := fmt.Sprintf("%s/%s", NftMetadataLabel, IbcTokenForNft(classID, tokenID))
	return mustIbcKey(path, "NFT metadata")
}

// IbcTraceKeyPrefix returns the prefix of the denom traces, optionally scoped
// to an owner. The owner is a string because it may not be a local address.
func IbcTraceKeyPrefix(owner *string) Key {
	prefix := mustPush(KeyFromAddress(IbcAddress), TraceLabel)
	if owner == nil {
		return prefix
	}
	return mustPush(prefix, *owner)
}

// IbcTraceKey returns the key of the denom trace stored for the owner and hash.
func IbcTraceKey(owner, tokenHash string) Key {
	return mustPush(IbcTraceKeyPrefix(&owner), tokenHash)
}

// ParamsKey returns the key of the IBC parameters.
func ParamsKey() Key {
	return mustPush(KeyFromAddress(IbcAddress), ParamsLabel)
}

// tokenKey stores the token as a string segment so that foreign token
// addresses need no validation.
func tokenKey(label string, token Address) Key {
	return mustPush(labelPrefix(label), token.String())
}

func labelPrefix(label string) Key {
	return mustPush(KeyFromAddress(IbcAddress), label)
}

// MintLimitPrefix returns the prefix of the per-token mint limits.
func MintLimitPrefix() Key {
	return labelPrefix(MintLimitLabel)
}

// MintLimitKey returns the key of the mint limit of the token.
func MintLimitKey(token Address) Key {
	return tokenKey(MintLimitLabel, token)
}

// MintAmountKey returns the key of the minted amount of the token.
func MintAmountKey(token Address) Key {
	return tokenKey(MintAmountLabel, token)
}

// ThroughputLimitPrefix returns the prefix of the per-token throughput limits.
func ThroughputLimitPrefix() Key {
	return labelPrefix(ThroughputLimitLabel)
}

// ThroughputLimitKey returns the key of the per-epoch throughput limit of the token.
func ThroughputLimitKey(token Address) Key {
	return tokenKey(ThroughputLimitLabel, token)
}

// DepositPrefix returns the prefix of the per-epoch deposits.
func DepositPrefix() Key {
	return labelPrefix(DepositLabel)
}

// DepositKey returns the key of the per-epoch deposit of the token.
func DepositKey(token Address) Key {
	return tokenKey(DepositLabel, token)
}

// WithdrawPrefix returns the prefix of the per-epoch withdrawals.
func WithdrawPrefix() Key {
	return labelPrefix(WithdrawLabel)
}

// WithdrawKey returns the key of the per-epoch withdrawal of the token.
func WithdrawKey(token Address) Key {
	return tokenKey(WithdrawLabel, token)
}
