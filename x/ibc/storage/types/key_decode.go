package types

import (
	"strconv"

	clienttypes "github.com/cosmos/ibc-go/v8/modules/core/02-client/types"
	host "github.com/cosmos/ibc-go/v8/modules/core/24-host"
)

var (
	clientStateShape = newShape("a client state",
		lit(ClientsCounterPrefix), variable(), lit(host.KeyClientState))
	consensusStateShape = newShape("a consensus height",
		lit(ClientsCounterPrefix), variable(), lit(host.KeyConsensusStatePrefix), variable())
	consensusStatePrefixShape = newShape("a consensus state prefix",
		lit(ClientsCounterPrefix), variable(), lit(host.KeyConsensusStatePrefix))
	clientConnectionsShape = newShape("a client connection list",
		lit(ClientsCounterPrefix), variable(), lit(host.KeyConnectionPrefix))
	clientUpdateTimestampShape = newShape("a client update timestamp",
		lit(ClientsCounterPrefix), variable(), lit(UpdateTimestampSeg))
	clientUpdateHeightShape = newShape("a client update height",
		lit(ClientsCounterPrefix), variable(), lit(UpdateHeightSeg))

	// clientScopedShapes are all keys of the form clients/<client_id>/...
	clientScopedShapes = []keyShape{
		clientStateShape,
		consensusStateShape,
		consensusStatePrefixShape,
		clientConnectionsShape,
		clientUpdateTimestampShape,
		clientUpdateHeightShape,
	}

	connectionShape = newShape("a connection ID",
		lit(host.KeyConnectionPrefix), variable())
	portShape = newShape("a port ID",
		lit(host.KeyPortPrefix), variable())

	portChannelShape      = channelShape("port ID and channel ID", host.KeyChannelEndPrefix, host.KeyNextSeqSendPrefix, host.KeyNextSeqRecvPrefix, host.KeyNextSeqAckPrefix)
	channelEndShape       = channelShape("a channel end", host.KeyChannelEndPrefix)
	nextSequenceSendShape = channelShape("a nextSequenceSend", host.KeyNextSeqSendPrefix)
	nextSequenceRecvShape = channelShape("a nextSequenceRecv", host.KeyNextSeqRecvPrefix)
	nextSequenceAckShape  = channelShape("a nextSequenceAck", host.KeyNextSeqAckPrefix)
	portChannelSeqShape   = packetShape("port ID, channel ID and sequence number", host.KeyPacketCommitmentPrefix, host.KeyPacketReceiptPrefix, host.KeyPacketAckPrefix)
	commitmentShape       = packetShape("a packet commitment", host.KeyPacketCommitmentPrefix)
	receiptShape          = packetShape("a packet receipt", host.KeyPacketReceiptPrefix)
	ackShape              = packetShape("a packet acknowledgement", host.KeyPacketAckPrefix)

	counterShape = newShape("a counter",
		oneOf(ClientsCounterPrefix, ConnectionsCounterPrefix, ChannelsCounterPrefix), lit(CounterSeg))
	traceShape = newShape("a denom trace",
		lit(TraceLabel), variable(), variable())
	nftClassShape = newShape("an NFT class",
		lit(NftClassLabel), variable())
	nftMetadataShape = newShape("an NFT metadata",
		lit(NftMetadataLabel), variable())
	paramsShape = newShape("the parameters",
		lit(ParamsLabel))
)

// channelShape is <prefix>/ports/<port_id>/channels/<channel_id>. The prefix
// is captured as the first segment.
func channelShape(desc string, prefixes ...string) keyShape {
	return newShape(desc,
		oneOf(prefixes...), lit(host.KeyPortPrefix), variable(), lit(host.KeyChannelPrefix), variable())
}

// packetShape is <prefix>/ports/<port_id>/channels/<channel_id>/sequences/<sequence>.
// The prefix is captured as the first segment.
func packetShape(desc string, prefixes ...string) keyShape {
	return newShape(desc,
		oneOf(prefixes...), lit(host.KeyPortPrefix), variable(), lit(host.KeyChannelPrefix), variable(),
		lit(host.KeySequencePrefix), variable())
}

func tokenShape(label string) keyShape {
	return newShape("a token under "+label, lit(label), variable())
}

// IsIbcKey returns true if the first segment of the key is the IBC address.
func IsIbcKey(key Key) bool {
	if key.Len() == 0 {
		return false
	}
	addr, ok := key.Segments[0].Address()
	return ok && addr == IbcAddress
}

// IsIbcTraceKey returns the owner and the token hash if the key is a denom
// trace key. A non-matching key is not an error.
func IsIbcTraceKey(key Key) (owner, tokenHash string, ok bool) {
	captured, ok := traceShape.match(key)
	if !ok {
		return "", "", false
	}
	return captured[0], captured[1], true
}

// IsIbcCounterKey returns the counter prefix (clients, connections or
// channelEnds) if the key is an IBC counter key.
func IsIbcCounterKey(key Key) (string, bool) {
	captured, ok := counterShape.match(key)
	if !ok {
		return "", false
	}
	return captured[0], true
}

// IsParamsKey returns true if the key is the IBC parameters key.
func IsParamsKey(key Key) bool {
	_, ok := paramsShape.match(key)
	return ok
}

// ClientID returns the client ID of any client-scoped key
// `#IBC/clients/<client_id>/...`.
func ClientID(key Key) (string, error) {
	for _, shape := range clientScopedShapes {
		if captured, ok := shape.match(key); ok {
			return parseClientID(captured[0])
		}
	}
	return "", ErrInvalidKey.Wrapf("the key doesn't have a client ID: %s", key)
}

// ClientStateID returns the client ID of a client state key.
func ClientStateID(key Key) (string, error) {
	return decodeClientScoped(clientStateShape, key)
}

// ClientConnectionsID returns the client ID of a client connection list key.
func ClientConnectionsID(key Key) (string, error) {
	return decodeClientScoped(clientConnectionsShape, key)
}

// ClientUpdateTimestampID returns the client ID of a client update timestamp key.
func ClientUpdateTimestampID(key Key) (string, error) {
	return decodeClientScoped(clientUpdateTimestampShape, key)
}

// ClientUpdateHeightID returns the client ID of a client update height key.
func ClientUpdateHeightID(key Key) (string, error) {
	return decodeClientScoped(clientUpdateHeightShape, key)
}

func decodeClientScoped(shape keyShape, key Key) (string, error) {
	captured, err := shape.decode(key)
	if err != nil {
		return "", err
	}
	return parseClientID(captured[0])
}

// ConsensusStateID returns the client ID and the height of a consensus state
// key `#IBC/clients/<client_id>/consensusStates/<height>`.
func ConsensusStateID(key Key) (string, clienttypes.Height, error) {
	captured, err := consensusStateShape.decode(key)
	if err != nil {
		return "", clienttypes.Height{}, err
	}

	clientID, err := parseClientID(captured[0])
	if err != nil {
		return "", clienttypes.Height{}, err
	}
	height, err := parseHeight(captured[1])
	if err != nil {
		return "", clienttypes.Height{}, err
	}

	return clientID, height, nil
}

// ConsensusHeight returns the height of a consensus state key.
func ConsensusHeight(key Key) (clienttypes.Height, error) {
	_, height, err := ConsensusStateID(key)
	return height, err
}

// ConnectionID returns the connection ID of a connection key `#IBC/connections/<conn_id>`.
func ConnectionID(key Key) (string, error) {
	captured, err := connectionShape.decode(key)
	if err != nil {
		return "", err
	}
	return parseIdentifier(captured[0], host.ConnectionIdentifierValidator)
}

// PortID returns the port ID of a port key `#IBC/ports/<port_id>`.
func PortID(key Key) (string, error) {
	captured, err := portShape.decode(key)
	if err != nil {
		return "", err
	}
	return parseIdentifier(captured[0], host.PortIdentifierValidator)
}

// PortChannelID returns the port ID and the channel ID of a channel end or a
// next sequence key `#IBC/<prefix>/ports/<port_id>/channels/<channel_id>`.
func PortChannelID(key Key) (string, string, error) {
	return decodePortChannel(portChannelShape, key)
}

// ChannelEndID returns the port ID and the channel ID of a channel end key.
func ChannelEndID(key Key) (string, string, error) {
	return decodePortChannel(channelEndShape, key)
}

// NextSequenceSendID returns the port ID and the channel ID of a nextSequenceSend key.
func NextSequenceSendID(key Key) (string, string, error) {
	return decodePortChannel(nextSequenceSendShape, key)
}

// NextSequenceRecvID returns the port ID and the channel ID of a nextSequenceRecv key.
func NextSequenceRecvID(key Key) (string, string, error) {
	return decodePortChannel(nextSequenceRecvShape, key)
}

// NextSequenceAckID returns the port ID and the channel ID of a nextSequenceAck key.
func NextSequenceAckID(key Key) (string, string, error) {
	return decodePortChannel(nextSequenceAckShape, key)
}

func decodePortChannel(shape keyShape, key Key) (string, string, error) {
	captured, err := shape.decode(key)
	if err != nil {
		return "", "", err
	}
	return parsePortChannel(captured[1], captured[2])
}

// PortChannelSequenceID returns the port ID, the channel ID and the sequence
// of a packet key
// `#IBC/<prefix>/ports/<port_id>/channels/<channel_id>/sequences/<sequence>`.
func PortChannelSequenceID(key Key) (string, string, uint64, error) {
	return decodePacket(portChannelSeqShape, key)
}

// CommitmentID returns the port ID, the channel ID and the sequence of a commitment key.
func CommitmentID(key Key) (string, string, uint64, error) {
	return decodePacket(commitmentShape, key)
}

// ReceiptID returns the port ID, the channel ID and the sequence of a receipt key.
func ReceiptID(key Key) (string, string, uint64, error) {
	return decodePacket(receiptShape, key)
}

// AckID returns the port ID, the channel ID and the sequence of an ack key.
func AckID(key Key) (string, string, uint64, error) {
	return decodePacket(ackShape, key)
}

func decodePacket(shape keyShape, key Key) (string, string, uint64, error) {
	captured, err := shape.decode(key)
	if err != nil {
		return "", "", 0, err
	}

	portID, channelID, err := parsePortChannel(captured[1], captured[2])
	if err != nil {
		return "", "", 0, err
	}
	sequence, err := parseSequence(captured[3])
	if err != nil {
		return "", "", 0, err
	}

	return portID, channelID, sequence, nil
}

// NftClassHash returns the hashed class address of an NFT class key.
func NftClassHash(key Key) (Address, error) {
	return decodeIbcToken(nftClassShape, key)
}

// NftMetadataHash returns the hashed class and token address of an NFT metadata key.
func NftMetadataHash(key Key) (Address, error) {
	return decodeIbcToken(nftMetadataShape, key)
}

func decodeIbcToken(shape keyShape, key Key) (Address, error) {
	captured, err := shape.decode(key)
	if err != nil {
		return Address{}, err
	}

	addr, err := ParseAddress(captured[0])
	if err != nil {
		return Address{}, ErrInvalidKey.Wrapf("%s: %s", key, err)
	}
	if addr.Kind() != AddressKindIbcToken {
		return Address{}, ErrInvalidKey.Wrapf("the key doesn't have an IBC token address: %s", key)
	}
	// bech32 accepts the upper case form, which the encoder never produces
	if addr.String() != captured[0] {
		return Address{}, ErrInvalidKey.Wrapf("non-canonical IBC token address %q", captured[0])
	}

	return addr, nil
}

var (
	mintLimitShape       = tokenShape(MintLimitLabel)
	mintAmountShape      = tokenShape(MintAmountLabel)
	throughputLimitShape = tokenShape(ThroughputLimitLabel)
	depositShape         = tokenShape(DepositLabel)
	withdrawShape        = tokenShape(WithdrawLabel)
)

// MintLimitToken returns the token string of a mint limit key.
func MintLimitToken(key Key) (string, error) {
	return decodeToken(mintLimitShape, key)
}

// MintAmountToken returns the token string of a mint amount key.
func MintAmountToken(key Key) (string, error) {
	return decodeToken(mintAmountShape, key)
}

// ThroughputLimitToken returns the token string of a throughput limit key.
func ThroughputLimitToken(key Key) (string, error) {
	return decodeToken(throughputLimitShape, key)
}

// DepositToken returns the token string of a deposit key.
func DepositToken(key Key) (string, error) {
	return decodeToken(depositShape, key)
}

// WithdrawToken returns the token string of a withdraw key.
func WithdrawToken(key Key) (string, error) {
	return decodeToken(withdrawShape, key)
}

func decodeToken(shape keyShape, key Key) (string, error) {
	captured, err := shape.decode(key)
	if err != nil {
		return "", err
	}
	return captured[0], nil
}

func parseClientID(s string) (string, error) {
	return parseIdentifier(s, host.ClientIdentifierValidator)
}

func parsePortChannel(port, channel string) (string, string, error) {
	portID, err := parseIdentifier(port, host.PortIdentifierValidator)
	if err != nil {
		return "", "", err
	}
	channelID, err := parseIdentifier(channel, host.ChannelIdentifierValidator)
	if err != nil {
		return "", "", err
	}
	return portID, channelID, nil
}

func parseIdentifier(s string, validate host.ValidateFn) (string, error) {
	if err := validate(s); err != nil {
		return "", ErrInvalidKey.Wrap(err.Error())
	}
	return s, nil
}

// parseHeight accepts only the canonical <revision_number>-<revision_height>
// rendering so that decoding never accepts a key the encoder can't produce.
func parseHeight(s string) (clienttypes.Height, error) {
	height, err := clienttypes.ParseHeight(s)
	if err != nil {
		return clienttypes.Height{}, ErrInvalidKey.Wrap(err.Error())
	}
	if height.String() != s {
		return clienttypes.Height{}, ErrInvalidKey.Wrapf("non-canonical height %q", s)
	}
	return height, nil
}

func parseSequence(s string) (uint64, error) {
	sequence, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, ErrInvalidKey.Wrap(err.Error())
	}
	if strconv.FormatUint(sequence, 10) != s {
		return 0, ErrInvalidKey.Wrapf("non-canonical sequence %q", s)
	}
	return sequence, nil
}
