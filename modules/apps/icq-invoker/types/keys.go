package types

import (
	"encoding/binary"
	"time"
)

const (
	// ModuleName defines the interchain query invoker module name
	ModuleName = "icqinvoker"

	// PortID is the default port id that the interchain query invoker module binds to
	PortID = "icqinvoker"

	// Version defines the current version for interchain query
	Version = "icq-1"

	// StoreKey is the store key string for the interchain query invoker
	StoreKey = ModuleName

	// RouterKey is the message route for the interchain query invoker
	RouterKey = ModuleName

	// QuerierRoute is the querier route for the interchain query invoker
	QuerierRoute = ModuleName

	// QueryTimeout is the relative timeout applied to every outgoing balance query.
	// A query left unanswered past this deadline is abandoned.
	QueryTimeout = 120 * time.Second
)

var (
	// PortKey defines the key to store the port ID in store
	PortKey = []byte{0x01}

	// ChannelInfoKey defines the key to store the single active channel record
	ChannelInfoKey = []byte("channel_info")

	// ResultKeyPrefix defines the key prefix for stored balance results
	ResultKeyPrefix = []byte("icq_responses")

	// ErrorKeyPrefix defines the key prefix for stored error acknowledgements
	ErrorKeyPrefix = []byte("icq_errors")
)

// SequenceKey returns the big endian encoded sequence so that results iterate in ascending order.
func SequenceKey(sequence uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, sequence)
	return bz
}

// ParseSequenceKey is the inverse of SequenceKey.
func ParseSequenceKey(bz []byte) uint64 {
	return binary.BigEndian.Uint64(bz)
}

// ResultKey returns the store key under which the result for the given sequence is stored
func ResultKey(sequence uint64) []byte {
	return append(append([]byte{}, ResultKeyPrefix...), SequenceKey(sequence)...)
}

// ErrorKey returns the store key under which the error for the given sequence is stored
func ErrorKey(sequence uint64) []byte {
	return append(append([]byte{}, ErrorKeyPrefix...), SequenceKey(sequence)...)
}
