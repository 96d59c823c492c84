package mock

import (
	"errors"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	capabilitytypes "github.com/cosmos/cosmos-sdk/x/capability/types"

	channeltypes "github.com/cosmos/ibc-go/v3/modules/core/04-channel/types"
	host "github.com/cosmos/ibc-go/v3/modules/core/24-host"
	ibcexported "github.com/cosmos/ibc-go/v3/modules/core/exported"
	"github.com/cosmos/icq-invoker/modules/apps/icq-invoker/types"
)

var (
	_ types.ChannelKeeper = (*ChannelKeeper)(nil)
	_ types.ICS4Wrapper   = (*ICS4Wrapper)(nil)
	_ types.PortKeeper    = (*PortKeeper)(nil)
	_ types.ScopedKeeper  = (*ScopedKeeper)(nil)
)

// ErrSendPacket is returned by ICS4Wrapper.SendPacket when sending is set to fail
var ErrSendPacket = errors.New("mock send packet failure")

func channelKey(portID, channelID string) string {
	return fmt.Sprintf("%s/%s", portID, channelID)
}

// ChannelKeeper is an in-memory channel keeper holding channel ends and next send sequences
type ChannelKeeper struct {
	channels      map[string]channeltypes.Channel
	nextSequences map[string]uint64
}

// NewChannelKeeper creates a new empty ChannelKeeper
func NewChannelKeeper() *ChannelKeeper {
	return &ChannelKeeper{
		channels:      make(map[string]channeltypes.Channel),
		nextSequences: make(map[string]uint64),
	}
}

// SetChannel stores the channel end for the given port and channel
func (k *ChannelKeeper) SetChannel(portID, channelID string, channel channeltypes.Channel) {
	k.channels[channelKey(portID, channelID)] = channel
}

// GetChannel implements types.ChannelKeeper
func (k *ChannelKeeper) GetChannel(_ sdk.Context, portID, channelID string) (channeltypes.Channel, bool) {
	channel, found := k.channels[channelKey(portID, channelID)]
	return channel, found
}

// SetNextSequenceSend sets the sequence the next packet sent on the channel is assigned
func (k *ChannelKeeper) SetNextSequenceSend(portID, channelID string, sequence uint64) {
	k.nextSequences[channelKey(portID, channelID)] = sequence
}

// GetNextSequenceSend implements types.ChannelKeeper
func (k *ChannelKeeper) GetNextSequenceSend(_ sdk.Context, portID, channelID string) (uint64, bool) {
	sequence, found := k.nextSequences[channelKey(portID, channelID)]
	return sequence, found
}

// ICS4Wrapper records sent packets and advances the next send sequence of the channel keeper
type ICS4Wrapper struct {
	channelKeeper *ChannelKeeper
	scopedKeeper  *ScopedKeeper

	SentPackets []channeltypes.Packet
	Fail        bool
}

// NewICS4Wrapper creates a new ICS4Wrapper sending on the channels of the given keepers
func NewICS4Wrapper(channelKeeper *ChannelKeeper, scopedKeeper *ScopedKeeper) *ICS4Wrapper {
	return &ICS4Wrapper{
		channelKeeper: channelKeeper,
		scopedKeeper:  scopedKeeper,
	}
}

// SendPacket implements types.ICS4Wrapper. The packet is rejected if the capability
// does not authenticate the source channel or its sequence is not the next one.
func (w *ICS4Wrapper) SendPacket(ctx sdk.Context, chanCap *capabilitytypes.Capability, packet ibcexported.PacketI) error {
	if w.Fail {
		return ErrSendPacket
	}

	portID, channelID := packet.GetSourcePort(), packet.GetSourceChannel()
	if !w.scopedKeeper.AuthenticateCapability(ctx, chanCap, host.ChannelCapabilityPath(portID, channelID)) {
		return channeltypes.ErrChannelCapabilityNotFound
	}

	nextSequence, found := w.channelKeeper.GetNextSequenceSend(ctx, portID, channelID)
	if !found {
		return channeltypes.ErrSequenceSendNotFound
	}

	if packet.GetSequence() != nextSequence {
		return fmt.Errorf("packet sequence %d does not match next sequence send %d", packet.GetSequence(), nextSequence)
	}

	w.channelKeeper.SetNextSequenceSend(portID, channelID, nextSequence+1)
	w.SentPackets = append(w.SentPackets, packet.(channeltypes.Packet))

	return nil
}

// LastSentPacket returns the most recently sent packet
func (w *ICS4Wrapper) LastSentPacket() (channeltypes.Packet, bool) {
	if len(w.SentPackets) == 0 {
		return channeltypes.Packet{}, false
	}

	return w.SentPackets[len(w.SentPackets)-1], true
}

// ScopedKeeper is an in-memory scoped capability keeper
type ScopedKeeper struct {
	capabilities map[string]*capabilitytypes.Capability
	index        uint64
}

// NewScopedKeeper creates a new empty ScopedKeeper
func NewScopedKeeper() *ScopedKeeper {
	return &ScopedKeeper{
		capabilities: make(map[string]*capabilitytypes.Capability),
		index:        1,
	}
}

// NewCapability returns a fresh capability, as IBC core would create one for a new port or channel
func (k *ScopedKeeper) NewCapability() *capabilitytypes.Capability {
	cap := capabilitytypes.NewCapability(k.index)
	k.index++
	return cap
}

// GetCapability implements types.ScopedKeeper
func (k *ScopedKeeper) GetCapability(_ sdk.Context, name string) (*capabilitytypes.Capability, bool) {
	cap, ok := k.capabilities[name]
	return cap, ok
}

// AuthenticateCapability implements types.ScopedKeeper
func (k *ScopedKeeper) AuthenticateCapability(_ sdk.Context, cap *capabilitytypes.Capability, name string) bool {
	owned, ok := k.capabilities[name]
	return ok && cap != nil && owned == cap
}

// ClaimCapability implements types.ScopedKeeper
func (k *ScopedKeeper) ClaimCapability(_ sdk.Context, cap *capabilitytypes.Capability, name string) error {
	if cap == nil {
		return capabilitytypes.ErrNilCapability
	}

	if _, ok := k.capabilities[name]; ok {
		return capabilitytypes.ErrOwnerClaimed
	}

	k.capabilities[name] = cap
	return nil
}

// PortKeeper hands out port capabilities created by the scoped keeper
type PortKeeper struct {
	scopedKeeper *ScopedKeeper
	BoundPorts   []string
}

// NewPortKeeper creates a new PortKeeper
func NewPortKeeper(scopedKeeper *ScopedKeeper) *PortKeeper {
	return &PortKeeper{
		scopedKeeper: scopedKeeper,
	}
}

// BindPort implements types.PortKeeper
func (k *PortKeeper) BindPort(_ sdk.Context, portID string) *capabilitytypes.Capability {
	k.BoundPorts = append(k.BoundPorts, portID)
	return k.scopedKeeper.NewCapability()
}
