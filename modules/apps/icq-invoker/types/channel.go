package types

import (
	"fmt"

	host "github.com/cosmos/ibc-go/v3/modules/core/24-host"
)

// IbcEndpoint identifies one end of a channel by port and channel identifier.
type IbcEndpoint struct {
	PortID    string `json:"port_id" yaml:"port_id"`
	ChannelID string `json:"channel_id" yaml:"channel_id"`
}

// ChannelInfo is the static record of the single channel connected to the
// interchain query host. It is written when the handshake completes and removed
// when the channel closes.
type ChannelInfo struct {
	// id of this channel
	ID string `json:"id" yaml:"id"`
	// the remote channel/port we connect to
	CounterpartyEndpoint IbcEndpoint `json:"counterparty_endpoint" yaml:"counterparty_endpoint"`
	// the connection this exists on
	ConnectionID string `json:"connection_id" yaml:"connection_id"`
}

// NewChannelInfo creates a new ChannelInfo instance
func NewChannelInfo(channelID, counterpartyPortID, counterpartyChannelID, connectionID string) ChannelInfo {
	return ChannelInfo{
		ID: channelID,
		CounterpartyEndpoint: IbcEndpoint{
			PortID:    counterpartyPortID,
			ChannelID: counterpartyChannelID,
		},
		ConnectionID: connectionID,
	}
}

// Validate performs a basic validation of the channel identifiers.
func (ci ChannelInfo) Validate() error {
	if err := host.ChannelIdentifierValidator(ci.ID); err != nil {
		return err
	}
	if err := host.PortIdentifierValidator(ci.CounterpartyEndpoint.PortID); err != nil {
		return err
	}
	if err := host.ChannelIdentifierValidator(ci.CounterpartyEndpoint.ChannelID); err != nil {
		return err
	}
	return host.ConnectionIdentifierValidator(ci.ConnectionID)
}

func (ci ChannelInfo) String() string {
	return fmt.Sprintf("%s -> %s/%s (%s)", ci.ID, ci.CounterpartyEndpoint.PortID, ci.CounterpartyEndpoint.ChannelID, ci.ConnectionID)
}
