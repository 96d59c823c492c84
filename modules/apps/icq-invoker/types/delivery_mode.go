package types

import (
	"strings"

	servertypes "github.com/cosmos/cosmos-sdk/server/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/spf13/cast"
)

// FlagDeliveryMode is the app.toml key and start flag selecting the response delivery mode
const FlagDeliveryMode = "icq-invoker.delivery-mode"

// DeliveryMode selects which inbound packet event carries the answer to a query.
type DeliveryMode int

const (
	// DeliveryModeAck expects the balance to ride the acknowledgement of the query packet.
	DeliveryModeAck DeliveryMode = iota
	// DeliveryModeReceive expects the balance to arrive as a new packet sent by the host.
	DeliveryModeReceive
)

// DefaultDeliveryMode is used when no delivery mode is configured
const DefaultDeliveryMode = DeliveryModeAck

func (m DeliveryMode) String() string {
	switch m {
	case DeliveryModeAck:
		return "ack"
	case DeliveryModeReceive:
		return "receive"
	default:
		return "unknown"
	}
}

// Validate returns an error if the delivery mode is not one of the known modes.
func (m DeliveryMode) Validate() error {
	switch m {
	case DeliveryModeAck, DeliveryModeReceive:
		return nil
	default:
		return sdkerrors.Wrapf(ErrInvalidDeliveryMode, "unknown delivery mode %d", m)
	}
}

// ParseDeliveryMode parses the textual form of a delivery mode.
func ParseDeliveryMode(s string) (DeliveryMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ack":
		return DeliveryModeAck, nil
	case "receive":
		return DeliveryModeReceive, nil
	default:
		return 0, sdkerrors.Wrapf(ErrInvalidDeliveryMode, "expected one of [ack receive], got %q", s)
	}
}

// DeliveryModeFromAppOptions reads the delivery mode from the application options,
// falling back to DefaultDeliveryMode when it is not set.
func DeliveryModeFromAppOptions(appOpts servertypes.AppOptions) (DeliveryMode, error) {
	value := strings.TrimSpace(cast.ToString(appOpts.Get(FlagDeliveryMode)))
	if value == "" {
		return DefaultDeliveryMode, nil
	}

	return ParseDeliveryMode(value)
}
