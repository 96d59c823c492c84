package types

import (
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	channeltypes "github.com/cosmos/ibc-go/v3/modules/core/04-channel/types"
)

// ValidateChannel performs the order and version checks applied at every step of the
// channel handshake. The channel must be UNORDERED so that a lost query does not halt
// the channel, and both the local and, when known, the counterparty version must be
// equal to Version.
//
// counterpartyVersion is nil when the counterparty version is not known at the current
// handshake step (OpenInit on the initiating chain, OpenConfirm on the other one).
func ValidateChannel(order channeltypes.Order, version string, counterpartyVersion *string) error {
	if order != channeltypes.UNORDERED {
		return sdkerrors.Wrapf(ErrOnlyUnorderedChannel, "expected %s channel, got %s", channeltypes.UNORDERED, order)
	}

	if version != Version {
		return sdkerrors.Wrapf(ErrInvalidVersion, "got %s, expected %s", version, Version)
	}

	if counterpartyVersion != nil && *counterpartyVersion != Version {
		return sdkerrors.Wrapf(ErrInvalidVersion, "invalid counterparty version: got %s, expected %s", *counterpartyVersion, Version)
	}

	return nil
}
