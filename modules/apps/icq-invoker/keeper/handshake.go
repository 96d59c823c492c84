package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	capabilitytypes "github.com/cosmos/cosmos-sdk/x/capability/types"

	channeltypes "github.com/cosmos/ibc-go/v3/modules/core/04-channel/types"
	porttypes "github.com/cosmos/ibc-go/v3/modules/core/05-port/types"
	host "github.com/cosmos/ibc-go/v3/modules/core/24-host"
	"github.com/cosmos/icq-invoker/modules/apps/icq-invoker/types"
)

// OnChanOpenInit performs basic validation of channel initialization.
// The channel must be UNORDERED, use the module's bound port and the icq-1
// version, and the module must be able to claim the channel capability.
// No state is written until the channel connects.
func (k Keeper) OnChanOpenInit(
	ctx sdk.Context,
	order channeltypes.Order,
	connectionHops []string,
	portID string,
	channelID string,
	chanCap *capabilitytypes.Capability,
	counterparty channeltypes.Counterparty,
	version string,
) error {
	if err := k.validatePort(ctx, portID); err != nil {
		return err
	}

	// the counterparty version is not known yet
	if err := types.ValidateChannel(order, version, nil); err != nil {
		return err
	}

	if err := k.ClaimCapability(ctx, chanCap, host.ChannelCapabilityPath(portID, channelID)); err != nil {
		return sdkerrors.Wrap(channeltypes.ErrChannelCapabilityNotFound, err.Error())
	}

	return nil
}

// OnChanOpenTry performs basic validation of the channel proposed by the counterparty
// and answers with the only supported version.
func (k Keeper) OnChanOpenTry(
	ctx sdk.Context,
	order channeltypes.Order,
	connectionHops []string,
	portID,
	channelID string,
	chanCap *capabilitytypes.Capability,
	counterparty channeltypes.Counterparty,
	counterpartyVersion string,
) (string, error) {
	if err := k.validatePort(ctx, portID); err != nil {
		return "", err
	}

	// the proposed channel version is the counterparty version
	if err := types.ValidateChannel(order, counterpartyVersion, &counterpartyVersion); err != nil {
		return "", err
	}

	// Module may have already claimed capability in OnChanOpenInit in the case of crossing hellos
	// (ie chainA and chainB both call ChanOpenInit before one of them calls ChanOpenTry)
	// If module can already authenticate the capability then module already owns it so we don't need to claim
	// Otherwise, module does not have channel capability and we must claim it from IBC
	if !k.AuthenticateCapability(ctx, chanCap, host.ChannelCapabilityPath(portID, channelID)) {
		if err := k.ClaimCapability(ctx, chanCap, host.ChannelCapabilityPath(portID, channelID)); err != nil {
			return "", err
		}
	}

	return types.Version, nil
}

// OnChanOpenAck validates the version chosen by the counterparty and records the
// now established channel.
func (k Keeper) OnChanOpenAck(
	ctx sdk.Context,
	portID,
	channelID string,
	counterpartyChannelID string,
	counterpartyVersion string,
) error {
	return k.connectChannel(ctx, portID, channelID, counterpartyChannelID, &counterpartyVersion)
}

// OnChanOpenConfirm validates the channel once more and records it. The counterparty
// version was already checked in OnChanOpenTry.
func (k Keeper) OnChanOpenConfirm(
	ctx sdk.Context,
	portID,
	channelID string,
) error {
	return k.connectChannel(ctx, portID, channelID, "", nil)
}

// OnChanClose removes the channel record. Stored results and errors are kept.
func (k Keeper) OnChanClose(
	ctx sdk.Context,
	portID,
	channelID string,
) error {
	k.DeleteChannelInfo(ctx)

	k.Logger(ctx).Info("interchain query channel closed", "port-id", portID, "channel-id", channelID)
	EmitChannelCloseEvent(ctx, channelID)

	return nil
}

func (k Keeper) connectChannel(
	ctx sdk.Context,
	portID,
	channelID,
	counterpartyChannelID string,
	counterpartyVersion *string,
) error {
	channel, found := k.channelKeeper.GetChannel(ctx, portID, channelID)
	if !found {
		return sdkerrors.Wrapf(channeltypes.ErrChannelNotFound, "port ID (%s) channel ID (%s)", portID, channelID)
	}

	if err := types.ValidateChannel(channel.Ordering, channel.Version, counterpartyVersion); err != nil {
		return err
	}

	// the counterparty channel identifier is only written to the channel end after OpenAck
	if counterpartyChannelID == "" {
		counterpartyChannelID = channel.Counterparty.ChannelId
	}

	var connectionID string
	if len(channel.ConnectionHops) > 0 {
		connectionID = channel.ConnectionHops[0]
	}

	info := types.NewChannelInfo(channelID, channel.Counterparty.PortId, counterpartyChannelID, connectionID)
	k.SetChannelInfo(ctx, info)

	k.Logger(ctx).Info("interchain query channel connected", "channel", info.String())
	return nil
}

func (k Keeper) validatePort(ctx sdk.Context, portID string) error {
	boundPort := k.GetPort(ctx)
	if boundPort != portID {
		return sdkerrors.Wrapf(porttypes.ErrInvalidPort, "invalid port: %s, expected %s", portID, boundPort)
	}

	return nil
}
