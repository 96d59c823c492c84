package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	clienttypes "github.com/cosmos/ibc-go/v3/modules/core/02-client/types"
	channeltypes "github.com/cosmos/ibc-go/v3/modules/core/04-channel/types"
	host "github.com/cosmos/ibc-go/v3/modules/core/24-host"
	"github.com/cosmos/icq-invoker/modules/apps/icq-invoker/internal/telemetry"
	"github.com/cosmos/icq-invoker/modules/apps/icq-invoker/types"
)

// SendQueryBalance sends a balance query for the given request over the connected
// channel. The packet times out QueryTimeout after the current block time.
// It fails with ErrChannelNotEstablished if no channel has been connected.
func (k Keeper) SendQueryBalance(ctx sdk.Context, req types.QueryRequest) (channeltypes.Packet, error) {
	if !k.IsSendEnabled(ctx) {
		return channeltypes.Packet{}, types.ErrSendDisabled
	}

	channelInfo, found := k.GetChannelInfo(ctx)
	if !found {
		return channeltypes.Packet{}, types.ErrChannelNotEstablished
	}

	sourcePort := k.GetPort(ctx)
	sourceChannel := channelInfo.ID
	destinationPort := channelInfo.CounterpartyEndpoint.PortID
	destinationChannel := channelInfo.CounterpartyEndpoint.ChannelID

	channelCap, ok := k.scopedKeeper.GetCapability(ctx, host.ChannelCapabilityPath(sourcePort, sourceChannel))
	if !ok {
		return channeltypes.Packet{}, sdkerrors.Wrap(channeltypes.ErrChannelCapabilityNotFound, "module does not own channel capability")
	}

	// get the next sequence
	sequence, found := k.channelKeeper.GetNextSequenceSend(ctx, sourcePort, sourceChannel)
	if !found {
		return channeltypes.Packet{}, sdkerrors.Wrapf(channeltypes.ErrSequenceSendNotFound, "failed to retrieve next sequence send for channel %s on port %s", sourceChannel, sourcePort)
	}

	packetData := types.NewBalanceQueryPacketData(req)
	timeoutTimestamp := uint64(ctx.BlockTime().Add(types.QueryTimeout).UnixNano())

	packet := channeltypes.NewPacket(
		packetData.GetBytes(),
		sequence,
		sourcePort,
		sourceChannel,
		destinationPort,
		destinationChannel,
		clienttypes.ZeroHeight(),
		timeoutTimestamp,
	)

	if err := k.ics4Wrapper.SendPacket(ctx, channelCap, packet); err != nil {
		return channeltypes.Packet{}, err
	}

	telemetry.ReportSendQuery(sourcePort, sourceChannel, destinationPort, destinationChannel)
	k.Logger(ctx).Info("IBC interchain balance query", "channel", sourceChannel, "sequence", sequence, "chain-id", req.ChainID, "denom", req.Denom)
	EmitSendQueryBalanceEvent(ctx, sourceChannel, sequence)

	return packet, nil
}

// OnRecvPacket handles a packet sent by the interchain query host. In receive
// delivery mode the packet carries the balance response, which is stored under
// the packet sequence. Nothing is stored if the payload cannot be decoded, the
// returned error is turned into an error acknowledgement by the caller.
// Packets are only accepted on the connected channel. In ack delivery mode
// inbound packets are not expected to carry data and are ignored.
func (k Keeper) OnRecvPacket(ctx sdk.Context, packet channeltypes.Packet) error {
	if k.deliveryMode != types.DeliveryModeReceive {
		k.Logger(ctx).Debug("ignoring inbound packet in ack delivery mode", "sequence", packet.GetSequence())
		return nil
	}

	if err := k.validatePacketChannel(ctx, packet.GetDestChannel()); err != nil {
		telemetry.ReportRejectedPacket(packet.GetSourcePort(), packet.GetSourceChannel())
		return err
	}

	coin, err := types.DecodeFirstCoin(packet.GetData())
	if err != nil {
		telemetry.ReportRejectedPacket(packet.GetSourcePort(), packet.GetSourceChannel())
		return err
	}

	k.SetResult(ctx, packet.GetSequence(), coin)

	telemetry.ReportResult(k.deliveryMode, coin)
	k.Logger(ctx).Info("interchain query result received", "sequence", packet.GetSequence(), "coin", coin.String())
	EmitResultEvent(ctx, "ibc_packet_receive", packet.GetSequence(), coin)

	return nil
}

// OnAcknowledgementPacket handles the acknowledgement of a balance query. In ack
// delivery mode a result acknowledgement carries the balance response and an error
// acknowledgement carries the reason the host failed; both are stored under the
// sequence of the original packet. An acknowledgement that cannot be decoded is
// returned as an error. In receive delivery mode acknowledgements only confirm
// delivery and are ignored. Acknowledgements are only accepted for packets sent
// on the connected channel.
func (k Keeper) OnAcknowledgementPacket(ctx sdk.Context, packet channeltypes.Packet, acknowledgement []byte) error {
	if k.deliveryMode != types.DeliveryModeAck {
		k.Logger(ctx).Debug("ignoring acknowledgement in receive delivery mode", "sequence", packet.GetSequence())
		return nil
	}

	if err := k.validatePacketChannel(ctx, packet.GetSourceChannel()); err != nil {
		return err
	}

	ack, err := types.DecodeAck(acknowledgement)
	if err != nil {
		return err
	}

	switch resp := ack.Response.(type) {
	case *channeltypes.Acknowledgement_Result:
		coin, err := types.DecodeFirstCoin(resp.Result)
		if err != nil {
			return sdkerrors.Wrapf(err, "cannot decode balance response for packet sequence %d", packet.GetSequence())
		}

		k.SetResult(ctx, packet.GetSequence(), coin)

		telemetry.ReportResult(k.deliveryMode, coin)
		k.Logger(ctx).Info("interchain query result acknowledged", "sequence", packet.GetSequence(), "coin", coin.String())
		EmitResultEvent(ctx, "ibc_packet_ack", packet.GetSequence(), coin)
	case *channeltypes.Acknowledgement_Error:
		k.SetError(ctx, packet.GetSequence(), resp.Error)

		telemetry.ReportError(packet.GetSourceChannel())
		k.Logger(ctx).Error("interchain query failed on host", "sequence", packet.GetSequence(), "error", resp.Error)
		EmitErrorEvent(ctx, "ibc_packet_ack", packet.GetSequence(), resp.Error)
	default:
		return sdkerrors.Wrapf(types.ErrMalformedAck, "unsupported acknowledgement response %T", resp)
	}

	return nil
}

// OnTimeoutPacket records that a balance query expired. No state is changed, a
// timed out query is indistinguishable from a pending one in the store.
func (k Keeper) OnTimeoutPacket(ctx sdk.Context, packet channeltypes.Packet) error {
	telemetry.ReportTimeout(packet.GetSourceChannel())
	k.Logger(ctx).Info("interchain query timed out", "sequence", packet.GetSequence(), "channel", packet.GetSourceChannel())
	EmitTimeoutEvent(ctx, packet.GetSequence())

	return nil
}

// validatePacketChannel returns an error if no channel is connected or the local
// end of the packet is not the connected channel.
func (k Keeper) validatePacketChannel(ctx sdk.Context, channelID string) error {
	channelInfo, found := k.GetChannelInfo(ctx)
	if !found {
		return types.ErrChannelNotEstablished
	}

	if channelID != channelInfo.ID {
		return sdkerrors.Wrapf(channeltypes.ErrInvalidChannel, "packet channel %s is not the connected channel %s", channelID, channelInfo.ID)
	}

	return nil
}
