package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cosmos/icq-invoker/modules/apps/icq-invoker/types"
)

// EmitSendQueryBalanceEvent emits an event recording the channel a balance query was sent on.
func EmitSendQueryBalanceEvent(ctx sdk.Context, channelID string, sequence uint64) {
	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeSendQueryBalance,
			sdk.NewAttribute(types.AttributeKeyMethod, "send_query_balance"),
			sdk.NewAttribute(types.AttributeKeyChannel, channelID),
			sdk.NewAttribute(types.AttributeKeySequence, fmt.Sprint(sequence)),
		),
		sdk.NewEvent(
			sdk.EventTypeMessage,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
		),
	})
}

// EmitResultEvent emits an event for a balance stored by the given packet callback.
func EmitResultEvent(ctx sdk.Context, method string, sequence uint64, coin sdk.Coin) {
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypePacket,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
			sdk.NewAttribute(types.AttributeKeyMethod, method),
			sdk.NewAttribute(types.AttributeKeySequence, fmt.Sprint(sequence)),
			sdk.NewAttribute(types.AttributeKeyDenom, coin.Denom),
			sdk.NewAttribute(types.AttributeKeyAmount, coin.Amount.String()),
			sdk.NewAttribute(types.AttributeKeySuccess, "true"),
		),
	)
}

// EmitErrorEvent emits an event for an error acknowledgement or a rejected inbound packet.
func EmitErrorEvent(ctx sdk.Context, method string, sequence uint64, ackErr string) {
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypePacket,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
			sdk.NewAttribute(types.AttributeKeyMethod, method),
			sdk.NewAttribute(types.AttributeKeySequence, fmt.Sprint(sequence)),
			sdk.NewAttribute(types.AttributeKeyAckError, ackErr),
			sdk.NewAttribute(types.AttributeKeySuccess, "false"),
		),
	)
}

// EmitTimeoutEvent emits an event for a query packet that timed out.
func EmitTimeoutEvent(ctx sdk.Context, sequence uint64) {
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeTimeout,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
			sdk.NewAttribute(types.AttributeKeyMethod, "ibc_packet_timeout"),
			sdk.NewAttribute(types.AttributeKeySequence, fmt.Sprint(sequence)),
		),
	)
}

// EmitChannelCloseEvent emits an event for the closed channel.
func EmitChannelCloseEvent(ctx sdk.Context, channelID string) {
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeChannelClose,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
			sdk.NewAttribute(types.AttributeKeyMethod, "ibc_channel_close"),
			sdk.NewAttribute(types.AttributeKeyChannel, channelID),
		),
	)
}
