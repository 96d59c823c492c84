package types

import (
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// ICQ invoker sentinel errors
var (
	ErrOnlyUnorderedChannel   = sdkerrors.Register(ModuleName, 2, "only unordered channels are supported")
	ErrInvalidVersion         = sdkerrors.Register(ModuleName, 3, "invalid interchain query version")
	ErrChannelNotEstablished  = sdkerrors.Register(ModuleName, 4, "channel to the interchain query host is not set up")
	ErrMalformedAck           = sdkerrors.Register(ModuleName, 5, "malformed acknowledgement")
	ErrInvalidBalanceResponse = sdkerrors.Register(ModuleName, 6, "invalid balance response")
	ErrEmptyBalances          = sdkerrors.Register(ModuleName, 7, "balance response contains no coins")
	ErrSendDisabled           = sdkerrors.Register(ModuleName, 8, "sending interchain queries is disabled")
	ErrInvalidDeliveryMode    = sdkerrors.Register(ModuleName, 9, "invalid response delivery mode")
	ErrInvalidGenesis         = sdkerrors.Register(ModuleName, 10, "invalid genesis state")
)
