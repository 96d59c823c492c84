package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cosmos/icq-invoker/modules/apps/icq-invoker/types"
)

// IsSendEnabled retrieves the send enabled boolean from the paramstore
func (k Keeper) IsSendEnabled(ctx sdk.Context) bool {
	var res bool
	k.paramSpace.Get(ctx, types.KeySendEnabled, &res)
	return res
}

// GetParams returns the total set of interchain query invoker parameters.
func (k Keeper) GetParams(ctx sdk.Context) types.Params {
	return types.NewParams(k.IsSendEnabled(ctx))
}

// SetParams sets the total set of interchain query invoker parameters.
func (k Keeper) SetParams(ctx sdk.Context, params types.Params) {
	k.paramSpace.SetParamSet(ctx, &params)
}
