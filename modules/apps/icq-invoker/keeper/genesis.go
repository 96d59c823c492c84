package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cosmos/icq-invoker/modules/apps/icq-invoker/types"
)

// InitGenesis initializes the interchain query invoker state and binds to PortID.
func InitGenesis(ctx sdk.Context, keeper Keeper, state types.GenesisState) {
	keeper.SetPort(ctx, state.PortID)

	// Only try to bind to port if it is not already bound, since we may already own
	// port capability from capability InitGenesis
	if !keeper.IsBound(ctx, state.PortID) {
		// module binds to the port on InitChain
		// and claims the returned capability
		if err := keeper.BindPort(ctx, state.PortID); err != nil {
			panic(fmt.Sprintf("could not claim port capability: %v", err))
		}
	}

	keeper.SetParams(ctx, state.Params)

	if state.ChannelInfo != nil {
		keeper.SetChannelInfo(ctx, *state.ChannelInfo)
	}

	for _, result := range state.Results {
		keeper.SetResult(ctx, result.Sequence, result.Coin)
	}

	for _, icqErr := range state.Errors {
		keeper.SetError(ctx, icqErr.Sequence, icqErr.Error)
	}
}

// ExportGenesis exports the interchain query invoker state.
func ExportGenesis(ctx sdk.Context, keeper Keeper) *types.GenesisState {
	var channelInfo *types.ChannelInfo
	if info, found := keeper.GetChannelInfo(ctx); found {
		channelInfo = &info
	}

	return types.NewGenesisState(
		keeper.GetPort(ctx),
		keeper.GetParams(ctx),
		channelInfo,
		keeper.GetAllResults(ctx),
		keeper.GetAllErrors(ctx),
	)
}
