package keeper

import (
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	abci "github.com/tendermint/tendermint/abci/types"

	"github.com/cosmos/icq-invoker/modules/apps/icq-invoker/types"
)

// NewQuerier returns the legacy querier serving the stored results, errors,
// channel record and params.
func NewQuerier(k Keeper, legacyQuerierCdc *codec.LegacyAmino) sdk.Querier {
	return func(ctx sdk.Context, path []string, _ abci.RequestQuery) ([]byte, error) {
		if len(path) == 0 {
			return nil, sdkerrors.Wrap(sdkerrors.ErrUnknownRequest, "empty query path")
		}

		var res interface{}
		switch path[0] {
		case types.QueryResults:
			res = k.GetAllResults(ctx)
		case types.QueryErrors:
			res = k.GetAllErrors(ctx)
		case types.QueryChannel:
			info, found := k.GetChannelInfo(ctx)
			if !found {
				return nil, types.ErrChannelNotEstablished
			}
			res = info
		case types.QueryParams:
			res = k.GetParams(ctx)
		default:
			return nil, sdkerrors.Wrapf(sdkerrors.ErrUnknownRequest, "unknown %s query endpoint: %s", types.ModuleName, path[0])
		}

		bz, err := codec.MarshalJSONIndent(legacyQuerierCdc, res)
		if err != nil {
			return nil, sdkerrors.Wrap(sdkerrors.ErrJSONMarshal, err.Error())
		}

		return bz, nil
	}
}
