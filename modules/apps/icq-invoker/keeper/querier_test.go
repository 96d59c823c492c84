package keeper_test

import (
	"fmt"

	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	abci "github.com/tendermint/tendermint/abci/types"

	"github.com/cosmos/icq-invoker/modules/apps/icq-invoker/keeper"
	"github.com/cosmos/icq-invoker/modules/apps/icq-invoker/types"
	ibctesting "github.com/cosmos/icq-invoker/testing"
)

func (suite *KeeperTestSuite) TestQuerier() {
	testCases := []struct {
		name     string
		path     []string
		malleate func()
		expPass  bool
		expJSON  []string
	}{
		{
			"results", []string{types.QueryResults}, func() {}, true,
			[]string{`"sequence": "7"`, `"denom": "uosmo"`, `"amount": "500"`},
		},
		{
			"errors", []string{types.QueryErrors}, func() {}, true,
			[]string{`"sequence": "9"`, `"error": "remote module not found"`},
		},
		{
			"params", []string{types.QueryParams}, func() {}, true,
			[]string{`"send_enabled": true`},
		},
		{
			"channel", []string{types.QueryChannel}, func() {
				suite.tk.ConnectChannel(suite.T(), 1)
			}, true,
			[]string{fmt.Sprintf(`"id": "%s"`, ibctesting.ChannelID), `"port_id": "icqhost"`, `"connection_id": "connection-0"`},
		},
		{
			"channel not established", []string{types.QueryChannel}, func() {}, false, nil,
		},
		{
			"unknown route", []string{"balances"}, func() {}, false, nil,
		},
		{
			"empty path", []string{}, func() {}, false, nil,
		},
	}

	for _, tc := range testCases {
		tc := tc

		suite.Run(tc.name, func() {
			suite.SetupTest() // reset

			querier := keeper.NewQuerier(suite.tk.Keeper, codec.NewLegacyAmino())

			suite.tk.Keeper.SetResult(suite.tk.Ctx, 7, sdk.NewInt64Coin("uosmo", 500))
			suite.tk.Keeper.SetError(suite.tk.Ctx, 9, "remote module not found")

			tc.malleate()

			bz, err := querier(suite.tk.Ctx, tc.path, abci.RequestQuery{})

			if tc.expPass {
				suite.Require().NoError(err)
				for _, expected := range tc.expJSON {
					suite.Require().Contains(string(bz), expected)
				}
			} else {
				suite.Require().Error(err)
				suite.Require().Nil(bz)
			}
		})
	}
}

func (suite *KeeperTestSuite) TestQuerierUnknownRoute() {
	querier := keeper.NewQuerier(suite.tk.Keeper, codec.NewLegacyAmino())

	_, err := querier(suite.tk.Ctx, []string{"unknown"}, abci.RequestQuery{})
	suite.Require().ErrorIs(err, sdkerrors.ErrUnknownRequest)

	_, err = querier(suite.tk.Ctx, []string{types.QueryChannel}, abci.RequestQuery{})
	suite.Require().ErrorIs(err, types.ErrChannelNotEstablished)
}
