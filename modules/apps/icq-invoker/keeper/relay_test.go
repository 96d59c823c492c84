package keeper_test

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	clienttypes "github.com/cosmos/ibc-go/v3/modules/core/02-client/types"
	channeltypes "github.com/cosmos/ibc-go/v3/modules/core/04-channel/types"
	host "github.com/cosmos/ibc-go/v3/modules/core/24-host"
	"github.com/cosmos/icq-invoker/modules/apps/icq-invoker/types"
	ibctesting "github.com/cosmos/icq-invoker/testing"
	"github.com/cosmos/icq-invoker/testing/mock"
)

// findEvent returns the last emitted event of the given type
func (suite *KeeperTestSuite) findEvent(eventType string) (sdk.Event, bool) {
	events := suite.tk.Ctx.EventManager().Events()
	for i := len(events) - 1; i >= 0; i-- {
		if events[i].Type == eventType {
			return events[i], true
		}
	}

	return sdk.Event{}, false
}

// requireAttribute checks that the event carries the attribute with the given value
func (suite *KeeperTestSuite) requireAttribute(event sdk.Event, key, value string) {
	for _, attr := range event.Attributes {
		if string(attr.Key) == key {
			suite.Require().Equal(value, string(attr.Value))
			return
		}
	}

	suite.Require().Failf("attribute not found", "event %s has no attribute %s", event.Type, key)
}

func (suite *KeeperTestSuite) TestSendQueryBalance() {
	testCases := []struct {
		name     string
		malleate func()
		expErr   error
	}{
		{
			"success", func() {}, nil,
		},
		{
			"channel not established", func() {
				suite.tk.Keeper.DeleteChannelInfo(suite.tk.Ctx)
			}, types.ErrChannelNotEstablished,
		},
		{
			"send disabled", func() {
				suite.tk.Keeper.SetParams(suite.tk.Ctx, types.NewParams(false))
			}, types.ErrSendDisabled,
		},
		{
			"channel capability not owned", func() {
				info, _ := suite.tk.Keeper.GetChannelInfo(suite.tk.Ctx)
				info.ID = "channel-5"
				suite.tk.Keeper.SetChannelInfo(suite.tk.Ctx, info)
			}, channeltypes.ErrChannelCapabilityNotFound,
		},
		{
			"next sequence send not found", func() {
				info, _ := suite.tk.Keeper.GetChannelInfo(suite.tk.Ctx)
				info.ID = "channel-5"
				suite.tk.Keeper.SetChannelInfo(suite.tk.Ctx, info)

				err := suite.tk.ScopedKeeper.ClaimCapability(suite.tk.Ctx, suite.tk.ScopedKeeper.NewCapability(), host.ChannelCapabilityPath(types.PortID, "channel-5"))
				suite.Require().NoError(err)
			}, channeltypes.ErrSequenceSendNotFound,
		},
		{
			"send packet fails", func() {
				suite.tk.ICS4Wrapper.Fail = true
			}, mock.ErrSendPacket,
		},
	}

	for _, tc := range testCases {
		tc := tc

		suite.Run(tc.name, func() {
			suite.SetupTest() // reset

			suite.tk.ConnectChannel(suite.T(), 7)

			tc.malleate()

			packet, err := suite.tk.Keeper.SendQueryBalance(suite.tk.Ctx, TestQueryRequest)

			if tc.expErr == nil {
				suite.Require().NoError(err)

				expPacket := ibctesting.QueryPacket(TestQueryRequest, 7)
				suite.Require().Equal(expPacket, packet)
				suite.Require().Equal(`{"chain_id":"osmosis-1","addr":"osmo1abc","denom":"uosmo"}`, string(packet.GetData()))
				suite.Require().Equal(clienttypes.ZeroHeight(), packet.GetTimeoutHeight())
				suite.Require().Equal(uint64(ibctesting.BlockTime.UnixNano())+uint64(types.QueryTimeout.Nanoseconds()), packet.GetTimeoutTimestamp())
				suite.Require().Equal(ibctesting.CounterpartyPortID, packet.GetDestPort())
				suite.Require().Equal(ibctesting.CounterpartyChannelID, packet.GetDestChannel())

				sent, ok := suite.tk.ICS4Wrapper.LastSentPacket()
				suite.Require().True(ok)
				suite.Require().Equal(packet, sent)

				event, found := suite.findEvent(types.EventTypeSendQueryBalance)
				suite.Require().True(found)
				suite.requireAttribute(event, types.AttributeKeyChannel, ibctesting.ChannelID)
				suite.requireAttribute(event, types.AttributeKeySequence, "7")
			} else {
				suite.Require().ErrorIs(err, tc.expErr)
				suite.Require().Empty(suite.tk.ICS4Wrapper.SentPackets)

				_, found := suite.findEvent(types.EventTypeSendQueryBalance)
				suite.Require().False(found)
			}
		})
	}
}

func (suite *KeeperTestSuite) TestSendQueryBalanceSequences() {
	suite.tk.ConnectChannel(suite.T(), 1)

	for expSeq := uint64(1); expSeq <= 3; expSeq++ {
		packet, err := suite.tk.Keeper.SendQueryBalance(suite.tk.Ctx, TestQueryRequest)
		suite.Require().NoError(err)
		suite.Require().Equal(expSeq, packet.GetSequence())
	}

	suite.Require().Len(suite.tk.ICS4Wrapper.SentPackets, 3)
}

func (suite *KeeperTestSuite) TestOnAcknowledgementPacket() {
	var ack []byte

	testCases := []struct {
		name      string
		malleate  func()
		expErr    error
		expResult bool
		expError  string
	}{
		{
			"success: result acknowledgement", func() {
				ack = types.EncodeResultAck(TestBalanceResponse)
			}, nil, true, "",
		},
		{
			"success: error acknowledgement", func() {
				ack = types.EncodeErrorAck("remote module not found")
			}, nil, false, "remote module not found",
		},
		{
			"malformed acknowledgement", func() {
				ack = []byte("not an acknowledgement")
			}, types.ErrMalformedAck, false, "",
		},
		{
			"acknowledgement with both variants", func() {
				ack = []byte(`{"result":"AQ==","error":"failed"}`)
			}, types.ErrMalformedAck, false, "",
		},
		{
			"result is not a balance response", func() {
				ack = types.EncodeResultAck([]byte{byte(1)})
			}, types.ErrInvalidBalanceResponse, false, "",
		},
		{
			"result with empty coin list", func() {
				ack = types.EncodeResultAck(TestEmptyBalanceResponse)
			}, types.ErrEmptyBalances, false, "",
		},
	}

	for _, tc := range testCases {
		tc := tc

		suite.Run(tc.name, func() {
			suite.SetupTest() // reset

			suite.tk.ConnectChannel(suite.T(), 7)
			packet, err := suite.tk.Keeper.SendQueryBalance(suite.tk.Ctx, TestQueryRequest)
			suite.Require().NoError(err)

			tc.malleate()

			err = suite.tk.Keeper.OnAcknowledgementPacket(suite.tk.Ctx, packet, ack)

			if tc.expErr != nil {
				suite.Require().ErrorIs(err, tc.expErr)
			} else {
				suite.Require().NoError(err)
			}

			if tc.expResult {
				suite.requireResults(types.IcqResult{Sequence: 7, Coin: sdk.NewInt64Coin("uosmo", 500)})

				event, found := suite.findEvent(types.EventTypePacket)
				suite.Require().True(found)
				suite.requireAttribute(event, types.AttributeKeySuccess, "true")
				suite.requireAttribute(event, types.AttributeKeyAmount, "500")
			} else {
				suite.requireResults()
			}

			if tc.expError != "" {
				msg, found := suite.tk.Keeper.GetError(suite.tk.Ctx, 7)
				suite.Require().True(found)
				suite.Require().Equal(tc.expError, msg)

				event, found := suite.findEvent(types.EventTypePacket)
				suite.Require().True(found)
				suite.requireAttribute(event, types.AttributeKeyAckError, tc.expError)
				suite.requireAttribute(event, types.AttributeKeySuccess, "false")
			} else {
				suite.Require().Empty(suite.tk.Keeper.GetAllErrors(suite.tk.Ctx))
			}
		})
	}
}

func (suite *KeeperTestSuite) TestOnAcknowledgementPacketReceiveMode() {
	suite.setupReceiveMode()
	suite.tk.ConnectChannel(suite.T(), 7)

	packet, err := suite.tk.Keeper.SendQueryBalance(suite.tk.Ctx, TestQueryRequest)
	suite.Require().NoError(err)

	for _, ack := range [][]byte{
		types.EncodeResultAck(TestBalanceResponse),
		types.EncodeErrorAck("remote module not found"),
		[]byte("not an acknowledgement"),
	} {
		suite.Require().NoError(suite.tk.Keeper.OnAcknowledgementPacket(suite.tk.Ctx, packet, ack))
	}

	suite.requireResults()
	suite.Require().Empty(suite.tk.Keeper.GetAllErrors(suite.tk.Ctx))
	suite.Require().True(suite.tk.Logger.HasEntry("ignoring acknowledgement in receive delivery mode"))
}

func (suite *KeeperTestSuite) TestOnRecvPacket() {
	var data []byte

	testCases := []struct {
		name      string
		malleate  func()
		expErr    error
		expResult bool
	}{
		{
			"success", func() {
				data = TestBalanceResponse
			}, nil, true,
		},
		{
			"empty coin list is rejected", func() {
				data = TestEmptyBalanceResponse
			}, types.ErrEmptyBalances, false,
		},
		{
			"acknowledgement envelope instead of balance response", func() {
				data = types.EncodeResultAck(TestBalanceResponse)
			}, types.ErrEmptyBalances, false,
		},
		{
			"malformed packet data", func() {
				data = []byte("balance")
			}, types.ErrInvalidBalanceResponse, false,
		},
		{
			"invalid coin", func() {
				data = []byte(`{"balances":{"coins":[{"denom":"uosmo","amount":"-1"}]},"last_submitted_local_height":1}`)
			}, types.ErrInvalidBalanceResponse, false,
		},
	}

	for _, tc := range testCases {
		tc := tc

		suite.Run(tc.name, func() {
			suite.setupReceiveMode()
			suite.tk.ConnectChannel(suite.T(), 1)

			tc.malleate()

			err := suite.tk.Keeper.OnRecvPacket(suite.tk.Ctx, ibctesting.HostPacket(data, 4))

			if tc.expErr == nil {
				suite.Require().NoError(err)
				suite.requireResults(types.IcqResult{Sequence: 4, Coin: sdk.NewInt64Coin("uosmo", 500)})
			} else {
				suite.Require().ErrorIs(err, tc.expErr)
				suite.requireResults()
			}
		})
	}
}

func (suite *KeeperTestSuite) TestOnRecvPacketAckMode() {
	suite.tk.ConnectChannel(suite.T(), 1)

	err := suite.tk.Keeper.OnRecvPacket(suite.tk.Ctx, ibctesting.HostPacket(TestBalanceResponse, 4))
	suite.Require().NoError(err)
	suite.requireResults()
	suite.Require().True(suite.tk.Logger.HasEntry("ignoring inbound packet in ack delivery mode"))
}

func (suite *KeeperTestSuite) TestOnTimeoutPacket() {
	suite.tk.ConnectChannel(suite.T(), 3)

	packet, err := suite.tk.Keeper.SendQueryBalance(suite.tk.Ctx, TestQueryRequest)
	suite.Require().NoError(err)

	err = suite.tk.Keeper.OnTimeoutPacket(suite.tk.Ctx, packet)
	suite.Require().NoError(err)

	suite.requireResults()
	suite.Require().Empty(suite.tk.Keeper.GetAllErrors(suite.tk.Ctx))
	suite.Require().True(suite.tk.Keeper.HasChannelInfo(suite.tk.Ctx))

	event, found := suite.findEvent(types.EventTypeTimeout)
	suite.Require().True(found)
	suite.requireAttribute(event, types.AttributeKeySequence, "3")
}

// TestAckDeliveredScenario dispatches a query answered by a result acknowledgement
// and lists the stored balance.
func (suite *KeeperTestSuite) TestAckDeliveredScenario() {
	suite.tk.ConnectChannel(suite.T(), 7)

	packet, err := suite.tk.Keeper.SendQueryBalance(suite.tk.Ctx, types.NewQueryRequest("osmosis-1", "osmo1abc", "uosmo"))
	suite.Require().NoError(err)
	suite.Require().Equal(uint64(7), packet.GetSequence())

	err = suite.tk.Keeper.OnAcknowledgementPacket(suite.tk.Ctx, packet, types.EncodeResultAck(TestBalanceResponse))
	suite.Require().NoError(err)

	suite.requireResults(types.IcqResult{Sequence: 7, Coin: sdk.NewInt64Coin("uosmo", 500)})
}

// TestAckDeliveredErrorScenario records an error acknowledgement in the error collection only.
func (suite *KeeperTestSuite) TestAckDeliveredErrorScenario() {
	suite.tk.ConnectChannel(suite.T(), 9)

	packet, err := suite.tk.Keeper.SendQueryBalance(suite.tk.Ctx, TestQueryRequest)
	suite.Require().NoError(err)
	suite.Require().Equal(uint64(9), packet.GetSequence())

	err = suite.tk.Keeper.OnAcknowledgementPacket(suite.tk.Ctx, packet, types.EncodeErrorAck("remote module not found"))
	suite.Require().NoError(err)

	_, found := suite.tk.Keeper.GetResult(suite.tk.Ctx, 9)
	suite.Require().False(found)
	suite.Require().Equal([]types.IcqError{{Sequence: 9, Error: "remote module not found"}}, suite.tk.Keeper.GetAllErrors(suite.tk.Ctx))
}

// TestOutOfOrderAcknowledgements stores results keyed by their own sequence regardless of arrival order.
func (suite *KeeperTestSuite) TestOutOfOrderAcknowledgements() {
	suite.tk.ConnectChannel(suite.T(), 1)

	var packets []channeltypes.Packet
	for i := 0; i < 3; i++ {
		packet, err := suite.tk.Keeper.SendQueryBalance(suite.tk.Ctx, TestQueryRequest)
		suite.Require().NoError(err)
		packets = append(packets, packet)
	}

	for _, i := range []int{2, 0} {
		resp := fmt.Sprintf(`{"balances":{"coins":[{"denom":"uosmo","amount":"%d"}]},"last_submitted_local_height":1}`, (i+1)*100)
		err := suite.tk.Keeper.OnAcknowledgementPacket(suite.tk.Ctx, packets[i], types.EncodeResultAck([]byte(resp)))
		suite.Require().NoError(err)
	}

	// the query with sequence 2 is still pending
	suite.requireResults(
		types.IcqResult{Sequence: 1, Coin: sdk.NewInt64Coin("uosmo", 100)},
		types.IcqResult{Sequence: 3, Coin: sdk.NewInt64Coin("uosmo", 300)},
	)
}

// TestCloseAfterConnect clears the channel record while keeping stored results listable.
func (suite *KeeperTestSuite) TestCloseAfterConnect() {
	suite.tk.ConnectChannel(suite.T(), 7)

	packet, err := suite.tk.Keeper.SendQueryBalance(suite.tk.Ctx, TestQueryRequest)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.tk.Keeper.OnAcknowledgementPacket(suite.tk.Ctx, packet, types.EncodeResultAck(TestBalanceResponse)))

	err = suite.tk.Keeper.OnChanClose(suite.tk.Ctx, types.PortID, ibctesting.ChannelID)
	suite.Require().NoError(err)
	suite.Require().False(suite.tk.Keeper.HasChannelInfo(suite.tk.Ctx))

	_, err = suite.tk.Keeper.SendQueryBalance(suite.tk.Ctx, TestQueryRequest)
	suite.Require().ErrorIs(err, types.ErrChannelNotEstablished)

	suite.requireResults(types.IcqResult{Sequence: 7, Coin: sdk.NewInt64Coin("uosmo", 500)})

	_, found := suite.findEvent(types.EventTypeChannelClose)
	suite.Require().True(found)
}

func (suite *KeeperTestSuite) TestOnRecvPacketChannelNotConnected() {
	testCases := []struct {
		name     string
		malleate func(packet *channeltypes.Packet)
		expErr   error
	}{
		{
			"channel never connected", func(packet *channeltypes.Packet) {
				suite.tk.Keeper.DeleteChannelInfo(suite.tk.Ctx)
			}, types.ErrChannelNotEstablished,
		},
		{
			"channel closed", func(packet *channeltypes.Packet) {
				suite.Require().NoError(suite.tk.Keeper.OnChanClose(suite.tk.Ctx, types.PortID, ibctesting.ChannelID))
			}, types.ErrChannelNotEstablished,
		},
		{
			"packet received on another channel", func(packet *channeltypes.Packet) {
				packet.DestinationChannel = "channel-5"
			}, channeltypes.ErrInvalidChannel,
		},
	}

	for _, tc := range testCases {
		tc := tc

		suite.Run(tc.name, func() {
			suite.setupReceiveMode()
			suite.tk.ConnectChannel(suite.T(), 1)

			packet := ibctesting.HostPacket(TestBalanceResponse, 4)
			tc.malleate(&packet)

			err := suite.tk.Keeper.OnRecvPacket(suite.tk.Ctx, packet)
			suite.Require().ErrorIs(err, tc.expErr)
			suite.requireResults()
		})
	}
}

func (suite *KeeperTestSuite) TestOnAcknowledgementPacketChannelNotConnected() {
	testCases := []struct {
		name     string
		malleate func(packet *channeltypes.Packet)
		expErr   error
	}{
		{
			"channel closed", func(packet *channeltypes.Packet) {
				suite.Require().NoError(suite.tk.Keeper.OnChanClose(suite.tk.Ctx, types.PortID, ibctesting.ChannelID))
			}, types.ErrChannelNotEstablished,
		},
		{
			"packet sent on another channel", func(packet *channeltypes.Packet) {
				packet.SourceChannel = "channel-5"
			}, channeltypes.ErrInvalidChannel,
		},
	}

	for _, tc := range testCases {
		tc := tc

		suite.Run(tc.name, func() {
			suite.SetupTest() // reset

			suite.tk.ConnectChannel(suite.T(), 7)
			packet, err := suite.tk.Keeper.SendQueryBalance(suite.tk.Ctx, TestQueryRequest)
			suite.Require().NoError(err)

			tc.malleate(&packet)

			for _, ack := range [][]byte{
				types.EncodeResultAck(TestBalanceResponse),
				types.EncodeErrorAck("remote module not found"),
			} {
				err = suite.tk.Keeper.OnAcknowledgementPacket(suite.tk.Ctx, packet, ack)
				suite.Require().ErrorIs(err, tc.expErr)
			}

			suite.requireResults()
			suite.Require().Empty(suite.tk.Keeper.GetAllErrors(suite.tk.Ctx))
		})
	}
}

func (suite *KeeperTestSuite) TestOnAcknowledgementPacketEmptyErrorMessage() {
	suite.tk.ConnectChannel(suite.T(), 5)

	packet, err := suite.tk.Keeper.SendQueryBalance(suite.tk.Ctx, TestQueryRequest)
	suite.Require().NoError(err)

	err = suite.tk.Keeper.OnAcknowledgementPacket(suite.tk.Ctx, packet, []byte(`{"error":""}`))
	suite.Require().NoError(err)

	msg, found := suite.tk.Keeper.GetError(suite.tk.Ctx, 5)
	suite.Require().True(found)
	suite.Require().Empty(msg)
	suite.requireResults()
}
