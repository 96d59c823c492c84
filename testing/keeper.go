package ibctesting

import (
	"testing"
	"time"

	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/store"
	sdk "github.com/cosmos/cosmos-sdk/types"
	paramstypes "github.com/cosmos/cosmos-sdk/x/params/types"
	"github.com/stretchr/testify/require"
	tmproto "github.com/tendermint/tendermint/proto/tendermint/types"
	tmdb "github.com/tendermint/tm-db"

	clienttypes "github.com/cosmos/ibc-go/v3/modules/core/02-client/types"
	channeltypes "github.com/cosmos/ibc-go/v3/modules/core/04-channel/types"
	"github.com/cosmos/icq-invoker/modules/apps/icq-invoker/keeper"
	"github.com/cosmos/icq-invoker/modules/apps/icq-invoker/types"
	"github.com/cosmos/icq-invoker/testing/mock"
)

const (
	// ChannelID is the local channel identifier used by ConnectChannel
	ChannelID = "channel-0"
	// CounterpartyPortID is the port bound by the interchain query host
	CounterpartyPortID = "icqhost"
	// CounterpartyChannelID is the host channel identifier used by ConnectChannel
	CounterpartyChannelID = "channel-1"
	// ConnectionID is the connection the test channel is built on
	ConnectionID = "connection-0"
)

// BlockTime is the header time of every test context
var BlockTime = time.Date(2022, time.March, 1, 12, 0, 0, 0, time.UTC)

// TestKeeper bundles a keeper backed by an in-memory store with the fake IBC
// keepers it is wired to
type TestKeeper struct {
	Ctx    sdk.Context
	Keeper keeper.Keeper
	Logger *mock.MockLogger

	ChannelKeeper *mock.ChannelKeeper
	ICS4Wrapper   *mock.ICS4Wrapper
	PortKeeper    *mock.PortKeeper
	ScopedKeeper  *mock.ScopedKeeper
}

// NewTestKeeper creates a keeper using the given delivery mode and initializes it
// with the default genesis state, binding the module port
func NewTestKeeper(tb testing.TB, mode types.DeliveryMode) *TestKeeper {
	tb.Helper()

	storeKey := sdk.NewKVStoreKey(types.StoreKey)
	paramsKey := sdk.NewKVStoreKey(paramstypes.StoreKey)
	tparamsKey := sdk.NewTransientStoreKey(paramstypes.TStoreKey)

	db := tmdb.NewMemDB()
	stateStore := store.NewCommitMultiStore(db)
	stateStore.MountStoreWithDB(storeKey, sdk.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(paramsKey, sdk.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(tparamsKey, sdk.StoreTypeTransient, db)
	require.NoError(tb, stateStore.LoadLatestVersion())

	cdc := codec.NewProtoCodec(codectypes.NewInterfaceRegistry())
	legacyAmino := codec.NewLegacyAmino()
	subspace := paramstypes.NewSubspace(cdc, legacyAmino, paramsKey, tparamsKey, types.ModuleName)

	logger := mock.NewMockLogger()
	ctx := sdk.NewContext(stateStore, tmproto.Header{Height: 1, Time: BlockTime}, false, logger)

	scopedKeeper := mock.NewScopedKeeper()
	channelKeeper := mock.NewChannelKeeper()
	portKeeper := mock.NewPortKeeper(scopedKeeper)
	ics4Wrapper := mock.NewICS4Wrapper(channelKeeper, scopedKeeper)

	k := keeper.NewKeeper(cdc, storeKey, subspace, ics4Wrapper, channelKeeper, portKeeper, scopedKeeper, mode)
	keeper.InitGenesis(ctx, k, *types.DefaultGenesis())

	return &TestKeeper{
		Ctx:           ctx,
		Keeper:        k,
		Logger:        logger,
		ChannelKeeper: channelKeeper,
		ICS4Wrapper:   ics4Wrapper,
		PortKeeper:    portKeeper,
		ScopedKeeper:  scopedKeeper,
	}
}

// NewChannel returns an open icq-1 channel end from the module port to the interchain query host
func NewChannel(order channeltypes.Order, version string) channeltypes.Channel {
	return channeltypes.NewChannel(
		channeltypes.OPEN,
		order,
		channeltypes.NewCounterparty(CounterpartyPortID, CounterpartyChannelID),
		[]string{ConnectionID},
		version,
	)
}

// ConnectChannel runs the INIT and ACK steps of the channel handshake for ChannelID
// and sets the next send sequence of the channel
func (tk *TestKeeper) ConnectChannel(tb testing.TB, nextSequence uint64) {
	tb.Helper()

	tk.ChannelKeeper.SetChannel(types.PortID, ChannelID, NewChannel(channeltypes.UNORDERED, types.Version))
	tk.ChannelKeeper.SetNextSequenceSend(types.PortID, ChannelID, nextSequence)

	err := tk.Keeper.OnChanOpenInit(
		tk.Ctx, channeltypes.UNORDERED, []string{ConnectionID}, types.PortID, ChannelID,
		tk.ScopedKeeper.NewCapability(), channeltypes.NewCounterparty(CounterpartyPortID, ""), types.Version,
	)
	require.NoError(tb, err)

	err = tk.Keeper.OnChanOpenAck(tk.Ctx, types.PortID, ChannelID, CounterpartyChannelID, types.Version)
	require.NoError(tb, err)
}

// HostPacket returns a packet sent by the interchain query host to the module channel
func HostPacket(data []byte, sequence uint64) channeltypes.Packet {
	return channeltypes.NewPacket(
		data,
		sequence,
		CounterpartyPortID,
		CounterpartyChannelID,
		types.PortID,
		ChannelID,
		clienttypes.ZeroHeight(),
		uint64(BlockTime.Add(types.QueryTimeout).UnixNano()),
	)
}

// QueryPacket returns a query packet sent by the module with the given sequence
func QueryPacket(req types.QueryRequest, sequence uint64) channeltypes.Packet {
	return channeltypes.NewPacket(
		types.NewBalanceQueryPacketData(req).GetBytes(),
		sequence,
		types.PortID,
		ChannelID,
		CounterpartyPortID,
		CounterpartyChannelID,
		clienttypes.ZeroHeight(),
		uint64(BlockTime.Add(types.QueryTimeout).UnixNano()),
	)
}
