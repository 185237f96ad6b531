package keeper

import (
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/WolfZAlpha/prosdepth/x/tokensale/keeper"
	"github.com/WolfZAlpha/prosdepth/x/tokensale/types"
)

// TokensaleMocks holds all the mock keepers for testing
type TokensaleMocks struct {
	AccountKeeper *MockAccountKeeper
	BankKeeper    *MockBankKeeper
	BookKeeper    *MockBookkeepingBankKeeper
	OracleKeeper  *MockOracleKeeper
}

func TokensaleKeeper(t testing.TB) (keeper.Keeper, sdk.Context) {
	k, ctx, _ := TokensaleKeeperWithMocks(t)
	return k, ctx
}

func TokensaleKeeperWithMocks(t testing.TB) (keeper.Keeper, sdk.Context, TokensaleMocks) {
	ctrl := gomock.NewController(t)
	mocks := TokensaleMocks{
		AccountKeeper: NewMockAccountKeeper(ctrl),
		BankKeeper:    NewMockBankKeeper(ctrl),
		BookKeeper:    NewMockBookkeepingBankKeeper(ctrl),
		OracleKeeper:  NewMockOracleKeeper(ctrl),
	}

	storeKey := storetypes.NewKVStoreKey(types.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	registry := codectypes.NewInterfaceRegistry()
	cdc := codec.NewProtoCodec(registry)
	authority := authtypes.NewModuleAddress(govtypes.ModuleName)

	k := keeper.NewKeeper(
		cdc,
		runtime.NewKVStoreService(storeKey),
		log.NewNopLogger(),
		authority.String(),
		mocks.AccountKeeper,
		mocks.BankKeeper,
		mocks.BookKeeper,
		mocks.OracleKeeper,
	)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger())

	// Seed the default tier ladder and sale state
	genesis := types.DefaultGenesis()
	for _, tier := range genesis.TierList {
		require.NoError(t, k.SetTier(ctx, tier))
	}
	require.NoError(t, k.SetSaleState(ctx, genesis.SaleState))
	require.NoError(t, k.SetParams(ctx, genesis.Params))

	return k, ctx, mocks
}
