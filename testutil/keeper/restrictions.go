package keeper

import (
	"context"
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
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

	"github.com/WolfZAlpha/prosdepth/x/restrictions/keeper"
	"github.com/WolfZAlpha/prosdepth/x/restrictions/types"
)

// SimpleAccountKeeper is a simple mock for testing
type SimpleAccountKeeper struct{}

func (m *SimpleAccountKeeper) GetAccount(ctx context.Context, addr sdk.AccAddress) sdk.AccountI {
	// Module accounts are created by modules during genesis/runtime, so we
	// simulate what the real AccountKeeper would return for them.
	addrStr := addr.String()

	knownModules := []string{
		"fee_collector", "distribution", "mint", "bonded_tokens_pool", "not_bonded_tokens_pool", "gov",
		"tokensale", "lockvesting", "restrictions", "oracle", "bookkeeper",
	}

	for _, moduleName := range knownModules {
		moduleAddr := authtypes.NewModuleAddress(moduleName)
		if addr.Equals(moduleAddr) {
			return &authtypes.ModuleAccount{
				BaseAccount: &authtypes.BaseAccount{Address: addrStr},
				Name:        moduleName,
			}
		}
	}

	// Return a regular account for non-module addresses
	return &authtypes.BaseAccount{Address: addrStr}
}

// StubVestingKeeper is a simple mock for the vesting transfer check. The
// zero value allows every transfer.
type StubVestingKeeper struct {
	CanTransferFn func(ctx context.Context, account string, amount math.Int, now int64) bool
}

func (m *StubVestingKeeper) CanTransfer(ctx context.Context, account string, amount math.Int, now int64) bool {
	if m.CanTransferFn == nil {
		return true
	}
	return m.CanTransferFn(ctx, account, amount, now)
}

func RestrictionsKeeper(t testing.TB) (keeper.Keeper, sdk.Context) {
	k, ctx, _ := RestrictionsKeeperWithVesting(t)
	return k, ctx
}

func RestrictionsKeeperWithVesting(t testing.TB) (keeper.Keeper, sdk.Context, *StubVestingKeeper) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	registry := codectypes.NewInterfaceRegistry()
	cdc := codec.NewProtoCodec(registry)
	authority := authtypes.NewModuleAddress(govtypes.ModuleName)

	vestingKeeper := &StubVestingKeeper{}

	k := keeper.NewKeeper(
		cdc,
		runtime.NewKVStoreService(storeKey),
		log.NewNopLogger(),
		authority.String(),
		&SimpleAccountKeeper{},
		vestingKeeper,
	)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger())

	// Initialize params
	if err := k.SetParams(ctx, types.DefaultParams()); err != nil {
		panic(err)
	}

	return k, ctx, vestingKeeper
}
