package restrictions_test

import (
	"testing"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/runtime"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
	"github.com/stretchr/testify/require"

	modulev1 "github.com/WolfZAlpha/prosdepth/api/prosdepth/restrictions/module"
	keepertest "github.com/WolfZAlpha/prosdepth/testutil/keeper"
	"github.com/WolfZAlpha/prosdepth/testutil/sample"
	restrictions "github.com/WolfZAlpha/prosdepth/x/restrictions/module"
	"github.com/WolfZAlpha/prosdepth/x/restrictions/types"
)

func moduleInputs() restrictions.ModuleInputs {
	registry := codectypes.NewInterfaceRegistry()

	return restrictions.ModuleInputs{
		StoreService:  runtime.NewKVStoreService(storetypes.NewKVStoreKey(types.StoreKey)),
		Cdc:           codec.NewProtoCodec(registry),
		Config:        &modulev1.Module{},
		Logger:        log.NewNopLogger(),
		AccountKeeper: &keepertest.SimpleAccountKeeper{},
		VestingKeeper: &keepertest.StubVestingKeeper{},
	}
}

func TestProvideModule(t *testing.T) {
	outputs := restrictions.ProvideModule(moduleInputs())

	require.NotNil(t, outputs.Module)
	require.Equal(t,
		authtypes.NewModuleAddress(govtypes.ModuleName).String(),
		outputs.RestrictionsKeeper.GetAuthority())
}

func TestProvideModule_CustomAuthority(t *testing.T) {
	authority := sample.AccAddress()
	inputs := moduleInputs()
	inputs.Config = &modulev1.Module{Authority: authority}

	outputs := restrictions.ProvideModule(inputs)
	require.Equal(t, authority, outputs.RestrictionsKeeper.GetAuthority())
}
