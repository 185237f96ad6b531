package tokensale_test

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
	"go.uber.org/mock/gomock"

	modulev1 "github.com/WolfZAlpha/prosdepth/api/prosdepth/tokensale/module"
	keepertest "github.com/WolfZAlpha/prosdepth/testutil/keeper"
	"github.com/WolfZAlpha/prosdepth/testutil/sample"
	tokensale "github.com/WolfZAlpha/prosdepth/x/tokensale/module"
	"github.com/WolfZAlpha/prosdepth/x/tokensale/types"
)

func moduleInputs(t *testing.T) tokensale.ModuleInputs {
	ctrl := gomock.NewController(t)
	registry := codectypes.NewInterfaceRegistry()

	return tokensale.ModuleInputs{
		StoreService:          runtime.NewKVStoreService(storetypes.NewKVStoreKey(types.StoreKey)),
		Cdc:                   codec.NewProtoCodec(registry),
		Config:                &modulev1.Module{},
		Logger:                log.NewNopLogger(),
		AccountKeeper:         keepertest.NewMockAccountKeeper(ctrl),
		BankKeeper:            keepertest.NewMockBankKeeper(ctrl),
		BookkeepingBankKeeper: keepertest.NewMockBookkeepingBankKeeper(ctrl),
		OracleKeeper:          keepertest.NewMockOracleKeeper(ctrl),
	}
}

func TestProvideModule(t *testing.T) {
	outputs := tokensale.ProvideModule(moduleInputs(t))

	require.NotNil(t, outputs.Module)
	require.Equal(t,
		authtypes.NewModuleAddress(govtypes.ModuleName).String(),
		outputs.TokensaleKeeper.GetAuthority())
}

func TestProvideModule_CustomAuthority(t *testing.T) {
	authority := sample.AccAddress()
	inputs := moduleInputs(t)
	inputs.Config = &modulev1.Module{Authority: authority}

	outputs := tokensale.ProvideModule(inputs)
	require.Equal(t, authority, outputs.TokensaleKeeper.GetAuthority())
}
