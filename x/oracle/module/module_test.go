package oracle_test

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

	modulev1 "github.com/WolfZAlpha/prosdepth/api/prosdepth/oracle/module"
	"github.com/WolfZAlpha/prosdepth/testutil/sample"
	oracle "github.com/WolfZAlpha/prosdepth/x/oracle/module"
	"github.com/WolfZAlpha/prosdepth/x/oracle/types"
)

func moduleInputs() oracle.ModuleInputs {
	registry := codectypes.NewInterfaceRegistry()

	return oracle.ModuleInputs{
		StoreService: runtime.NewKVStoreService(storetypes.NewKVStoreKey(types.StoreKey)),
		Cdc:          codec.NewProtoCodec(registry),
		Config:       &modulev1.Module{},
		Logger:       log.NewNopLogger(),
	}
}

func TestProvideModule(t *testing.T) {
	outputs := oracle.ProvideModule(moduleInputs())

	require.NotNil(t, outputs.Module)
	require.Equal(t,
		authtypes.NewModuleAddress(govtypes.ModuleName).String(),
		outputs.OracleKeeper.GetAuthority())
}

func TestProvideModule_CustomAuthority(t *testing.T) {
	authority := sample.AccAddress()
	inputs := moduleInputs()
	inputs.Config = &modulev1.Module{Authority: authority}

	outputs := oracle.ProvideModule(inputs)
	require.Equal(t, authority, outputs.OracleKeeper.GetAuthority())
}
