package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	keepertest "github.com/WolfZAlpha/prosdepth/testutil/keeper"
	"github.com/WolfZAlpha/prosdepth/testutil/sample"
	restrictions "github.com/WolfZAlpha/prosdepth/x/restrictions/module"
	"github.com/WolfZAlpha/prosdepth/x/restrictions/types"
)

func TestGenesis(t *testing.T) {
	genesisState := types.GenesisState{
		Params: types.NewParams("upros"),
		BlacklistedAccounts: []string{
			sample.AccAddress(),
			sample.AccAddress(),
		},
	}
	require.NoError(t, genesisState.Validate())

	k, ctx := keepertest.RestrictionsKeeper(t)
	restrictions.InitGenesis(ctx, k, genesisState)
	got := restrictions.ExportGenesis(ctx, k)
	require.NotNil(t, got)

	require.Equal(t, genesisState.Params, got.Params)
	require.ElementsMatch(t, genesisState.BlacklistedAccounts, got.BlacklistedAccounts)
}

func TestGenesisValidate_DuplicateAccount(t *testing.T) {
	account := sample.AccAddress()
	genesisState := types.GenesisState{
		Params:              types.DefaultParams(),
		BlacklistedAccounts: []string{account, account},
	}
	require.Error(t, genesisState.Validate())
}
