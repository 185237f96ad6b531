package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/WolfZAlpha/prosdepth/testutil/keeper"
	oracle "github.com/WolfZAlpha/prosdepth/x/oracle/module"
	"github.com/WolfZAlpha/prosdepth/x/oracle/types"
)

func TestGenesis(t *testing.T) {
	genesisState := types.GenesisState{
		Params: types.DefaultParams(),
		LatestQuote: &types.PriceQuote{
			Price:     math.NewInt(2_000_000),
			UpdatedAt: 1_000_000,
		},
	}
	require.NoError(t, genesisState.Validate())

	k, ctx := keepertest.OracleKeeper(t)
	oracle.InitGenesis(ctx, k, genesisState)
	got := oracle.ExportGenesis(ctx, k)
	require.NotNil(t, got)

	require.Equal(t, genesisState.Params, got.Params)
	require.Equal(t, genesisState.LatestQuote, got.LatestQuote)
}

func TestGenesis_NoQuote(t *testing.T) {
	k, ctx := keepertest.OracleKeeper(t)
	oracle.InitGenesis(ctx, k, *types.DefaultGenesis())
	got := oracle.ExportGenesis(ctx, k)
	require.Nil(t, got.LatestQuote)
}

func TestGenesisValidate_BadQuote(t *testing.T) {
	genesisState := types.GenesisState{
		Params:      types.DefaultParams(),
		LatestQuote: &types.PriceQuote{Price: math.ZeroInt(), UpdatedAt: 1},
	}
	require.Error(t, genesisState.Validate())

	genesisState.LatestQuote = &types.PriceQuote{Price: math.NewInt(1), UpdatedAt: 0}
	require.Error(t, genesisState.Validate())
}
