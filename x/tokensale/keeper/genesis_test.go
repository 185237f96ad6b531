package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/WolfZAlpha/prosdepth/testutil/keeper"
	"github.com/WolfZAlpha/prosdepth/testutil/sample"
	tokensale "github.com/WolfZAlpha/prosdepth/x/tokensale/module"
	"github.com/WolfZAlpha/prosdepth/x/tokensale/types"
)

func TestGenesis(t *testing.T) {
	genesisState := types.GenesisState{
		Params: types.DefaultParams(),
		SaleState: types.SaleState{
			CurrentTier: 2,
			Active:      true,
			Paused:      false,
		},
		// Ids match the seeded ladder so InitGenesis replaces every tier
		TierList: []types.Tier{
			{Id: 1, PriceUsdCents: 5, Capacity: math.NewInt(100), Sold: math.NewInt(100)},
			{Id: 2, PriceUsdCents: 7, Capacity: math.NewInt(200), Sold: math.NewInt(50)},
			{Id: 3, PriceUsdCents: 10, Capacity: math.NewInt(500), Sold: math.ZeroInt()},
		},
		BuyerList: []types.BuyerRecord{
			{Address: sample.AccAddress(), TotalPaid: math.NewInt(250_000_000)},
		},
		FundAccounts: &types.FundAccounts{
			Treasury:     sample.AccAddress(),
			TaxCollector: sample.AccAddress(),
		},
	}
	require.NoError(t, genesisState.Validate())

	k, ctx := keepertest.TokensaleKeeper(t)
	tokensale.InitGenesis(ctx, k, genesisState)
	got := tokensale.ExportGenesis(ctx, k)
	require.NotNil(t, got)

	require.Equal(t, genesisState.Params, got.Params)
	require.Equal(t, genesisState.SaleState, got.SaleState)
	require.ElementsMatch(t, genesisState.TierList, got.TierList)
	require.ElementsMatch(t, genesisState.BuyerList, got.BuyerList)
	require.Equal(t, genesisState.FundAccounts, got.FundAccounts)
}

func TestGenesisValidate(t *testing.T) {
	require.NoError(t, types.DefaultGenesis().Validate())
}

func TestGenesisValidate_BadTiers(t *testing.T) {
	genesisState := types.DefaultGenesis()
	genesisState.TierList[0].Sold = genesisState.TierList[0].Capacity.AddRaw(1)
	require.Error(t, genesisState.Validate())

	genesisState = types.DefaultGenesis()
	genesisState.TierList[1].Id = genesisState.TierList[0].Id
	require.Error(t, genesisState.Validate())

	genesisState = types.DefaultGenesis()
	genesisState.SaleState.CurrentTier = 99
	require.Error(t, genesisState.Validate())
}

func TestGenesisValidate_FundAccounts(t *testing.T) {
	account := sample.AccAddress()
	genesisState := types.DefaultGenesis()
	genesisState.FundAccounts = &types.FundAccounts{
		Treasury:     account,
		TaxCollector: account,
	}
	require.Error(t, genesisState.Validate())
}
